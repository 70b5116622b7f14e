package models

// Protection states reported by the service while a protection job runs.
const (
	ProtectionStateInProgress = "inProgress"
	ProtectionStateFinished   = "finished"
	ProtectionStateErrored    = "errored"
	ProtectionStateCanceled   = "canceled"
)

// ProtectionStatus is the polling payload returned by the service for a
// protection job.
type ProtectionStatus struct {
	ID           string            `json:"id"`
	State        string            `json:"state"`
	ErrorMessage string            `json:"errorMessage,omitempty"`
	Sources      []ProtectionError `json:"sources,omitempty"`
}

// ProtectionError describes a per-source error or warning attached to a
// finished or errored protection.
type ProtectionError struct {
	Filename string `json:"filename"`
	Message  string `json:"message"`
	Level    string `json:"level"`
}

// Done reports whether the protection reached a terminal state.
func (s ProtectionStatus) Done() bool {
	return s.State == ProtectionStateFinished ||
		s.State == ProtectionStateErrored ||
		s.State == ProtectionStateCanceled
}
