package models

// Parameter is a single named protection directive sent to the remote
// service, e.g. {"name": "stringSplitting", "options": {"freq": 0.5}}.
// The Options mapping is passed through opaquely; the service interprets it.
type Parameter struct {
	Name    string         `json:"name"`
	Options map[string]any `json:"options,omitempty"`
}
