package models

// Keys carries the account credentials used to sign every request to the
// protection service.
type Keys struct {
	AccessKey string `json:"accessKey"`
	SecretKey string `json:"secretKey"`
}

// Connection describes how to reach the protection service.
type Connection struct {
	Host     string `json:"host"`
	Port     int    `json:"port"`
	Protocol string `json:"protocol"`
	CAFile   string `json:"cafile,omitempty"`
}

// ProtectRequest is the full request shape for the protect-and-download
// operation. It is assembled exactly once per invocation by the dispatcher
// and never carries a source-map identifier.
type ProtectRequest struct {
	Keys          Keys       `json:"keys"`
	Connection    Connection `json:"connection"`
	ApplicationID string     `json:"applicationId"`

	Files     []string `json:"files,omitempty"`
	FilesDest string   `json:"filesDest"`
	Cwd       string   `json:"cwd,omitempty"`

	Params                []Parameter `json:"params,omitempty"`
	AreSubscribersOrdered bool        `json:"areSubscribersOrdered"`
	SourceMapsEnabled     bool        `json:"sourceMaps"`
	ApplicationTypes      []string    `json:"applicationTypes,omitempty"`
	Languages             []string    `json:"languages,omitempty"`

	RandomizationSeed      string `json:"randomizationSeed,omitempty"`
	UseRecommendedOrder    bool   `json:"useRecommendedOrder"`
	TolerateMinification   bool   `json:"tolerateMinification"`
	JscramblerVersion      string `json:"jscramblerVersion,omitempty"`
	DebugMode              bool   `json:"debugMode"`
	Proxy                  string `json:"proxy,omitempty"`
	CodeHardeningThreshold *int64 `json:"codeHardeningThreshold,omitempty"`
	UseProfilingData       bool   `json:"useProfilingData"`

	// Werror is tri-state: nil means the option was never supplied by any
	// configuration layer and must stay absent on the wire.
	Werror *bool `json:"werror,omitempty"`
}

// SourceMapsRequest is the minimal request shape for downloading the source
// maps of an existing protection. It never carries an application id, params
// or protection-tuning fields.
type SourceMapsRequest struct {
	Keys         Keys       `json:"keys"`
	Connection   Connection `json:"connection"`
	FilesDest    string     `json:"filesDest"`
	Files        []string   `json:"files,omitempty"`
	ProtectionID string     `json:"protectionId"`
	DebugMode    bool       `json:"debugMode"`
}
