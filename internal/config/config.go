// SPDX-License-Identifier: Apache-2.0

package config

import (
	"github.com/polyguard/protect-cli/models"
)

// Layer is one configuration source before merging. Pointer fields are
// tri-state: nil means the source did not supply the field, so a later layer
// may fill it. A non-nil pointer to a zero value (false, "0") is a real,
// explicitly supplied value and is preserved through the merge.
type Layer struct {
	// Identity and connection.
	AccessKey     *string
	SecretKey     *string
	Host          *string
	Port          *string // raw; parsed to an integer after the merge
	Protocol      *string
	CAFile        *string
	ApplicationID *string
	Proxy         *string

	// File selection.
	FilesSrc  []string
	FilesDest *string
	Cwd       *string

	// Behavior flags.
	UseRecommendedOrder  *bool
	TolerateMinification *bool
	Werror               *bool
	UseProfilingData     *bool
	DebugMode            *bool

	// Protection tuning.
	RandomizationSeed      *string
	CodeHardeningThreshold *string // raw, unit-suffixed; parsed after the merge
	JscramblerVersion      *string

	// Hints forwarded to the service untouched.
	ApplicationTypes []string
	Languages        []string

	// Params are merged by name, not layer-wise; see MergeParams.
	Params []models.Parameter

	// SourceMaps holds a protection id when source-map download was
	// requested. The config file may also set it to false, which is the
	// same as leaving it unset.
	SourceMaps *string
}

// Config is the resolved configuration of one invocation: the result of the
// flag > file > default merge with every raw value parsed and validated.
// It is built once by [Resolve] and never mutated afterwards.
type Config struct {
	AccessKey     string
	SecretKey     string
	Host          string
	Port          int
	Protocol      string
	CAFile        string
	ApplicationID string
	Proxy         string

	FilesSrc  []string
	FilesDest string
	Cwd       string

	UseRecommendedOrder  bool
	TolerateMinification bool
	UseProfilingData     bool
	DebugMode            bool

	// Werror stays tri-state: nil means no layer ever supplied it, and the
	// protect request must carry that absence through unchanged.
	Werror *bool

	RandomizationSeed      string
	CodeHardeningThreshold *int64 // bytes; nil when unset, zero is a valid threshold
	JscramblerVersion      string

	ApplicationTypes []string
	Languages        []string

	Params []models.Parameter

	// SourceMaps is the protection id to fetch source maps for; empty when
	// the protect-and-download path should run instead.
	SourceMaps string
}

// WerrorEnabled reports whether strict pattern matching was explicitly
// switched on.
func (c *Config) WerrorEnabled() bool {
	return c.Werror != nil && *c.Werror
}

// Defaults is the built-in configuration layer. It supplies only what a bare
// invocation needs to reach the service; credentials and file selection have
// no defaults.
func Defaults() Layer {
	return Layer{
		Host:      ptr("api4.jscrambler.com"),
		Port:      ptr("443"),
		Protocol:  ptr("https"),
		FilesDest: ptr("."),
	}
}

func ptr[T any](v T) *T {
	return &v
}
