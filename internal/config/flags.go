// SPDX-License-Identifier: Apache-2.0

package config

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// RegisterFlags declares every option of the protect command on cmd.
//
// Flags:
//
//	-a/--access-key access key id
//	-c/--config path to a JSON config file
//	-H/--host service host
//	-i/--application-id application to protect
//	-o/--output-dir directory to write results into
//	-p/--port service port
//	--protocol service protocol (http or https)
//	--cafile internal certificate authority file
//	-C/--cwd base directory for source pattern resolution
//	-s/--secret-key secret key
//	-m/--source-maps protection id whose source maps should be downloaded
//	-R/--randomization-seed seed for protection randomization
//	--code-hardening-threshold minimum file size before hardening applies
//	--recommended-order use the recommended transformation order (true/false)
//	-W/--werror require every source pattern to match (true/false)
//	--tolerate-minification tolerate minified sources (true/false)
//	--use-profiling-data use stored profiling data (true/false)
//	--jscramblerVersion engine version (e.g. 5.2, stable, latest)
//	--params protection parameters as a JSON array
//	--debugMode enable debug diagnostics
func RegisterFlags(cmd *cobra.Command) {
	f := cmd.Flags()

	f.StringP("access-key", "a", "", "Access key id")
	f.StringP("config", "c", "", "Path to a JSON config file")
	f.StringP("host", "H", "", "Service host")
	f.StringP("application-id", "i", "", "Id of the application to protect")
	f.StringP("output-dir", "o", "", "Directory to write results into")
	f.StringP("port", "p", "", "Service port")
	f.String("protocol", "", "Service protocol (http or https)")
	f.String("cafile", "", "Internal certificate authority file")
	f.StringP("cwd", "C", "", "Base directory for source pattern resolution")
	f.StringP("secret-key", "s", "", "Secret key")
	f.StringP("source-maps", "m", "", "Download source maps for the given protection id")
	f.StringP("randomization-seed", "R", "", "Seed for protection randomization")
	f.String("code-hardening-threshold", "", "Minimum file size before hardening applies (e.g. 200b, 150kb, 1mb)")
	f.String("recommended-order", "", "Use the recommended transformation order (true or false)")
	f.StringP("werror", "W", "", "Require every source pattern to match at least one file (true or false)")
	f.String("tolerate-minification", "", "Tolerate already-minified sources (true or false)")
	f.String("use-profiling-data", "", "Use profiling data stored by previous runs (true or false)")
	f.String("jscramblerVersion", "", "Engine version (e.g. 5.2, stable, latest)")
	f.String("params", "", "Protection parameters as a JSON array")
	f.Bool("debugMode", false, "Enable debug diagnostics")
}

// LayerFromFlags builds the flag configuration layer from the parsed flag set
// and the positional source patterns. A flag contributes to the layer only
// when the user actually set it, so unset flags stay nil and fall through to
// the config file or the defaults.
//
// Option values with a constrained grammar (booleans, sizes, ports, params)
// are validated eagerly here; the same validators run again after the merge
// for values that arrive only through the config file.
//
// The second return value is the --config path, consumed by [Resolve] before
// the merge rather than being part of any layer.
func LayerFromFlags(f *pflag.FlagSet, args []string) (Layer, string, error) {
	layer := Layer{
		AccessKey:         stringIfSet(f, "access-key"),
		SecretKey:         stringIfSet(f, "secret-key"),
		Host:              stringIfSet(f, "host"),
		Protocol:          stringIfSet(f, "protocol"),
		CAFile:            stringIfSet(f, "cafile"),
		ApplicationID:     stringIfSet(f, "application-id"),
		FilesDest:         stringIfSet(f, "output-dir"),
		Cwd:               stringIfSet(f, "cwd"),
		RandomizationSeed: stringIfSet(f, "randomization-seed"),
		JscramblerVersion: stringIfSet(f, "jscramblerVersion"),
		SourceMaps:        stringIfSet(f, "source-maps"),
	}

	if len(args) > 0 {
		layer.FilesSrc = args
	}

	if raw := stringIfSet(f, "port"); raw != nil {
		if _, err := ValidatePort(*raw); err != nil {
			return Layer{}, "", err
		}
		layer.Port = raw
	}

	if raw := stringIfSet(f, "code-hardening-threshold"); raw != nil {
		if _, err := ValidateCodeHardeningThreshold(*raw); err != nil {
			return Layer{}, "", err
		}
		layer.CodeHardeningThreshold = raw
	}

	boolFlags := []struct {
		name string
		dst  **bool
	}{
		{"recommended-order", &layer.UseRecommendedOrder},
		{"werror", &layer.Werror},
		{"tolerate-minification", &layer.TolerateMinification},
		{"use-profiling-data", &layer.UseProfilingData},
	}
	for _, bf := range boolFlags {
		raw := stringIfSet(f, bf.name)
		if raw == nil {
			continue
		}
		v, err := ValidateBool("--"+bf.name, *raw)
		if err != nil {
			return Layer{}, "", err
		}
		*bf.dst = &v
	}

	if f.Changed("debugMode") {
		v, _ := f.GetBool("debugMode")
		layer.DebugMode = &v
	}

	if raw := stringIfSet(f, "params"); raw != nil {
		params, err := ParseParamsFlag(*raw)
		if err != nil {
			return Layer{}, "", err
		}
		layer.Params = params
	}

	configPath := ""
	if raw := stringIfSet(f, "config"); raw != nil {
		configPath = *raw
	}

	return layer, configPath, nil
}

// stringIfSet returns the flag value only when the user changed it, nil
// otherwise. An explicitly supplied empty string still counts as set.
func stringIfSet(f *pflag.FlagSet, name string) *string {
	if !f.Changed(name) {
		return nil
	}
	v, err := f.GetString(name)
	if err != nil {
		return nil
	}
	return &v
}
