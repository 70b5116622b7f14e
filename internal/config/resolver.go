// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"reflect"

	"dario.cat/mergo"
)

// resolver collects the configuration layers and produces the final merged
// Config. Layers are merged in precedence order: a later layer only fills
// fields every earlier layer left unset.
type resolver struct {
	flags    Layer
	file     Layer
	defaults Layer
	err      error
}

// Resolve merges the flag layer, the optional config file at configPath
// (empty path means no file) and the built-in defaults into one validated,
// immutable Config.
func Resolve(flagLayer Layer, configPath string) (*Config, error) {
	return newResolver().
		withFlags(flagLayer).
		withFile(configPath).
		withDefaults(Defaults()).
		resolve()
}

func newResolver() *resolver {
	return &resolver{}
}

func (r *resolver) withFlags(l Layer) *resolver {
	r.flags = l
	return r
}

func (r *resolver) withFile(path string) *resolver {
	if path == "" {
		return r
	}

	layer, err := parseFile(path)
	if err != nil {
		r.err = err
		return r
	}

	r.file = layer
	return r
}

func (r *resolver) withDefaults(l Layer) *resolver {
	r.defaults = l
	return r
}

func (r *resolver) resolve() (*Config, error) {
	if r.err != nil {
		return nil, fmt.Errorf("error building config: %w", r.err)
	}

	merged := r.flags
	for _, layer := range []Layer{r.file, r.defaults} {
		if err := mergo.Merge(&merged, layer, mergo.WithTransformers(fillNilTransformer{})); err != nil {
			return nil, fmt.Errorf("error merging config layers: %w", err)
		}
	}

	// Params are keyed by name across layers, which plain struct merging
	// cannot express.
	merged.Params = MergeParams(r.flags.Params, r.file.Params)

	return finalize(merged)
}

// fillNilTransformer gives mergo exact fill-if-nil semantics for pointer
// fields: a nil destination pointer takes the source pointer, a non-nil one
// is left alone even when it points at a zero value. Without it mergo would
// dive into the pointed-to values and treat an explicit false or "0" as
// empty.
type fillNilTransformer struct{}

func (fillNilTransformer) Transformer(t reflect.Type) func(dst, src reflect.Value) error {
	if t.Kind() != reflect.Ptr {
		return nil
	}
	return func(dst, src reflect.Value) error {
		if dst.CanSet() && dst.IsNil() && !src.IsNil() {
			dst.Set(src)
		}
		return nil
	}
}

// finalize parses and validates the merged layer into the resolved Config.
// Raw values that skipped eager flag validation (because they came from the
// config file) are validated here; the version format check always runs
// here, after the merge, whichever layer won.
func finalize(l Layer) (*Config, error) {
	cfg := &Config{
		AccessKey:         deref(l.AccessKey),
		SecretKey:         deref(l.SecretKey),
		Host:              deref(l.Host),
		Protocol:          deref(l.Protocol),
		CAFile:            deref(l.CAFile),
		ApplicationID:     deref(l.ApplicationID),
		Proxy:             deref(l.Proxy),
		FilesSrc:          l.FilesSrc,
		FilesDest:         deref(l.FilesDest),
		Cwd:               deref(l.Cwd),
		RandomizationSeed: deref(l.RandomizationSeed),
		JscramblerVersion: deref(l.JscramblerVersion),
		ApplicationTypes:  l.ApplicationTypes,
		Languages:         l.Languages,
		Params:            l.Params,
		SourceMaps:        deref(l.SourceMaps),

		UseRecommendedOrder:  derefBool(l.UseRecommendedOrder),
		TolerateMinification: derefBool(l.TolerateMinification),
		UseProfilingData:     derefBool(l.UseProfilingData),
		DebugMode:            derefBool(l.DebugMode),
		Werror:               l.Werror,
	}

	if l.Port != nil {
		port, err := ValidatePort(*l.Port)
		if err != nil {
			return nil, err
		}
		cfg.Port = port
	}

	if l.CodeHardeningThreshold != nil {
		bytes, err := ValidateCodeHardeningThreshold(*l.CodeHardeningThreshold)
		if err != nil {
			return nil, err
		}
		cfg.CodeHardeningThreshold = &bytes
	}

	if cfg.JscramblerVersion != "" {
		if err := ValidateVersion(cfg.JscramblerVersion); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefBool(b *bool) bool {
	return b != nil && *b
}
