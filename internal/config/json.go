package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/polyguard/protect-cli/models"
)

// fileConfig mirrors the pre-merge shape of a JSON config file. Credentials
// live in a nested "keys" object; every other field sits at the top level.
// Unknown fields are rejected so a typo in the file fails loudly instead of
// being silently ignored.
type fileConfig struct {
	Keys struct {
		AccessKey *string `json:"accessKey"`
		SecretKey *string `json:"secretKey"`
	} `json:"keys"`

	Host          *string     `json:"host"`
	Port          *flexString `json:"port"`
	Protocol      *string     `json:"protocol"`
	CAFile        *string     `json:"cafile"`
	ApplicationID *string     `json:"applicationId"`
	Proxy         *string     `json:"proxy"`

	FilesSrc  []string `json:"filesSrc"`
	FilesDest *string  `json:"filesDest"`
	Cwd       *string  `json:"cwd"`

	UseRecommendedOrder  *bool `json:"useRecommendedOrder"`
	TolerateMinification *bool `json:"tolerateMinification"`
	Werror               *bool `json:"werror"`
	UseProfilingData     *bool `json:"useProfilingData"`
	DebugMode            *bool `json:"debugMode"`

	RandomizationSeed      *string     `json:"randomizationSeed"`
	CodeHardeningThreshold *flexString `json:"codeHardeningThreshold"`
	JscramblerVersion      *string     `json:"jscramblerVersion"`

	ApplicationTypes []string `json:"applicationTypes"`
	Languages        []string `json:"languages"`

	Params []models.Parameter `json:"params"`

	SourceMaps *sourceMapsValue `json:"sourceMaps"`
}

// parseFile loads the config file at path and converts it into a merge
// layer. File-sourced option values are not validated here; the validators
// run once more after the merge.
func parseFile(path string) (Layer, error) {
	f, err := os.Open(path)
	if err != nil {
		return Layer{}, fmt.Errorf("error reading config file: %w", err)
	}
	defer f.Close()

	dec := json.NewDecoder(f)
	dec.DisallowUnknownFields()

	var fc fileConfig
	if err := dec.Decode(&fc); err != nil {
		return Layer{}, fmt.Errorf("error decoding config file %s: %w", path, err)
	}

	layer := Layer{
		AccessKey:              fc.Keys.AccessKey,
		SecretKey:              fc.Keys.SecretKey,
		Host:                   fc.Host,
		Port:                   (*string)(fc.Port),
		Protocol:               fc.Protocol,
		CAFile:                 fc.CAFile,
		ApplicationID:          fc.ApplicationID,
		Proxy:                  fc.Proxy,
		FilesSrc:               fc.FilesSrc,
		FilesDest:              fc.FilesDest,
		Cwd:                    fc.Cwd,
		UseRecommendedOrder:    fc.UseRecommendedOrder,
		TolerateMinification:   fc.TolerateMinification,
		Werror:                 fc.Werror,
		UseProfilingData:       fc.UseProfilingData,
		DebugMode:              fc.DebugMode,
		RandomizationSeed:      fc.RandomizationSeed,
		CodeHardeningThreshold: (*string)(fc.CodeHardeningThreshold),
		JscramblerVersion:      fc.JscramblerVersion,
		ApplicationTypes:       fc.ApplicationTypes,
		Languages:              fc.Languages,
		Params:                 fc.Params,
	}

	if fc.SourceMaps != nil && fc.SourceMaps.id != "" {
		layer.SourceMaps = &fc.SourceMaps.id
	}

	return layer, nil
}

// flexString accepts a JSON string or number, keeping the raw textual form.
// Port and threshold values may legitimately appear either way in a file.
type flexString string

func (s *flexString) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	switch value := v.(type) {
	case string:
		*s = flexString(value)
		return nil
	case float64:
		*s = flexString(strconv.FormatFloat(value, 'f', -1, 64))
		return nil
	default:
		return fmt.Errorf("expected a string or a number, got %s", string(b))
	}
}

// sourceMapsValue accepts either false (source maps not requested) or a
// protection identifier string.
type sourceMapsValue struct {
	id string
}

func (s *sourceMapsValue) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	switch value := v.(type) {
	case string:
		s.id = value
		return nil
	case bool:
		if value {
			return fmt.Errorf("sourceMaps must be false or a protection id string")
		}
		s.id = ""
		return nil
	default:
		return fmt.Errorf("sourceMaps must be false or a protection id string")
	}
}
