package config

import (
	"encoding/json"

	"github.com/polyguard/protect-cli/models"
)

// ParseParamsFlag decodes the --params flag value, a JSON array of
// {"name": ..., "options": {...}} entries. Entry names must be non-empty;
// duplicate names within the flag keep the first occurrence.
func ParseParamsFlag(raw string) ([]models.Parameter, error) {
	var params []models.Parameter
	if err := json.Unmarshal([]byte(raw), &params); err != nil {
		return nil, newValidationError(
			"invalid params %q: expected a JSON array such as [{\"name\":\"stringSplitting\",\"options\":{}}]", raw)
	}

	seen := make(map[string]struct{}, len(params))
	out := params[:0]
	for _, p := range params {
		if p.Name == "" {
			return nil, newValidationError("invalid params: every entry needs a non-empty name")
		}
		if _, dup := seen[p.Name]; dup {
			continue
		}
		seen[p.Name] = struct{}{}
		out = append(out, p)
	}
	return out, nil
}

// MergeParams reconciles protection parameters supplied via flags with the
// ones from the config file. A flag entry replaces the file entry with the
// same name in place; remaining file entries keep their original relative
// order, and flag entries that matched nothing are appended in flag order.
// The result is deterministic for identical inputs.
func MergeParams(flagParams, fileParams []models.Parameter) []models.Parameter {
	if len(flagParams) == 0 && len(fileParams) == 0 {
		return nil
	}

	byName := make(map[string]models.Parameter, len(flagParams))
	for _, p := range flagParams {
		if _, dup := byName[p.Name]; !dup {
			byName[p.Name] = p
		}
	}

	merged := make([]models.Parameter, 0, len(flagParams)+len(fileParams))
	taken := make(map[string]struct{}, len(flagParams)+len(fileParams))
	for _, p := range fileParams {
		if _, dup := taken[p.Name]; dup {
			continue
		}
		taken[p.Name] = struct{}{}
		if override, ok := byName[p.Name]; ok {
			merged = append(merged, override)
			continue
		}
		merged = append(merged, p)
	}

	for _, p := range flagParams {
		if _, dup := taken[p.Name]; dup {
			continue
		}
		taken[p.Name] = struct{}{}
		merged = append(merged, p)
	}

	return merged
}
