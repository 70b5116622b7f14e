package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/polyguard/protect-cli/models"
)

// ── MergeParams ───────────────────────────────────────────────────────────────

func TestMergeParams_FlagWinsByName(t *testing.T) {
	flagParams := []models.Parameter{
		{Name: "a", Options: map[string]any{"x": 1}},
	}
	fileParams := []models.Parameter{
		{Name: "a", Options: map[string]any{"x": 2}},
		{Name: "b", Options: map[string]any{}},
	}

	merged := MergeParams(flagParams, fileParams)

	require.Len(t, merged, 2)
	assert.Equal(t, "a", merged[0].Name)
	assert.Equal(t, map[string]any{"x": 1}, merged[0].Options)
	assert.Equal(t, "b", merged[1].Name)
}

func TestMergeParams_UnmatchedFlagEntriesAppended(t *testing.T) {
	flagParams := []models.Parameter{
		{Name: "c"},
		{Name: "d"},
	}
	fileParams := []models.Parameter{
		{Name: "a"},
		{Name: "b"},
	}

	merged := MergeParams(flagParams, fileParams)

	names := make([]string, 0, len(merged))
	for _, p := range merged {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{"a", "b", "c", "d"}, names)
}

func TestMergeParams_FileOnly(t *testing.T) {
	fileParams := []models.Parameter{{Name: "b"}, {Name: "a"}}

	merged := MergeParams(nil, fileParams)

	require.Len(t, merged, 2)
	assert.Equal(t, "b", merged[0].Name)
	assert.Equal(t, "a", merged[1].Name)
}

func TestMergeParams_Empty(t *testing.T) {
	assert.Nil(t, MergeParams(nil, nil))
}

func TestMergeParams_Deterministic(t *testing.T) {
	flagParams := []models.Parameter{{Name: "z"}, {Name: "a"}}
	fileParams := []models.Parameter{{Name: "m"}, {Name: "a"}, {Name: "k"}}

	first := MergeParams(flagParams, fileParams)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, MergeParams(flagParams, fileParams))
	}
}

// ── ParseParamsFlag ───────────────────────────────────────────────────────────

func TestParseParamsFlag(t *testing.T) {
	tests := []struct {
		name        string
		raw         string
		expected    []string
		expectError bool
	}{
		{
			name:     "single entry with options",
			raw:      `[{"name":"stringSplitting","options":{"freq":0.5}}]`,
			expected: []string{"stringSplitting"},
		},
		{
			name:     "duplicate keeps first",
			raw:      `[{"name":"a","options":{"x":1}},{"name":"a","options":{"x":2}}]`,
			expected: []string{"a"},
		},
		{name: "not json", raw: "stringSplitting", expectError: true},
		{name: "object instead of array", raw: `{"name":"a"}`, expectError: true},
		{name: "entry without name", raw: `[{"options":{}}]`, expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params, err := ParseParamsFlag(tt.raw)
			if tt.expectError {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			names := make([]string, 0, len(params))
			for _, p := range params {
				names = append(names, p.Name)
			}
			assert.Equal(t, tt.expected, names)
		})
	}
}

func TestParseParamsFlag_KeepsFirstDuplicateOptions(t *testing.T) {
	params, err := ParseParamsFlag(`[{"name":"a","options":{"x":1}},{"name":"a","options":{"x":2}}]`)
	require.NoError(t, err)
	require.Len(t, params, 1)
	assert.Equal(t, map[string]any{"x": float64(1)}, params[0].Options)
}
