package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gethiox/intervals/internal/pkg/interval"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTemplateConfig(t *testing.T) {
	cfg, err := ParseConfig(templateConfig)
	require.NoError(t, err)

	assert.Equal(t, Config{
		Intervals: Intervals{DefaultDirection: interval.Ascending},
		Output:    Output{Color: true, NoteColors: true},
	}, cfg)
}

func TestParseConfig(t *testing.T) {
	for _, tc := range []struct {
		name     string
		data     string
		expected Config
		fails    bool
	}{
		{
			name:     "descending",
			data:     "[intervals]\ndefault_direction = dsc\n[output]\ncolor = false\n",
			expected: Config{Intervals: Intervals{DefaultDirection: interval.Descending}},
		},
		{
			name:     "note colors",
			data:     "[intervals]\ndefault_direction = asc\n[output]\ncolor = true\nnote_colors = false\n",
			expected: Config{Output: Output{Color: true}},
		},
		{
			name:     "blank direction",
			data:     "[intervals]\ndefault_direction =\n[output]\ncolor = false\n",
			expected: Config{Intervals: Intervals{DefaultDirection: interval.Ascending}},
		},
		{name: "bad direction", data: "[intervals]\ndefault_direction = up\n[output]\ncolor = true\n", fails: true},
		{name: "bad bool", data: "[intervals]\ndefault_direction = asc\n[output]\ncolor = maybe\n", fails: true},
		{name: "no output", data: "[intervals]\ndefault_direction = asc\n", fails: true},
		{name: "no direction", data: "[intervals]\n[output]\ncolor = true\n", fails: true},
	} {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := ParseConfig([]byte(tc.data))
			if tc.fails {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, cfg)
		})
	}
}

func TestCreateConfigIfNeeded(t *testing.T) {
	path := filepath.Join(t.TempDir(), "intervals.config")

	require.NoError(t, createConfigIfNeeded(path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, templateConfig, data)

	// existing config stays intact
	require.NoError(t, os.WriteFile(path, []byte("custom"), 0o644))
	require.NoError(t, createConfigIfNeeded(path))
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "custom", string(data))

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.config"))
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Equal(t, Config{}, cfg)
}
