package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rileyhilliard/pagedots/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshal(t *testing.T) {
	data, err := Marshal(DefaultConfig())
	require.NoError(t, err)

	out := string(data)
	assert.Contains(t, out, "pages: 5\n")
	assert.Contains(t, out, "collapse_duration: 250ms\n")
	assert.Contains(t, out, "fill_durations:\n  - 2.5s\n")
	assert.Contains(t, out, "colors:\n  page: \"8\"\n  current: \"2\"\n")
	assert.NotContains(t, out, "log_file")
}

func TestWrite_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFileName)
	cfg := DefaultConfig()
	cfg.Pages = 9
	cfg.FillDurations = []time.Duration{time.Second, 3 * time.Second}

	require.NoError(t, Write(path, cfg, false))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestWrite_RefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFileName)
	writeFile(t, path, "pages: 2\n")

	err := Write(path, DefaultConfig(), false)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))

	require.NoError(t, Write(path, DefaultConfig(), true))
	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 5, loaded.Pages)
}

func TestSetValue(t *testing.T) {
	original := `# my dots
pages: 3 # three is enough
autoplay: true
`
	tests := []struct {
		name   string
		key    string
		value  string
		verify func(t *testing.T, cfg *Config, raw string)
	}{
		{
			name:  "existing key keeps comments",
			key:   "pages",
			value: "6",
			verify: func(t *testing.T, cfg *Config, raw string) {
				assert.Equal(t, 6, cfg.Pages)
				assert.Contains(t, raw, "# my dots")
				assert.Contains(t, raw, "# three is enough")
			},
		},
		{
			name:  "new top-level key",
			key:   "collapse_duration",
			value: "1s",
			verify: func(t *testing.T, cfg *Config, raw string) {
				assert.Equal(t, time.Second, cfg.CollapseDuration)
				assert.Equal(t, 3, cfg.Pages)
			},
		},
		{
			name:  "nested key",
			key:   "colors.current",
			value: "#ff0000",
			verify: func(t *testing.T, cfg *Config, raw string) {
				assert.Equal(t, "#ff0000", cfg.Colors.Current)
				assert.Equal(t, "8", cfg.Colors.Page)
			},
		},
		{
			name:  "list key",
			key:   "fill_durations",
			value: "1s, 2s,500ms",
			verify: func(t *testing.T, cfg *Config, raw string) {
				assert.Equal(t, []time.Duration{time.Second, 2 * time.Second, 500 * time.Millisecond}, cfg.FillDurations)
			},
		},
		{
			name:  "bool key",
			key:   "autoplay",
			value: "false",
			verify: func(t *testing.T, cfg *Config, raw string) {
				assert.False(t, cfg.AutoPlay)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), ConfigFileName)
			writeFile(t, path, original)

			require.NoError(t, SetValue(path, tt.key, tt.value))

			raw, err := os.ReadFile(path)
			require.NoError(t, err)
			cfg, err := Load(path)
			require.NoError(t, err)
			tt.verify(t, cfg, string(raw))
		})
	}
}

func TestSetValue_Rejects(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"unknown key", "speed", "fast"},
		{"invalid value", "height", "0"},
		{"bad color", "colors.page", "purple"},
		{"wrong type", "pages", "many"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), ConfigFileName)
			writeFile(t, path, "pages: 3\n")

			err := SetValue(path, tt.key, tt.value)
			require.Error(t, err)
			assert.True(t, errors.IsCode(err, errors.ErrConfig))

			raw, readErr := os.ReadFile(path)
			require.NoError(t, readErr)
			assert.Equal(t, "pages: 3\n", string(raw), "file is untouched on error")
		})
	}
}

func TestSetValue_MissingFile(t *testing.T) {
	err := SetValue(filepath.Join(t.TempDir(), "missing.yaml"), "pages", "2")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrIO))
}
