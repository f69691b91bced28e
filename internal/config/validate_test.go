package config

import (
	"testing"
	"time"

	"github.com/rileyhilliard/pagedots/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "defaults are valid", mutate: func(c *Config) {}},
		{name: "zero pages allowed", mutate: func(c *Config) { c.Pages = 0 }},
		{name: "zero durations allowed", mutate: func(c *Config) { c.CollapseDuration, c.ExpandDuration = 0, 0 }},
		{name: "hex colors", mutate: func(c *Config) { c.Colors.Page, c.Colors.Current = "#abc", "#A0B1C2" }},
		{
			name:    "future version",
			mutate:  func(c *Config) { c.Version = CurrentConfigVersion + 1 },
			wantErr: "from the future",
		},
		{
			name:    "negative pages",
			mutate:  func(c *Config) { c.Pages = -1 },
			wantErr: "pages can't be negative",
		},
		{
			name:    "negative spacing",
			mutate:  func(c *Config) { c.Spacing = -2 },
			wantErr: "spacing can't be negative",
		},
		{
			name:    "zero height",
			mutate:  func(c *Config) { c.Height = 0 },
			wantErr: "height must be at least 1",
		},
		{
			name:    "negative collapse",
			mutate:  func(c *Config) { c.CollapseDuration = -time.Second },
			wantErr: "collapse_duration",
		},
		{
			name:    "negative expand",
			mutate:  func(c *Config) { c.ExpandDuration = -time.Second },
			wantErr: "expand_duration",
		},
		{
			name:    "empty fill durations",
			mutate:  func(c *Config) { c.FillDurations = nil },
			wantErr: "at least one duration",
		},
		{
			name:    "zero fill duration",
			mutate:  func(c *Config) { c.FillDurations = []time.Duration{time.Second, 0} },
			wantErr: "fill_durations[1]",
		},
		{
			name:    "bad page color",
			mutate:  func(c *Config) { c.Colors.Page = "gray" },
			wantErr: "colors.page",
		},
		{
			name:    "bad current color",
			mutate:  func(c *Config) { c.Colors.Current = "256" },
			wantErr: "colors.current",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := Validate(cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.True(t, errors.IsCode(err, errors.ErrConfig))
		})
	}
}

func TestValidate_Nil(t *testing.T) {
	assert.Error(t, Validate(nil))
}

func TestValidColor(t *testing.T) {
	valid := []string{"0", "8", "255", "#fff", "#00ff88"}
	invalid := []string{"", "-1", "256", "red", "#ff", "#ggg", "#12345", "#1234567", "fff"}

	for _, c := range valid {
		assert.True(t, ValidColor(c), c)
	}
	for _, c := range invalid {
		assert.False(t, ValidColor(c), c)
	}
}
