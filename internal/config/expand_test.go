package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpand(t *testing.T) {
	t.Setenv("USER", "tester")
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty string", "", ""},
		{"HOME expands", "${HOME}/logs/pagedots.log", home + "/logs/pagedots.log"},
		{"USER expands", "/tmp/${USER}.log", "/tmp/tester.log"},
		{"PROJECT expands", "/tmp/${PROJECT}.log", "/tmp/" + getProject() + ".log"},
		{"tilde unchanged", "~/pagedots.log", "~/pagedots.log"},
		{"absolute path unchanged", "/var/log/pagedots.log", "/var/log/pagedots.log"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Expand(tt.input))
		})
	}
}

func TestExpandTilde(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, "", ExpandTilde(""))
	assert.Equal(t, home, ExpandTilde("~"))
	assert.Equal(t, filepath.Join(home, "pagedots.log"), ExpandTilde("~/pagedots.log"))
	assert.Equal(t, "~other/pagedots.log", ExpandTilde("~other/pagedots.log"))
	assert.Equal(t, "/abs/path", ExpandTilde("/abs/path"))
}

func TestGetUser_Fallbacks(t *testing.T) {
	t.Setenv("USER", "")
	t.Setenv("LOGNAME", "logname-user")
	assert.Equal(t, "logname-user", getUser())

	t.Setenv("LOGNAME", "")
	t.Setenv("USERNAME", "")
	assert.Equal(t, "user", getUser())
}
