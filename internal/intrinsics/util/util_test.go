package util

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandPath(t *testing.T) {
	homeDir, err := os.UserHomeDir()
	require.NoError(t, err)
	t.Setenv("INTRINSIC_NAMES_TEST_DIR", "/tmp/intrinsics")

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty", in: "", want: ""},
		{name: "tilde", in: "~", want: homeDir},
		{name: "tilde prefix", in: "~/config", want: filepath.Join(homeDir, "config")},
		{name: "env var", in: "$INTRINSIC_NAMES_TEST_DIR/config", want: "/tmp/intrinsics/config"},
		{name: "cleaned", in: "/tmp//a/../b", want: "/tmp/b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandPath(tt.in))
		})
	}
}

func TestIsTerminal_NonFile(t *testing.T) {
	assert.False(t, IsTerminal(&bytes.Buffer{}))
}

type sample struct {
	Debug  bool   `json:"debug"`
	Output string `json:"output,omitempty"`
}

func TestSerializeToJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, SerializeToJSON(&buf, sample{Debug: true, Output: "yaml"}))
	assert.JSONEq(t, `{"debug": true, "output": "yaml"}`, buf.String())
}

func TestSerializeToYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, SerializeToYAML(&buf, sample{Debug: true}))
	assert.Equal(t, "debug: true\n", buf.String())
}
