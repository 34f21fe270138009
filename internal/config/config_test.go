package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nmskit.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
output:
  number_format: hex
  colour: never
ui:
  theme: atlas
  initial_code: HUKYA:046A:0081:0D6D
log:
  file: nmskit_debug.log
  level: debug
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, FormatHex, cfg.Output.NumberFormat)
	assert.Equal(t, ColourNever, cfg.Output.Colour)
	assert.Equal(t, ":", cfg.Output.Separator, "unset keys keep defaults")
	assert.Equal(t, "signed", cfg.Output.CoordinateSpace)
	assert.Equal(t, "atlas", cfg.UI.Theme)
	assert.Equal(t, "HUKYA:046A:0081:0D6D", cfg.UI.InitialCode)
	assert.Equal(t, "nmskit_debug.log", cfg.Log.File)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{"bad yaml", "output: [", "parsing config"},
		{"bad number format", "output:\n  number_format: octal\n", "output.number_format"},
		{"bad space", "output:\n  coordinate_space: polar\n", "output.coordinate_space"},
		{"bad colour", "output:\n  colour: sometimes\n", "output.colour"},
		{"empty separator", "output:\n  separator: \"\"\n", "output.separator"},
		{"bad level", "log:\n  level: chatty\n", "log.level"},
		{"bad theme", "ui:\n  theme: neon\n", "ui.theme"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
