package log

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetLevel(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() {
		SetOutput(os.Stderr)
		_ = SetLevel("warn")
	})

	require.NoError(t, SetLevel("warn"))
	Debug("hidden")
	Warn("shown", "form", "portal address")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), `form="portal address"`)

	buf.Reset()
	require.NoError(t, SetLevel("DEBUG"))
	Debug("now visible")
	assert.Contains(t, buf.String(), "now visible")

	assert.Error(t, SetLevel("loud"))
}

func TestSetFileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nmskit_debug.log")
	require.NoError(t, SetFileOutput(path))
	t.Cleanup(func() { SetOutput(os.Stderr) })

	Error("decode failed", "input", "F0380256EC6B")
	Close()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "decode failed")
	assert.Contains(t, string(data), "F0380256EC6B")
	assert.Regexp(t, `time=\d{4}/\d{2}/\d{2} `, string(data))
}
