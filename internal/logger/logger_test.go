package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupWritesJSONLines(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")

	l, cleanup, err := Setup(Config{Dir: dir, Debug: true})
	require.NoError(t, err)

	l.Info("snapshot.saved", "contacts", 3)
	require.NoError(t, cleanup())

	data, err := os.ReadFile(filepath.Join(dir, FileName))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2, "init record plus one entry")

	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &rec))
	assert.Equal(t, "snapshot.saved", rec["msg"])
	assert.EqualValues(t, 3, rec["contacts"])
}

func TestNewRespectsLevel(t *testing.T) {
	var buf bytes.Buffer

	l := New(&buf, false)
	l.Debug("hidden")
	l.Info("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestSetupFailureDiscards(t *testing.T) {
	file := filepath.Join(t.TempDir(), "not-a-dir")
	require.NoError(t, os.WriteFile(file, nil, 0o644))

	l, cleanup, err := Setup(Config{Dir: file})
	assert.Error(t, err)
	require.NotNil(t, l)
	l.Info("dropped")
	assert.NoError(t, cleanup())
}

func TestOrDiscard(t *testing.T) {
	assert.NotNil(t, OrDiscard(nil))
	l := Discard()
	assert.Same(t, l, OrDiscard(l))
}
