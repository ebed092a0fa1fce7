package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRotateLogs(t *testing.T) {
	dir := t.TempDir()
	base := time.Now().Add(-time.Hour)
	for i := range 5 {
		path := filepath.Join(dir, fmt.Sprintf("%d.log", i))
		require.NoError(t, os.WriteFile(path, nil, 0o644))
		stamp := base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, os.Chtimes(path, stamp, stamp))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), nil, 0o644))

	require.NoError(t, rotateLogs(dir, 3))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	// the oldest logs go, leaving room for the next one
	assert.ElementsMatch(t, []string{"3.log", "4.log", "notes.txt"}, names)
}

func TestInitialize(t *testing.T) {
	t.Setenv("PARAMDEX_DEBUG", "")
	t.Setenv("PARAMDEX_DEBUG_FILE", "")
	t.Cleanup(func() { _, _ = Initialize(false, "", DefaultMaxLogFiles) })

	t.Run("disabled", func(t *testing.T) {
		path, err := Initialize(false, "", DefaultMaxLogFiles)
		require.NoError(t, err)
		assert.Empty(t, path)
	})

	t.Run("custom file", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "logs", "debug.log")

		path, err := Initialize(false, file, DefaultMaxLogFiles)
		require.NoError(t, err)
		assert.Equal(t, file, path)

		Logger.Info("hello", "table", "Weapons")
		data, err := os.ReadFile(file)
		require.NoError(t, err)
		assert.Contains(t, string(data), `"table":"Weapons"`)
	})
}
