package testutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// SetupSourceDir creates a temporary directory holding one file per entry.
// It returns the absolute path to the temp dir.
// It fails the test immediately on error.
func SetupSourceDir(t *testing.T, files map[string]string) string {
	t.Helper()

	tmpDir := t.TempDir()

	absPath, err := filepath.Abs(tmpDir)
	require.NoError(t, err, "Failed to get absolute path for temp dir")

	for name, content := range files {
		path := filepath.Join(absPath, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755), "Failed to create dir for %s", name)
		require.NoError(t, os.WriteFile(path, []byte(content), 0644), "Failed to write %s", name)
	}

	return absPath
}
