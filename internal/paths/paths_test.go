package paths

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAppDataDir_ReturnsNonEmpty(t *testing.T) {
	dir := AppDataDir()
	require.NotEmpty(t, dir)
	require.NotEqual(t, ".", dir)
}

func TestAppDataDir_ContainsAppName(t *testing.T) {
	dir := AppDataDir()
	require.True(t, strings.Contains(strings.ToLower(dir), "moray"),
		"AppDataDir should contain 'moray': %s", dir)
}

func TestAppLocalDataDir_EndsWithAppName(t *testing.T) {
	dir := AppLocalDataDir()
	require.NotEmpty(t, dir)
	require.True(t, strings.HasSuffix(dir, "moray"),
		"AppLocalDataDir should end with 'moray': %s", dir)
}

func TestAppLocalDataDir_Platform(t *testing.T) {
	dir := AppLocalDataDir()

	switch runtime.GOOS {
	case "darwin":
		require.Contains(t, dir, "Library")
		require.Contains(t, dir, "Application Support")
	case "linux":
		require.True(t, strings.Contains(dir, ".local/share") ||
			os.Getenv("XDG_DATA_HOME") != "",
			"Linux path should use XDG_DATA_HOME or .local/share: %s", dir)
	case "windows":
		require.True(t, strings.Contains(dir, "AppData") ||
			strings.Contains(dir, "Local"),
			"Windows path should contain AppData: %s", dir)
	}
}

func TestConfigFilePath(t *testing.T) {
	path, err := ConfigFilePath()
	require.NoError(t, err)
	require.Equal(t, ".morayrc", filepath.Base(path))
}

func TestLogFilePath(t *testing.T) {
	require.Equal(t, "moray.log", filepath.Base(LogFilePath()))
}

func TestCatalogDBPath(t *testing.T) {
	require.Equal(t, "catalog.db", filepath.Base(CatalogDBPath()))
}
