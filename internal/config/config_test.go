package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	orig, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(orig) })
}

func TestInitializeAndLoad(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Initialize("http://localhost:8080", "MI_Restricted_Substances")
	require.NoError(t, err)

	cfg.Username = "user"
	cfg.RateLimit = 5
	require.NoError(t, cfg.Save())

	loaded, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080", loaded.ServiceURL)
	assert.Equal(t, "MI_Restricted_Substances", loaded.DatabaseKey)
	assert.Equal(t, "user", loaded.Username)
	assert.Equal(t, 5.0, loaded.RateLimit)
}

func TestInitialize_AlreadyExists(t *testing.T) {
	chdir(t, t.TempDir())

	_, err := Initialize("http://localhost:8080", "db")
	require.NoError(t, err)

	_, err = Initialize("http://localhost:8080", "db")
	assert.Error(t, err)
}

func TestFindRoot_WalksUp(t *testing.T) {
	root := t.TempDir()
	chdir(t, root)

	_, err := Initialize("http://localhost:8080", "db")
	require.NoError(t, err)

	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0755))
	require.NoError(t, os.Chdir(nested))

	found, err := FindRoot()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, BomcheckDir), found)
}

func TestFindRoot_NotAWorkspace(t *testing.T) {
	chdir(t, t.TempDir())

	_, err := FindRoot()
	assert.Error(t, err)
}

func TestDatabasePath(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Initialize("http://localhost:8080", "db")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(cfg.Path(), DatabaseFile), cfg.DatabasePath())
}

func TestHasTableOverrides(t *testing.T) {
	cfg := &Config{}
	assert.False(t, cfg.HasTableOverrides())

	cfg.SubstancesTable = "Custom Substances"
	assert.True(t, cfg.HasTableOverrides())
}
