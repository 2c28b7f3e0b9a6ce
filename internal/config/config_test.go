package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadOrCreateWritesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, DefaultConfigFileName)

	cfg, err := LoadOrCreate(path)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, DefaultDBName), cfg.DBPath)
	require.Equal(t, filepath.Join(dir, DefaultCacheDirName), cfg.CacheDir)
	require.Empty(t, cfg.User)

	_, err = os.Stat(path)
	require.NoError(t, err, "defaults are written on first load")
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, DefaultConfigFileName)

	in := Config{DBPath: "/tmp/x.db", CacheDir: "/tmp/cache", User: "alice"}
	require.NoError(t, Save(path, in))

	out, err := LoadOrCreate(path)
	require.NoError(t, err)
	require.Equal(t, in, out)
}

func TestLoadBackfillsMissingPaths(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, DefaultConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte("user = \"alice\"\n"), 0o644))

	cfg, err := LoadOrCreate(path)
	require.NoError(t, err)
	require.Equal(t, "alice", cfg.User)
	require.Equal(t, filepath.Join(dir, DefaultDBName), cfg.DBPath)
	require.Equal(t, filepath.Join(dir, DefaultCacheDirName), cfg.CacheDir)
}

func TestLoadRejectsInvalidTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, DefaultConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte("user = [broken"), 0o644))

	_, err := LoadOrCreate(path)
	require.Error(t, err)
}

func TestSaveCreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deep", "nested", DefaultConfigFileName)
	require.NoError(t, Save(path, Config{User: "alice"}))

	_, err := os.Stat(path)
	require.NoError(t, err)
}
