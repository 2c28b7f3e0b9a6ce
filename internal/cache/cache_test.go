package cache

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOpenRejectsEmptyDir(t *testing.T) {
	_, err := Open("")
	require.Error(t, err)
}

func TestOpenCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "cache")
	_, err := Open(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	require.True(t, info.IsDir())
}

func TestSetGetDelete(t *testing.T) {
	s, err := Open(t.TempDir())
	require.NoError(t, err)

	_, ok, err := s.Get("selfbank_data_alice")
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, s.Set("selfbank_data_alice", []byte(`{"v":1}`)))
	data, ok, err := s.Get("selfbank_data_alice")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, []byte(`{"v":1}`), data)

	require.NoError(t, s.Delete("selfbank_data_alice"))
	_, ok, err = s.Get("selfbank_data_alice")
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, s.Delete("selfbank_data_alice"), "deleting a missing key is fine")
}

func TestScopesNeverCollide(t *testing.T) {
	s, err := Open(t.TempDir())
	require.NoError(t, err)

	require.NotEqual(t, Key("selfbank_data", "alice"), Key("selfbank_data", "bob"))

	require.NoError(t, s.Set(Key("selfbank_data", "alice"), []byte("alice state")))
	require.NoError(t, s.Set(Key("selfbank_data", "bob"), []byte("bob state")))

	data, ok, err := s.Get(Key("selfbank_data", "alice"))
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, []byte("alice state"), data)
}

func TestSetLeavesNoTempFile(t *testing.T) {
	dir := t.TempDir()
	s, err := Open(dir)
	require.NoError(t, err)

	require.NoError(t, s.Set("k", []byte("v")))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, "k.json", entries[0].Name())
}

func TestOverwrite(t *testing.T) {
	s, err := Open(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, s.Set("k", []byte("one")))
	require.NoError(t, s.Set("k", []byte("two")))

	data, ok, err := s.Get("k")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, []byte("two"), data)
}
