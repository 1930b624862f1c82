// internal/store/kv_store_test.go
package store_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"shopadmin/internal/domain"
	"shopadmin/internal/store"
)

func TestKVFileStore_SetGet_OK(t *testing.T) {
	home := t.TempDir()
	var kv domain.KeyValueStore = store.NewKVFileStore(home)

	_, ok, err := kv.Get("adminToken")
	require.NoError(t, err)
	require.False(t, ok, "fresh store should be empty")

	require.NoError(t, kv.Set("adminToken", "tok-1"))

	got, ok, err := kv.Get("adminToken")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "tok-1", got)
}

func TestKVFileStore_SurvivesReopen(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, store.NewKVFileStore(home).Set("adminToken", "persisted"))

	got, ok, err := store.NewKVFileStore(home).Get("adminToken")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "persisted", got)
}

func TestKVFileStore_Remove(t *testing.T) {
	home := t.TempDir()
	kv := store.NewKVFileStore(home)

	require.NoError(t, kv.Remove("adminToken"), "removing a missing key is not an error")
	require.NoError(t, kv.Set("adminToken", "tok"))
	require.NoError(t, kv.Set("other", "keep"))
	require.NoError(t, kv.Remove("adminToken"))

	_, ok, err := kv.Get("adminToken")
	require.NoError(t, err)
	require.False(t, ok)

	v, ok, err := kv.Get("other")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "keep", v)
}

func TestKVFileStore_FileMode(t *testing.T) {
	home := t.TempDir()
	kv := store.NewKVFileStore(home)
	require.NoError(t, kv.Set("adminToken", "tok"))

	info, err := os.Stat(kv.Path())
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	leftovers, err := filepath.Glob(filepath.Join(home, "*.tmp-*"))
	require.NoError(t, err)
	require.Empty(t, leftovers)
}

func TestSealedKVFileStore_RoundTrip(t *testing.T) {
	home := t.TempDir()
	kv := store.NewSealedKVFileStore(home, "correct horse")
	require.NoError(t, kv.Set("adminToken", "secret-token"))

	raw, err := os.ReadFile(kv.Path())
	require.NoError(t, err)
	require.NotContains(t, string(raw), "secret-token")

	got, ok, err := store.NewSealedKVFileStore(home, "correct horse").Get("adminToken")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "secret-token", got)
}

func TestSealedKVFileStore_WrongPassphrase_Fails(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, store.NewSealedKVFileStore(home, "correct").Set("adminToken", "tok"))

	_, _, err := store.NewSealedKVFileStore(home, "wrong").Get("adminToken")
	require.ErrorIs(t, err, store.ErrWrongPassphrase)
}

func TestMemoryStore(t *testing.T) {
	kv := store.NewMemoryStore()
	require.NoError(t, kv.Set("k", "v"))
	v, ok, err := kv.Get("k")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "v", v)

	require.NoError(t, kv.Remove("k"))
	_, ok, _ = kv.Get("k")
	require.False(t, ok)
}
