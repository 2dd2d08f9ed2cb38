package blobstore

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hupe1980/peakjoin/internal/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStore_Lifecycle(t *testing.T) {
	tmpDir := t.TempDir()
	store := NewLocalStore(tmpDir)

	ctx := context.Background()

	// 1. Put a blob
	blobName := "runs/run-001/peaks.json"
	data := []byte(`{"id":["p1","p2"],"mz":[100.5,200.25]}`)

	require.NoError(t, store.Put(ctx, blobName, data))

	// Verify file exists on disk
	expectedPath := filepath.Join(tmpDir, "runs", "run-001", "peaks.json")
	_, err := os.Stat(expectedPath)
	require.NoError(t, err)

	// 2. Get
	got, err := store.Get(ctx, blobName)
	require.NoError(t, err)
	require.Equal(t, data, got)

	// 3. Exists
	ok, err := store.Exists(ctx, blobName)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = store.Exists(ctx, "runs/run-001/missing.json")
	require.NoError(t, err)
	require.False(t, ok)

	// 4. Overwrite replaces content
	updated := []byte(`{"id":["p1"],"mz":[100.5]}`)
	require.NoError(t, store.Put(ctx, blobName, updated))

	got, err = store.Get(ctx, blobName)
	require.NoError(t, err)
	require.Equal(t, updated, got)

	// 5. List
	blobName2 := "runs/run-002/peaks.json"
	require.NoError(t, store.Put(ctx, blobName2, data))

	names, err := store.List(ctx, "runs/")
	require.NoError(t, err)
	require.Equal(t, []string{blobName, blobName2}, names)

	names, err = store.List(ctx, "runs/run-002/")
	require.NoError(t, err)
	require.Equal(t, []string{blobName2}, names)

	// 6. Delete
	require.NoError(t, store.Delete(ctx, blobName))

	namesAfter, err := store.List(ctx, "runs/")
	require.NoError(t, err)
	require.Equal(t, []string{blobName2}, namesAfter)

	_, err = store.Get(ctx, blobName)
	require.ErrorIs(t, err, ErrNotFound)

	// Deleting again is not an error
	require.NoError(t, store.Delete(ctx, blobName))
}

func TestLocalStore_PutFaults(t *testing.T) {
	ctx := context.Background()

	faults := map[string]fs.Fault{
		"create": {Create: true},
		"write":  {Write: true},
		"sync":   {Sync: true},
		"close":  {Close: true},
		"rename": {Rename: true},
	}

	for name, fault := range faults {
		t.Run(name, func(t *testing.T) {
			tmpDir := t.TempDir()
			store := NewLocalStore(tmpDir)

			// Seed a valid blob through the healthy path first.
			require.NoError(t, store.Put(ctx, "peaks.json", []byte("old")))

			ffs := fs.NewFaultyFS(nil)
			ffs.Fail(fault)
			store.fsys = ffs

			err := store.Put(ctx, "peaks.json", []byte("new"))
			require.ErrorIs(t, err, fs.ErrInjected)

			// A failed write never replaces the existing blob.
			store.fsys = fs.Default
			got, err := store.Get(ctx, "peaks.json")
			require.NoError(t, err)
			assert.Equal(t, []byte("old"), got)

			// No temporary files are left behind.
			entries, err := os.ReadDir(tmpDir)
			require.NoError(t, err)
			for _, e := range entries {
				assert.False(t, strings.HasPrefix(e.Name(), ".put-"),
					"leftover temp file %s", e.Name())
			}
		})
	}
}

func TestLocalStore_ListMissingRoot(t *testing.T) {
	store := NewLocalStore(filepath.Join(t.TempDir(), "does-not-exist"))

	names, err := store.List(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestMemoryStore_Lifecycle(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	data := []byte("mz,intensity\n100.5,2000\n")
	require.NoError(t, store.Put(ctx, "a/peaks.csv", data))
	require.NoError(t, store.Put(ctx, "b/peaks.csv", data))

	got, err := store.Get(ctx, "a/peaks.csv")
	require.NoError(t, err)
	require.Equal(t, data, got)

	// Mutating the returned slice must not affect the stored blob.
	got[0] = 'X'
	again, err := store.Get(ctx, "a/peaks.csv")
	require.NoError(t, err)
	require.Equal(t, data, again)

	names, err := store.List(ctx, "a/")
	require.NoError(t, err)
	require.Equal(t, []string{"a/peaks.csv"}, names)

	names, err = store.List(ctx, "")
	require.NoError(t, err)
	require.Equal(t, []string{"a/peaks.csv", "b/peaks.csv"}, names)

	ok, err := store.Exists(ctx, "b/peaks.csv")
	require.NoError(t, err)
	require.True(t, ok)

	require.NoError(t, store.Delete(ctx, "b/peaks.csv"))

	_, err = store.Get(ctx, "b/peaks.csv")
	require.ErrorIs(t, err, ErrNotFound)

	ok, err = store.Exists(ctx, "b/peaks.csv")
	require.NoError(t, err)
	require.False(t, ok)
}
