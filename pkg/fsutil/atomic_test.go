package fsutil_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/docgate/pkg/fsutil"
)

func TestWriteAtomic(t *testing.T) {
	t.Parallel()

	t.Run("creates file with default mode", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), ".docgate.yml")
		require.NoError(t, fsutil.WriteAtomic(context.Background(), path, []byte("format: text\n"), 0))

		got, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "format: text\n", string(got))

		stat, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, fsutil.DefaultFileMode, stat.Mode().Perm())
	})

	t.Run("replaces existing content and leaves no temp files", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("old"), 0o600))

		require.NoError(t, fsutil.WriteAtomic(context.Background(), path, []byte("new"), 0o600))

		got, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "new", string(got))

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})

	t.Run("missing directory", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "missing", "config.yaml")
		err := fsutil.WriteAtomic(context.Background(), path, []byte("x"), 0)
		assert.ErrorIs(t, err, fsutil.ErrNotFound)
	})

	t.Run("cancelled context writes nothing", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		path := filepath.Join(t.TempDir(), "config.yaml")
		require.ErrorIs(t, fsutil.WriteAtomic(ctx, path, []byte("x"), 0), context.Canceled)

		_, err := os.Stat(path)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestWriteAtomicIfChanged(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")
	ctx := context.Background()

	written, err := fsutil.WriteAtomicIfChanged(ctx, path, []byte("a"), 0)
	require.NoError(t, err)
	assert.True(t, written, "absent file is written")

	written, err = fsutil.WriteAtomicIfChanged(ctx, path, []byte("a"), 0)
	require.NoError(t, err)
	assert.False(t, written, "identical content is skipped")

	written, err = fsutil.WriteAtomicIfChanged(ctx, path, []byte("b"), 0)
	require.NoError(t, err)
	assert.True(t, written, "different content is written")

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "b", string(got))
}
