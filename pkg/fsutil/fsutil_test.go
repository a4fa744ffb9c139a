package fsutil_test

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/docgate/pkg/fsutil"
)

func TestReadFile(t *testing.T) {
	t.Parallel()

	t.Run("reads content and metadata", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "doc.md")
		require.NoError(t, os.WriteFile(path, []byte("# Title\n"), 0o644))

		got, info, err := fsutil.ReadFile(context.Background(), path)
		require.NoError(t, err)

		assert.Equal(t, "# Title\n", string(got))
		assert.Equal(t, path, info.Path)
		assert.Equal(t, int64(8), info.Size)
		assert.Equal(t, os.FileMode(0o644), info.Mode.Perm())
	})

	t.Run("missing file is ErrNotFound", func(t *testing.T) {
		t.Parallel()

		_, _, err := fsutil.ReadFile(context.Background(), filepath.Join(t.TempDir(), "nope.md"))
		require.Error(t, err)
		assert.ErrorIs(t, err, fsutil.ErrNotFound)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("directory is ErrIsDirectory", func(t *testing.T) {
		t.Parallel()

		_, _, err := fsutil.ReadFile(context.Background(), t.TempDir())
		assert.ErrorIs(t, err, fsutil.ErrIsDirectory)
	})

	t.Run("unreadable file is ErrPermissionDenied", func(t *testing.T) {
		t.Parallel()

		if runtime.GOOS == "windows" || os.Geteuid() == 0 {
			t.Skip("permission bits are not enforced here")
		}

		path := filepath.Join(t.TempDir(), "secret.md")
		require.NoError(t, os.WriteFile(path, []byte("x"), 0o000))

		_, _, err := fsutil.ReadFile(context.Background(), path)
		assert.ErrorIs(t, err, fsutil.ErrPermissionDenied)
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, _, err := fsutil.ReadFile(ctx, "whatever.md")
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "present.yml")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	ok, err := fsutil.Exists(path)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = fsutil.Exists(dir)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = fsutil.Exists(filepath.Join(dir, "absent.yml"))
	require.NoError(t, err)
	assert.False(t, ok)
}
