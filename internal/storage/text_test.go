package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriteReadRoundTripIsVerbatim(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "main.cpp")

	for _, content := range []string{
		"",
		"int main() {}",
		"line one\r\nline two\r\n",
		"tabs\tand \"quotes\"\nno trailing newline",
		"utf-8: héllo wörld ✓\n",
	} {
		require.NoError(t, WriteText(path, content))
		got, err := ReadText(path)
		require.NoError(t, err)
		require.Equal(t, content, got)
	}
}

func TestWriteTextPreservesMode(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "run.sh")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0o755))

	require.NoError(t, WriteText(path, "new"))

	st, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o755), st.Mode().Perm())
}

func TestWriteTextFailureKeepsOldContents(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	target := filepath.Join(dir, "sub")
	require.NoError(t, os.Mkdir(target, 0o755))

	require.Error(t, WriteText(target, "x"))
	require.Error(t, WriteText(filepath.Join(dir, "missing", "a.c"), "x"))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "no temp files left behind")
}

func TestReadTextMissingFile(t *testing.T) {
	t.Parallel()

	_, err := ReadText(filepath.Join(t.TempDir(), "nope.py"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.True(t, Exists(dir))
	require.False(t, Exists(filepath.Join(dir, "absent")))
}

func TestWriteTextFollowsSymlink(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	target := filepath.Join(dir, "real.cpp")
	link := filepath.Join(dir, "link.cpp")
	require.NoError(t, os.WriteFile(target, []byte("old"), 0o644))
	require.NoError(t, os.Symlink(target, link))

	require.NoError(t, WriteText(link, "new"))

	st, err := os.Lstat(link)
	require.NoError(t, err)
	require.NotZero(t, st.Mode()&os.ModeSymlink, "link must stay a symlink")

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	require.Equal(t, "new", string(data))
}

func TestWriteTextInReadOnlyDirectory(t *testing.T) {
	t.Parallel()
	if os.Geteuid() == 0 {
		t.Skip("directory permissions do not apply to root")
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "main.c")
	require.NoError(t, os.WriteFile(path, []byte("old contents"), 0o644))
	require.NoError(t, os.Chmod(dir, 0o555))
	t.Cleanup(func() { _ = os.Chmod(dir, 0o755) })

	require.NoError(t, WriteText(path, "new"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "new", string(data))
}
