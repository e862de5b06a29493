package resolve

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
}

func paths(matches []Match) []string {
	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = m.Path
	}
	return out
}

func TestExpandFilenameWildcard(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "b.tmp"))
	touch(t, filepath.Join(dir, "a.tmp"))
	touch(t, filepath.Join(dir, "keep.log"))

	matches, err := Expand(filepath.Join(dir, "*.tmp"))
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "a.tmp"),
		filepath.Join(dir, "b.tmp"),
	}, paths(matches))
	for _, m := range matches {
		assert.Equal(t, KindFile, m.Kind)
		assert.False(t, m.ModTime.IsZero())
	}
}

func TestExpandDirectoryWildcardLevel(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "proc1", "crash.dmp"))
	touch(t, filepath.Join(dir, "proc2", "crash.dmp"))
	touch(t, filepath.Join(dir, "proc1", "notes.txt"))

	matches, err := Expand(filepath.Join(dir, "*", "*.dmp"))
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "proc1", "crash.dmp"),
		filepath.Join(dir, "proc2", "crash.dmp"),
	}, paths(matches))
}

func TestExpandTagsDirectories(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "cache"), 0o755))
	touch(t, filepath.Join(dir, "cache.db"))

	matches, err := Expand(filepath.Join(dir, "cache*"))
	require.NoError(t, err)
	require.Len(t, matches, 2)
	assert.Equal(t, KindDirectory, matches[0].Kind) // cache
	assert.Equal(t, KindFile, matches[1].Kind)      // cache.db
}

func TestExpandLiteralPattern(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "exact.txt"))

	matches, err := Expand(filepath.Join(dir, "exact.txt"))
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, filepath.Join(dir, "exact.txt"), matches[0].Path)
}

func TestExpandMissingRootIsEmpty(t *testing.T) {
	matches, err := Expand(filepath.Join(t.TempDir(), "nope", "*.log"))
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestExpandIsDeterministic(t *testing.T) {
	dir := t.TempDir()
	for _, n := range []string{"c.tmp", "a.tmp", "b.tmp"} {
		touch(t, filepath.Join(dir, n))
	}

	first, err := Expand(filepath.Join(dir, "*.tmp"))
	require.NoError(t, err)
	second, err := Expand(filepath.Join(dir, "*.tmp"))
	require.NoError(t, err)
	assert.Equal(t, paths(first), paths(second))
}

func TestValidatePatternRejectsBadSyntax(t *testing.T) {
	assert.Error(t, ValidatePattern("[unclosed"))
	assert.NoError(t, ValidatePattern(filepath.Join("some", "dir", "*.tmp")))
}

func TestExpandBadPatternFailsBeforeFilesystem(t *testing.T) {
	// The root intentionally does not exist: a syntax error must win over
	// the empty-expansion rule for missing roots.
	_, err := Expand(filepath.Join(t.TempDir(), "nope", "[unclosed"))
	assert.Error(t, err)
}
