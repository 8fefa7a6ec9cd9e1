package transform

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kcansari/repren/internal/pattern"
	"github.com/kcansari/repren/internal/transform/strategies"
)

func TestRewriteFileWritesBackupAndContent(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "a.txt")
	require.NoError(t, os.WriteFile(src, []byte("foo bar\n"), 0o644))

	rs, err := pattern.Load("foo\tX\n", pattern.Options{})
	require.NoError(t, err)

	job := Job{SourcePath: src, DestPath: src}
	res, err := RewriteFile(job, rs, strategies.LineStrategy{}, ".orig", ".repren.tmp")
	require.NoError(t, err)

	assert.Equal(t, 1, res.Found)
	assert.Equal(t, 1, res.Applied)
	assert.True(t, res.ContentChanged)

	gotContent, err := os.ReadFile(src)
	require.NoError(t, err)
	assert.Equal(t, "X bar\n", string(gotContent))

	backupContent, err := os.ReadFile(src + ".orig")
	require.NoError(t, err)
	assert.Equal(t, "foo bar\n", string(backupContent))

	_, err = os.Stat(src + ".repren.tmp")
	assert.True(t, os.IsNotExist(err), "temp file should not survive a successful run")
}

func TestRewriteFileDryRunChangesNothing(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "a.txt")
	original := "foo bar\n"
	require.NoError(t, os.WriteFile(src, []byte(original), 0o644))

	rs, err := pattern.Load("foo\tX\n", pattern.Options{})
	require.NoError(t, err)

	job := Job{SourcePath: src, DestPath: src, DryRun: true}
	res, err := RewriteFile(job, rs, strategies.LineStrategy{}, ".orig", ".repren.tmp")
	require.NoError(t, err)
	assert.Equal(t, 1, res.Found)

	gotContent, err := os.ReadFile(src)
	require.NoError(t, err)
	assert.Equal(t, original, string(gotContent))

	_, err = os.Stat(src + ".orig")
	assert.True(t, os.IsNotExist(err), "dry run must not create a backup")
}

func TestRewriteFileNoMatchLeavesFileUntouched(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "a.txt")
	require.NoError(t, os.WriteFile(src, []byte("nothing to see\n"), 0o644))

	rs, err := pattern.Load("foo\tX\n", pattern.Options{})
	require.NoError(t, err)

	job := Job{SourcePath: src, DestPath: src}
	res, err := RewriteFile(job, rs, strategies.LineStrategy{}, ".orig", ".repren.tmp")
	require.NoError(t, err)
	assert.False(t, res.ContentChanged)

	_, err = os.Stat(src + ".orig")
	assert.True(t, os.IsNotExist(err), "no-op run must not create a backup")
}

func TestRenameFileMovesWithoutBackup(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "Old.java")
	dest := filepath.Join(dir, "New.java")
	require.NoError(t, os.WriteFile(src, []byte("class Old"), 0o644))

	res, err := RenameFile(Job{SourcePath: src, DestPath: dest})
	require.NoError(t, err)
	assert.True(t, res.Renamed)
	assert.Equal(t, dest, res.FinalDestPath)

	_, err = os.Stat(src)
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(src + ".orig")
	assert.True(t, os.IsNotExist(err), "rename-only must not create a backup")
}

func TestRenameFileCreatesParentDirs(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "Old.java")
	dest := filepath.Join(dir, "pkg", "nested", "New.java")
	require.NoError(t, os.WriteFile(src, []byte("class Old"), 0o644))

	_, err := RenameFile(Job{SourcePath: src, DestPath: dest})
	require.NoError(t, err)

	_, err = os.Stat(dest)
	require.NoError(t, err)
}

func TestRewriteFileNoClobberSuffixesCollidingDest(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "a.txt")
	require.NoError(t, os.WriteFile(src, []byte("foo\n"), 0o644))
	dest := filepath.Join(dir, "b.txt")
	require.NoError(t, os.WriteFile(dest, []byte("existing\n"), 0o644))

	rs, err := pattern.Load("foo\tX\n", pattern.Options{})
	require.NoError(t, err)

	job := Job{SourcePath: src, DestPath: dest}
	res, err := RewriteFile(job, rs, strategies.LineStrategy{}, ".orig", ".repren.tmp")
	require.NoError(t, err)
	assert.Equal(t, dest+".1", res.FinalDestPath)

	existing, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, "existing\n", string(existing))
}
