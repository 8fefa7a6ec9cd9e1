package engine

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kcansari/repren/internal/reporter"
	"github.com/kcansari/repren/internal/types"
)

func newTestEngine() *Engine {
	return &Engine{Logger: reporter.DiscardLogger{}, Fail: FailSoft}
}

func TestRunScenario5FullRenameAndRewrite(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "OldClass.java")
	require.NoError(t, os.WriteFile(src, []byte("class OldClass"), 0o644))

	cfg := types.Config{
		Roots: []string{dir},
		From:  "OldClass", To: "NewClass",
		Scope: types.ScopeFull,
	}

	tally, err := newTestEngine().Run(cfg)
	require.NoError(t, err)

	dest := filepath.Join(dir, "NewClass.java")
	content, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, "class NewClass", string(content))

	backupContent, err := os.ReadFile(src + ".orig")
	require.NoError(t, err)
	assert.Equal(t, "class OldClass", string(backupContent))

	assert.Equal(t, 1, tally.FilesRenamed)
	assert.Equal(t, 1, tally.FilesRewritten)
}

func TestRunScenario6PreserveCaseAllFourVariants(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "a.txt")
	require.NoError(t, os.WriteFile(src, []byte("fooBar FooBar FOO_BAR foo_bar"), 0o644))

	cfg := types.Config{
		Roots: []string{dir},
		From:  "foo_bar", To: "xxx_yyy",
		PreserveCase: true,
	}

	_, err := newTestEngine().Run(cfg)
	require.NoError(t, err)

	content, err := os.ReadFile(src)
	require.NoError(t, err)
	assert.Equal(t, "xxxYyy XxxYyy XXX_YYY xxx_yyy", string(content))
}

func TestRunDryRunLeavesTreeUntouched(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "a.txt")
	original := "foo bar"
	require.NoError(t, os.WriteFile(src, []byte(original), 0o644))

	cfg := types.Config{Roots: []string{dir}, From: "foo", To: "X", DryRun: true}
	tally, err := newTestEngine().Run(cfg)
	require.NoError(t, err)
	assert.Equal(t, 1, tally.MatchesFound)

	content, err := os.ReadFile(src)
	require.NoError(t, err)
	assert.Equal(t, original, string(content))

	_, err = os.Stat(src + ".orig")
	assert.True(t, os.IsNotExist(err))
}

func TestRunUndoRoundTrip(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "OldClass.java")
	original := []byte("class OldClass")
	require.NoError(t, os.WriteFile(src, original, 0o644))

	cfg := types.Config{Roots: []string{dir}, From: "OldClass", To: "NewClass", Scope: types.ScopeFull}
	_, err := newTestEngine().Run(cfg)
	require.NoError(t, err)

	undoCfg := types.Config{Roots: []string{dir}, From: "OldClass", To: "NewClass", Undo: true}
	_, err = newTestEngine().Run(undoCfg)
	require.NoError(t, err)

	restored, err := os.ReadFile(src)
	require.NoError(t, err)
	assert.True(t, bytes.Equal(original, restored))

	_, err = os.Stat(filepath.Join(dir, "NewClass.java"))
	assert.True(t, os.IsNotExist(err))
}

func TestRunStdinMode(t *testing.T) {
	e := newTestEngine()
	e.Stdin = bytes.NewBufferString("foo bar")
	var out bytes.Buffer
	e.Stdout = &out

	cfg := types.Config{From: "foo", To: "X"}
	_, err := e.Run(cfg)
	require.NoError(t, err)
	assert.Equal(t, "X bar", out.String())
}

func TestRunUsageErrorNoRuleSource(t *testing.T) {
	_, err := newTestEngine().Run(types.Config{Roots: []string{"."}})
	require.Error(t, err)
	var engErr *Error
	require.ErrorAs(t, err, &engErr)
	assert.Equal(t, KindUsage, engErr.Kind)
}
