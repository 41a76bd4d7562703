package split

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nemanja-m/hashsplit/internal/sink"
	"github.com/nemanja-m/hashsplit/pkg/core"
)

func TestFindFiles_GlobAndRegularOnly(t *testing.T) {
	tmpDir := t.TempDir()

	f1 := filepath.Join(tmpDir, "a.tsv")
	f2 := filepath.Join(tmpDir, "sub", "b.tsv")
	require.NoError(t, os.MkdirAll(filepath.Dir(f2), 0o755))
	require.NoError(t, os.WriteFile(f1, []byte("x\t1\n"), 0o644))
	require.NoError(t, os.WriteFile(f2, []byte("y\t2\n"), 0o644))

	files, err := FindFiles(filepath.Join(tmpDir, "**", "*.tsv"))
	require.NoError(t, err)
	require.Equal(t, []string{f1, f2}, files)

	// Directories never match, only regular files.
	files, err = FindFiles(filepath.Join(tmpDir, "**"))
	require.NoError(t, err)
	for _, f := range files {
		info, err := os.Lstat(f)
		require.NoError(t, err)
		require.True(t, info.Mode().IsRegular())
	}
}

func TestFindFiles_NoMatches(t *testing.T) {
	_, err := FindFiles(filepath.Join(t.TempDir(), "*.nope"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "no files matched")
}

func TestSplitFiles_PerFileLineSemantics(t *testing.T) {
	tmpDir := t.TempDir()

	// First file ends without a newline; both lines are still routed and
	// written in full, one Split pass per file.
	f1 := filepath.Join(tmpDir, "one.tsv")
	f2 := filepath.Join(tmpDir, "two.tsv")
	require.NoError(t, os.WriteFile(f1, []byte("k\tend-of-one"), 0o644))
	require.NoError(t, os.WriteFile(f2, []byte("k\tstart-of-two\n"), 0o644))

	base := filepath.Join(tmpDir, "out")
	sinks, err := sink.Open(base, 3)
	require.NoError(t, err)

	require.NoError(t, SplitFiles([]string{f1, f2}, sinks))
	require.NoError(t, sinks.Close())

	data, err := os.ReadFile(fmt.Sprintf("%s.%d", base, core.Partition([]byte("k"), 3)))
	require.NoError(t, err)
	require.Equal(t, "k\tend-of-onek\tstart-of-two\n", string(data))
}

func TestSplitFiles_MissingFile(t *testing.T) {
	base := filepath.Join(t.TempDir(), "out")
	sinks, err := sink.Open(base, 1)
	require.NoError(t, err)
	defer sinks.Close()

	require.Error(t, SplitFiles([]string{filepath.Join(t.TempDir(), "ghost.tsv")}, sinks))
}
