package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aocpath/internal/input"
	"github.com/katalvlaran/aocpath/internal/solutions"
)

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	err = Execute(context.Background(), args, &out, &errOut)
	return out.String(), errOut.String(), err
}

func writeInput(t *testing.T, path string, lines ...string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644))
}

func TestRun_ExplicitFile(t *testing.T) {
	t.Setenv("AOC_CONFIG", "")
	path := filepath.Join(t.TempDir(), "caves.txt")
	writeInput(t, path, "start-A", "start-b", "A-c", "A-b", "b-d", "A-end", "b-end")

	stdout, stderr, err := execute(t, "run", "2021", "12", path)
	require.NoError(t, err)
	assert.Equal(t, "10\n36\n", stdout)
	assert.Contains(t, stderr, "solved")
	assert.Contains(t, stderr, "part1=10")
}

func TestRun_InputDirFromEnv(t *testing.T) {
	t.Setenv("AOC_CONFIG", "")
	dir := t.TempDir()
	t.Setenv("AOC_INPUT_DIR", dir)
	writeInput(t, input.Path(dir, 2021, 9),
		"2199943210", "3987894921", "9856789892", "8767896789", "9899965678")

	stdout, _, err := execute(t, "run", "2021", "9")
	require.NoError(t, err)
	assert.Equal(t, "15\n1134\n", stdout)
}

func TestRun_VerboseAndConfigFile(t *testing.T) {
	t.Setenv("AOC_CONFIG", "")
	dir := t.TempDir()
	cfg := filepath.Join(dir, "aoc.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("input_dir: "+dir+"\nlog:\n  level: error\n"), 0o644))
	writeInput(t, input.Path(dir, 2020, 8),
		"nop +0", "acc +1", "jmp +4", "acc +3", "jmp -3", "acc -99", "acc +1", "jmp -4", "acc +6")

	stdout, stderr, err := execute(t, "run", "2020", "8", "--config", cfg)
	require.NoError(t, err)
	assert.Equal(t, "5\n8\n", stdout)
	assert.Empty(t, stderr, "error level hides info logs")

	_, stderr, err = execute(t, "-v", "-c", cfg, "run", "2020", "8")
	require.NoError(t, err)
	assert.Contains(t, stderr, "reading input")
	assert.Contains(t, stderr, "loaded config")
}

func TestRun_Errors(t *testing.T) {
	t.Setenv("AOC_CONFIG", "")
	dir := t.TempDir()

	_, _, err := execute(t, "run", "2019", "1")
	assert.ErrorIs(t, err, solutions.ErrUnknownPuzzle)

	_, _, err = execute(t, "run", "twenty", "1")
	assert.Error(t, err)

	_, _, err = execute(t, "run", "2021", "12", filepath.Join(dir, "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.txt")
	writeInput(t, bad, "12", "3")
	_, stderr, err := execute(t, "run", "2021", "9", bad)
	assert.Error(t, err)
	assert.Contains(t, stderr, "solve failed")

	_, _, err = execute(t, "run")
	assert.Error(t, err)
}

func TestList(t *testing.T) {
	t.Setenv("AOC_CONFIG", "")
	stdout, _, err := execute(t, "list")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, len(solutions.All()))
	assert.True(t, strings.HasPrefix(lines[0], "2020  08  Handheld Halting"), lines[0])
	assert.Contains(t, stdout, "Reactor")
}
