// Package input loads puzzle input as trimmed lines.
package input

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// maxLine bounds a single input line; some puzzles ship one very long line.
const maxLine = 1 << 20

// Lines reads r line by line, trimming surrounding whitespace. Trailing
// blank lines are dropped; interior blank lines are kept because some
// inputs use them as section separators.
func Lines(r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)
	var lines []string
	for sc.Scan() {
		lines = append(lines, strings.TrimSpace(sc.Text()))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("input: %w", err)
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	return lines, nil
}

// ReadFile opens path and returns its Lines.
func ReadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("input: %w", err)
	}
	defer f.Close()

	return Lines(f)
}

// Path is the conventional location of a puzzle input: dir/<year>/day<DD>.txt.
func Path(dir string, year, day int) string {
	return filepath.Join(dir, fmt.Sprint(year), fmt.Sprintf("day%02d.txt", day))
}
