// File: parse.go
// Role: Build graphs from textual edge lists.

package core

import (
	"fmt"
	"strings"
)

// ParseEdgeList builds a graph from lines of the form "a<sep>b", one edge per
// line. Blank lines are skipped; surrounding whitespace is trimmed.
//
// Example input (sep "-"):
//
//	start-A
//	A-end
func ParseEdgeList(lines []string, sep string, opts ...GraphOption) (*Graph, error) {
	if sep == "" {
		return nil, fmt.Errorf("%w: empty separator", ErrMalformedInput)
	}
	g := NewGraph(opts...)
	for i, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		from, to, ok := strings.Cut(line, sep)
		from, to = strings.TrimSpace(from), strings.TrimSpace(to)
		if !ok || from == "" || to == "" {
			return nil, fmt.Errorf("%w: line %d: %q is not %q-separated", ErrMalformedInput, i+1, raw, sep)
		}
		if err := g.AddEdge(from, to); err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", ErrMalformedInput, i+1, err)
		}
	}

	return g, nil
}

// ParseAdjacency builds a graph from lines of the form "name: a b c", where
// every listed target receives an edge from name. The graph is directed
// unless opts override it.
//
// Under WithDeclaredNodes every left-hand name is declared before any edge is
// added, so targets must themselves appear on a left-hand side.
func ParseAdjacency(lines []string, opts ...GraphOption) (*Graph, error) {
	type entry struct {
		line    int
		name    string
		targets []string
	}

	entries := make([]entry, 0, len(lines))
	for i, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		name, rest, ok := strings.Cut(line, ":")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, fmt.Errorf("%w: line %d: %q has no \"name:\" prefix", ErrMalformedInput, i+1, raw)
		}
		entries = append(entries, entry{line: i + 1, name: name, targets: strings.Fields(rest)})
	}

	g := NewGraph(append([]GraphOption{WithDirected(true)}, opts...)...)
	for _, e := range entries {
		if err := g.AddNode(e.name); err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", ErrMalformedInput, e.line, err)
		}
	}
	for _, e := range entries {
		for _, t := range e.targets {
			if err := g.AddEdge(e.name, t); err != nil {
				return nil, fmt.Errorf("%w: line %d: %w", ErrMalformedInput, e.line, err)
			}
		}
	}

	return g, nil
}
