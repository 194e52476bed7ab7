// Package aocpath is a grid and graph traversal toolkit for puzzle inputs,
// together with the puzzle solutions that exercise it.
//
// Subpackages, leaf to root:
//
//	core/      — named directed/undirected Graph, dedupe vs parallel edges,
//	             edge-list parsers, Kahn topological order
//	traverse/  — shortest path (priority frontier), flood fill and components
//	             (FIFO), DFS path enumeration (explicit stack), one option set
//	gridgraph/ — rectangular integer Grid, 4/8 neighbors, row-major iteration,
//	             two-phase cascading Step, adapters into traverse and core
//	pathcount/ — DAG path counts by DP over the topological order, waypoint
//	             composition, brute-force cross-check
//	answer/    — sum, product, top-N and min-cost reductions; two-part Answer
//	machine/   — acc/jmp/nop console with opcode dispatch table and repair
//
// Data flow:
//
//	text lines → gridgraph.Grid or core.Graph → traverse / pathcount → answer
//
// Quick ASCII example, the cave graph start-A, start-b, A-c, A-b, b-d, A-end, b-end:
//
//	    start
//	    /   \
//	c--A-----b--d
//	    \   /
//	     end
//
// has 10 start→end routes when lower-case caves are entered at most once.
//
// The runner lives in cmd/aoc:
//
//	aoc list
//	aoc run 2021 12 input.txt
package aocpath
