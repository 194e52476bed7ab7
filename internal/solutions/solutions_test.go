package solutions

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aocpath/answer"
	"github.com/katalvlaran/aocpath/core"
	"github.com/katalvlaran/aocpath/machine"
)

func TestRegistry(t *testing.T) {
	all := All()
	keys := make([]Key, len(all))
	for i, p := range all {
		keys[i] = p.Key
		assert.NotEmpty(t, p.Title)
		assert.NotNil(t, p.Solve)
	}
	assert.Equal(t, []Key{{2020, 8}, {2021, 9}, {2021, 11}, {2021, 12}, {2022, 12}, {2025, 11}}, keys)

	p, err := Lookup(2021, 12)
	require.NoError(t, err)
	assert.Equal(t, "Passage Pathing", p.Title)

	_, err = Lookup(2019, 1)
	assert.ErrorIs(t, err, ErrUnknownPuzzle)
	assert.Contains(t, err.Error(), "2019/01")

	assert.Panics(t, func() { register(2020, 8, "again", handheldHalting) })
}

func TestSolutions_Examples(t *testing.T) {
	tests := []struct {
		year, day int
		lines     []string
		want      answer.Answer
	}{
		{2020, 8, []string{
			"nop +0", "acc +1", "jmp +4", "acc +3", "jmp -3",
			"acc -99", "acc +1", "jmp -4", "acc +6",
		}, answer.Answer{Part1: 5, Part2: 8}},
		{2021, 9, []string{
			"2199943210",
			"3987894921",
			"9856789892",
			"8767896789",
			"9899965678",
		}, answer.Answer{Part1: 15, Part2: 1134}},
		{2021, 11, []string{
			"5483143223",
			"2745854711",
			"5264556173",
			"6141336146",
			"6357385478",
			"4167524645",
			"2176841721",
			"6882881134",
			"4846848554",
			"5283751526",
		}, answer.Answer{Part1: 1656, Part2: 195}},
		{2021, 12, []string{
			"start-A", "start-b", "A-c", "A-b", "b-d", "A-end", "b-end",
		}, answer.Answer{Part1: 10, Part2: 36}},
		{2021, 12, []string{
			"fs-end", "he-DX", "fs-he", "start-DX", "pj-DX", "end-zg",
			"zg-sl", "zg-pj", "pj-he", "RW-he", "fs-DX", "pj-RW",
			"zg-RW", "start-pj", "he-WI", "zg-he", "pj-fs", "start-RW",
		}, answer.Answer{Part1: 226, Part2: 3509}},
		{2022, 12, []string{
			"Sabqponm",
			"abcryxxl",
			"accszExk",
			"acctuvwj",
			"abdefghi",
		}, answer.Answer{Part1: 31, Part2: 29}},
	}
	for _, tt := range tests {
		t.Run(Key{tt.year, tt.day}.String(), func(t *testing.T) {
			p, err := Lookup(tt.year, tt.day)
			require.NoError(t, err)
			got, err := p.Solve(context.Background(), tt.lines)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReactor_Examples(t *testing.T) {
	c, err := reactorCounter([]string{
		"aaa: you hhh",
		"you: bbb ccc",
		"bbb: ddd eee",
		"ccc: ddd eee fff",
		"ddd: ggg",
		"eee: out",
		"fff: out",
		"ggg: out",
		"hhh: ccc fff iii",
		"iii: out",
	})
	require.NoError(t, err)
	n, err := c.Count("you", "out")
	require.NoError(t, err)
	assert.Equal(t, int64(5), n)

	c, err = reactorCounter([]string{
		"svr: aaa bbb",
		"aaa: fft",
		"fft: ccc",
		"bbb: tty",
		"tty: ccc",
		"ccc: ddd eee",
		"ddd: hub",
		"hub: fff",
		"eee: dac",
		"dac: fff",
		"fff: ggg hhh",
		"ggg: out",
		"hhh: out",
	})
	require.NoError(t, err)
	n, err = c.Through("svr", "out", "dac", "fft")
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	// a part-1-only input lacks svr: fail loudly
	_, err = reactor(context.Background(), []string{"you: out"})
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
}

func TestSolutions_MalformedInput(t *testing.T) {
	ctx := context.Background()

	_, err := smokeBasin(ctx, []string{"12", "1"})
	assert.ErrorIs(t, err, core.ErrMalformedInput)

	_, err = passagePathing(ctx, []string{"start-A", "A-b"})
	assert.ErrorIs(t, err, core.ErrMalformedInput)

	_, err = passagePathing(ctx, []string{"start-A", "A-B", "B-end"})
	assert.ErrorIs(t, err, core.ErrMalformedInput)

	_, err = passagePathing(ctx, []string{"start A"})
	assert.ErrorIs(t, err, core.ErrMalformedInput)

	_, err = hillClimbing(ctx, []string{"abc", "def"})
	assert.ErrorIs(t, err, core.ErrMalformedInput)

	_, err = handheldHalting(ctx, []string{"hop +1"})
	assert.ErrorIs(t, err, machine.ErrMalformedProgram)

	_, err = reactor(ctx, []string{"a: b", "b: a"})
	assert.ErrorIs(t, err, core.ErrCycleDetected)
}

func TestHillClimbing_Unreachable(t *testing.T) {
	_, err := hillClimbing(context.Background(), []string{"SzE"})
	assert.Error(t, err)
}

func TestSolutions_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := passagePathing(ctx, []string{"start-A", "A-end"})
	assert.ErrorIs(t, err, context.Canceled)
}
