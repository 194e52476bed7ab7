package machine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aocpath/core"
	"github.com/katalvlaran/aocpath/machine"
)

var boot = []string{
	"nop +0",
	"acc +1",
	"jmp +4",
	"acc +3",
	"jmp -3",
	"acc -99",
	"acc +1",
	"jmp -4",
	"acc +6",
}

func TestRun_LoopDetection(t *testing.T) {
	p, err := machine.Parse(boot)
	require.NoError(t, err)
	require.Len(t, p, 9)

	res := p.Run()
	assert.Equal(t, machine.Looped, res.Status)
	assert.Equal(t, 5, res.State.Acc)
	assert.Equal(t, 1, res.State.PC)
	assert.Equal(t, 7, res.Steps)
}

func TestRepair(t *testing.T) {
	p, err := machine.Parse(boot)
	require.NoError(t, err)

	res, idx, err := p.Repair()
	require.NoError(t, err)
	assert.Equal(t, 7, idx)
	assert.Equal(t, machine.Halted, res.Status)
	assert.Equal(t, 8, res.State.Acc)
	assert.Equal(t, machine.OpJmp, p[7].Op, "original untouched")
}

func TestRun_HaltAndEscape(t *testing.T) {
	p, err := machine.Parse([]string{"acc +2", "", "acc -5"})
	require.NoError(t, err)
	res := p.Run()
	assert.Equal(t, machine.Halted, res.Status)
	assert.Equal(t, -3, res.State.Acc)

	p, err = machine.Parse([]string{"jmp +5", "acc +1"})
	require.NoError(t, err)
	res = p.Run()
	assert.Equal(t, machine.Escaped, res.Status)
	assert.Equal(t, 5, res.State.PC)

	res = machine.Program{}.Run()
	assert.Equal(t, machine.Halted, res.Status)
}

func TestRepair_None(t *testing.T) {
	p, err := machine.Parse([]string{"acc +1", "jmp -1", "jmp -2"})
	require.NoError(t, err)
	_, idx, err := p.Repair()
	assert.ErrorIs(t, err, machine.ErrNoRepair)
	assert.Equal(t, -1, idx)
}

func TestParse_Malformed(t *testing.T) {
	for _, lines := range [][]string{
		{"mul +2"},
		{"acc"},
		{"acc x"},
		{"acc +1 +2"},
	} {
		_, err := machine.Parse(lines)
		assert.ErrorIs(t, err, machine.ErrMalformedProgram, "%v", lines)
		assert.ErrorIs(t, err, core.ErrMalformedInput, "%v", lines)
	}
}

func TestOpcodeString(t *testing.T) {
	assert.Equal(t, "jmp", machine.OpJmp.String())
	assert.Equal(t, "op(9)", machine.Opcode(9).String())
	assert.Equal(t, "acc -3", machine.Instruction{Op: machine.OpAcc, Arg: -3}.String())
	assert.Equal(t, "looped", machine.Looped.String())
}
