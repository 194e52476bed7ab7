// Package machine runs the three-instruction handheld console program:
// acc adjusts the accumulator, jmp jumps relative to itself, nop does nothing.
//
// Instructions decode once into an Opcode; execution indexes a table of pure
// state transitions. Halting, looping and jumping out of the program are
// Result states, not errors. Only a program that cannot be parsed is an error.
package machine

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/aocpath/core"
)

var (
	// ErrMalformedProgram wraps core.ErrMalformedInput for unparsable lines.
	ErrMalformedProgram = fmt.Errorf("machine: malformed program: %w", core.ErrMalformedInput)
	// ErrNoRepair is returned by Repair when no single flip makes the program halt.
	ErrNoRepair = errors.New("machine: no single jmp/nop flip halts the program")
)

// Opcode identifies an instruction.
type Opcode uint8

const (
	OpNop Opcode = iota
	OpAcc
	OpJmp
	opCount
)

var opNames = [opCount]string{OpNop: "nop", OpAcc: "acc", OpJmp: "jmp"}

func (op Opcode) String() string {
	if op < opCount {
		return opNames[op]
	}
	return "op(" + strconv.Itoa(int(op)) + ")"
}

// ParseOpcode decodes a mnemonic.
func ParseOpcode(s string) (Opcode, error) {
	for op, name := range opNames {
		if s == name {
			return Opcode(op), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown opcode %q", ErrMalformedProgram, s)
}

// State is the machine's registers.
type State struct {
	PC  int
	Acc int
}

type transition func(s State, arg int) State

// dispatch maps every opcode to its transition.
var dispatch = [opCount]transition{
	OpNop: func(s State, _ int) State { return State{PC: s.PC + 1, Acc: s.Acc} },
	OpAcc: func(s State, arg int) State { return State{PC: s.PC + 1, Acc: s.Acc + arg} },
	OpJmp: func(s State, arg int) State { return State{PC: s.PC + arg, Acc: s.Acc} },
}

// Instruction is one decoded program line.
type Instruction struct {
	Op  Opcode
	Arg int
}

func (in Instruction) String() string { return fmt.Sprintf("%s %+d", in.Op, in.Arg) }

// Program is a sequence of instructions addressed from 0.
type Program []Instruction

// Parse decodes lines of the form "acc +1". Blank lines are skipped.
func Parse(lines []string) (Program, error) {
	prog := make(Program, 0, len(lines))
	for i, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("%w: line %d: %q", ErrMalformedProgram, i+1, raw)
		}
		op, err := ParseOpcode(fields[0])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		arg, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: bad argument %q", ErrMalformedProgram, i+1, fields[1])
		}
		prog = append(prog, Instruction{Op: op, Arg: arg})
	}

	return prog, nil
}

// Status is how a run ended.
type Status int

const (
	// Halted: PC reached one past the last instruction.
	Halted Status = iota
	// Looped: an instruction was about to execute a second time.
	Looped
	// Escaped: PC jumped outside [0, len(program)].
	Escaped
)

func (s Status) String() string {
	switch s {
	case Halted:
		return "halted"
	case Looped:
		return "looped"
	case Escaped:
		return "escaped"
	}
	return "status(" + strconv.Itoa(int(s)) + ")"
}

// Result is the outcome of Run. State holds the registers when the run
// stopped; for Looped, before the repeated instruction executes.
type Result struct {
	Status Status
	State  State
	Steps  int
}

// Run executes p from PC 0 until it halts, loops or escapes.
func (p Program) Run() Result {
	seen := make([]bool, len(p))
	var s State
	steps := 0
	for {
		switch {
		case s.PC == len(p):
			return Result{Status: Halted, State: s, Steps: steps}
		case s.PC < 0 || s.PC > len(p):
			return Result{Status: Escaped, State: s, Steps: steps}
		case seen[s.PC]:
			return Result{Status: Looped, State: s, Steps: steps}
		}
		seen[s.PC] = true
		in := p[s.PC]
		s = dispatch[in.Op](s, in.Arg)
		steps++
	}
}

// Repair flips one jmp to nop (or nop to jmp) at a time, in program order,
// and returns the first variant's halting result with the flipped index.
// Each candidate runs on a copy; p is never modified.
func (p Program) Repair() (Result, int, error) {
	variant := make(Program, len(p))
	for i, in := range p {
		var flipped Opcode
		switch in.Op {
		case OpJmp:
			flipped = OpNop
		case OpNop:
			flipped = OpJmp
		default:
			continue
		}
		copy(variant, p)
		variant[i].Op = flipped
		if res := variant.Run(); res.Status == Halted {
			return res, i, nil
		}
	}

	return Result{}, -1, ErrNoRepair
}
