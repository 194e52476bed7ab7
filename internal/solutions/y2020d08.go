package solutions

import (
	"context"
	"fmt"

	"github.com/katalvlaran/aocpath/answer"
	"github.com/katalvlaran/aocpath/machine"
)

func init() { register(2020, 8, "Handheld Halting", handheldHalting) }

// handheldHalting: part 1 is the accumulator just before any instruction
// repeats, part 2 the accumulator of the one-flip repaired program.
func handheldHalting(_ context.Context, lines []string) (answer.Answer, error) {
	prog, err := machine.Parse(lines)
	if err != nil {
		return answer.Answer{}, err
	}

	first := prog.Run()
	if first.Status != machine.Looped {
		return answer.Answer{}, fmt.Errorf("2020/08: program %s instead of looping", first.Status)
	}
	fixed, _, err := prog.Repair()
	if err != nil {
		return answer.Answer{}, err
	}

	return answer.Answer{Part1: int64(first.State.Acc), Part2: int64(fixed.State.Acc)}, nil
}
