// Command bookmark builds and runs the canonical Fibonacci example program:
// a self-referential read-only loop driven entirely by Perform. Given an
// optional output path it serializes the program there instead of running
// it.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"bookmark/engine"
)

func init() {
	flag.Parse()
}

// buildFibonacci assembles the RW a=1,b=1 / RO self-referential loop
// idiom: each iteration takes a, adds a clone of b, debugs the sum, swaps
// it into b, swaps the old b into a, then clones and performs the loop
// body again. The whole program is fallible, so the eventual int64
// overflow is swallowed to None rather than surfacing.
func buildFibonacci() *engine.Program {
	vb := engine.NewMapBuilder()
	a := vb.InsertRW(engine.Int(1))
	b := vb.InsertRW(engine.Int(1))
	l := vb.ReserveRO()

	sleepPrint1 := engine.InstructionList(
		engine.Put{V: engine.Float(0)},
		engine.Sleep,
		engine.PutInt(1),
		engine.Debug,
	)

	loopBody := engine.InstructionList(
		engine.Put{V: engine.Float(0)},
		engine.Sleep,
		engine.TakeInstr{Id: a},
		engine.AddClone(b),
		engine.Debug,
		engine.SwapInstr{Id: b},
		engine.SwapInstr{Id: a},
		engine.CloneInstr{Id: l},
		engine.Perform{Bound: engine.None()},
	)
	if err := vb.Set(l, engine.InstructionValue(loopBody)); err != nil {
		panic(err)
	}

	builder := engine.NewBuilder(vb.Build())
	builder.PushInstruction(engine.PutString("starting seq"))
	builder.PushInstruction(engine.Debug)
	builder.PushInstruction(sleepPrint1)
	builder.PushInstruction(sleepPrint1)
	builder.PushInstruction(engine.CloneInstr{Id: l})
	builder.PushInstruction(engine.Perform{Bound: engine.None()})
	builder.IsFallible(true)
	return builder.Build()
}

func run() error {
	outputPath := ""
	if flag.NArg() > 0 {
		outputPath = flag.Arg(0)
	}

	runID := uuid.New()
	program := buildFibonacci()

	if outputPath != "" {
		f, err := os.Create(outputPath)
		if err != nil {
			return errors.Wrapf(err, "create %q", outputPath)
		}
		defer f.Close()

		enc := json.NewEncoder(f)
		enc.SetIndent("", "  ")
		if err := enc.Encode(program); err != nil {
			return errors.Wrapf(err, "write %q", outputPath)
		}
		fmt.Printf("run %s: wrote program to %s\n", runID, outputPath)
		return nil
	}

	start := time.Now()
	if _, err := program.RunToCompletion(engine.None(), nil); err != nil {
		return errors.Wrap(err, "run program")
	}
	fmt.Printf("run %s: finished in %s\n", runID, humanize.RelTime(start, time.Now(), "", ""))
	return nil
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
