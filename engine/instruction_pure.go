package engine

import (
	"fmt"
	"io"
	"os"
	"time"
)

// DebugSink is the process-wide sink the Debug instruction writes through.
// A host (or a test) may swap it out, the way the teacher's VM captures
// debug output into a strings.Builder during debug-mode runs instead of
// writing straight to stdout.
var DebugSink io.Writer = os.Stdout

type debugInstr struct{ instrBase }

// Debug is the Pure instruction that renders its input to DebugSink and
// returns it unchanged.
var Debug Instruction = debugInstr{}

func (debugInstr) String() string { return "Debug" }
func (debugInstr) Equal(other Instruction) bool {
	_, ok := other.(debugInstr)
	return ok
}
func (debugInstr) performPure(rv Value) (Value, error) {
	fmt.Fprintln(DebugSink, rv.String())
	return rv, nil
}

type sleepInstr struct{ instrBase }

// Sleep is the Pure instruction that suspends for its Float(seconds) input.
var Sleep Instruction = sleepInstr{}

func (sleepInstr) String() string { return "Sleep" }
func (sleepInstr) Equal(other Instruction) bool {
	_, ok := other.(sleepInstr)
	return ok
}
func (s sleepInstr) performPure(rv Value) (Value, error) {
	if rv.kind != TypeFloat {
		return Value{}, &Error{Kind: ErrWrongInstructionInput, Value: rv, Instruction: s}
	}
	time.Sleep(time.Duration(rv.f * float64(time.Second)))
	return None(), nil
}

// Cond is the Pure instruction that picks IfTrue or IfFalse based on a
// Bool input.
type Cond struct {
	instrBase
	IfTrue, IfFalse Value
}

func (c Cond) String() string { return fmt.Sprintf("Cond(%s, %s)", c.IfTrue, c.IfFalse) }
func (c Cond) Equal(other Instruction) bool {
	o, ok := other.(Cond)
	return ok && c.IfTrue.Equal(o.IfTrue) && c.IfFalse.Equal(o.IfFalse)
}
func (c Cond) performPure(rv Value) (Value, error) {
	if rv.kind != TypeBool {
		return Value{}, &Error{Kind: ErrWrongInstructionInput, Value: rv, Instruction: c}
	}
	if rv.b {
		return c.IfTrue, nil
	}
	return c.IfFalse, nil
}

// Put is the Pure instruction that ignores its input and returns V.
type Put struct {
	instrBase
	V Value
}

func (p Put) String() string { return fmt.Sprintf("Put(%s)", p.V) }
func (p Put) Equal(other Instruction) bool {
	o, ok := other.(Put)
	return ok && p.V.Equal(o.V)
}
func (p Put) performPure(Value) (Value, error) { return p.V, nil }

// Coerce is the Pure instruction that casts its input to To.
type Coerce struct {
	instrBase
	To Type
}

func (c Coerce) String() string { return fmt.Sprintf("Coerce(%s)", c.To) }
func (c Coerce) Equal(other Instruction) bool {
	o, ok := other.(Coerce)
	return ok && c.To == o.To
}
func (c Coerce) performPure(rv Value) (Value, error) { return rv.Cast(c.To) }

// ParseInstr is the Pure instruction that parses its String input as To.
type ParseInstr struct {
	instrBase
	To Type
}

func (p ParseInstr) String() string { return fmt.Sprintf("Parse(%s)", p.To) }
func (p ParseInstr) Equal(other Instruction) bool {
	o, ok := other.(ParseInstr)
	return ok && p.To == o.To
}
func (p ParseInstr) performPure(rv Value) (Value, error) { return rv.Parse(p.To) }

// OpInstr is the Pure instruction that applies Operation to (input, Rhs).
type OpInstr struct {
	instrBase
	Operation Op
	Rhs       Value
}

func (o OpInstr) String() string { return fmt.Sprintf("Op(%s, %s)", o.Operation, o.Rhs) }
func (o OpInstr) Equal(other Instruction) bool {
	p, ok := other.(OpInstr)
	return ok && o.Operation == p.Operation && o.Rhs.Equal(p.Rhs)
}
func (o OpInstr) performPure(rv Value) (Value, error) { return Apply(o.Operation, rv, o.Rhs) }

type notInstr struct{ instrBase }

// Not is the Pure instruction that negates its Bool input.
var Not Instruction = notInstr{}

func (notInstr) String() string { return "Not" }
func (notInstr) Equal(other Instruction) bool {
	_, ok := other.(notInstr)
	return ok
}
func (n notInstr) performPure(rv Value) (Value, error) {
	if rv.kind != TypeBool {
		return Value{}, &Error{Kind: ErrWrongInstructionInput, Value: rv, Instruction: n}
	}
	return Bool(!rv.b), nil
}

type toFallibleInstr struct{ instrBase }

// ToFallible is the Pure instruction that rewrites an embedded
// Loading::Program instruction into its fallible form.
var ToFallible Instruction = toFallibleInstr{}

func (toFallibleInstr) String() string { return "ToFallible" }
func (toFallibleInstr) Equal(other Instruction) bool {
	_, ok := other.(toFallibleInstr)
	return ok
}
func (t toFallibleInstr) performPure(rv Value) (Value, error) {
	return rewriteEmbeddedProgram(rv, t, func(p *Program) *Program { return p.IntoFallible() })
}

type toInfallibleInstr struct{ instrBase }

// ToInfallible is the Pure instruction that rewrites an embedded
// Loading::Program instruction into its infallible form.
var ToInfallible Instruction = toInfallibleInstr{}

func (toInfallibleInstr) String() string { return "ToInfallible" }
func (toInfallibleInstr) Equal(other Instruction) bool {
	_, ok := other.(toInfallibleInstr)
	return ok
}
func (t toInfallibleInstr) performPure(rv Value) (Value, error) {
	return rewriteEmbeddedProgram(rv, t, func(p *Program) *Program { return p.IntoInfallible() })
}

func rewriteEmbeddedProgram(rv Value, self Instruction, rewrite func(*Program) *Program) (Value, error) {
	if rv.kind != TypeInstruction {
		return Value{}, &Error{Kind: ErrWrongInstructionInput, Value: rv, Instruction: self}
	}
	lp, ok := rv.instr.(loadingProgramInstr)
	if !ok {
		return Value{}, &Error{Kind: ErrWrongInstructionInput, Value: rv, Instruction: self}
	}
	return InstructionValue(NewLoadingProgram(rewrite(lp.Program))), nil
}
