package engine

import "testing"

func TestCondSelectsBranchByBoolInput(t *testing.T) {
	instr := Cond{IfTrue: String("yes"), IfFalse: String("no")}

	b := NewBuilder(NewMapBuilder().Build())
	b.PushInstruction(instr)
	trueProgram := b.Build()
	out := mustRun(t, trueProgram, Bool(true))
	assert(t, out.Equal(String("yes")), "Cond(true) should pick IfTrue, got %v", out)

	b2 := NewBuilder(NewMapBuilder().Build())
	b2.PushInstruction(instr)
	falseProgram := b2.Build()
	out2 := mustRun(t, falseProgram, Bool(false))
	assert(t, out2.Equal(String("no")), "Cond(false) should pick IfFalse, got %v", out2)
}

func TestCondRejectsNonBoolInput(t *testing.T) {
	b := NewBuilder(NewMapBuilder().Build())
	b.PushInstruction(Cond{IfTrue: Int(1), IfFalse: Int(2)})
	p := b.Build()

	_, err := p.RunToCompletion(Int(7), nil)
	assert(t, err != nil, "Cond on a non-Bool input should error")
	e, ok := err.(*Error)
	assert(t, ok, "expected *Error, got %T", err)
	assert(t, e.Kind == ErrWrongInstructionInput, "expected WrongInstructionInput, got %v", e.Kind)
}

func TestToFallibleRewritesEmbeddedProgramFlag(t *testing.T) {
	sub := NewBuilder(NewMapBuilder().Build())
	sub.PushInstruction(Debug)
	subProgram := sub.Build()
	assert(t, !subProgram.IsFallible, "sanity: sub-program should start infallible")

	b := NewBuilder(NewMapBuilder().Build())
	b.PushInstruction(ToFallible)
	p := b.Build()

	out := mustRun(t, p, InstructionValue(NewLoadingProgram(subProgram)))
	assert(t, out.Kind() == TypeInstruction, "expected an Instruction value, got %v", out.Kind())
	lp, ok := out.InstructionOf().(loadingProgramInstr)
	assert(t, ok, "expected a Loading::Program instruction, got %T", out.InstructionOf())
	assert(t, lp.Program.IsFallible, "ToFallible should have set IsFallible on the rewritten sub-program")
}

func TestToInfallibleRewritesEmbeddedProgramFlag(t *testing.T) {
	sub := NewBuilder(NewMapBuilder().Build())
	sub.PushInstruction(Debug)
	sub.IsFallible(true)
	subProgram := sub.Build()
	assert(t, subProgram.IsFallible, "sanity: sub-program should start fallible")

	b := NewBuilder(NewMapBuilder().Build())
	b.PushInstruction(ToInfallible)
	p := b.Build()

	out := mustRun(t, p, InstructionValue(NewLoadingProgram(subProgram)))
	lp, ok := out.InstructionOf().(loadingProgramInstr)
	assert(t, ok, "expected a Loading::Program instruction, got %T", out.InstructionOf())
	assert(t, !lp.Program.IsFallible, "ToInfallible should have cleared IsFallible on the rewritten sub-program")
}

func TestToFallibleRejectsNonLoadingProgramInstruction(t *testing.T) {
	b := NewBuilder(NewMapBuilder().Build())
	b.PushInstruction(ToFallible)
	p := b.Build()

	_, err := p.RunToCompletion(InstructionValue(Debug), nil)
	assert(t, err != nil, "ToFallible on a non-Loading::Program instruction value should error")
	e, ok := err.(*Error)
	assert(t, ok, "expected *Error, got %T", err)
	assert(t, e.Kind == ErrWrongInstructionInput, "expected WrongInstructionInput, got %v", e.Kind)
}

func TestToInfallibleRejectsNonInstructionValue(t *testing.T) {
	b := NewBuilder(NewMapBuilder().Build())
	b.PushInstruction(ToInfallible)
	p := b.Build()

	_, err := p.RunToCompletion(Int(3), nil)
	assert(t, err != nil, "ToInfallible on a non-Instruction value should error")
	e, ok := err.(*Error)
	assert(t, ok, "expected *Error, got %T", err)
	assert(t, e.Kind == ErrWrongInstructionInput, "expected WrongInstructionInput, got %v", e.Kind)
}
