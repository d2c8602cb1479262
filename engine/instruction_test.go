package engine

import "testing"

func TestStackPushPopOrder(t *testing.T) {
	var s Stack
	s = s.Push(Debug)
	s = s.Push(Not)
	top, rest := s.Pop()
	assert(t, top.Equal(Not), "expected the most recently pushed instruction on top")
	top, _ = rest.Pop()
	assert(t, top.Equal(Debug), "expected Debug left after popping Not")
}

func TestFlattenDeeplyNestedLists(t *testing.T) {
	nested := InstructionList(InstructionList(InstructionList(Debug, Not), Sleep))
	flat := Flatten(nested)
	want := InstructionList(Debug, Not, Sleep)
	assert(t, flat.Equal(want), "deeply nested lists should flatten preserving forward order, got %v want %v", flat, want)
}

func TestInstructionEqualityMismatchedVariantsAreUnequal(t *testing.T) {
	assert(t, !Debug.Equal(Not), "different variants should never be equal")
	assert(t, !CloneInstr{Id: Id{Partition: RW, Index: 0}}.Equal(TakeInstr{Id: Id{Partition: RW, Index: 0}}), "different instruction types with the same payload shape should not be equal")
}

type constHandler struct{ v Value }

func (c constHandler) Perform(Value, Map, Stack) (Value, Map, Stack, error) {
	return c.v, Map{}, nil, nil
}

func TestExternalInstructionNeverEqual(t *testing.T) {
	a := NewExternal(constHandler{v: Int(1)})
	b := NewExternal(constHandler{v: Int(1)})
	assert(t, !a.Equal(b), "External instructions must never compare equal, even to themselves structurally")
}

func TestExternalInstructionRunsHandler(t *testing.T) {
	b := NewBuilder(NewMapBuilder().Build())
	b.PushInstruction(NewExternal(constHandler{v: Int(42)}))
	p := b.Build()

	out := mustRun(t, p, None())
	assert(t, out.Equal(Int(42)), "External should run its handler, got %v", out)
}

func TestNoopIsIdentity(t *testing.T) {
	b := NewBuilder(NewMapBuilder().Build())
	b.PushInstruction(PutInt(5))
	b.PushInstruction(NoopInstruction)
	p := b.Build()

	out := mustRun(t, p, None())
	assert(t, out.Equal(Int(5)), "Noop should not alter the return value, got %v", out)
}
