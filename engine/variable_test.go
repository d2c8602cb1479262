package engine

import "testing"

func TestMapBuilderAndReadWrite(t *testing.T) {
	b := NewMapBuilder()
	a := b.InsertRW(Int(1))
	ro := b.InsertRO(String("const"))
	m := b.Build()

	v, err := m.Read(a)
	assert(t, err == nil, "unexpected error: %v", err)
	assert(t, v.Equal(Int(1)), "got %v", v)

	v, err = m.Read(ro)
	assert(t, err == nil, "unexpected error: %v", err)
	assert(t, v.Equal(String("const")), "got %v", v)
}

func TestMapReadMutRejectsReadOnly(t *testing.T) {
	b := NewMapBuilder()
	ro := b.InsertRO(Int(0))
	m := b.Build()

	_, err := m.ReadMut(ro)
	assert(t, err != nil, "writing to an Ro id should fail")
	e := err.(*Error)
	assert(t, e.Kind == ErrWriteToReadOnly, "expected WriteToReadOnly, got %v", e.Kind)
}

func TestMapReadUnknownVariable(t *testing.T) {
	m := NewMapBuilder().Build()
	_, err := m.Read(Id{Partition: RW, Index: 0})
	assert(t, err != nil, "reading an out-of-range id should fail")
	e := err.(*Error)
	assert(t, e.Kind == ErrUnknownVariable, "expected UnknownVariable, got %v", e.Kind)
}

func TestMapCloneDeepCopiesRWOnly(t *testing.T) {
	b := NewMapBuilder()
	rw := b.InsertRW(Int(1))
	ro := b.InsertRO(Int(2))
	m := b.Build()

	cp := m.clone()
	slot, err := cp.ReadMut(rw)
	assert(t, err == nil, "unexpected error: %v", err)
	*slot = Int(99)

	original, err := m.Read(rw)
	assert(t, err == nil, "unexpected error: %v", err)
	assert(t, original.Equal(Int(1)), "mutating the clone's rw partition should not affect the original, got %v", original)

	roVal, err := cp.Read(ro)
	assert(t, err == nil, "unexpected error: %v", err)
	assert(t, roVal.Equal(Int(2)), "ro partition should carry over unchanged")
}

func TestMapBuilderSelfReferentialLoop(t *testing.T) {
	b := NewMapBuilder()
	loopId := b.ReserveRO()
	body := InstructionList(Put{V: Int(1)}, CloneInstr{Id: loopId})
	err := b.Set(loopId, InstructionValue(body))
	assert(t, err == nil, "unexpected error: %v", err)

	m := b.Build()
	v, err := m.Read(loopId)
	assert(t, err == nil, "unexpected error: %v", err)
	assert(t, v.Kind() == TypeInstruction, "expected Instruction, got %v", v.Kind())
}
