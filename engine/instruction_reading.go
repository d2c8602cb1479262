package engine

import "fmt"

// CloneInstr is the Reading instruction that returns a clone of the
// variable at Id, ignoring its input.
type CloneInstr struct {
	instrBase
	Id Id
}

func (c CloneInstr) String() string { return fmt.Sprintf("Clone(%v)", c.Id) }
func (c CloneInstr) Equal(other Instruction) bool {
	o, ok := other.(CloneInstr)
	return ok && c.Id == o.Id
}
func (c CloneInstr) performReading(_ Value, vars *Map) (Value, error) {
	v, err := vars.Read(c.Id)
	if err != nil {
		return Value{}, err
	}
	return v.deepCopy(), nil
}

// GetCloneInstr is the Reading instruction that uses its input as a
// key/index into the variable at Id and returns a clone of the addressed
// element.
type GetCloneInstr struct {
	instrBase
	Id Id
}

func (g GetCloneInstr) String() string { return fmt.Sprintf("GetClone(%v)", g.Id) }
func (g GetCloneInstr) Equal(other Instruction) bool {
	o, ok := other.(GetCloneInstr)
	return ok && g.Id == o.Id
}
func (g GetCloneInstr) performReading(rv Value, vars *Map) (Value, error) {
	container, err := vars.Read(g.Id)
	if err != nil {
		return Value{}, err
	}
	inner, err := container.Get(rv)
	if err != nil {
		return Value{}, err
	}
	return inner.deepCopy(), nil
}

// OpCloneInstr is the Reading instruction that applies Operation to
// (input, clone-of-variable-at-Id).
type OpCloneInstr struct {
	instrBase
	Operation Op
	Id        Id
}

func (o OpCloneInstr) String() string { return fmt.Sprintf("OpClone(%s, %v)", o.Operation, o.Id) }
func (o OpCloneInstr) Equal(other Instruction) bool {
	p, ok := other.(OpCloneInstr)
	return ok && o.Operation == p.Operation && o.Id == p.Id
}
func (o OpCloneInstr) performReading(rv Value, vars *Map) (Value, error) {
	v, err := vars.Read(o.Id)
	if err != nil {
		return Value{}, err
	}
	return Apply(o.Operation, rv, v.deepCopy())
}
