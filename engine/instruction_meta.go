package engine

import "fmt"

// metaList is the Meta::List variant: it pushes its Items onto the stack in
// reverse order (so they execute front-to-back) and resets the return
// value to None.
type metaList struct {
	instrBase
	Items []Instruction
}

// NewMetaList wraps instrs in a Meta::List.
func NewMetaList(instrs []Instruction) Instruction {
	return metaList{Items: instrs}
}

func (l metaList) String() string { return fmt.Sprintf("List(%d)", len(l.Items)) }
func (l metaList) Equal(other Instruction) bool {
	o, ok := other.(metaList)
	if !ok || len(l.Items) != len(o.Items) {
		return false
	}
	for i := range l.Items {
		if !l.Items[i].Equal(o.Items[i]) {
			return false
		}
	}
	return true
}
func (l metaList) performMeta(_ Value, vars Map, stack Stack) (Value, Map, Stack, error) {
	for i := len(l.Items) - 1; i >= 0; i-- {
		stack = stack.Push(l.Items[i])
	}
	return None(), vars, stack, nil
}

type returnInstr struct{ instrBase }

// Return is the Meta instruction that clears the stack entirely, ending
// the program with whatever the return value currently is.
var Return Instruction = returnInstr{}

func (returnInstr) String() string { return "Return" }
func (returnInstr) Equal(other Instruction) bool {
	_, ok := other.(returnInstr)
	return ok
}
func (returnInstr) performMeta(rv Value, vars Map, _ Stack) (Value, Map, Stack, error) {
	return rv, vars, nil, nil
}

// Perform is the Meta instruction that calls its Instruction-valued input,
// binding Bound as that instruction's own input.
//
// The worked examples in spec.md §8 (scenario 4) establish that the bound
// value's carrier instruction runs before the called instruction — not
// after, as a literal reading of "push Put(bound_value) then push i" might
// suggest — since a trailing inner Put must be able to discard the bound
// value. This implementation pushes i first and Bound's carrier on top, so
// the carrier executes first and i executes last, consuming (and free to
// discard) whatever the carrier produced.
type Perform struct {
	instrBase
	Bound Value
}

func (p Perform) String() string { return fmt.Sprintf("Perform(%s)", p.Bound) }
func (p Perform) Equal(other Instruction) bool {
	o, ok := other.(Perform)
	return ok && p.Bound.Equal(o.Bound)
}
func (p Perform) performMeta(rv Value, vars Map, stack Stack) (Value, Map, Stack, error) {
	return performCall(rv, vars, stack, p, p.Bound)
}

// PerformClone is Perform, except the bound value is a clone of the
// variable at Id rather than a literal.
type PerformClone struct {
	instrBase
	Id Id
}

func (p PerformClone) String() string { return fmt.Sprintf("PerformClone(%v)", p.Id) }
func (p PerformClone) Equal(other Instruction) bool {
	o, ok := other.(PerformClone)
	return ok && p.Id == o.Id
}
func (p PerformClone) performMeta(rv Value, vars Map, stack Stack) (Value, Map, Stack, error) {
	bound, err := vars.Read(p.Id)
	if err != nil {
		return Value{}, vars, stack, err
	}
	return performCall(rv, vars, stack, p, bound.deepCopy())
}

// PerformTake is PerformClone, except the variable at Id is taken (reset to
// None) rather than cloned.
type PerformTake struct {
	instrBase
	Id Id
}

func (p PerformTake) String() string { return fmt.Sprintf("PerformTake(%v)", p.Id) }
func (p PerformTake) Equal(other Instruction) bool {
	o, ok := other.(PerformTake)
	return ok && p.Id == o.Id
}
func (p PerformTake) performMeta(rv Value, vars Map, stack Stack) (Value, Map, Stack, error) {
	bound, err := takeVariable(&vars, p.Id)
	if err != nil {
		return Value{}, vars, stack, err
	}
	return performCall(rv, vars, stack, p, bound)
}

func performCall(rv Value, vars Map, stack Stack, self Instruction, bound Value) (Value, Map, Stack, error) {
	if rv.kind != TypeInstruction {
		return Value{}, vars, stack, &Error{Kind: ErrPerformOnNonInstruction, Value: rv, Instruction: self}
	}
	stack = stack.Push(rv.instr)
	stack = stack.Push(Put{V: bound})
	return None(), vars, stack, nil
}
