package engine

import "fmt"

// TakeInstr is the Mutating instruction that resets the variable at Id to
// None and returns its former value, ignoring its input.
type TakeInstr struct {
	instrBase
	Id Id
}

func (t TakeInstr) String() string { return fmt.Sprintf("Take(%v)", t.Id) }
func (t TakeInstr) Equal(other Instruction) bool {
	o, ok := other.(TakeInstr)
	return ok && t.Id == o.Id
}
func (t TakeInstr) performMutating(_ Value, vars Map) (Value, Map, error) {
	taken, err := takeVariable(&vars, t.Id)
	if err != nil {
		return Value{}, vars, err
	}
	return taken, vars, nil
}

// AssignInstr is the Mutating instruction that overwrites the variable at
// Id with its input and returns None.
type AssignInstr struct {
	instrBase
	Id Id
}

func (a AssignInstr) String() string { return fmt.Sprintf("Assign(%v)", a.Id) }
func (a AssignInstr) Equal(other Instruction) bool {
	o, ok := other.(AssignInstr)
	return ok && a.Id == o.Id
}
func (a AssignInstr) performMutating(rv Value, vars Map) (Value, Map, error) {
	slot, err := vars.ReadMut(a.Id)
	if err != nil {
		return Value{}, vars, err
	}
	*slot = rv
	return None(), vars, nil
}

// SwapInstr is the Mutating instruction that writes its input at Id and
// returns the former value.
type SwapInstr struct {
	instrBase
	Id Id
}

func (s SwapInstr) String() string { return fmt.Sprintf("Swap(%v)", s.Id) }
func (s SwapInstr) Equal(other Instruction) bool {
	o, ok := other.(SwapInstr)
	return ok && s.Id == o.Id
}
func (s SwapInstr) performMutating(rv Value, vars Map) (Value, Map, error) {
	slot, err := vars.ReadMut(s.Id)
	if err != nil {
		return Value{}, vars, err
	}
	prev := *slot
	*slot = rv
	return prev, vars, nil
}

// GetTakeInstr is the Mutating instruction that uses its (maybe-read)
// input as a key/index into the variable at Id, removing and returning the
// addressed inner element.
type GetTakeInstr struct {
	instrBase
	Id Id
}

func (g GetTakeInstr) String() string { return fmt.Sprintf("GetTake(%v)", g.Id) }
func (g GetTakeInstr) Equal(other Instruction) bool {
	o, ok := other.(GetTakeInstr)
	return ok && g.Id == o.Id
}
func (g GetTakeInstr) performMutating(rv Value, vars Map) (Value, Map, error) {
	key, err := vars.MaybeRead(rv)
	if err != nil {
		return Value{}, vars, err
	}
	slot, err := vars.ReadMut(g.Id)
	if err != nil {
		return Value{}, vars, err
	}
	taken, err := slot.GetTake(key)
	if err != nil {
		return Value{}, vars, err
	}
	return taken, vars, nil
}

// MapAssignInstr is the Mutating instruction that locates Key (maybe-read)
// inside the variable MapId and overwrites that slot with its input,
// returning None.
type MapAssignInstr struct {
	instrBase
	MapId Id
	Key   Value
}

func (m MapAssignInstr) String() string { return fmt.Sprintf("MapAssign(%v, %s)", m.MapId, m.Key) }
func (m MapAssignInstr) Equal(other Instruction) bool {
	o, ok := other.(MapAssignInstr)
	return ok && m.MapId == o.MapId && m.Key.Equal(o.Key)
}
func (m MapAssignInstr) performMutating(rv Value, vars Map) (Value, Map, error) {
	key, err := vars.MaybeRead(m.Key)
	if err != nil {
		return Value{}, vars, err
	}
	container, err := vars.ReadMut(m.MapId)
	if err != nil {
		return Value{}, vars, err
	}
	slot, err := container.GetMut(key)
	if err != nil {
		return Value{}, vars, err
	}
	*slot = rv
	return None(), vars, nil
}

// OpTakeInstr is the Mutating instruction that applies Operation to
// (input, variable-taken-from-Id).
type OpTakeInstr struct {
	instrBase
	Operation Op
	Id        Id
}

func (o OpTakeInstr) String() string { return fmt.Sprintf("OpTake(%s, %v)", o.Operation, o.Id) }
func (o OpTakeInstr) Equal(other Instruction) bool {
	p, ok := other.(OpTakeInstr)
	return ok && o.Operation == p.Operation && o.Id == p.Id
}
func (o OpTakeInstr) performMutating(rv Value, vars Map) (Value, Map, error) {
	taken, err := takeVariable(&vars, o.Id)
	if err != nil {
		return Value{}, vars, err
	}
	result, err := Apply(o.Operation, rv, taken)
	if err != nil {
		return Value{}, vars, err
	}
	return result, vars, nil
}

func takeVariable(vars *Map, id Id) (Value, error) {
	slot, err := vars.ReadMut(id)
	if err != nil {
		return Value{}, err
	}
	taken := *slot
	*slot = None()
	return taken, nil
}
