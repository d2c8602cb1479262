package engine

import (
	"encoding/json"
	"fmt"
)

// Value's wire form is a single-key object naming the active variant, e.g.
// {"Int": 7} or {"List": [{"Int": 1}, {"Bool": true}]}. None serializes as
// the bare string "None" rather than an object, matching a unit variant
// with no payload.

type wireId struct {
	Rw *int `json:"Rw,omitempty"`
	Ro *int `json:"Ro,omitempty"`
}

func (id Id) MarshalJSON() ([]byte, error) {
	idx := id.Index
	w := wireId{}
	switch id.Partition {
	case RO:
		w.Ro = &idx
	default:
		w.Rw = &idx
	}
	return json.Marshal(w)
}

func (id *Id) UnmarshalJSON(data []byte) error {
	var w wireId
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	switch {
	case w.Rw != nil:
		id.Partition, id.Index = RW, *w.Rw
	case w.Ro != nil:
		id.Partition, id.Index = RO, *w.Ro
	default:
		return fmt.Errorf("engine: id object has neither Rw nor Ro key")
	}
	return nil
}

func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case TypeNone:
		return json.Marshal("None")
	case TypeBool:
		return json.Marshal(map[string]bool{"Bool": v.b})
	case TypeInt:
		return json.Marshal(map[string]int64{"Int": v.i})
	case TypeFloat:
		return json.Marshal(map[string]float64{"Float": v.f})
	case TypeString:
		return json.Marshal(map[string]string{"String": v.s})
	case TypeId:
		return json.Marshal(map[string]Id{"Id": v.id})
	case TypeType:
		return json.Marshal(map[string]string{"Type": v.typ.String()})
	case TypeInstruction:
		payload, err := marshalInstruction(v.instr)
		if err != nil {
			return nil, err
		}
		return json.Marshal(map[string]json.RawMessage{"Instruction": payload})
	case TypeList:
		return json.Marshal(map[string][]Value{"List": v.list})
	case TypeMap:
		keys := v.Keys()
		ordered := make(map[string]Value, len(keys))
		for _, k := range keys {
			val, _ := v.MapGet(k)
			ordered[k] = val
		}
		return json.Marshal(map[string]map[string]Value{"Map": ordered})
	default:
		return nil, fmt.Errorf("engine: value has unknown kind %d", v.kind)
	}
}

func (v *Value) UnmarshalJSON(data []byte) error {
	var asString string
	if err := json.Unmarshal(data, &asString); err == nil {
		if asString == "None" {
			*v = None()
			return nil
		}
		return fmt.Errorf("engine: unrecognized bare value tag %q", asString)
	}

	var env map[string]json.RawMessage
	if err := json.Unmarshal(data, &env); err != nil {
		return err
	}
	if len(env) != 1 {
		return fmt.Errorf("engine: value object must have exactly one tag, got %d", len(env))
	}
	for tag, payload := range env {
		switch tag {
		case "Bool":
			var b bool
			if err := json.Unmarshal(payload, &b); err != nil {
				return err
			}
			*v = Bool(b)
		case "Int":
			var i int64
			if err := json.Unmarshal(payload, &i); err != nil {
				return err
			}
			*v = Int(i)
		case "Float":
			var f float64
			if err := json.Unmarshal(payload, &f); err != nil {
				return err
			}
			*v = Float(f)
		case "String":
			var s string
			if err := json.Unmarshal(payload, &s); err != nil {
				return err
			}
			*v = String(s)
		case "Id":
			var id Id
			if err := json.Unmarshal(payload, &id); err != nil {
				return err
			}
			*v = IdValue(id)
		case "Type":
			var name string
			if err := json.Unmarshal(payload, &name); err != nil {
				return err
			}
			t, err := typeFromName(name)
			if err != nil {
				return err
			}
			*v = TypeValue(t)
		case "Instruction":
			instr, err := unmarshalInstruction(payload)
			if err != nil {
				return err
			}
			*v = InstructionValue(instr)
		case "List":
			var xs []Value
			if err := json.Unmarshal(payload, &xs); err != nil {
				return err
			}
			*v = List(xs)
		case "Map":
			var m map[string]Value
			if err := json.Unmarshal(payload, &m); err != nil {
				return err
			}
			*v = Map(m)
		default:
			return fmt.Errorf("engine: unrecognized value tag %q", tag)
		}
		return nil
	}
	return nil
}

func typeFromName(name string) (Type, error) {
	for t := TypeNone; t <= TypeMap; t++ {
		if t.String() == name {
			return t, nil
		}
	}
	return TypeNone, fmt.Errorf("engine: unrecognized type name %q", name)
}

// marshalInstruction renders instr as a single-key {"Tag": payload} object.
// External is never serializable: it wraps a live Go MetaHandler with no
// wire representation.
func marshalInstruction(instr Instruction) (json.RawMessage, error) {
	if instr.IsNoop() {
		return json.Marshal("Noop")
	}

	type tagged struct {
		Tag     string
		Payload interface{}
	}

	var t tagged
	switch i := instr.(type) {
	case debugInstr:
		return json.Marshal("Debug")
	case sleepInstr:
		return json.Marshal("Sleep")
	case notInstr:
		return json.Marshal("Not")
	case toFallibleInstr:
		return json.Marshal("ToFallible")
	case toInfallibleInstr:
		return json.Marshal("ToInfallible")
	case returnInstr:
		return json.Marshal("Return")
	case loadInstr:
		return json.Marshal("Load")
	case Cond:
		t = tagged{"Cond", struct {
			IfTrue, IfFalse Value
		}{i.IfTrue, i.IfFalse}}
	case Put:
		t = tagged{"Put", i.V}
	case Coerce:
		t = tagged{"Coerce", i.To.String()}
	case ParseInstr:
		t = tagged{"Parse", i.To.String()}
	case OpInstr:
		t = tagged{"Op", struct {
			Operation Op
			Rhs       Value
		}{i.Operation, i.Rhs}}
	case CloneInstr:
		t = tagged{"Clone", i.Id}
	case GetCloneInstr:
		t = tagged{"GetClone", i.Id}
	case OpCloneInstr:
		t = tagged{"OpClone", struct {
			Operation Op
			Id        Id
		}{i.Operation, i.Id}}
	case TakeInstr:
		t = tagged{"Take", i.Id}
	case AssignInstr:
		t = tagged{"Assign", i.Id}
	case SwapInstr:
		t = tagged{"Swap", i.Id}
	case GetTakeInstr:
		t = tagged{"GetTake", i.Id}
	case MapAssignInstr:
		t = tagged{"MapAssign", struct {
			MapId Id
			Key   Value
		}{i.MapId, i.Key}}
	case OpTakeInstr:
		t = tagged{"OpTake", struct {
			Operation Op
			Id        Id
		}{i.Operation, i.Id}}
	case metaList:
		raw := make([]json.RawMessage, len(i.Items))
		for idx, item := range i.Items {
			payload, err := marshalInstruction(item)
			if err != nil {
				return nil, err
			}
			raw[idx] = payload
		}
		t = tagged{"List", raw}
	case Perform:
		t = tagged{"Perform", i.Bound}
	case PerformClone:
		t = tagged{"PerformClone", i.Id}
	case PerformTake:
		t = tagged{"PerformTake", i.Id}
	case loadingProgramInstr:
		t = tagged{"Program", i.Program}
	case externalInstr:
		return nil, fmt.Errorf("engine: External instructions cannot be serialized")
	default:
		return nil, fmt.Errorf("engine: unrecognized instruction variant %T", instr)
	}

	payload, err := json.Marshal(t.Payload)
	if err != nil {
		return nil, err
	}
	return json.Marshal(map[string]json.RawMessage{t.Tag: payload})
}

func unmarshalInstruction(data []byte) (Instruction, error) {
	var asString string
	if err := json.Unmarshal(data, &asString); err == nil {
		switch asString {
		case "Noop":
			return NoopInstruction, nil
		case "Debug":
			return Debug, nil
		case "Sleep":
			return Sleep, nil
		case "Not":
			return Not, nil
		case "ToFallible":
			return ToFallible, nil
		case "ToInfallible":
			return ToInfallible, nil
		case "Return":
			return Return, nil
		case "Load":
			return Load, nil
		default:
			return nil, fmt.Errorf("engine: unrecognized bare instruction tag %q", asString)
		}
	}

	var env map[string]json.RawMessage
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, err
	}
	if len(env) != 1 {
		return nil, fmt.Errorf("engine: instruction object must have exactly one tag, got %d", len(env))
	}
	for tag, payload := range env {
		switch tag {
		case "Cond":
			var p struct {
				IfTrue, IfFalse Value
			}
			if err := json.Unmarshal(payload, &p); err != nil {
				return nil, err
			}
			return Cond{IfTrue: p.IfTrue, IfFalse: p.IfFalse}, nil
		case "Put":
			var v Value
			if err := json.Unmarshal(payload, &v); err != nil {
				return nil, err
			}
			return Put{V: v}, nil
		case "Coerce":
			to, err := unmarshalType(payload)
			if err != nil {
				return nil, err
			}
			return Coerce{To: to}, nil
		case "Parse":
			to, err := unmarshalType(payload)
			if err != nil {
				return nil, err
			}
			return ParseInstr{To: to}, nil
		case "Op":
			var p struct {
				Operation Op
				Rhs       Value
			}
			if err := json.Unmarshal(payload, &p); err != nil {
				return nil, err
			}
			return OpInstr{Operation: p.Operation, Rhs: p.Rhs}, nil
		case "Clone":
			id, err := unmarshalId(payload)
			if err != nil {
				return nil, err
			}
			return CloneInstr{Id: id}, nil
		case "GetClone":
			id, err := unmarshalId(payload)
			if err != nil {
				return nil, err
			}
			return GetCloneInstr{Id: id}, nil
		case "OpClone":
			var p struct {
				Operation Op
				Id        Id
			}
			if err := json.Unmarshal(payload, &p); err != nil {
				return nil, err
			}
			return OpCloneInstr{Operation: p.Operation, Id: p.Id}, nil
		case "Take":
			id, err := unmarshalId(payload)
			if err != nil {
				return nil, err
			}
			return TakeInstr{Id: id}, nil
		case "Assign":
			id, err := unmarshalId(payload)
			if err != nil {
				return nil, err
			}
			return AssignInstr{Id: id}, nil
		case "Swap":
			id, err := unmarshalId(payload)
			if err != nil {
				return nil, err
			}
			return SwapInstr{Id: id}, nil
		case "GetTake":
			id, err := unmarshalId(payload)
			if err != nil {
				return nil, err
			}
			return GetTakeInstr{Id: id}, nil
		case "MapAssign":
			var p struct {
				MapId Id
				Key   Value
			}
			if err := json.Unmarshal(payload, &p); err != nil {
				return nil, err
			}
			return MapAssignInstr{MapId: p.MapId, Key: p.Key}, nil
		case "OpTake":
			var p struct {
				Operation Op
				Id        Id
			}
			if err := json.Unmarshal(payload, &p); err != nil {
				return nil, err
			}
			return OpTakeInstr{Operation: p.Operation, Id: p.Id}, nil
		case "List":
			var raw []json.RawMessage
			if err := json.Unmarshal(payload, &raw); err != nil {
				return nil, err
			}
			items := make([]Instruction, len(raw))
			for i, r := range raw {
				instr, err := unmarshalInstruction(r)
				if err != nil {
					return nil, err
				}
				items[i] = instr
			}
			return NewMetaList(items), nil
		case "Perform":
			var bound Value
			if err := json.Unmarshal(payload, &bound); err != nil {
				return nil, err
			}
			return Perform{Bound: bound}, nil
		case "PerformClone":
			id, err := unmarshalId(payload)
			if err != nil {
				return nil, err
			}
			return PerformClone{Id: id}, nil
		case "PerformTake":
			id, err := unmarshalId(payload)
			if err != nil {
				return nil, err
			}
			return PerformTake{Id: id}, nil
		case "Program":
			var p Program
			if err := json.Unmarshal(payload, &p); err != nil {
				return nil, err
			}
			return NewLoadingProgram(&p), nil
		default:
			return nil, fmt.Errorf("engine: unrecognized instruction tag %q", tag)
		}
	}
	return nil, fmt.Errorf("engine: empty instruction object")
}

func unmarshalId(data []byte) (Id, error) {
	var id Id
	err := json.Unmarshal(data, &id)
	return id, err
}

func unmarshalType(data []byte) (Type, error) {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return TypeNone, err
	}
	return typeFromName(name)
}

func (p *Program) UnmarshalJSON(data []byte) error {
	var wire struct {
		Variables struct {
			Rw []Value `json:"rw"`
			Ro []Value `json:"ro"`
		} `json:"variables"`
		Instruction json.RawMessage `json:"instruction"`
		IsFallible  bool            `json:"is_fallible"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	instr, err := unmarshalInstruction(wire.Instruction)
	if err != nil {
		return err
	}
	p.Variables = Map{rw: wire.Variables.Rw, ro: wire.Variables.Ro}
	p.Root = instr
	p.IsFallible = wire.IsFallible
	return nil
}

func (p *Program) MarshalJSON() ([]byte, error) {
	instrPayload, err := marshalInstruction(p.Root)
	if err != nil {
		return nil, err
	}
	wire := struct {
		Variables struct {
			Rw []Value `json:"rw"`
			Ro []Value `json:"ro"`
		} `json:"variables"`
		Instruction json.RawMessage `json:"instruction"`
		IsFallible  bool            `json:"is_fallible"`
	}{
		Instruction: instrPayload,
		IsFallible:  p.IsFallible,
	}
	wire.Variables.Rw = p.Variables.rw
	wire.Variables.Ro = p.Variables.ro
	return json.Marshal(wire)
}
