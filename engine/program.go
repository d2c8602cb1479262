package engine

// Program is a serializable, self-contained unit of execution: a variable
// environment, a root instruction, and a fallibility flag that decides
// whether an uncaught error during a run propagates or is swallowed to
// None.
type Program struct {
	Variables  Map
	Root       Instruction
	IsFallible bool
}

// Equal compares two programs structurally, field by field. A nil receiver
// or argument is only equal to another nil.
func (p *Program) Equal(other *Program) bool {
	if p == nil || other == nil {
		return p == other
	}
	if p.IsFallible != other.IsFallible {
		return false
	}
	if !p.Root.Equal(other.Root) {
		return false
	}
	if len(p.Variables.rw) != len(other.Variables.rw) || len(p.Variables.ro) != len(other.Variables.ro) {
		return false
	}
	for i := range p.Variables.rw {
		if !p.Variables.rw[i].Equal(other.Variables.rw[i]) {
			return false
		}
	}
	for i := range p.Variables.ro {
		if !p.Variables.ro[i].Equal(other.Variables.ro[i]) {
			return false
		}
	}
	return true
}

// IntoFallible returns a copy of p with IsFallible set.
func (p *Program) IntoFallible() *Program {
	cp := *p
	cp.IsFallible = true
	return &cp
}

// IntoInfallible returns a copy of p with IsFallible cleared.
func (p *Program) IntoInfallible() *Program {
	cp := *p
	cp.IsFallible = false
	return &cp
}

// RunToCompletion drives p against input to a final Value in one call,
// using loader to service any Loading instructions encountered. A nil
// loader defaults to DefaultLoader, which rejects every load.
func (p *Program) RunToCompletion(input Value, loader Loader) (Value, error) {
	if loader == nil {
		loader = DefaultLoader{}
	}
	r := NewRunning(p, input)
	for {
		result, done, err := r.progress(loader)
		if err != nil {
			return Value{}, err
		}
		if done {
			return result, nil
		}
	}
}

// Builder assembles a Program's root instruction incrementally, mirroring
// the source's pattern of pushing instructions one at a time and flattening
// the accumulated list at the end.
type Builder struct {
	vars       Map
	instrs     []Instruction
	isFallible bool
}

// NewBuilder starts a Builder over an already-constructed variable Map.
func NewBuilder(vars Map) *Builder {
	return &Builder{vars: vars}
}

// PushInstruction appends instr to the program body.
func (b *Builder) PushInstruction(instr Instruction) *Builder {
	b.instrs = append(b.instrs, instr)
	return b
}

// IsFallible sets the built program's fallibility flag.
func (b *Builder) IsFallible(fallible bool) *Builder {
	b.isFallible = fallible
	return b
}

// Build freezes the accumulated instructions into a flattened root and
// returns the finished Program.
func (b *Builder) Build() *Program {
	return &Program{
		Variables:  b.vars,
		Root:       Flatten(NewMetaList(b.instrs)),
		IsFallible: b.isFallible,
	}
}
