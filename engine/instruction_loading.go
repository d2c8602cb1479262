package engine

// loadingProgramInstr is the Loading::Program variant: it runs an embedded
// sub-program against the current return value, using whatever Loader the
// outer run was given, and returns the sub-program's output. This is how
// sub-programs are called.
type loadingProgramInstr struct {
	instrBase
	Program *Program
}

// NewLoadingProgram wraps a sub-program as a Loading instruction.
func NewLoadingProgram(p *Program) Instruction {
	return loadingProgramInstr{Program: p}
}

func (l loadingProgramInstr) String() string { return "Loading.Program" }
func (l loadingProgramInstr) Equal(other Instruction) bool {
	o, ok := other.(loadingProgramInstr)
	return ok && l.Program.Equal(o.Program)
}
func (l loadingProgramInstr) performLoading(rv Value, loader Loader) (Value, error) {
	return l.Program.RunToCompletion(rv, loader)
}

type loadInstr struct{ instrBase }

// Load is the Loading instruction that asks the current Loader to
// materialize a value from the return value.
var Load Instruction = loadInstr{}

func (loadInstr) String() string { return "Load" }
func (loadInstr) Equal(other Instruction) bool {
	_, ok := other.(loadInstr)
	return ok
}
func (loadInstr) performLoading(rv Value, loader Loader) (Value, error) {
	return loader.Load(rv)
}

// Loader is the single-method capability the Loading family consumes. It is
// supplied at run-to-completion time, never stored on a Program.
type Loader interface {
	Load(Value) (Value, error)
}

// DefaultLoader rejects every load request. It is the only Loader
// implementation the engine itself ships; concrete loaders (reading from a
// database, a network peer, ...) are host collaborators — see the sibling
// loader package for examples.
type DefaultLoader struct{}

func (DefaultLoader) Load(v Value) (Value, error) {
	return Value{}, &Error{Kind: ErrUnloadableValue, Value: v}
}
