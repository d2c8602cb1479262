package engine

// MetaHandler is the capability an External instruction delegates to: a
// caller-supplied object implementing the full Meta signature. It is the
// escape hatch for embedding host-defined effects without extending the
// closed instruction set.
type MetaHandler interface {
	Perform(returnValue Value, vars Map, stack Stack) (Value, Map, Stack, error)
}

// externalInstr wraps a MetaHandler. It is never serializable, and two
// External instructions always compare unequal by definition.
type externalInstr struct {
	instrBase
	Handler MetaHandler
}

// NewExternal wraps h as an External instruction.
func NewExternal(h MetaHandler) Instruction {
	return externalInstr{Handler: h}
}

func (externalInstr) String() string { return "External" }

// Equal is always false: External instructions have no serializable
// identity to compare by, so equality is defined to never hold.
func (externalInstr) Equal(Instruction) bool { return false }

func (e externalInstr) performMeta(rv Value, vars Map, stack Stack) (Value, Map, Stack, error) {
	return e.Handler.Perform(rv, vars, stack)
}
