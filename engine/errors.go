package engine

import "fmt"

// ErrorKind is the closed taxonomy of errors the engine can raise. It is a
// single sum rather than per-package sentinel values because the
// interpreter's fallibility flag needs one condition ("did performing this
// instruction fail") that covers every family uniformly.
type ErrorKind int

const (
	ErrUnknownVariable ErrorKind = iota
	ErrWriteToReadOnly
	ErrPerformOnNonInstruction
	ErrUnsuppurtedOperation
	ErrZeroDiv
	ErrIntegerOverOrUnderFlow
	ErrFailedCast
	ErrInvalidCast
	ErrFailedParse
	ErrInvalidParse
	ErrNonStringParse
	ErrInvalidAcces
	ErrWrongKeyType
	ErrWrongInstructionInput
	ErrUnloadableValue
)

// Error carries the offending values/ids alongside its Kind, so a host can
// pattern-match on Kind and still recover the context of the failure. Only
// the fields relevant to Kind are populated; see the sites in this package
// that build an Error of each Kind for which fields it sets.
type Error struct {
	Kind ErrorKind

	Id          Id
	Op          Op
	Lhs, Rhs    Value
	Value       Value
	FromType    Type
	ToType      Type
	Key         Value
	Container   Type
	Instruction Instruction
}

func (e *Error) Error() string {
	switch e.Kind {
	case ErrUnknownVariable:
		return fmt.Sprintf("%v is not the id of a variable in use", e.Id)
	case ErrWriteToReadOnly:
		return fmt.Sprintf("%v is a read-only variable", e.Id)
	case ErrPerformOnNonInstruction:
		return fmt.Sprintf("Perform was used when the return value was not an instruction: %v", e.Value)
	case ErrUnsuppurtedOperation:
		return fmt.Sprintf("operation %v is not supported between %v and %v", e.Op, e.Lhs.kind, e.Rhs.kind)
	case ErrZeroDiv:
		return fmt.Sprintf("division by zero: %v / %v", e.Lhs, e.Rhs)
	case ErrIntegerOverOrUnderFlow:
		return fmt.Sprintf("integer %v overflowed or underflowed: %v and %v", e.Op, e.Lhs, e.Rhs)
	case ErrFailedCast:
		return fmt.Sprintf("%v could not be cast to %v", e.Value, e.ToType)
	case ErrInvalidCast:
		return fmt.Sprintf("no cast from %v to %v (value %v)", e.FromType, e.ToType, e.Value)
	case ErrFailedParse:
		return fmt.Sprintf("%v could not be parsed as %v", e.Value, e.ToType)
	case ErrInvalidParse:
		return fmt.Sprintf("no parse target %v", e.ToType)
	case ErrNonStringParse:
		return fmt.Sprintf("parse requires a String source, got %v", e.Value)
	case ErrInvalidAcces:
		return fmt.Sprintf("%v is not a valid access into %v", e.Key, e.Container)
	case ErrWrongKeyType:
		return fmt.Sprintf("%v is the wrong key type for a %v", e.Key, e.Container)
	case ErrWrongInstructionInput:
		return fmt.Sprintf("%v is not a valid input for %v", e.Value, e.Instruction)
	case ErrUnloadableValue:
		return fmt.Sprintf("loader refused to load %v", e.Value)
	default:
		return "unknown engine error"
	}
}
