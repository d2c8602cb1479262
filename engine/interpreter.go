package engine

// Running is a resumable, stepped execution of a Program: a snapshot of its
// variable environment, control stack and current return value. Stepping it
// one instruction at a time (Step) rather than only offering a closed
// RunToCompletion lets a host interleave program execution with its own
// work, the way the teacher's fetch-decode-execute loop advances one
// instruction per call.
type Running struct {
	program *Program
	vars    Map
	stack   Stack
	value   Value
}

// NewRunning starts a fresh Running over a clone of program's variables,
// with input as the initial return value and the program's root instruction
// as the only pending work.
func NewRunning(program *Program, input Value) *Running {
	return &Running{
		program: program,
		vars:    program.Variables.clone(),
		stack:   Stack{program.Root},
		value:   input,
	}
}

// Finished reports whether the run has no more pending instructions.
func (r *Running) Finished() bool {
	return len(r.stack) == 0
}

// Value returns the run's current return value.
func (r *Running) Value() Value {
	return r.value
}

// Step executes exactly one pending instruction. It reports done=true once
// the stack empties, at which point Value holds the final result. An error
// returned from an instruction is swallowed to None (clearing the stack,
// i.e. ending the run) when the program is fallible; otherwise it is
// returned to the caller, who decides whether to abandon the run.
func (r *Running) Step() (done bool, err error) {
	if r.Finished() {
		return true, nil
	}

	var instr Instruction
	instr, r.stack = r.stack.Pop()

	if instr.IsNoop() {
		return r.Finished(), nil
	}

	nextValue, nextVars, nextStack, stepErr := dispatch(instr, r.value, r.vars, r.stack)
	if stepErr != nil {
		if r.program.IsFallible {
			r.value = None()
			r.stack = nil
			return true, nil
		}
		return true, stepErr
	}

	r.value, r.vars, r.stack = nextValue, nextVars, nextStack
	return r.Finished(), nil
}

// progress is Step plus loader routing for Loading instructions; Step alone
// cannot service the Loading family since it has no Loader to call.
func (r *Running) progress(loader Loader) (Value, bool, error) {
	if r.Finished() {
		return r.value, true, nil
	}

	var instr Instruction
	instr, r.stack = r.stack.Pop()

	if instr.IsNoop() {
		return r.value, r.Finished(), nil
	}

	var (
		nextValue Value
		nextVars  = r.vars
		nextStack = r.stack
		stepErr   error
	)

	if li, ok := instr.(loadingInstruction); ok {
		nextValue, stepErr = li.performLoading(r.value, loader)
	} else {
		nextValue, nextVars, nextStack, stepErr = dispatch(instr, r.value, r.vars, r.stack)
	}

	if stepErr != nil {
		if r.program.IsFallible {
			r.value, r.stack = None(), nil
			return r.value, true, nil
		}
		return Value{}, false, stepErr
	}

	r.value, r.vars, r.stack = nextValue, nextVars, nextStack
	return r.value, r.Finished(), nil
}

// dispatch performs every family except Loading, which progress handles
// separately since it alone needs a Loader rather than variables/stack.
func dispatch(instr Instruction, value Value, vars Map, stack Stack) (Value, Map, Stack, error) {
	switch i := instr.(type) {
	case pureInstruction:
		v, err := i.performPure(value)
		return v, vars, stack, err
	case readingInstruction:
		v, err := i.performReading(value, &vars)
		return v, vars, stack, err
	case mutatingInstruction:
		v, newVars, err := i.performMutating(value, vars)
		return v, newVars, stack, err
	case metaInstruction:
		return i.performMeta(value, vars, stack)
	case loadingInstruction:
		// Reached only via Step, which has no loader; Loading instructions
		// are otherwise intercepted in progress before dispatch is called.
		return Value{}, vars, stack, &Error{Kind: ErrUnloadableValue, Value: value}
	default:
		return Value{}, vars, stack, &Error{Kind: ErrWrongInstructionInput, Value: value, Instruction: instr}
	}
}

// Run drives a fresh Running to completion using loader, without requiring
// a *Program receiver — a thin convenience wrapper equivalent to
// Program.RunToCompletion, taking the program as its first argument.
func Run(program *Program, input Value, loader Loader) (Value, error) {
	return program.RunToCompletion(input, loader)
}
