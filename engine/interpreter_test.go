package engine

import "testing"

// stubLoader answers every Load with a fixed value, recording the request
// it was last asked to materialize.
type stubLoader struct {
	reply     Value
	lastAsked Value
	callCount int
}

func (s *stubLoader) Load(request Value) (Value, error) {
	s.callCount++
	s.lastAsked = request
	return s.reply, nil
}

func TestLoadDelegatesToLoader(t *testing.T) {
	b := NewBuilder(NewMapBuilder().Build())
	b.PushInstruction(PutString("key"))
	b.PushInstruction(Load)
	p := b.Build()

	stub := &stubLoader{reply: Int(7)}
	out, err := p.RunToCompletion(None(), stub)
	assert(t, err == nil, "unexpected error: %v", err)
	assert(t, out.Equal(Int(7)), "got %v", out)
	assert(t, stub.callCount == 1, "expected exactly one Load call, got %d", stub.callCount)
	assert(t, stub.lastAsked.Equal(String("key")), "expected the loader to see the request value, got %v", stub.lastAsked)
}

func TestLoadWithNilLoaderUsesDefaultLoaderAndFails(t *testing.T) {
	b := NewBuilder(NewMapBuilder().Build())
	b.PushInstruction(Load)
	p := b.Build()

	_, err := p.RunToCompletion(String("anything"), nil)
	assert(t, err != nil, "DefaultLoader should reject every load")
	e, ok := err.(*Error)
	assert(t, ok, "expected *Error, got %T", err)
	assert(t, e.Kind == ErrUnloadableValue, "expected UnloadableValue, got %v", e.Kind)
}

func TestLoadWithNilLoaderIsSwallowedWhenFallible(t *testing.T) {
	b := NewBuilder(NewMapBuilder().Build())
	b.PushInstruction(Load)
	b.IsFallible(true)
	p := b.Build()

	out := mustRun(t, p, String("anything"))
	assert(t, out.Equal(None()), "DefaultLoader rejection should be swallowed to None under fallibility, got %v", out)
}

// TestLoadingProgramRunsSubProgramAgainstCurrentValue builds an outer
// program whose sole instruction is a Loading::Program wrapping a
// sub-program that doubles its input, and checks the sub-program's result
// becomes the outer return value — the mechanism loader.SQLite/WebSocket
// style collaborators never touch directly, but which the Program Loading
// variant itself depends on for any embedded call.
func TestLoadingProgramRunsSubProgramAgainstCurrentValue(t *testing.T) {
	sub := NewBuilder(NewMapBuilder().Build())
	sub.PushInstruction(OpInstr{Operation: OpMul, Rhs: Int(2)})
	subProgram := sub.Build()

	outer := NewBuilder(NewMapBuilder().Build())
	outer.PushInstruction(NewLoadingProgram(subProgram))
	p := outer.Build()

	out := mustRun(t, p, Int(21))
	assert(t, out.Equal(Int(42)), "embedded sub-program should run against the current value, got %v", out)
}

// TestLoadingProgramPropagatesLoaderToSubProgram confirms the same Loader
// passed to the outer RunToCompletion is the one the embedded sub-program
// sees for its own Load instructions.
func TestLoadingProgramPropagatesLoaderToSubProgram(t *testing.T) {
	sub := NewBuilder(NewMapBuilder().Build())
	sub.PushInstruction(Load)
	subProgram := sub.Build()

	outer := NewBuilder(NewMapBuilder().Build())
	outer.PushInstruction(NewLoadingProgram(subProgram))
	p := outer.Build()

	stub := &stubLoader{reply: String("materialized")}
	out, err := p.RunToCompletion(String("ref"), stub)
	assert(t, err == nil, "unexpected error: %v", err)
	assert(t, out.Equal(String("materialized")), "got %v", out)
	assert(t, stub.callCount == 1, "expected the sub-program's Load to reach the outer loader, got %d calls", stub.callCount)
}

// TestLoadingProgramSubProgramFallibilityIsIndependent confirms a
// sub-program's own IsFallible flag governs errors raised inside it,
// independent of the outer program's flag.
func TestLoadingProgramSubProgramFallibilityIsIndependent(t *testing.T) {
	sub := NewBuilder(NewMapBuilder().Build())
	sub.PushInstruction(Load)
	sub.IsFallible(true)
	subProgram := sub.Build()

	outer := NewBuilder(NewMapBuilder().Build())
	outer.PushInstruction(NewLoadingProgram(subProgram))
	outer.PushInstruction(Not)
	p := outer.Build()

	_, err := p.RunToCompletion(String("ref"), nil)
	assert(t, err != nil, "the outer program is not fallible, so Not on a swallowed None should surface WrongInstructionInput")
	e := err.(*Error)
	assert(t, e.Kind == ErrWrongInstructionInput, "expected WrongInstructionInput, got %v", e.Kind)
}

func TestRunConvenienceWrapperMatchesRunToCompletion(t *testing.T) {
	b := NewBuilder(NewMapBuilder().Build())
	b.PushInstruction(PutInt(5))
	p := b.Build()

	out, err := Run(p, None(), nil)
	assert(t, err == nil, "unexpected error: %v", err)
	assert(t, out.Equal(Int(5)), "got %v", out)
}
