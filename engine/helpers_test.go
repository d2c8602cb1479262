package engine

import (
	"fmt"
	"testing"
)

func assert(t *testing.T, cond bool, format string, args ...any) {
	t.Helper()
	if !cond {
		t.Fatalf(fmt.Sprintf("%v %s", cond, format), args...)
	}
}

func mustRun(t *testing.T, p *Program, input Value) Value {
	t.Helper()
	out, err := p.RunToCompletion(input, nil)
	assert(t, err == nil, "unexpected error: %v", err)
	return out
}
