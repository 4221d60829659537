package except_test

import (
	"errors"
	"testing"

	"github.com/geekysuavo/mattec/runtime/except"
	"github.com/stretchr/testify/require"
)

func TestNewFormatsMessage(t *testing.T) {
	e := except.New(except.SizeMismatch, "got %d, want %d", 2, 3)
	require.Equal(t, "matte:size-mismatch: got 2, want 3", e.Error())
}

func TestAddCallAccumulatesStack(t *testing.T) {
	e := except.New(except.UndefinedSymbol, "x")
	e.AddCall("a.m", "f", 10)
	e.AddCall("a.m", "g", 20)
	require.Len(t, e.Stack, 2)
	require.Equal(t, 20, e.Stack[1].Line)
}

func TestCopyIsIndependentOfOriginal(t *testing.T) {
	e := except.New(except.BadAlloc, "oom")
	e.AddCall("a.m", "f", 1)

	cp := e.Copy()
	cp.AddCall("a.m", "g", 2)

	require.Len(t, e.Stack, 1, "mutating the copy must not affect the original")
	require.Len(t, cp.Stack, 2)
}

func TestExceptionSatisfiesGoError(t *testing.T) {
	var err error = except.New(except.Iterator, "not iterable")
	var e *except.Exception
	require.True(t, errors.As(err, &e))
}

func TestDisplayIncludesCauseChain(t *testing.T) {
	root := except.New(except.InvalidInputArg, "bad arg")
	wrapped := except.New(except.Compiler, "call failed")
	wrapped.AddCause(root)

	out := wrapped.Display()
	require.Contains(t, out, "call failed")
	require.Contains(t, out, "caused by:")
	require.Contains(t, out, "bad arg")
}
