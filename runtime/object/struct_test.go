package object_test

import (
	"testing"

	"github.com/geekysuavo/mattec/runtime/object"
	"github.com/stretchr/testify/require"
)

func TestStructSetAndGet(t *testing.T) {
	s := object.NewStruct()
	s.Set("x", object.NewInt(1))
	s.Set("y", object.NewFloat(2.5))

	v, err := s.Get("y")
	require.NoError(t, err)
	require.InDelta(t, 2.5, v.(*object.Float).Value(), 1e-9)
}

func TestStructGetUndefinedFieldIsError(t *testing.T) {
	s := object.NewStruct()
	_, err := s.Get("missing")
	require.Error(t, err)
}

func TestStructRemoveField(t *testing.T) {
	s := object.NewStruct()
	s.Set("x", object.NewInt(1))
	require.True(t, s.Remove("x"))
	require.Equal(t, 0, s.Len())
}

func TestStructCopyIsIndependent(t *testing.T) {
	s := object.NewStruct()
	s.Set("x", object.NewInt(1))
	cp := s.Copy(nil).(*object.Struct)
	cp.Set("x", object.NewInt(2))

	v, err := s.Get("x")
	require.NoError(t, err)
	require.Equal(t, int64(1), v.(*object.Int).Value())
}

func TestStructDisplayOrdersFieldsByKey(t *testing.T) {
	s := object.NewStruct()
	s.Set("z", object.NewInt(1))
	s.Set("a", object.NewInt(2))

	out := s.Display("s")
	aIdx := indexOf(out, "a = 2")
	zIdx := indexOf(out, "z = 1")
	require.Greater(t, zIdx, aIdx)
}

func indexOf(s, substr string) int {
	for i := 0; i+len(substr) <= len(s); i++ {
		if s[i:i+len(substr)] == substr {
			return i
		}
	}
	return -1
}
