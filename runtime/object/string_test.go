package object_test

import (
	"testing"

	"github.com/geekysuavo/mattec/runtime/object"
	"github.com/stretchr/testify/require"
)

func TestStringPlusConcatenates(t *testing.T) {
	v, err := object.Plus(nil, object.NewString("foo"), object.NewString("bar"))
	require.NoError(t, err)
	require.Equal(t, "foobar", v.(*object.String).Value())
}

func TestStringComparisonIsLexicographic(t *testing.T) {
	lt, err := object.Lt(nil, object.NewString("abc"), object.NewString("abd"))
	require.NoError(t, err)
	require.Equal(t, int64(1), lt.(*object.Int).Value())
}

func TestStringSubsrefByIntAndRange(t *testing.T) {
	s := object.NewString("hello")
	c, err := object.Subsref(nil, s, object.NewInt(1))
	require.NoError(t, err)
	require.Equal(t, "h", c.(*object.String).Value())

	sub, err := object.Subsref(nil, s, object.NewRange(2, 1, 4))
	require.NoError(t, err)
	require.Equal(t, "ell", sub.(*object.String).Value())
}

func TestStringHorzcatJoinsOperands(t *testing.T) {
	v, err := object.Horzcat(nil, []object.Value{
		object.NewString("a"), object.NewString("b"), object.NewString("c"),
	})
	require.NoError(t, err)
	require.Equal(t, "abc", v.(*object.String).Value())
}

func TestStringNotEmptyIsTrue(t *testing.T) {
	v, err := object.Not(nil, object.NewString(""))
	require.NoError(t, err)
	require.Equal(t, int64(1), v.(*object.Int).Value())
}
