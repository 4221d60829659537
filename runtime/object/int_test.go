package object_test

import (
	"testing"

	"github.com/geekysuavo/mattec/runtime/object"
	"github.com/stretchr/testify/require"
)

func TestIntArithmeticDispatch(t *testing.T) {
	sum, err := object.Plus(nil, object.NewInt(2), object.NewInt(3))
	require.NoError(t, err)
	require.Equal(t, int64(5), sum.(*object.Int).Value())
}

func TestIntComparisonReturnsBoolInt(t *testing.T) {
	lt, err := object.Lt(nil, object.NewInt(1), object.NewInt(2))
	require.NoError(t, err)
	require.Equal(t, int64(1), lt.(*object.Int).Value())
}

func TestIntUndefinedAcrossTypeMismatch(t *testing.T) {
	_, err := object.Plus(nil, object.NewInt(1), object.NewString("x"))
	require.Error(t, err)
}

func TestIntColonBuildsRange(t *testing.T) {
	r, err := object.Colon(nil, object.NewInt(1), object.NewInt(2), object.NewInt(7))
	require.NoError(t, err)
	rng := r.(*object.Range)
	require.Equal(t, 4, rng.Len())
}

func TestIntTruth(t *testing.T) {
	require.True(t, object.NewInt(1).Truth())
	require.False(t, object.NewInt(0).Truth())
}
