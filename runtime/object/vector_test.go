package object_test

import (
	"testing"

	"github.com/geekysuavo/mattec/runtime/object"
	"github.com/stretchr/testify/require"
)

func TestVectorElementwisePlus(t *testing.T) {
	a := object.NewVector(1, 2, 3)
	b := object.NewVector(10, 20, 30)
	sum, err := object.Plus(nil, a, b)
	require.NoError(t, err)
	require.Equal(t, object.NewVector(11, 22, 33), sum)
}

func TestVectorPlusScalarBroadcasts(t *testing.T) {
	a := object.NewVector(1, 2, 3)
	sum, err := object.Plus(nil, a, object.NewInt(1))
	require.NoError(t, err)
	require.Equal(t, object.NewVector(2, 3, 4), sum)
}

func TestVectorSizeMismatchIsError(t *testing.T) {
	a := object.NewVector(1, 2)
	b := object.NewVector(1, 2, 3)
	_, err := object.Plus(nil, a, b)
	require.Error(t, err)
}

func TestVectorMtimesIsDotProduct(t *testing.T) {
	a := object.NewVector(1, 2, 3)
	b := object.NewVector(4, 5, 6)
	v, err := object.Mtimes(nil, a, b)
	require.NoError(t, err)
	require.InDelta(t, 32.0, v.(*object.Float).Value(), 1e-9)
}

func TestVectorSubsrefByIntAndRange(t *testing.T) {
	v := object.NewVector(10, 20, 30, 40)
	one, err := object.Subsref(nil, v, object.NewInt(2))
	require.NoError(t, err)
	require.InDelta(t, 20.0, one.(*object.Float).Value(), 1e-9)

	r := object.NewRange(2, 1, 3)
	slice, err := object.Subsref(nil, v, r)
	require.NoError(t, err)
	require.Equal(t, object.NewVector(20, 30), slice)
}

func TestVectorCtransposeTogglesColumn(t *testing.T) {
	v := object.NewVector(1, 2, 3)
	tv, err := object.Ctranspose(nil, v)
	require.NoError(t, err)
	require.Contains(t, tv.Display("x"), "\n")
}
