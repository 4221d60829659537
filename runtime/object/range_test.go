package object_test

import (
	"testing"

	"github.com/geekysuavo/mattec/runtime/object"
	"github.com/stretchr/testify/require"
)

func TestRangeLenCountsInclusively(t *testing.T) {
	r := object.NewRange(1, 1, 5)
	require.Equal(t, 5, r.Len())
}

func TestRangeLenZeroStepIsEmpty(t *testing.T) {
	r := object.NewRange(1, 0, 5)
	require.Equal(t, 0, r.Len())
}

func TestRangeLenWrongDirectionIsEmpty(t *testing.T) {
	r := object.NewRange(5, 1, 1)
	require.Equal(t, 0, r.Len())
}

func TestRangeAtProducesInts(t *testing.T) {
	r := object.NewRange(2, 2, 8)
	require.Equal(t, int64(2), r.At(0).(*object.Int).Value())
	require.Equal(t, int64(4), r.At(1).(*object.Int).Value())
}

func TestRangeHorzcatConcatenatesValues(t *testing.T) {
	r := object.NewRange(1, 1, 3)
	v, err := object.Horzcat(nil, []object.Value{r, object.NewInt(4)})
	require.NoError(t, err)
	vec := v.(*object.Vector)
	require.Equal(t, 4, vec.Len())
}
