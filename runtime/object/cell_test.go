package object_test

import (
	"testing"

	"github.com/geekysuavo/mattec/runtime/object"
	"github.com/stretchr/testify/require"
)

func TestCellGetAndSetByLinearIndex(t *testing.T) {
	c := object.NewCellWithSize(1, 3)
	require.NoError(t, c.Set(2, object.NewString("mid")))

	v, err := c.Get(2)
	require.NoError(t, err)
	require.Equal(t, "mid", v.(*object.String).Value())
}

func TestCellSetGrowsPastEnd(t *testing.T) {
	c := object.NewCell(object.NewInt(1))
	require.NoError(t, c.Set(3, object.NewInt(9)))
	require.Equal(t, 3, c.Len())

	v, err := c.Get(3)
	require.NoError(t, err)
	require.Equal(t, int64(9), v.(*object.Int).Value())
}

func TestCellSubsrefOutOfBoundsIsError(t *testing.T) {
	c := object.NewCell(object.NewInt(1))
	_, err := object.Subsref(nil, c, object.NewInt(5))
	require.Error(t, err)
}

func TestCellHorzcatConcatenatesRows(t *testing.T) {
	a := object.NewCell(object.NewInt(1), object.NewInt(2))
	b := object.NewCell(object.NewInt(3))
	v, err := object.Horzcat(nil, []object.Value{a, b})
	require.NoError(t, err)
	require.Equal(t, 3, v.(*object.Cell).Len())
}

func TestCellCopyIsIndependent(t *testing.T) {
	c := object.NewCell(object.NewInt(1))
	cp := c.Copy(nil).(*object.Cell)
	require.NoError(t, cp.Set(1, object.NewInt(99)))

	orig, err := c.Get(1)
	require.NoError(t, err)
	require.Equal(t, int64(1), orig.(*object.Int).Value())
}
