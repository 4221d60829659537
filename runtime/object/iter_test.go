package object_test

import (
	"testing"

	"github.com/geekysuavo/mattec/runtime/object"
	"github.com/stretchr/testify/require"
)

func TestIterWalksRangeInOrder(t *testing.T) {
	r := object.NewRange(1, 1, 3)
	it := object.IterNew(nil, r)

	var got []int64
	for object.IterNext(nil, it) {
		got = append(got, object.IterGetValue(it).(*object.Int).Value())
	}
	require.Equal(t, []int64{1, 2, 3}, got)
}

func TestIterWalksVector(t *testing.T) {
	v := object.NewVector(10, 20, 30)
	it := object.IterNew(nil, v)

	count := 0
	for object.IterNext(nil, it) {
		count++
	}
	require.Equal(t, 3, count)
	require.False(t, object.IterNext(nil, it), "iterator must stay exhausted")
}

func TestIterEmptySequenceNeverYields(t *testing.T) {
	v := object.NewVector()
	it := object.IterNew(nil, v)
	require.False(t, object.IterNext(nil, it))
}
