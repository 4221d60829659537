package zone_test

import (
	"testing"

	"github.com/geekysuavo/mattec/runtime/zone"
	"github.com/stretchr/testify/require"
)

func TestAllocReusesFreedCellBeforeGrowing(t *testing.T) {
	z := zone.New(nil)
	stats := z.Stats()
	require.Equal(t, 1, stats.Blocks)

	c1 := z.Alloc()
	c1.Value = 42
	z.Free(c1)

	c2 := z.Alloc()
	require.Nil(t, c2.Value, "freed cell must be zeroed before reuse")
	require.Equal(t, 1, z.Stats().Blocks, "reuse must not grow the zone")
}

func TestAllocGrowsWhenEveryBlockIsFull(t *testing.T) {
	z := zone.New(nil)
	before := z.Stats().Blocks
	for i := 0; i < 64; i++ {
		z.Alloc()
	}
	require.Greater(t, z.Stats().Blocks, before)
}

func TestStatsTracksAllocatedAndFreed(t *testing.T) {
	z := zone.New(nil)
	a, b := z.Alloc(), z.Alloc()
	z.Free(a)
	z.Free(b)

	stats := z.Stats()
	require.Equal(t, 2, stats.Allocated)
	require.Equal(t, 2, stats.Freed)
}

func TestInitReinitializesInPlace(t *testing.T) {
	parent := zone.New(nil)
	var z zone.Zone
	z.Init(parent)
	require.Same(t, parent, z.Parent)

	z.Alloc()
	require.Equal(t, 1, z.Stats().Allocated)

	z.Init(nil)
	require.Nil(t, z.Parent)
	require.Equal(t, 0, z.Stats().Allocated)
}

func TestDestroyReleasesBlocks(t *testing.T) {
	z := zone.New(nil)
	z.Alloc()
	z.Destroy()
	require.Equal(t, 0, z.Stats().Blocks)
}

// destroyCounter is a fake Cell.Value that records how many times its
// Destroy method runs, standing in for a resource-owning object.Value
// since none of this repo's current matte types need one.
type destroyCounter struct {
	n *int
}

func (d destroyCounter) Destroy(z *zone.Zone) { *d.n++ }

func TestDestroyInvokesEveryLiveValueExactlyOnce(t *testing.T) {
	z := zone.New(nil)
	n1, n2, n3 := 0, 0, 0

	live1 := z.Alloc()
	live1.Value = destroyCounter{n: &n1}
	live2 := z.Alloc()
	live2.Value = destroyCounter{n: &n2}

	freed := z.Alloc()
	freed.Value = destroyCounter{n: &n3}
	z.Free(freed)

	z.Destroy()

	require.Equal(t, 1, n1, "live cell's destructor must run exactly once")
	require.Equal(t, 1, n2, "live cell's destructor must run exactly once")
	require.Equal(t, 0, n3, "a cell already freed before Destroy must not be re-destructed")
}
