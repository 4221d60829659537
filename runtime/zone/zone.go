// Package zone implements the per-call-frame arena allocator the emitted
// runtime relies on: a value is allocated from a zone, copied into a
// longer-lived zone when it escapes (assignment to a global), and the whole
// zone is released in one shot when its owning call frame unwinds.
//
// The original implementation (original_source/lib/zone.c) hands out raw
// fixed-size memory cells from growable blocks and tracks availability with
// a per-block index stack. Go already owns the backing storage for any
// object.Value through its own GC, so this package keeps the *shape* of that
// contract -- growable blocks, a free list, block-local reuse before
// growing -- without reimplementing manual memory layout: a Cell is a
// reusable box for exactly one object.Value, and zone.Zone is the reusable
// pool of cells, grounded on lang/machine.Call's "use slack portion of
// thread.stack as a freelist" trick applied at cell granularity instead of
// call-frame granularity.
package zone

// Cell is a single allocation unit: a box holding one runtime value plus a
// back-pointer to the block it was carved from, so Free can push it back
// onto that block's own free stack in O(1) -- the original's zone_free scans
// its block list by address range to find the owner; a Cell already knows
// its owner here, which is the one place this port diverges from a literal
// transliteration of the C pointer arithmetic.
type Cell struct {
	Value any
	block *block
	index int
}

type block struct {
	cells []Cell
	avail []int // stack of free indices into cells, mirrors z->av
}

// Zone is a growable pool of Cells, scoped to one call frame's lifetime.
// Parent is the enclosing zone a nested call's own zone was initialized
// against (original_source's zone_init(z, n) takes a unit count, not a
// parent zone; this repo's emitter instead always calls zone_init(&_z1,
// _z0) with the caller's zone as a bookkeeping parent -- see DESIGN.md).
type Zone struct {
	Parent *Zone

	blocks []*block

	allocated int
	freed     int
}

// initialBlockSize is the unit count original_source's driver reserves for
// a fresh zone (ZONE_UNIT-sized cells, init(n) call sites in compiler.c all
// pass a small constant); chosen here to match that order of magnitude
// rather than ported from a literal byte constant that has no meaning once
// cells are Go values instead of raw memory.
const initialBlockSize = 8

// New creates a zone with one initial block of cells already available,
// scoped to parent (nil for a root zone with no enclosing caller).
func New(parent *Zone) *Zone {
	z := &Zone{Parent: parent}
	z.grow(initialBlockSize)
	return z
}

// Init re-initializes z in place, exactly like zone_init reusing an
// already-declared ZoneData struct instead of allocating a fresh Zone --
// the emitter declares `ZoneData _z1; zone_init(&_z1, _z0);` as a local,
// never a pointer allocation, so this method exists alongside New to match
// that calling convention.
func (z *Zone) Init(parent *Zone) {
	z.Parent = parent
	z.blocks = nil
	z.allocated = 0
	z.freed = 0
	z.grow(initialBlockSize)
}

func (z *Zone) grow(n int) {
	if n <= 0 {
		n = 1
	}
	b := &block{
		cells: make([]Cell, n),
		avail: make([]int, n),
	}
	for i := range b.cells {
		b.cells[i].block = b
		b.cells[i].index = i
		b.avail[i] = i
	}
	z.blocks = append(z.blocks, b)
}

// Alloc returns a freshly zeroed cell from the first block with room,
// growing the zone by a larger block first if every existing block is
// full -- the same growth policy as zone_alloc's `n += (n >> 3) + ...`.
func (z *Zone) Alloc() *Cell {
	for _, b := range z.blocks {
		if len(b.avail) == 0 {
			continue
		}
		i := b.avail[len(b.avail)-1]
		b.avail = b.avail[:len(b.avail)-1]
		c := &b.cells[i]
		c.Value = nil
		z.allocated++
		return c
	}

	last := z.blocks[len(z.blocks)-1]
	n := len(last.cells)
	grow := n + (n >> 3)
	if n < 9 {
		grow += 3
	} else {
		grow += 6
	}
	z.grow(grow)
	return z.Alloc()
}

// Free returns c to its owning block's free stack and clears its value,
// mirroring zone_free's memset-to-zero-on-release.
func (z *Zone) Free(c *Cell) {
	if c == nil {
		return
	}
	c.Value = nil
	c.block.avail = append(c.block.avail, c.index)
	z.freed++
}

// destroyer is implemented by any Cell.Value that exposes a destructor,
// mirroring object_free_all's "if the type is valid and contains a
// destructor, execute it" walk over every live unit before the zone itself
// is released. Declared locally, rather than imported from runtime/object,
// because that package already imports this one.
type destroyer interface {
	Destroy(z *Zone)
}

// Destroy walks every still-live cell across all blocks, invoking its
// value's destructor exactly once if it has one, then releases every block
// the zone holds; z may be reused afterward via Init, exactly as
// zone_destroy leaves a struct ready for zone_init. Mirrors
// object_free_all's single pass over the zone's data followed by
// zone_destroy.
func (z *Zone) Destroy() {
	for _, b := range z.blocks {
		for i := range b.cells {
			v := b.cells[i].Value
			if v == nil {
				continue
			}
			if d, ok := v.(destroyer); ok {
				d.Destroy(z)
			}
			b.cells[i].Value = nil
		}
	}
	z.blocks = nil
	z.allocated = 0
	z.freed = 0
}

// Stats reports cumulative allocation counters, used only by tests --
// grounded on lang/machine.Thread's always-on profiling span counters
// rather than an opt-in profiler, since nothing in this system's spec asks
// zones to be instrumented conditionally.
type Stats struct {
	Allocated int
	Freed     int
	Blocks    int
}

func (z *Zone) Stats() Stats {
	return Stats{Allocated: z.allocated, Freed: z.freed, Blocks: len(z.blocks)}
}
