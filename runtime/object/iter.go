package object

import (
	"fmt"

	"github.com/geekysuavo/mattec/runtime/zone"
)

// Iterable is implemented by values a `for` loop can drive directly,
// matching the shape Range/Vector/String/Cell already expose.
type Iterable interface {
	Value
	Len() int
	At(i int) Value
}

var (
	_ Iterable = (*Range)(nil)
	_ Iterable = (*Vector)(nil)
	_ Iterable = (*String)(nil)
	_ Iterable = (*Cell)(nil)
)

// Iter is matte's iterator value, grounded on original_source/matte/iter.h's
// _Iter (obj/val/i/n): obj is the master sequence being walked, val holds
// the current element, i/n track position and length.
type Iter struct {
	obj Iterable
	val Value
	i, n int
}

var iterType = &Descriptor{Name: "iter", Precedence: 0}

func (it *Iter) Descriptor() *Descriptor { return iterType }
func (it *Iter) Truth() bool             { return it.i < it.n }
func (it *Iter) Copy(z *zone.Zone) Value {
	return &Iter{obj: it.obj, val: it.val, i: it.i, n: it.n}
}
func (it *Iter) Display(name string) string {
	return fmt.Sprintf("%s = iter(%d/%d)", name, it.i, it.n)
}
func (it *Iter) Destroy(z *zone.Zone) { destroyVia(z, it) }

// IterNew constructs an iterator over obj, mirroring iter_new.
func IterNew(z *zone.Zone, obj Iterable) *Iter {
	return &Iter{obj: obj, n: obj.Len()}
}

// IterNext advances the iterator, mirroring iter_next: returns false once
// the sequence is exhausted.
func IterNext(z *zone.Zone, it *Iter) bool {
	if it.i >= it.n {
		return false
	}
	it.val = it.obj.At(it.i)
	it.i++
	return true
}

// IterGetValue returns the iterator's current value, mirroring
// iter_get_value.
func IterGetValue(it *Iter) Value {
	return it.val
}
