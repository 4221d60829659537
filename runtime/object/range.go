package object

import (
	"fmt"

	"github.com/geekysuavo/mattec/runtime/zone"
)

// Range is matte's colon-operator value (`a:d:b`), grounded on
// original_source/matte/range.h's _Range (begin/step/end as longs).
type Range struct {
	begin, step, end int64
}

var rangeType = &Descriptor{Name: "range", Precedence: 2}

func init() {
	rangeType.Ctranspose, rangeType.Transpose = identityUnary, identityUnary
	rangeType.Horzcat = func(z *zone.Zone, operands []Value) (Value, error) {
		return concatVector(operands)
	}
	rangeType.Vertcat = rangeType.Horzcat
}

// NewRange constructs a range from three float operands (the dispatched
// colon operator always receives Int/Float operands and truncates them
// toward zero to integers, exactly like range_new reading three longs out of its args
// packet).
func NewRange(begin, step, end float64) *Range {
	return &Range{begin: int64(begin), step: int64(step), end: int64(end)}
}

func (r *Range) Descriptor() *Descriptor { return rangeType }
func (r *Range) Truth() bool             { return r.Len() > 0 }
func (r *Range) Copy(z *zone.Zone) Value { return &Range{r.begin, r.step, r.end} }
func (r *Range) Destroy(z *zone.Zone)    { destroyVia(z, r) }
func (r *Range) Display(name string) string {
	return fmt.Sprintf("%s = %d:%d:%d", name, r.begin, r.step, r.end)
}

// Len reports the number of values the range produces, mirroring
// range_get_length's step-aware count (zero for a step of zero or a step
// pointed away from end).
func (r *Range) Len() int {
	if r.step == 0 {
		return 0
	}
	n := (r.end-r.begin)/r.step + 1
	if n < 0 {
		return 0
	}
	return int(n)
}

// At returns the i'th value of the range as an Int, satisfying the
// Iterable contract iter.go's generic iterator drives.
func (r *Range) At(i int) Value {
	return NewInt(r.begin + int64(i)*r.step)
}
