package object

import (
	"fmt"

	"github.com/geekysuavo/mattec/runtime/except"
	"github.com/geekysuavo/mattec/runtime/zone"
)

// Int is matte's integer scalar, grounded on original_source/matte/int.h's
// _Int (a single long value) and int.c/int-binary.c/int-cmp.c's method
// bodies, which this type's methods port arithmetic-operator for
// arithmetic-operator.
type Int struct {
	value int64
}

var intType = &Descriptor{Name: "int", Precedence: 1}

func init() {
	intType.Plus = intArith(func(a, b int64) int64 { return a + b })
	intType.Minus = intArith(func(a, b int64) int64 { return a - b })
	intType.Times = intArith(func(a, b int64) int64 { return a * b })
	intType.Mtimes = intType.Times
	intType.UMinus = func(z *zone.Zone, a Value) (Value, error) {
		return NewInt(-mustInt(a).value), nil
	}
	intType.Lt = intCmp(func(a, b int64) bool { return a < b })
	intType.Gt = intCmp(func(a, b int64) bool { return a > b })
	intType.Le = intCmp(func(a, b int64) bool { return a <= b })
	intType.Ge = intCmp(func(a, b int64) bool { return a >= b })
	intType.Ne = intCmp(func(a, b int64) bool { return a != b })
	intType.Eq = intCmp(func(a, b int64) bool { return a == b })
	intType.And = intCmp(func(a, b int64) bool { return a != 0 && b != 0 })
	intType.Or = intCmp(func(a, b int64) bool { return a != 0 || b != 0 })
	intType.Mand, intType.Mor = intType.And, intType.Or
	intType.Not = func(z *zone.Zone, a Value) (Value, error) {
		if mustInt(a).value == 0 {
			return NewInt(1), nil
		}
		return NewInt(0), nil
	}
	intType.Colon = func(z *zone.Zone, a, b, c Value) (Value, error) {
		return NewRange(asFloat(a), asFloat(b), asFloat(c)), nil
	}
	intType.Ctranspose, intType.Transpose = identityUnary, identityUnary
}

// NewInt allocates a matte integer with the given value, mirroring
// int_new_with_value.
func NewInt(value int64) *Int { return &Int{value: value} }

func (i *Int) Descriptor() *Descriptor { return intType }
func (i *Int) Value() int64            { return i.value }
func (i *Int) Truth() bool             { return i.value != 0 }
func (i *Int) Copy(z *zone.Zone) Value { return NewInt(i.value) }
func (i *Int) Destroy(z *zone.Zone)    { destroyVia(z, i) }
func (i *Int) Display(name string) string {
	return fmt.Sprintf("%s = %d", name, i.value)
}

func mustInt(v Value) *Int {
	i, ok := v.(*Int)
	if !ok {
		panic(fmt.Sprintf("object: expected *Int, got %T", v))
	}
	return i
}

func intArith(op func(a, b int64) int64) BinaryFn {
	return func(z *zone.Zone, a, b Value) (Value, error) {
		ia, ok1 := a.(*Int)
		ib, ok2 := b.(*Int)
		if !ok1 || !ok2 {
			return nil, except.New(except.UndefinedFunction,
				"method (%s, %s) is unimplemented", a.Descriptor().Name, b.Descriptor().Name)
		}
		return NewInt(op(ia.value, ib.value)), nil
	}
}

func intCmp(op func(a, b int64) bool) BinaryFn {
	return func(z *zone.Zone, a, b Value) (Value, error) {
		ia, ok1 := a.(*Int)
		ib, ok2 := b.(*Int)
		if !ok1 || !ok2 {
			return nil, except.New(except.UndefinedFunction,
				"method (%s, %s) is unimplemented", a.Descriptor().Name, b.Descriptor().Name)
		}
		if op(ia.value, ib.value) {
			return NewInt(1), nil
		}
		return NewInt(0), nil
	}
}

func identityUnary(z *zone.Zone, a Value) (Value, error) {
	return a.Copy(z), nil
}
