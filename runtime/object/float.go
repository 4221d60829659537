package object

import (
	"fmt"
	"math"

	"github.com/geekysuavo/mattec/runtime/except"
	"github.com/geekysuavo/mattec/runtime/zone"
)

// Float is matte's double-precision scalar, grounded on
// original_source/matte/float.h's _Float (a single double value).
type Float struct {
	value float64
}

var floatType = &Descriptor{Name: "float", Precedence: 3}

func init() {
	floatType.Plus = floatArith(func(a, b float64) float64 { return a + b })
	floatType.Minus = floatArith(func(a, b float64) float64 { return a - b })
	floatType.Times = floatArith(func(a, b float64) float64 { return a * b })
	floatType.Mtimes = floatType.Times
	floatType.Rdivide = floatArith(func(a, b float64) float64 { return a / b })
	floatType.Ldivide = floatArith(func(a, b float64) float64 { return b / a })
	floatType.Mrdivide, floatType.Mldivide = floatType.Rdivide, floatType.Ldivide
	floatType.Power = floatArith(math.Pow)
	floatType.Mpower = floatType.Power
	floatType.UMinus = func(z *zone.Zone, a Value) (Value, error) {
		return NewFloat(-asFloat(a)), nil
	}
	floatType.Lt = floatCmp(func(a, b float64) bool { return a < b })
	floatType.Gt = floatCmp(func(a, b float64) bool { return a > b })
	floatType.Le = floatCmp(func(a, b float64) bool { return a <= b })
	floatType.Ge = floatCmp(func(a, b float64) bool { return a >= b })
	floatType.Ne = floatCmp(func(a, b float64) bool { return a != b })
	floatType.Eq = floatCmp(func(a, b float64) bool { return a == b })
	floatType.Not = func(z *zone.Zone, a Value) (Value, error) {
		if asFloat(a) == 0 {
			return NewInt(1), nil
		}
		return NewInt(0), nil
	}
	floatType.Colon = func(z *zone.Zone, a, b, c Value) (Value, error) {
		return NewRange(asFloat(a), asFloat(b), asFloat(c)), nil
	}
	floatType.Ctranspose, floatType.Transpose = identityUnary, identityUnary
}

// NewFloat allocates a matte float with the given value, mirroring
// float_new_with_value.
func NewFloat(value float64) *Float { return &Float{value: value} }

func (f *Float) Descriptor() *Descriptor { return floatType }
func (f *Float) Value() float64          { return f.value }
func (f *Float) Truth() bool             { return f.value != 0 }
func (f *Float) Copy(z *zone.Zone) Value { return NewFloat(f.value) }
func (f *Float) Destroy(z *zone.Zone)    { destroyVia(z, f) }
func (f *Float) Display(name string) string {
	return fmt.Sprintf("%s = %g", name, f.value)
}

// asFloat widens an Int or Float operand to float64, used wherever a
// numeric-tower operation (colon, unary minus across mixed Int/Float
// dispatch) needs a single common representation -- original_source does
// the equivalent widening inline in each of range.c/float.c's mixed-type
// branches.
func asFloat(v Value) float64 {
	switch x := v.(type) {
	case *Int:
		return float64(x.value)
	case *Float:
		return x.value
	default:
		panic(fmt.Sprintf("object: cannot widen %T to float", v))
	}
}

func floatArith(op func(a, b float64) float64) BinaryFn {
	return func(z *zone.Zone, a, b Value) (Value, error) {
		if !isNumeric(a) || !isNumeric(b) {
			return nil, except.New(except.UndefinedFunction,
				"method (%s, %s) is unimplemented", a.Descriptor().Name, b.Descriptor().Name)
		}
		return NewFloat(op(asFloat(a), asFloat(b))), nil
	}
}

func floatCmp(op func(a, b float64) bool) BinaryFn {
	return func(z *zone.Zone, a, b Value) (Value, error) {
		if !isNumeric(a) || !isNumeric(b) {
			return nil, except.New(except.UndefinedFunction,
				"method (%s, %s) is unimplemented", a.Descriptor().Name, b.Descriptor().Name)
		}
		if op(asFloat(a), asFloat(b)) {
			return NewInt(1), nil
		}
		return NewInt(0), nil
	}
}

func isNumeric(v Value) bool {
	switch v.(type) {
	case *Int, *Float:
		return true
	default:
		return false
	}
}
