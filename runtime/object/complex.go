package object

import (
	"fmt"
	"math/cmplx"

	"github.com/geekysuavo/mattec/runtime/except"
	"github.com/geekysuavo/mattec/runtime/zone"
)

// Complex is matte's complex scalar, grounded on
// original_source/matte/complex.h's _ComplexFloat (a single complex double).
type Complex struct {
	value complex128
}

var complexType = &Descriptor{Name: "complex", Precedence: 4}

func init() {
	complexType.Plus = complexArith(func(a, b complex128) complex128 { return a + b })
	complexType.Minus = complexArith(func(a, b complex128) complex128 { return a - b })
	complexType.Times = complexArith(func(a, b complex128) complex128 { return a * b })
	complexType.Mtimes = complexType.Times
	complexType.Rdivide = complexArith(func(a, b complex128) complex128 { return a / b })
	complexType.Ldivide = complexArith(func(a, b complex128) complex128 { return b / a })
	complexType.Mrdivide, complexType.Mldivide = complexType.Rdivide, complexType.Ldivide
	complexType.Power = complexArith(cmplx.Pow)
	complexType.Mpower = complexType.Power
	complexType.UMinus = func(z *zone.Zone, a Value) (Value, error) {
		return NewComplex(-asComplex(a)), nil
	}
	// Equality is the only well-defined ordering operator on the complex
	// plane -- Lt/Gt/Le/Ge are left nil, surfaced as undefined-function by
	// the generic dispatcher, mirroring complex-cmp.c only defining eq/ne.
	complexType.Eq = complexCmp(func(a, b complex128) bool { return a == b })
	complexType.Ne = complexCmp(func(a, b complex128) bool { return a != b })
	complexType.Not = func(z *zone.Zone, a Value) (Value, error) {
		if asComplex(a) == 0 {
			return NewInt(1), nil
		}
		return NewInt(0), nil
	}
	complexType.Ctranspose = func(z *zone.Zone, a Value) (Value, error) {
		return NewComplex(cmplx.Conj(asComplex(a))), nil
	}
	complexType.Transpose = identityUnary
}

// NewComplex allocates a matte complex float with the given value,
// mirroring complex_new_with_value.
func NewComplex(value complex128) *Complex { return &Complex{value: value} }

func (c *Complex) Descriptor() *Descriptor { return complexType }
func (c *Complex) Value() complex128       { return c.value }
func (c *Complex) Truth() bool             { return c.value != 0 }
func (c *Complex) Copy(z *zone.Zone) Value { return NewComplex(c.value) }
func (c *Complex) Destroy(z *zone.Zone)    { destroyVia(z, c) }
func (c *Complex) Display(name string) string {
	re, im := real(c.value), imag(c.value)
	if im < 0 {
		return fmt.Sprintf("%s = %g - %gi", name, re, -im)
	}
	return fmt.Sprintf("%s = %g + %gi", name, re, im)
}

// asComplex widens Int/Float/Complex operands to complex128, mirroring the
// implicit promotion complex-binary.c performs on its mixed-type branches.
func asComplex(v Value) complex128 {
	switch x := v.(type) {
	case *Complex:
		return x.value
	case *Int, *Float:
		return complex(asFloat(x), 0)
	default:
		panic(fmt.Sprintf("object: cannot widen %T to complex", v))
	}
}

func isComplexLike(v Value) bool {
	switch v.(type) {
	case *Complex, *Int, *Float:
		return true
	default:
		return false
	}
}

func complexArith(op func(a, b complex128) complex128) BinaryFn {
	return func(z *zone.Zone, a, b Value) (Value, error) {
		if !isComplexLike(a) || !isComplexLike(b) {
			return nil, except.New(except.UndefinedFunction,
				"method (%s, %s) is unimplemented", a.Descriptor().Name, b.Descriptor().Name)
		}
		return NewComplex(op(asComplex(a), asComplex(b))), nil
	}
}

func complexCmp(op func(a, b complex128) bool) BinaryFn {
	return func(z *zone.Zone, a, b Value) (Value, error) {
		if !isComplexLike(a) || !isComplexLike(b) {
			return nil, except.New(except.UndefinedFunction,
				"method (%s, %s) is unimplemented", a.Descriptor().Name, b.Descriptor().Name)
		}
		if op(asComplex(a), asComplex(b)) {
			return NewInt(1), nil
		}
		return NewInt(0), nil
	}
}
