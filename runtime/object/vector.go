package object

import (
	"fmt"
	"strings"

	"github.com/geekysuavo/mattec/runtime/except"
	"github.com/geekysuavo/mattec/runtime/zone"
)

// Vector is matte's real vector, grounded on original_source/matte/vector.h's
// _Vector (a flat double array plus a transposition flag). Full BLAS-backed
// kernels (vector.c's cblas_* calls) are an out-of-scope numeric-kernel
// concern per spec.md's explicit Non-goals; this type keeps the dispatch
// surface (elementwise arithmetic, transpose, concat, subsref) real and
// exercisable without reimplementing BLAS.
type Vector struct {
	data   []float64
	column bool // true: column vector (tr flag in the original)
}

var vectorType = &Descriptor{Name: "vector", Precedence: 5}

func init() {
	vectorType.Plus = vectorArith(func(a, b float64) float64 { return a + b })
	vectorType.Minus = vectorArith(func(a, b float64) float64 { return a - b })
	vectorType.Times = vectorArith(func(a, b float64) float64 { return a * b })
	vectorType.Rdivide = vectorArith(func(a, b float64) float64 { return a / b })
	vectorType.UMinus = func(z *zone.Zone, a Value) (Value, error) {
		v := mustVector(a)
		out := make([]float64, len(v.data))
		for i, x := range v.data {
			out[i] = -x
		}
		return &Vector{data: out, column: v.column}, nil
	}
	vectorType.Mtimes = func(z *zone.Zone, a, b Value) (Value, error) {
		va, vb := mustVector(a), mustVector(b)
		if len(va.data) != len(vb.data) {
			return nil, except.New(except.SizeMismatch, "operand sizes do not match")
		}
		var sum float64
		for i := range va.data {
			sum += va.data[i] * vb.data[i]
		}
		return NewFloat(sum), nil
	}
	vectorType.Ctranspose = func(z *zone.Zone, a Value) (Value, error) {
		v := mustVector(a)
		return &Vector{data: append([]float64(nil), v.data...), column: !v.column}, nil
	}
	vectorType.Transpose = vectorType.Ctranspose
	vectorType.Horzcat = func(z *zone.Zone, operands []Value) (Value, error) {
		return concatVector(operands)
	}
	vectorType.Vertcat = vectorType.Horzcat
	vectorType.Subsref = func(z *zone.Zone, a, b Value) (Value, error) {
		v := mustVector(a)
		switch idx := b.(type) {
		case *Int:
			i := int(idx.value) - 1
			if i < 0 || i >= len(v.data) {
				return nil, except.New(except.InvalidInputArg, "index out of bounds")
			}
			return NewFloat(v.data[i]), nil
		case *Range:
			out := make([]float64, 0, idx.Len())
			for i := 0; i < idx.Len(); i++ {
				n := int(asFloat(idx.At(i))) - 1
				if n < 0 || n >= len(v.data) {
					return nil, except.New(except.InvalidInputArg, "index out of bounds")
				}
				out = append(out, v.data[n])
			}
			return &Vector{data: out, column: v.column}, nil
		default:
			return nil, except.New(except.InvalidInputArg, "invalid subscript type")
		}
	}
}

// NewVector constructs a row vector from raw values.
func NewVector(values ...float64) *Vector {
	return &Vector{data: append([]float64(nil), values...)}
}

func (v *Vector) Descriptor() *Descriptor { return vectorType }
func (v *Vector) Len() int                { return len(v.data) }
func (v *Vector) At(i int) Value          { return NewFloat(v.data[i]) }
func (v *Vector) Truth() bool {
	for _, x := range v.data {
		if x == 0 {
			return false
		}
	}
	return len(v.data) > 0
}
func (v *Vector) Copy(z *zone.Zone) Value {
	return &Vector{data: append([]float64(nil), v.data...), column: v.column}
}
func (v *Vector) Destroy(z *zone.Zone) { destroyVia(z, v) }
func (v *Vector) Display(name string) string {
	parts := make([]string, len(v.data))
	for i, x := range v.data {
		parts[i] = fmt.Sprintf("%g", x)
	}
	sep := "  "
	if v.column {
		sep = "\n"
	}
	return fmt.Sprintf("%s =\n%s", name, strings.Join(parts, sep))
}

func mustVector(v Value) *Vector {
	vec, ok := v.(*Vector)
	if !ok {
		panic(fmt.Sprintf("object: expected *Vector, got %T", v))
	}
	return vec
}

func vectorArith(op func(a, b float64) float64) BinaryFn {
	return func(z *zone.Zone, a, b Value) (Value, error) {
		va, ok1 := a.(*Vector)
		vb, ok2 := b.(*Vector)
		switch {
		case ok1 && ok2:
			if len(va.data) != len(vb.data) {
				return nil, except.New(except.SizeMismatch, "operand sizes do not match")
			}
			out := make([]float64, len(va.data))
			for i := range va.data {
				out[i] = op(va.data[i], vb.data[i])
			}
			return &Vector{data: out, column: va.column}, nil
		case ok1 && isNumeric(b):
			s := asFloat(b)
			out := make([]float64, len(va.data))
			for i := range va.data {
				out[i] = op(va.data[i], s)
			}
			return &Vector{data: out, column: va.column}, nil
		case ok2 && isNumeric(a):
			s := asFloat(a)
			out := make([]float64, len(vb.data))
			for i := range vb.data {
				out[i] = op(s, vb.data[i])
			}
			return &Vector{data: out, column: vb.column}, nil
		default:
			return nil, except.New(except.UndefinedFunction,
				"method (%s, %s) is unimplemented", a.Descriptor().Name, b.Descriptor().Name)
		}
	}
}

// concatVector implements both horzcat and vertcat for all-scalar/vector
// operand lists, building a flat row vector -- matrix-shaped concatenation
// (multiple rows of differing vectors) is handled by Matrix's own
// Horzcat/Vertcat instead, dispatched there when any operand outranks
// vector in precedence.
func concatVector(operands []Value) (Value, error) {
	var out []float64
	for _, v := range operands {
		switch x := v.(type) {
		case *Int:
			out = append(out, float64(x.value))
		case *Float:
			out = append(out, x.value)
		case *Vector:
			out = append(out, x.data...)
		case *Range:
			for i := 0; i < x.Len(); i++ {
				out = append(out, asFloat(x.At(i)))
			}
		default:
			return nil, except.New(except.SizeMismatch, "operand sizes do not match")
		}
	}
	return &Vector{data: out}, nil
}
