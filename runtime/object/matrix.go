package object

import (
	"fmt"
	"strings"

	"github.com/geekysuavo/mattec/runtime/except"
	"github.com/geekysuavo/mattec/runtime/zone"
)

// Matrix is matte's real matrix, grounded on original_source/matte/matrix.h's
// _Matrix (row-major double data plus m/n dimensions and a transposition
// flag). As with Vector, the BLAS/LAPACK-backed kernels matrix.c defers to
// are out of scope; this type keeps elementwise arithmetic, real matrix
// multiplication, transpose, concat and linear subsref real.
type Matrix struct {
	data        []float64 // row-major, m*n entries
	m, n        int
	transposed  bool
}

var matrixType = &Descriptor{Name: "matrix", Precedence: 6}

func init() {
	matrixType.Plus = matrixArith(func(a, b float64) float64 { return a + b })
	matrixType.Minus = matrixArith(func(a, b float64) float64 { return a - b })
	matrixType.Times = matrixArith(func(a, b float64) float64 { return a * b })
	matrixType.UMinus = func(z *zone.Zone, a Value) (Value, error) {
		m := mustMatrix(a)
		out := make([]float64, len(m.data))
		for i, x := range m.data {
			out[i] = -x
		}
		return &Matrix{data: out, m: m.m, n: m.n, transposed: m.transposed}, nil
	}
	matrixType.Mtimes = func(z *zone.Zone, a, b Value) (Value, error) {
		ma, mb := mustMatrix(a), mustMatrix(b)
		if ma.cols() != mb.rows() {
			return nil, except.New(except.SizeMismatch, "operand sizes do not match")
		}
		rows, inner, cols := ma.rows(), ma.cols(), mb.cols()
		out := make([]float64, rows*cols)
		for i := 0; i < rows; i++ {
			for j := 0; j < cols; j++ {
				var sum float64
				for k := 0; k < inner; k++ {
					sum += ma.at(i, k) * mb.at(k, j)
				}
				out[i*cols+j] = sum
			}
		}
		return &Matrix{data: out, m: rows, n: cols}, nil
	}
	matrixType.Ctranspose = func(z *zone.Zone, a Value) (Value, error) {
		m := mustMatrix(a)
		return &Matrix{data: append([]float64(nil), m.data...), m: m.m, n: m.n, transposed: !m.transposed}, nil
	}
	matrixType.Transpose = matrixType.Ctranspose
	matrixType.Horzcat = func(z *zone.Zone, operands []Value) (Value, error) {
		return concatMatrix(operands, false)
	}
	matrixType.Vertcat = func(z *zone.Zone, operands []Value) (Value, error) {
		return concatMatrix(operands, true)
	}
	matrixType.Subsref = func(z *zone.Zone, a, b Value) (Value, error) {
		m := mustMatrix(a)
		idx, ok := b.(*Int)
		if !ok {
			return nil, except.New(except.InvalidInputArg, "invalid subscript type")
		}
		// Linear (column-major, MATLAB-style) index into the logical shape,
		// narrowed from the emitter's first-subscript-only qualifier lowering
		// (see lang/emitter's DESIGN.md entry).
		k := int(idx.value) - 1
		if k < 0 || k >= m.rows()*m.cols() {
			return nil, except.New(except.InvalidInputArg, "index out of bounds")
		}
		i, j := k%m.rows(), k/m.rows()
		return NewFloat(m.at(i, j)), nil
	}
}

// NewMatrix constructs an m-by-n row-major matrix from flat data.
func NewMatrix(m, n int, data []float64) *Matrix {
	return &Matrix{data: append([]float64(nil), data...), m: m, n: n}
}

func (mx *Matrix) rows() int {
	if mx.transposed {
		return mx.n
	}
	return mx.m
}
func (mx *Matrix) cols() int {
	if mx.transposed {
		return mx.m
	}
	return mx.n
}
func (mx *Matrix) at(i, j int) float64 {
	if mx.transposed {
		return mx.data[j*mx.n+i]
	}
	return mx.data[i*mx.n+j]
}

func (mx *Matrix) Descriptor() *Descriptor { return matrixType }
func (mx *Matrix) Truth() bool {
	for _, x := range mx.data {
		if x == 0 {
			return false
		}
	}
	return len(mx.data) > 0
}
func (mx *Matrix) Copy(z *zone.Zone) Value {
	return &Matrix{data: append([]float64(nil), mx.data...), m: mx.m, n: mx.n, transposed: mx.transposed}
}
func (mx *Matrix) Destroy(z *zone.Zone) { destroyVia(z, mx) }
func (mx *Matrix) Display(name string) string {
	var rows []string
	for i := 0; i < mx.rows(); i++ {
		cols := make([]string, mx.cols())
		for j := 0; j < mx.cols(); j++ {
			cols[j] = fmt.Sprintf("%g", mx.at(i, j))
		}
		rows = append(rows, strings.Join(cols, "  "))
	}
	return fmt.Sprintf("%s =\n%s", name, strings.Join(rows, "\n"))
}

func mustMatrix(v Value) *Matrix {
	switch x := v.(type) {
	case *Matrix:
		return x
	case *Vector:
		if x.column {
			return &Matrix{data: append([]float64(nil), x.data...), m: len(x.data), n: 1}
		}
		return &Matrix{data: append([]float64(nil), x.data...), m: 1, n: len(x.data)}
	default:
		panic(fmt.Sprintf("object: expected *Matrix, got %T", v))
	}
}

func matrixArith(op func(a, b float64) float64) BinaryFn {
	return func(z *zone.Zone, a, b Value) (Value, error) {
		if isNumeric(a) || isNumeric(b) {
			ma := mustMatrix(pickMatrixOperand(a, b))
			s := asFloat(pickScalarOperand(a, b))
			out := make([]float64, len(ma.data))
			for i, x := range ma.data {
				if _, aIsMatrix := a.(*Matrix); aIsMatrix || isMatrixLike(a) {
					out[i] = op(x, s)
				} else {
					out[i] = op(s, x)
				}
			}
			return &Matrix{data: out, m: ma.m, n: ma.n, transposed: ma.transposed}, nil
		}
		ma, mb := mustMatrix(a), mustMatrix(b)
		if ma.rows() != mb.rows() || ma.cols() != mb.cols() {
			return nil, except.New(except.SizeMismatch, "operand sizes do not match")
		}
		out := make([]float64, ma.rows()*ma.cols())
		for i := 0; i < ma.rows(); i++ {
			for j := 0; j < ma.cols(); j++ {
				out[i*ma.cols()+j] = op(ma.at(i, j), mb.at(i, j))
			}
		}
		return &Matrix{data: out, m: ma.rows(), n: ma.cols()}, nil
	}
}

func isMatrixLike(v Value) bool {
	switch v.(type) {
	case *Matrix, *Vector:
		return true
	default:
		return false
	}
}

func pickMatrixOperand(a, b Value) Value {
	if isMatrixLike(a) {
		return a
	}
	return b
}

func pickScalarOperand(a, b Value) Value {
	if isNumeric(a) {
		return a
	}
	return b
}

// concatMatrix builds a matrix from a row of operands (horzcat) or a
// column of operands (vertcat); any scalar/vector operand is widened to a
// 1xN or Nx1 matrix first via mustMatrix.
func concatMatrix(operands []Value, vertical bool) (Value, error) {
	mats := make([]*Matrix, 0, len(operands))
	for _, v := range operands {
		switch v.(type) {
		case *Int, *Float:
			mats = append(mats, &Matrix{data: []float64{asFloat(v)}, m: 1, n: 1})
		default:
			mats = append(mats, mustMatrix(v))
		}
	}
	if len(mats) == 0 {
		return &Matrix{}, nil
	}

	if vertical {
		n := mats[0].cols()
		var data []float64
		rows := 0
		for _, m := range mats {
			if m.cols() != n {
				return nil, except.New(except.SizeMismatch, "operand sizes do not match")
			}
			for i := 0; i < m.rows(); i++ {
				for j := 0; j < n; j++ {
					data = append(data, m.at(i, j))
				}
			}
			rows += m.rows()
		}
		return &Matrix{data: data, m: rows, n: n}, nil
	}

	rows := mats[0].rows()
	cols := 0
	rowBuf := make([][]float64, rows)
	for _, m := range mats {
		if m.rows() != rows {
			return nil, except.New(except.SizeMismatch, "operand sizes do not match")
		}
		for i := 0; i < rows; i++ {
			for j := 0; j < m.cols(); j++ {
				rowBuf[i] = append(rowBuf[i], m.at(i, j))
			}
		}
		cols += m.cols()
	}
	var data []float64
	for _, r := range rowBuf {
		data = append(data, r...)
	}
	return &Matrix{data: data, m: rows, n: cols}, nil
}
