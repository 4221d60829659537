package object

import (
	"fmt"
	"strings"

	"github.com/geekysuavo/mattec/runtime/except"
	"github.com/geekysuavo/mattec/runtime/zone"
)

// Cell is matte's cell array, grounded on original_source/matte/cell.h's
// _Cell (an m-by-n row-major array of Object pointers). Values default to
// *Int(0) rather than a C NULL, since every element must be a well-formed
// Value for Display/Copy to walk.
type Cell struct {
	data []Value
	m, n int
}

var cellType = &Descriptor{Name: "cell", Precedence: 0}

func init() {
	cellType.Horzcat = func(z *zone.Zone, operands []Value) (Value, error) {
		return concatCell(operands, false)
	}
	cellType.Vertcat = func(z *zone.Zone, operands []Value) (Value, error) {
		return concatCell(operands, true)
	}
	cellType.Subsref = func(z *zone.Zone, a, b Value) (Value, error) {
		c := mustCell(a)
		idx, ok := b.(*Int)
		if !ok {
			return nil, except.New(except.InvalidInputArg, "invalid subscript type")
		}
		i := int(idx.value) - 1
		if i < 0 || i >= len(c.data) {
			return nil, except.New(except.InvalidInputArg, "index out of bounds")
		}
		return c.data[i], nil
	}
	cellType.Ctranspose = func(z *zone.Zone, a Value) (Value, error) {
		c := mustCell(a)
		return c.transposed(), nil
	}
	cellType.Transpose = cellType.Ctranspose
}

// NewCellWithSize allocates an m-by-n cell array filled with Int(0),
// mirroring cell_new_with_size.
func NewCellWithSize(m, n int) *Cell {
	data := make([]Value, m*n)
	for i := range data {
		data[i] = NewInt(0)
	}
	return &Cell{data: data, m: m, n: n}
}

// NewCell builds a single row cell array from the given elements, the
// common shape a `{a, b, c}` literal lowers to.
func NewCell(elems ...Value) *Cell {
	return &Cell{data: append([]Value(nil), elems...), m: 1, n: len(elems)}
}

func (c *Cell) Descriptor() *Descriptor { return cellType }
func (c *Cell) Len() int                { return len(c.data) }
func (c *Cell) At(i int) Value          { return c.data[i] }

// Get returns the element at a 1-based linear index, the form
// object_cell_get wraps for the emitter's qualifier lowering.
func (c *Cell) Get(i int) (Value, error) {
	if i < 1 || i > len(c.data) {
		return nil, except.New(except.InvalidInputArg, "index out of bounds")
	}
	return c.data[i-1], nil
}

// Set assigns the element at a 1-based linear index, extending the cell
// array with Int(0) fill when the index falls past the current length,
// mirroring MATLAB's grow-on-assign semantics.
func (c *Cell) Set(i int, v Value) error {
	if i < 1 {
		return except.New(except.InvalidInputArg, "index out of bounds")
	}
	for i > len(c.data) {
		c.data = append(c.data, NewInt(0))
		c.n = len(c.data)
	}
	c.data[i-1] = v
	return nil
}

func (c *Cell) Truth() bool { return len(c.data) > 0 }

func (c *Cell) Copy(z *zone.Zone) Value {
	data := make([]Value, len(c.data))
	for i, v := range c.data {
		data[i] = v.Copy(z)
	}
	return &Cell{data: data, m: c.m, n: c.n}
}

func (c *Cell) Destroy(z *zone.Zone) { destroyVia(z, c) }

func (c *Cell) Display(name string) string {
	parts := make([]string, len(c.data))
	for i, v := range c.data {
		parts[i] = v.Display("")
	}
	return fmt.Sprintf("%s =\n{ %s }", name, strings.Join(parts, ", "))
}

func (c *Cell) transposed() *Cell {
	data := make([]Value, len(c.data))
	for i := 0; i < c.m; i++ {
		for j := 0; j < c.n; j++ {
			data[j*c.m+i] = c.data[i*c.n+j]
		}
	}
	return &Cell{data: data, m: c.n, n: c.m}
}

func mustCell(v Value) *Cell {
	c, ok := v.(*Cell)
	if !ok {
		panic(fmt.Sprintf("object: expected *Cell, got %T", v))
	}
	return c
}

func concatCell(operands []Value, vertical bool) (Value, error) {
	cells := make([]*Cell, len(operands))
	for i, v := range operands {
		cells[i] = mustCell(v)
	}
	if len(cells) == 0 {
		return &Cell{}, nil
	}
	if vertical {
		n := cells[0].n
		var data []Value
		rows := 0
		for _, c := range cells {
			if c.n != n {
				return nil, except.New(except.SizeMismatch, "operand sizes do not match")
			}
			data = append(data, c.data...)
			rows += c.m
		}
		return &Cell{data: data, m: rows, n: n}, nil
	}
	rows := cells[0].m
	for _, c := range cells {
		if c.m != rows {
			return nil, except.New(except.SizeMismatch, "operand sizes do not match")
		}
	}
	cols := 0
	rowBuf := make([][]Value, rows)
	for _, c := range cells {
		for i := 0; i < rows; i++ {
			rowBuf[i] = append(rowBuf[i], c.data[i*c.n:i*c.n+c.n]...)
		}
		cols += c.n
	}
	var data []Value
	for _, r := range rowBuf {
		data = append(data, r...)
	}
	return &Cell{data: data, m: rows, n: cols}, nil
}
