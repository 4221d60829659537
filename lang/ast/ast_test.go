package ast_test

import (
	"bytes"
	"testing"

	"github.com/geekysuavo/mattec/lang/ast"
	"github.com/geekysuavo/mattec/lang/symtab"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTable() *symtab.Table { return symtab.New(nil) }

func TestAddGetChildNegativeIndex(t *testing.T) {
	root := ast.New(ast.ROW, 0)
	a := ast.New(ast.IDENT, 1)
	a.Name = "a"
	b := ast.New(ast.IDENT, 2)
	b.Name = "b"
	root.AddChild(a)
	root.AddChild(b)

	assert.Same(t, b, root.GetChild(-1))
	assert.Same(t, a, root.GetChild(-2))
	assert.Same(t, a, root.GetChild(0))
	assert.Nil(t, root.GetChild(5))
}

func TestRip(t *testing.T) {
	outer := ast.New(ast.COLUMN, 0)
	inner := ast.New(ast.ROW, 0)
	leaf := ast.New(ast.IDENT, 0)
	leaf.Name = "x"
	inner.AddChild(leaf)
	outer.AddChild(inner)

	inner.Rip()

	require.Equal(t, 1, outer.ChildCount())
	assert.Same(t, leaf, outer.GetChild(0))
	assert.Same(t, outer, leaf.Parent)
}

func TestSlip(t *testing.T) {
	parent := ast.New(ast.ASSIGN, 0)
	child := ast.New(ast.IDENT, 0)
	parent.AddChild(child)

	wrapper := ast.New(ast.FN_CALL, 0)
	child.Slip(wrapper)

	require.Equal(t, 1, parent.ChildCount())
	assert.Same(t, wrapper, parent.GetChild(0))
	assert.Same(t, child, wrapper.GetChild(0))
	assert.Same(t, wrapper, child.Parent)
}

func TestMergeFlattensRoots(t *testing.T) {
	a := ast.New(ast.ROOT, 0)
	a.AddChild(ast.New(ast.FUNCTION, 0))
	b := ast.New(ast.ROOT, 0)
	b.AddChild(ast.New(ast.FUNCTION, 0))

	merged := ast.Merge(a, b)
	assert.Same(t, a, merged)
	assert.Equal(t, 2, merged.ChildCount())
}

func TestGetSymbolsWalksToNearestOwner(t *testing.T) {
	root := ast.New(ast.ROOT, 0)
	fn := ast.New(ast.FUNCTION, 0)
	root.AddChild(fn)
	stmt := ast.New(ast.ASSIGN, 0)
	fn.AddChild(stmt)
	ident := ast.New(ast.IDENT, 0)
	stmt.AddChild(ident)

	assert.Nil(t, ident.GetSymbols())

	fn.Table = newTestTable()
	root.Table = newTestTable()
	assert.Same(t, fn.Table, ident.GetSymbols())
	assert.Same(t, root.Table, ident.GetGlobals())
}

func TestPrinterWritesOneLinePerNode(t *testing.T) {
	root := ast.New(ast.ROOT, 0)
	root.AddChild(ast.New(ast.BREAK, 0))

	var buf bytes.Buffer
	p := ast.Printer{Output: &buf}
	require.NoError(t, p.Print(root, nil))
	assert.Contains(t, buf.String(), "root")
	assert.Contains(t, buf.String(), "break")
}
