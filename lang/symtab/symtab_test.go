package symtab_test

import (
	"math"
	"testing"

	"github.com/geekysuavo/mattec/lang/symtab"
	"github.com/stretchr/testify/assert"
)

func TestDeclareIdempotent(t *testing.T) {
	tbl := symtab.New(nil)
	a := tbl.Declare("x", symtab.Local)
	b := tbl.Declare("x", symtab.Local)
	assert.Same(t, a, b)
	assert.Len(t, tbl.Symbols(), 1)
}

func TestTempNamesMonotone(t *testing.T) {
	tbl := symtab.New(nil)
	t0 := tbl.NewTemp()
	t1 := tbl.NewTemp()
	assert.Equal(t, "_t0", t0.Name)
	assert.Equal(t, "_t1", t1.Name)
	assert.NotEqual(t, t0.Index, t1.Index)
}

func TestLiteralDedupExactBits(t *testing.T) {
	tbl := symtab.New(nil)
	a := tbl.DeclareLiteral(symtab.FloatLiteral, 0, 1.5, 0, "")
	b := tbl.DeclareLiteral(symtab.FloatLiteral, 0, 1.5, 0, "")
	assert.Same(t, a, b)

	// Same printed value, different bit pattern after arithmetic: must NOT
	// dedup, per the exact-bits Open Question decision.
	almostSame := math.Nextafter(1.5, 2)
	c := tbl.DeclareLiteral(symtab.FloatLiteral, 0, almostSame, 0, "")
	assert.NotSame(t, a, c)
}

func TestInsertionOrderPreserved(t *testing.T) {
	tbl := symtab.New(nil)
	tbl.Declare("b", symtab.Local)
	tbl.Declare("a", symtab.Local)
	tbl.Declare("c", symtab.Local)

	names := make([]string, 0, 3)
	for _, s := range tbl.Symbols() {
		names = append(names, s.Name)
	}
	assert.Equal(t, []string{"b", "a", "c"}, names)
}

func TestRootWalksParentChain(t *testing.T) {
	root := symtab.New(nil)
	fn := symtab.New(root)
	assert.Same(t, root, fn.Root())
	assert.Same(t, root, root.Root())
}
