package resolver_test

import (
	"testing"

	"github.com/geekysuavo/mattec/lang/ast"
	"github.com/geekysuavo/mattec/lang/parser"
	"github.com/geekysuavo/mattec/lang/resolver"
	"github.com/geekysuavo/mattec/lang/scanner"
	"github.com/geekysuavo/mattec/lang/symtab"
	"github.com/geekysuavo/mattec/lang/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resolveSrc scans, parses, and resolves src, failing the test if the
// scanner or parser reports a diagnostic; resolver diagnostics are
// returned to the caller for inspection.
func resolveSrc(t *testing.T, src string) (*ast.Node, token.ErrorList) {
	t.Helper()
	fs := token.NewFileSet()
	toks, scanErrs := scanner.ScanString(fs, "test.m", src)
	require.Empty(t, scanErrs, "scan errors")

	file := fs.File(toks[0].Value.Pos)
	tree, _, parseErrs := parser.ParseCounting(file, toks)
	require.Empty(t, parseErrs, "parse errors")

	return resolver.Resolve(tree)
}

func TestSimplifyConcatsCollapsesTrivialWrappers(t *testing.T) {
	tree, errs := resolveSrc(t, "x = 1;\n")
	require.Empty(t, errs)

	assign := tree.GetChild(0)
	require.Equal(t, ast.ASSIGN, assign.Kind)
	// A bare `1` never goes through ROW/COLUMN at all for a scalar
	// literal, but a row wrapping a single matrix literal still must
	// collapse down to the literal itself.
	require.Equal(t, ast.INT_LIT, assign.GetChild(1).Kind)
}

func TestSimplifyConcatsCollapsesRowOfOne(t *testing.T) {
	tree, errs := resolveSrc(t, "x = [1];\n")
	require.Empty(t, errs)

	assign := tree.GetChild(0)
	lit := assign.GetChild(1)
	require.Equal(t, ast.MATRIX_LIT, lit.Kind)
	require.Equal(t, 1, lit.ChildCount())
	// Post-order: the ROW collapses to its literal first, so the COLUMN
	// no longer has a ROW child and stays.
	col := lit.GetChild(0)
	require.Equal(t, ast.COLUMN, col.Kind)
	require.Equal(t, ast.INT_LIT, col.GetChild(0).Kind)
}

func TestInitSymbolsRegistersGlobalAndLocal(t *testing.T) {
	tree, errs := resolveSrc(t, "x = 1;\nfunction y = f()\n  y = 2;\nend\n")
	require.Empty(t, errs)

	root := tree.GetChild(0)
	xSym, ok := tree.Table.Lookup("x")
	require.True(t, ok)
	assert.Equal(t, symtab.Global, xSym.Kind)
	_ = root

	var fn *ast.Node
	for _, c := range tree.Children() {
		if c.Kind == ast.FUNCTION {
			fn = c
		}
	}
	require.NotNil(t, fn)
	ySym, ok := fn.Table.Lookup("y")
	require.True(t, ok)
	assert.Equal(t, symtab.ArgOut, ySym.Kind)
}

func TestBuiltinsRegisteredAtRoot(t *testing.T) {
	tree, errs := resolveSrc(t, "x = 1;\n")
	require.Empty(t, errs)

	for _, name := range resolver.Builtins {
		sym, ok := tree.Table.Lookup(name)
		require.True(t, ok, "builtin %s not registered", name)
		assert.Equal(t, symtab.GlobalFunc, sym.Kind)
	}

	end, ok := tree.Table.Lookup("end")
	require.True(t, ok)
	assert.Equal(t, symtab.Builtin, end.Kind)
	assert.EqualValues(t, -1, end.IntVal)
}

func TestForLoopRegistersLoopVarAndIterTemp(t *testing.T) {
	tree, errs := resolveSrc(t, "for i = 1:10\n  disp(i);\nend\n")
	require.Empty(t, errs)

	forNode := tree.GetChild(0)
	require.Equal(t, ast.FOR, forNode.Kind)

	iSym, ok := tree.Table.Lookup("i")
	require.True(t, ok)
	assert.Equal(t, symtab.Local, iSym.Kind)

	itSym, ok := tree.Table.Lookup("_it")
	require.True(t, ok)
	assert.Equal(t, symtab.Temp, itSym.Kind)
}

func TestBareCallSynthesizesFnCall(t *testing.T) {
	tree, errs := resolveSrc(t, "disp(1);\n")
	require.Empty(t, errs)

	call := tree.GetChild(0)
	require.Equal(t, ast.FN_CALL, call.Kind)
	require.Equal(t, ast.TEMP_VAR, call.GetChild(0).Kind)
	require.Equal(t, ast.IDENT, call.GetChild(1).Kind)
	assert.Equal(t, "disp", call.GetChild(1).Name)
	require.Equal(t, ast.ARGIN_PACK, call.GetChild(2).Kind)
	require.Equal(t, ast.ARGOUT_PACK, call.GetChild(3).Kind)
}

func TestAssignFromCallRetypesInPlace(t *testing.T) {
	tree, errs := resolveSrc(t, "s = sum([1, 2, 3]);\n")
	require.Empty(t, errs)

	call := tree.GetChild(0)
	require.Equal(t, ast.FN_CALL, call.Kind)
	assert.Equal(t, ast.IDENT, call.GetChild(0).Kind)
	assert.Equal(t, "s", call.GetChild(0).Name)
	assert.Equal(t, "sum", call.GetChild(1).Name)
}

func TestUndefinedSymbolReported(t *testing.T) {
	_, errs := resolveSrc(t, "y = nosuchvar + 1;\n")
	require.NotEmpty(t, errs)
}

func TestAnonFuncHandleIsNotSynthesizedIntoCall(t *testing.T) {
	tree, errs := resolveSrc(t, "function y = f()\n  y = 1;\nend\nh = @f;\n")
	require.Empty(t, errs)

	assign := tree.GetChild(1)
	require.Equal(t, ast.ASSIGN, assign.Kind)
	anon := assign.GetChild(1)
	require.Equal(t, ast.ANON_FUNC, anon.Kind)
	require.Nil(t, anon.GetChild(0))
	callee := anon.GetChild(1)
	require.Equal(t, ast.IDENT, callee.Kind)
	assert.True(t, callee.Ref.Resolved())
}

func TestAnonFuncLiteralBodyResolvesNormally(t *testing.T) {
	tree, errs := resolveSrc(t, "h = @() disp(1);\n")
	require.Empty(t, errs)

	assign := tree.GetChild(0)
	anon := assign.GetChild(1)
	require.Equal(t, ast.ANON_FUNC, anon.Kind)
	require.NotNil(t, anon.GetChild(0))
	require.Equal(t, ast.IDS, anon.GetChild(0).Kind)
	assert.Equal(t, 0, anon.GetChild(0).ChildCount())

	body := anon.GetChild(1)
	require.Equal(t, ast.FN_CALL, body.Kind)
	assert.Equal(t, "disp", body.GetChild(1).Name)
}
