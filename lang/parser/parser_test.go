package parser_test

import (
	"testing"

	"github.com/geekysuavo/mattec/lang/ast"
	"github.com/geekysuavo/mattec/lang/parser"
	"github.com/geekysuavo/mattec/lang/scanner"
	"github.com/geekysuavo/mattec/lang/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// parseSrc scans and parses src, failing the test if either stage
// reports a diagnostic.
func parseSrc(t *testing.T, src string) *ast.Node {
	t.Helper()
	fs := token.NewFileSet()
	toks, scanErrs := scanner.ScanString(fs, "test.m", src)
	require.Empty(t, scanErrs, "scan errors")

	file := fs.File(toks[0].Value.Pos)
	tree, _, errs := parser.ParseCounting(file, toks)
	require.Empty(t, errs, "parse errors")
	return tree
}

// firstStmt unwraps a ROOT (and, if present, a BLOCK) to the first
// statement node parsed from src.
func firstStmt(t *testing.T, src string) *ast.Node {
	t.Helper()
	root := parseSrc(t, src)
	require.Equal(t, ast.ROOT, root.Kind)
	n := root.GetChild(0)
	if n.Kind == ast.BLOCK {
		n = n.GetChild(0)
	}
	return n
}

func TestSimpleAssignment(t *testing.T) {
	n := firstStmt(t, "x = 1;\n")
	require.Equal(t, ast.ASSIGN, n.Kind)
	assert.False(t, n.Display)
	assert.Equal(t, ast.IDENT, n.GetChild(0).Kind)
	assert.Equal(t, "x", n.GetChild(0).Name)
	assert.Equal(t, ast.INT_LIT, n.GetChild(1).Kind)
	assert.EqualValues(t, 1, n.GetChild(1).IntVal)
}

func TestDisplayFlagFromComma(t *testing.T) {
	n := firstStmt(t, "x = 1,\n")
	assert.True(t, n.Display)
}

func TestDisplayFlagFromBareNewline(t *testing.T) {
	n := firstStmt(t, "x = 1\n")
	assert.True(t, n.Display)
}

func TestCompoundAssignDesugars(t *testing.T) {
	n := firstStmt(t, "x += 1;\n")
	require.Equal(t, ast.ASSIGN, n.Kind)
	require.Equal(t, 2, n.ChildCount())

	lhs := n.GetChild(0)
	assert.Equal(t, ast.IDENT, lhs.Kind)
	assert.Equal(t, "x", lhs.Name)

	rhs := n.GetChild(1)
	require.Equal(t, ast.BINOP, rhs.Kind)
	assert.Equal(t, token.PLUS, rhs.Op)
	assert.Equal(t, ast.IDENT, rhs.GetChild(0).Kind)
	assert.Equal(t, "x", rhs.GetChild(0).Name)
	assert.NotSame(t, lhs, rhs.GetChild(0), "compound-assign must clone the lvalue, not alias it")
	assert.Equal(t, ast.INT_LIT, rhs.GetChild(1).Kind)
}

func TestRangeSynthesizesUnitStep(t *testing.T) {
	n := firstStmt(t, "x = 1:5;\n")
	rhs := n.GetChild(1)
	require.Equal(t, ast.COLON, rhs.Kind)
	require.Equal(t, 3, rhs.ChildCount())
	assert.EqualValues(t, 1, rhs.GetChild(0).IntVal)
	assert.EqualValues(t, 1, rhs.GetChild(1).IntVal)
	assert.EqualValues(t, 5, rhs.GetChild(2).IntVal)
}

func TestRangeWithExplicitStep(t *testing.T) {
	n := firstStmt(t, "x = 1:2:5;\n")
	rhs := n.GetChild(1)
	require.Equal(t, ast.COLON, rhs.Kind)
	require.Equal(t, 3, rhs.ChildCount())
	assert.EqualValues(t, 2, rhs.GetChild(1).IntVal)
}

func TestOperatorPrecedence(t *testing.T) {
	// 1 + 2 * 3 parses as 1 + (2 * 3).
	n := firstStmt(t, "x = 1 + 2 * 3;\n")
	rhs := n.GetChild(1)
	require.Equal(t, ast.BINOP, rhs.Kind)
	assert.Equal(t, token.PLUS, rhs.Op)
	mul := rhs.GetChild(1)
	require.Equal(t, ast.BINOP, mul.Kind)
	assert.Equal(t, token.STAR, mul.Op)
}

func TestPowerIsLeftAssociative(t *testing.T) {
	// a^b^c associates as (a^b)^c.
	n := firstStmt(t, "x = a^b^c;\n")
	rhs := n.GetChild(1)
	require.Equal(t, ast.BINOP, rhs.Kind)
	assert.Equal(t, token.CARET, rhs.Op)
	assert.Equal(t, ast.IDENT, rhs.GetChild(1).Kind)
	assert.Equal(t, "c", rhs.GetChild(1).Name)
	inner := rhs.GetChild(0)
	require.Equal(t, ast.BINOP, inner.Kind)
	assert.Equal(t, token.CARET, inner.Op)
}

func TestTransposeAfterIdent(t *testing.T) {
	n := firstStmt(t, "y = x';\n")
	rhs := n.GetChild(1)
	require.Equal(t, ast.TRANSPOSE, rhs.Kind)
	assert.Equal(t, ast.IDENT, rhs.GetChild(0).Kind)
}

func TestQualifierChainOnIdent(t *testing.T) {
	n := firstStmt(t, "y = a.b(1).c;\n")
	rhs := n.GetChild(1)
	require.Equal(t, ast.IDENT, rhs.Kind)
	require.Equal(t, 3, rhs.ChildCount())
	assert.Equal(t, ast.FIELD, rhs.GetChild(0).Kind)
	assert.Equal(t, "b", rhs.GetChild(0).Name)
	assert.Equal(t, ast.CALL_SUBS, rhs.GetChild(1).Kind)
	assert.Equal(t, ast.FIELD, rhs.GetChild(2).Kind)
	assert.Equal(t, "c", rhs.GetChild(2).Name)
}

func TestMatrixLiteralRowsAndColumns(t *testing.T) {
	n := firstStmt(t, "m = [1, 2; 3, 4];\n")
	rhs := n.GetChild(1)
	require.Equal(t, ast.MATRIX_LIT, rhs.Kind)
	col := rhs.GetChild(0)
	require.Equal(t, ast.COLUMN, col.Kind)
	require.Equal(t, 2, col.ChildCount())
	row0 := col.GetChild(0)
	require.Equal(t, ast.ROW, row0.Kind)
	require.Equal(t, 2, row0.ChildCount())
}

func TestEndOnlyValidInSubscript(t *testing.T) {
	fs := token.NewFileSet()
	toks, scanErrs := scanner.ScanString(fs, "test.m", "y = end;\n")
	require.Empty(t, scanErrs)
	file := fs.File(toks[0].Value.Pos)
	_, errCount, errs := parser.ParseCounting(file, toks)
	assert.Greater(t, errCount, 0)
	assert.NotEmpty(t, errs)
}

func TestEndValidInsideSubscript(t *testing.T) {
	n := firstStmt(t, "y = a(end);\n")
	rhs := n.GetChild(1)
	require.Equal(t, ast.IDENT, rhs.Kind)
	subs := rhs.GetChild(0)
	require.Equal(t, ast.CALL_SUBS, subs.Kind)
	row := subs.GetChild(0)
	require.Equal(t, ast.END_VAL, row.GetChild(0).Kind)
}

func TestBareColonInsideSubscript(t *testing.T) {
	n := firstStmt(t, "y = a(:, 2);\n")
	rhs := n.GetChild(1)
	subs := rhs.GetChild(0)
	row := subs.GetChild(0)
	assert.Equal(t, ast.COLON_ALL, row.GetChild(0).Kind)
}

func TestIfElseifElse(t *testing.T) {
	n := firstStmt(t, "if x\n  a = 1;\nelseif y\n  a = 2;\nelse\n  a = 3;\nend\n")
	require.Equal(t, ast.IF, n.Kind)
	require.Equal(t, 6, n.ChildCount())
	assert.Nil(t, n.GetChild(4))
}

func TestSwitchWithOtherwise(t *testing.T) {
	n := firstStmt(t, "switch x\ncase 1\n  a = 1;\notherwise\n  a = 2;\nend\n")
	require.Equal(t, ast.SWITCH, n.Kind)
	require.Equal(t, 5, n.ChildCount())
	assert.Nil(t, n.GetChild(3))
}

func TestForLoop(t *testing.T) {
	n := firstStmt(t, "for i = 1:10\n  x = i;\nend\n")
	require.Equal(t, ast.FOR, n.Kind)
	assert.Equal(t, "i", n.GetChild(0).Name)
	assert.Equal(t, ast.COLON, n.GetChild(1).Kind)
}

func TestWhileLoop(t *testing.T) {
	n := firstStmt(t, "while x < 10\n  x = x + 1;\nend\n")
	require.Equal(t, ast.WHILE, n.Kind)
}

func TestDoUntilLoop(t *testing.T) {
	n := firstStmt(t, "do\n  x = x + 1;\nuntil x >= 10\n")
	require.Equal(t, ast.DO_UNTIL, n.Kind)
	require.Equal(t, 2, n.ChildCount())
}

func TestTryCatch(t *testing.T) {
	n := firstStmt(t, "try\n  x = 1;\ncatch err\n  x = 0;\nend\n")
	require.Equal(t, ast.TRY, n.Kind)
	require.Equal(t, 3, n.ChildCount())
	assert.Equal(t, "err", n.GetChild(1).Name)
}

func TestTryCatchNoVariable(t *testing.T) {
	n := firstStmt(t, "try\n  x = 1;\ncatch\n  x = 0;\nend\n")
	require.Equal(t, ast.TRY, n.Kind)
	assert.Nil(t, n.GetChild(1))
}

func TestFunctionNoReturn(t *testing.T) {
	root := parseSrc(t, "function f(x)\n  y = x;\nend\n")
	fn := root.GetChild(0)
	require.Equal(t, ast.FUNCTION, fn.Kind)
	assert.Equal(t, "f", fn.Name)
	assert.Nil(t, fn.GetChild(0))
	assert.Equal(t, "f", fn.GetChild(1).Name)
	argin := fn.GetChild(2)
	require.Equal(t, ast.IDS, argin.Kind)
	assert.Equal(t, "x", argin.GetChild(0).Name)
}

func TestFunctionSingleReturn(t *testing.T) {
	root := parseSrc(t, "function y = f(x)\n  y = x;\nend\n")
	fn := root.GetChild(0)
	argout := fn.GetChild(0)
	require.Equal(t, ast.IDS, argout.Kind)
	assert.Equal(t, "y", argout.GetChild(0).Name)
	assert.Equal(t, "f", fn.Name)
}

func TestFunctionMultiReturn(t *testing.T) {
	root := parseSrc(t, "function [a, b] = f(x)\n  a = x;\n  b = x;\nend\n")
	fn := root.GetChild(0)
	argout := fn.GetChild(0)
	require.Equal(t, ast.IDS, argout.Kind)
	require.Equal(t, 2, argout.ChildCount())
	assert.Equal(t, "f", fn.Name)
}

func TestMultiReturnAssignmentIsValidLvalue(t *testing.T) {
	n := firstStmt(t, "[a, b] = f(x);\n")
	require.Equal(t, ast.ASSIGN, n.Kind)
	lhs := n.GetChild(0)
	assert.Equal(t, ast.MATRIX_LIT, lhs.Kind)
}

func TestClassWithSections(t *testing.T) {
	src := "classdef Widget < Base\n" +
		"properties\n  size = 1;\nend\n" +
		"methods\n" +
		"function obj = Widget(n)\n  obj.size = n;\nend\n" +
		"end\n" +
		"end\n"
	root := parseSrc(t, src)
	cls := root.GetChild(0)
	require.Equal(t, ast.CLASS, cls.Kind)
	assert.Equal(t, "Widget", cls.Name)

	inherits := cls.GetChild(0)
	require.NotNil(t, inherits)
	assert.Equal(t, "Base", inherits.GetChild(0).Name)

	props := cls.GetChild(1)
	require.Equal(t, ast.PROPERTIES, props.Kind)

	methods := cls.GetChild(2)
	require.Equal(t, ast.METHODS, methods.Kind)
	require.Equal(t, 1, methods.ChildCount())
	assert.Equal(t, ast.FUNCTION, methods.GetChild(0).Kind)
}

func TestMultipleTopLevelStatementsWrapInRoot(t *testing.T) {
	root := parseSrc(t, "x = 1;\ny = 2;\n")
	require.Equal(t, ast.ROOT, root.Kind)
	require.Equal(t, 2, root.ChildCount())
}

func TestInvalidAssignmentTargetIsReported(t *testing.T) {
	fs := token.NewFileSet()
	toks, scanErrs := scanner.ScanString(fs, "test.m", "1 = 2;\n")
	require.Empty(t, scanErrs)
	file := fs.File(toks[0].Value.Pos)
	_, errCount, _ := parser.ParseCounting(file, toks)
	assert.Greater(t, errCount, 0)
}

func TestFirstErrorOnlyIsReportedButCountIsTotal(t *testing.T) {
	fs := token.NewFileSet()
	toks, scanErrs := scanner.ScanString(fs, "test.m", "1 = 2;\n3 = 4;\n")
	require.Empty(t, scanErrs)
	file := fs.File(toks[0].Value.Pos)
	_, errCount, errs := parser.ParseCounting(file, toks)
	assert.Equal(t, 2, errCount)
	assert.Len(t, errs, 1)
}
