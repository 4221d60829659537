package resolver

import (
	"github.com/geekysuavo/mattec/lang/ast"
	"github.com/geekysuavo/mattec/lang/symtab"
)

// Builtins lists the function names the compiler provides in every
// compilation unit, grounded on the runtime's disp/sprintf/sum/prod
// entry points: disp and sprintf for output, sum and prod for reduction.
var Builtins = []string{"disp", "sprintf", "sum", "prod"}

func registerBuiltins(root *symtab.Table) {
	end := root.Declare("end", symtab.Builtin)
	end.IntVal = -1
	for _, name := range Builtins {
		root.Declare(name, symtab.GlobalFunc)
	}
}

// isTempKind reports whether a node of kind k registers a compiler
// temporary during initSymbols: every operator/aggregate expression node
// except identifiers (which name an existing binding instead), literals
// (deduplicated separately by value), and the subscript-only markers
// COLON_ALL/END_VAL, which are compile-time bound markers with no
// runtime value of their own.
func isTempKind(k ast.Kind) bool {
	switch k {
	case ast.BINOP, ast.UNOP, ast.POSTOP, ast.PREOP, ast.TRANSPOSE,
		ast.ELEM_TRANSPOSE, ast.COLON, ast.ROW, ast.COLUMN,
		ast.MATRIX_LIT, ast.CELL_LIT, ast.ANON_FUNC:
		return true
	}
	return false
}

// initSymbols implements the second semantic pass (spec.md §4.7):
// node-type-driven scope and symbol registration. enclosing is the
// nearest owning Table found so far while descending; it is nil only
// above the ROOT, which always supplies its own.
func (r *Resolver) initSymbols(n *ast.Node, enclosing *symtab.Table) {
	if n == nil {
		return
	}

	switch n.Kind {
	case ast.ROOT:
		n.Table = symtab.New(nil)
		r.root = n.Table
		registerBuiltins(n.Table)
		for _, c := range n.Children() {
			r.initSymbols(c, n.Table)
		}

	case ast.CLASS:
		n.Table = symtab.New(enclosing)
		if n.Name != "" {
			sym := r.root.Declare(n.Name, symtab.Class)
			n.Ref = ast.SymRef{Table: r.root, Index: sym.Index}
		}
		for _, c := range n.Children() {
			r.initSymbols(c, n.Table)
		}

	case ast.FUNCTION:
		n.Table = symtab.New(enclosing)
		if argin := n.GetChild(2); argin != nil {
			for _, id := range argin.Children() {
				if id != nil {
					n.Table.Declare(id.Name, symtab.ArgIn)
				}
			}
		}
		if argout := n.GetChild(0); argout != nil {
			for _, id := range argout.Children() {
				if id != nil {
					n.Table.Declare(id.Name, symtab.ArgOut)
				}
			}
		}
		if n.Name != "" {
			sym := r.root.Declare(n.Name, symtab.GlobalFunc)
			n.Ref = ast.SymRef{Table: r.root, Index: sym.Index}
		}
		// Only the body (down[3]) holds ordinary statements; argin/argout/
		// name are declarations just handled above, not expressions.
		r.initSymbols(n.GetChild(3), n.Table)

	case ast.METHODS:
		for _, c := range n.Children() {
			r.initSymbols(c, enclosing)
		}

	case ast.PROPERTIES, ast.ENUMERATION:
		// children alternate [name, default-value-or-nil]; only the
		// values (odd indices) can hold expressions worth registering.
		// Property/enumerator names are never looked up as symbols (the
		// emitter emits no code for classdef bodies), so they are not declared.
		for i := 1; i < n.ChildCount(); i += 2 {
			r.initSymbols(n.GetChild(i), enclosing)
		}

	case ast.EVENTS, ast.IDS:
		// pure declarative name lists: nothing to register or descend into.

	case ast.ANON_FUNC:
		if params := n.GetChild(0); params != nil {
			for _, id := range params.Children() {
				if id != nil {
					enclosing.Declare(id.Name, symtab.Local)
				}
			}
		}
		r.initSymbols(n.GetChild(1), enclosing)
		sym := enclosing.NewTemp()
		n.Ref = ast.SymRef{Table: enclosing, Index: sym.Index}

	case ast.FOR:
		if v := n.GetChild(0); v != nil {
			enclosing.Declare(v.Name, symtab.Local)
		}
		enclosing.Declare("_it", symtab.Temp)
		r.initSymbols(n.GetChild(1), enclosing)
		r.initSymbols(n.GetChild(2), enclosing)

	case ast.SWITCH:
		enclosing.Declare("_sw", symtab.Temp)
		for _, c := range n.Children() {
			r.initSymbols(c, enclosing)
		}

	case ast.TRY:
		if v := n.GetChild(1); v != nil {
			enclosing.Declare(v.Name, symtab.Local)
		}
		r.initSymbols(n.GetChild(0), enclosing)
		r.initSymbols(n.GetChild(2), enclosing)

	case ast.GLOBAL:
		for _, c := range n.Children() {
			if c != nil {
				r.root.Declare(c.Name, symtab.Global)
			}
		}

	case ast.PERSISTENT:
		for _, c := range n.Children() {
			if c != nil {
				enclosing.Declare(c.Name, symtab.Persistent)
			}
		}

	case ast.ASSIGN:
		r.initSymbols(n.GetChild(1), enclosing)
		kind := symtab.Local
		if enclosing == r.root {
			kind = symtab.Global
		}
		for _, t := range assignTargets(n.GetChild(0)) {
			if t != nil && t.Kind == ast.IDENT {
				enclosing.Declare(t.Name, kind)
			}
		}
		r.initSymbols(n.GetChild(0), enclosing)

	case ast.INT_LIT:
		sym := enclosing.DeclareLiteral(symtab.IntLiteral, n.IntVal, 0, 0, "")
		n.Ref = ast.SymRef{Table: enclosing, Index: sym.Index}
	case ast.FLOAT_LIT:
		sym := enclosing.DeclareLiteral(symtab.FloatLiteral, 0, n.FloatVal, 0, "")
		n.Ref = ast.SymRef{Table: enclosing, Index: sym.Index}
	case ast.COMPLEX_LIT:
		sym := enclosing.DeclareLiteral(symtab.ComplexLiteral, 0, n.FloatVal, n.ImagVal, "")
		n.Ref = ast.SymRef{Table: enclosing, Index: sym.Index}
	case ast.STRING_LIT:
		sym := enclosing.DeclareLiteral(symtab.StringLiteral, 0, 0, 0, n.StrVal)
		n.Ref = ast.SymRef{Table: enclosing, Index: sym.Index}

	default:
		if isTempKind(n.Kind) {
			sym := enclosing.NewTemp()
			n.Ref = ast.SymRef{Table: enclosing, Index: sym.Index}
		}
		for _, c := range n.Children() {
			r.initSymbols(c, enclosing)
		}
	}
}

// assignTargets returns the identifier targets of an assignment's
// left-hand side: a single IDENT, or the identifiers of a multi-return
// row. After simplifyConcats, `[a, b] = f()` parses as
// MATRIX_LIT(ROW(a, b)): the COLUMN wrapper collapses (one ROW child)
// but the ROW itself survives (two children, past the one-child rule).
func assignTargets(lhs *ast.Node) []*ast.Node {
	if lhs == nil {
		return nil
	}
	switch lhs.Kind {
	case ast.IDENT:
		return []*ast.Node{lhs}
	case ast.ROW:
		return lhs.Children()
	case ast.MATRIX_LIT:
		if lhs.ChildCount() == 1 {
			if row := lhs.GetChild(0); row != nil && row.Kind == ast.ROW {
				return row.Children()
			}
		}
	}
	return nil
}
