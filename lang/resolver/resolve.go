package resolver

import (
	"github.com/geekysuavo/mattec/lang/ast"
	"github.com/geekysuavo/mattec/lang/symtab"
)

// resolveSymbols implements the third semantic pass (spec.md §4.7):
// identifier resolution. It mirrors initSymbols's node-type-driven
// traversal shape (skipping declarative name lists and the FUNCTION/
// CLASS child slots that hold declarations rather than expressions) so
// that a parameter name, property name, or superclass name is never
// mistaken for a variable reference.
func (r *Resolver) resolveSymbols(n *ast.Node) {
	if n == nil {
		return
	}

	switch n.Kind {
	case ast.FUNCTION:
		r.resolveSymbols(n.GetChild(3))

	case ast.CLASS:
		for i := 1; i < n.ChildCount(); i++ {
			r.resolveSymbols(n.GetChild(i))
		}

	case ast.PROPERTIES, ast.ENUMERATION:
		for i := 1; i < n.ChildCount(); i += 2 {
			r.resolveSymbols(n.GetChild(i))
		}

	case ast.EVENTS, ast.IDS:
		// declarative name lists only.

	case ast.ANON_FUNC:
		if n.GetChild(0) != nil {
			// Literal form: parameters are declarations already handled
			// by initSymbols, not uses to resolve.
			r.resolveSymbols(n.GetChild(1))
		} else if callee := n.GetChild(1); callee != nil {
			// Handle form: a bare reference to a function, never a call.
			r.resolveIdent(callee, false)
		}

	case ast.IDENT:
		for _, c := range n.Children() {
			r.resolveSymbols(c)
		}
		r.resolveIdent(n, true)

	default:
		for _, c := range n.Children() {
			r.resolveSymbols(c)
		}
	}
}

// resolveIdent looks up n's name starting from its own enclosing table
// and searching outward through parent scopes, exactly like a C
// compiler's lexical scope chain. allowCall governs whether resolving to
// a GlobalFunc symbol triggers the ASSIGN-retyping/FN_CALL-synthesis
// rule below (true for ordinary identifier uses, false for a
// function-handle reference, which must remain a bare binding).
func (r *Resolver) resolveIdent(n *ast.Node, allowCall bool) {
	tbl := n.GetSymbols()
	var sym *symtab.Symbol
	var owner *symtab.Table
	for t := tbl; t != nil; t = t.Parent {
		if s, ok := t.Lookup(n.Name); ok {
			sym, owner = s, t
			break
		}
	}
	if sym == nil {
		r.errorf(n, "undefined symbol: %s", n.Name)
		return
	}
	n.Ref = ast.SymRef{Table: owner, Index: sym.Index}

	if allowCall && sym.Kind == symtab.GlobalFunc {
		r.synthesizeCall(n, tbl)
		return
	}
	if allowCall {
		r.resolveQualifiers(n, tbl)
	}
}

// resolveQualifiers handles a plain variable's (non-GlobalFunc) FIELD/
// CALL_SUBS/CELL_SUBS/SUPER_REF qualifier chain: `a(i)`, `s.field`,
// `c{i}`, chained or combined. Each qualifier step reads from the
// previous step's value (the bare symbol for the first step) into its
// own fresh temporary; the chain's final temp index is stashed in n's
// otherwise-unused IntVal field (-1 when n has no qualifiers at all) so
// the emitter can find the qualified read's own result without a second
// SymRef-shaped field on every node. Qualified assignment (the lvalue
// case) is read back out the same way by the emitter's writeAssign.
func (r *Resolver) resolveQualifiers(n *ast.Node, tbl *symtab.Table) {
	n.IntVal = -1
	for _, q := range n.Children() {
		if q == nil {
			continue
		}
		switch q.Kind {
		case ast.FIELD, ast.SUPER_REF, ast.CALL_SUBS, ast.CELL_SUBS:
			// subscript/field-name expressions were already resolved by
			// the caller's generic per-child recursion above; only the
			// per-step result temp remains to be registered here.
		default:
			continue
		}
		sym := tbl.NewTemp()
		q.Ref = ast.SymRef{Table: tbl, Index: sym.Index}
		n.IntVal = sym.Index
	}
}

// synthesizeCall applies spec.md §4.7's function-call rule once n has
// resolved to a GlobalFunc symbol: if n is exactly the right-hand side of
// an ASSIGN, that ASSIGN is retyped in place to FN_CALL; otherwise a new
// FN_CALL is spliced into n's old slot, with a fresh temporary as its
// result target and n itself as the callee. Either way the reserved
// argument-packet names _ai/_ao are declared in the call site's
// enclosing table and attached as the call's trailing children.
func (r *Resolver) synthesizeCall(n *ast.Node, tbl *symtab.Table) {
	parent := n.Parent
	if parent != nil && parent.Kind == ast.ASSIGN && parent.GetChild(1) == n {
		parent.Kind = ast.FN_CALL
		attachArgPackets(parent, tbl)
		return
	}

	target := ast.New(ast.TEMP_VAR, n.Pos)
	stamp(target, n)
	tempSym := tbl.NewTemp()
	target.Ref = ast.SymRef{Table: tbl, Index: tempSym.Index}

	call := ast.New(ast.FN_CALL, n.Pos)
	stamp(call, n)
	call.AddChild(target)
	call.AddChild(n)
	attachArgPackets(call, tbl)

	if parent == nil {
		return
	}
	for i, c := range parent.Children() {
		if c == n {
			parent.SetChild(i, call)
			break
		}
	}
}

func attachArgPackets(call *ast.Node, tbl *symtab.Table) {
	aiSym := tbl.Declare("_ai", symtab.Local)
	aoSym := tbl.Declare("_ao", symtab.Local)

	ai := ast.New(ast.ARGIN_PACK, call.Pos)
	stamp(ai, call)
	ai.Ref = ast.SymRef{Table: tbl, Index: aiSym.Index}

	ao := ast.New(ast.ARGOUT_PACK, call.Pos)
	stamp(ao, call)
	ao.Ref = ast.SymRef{Table: tbl, Index: aoSym.Index}

	call.AddChild(ai)
	call.AddChild(ao)
}

func stamp(n, like *ast.Node) {
	n.File = like.File
	n.Line = like.Line
	n.Func = like.Func
}
