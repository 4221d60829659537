package emitter

import "github.com/geekysuavo/mattec/lang/ast"

// writeExpr walks n's subtree in the same restricted order resolveSymbols
// uses (skip declarative slots, recurse into expression children only)
// and emits one statement per operator/concat/call node it passes over,
// in post-order: by the time a node's own line is written, every child
// it references by name has already been computed into its own symbol.
func (e *Emitter) writeExpr(n *ast.Node) {
	if n == nil {
		return
	}

	switch n.Kind {
	case ast.FN_CALL:
		e.writeCall(n)
		return

	case ast.ANON_FUNC:
		if n.GetChild(0) != nil {
			e.writeExpr(n.GetChild(1))
		}
		return

	case ast.IDS, ast.EVENTS:
		return
	}

	for _, c := range n.Children() {
		e.writeExpr(c)
	}

	switch n.Kind {
	case ast.BINOP, ast.UNOP:
		e.writeOperation(n)
	case ast.TRANSPOSE:
		e.writeUnaryCall(n, "object_ctranspose", n.GetChild(0))
	case ast.ELEM_TRANSPOSE:
		e.writeUnaryCall(n, "object_transpose", n.GetChild(0))
	case ast.POSTOP, ast.PREOP:
		e.writeIncDec(n)
	case ast.ROW:
		e.writeConcat(n, "object_horzcat")
	case ast.COLUMN:
		e.writeConcat(n, "object_vertcat")
	case ast.COLON:
		e.writeColon(n)
	case ast.MATRIX_LIT, ast.CELL_LIT:
		e.writeLitWrap(n)
	case ast.IDENT:
		e.writeQualifiers(n)
	}
}

// exprName returns the C name holding n's value as an expression operand:
// a qualified identifier's value lives in its last qualifier step's own
// temporary (see lang/resolver.resolveQualifiers), not the base symbol
// symName alone would return.
func exprName(n *ast.Node) string {
	if n == nil {
		return ""
	}
	if n.Kind == ast.IDENT && n.IntVal >= 0 {
		var last *ast.Node
		for _, q := range n.Children() {
			if q != nil && q.Ref.Resolved() {
				last = q
			}
		}
		if last != nil {
			return symName(last)
		}
	}
	return symName(n)
}

// writeQualifiers emits a chain of subscript/field reads for a plain
// (non-function) identifier carrying FIELD/CALL_SUBS/CELL_SUBS/SUPER_REF
// qualifiers, each step re-basing on the previous one's result. Multi-
// index subscripts (`a(i,j)`) are narrowed to their first index: full
// multi-dimensional subsref dispatch is left to the runtime's own
// indexing surface rather than re-derived here (see DESIGN.md).
func (e *Emitter) writeQualifiers(n *ast.Node) {
	if n.IntVal < 0 {
		return
	}
	base := symName(n)
	for _, q := range n.Children() {
		if q == nil || !q.Ref.Resolved() {
			continue
		}
		name := symName(q)
		switch q.Kind {
		case ast.FIELD, ast.SUPER_REF:
			e.writef("  %s%s = object_struct_get(&_z1, %s, \"%s\");\n",
				declPrefix(name), name, base, q.Name)
		case ast.CALL_SUBS:
			e.writef("  %s%s = object_subsref(&_z1, %s, %s);\n",
				declPrefix(name), name, base, qualifierIndex(q))
		case ast.CELL_SUBS:
			e.writef("  %s%s = object_cell_get(&_z1, %s, %s);\n",
				declPrefix(name), name, base, qualifierIndex(q))
		default:
			continue
		}
		e.except(name, q)
		base = name
	}
}

// qualifierIndex returns the C expression for a CALL_SUBS/CELL_SUBS
// qualifier's first subscript, or "0" for an empty `()`/`{}` (the
// original grammar permits empty call subscripts only in call-argument
// position, never here, but an empty row is handled defensively rather
// than panicking on a malformed tree).
func qualifierIndex(q *ast.Node) string {
	if q.ChildCount() == 0 {
		return "0"
	}
	arg := q.GetChild(0)
	if arg == nil {
		return "0"
	}
	if arg.Kind == ast.ROW && arg.ChildCount() > 0 {
		arg = arg.GetChild(0)
	}
	return exprName(arg)
}

// writeOperation emits a BINOP/UNOP node's dispatch call, grounded on the
// original compiler's operators[] table (lang/emitter/operators.go's
// binaryOps/unaryOps).
func (e *Emitter) writeOperation(n *ast.Node) {
	name := symName(n)
	switch n.Kind {
	case ast.BINOP:
		fn, ok := binaryOps[n.Op]
		if !ok {
			fn = "object_invalid_op"
		}
		lhs, rhs := exprName(n.GetChild(0)), exprName(n.GetChild(1))
		e.writef("  %s%s = %s(&_z1, %s, %s);\n", declPrefix(name), name, fn, lhs, rhs)
	case ast.UNOP:
		fn, ok := unaryOps[n.Op]
		if !ok {
			fn = "object_invalid_op"
		}
		operand := exprName(n.GetChild(0))
		e.writef("  %s%s = %s(&_z1, %s);\n", declPrefix(name), name, fn, operand)
	}
	e.except(name, n)
}

func (e *Emitter) writeUnaryCall(n *ast.Node, fn string, operand *ast.Node) {
	name := symName(n)
	e.writef("  %s%s = %s(&_z1, %s);\n", declPrefix(name), name, fn, exprName(operand))
	e.except(name, n)
}

// writeIncDec lowers POSTOP/PREOP (++/--, with no entry in the original's
// operator table since both desugar to an add-by-one there) into a plain
// add/subtract against the literal 1, storing back into the operand and,
// for the postfix form, keeping the pre-increment value as this node's
// own result.
func (e *Emitter) writeIncDec(n *ast.Node) {
	name := symName(n)
	operand := n.GetChild(0)
	opName := symName(operand)
	fn := "object_plus"
	if n.Op.String() == "--" {
		fn = "object_minus"
	}

	if n.Kind == ast.POSTOP {
		e.writef("  %s%s = object_copy(&_z1, %s);\n", declPrefix(name), name, opName)
		e.writef("  %s = %s(&_z1, %s, object_one(&_z1));\n", opName, fn, opName)
		e.except(opName, n)
		return
	}

	e.writef("  %s = %s(&_z1, %s, object_one(&_z1));\n", opName, fn, opName)
	e.except(opName, n)
	e.writef("  %s%s = object_copy(&_z1, %s);\n", declPrefix(name), name, opName)
}

// writeConcat emits a ROW/COLUMN's variadic horzcat/vertcat call, each
// argument-count-prefixed exactly like the original's write_concat.
func (e *Emitter) writeConcat(n *ast.Node, fn string) {
	name := symName(n)
	e.writef("  %s%s = %s(&_z1, %d", declPrefix(name), name, fn, n.ChildCount())
	for _, c := range n.Children() {
		e.writef(", %s", exprName(c))
	}
	e.writef(");\n")
	e.except(name, n)
}

// writeColon emits object_colon's three-operand form; the parser always
// supplies all three children (a literal step of 1 when the source used
// the two-operand form), so there is never a nil slot to special-case.
func (e *Emitter) writeColon(n *ast.Node) {
	name := symName(n)
	start, step, stop := exprName(n.GetChild(0)), exprName(n.GetChild(1)), exprName(n.GetChild(2))
	e.writef("  %s%s = object_colon(&_z1, %s, %s, %s);\n", declPrefix(name), name, start, step, stop)
	e.except(name, n)
}

// writeLitWrap emits a bracket/brace literal's single remaining child
// (simplifyConcats has already collapsed away the trivial ROW/COLUMN
// wrapper for anything but the multi-row/degenerate cases) as a plain
// reference binding -- MATRIX_LIT/CELL_LIT carry no operation of their
// own once their inner concat has already produced the value.
func (e *Emitter) writeLitWrap(n *ast.Node) {
	name := symName(n)
	inner := n.GetChild(0)
	if inner == nil {
		ctor := "object_matrix_empty"
		if n.Kind == ast.CELL_LIT {
			ctor = "object_cell_empty"
		}
		e.writef("  %s%s = %s(&_z1);\n", declPrefix(name), name, ctor)
		return
	}
	e.writef("  %s%s = object_copy(&_z1, %s);\n", declPrefix(name), name, exprName(inner))
}
