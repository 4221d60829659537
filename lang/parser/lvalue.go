package parser

import "github.com/geekysuavo/mattec/lang/ast"

// isValidLvalue reports whether n may legally appear as an assignment
// target. Mirrors the original compiler's valid_lvalue recursion:
//
//   - IDENT is valid if every qualifier attached to it is valid.
//   - a FIELD/SUPER_REF qualifier (.x, @x) is always a valid terminal.
//   - a CALL_SUBS/CELL_SUBS qualifier ((i), {i}) is valid if its
//     subscript row, if any, contains only unqualified identifiers,
//     COLON_ALL, INT_LIT, or END_VAL.
//   - MATRIX_LIT (bracket literal) is valid only if it wraps exactly the
//     multi-return pattern `[a, b, ...] = f(...)`: a COLUMN with a single
//     ROW child that is itself a valid lvalue.
//   - a bare ROW (no enclosing brackets) is valid only if every child is
//     an unqualified IDENT.
func isValidLvalue(n *ast.Node) bool {
	if n == nil {
		return false
	}
	switch n.Kind {
	case ast.IDENT:
		for _, c := range n.Children() {
			if c == nil {
				continue
			}
			if !isValidQualifier(c) {
				return false
			}
		}
		return true

	case ast.MATRIX_LIT:
		if n.ChildCount() != 1 {
			return false
		}
		return isValidLvalue(n.GetChild(0))

	case ast.COLUMN:
		if n.ChildCount() != 1 {
			return false
		}
		row := n.GetChild(0)
		return row != nil && row.Kind == ast.ROW && isValidLvalue(row)

	case ast.ROW:
		for _, c := range n.Children() {
			if c == nil || c.Kind != ast.IDENT || c.ChildCount() != 0 {
				return false
			}
		}
		return true

	default:
		return false
	}
}

func isValidQualifier(q *ast.Node) bool {
	switch q.Kind {
	case ast.SUPER_REF, ast.FIELD:
		return true

	case ast.CALL_SUBS, ast.CELL_SUBS:
		if q.ChildCount() == 0 {
			return true
		}
		row := q.GetChild(0)
		if row == nil || row.Kind != ast.ROW {
			return false
		}
		for _, c := range row.Children() {
			if c == nil {
				continue
			}
			switch c.Kind {
			case ast.IDENT:
				if c.ChildCount() != 0 {
					return false
				}
			case ast.COLON_ALL, ast.INT_LIT, ast.END_VAL:
				// bare subscript bounds: always valid in lvalue position.
			default:
				return false
			}
		}
		return true

	default:
		return false
	}
}
