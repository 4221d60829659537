package resolver

import "github.com/geekysuavo/mattec/lang/ast"

// simplifyConcats implements the first semantic pass (spec.md §4.7): a
// post-order walk that collapses the trivial ROW/COLUMN wrappers the
// parser always produces, even around a single value. A COLUMN with
// exactly one ROW child is replaced by that child; a ROW with exactly one
// child that is not a colon/range expression is replaced by that child.
// ROW(COLON) survives on purpose: a range used as a lone matrix or cell
// element is a single-element row, not something to flatten away.
func simplifyConcats(n *ast.Node) {
	if n == nil {
		return
	}
	for _, c := range n.Children() {
		simplifyConcats(c)
	}
	if n.Parent == nil {
		return
	}

	switch n.Kind {
	case ast.COLUMN:
		if only := soleChild(n); only != nil && only.Kind == ast.ROW {
			n.Rip()
		}
	case ast.ROW:
		if only := soleChild(n); only != nil && only.Kind != ast.COLON {
			n.Rip()
		}
	}
}

func soleChild(n *ast.Node) *ast.Node {
	if n.ChildCount() != 1 {
		return nil
	}
	return n.GetChild(0)
}
