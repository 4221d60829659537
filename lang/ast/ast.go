// Package ast defines the abstract syntax tree produced by lang/parser and
// consumed by lang/resolver and lang/emitter.
//
// Unlike a tagged-interface AST (one Go type per grammar production), the
// tree here follows the original compiler's generic-node design: every
// node is a *Node carrying a Kind discriminator, a parent link, and an
// ordered child array, so that the handful of structural operations the
// semantic passes need (add/get child, rip, slip, merge, symbol-table
// lookup) are implemented once instead of once per node type. Per-Kind
// semantics live in the Kind itself and in the fields a given Kind is
// documented to use.
package ast

import (
	"fmt"
	"strings"

	"github.com/geekysuavo/mattec/lang/symtab"
	"github.com/geekysuavo/mattec/lang/token"
)

// SymRef is the (table, index) pair a node is bound to after resolution:
// it names the Symbol this node reads or writes. Set exactly once, by
// the resolver.
type SymRef struct {
	Table *symtab.Table
	Index int // -1 until resolved
}

// Resolved reports whether the symbol reference has been set.
func (r SymRef) Resolved() bool { return r.Table != nil && r.Index >= 0 }

// Symbol dereferences the reference; callers must check Resolved first.
func (r SymRef) Symbol() *symtab.Symbol { return r.Table.Symbols()[r.Index] }

// Node is a single AST node. The zero value is not meaningful; use New.
type Node struct {
	Kind   Kind
	Parent *Node

	// children is nil-preserving: a nil entry marks an absent grammar slot
	// (e.g. a missing `else` branch, or a missing step in a desugared
	// colon expression before synthesis). Use GetChild/ChildCount rather
	// than indexing directly so negative indices and nil entries are
	// handled uniformly.
	children []*Node

	// Source position, for diagnostics.
	Pos  token.Pos
	File string
	Line int
	Func string // name of the innermost enclosing FUNCTION, if any

	// Display is true when the statement or expression's value must be
	// echoed (`x = 1` with no trailing `;`); the emitter turns this into a
	// display(...) call labeled with the bound symbol's name, or "ans" for
	// unbound temporaries.
	Display bool

	// Table is non-nil only for ROOT, CLASS, and FUNCTION nodes: the scope
	// this node owns.
	Table *symtab.Table

	// Ref names the symbol this node is bound to (its own temporary, the
	// variable an IDENT refers to, the literal a literal node registers
	// as, ...). Set exactly once, by the resolver's symbol passes.
	Ref SymRef

	// Name carries identifier text: the name an IDENT refers to, a field
	// or qualifier's name, a function/class name, the catch variable of a
	// TRY, etc.
	Name string

	// Literal payload; which field is meaningful is determined by Kind
	// (IsLiteral()) and, for numeric kinds, IsString distinguishes a
	// string payload from a scalar one as described by spec.md §3.
	IntVal   int64
	FloatVal float64
	ImagVal  float64 // imaginary part, COMPLEX_LIT only
	StrVal   string
	IsString bool

	// Op carries the operator token for BINOP/UNOP/POSTOP/PREOP/TRANSPOSE/
	// ELEM_TRANSPOSE nodes.
	Op token.Token
}

// New allocates a node of the given kind at pos, with no children.
func New(kind Kind, pos token.Pos) *Node {
	return &Node{Kind: kind, Pos: pos, Ref: SymRef{Index: -1}}
}

// AddChild appends child to n's children, setting child's Parent link (if
// child is non-nil; a nil child records an intentionally absent slot).
func (n *Node) AddChild(child *Node) {
	if child != nil {
		child.Parent = n
	}
	n.children = append(n.children, child)
}

// ChildCount returns the number of child slots, including nil ones.
func (n *Node) ChildCount() int { return len(n.children) }

// GetChild returns the child at index i. Negative indices count from the
// end (-1 is the last child), matching spec.md §4.6. Out-of-range indices
// return nil.
func (n *Node) GetChild(i int) *Node {
	if i < 0 {
		i += len(n.children)
	}
	if i < 0 || i >= len(n.children) {
		return nil
	}
	return n.children[i]
}

// SetChild replaces the child at index i (which must be in range).
func (n *Node) SetChild(i int, child *Node) {
	if i < 0 {
		i += len(n.children)
	}
	if child != nil {
		child.Parent = n
	}
	n.children[i] = child
}

// Children returns the raw child slice; callers must not retain it
// across a mutating operation (Rip/Slip/AddChild may reallocate it).
func (n *Node) Children() []*Node { return n.children }

// Clone returns a deep copy of n, detached from any tree (Parent is nil on
// the result). Used by the parser to desugar `x op= e` into
// `x = x op e` without aliasing the same *Node into the tree twice.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	c := *n
	c.Parent = nil
	c.children = make([]*Node, len(n.children))
	for i, ch := range n.children {
		cc := ch.Clone()
		if cc != nil {
			cc.Parent = &c
		}
		c.children[i] = cc
	}
	return &c
}

// Root walks up through Parent links and returns the outermost node.
func (n *Node) Root() *Node {
	cur := n
	for cur.Parent != nil {
		cur = cur.Parent
	}
	return cur
}

// Rip splices n out of the tree, replacing it in its parent's child list
// with n's own single child. n must have exactly one child and a
// non-nil parent; the orphaned n is returned for inspection/discard.
func (n *Node) Rip() *Node {
	if n.Parent == nil || len(n.children) != 1 {
		panic("ast: Rip requires a parent and exactly one child")
	}
	only := n.children[0]
	parent := n.Parent
	for i, c := range parent.children {
		if c == n {
			parent.SetChild(i, only)
			break
		}
	}
	n.Parent = nil
	return n
}

// Slip inserts a new wrapper node between n and its parent: wrapper
// becomes the parent's child in n's former slot, and n becomes wrapper's
// sole child. wrapper must not already have children.
func (n *Node) Slip(wrapper *Node) {
	if len(wrapper.children) != 0 {
		panic("ast: Slip requires an empty wrapper node")
	}
	if n.Parent == nil {
		wrapper.AddChild(n)
		return
	}
	parent := n.Parent
	for i, c := range parent.children {
		if c == n {
			parent.SetChild(i, wrapper)
			break
		}
	}
	wrapper.AddChild(n)
}

// Merge combines two ROOT parses under a single ROOT, flattening nested
// ROOT nodes (spec.md §4.6: "combine two parses under a single root,
// flattening top-level ROOT nodes"). If a is nil, b is returned as-is (and
// vice versa); merging is left-biased when both are non-nil ROOT nodes.
func Merge(a, b *Node) *Node {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	}
	if a.Kind != ROOT || b.Kind != ROOT {
		panic("ast: Merge requires two ROOT nodes")
	}
	for _, c := range b.children {
		a.AddChild(c)
	}
	return a
}

// GetSymbols walks upward from n (inclusive) and returns the nearest
// enclosing Table, i.e. the Table owned by the closest ROOT/CLASS/
// FUNCTION ancestor.
func (n *Node) GetSymbols() *symtab.Table {
	for cur := n; cur != nil; cur = cur.Parent {
		if cur.Table != nil {
			return cur.Table
		}
	}
	return nil
}

// GetGlobals returns the root table: the Table owned by the tree's ROOT
// node.
func (n *Node) GetGlobals() *symtab.Table {
	tbl := n.GetSymbols()
	if tbl == nil {
		return nil
	}
	return tbl.Root()
}

// Format implements fmt.Formatter so nodes can be pretty-printed by
// ast.Printer; only 'v' and 's' verbs are supported, matching the
// teacher's printer contract (width pads/truncates, '#' prints child
// counts, '-'/'+' control padding side).
func (n *Node) Format(f fmt.State, verb rune) {
	label := n.describe()
	formatNode(f, verb, n, label)
}

func (n *Node) describe() string {
	var b strings.Builder
	b.WriteString(n.Kind.String())
	switch {
	case n.Kind == IDENT || n.Kind == FIELD || n.Kind == SUPER_REF:
		fmt.Fprintf(&b, " %s", n.Name)
	case n.Kind.IsLiteral():
		switch n.Kind {
		case INT_LIT:
			fmt.Fprintf(&b, " %d", n.IntVal)
		case FLOAT_LIT:
			fmt.Fprintf(&b, " %g", n.FloatVal)
		case COMPLEX_LIT:
			fmt.Fprintf(&b, " %g+%gi", n.FloatVal, n.ImagVal)
		case STRING_LIT:
			fmt.Fprintf(&b, " %q", n.StrVal)
		}
	case n.Kind == BINOP || n.Kind == UNOP || n.Kind == POSTOP || n.Kind == PREOP:
		fmt.Fprintf(&b, " %s", n.Op)
	case n.Kind == FUNCTION || n.Kind == CLASS:
		fmt.Fprintf(&b, " %s", n.Name)
	}
	if n.Display {
		b.WriteString(" display")
	}
	return b.String()
}

func formatNode(f fmt.State, verb rune, n *Node, label string) {
	if verb != 'v' && verb != 's' {
		fmt.Fprintf(f, "%%!%c(%T)", verb, n)
		return
	}

	label = strings.ReplaceAll(label, "\r\n", "⏎")
	label = strings.ReplaceAll(label, "\n", "⏎")
	label = strings.ReplaceAll(label, "\t", "⭾")

	if w, ok := f.Width(); ok {
		minus, plus := f.Flag('-'), f.Flag('+')
		runes := []rune(label)
		switch {
		case len(runes) >= w:
			runes = runes[:w]
		case minus:
			runes = append(runes, []rune(strings.Repeat(" ", w-len(runes)))...)
		case !plus:
			runes = append([]rune(strings.Repeat(" ", w-len(runes))), runes...)
		}
		label = string(runes)
	}

	fmt.Fprint(f, label)
	if f.Flag('#') {
		fmt.Fprintf(f, " {children=%d}", n.ChildCount())
	}
}
