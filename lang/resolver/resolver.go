// Package resolver implements matte's semantic middle end: the three
// ordered passes (spec.md §4.7) that run over a parsed tree between
// lang/parser and lang/emitter. simplifyConcats collapses the trivial
// ROW/COLUMN wrappers the parser always produces; initSymbols builds a
// symbol table per ROOT/CLASS/FUNCTION scope and registers every
// variable, literal, and compiler temporary; resolveSymbols binds every
// identifier to its declaration (or reports it undefined) and rewrites a
// bare function-name reference into an explicit call.
package resolver

import (
	"fmt"

	"github.com/geekysuavo/mattec/lang/ast"
	"github.com/geekysuavo/mattec/lang/symtab"
	"github.com/geekysuavo/mattec/lang/token"
)

// Resolver carries the state shared across the symbol-init and
// resolve passes: the root table (for global-scope registrations from
// anywhere in the tree) and the accumulated diagnostics.
//
// Only the first diagnostic in a run carries a message, matching
// lang/scanner and lang/parser's convention; errCount still increments
// for every subsequent error so a driver-level "N errors" summary stays
// accurate.
type Resolver struct {
	root *symtab.Table

	errs     token.ErrorList
	reported bool
	errCount int
}

// Resolve runs all three semantic passes over tree, which must already
// be a single ROOT node (as lang/parser.Parse/ParseCounting guarantee),
// and returns the tree, possibly rewritten in place by call synthesis,
// together with any diagnostics.
func Resolve(tree *ast.Node) (*ast.Node, token.ErrorList) {
	tree, _, errs := ResolveCounting(tree)
	return tree, errs
}

// ResolveCounting is like Resolve but also returns the total diagnostic
// count, including those suppressed from errs after the first.
func ResolveCounting(tree *ast.Node) (*ast.Node, int, token.ErrorList) {
	if tree == nil {
		return nil, 0, nil
	}
	if tree.Kind != ast.ROOT {
		panic("resolver: Resolve requires a ROOT node")
	}

	simplifyConcats(tree)

	var r Resolver
	r.initSymbols(tree, nil)
	r.resolveSymbols(tree)

	r.errs.Sort()
	return tree, r.errCount, r.errs
}

func (r *Resolver) errorf(n *ast.Node, format string, args ...any) {
	r.errCount++
	if r.reported {
		return
	}
	r.reported = true
	r.errs.Add(token.Position{Filename: n.File, Line: n.Line}, fmt.Sprintf(format, args...))
}
