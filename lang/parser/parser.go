// Package parser implements matte's recursive-descent parser: it consumes
// the token stream produced by lang/scanner and builds the generic
// lang/ast tree consumed by lang/resolver.
//
// The grammar is organized as a precedence chain, loosest to tightest:
// expr (assignment) -> lgor -> lgand -> ewor -> ewand -> reln -> range
// -> add -> mult -> postfix -> unary -> power -> prefix -> value. Row and
// column (comma/semicolon separated lists) and the qualifier chain
// (.field, @super, (call), {cell}) sit below value.
package parser

import (
	"fmt"

	"github.com/geekysuavo/mattec/lang/ast"
	"github.com/geekysuavo/mattec/lang/scanner"
	"github.com/geekysuavo/mattec/lang/token"
)

// Parser consumes a fixed token slice (the scanner always runs to
// completion first; matte does not interleave scanning and parsing) and
// produces an *ast.Node tree.
type Parser struct {
	file *token.File
	toks []scanner.TokenAndValue
	pos  int

	endValid bool   // true inside a subscript, where `end` and bare `:` are valid
	curFunc  string // name of the innermost enclosing FUNCTION being parsed

	errs     token.ErrorList
	reported bool
	errCount int
}

// Parse builds a tree from toks, a complete token stream for file (as
// produced by scanner.Scanner). The returned tree's root is always an
// ast.ROOT node, even for a single top-level statement. Diagnostics are
// returned as a token.ErrorList; per the scanner's convention, only the
// first is guaranteed to carry a message, but ErrorCount (via
// Parser.ErrorCount, not exposed here) tracks the true total. Callers
// that need the count should use ParseCounting.
func Parse(file *token.File, toks []scanner.TokenAndValue) (*ast.Node, token.ErrorList) {
	tree, _, errs := ParseCounting(file, toks)
	return tree, errs
}

// ParseCounting is like Parse but also returns the total diagnostic
// count, including those suppressed from errs after the first.
func ParseCounting(file *token.File, toks []scanner.TokenAndValue) (*ast.Node, int, token.ErrorList) {
	p := &Parser{file: file, toks: toks}
	tree := p.parseBlocks()
	if tree != nil && tree.Kind != ast.ROOT {
		wrap := p.node(ast.ROOT, tree.Pos)
		wrap.AddChild(tree)
		tree = wrap
	} else if tree == nil {
		tree = p.node(ast.ROOT, 0)
	}
	p.expect(token.EOF)
	p.errs.Sort()
	return tree, p.errCount, p.errs
}

// --- token stream helpers ---

func (p *Parser) cur() token.Token {
	if p.pos >= len(p.toks) {
		return token.EOF
	}
	return p.toks[p.pos].Token
}

func (p *Parser) curVal() token.Value {
	if p.pos >= len(p.toks) {
		return token.Value{}
	}
	return p.toks[p.pos].Value
}

func (p *Parser) curPos() token.Pos { return p.curVal().Pos }

func (p *Parser) next() {
	if p.pos < len(p.toks) {
		p.pos++
	}
}

func (p *Parser) match(tok token.Token) bool { return p.cur() == tok }

func (p *Parser) accept(tok token.Token) bool {
	if p.match(tok) {
		p.next()
		return true
	}
	return false
}

// expect consumes tok if present and returns true; otherwise it records a
// diagnostic and returns false without advancing, so callers can keep
// building a best-effort tree around the error.
func (p *Parser) expect(tok token.Token) bool {
	if p.accept(tok) {
		return true
	}
	p.errorf(p.curPos(), "expected %s, found %s", tok.GoString(), p.cur().GoString())
	return false
}

func (p *Parser) expectStmtEnd() {
	if p.accept(token.SEMI) || p.accept(token.COMMA) || p.accept(token.EOL) {
		p.skipEOL()
		return
	}
	p.errorMissing("end of statement")
}

func (p *Parser) skipEOL() {
	for p.cur() == token.EOL {
		p.next()
	}
}

func (p *Parser) pushEndValid(v bool) bool {
	prev := p.endValid
	p.endValid = v
	return prev
}

func (p *Parser) popEndValid(prev bool) { p.endValid = prev }

// pushFunc records the innermost enclosing function name for the
// duration of a function body parse; the returned closure restores the
// previous value.
func (p *Parser) pushFunc(name string) func() {
	prev := p.curFunc
	p.curFunc = name
	return func() { p.curFunc = prev }
}

// node allocates a Kind-tagged node stamped with the current function
// context, so the resolver never has to re-derive which function a node
// belongs to.
func (p *Parser) node(kind ast.Kind, pos token.Pos) *ast.Node {
	n := ast.New(kind, pos)
	n.Func = p.curFunc
	if p.file != nil {
		n.File = p.file.Name()
		n.Line = p.file.Position(pos).Line
	}
	return n
}

func (p *Parser) bareIdent() *ast.Node {
	v := p.curVal()
	n := p.node(ast.IDENT, p.curPos())
	n.Name = v.Raw
	p.next()
	return n
}

// bareIdentOrNil consumes and returns an IDENT, or returns nil without
// consuming anything if the current token isn't one.
func (p *Parser) bareIdentOrNil() *ast.Node {
	if !p.match(token.IDENT) {
		return nil
	}
	return p.bareIdent()
}

// --- diagnostics ---
//
// Only the first parser diagnostic in a run carries a message (matching
// the scanner's behavior and spec.md's "only the first... is printed");
// errCount still increments for every subsequent error so driver-level
// error summaries ("N errors") stay accurate.

func (p *Parser) errorf(pos token.Pos, format string, args ...any) {
	p.errCount++
	if p.reported {
		return
	}
	p.reported = true
	position := token.Position{}
	if p.file != nil {
		position = p.file.Position(pos)
	}
	p.errs.Add(position, fmt.Sprintf(format, args...))
}

func (p *Parser) errorMissing(what string) {
	p.errorf(p.curPos(), "missing %s before %s", what, p.cur().GoString())
}

// ErrorCount reports the total number of diagnostics raised during the
// most recent Parse call driven through this Parser value.
func (p *Parser) ErrorCount() int { return p.errCount }
