package parser

import (
	"github.com/geekysuavo/mattec/lang/ast"
	"github.com/geekysuavo/mattec/lang/token"
)

// stmt : stmt_body stmt_end ;
// stmt_body : BREAK | CONTINUE | RETURN | persist | global | try | if
//
//	| switch | for | while | until | expr ;
//
// stmt_end : (SEMI|COMMA) EOL? | EOL ;
//
// A trailing SEMI suppresses the statement's Display flag; COMMA or a
// bare EOL sets it. Any run of further terminators is then swallowed so
// blank lines and `;;;` don't produce empty statements.
func (p *Parser) parseStmt() *ast.Node {
	p.skipEOL()

	var n *ast.Node
	switch p.cur() {
	case token.BREAK:
		n = p.node(ast.BREAK, p.curPos())
		p.next()
	case token.CONTINUE:
		n = p.node(ast.CONTINUE, p.curPos())
		p.next()
	case token.RETURN:
		n = p.node(ast.RETURN, p.curPos())
		p.next()
	case token.PERSISTENT:
		n = p.parsePersistOrGlobal(ast.PERSISTENT)
	case token.GLOBAL:
		n = p.parsePersistOrGlobal(ast.GLOBAL)
	case token.TRY:
		n = p.parseTry()
	case token.IF:
		n = p.parseIf()
	case token.SWITCH:
		n = p.parseSwitch()
	case token.FOR:
		n = p.parseFor()
	case token.WHILE:
		n = p.parseWhile()
	case token.DO:
		n = p.parseUntil()
	default:
		n = p.parseExpr()
	}
	if n == nil {
		return nil
	}

	switch {
	case p.accept(token.SEMI):
		n.Display = false
	case p.accept(token.COMMA) || p.accept(token.EOL):
		n.Display = true
	default:
		p.errorMissing("end of statement")
	}
	for p.cur() == token.SEMI || p.cur() == token.COMMA || p.cur() == token.EOL {
		p.next()
	}
	return n
}

// stmts : stmt+ ; a run of more than one statement is wrapped in a BLOCK
// node, mirroring the ROW/COLUMN/ROOT "wrap only when needed" pattern
// used throughout the grammar.
func (p *Parser) parseStmts() *ast.Node {
	n := p.parseStmt()
	if n == nil {
		return nil
	}
	next := p.parseStmt()
	for next != nil {
		if n.Kind != ast.BLOCK {
			wrap := p.node(ast.BLOCK, n.Pos)
			wrap.AddChild(n)
			n = wrap
		}
		n.AddChild(next)
		next = p.parseStmt()
	}
	return n
}

// persist : PERSISTENT IDENT (COMMA IDENT)* ;
// global  : GLOBAL IDENT (COMMA IDENT)* ;
func (p *Parser) parsePersistOrGlobal(kind ast.Kind) *ast.Node {
	pos := p.curPos()
	p.next()
	n := p.node(kind, pos)
	if !p.match(token.IDENT) {
		p.errorMissing("identifier(s)")
		return n
	}
	p.identsInto(n)
	return n
}

// try : TRY stmt_end stmts CATCH IDENT? stmt_end stmts END ;
func (p *Parser) parseTry() *ast.Node {
	pos := p.curPos()
	p.next()
	p.expectStmtEnd()

	n := p.node(ast.TRY, pos)
	n.AddChild(p.parseStmts())
	p.expect(token.CATCH)
	n.AddChild(p.bareIdentOrNil())
	p.expectStmtEnd()
	n.AddChild(p.parseStmts())
	p.expect(token.END)
	return n
}

// if : IF expr stmt_end stmts (ELSEIF expr stmt_end stmts)* (ELSE stmt_end stmts)? END ;
//
// Children are laid out as alternating (condition, body) pairs; the
// trailing else body, if present, is preceded by a nil child marking
// "no condition" so the resolver/emitter can tell it apart from a final
// elseif by position alone.
func (p *Parser) parseIf() *ast.Node {
	pos := p.curPos()
	p.next()

	cond := p.parseExpr()
	if cond == nil {
		p.errorMissing("expression")
	}
	p.expectStmtEnd()

	n := p.node(ast.IF, pos)
	n.AddChild(cond)
	n.AddChild(p.parseStmts())

	for p.accept(token.ELSEIF) {
		c := p.parseExpr()
		if c == nil {
			p.errorMissing("expression")
		}
		n.AddChild(c)
		p.expectStmtEnd()
		n.AddChild(p.parseStmts())
	}

	if p.accept(token.ELSE) {
		p.expectStmtEnd()
		n.AddChild(nil)
		n.AddChild(p.parseStmts())
	}

	p.expect(token.END)
	return n
}

// switch : SWITCH expr stmt_end (CASE value stmt_end stmts)* (OTHERWISE stmt_end stmts)? END ;
func (p *Parser) parseSwitch() *ast.Node {
	pos := p.curPos()
	p.next()

	subject := p.parseExpr()
	if subject == nil {
		p.errorMissing("expression")
	}
	p.expectStmtEnd()

	n := p.node(ast.SWITCH, pos)
	n.AddChild(subject)

	for p.accept(token.CASE) {
		val := p.parseValue()
		if val == nil {
			p.errorMissing("case value")
		}
		n.AddChild(val)
		p.expectStmtEnd()
		n.AddChild(p.parseStmts())
	}

	if p.accept(token.OTHERWISE) {
		p.expectStmtEnd()
		n.AddChild(nil)
		n.AddChild(p.parseStmts())
	}

	p.expect(token.END)
	return n
}

// for : FOR IDENT EQ lgor stmt_end stmts END ;
//
// The iterator expression is parsed at lgor (not full expr) precedence:
// assignment can't appear there, matching the original grammar exactly.
func (p *Parser) parseFor() *ast.Node {
	pos := p.curPos()
	p.next()

	n := p.node(ast.FOR, pos)
	if !p.match(token.IDENT) {
		p.errorf(p.curPos(), "expected %s, found %s", token.IDENT.GoString(), p.cur().GoString())
		n.AddChild(nil)
	} else {
		n.AddChild(p.bareIdent())
	}

	p.expect(token.EQ)
	iter := p.parseLgor()
	if iter == nil {
		p.errorMissing("iterator expression")
	}
	n.AddChild(iter)
	p.expectStmtEnd()
	n.AddChild(p.parseStmts())
	p.expect(token.END)
	return n
}

// while : WHILE expr stmt_end stmts END ;
func (p *Parser) parseWhile() *ast.Node {
	pos := p.curPos()
	p.next()

	cond := p.parseExpr()
	if cond == nil {
		p.errorMissing("expression")
	}
	p.expectStmtEnd()

	n := p.node(ast.WHILE, pos)
	n.AddChild(cond)
	n.AddChild(p.parseStmts())
	p.expect(token.END)
	return n
}

// until : DO stmt_end stmts UNTIL expr ;
//
// Note the asymmetry with the other loop forms: there is no closing END,
// the trailing `until expr` clause serves as both condition and
// terminator.
func (p *Parser) parseUntil() *ast.Node {
	pos := p.curPos()
	p.next()
	p.expectStmtEnd()

	n := p.node(ast.DO_UNTIL, pos)
	n.AddChild(p.parseStmts())
	p.expect(token.UNTIL)

	cond := p.parseExpr()
	if cond == nil {
		p.errorMissing("expression")
	}
	n.AddChild(cond)
	return n
}
