package parser

import (
	"github.com/geekysuavo/mattec/lang/ast"
	"github.com/geekysuavo/mattec/lang/token"
)

// function : FUNCTION function_core argin stmt_end stmts END ;
//
// function_core
//
//	: IDENT (EQ IDENT)?             -- no-return, or single-return `out = name`
//	| LBRACK args RBRACK EQ IDENT   -- multi-return `[out1, out2] = name`
//	;
//
// argin : (LPAREN args RPAREN)? ;
//
// Children are laid out [argout-or-nil, name, argin-or-nil, body].
func (p *Parser) parseFunction() *ast.Node {
	pos := p.curPos()
	p.next()

	n := p.node(ast.FUNCTION, pos)
	var name string

	switch {
	case p.match(token.IDENT):
		first := p.bareIdent()
		if p.accept(token.EQ) {
			if !p.match(token.IDENT) {
				p.errorMissing("function name")
			}
			fnName := p.bareIdentOrNil()
			argout := p.node(ast.IDS, first.Pos)
			argout.AddChild(first)
			n.AddChild(argout)
			n.AddChild(fnName)
			if fnName != nil {
				name = fnName.Name
			}
		} else {
			n.AddChild(nil)
			n.AddChild(first)
			name = first.Name
		}

	case p.accept(token.LBRACK):
		argout := p.parseArgs()
		n.AddChild(argout)
		p.expect(token.RBRACK)
		p.expect(token.EQ)
		if !p.match(token.IDENT) {
			p.errorMissing("function name")
		}
		fnName := p.bareIdentOrNil()
		n.AddChild(fnName)
		if fnName != nil {
			name = fnName.Name
		}

	default:
		p.errorf(pos, "expected function declaration")
		n.AddChild(nil)
		n.AddChild(nil)
	}

	n.Name = name
	restoreFunc := p.pushFunc(name)
	defer restoreFunc()

	if p.accept(token.LPAREN) {
		n.AddChild(p.parseArgs())
		p.expect(token.RPAREN)
	} else {
		n.AddChild(nil)
	}

	p.expectStmtEnd()
	n.AddChild(p.parseStmts())
	p.expect(token.END)
	return n
}

// class : CLASSDEF IDENT inherits? stmt_end (properties|methods|events|enumeration)* END ;
//
// The four inner block kinds may appear in any order but at most once
// each; a repeat is reported as an error but parsing continues so the
// rest of the class body is still checked.
func (p *Parser) parseClass() *ast.Node {
	pos := p.curPos()
	p.next()

	if !p.match(token.IDENT) {
		p.errorMissing("class name")
	}
	name := p.bareIdentOrNil()

	n := p.node(ast.CLASS, pos)
	if name != nil {
		n.Name = name.Name
	}
	n.AddChild(p.parseInherits())
	p.expectStmtEnd()

	var haveProps, haveMethods, haveEvents, haveEnum bool
classBody:
	for {
		p.skipEOL()
		switch p.cur() {
		case token.PROPERTIES:
			if haveProps {
				p.errorf(p.curPos(), "duplicate properties block")
			}
			n.AddChild(p.parseProperties())
			haveProps = true
		case token.METHODS:
			if haveMethods {
				p.errorf(p.curPos(), "duplicate methods block")
			}
			n.AddChild(p.parseMethods())
			haveMethods = true
		case token.EVENTS:
			if haveEvents {
				p.errorf(p.curPos(), "duplicate events block")
			}
			n.AddChild(p.parseEvents())
			haveEvents = true
		case token.ENUMERATION:
			if haveEnum {
				p.errorf(p.curPos(), "duplicate enumeration block")
			}
			n.AddChild(p.parseEnumeration())
			haveEnum = true
		default:
			break classBody
		}
	}

	p.expect(token.END)
	return n
}

// inherits : (LT IDENT (AMP IDENT)*)? ;
func (p *Parser) parseInherits() *ast.Node {
	if !p.accept(token.LT) {
		return nil
	}
	n := p.node(ast.IDS, p.curPos())
	if !p.match(token.IDENT) {
		p.errorf(p.curPos(), "expected %s, found %s", token.IDENT.GoString(), p.cur().GoString())
		return n
	}
	n.AddChild(p.bareIdent())
	for p.accept(token.AMP) {
		if !p.match(token.IDENT) {
			p.errorf(p.curPos(), "expected %s, found %s", token.IDENT.GoString(), p.cur().GoString())
			break
		}
		n.AddChild(p.bareIdent())
	}
	return n
}

// properties : PROPERTIES stmt_end (IDENT (EQ value)? stmt_end)* END ;
func (p *Parser) parseProperties() *ast.Node {
	pos := p.curPos()
	p.next()
	p.expectStmtEnd()

	n := p.node(ast.PROPERTIES, pos)
	for p.match(token.IDENT) {
		n.AddChild(p.bareIdent())
		if p.accept(token.EQ) {
			val := p.parseValue()
			if val == nil {
				p.errorMissing("property value")
			}
			n.AddChild(val)
		} else {
			n.AddChild(nil)
		}
		p.expectStmtEnd()
	}
	p.expect(token.END)
	return n
}

// methods : METHODS stmt_end function* END ;
func (p *Parser) parseMethods() *ast.Node {
	pos := p.curPos()
	p.next()
	p.expectStmtEnd()

	n := p.node(ast.METHODS, pos)
	for {
		p.skipEOL()
		if p.cur() != token.FUNCTION {
			break
		}
		n.AddChild(p.parseFunction())
	}
	p.expect(token.END)
	return n
}

// events : EVENTS stmt_end (IDENT stmt_end)* END ;
func (p *Parser) parseEvents() *ast.Node {
	pos := p.curPos()
	p.next()
	p.expectStmtEnd()

	n := p.node(ast.EVENTS, pos)
	for p.match(token.IDENT) {
		n.AddChild(p.bareIdent())
		p.expectStmtEnd()
	}
	p.expect(token.END)
	return n
}

// enumeration : ENUMERATION stmt_end (IDENT (LPAREN value RPAREN)? stmt_end)* END ;
func (p *Parser) parseEnumeration() *ast.Node {
	pos := p.curPos()
	p.next()
	p.expectStmtEnd()

	n := p.node(ast.ENUMERATION, pos)
	for p.match(token.IDENT) {
		n.AddChild(p.bareIdent())
		if p.accept(token.LPAREN) {
			val := p.parseValue()
			if val == nil {
				p.errorMissing("enumeration value")
			}
			n.AddChild(val)
			p.expect(token.RPAREN)
		} else {
			n.AddChild(nil)
		}
		p.expectStmtEnd()
	}
	p.expect(token.END)
	return n
}

// block : class | function | stmt ;
func (p *Parser) parseBlock() *ast.Node {
	p.skipEOL()
	switch p.cur() {
	case token.CLASSDEF:
		return p.parseClass()
	case token.FUNCTION:
		return p.parseFunction()
	case token.EOF:
		return nil
	default:
		return p.parseStmt()
	}
}

// blocks : block+ ; a run of more than one top-level block is wrapped in
// a ROOT node (the sole child case is left unwrapped and normalized to
// ROOT by the Parse entry point instead).
func (p *Parser) parseBlocks() *ast.Node {
	n := p.parseBlock()
	if n == nil {
		return nil
	}
	next := p.parseBlock()
	for next != nil {
		if n.Kind != ast.ROOT {
			wrap := p.node(ast.ROOT, n.Pos)
			wrap.AddChild(n)
			n = wrap
		}
		n.AddChild(next)
		next = p.parseBlock()
	}
	return n
}
