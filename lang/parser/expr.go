package parser

import (
	"github.com/geekysuavo/mattec/lang/ast"
	"github.com/geekysuavo/mattec/lang/token"
)

// parseExpr is the loosest rule: assignment. `x = e` and the compound
// forms `x op= e` both produce an ASSIGN node; `x op= e` desugars to
// `x = x op e` (the lvalue is cloned rather than shared, so the tree
// never aliases one *Node through two parents).
func (p *Parser) parseExpr() *ast.Node {
	lhs := p.parseLgor()
	if lhs == nil {
		return nil
	}

	switch {
	case p.match(token.EQ):
		pos := p.curPos()
		p.next()
		if !isValidLvalue(lhs) {
			p.errorf(lhs.Pos, "invalid assignment target")
		}
		rhs := p.parseExpr()
		if rhs == nil {
			p.errorMissing("expression")
		}
		n := p.node(ast.ASSIGN, pos)
		n.AddChild(lhs)
		n.AddChild(rhs)
		return n

	case p.cur().IsCompoundAssign():
		op := p.cur().BinOpFor()
		pos := p.curPos()
		p.next()
		if !isValidLvalue(lhs) {
			p.errorf(lhs.Pos, "invalid assignment target")
		}
		rhs := p.parseExpr()
		if rhs == nil {
			p.errorMissing("expression")
		}
		bin := p.node(ast.BINOP, pos)
		bin.Op = op
		bin.AddChild(lhs.Clone())
		bin.AddChild(rhs)
		n := p.node(ast.ASSIGN, pos)
		n.AddChild(lhs)
		n.AddChild(bin)
		return n

	default:
		return lhs
	}
}

func (p *Parser) parseLgor() *ast.Node {
	n := p.parseLgand()
	for p.match(token.PIPEPIPE) {
		n = p.parseBinop(n, p.parseLgand)
	}
	return n
}

func (p *Parser) parseLgand() *ast.Node {
	n := p.parseEwor()
	for p.match(token.AMPAMP) {
		n = p.parseBinop(n, p.parseEwor)
	}
	return n
}

func (p *Parser) parseEwor() *ast.Node {
	n := p.parseEwand()
	for p.match(token.PIPE) {
		n = p.parseBinop(n, p.parseEwand)
	}
	return n
}

func (p *Parser) parseEwand() *ast.Node {
	n := p.parseReln()
	for p.match(token.AMP) {
		n = p.parseBinop(n, p.parseReln)
	}
	return n
}

func (p *Parser) parseReln() *ast.Node {
	n := p.parseRange()
	for isRelOp(p.cur()) {
		n = p.parseBinop(n, p.parseRange)
	}
	return n
}

func isRelOp(tok token.Token) bool {
	switch tok {
	case token.LT, token.GT, token.LE, token.GE, token.EQEQ, token.NEQ:
		return true
	}
	return false
}

// parseRange handles a:b and a:b:c range expressions, always producing a
// 3-child COLON node: a 2-operand range synthesizes a literal step of 1
// as the middle operand, and anything other than 2 or 3 operands is a
// parse error (the colon chain keeps consuming add-level operands for as
// long as further colons appear, so the error is reported rather than
// silently truncated).
func (p *Parser) parseRange() *ast.Node {
	n := p.parseAdd()
	if n == nil || !p.match(token.COLON) {
		return n
	}
	pos := p.curPos()
	p.next()

	operands := []*ast.Node{n, p.parseAdd()}
	for p.accept(token.COLON) {
		operands = append(operands, p.parseAdd())
	}

	switch len(operands) {
	case 2:
		step := p.node(ast.INT_LIT, pos)
		step.IntVal = 1
		operands = []*ast.Node{operands[0], step, operands[1]}
	case 3:
		// already in (start, step, stop) order
	default:
		p.errorf(pos, "range expression requires exactly 2 or 3 operands")
	}

	w := p.node(ast.COLON, pos)
	for _, o := range operands {
		w.AddChild(o)
	}
	return w
}

func (p *Parser) parseAdd() *ast.Node {
	n := p.parseMult()
	for p.match(token.PLUS) || p.match(token.MINUS) {
		n = p.parseBinop(n, p.parseMult)
	}
	return n
}

func (p *Parser) parseMult() *ast.Node {
	n := p.parsePostfix()
	for isMultOp(p.cur()) {
		n = p.parseBinop(n, p.parsePostfix)
	}
	return n
}

func isMultOp(tok token.Token) bool {
	switch tok {
	case token.STAR, token.SLASH, token.BACKSLASH,
		token.DOTSTAR, token.DOTSLASH, token.DOTBACKSL:
		return true
	}
	return false
}

// parseBinop consumes the current (binary-operator) token, parses a
// right operand with rhs, and wraps lhs/rhs in a BINOP node. Shared by
// every left-associative binary precedence level.
func (p *Parser) parseBinop(lhs *ast.Node, rhs func() *ast.Node) *ast.Node {
	op := p.cur()
	pos := p.curPos()
	p.next()
	r := rhs()
	if r == nil {
		p.errorMissing("expression")
	}
	n := p.node(ast.BINOP, pos)
	n.Op = op
	n.AddChild(lhs)
	n.AddChild(r)
	return n
}

// postfix : unary (PLUSPLUS|MINUSMINUS)* ;
func (p *Parser) parsePostfix() *ast.Node {
	n := p.parseUnary()
	if n == nil {
		return nil
	}
	for p.match(token.PLUSPLUS) || p.match(token.MINUSMINUS) {
		op := p.cur()
		pos := p.curPos()
		p.next()
		w := p.node(ast.POSTOP, pos)
		w.Op = op
		w.AddChild(n)
		n = w
	}
	return n
}

// unary : (PLUS|MINUS|BANG) power | power ;
func (p *Parser) parseUnary() *ast.Node {
	if p.match(token.PLUS) || p.match(token.MINUS) || p.match(token.BANG) {
		op := p.cur()
		pos := p.curPos()
		p.next()
		operand := p.parsePower()
		if operand == nil {
			p.errorMissing("expression")
		}
		n := p.node(ast.UNOP, pos)
		n.Op = op
		n.AddChild(operand)
		return n
	}
	return p.parsePower()
}

// power : prefix (HTR | DOTQUOTE | (CARET|DOTCARET) prefix)* ;
//
// A trailing HTR/DOTQUOTE wraps the accumulated expression in a
// TRANSPOSE/ELEM_TRANSPOSE node with no further operand; CARET/DOTCARET
// instead recurse into a single prefix-level exponent and loop, so
// `a^b^c` associates as `(a^b)^c`.
func (p *Parser) parsePower() *ast.Node {
	n := p.parsePrefix()
	if n == nil {
		return nil
	}
	for {
		switch p.cur() {
		case token.HTR:
			pos := p.curPos()
			p.next()
			w := p.node(ast.TRANSPOSE, pos)
			w.AddChild(n)
			n = w
		case token.DOTQUOTE:
			pos := p.curPos()
			p.next()
			w := p.node(ast.ELEM_TRANSPOSE, pos)
			w.AddChild(n)
			n = w
		case token.CARET, token.DOTCARET:
			op := p.cur()
			pos := p.curPos()
			p.next()
			rhs := p.parsePrefix()
			if rhs == nil {
				p.errorMissing("expression")
			}
			w := p.node(ast.BINOP, pos)
			w.Op = op
			w.AddChild(n)
			w.AddChild(rhs)
			n = w
		default:
			return n
		}
	}
}

// prefix : (PLUSPLUS|MINUSMINUS) name | value ;
func (p *Parser) parsePrefix() *ast.Node {
	if p.match(token.PLUSPLUS) || p.match(token.MINUSMINUS) {
		op := p.cur()
		pos := p.curPos()
		p.next()
		if !p.match(token.IDENT) {
			p.errorMissing("identifier")
		}
		name := p.parseName()
		n := p.node(ast.PREOP, pos)
		n.Op = op
		n.AddChild(name)
		return n
	}
	return p.parseValue()
}
