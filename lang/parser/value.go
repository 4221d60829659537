package parser

import (
	"github.com/geekysuavo/mattec/lang/ast"
	"github.com/geekysuavo/mattec/lang/token"
)

// value : name
//
//	| LBRACK column RBRACK    (matrix literal)
//	| LBRACE column RBRACE    (cell literal)
//	| AT anon_func
//	| INT | FLOAT | STRING
//	| LPAREN expr RPAREN
//	| END                     (only inside a subscript)
//	| COLON                   (only inside a subscript, meaning "all")
func (p *Parser) parseValue() *ast.Node {
	pos := p.curPos()
	switch p.cur() {
	case token.IDENT:
		return p.parseName()

	case token.LBRACK:
		p.next()
		prev := p.pushEndValid(true)
		col := p.parseColumn()
		p.popEndValid(prev)
		p.expect(token.RBRACK)
		n := p.node(ast.MATRIX_LIT, pos)
		if col != nil {
			n.AddChild(col)
		}
		return n

	case token.LBRACE:
		p.next()
		prev := p.pushEndValid(true)
		col := p.parseColumn()
		p.popEndValid(prev)
		p.expect(token.RBRACE)
		n := p.node(ast.CELL_LIT, pos)
		if col != nil {
			n.AddChild(col)
		}
		return n

	case token.AT:
		return p.parseAnonFunc()

	case token.INT:
		v := p.curVal()
		p.next()
		n := p.node(ast.INT_LIT, pos)
		n.IntVal = v.Int
		return n

	case token.FLOAT:
		v := p.curVal()
		p.next()
		if v.Complex {
			n := p.node(ast.COMPLEX_LIT, pos)
			n.ImagVal = v.Float
			return n
		}
		n := p.node(ast.FLOAT_LIT, pos)
		n.FloatVal = v.Float
		return n

	case token.STRING:
		v := p.curVal()
		p.next()
		n := p.node(ast.STRING_LIT, pos)
		n.StrVal = v.String
		n.IsString = true
		return n

	case token.LPAREN:
		p.next()
		e := p.parseExpr()
		if e == nil {
			p.errorMissing("expression")
		}
		p.expect(token.RPAREN)
		return e

	case token.END:
		if !p.endValid {
			// Outside a subscript, END closes the enclosing block; leave
			// it for the block's parser, like ELSE or CATCH.
			return nil
		}
		p.next()
		return p.node(ast.END_VAL, pos)

	case token.COLON:
		if !p.endValid {
			p.errorf(pos, "':' is only valid inside a subscript")
		}
		p.next()
		return p.node(ast.COLON_ALL, pos)

	default:
		return nil
	}
}

// anon_func : AT LPAREN args RPAREN expr   (literal anonymous function)
//
//	| AT IDENT                      (function handle reference)
//
// child[0] distinguishes the two forms: always a non-nil IDS (possibly
// childless) for the literal form, always nil for the handle form. This
// matters downstream: resolving a handle's target identifier must never
// synthesize a call around it, while a literal body that happens to be a
// bare identifier resolves (and may be wrapped in a call) normally.
func (p *Parser) parseAnonFunc() *ast.Node {
	pos := p.curPos()
	p.next() // AT

	n := p.node(ast.ANON_FUNC, pos)
	if p.accept(token.LPAREN) {
		args := p.node(ast.IDS, p.curPos())
		if p.match(token.IDENT) {
			p.identsInto(args)
		}
		n.AddChild(args)
		p.expect(token.RPAREN)
		body := p.parseExpr()
		if body == nil {
			p.errorMissing("expression")
		}
		n.AddChild(body)
		return n
	}

	n.AddChild(nil) // no parameter list: a handle, not a literal
	if !p.match(token.IDENT) {
		p.errorMissing("function name")
		return n
	}
	n.AddChild(p.bareIdent())
	return n
}

// name : IDENT qualifier* ;
// qualifier : AT IDENT | DOT IDENT | LPAREN row RPAREN | LBRACE row RBRACE ;
//
// Qualifiers accumulate as ordered children of the IDENT node (a flat
// list) rather than the original grammar's right-recursive chain; the two
// shapes carry the same information; GetChild/ChildCount don't care which
// one produced it.
func (p *Parser) parseName() *ast.Node {
	if !p.match(token.IDENT) {
		return nil
	}
	n := p.bareIdent()

	for {
		switch {
		case p.match(token.AT):
			pos := p.curPos()
			p.next()
			q := p.node(ast.SUPER_REF, pos)
			if !p.match(token.IDENT) {
				p.errorMissing("identifier")
				n.AddChild(q)
				continue
			}
			q.Name = p.curVal().Raw
			p.next()
			n.AddChild(q)

		case p.match(token.DOT):
			pos := p.curPos()
			p.next()
			q := p.node(ast.FIELD, pos)
			if !p.match(token.IDENT) {
				p.errorMissing("identifier")
				n.AddChild(q)
				continue
			}
			q.Name = p.curVal().Raw
			p.next()
			n.AddChild(q)

		case p.match(token.LPAREN):
			pos := p.curPos()
			p.next()
			q := p.node(ast.CALL_SUBS, pos)
			prev := p.pushEndValid(true)
			row := p.parseRow()
			p.popEndValid(prev)
			if row != nil {
				q.AddChild(row)
			}
			p.expect(token.RPAREN)
			n.AddChild(q)

		case p.match(token.LBRACE):
			pos := p.curPos()
			p.next()
			q := p.node(ast.CELL_SUBS, pos)
			prev := p.pushEndValid(true)
			row := p.parseRow()
			p.popEndValid(prev)
			if row != nil {
				q.AddChild(row)
			}
			p.expect(token.RBRACE)
			n.AddChild(q)

		default:
			return n
		}
	}
}

// row : expr (COMMA expr)* ;
//
// Always wraps in a ROW node, even for a single expression; the
// resolver's concat-simplification pass collapses a ROW with exactly one
// child back down to that child.
func (p *Parser) parseRow() *ast.Node {
	first := p.parseExpr()
	if first == nil {
		return nil
	}
	row := p.node(ast.ROW, first.Pos)
	row.AddChild(first)
	for p.accept(token.COMMA) {
		p.skipEOL()
		e := p.parseExpr()
		if e == nil {
			p.errorMissing("expression")
			break
		}
		row.AddChild(e)
	}
	return row
}

// column : row (SEMI row)* ;
//
// As with row, always wraps in a COLUMN node; trivial (single-row)
// columns are collapsed later by the resolver.
func (p *Parser) parseColumn() *ast.Node {
	first := p.parseRow()
	if first == nil {
		return nil
	}
	col := p.node(ast.COLUMN, first.Pos)
	col.AddChild(first)
	for p.accept(token.SEMI) {
		p.skipEOL()
		r := p.parseRow()
		if r == nil {
			break
		}
		col.AddChild(r)
	}
	return col
}

// args : IDENT (COMMA IDENT)* ;
//
// Unlike row, args never admits qualifiers or general expressions: only
// plain identifiers, wrapped in an IDS node. Used by function
// declarations; anonymous-function parameter lists call identsInto
// directly, and class inheritance lists are parsed by their own loop.
func (p *Parser) parseArgs() *ast.Node {
	if !p.match(token.IDENT) {
		return nil
	}
	n := p.node(ast.IDS, p.curPos())
	p.identsInto(n)
	return n
}

// identsInto appends a comma-separated run of plain identifiers as
// children of n, starting from the current token (which must already be
// known to be IDENT). Reports an error and stops at the first non-IDENT
// following a comma.
func (p *Parser) identsInto(n *ast.Node) {
	n.AddChild(p.bareIdent())
	for p.accept(token.COMMA) {
		if !p.match(token.IDENT) {
			p.errorf(p.curPos(), "expected %s, found %s", token.IDENT.GoString(), p.cur().GoString())
			return
		}
		n.AddChild(p.bareIdent())
	}
}
