package ast

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/geekysuavo/mattec/lang/token"
)

// Printer controls pretty-printing of a node tree, one line per node
// indented by depth.
type Printer struct {
	Output io.Writer
	Pos    token.PosMode

	// NodeFmt is the Format verb/flags applied to each node; defaults to
	// "%v".
	NodeFmt string
}

// Print walks n and writes one indented line per node to p.Output. file
// is required whenever p.Pos != token.PosNone.
func (p *Printer) Print(n *Node, file *token.File) error {
	if file == nil && p.Pos != token.PosNone {
		return errors.New("file must be provided to print positions")
	}

	pp := &printer{w: p.Output, pos: p.Pos, nodeFmt: p.NodeFmt, file: file}
	if pp.nodeFmt == "" {
		pp.nodeFmt = "%v"
	}

	Walk(pp, n)
	return pp.err
}

type printer struct {
	w       io.Writer
	pos     token.PosMode
	nodeFmt string
	file    *token.File
	depth   int
	err     error
}

func (p *printer) Visit(n *Node, dir VisitDirection) Visitor {
	if dir == VisitExit || p.err != nil {
		p.depth--
		return nil
	}

	p.depth++
	p.printNode(n, p.depth-1)
	return p
}

func (p *printer) printNode(n *Node, indent int) {
	if p.err != nil {
		return
	}

	format := "%s"
	args := []any{strings.Repeat(". ", indent)}
	if p.pos != token.PosNone {
		format += "[%s] "
		args = append(args, token.FormatPos(p.pos, p.file, n.Pos, true))
	}
	format += p.nodeFmt + "\n"
	args = append(args, n)

	_, p.err = fmt.Fprintf(p.w, format, args...)
}
