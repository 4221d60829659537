package emitter

import (
	"fmt"

	"github.com/geekysuavo/mattec/lang/ast"
	"github.com/geekysuavo/mattec/runtime/except"
)

// writeStatements is the per-statement dispatcher, mirroring the
// original compiler's write_statements: a BLOCK recurses over its
// children; the control-flow kinds manage their own body recursion and
// return early; everything else is an expression-shaped statement
// (ASSIGN, FN_CALL, or a bare display-only expression) that is walked by
// writeExpr and then, if the statement's Display flag is set, echoed.
func (e *Emitter) writeStatements(n *ast.Node) {
	if n == nil {
		return
	}

	switch n.Kind {
	case ast.BLOCK:
		for _, c := range n.Children() {
			e.writeStatements(c)
		}
		return

	case ast.FUNCTION, ast.CLASS:
		// nested declarations are emitted by writeFunctions/writeGlobals,
		// never inline where they're declared.
		return

	case ast.IF:
		e.writeIf(n, 0)
		return
	case ast.SWITCH:
		e.writeSwitch(n)
		return
	case ast.FOR:
		e.writeFor(n)
		return
	case ast.WHILE:
		e.writeWhile(n)
		return
	case ast.DO_UNTIL:
		e.writeUntil(n)
		return
	case ast.TRY:
		e.writeTry(n)
		return

	case ast.BREAK, ast.CONTINUE, ast.RETURN:
		e.writeFlow(n)
		return

	case ast.GLOBAL, ast.PERSISTENT:
		// pure declarations; storage is handled by writeSymbols/writeGlobals.
		return
	}

	if n.Kind == ast.ASSIGN {
		e.writeExpr(n.GetChild(1))
		e.writeAssign(n)
	} else {
		e.writeExpr(n)
	}

	if n.Display {
		e.writeDisplay(n)
	}
}

// writeAssign emits a plain `x = expr` (ASSIGN node whose rhs was not
// retyped into a call by the resolver): a global target is copied into
// the global zone, a local target is bound directly, and a qualified
// target (`a(i) = v`, `s.f = v`) dispatches through the runtime's
// subscript/field-assignment entry points instead.
func (e *Emitter) writeAssign(n *ast.Node) {
	rhs := exprName(n.GetChild(1))
	for _, t := range assignTargets(n.GetChild(0)) {
		if t == nil {
			continue
		}
		e.writeAssignTarget(t, rhs)
	}
}

func (e *Emitter) writeAssignTarget(t *ast.Node, rhs string) {
	quals := qualifierChain(t)
	if len(quals) == 0 {
		name := symName(t)
		if isGlobal(t) {
			e.writef("  %s = object_copy(&_zg, %s);\n", name, rhs)
		} else {
			e.writef("  %s = %s;\n", name, rhs)
		}
		return
	}

	base := symName(t)
	for i, q := range quals {
		last := i == len(quals)-1
		switch q.Kind {
		case ast.FIELD, ast.SUPER_REF:
			if last {
				e.writef("  object_struct_set(&_z1, %s, \"%s\", %s);\n", base, q.Name, rhs)
				return
			}
			e.writef("  %s = object_struct_get(&_z1, %s, \"%s\");\n", symName(q), base, q.Name)
		case ast.CALL_SUBS:
			if last {
				e.writef("  object_subsasgn(&_z1, %s, %s, %s);\n", base, qualifierIndex(q), rhs)
				return
			}
			e.writef("  %s = object_subsref(&_z1, %s, %s);\n", symName(q), base, qualifierIndex(q))
		case ast.CELL_SUBS:
			if last {
				e.writef("  object_cell_set(&_z1, %s, %s, %s);\n", base, qualifierIndex(q), rhs)
				return
			}
			e.writef("  %s = object_cell_get(&_z1, %s, %s);\n", symName(q), base, qualifierIndex(q))
		}
		base = symName(q)
	}
}

// qualifierChain returns t's FIELD/SUPER_REF/CALL_SUBS/CELL_SUBS
// qualifier children in order, or nil for a bare variable target.
func qualifierChain(t *ast.Node) []*ast.Node {
	if t.Kind != ast.IDENT {
		return nil
	}
	var quals []*ast.Node
	for _, q := range t.Children() {
		if q == nil {
			continue
		}
		switch q.Kind {
		case ast.FIELD, ast.SUPER_REF, ast.CALL_SUBS, ast.CELL_SUBS:
			quals = append(quals, q)
		}
	}
	return quals
}

// writeCall emits a resolved FN_CALL node: build the _ai argument packet,
// invoke matte_<name>, check for an exception, then unpack _ao into the
// call's target(s) by position before freeing both packets.
func (e *Emitter) writeCall(n *ast.Node) {
	target := n.GetChild(0)
	callee := n.GetChild(1)
	argin := n.GetChild(2)
	argout := n.GetChild(3)

	args := callArgs(callee)
	for _, a := range args {
		e.writeExpr(a)
	}

	aiName, aoName := symName(argin), symName(argout)
	e.writef("  %s%s = object_list_argin(&_z1, %d", declPrefix(aiName), aiName, len(args))
	for _, a := range args {
		e.writef(", %s", exprName(a))
	}
	e.writef(");\n")

	e.writef("  %s%s = matte_%s(&_z1, %s);\n", declPrefix(aoName), aoName, callee.Name, aiName)
	e.except(aoName, n)

	targets := callTargets(target)
	for i, t := range targets {
		if t == nil {
			continue
		}
		name := symName(t)
		get := fmt.Sprintf("object_list_get((ObjectList) %s, %d)", aoName, i)
		if isGlobal(t) {
			e.writef("  %s = object_copy(&_zg, %s);\n", name, get)
		} else {
			e.writef("  %s%s = %s;\n", declPrefix(name), name, get)
		}
	}

	e.writef("  object_free(&_z1, %s);\n", aiName)
	e.writef("  object_free(&_z1, %s);\n", aoName)
}

// callArgs extracts a callee IDENT's call-subscript arguments (nil for a
// bare call with no parens or empty parens).
func callArgs(callee *ast.Node) []*ast.Node {
	for _, q := range callee.Children() {
		if q == nil || q.Kind != ast.CALL_SUBS {
			continue
		}
		if q.ChildCount() == 0 {
			return nil
		}
		arg := q.GetChild(0)
		if arg == nil {
			return nil
		}
		if arg.Kind == ast.ROW {
			return arg.Children()
		}
		return []*ast.Node{arg}
	}
	return nil
}

// callTargets normalizes a call's result target into the list of
// identifiers it binds: a single TEMP_VAR/IDENT for a single-return
// call, or the identifiers of a `[a, b] = f()` multi-return target.
func callTargets(target *ast.Node) []*ast.Node {
	switch target.Kind {
	case ast.MATRIX_LIT:
		if row := target.GetChild(0); row != nil && row.Kind == ast.ROW {
			return row.Children()
		}
		return nil
	case ast.ROW:
		return target.Children()
	default:
		return []*ast.Node{target}
	}
}

// writeIf emits the (cond, body)* cascade recursively, starting at pair
// index i; a nil condition (the trailing else) ends the recursion with a
// plain `else { ... }` block.
func (e *Emitter) writeIf(n *ast.Node, i int) {
	cond := n.GetChild(i)
	if cond == nil {
		e.writef("  else {\n")
		e.writeStatements(n.GetChild(i + 1))
		e.writef("  }\n")
		return
	}

	e.writeExpr(cond)
	kw := "if"
	if i > 0 {
		kw = "else if"
	}
	e.writef("  %s (object_true(%s)) {\n", kw, exprName(cond))
	e.writeStatements(n.GetChild(i + 1))
	e.writef("  }\n")

	if i+2 < n.ChildCount() {
		e.writeIf(n, i+2)
	}
}

// writeSwitch emits the scrutinee once, then an if/else-if cascade
// comparing it against each case value via object_eq; a nil case (the
// trailing otherwise) becomes the final else.
func (e *Emitter) writeSwitch(n *ast.Node) {
	subject := n.GetChild(0)
	e.writeExpr(subject)
	subjName := exprName(subject)

	first := true
	for i := 1; i+1 < n.ChildCount(); i += 2 {
		val := n.GetChild(i)
		body := n.GetChild(i + 1)
		if val == nil {
			e.writef("  else {\n")
			e.writeStatements(body)
			e.writef("  }\n")
			continue
		}

		e.writeExpr(val)
		kw := "if"
		if !first {
			kw = "else if"
		}
		first = false
		e.writef("  %s (object_true(object_eq(&_z1, %s, %s))) {\n", kw, subjName, exprName(val))
		e.writeStatements(body)
		e.writef("  }\n")
	}
}

// writeFor lowers a `for v = iter ... end` loop onto the runtime's
// iterator protocol: iter_new/iter_next, then object_free on the
// iterator, binding the loop variable on each pass. Each loop sits in its
// own { ... } block so nested loops' _it declarations never collide.
func (e *Emitter) writeFor(n *ast.Node) {
	v := n.GetChild(0)
	iter := n.GetChild(1)
	body := n.GetChild(2)

	e.writeExpr(iter)
	e.writef("  {\n")
	e.writef("  Object _it = (Object) iter_new(&_z1, %s);\n", exprName(iter))
	e.writef("  while (iter_next((ObjectIter) _it)) {\n")
	if v != nil {
		e.writef("    %s = iter_get_value((ObjectIter) _it);\n", symName(v))
	}
	e.writeStatements(body)
	e.writef("  }\n")
	e.writef("  object_free(&_z1, _it);\n")
	e.writef("  }\n")
}

func (e *Emitter) writeWhile(n *ast.Node) {
	cond := n.GetChild(0)
	body := n.GetChild(1)

	e.writef("  while (1) {\n")
	e.writeExpr(cond)
	e.writef("    if (!object_true(%s)) break;\n", exprName(cond))
	e.writeStatements(body)
	e.writef("  }\n")
}

func (e *Emitter) writeUntil(n *ast.Node) {
	body := n.GetChild(0)
	cond := n.GetChild(1)

	e.writef("  do {\n")
	e.writeStatements(body)
	e.writeExpr(cond)
	e.writef("  } while (!object_true(%s));\n", exprName(cond))
}

// nestedInTry reports whether n (a TRY node) lies within the try-body of
// an enclosing TRY, walking n's Parent chain exactly like the original
// compiler's node->up loop testing ast_contains(up->down[0], node): at
// each step up the tree, child names the node the walk just came from, so
// child == up.GetChild(0) means the path from n to up passed through up's
// try-body rather than its catch-variable or catch-body slot.
func nestedInTry(n *ast.Node) bool {
	child := n
	for up := n.Parent; up != nil; up = up.Parent {
		if up.Kind == ast.TRY && child == up.GetChild(0) {
			return true
		}
		child = up
	}
	return false
}

// writeTry emits a try/catch as a two-label scheme: the try body runs
// with e.catching set so every operation's exception check branches to
// the catch label instead of propagating out of the function; a second
// label marks the resumption point after the catch body runs. A try
// nested within another try's own try-body is rejected outright, matching
// the original compiler's write_try: nothing is emitted for the nested
// try (neither its body nor its catch); the enclosing try is emitted.
func (e *Emitter) writeTry(n *ast.Node) {
	if nestedInTry(n) {
		e.errorf(n, "%s: invalid use of 'try' within a try block", except.Compiler)
		return
	}

	tryBody := n.GetChild(0)
	catchVar := n.GetChild(1)
	catchBody := n.GetChild(2)

	label := e.newLabel()
	savedCatching, savedCvar, savedClbl := e.catching, e.cvar, e.clbl

	cvar := "_exc"
	if catchVar != nil {
		cvar = symName(catchVar)
	}
	// A named catch variable is already pre-declared by writeSymbols (it
	// was registered as an ordinary Local); only the anonymous "_exc"
	// fallback, which has no symtab entry at all, needs declaring here.
	if isTempName(cvar) {
		e.writef("  Object %s = NULL;\n", cvar)
	} else {
		e.writef("  %s = NULL;\n", cvar)
	}

	e.catching, e.cvar, e.clbl = true, cvar, label
	e.writeStatements(tryBody)
	e.catching, e.cvar, e.clbl = savedCatching, savedCvar, savedClbl

	e.writef("  goto %s_end;\n", label)
	e.writef("%s:\n", label)
	e.writeStatements(catchBody)
	e.writef("%s_end:;\n", label)
}

// inLoop reports whether n sits within an enclosing FOR/WHILE/DO_UNTIL,
// walking n's Parent chain exactly like the original compiler's node->up
// loop hunting T_FOR/T_WHILE/T_UNTIL.
func inLoop(n *ast.Node) bool {
	for up := n.Parent; up != nil; up = up.Parent {
		if up.Kind.IsLoop() {
			return true
		}
	}
	return false
}

// writeFlow emits break/continue as plain C statements and return as a
// jump to the function's shared wrap epilogue, matching the original
// compiler's goto-based single-exit convention. break/continue used
// outside any enclosing loop is rejected outright -- like write_flow's
// asterr, nothing is emitted for the offending statement.
func (e *Emitter) writeFlow(n *ast.Node) {
	switch n.Kind {
	case ast.BREAK:
		if !inLoop(n) {
			e.errorf(n, "%s: found '%s' outside of a loop", except.Compiler, n.Kind)
			return
		}
		e.writef("  break;\n")
	case ast.CONTINUE:
		if !inLoop(n) {
			e.errorf(n, "%s: found '%s' outside of a loop", except.Compiler, n.Kind)
			return
		}
		e.writef("  continue;\n")
	case ast.RETURN:
		e.writef("  goto wrap;\n")
	}
}

// writeDisplay echoes a statement's value(s) when it lacked a trailing
// semicolon: one line per bound target for an assignment or call
// (labeled with each variable's source name), or a single "ans"-labeled
// line for a bare displayed expression.
func (e *Emitter) writeDisplay(n *ast.Node) {
	if n.Kind == ast.ASSIGN || n.Kind == ast.FN_CALL {
		for _, t := range callTargets(n.GetChild(0)) {
			e.displayOne(t)
		}
		return
	}
	e.displayOne(n)
}

func (e *Emitter) displayOne(target *ast.Node) {
	if target == nil {
		return
	}
	label := "ans"
	if target.Kind == ast.IDENT {
		label = target.Name
	}
	e.writef("  object_display(&_z1, \"%s\", %s);\n", label, exprName(target))
}
