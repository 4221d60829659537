package emitter

import (
	"strconv"

	"github.com/geekysuavo/mattec/lang/ast"
	"github.com/geekysuavo/mattec/lang/symtab"
)

// writeSymbols emits one function (or the synthesized main)'s local
// declarations, in table order: argin parameters bound by position out
// of the argin packet, then argout/local/persistent variables
// initialized to NULL (persistent ones with static storage, so they
// retain their value across calls), then literal constants constructed
// with their actual value. Other compiler-reserved names (_ai, _ao, _it,
// _tN, ...) are never pre-declared here -- they get an inline "Object "
// declaration at their first assignment instead (see declPrefix).
func (e *Emitter) writeSymbols(tbl *symtab.Table) {
	arginPos := 0
	for _, sym := range tbl.Symbols() {
		if isTempName(sym.Name) && sym.Kind != symtab.Literal {
			continue
		}
		switch sym.Kind {
		case symtab.ArgIn:
			e.writef("  Object %s = object_list_get((ObjectList) argin, %d);\n", sym.Name, arginPos)
			arginPos++
		case symtab.ArgOut, symtab.Local:
			e.writef("  Object %s = NULL;\n", sym.Name)
		case symtab.Persistent:
			e.writef("  static Object %s = NULL;\n", sym.Name)
		case symtab.Literal:
			e.writeLiteralDecl(sym, "&_z1")
		}
	}
}

func (e *Emitter) writeLiteralDecl(sym *symtab.Symbol, zone string) {
	switch sym.LitType {
	case symtab.IntLiteral:
		e.writef("  Object %s = int_new_with_value(%s, %d);\n", sym.Name, zone, sym.IntVal)
	case symtab.FloatLiteral:
		e.writef("  Object %s = float_new_with_value(%s, %s);\n",
			sym.Name, zone, strconv.FormatFloat(sym.FltVal, 'g', -1, 64))
	case symtab.ComplexLiteral:
		e.writef("  Object %s = complex_new_with_value(%s, %s, %s);\n", sym.Name, zone,
			strconv.FormatFloat(sym.FltVal, 'g', -1, 64),
			strconv.FormatFloat(sym.ImgVal, 'g', -1, 64))
	case symtab.StringLiteral:
		e.writef("  Object %s = string_new_with_value(%s, %s);\n", sym.Name, zone, strconv.Quote(sym.StrVal))
	}
}

// argoutSymbols returns a FUNCTION's ArgOut-kind symbols in declared
// order, which doubles as their positional index in the output packet --
// exactly like ArgIn's positions, since argout follows argin with
// nothing registered between them in initSymbols' FUNCTION case.
func argoutSymbols(tbl *symtab.Table) []*symtab.Symbol {
	var outs []*symtab.Symbol
	for _, sym := range tbl.Symbols() {
		if sym.Kind == symtab.ArgOut {
			outs = append(outs, sym)
		}
	}
	return outs
}

// writeGlobals emits the file-scope declarations every function body
// may reference: a forward declaration for each top-level function, the
// persistent global zone and its lazy-init flag, one static storage slot
// per `global`-declared variable, and an initialize() that zone-inits
// the global arena exactly once no matter how many times it's called.
// Root-scope literal constants are not declared here: only matte_main's
// own statements ever reference them (every other function registers
// its literals into its own table), so writeSymbols constructs them
// locally, against matte_main's own zone, like any function's literals.
func (e *Emitter) writeGlobals(tree *ast.Node) {
	for _, c := range tree.Children() {
		if c.Kind == ast.FUNCTION && c.Name != "" {
			e.writef("Object matte_%s(Zone, Object);\n", c.Name)
		}
	}
	e.writef("\nstatic ZoneData _zg;\nstatic int _zg_init = 0;\n\n")

	for _, sym := range tree.Table.Symbols() {
		if sym.Kind == symtab.Global {
			e.writef("static Object %s = NULL;\n", sym.Name)
		}
	}
	e.writef("\n")

	e.writef("static void initialize(void) {\n")
	e.writef("  if (_zg_init) return;\n")
	e.writef("  zone_init(&_zg, NULL);\n")
	e.writef("  _zg_init = 1;\n")
	e.writef("}\n\n")
}

// writeFunctions emits every top-level FUNCTION as a matte_<name> entry
// point: a fresh zone, its symbol declarations, its statement body, and
// a shared `wrap:` epilogue that packages the argout list (zero, one, or
// several values) before freeing the zone and returning. An exception
// already stored in argout by a propagating check is returned as is.
func (e *Emitter) writeFunctions(tree *ast.Node) {
	for _, c := range tree.Children() {
		if c.Kind != ast.FUNCTION {
			continue
		}
		e.resetFunc()
		e.writef("Object matte_%s(Zone _z0, Object argin) {\n", c.Name)
		e.writef("  ZoneData _z1;\n  zone_init(&_z1, _z0);\n  Object argout = NULL;\n")
		e.writeSymbols(c.Table)
		e.writeStatements(c.GetChild(3))
		e.writef("wrap:\n")
		e.writeArgout(c.Table)
		e.writef("  object_free_all(&_z1);\n")
		e.writef("  return argout;\n")
		e.writef("}\n\n")
	}
}

func (e *Emitter) writeArgout(tbl *symtab.Table) {
	outs := argoutSymbols(tbl)
	switch len(outs) {
	case 0:
	case 1:
		e.writef("  if (argout == NULL) argout = %s;\n", outs[0].Name)
	default:
		e.writef("  if (argout == NULL) argout = object_list_argout(&_z1, %d", len(outs))
		for _, s := range outs {
			e.writef(", %s", s.Name)
		}
		e.writef(");\n")
	}
}

// writeMain emits the implicit top-level script as matte_main: every
// statement outside a function or classdef, run against its own zone
// exactly like any other function body (`global` variables still flow
// through the shared _zg zone via writeAssign's isGlobal check). It
// emits no C `main`; Emit appends one after it (writeEntryPoint) only
// for Mode ToExe.
func (e *Emitter) writeMain(tree *ast.Node) {
	e.resetFunc()
	e.writef("Object matte_main(void) {\n")
	e.writef("  ZoneData _z1;\n  zone_init(&_z1, NULL);\n  Object argout = NULL;\n")
	e.writef("  initialize();\n")
	e.writeSymbols(tree.Table)
	for _, c := range tree.Children() {
		if c.Kind == ast.FUNCTION || c.Kind == ast.CLASS {
			continue
		}
		e.writeStatements(c)
	}
	e.writef("wrap:\n")
	e.writef("  object_free_all(&_z1);\n")
	e.writef("  return argout;\n")
	e.writef("}\n\n")
}

// writeEntryPoint appends the standalone `int main()` wrapper: it
// invokes matte_main, reports an uncaught exception via object_disp, and
// maps the result to a process exit status. Emit only calls this for
// Mode ToExe. internal/driver passes ToExe for its to-mem mode as well,
// since it builds and runs the unit as a temporary executable; a ToC
// or ToMem unit passed to Emit gets no main.
func (e *Emitter) writeEntryPoint() {
	e.writef("int main(void) {\n")
	e.writef("  Object result = matte_main();\n")
	e.writef("  if (IS_EXCEPTION(result)) {\n")
	e.writef("    object_disp(result);\n")
	e.writef("    return 1;\n")
	e.writef("  }\n")
	e.writef("  return 0;\n")
	e.writef("}\n")
}
