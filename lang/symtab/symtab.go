// Package symtab implements the symbol table used by the semantic passes
// and code emitter: a canonical, insertion-ordered list of symbols plus an
// optional hash-map accelerator for fast name lookup. The accelerator is
// never the source of truth for ordering or iteration — only the ordered
// slice is, since the emitter's declaration order (and therefore the
// generated C text) must be fully deterministic across identical runs.
package symtab

import (
	"fmt"
	"math"

	"github.com/dolthub/swiss"
)

// Kind classifies what role a Symbol plays in its owning scope.
type Kind int

const (
	Undefined Kind = iota
	Global        // declared via `global` or residing directly in the root table
	Local         // ordinary function-local variable
	Persistent    // declared via `persistent`, function-local but retains value across calls
	ArgIn         // function input parameter
	ArgOut        // function output parameter
	GlobalFunc    // a top-level function name, registered in the root table
	Class         // a classdef name
	Literal       // a deduplicated int/float/complex/string literal
	Temp          // a compiler-synthesized temporary (`_t<N>`)
	Builtin       // a compiler-provided built-in (e.g. `end`)
)

func (k Kind) String() string {
	switch k {
	case Global:
		return "global"
	case Local:
		return "local"
	case Persistent:
		return "persistent"
	case ArgIn:
		return "argin"
	case ArgOut:
		return "argout"
	case GlobalFunc:
		return "global-func"
	case Class:
		return "class"
	case Literal:
		return "literal"
	case Temp:
		return "temp"
	case Builtin:
		return "builtin"
	default:
		return "undefined"
	}
}

// LiteralType distinguishes the payload type of a Literal symbol; it is
// meaningless for any other Kind.
type LiteralType int

const (
	NoLiteral LiteralType = iota
	IntLiteral
	FloatLiteral
	ComplexLiteral
	StringLiteral
)

// Symbol is one entry in a Table: a declared or synthesized name together
// with the information the emitter needs to declare and initialize it.
type Symbol struct {
	Name string
	Kind Kind

	// Index is this symbol's position within its owning Table's ordered
	// list (0-based); it doubles as the argument-packet position for
	// ArgIn symbols. ArgOut symbols are registered after the ArgIn ones,
	// so their packet position is their order among the ArgOut symbols.
	Index int

	LitType LiteralType
	IntVal  int64
	FltVal  float64 // also the real part of a ComplexLiteral
	ImgVal  float64 // imaginary part, only meaningful for ComplexLiteral
	StrVal  string
}

// literalKey returns the string that uniquely identifies a literal's
// value for dedup purposes. Float/complex literals are keyed on their
// exact bit patterns — see DESIGN.md's Open Question decision — never on
// an approximate or rounded form, so that two literals that printed
// identically after rounding cannot be accidentally merged.
func literalKey(lt LiteralType, i int64, f, im float64, s string) string {
	switch lt {
	case IntLiteral:
		return fmt.Sprintf("i:%d", i)
	case FloatLiteral:
		return fmt.Sprintf("f:%x", math.Float64bits(f))
	case ComplexLiteral:
		return fmt.Sprintf("c:%x:%x", math.Float64bits(f), math.Float64bits(im))
	case StringLiteral:
		return "s:" + s
	default:
		return ""
	}
}

// Table is one lexical scope's symbol table: the root (global) table, a
// class table, or a function's local table. Lookups for names not found
// here must be resolved by walking to an enclosing Table (see
// lang/ast.Node.GetSymbols), which Table itself knows nothing about.
type Table struct {
	Parent *Table

	syms  []*Symbol // canonical order: insertion order
	byKey map[string]*Symbol
	accel *swiss.Map[string, *Symbol] // name -> symbol accelerator, never authoritative

	tempSeq int
}

// New creates an empty table, optionally nested under parent (nil for the
// root table).
func New(parent *Table) *Table {
	return &Table{
		Parent: parent,
		byKey:  make(map[string]*Symbol),
		accel:  swiss.NewMap[string, *Symbol](16),
	}
}

// Symbols returns the table's canonical ordered symbol list. Callers must
// not mutate the returned slice.
func (t *Table) Symbols() []*Symbol { return t.syms }

// Lookup finds a symbol by name in this table only (no upward search);
// it consults the accelerator first and falls back to the canonical
// slice, which is therefore always correct even if the accelerator were
// to ever fall out of sync.
func (t *Table) Lookup(name string) (*Symbol, bool) {
	if sym, ok := t.accel.Get(name); ok {
		return sym, true
	}
	for _, s := range t.syms {
		if s.Name == name {
			t.accel.Put(name, s)
			return s, true
		}
	}
	return nil, false
}

func (t *Table) insert(sym *Symbol) *Symbol {
	sym.Index = len(t.syms)
	t.syms = append(t.syms, sym)
	t.accel.Put(sym.Name, sym)
	return sym
}

// Declare registers a new named symbol of the given kind. If a symbol of
// the same name already exists in this table, the existing symbol is
// returned unchanged (redeclaration is idempotent within one scope).
func (t *Table) Declare(name string, kind Kind) *Symbol {
	if sym, ok := t.Lookup(name); ok {
		return sym
	}
	return t.insert(&Symbol{Name: name, Kind: kind})
}

// DeclareLiteral registers (or finds, via value-sensitive dedup) a
// literal symbol. Two literal declarations of the same type and exact
// value always resolve to the same Symbol.
func (t *Table) DeclareLiteral(lt LiteralType, i int64, f, im float64, s string) *Symbol {
	key := "lit:" + literalKey(lt, i, f, im, s)
	if sym, ok := t.byKey[key]; ok {
		return sym
	}
	sym := t.insert(&Symbol{
		Name: fmt.Sprintf("_l%d", len(t.syms)), Kind: Literal,
		LitType: lt, IntVal: i, FltVal: f, ImgVal: im, StrVal: s,
	})
	t.byKey[key] = sym
	return sym
}

// NewTemp synthesizes a fresh, monotonically-named temporary (`_t0`,
// `_t1`, ...) in this table.
func (t *Table) NewTemp() *Symbol {
	name := fmt.Sprintf("_t%d", t.tempSeq)
	t.tempSeq++
	return t.insert(&Symbol{Name: name, Kind: Temp})
}

// Root walks up through Parent links and returns the outermost table.
func (t *Table) Root() *Table {
	cur := t
	for cur.Parent != nil {
		cur = cur.Parent
	}
	return cur
}
