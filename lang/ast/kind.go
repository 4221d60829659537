package ast

// Kind tags every AST node with its grammatical role. Unlike the teacher's
// tagged-interface AST (one Go type per production), matte's node model
// follows the original compiler's design: a single Node type carries a
// Kind discriminator plus a children array, so that generic tree
// operations (add/get child, rip, slip, merge) work uniformly across the
// whole grammar instead of needing a type switch per operation.
type Kind int

const (
	Invalid Kind = iota

	// Structural / top-level.
	ROOT     // the whole compilation unit (owns the global symbol table)
	CLASS    // classdef ... end (owns a symbol table)
	FUNCTION // function ... end (owns a symbol table)
	BLOCK    // a linear statement list (wraps any body of two or more statements)

	PROPERTIES
	METHODS
	EVENTS
	ENUMERATION

	// Statements.
	ASSIGN   // x = expr, or a row of identifiers = expr (multi-return)
	FN_CALL  // a function call used as, or synthesized as, a statement/expression
	GLOBAL
	PERSISTENT
	IF
	SWITCH
	CASE
	OTHERWISE
	FOR
	WHILE
	DO_UNTIL
	TRY
	BREAK
	CONTINUE
	RETURN
	EXPR_STMT // a bare expression statement (rare; almost always a call)
	BAD_STMT  // parse-error recovery placeholder

	// Expressions / operators (see IsExpr).
	BINOP
	UNOP
	POSTOP   // postfix ++/--
	PREOP    // prefix ++/--
	TRANSPOSE
	ELEM_TRANSPOSE
	COLON     // a:b:c range expression, always exactly 3 children
	COLON_ALL // a bare ':' subscript, meaning "every index along this dimension"
	END_VAL   // the `end` keyword used as a subscript bound
	ROW
	COLUMN
	MATRIX_LIT // [ column ], a bracketed numeric/matrix literal
	CELL_LIT   // { column }, a braced cell-array literal
	IDS        // a plain (unqualified) identifier list: args, inherits, persist/global targets
	IDENT
	INT_LIT
	FLOAT_LIT
	COMPLEX_LIT
	STRING_LIT
	ANON_FUNC

	// Qualifiers, attached as children of an IDENT/primary chain.
	FIELD      // .name
	SUPER_REF  // @name
	CALL_SUBS  // (...)
	CELL_SUBS  // {...}

	// Synthesized identifiers used only internally by the resolver.
	TEMP_VAR
	ARGIN_PACK  // the `_ai` reserved argument-input packet
	ARGOUT_PACK // the `_ao` reserved argument-output packet

	maxKind
)

var kindNames = [maxKind]string{
	Invalid:        "invalid",
	ROOT:           "root",
	CLASS:          "class",
	FUNCTION:       "function",
	BLOCK:          "block",
	PROPERTIES:     "properties",
	METHODS:        "methods",
	EVENTS:         "events",
	ENUMERATION:    "enumeration",
	ASSIGN:         "assign",
	FN_CALL:        "fn_call",
	GLOBAL:         "global",
	PERSISTENT:     "persistent",
	IF:             "if",
	SWITCH:         "switch",
	CASE:           "case",
	OTHERWISE:      "otherwise",
	FOR:            "for",
	WHILE:          "while",
	DO_UNTIL:       "do_until",
	TRY:            "try",
	BREAK:          "break",
	CONTINUE:       "continue",
	RETURN:         "return",
	EXPR_STMT:      "expr_stmt",
	BAD_STMT:       "bad_stmt",
	BINOP:          "binop",
	UNOP:           "unop",
	POSTOP:         "postop",
	PREOP:          "preop",
	TRANSPOSE:      "transpose",
	ELEM_TRANSPOSE: "elem_transpose",
	COLON:          "colon",
	COLON_ALL:      "colon_all",
	END_VAL:        "end",
	ROW:            "row",
	COLUMN:         "column",
	MATRIX_LIT:     "matrix_lit",
	CELL_LIT:       "cell_lit",
	IDS:            "ids",
	IDENT:          "ident",
	INT_LIT:        "int_lit",
	FLOAT_LIT:      "float_lit",
	COMPLEX_LIT:    "complex_lit",
	STRING_LIT:     "string_lit",
	ANON_FUNC:      "anon_func",
	FIELD:          "field",
	SUPER_REF:      "super_ref",
	CALL_SUBS:      "call_subs",
	CELL_SUBS:      "cell_subs",
	TEMP_VAR:       "temp_var",
	ARGIN_PACK:     "argin_pack",
	ARGOUT_PACK:    "argout_pack",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) || kindNames[k] == "" {
		return "invalid kind"
	}
	return kindNames[k]
}

// IsLiteral reports whether k denotes a literal leaf (int/float/complex/
// string), which the resolver's init_symbols pass registers via
// value-sensitive dedup.
func (k Kind) IsLiteral() bool {
	switch k {
	case INT_LIT, FLOAT_LIT, COMPLEX_LIT, STRING_LIT:
		return true
	}
	return false
}

// IsExpr reports whether k is a value-producing expression kind:
// operators, concatenations, literals, identifiers, anonymous functions
// and calls. This is wider than the set the resolver registers
// intermediate-result temporaries for (lang/resolver's isTempKind), which
// leaves out IDENT, the literals, COLON_ALL, END_VAL and FN_CALL.
func (k Kind) IsExpr() bool {
	switch k {
	case BINOP, UNOP, POSTOP, PREOP, TRANSPOSE, ELEM_TRANSPOSE, COLON,
		COLON_ALL, END_VAL, ROW, COLUMN, MATRIX_LIT, CELL_LIT, IDENT,
		INT_LIT, FLOAT_LIT, COMPLEX_LIT, STRING_LIT, ANON_FUNC, FN_CALL:
		return true
	}
	return false
}

// IsLoop reports whether k is a looping construct, relevant to break/
// continue validation.
func (k Kind) IsLoop() bool {
	return k == FOR || k == WHILE || k == DO_UNTIL
}
