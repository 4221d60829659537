package emitter

import "github.com/geekysuavo/mattec/lang/token"

// binaryOps maps a BINOP node's operator token to the dispatch function
// the runtime exposes for it, grounded directly on the original
// compiler's operator table (compiler.c's `operators[]`): one row per
// overloadable operation, selected by token and operand count.
var binaryOps = map[token.Token]string{
	token.PLUS:      "object_plus",
	token.MINUS:     "object_minus",
	token.DOTSTAR:   "object_times",
	token.STAR:      "object_mtimes",
	token.DOTSLASH:  "object_rdivide",
	token.DOTBACKSL: "object_ldivide",
	token.SLASH:     "object_mrdivide",
	token.BACKSLASH: "object_mldivide",
	token.DOTCARET:  "object_power",
	token.CARET:     "object_mpower",
	token.LT:        "object_lt",
	token.GT:        "object_gt",
	token.LE:        "object_le",
	token.GE:        "object_ge",
	token.NEQ:       "object_ne",
	token.EQEQ:      "object_eq",
	token.AMP:       "object_and",
	token.PIPE:      "object_or",
	token.AMPAMP:    "object_mand",
	token.PIPEPIPE:  "object_mor",
}

// unaryOps maps a UNOP node's operator token to its dispatch function.
// object_uplus has no analog in the original compiler's table (which
// never admits a unary `+`); this grammar does allow `+x` so the runtime
// gets a trivial identity/copy entry for it — see DESIGN.md.
var unaryOps = map[token.Token]string{
	token.MINUS: "object_uminus",
	token.BANG:  "object_not",
	token.PLUS:  "object_uplus",
}
