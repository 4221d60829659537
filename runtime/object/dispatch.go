package object

import (
	"github.com/geekysuavo/mattec/runtime/except"
	"github.com/geekysuavo/mattec/runtime/zone"
)

// Unary, Binary, Ternary and Variadic are the four free-function dispatch
// shapes spec.md §4.2/SPEC_FULL.md §6.2 call for: given an operator name
// (for diagnostics) and a selector that picks the right Descriptor slot,
// they replicate object-{unary,binary,ternary,variadic}.c's precedence
// resolution exactly, including the undefined-function exception message
// when no operand's descriptor supplies a non-nil implementation.
//
// Mirroring the teacher's machine.Call staying a free function rather than
// a method on some dispatcher type, these stay free functions too, so that
// lang/emitter's generated call names (object_plus, object_minus, ...) have
// an obvious one-to-one Go analog for reference even though the emitted C
// links against its own runtime, not this package directly.

func Unary(opName string, sel func(*Descriptor) UnaryFn, z *zone.Zone, a Value) (Value, error) {
	if a == nil {
		return nil, except.New(except.InvalidInputArg, "one or more invalid arguments")
	}
	da := a.Descriptor()
	fn := sel(da)
	if fn == nil {
		return nil, except.New(except.UndefinedFunction,
			"method %s(%s) is unimplemented", opName, da.Name)
	}
	return fn(z, a)
}

func Binary(opName string, sel func(*Descriptor) BinaryFn, z *zone.Zone, a, b Value) (Value, error) {
	if a == nil || b == nil {
		return nil, except.New(except.InvalidInputArg, "one or more invalid arguments")
	}
	da, db := a.Descriptor(), b.Descriptor()

	var fn BinaryFn
	if da.Precedence >= db.Precedence {
		fn = sel(da)
	} else {
		fn = sel(db)
	}
	if fn == nil {
		return nil, except.New(except.UndefinedFunction,
			"method %s(%s, %s) is unimplemented", opName, da.Name, db.Name)
	}
	return fn(z, a, b)
}

func Ternary(opName string, sel func(*Descriptor) TernaryFn, z *zone.Zone, a, b, c Value) (Value, error) {
	if a == nil || b == nil || c == nil {
		return nil, except.New(except.InvalidInputArg, "one or more invalid arguments")
	}
	da, db, dc := a.Descriptor(), b.Descriptor(), c.Descriptor()

	var fn TernaryFn
	switch {
	case da.Precedence >= db.Precedence && da.Precedence >= dc.Precedence:
		fn = sel(da)
	case db.Precedence >= dc.Precedence:
		fn = sel(db)
	default:
		fn = sel(dc)
	}
	if fn == nil {
		return nil, except.New(except.UndefinedFunction,
			"method %s(%s, %s, %s) is unimplemented", opName, da.Name, db.Name, dc.Name)
	}
	return fn(z, a, b, c)
}

func Variadic(opName string, sel func(*Descriptor) VariadicFn, z *zone.Zone, operands []Value) (Value, error) {
	if len(operands) == 0 {
		return nil, nil
	}
	tmax := operands[0].Descriptor()
	for _, v := range operands[1:] {
		if v == nil {
			return nil, except.New(except.InvalidInputArg, "one or more invalid arguments")
		}
		if d := v.Descriptor(); d.Precedence > tmax.Precedence {
			tmax = d
		}
	}
	fn := sel(tmax)
	if fn == nil {
		return nil, except.New(except.UndefinedFunction,
			"method %s(%s, ...) is unimplemented", opName, tmax.Name)
	}
	return fn(z, operands)
}

// The named wrappers below are the dispatch entry points other runtime
// packages and tests call; each corresponds 1:1 to one object_<op> C
// function and one Descriptor slot selector.

func Plus(z *zone.Zone, a, b Value) (Value, error) {
	return Binary("plus", func(d *Descriptor) BinaryFn { return d.Plus }, z, a, b)
}
func Minus(z *zone.Zone, a, b Value) (Value, error) {
	return Binary("minus", func(d *Descriptor) BinaryFn { return d.Minus }, z, a, b)
}
func UMinus(z *zone.Zone, a Value) (Value, error) {
	return Unary("uminus", func(d *Descriptor) UnaryFn { return d.UMinus }, z, a)
}
func UPlus(z *zone.Zone, a Value) (Value, error) {
	// uplus has no analog in original_source's operators[] table (see
	// lang/emitter's operators.go); dispatch treats it as an identity copy
	// rather than a descriptor slot, since no type needs to customize it.
	if a == nil {
		return nil, except.New(except.InvalidInputArg, "one or more invalid arguments")
	}
	return a.Copy(z), nil
}
func Times(z *zone.Zone, a, b Value) (Value, error) {
	return Binary("times", func(d *Descriptor) BinaryFn { return d.Times }, z, a, b)
}
func Mtimes(z *zone.Zone, a, b Value) (Value, error) {
	return Binary("mtimes", func(d *Descriptor) BinaryFn { return d.Mtimes }, z, a, b)
}
func Rdivide(z *zone.Zone, a, b Value) (Value, error) {
	return Binary("rdivide", func(d *Descriptor) BinaryFn { return d.Rdivide }, z, a, b)
}
func Ldivide(z *zone.Zone, a, b Value) (Value, error) {
	return Binary("ldivide", func(d *Descriptor) BinaryFn { return d.Ldivide }, z, a, b)
}
func Mrdivide(z *zone.Zone, a, b Value) (Value, error) {
	return Binary("mrdivide", func(d *Descriptor) BinaryFn { return d.Mrdivide }, z, a, b)
}
func Mldivide(z *zone.Zone, a, b Value) (Value, error) {
	return Binary("mldivide", func(d *Descriptor) BinaryFn { return d.Mldivide }, z, a, b)
}
func Power(z *zone.Zone, a, b Value) (Value, error) {
	return Binary("power", func(d *Descriptor) BinaryFn { return d.Power }, z, a, b)
}
func Mpower(z *zone.Zone, a, b Value) (Value, error) {
	return Binary("mpower", func(d *Descriptor) BinaryFn { return d.Mpower }, z, a, b)
}
func Lt(z *zone.Zone, a, b Value) (Value, error) {
	return Binary("lt", func(d *Descriptor) BinaryFn { return d.Lt }, z, a, b)
}
func Gt(z *zone.Zone, a, b Value) (Value, error) {
	return Binary("gt", func(d *Descriptor) BinaryFn { return d.Gt }, z, a, b)
}
func Le(z *zone.Zone, a, b Value) (Value, error) {
	return Binary("le", func(d *Descriptor) BinaryFn { return d.Le }, z, a, b)
}
func Ge(z *zone.Zone, a, b Value) (Value, error) {
	return Binary("ge", func(d *Descriptor) BinaryFn { return d.Ge }, z, a, b)
}
func Ne(z *zone.Zone, a, b Value) (Value, error) {
	return Binary("ne", func(d *Descriptor) BinaryFn { return d.Ne }, z, a, b)
}
func Eq(z *zone.Zone, a, b Value) (Value, error) {
	return Binary("eq", func(d *Descriptor) BinaryFn { return d.Eq }, z, a, b)
}
func And(z *zone.Zone, a, b Value) (Value, error) {
	return Binary("and", func(d *Descriptor) BinaryFn { return d.And }, z, a, b)
}
func Or(z *zone.Zone, a, b Value) (Value, error) {
	return Binary("or", func(d *Descriptor) BinaryFn { return d.Or }, z, a, b)
}
func Mand(z *zone.Zone, a, b Value) (Value, error) {
	return Binary("mand", func(d *Descriptor) BinaryFn { return d.Mand }, z, a, b)
}
func Mor(z *zone.Zone, a, b Value) (Value, error) {
	return Binary("mor", func(d *Descriptor) BinaryFn { return d.Mor }, z, a, b)
}
func Not(z *zone.Zone, a Value) (Value, error) {
	return Unary("not", func(d *Descriptor) UnaryFn { return d.Not }, z, a)
}
func Colon(z *zone.Zone, a, b, c Value) (Value, error) {
	return Ternary("colon", func(d *Descriptor) TernaryFn { return d.Colon }, z, a, b, c)
}
func Ctranspose(z *zone.Zone, a Value) (Value, error) {
	return Unary("ctranspose", func(d *Descriptor) UnaryFn { return d.Ctranspose }, z, a)
}
func Transpose(z *zone.Zone, a Value) (Value, error) {
	return Unary("transpose", func(d *Descriptor) UnaryFn { return d.Transpose }, z, a)
}
func Horzcat(z *zone.Zone, operands []Value) (Value, error) {
	return Variadic("horzcat", func(d *Descriptor) VariadicFn { return d.Horzcat }, z, operands)
}
func Vertcat(z *zone.Zone, operands []Value) (Value, error) {
	return Variadic("vertcat", func(d *Descriptor) VariadicFn { return d.Vertcat }, z, operands)
}
func Subsref(z *zone.Zone, a, b Value) (Value, error) {
	return Binary("subsref", func(d *Descriptor) BinaryFn { return d.Subsref }, z, a, b)
}
func Subsasgn(z *zone.Zone, a, b, c Value) (Value, error) {
	return Ternary("subsasgn", func(d *Descriptor) TernaryFn { return d.Subsasgn }, z, a, b, c)
}
func Subsindex(z *zone.Zone, a Value) (Value, error) {
	return Unary("subsindex", func(d *Descriptor) UnaryFn { return d.Subsindex }, z, a)
}

// One returns a new integer 1: the Go runtime's counterpart of the C
// object_one call that lang/emitter's writeIncDec emits to lower ++/--
// (no analog in the original's operators[] table -- see lang/emitter's
// DESIGN.md entry) into an ordinary add/subtract-by-one.
func One(z *zone.Zone) Value {
	return NewInt(1)
}
