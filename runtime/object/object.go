// Package object implements the polymorphic runtime value model and
// operator-dispatch core: every value carries a Descriptor (this repo's
// name for the type descriptor spec.md §4.2 requires) exposing a numeric
// precedence and a table of nil-able operator slots, grounded directly on
// original_source/matte/object.h's _ObjectType struct and the
// object_<op>(Zone, ...) dispatch family in object-{unary,binary,ternary,
// variadic}.c.
//
// Go's interfaces already give idiomatic method dispatch for the
// ergonomic parts (String, Truth, Display); the Descriptor exists
// alongside that, not instead of it, because spec.md's dispatch rule is
// precedence-based tie-breaking between the two *operand* types, which a
// plain Go method set cannot express (a method call is always resolved
// against the receiver's own type, never against whichever of two
// operands has the higher precedence).
package object

import "github.com/geekysuavo/mattec/runtime/zone"

// Value is implemented by every runtime value matte programs manipulate.
type Value interface {
	// Descriptor returns the value's type descriptor.
	Descriptor() *Descriptor

	// Copy returns a deep-enough duplicate of the value allocated against z,
	// mirroring object_copy's per-type fn_copy slot.
	Copy(z *zone.Zone) Value

	// Truth reports whether the value is "true" in an if/while/until
	// condition, mirroring object_true/fn_true.
	Truth() bool

	// Display renders the value the way object_display prints "name = ...".
	Display(name string) string

	// Destroy runs the value's destructor, if its descriptor has one,
	// mirroring object_free's type->fn_delete(z, obj) call. zone.Zone.Destroy
	// invokes this on every still-live cell before releasing its blocks, so
	// every concrete Value must expose it even when its own descriptor's
	// Dealloc slot is nil (the common case: most matte types own no
	// resource beyond what Go's GC already reclaims).
	Destroy(z *zone.Zone)
}

// UnaryFn, BinaryFn, TernaryFn and VariadicFn are the four operator-slot
// shapes the descriptor's method table holds, one Go func type per
// obj_unary/obj_binary/obj_ternary/obj_variadic C typedef. Each returns
// (nil, err) on failure rather than a sentinel NULL-as-exception value,
// since Go has a native error channel the C original does not.
type (
	UnaryFn    func(z *zone.Zone, a Value) (Value, error)
	BinaryFn   func(z *zone.Zone, a, b Value) (Value, error)
	TernaryFn  func(z *zone.Zone, a, b, c Value) (Value, error)
	VariadicFn func(z *zone.Zone, operands []Value) (Value, error)
)

// Method is a named entry of a descriptor's general-purpose method table
// (struct.field-style method calls), mirroring _ObjectMethod.
type Method struct {
	Name string
	Fn   func(z *zone.Zone, recv Value, args Value) (Value, error)
}

// Descriptor is this repo's name for spec.md's "type descriptor": name,
// size is omitted (Go values are not manually sized), precedence, and one
// nil-able slot per overloadable operation -- a nil slot means "this type
// does not implement this operator," exactly like a NULL function pointer
// in _ObjectType, and dispatch reports matte:undefined-function rather
// than panicking.
type Descriptor struct {
	Name       string
	Precedence int

	Plus, Minus                   BinaryFn
	UMinus                        UnaryFn
	Times, Mtimes                 BinaryFn
	Rdivide, Ldivide               BinaryFn
	Mrdivide, Mldivide             BinaryFn
	Power, Mpower                  BinaryFn
	Lt, Gt, Le, Ge, Ne, Eq          BinaryFn
	And, Or, Mand, Mor              BinaryFn
	Not                             UnaryFn
	Colon                           TernaryFn
	Ctranspose, Transpose           UnaryFn
	Horzcat, Vertcat                VariadicFn
	Subsref                         BinaryFn
	Subsasgn                        TernaryFn
	Subsindex                       UnaryFn

	// Dealloc is the nil-able destructor slot, mirroring _ObjectType's
	// fn_dealloc: nil for every type whose cleanup is nothing beyond what
	// Go's own GC already does (int, float, complex, range, vector, matrix,
	// cell, struct, iter -- exactly as original_source leaves fn_dealloc
	// NULL for int.c/range.c/complex.c's descriptors), non-nil only for a
	// type that owns something the GC does not know to release.
	Dealloc func(z *zone.Zone, v Value)

	Methods map[string]Method
}

// destroyVia runs v's descriptor destructor, if it has one. Every concrete
// Value's Destroy method forwards here so the dispatch itself lives in one
// place, exactly as object_free looks up a single type->fn_delete slot
// rather than switching on type by hand.
func destroyVia(z *zone.Zone, v Value) {
	if d := v.Descriptor().Dealloc; d != nil {
		d(z, v)
	}
}
