// Package objlist implements the argument/output packet the emitted code's
// object_list_argin/object_list_argout/object_list_get calls operate on,
// grounded on original_source/matte/object-list.h's _ObjectList (a flat
// Object* array plus a length) and generalized, per lang/machine.Tuple's
// dense ordered-value-slice shape, to support indexed extension with nulls
// the way MATLAB's varargout/nargout semantics require.
package objlist

import (
	"github.com/geekysuavo/mattec/runtime/except"
	"github.com/geekysuavo/mattec/runtime/object"
	"github.com/geekysuavo/mattec/runtime/zone"
)

// List is an ordered, nil-extendable list of runtime values, mirroring
// _ObjectList's objs/n pair.
type List struct {
	objs []object.Value
}

// New builds a list from the given values, mirroring object_list_new
// receiving a fixed argument packet.
func New(objs ...object.Value) *List {
	return &List{objs: append([]object.Value(nil), objs...)}
}

// Argin is the read side of an argument packet: the i'th positional input,
// or an InvalidInputArg exception if the caller passed fewer arguments
// than the callee declared, mirroring object_list_get's use inside the
// emitted argin unpacking prologue.
func Argin(lst *List, i int) (object.Value, error) {
	if lst == nil || i < 0 || i >= len(lst.objs) {
		return nil, except.New(except.InvalidInputArg, "missing input argument %d", i+1)
	}
	return lst.objs[i], nil
}

// Argout builds the output packet a function return statement produces,
// mirroring object_list_argout's variadic packing of n named return
// values.
func Argout(z *zone.Zone, values ...object.Value) *List {
	return New(values...)
}

// Len reports the list's length, mirroring object_list_get_length.
func (l *List) Len() int { return len(l.objs) }

// Get returns the i'th element (0-based), mirroring object_list_get.
func (l *List) Get(i int) (object.Value, error) {
	if i < 0 || i >= len(l.objs) {
		return nil, except.New(except.InvalidInputArg, "index out of bounds")
	}
	return l.objs[i], nil
}

// Set assigns the i'th element, extending the list with nil fill when i
// falls past the current length, mirroring object_list_set_length's
// grow-then-set pattern used by varargout accumulation.
func (l *List) Set(i int, v object.Value) {
	for i >= len(l.objs) {
		l.objs = append(l.objs, nil)
	}
	l.objs[i] = v
}

// Append adds a value to the end of the list, mirroring
// object_list_append.
func (l *List) Append(v object.Value) {
	l.objs = append(l.objs, v)
}

// Last returns the final element, mirroring the object_list_last macro.
func (l *List) Last() (object.Value, error) {
	if len(l.objs) == 0 {
		return nil, except.New(except.InvalidInputArg, "list is empty")
	}
	return l.objs[len(l.objs)-1], nil
}
