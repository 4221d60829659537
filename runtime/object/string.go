package object

import (
	"fmt"
	"strings"

	"github.com/geekysuavo/mattec/runtime/except"
	"github.com/geekysuavo/mattec/runtime/zone"
)

// String is matte's character-vector type, grounded on
// original_source/matte/string.h's _String (a char* plus a length, rather
// than a Go-native immutable string, since string_append/string_trim and
// friends mutate in place).
type String struct {
	data string
}

var stringType = &Descriptor{Name: "string", Precedence: 0}

func init() {
	stringType.Plus = func(z *zone.Zone, a, b Value) (Value, error) {
		return NewString(mustString(a).data + mustString(b).data), nil
	}
	stringType.Eq = stringCmp(func(c int) bool { return c == 0 })
	stringType.Ne = stringCmp(func(c int) bool { return c != 0 })
	stringType.Lt = stringCmp(func(c int) bool { return c < 0 })
	stringType.Gt = stringCmp(func(c int) bool { return c > 0 })
	stringType.Le = stringCmp(func(c int) bool { return c <= 0 })
	stringType.Ge = stringCmp(func(c int) bool { return c >= 0 })
	stringType.Not = func(z *zone.Zone, a Value) (Value, error) {
		if mustString(a).data == "" {
			return NewInt(1), nil
		}
		return NewInt(0), nil
	}
	stringType.Ctranspose, stringType.Transpose = identityUnary, identityUnary
	stringType.Horzcat = func(z *zone.Zone, operands []Value) (Value, error) {
		var b strings.Builder
		for _, v := range operands {
			b.WriteString(mustString(v).data)
		}
		return NewString(b.String()), nil
	}
	stringType.Subsref = func(z *zone.Zone, a, b Value) (Value, error) {
		s := mustString(a)
		switch idx := b.(type) {
		case *Int:
			i := int(idx.value) - 1
			if i < 0 || i >= len(s.data) {
				return nil, except.New(except.InvalidInputArg, "index out of bounds")
			}
			return NewString(string(s.data[i])), nil
		case *Range:
			var b strings.Builder
			for i := 0; i < idx.Len(); i++ {
				n := int(asFloat(idx.At(i))) - 1
				if n < 0 || n >= len(s.data) {
					return nil, except.New(except.InvalidInputArg, "index out of bounds")
				}
				b.WriteByte(s.data[n])
			}
			return NewString(b.String()), nil
		default:
			return nil, except.New(except.InvalidInputArg, "invalid subscript type")
		}
	}
}

// NewString allocates a matte string, mirroring string_new_with_value.
func NewString(value string) *String { return &String{data: value} }

func (s *String) Descriptor() *Descriptor { return stringType }
func (s *String) Value() string           { return s.data }
func (s *String) Len() int                { return len(s.data) }
func (s *String) At(i int) Value          { return NewString(string(s.data[i])) }
func (s *String) Truth() bool             { return s.data != "" }
func (s *String) Copy(z *zone.Zone) Value { return NewString(s.data) }
func (s *String) Destroy(z *zone.Zone)    { destroyVia(z, s) }
func (s *String) Display(name string) string {
	return fmt.Sprintf("%s = %s", name, s.data)
}

func mustString(v Value) *String {
	s, ok := v.(*String)
	if !ok {
		panic(fmt.Sprintf("object: expected *String, got %T", v))
	}
	return s
}

func stringCmp(op func(c int) bool) BinaryFn {
	return func(z *zone.Zone, a, b Value) (Value, error) {
		sa, sb := mustString(a), mustString(b)
		if op(strings.Compare(sa.data, sb.data)) {
			return NewInt(1), nil
		}
		return NewInt(0), nil
	}
}
