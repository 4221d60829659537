package object

import (
	"fmt"
	"strings"

	"github.com/geekysuavo/mattec/runtime/except"
	"github.com/geekysuavo/mattec/runtime/structmap"
	"github.com/geekysuavo/mattec/runtime/zone"
)

// Struct is matte's field-access value, grounded on
// original_source/matte/struct.h's _Struct (parallel keys/objs arrays), but
// backed by structmap.Map so field lookup is binary-search rather than the
// original's linear scan.
type Struct struct {
	fields *structmap.Map[Value]
}

var structType = &Descriptor{Name: "struct", Precedence: 0}

func init() {
	structType.Ctranspose, structType.Transpose = identityUnary, identityUnary
}

// NewStruct allocates an empty matte struct, mirroring struct_new.
func NewStruct() *Struct {
	return &Struct{fields: structmap.New[Value]()}
}

func (s *Struct) Descriptor() *Descriptor { return structType }
func (s *Struct) Truth() bool             { return s.fields.Len() > 0 }

func (s *Struct) Copy(z *zone.Zone) Value {
	out := NewStruct()
	for i := 0; i < s.fields.Len(); i++ {
		e := s.fields.At(i)
		out.fields.Set(e.Key, e.Value.Copy(z))
	}
	return out
}

func (s *Struct) Destroy(z *zone.Zone) { destroyVia(z, s) }

func (s *Struct) Display(name string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s =\n", name)
	for i := 0; i < s.fields.Len(); i++ {
		e := s.fields.At(i)
		fmt.Fprintf(&b, "  %s\n", e.Value.Display(e.Key))
	}
	return strings.TrimRight(b.String(), "\n")
}

// Get returns the value bound to field, mirroring struct_get, surfaced as
// an UndefinedSymbol exception (rather than matte's NULL-on-miss) so the
// emitter's writeQualifiers can propagate it the same way any other
// dispatch failure is propagated.
func (s *Struct) Get(field string) (Value, error) {
	v, ok := s.fields.Get(field)
	if !ok {
		return nil, except.New(except.UndefinedSymbol, "undefined field '%s'", field)
	}
	return v, nil
}

// Set inserts or overwrites field, mirroring struct_insert/struct_set.
func (s *Struct) Set(field string, value Value) {
	s.fields.Set(field, value)
}

// Remove deletes field, mirroring struct_remove.
func (s *Struct) Remove(field string) bool {
	return s.fields.Remove(field)
}

// Len reports the number of bound fields, mirroring struct_get_length.
func (s *Struct) Len() int { return s.fields.Len() }
