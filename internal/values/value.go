package values

import (
	"fmt"
	"hash/fnv"
	"math"
	"strconv"
)

// Kind classifies a runtime value into one of the shapes the matcher
// understands. The set is closed: anything that does not fit is a Host value
// and is only matchable by wildcard, variable or literal patterns.
type Kind string

const (
	INTEGER_KIND = "INTEGER"
	FLOAT_KIND   = "FLOAT"
	COMPLEX_KIND = "COMPLEX"
	BOOLEAN_KIND = "BOOLEAN"
	STRING_KIND  = "STRING"
	NIL_KIND     = "NIL"
	LIST_KIND    = "LIST"
	MAP_KIND     = "MAP"
	RECORD_KIND  = "RECORD"
	HOST_KIND    = "HOST"

	// Canonical type names, as reported by TypeName and used by type patterns.
	TYPE_INT     = "Int"
	TYPE_FLOAT   = "Float"
	TYPE_COMPLEX = "Complex"
	TYPE_BOOL    = "Bool"
	TYPE_STRING  = "String"
	TYPE_NIL     = "Nil"
	TYPE_LIST    = "List"
	TYPE_MAP     = "Map"
)

// Value is the classified form of an input value. Values are immutable once
// constructed and safe to share between concurrent match attempts.
type Value interface {
	Kind() Kind
	Inspect() string
	Hash() uint32
}

func hashString(s string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(s))
	return h.Sum32()
}

// Integer
type Integer struct {
	Value int64
}

func (i *Integer) Kind() Kind      { return INTEGER_KIND }
func (i *Integer) Inspect() string { return strconv.FormatInt(i.Value, 10) }
func (i *Integer) Hash() uint32 {
	return uint32(i.Value ^ (i.Value >> 32))
}

// Float
type Float struct {
	Value float64
}

func (f *Float) Kind() Kind      { return FLOAT_KIND }
func (f *Float) Inspect() string { return fmt.Sprintf("%g", f.Value) }
func (f *Float) Hash() uint32 {
	bits := math.Float64bits(f.Value)
	return uint32(bits ^ (bits >> 32))
}

// Complex
type Complex struct {
	Value complex128
}

func (c *Complex) Kind() Kind      { return COMPLEX_KIND }
func (c *Complex) Inspect() string { return fmt.Sprintf("%v", c.Value) }
func (c *Complex) Hash() uint32 {
	re := math.Float64bits(real(c.Value))
	im := math.Float64bits(imag(c.Value))
	return uint32(re^(re>>32)) ^ 31*uint32(im^(im>>32))
}

// Boolean
type Boolean struct {
	Value bool
}

func (b *Boolean) Kind() Kind      { return BOOLEAN_KIND }
func (b *Boolean) Inspect() string { return strconv.FormatBool(b.Value) }
func (b *Boolean) Hash() uint32 {
	if b.Value {
		return 1
	}
	return 0
}

// String
type String struct {
	Value string
}

func (s *String) Kind() Kind      { return STRING_KIND }
func (s *String) Inspect() string { return strconv.Quote(s.Value) }
func (s *String) Hash() uint32    { return hashString(s.Value) }

// Nil represents an absent value.
type Nil struct{}

func (n *Nil) Kind() Kind      { return NIL_KIND }
func (n *Nil) Inspect() string { return "nil" }
func (n *Nil) Hash() uint32    { return 0 }

// Host carries a Go value the classifier could not decompose. The matcher
// treats it as opaque: literal comparison falls back to Go equality when the
// value is comparable.
type Host struct {
	Value any
}

func (h *Host) Kind() Kind      { return HOST_KIND }
func (h *Host) Inspect() string { return fmt.Sprintf("%v", h.Value) }
func (h *Host) Hash() uint32    { return 0 }

var (
	TRUE  = &Boolean{Value: true}
	FALSE = &Boolean{Value: false}
	NIL   = &Nil{}
)

// TypeName reports the canonical type name of a value: "Int", "Float",
// "List", the record's declared tag, and so on. Type patterns compare
// against these names.
func TypeName(v Value) string {
	switch v := v.(type) {
	case *Integer:
		return TYPE_INT
	case *Float:
		return TYPE_FLOAT
	case *Complex:
		return TYPE_COMPLEX
	case *Boolean:
		return TYPE_BOOL
	case *String:
		return TYPE_STRING
	case *Nil:
		return TYPE_NIL
	case *List:
		return TYPE_LIST
	case *Map:
		return TYPE_MAP
	case *Record:
		return v.TypeName
	case *Host:
		return fmt.Sprintf("%T", v.Value)
	}
	return string(v.Kind())
}
