package patterns

import (
	"reflect"
	"sort"

	"github.com/funvibe/fluffy/internal/values"
)

// Pattern is a closed union of pattern variants. Patterns are immutable
// once constructed, long-lived and safe to reuse across concurrent Match
// calls. Matching itself lives in matchPattern, which handles every variant
// exhaustively.
type Pattern interface {
	patternNode()
}

// FixedPattern matches values equal (by deep value equality) to a fixed one.
// It captures nothing.
type FixedPattern struct {
	Value values.Value
}

// VariablePattern matches any value. A named variable captures the value
// under its name; an anonymous one (empty name) is a wildcard and captures
// nothing.
type VariablePattern struct {
	Name string
}

// SequencePattern matches an ordered sequence of exactly the same length,
// element-wise.
type SequencePattern struct {
	Elements []Pattern
}

// DictEntry pairs a literal key with the pattern its value must match.
type DictEntry struct {
	Key     values.Value
	Pattern Pattern
}

// DictPattern matches a keyed mapping whose key set equals the pattern's
// key set exactly; no subset matching.
type DictPattern struct {
	Entries []DictEntry
}

// FieldPattern pairs a record field name with a sub-pattern.
type FieldPattern struct {
	Key     string
	Pattern Pattern
}

// RecordPattern matches a record value with the same type tag whose declared
// fields all match.
type RecordPattern struct {
	TypeName string
	Fields   []FieldPattern
}

// TypePattern matches any value whose type name equals TypeName ("Int",
// "List", a record tag, ...), optionally capturing the value under Bind.
type TypePattern struct {
	TypeName string
	Bind     string
}

func (*FixedPattern) patternNode()    {}
func (*VariablePattern) patternNode() {}
func (*SequencePattern) patternNode() {}
func (*DictPattern) patternNode()     {}
func (*RecordPattern) patternNode()   {}
func (*TypePattern) patternNode()     {}

// Literal returns a pattern matching values equal to v.
func Literal(v any) Pattern {
	return &FixedPattern{Value: values.FromGo(v)}
}

// Seq returns a pattern matching an ordered sequence element-wise. Elements
// are coerced with AsPattern, so plain values, variables and nested slices
// all work.
func Seq(elements ...any) Pattern {
	sub := make([]Pattern, len(elements))
	for i, el := range elements {
		sub[i] = AsPattern(el)
	}
	return &SequencePattern{Elements: sub}
}

// MapOf returns a pattern matching a keyed mapping with exactly the given
// key set. Entries are folded in a fixed order (sorted by key rendering) so
// variable captures are deterministic.
func MapOf(entries map[any]any) Pattern {
	return mapToDictPattern(reflect.ValueOf(entries))
}

// RecordOf returns a pattern matching a record with the given type tag whose
// named fields match the given sub-patterns.
func RecordOf(typeName string, fields map[string]any) Pattern {
	fps := make([]FieldPattern, 0, len(fields))
	for k, v := range fields {
		fps = append(fps, FieldPattern{Key: k, Pattern: AsPattern(v)})
	}
	sort.Slice(fps, func(i, j int) bool { return fps[i].Key < fps[j].Key })
	return &RecordPattern{TypeName: typeName, Fields: fps}
}

// OfType returns a pattern matching any value of the named type.
func OfType(typeName string) Pattern {
	return &TypePattern{TypeName: typeName}
}

// OfTypeAs is OfType with a capture: the matched value is bound to v.
func OfTypeAs(typeName string, v *Variable) Pattern {
	return &TypePattern{TypeName: typeName, Bind: v.Name}
}

// AsPattern coerces an arbitrary value into a Pattern:
//
//   - a Pattern passes through,
//   - a *Variable becomes a variable pattern (or wildcard when anonymous),
//   - slices and arrays become sequence patterns,
//   - maps become dictionary patterns,
//   - structs and pointers to structs become record patterns built from
//     their field values,
//   - everything else matches as a literal.
//
// Construction never validates variable names; the occurs-once rule is
// enforced at match time.
func AsPattern(v any) Pattern {
	switch p := v.(type) {
	case Pattern:
		return p
	case *Variable:
		return &VariablePattern{Name: p.Name}
	case Variable:
		return &VariablePattern{Name: p.Name}
	case values.Value:
		return &FixedPattern{Value: p}
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		sub := make([]Pattern, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			sub[i] = AsPattern(rv.Index(i).Interface())
		}
		return &SequencePattern{Elements: sub}
	case reflect.Map:
		return mapToDictPattern(rv)
	case reflect.Struct:
		return structToRecordPattern(rv)
	case reflect.Ptr:
		if !rv.IsNil() && rv.Elem().Kind() == reflect.Struct {
			return structToRecordPattern(rv.Elem())
		}
	}

	return &FixedPattern{Value: values.FromGo(v)}
}

func mapToDictPattern(rv reflect.Value) *DictPattern {
	entries := make([]DictEntry, 0, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		entries = append(entries, DictEntry{
			Key:     values.FromGo(iter.Key().Interface()),
			Pattern: AsPattern(iter.Value().Interface()),
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Key.Inspect() < entries[j].Key.Inspect()
	})
	return &DictPattern{Entries: entries}
}

func structToRecordPattern(rv reflect.Value) *RecordPattern {
	t := rv.Type()
	fps := make([]FieldPattern, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		fps = append(fps, FieldPattern{Key: f.Name, Pattern: AsPattern(rv.Field(i).Interface())})
	}
	sort.Slice(fps, func(i, j int) bool { return fps[i].Key < fps[j].Key })
	return &RecordPattern{TypeName: t.Name(), Fields: fps}
}
