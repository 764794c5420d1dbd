package values

import (
	"sort"
	"strings"
)

// List represents an ordered sequence of values.
type List struct {
	Elements []Value
}

func NewList(elements []Value) *List {
	return &List{Elements: elements}
}

func (l *List) Kind() Kind { return LIST_KIND }
func (l *List) Inspect() string {
	parts := make([]string, len(l.Elements))
	for i, el := range l.Elements {
		parts[i] = el.Inspect()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
func (l *List) Hash() uint32 {
	h := uint32(1)
	for _, el := range l.Elements {
		h = 31*h + el.Hash()
	}
	return h
}

func (l *List) Len() int { return len(l.Elements) }

// Get returns the element at index i, or nil if out of bounds.
func (l *List) Get(i int) Value {
	if i < 0 || i >= len(l.Elements) {
		return nil
	}
	return l.Elements[i]
}

// MapEntry is a single key/value pair of a Map.
type MapEntry struct {
	Key   Value
	Value Value
}

// Map represents a keyed mapping. Entries preserve insertion order; key
// lookup uses deep value equality, so keys may be any value shape.
type Map struct {
	Entries []MapEntry
}

func NewMap(entries []MapEntry) *Map {
	return &Map{Entries: entries}
}

func (m *Map) Kind() Kind { return MAP_KIND }
func (m *Map) Inspect() string {
	parts := make([]string, len(m.Entries))
	for i, e := range m.Entries {
		parts[i] = e.Key.Inspect() + ": " + e.Value.Inspect()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
func (m *Map) Hash() uint32 {
	// Order-independent so that equal maps hash equally.
	h := uint32(0)
	for _, e := range m.Entries {
		h ^= 31*e.Key.Hash() + e.Value.Hash()
	}
	return h
}

func (m *Map) Len() int { return len(m.Entries) }

// Get returns the value stored under key, or nil if absent.
func (m *Map) Get(key Value) Value {
	for _, e := range m.Entries {
		if Equal(e.Key, key) {
			return e.Value
		}
	}
	return nil
}

// Field is a single named field of a Record.
type Field struct {
	Key   string
	Value Value
}

// Record represents a named-field aggregate with a nominal type tag.
// Fields are kept sorted by key for binary-search access.
type Record struct {
	TypeName string
	Fields   []Field

	// source keeps the Go value the record was classified from, when there
	// was one, so results can round-trip without losing the concrete type.
	source any
}

// NewRecord creates a Record from a field map, sorting the fields by key.
func NewRecord(typeName string, fieldMap map[string]Value) *Record {
	fields := make([]Field, 0, len(fieldMap))
	for k, v := range fieldMap {
		fields = append(fields, Field{Key: k, Value: v})
	}
	sort.Slice(fields, func(i, j int) bool {
		return fields[i].Key < fields[j].Key
	})
	return &Record{TypeName: typeName, Fields: fields}
}

func (r *Record) Kind() Kind { return RECORD_KIND }
func (r *Record) Inspect() string {
	parts := make([]string, len(r.Fields))
	for i, f := range r.Fields {
		parts[i] = f.Key + ": " + f.Value.Inspect()
	}
	return r.TypeName + "{" + strings.Join(parts, ", ") + "}"
}
func (r *Record) Hash() uint32 {
	h := hashString(r.TypeName)
	for _, f := range r.Fields {
		h = 31*h + hashString(f.Key)
		h = 31*h + f.Value.Hash()
	}
	return h
}

// Get returns the value of the named field, or nil if the record has no
// such field.
func (r *Record) Get(key string) Value {
	idx := sort.Search(len(r.Fields), func(i int) bool {
		return r.Fields[i].Key >= key
	})
	if idx < len(r.Fields) && r.Fields[idx].Key == key {
		return r.Fields[idx].Value
	}
	return nil
}
