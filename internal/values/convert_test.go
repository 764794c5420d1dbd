package values

import (
	"testing"
)

type pair struct {
	A int
	B string
}

func TestFromGoClassification(t *testing.T) {
	tests := []struct {
		name string
		in   any
		kind Kind
	}{
		{"int", 42, INTEGER_KIND},
		{"int64", int64(42), INTEGER_KIND},
		{"uint8", uint8(7), INTEGER_KIND},
		{"float", 42.5, FLOAT_KIND},
		{"float32", float32(1.5), FLOAT_KIND},
		{"complex", 2 + 3i, COMPLEX_KIND},
		{"bool", true, BOOLEAN_KIND},
		{"string", "abc", STRING_KIND},
		{"nil", nil, NIL_KIND},
		{"slice", []int{1, 2}, LIST_KIND},
		{"array", [2]int{1, 2}, LIST_KIND},
		{"map", map[string]int{"a": 1}, MAP_KIND},
		{"struct", pair{1, "x"}, RECORD_KIND},
		{"struct pointer", &pair{1, "x"}, RECORD_KIND},
		{"channel", make(chan int), HOST_KIND},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromGo(tt.in)
			if got.Kind() != tt.kind {
				t.Errorf("FromGo(%v).Kind() = %s, want %s", tt.in, got.Kind(), tt.kind)
			}
		})
	}
}

func TestFromGoValuePassthrough(t *testing.T) {
	v := &Integer{Value: 9}
	if FromGo(v) != v {
		t.Error("expected already-classified value to pass through")
	}
}

func TestStructToRecordFields(t *testing.T) {
	rec, ok := FromGo(pair{A: 1, B: "x"}).(*Record)
	if !ok {
		t.Fatal("expected a Record")
	}
	if rec.TypeName != "pair" {
		t.Errorf("TypeName = %q, want %q", rec.TypeName, "pair")
	}
	if !Equal(rec.Get("A"), &Integer{Value: 1}) {
		t.Errorf("field A = %v", rec.Get("A"))
	}
	if !Equal(rec.Get("B"), &String{Value: "x"}) {
		t.Errorf("field B = %v", rec.Get("B"))
	}
	if rec.Get("C") != nil {
		t.Error("missing field must be nil")
	}
}

func TestToGoRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want any
	}{
		{"int", 42, 42},
		{"float", 1.5, 1.5},
		{"bool", true, true},
		{"string", "abc", "abc"},
		{"nil", nil, nil},
		{"slice", []int{1, 2}, []any{1, 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToGo(FromGo(tt.in))
			if !deepEqualAny(got, tt.want) {
				t.Errorf("ToGo(FromGo(%v)) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func deepEqualAny(a, b any) bool {
	switch av := a.(type) {
	case []any:
		bv, ok := b.([]any)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !deepEqualAny(av[i], bv[i]) {
				return false
			}
		}
		return true
	default:
		return a == b
	}
}

func TestToGoMapWithUncomparableKey(t *testing.T) {
	m := NewMap([]MapEntry{
		{Key: FromGo([]int{1, 2}), Value: &String{Value: "v"}},
	})

	out, ok := ToGo(m).(map[any]any)
	if !ok {
		t.Fatalf("expected map[any]any, got %#v", ToGo(m))
	}
	// A list key cannot key a Go map; it falls back to its rendering.
	if out["[1, 2]"] != "v" {
		t.Errorf("rendered key lookup = %v, want %q", out["[1, 2]"], "v")
	}
}

func TestToGoRecordKeepsSource(t *testing.T) {
	original := pair{A: 1, B: "x"}
	if got := ToGo(FromGo(original)); got != original {
		t.Errorf("expected the original struct back, got %#v", got)
	}

	// A record built directly has no source and converts to a field map.
	rec := NewRecord("pair", map[string]Value{"A": &Integer{Value: 1}})
	m, ok := ToGo(rec).(map[string]any)
	if !ok {
		t.Fatalf("expected map[string]any, got %#v", ToGo(rec))
	}
	if m["A"] != 1 {
		t.Errorf("field A = %v, want 1", m["A"])
	}
}
