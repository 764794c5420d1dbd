package values

// Equal performs a deep equality check between two values.
//
// Scalars compare only within their own kind: Integer(42) is not equal to
// Float(42.0). Lists compare element-wise, maps require equal key sets,
// records require the same type tag and fields. Host values fall back to Go
// equality when the underlying value is comparable.
func Equal(a, b Value) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.Kind() != b.Kind() {
		return false
	}

	switch aVal := a.(type) {
	case *Integer:
		return aVal.Value == b.(*Integer).Value
	case *Float:
		return aVal.Value == b.(*Float).Value
	case *Complex:
		return aVal.Value == b.(*Complex).Value
	case *Boolean:
		return aVal.Value == b.(*Boolean).Value
	case *String:
		return aVal.Value == b.(*String).Value
	case *Nil:
		return true
	case *List:
		bVal := b.(*List)
		if len(aVal.Elements) != len(bVal.Elements) {
			return false
		}
		for i := range aVal.Elements {
			if !Equal(aVal.Elements[i], bVal.Elements[i]) {
				return false
			}
		}
		return true
	case *Map:
		bVal := b.(*Map)
		if len(aVal.Entries) != len(bVal.Entries) {
			return false
		}
		for _, e := range aVal.Entries {
			other := bVal.Get(e.Key)
			if other == nil || !Equal(e.Value, other) {
				return false
			}
		}
		return true
	case *Record:
		bVal := b.(*Record)
		if aVal.TypeName != bVal.TypeName || len(aVal.Fields) != len(bVal.Fields) {
			return false
		}
		// Fields are sorted by key, so iterate in lockstep.
		for i := range aVal.Fields {
			if aVal.Fields[i].Key != bVal.Fields[i].Key {
				return false
			}
			if !Equal(aVal.Fields[i].Value, bVal.Fields[i].Value) {
				return false
			}
		}
		return true
	case *Host:
		bVal := b.(*Host)
		return comparableEqual(aVal.Value, bVal.Value)
	}

	return false
}

func comparableEqual(a, b any) (eq bool) {
	defer func() {
		// Comparing values of an uncomparable dynamic type panics; treat
		// those as unequal rather than crashing the match attempt.
		if recover() != nil {
			eq = false
		}
	}()
	return a == b
}
