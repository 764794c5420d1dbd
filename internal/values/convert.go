package values

import (
	"fmt"
	"reflect"
)

var valueType = reflect.TypeOf((*Value)(nil)).Elem()

// FromGo classifies an arbitrary Go value into a Value. Classification is
// decided once per input: ints and uints become Integer, floats Float,
// complex Complex, bool Boolean, string String, slices and arrays List,
// maps Map, structs (and pointers to structs) Record, nil Nil. Anything
// else is carried opaquely as a Host value.
func FromGo(val any) Value {
	if val == nil {
		return NIL
	}

	// Already classified values pass through.
	if v, ok := val.(Value); ok {
		return v
	}

	v := reflect.ValueOf(val)
	if v.Kind() == reflect.Interface {
		v = v.Elem()
	}
	if !v.IsValid() {
		return NIL
	}

	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return &Integer{Value: v.Int()}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return &Integer{Value: int64(v.Uint())}
	case reflect.Float32, reflect.Float64:
		return &Float{Value: v.Float()}
	case reflect.Complex64, reflect.Complex128:
		return &Complex{Value: v.Complex()}
	case reflect.Bool:
		if v.Bool() {
			return TRUE
		}
		return FALSE
	case reflect.String:
		return &String{Value: v.String()}
	case reflect.Slice, reflect.Array:
		return sliceToList(v)
	case reflect.Map:
		return goMapToMap(v)
	case reflect.Struct:
		return structToRecord(v, val)
	case reflect.Ptr:
		if v.IsNil() {
			return NIL
		}
		if v.Elem().Kind() == reflect.Struct {
			return structToRecord(v.Elem(), val)
		}
		return &Host{Value: val}
	default:
		return &Host{Value: val}
	}
}

func sliceToList(v reflect.Value) *List {
	elements := make([]Value, v.Len())
	for i := 0; i < v.Len(); i++ {
		elements[i] = FromGo(v.Index(i).Interface())
	}
	return NewList(elements)
}

func goMapToMap(v reflect.Value) *Map {
	entries := make([]MapEntry, 0, v.Len())
	iter := v.MapRange()
	for iter.Next() {
		entries = append(entries, MapEntry{
			Key:   FromGo(iter.Key().Interface()),
			Value: FromGo(iter.Value().Interface()),
		})
	}
	return NewMap(entries)
}

func structToRecord(v reflect.Value, source any) *Record {
	t := v.Type()
	fields := make(map[string]Value, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		fields[f.Name] = FromGo(v.Field(i).Interface())
	}
	r := NewRecord(t.Name(), fields)
	r.source = source
	return r
}

// ToGo converts a Value back to a plain Go value: scalars unwrap, lists
// become []any, maps map[any]any, records either their original Go source
// value or a map[string]any when they were built directly.
func ToGo(obj Value) any {
	switch o := obj.(type) {
	case *Integer:
		return int(o.Value)
	case *Float:
		return o.Value
	case *Complex:
		return o.Value
	case *Boolean:
		return o.Value
	case *String:
		return o.Value
	case *Nil:
		return nil
	case *List:
		out := make([]any, len(o.Elements))
		for i, el := range o.Elements {
			out[i] = ToGo(el)
		}
		return out
	case *Map:
		out := make(map[any]any, len(o.Entries))
		for _, e := range o.Entries {
			k := ToGo(e.Key)
			if k != nil && !reflect.TypeOf(k).Comparable() {
				// Slices, maps and other uncomparable values cannot key a
				// Go map; fall back to their rendered form.
				k = e.Key.Inspect()
			}
			out[k] = ToGo(e.Value)
		}
		return out
	case *Record:
		if o.source != nil {
			return o.source
		}
		out := make(map[string]any, len(o.Fields))
		for _, f := range o.Fields {
			out[f.Key] = ToGo(f.Value)
		}
		return out
	case *Host:
		return o.Value
	}
	return nil
}

// ToGoType converts a Value to a Go value of the requested reflect type,
// for handing match results to reflected function and method calls.
func ToGoType(obj Value, targetType reflect.Type) (any, error) {
	if targetType == nil || targetType.Kind() == reflect.Interface && targetType.NumMethod() == 0 {
		return ToGo(obj), nil
	}
	if targetType == valueType {
		return obj, nil
	}

	switch o := obj.(type) {
	case *Integer:
		switch targetType.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return reflect.ValueOf(o.Value).Convert(targetType).Interface(), nil
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			return reflect.ValueOf(o.Value).Convert(targetType).Interface(), nil
		case reflect.Float32, reflect.Float64:
			return reflect.ValueOf(float64(o.Value)).Convert(targetType).Interface(), nil
		}
	case *Float:
		switch targetType.Kind() {
		case reflect.Float32, reflect.Float64:
			return reflect.ValueOf(o.Value).Convert(targetType).Interface(), nil
		}
	case *Complex:
		switch targetType.Kind() {
		case reflect.Complex64, reflect.Complex128:
			return reflect.ValueOf(o.Value).Convert(targetType).Interface(), nil
		}
	case *Boolean:
		if targetType.Kind() == reflect.Bool {
			return o.Value, nil
		}
	case *String:
		if targetType.Kind() == reflect.String {
			return reflect.ValueOf(o.Value).Convert(targetType).Interface(), nil
		}
	case *Nil:
		switch targetType.Kind() {
		case reflect.Ptr, reflect.Interface, reflect.Slice, reflect.Map, reflect.Func, reflect.Chan:
			return reflect.Zero(targetType).Interface(), nil
		}
	case *List:
		if targetType.Kind() == reflect.Slice {
			out := reflect.MakeSlice(targetType, len(o.Elements), len(o.Elements))
			for i, el := range o.Elements {
				converted, err := ToGoType(el, targetType.Elem())
				if err != nil {
					return nil, err
				}
				out.Index(i).Set(reflect.ValueOf(converted))
			}
			return out.Interface(), nil
		}
	case *Map:
		if targetType.Kind() == reflect.Map {
			out := reflect.MakeMapWithSize(targetType, len(o.Entries))
			for _, e := range o.Entries {
				k, err := ToGoType(e.Key, targetType.Key())
				if err != nil {
					return nil, err
				}
				v, err := ToGoType(e.Value, targetType.Elem())
				if err != nil {
					return nil, err
				}
				out.SetMapIndex(reflect.ValueOf(k), reflect.ValueOf(v))
			}
			return out.Interface(), nil
		}
	case *Record:
		if o.source != nil && reflect.TypeOf(o.source).AssignableTo(targetType) {
			return o.source, nil
		}
		if o.source != nil {
			sv := reflect.ValueOf(o.source)
			if sv.Kind() == reflect.Ptr && sv.Elem().Type().AssignableTo(targetType) {
				return sv.Elem().Interface(), nil
			}
		}
	case *Host:
		if reflect.TypeOf(o.Value).AssignableTo(targetType) {
			return o.Value, nil
		}
	}

	return nil, fmt.Errorf("cannot convert %s to %s", obj.Inspect(), targetType)
}
