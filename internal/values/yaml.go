package values

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// FromYAML decodes a YAML document into a Value: mappings become Maps,
// sequences become Lists, scalars become Integer/Float/Boolean/String/Nil.
// This lets rule sets match directly against configuration and data files.
func FromYAML(data []byte) (Value, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("yaml parse error: %w", err)
	}
	return inferFromYAML(doc)
}

// inferFromYAML converts the generic Go values produced by yaml.Unmarshal.
// yaml.v3 returns int for integers (unlike encoding/json's float64), and
// map[string]any for mappings with string keys.
func inferFromYAML(data any) (Value, error) {
	switch v := data.(type) {
	case nil:
		return NIL, nil
	case bool:
		if v {
			return TRUE, nil
		}
		return FALSE, nil
	case int:
		return &Integer{Value: int64(v)}, nil
	case int64:
		return &Integer{Value: v}, nil
	case float64:
		return &Float{Value: v}, nil
	case string:
		return &String{Value: v}, nil
	case []any:
		elements := make([]Value, len(v))
		for i, item := range v {
			obj, err := inferFromYAML(item)
			if err != nil {
				return nil, err
			}
			elements[i] = obj
		}
		return NewList(elements), nil
	case map[string]any:
		entries := make([]MapEntry, 0, len(v))
		for key, item := range v {
			obj, err := inferFromYAML(item)
			if err != nil {
				return nil, err
			}
			entries = append(entries, MapEntry{Key: &String{Value: key}, Value: obj})
		}
		return NewMap(entries), nil
	case map[any]any:
		entries := make([]MapEntry, 0, len(v))
		for key, item := range v {
			k, err := inferFromYAML(key)
			if err != nil {
				return nil, err
			}
			obj, err := inferFromYAML(item)
			if err != nil {
				return nil, err
			}
			entries = append(entries, MapEntry{Key: k, Value: obj})
		}
		return NewMap(entries), nil
	default:
		return nil, fmt.Errorf("unsupported YAML value of type %T", data)
	}
}
