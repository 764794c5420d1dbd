package patterns

import (
	"fmt"

	"github.com/funvibe/fluffy/internal/values"
)

// matchPattern checks pat against val, threading the binding environment.
// It returns (true, nil) on a structural match, (false, nil) on an ordinary
// mismatch, and a non-nil error only for usage errors (a duplicate variable
// capture), which abort the whole Match call rather than failing one case.
func matchPattern(pat Pattern, val values.Value, env *Bindings) (bool, error) {
	switch p := pat.(type) {
	case *FixedPattern:
		return values.Equal(val, p.Value), nil

	case *VariablePattern:
		if p.Name == "" {
			// Wildcard: matches anything, captures nothing.
			return true, nil
		}
		if err := env.Insert(p.Name, val); err != nil {
			return false, err
		}
		return true, nil

	case *SequencePattern:
		list, ok := val.(*values.List)
		if !ok {
			return false, nil
		}
		if list.Len() != len(p.Elements) {
			return false, nil
		}
		for i, sub := range p.Elements {
			matched, err := matchPattern(sub, list.Get(i), env)
			if err != nil {
				return false, err
			}
			if !matched {
				return false, nil
			}
		}
		return true, nil

	case *DictPattern:
		m, ok := val.(*values.Map)
		if !ok {
			return false, nil
		}
		// Exact key-set equality: every pattern key must be present and no
		// value key may be left over.
		if m.Len() != len(p.Entries) {
			return false, nil
		}
		for _, entry := range p.Entries {
			sub := m.Get(entry.Key)
			if sub == nil {
				return false, nil
			}
			matched, err := matchPattern(entry.Pattern, sub, env)
			if err != nil {
				return false, err
			}
			if !matched {
				return false, nil
			}
		}
		return true, nil

	case *RecordPattern:
		rec, ok := val.(*values.Record)
		if !ok {
			return false, nil
		}
		if rec.TypeName != p.TypeName {
			return false, nil
		}
		for _, field := range p.Fields {
			sub := rec.Get(field.Key)
			if sub == nil {
				return false, nil
			}
			matched, err := matchPattern(field.Pattern, sub, env)
			if err != nil {
				return false, err
			}
			if !matched {
				return false, nil
			}
		}
		return true, nil

	case *TypePattern:
		if values.TypeName(val) != p.TypeName {
			return false, nil
		}
		if p.Bind != "" {
			if err := env.Insert(p.Bind, val); err != nil {
				return false, err
			}
		}
		return true, nil
	}

	return false, fmt.Errorf("unsupported pattern type %T", pat)
}
