package patterns

import (
	"github.com/funvibe/fluffy/internal/values"
)

// Bindings is the environment built up during a single match attempt: a
// mapping from variable name to the captured sub-value. It is created fresh
// per attempt, discarded on failure and handed to the matched case's
// expression on success. Bindings are never shared between attempts, so no
// locking is needed.
type Bindings struct {
	store map[string]values.Value
}

func NewBindings() *Bindings {
	return &Bindings{store: make(map[string]values.Value)}
}

// Get looks up a captured value by name.
func (b *Bindings) Get(name string) (values.Value, bool) {
	v, ok := b.store[name]
	return v, ok
}

// Insert adds a capture. Inserting a name that is already present violates
// the occurs-once rule and fails with a DuplicateVariableError; the check
// lives here, at match time, because a pattern object can be reused across
// many Match calls.
func (b *Bindings) Insert(name string, val values.Value) error {
	if _, ok := b.store[name]; ok {
		return &DuplicateVariableError{Name: name}
	}
	b.store[name] = val
	return nil
}

func (b *Bindings) Len() int { return len(b.store) }
