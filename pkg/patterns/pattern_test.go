package patterns

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/funvibe/fluffy/internal/values"
)

func TestAsPatternCoercions(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  any
	}{
		{"literal", 42, &FixedPattern{}},
		{"string literal", "abc", &FixedPattern{}},
		{"variable", X, &VariablePattern{}},
		{"slice", []any{1, X}, &SequencePattern{}},
		{"map", map[any]any{1: X}, &DictPattern{}},
		{"struct", vector{1, 2}, &RecordPattern{}},
		{"pattern passthrough", Literal(1), &FixedPattern{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.IsType(t, tt.want, AsPattern(tt.input))
		})
	}
}

func TestVariablePatternBinds(t *testing.T) {
	env := NewBindings()
	matched, err := matchPattern(AsPattern(Var("v")), &values.Integer{Value: 9}, env)

	require.NoError(t, err)
	assert.True(t, matched)

	bound, ok := env.Get("v")
	require.True(t, ok)
	assert.True(t, values.Equal(bound, &values.Integer{Value: 9}))
}

func TestAnonymousVariableDoesNotBind(t *testing.T) {
	env := NewBindings()
	matched, err := matchPattern(AsPattern(Underscore), &values.Integer{Value: 9}, env)

	require.NoError(t, err)
	assert.True(t, matched)
	assert.Equal(t, 0, env.Len())
}

func TestSequencePatternRequiresSequence(t *testing.T) {
	pat := Seq(X)

	matched, err := matchPattern(pat, &values.Integer{Value: 1}, NewBindings())
	require.NoError(t, err)
	assert.False(t, matched)
}

func TestRecordPatternChecksFields(t *testing.T) {
	pat := RecordOf("vector", map[string]any{"X": 1, "Y": Var("y")})

	env := NewBindings()
	matched, err := matchPattern(pat, values.FromGo(vector{X: 1, Y: 5}), env)
	require.NoError(t, err)
	require.True(t, matched)

	bound, ok := env.Get("y")
	require.True(t, ok)
	assert.True(t, values.Equal(bound, &values.Integer{Value: 5}))

	matched, err = matchPattern(pat, values.FromGo(vector{X: 2, Y: 5}), NewBindings())
	require.NoError(t, err)
	assert.False(t, matched)
}

func TestVarsBatchConstructor(t *testing.T) {
	vs := Vars("width", "height")

	require.Len(t, vs, 2)
	assert.Equal(t, "width", vs[0].Name)
	assert.Equal(t, "height", vs[1].Name)
}

func TestFreshNamesAreUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		v := Fresh()
		require.NotEmpty(t, v.Name)
		require.False(t, seen[v.Name], "fresh variable name repeated")
		seen[v.Name] = true
	}
}

func TestPredeclaredVariableNames(t *testing.T) {
	assert.Equal(t, "x", X.Name)
	assert.Equal(t, "xs", Xs.Name)
	assert.Equal(t, "k", K.Name)
	assert.Empty(t, Underscore.Name)
	assert.Empty(t, Otherwise.Name)
}

func TestBindingsInsertRejectsDuplicates(t *testing.T) {
	env := NewBindings()
	require.NoError(t, env.Insert("x", values.NIL))

	err := env.Insert("x", values.NIL)

	var dup *DuplicateVariableError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "x", dup.Name)
}
