package patterns

import (
	"errors"
	"math"
	"testing"

	"github.com/jhump/protoreflect/desc/builder"
	"github.com/jhump/protoreflect/dynamic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchFirstCaseWins(t *testing.T) {
	result, err := Match(1,
		NewCase(1, 5),
		NewCase(1, 7),
	)
	require.NoError(t, err)
	assert.Equal(t, 5, result)
}

func TestMatchCasesTriedInOrder(t *testing.T) {
	result, err := Match(2,
		NewCase(1, "a"),
		NewCase(2, "b"),
		NewCase(Otherwise, "c"),
	)
	require.NoError(t, err)
	assert.Equal(t, "b", result)
}

func TestMatchExhaustionRaisesMismatch(t *testing.T) {
	_, err := Match(1,
		NewCase(2, -2),
		NewCase(3, -3),
	)

	var mismatch *MismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, 1, mismatch.Value)
}

func TestWildcardMatchesAnythingBindsNothing(t *testing.T) {
	for _, input := range []any{42, "text", []any{1, 2}, nil, map[string]int{"a": 1}} {
		result, err := Match(input, NewCase(Underscore, "matched"))
		require.NoError(t, err)
		assert.Equal(t, "matched", result)

		// The wildcard contributes no binding, so referencing one fails.
		_, err = Match(input, NewCase(Underscore, Ref("missing")))
		var unbound *UnboundVariableError
		require.ErrorAs(t, err, &unbound)
		assert.Equal(t, "missing", unbound.Name)
	}
}

func TestLiteralUsesValueEquality(t *testing.T) {
	result, err := Match(42, NewCase(Literal(42), "int"))
	require.NoError(t, err)
	assert.Equal(t, "int", result)

	// Cross-kind numeric equality is pinned to false: an Integer literal
	// does not match a Float input, and vice versa.
	_, err = Match(42.0, NewCase(Literal(42), "int"))
	var mismatch *MismatchError
	assert.ErrorAs(t, err, &mismatch)

	_, err = Match(42, NewCase(Literal(42.0), "float"))
	assert.ErrorAs(t, err, &mismatch)

	result, err = Match(42.0, NewCase(Literal(42.0), "float"))
	require.NoError(t, err)
	assert.Equal(t, "float", result)
}

func TestSequenceLengthMismatchNeverMatches(t *testing.T) {
	_, err := Match([]int{1, 2},
		NewCase(Seq(X, Y, Z), Ref("x")),
	)

	var mismatch *MismatchError
	require.ErrorAs(t, err, &mismatch)
}

func TestSequenceThreadsBindings(t *testing.T) {
	result, err := Match([]any{10, "*", 20},
		NewCase([]any{X, "+", Y}, Add(X, Y)),
		NewCase([]any{X, "-", Y}, Sub(X, Y)),
		NewCase([]any{X, "*", Y}, Mul(X, Y)),
		NewCase([]any{X, "/", Y}, Div(X, Y)),
	)
	require.NoError(t, err)
	assert.Equal(t, 200, result)
}

func TestDuplicateVariableRejected(t *testing.T) {
	// Construction must not raise; the pattern is only rejected once a
	// match attempt reaches the second capture.
	pat := Seq(X, X)

	_, err := Match([]int{1, 1}, NewCase(pat, Ref("x")))

	var dup *DuplicateVariableError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "x", dup.Name)
}

func TestDuplicateVariableAbortsLaterCases(t *testing.T) {
	// The usage error is fatal to the whole call; the catch-all case after
	// the malformed one must not run.
	_, err := Match([]int{1, 1},
		NewCase(Seq(X, X), Ref("x")),
		NewCase(Otherwise, "fallback"),
	)

	var dup *DuplicateVariableError
	require.ErrorAs(t, err, &dup)
}

func TestMappingRequiresExactKeySet(t *testing.T) {
	result, err := Match(map[int]int{1: 2},
		NewCase(MapOf(map[any]any{1: Var("v")}), Var("v")),
	)
	require.NoError(t, err)
	assert.Equal(t, 2, result)

	_, err = Match(map[int]int{1: 2, 3: 4},
		NewCase(MapOf(map[any]any{1: Var("v")}), Var("v")),
	)
	var mismatch *MismatchError
	require.ErrorAs(t, err, &mismatch)
}

func TestDeferredEvaluation(t *testing.T) {
	called := false
	sqrt := func(x float64) float64 {
		called = true
		return math.Sqrt(x)
	}

	tmpl := Apply(sqrt, X)
	assert.False(t, called, "building the template must not invoke the function")

	result, err := Match(42, NewCase(X, tmpl))
	require.NoError(t, err)
	assert.True(t, called)
	assert.InDelta(t, math.Sqrt(42), result.(float64), 1e-12)
}

func TestRaiseReturnsDesignatedError(t *testing.T) {
	boom := errors.New("boom")

	_, err := Match(1,
		NewCase(1, Raise(boom)),
	)
	assert.Same(t, boom, err)

	// A non-matching raise case has no effect.
	result, err := Match(2,
		NewCase(1, Raise(boom)),
		NewCase(2, "ok"),
	)
	require.NoError(t, err)
	assert.Equal(t, "ok", result)
}

func TestRaiseDefaultKind(t *testing.T) {
	_, err := Match(1, NewCase(1, Raise("no rule for this")))

	var evalErr *EvaluationError
	require.ErrorAs(t, err, &evalErr)
	assert.Equal(t, "no rule for this", evalErr.Error())
}

type vector struct {
	X int
	Y int
}

func TestRecordMatching(t *testing.T) {
	result, err := Match(vector{X: 3, Y: 4},
		NewCase(RecordOf("vector", map[string]any{"X": M, "Y": N}), Add(Mul(M, M), Mul(N, N))),
	)
	require.NoError(t, err)
	assert.Equal(t, 25, result)

	// A different type tag never matches, field shapes notwithstanding.
	_, err = Match(vector{X: 3, Y: 4},
		NewCase(RecordOf("point", map[string]any{"X": M, "Y": N}), M),
	)
	var mismatch *MismatchError
	require.ErrorAs(t, err, &mismatch)
}

func TestTypePatternMatching(t *testing.T) {
	classify := func(v any) string {
		result, err := Match(v,
			NewCase(OfType("Int"), "integer"),
			NewCase(OfType("Float"), "float"),
			NewCase(OfType("List"), "sequence"),
			NewCase(Otherwise, "other"),
		)
		require.NoError(t, err)
		return result.(string)
	}

	assert.Equal(t, "integer", classify(7))
	assert.Equal(t, "float", classify(7.5))
	assert.Equal(t, "sequence", classify([]int{1}))
	assert.Equal(t, "other", classify("text"))
}

func TestTypePatternCapture(t *testing.T) {
	result, err := Match(7,
		NewCase(OfTypeAs("Int", X), Mul(X, X)),
	)
	require.NoError(t, err)
	assert.Equal(t, 49, result)
}

func TestMatchYAML(t *testing.T) {
	doc := []byte("kind: metric\nvalue: 42\n")

	result, err := MatchYAML(doc,
		NewCase(MapOf(map[any]any{"kind": "metric", "value": Var("v")}), Var("v")),
		NewCase(Otherwise, Raise("unknown document")),
	)
	require.NoError(t, err)
	assert.Equal(t, 42, result)
}

func TestMatchProto(t *testing.T) {
	md, err := builder.NewMessage("Event").
		AddField(builder.NewField("id", builder.FieldTypeInt64())).
		AddField(builder.NewField("kind", builder.FieldTypeString())).
		Build()
	require.NoError(t, err)

	msg := dynamic.NewMessage(md)
	msg.SetFieldByName("id", int64(7))
	msg.SetFieldByName("kind", "alert")

	result, err := MatchProto(msg,
		NewCase(RecordOf("Event", map[string]any{"id": X, "kind": "audit"}), "skip"),
		NewCase(RecordOf("Event", map[string]any{"id": X, "kind": "alert"}), Mul(X, 10)),
		NewCase(Otherwise, Raise("unknown message")),
	)
	require.NoError(t, err)
	assert.Equal(t, 70, result)

	// A message with a different name never matches a record pattern for
	// another tag.
	other, err := builder.NewMessage("Heartbeat").
		AddField(builder.NewField("id", builder.FieldTypeInt64())).
		Build()
	require.NoError(t, err)

	_, err = MatchProto(dynamic.NewMessage(other),
		NewCase(RecordOf("Event", map[string]any{"id": X}), X),
	)
	var mismatch *MismatchError
	require.ErrorAs(t, err, &mismatch)
}

func TestMatchNestedStructures(t *testing.T) {
	input := []any{"user", map[string]any{"name": "alice", "age": 30}}

	result, err := Match(input,
		NewCase(Seq("group", Underscore), "skip"),
		NewCase(Seq("user", MapOf(map[any]any{"name": Var("name"), "age": Var("age")})), Var("name")),
	)
	require.NoError(t, err)
	assert.Equal(t, "alice", result)
}

func TestDictionaryResultWithSequenceKey(t *testing.T) {
	// A captured sequence used as a dictionary-template key cannot become a
	// Go map key; the result carries its rendered form instead of panicking.
	result, err := Match([]any{[]any{1, 2}},
		NewCase(Seq(X), AsExpression(map[any]any{X: "v"})),
	)
	require.NoError(t, err)

	m, ok := result.(map[any]any)
	require.True(t, ok, "expected map[any]any, got %#v", result)
	assert.Equal(t, "v", m["[1, 2]"])
}

func TestMatchedValuesRoundTrip(t *testing.T) {
	// A variable that captures a whole sub-structure hands it back in Go
	// form.
	result, err := Match([]any{1, []any{2, 3}},
		NewCase(Seq(X, Xs), Var("xs")),
	)
	require.NoError(t, err)
	assert.Equal(t, []any{2, 3}, result)
}
