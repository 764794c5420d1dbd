package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnitAndValue(t *testing.T) {
	assert.Equal(t, 42, Unit(42).Value())
	assert.Equal(t, "id", Unit("id").Value())
}

func TestBindAndMap(t *testing.T) {
	doubled := Bind(Unit(21), func(n int) Identity[int] { return Unit(n * 2) })
	assert.Equal(t, 42, doubled.Value())

	negated := Map(Unit(5), func(n int) int { return -n })
	assert.Equal(t, -5, negated.Value())
}

func TestMonadLaws(t *testing.T) {
	f := func(n int) Identity[int] { return Unit(n + 1) }
	g := func(n int) Identity[int] { return Unit(n * 3) }

	assert.Equal(t, f(2), Bind(Unit(2), f))
	assert.Equal(t, Unit(2), Bind(Unit(2), Unit[int]))

	left := Bind(Bind(Unit(2), f), g)
	right := Bind(Unit(2), func(n int) Identity[int] { return Bind(f(n), g) })
	assert.Equal(t, left, right)
}
