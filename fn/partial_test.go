package fn

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/authcorp/fputil/errs"
)

func evenDoubler() PartialFunction[int, int] {
	return PartialOf(
		func(n int) bool { return n%2 == 0 },
		func(n int) int { return n * 2 },
	)
}

func TestPartialOfRejectsNilArguments(t *testing.T) {
	assert.PanicsWithError(t, errs.IllegalArgument("condition must not be nil").Error(), func() {
		PartialOf[int, int](nil, func(n int) int { return n })
	})
	assert.PanicsWithError(t, errs.IllegalArgument("mapper must not be nil").Error(), func() {
		PartialOf[int, int](func(int) bool { return true }, nil)
	})
}

func TestPartialFunctionDomain(t *testing.T) {
	pf := evenDoubler()

	assert.True(t, pf.IsDefinedAt(4))
	assert.False(t, pf.IsDefinedAt(3))
	assert.Equal(t, 8, pf.Apply(4))
}

func TestApplyOrElse(t *testing.T) {
	pf := evenDoubler()
	fallback := func(n int) int { return n - 1 }

	assert.Equal(t, 8, pf.ApplyOrElse(4, fallback))
	assert.Equal(t, 2, pf.ApplyOrElse(3, fallback))
}

func TestOrElseFallsBackOutsideDomain(t *testing.T) {
	pf := evenDoubler().OrElse(PartialOf(
		func(n int) bool { return n < 0 },
		func(n int) int { return -n },
	))

	assert.Equal(t, 8, pf.Apply(4))
	assert.Equal(t, 5, pf.Apply(-5))
	assert.True(t, pf.IsDefinedAt(-5))
	assert.False(t, pf.IsDefinedAt(3))
}

func TestAndThenPartialKeepsDomain(t *testing.T) {
	pf := AndThenPartial(evenDoubler(), func(n int) string {
		if n > 5 {
			return "big"
		}
		return "small"
	})

	assert.True(t, pf.IsDefinedAt(4))
	assert.False(t, pf.IsDefinedAt(3))
	assert.Equal(t, "big", pf.Apply(4))
	assert.Equal(t, "small", pf.Apply(2))
}

func TestLift(t *testing.T) {
	total := Lift(evenDoubler())

	assert.Equal(t, 8, total(4).Get())
	assert.True(t, total(3).IsEmpty())
}

func TestPartialIdentity(t *testing.T) {
	pf := PartialIdentity[string]()
	assert.True(t, pf.IsDefinedAt("anything"))
	assert.Equal(t, "anything", pf.Apply("anything"))
}
