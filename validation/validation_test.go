package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/authcorp/fputil/either"
	"github.com/authcorp/fputil/try"
)

func TestFactoriesAndAccessors(t *testing.T) {
	valid := Valid[string](12)
	assert.True(t, valid.IsValid())
	assert.Equal(t, 12, valid.Get())
	assert.Empty(t, valid.Errors())

	invalid := Invalid[string, int]("A", "B")
	assert.True(t, invalid.IsInvalid())
	assert.Equal(t, []string{"A", "B"}, invalid.Errors())
	assert.Panics(t, func() { invalid.Get() })

	assert.Equal(t, 12, valid.GetOrElse(0))
	assert.Equal(t, 0, invalid.GetOrElse(0))
}

func TestInvalidNeverHoldsNilErrors(t *testing.T) {
	invalid := Invalid[string, int]()
	assert.NotNil(t, invalid.Errors())
	assert.Empty(t, invalid.Errors())
}

func TestErrorsReturnsACopy(t *testing.T) {
	invalid := Invalid[string, int]("A")
	got := invalid.Errors()
	got[0] = "mutated"
	assert.Equal(t, []string{"A"}, invalid.Errors())
}

func TestApAccumulatesErrorsInOrder(t *testing.T) {
	combined := Invalid[string, int]("A").Ap(Invalid[string, int]("B"))
	assert.Equal(t, []string{"A", "B"}, combined.Errors())

	oneInvalid := Valid[string](1).Ap(Invalid[string, int]("A"))
	assert.Equal(t, []string{"A"}, oneInvalid.Errors())

	otherInvalid := Invalid[string, int]("A").Ap(Valid[string](1))
	assert.Equal(t, []string{"A"}, otherInvalid.Errors())

	bothValid := Valid[string](1).Ap(Valid[string](2))
	assert.Equal(t, 2, bothValid.Get())
}

func TestCombineAccumulatesAcrossWholeSequence(t *testing.T) {
	combined := Combine(
		Valid[string](1),
		Invalid[string, int]("A"),
		Valid[string](2),
		Invalid[string, int]("B", "C"),
	)
	assert.Equal(t, []string{"A", "B", "C"}, combined.Errors())

	allValid := Combine(Valid[string](1), Valid[string](2))
	assert.Equal(t, 2, allValid.Get())

	assert.True(t, Combine[string, int]().IsValid())
}

func TestCombineGetFirstInvalidShortCircuits(t *testing.T) {
	invoked := make([]int, 4)
	result := CombineGetFirstInvalid(
		func() Validation[string, int] { invoked[0]++; return Valid[string](1) },
		func() Validation[string, int] { invoked[1]++; return Invalid[string, int]("A") },
		func() Validation[string, int] { invoked[2]++; return Invalid[string, int]("B") },
		func() Validation[string, int] { invoked[3]++; return Valid[string](2) },
	)

	assert.Equal(t, []string{"A"}, result.Errors())
	assert.Equal(t, []int{1, 1, 0, 0}, invoked)
}

func TestCombineAllAndGetFirstInvalid(t *testing.T) {
	verifyAll := []Validation[string, int]{
		Invalid[string, int]("A"),
		Invalid[string, int]("B"),
	}
	lazyInvoked := 0
	lazy := []func() Validation[string, int]{
		func() Validation[string, int] { lazyInvoked++; return Invalid[string, int]("C") },
	}

	// Phase one already failed: its accumulated errors win and phase two never runs.
	result := CombineAllAndGetFirstInvalid(verifyAll, lazy)
	assert.Equal(t, []string{"A", "B"}, result.Errors())
	assert.Equal(t, 0, lazyInvoked)

	// Phase one passes: phase two short-circuits.
	result = CombineAllAndGetFirstInvalid([]Validation[string, int]{Valid[string](1)}, lazy)
	assert.Equal(t, []string{"C"}, result.Errors())
	assert.Equal(t, 1, lazyInvoked)

	// Both phases pass.
	result = CombineAllAndGetFirstInvalid(
		[]Validation[string, int]{Valid[string](1)},
		[]func() Validation[string, int]{
			func() Validation[string, int] { return Valid[string](9) },
		},
	)
	assert.Equal(t, 9, result.Get())
}

func TestFilterOrElse(t *testing.T) {
	even := func(n int) bool { return n%2 == 0 }
	toError := func(n int) string { return "odd" }

	assert.Equal(t, 12, Valid[string](12).FilterOrElse(even, toError).Get())
	assert.Equal(t, []string{"odd"}, Valid[string](13).FilterOrElse(even, toError).Errors())
	assert.Equal(t, []string{"A"}, Invalid[string, int]("A").FilterOrElse(even, toError).Errors())
	assert.Equal(t, 13, Valid[string](13).FilterOrElse(nil, toError).Get())
}

func TestMapAndFlatMap(t *testing.T) {
	double := func(n int) int { return n * 2 }

	assert.Equal(t, 24, Map(Valid[string](12), double).Get())
	assert.Equal(t, []string{"A"}, Map(Invalid[string, int]("A"), double).Errors())

	half := func(n int) Validation[string, int] {
		if n%2 != 0 {
			return Invalid[string, int]("odd")
		}
		return Valid[string](n / 2)
	}
	assert.Equal(t, 6, FlatMap(Valid[string](12), half).Get())
	assert.Equal(t, []string{"odd"}, FlatMap(Valid[string](13), half).Errors())
}

func TestMapErrors(t *testing.T) {
	mapped := MapErrors(Invalid[string, int]("a", "bb"), func(s string) int { return len(s) })
	assert.Equal(t, []int{1, 2}, mapped.Errors())

	assert.Equal(t, 5, MapErrors(Valid[string](5), func(s string) int { return 0 }).Get())
}

func TestFoldOnlyRequiresTakenBranch(t *testing.T) {
	assert.Equal(t, "12", Fold(Valid[string](12), nil, func(n int) string { return "12" }))
	assert.Equal(t, 2, Fold(Invalid[string, int]("A", "B"), func(errs []string) int { return len(errs) }, nil))
}

func TestSequenceAndTraverse(t *testing.T) {
	ok := Sequence([]Validation[string, int]{Valid[string](1), Valid[string](2)})
	assert.Equal(t, []int{1, 2}, ok.Get())

	failed := Sequence([]Validation[string, int]{
		Valid[string](1), Invalid[string, int]("A"), Invalid[string, int]("B"),
	})
	assert.Equal(t, []string{"A", "B"}, failed.Errors())

	traversed := Traverse([]int{2, 3, 4}, func(n int) Validation[string, int] {
		if n%2 != 0 {
			return Invalid[string, int]("odd")
		}
		return Valid[string](n)
	})
	assert.Equal(t, []string{"odd"}, traversed.Errors())
}

func TestConversions(t *testing.T) {
	assert.Equal(t, 12, FromEither(either.Right[string](12)).Get())
	assert.Equal(t, []string{"bad"}, FromEither(either.Left[string, int]("bad")).Errors())

	boom := errors.New("boom")
	assert.Equal(t, 12, FromTry(try.Succeed(12)).Get())
	assert.Equal(t, []error{boom}, FromTry(try.Fail[int](boom)).Errors())

	assert.Equal(t, 12, Valid[string](12).ToEither().Get())
	assert.Equal(t, []string{"A"}, Invalid[string, int]("A").ToEither().GetLeft())

	assert.Equal(t, 12, ToTry(Valid[error](12)).Get())
	joined := ToTry(Invalid[error, int](errors.New("a"), errors.New("b")))
	assert.True(t, joined.IsFailure())
	assert.Contains(t, joined.GetError().Error(), "a")
	assert.Contains(t, joined.GetError().Error(), "b")

	assert.Equal(t, 12, Valid[string](12).ToOptional().Get())
	assert.True(t, Invalid[string, int]("A").ToOptional().IsEmpty())
}
