package try

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOfCapturesPanics(t *testing.T) {
	boom := errors.New("x")

	failed := Of(func() int { panic(boom) })
	assert.False(t, failed.IsSuccess())
	assert.Equal(t, "x", failed.GetError().Error())

	ok := Of(func() int { return 5 })
	assert.True(t, ok.IsSuccess())
	assert.Equal(t, 5, ok.Get())
}

func TestOfWrapsNonErrorPanicValues(t *testing.T) {
	failed := Of(func() int { panic("kaput") })
	assert.True(t, failed.IsFailure())
	assert.Equal(t, "an unknown error was thrown, error = kaput", failed.GetError().Error())
}

func TestOfErr(t *testing.T) {
	boom := errors.New("boom")

	assert.Equal(t, boom, OfErr(func() (int, error) { return 0, boom }).GetError())
	assert.Equal(t, 3, OfErr(func() (int, error) { return 3, nil }).Get())
	assert.Equal(t, boom, OfErr(func() (int, error) { panic(boom) }).GetError())
}

func TestFromValue(t *testing.T) {
	boom := errors.New("boom")
	assert.Equal(t, 3, FromValue(3, nil).Get())
	assert.Equal(t, boom, FromValue(0, boom).GetError())
}

func TestFailNormalizesNilError(t *testing.T) {
	failed := Fail[int](nil)
	assert.True(t, failed.IsFailure())
	assert.NotNil(t, failed.GetError())
}

func TestAccessors(t *testing.T) {
	boom := errors.New("boom")

	assert.Panics(t, func() { Fail[int](boom).Get() })
	assert.Panics(t, func() { Succeed(1).GetError() })
	assert.Equal(t, 1, Succeed(1).GetOrElse(9))
	assert.Equal(t, 9, Fail[int](boom).GetOrElse(9))
	assert.Equal(t, 4, Fail[int](boom).GetOrElseGet(func(err error) int { return len(err.Error()) }))
}

func TestMapCapturesCallbackPanics(t *testing.T) {
	boom := errors.New("mapper blew up")

	mapped := Map(Succeed(5), func(int) string { panic(boom) })
	assert.True(t, mapped.IsFailure())
	assert.Equal(t, boom, mapped.GetError())

	assert.Equal(t, "5", Map(Succeed(5), strconv.Itoa).Get())
	assert.Equal(t, boom, Map(Fail[int](boom), strconv.Itoa).GetError())
}

func TestFlatMapCapturesCallbackPanics(t *testing.T) {
	boom := errors.New("boom")

	assert.Equal(t, 10, FlatMap(Succeed(5), func(n int) Try[int] { return Succeed(n * 2) }).Get())
	assert.Equal(t, boom, FlatMap(Succeed(5), func(int) Try[int] { panic(boom) }).GetError())
	assert.Equal(t, boom, FlatMap(Fail[int](boom), func(n int) Try[int] { return Succeed(n) }).GetError())
}

func TestRecover(t *testing.T) {
	boom := errors.New("boom")

	recovered := Fail[int](boom).Recover(func(err error) int { return len(err.Error()) })
	assert.Equal(t, 4, recovered.Get())

	assert.Equal(t, 1, Succeed(1).Recover(func(error) int { return 0 }).Get())

	stillFailed := Fail[int](boom).Recover(func(error) int { panic("again") })
	assert.True(t, stillFailed.IsFailure())
}

func TestRecoverWithDoesNotRewrap(t *testing.T) {
	boom := errors.New("boom")
	other := errors.New("other")

	assert.Equal(t, 7, Fail[int](boom).RecoverWith(func(error) Try[int] { return Succeed(7) }).Get())
	assert.Equal(t, other, Fail[int](boom).RecoverWith(func(error) Try[int] { return Fail[int](other) }).GetError())
	assert.Equal(t, 1, Succeed(1).RecoverWith(func(error) Try[int] { return Succeed(0) }).Get())
}

func TestTransform(t *testing.T) {
	boom := errors.New("boom")

	doubled := Succeed(5).Transform(nil, func(n int) Try[int] { return Succeed(n * 2) })
	assert.Equal(t, 10, doubled.Get())

	rescued := Fail[int](boom).Transform(func(error) Try[int] { return Succeed(-1) }, nil)
	assert.Equal(t, -1, rescued.Get())

	exploded := Succeed(5).Transform(nil, func(int) Try[int] { panic(boom) })
	assert.Equal(t, boom, exploded.GetError())
}

func TestFold(t *testing.T) {
	boom := errors.New("boom")

	assert.Equal(t, "5", Fold(Succeed(5), nil, strconv.Itoa))
	assert.Equal(t, "boom", Fold(Fail[int](boom), func(err error) string { return err.Error() }, nil))
}

func TestToEitherAndToOptional(t *testing.T) {
	boom := errors.New("boom")

	assert.Equal(t, 5, Succeed(5).ToEither().Get())
	assert.Equal(t, boom, Fail[int](boom).ToEither().GetLeft())
	assert.Equal(t, 5, Succeed(5).ToOptional().Get())
	assert.True(t, Fail[int](boom).ToOptional().IsEmpty())
}

func TestCombine(t *testing.T) {
	sum := func(a, b int) int { return a + b }
	firstErr := func(a, b error) error { return a }

	combined := Combine(firstErr, sum, Succeed(1), Succeed(2), Succeed(3))
	assert.Equal(t, 6, combined.Get())

	e1 := errors.New("e1")
	e2 := errors.New("e2")
	failed := Combine(firstErr, sum, Succeed(1), Fail[int](e1), Fail[int](e2))
	assert.Equal(t, e1, failed.GetError())
}

func TestCombineGetFirstFailureShortCircuits(t *testing.T) {
	sum := func(a, b int) int { return a + b }
	e1 := errors.New("e1")
	invoked := make([]int, 4)

	result := CombineGetFirstFailure(sum,
		func() Try[int] { invoked[0]++; return Succeed(12) },
		func() Try[int] { invoked[1]++; return Succeed(11) },
		func() Try[int] { invoked[2]++; return Fail[int](e1) },
		func() Try[int] { invoked[3]++; return Fail[int](errors.New("e2")) },
	)

	assert.Equal(t, e1, result.GetError())
	assert.Equal(t, []int{1, 1, 1, 0}, invoked)
}
