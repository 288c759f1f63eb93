package fn

import (
	"strconv"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
)

func TestAndThenAndCompose(t *testing.T) {
	double := Function1[int, int](func(n int) int { return n * 2 })
	inc := func(n int) int { return n + 1 }

	assert.Equal(t, 11, double.AndThen(inc)(5))
	assert.Equal(t, 12, double.Compose(inc)(5))

	sum := Function2[int, int, int](func(a, b int) int { return a + b })
	assert.Equal(t, 8, sum.AndThen(inc)(3, 4))
}

func TestThenHelpersChangeResultType(t *testing.T) {
	length := Function1[string, int](func(s string) int { return len(s) })
	show := Then1(length, strconv.Itoa)
	assert.Equal(t, "5", show("hello"))

	supplier := Function0[int](func() int { return 7 })
	assert.Equal(t, "7", Then0(supplier, strconv.Itoa)())
}

func TestComposeAndPipe(t *testing.T) {
	toUpper := func(n int) string { return strconv.Itoa(n * 10) }
	parse := func(s string) int { return len(s) }

	assert.Equal(t, "20", Compose(toUpper, parse)("ab"))
	assert.Equal(t, 2, Pipe(parse, func(n int) int { return n })("ab"))
}

func TestCurryFlipPartial(t *testing.T) {
	concat := func(a, b string) string { return a + b }

	assert.Equal(t, "ab", Curry2(concat)("a")("b"))
	assert.Equal(t, "ba", Flip(concat)("a", "b"))
	assert.Equal(t, "ab", Uncurry2(Curry2(concat))("a", "b"))
	assert.Equal(t, "ab", Partial2(concat, "a")("b"))

	join3 := func(a, b, c string) string { return a + b + c }
	assert.Equal(t, "abc", Curry3(join3)("a")("b")("c"))
	assert.Equal(t, "abc", Partial3(join3, "a")("b", "c"))
}

func TestConstAndIdentity(t *testing.T) {
	assert.Equal(t, 3, Identity(3))
	always := Const[string, int]("x")
	assert.Equal(t, "x", always(1))
	assert.Equal(t, "x", always(99))
}

func TestMemoizeComputesOnce(t *testing.T) {
	calls := 0
	cached := Memoize(func() int {
		calls++
		return 42
	})

	assert.Equal(t, 42, cached())
	assert.Equal(t, 42, cached())
	assert.Equal(t, 1, calls)
}

func TestComposeAssociativity(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	f := func(n int) int { return n + 1 }
	g := func(n int) int { return n * 3 }
	h := func(n int) int { return n - 7 }

	properties.Property("Compose is associative", prop.ForAll(
		func(n int) bool {
			left := Compose(Compose(f, g), h)
			right := Compose(f, Compose(g, h))
			return left(n) == right(n)
		},
		gen.Int(),
	))

	properties.Property("Identity is neutral for Compose", prop.ForAll(
		func(n int) bool {
			return Compose(f, Identity[int])(n) == f(n) &&
				Compose(Identity[int], f)(n) == f(n)
		},
		gen.Int(),
	))

	properties.TestingRun(t)
}
