package option

import (
	"strconv"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"

	"github.com/ib-77/monad/pkg/monad"
)

func double(n int) int { return n * 2 }

func TestMap_Scenario(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 84, Map(monad.Some(42), double).GetOrElse(0))
	assert.Equal(t, 0, Map(monad.None[int](), double).GetOrElse(0))
}

func TestMap_ShortCircuitOnNone(t *testing.T) {
	t.Parallel()

	called := false
	out := Map(monad.None[int](), func(n int) string {
		called = true
		return strconv.Itoa(n)
	})

	assert.Equal(t, monad.None[string](), out)
	assert.False(t, called)
}

func TestMap_PanicBecomesNone(t *testing.T) {
	t.Parallel()

	out := Map(monad.Some(1), func(int) int { panic("boom") })
	assert.True(t, out.IsNone())
}

func TestEffect(t *testing.T) {
	t.Parallel()

	assert.Equal(t, monad.Some(3), Effect(func() int { return 3 }))
	assert.True(t, Effect(func() int { panic("boom") }).IsNone())
}

func TestFlatMap(t *testing.T) {
	t.Parallel()

	parse := func(s string) monad.Option[int] {
		n, err := strconv.Atoi(s)
		return monad.OptionOf(n, err == nil)
	}

	assert.Equal(t, monad.Some(12), FlatMap(monad.Some("12"), parse))
	assert.True(t, FlatMap(monad.Some("x"), parse).IsNone())
	assert.True(t, FlatMap(monad.None[string](), parse).IsNone())
	assert.True(t, FlatMap(monad.Some("1"), func(string) monad.Option[int] { panic("boom") }).IsNone())
}

func TestFlatten(t *testing.T) {
	t.Parallel()

	assert.Equal(t, monad.Some(1), Flatten(monad.Some(monad.Some(1))))
	assert.True(t, Flatten(monad.Some(monad.None[int]())).IsNone())
	assert.True(t, Flatten(monad.None[monad.Option[int]]()).IsNone())
}

func TestFold(t *testing.T) {
	t.Parallel()

	onNone := func() string { return "none" }
	assert.Equal(t, "5", Fold(monad.Some(5), onNone, strconv.Itoa))
	assert.Equal(t, "none", Fold(monad.None[int](), onNone, strconv.Itoa))
}

func TestFold_PanicInOnSomeRunsOnNone(t *testing.T) {
	t.Parallel()

	out := Fold(monad.Some(5),
		func() string { return "recovered" },
		func(int) string { panic("boom") })

	assert.Equal(t, "recovered", out)
}

func TestOrElseGet(t *testing.T) {
	t.Parallel()

	called := false
	alt := func() monad.Option[int] {
		called = true
		return monad.Some(2)
	}

	assert.Equal(t, monad.Some(1), OrElseGet(monad.Some(1), alt))
	assert.False(t, called)
	assert.Equal(t, monad.Some(2), OrElseGet(monad.None[int](), alt))
	assert.True(t, called)
	assert.True(t, OrElseGet(monad.None[int](), func() monad.Option[int] { panic("boom") }).IsNone())
}

func TestFilter(t *testing.T) {
	t.Parallel()

	even := func(n int) bool { return n%2 == 0 }
	assert.Equal(t, monad.Some(2), Filter(monad.Some(2), even))
	assert.True(t, Filter(monad.Some(3), even).IsNone())
	assert.True(t, Filter(monad.None[int](), even).IsNone())
}

func TestZipWith(t *testing.T) {
	t.Parallel()

	add := func(a, b int) int { return a + b }
	assert.Equal(t, monad.Some(5), ZipWith(monad.Some(2), monad.Some(3), add))
	assert.True(t, ZipWith(monad.None[int](), monad.Some(3), add).IsNone())
	assert.True(t, ZipWith(monad.Some(2), monad.None[int](), add).IsNone())
	assert.True(t, ZipWith(monad.Some(2), monad.Some(3), func(int, int) int { panic("boom") }).IsNone())
}

func TestZipVariants(t *testing.T) {
	t.Parallel()

	assert.Equal(t, monad.Some(lo.T2(1, "a")), Zip(monad.Some(1), monad.Some("a")))
	assert.Equal(t, monad.Some(1), ZipLeft(monad.Some(1), monad.Some("a")))
	assert.Equal(t, monad.Some("a"), ZipRight(monad.Some(1), monad.Some("a")))
	assert.True(t, ZipRight(monad.None[int](), monad.Some("a")).IsNone())
}

func TestUnzip(t *testing.T) {
	t.Parallel()

	a, b := Unzip(monad.Some(lo.T2(1, "a")))
	assert.Equal(t, monad.Some(1), a)
	assert.Equal(t, monad.Some("a"), b)

	a, b = Unzip(monad.None[lo.Tuple2[int, string]]())
	assert.True(t, a.IsNone())
	assert.True(t, b.IsNone())

	x, y := UnzipWith(monad.Some(7), func(n int) (int, string) { return n + 1, strconv.Itoa(n) })
	assert.Equal(t, monad.Some(8), x)
	assert.Equal(t, monad.Some("7"), y)

	x, y = UnzipWith(monad.Some(7), func(int) (int, string) { panic("boom") })
	assert.True(t, x.IsNone())
	assert.True(t, y.IsNone())
}
