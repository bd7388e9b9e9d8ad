package chain

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/ib-77/monad/pkg/monad"
)

func TestStartAndResult_Success(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	out := Start(ctx, monad.Succeed(5)).Result()

	if v, err := out.Get(); err != nil || v != 5 {
		t.Fatalf("expected success with 5, got: val=%v, err=%v", v, err)
	}
}

func TestFromValue(t *testing.T) {
	t.Parallel()
	out := FromValue(context.Background(), 7).Result()

	if v, err := out.Get(); err != nil || v != 7 {
		t.Fatalf("expected success with 7, got: val=%v, err=%v", v, err)
	}
}

func TestThen_ShortCircuitOnFailure(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	called := false
	out := FromError[int](ctx, errors.New("boom")).
		Then(func(ctx context.Context, t int) monad.Try[int] {
			called = true
			return monad.Succeed(t + 1)
		}).
		Result()

	if out.IsSuccess() || out.Err().Error() != "boom" {
		t.Fatalf("expected failure 'boom', got: %v", out)
	}
	if called {
		t.Fatalf("onSuccess should not be called when initial result is failure")
	}
}

func TestThen_SuccessPath(t *testing.T) {
	t.Parallel()
	out := FromValue(context.Background(), 3).
		Then(func(ctx context.Context, t int) monad.Try[int] { return monad.Succeed(t * 2) }).
		Result()

	if v, err := out.Get(); err != nil || v != 6 {
		t.Fatalf("expected success with 6, got: val=%v, err=%v", v, err)
	}
}

func TestThen_PanicBecomesFailure(t *testing.T) {
	t.Parallel()
	out := FromValue(context.Background(), 3).
		Then(func(ctx context.Context, t int) monad.Try[int] { panic("boom") }).
		Result()

	var pe *monad.PanicError
	if !errors.As(out.Err(), &pe) {
		t.Fatalf("expected a captured panic, got: %v", out)
	}
}

func TestThenTry_ErrorPropagation(t *testing.T) {
	t.Parallel()
	out := FromValue(context.Background(), 10).
		ThenTry(func(ctx context.Context, t int) (int, error) {
			return 0, errors.New("try-error")
		}).
		Result()

	if out.IsSuccess() || out.Err().Error() != "try-error" {
		t.Fatalf("expected failure 'try-error', got: %v", out)
	}
}

func TestThenTry_Success(t *testing.T) {
	t.Parallel()
	out := FromValue(context.Background(), 4).
		ThenTry(func(ctx context.Context, t int) (int, error) { return t * t, nil }).
		Result()

	if v, err := out.Get(); err != nil || v != 16 {
		t.Fatalf("expected success with 16, got: val=%v, err=%v", v, err)
	}
}

func TestCanceledContextStopsChain(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	out := FromValue(ctx, 1).
		Map(func(ctx context.Context, t int) int {
			called = true
			return t
		}).
		Result()

	if called {
		t.Fatalf("no step should run on a canceled context")
	}
	if !errors.Is(out.Err(), context.Canceled) {
		t.Fatalf("expected context.Canceled, got: %v", out.Err())
	}
}

func TestRecover(t *testing.T) {
	t.Parallel()
	out := FromError[int](context.Background(), errors.New("x")).
		Recover(func(ctx context.Context, err error) int { return 42 }).
		Map(func(ctx context.Context, t int) int { return t * 2 }).
		Result()

	if v := out.GetOrElse(0); v != 84 {
		t.Fatalf("expected 84, got %d", v)
	}
}

func TestToAndConvert(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	parsed := To(FromValue(ctx, "12"), func(ctx context.Context, s string) monad.Try[int] {
		n, err := strconv.Atoi(s)
		return monad.TryOf(n, err)
	})
	text := Convert(parsed, func(ctx context.Context, n int) string { return strconv.Itoa(n + 1) })

	if v, err := text.Result().Get(); err != nil || v != "13" {
		t.Fatalf("expected '13', got: val=%v, err=%v", v, err)
	}

	failed := Convert(FromError[int](ctx, errors.New("bad")), func(ctx context.Context, n int) string { return "" })
	if failed.Result().IsSuccess() {
		t.Fatalf("expected failure to propagate through Convert")
	}
}

func TestRepeatUntil(t *testing.T) {
	t.Parallel()
	out := FromValue(context.Background(), 1).
		RepeatUntil(
			func(ctx context.Context, t int) monad.Try[int] { return monad.Succeed(t * 2) },
			func(ctx context.Context, t int) bool { return t < 100 }).
		Result()

	if v := out.GetOrElse(0); v != 128 {
		t.Fatalf("expected 128, got %d", v)
	}
}

func TestWhile(t *testing.T) {
	t.Parallel()
	steps := 0
	out := FromValue(context.Background(), 0).
		While(
			func(ctx context.Context, t int) monad.Try[int] {
				steps++
				return monad.Succeed(t + 3)
			},
			func(ctx context.Context, t int) bool { return t < 10 }).
		Result()

	if v := out.GetOrElse(0); v != 12 || steps != 4 {
		t.Fatalf("expected 12 after 4 steps, got %d after %d", v, steps)
	}

	stopped := FromValue(context.Background(), 0).
		While(
			func(ctx context.Context, t int) monad.Try[int] { return monad.Fail[int](errors.New("stop")) },
			func(ctx context.Context, t int) bool { return true }).
		Result()
	if stopped.IsSuccess() {
		t.Fatalf("expected the loop to stop on failure")
	}
}

func TestOrAnd(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	bad := FromError[int](ctx, errors.New("bad"))
	worse := FromError[int](ctx, errors.New("worse"))
	good := FromValue(ctx, 1)

	if v := bad.Or(worse, good).Result().GetOrElse(0); v != 1 {
		t.Fatalf("expected Or to pick the successful chain, got %d", v)
	}
	if err := bad.Or(worse).Result().Err(); err == nil || err.Error() != "bad" {
		t.Fatalf("expected the first failure, got %v", err)
	}
	if err := good.And(worse, bad).Result().Err(); err == nil || err.Error() != "worse" {
		t.Fatalf("expected the first failed chain, got %v", err)
	}
	if v := good.And(FromValue(ctx, 2)).Result().GetOrElse(0); v != 2 {
		t.Fatalf("expected the last chain, got %d", v)
	}
}

func TestEnsure_SideEffects(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	sCalled, fCalled := false, false
	out := FromValue(ctx, 11).
		Ensure(func(ctx context.Context, v int) { sCalled = true }, func(ctx context.Context, err error) { fCalled = true }).
		Result()
	if out.GetOrElse(0) != 11 || !sCalled || fCalled {
		t.Fatalf("expected success side-effect only; sCalled=%v, fCalled=%v", sCalled, fCalled)
	}

	sCalled, fCalled = false, false
	FromError[int](ctx, errors.New("bad")).
		Ensure(func(ctx context.Context, v int) { sCalled = true }, func(ctx context.Context, err error) { fCalled = true })
	if sCalled || !fCalled {
		t.Fatalf("expected failure side-effect only; sCalled=%v, fCalled=%v", sCalled, fCalled)
	}

	// nil callbacks should be safe
	if v := FromValue(ctx, 1).Ensure(nil, nil).Result().GetOrElse(0); v != 1 {
		t.Fatalf("expected unchanged success result, got %d", v)
	}
}

func TestFinally_SuccessFailureCancel(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	onSuccess := func(ctx context.Context, v int) int { return v + 100 }
	onFailure := func(ctx context.Context, err error) int { return -1 }
	onCancel := func(ctx context.Context, err error) int { return -2 }

	if s := FromValue(ctx, 3).Finally(onSuccess, onFailure, onCancel); s != 103 {
		t.Fatalf("expected 103, got %d", s)
	}
	if f := FromError[int](ctx, errors.New("x")).Finally(onSuccess, onFailure, onCancel); f != -1 {
		t.Fatalf("expected -1 for failure, got %d", f)
	}
	if c := FromError[int](ctx, context.DeadlineExceeded).Finally(onSuccess, onFailure, onCancel); c != -2 {
		t.Fatalf("expected -2 for cancel, got %d", c)
	}

	label := Finally(FromValue(ctx, 3),
		func(ctx context.Context, v int) string { return strconv.Itoa(v) },
		func(ctx context.Context, err error) string { return "failure" },
		func(ctx context.Context, err error) string { return "cancel" })
	if label != "3" {
		t.Fatalf("expected '3', got %q", label)
	}
}
