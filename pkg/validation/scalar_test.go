package validation_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/teamolhuang/BeingValidated/pkg/validation"
)

var errBoom = errors.New("boom")

func TestScalar_Validate(t *testing.T) {
	t.Parallel()

	t.Run("passing check keeps the chain valid", func(t *testing.T) {
		t.Parallel()
		r := &recorder[int]{}
		r.On("check", 5).Return(true, nil).Once()

		v := validation.Wrap(5, false).Validate(r.check, r.fail, r.fault)

		assert.True(t, v.IsValid())
		assert.NoError(t, v.Err())
		r.AssertExpectations(t)
		r.AssertNotCalled(t, "fail", mock.Anything)
		r.AssertNotCalled(t, "fault", mock.Anything, mock.Anything)
	})

	t.Run("failing check calls onFail and invalidates", func(t *testing.T) {
		t.Parallel()
		r := &recorder[string]{}
		r.On("fail", "bob").Once()

		v := validation.Wrap("bob", false).Validate(reject[string], r.fail, r.fault)

		assert.False(t, v.IsValid())
		assert.NoError(t, v.Err())
		r.AssertExpectations(t)
	})

	t.Run("failing check without onFail still invalidates", func(t *testing.T) {
		t.Parallel()
		v := validation.Wrap(1, false).Validate(reject[int], nil, nil)
		assert.False(t, v.IsValid())
	})

	t.Run("invalid never flips back", func(t *testing.T) {
		t.Parallel()
		v := validation.Wrap(1, false).
			Validate(reject[int], nil, nil).
			Validate(pass[int], nil, nil).
			Run(func(int) error { return nil }, nil)
		assert.False(t, v.IsValid())
	})
}

func TestScalar_Faults(t *testing.T) {
	t.Parallel()

	t.Run("unhandled fault aborts the chain with the same error", func(t *testing.T) {
		t.Parallel()
		r := &recorder[int]{}

		v := validation.Wrap(7, false).Validate(failWith[int](errBoom), r.fail, nil)

		assert.False(t, v.IsValid())
		assert.Same(t, errBoom, v.Err())

		v.Validate(r.check, r.fail, r.fault).Run(r.action, r.fault)
		r.AssertNotCalled(t, "check", mock.Anything)
		r.AssertNotCalled(t, "action", mock.Anything)
		r.AssertNotCalled(t, "fail", mock.Anything)
		assert.Same(t, errBoom, v.Err())
	})

	t.Run("handled fault is swallowed and the chain continues", func(t *testing.T) {
		t.Parallel()
		r := &recorder[int]{}
		r.On("fault", 7, errBoom).Once()
		r.On("check", 7).Return(true, nil).Once()

		v := validation.Wrap(7, false).
			Validate(failWith[int](errBoom), r.fail, r.fault).
			Validate(r.check, nil, nil)

		assert.False(t, v.IsValid())
		assert.NoError(t, v.Err())
		r.AssertExpectations(t)
		r.AssertNotCalled(t, "fail", mock.Anything)
	})

	t.Run("panic in check becomes PanicError", func(t *testing.T) {
		t.Parallel()
		v := validation.Wrap(1, false).Validate(func(int) (bool, error) { panic("kaboom") }, nil, nil)

		var pe *validation.PanicError
		require.ErrorAs(t, v.Err(), &pe)
		assert.Equal(t, "kaboom", pe.Value)
		assert.Contains(t, pe.Error(), "kaboom")
		assert.NoError(t, pe.Unwrap())
		assert.False(t, v.IsValid())
	})

	t.Run("panic with an error value unwraps to it", func(t *testing.T) {
		t.Parallel()
		v := validation.Wrap(1, false).Run(func(int) error { panic(errBoom) }, nil)
		assert.ErrorIs(t, v.Err(), errBoom)
	})

	t.Run("panic in onFail is a fault", func(t *testing.T) {
		t.Parallel()
		var got error
		v := validation.Wrap(1, false).Validate(reject[int], func(int) { panic(errBoom) }, func(_ int, err error) { got = err })

		assert.ErrorIs(t, got, errBoom)
		assert.False(t, v.IsValid())
		assert.NoError(t, v.Err())
	})

	t.Run("panicking onError reaches the caller of a sync step", func(t *testing.T) {
		t.Parallel()
		assert.PanicsWithValue(t, "handler panic", func() {
			validation.Wrap(1, false).Run(func(int) error { return errBoom }, func(int, error) { panic("handler panic") })
		})
	})

	t.Run("nil check", func(t *testing.T) {
		t.Parallel()
		v := validation.Wrap(1, false).Validate(nil, nil, nil)
		assert.ErrorIs(t, v.Err(), validation.ErrNilCheck)
		assert.False(t, v.IsValid())
	})

	t.Run("nil action is handled like any fault", func(t *testing.T) {
		t.Parallel()
		r := &recorder[int]{}
		r.On("fault", 1, validation.ErrNilAction).Once()

		v := validation.Wrap(1, false).Run(nil, r.fault)

		assert.NoError(t, v.Err())
		assert.False(t, v.IsValid())
		r.AssertExpectations(t)
	})
}

func TestScalar_Run(t *testing.T) {
	t.Parallel()

	t.Run("successful action keeps the chain valid", func(t *testing.T) {
		t.Parallel()
		r := &recorder[string]{}
		r.On("action", "x").Return(nil).Once()

		v := validation.Wrap("x", false).Run(r.action, nil)

		assert.True(t, v.IsValid())
		r.AssertExpectations(t)
	})

	t.Run("failing action is a fault", func(t *testing.T) {
		t.Parallel()
		r := &recorder[string]{}
		r.On("action", "x").Return(errBoom).Once()

		v := validation.Wrap("x", false).Run(r.action, nil)

		assert.Same(t, errBoom, v.Err())
		assert.False(t, v.IsValid())
	})
}

func TestScalar_SkipIfAlreadyInvalid(t *testing.T) {
	t.Parallel()

	t.Run("steps after invalidation are skipped", func(t *testing.T) {
		t.Parallel()
		r := &recorder[int]{}

		v := validation.Wrap(3, true).
			Validate(reject[int], nil, nil).
			Validate(r.check, r.fail, r.fault).
			Run(r.action, r.fault)

		assert.False(t, v.IsValid())
		r.AssertNotCalled(t, "check", mock.Anything)
		r.AssertNotCalled(t, "action", mock.Anything)
	})

	t.Run("handled fault also triggers skipping", func(t *testing.T) {
		t.Parallel()
		r := &recorder[int]{}

		validation.Wrap(3, true).
			Run(func(int) error { return errBoom }, func(int, error) {}).
			Validate(r.check, nil, nil)

		r.AssertNotCalled(t, "check", mock.Anything)
	})

	t.Run("toggle only affects later steps", func(t *testing.T) {
		t.Parallel()
		r := &recorder[int]{}
		r.On("check", 3).Return(true, nil).Once()

		v := validation.Wrap(3, false).
			Validate(reject[int], nil, nil).
			SkipIfAlreadyInvalid(true).
			Validate(r.check, nil, nil).
			SkipIfAlreadyInvalid(false).
			Validate(r.check, nil, nil)

		assert.False(t, v.IsValid())
		r.AssertExpectations(t)
		r.AssertNumberOfCalls(t, "check", 1)
	})

	t.Run("valid chain is not skipped", func(t *testing.T) {
		t.Parallel()
		r := &recorder[int]{}
		r.On("check", 3).Return(true, nil).Twice()

		validation.Wrap(3, true).Validate(r.check, nil, nil).Validate(r.check, nil, nil)

		r.AssertExpectations(t)
	})
}

func TestScalar_ForceSkip(t *testing.T) {
	t.Parallel()

	t.Run("matching predicate skips until stopped", func(t *testing.T) {
		t.Parallel()
		r := &recorder[int]{}
		r.On("skip", 4).Return(true).Once()
		r.On("check", 4).Return(false, nil).Once()
		r.On("fail", 4).Once()

		v := validation.Wrap(4, false).
			ForceSkipIf(r.skip).
			Validate(reject[int], nil, nil).
			Run(func(int) error { return errBoom }, nil)

		assert.True(t, v.IsValid(), "skipped steps leave validity alone")
		assert.NoError(t, v.Err())

		v.StopForceSkipping().Validate(r.check, r.fail, nil)

		assert.False(t, v.IsValid())
		r.AssertExpectations(t)
	})

	t.Run("predicate is evaluated once at call time", func(t *testing.T) {
		t.Parallel()
		r := &recorder[int]{}
		r.On("skip", 4).Return(false).Once()

		validation.Wrap(4, false).
			ForceSkipIf(r.skip).
			Validate(pass[int], nil, nil).
			Validate(pass[int], nil, nil)

		r.AssertNumberOfCalls(t, "skip", 1)
	})

	t.Run("force skip wins over a valid chain", func(t *testing.T) {
		t.Parallel()
		r := &recorder[int]{}

		validation.Wrap(4, false).
			ForceSkipIf(func(int) bool { return true }).
			SkipIfAlreadyInvalid(false).
			Validate(r.check, nil, nil)

		r.AssertNotCalled(t, "check", mock.Anything)
	})

	t.Run("nil predicate is ignored", func(t *testing.T) {
		t.Parallel()
		r := &recorder[int]{}
		r.On("check", 4).Return(true, nil).Once()

		validation.Wrap(4, false).ForceSkipIf(nil).Validate(r.check, nil, nil)

		r.AssertExpectations(t)
	})
}

func TestScalar_ChainingReturnsSelf(t *testing.T) {
	t.Parallel()

	v := validation.Wrap("x", false)
	assert.Same(t, v, v.Validate(pass[string], nil, nil))
	assert.Same(t, v, v.Run(func(string) error { return nil }, nil))
	assert.Same(t, v, v.SkipIfAlreadyInvalid(true))
	assert.Same(t, v, v.ForceSkipIf(func(string) bool { return false }))
	assert.Same(t, v, v.StopForceSkipping())

	got, err := v.ValidateAsync(context.Background(), func(context.Context, string) (bool, error) { return true, nil }, nil, nil).Await()
	require.NoError(t, err)
	assert.Same(t, v, got)

	got, err = v.RunAsync(context.Background(), func(context.Context, string) error { return nil }, nil).Await()
	require.NoError(t, err)
	assert.Same(t, v, got)
	assert.Equal(t, "x", v.Target())
}

func TestScalar_ValidateAsync(t *testing.T) {
	t.Parallel()

	t.Run("failing check resolves with an invalid chain", func(t *testing.T) {
		t.Parallel()
		r := &recorder[int]{}
		r.On("check", 9).Return(false, nil).Once()
		r.On("fail", 9).Once()

		v, err := validation.Wrap(9, false).ValidateAsync(context.Background(), r.checkCtx, r.fail, r.fault).Await()

		require.NoError(t, err)
		assert.False(t, v.IsValid())
		r.AssertExpectations(t)
	})

	t.Run("check receives the caller's context", func(t *testing.T) {
		t.Parallel()
		type key struct{}
		ctx := context.WithValue(context.Background(), key{}, "marker")

		var seen any
		_, err := validation.Wrap(1, false).ValidateAsync(ctx, func(ctx context.Context, _ int) (bool, error) {
			seen = ctx.Value(key{})
			return true, nil
		}, nil, nil).Await()

		require.NoError(t, err)
		assert.Equal(t, "marker", seen)
	})

	t.Run("unhandled fault resolves the future with it", func(t *testing.T) {
		t.Parallel()
		v := validation.Wrap(1, false)

		got, err := v.ValidateAsync(context.Background(), func(context.Context, int) (bool, error) { return false, errBoom }, nil, nil).Await()

		assert.Same(t, errBoom, err)
		assert.Same(t, v, got)
		assert.False(t, v.IsValid())

		_, err = v.ValidateAsync(context.Background(), func(context.Context, int) (bool, error) { return true, nil }, nil, nil).Await()
		assert.Same(t, errBoom, err, "aborted chain keeps reporting its fault")
	})

	t.Run("panic is recovered on the goroutine", func(t *testing.T) {
		t.Parallel()
		_, err := validation.Wrap(1, false).RunAsync(context.Background(), func(context.Context, int) error { panic("async") }, nil).Await()

		var pe *validation.PanicError
		require.ErrorAs(t, err, &pe)
		assert.Equal(t, "async", pe.Value)
	})

	t.Run("cancelled context is a fault", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		r := &recorder[int]{}
		_, err := validation.Wrap(1, false).ValidateAsync(ctx, r.checkCtx, nil, nil).Await()

		assert.ErrorIs(t, err, context.Canceled)
		r.AssertNotCalled(t, "check", mock.Anything)
	})

	t.Run("cancelled context goes to onError", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		r := &recorder[int]{}
		r.On("fault", 1, context.Canceled).Once()

		v, err := validation.Wrap(1, false).RunAsync(ctx, func(context.Context, int) error { return nil }, r.fault).Await()

		require.NoError(t, err)
		assert.False(t, v.IsValid())
		r.AssertExpectations(t)
	})

	t.Run("skipped step resolves immediately", func(t *testing.T) {
		t.Parallel()
		r := &recorder[int]{}
		v := validation.Wrap(1, true).Validate(reject[int], nil, nil)

		f := v.ValidateAsync(context.Background(), r.checkCtx, nil, nil)

		assert.True(t, f.IsComplete())
		got, err := f.Await()
		require.NoError(t, err)
		assert.Same(t, v, got)
		r.AssertNotCalled(t, "check", mock.Anything)
	})

	t.Run("panicking onError rejects the future", func(t *testing.T) {
		t.Parallel()
		r := &recorder[int]{}
		v := validation.Wrap(1, false)

		got, err := v.ValidateAsync(context.Background(), func(context.Context, int) (bool, error) {
			return false, errBoom
		}, nil, func(int, error) { panic("handler panic") }).Await()

		var pe *validation.PanicError
		require.ErrorAs(t, err, &pe)
		assert.Equal(t, "handler panic", pe.Value)
		assert.Same(t, v, got)
		assert.Same(t, pe, v.Err())
		assert.False(t, v.IsValid())

		v.Validate(r.check, nil, nil)
		r.AssertNotCalled(t, "check", mock.Anything)
	})

	t.Run("nil async check", func(t *testing.T) {
		t.Parallel()
		_, err := validation.Wrap(1, false).ValidateAsync(context.Background(), nil, nil, nil).Await()
		assert.ErrorIs(t, err, validation.ErrNilCheck)

		_, err = validation.Wrap(1, false).RunAsync(context.Background(), nil, nil).Await()
		assert.ErrorIs(t, err, validation.ErrNilAction)
	})
}
