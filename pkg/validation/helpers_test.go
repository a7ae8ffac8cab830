package validation_test

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// recorder is a testify mock whose methods fit the callback types of a chain.
type recorder[T any] struct {
	mock.Mock
}

func (r *recorder[T]) check(v T) (bool, error) {
	args := r.MethodCalled("check", v)
	return args.Bool(0), args.Error(1)
}

func (r *recorder[T]) checkCtx(_ context.Context, v T) (bool, error) {
	args := r.MethodCalled("check", v)
	return args.Bool(0), args.Error(1)
}

func (r *recorder[T]) action(v T) error {
	return r.MethodCalled("action", v).Error(0)
}

func (r *recorder[T]) fail(v T) {
	r.MethodCalled("fail", v)
}

func (r *recorder[T]) fault(v T, err error) {
	r.MethodCalled("fault", v, err)
}

func (r *recorder[T]) skip(v T) bool {
	return r.MethodCalled("skip", v).Bool(0)
}

func pass[T any](T) (bool, error) { return true, nil }
func reject[T any](T) (bool, error) { return false, nil }

func failWith[T any](err error) func(T) (bool, error) {
	return func(T) (bool, error) { return false, err }
}
