package guard

import (
	"github.com/on-the-ground/defer_ive_go/shared/helper"
	"go.uber.org/multierr"
)

// Errors returned by BindArgs. Match them with errors.Is.
var (
	ErrNotFunc = helper.ErrNotFunc
	ErrArity   = helper.ErrArity
	ErrArgType = helper.ErrArgType
)

// Bind binds a into fn. The argument is evaluated now, not at exit; pass a
// pointer to observe later changes.
func Bind[A any](fn func(A), a A) func() {
	return func() { fn(a) }
}

// Bind2 binds two arguments into fn.
func Bind2[A, B any](fn func(A, B), a A, b B) func() {
	return func() { fn(a, b) }
}

// Bind3 binds three arguments into fn.
func Bind3[A, B, C any](fn func(A, B, C), a A, b B, c C) func() {
	return func() { fn(a, b, c) }
}

// BindArgs binds args into an arbitrary function value. The call is checked now:
// fn must be a function and every argument must be assignable to its parameter.
// Whatever fn returns is discarded; use Collect for functions that return an error.
func BindArgs(fn any, args ...any) (func(), error) {
	return helper.BindCall(fn, args...)
}

// MustBindArgs is like BindArgs but panics if the call does not type-check.
func MustBindArgs(fn any, args ...any) func() {
	return helper.MustBindCall(fn, args...)
}

// Collect adapts an error-returning function into an action. When the action runs,
// the error from fn, if any, is appended to *errp with multierr.
func Collect(errp *error, fn func() error) func() {
	if errp == nil {
		panic("guard: Collect needs a non-nil error pointer")
	}
	return func() {
		multierr.AppendInvoke(errp, multierr.Invoke(fn))
	}
}
