package helper

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	ErrNotFunc = errors.New("not a function")
	ErrArity   = errors.New("wrong number of arguments")
	ErrArgType = errors.New("argument type mismatch")
)

// BindCall checks that fn can be called with args and returns a closure that
// performs the call. Results of fn are discarded.
// Variadic functions accept any number of trailing arguments of the element type.
func BindCall(fn any, args ...any) (func(), error) {
	fv := reflect.ValueOf(fn)
	if fv.Kind() != reflect.Func || fv.IsNil() {
		return nil, fmt.Errorf("%w: %T", ErrNotFunc, fn)
	}

	in, err := argValues(fv.Type(), args)
	if err != nil {
		return nil, err
	}
	return func() {
		fv.Call(in)
	}, nil
}

// MustBindCall is the panic-on-failure variant of BindCall.
func MustBindCall(fn any, args ...any) func() {
	call, err := BindCall(fn, args...)
	if err != nil {
		panic(err)
	}
	return call
}

func argValues(ft reflect.Type, args []any) ([]reflect.Value, error) {
	numIn := ft.NumIn()
	variadic := ft.IsVariadic()
	if (!variadic && len(args) != numIn) || (variadic && len(args) < numIn-1) {
		return nil, fmt.Errorf("%w: %s takes %d, got %d", ErrArity, ft, numIn, len(args))
	}

	in := make([]reflect.Value, len(args))
	for i, arg := range args {
		var want reflect.Type
		if variadic && i >= numIn-1 {
			want = ft.In(numIn - 1).Elem()
		} else {
			want = ft.In(i)
		}
		v, err := valueOf(arg, want)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i, err)
		}
		in[i] = v
	}
	return in, nil
}

func valueOf(arg any, want reflect.Type) (reflect.Value, error) {
	if arg == nil {
		switch want.Kind() {
		case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice:
			return reflect.Zero(want), nil
		default:
			return reflect.Value{}, fmt.Errorf("%w: nil for %s", ErrArgType, want)
		}
	}
	v := reflect.ValueOf(arg)
	if !v.Type().AssignableTo(want) {
		return reflect.Value{}, fmt.Errorf("%w: have %s, want %s", ErrArgType, v.Type(), want)
	}
	return v, nil
}
