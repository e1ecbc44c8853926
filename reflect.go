package purecurry

import (
	"reflect"

	"github.com/pkg/errors"
)

var (
	// ErrNotFunc is returned when a value handed to FromFunc is not a function.
	ErrNotFunc = errors.New("purecurry: not a function")

	// ErrArgCount is returned when an adapted function receives fewer arguments than it declares.
	ErrArgCount = errors.New("purecurry: not enough arguments")

	// ErrArgType is returned when an argument cannot be assigned to its parameter.
	ErrArgType = errors.New("purecurry: argument type mismatch")
)

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// FromFunc adapts an arbitrary Go function into a Func and reports its
// declared arity. The arity of a variadic function counts only its fixed
// parameters.
//
// The returned Func drops arguments beyond the declared parameters of a
// non-variadic function and gathers them into the variadic parameter
// otherwise. A nil argument becomes the parameter's zero value. If the last
// result is an error it is returned as the error; of the remaining results,
// none yields nil, one yields that value and several yield a []any.
func FromFunc(fn any) (Func, int, error) {
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func || v.IsNil() {
		return nil, 0, errors.Wrapf(ErrNotFunc, "%T", fn)
	}
	t := v.Type()
	arity := t.NumIn()
	if t.IsVariadic() {
		arity--
	}

	call := func(args ...any) (any, error) {
		if len(args) < arity {
			return nil, errors.Wrapf(ErrArgCount, "have %d, want %d", len(args), arity)
		}
		if !t.IsVariadic() {
			args = args[:arity]
		}
		in := make([]reflect.Value, len(args))
		for i, a := range args {
			pt := paramType(t, i)
			av, err := argValue(a, pt)
			if err != nil {
				return nil, errors.Wrapf(err, "argument %d", i)
			}
			in[i] = av
		}
		return results(v.Call(in))
	}
	return call, arity, nil
}

// CurryReflect curries fn using the arity reported by FromFunc.
func CurryReflect(fn any) (Chain, error) {
	f, arity, err := FromFunc(fn)
	if err != nil {
		return Chain{}, err
	}
	return Curry(arity, f), nil
}

// MustCurry is like CurryReflect but panics if fn is not a function.
func MustCurry(fn any) Chain {
	c, err := CurryReflect(fn)
	if err != nil {
		panic(err)
	}
	return c
}

func paramType(t reflect.Type, i int) reflect.Type {
	if t.IsVariadic() && i >= t.NumIn()-1 {
		return t.In(t.NumIn() - 1).Elem()
	}
	return t.In(i)
}

func argValue(a any, pt reflect.Type) (reflect.Value, error) {
	if a == nil {
		return reflect.Zero(pt), nil
	}
	av := reflect.ValueOf(a)
	if !av.Type().AssignableTo(pt) {
		return reflect.Value{}, errors.Wrapf(ErrArgType, "%s is not assignable to %s", av.Type(), pt)
	}
	return av, nil
}

func results(out []reflect.Value) (any, error) {
	var err error
	if n := len(out); n > 0 && out[n-1].Type() == errorType {
		if e := out[n-1].Interface(); e != nil {
			err = e.(error)
		}
		out = out[:n-1]
	}
	switch len(out) {
	case 0:
		return nil, err
	case 1:
		return out[0].Interface(), err
	}
	vals := make([]any, len(out))
	for i, o := range out {
		vals[i] = o.Interface()
	}
	return vals, err
}
