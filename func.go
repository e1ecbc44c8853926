package purecurry

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/exp/slices"
)

// ErrTargetPanicked is returned by Func.Recover when the wrapped target panics.
var ErrTargetPanicked = errors.New("purecurry: target panicked")

// Func is a target function over a positional argument list.
// It is what a Chain eventually invokes.
//
// Example:
//
//	sum := Func(func(args ...any) (any, error) {
//	    total := 0
//	    for _, a := range args {
//	        total += a.(int)
//	    }
//	    return total, nil
//	})
//
//	v, _ := sum.Curry(3).Call(1).Call(2, 3).Value() // 6
type Func func(args ...any) (any, error)

// Call invokes f with args passed one by one.
func (f Func) Call(args ...any) (any, error) {
	return f(args...)
}

// Apply invokes f with args passed as a slice.
func (f Func) Apply(args []any) (any, error) {
	return f(args...)
}

// Bind returns a Func that prepends bound to the arguments of every call.
func (f Func) Bind(bound ...any) Func {
	prefix := slices.Clone(bound)
	return func(args ...any) (any, error) {
		all := make([]any, 0, len(prefix)+len(args))
		all = append(all, prefix...)
		all = append(all, args...)
		return f(all...)
	}
}

// Curry returns a Chain that collects arity arguments before calling f.
func (f Func) Curry(arity int) Chain {
	return Curry(arity, f)
}

// Empty returns a Func that ignores its arguments and returns nil (Monoid identity).
func (f Func) Empty() Func {
	return func(args ...any) (any, error) {
		return nil, nil
	}
}

// Compose calls f, then passes its result as the only argument to next (Monoid operation).
func (f Func) Compose(next Func) Func {
	return func(args ...any) (any, error) {
		v, err := f(args...)
		if err != nil {
			return v, err
		}
		return next(v)
	}
}

// Tap allows side effects without modifying the call.
func (f Func) Tap(fn func(args []any, result any, err error)) Func {
	return func(args ...any) (any, error) {
		v, err := f(args...)
		fn(args, v, err)
		return v, err
	}
}

// WithLogging logs every call and its outcome.
func (f Func) WithLogging(logger func(string)) Func {
	return func(args ...any) (any, error) {
		logger(fmt.Sprintf("call(%s)", formatArgs(args)))
		v, err := f(args...)
		if err != nil {
			logger(fmt.Sprintf("call(%s) failed: %v", formatArgs(args), err))
			return v, err
		}
		logger(fmt.Sprintf("call(%s) = %v", formatArgs(args), v))
		return v, nil
	}
}

// Recover converts a panic in f into an error wrapping ErrTargetPanicked.
func (f Func) Recover() Func {
	return func(args ...any) (v any, err error) {
		defer func() {
			if r := recover(); r != nil {
				v = nil
				err = errors.Wrapf(ErrTargetPanicked, "%v", r)
			}
		}()
		return f(args...)
	}
}

func formatArgs(args []any) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = fmt.Sprintf("%v", a)
	}
	return strings.Join(parts, ", ")
}
