package purecurry

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrIncomplete is returned by Chain.Value before enough arguments were supplied.
	ErrIncomplete = errors.New("purecurry: chain has not collected enough arguments")

	// ErrResolved is carried by a chain produced by calling an already resolved chain.
	ErrResolved = errors.New("purecurry: chain already resolved")
)

// argList is a persistent, append-only argument list. Each node points at the
// arguments supplied before it, so chains forked from a common step share
// their prefix and never observe each other's additions.
type argList struct {
	val  any
	prev *argList
}

func (l *argList) push(args []any) *argList {
	for _, a := range args {
		l = &argList{val: a, prev: l}
	}
	return l
}

// slice materializes the n most recent nodes in call order.
func (l *argList) slice(n int) []any {
	out := make([]any, n)
	for i := n - 1; i >= 0; i-- {
		out[i] = l.val
		l = l.prev
	}
	return out
}

// Chain is one step of a curry chain. The zero value is a resolved chain
// with a nil result.
//
// A Chain is immutable: Call never modifies its receiver, it returns the next
// step. Any step may be called many times, from many goroutines, and each
// call starts an independent continuation.
//
// Example:
//
//	add3 := Curry(3, sum)
//	v, err := add3.Call(1).Call(2).Call(3).Value() // 6, nil
//	v, err = add3.Call(1, 2).Call(3).Value()       // 6, nil
//	v, err = add3.Call(1, 2, 3).Value()            // 6, nil
type Chain struct {
	target Func
	arity  int
	args   *argList
	n      int

	pending bool
	value   any
	err     error
}

// Curry returns the first step of a curry chain over target. The chain calls
// target as soon as it holds at least arity arguments.
func Curry(arity int, target Func) Chain {
	return Chain{target: target, arity: arity, pending: true}
}

// Call appends args to the arguments collected so far. When the total reaches
// the chain's arity the target is invoked with every collected argument,
// including any excess from this call, and a resolved chain is returned.
// Otherwise the next unresolved step is returned.
func (c Chain) Call(args ...any) Chain {
	if !c.pending {
		return Chain{err: errors.Wrapf(ErrResolved, "call with %d argument(s)", len(args))}
	}
	next := Chain{
		target:  c.target,
		arity:   c.arity,
		args:    c.args.push(args),
		n:       c.n + len(args),
		pending: true,
	}
	if next.n < next.arity {
		return next
	}
	v, err := c.target(next.args.slice(next.n)...)
	return Chain{target: c.target, arity: c.arity, args: next.args, n: next.n, value: v, err: err}
}

// Done reports whether the target has been invoked.
func (c Chain) Done() bool {
	return !c.pending
}

// Value returns the target's result and error once the chain is resolved.
func (c Chain) Value() (any, error) {
	if c.pending {
		return nil, errors.Wrapf(ErrIncomplete, "have %d of %d", c.n, c.arity)
	}
	return c.value, c.err
}

// Arity returns the number of arguments the chain waits for.
func (c Chain) Arity() int { return c.arity }

// Len returns the number of arguments collected so far.
func (c Chain) Len() int { return c.n }

// Remaining returns how many more arguments are needed, or 0 once resolved.
func (c Chain) Remaining() int {
	if !c.pending || c.n >= c.arity {
		return 0
	}
	return c.arity - c.n
}

// Args returns a copy of the collected arguments in call order.
func (c Chain) Args() []any {
	return c.args.slice(c.n)
}

// String implements fmt.Stringer.
func (c Chain) String() string {
	if c.pending {
		return fmt.Sprintf("curry(%d)[%s]", c.arity, formatArgs(c.Args()))
	}
	if c.err != nil {
		return fmt.Sprintf("curry(%d)[%s] -> error: %v", c.arity, formatArgs(c.Args()), c.err)
	}
	return fmt.Sprintf("curry(%d)[%s] -> %v", c.arity, formatArgs(c.Args()), c.value)
}

// CurriedFunc is the call-by-call view of a Chain. Each call returns either
// the target's result, once enough arguments have been collected, or the next
// CurriedFunc.
//
// Example:
//
//	f := CurryFunc(2, sum)
//	next, _ := f(1)
//	v, _ := next.(CurriedFunc)(2) // 3
type CurriedFunc func(args ...any) (any, error)

// Func returns the call-by-call view of c.
func (c Chain) Func() CurriedFunc {
	return func(args ...any) (any, error) {
		next := c.Call(args...)
		if next.pending {
			return next.Func(), nil
		}
		return next.value, next.err
	}
}

// CurryFunc is shorthand for Curry(arity, target).Func().
func CurryFunc(arity int, target Func) CurriedFunc {
	return Curry(arity, target).Func()
}
