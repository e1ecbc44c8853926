/*
Package purecurry provides currying and partial application for Go functions.

# Overview

Purecurry turns a function that needs N arguments into a chain of steps.
Each step takes any number of arguments, adds them to the ones collected so
far, and either returns the next step or, once at least N arguments are
present, calls the function with all of them.

# Quick Example

	sum := pc.Func(func(args ...any) (any, error) {
	    total := 0
	    for _, a := range args {
	        total += a.(int)
	    }
	    return total, nil
	})

	add3 := pc.Curry(3, sum)

	add3.Call(1).Call(2).Call(3).Value() // 6, nil
	add3.Call(1, 2).Call(3).Value()      // 6, nil
	add3.Call(1, 2, 3).Value()           // 6, nil

# Core Concepts

Chains are immutable. Calling a step never changes it, so one step can be
the starting point for many continuations:

	add10 := add3.Call(10)
	add10.Call(1, 2).Value() // 13
	add10.Call(5, 5).Value() // 20

Arity is a threshold, not an exact count. The step that reaches it passes
every collected argument to the target, excess included:

	pc.Curry(2, sum).Call(1, 2, 3).Value() // 6

An arity of zero resolves on the first call, even with no arguments.

Errors belong to the target. A chain forwards whatever the target returns
when it is finally called. The only errors of its own are ErrIncomplete,
from asking an unresolved chain for its value, and ErrResolved, from calling
a chain that already resolved.

# Available Types

  - Func: a target over []any with Call, Apply, Bind, Compose, Tap,
    WithLogging and Recover
  - Chain: one step of a curry chain
  - CurriedFunc: call-by-call view of a Chain, returning either the result
    or the next CurriedFunc

# Existing Functions

FromFunc adapts an ordinary Go function through reflection and reports its
arity, so it does not have to be spelled out:

	chain := pc.MustCurry(func(a, b, c int) int { return a + b + c })
	chain.Call(1).Call(2, 3).Value() // 6, nil

When the arity is known at compile time, Curry2, Curry3 and Curry4 give a
statically typed chain instead:

	add := pc.Curry3(func(a, b, c int) int { return a + b + c })
	add(1)(2)(3) // 6

# Package Import

	import pc "github.com/Pure-Company/purecurry"
*/
package purecurry
