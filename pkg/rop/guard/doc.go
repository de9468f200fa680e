// Package guard provides the early-return helpers: Bail, Guard and GuardNot.
//
// Go functions cannot return from their caller, so the function boundary that
// a guard leaves is made explicit with Run (or Do for (value, error)
// functions). Run hands the body an *Exit bound to the body's failure type;
// every guard call goes through it:
//
//	res := guard.Run(func(x *guard.Exit[string]) rop.Result[int, string] {
//		x.Guard(n >= 0, "negative")
//		x.GuardNot(n > 100, "too large")
//		return rop.Success[int, string](n * 2)
//	})
//
// A triggered guard stops the body immediately and Run returns the failure.
// Statements after it never run. A guard that does not trigger falls
// through and the body continues.
//
// Bails are routed to the Run that created the Exit, so scopes nest. Panics
// that are not bails pass through Run untouched. An Exit must only be used on
// the goroutine executing its body, and only while the body is running.
package guard
