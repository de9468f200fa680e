package guard_test

import (
	"fmt"

	"github.com/ib-77/bailout/pkg/rop"
	"github.com/ib-77/bailout/pkg/rop/guard"
	"github.com/ib-77/bailout/pkg/rop/solo"
)

type port int

func parsePort(n int) rop.Result[port, string] {
	return guard.Run(func(x *guard.Exit[string]) rop.Result[port, string] {
		x.Guard(n > 0, "port must be positive")
		x.GuardNot(n > 65535, "port out of range")
		return rop.Success[port, string](port(n))
	})
}

func ExampleRun() {
	for _, n := range []int{8080, 0, 70000} {
		res := parsePort(n)
		if res.IsFailure() {
			fmt.Println("error:", res.Err())
			continue
		}
		fmt.Println("port:", res.Result())
	}
	// Output:
	// port: 8080
	// error: port must be positive
	// error: port out of range
}

func ExampleExit_Bail() {
	res := guard.Run(func(x *guard.Exit[string]) rop.Result[rop.Unit, string] {
		x.Bail("error")
		return rop.Success[rop.Unit, string](rop.Unit{})
	})
	fmt.Println(res.IsFailure(), res.Err())
	// Output: true error
}

// Without a scope, a value-producing check is forwarded by hand.
func Example_convention() {
	half := func(n int) rop.Result[int, string] {
		if r := solo.Affirm(n%2 == 0, "odd"); r.IsFailure() {
			return rop.FailFrom[int](r)
		}
		return rop.Success[int, string](n / 2)
	}

	fmt.Println(half(4).Result())
	fmt.Println(half(3).Err())
	// Output:
	// 2
	// odd
}
