package guard

import (
	"errors"

	"github.com/ib-77/bailout/pkg/rop"
)

// ErrExitClosed is the panic value raised when an Exit is used after its scope returned.
var ErrExitClosed = errors.New("guard: exit used outside of its scope")

// ErrNilBail is returned by Do when the body bailed with a nil error, typed or untyped.
var ErrNilBail = errors.New("guard: bailed with a nil error")

// Exit is the handle a scope body uses to leave the scope with a failure of type E.
type Exit[E any] struct {
	closed bool
}

// bailout travels up the stack from Bail to the Run that owns exit.
type bailout[E any] struct {
	exit *Exit[E]
	err  E
}

// Run executes body. If body bails, Run returns the failure it bailed with;
// otherwise it returns whatever body returned.
func Run[V, E any](body func(x *Exit[E]) rop.Result[V, E]) (out rop.Result[V, E]) {
	x := &Exit[E]{}
	defer func() {
		x.closed = true
		if r := recover(); r != nil {
			b, ok := r.(*bailout[E])
			if !ok || b.exit != x {
				panic(r)
			}
			out = rop.Fail[V](b.err)
		}
	}()
	return body(x)
}

// Do is Run for functions in (value, error) form. A bail always yields a
// non-nil error; a nil one is reported as ErrNilBail.
func Do[V any](body func(x *Exit[error]) (V, error)) (V, error) {
	res := Run(func(x *Exit[error]) rop.Result[V, error] {
		v, err := body(x)
		return rop.Of(v, err)
	})
	if res.IsFailure() && rop.IsNil(res.Err()) {
		return res.Result(), ErrNilBail
	}
	return res.Result(), res.Err()
}

// Bail leaves the scope with err. It never returns.
func (x *Exit[E]) Bail(err E) {
	if x.closed {
		panic(ErrExitClosed)
	}
	panic(&bailout[E]{exit: x, err: err})
}

// Guard bails with err unless cond holds.
func (x *Exit[E]) Guard(cond bool, err E) {
	if !cond {
		x.Bail(err)
	}
}

// GuardNot bails with err when cond holds.
func (x *Exit[E]) GuardNot(cond bool, err E) {
	if cond {
		x.Bail(err)
	}
}

// GuardFunc is Guard with a lazily built failure; err is only called when the guard triggers.
func (x *Exit[E]) GuardFunc(cond bool, err func() E) {
	if !cond {
		x.Bail(err())
	}
}

func (x *Exit[E]) GuardNotFunc(cond bool, err func() E) {
	if cond {
		x.Bail(err())
	}
}

// EnsureBail is an alias of Guard.
func (x *Exit[E]) EnsureBail(cond bool, err E) {
	x.Guard(cond, err)
}

// EnsureBailNot is an alias of GuardNot.
func (x *Exit[E]) EnsureBailNot(cond bool, err E) {
	x.GuardNot(cond, err)
}
