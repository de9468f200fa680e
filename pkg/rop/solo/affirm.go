package solo

import (
	"github.com/ib-77/bailout/pkg/rop"
)

// Affirm is a success when cond holds and a failure carrying err otherwise.
// It is equivalent to `if !cond { Fail(err) } else { Success(Unit) }`.
func Affirm[E any](cond bool, err E) rop.Result[rop.Unit, E] {
	return AffirmOr(cond, rop.Unit{}, err)
}

// AffirmOr is a success carrying ok when cond holds and a failure carrying err otherwise.
func AffirmOr[V, E any](cond bool, ok V, err E) rop.Result[V, E] {
	if !cond {
		return rop.Fail[V](err)
	}
	return rop.Success[V, E](ok)
}

// AffirmNot is a failure carrying err when cond holds and a success otherwise.
func AffirmNot[E any](cond bool, err E) rop.Result[rop.Unit, E] {
	return Affirm(!cond, err)
}

// AffirmNotOr is a failure carrying err when cond holds and a success carrying ok otherwise.
func AffirmNotOr[V, E any](cond bool, ok V, err E) rop.Result[V, E] {
	return AffirmOr(!cond, ok, err)
}

func AffirmFunc[E any](cond bool, err func() E) rop.Result[rop.Unit, E] {
	return AffirmOrFunc(cond, unit, err)
}

// AffirmOrFunc calls ok when cond holds and err otherwise, never both.
func AffirmOrFunc[V, E any](cond bool, ok func() V, err func() E) rop.Result[V, E] {
	if !cond {
		return rop.Fail[V](err())
	}
	return rop.Success[V, E](ok())
}

func AffirmNotFunc[E any](cond bool, err func() E) rop.Result[rop.Unit, E] {
	return AffirmFunc(!cond, err)
}

func AffirmNotOrFunc[V, E any](cond bool, ok func() V, err func() E) rop.Result[V, E] {
	return AffirmOrFunc(!cond, ok, err)
}

func unit() rop.Unit {
	return rop.Unit{}
}
