package solo

import "github.com/ib-77/bailout/pkg/rop"

// The Ensure names mirror the Affirm family one to one. They always produce a
// value; the early-return counterparts live in package guard as EnsureBail.

func Ensure[E any](cond bool, err E) rop.Result[rop.Unit, E] {
	return Affirm(cond, err)
}

func EnsureOr[V, E any](cond bool, ok V, err E) rop.Result[V, E] {
	return AffirmOr(cond, ok, err)
}

func EnsureNot[E any](cond bool, err E) rop.Result[rop.Unit, E] {
	return AffirmNot(cond, err)
}

func EnsureNotOr[V, E any](cond bool, ok V, err E) rop.Result[V, E] {
	return AffirmNotOr(cond, ok, err)
}
