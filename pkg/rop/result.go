package rop

import (
	"time"

	"github.com/google/uuid"
)

// Unit is the success payload of outcomes that carry no value.
type Unit struct{}

type Result[V, E any] struct {
	id        uuid.UUID
	createdAt time.Time
	result    V
	err       E
	isSuccess bool
	isFailure bool
}

func Success[V, E any](r V) Result[V, E] {
	return Result[V, E]{
		result:    r,
		isSuccess: true,
		isFailure: false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Fail[V, E any](err E) Result[V, E] {
	return Result[V, E]{
		err:       err,
		isSuccess: false,
		isFailure: true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// FailFrom carries the failure of from over to a result with another success type.
// A successful from yields an empty result.
func FailFrom[Out, In, E any](from Result[In, E]) Result[Out, E] {
	return Result[Out, E]{
		err:       from.err,
		isSuccess: false,
		isFailure: from.isFailure,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

func (r Result[V, E]) Result() V {
	return r.result
}

func (r Result[V, E]) Err() E {
	return r.err
}

// Get returns the success payload, the failure payload and whether r is a success.
func (r Result[V, E]) Get() (V, E, bool) {
	return r.result, r.err, r.isSuccess
}

func (r Result[V, E]) IsSuccess() bool {
	return r.isSuccess
}

func (r Result[V, E]) IsFailure() bool {
	return r.isFailure
}

func (r Result[V, E]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result[V, E]) IsEmpty() bool {
	return !r.isSuccess && !r.isFailure
}

func (r Result[V, E]) Id() uuid.UUID {
	return r.id
}
