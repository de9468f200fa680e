package rop

import "time"

type ResultProvider[V any] interface {
	// Result returns the successful result value
	Result() V
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

// WithError defines an interface for types that hold either a result or a failure value
type WithError[V, E any] interface {
	ResultProvider[V]
	// Err returns the failure value if the outcome failed
	Err() E
	// IsSuccess returns true if the outcome is a success
	IsSuccess() bool
	// IsFailure returns true if the outcome is a failure
	IsFailure() bool
}

var _ WithError[Unit, string] = Result[Unit, string]{}
