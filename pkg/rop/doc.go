// Package rop defines Result[V, E], the two-variant outcome produced by the
// conditional helpers in solo and guard.
//
// A Result is either a success carrying V or a failure carrying E. E is any
// caller type: a string, an error, a domain enum. No interface is required.
// Use Unit as V when the success carries nothing.
//
// Every Result gets its own id and creation time, so two outcomes are never
// equal with == or a deep comparison. Compare them by variant and payload:
// IsSuccess/IsFailure together with Result and Err, or Get.
package rop
