// Package solo contains the value-producing conditional helpers. Each one
// tests a condition and evaluates to a rop.Result; none of them leaves the
// calling function.
//
// Highlights:
// - Affirm/AffirmOr: success when the condition holds, failure otherwise
// - AffirmNot/AffirmNotOr: the same with the condition negated
// - Ensure/EnsureOr/EnsureNot/EnsureNotOr: aliases of the Affirm family
// - *Func variants: take the payloads as functions and call only the selected one
// - Finally: reduce a Result to a concrete value via success/failure handlers
//
// Arguments of the plain forms are evaluated by Go before the call, so both
// payloads are always computed. Use the *Func variants when building the
// untaken payload is expensive or has side effects.
package solo
