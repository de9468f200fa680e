package solo

import (
	"strconv"
	"testing"
	"time"

	"github.com/ib-77/bailout/pkg/rop"
)

func TestFinally_Success(t *testing.T) {
	t.Parallel()

	out := Finally(AffirmOr(true, 42, "bad"),
		func(v int) string { return strconv.Itoa(v) },
		func(err string) string { return "failed: " + err })

	if out != "42" {
		t.Fatalf("expected 42, got %q", out)
	}
}

func TestFinally_Failure(t *testing.T) {
	t.Parallel()

	called := false
	out := Finally(AffirmOr(false, 42, "bad"),
		func(v int) string {
			called = true
			return strconv.Itoa(v)
		},
		func(err string) string { return "failed: " + err })

	if out != "failed: bad" {
		t.Fatalf("expected failure output, got %q", out)
	}
	if called {
		t.Fatalf("onSuccess should not be called for a failure")
	}
}

func TestFinally_EmptyGoesToFailure(t *testing.T) {
	t.Parallel()

	var empty rop.Result[int, string]
	out := Finally(empty,
		func(v int) string { return "success" },
		func(err string) string { return "failure:" + err })

	if out != "failure:" {
		t.Fatalf("expected zero failure value, got %q", out)
	}
}

// verdict is a hand-written outcome that Finally accepts through rop.WithError.
type verdict struct {
	passed bool
	reason string
}

func (v verdict) Result() bool { return v.passed }
func (v verdict) CreatedAt() time.Time { return time.Time{} }
func (v verdict) Err() string { return v.reason }
func (v verdict) IsSuccess() bool { return v.passed }
func (v verdict) IsFailure() bool { return !v.passed }

func TestFinally_AnyWithError(t *testing.T) {
	t.Parallel()

	var input rop.WithError[bool, string] = verdict{reason: "too late"}
	out := Finally(input,
		func(bool) string { return "passed" },
		func(reason string) string { return "rejected: " + reason })

	if out != "rejected: too late" {
		t.Fatalf("expected rejection, got %q", out)
	}
}
