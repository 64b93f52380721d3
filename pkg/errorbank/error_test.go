package errorbank

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"google.golang.org/grpc/codes"
)

func TestStatusCodeByKind(t *testing.T) {
	cases := []struct {
		err  *AppError
		want int
	}{
		{BadRequest("order_number is required"), http.StatusBadRequest},
		{NotFound("no such order"), http.StatusNotFound},
		{Conflict("number already taken"), http.StatusConflict},
		{Unprocessable("empty order"), http.StatusUnprocessableEntity},
		{Internal("store unavailable"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := tc.err.StatusCode(); got != tc.want {
			t.Fatalf("kind %s: status %d, want %d", tc.err.Kind(), got, tc.want)
		}
	}
	var nilErr *AppError
	if got := nilErr.StatusCode(); got != http.StatusInternalServerError {
		t.Fatalf("nil error status %d, want 500", got)
	}
}

func TestGRPCCodeByKind(t *testing.T) {
	if got := BadRequest("bad").GRPCCode(); got != codes.InvalidArgument {
		t.Fatalf("bad_request mapped to %v", got)
	}
	if got := Internal("boom").GRPCCode(); got != codes.Internal {
		t.Fatalf("internal mapped to %v", got)
	}
}

func TestFromWrapsUnknownErrors(t *testing.T) {
	cause := errors.New("connection refused")
	appErr := From(fmt.Errorf("query orders: %w", cause))

	if appErr.Kind() != KindInternal {
		t.Fatalf("unexpected kind %s", appErr.Kind())
	}
	if appErr.Message() != "unexpected server error" {
		t.Fatalf("unexpected message %q", appErr.Message())
	}
	if !errors.Is(appErr, cause) {
		t.Fatal("cause not reachable via errors.Is")
	}
}

func TestFromPassesAppErrorsThrough(t *testing.T) {
	orig := BadRequest("quantity must be positive")
	wrapped := fmt.Errorf("create order: %w", orig)

	if got := From(wrapped); got != orig {
		t.Fatalf("expected the original AppError, got %v", got)
	}
	if From(nil) != nil {
		t.Fatal("From(nil) should be nil")
	}
}

func TestErrorStringIncludesCause(t *testing.T) {
	cause := errors.New("timeout")
	err := Internal("store unavailable", WithCause(cause))
	if err.Error() != "store unavailable: timeout" {
		t.Fatalf("unexpected error string %q", err.Error())
	}
	if err.Unwrap() != cause {
		t.Fatal("Unwrap should return the cause")
	}
}
