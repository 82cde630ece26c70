package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestStatusByKind(t *testing.T) {
	tests := []struct {
		err    error
		status int
		public string
	}{
		{NotFound("customer not found"), http.StatusNotFound, "customer not found"},
		{Validation("email is required"), http.StatusBadRequest, "email is required"},
		{Conflict("user with this email already exists"), http.StatusConflict, "user with this email already exists"},
		{Unauthorized("invalid email or password"), http.StatusUnauthorized, "invalid email or password"},
		{Forbidden("access denied"), http.StatusForbidden, "access denied"},
		{Internal(errors.New("dial tcp: refused")), http.StatusInternalServerError, "internal server error"},
	}
	for _, tt := range tests {
		if got := Status(tt.err); got != tt.status {
			t.Fatalf("Status(%v) = %d, want %d", tt.err, got, tt.status)
		}
		if got := Public(tt.err); got != tt.public {
			t.Fatalf("Public(%v) = %q, want %q", tt.err, got, tt.public)
		}
	}
}

func TestPublicNeverLeaksUnclassified(t *testing.T) {
	err := errors.New("SQL logic error near line 3")
	if got := Public(err); got != "internal server error" {
		t.Fatalf("unclassified error leaked: %q", got)
	}
	if got := Status(err); got != http.StatusInternalServerError {
		t.Fatalf("unclassified error status = %d", got)
	}
}

func TestWrapKeepsCauseOutOfPublic(t *testing.T) {
	cause := errors.New("UNIQUE constraint failed: users.email")
	err := Wrap(KindConflict, "user with this email already exists", cause)
	if !errors.Is(err, cause) {
		t.Fatal("wrapped cause not reachable via errors.Is")
	}
	if Public(err) != "user with this email already exists" {
		t.Fatalf("public message changed: %q", Public(err))
	}
	// The cause stays visible to loggers through Error().
	if want := "user with this email already exists: UNIQUE constraint failed: users.email"; err.Error() != want {
		t.Fatalf("Error() = %q", err.Error())
	}
}

func TestIsKindThroughWrapping(t *testing.T) {
	inner := NotFound("vehicle not found")
	outer := fmt.Errorf("get vehicle: %w", inner)
	if !IsKind(outer, KindNotFound) {
		t.Fatal("IsKind failed through fmt.Errorf wrapping")
	}
	if IsKind(outer, KindConflict) {
		t.Fatal("IsKind matched wrong kind")
	}
}
