package faults

import (
	"errors"
	"testing"
)

func TestIsCategory(t *testing.T) {
	t.Parallel()

	err := NewTypedError(ValidationError, "view name is required", nil)
	if !IsCategory(err, ValidationError) {
		t.Fatalf("expected validation category match")
	}
	if IsCategory(err, TransportError) {
		t.Fatalf("expected transport category mismatch")
	}

	wrapped := errors.New("wrap: " + err.Error())
	if IsCategory(wrapped, ValidationError) {
		t.Fatalf("plain wrapped string error must not match typed category")
	}

	joined := errors.Join(err, errors.New("other"))
	if !IsCategory(joined, ValidationError) {
		t.Fatalf("expected category match through errors.Join")
	}
}

func TestTypedErrorMessage(t *testing.T) {
	t.Parallel()

	cause := errors.New("exit status 255")
	err := NewTypedError(TransportError, "jenkins cli call failed", cause)
	if got := err.Error(); got != "jenkins cli call failed: exit status 255" {
		t.Fatalf("unexpected error text %q", got)
	}

	bare := NewTypedError(PreconditionError, "", nil)
	if got := bare.Error(); got != string(PreconditionError) {
		t.Fatalf("expected category fallback, got %q", got)
	}
}
