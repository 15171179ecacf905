package apperror

import (
	"errors"
	"fmt"
	"testing"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		err  error
		want Kind
	}{
		{Validation("bad input"), KindValidation},
		{NotFound("missing"), KindNotFound},
		{Forbidden("nope"), KindForbidden},
		{Internal(errors.New("boom")), KindInternal},
		{errors.New("plain"), KindInternal},
		{fmt.Errorf("wrapped: %w", NotFound("missing")), KindNotFound},
	}

	for _, tt := range tests {
		if got := KindOf(tt.err); got != tt.want {
			t.Errorf("KindOf(%v) = %v, want %v", tt.err, got, tt.want)
		}
	}
}

func TestErrorMessage(t *testing.T) {
	if got := Validation("bad input").Error(); got != "bad input" {
		t.Errorf("Error() = %q, want %q", got, "bad input")
	}
	if got := Internal(errors.New("boom")).Error(); got != "boom" {
		t.Errorf("Error() = %q, want %q", got, "boom")
	}
}
