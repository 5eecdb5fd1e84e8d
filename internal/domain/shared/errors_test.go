package shared

import (
	"errors"
	"fmt"
	"testing"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"validation", NewValidation("BadTenure", "tenure must be positive"), KindValidation},
		{"not found", NewNotFound("LoanNotFound", "loan not found"), KindNotFound},
		{"precondition", NewPreconditionFailed("NotApproved", "loan is not approved"), KindPreconditionFailed},
		{"conflict", NewConflict("AlreadyDisbursed", "already disbursed"), KindConflict},
		{"wrapped", fmt.Errorf("usecase: %w", NewConflict("AlreadyPaid", "already paid")), KindConflict},
		{"plain error", errors.New("boom"), KindInternal},
		{"internal sentinel", ErrInternal, KindInternal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KindOf(tt.err); got != tt.want {
				t.Fatalf("KindOf = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIsMatchesByCode(t *testing.T) {
	sentinel := NewConflict("AlreadyPaid", "installment is already fully paid")
	wrapped := fmt.Errorf("apply payment: %w", NewConflict("AlreadyPaid", "other message"))
	if !errors.Is(wrapped, sentinel) {
		t.Fatal("expected errors.Is to match DomainErrors by code")
	}
	other := NewConflict("AlreadyDisbursed", "x")
	if errors.Is(other, sentinel) {
		t.Fatal("different codes must not match")
	}
}
