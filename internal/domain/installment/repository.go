package installment

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type Repository interface {
	Create(ctx context.Context, i *Installment) error
	Save(ctx context.Context, i *Installment) error
	GetByInstallmentID(ctx context.Context, installmentID string) (*Installment, error)
	// GetByInstallmentIDForUpdate locks the row within the surrounding tx.
	GetByInstallmentIDForUpdate(ctx context.Context, installmentID string) (*Installment, error)
	CountPaidByLoan(ctx context.Context, loanID uint64) (int, error)
	// ListByLoan returns the loan's installments with payment aggregates
	// computed by the store at read time.
	ListByLoan(ctx context.Context, loanID uint64) ([]WithTotals, error)
	// FindPendingDueBefore selects sweep candidates: status=pending with a
	// due date strictly before cutoff.
	FindPendingDueBefore(ctx context.Context, cutoff time.Time) ([]Installment, error)
	// MarkOverdue flips the given pending installments to overdue and
	// reports how many rows actually changed.
	MarkOverdue(ctx context.Context, ids []uint64) (int64, error)
}

// PaymentRepository is append-only; sums are always recomputed from the
// rows, never cached.
type PaymentRepository interface {
	Create(ctx context.Context, p *Payment) error
	SumByInstallment(ctx context.Context, installmentID uint64) (decimal.Decimal, error)
	SumByLoan(ctx context.Context, loanID uint64) (decimal.Decimal, error)
}
