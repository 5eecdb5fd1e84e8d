package installmentmock

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	domain "microfin-ledger/internal/domain/installment"
)

// Repo is a function-backed mock satisfying installment.Repository.
type Repo struct {
	CreateFn                      func(ctx context.Context, i *domain.Installment) error
	SaveFn                        func(ctx context.Context, i *domain.Installment) error
	GetByInstallmentIDFn          func(ctx context.Context, installmentID string) (*domain.Installment, error)
	GetByInstallmentIDForUpdateFn func(ctx context.Context, installmentID string) (*domain.Installment, error)
	CountPaidByLoanFn             func(ctx context.Context, loanID uint64) (int, error)
	ListByLoanFn                  func(ctx context.Context, loanID uint64) ([]domain.WithTotals, error)
	FindPendingDueBeforeFn        func(ctx context.Context, cutoff time.Time) ([]domain.Installment, error)
	MarkOverdueFn                 func(ctx context.Context, ids []uint64) (int64, error)
}

var _ domain.Repository = (*Repo)(nil)

func (m *Repo) Create(ctx context.Context, i *domain.Installment) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, i)
	}
	return nil
}

func (m *Repo) Save(ctx context.Context, i *domain.Installment) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, i)
	}
	return nil
}

func (m *Repo) GetByInstallmentID(ctx context.Context, installmentID string) (*domain.Installment, error) {
	if m.GetByInstallmentIDFn != nil {
		return m.GetByInstallmentIDFn(ctx, installmentID)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByInstallmentIDForUpdate(ctx context.Context, installmentID string) (*domain.Installment, error) {
	if m.GetByInstallmentIDForUpdateFn != nil {
		return m.GetByInstallmentIDForUpdateFn(ctx, installmentID)
	}
	return nil, context.Canceled
}

func (m *Repo) CountPaidByLoan(ctx context.Context, loanID uint64) (int, error) {
	if m.CountPaidByLoanFn != nil {
		return m.CountPaidByLoanFn(ctx, loanID)
	}
	return 0, context.Canceled
}

func (m *Repo) ListByLoan(ctx context.Context, loanID uint64) ([]domain.WithTotals, error) {
	if m.ListByLoanFn != nil {
		return m.ListByLoanFn(ctx, loanID)
	}
	return nil, context.Canceled
}

func (m *Repo) FindPendingDueBefore(ctx context.Context, cutoff time.Time) ([]domain.Installment, error) {
	if m.FindPendingDueBeforeFn != nil {
		return m.FindPendingDueBeforeFn(ctx, cutoff)
	}
	return nil, context.Canceled
}

func (m *Repo) MarkOverdue(ctx context.Context, ids []uint64) (int64, error) {
	if m.MarkOverdueFn != nil {
		return m.MarkOverdueFn(ctx, ids)
	}
	return 0, context.Canceled
}

// PaymentRepo is a function-backed mock satisfying
// installment.PaymentRepository.
type PaymentRepo struct {
	CreateFn           func(ctx context.Context, p *domain.Payment) error
	SumByInstallmentFn func(ctx context.Context, installmentID uint64) (decimal.Decimal, error)
	SumByLoanFn        func(ctx context.Context, loanID uint64) (decimal.Decimal, error)
}

var _ domain.PaymentRepository = (*PaymentRepo)(nil)

func (m *PaymentRepo) Create(ctx context.Context, p *domain.Payment) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, p)
	}
	return nil
}

func (m *PaymentRepo) SumByInstallment(ctx context.Context, installmentID uint64) (decimal.Decimal, error) {
	if m.SumByInstallmentFn != nil {
		return m.SumByInstallmentFn(ctx, installmentID)
	}
	return decimal.Zero, context.Canceled
}

func (m *PaymentRepo) SumByLoan(ctx context.Context, loanID uint64) (decimal.Decimal, error) {
	if m.SumByLoanFn != nil {
		return m.SumByLoanFn(ctx, loanID)
	}
	return decimal.Zero, context.Canceled
}
