package loanmock

import (
	"context"

	domain "microfin-ledger/internal/domain/loan"
)

// Repo is a function-backed mock satisfying loan.Repository. Fill in only
// the fields a test needs; unfilled getters fail loudly.
type Repo struct {
	CreateFn                    func(ctx context.Context, l *domain.Loan) error
	SaveFn                      func(ctx context.Context, l *domain.Loan) error
	GetByLoanIDFn               func(ctx context.Context, loanID string) (*domain.Loan, error)
	GetByLoanIDForUpdateFn      func(ctx context.Context, loanID string) (*domain.Loan, error)
	GetByIDFn                   func(ctx context.Context, id uint64) (*domain.Loan, error)
	GetByIDForUpdateFn          func(ctx context.Context, id uint64) (*domain.Loan, error)
	ListFn                      func(ctx context.Context, branchID uint64, page, pageSize int) ([]domain.Loan, int64, error)
	DeleteFn                    func(ctx context.Context, id uint64) error
	IncrementOverdueIncidentsFn func(ctx context.Context, id uint64, by int) error
}

var _ domain.Repository = (*Repo)(nil)

func (m *Repo) Create(ctx context.Context, l *domain.Loan) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, l)
	}
	return nil
}

func (m *Repo) Save(ctx context.Context, l *domain.Loan) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, l)
	}
	return nil
}

func (m *Repo) GetByLoanID(ctx context.Context, loanID string) (*domain.Loan, error) {
	if m.GetByLoanIDFn != nil {
		return m.GetByLoanIDFn(ctx, loanID)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByLoanIDForUpdate(ctx context.Context, loanID string) (*domain.Loan, error) {
	if m.GetByLoanIDForUpdateFn != nil {
		return m.GetByLoanIDForUpdateFn(ctx, loanID)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.Loan, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByIDForUpdate(ctx context.Context, id uint64) (*domain.Loan, error) {
	if m.GetByIDForUpdateFn != nil {
		return m.GetByIDForUpdateFn(ctx, id)
	}
	return nil, context.Canceled
}

func (m *Repo) List(ctx context.Context, branchID uint64, page, pageSize int) ([]domain.Loan, int64, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, branchID, page, pageSize)
	}
	return nil, 0, context.Canceled
}

func (m *Repo) Delete(ctx context.Context, id uint64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}

func (m *Repo) IncrementOverdueIncidents(ctx context.Context, id uint64, by int) error {
	if m.IncrementOverdueIncidentsFn != nil {
		return m.IncrementOverdueIncidentsFn(ctx, id, by)
	}
	return nil
}
