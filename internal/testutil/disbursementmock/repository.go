package disbursementmock

import (
	"context"

	domain "microfin-ledger/internal/domain/disbursement"
)

// Repo is a function-backed mock satisfying disbursement.Repository.
type Repo struct {
	CreateFn                       func(ctx context.Context, d *domain.Disbursement) error
	SaveFn                         func(ctx context.Context, d *domain.Disbursement) error
	GetByLoanIDFn                  func(ctx context.Context, loanID uint64) (*domain.Disbursement, error)
	GetByDisbursementIDFn          func(ctx context.Context, disbursementID string) (*domain.Disbursement, error)
	GetByDisbursementIDForUpdateFn func(ctx context.Context, disbursementID string) (*domain.Disbursement, error)
	DeleteFn                       func(ctx context.Context, id uint64) error
}

var _ domain.Repository = (*Repo)(nil)

func (m *Repo) Create(ctx context.Context, d *domain.Disbursement) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, d)
	}
	return nil
}

func (m *Repo) Save(ctx context.Context, d *domain.Disbursement) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, d)
	}
	return nil
}

func (m *Repo) GetByLoanID(ctx context.Context, loanID uint64) (*domain.Disbursement, error) {
	if m.GetByLoanIDFn != nil {
		return m.GetByLoanIDFn(ctx, loanID)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByDisbursementID(ctx context.Context, disbursementID string) (*domain.Disbursement, error) {
	if m.GetByDisbursementIDFn != nil {
		return m.GetByDisbursementIDFn(ctx, disbursementID)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByDisbursementIDForUpdate(ctx context.Context, disbursementID string) (*domain.Disbursement, error) {
	if m.GetByDisbursementIDForUpdateFn != nil {
		return m.GetByDisbursementIDForUpdateFn(ctx, disbursementID)
	}
	return nil, context.Canceled
}

func (m *Repo) Delete(ctx context.Context, id uint64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}
