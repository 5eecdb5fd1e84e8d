package uowmock

import (
	"context"
	"errors"

	"microfin-ledger/internal/domain/loan"
	"microfin-ledger/internal/domain/uow"
)

var errUnimplemented = errors.New("uowmock: function not set")

// UoW is a function-backed mock satisfying uow.UnitOfWork. When the
// corresponding Fn is nil, fn runs directly against Repos so most tests
// only need to fill the repository mocks.
type UoW struct {
	Repos uow.Repos

	WithinTxFn     func(ctx context.Context, fn func(r uow.Repos) error) error
	WithinLoanTxFn func(ctx context.Context, loanID string, fn func(r uow.Repos, l *loan.Loan) error) error
}

var _ uow.UnitOfWork = (*UoW)(nil)

func (m *UoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	if m.WithinTxFn != nil {
		return m.WithinTxFn(ctx, fn)
	}
	return fn(m.Repos)
}

func (m *UoW) WithinLoanTx(ctx context.Context, loanID string, fn func(r uow.Repos, l *loan.Loan) error) error {
	if m.WithinLoanTxFn != nil {
		return m.WithinLoanTxFn(ctx, loanID, fn)
	}
	if m.Repos.Loans == nil {
		return errUnimplemented
	}
	l, err := m.Repos.Loans.GetByLoanIDForUpdate(ctx, loanID)
	if err != nil {
		return err
	}
	return fn(m.Repos, l)
}
