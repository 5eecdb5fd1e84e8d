package uow

import (
	"context"

	"microfin-ledger/internal/domain/disbursement"
	"microfin-ledger/internal/domain/installment"
	"microfin-ledger/internal/domain/loan"
)

// Repos bundles every repository bound to one transaction.
type Repos struct {
	Loans         loan.Repository
	Disbursements disbursement.Repository
	Installments  installment.Repository
	Payments      installment.PaymentRepository
}

// UnitOfWork scopes multi-step writes to a single store transaction:
// fn runs inside it, any error rolls everything back.
type UnitOfWork interface {
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// WithinLoanTx locks the loan row first so concurrent payments against
	// the same loan serialize, then passes it in.
	WithinLoanTx(ctx context.Context, loanID string, fn func(r Repos, l *loan.Loan) error) error
}
