package repayment

import (
	"context"
	"time"

	"microfin-ledger/internal/domain/installment"
	"microfin-ledger/internal/domain/loan"
	"microfin-ledger/internal/domain/uow"
	"microfin-ledger/internal/ledger"
	"microfin-ledger/pkg/clock"
	"microfin-ledger/pkg/id"

	"github.com/shopspring/decimal"
)

// Scheduler derives installment records from loan state. Its methods take
// uow.Repos so they always run inside the caller's transaction.
type Scheduler struct{ clk clock.Clock }

func NewScheduler(clk clock.Clock) *Scheduler { return &Scheduler{clk: clk} }

func dateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// SeedFirstInstallment creates the loan's first obligation, due exactly one
// calendar month after finalization, for the scheduled EMI.
func (s *Scheduler) SeedFirstInstallment(ctx context.Context, r uow.Repos, l *loan.Loan) (*installment.Installment, error) {
	inst := &installment.Installment{
		InstallmentID: id.New(),
		LoanID:        l.ID,
		ClientID:      l.ClientID,
		BranchID:      l.BranchID,
		Amount:        l.EMI,
		DateToBePaid:  dateOnly(s.clk.Now().AddDate(0, 1, 0)),
		Status:        installment.StatusPending,
	}
	if err := r.Installments.Create(ctx, inst); err != nil {
		return nil, err
	}
	return inst, nil
}

// GenerateNext creates the follow-up obligation after lastPaid was settled
// with remainingBalance still owed. The amount is respread over the months
// left, so overpayments shrink later installments on their own; once the
// tenure is exhausted a final settle installment covers the balance exactly.
func (s *Scheduler) GenerateNext(ctx context.Context, r uow.Repos, l *loan.Loan, lastPaid *installment.Installment, remainingBalance decimal.Decimal) (*installment.Installment, error) {
	paidCount, err := r.Installments.CountPaidByLoan(ctx, l.ID)
	if err != nil {
		return nil, err
	}
	remainingMonths := l.TenureMonths - paidCount

	inst := &installment.Installment{
		InstallmentID: id.New(),
		LoanID:        l.ID,
		ClientID:      l.ClientID,
		BranchID:      l.BranchID,
		Amount:        ledger.NextAmount(remainingBalance, remainingMonths),
		DateToBePaid:  dateOnly(lastPaid.DateToBePaid.AddDate(0, 1, 0)),
		Status:        installment.StatusPending,
	}
	if err := r.Installments.Create(ctx, inst); err != nil {
		return nil, err
	}
	return inst, nil
}
