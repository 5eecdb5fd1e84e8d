package repayment

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"microfin-ledger/internal/domain/installment"
	"microfin-ledger/internal/domain/loan"
	"microfin-ledger/internal/domain/uow"
	"microfin-ledger/internal/ledger"
	"microfin-ledger/pkg/clock"
	"microfin-ledger/pkg/id"
)

// Usecase applies incoming payments to installments and keeps the loan
// balance reconstructible from the payment rows alone.
type Usecase struct {
	uow       uow.UnitOfWork
	scheduler *Scheduler
	clk       clock.Clock
}

func NewUsecase(tx uow.UnitOfWork, scheduler *Scheduler, clk clock.Clock) *Usecase {
	return &Usecase{uow: tx, scheduler: scheduler, clk: clk}
}

func validMethod(m string) bool {
	switch installment.Method(m) {
	case installment.MethodMobileMoney, installment.MethodCash, installment.MethodBank, installment.MethodCheque:
		return true
	}
	return false
}

// ApplyPayment records one payment against an installment and recomputes
// installment and loan state from fresh aggregates, all in one transaction.
func (u *Usecase) ApplyPayment(ctx context.Context, installmentID string, in ApplyPaymentInput) (*ReceiptDTO, error) {
	if !in.AmountPaid.IsPositive() {
		return nil, installment.ErrInvalidAmount
	}
	if !validMethod(in.Method) {
		return nil, installment.ErrInvalidMethod
	}

	var dto *ReceiptDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		// Load the installment without its payment history; the aggregate
		// is recomputed below so a stale preload can never be acted on.
		inst, err := r.Installments.GetByInstallmentIDForUpdate(ctx, installmentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return installment.ErrNotFound
			}
			return err
		}
		if inst.Status == installment.StatusPaid {
			return installment.ErrAlreadyPaid
		}

		l, err := r.Loans.GetByIDForUpdate(ctx, inst.LoanID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return loan.ErrNotFound
			}
			return err
		}

		paymentDate := in.PaymentDate
		if paymentDate.IsZero() {
			paymentDate = u.clk.Now()
		}
		p := &installment.Payment{
			PaymentID:     id.New(),
			InstallmentID: inst.ID,
			AmountPaid:    in.AmountPaid,
			Method:        installment.Method(in.Method),
			PaymentDate:   dateOnly(paymentDate),
		}
		if err := r.Payments.Create(ctx, p); err != nil {
			return err
		}

		// Fresh aggregate over this installment's rows; never a cached field.
		totalForInstallment, err := r.Payments.SumByInstallment(ctx, inst.ID)
		if err != nil {
			return err
		}

		// The scheduled amount is immutable; a partial payment only leaves
		// the status pending.
		flipped := false
		if totalForInstallment.GreaterThanOrEqual(inst.Amount) {
			now := dateOnly(u.clk.Now())
			inst.Status = installment.StatusPaid
			inst.DatePaid = &now
			if err := r.Installments.Save(ctx, inst); err != nil {
				return err
			}
			flipped = true
		}

		totalForLoan, err := r.Payments.SumByLoan(ctx, l.ID)
		if err != nil {
			return err
		}
		l.Balance = ledger.Rebalance(l.TotalRepayable, totalForLoan)
		if l.Balance.IsZero() {
			l.Status = loan.StatusFullyPaid
			l.StatusUpdatedAt = u.clk.Now()
		}
		if err := r.Loans.Save(ctx, l); err != nil {
			return err
		}

		var next *installment.Installment
		if flipped && l.Balance.IsPositive() {
			next, err = u.scheduler.GenerateNext(ctx, r, l, inst, l.Balance)
			if err != nil {
				return err
			}
		}

		dto = &ReceiptDTO{
			PaymentID:         p.PaymentID,
			InstallmentID:     inst.InstallmentID,
			InstallmentStatus: string(inst.Status),
			AmountPaid:        p.AmountPaid,
			TotalPaid:         totalForInstallment,
			LoanID:            l.LoanID,
			LoanStatus:        string(l.Status),
			LoanBalance:       l.Balance,
		}
		if next != nil {
			dto.NextInstallmentID = next.InstallmentID
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// ListByLoan exposes the loan's installments with store-computed payment
// aggregates.
func (u *Usecase) ListByLoan(ctx context.Context, loanID string) ([]InstallmentDTO, error) {
	var out []InstallmentDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		l, err := r.Loans.GetByLoanID(ctx, loanID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return loan.ErrNotFound
			}
			return err
		}
		rows, err := r.Installments.ListByLoan(ctx, l.ID)
		if err != nil {
			return err
		}
		out = make([]InstallmentDTO, 0, len(rows))
		for _, row := range rows {
			out = append(out, InstallmentDTO{
				InstallmentID:    row.InstallmentID,
				ClientID:         row.ClientID,
				BranchID:         row.BranchID,
				Amount:           row.Amount,
				DateToBePaid:     row.DateToBePaid,
				DatePaid:         row.DatePaid,
				Status:           string(row.Status),
				PaymentCount:     row.PaymentCount,
				TotalPaid:        row.TotalPaid,
				RemainingBalance: row.RemainingBalance,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
