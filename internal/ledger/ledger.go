// Package ledger holds the pure schedule arithmetic for the loan book.
// No I/O happens here; persistence and transactions live in the usecases.
package ledger

import (
	"github.com/shopspring/decimal"

	"microfin-ledger/internal/domain/shared"
)

var (
	ErrInvalidTenure     = shared.NewValidation("InvalidTenure", "tenure must be a positive number of months")
	ErrNegativePrincipal = shared.NewValidation("NegativePrincipal", "principal must not be negative")
	ErrNegativeRate      = shared.NewValidation("NegativeRate", "interest rate must not be negative")
	ErrNegativeFee       = shared.NewValidation("NegativeFee", "processing fee must not be negative")
)

var (
	hundred      = decimal.NewFromInt(100)
	monthsInYear = decimal.NewFromInt(12)
)

// Schedule is the derived repayment shape for one loan.
type Schedule struct {
	TotalInterest  decimal.Decimal
	TotalRepayable decimal.Decimal
	EMI            decimal.Decimal
}

// ComputeSchedule derives the flat-interest schedule:
//
//	totalInterest  = principal * (rate/100) * (tenure/12)
//	totalRepayable = principal + totalInterest + fee
//	emi            = totalRepayable / tenure, rounded half-up to 2 dp
//
// rate is the annual percentage, tenure is in months.
func ComputeSchedule(principal, rate decimal.Decimal, tenureMonths int, fee decimal.Decimal) (Schedule, error) {
	switch {
	case tenureMonths <= 0:
		return Schedule{}, ErrInvalidTenure
	case principal.IsNegative():
		return Schedule{}, ErrNegativePrincipal
	case rate.IsNegative():
		return Schedule{}, ErrNegativeRate
	case fee.IsNegative():
		return Schedule{}, ErrNegativeFee
	}

	tenure := decimal.NewFromInt(int64(tenureMonths))
	totalInterest := principal.Mul(rate).Div(hundred).Mul(tenure).Div(monthsInYear)
	totalRepayable := principal.Add(totalInterest).Add(fee)
	emi := totalRepayable.Div(tenure).Round(2)

	return Schedule{
		TotalInterest:  totalInterest,
		TotalRepayable: totalRepayable,
		EMI:            emi,
	}, nil
}

// NextAmount spreads the remaining balance over the remaining months,
// rounded half-up to 2 dp. With no months left (overpayment edge) the
// final settle installment covers the balance exactly.
func NextAmount(remainingBalance decimal.Decimal, remainingMonths int) decimal.Decimal {
	if remainingMonths <= 0 {
		return remainingBalance
	}
	return remainingBalance.Div(decimal.NewFromInt(int64(remainingMonths))).Round(2)
}

// Rebalance clamps a recomputed loan balance at zero.
func Rebalance(totalRepayable, totalPaid decimal.Decimal) decimal.Decimal {
	b := totalRepayable.Sub(totalPaid)
	if b.IsNegative() {
		return decimal.Zero
	}
	return b
}
