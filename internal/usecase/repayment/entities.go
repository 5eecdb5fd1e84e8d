package repayment

import (
	"time"

	"github.com/shopspring/decimal"
)

type ApplyPaymentInput struct {
	AmountPaid  decimal.Decimal `json:"amount_paid"`
	Method      string          `json:"method"`
	PaymentDate time.Time       `json:"payment_date"`
}

// ReceiptDTO reports the ledger state right after one payment committed.
type ReceiptDTO struct {
	PaymentID         string          `json:"payment_id"`
	InstallmentID     string          `json:"installment_id"`
	InstallmentStatus string          `json:"installment_status"`
	AmountPaid        decimal.Decimal `json:"amount_paid"`
	TotalPaid         decimal.Decimal `json:"total_paid"`
	LoanID            string          `json:"loan_id"`
	LoanStatus        string          `json:"loan_status"`
	LoanBalance       decimal.Decimal `json:"loan_balance"`
	NextInstallmentID string          `json:"next_installment_id,omitempty"`
}

type InstallmentDTO struct {
	InstallmentID    string          `json:"installment_id"`
	ClientID         string          `json:"client_id"`
	BranchID         uint64          `json:"branch_id"`
	Amount           decimal.Decimal `json:"amount"`
	DateToBePaid     time.Time       `json:"date_to_be_paid"`
	DatePaid         *time.Time      `json:"date_paid,omitempty"`
	Status           string          `json:"status"`
	PaymentCount     int             `json:"payment_count"`
	TotalPaid        decimal.Decimal `json:"total_paid"`
	RemainingBalance decimal.Decimal `json:"remaining_balance"`
}
