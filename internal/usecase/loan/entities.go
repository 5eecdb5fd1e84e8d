package loan

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreateLoanInput struct {
	ClientID      string          `json:"client_id"`
	BranchID      uint64          `json:"branch_id"`
	Type          string          `json:"type"`
	Principal     decimal.Decimal `json:"principal"`
	TenureMonths  int             `json:"tenure_months"`
	InterestRate  decimal.Decimal `json:"interest_rate"`
	ProcessingFee decimal.Decimal `json:"processing_fee"`
}

// UpdateLoanInput uses pointers so absent fields stay untouched. Schedule
// inputs may only change pre-disbursement; Status only pending→approved or
// pending→rejected.
type UpdateLoanInput struct {
	Type          *string          `json:"type,omitempty"`
	Principal     *decimal.Decimal `json:"principal,omitempty"`
	TenureMonths  *int             `json:"tenure_months,omitempty"`
	InterestRate  *decimal.Decimal `json:"interest_rate,omitempty"`
	ProcessingFee *decimal.Decimal `json:"processing_fee,omitempty"`
	Status        *string          `json:"status,omitempty"`
}

type LoanDTO struct {
	LoanID           string          `json:"loan_id"`
	ClientID         string          `json:"client_id"`
	BranchID         uint64          `json:"branch_id"`
	Type             string          `json:"type"`
	Principal        decimal.Decimal `json:"principal"`
	TenureMonths     int             `json:"tenure_months"`
	InterestRate     decimal.Decimal `json:"interest_rate"`
	ProcessingFee    decimal.Decimal `json:"processing_fee"`
	TotalRepayable   decimal.Decimal `json:"total_repayable"`
	EMI              decimal.Decimal `json:"emi"`
	Balance          decimal.Decimal `json:"balance"`
	Status           string          `json:"status"`
	OverdueIncidents int             `json:"overdue_incidents"`
	CreatedAt        time.Time       `json:"created_at"`
}

type LoanPage struct {
	Data       []LoanDTO `json:"data"`
	Total      int64     `json:"total"`
	Page       int       `json:"page"`
	PageSize   int       `json:"page_size"`
	TotalPages int       `json:"total_pages"`
}
