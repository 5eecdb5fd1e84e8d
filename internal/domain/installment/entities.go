package installment

import (
	"time"

	"github.com/shopspring/decimal"

	"microfin-ledger/internal/domain/shared"
)

type Status string

const (
	StatusPending Status = "pending"
	StatusPaid    Status = "paid"
	StatusOverdue Status = "overdue"
)

type Method string

const (
	MethodMobileMoney Method = "mobile-money"
	MethodCash        Method = "cash"
	MethodBank        Method = "bank"
	MethodCheque      Method = "cheque"
)

var (
	ErrNotFound      = shared.NewNotFound("InstallmentNotFound", "installment not found")
	ErrAlreadyPaid   = shared.NewConflict("AlreadyPaid", "installment is already fully paid")
	ErrInvalidAmount = shared.NewValidation("InvalidPaymentAmount", "payment amount must be positive")
	ErrInvalidMethod = shared.NewValidation("InvalidPaymentMethod", "payment method must be mobile-money, cash, bank or cheque")
)

// Installment is one scheduled repayment obligation. Amount always reflects
// the originally scheduled figure; outstanding amounts are derived from the
// payment rows, never stored.
type Installment struct {
	ID            uint64          `gorm:"primaryKey;column:id" json:"-"`
	InstallmentID string          `gorm:"size:32;uniqueIndex:ux_installments_public_id" json:"installment_id"`
	LoanID        uint64          `gorm:"column:loan_id;index:idx_installments_loan" json:"-"`
	ClientID      string          `gorm:"column:client_id;type:char(36)" json:"client_id"`
	BranchID      uint64          `gorm:"column:branch_id;index:idx_installments_branch" json:"branch_id"`
	Amount        decimal.Decimal `gorm:"type:decimal(12,2)" json:"amount"`
	DateToBePaid  time.Time       `gorm:"column:date_to_be_paid;type:date;index:idx_installments_due" json:"date_to_be_paid"`
	DatePaid      *time.Time      `gorm:"column:date_paid;type:date" json:"date_paid,omitempty"`
	Status        Status          `gorm:"type:enum('pending','paid','overdue');default:'pending'" json:"status"`
	CreatedAt     time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Installment) TableName() string { return "installments" }

// Payment is an append-only record of money received against one
// installment. Rows are never updated or deleted.
type Payment struct {
	ID            uint64          `gorm:"primaryKey;column:id" json:"-"`
	PaymentID     string          `gorm:"size:32;uniqueIndex:ux_payments_public_id" json:"payment_id"`
	InstallmentID uint64          `gorm:"column:installment_id;index:idx_payments_installment" json:"-"`
	AmountPaid    decimal.Decimal `gorm:"column:amount_paid;type:decimal(12,2)" json:"amount_paid"`
	Method        Method          `gorm:"type:enum('mobile-money','cash','bank','cheque')" json:"method"`
	PaymentDate   time.Time       `gorm:"column:payment_date;type:date" json:"payment_date"`
	CreatedAt     time.Time       `gorm:"autoCreateTime" json:"created_at"`
}

func (Payment) TableName() string { return "payments" }

// WithTotals decorates an installment with aggregates computed from its
// payment rows at read time.
type WithTotals struct {
	Installment
	PaymentCount     int             `json:"payment_count"`
	TotalPaid        decimal.Decimal `json:"total_paid"`
	RemainingBalance decimal.Decimal `json:"remaining_balance"`
}
