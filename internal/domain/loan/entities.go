package loan

import (
	"time"

	"github.com/shopspring/decimal"

	"microfin-ledger/internal/domain/shared"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusDisbursed Status = "disbursed"
	StatusFullyPaid Status = "fully_paid"
)

type Type string

const (
	TypeSalary   Type = "salary"
	TypePersonal Type = "personal"
	TypeBusiness Type = "business"
)

var (
	ErrNotFound          = shared.NewNotFound("LoanNotFound", "loan not found")
	ErrNotApproved       = shared.NewPreconditionFailed("LoanNotApproved", "only approved loans can be disbursed")
	ErrNotEditable       = shared.NewPreconditionFailed("LoanNotEditable", "loan can no longer be modified")
	ErrInvalidTransition = shared.NewPreconditionFailed("InvalidTransition", "loan status transition not allowed")
)

type Loan struct {
	ID               uint64          `gorm:"primaryKey;column:id" json:"-"`
	LoanID           string          `gorm:"size:32;uniqueIndex:ux_loans_loan_id" json:"loan_id"`
	ClientID         string          `gorm:"column:client_id;type:char(36);index:idx_loans_client" json:"client_id"`
	BranchID         uint64          `gorm:"column:branch_id;index:idx_loans_branch" json:"branch_id"`
	Type             Type            `gorm:"type:enum('salary','personal','business')" json:"type"`
	Principal        decimal.Decimal `gorm:"type:decimal(15,2)" json:"principal"`
	TenureMonths     int             `gorm:"column:tenure_months" json:"tenure_months"`
	InterestRate     decimal.Decimal `gorm:"column:interest_rate;type:decimal(5,2)" json:"interest_rate"`
	ProcessingFee    decimal.Decimal `gorm:"column:processing_fee;type:decimal(10,2)" json:"processing_fee"`
	TotalRepayable   decimal.Decimal `gorm:"column:total_repayable;type:decimal(15,2)" json:"total_repayable"`
	EMI              decimal.Decimal `gorm:"column:emi;type:decimal(15,2)" json:"emi"`
	Balance          decimal.Decimal `gorm:"type:decimal(15,2)" json:"balance"`
	Status           Status          `gorm:"type:enum('pending','approved','rejected','disbursed','fully_paid');default:'pending'" json:"status"`
	OverdueIncidents int             `gorm:"column:overdue_incidents;default:0" json:"overdue_incidents"`
	StatusUpdatedAt  time.Time       `gorm:"column:status_updated_at;autoCreateTime" json:"status_updated_at"`
	CreatedAt        time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Loan) TableName() string { return "loans" }

// CanTransition reports whether a direct status update is allowed.
// disbursed and fully_paid are driven by the disbursement and repayment
// flows, never by a direct update.
func (l *Loan) CanTransition(next Status) bool {
	switch l.Status {
	case StatusPending:
		return next == StatusApproved || next == StatusRejected
	default:
		return false
	}
}

// Editable reports whether schedule inputs may still be changed.
func (l *Loan) Editable() bool {
	return l.Status == StatusPending || l.Status == StatusApproved
}
