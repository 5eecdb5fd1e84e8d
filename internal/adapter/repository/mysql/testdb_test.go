package mysql

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	loanDomain "microfin-ledger/internal/domain/loan"
)

// --- SQLite-friendly schema only for tests (no ENUM) ---

type loanSQLite struct {
	ID               uint64    `gorm:"primaryKey;column:id"`
	LoanID           string    `gorm:"size:32;column:loan_id"`
	ClientID         string    `gorm:"column:client_id"`
	BranchID         uint64    `gorm:"column:branch_id"`
	Type             string    `gorm:"type:text;column:type"` // ← no enum
	Principal        float64   `gorm:"column:principal"`
	TenureMonths     int       `gorm:"column:tenure_months"`
	InterestRate     float64   `gorm:"column:interest_rate"`
	ProcessingFee    float64   `gorm:"column:processing_fee"`
	TotalRepayable   float64   `gorm:"column:total_repayable"`
	EMI              float64   `gorm:"column:emi"`
	Balance          float64   `gorm:"column:balance"`
	Status           string    `gorm:"type:text;column:status"`
	OverdueIncidents int       `gorm:"column:overdue_incidents"`
	StatusUpdatedAt  time.Time `gorm:"column:status_updated_at"`
	CreatedAt        time.Time `gorm:"column:created_at"`
	UpdatedAt        time.Time `gorm:"column:updated_at"`
}

func (loanSQLite) TableName() string { return "loans" }

type disbursementSQLite struct {
	ID               uint64    `gorm:"primaryKey;column:id"`
	DisbursementID   string    `gorm:"size:32;column:disbursement_id"`
	LoanID           uint64    `gorm:"column:loan_id"`
	BranchID         uint64    `gorm:"column:branch_id"`
	Kind             string    `gorm:"type:text;column:kind"`
	Status           string    `gorm:"type:text;column:status"`
	ValueDate        time.Time `gorm:"column:value_date"`
	Provider         string    `gorm:"type:text;column:provider"`
	MobileNumber     string    `gorm:"column:mobile_number"`
	TransactionID    string    `gorm:"column:transaction_id"`
	BankName         string    `gorm:"column:bank_name"`
	AccountNumber    string    `gorm:"column:account_number"`
	RecipientName    string    `gorm:"column:recipient_name"`
	SignedDocumentID string    `gorm:"column:signed_document_id"`
	CreatedAt        time.Time `gorm:"column:created_at"`
	UpdatedAt        time.Time `gorm:"column:updated_at"`
}

func (disbursementSQLite) TableName() string { return "disbursements" }

type installmentSQLite struct {
	ID            uint64     `gorm:"primaryKey;column:id"`
	InstallmentID string     `gorm:"size:32;column:installment_id"`
	LoanID        uint64     `gorm:"column:loan_id"`
	ClientID      string     `gorm:"column:client_id"`
	BranchID      uint64     `gorm:"column:branch_id"`
	Amount        float64    `gorm:"column:amount"`
	DateToBePaid  time.Time  `gorm:"column:date_to_be_paid"`
	DatePaid      *time.Time `gorm:"column:date_paid"`
	Status        string     `gorm:"type:text;column:status"`
	CreatedAt     time.Time  `gorm:"column:created_at"`
	UpdatedAt     time.Time  `gorm:"column:updated_at"`
}

func (installmentSQLite) TableName() string { return "installments" }

type paymentSQLite struct {
	ID            uint64    `gorm:"primaryKey;column:id"`
	PaymentID     string    `gorm:"size:32;column:payment_id"`
	InstallmentID uint64    `gorm:"column:installment_id"`
	AmountPaid    float64   `gorm:"column:amount_paid"`
	Method        string    `gorm:"type:text;column:method"`
	PaymentDate   time.Time `gorm:"column:payment_date"`
	CreatedAt     time.Time `gorm:"column:created_at"`
}

func (paymentSQLite) TableName() string { return "payments" }

// openTestDB creates an in-memory sqlite DB and migrates ONLY the
// sqlite-safe schema.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	// IMPORTANT: migrate the sqlite-safe models, NOT the domain models.
	if err := db.AutoMigrate(&loanSQLite{}, &disbursementSQLite{}, &installmentSQLite{}, &paymentSQLite{}); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func makeLoan(loanID, clientID string) *loanDomain.Loan {
	return &loanDomain.Loan{
		LoanID:          loanID,
		ClientID:        clientID,
		BranchID:        3,
		Type:            loanDomain.TypeBusiness,
		Principal:       dec("1000000"),
		TenureMonths:    12,
		InterestRate:    dec("12"),
		ProcessingFee:   dec("50000"),
		TotalRepayable:  dec("1170000"),
		EMI:             dec("97500"),
		Balance:         dec("1170000"),
		Status:          loanDomain.StatusPending,
		StatusUpdatedAt: time.Now().UTC(),
	}
}
