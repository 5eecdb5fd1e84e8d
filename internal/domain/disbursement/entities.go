package disbursement

import (
	"time"

	"github.com/google/uuid"

	"microfin-ledger/internal/domain/shared"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusDisbursed Status = "disbursed"
	StatusCancelled Status = "cancelled"
)

type Kind string

const (
	KindMobile Kind = "mobile"
	KindBank   Kind = "bank"
	KindPerson Kind = "person"
)

type Provider string

const (
	ProviderMTN    Provider = "mtn"
	ProviderAirtel Provider = "airtel"
)

var (
	ErrNotFound         = shared.NewNotFound("DisbursementNotFound", "disbursement not found")
	ErrAlreadyDisbursed = shared.NewConflict("AlreadyDisbursed", "a disbursement has already been finalized for this loan")
	ErrInvalidKind      = shared.NewValidation("InvalidDisbursementKind", "disbursement kind must be mobile, bank or person")
)

// Disbursement is a tagged variant: Kind selects which payload columns are
// meaningful. Exactly one row may exist per loan at any time, and at most
// one may ever reach StatusDisbursed.
type Disbursement struct {
	ID             uint64    `gorm:"primaryKey;column:id" json:"-"`
	DisbursementID string    `gorm:"size:32;uniqueIndex:ux_disbursements_public_id" json:"disbursement_id"`
	LoanID         uint64    `gorm:"column:loan_id;uniqueIndex:ux_disbursements_loan" json:"-"`
	BranchID       uint64    `gorm:"column:branch_id" json:"branch_id"`
	Kind           Kind      `gorm:"type:enum('mobile','bank','person')" json:"kind"`
	Status         Status    `gorm:"type:enum('pending','disbursed','cancelled');default:'pending'" json:"status"`
	ValueDate      time.Time `gorm:"column:value_date;type:date" json:"value_date"`

	// mobile payload
	Provider      Provider `gorm:"type:enum('mtn','airtel')" json:"provider,omitempty"`
	MobileNumber  string   `gorm:"size:20" json:"mobile_number,omitempty"`
	TransactionID string   `gorm:"column:transaction_id;size:100" json:"transaction_id,omitempty"`

	// bank payload
	BankName      string `gorm:"size:100" json:"bank_name,omitempty"`
	AccountNumber string `gorm:"size:50" json:"account_number,omitempty"`

	// person payload
	RecipientName    string `gorm:"size:100" json:"recipient_name,omitempty"`
	SignedDocumentID string `gorm:"column:signed_document_id;type:char(36)" json:"signed_document_id,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Disbursement) TableName() string { return "disbursements" }

// Validate checks the variant payload. Some fields are only mandatory when
// the record is being finalized: a mobile transaction reference and a
// person-type signed document exist only once funds actually moved.
func (d *Disbursement) Validate(finalizing bool) error {
	switch d.Kind {
	case KindMobile:
		if d.Provider != ProviderMTN && d.Provider != ProviderAirtel {
			return shared.NewValidation("InvalidProvider", "mobile disbursement requires a provider (mtn or airtel)")
		}
		if d.MobileNumber == "" {
			return shared.NewValidation("MissingMobileNumber", "mobile disbursement requires a mobile number")
		}
		if finalizing && d.TransactionID == "" {
			return shared.NewValidation("MissingTransactionID", "transaction ID is required to finalize a mobile disbursement")
		}
	case KindBank:
		if d.BankName == "" || d.AccountNumber == "" {
			return shared.NewValidation("MissingBankDetails", "bank disbursement requires bank name and account number")
		}
	case KindPerson:
		if finalizing {
			if d.SignedDocumentID == "" {
				return shared.NewValidation("MissingSignedDocument", "a signed document is required to finalize an in-person disbursement")
			}
			if _, err := uuid.Parse(d.SignedDocumentID); err != nil {
				return shared.NewValidation("InvalidSignedDocument", "signed document reference must be a UUID")
			}
		}
	default:
		return ErrInvalidKind
	}
	return nil
}
