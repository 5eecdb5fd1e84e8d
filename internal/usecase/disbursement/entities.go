package disbursement

import "time"

type DisburseInput struct {
	Kind      string    `json:"kind"`
	Status    string    `json:"status"` // pending (default) or disbursed
	ValueDate time.Time `json:"value_date"`
	BranchID  uint64    `json:"branch_id"`

	Provider      string `json:"provider,omitempty"`
	MobileNumber  string `json:"mobile_number,omitempty"`
	TransactionID string `json:"transaction_id,omitempty"`

	BankName      string `json:"bank_name,omitempty"`
	AccountNumber string `json:"account_number,omitempty"`

	RecipientName    string `json:"recipient_name,omitempty"`
	SignedDocumentID string `json:"signed_document_id,omitempty"`
}

// ConfirmInput carries the details supplied while finalizing a pending
// disbursement; zero-valued fields leave the stored ones untouched.
type ConfirmInput struct {
	TransactionID    string `json:"transaction_id,omitempty"`
	SignedDocumentID string `json:"signed_document_id,omitempty"`
	RecipientName    string `json:"recipient_name,omitempty"`
	BankName         string `json:"bank_name,omitempty"`
	AccountNumber    string `json:"account_number,omitempty"`
}

type DisbursementDTO struct {
	DisbursementID string    `json:"disbursement_id"`
	LoanID         string    `json:"loan_id"`
	Kind           string    `json:"kind"`
	Status         string    `json:"status"`
	ValueDate      time.Time `json:"value_date"`

	Provider         string `json:"provider,omitempty"`
	MobileNumber     string `json:"mobile_number,omitempty"`
	TransactionID    string `json:"transaction_id,omitempty"`
	BankName         string `json:"bank_name,omitempty"`
	AccountNumber    string `json:"account_number,omitempty"`
	RecipientName    string `json:"recipient_name,omitempty"`
	SignedDocumentID string `json:"signed_document_id,omitempty"`

	FirstInstallmentID string    `json:"first_installment_id,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
}
