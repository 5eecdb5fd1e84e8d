package disbursement

import "context"

type Repository interface {
	Create(ctx context.Context, d *Disbursement) error
	Save(ctx context.Context, d *Disbursement) error
	GetByLoanID(ctx context.Context, loanID uint64) (*Disbursement, error)
	GetByDisbursementID(ctx context.Context, disbursementID string) (*Disbursement, error)
	// GetByDisbursementIDForUpdate locks the row within the surrounding tx.
	GetByDisbursementIDForUpdate(ctx context.Context, disbursementID string) (*Disbursement, error)
	Delete(ctx context.Context, id uint64) error
}
