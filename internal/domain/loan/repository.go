package loan

import "context"

type Repository interface {
	Create(ctx context.Context, l *Loan) error
	Save(ctx context.Context, l *Loan) error
	GetByLoanID(ctx context.Context, loanID string) (*Loan, error)
	// GetByLoanIDForUpdate locks the loan row for the duration of the
	// surrounding transaction (SELECT ... FOR UPDATE).
	GetByLoanIDForUpdate(ctx context.Context, loanID string) (*Loan, error)
	GetByID(ctx context.Context, id uint64) (*Loan, error)
	GetByIDForUpdate(ctx context.Context, id uint64) (*Loan, error)
	List(ctx context.Context, branchID uint64, page, pageSize int) ([]Loan, int64, error)
	Delete(ctx context.Context, id uint64) error
	IncrementOverdueIncidents(ctx context.Context, id uint64, by int) error
}
