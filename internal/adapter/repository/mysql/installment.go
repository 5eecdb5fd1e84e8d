package mysql

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	instDomain "microfin-ledger/internal/domain/installment"
)

type InstallmentRepository struct{ db *gorm.DB }

func NewInstallmentRepository(db *gorm.DB) *InstallmentRepository {
	return &InstallmentRepository{db: db}
}

func (r *InstallmentRepository) Create(ctx context.Context, i *instDomain.Installment) error {
	return r.db.WithContext(ctx).Create(i).Error
}

func (r *InstallmentRepository) Save(ctx context.Context, i *instDomain.Installment) error {
	return r.db.WithContext(ctx).Save(i).Error
}

func (r *InstallmentRepository) GetByInstallmentID(ctx context.Context, installmentID string) (*instDomain.Installment, error) {
	var out instDomain.Installment
	res := r.db.WithContext(ctx).Where("installment_id = ?", installmentID).First(&out)
	return &out, res.Error
}

func (r *InstallmentRepository) GetByInstallmentIDForUpdate(ctx context.Context, installmentID string) (*instDomain.Installment, error) {
	var out instDomain.Installment
	res := lockForUpdate(r.db.WithContext(ctx)).Where("installment_id = ?", installmentID).First(&out)
	return &out, res.Error
}

func (r *InstallmentRepository) CountPaidByLoan(ctx context.Context, loanID uint64) (int, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&instDomain.Installment{}).
		Where("loan_id = ? AND status = ?", loanID, instDomain.StatusPaid).
		Count(&n).Error
	return int(n), err
}

type installmentTotalsRow struct {
	instDomain.Installment
	PaymentCount int
	TotalPaid    decimal.Decimal
}

func (r *InstallmentRepository) ListByLoan(ctx context.Context, loanID uint64) ([]instDomain.WithTotals, error) {
	var rows []installmentTotalsRow
	err := r.db.WithContext(ctx).
		Table("installments").
		Select("installments.*, COUNT(payments.id) AS payment_count, COALESCE(SUM(payments.amount_paid), 0) AS total_paid").
		Joins("LEFT JOIN payments ON payments.installment_id = installments.id").
		Where("installments.loan_id = ?", loanID).
		Group("installments.id").
		Order("installments.date_to_be_paid ASC, installments.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]instDomain.WithTotals, 0, len(rows))
	for _, row := range rows {
		remaining := row.Amount.Sub(row.TotalPaid)
		if remaining.IsNegative() {
			remaining = decimal.Zero
		}
		out = append(out, instDomain.WithTotals{
			Installment:      row.Installment,
			PaymentCount:     row.PaymentCount,
			TotalPaid:        row.TotalPaid,
			RemainingBalance: remaining,
		})
	}
	return out, nil
}

func (r *InstallmentRepository) FindPendingDueBefore(ctx context.Context, cutoff time.Time) ([]instDomain.Installment, error) {
	var out []instDomain.Installment
	err := r.db.WithContext(ctx).
		Where("status = ? AND date_to_be_paid < ?", instDomain.StatusPending, cutoff).
		Order("id ASC").
		Find(&out).Error
	return out, err
}

func (r *InstallmentRepository) MarkOverdue(ctx context.Context, ids []uint64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	// The status predicate keeps the sweep idempotent: rows already flipped
	// are not touched again.
	res := r.db.WithContext(ctx).Model(&instDomain.Installment{}).
		Where("id IN ? AND status = ?", ids, instDomain.StatusPending).
		Update("status", instDomain.StatusOverdue)
	return res.RowsAffected, res.Error
}

type PaymentRepository struct{ db *gorm.DB }

func NewPaymentRepository(db *gorm.DB) *PaymentRepository { return &PaymentRepository{db: db} }

func (r *PaymentRepository) Create(ctx context.Context, p *instDomain.Payment) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PaymentRepository) SumByInstallment(ctx context.Context, installmentID uint64) (decimal.Decimal, error) {
	var sum decimal.Decimal
	err := r.db.WithContext(ctx).Model(&instDomain.Payment{}).
		Select("COALESCE(SUM(amount_paid), 0)").
		Where("installment_id = ?", installmentID).
		Row().Scan(&sum)
	return sum, err
}

func (r *PaymentRepository) SumByLoan(ctx context.Context, loanID uint64) (decimal.Decimal, error) {
	var sum decimal.Decimal
	err := r.db.WithContext(ctx).Model(&instDomain.Payment{}).
		Select("COALESCE(SUM(payments.amount_paid), 0)").
		Joins("INNER JOIN installments ON installments.id = payments.installment_id").
		Where("installments.loan_id = ?", loanID).
		Row().Scan(&sum)
	return sum, err
}
