package mysql

import (
	"context"

	"gorm.io/gorm"

	disbDomain "microfin-ledger/internal/domain/disbursement"
)

type DisbursementRepository struct{ db *gorm.DB }

func NewDisbursementRepository(db *gorm.DB) *DisbursementRepository {
	return &DisbursementRepository{db: db}
}

func (r *DisbursementRepository) Create(ctx context.Context, d *disbDomain.Disbursement) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *DisbursementRepository) Save(ctx context.Context, d *disbDomain.Disbursement) error {
	return r.db.WithContext(ctx).Save(d).Error
}

func (r *DisbursementRepository) GetByLoanID(ctx context.Context, loanID uint64) (*disbDomain.Disbursement, error) {
	var out disbDomain.Disbursement
	res := r.db.WithContext(ctx).Where("loan_id = ?", loanID).First(&out)
	return &out, res.Error
}

func (r *DisbursementRepository) GetByDisbursementID(ctx context.Context, disbursementID string) (*disbDomain.Disbursement, error) {
	var out disbDomain.Disbursement
	res := r.db.WithContext(ctx).Where("disbursement_id = ?", disbursementID).First(&out)
	return &out, res.Error
}

func (r *DisbursementRepository) GetByDisbursementIDForUpdate(ctx context.Context, disbursementID string) (*disbDomain.Disbursement, error) {
	var out disbDomain.Disbursement
	res := lockForUpdate(r.db.WithContext(ctx)).Where("disbursement_id = ?", disbursementID).First(&out)
	return &out, res.Error
}

func (r *DisbursementRepository) Delete(ctx context.Context, id uint64) error {
	res := r.db.WithContext(ctx).Delete(&disbDomain.Disbursement{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
