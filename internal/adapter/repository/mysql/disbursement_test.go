package mysql

import (
	"context"
	"errors"
	"testing"
	"time"

	"gorm.io/gorm"

	disbDomain "microfin-ledger/internal/domain/disbursement"
	"microfin-ledger/pkg/id"
)

func makeDisbursement(loanID uint64) *disbDomain.Disbursement {
	return &disbDomain.Disbursement{
		DisbursementID: id.New(),
		LoanID:         loanID,
		BranchID:       3,
		Kind:           disbDomain.KindMobile,
		Status:         disbDomain.StatusPending,
		ValueDate:      time.Now().UTC(),
		Provider:       disbDomain.ProviderMTN,
		MobileNumber:   "+256700000001",
	}
}

func TestDisbursementCreateAndGetByLoanID(t *testing.T) {
	db := openTestDB(t)
	repo := NewDisbursementRepository(db)
	ctx := context.Background()

	d := makeDisbursement(7)
	if err := repo.Create(ctx, d); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if d.ID == 0 {
		t.Fatalf("Create did not set auto-increment ID")
	}

	got, err := repo.GetByLoanID(ctx, 7)
	if err != nil {
		t.Fatalf("GetByLoanID: %v", err)
	}
	if got.DisbursementID != d.DisbursementID || got.Kind != disbDomain.KindMobile {
		t.Errorf("unexpected disbursement: %+v", got)
	}

	if _, err := repo.GetByLoanID(ctx, 999); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound for loan without a record, got %v", err)
	}
}

func TestDisbursementGetByDisbursementID(t *testing.T) {
	db := openTestDB(t)
	repo := NewDisbursementRepository(db)
	ctx := context.Background()

	d := makeDisbursement(7)
	if err := repo.Create(ctx, d); err != nil {
		t.Fatal(err)
	}

	got, err := repo.GetByDisbursementID(ctx, d.DisbursementID)
	if err != nil {
		t.Fatalf("GetByDisbursementID: %v", err)
	}
	if got.ID != d.ID {
		t.Errorf("got row %d, want %d", got.ID, d.ID)
	}

	locked, err := repo.GetByDisbursementIDForUpdate(ctx, d.DisbursementID)
	if err != nil {
		t.Fatalf("GetByDisbursementIDForUpdate: %v", err)
	}
	if locked.ID != d.ID {
		t.Errorf("locked row %d, want %d", locked.ID, d.ID)
	}

	_, err = repo.GetByDisbursementID(ctx, "eeeeeeeeeeeeeeeeeeeeeeeeeeeeeeee")
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestDisbursementSaveFinalizes(t *testing.T) {
	db := openTestDB(t)
	repo := NewDisbursementRepository(db)
	ctx := context.Background()

	d := makeDisbursement(7)
	if err := repo.Create(ctx, d); err != nil {
		t.Fatal(err)
	}

	d.Status = disbDomain.StatusDisbursed
	d.TransactionID = "MTN-2026-000123"
	if err := repo.Save(ctx, d); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := repo.GetByLoanID(ctx, 7)
	if err != nil {
		t.Fatal(err)
	}
	if got.Status != disbDomain.StatusDisbursed || got.TransactionID != "MTN-2026-000123" {
		t.Errorf("finalization not persisted: %+v", got)
	}
}

func TestDisbursementDelete(t *testing.T) {
	db := openTestDB(t)
	repo := NewDisbursementRepository(db)
	ctx := context.Background()

	d := makeDisbursement(7)
	if err := repo.Create(ctx, d); err != nil {
		t.Fatal(err)
	}
	if err := repo.Delete(ctx, d.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := repo.GetByLoanID(ctx, 7); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("record still readable after delete: %v", err)
	}
}
