package loanmock

import (
	"context"
	"errors"
	"testing"

	domain "microfin-ledger/internal/domain/loan"
)

func TestRepo_Create(t *testing.T) {
	ctx := context.Background()
	l := &domain.Loan{LoanID: "a1"}

	// Uses provided func
	called := false
	wantErr := errors.New("boom")
	m := &Repo{
		CreateFn: func(gotCtx context.Context, got *domain.Loan) error {
			called = true
			if gotCtx != ctx {
				t.Fatalf("Create ctx mismatch")
			}
			if got != l {
				t.Fatalf("Create arg mismatch")
			}
			return wantErr
		},
	}
	if err := m.Create(ctx, l); !errors.Is(err, wantErr) {
		t.Fatalf("Create: want %v, got %v", wantErr, err)
	}
	if !called {
		t.Fatalf("CreateFn not called")
	}

	// Default (nil func) → no-op, nil error
	m = &Repo{}
	if err := m.Create(ctx, l); err != nil {
		t.Fatalf("Create default: want nil, got %v", err)
	}
}

func TestRepo_GetByLoanID(t *testing.T) {
	ctx := context.Background()
	want := &domain.Loan{LoanID: "a2"}

	called := false
	m := &Repo{
		GetByLoanIDFn: func(gotCtx context.Context, loanID string) (*domain.Loan, error) {
			called = true
			if gotCtx != ctx {
				t.Fatalf("GetByLoanID ctx mismatch")
			}
			if loanID != "a2" {
				t.Fatalf("GetByLoanID loanID mismatch: got %s", loanID)
			}
			return want, nil
		},
	}
	got, err := m.GetByLoanID(ctx, "a2")
	if err != nil {
		t.Fatalf("GetByLoanID: unexpected err: %v", err)
	}
	if got != want {
		t.Fatalf("GetByLoanID: want %+v, got %+v", want, got)
	}
	if !called {
		t.Fatalf("GetByLoanIDFn not called")
	}

	// Default (nil func) → context.Canceled
	m = &Repo{}
	got, err = m.GetByLoanID(ctx, "a2")
	if err != context.Canceled {
		t.Fatalf("GetByLoanID default: want context.Canceled, got %v", err)
	}
	if got != nil {
		t.Fatalf("GetByLoanID default: want nil loan, got %+v", got)
	}
}

func TestRepo_Save(t *testing.T) {
	ctx := context.Background()
	l := &domain.Loan{LoanID: "a3"}

	called := false
	wantErr := errors.New("save-fail")
	m := &Repo{
		SaveFn: func(gotCtx context.Context, got *domain.Loan) error {
			called = true
			if gotCtx != ctx {
				t.Fatalf("Save ctx mismatch")
			}
			if got != l {
				t.Fatalf("Save arg mismatch")
			}
			return wantErr
		},
	}
	if err := m.Save(ctx, l); !errors.Is(err, wantErr) {
		t.Fatalf("Save: want %v, got %v", wantErr, err)
	}
	if !called {
		t.Fatalf("SaveFn not called")
	}

	m = &Repo{}
	if err := m.Save(ctx, l); err != nil {
		t.Fatalf("Save default: want nil, got %v", err)
	}
}

func TestRepo_GetByLoanIDForUpdate(t *testing.T) {
	ctx := context.Background()
	want := &domain.Loan{LoanID: "a5"}

	called := false
	m := &Repo{
		GetByLoanIDForUpdateFn: func(gotCtx context.Context, loanID string) (*domain.Loan, error) {
			called = true
			if gotCtx != ctx {
				t.Fatalf("GetByLoanIDForUpdate ctx mismatch")
			}
			if loanID != "a5" {
				t.Fatalf("GetByLoanIDForUpdate loanID mismatch: got %s", loanID)
			}
			return want, nil
		},
	}
	got, err := m.GetByLoanIDForUpdate(ctx, "a5")
	if err != nil {
		t.Fatalf("GetByLoanIDForUpdate: unexpected err: %v", err)
	}
	if got != want {
		t.Fatalf("GetByLoanIDForUpdate: want %+v, got %+v", want, got)
	}
	if !called {
		t.Fatalf("GetByLoanIDForUpdateFn not called")
	}

	// Default (nil func) → context.Canceled
	m = &Repo{}
	got, err = m.GetByLoanIDForUpdate(ctx, "a5")
	if err != context.Canceled {
		t.Fatalf("GetByLoanIDForUpdate default: want context.Canceled, got %v", err)
	}
	if got != nil {
		t.Fatalf("GetByLoanIDForUpdate default: want nil loan, got %+v", got)
	}
}

func TestRepo_List(t *testing.T) {
	ctx := context.Background()
	rows := []domain.Loan{{LoanID: "a6"}, {LoanID: "a7"}}

	m := &Repo{
		ListFn: func(gotCtx context.Context, branchID uint64, page, pageSize int) ([]domain.Loan, int64, error) {
			if branchID != 3 || page != 2 || pageSize != 10 {
				t.Fatalf("List args mismatch: %d %d %d", branchID, page, pageSize)
			}
			return rows, 12, nil
		},
	}
	got, total, err := m.List(ctx, 3, 2, 10)
	if err != nil {
		t.Fatalf("List: unexpected err: %v", err)
	}
	if len(got) != 2 || total != 12 {
		t.Fatalf("List result mismatch: %d rows total %d", len(got), total)
	}

	// Default (nil func) → context.Canceled
	m = &Repo{}
	if _, _, err := m.List(ctx, 0, 1, 10); err != context.Canceled {
		t.Fatalf("List default: want context.Canceled, got %v", err)
	}
}

func TestRepo_IncrementOverdueIncidents(t *testing.T) {
	ctx := context.Background()

	called := false
	m := &Repo{
		IncrementOverdueIncidentsFn: func(gotCtx context.Context, id uint64, by int) error {
			called = true
			if id != 9 || by != 2 {
				t.Fatalf("IncrementOverdueIncidents args mismatch: %d %d", id, by)
			}
			return nil
		},
	}
	if err := m.IncrementOverdueIncidents(ctx, 9, 2); err != nil {
		t.Fatalf("IncrementOverdueIncidents: unexpected err: %v", err)
	}
	if !called {
		t.Fatalf("IncrementOverdueIncidentsFn not called")
	}

	// Default (nil func) → no-op, nil error
	m = &Repo{}
	if err := m.IncrementOverdueIncidents(ctx, 9, 1); err != nil {
		t.Fatalf("IncrementOverdueIncidents default: want nil, got %v", err)
	}
}
