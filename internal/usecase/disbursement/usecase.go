package disbursement

import (
	"context"
	"errors"

	"gorm.io/gorm"

	disbDomain "microfin-ledger/internal/domain/disbursement"
	loanDomain "microfin-ledger/internal/domain/loan"
	"microfin-ledger/internal/domain/shared"
	"microfin-ledger/internal/domain/uow"
	"microfin-ledger/internal/usecase/repayment"
	"microfin-ledger/pkg/clock"
	"microfin-ledger/pkg/id"
)

// DocumentResolver checks that a signed-document reference exists in the
// document store before a person-kind disbursement may finalize.
type DocumentResolver interface {
	Resolve(ctx context.Context, documentID string) (bool, error)
}

var errUnknownDocument = shared.NewValidation("UnknownSignedDocument", "signed document reference does not exist")

// Usecase enforces the single-finalized-disbursement rule and drives the
// loan into its disbursed state.
type Usecase struct {
	uow       uow.UnitOfWork
	scheduler *repayment.Scheduler
	documents DocumentResolver
	clk       clock.Clock
}

func NewUsecase(tx uow.UnitOfWork, scheduler *repayment.Scheduler, documents DocumentResolver, clk clock.Clock) *Usecase {
	return &Usecase{uow: tx, scheduler: scheduler, documents: documents, clk: clk}
}

// Disburse records the release of approved funds through one channel.
// A still-pending record may be replaced any number of times; a finalized
// one is forever.
func (u *Usecase) Disburse(ctx context.Context, loanID string, in DisburseInput) (*DisbursementDTO, error) {
	status := disbDomain.Status(in.Status)
	if status == "" {
		status = disbDomain.StatusPending
	}
	if status != disbDomain.StatusPending && status != disbDomain.StatusDisbursed {
		return nil, shared.NewValidation("InvalidDisbursementStatus", "status must be pending or disbursed")
	}
	finalizing := status == disbDomain.StatusDisbursed

	var dto *DisbursementDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		l, err := r.Loans.GetByLoanIDForUpdate(ctx, loanID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return loanDomain.ErrNotFound
			}
			return err
		}
		if l.Status != loanDomain.StatusApproved {
			return loanDomain.ErrNotApproved
		}

		// Single-disbursement rule: a finalized record blocks forever, a
		// pending one is replaced so channel/detail changes stay possible.
		existing, err := r.Disbursements.GetByLoanID(ctx, l.ID)
		switch {
		case err == nil:
			if existing.Status == disbDomain.StatusDisbursed {
				return disbDomain.ErrAlreadyDisbursed
			}
			if err := r.Disbursements.Delete(ctx, existing.ID); err != nil {
				return err
			}
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return err
		}

		d := &disbDomain.Disbursement{
			DisbursementID:   id.New(),
			LoanID:           l.ID,
			BranchID:         in.BranchID,
			Kind:             disbDomain.Kind(in.Kind),
			Status:           status,
			ValueDate:        in.ValueDate,
			Provider:         disbDomain.Provider(in.Provider),
			MobileNumber:     in.MobileNumber,
			TransactionID:    in.TransactionID,
			BankName:         in.BankName,
			AccountNumber:    in.AccountNumber,
			RecipientName:    in.RecipientName,
			SignedDocumentID: in.SignedDocumentID,
		}
		if d.ValueDate.IsZero() {
			d.ValueDate = u.clk.Now()
		}
		if err := d.Validate(finalizing); err != nil {
			return err
		}
		if finalizing && d.Kind == disbDomain.KindPerson {
			if err := u.resolveDocument(ctx, d.SignedDocumentID); err != nil {
				return err
			}
		}

		if err := r.Disbursements.Create(ctx, d); err != nil {
			return err
		}

		var firstInstallmentID string
		if finalizing {
			firstInstallmentID, err = u.finalize(ctx, r, l)
			if err != nil {
				return err
			}
		}
		dto = toDTO(d, l.LoanID, firstInstallmentID)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// Confirm finalizes a previously pending disbursement.
func (u *Usecase) Confirm(ctx context.Context, disbursementID string, in ConfirmInput) (*DisbursementDTO, error) {
	var dto *DisbursementDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		d, err := r.Disbursements.GetByDisbursementIDForUpdate(ctx, disbursementID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return disbDomain.ErrNotFound
			}
			return err
		}
		if d.Status == disbDomain.StatusDisbursed {
			return disbDomain.ErrAlreadyDisbursed
		}

		l, err := r.Loans.GetByIDForUpdate(ctx, d.LoanID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return loanDomain.ErrNotFound
			}
			return err
		}
		if l.Status != loanDomain.StatusApproved {
			return loanDomain.ErrNotApproved
		}

		if in.TransactionID != "" {
			d.TransactionID = in.TransactionID
		}
		if in.SignedDocumentID != "" {
			d.SignedDocumentID = in.SignedDocumentID
		}
		if in.RecipientName != "" {
			d.RecipientName = in.RecipientName
		}
		if in.BankName != "" {
			d.BankName = in.BankName
		}
		if in.AccountNumber != "" {
			d.AccountNumber = in.AccountNumber
		}

		if err := d.Validate(true); err != nil {
			return err
		}
		if d.Kind == disbDomain.KindPerson {
			if err := u.resolveDocument(ctx, d.SignedDocumentID); err != nil {
				return err
			}
		}

		d.Status = disbDomain.StatusDisbursed
		if err := r.Disbursements.Save(ctx, d); err != nil {
			return err
		}

		firstInstallmentID, err := u.finalize(ctx, r, l)
		if err != nil {
			return err
		}
		dto = toDTO(d, l.LoanID, firstInstallmentID)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

func (u *Usecase) Get(ctx context.Context, disbursementID string) (*DisbursementDTO, error) {
	var dto *DisbursementDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		d, err := r.Disbursements.GetByDisbursementID(ctx, disbursementID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return disbDomain.ErrNotFound
			}
			return err
		}
		l, err := r.Loans.GetByID(ctx, d.LoanID)
		if err != nil {
			return err
		}
		dto = toDTO(d, l.LoanID, "")
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

func (u *Usecase) resolveDocument(ctx context.Context, documentID string) error {
	ok, err := u.documents.Resolve(ctx, documentID)
	if err != nil {
		return err
	}
	if !ok {
		return errUnknownDocument
	}
	return nil
}

// finalize moves the loan into its disbursed state and seeds the first
// installment, inside the caller's transaction.
func (u *Usecase) finalize(ctx context.Context, r uow.Repos, l *loanDomain.Loan) (string, error) {
	l.Status = loanDomain.StatusDisbursed
	l.StatusUpdatedAt = u.clk.Now()
	if err := r.Loans.Save(ctx, l); err != nil {
		return "", err
	}
	first, err := u.scheduler.SeedFirstInstallment(ctx, r, l)
	if err != nil {
		return "", err
	}
	return first.InstallmentID, nil
}

func toDTO(d *disbDomain.Disbursement, loanID, firstInstallmentID string) *DisbursementDTO {
	return &DisbursementDTO{
		DisbursementID:     d.DisbursementID,
		LoanID:             loanID,
		Kind:               string(d.Kind),
		Status:             string(d.Status),
		ValueDate:          d.ValueDate,
		Provider:           string(d.Provider),
		MobileNumber:       d.MobileNumber,
		TransactionID:      d.TransactionID,
		BankName:           d.BankName,
		AccountNumber:      d.AccountNumber,
		RecipientName:      d.RecipientName,
		SignedDocumentID:   d.SignedDocumentID,
		FirstInstallmentID: firstInstallmentID,
		CreatedAt:          d.CreatedAt,
	}
}
