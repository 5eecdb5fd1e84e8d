package loan

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	loanDomain "microfin-ledger/internal/domain/loan"
	"microfin-ledger/internal/domain/shared"
	"microfin-ledger/internal/domain/uow"
	"microfin-ledger/internal/ledger"
	"microfin-ledger/pkg/clock"
	"microfin-ledger/pkg/id"
)

// ClientDirectory is the narrow view of client management this service
// needs: nothing beyond an existence check.
type ClientDirectory interface {
	Exists(ctx context.Context, clientID string) (bool, error)
}

var (
	errInvalidClientID = shared.NewValidation("InvalidClientID", "client_id must be a UUID")
	errUnknownClient   = shared.NewNotFound("ClientNotFound", "client does not exist")
	errInvalidType     = shared.NewValidation("InvalidLoanType", "loan type must be salary, personal or business")
)

type Usecase struct {
	repo    loanDomain.Repository
	uow     uow.UnitOfWork
	clients ClientDirectory
	clk     clock.Clock
}

func NewUsecase(repo loanDomain.Repository, tx uow.UnitOfWork, clients ClientDirectory, clk clock.Clock) *Usecase {
	return &Usecase{repo: repo, uow: tx, clients: clients, clk: clk}
}

func validType(t string) bool {
	switch loanDomain.Type(t) {
	case loanDomain.TypeSalary, loanDomain.TypePersonal, loanDomain.TypeBusiness:
		return true
	}
	return false
}

func (u *Usecase) Create(ctx context.Context, in CreateLoanInput) (*LoanDTO, error) {
	if _, err := uuid.Parse(in.ClientID); err != nil {
		return nil, errInvalidClientID
	}
	if !validType(in.Type) {
		return nil, errInvalidType
	}
	if !in.Principal.IsPositive() {
		return nil, shared.NewValidation("InvalidPrincipal", "principal must be positive")
	}

	sched, err := ledger.ComputeSchedule(in.Principal, in.InterestRate, in.TenureMonths, in.ProcessingFee)
	if err != nil {
		return nil, err
	}

	ok, err := u.clients.Exists(ctx, in.ClientID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errUnknownClient
	}

	l := &loanDomain.Loan{
		LoanID:          id.New(),
		ClientID:        in.ClientID,
		BranchID:        in.BranchID,
		Type:            loanDomain.Type(in.Type),
		Principal:       in.Principal,
		TenureMonths:    in.TenureMonths,
		InterestRate:    in.InterestRate,
		ProcessingFee:   in.ProcessingFee,
		TotalRepayable:  sched.TotalRepayable,
		EMI:             sched.EMI,
		Balance:         sched.TotalRepayable,
		Status:          loanDomain.StatusPending,
		StatusUpdatedAt: u.clk.Now(),
	}
	if err := u.repo.Create(ctx, l); err != nil {
		return nil, err
	}
	return toDTO(l), nil
}

// Update edits a loan before disbursement. Changing any schedule input
// recomputes EMI, total repayable and the (still untouched) balance.
func (u *Usecase) Update(ctx context.Context, loanID string, in UpdateLoanInput) (*LoanDTO, error) {
	var dto *LoanDTO
	err := u.uow.WithinLoanTx(ctx, loanID, func(r uow.Repos, l *loanDomain.Loan) error {
		if !l.Editable() {
			return loanDomain.ErrNotEditable
		}

		recompute := false
		if in.Type != nil {
			if !validType(*in.Type) {
				return errInvalidType
			}
			l.Type = loanDomain.Type(*in.Type)
		}
		if in.Principal != nil {
			l.Principal = *in.Principal
			recompute = true
		}
		if in.TenureMonths != nil {
			l.TenureMonths = *in.TenureMonths
			recompute = true
		}
		if in.InterestRate != nil {
			l.InterestRate = *in.InterestRate
			recompute = true
		}
		if in.ProcessingFee != nil {
			l.ProcessingFee = *in.ProcessingFee
			recompute = true
		}

		if recompute {
			sched, err := ledger.ComputeSchedule(l.Principal, l.InterestRate, l.TenureMonths, l.ProcessingFee)
			if err != nil {
				return err
			}
			l.TotalRepayable = sched.TotalRepayable
			l.EMI = sched.EMI
			l.Balance = sched.TotalRepayable
		}

		if in.Status != nil {
			next := loanDomain.Status(*in.Status)
			if !l.CanTransition(next) {
				return loanDomain.ErrInvalidTransition
			}
			l.Status = next
			l.StatusUpdatedAt = u.clk.Now()
		}

		if err := r.Loans.Save(ctx, l); err != nil {
			return err
		}
		dto = toDTO(l)
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, loanDomain.ErrNotFound
		}
		return nil, err
	}
	return dto, nil
}

func (u *Usecase) Get(ctx context.Context, loanID string) (*LoanDTO, error) {
	l, err := u.repo.GetByLoanID(ctx, loanID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, loanDomain.ErrNotFound
		}
		return nil, err
	}
	return toDTO(l), nil
}

func (u *Usecase) List(ctx context.Context, branchID uint64, page, pageSize int) (*LoanPage, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	loans, total, err := u.repo.List(ctx, branchID, page, pageSize)
	if err != nil {
		return nil, err
	}
	out := &LoanPage{
		Data:     make([]LoanDTO, 0, len(loans)),
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}
	for i := range loans {
		out.Data = append(out.Data, *toDTO(&loans[i]))
	}
	out.TotalPages = int((total + int64(pageSize) - 1) / int64(pageSize))
	return out, nil
}

// Delete removes a loan that never left pending.
func (u *Usecase) Delete(ctx context.Context, loanID string) error {
	err := u.uow.WithinLoanTx(ctx, loanID, func(r uow.Repos, l *loanDomain.Loan) error {
		if l.Status != loanDomain.StatusPending {
			return loanDomain.ErrNotEditable
		}
		return r.Loans.Delete(ctx, l.ID)
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return loanDomain.ErrNotFound
	}
	return err
}

func toDTO(l *loanDomain.Loan) *LoanDTO {
	return &LoanDTO{
		LoanID:           l.LoanID,
		ClientID:         l.ClientID,
		BranchID:         l.BranchID,
		Type:             string(l.Type),
		Principal:        l.Principal,
		TenureMonths:     l.TenureMonths,
		InterestRate:     l.InterestRate,
		ProcessingFee:    l.ProcessingFee,
		TotalRepayable:   l.TotalRepayable,
		EMI:              l.EMI,
		Balance:          l.Balance,
		Status:           string(l.Status),
		OverdueIncidents: l.OverdueIncidents,
		CreatedAt:        l.CreatedAt,
	}
}
