package overdue

import (
	"context"

	"microfin-ledger/internal/domain/uow"
	"microfin-ledger/pkg/clock"
)

// Sweeper flags installments whose due date has passed while still unpaid.
// The selection predicate excludes rows already flipped, so re-running at
// any time converges without delta bookkeeping.
type Sweeper struct {
	uow uow.UnitOfWork
	clk clock.Clock
}

func NewSweeper(tx uow.UnitOfWork, clk clock.Clock) *Sweeper {
	return &Sweeper{uow: tx, clk: clk}
}

// Sweep marks every pending installment due strictly before now as overdue
// and bumps the owning loans' overdue incident counters. Returns how many
// installments were newly flagged.
func (s *Sweeper) Sweep(ctx context.Context) (int64, error) {
	var flagged int64
	err := s.uow.WithinTx(ctx, func(r uow.Repos) error {
		candidates, err := r.Installments.FindPendingDueBefore(ctx, s.clk.Now())
		if err != nil {
			return err
		}
		if len(candidates) == 0 {
			return nil
		}

		ids := make([]uint64, 0, len(candidates))
		perLoan := make(map[uint64]int, len(candidates))
		for _, inst := range candidates {
			ids = append(ids, inst.ID)
			perLoan[inst.LoanID]++
		}

		flagged, err = r.Installments.MarkOverdue(ctx, ids)
		if err != nil {
			return err
		}
		// Installment status is the only status effect; the loan keeps its
		// own status and only counts incidents.
		for loanID, n := range perLoan {
			if err := r.Loans.IncrementOverdueIncidents(ctx, loanID, n); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return flagged, nil
}
