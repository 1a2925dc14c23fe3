package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/jask/riparto/internal/apportion"
	"github.com/jask/riparto/internal/database"
	"github.com/jask/riparto/internal/database/repository"
)

// AllocationRequest is what the user submits: the roster and the two totals.
type AllocationRequest struct {
	Agents []repository.Agent
	Units  int64
	Amount decimal.Decimal
}

// AllocationResult is a successful calculation. RunID is empty when the run
// was not stored.
type AllocationResult struct {
	RunID     string
	Rows      []apportion.Row
	Totals    apportion.Totals
	CreatedAt time.Time
}

// AllocationService validates a request the way the form does, runs the
// engine and records the run. A nil Runs repo skips recording.
type AllocationService struct {
	Runs *repository.RunRepo
	Log  logrus.FieldLogger
}

// Calculate rejects negative balances, negative totals and an empty roster,
// in that order, before allocating.
func (s *AllocationService) Calculate(ctx context.Context, req AllocationRequest) (AllocationResult, error) {
	log := logger(s.Log).WithFields(logrus.Fields{
		"agents": len(req.Agents),
		"units":  req.Units,
		"amount": req.Amount.StringFixed(2),
	})

	for i, a := range req.Agents {
		if a.Balance.IsNegative() {
			log.WithField("position", i).Warn("rejected: negative balance")
			return AllocationResult{}, &apportion.Error{Kind: apportion.NegativeBalance, Index: i, Detail: "balance " + a.Balance.String()}
		}
	}
	if req.Units < 0 || req.Amount.IsNegative() {
		log.Warn("rejected: negative totals")
		return AllocationResult{}, &apportion.Error{Kind: apportion.NegativeTotal, Index: -1}
	}
	if len(req.Agents) == 0 {
		log.Warn("rejected: no agents")
		return AllocationResult{}, apportion.ErrEmptyEntitySet
	}

	rows, err := apportion.Allocate(Entities(req.Agents), req.Units, req.Amount)
	if err != nil {
		log.WithError(err).Error("allocation failed")
		return AllocationResult{}, fmt.Errorf("allocate: %w", err)
	}

	res := AllocationResult{Rows: rows, Totals: apportion.Sum(rows), CreatedAt: database.Now()}
	if s.Runs != nil {
		res.RunID = uuid.NewString()
		if err := s.Runs.Insert(ctx, toRun(res)); err != nil {
			return AllocationResult{}, fmt.Errorf("store run: %w", err)
		}
	}
	log.WithField("run_id", res.RunID).Info("allocation calculated")
	return res, nil
}

// History lists stored runs, newest first.
func (s *AllocationService) History(ctx context.Context, limit int) ([]repository.Run, error) {
	if s.Runs == nil {
		return nil, nil
	}
	runs, err := s.Runs.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	return runs, nil
}

// Run loads one stored run with its rows, or nil when id is unknown.
func (s *AllocationService) Run(ctx context.Context, id string) (*repository.Run, error) {
	if s.Runs == nil {
		return nil, nil
	}
	run, err := s.Runs.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get run %s: %w", id, err)
	}
	return run, nil
}

func toRun(res AllocationResult) repository.Run {
	run := repository.Run{
		ID:               res.RunID,
		UnitTotal:        res.Totals.Units,
		AmountTotalMinor: res.Totals.AmountMinor,
		AgentCount:       len(res.Rows),
		CreatedAt:        res.CreatedAt,
		Rows:             make([]repository.RunRow, len(res.Rows)),
	}
	for i, r := range res.Rows {
		run.Rows[i] = repository.RunRow{
			Position:    i,
			FirstName:   r.FirstName,
			LastName:    r.LastName,
			Balance:     r.Balance,
			Units:       r.Units,
			AmountMinor: r.AmountMinor,
		}
	}
	return run
}
