package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/cryptixcoder/galaxyofdrones-online/internal/adapters/metrics"
	"github.com/cryptixcoder/galaxyofdrones-online/internal/application/common"
	lifecyclecommands "github.com/cryptixcoder/galaxyofdrones-online/internal/application/lifecycle/commands"
	"github.com/cryptixcoder/galaxyofdrones-online/internal/domain/lifecycle"
	"github.com/cryptixcoder/galaxyofdrones-online/internal/domain/shared"
	"github.com/cryptixcoder/galaxyofdrones-online/internal/infrastructure/config"
)

// Scheduler sweeps the pending operation table on a fixed interval and
// dispatches batch finishes for every operation whose completion time
// has passed. Batches are rate limited so a backlog after downtime does
// not saturate the database.
type Scheduler struct {
	cfg      config.SchedulerConfig
	mediator common.Mediator
	pending  lifecycle.Repository
	clock    shared.Clock
	limiter  *rate.Limiter
}

// New creates a scheduler from its configuration
func New(cfg config.SchedulerConfig, mediator common.Mediator, pending lifecycle.Repository, clock shared.Clock) *Scheduler {
	return &Scheduler{
		cfg:      cfg,
		mediator: mediator,
		pending:  pending,
		clock:    clock,
		limiter:  rate.NewLimiter(rate.Limit(cfg.Rate), cfg.Burst),
	}
}

// Run sweeps until the context is cancelled. A sweep runs immediately on
// start so operations due during downtime finish without waiting a full
// interval.
func (s *Scheduler) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()

	s.sweep(ctx)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

// sweep dispatches one batch finish per kind. A failing kind is logged
// and the others still run; the next sweep retries whatever remains
// pending.
func (s *Scheduler) sweep(ctx context.Context) {
	for _, kind := range []lifecycle.Kind{
		lifecycle.KindConstruction,
		lifecycle.KindUpgrade,
		lifecycle.KindTraining,
	} {
		if err := s.sweepKind(ctx, kind); err != nil {
			log.Printf("scheduler: sweep %s failed: %v", kind, err)
		}
	}
}

func (s *Scheduler) sweepKind(ctx context.Context, kind lifecycle.Kind) error {
	ids, err := s.pending.DueIDsByKind(ctx, kind, s.clock.Now())
	if err != nil {
		return err
	}

	metrics.RecordSweep(string(kind), len(ids))

	if len(ids) == 0 {
		return nil
	}

	if err := s.limiter.Wait(ctx); err != nil {
		return err
	}

	response, err := s.dispatch(ctx, kind, ids)
	if err != nil {
		return err
	}

	log.Printf("scheduler: finished %d/%d due %s operations",
		response.Finished(), len(ids), kind)
	return nil
}

func (s *Scheduler) dispatch(ctx context.Context, kind lifecycle.Kind, ids []uuid.UUID) (*lifecyclecommands.BatchFinishResponse, error) {
	var request common.Request
	switch kind {
	case lifecycle.KindConstruction:
		request = &lifecyclecommands.FinishConstructionCommand{IDs: ids}
	case lifecycle.KindUpgrade:
		request = &lifecyclecommands.FinishUpgradeCommand{IDs: ids}
	case lifecycle.KindTraining:
		request = &lifecyclecommands.FinishTrainingCommand{IDs: ids}
	}

	response, err := s.mediator.Send(ctx, request)
	if err != nil {
		return nil, err
	}
	return response.(*lifecyclecommands.BatchFinishResponse), nil
}
