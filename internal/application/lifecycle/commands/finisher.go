package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/cryptixcoder/galaxyofdrones-online/internal/adapters/metrics"
	"github.com/cryptixcoder/galaxyofdrones-online/internal/application/common"
	"github.com/cryptixcoder/galaxyofdrones-online/internal/domain/lifecycle"
	"github.com/cryptixcoder/galaxyofdrones-online/internal/domain/shared"
)

// Outcome is the per-record result of a finish
type Outcome string

const (
	// OutcomeFinished means the side effects were applied and the record
	// deleted.
	OutcomeFinished Outcome = "FINISHED"

	// OutcomeNotFound means the id did not resolve to a pending record of
	// the requested kind. Reported, never aborts the batch.
	OutcomeNotFound Outcome = "NOT_FOUND"
)

// FinishResult reports the outcome for one id of a batch
type FinishResult struct {
	ID      uuid.UUID
	Outcome Outcome
}

// BatchFinishResponse is the per-record report of a batch finish
type BatchFinishResponse struct {
	Results []FinishResult
}

// Finished counts the records that were actually finished
func (r *BatchFinishResponse) Finished() int {
	n := 0
	for _, res := range r.Results {
		if res.Outcome == OutcomeFinished {
			n++
		}
	}
	return n
}

// finisher applies completion side effects for every pending operation
// kind. All finish handlers share it so the transaction shape is
// identical: resolve, apply, delete, and let the committed grid save
// trigger planet synchronization.
type finisher struct {
	uow common.UnitOfWork
}

// finishBatch processes the ids inside one shared transaction. A stale or
// unknown id yields a NOT_FOUND result and processing continues; any
// other failure aborts the whole batch. When all is set, the ids are
// every pending record of the kind.
func (f *finisher) finishBatch(ctx context.Context, kind lifecycle.Kind, ids []uuid.UUID, all bool) (*BatchFinishResponse, error) {
	response := &BatchFinishResponse{}

	err := f.uow.Execute(ctx, func(ctx context.Context, scope common.TransactionScope) error {
		if all {
			var err error
			ids, err = scope.PendingOperations().IDsByKind(ctx, kind)
			if err != nil {
				return err
			}
		}

		for _, id := range ids {
			outcome, err := f.finishOne(ctx, scope, kind, id)
			if err != nil {
				return err
			}
			response.Results = append(response.Results, FinishResult{ID: id, Outcome: outcome})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Recorded only after the commit: an aborted batch leaves no trace.
	for _, result := range response.Results {
		metrics.RecordFinish(string(kind), string(result.Outcome))
	}

	return response, nil
}

func (f *finisher) finishOne(ctx context.Context, scope common.TransactionScope, kind lifecycle.Kind, id uuid.UUID) (Outcome, error) {
	op, err := scope.PendingOperations().Find(ctx, id)
	if err != nil {
		var notFound *shared.NotFoundError
		if errors.As(err, &notFound) {
			return OutcomeNotFound, nil
		}
		return "", err
	}

	if op.Kind() != kind {
		return OutcomeNotFound, nil
	}

	if err := f.apply(ctx, scope, op); err != nil {
		return "", err
	}

	if err := scope.PendingOperations().Delete(ctx, op); err != nil {
		return "", err
	}

	return OutcomeFinished, nil
}

// apply performs the kind-specific side effects on the owning grid or
// planet. Grid saves mark the planet for post-commit synchronization.
func (f *finisher) apply(ctx context.Context, scope common.TransactionScope, op *lifecycle.PendingOperation) error {
	switch op.Kind() {
	case lifecycle.KindConstruction:
		grid, err := scope.Grids().Find(ctx, op.GridID())
		if err != nil {
			return err
		}
		grid.AssignBuilding(*op.BuildingID(), *op.TargetLevel())
		return scope.Grids().Save(ctx, grid)

	case lifecycle.KindUpgrade:
		grid, err := scope.Grids().Find(ctx, op.GridID())
		if err != nil {
			return err
		}
		grid.IncreaseLevel()
		return scope.Grids().Save(ctx, grid)

	case lifecycle.KindTraining:
		population, err := scope.Populations().FindOrCreate(ctx, op.PlanetID(), *op.UnitID())
		if err != nil {
			return err
		}
		if err := population.Increment(op.Quantity()); err != nil {
			return err
		}
		return scope.Populations().Save(ctx, population)
	}

	return fmt.Errorf("unknown pending operation kind %q", op.Kind())
}
