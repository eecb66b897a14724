package commands

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/cryptixcoder/galaxyofdrones-online/internal/application/common"
	"github.com/cryptixcoder/galaxyofdrones-online/internal/domain/lifecycle"
)

// FinishTrainingCommand finishes pending trainings
type FinishTrainingCommand struct {
	IDs []uuid.UUID
	All bool
}

// FinishTrainingHandler adds the trained units to the planet's
// population and deletes the record.
type FinishTrainingHandler struct {
	finisher finisher
}

func NewFinishTrainingHandler(uow common.UnitOfWork) *FinishTrainingHandler {
	return &FinishTrainingHandler{finisher: finisher{uow: uow}}
}

func (h *FinishTrainingHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*FinishTrainingCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	return h.finisher.finishBatch(ctx, lifecycle.KindTraining, cmd.IDs, cmd.All)
}
