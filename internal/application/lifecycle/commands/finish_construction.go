package commands

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/cryptixcoder/galaxyofdrones-online/internal/application/common"
	"github.com/cryptixcoder/galaxyofdrones-online/internal/domain/lifecycle"
)

// FinishConstructionCommand finishes pending constructions. All selects
// every pending construction instead of explicit ids.
type FinishConstructionCommand struct {
	IDs []uuid.UUID
	All bool
}

// FinishConstructionHandler applies construction completions: the target
// building is placed on the cell at the target level, the record is
// deleted and the planet's derived state is synchronized after commit.
// Finishing an already-finished or unknown id is a reported no-op.
type FinishConstructionHandler struct {
	finisher finisher
}

func NewFinishConstructionHandler(uow common.UnitOfWork) *FinishConstructionHandler {
	return &FinishConstructionHandler{finisher: finisher{uow: uow}}
}

func (h *FinishConstructionHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*FinishConstructionCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	return h.finisher.finishBatch(ctx, lifecycle.KindConstruction, cmd.IDs, cmd.All)
}
