package commands

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/cryptixcoder/galaxyofdrones-online/internal/application/common"
	"github.com/cryptixcoder/galaxyofdrones-online/internal/domain/lifecycle"
)

// FinishUpgradeCommand finishes pending upgrades
type FinishUpgradeCommand struct {
	IDs []uuid.UUID
	All bool
}

// FinishUpgradeHandler raises the cell's building level by one per
// finished upgrade and deletes the record.
type FinishUpgradeHandler struct {
	finisher finisher
}

func NewFinishUpgradeHandler(uow common.UnitOfWork) *FinishUpgradeHandler {
	return &FinishUpgradeHandler{finisher: finisher{uow: uow}}
}

func (h *FinishUpgradeHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*FinishUpgradeCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	return h.finisher.finishBatch(ctx, lifecycle.KindUpgrade, cmd.IDs, cmd.All)
}
