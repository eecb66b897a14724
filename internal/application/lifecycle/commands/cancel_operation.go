package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/cryptixcoder/galaxyofdrones-online/internal/application/common"
	"github.com/cryptixcoder/galaxyofdrones-online/internal/domain/shared"
)

// CancelOperationCommand cancels a pending construction, upgrade or
// training before it finishes.
type CancelOperationCommand struct {
	ID uuid.UUID
}

// CancelOperationResponse reports whether a pending record was cancelled
type CancelOperationResponse struct {
	Cancelled bool
}

// CancelOperationHandler deletes the pending record without applying any
// completion side effects. Refund policy is a concern of the layer above.
type CancelOperationHandler struct {
	uow common.UnitOfWork
}

func NewCancelOperationHandler(uow common.UnitOfWork) *CancelOperationHandler {
	return &CancelOperationHandler{uow: uow}
}

func (h *CancelOperationHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*CancelOperationCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	response := &CancelOperationResponse{}

	err := h.uow.Execute(ctx, func(ctx context.Context, scope common.TransactionScope) error {
		op, err := scope.PendingOperations().Find(ctx, cmd.ID)
		if err != nil {
			var notFound *shared.NotFoundError
			if errors.As(err, &notFound) {
				// Cancelling an already-finished or unknown id is a no-op.
				return nil
			}
			return err
		}

		if err := scope.PendingOperations().Delete(ctx, op); err != nil {
			return err
		}

		response.Cancelled = true
		return nil
	})
	if err != nil {
		return nil, err
	}

	return response, nil
}
