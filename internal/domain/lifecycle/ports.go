package lifecycle

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Repository persists pending operations. Find returns a NotFoundError
// for unknown ids so finishing a stale id stays a reportable no-op.
type Repository interface {
	Create(ctx context.Context, op *PendingOperation) error
	Find(ctx context.Context, id uuid.UUID) (*PendingOperation, error)
	Delete(ctx context.Context, op *PendingOperation) error

	// FindByGrid returns the cell's pending operations, any kind.
	FindByGrid(ctx context.Context, gridID int) ([]*PendingOperation, error)

	// DeleteByGridAndKinds removes the cell's pending operations of the
	// given kinds. Used by demolition to drop upgrades and trainings that
	// cannot outlive the building they target.
	DeleteByGridAndKinds(ctx context.Context, gridID int, kinds ...Kind) error

	// IDsByKind returns all pending operation ids of one kind, the batch
	// "all" sentinel set.
	IDsByKind(ctx context.Context, kind Kind) ([]uuid.UUID, error)

	// DueIDsByKind returns ids of one kind whose completion time has been
	// reached.
	DueIDsByKind(ctx context.Context, kind Kind, now time.Time) ([]uuid.UUID, error)

	// ConstructingCounts returns, per building id, how many constructions
	// are pending on the planet.
	ConstructingCounts(ctx context.Context, planetID int) (map[int]int, error)
}
