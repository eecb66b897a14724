package common

import (
	"context"

	"github.com/cryptixcoder/galaxyofdrones-online/internal/domain/catalog"
	"github.com/cryptixcoder/galaxyofdrones-online/internal/domain/lifecycle"
	"github.com/cryptixcoder/galaxyofdrones-online/internal/domain/planet"
	"github.com/cryptixcoder/galaxyofdrones-online/internal/domain/player"
)

// TransactionScope exposes the repositories bound to one transaction.
// Every read and write issued through it shares the transaction's
// isolation, so conflicting updates to the same grid or stock rows are
// serialized by the store.
type TransactionScope interface {
	Planets() planet.PlanetRepository
	Grids() planet.GridRepository
	Stocks() planet.StockRepository
	Populations() planet.PopulationRepository
	Users() player.UserRepository
	PendingOperations() lifecycle.Repository

	// MarkPlanetDirty schedules the planet for post-commit state
	// synchronization. Grid saves do this implicitly; explicit marking is
	// for mutations the grid repository cannot observe.
	MarkPlanetDirty(planetID int)
}

// UnitOfWork executes fn inside a single atomic transaction. On commit,
// and only then, each planet marked dirty during the transaction is
// synchronized exactly once. A failed fn rolls everything back and no
// synchronization runs.
type UnitOfWork interface {
	Execute(ctx context.Context, fn func(ctx context.Context, scope TransactionScope) error) error
}

// PlanetSynchronizer re-derives a planet's aggregate state from its
// constructed buildings. Implementations must be idempotent: the
// recompute is from current state, never incremental.
type PlanetSynchronizer interface {
	SyncPlanet(ctx context.Context, planetID int) error
}

// CatalogProvider loads the immutable building/resource/unit catalog
type CatalogProvider interface {
	Catalog(ctx context.Context) (*catalog.Catalog, error)
	Resource(ctx context.Context, id int) (*catalog.Resource, error)
	Unit(ctx context.Context, id int) (*catalog.Unit, error)
}
