package persistence

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/cryptixcoder/galaxyofdrones-online/internal/application/common"
	"github.com/cryptixcoder/galaxyofdrones-online/internal/domain/lifecycle"
	"github.com/cryptixcoder/galaxyofdrones-online/internal/domain/planet"
	"github.com/cryptixcoder/galaxyofdrones-online/internal/domain/player"
	"github.com/cryptixcoder/galaxyofdrones-online/internal/domain/shared"
)

// GormUnitOfWork runs operations inside a single GORM transaction and
// guarantees the post-commit contract: every planet whose grid was
// touched during the transaction is synchronized exactly once, after the
// commit is durable. This replaces implicit save-hook recomputation with
// an explicit coordinator responsibility, so derived state cannot drift
// as long as mutations go through the scope's repositories.
type GormUnitOfWork struct {
	db           *gorm.DB
	synchronizer common.PlanetSynchronizer
}

func NewGormUnitOfWork(db *gorm.DB) *GormUnitOfWork {
	return &GormUnitOfWork{db: db}
}

// SetSynchronizer wires the planet synchronizer. Set once at startup;
// the synchronizer itself executes through this unit of work, which is
// safe because synchronization never saves grids.
func (u *GormUnitOfWork) SetSynchronizer(s common.PlanetSynchronizer) {
	u.synchronizer = s
}

// Execute runs fn atomically. Domain errors returned by fn roll the
// transaction back and pass through unchanged; duplicate-key conflicts
// surface as ConflictError so callers know a retry may succeed.
func (u *GormUnitOfWork) Execute(ctx context.Context, fn func(ctx context.Context, scope common.TransactionScope) error) error {
	scope := &transactionScope{dirty: make(map[int]struct{})}

	err := u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		scope.tx = tx
		return fn(ctx, scope)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return shared.NewConflictError("concurrent transaction conflict, retry the operation")
		}
		return err
	}

	for planetID := range scope.dirty {
		if u.synchronizer == nil {
			break
		}
		if err := u.synchronizer.SyncPlanet(ctx, planetID); err != nil {
			return fmt.Errorf("failed to synchronize planet %d after commit: %w", planetID, err)
		}
	}

	return nil
}

// transactionScope exposes repositories bound to one transaction and
// records which planets need post-commit synchronization.
type transactionScope struct {
	tx    *gorm.DB
	dirty map[int]struct{}
}

func (s *transactionScope) Planets() planet.PlanetRepository {
	return NewGormPlanetRepository(s.tx)
}

func (s *transactionScope) Grids() planet.GridRepository {
	return NewGormGridRepository(s.tx, s.MarkPlanetDirty)
}

func (s *transactionScope) Stocks() planet.StockRepository {
	return NewGormStockRepository(s.tx)
}

func (s *transactionScope) Populations() planet.PopulationRepository {
	return NewGormPopulationRepository(s.tx)
}

func (s *transactionScope) Users() player.UserRepository {
	return NewGormUserRepository(s.tx)
}

func (s *transactionScope) PendingOperations() lifecycle.Repository {
	return NewGormPendingOperationRepository(s.tx)
}

func (s *transactionScope) MarkPlanetDirty(planetID int) {
	s.dirty[planetID] = struct{}{}
}
