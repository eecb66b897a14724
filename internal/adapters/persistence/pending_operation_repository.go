package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/cryptixcoder/galaxyofdrones-online/internal/domain/lifecycle"
	"github.com/cryptixcoder/galaxyofdrones-online/internal/domain/shared"
)

// GormPendingOperationRepository implements lifecycle.Repository using GORM
type GormPendingOperationRepository struct {
	db *gorm.DB
}

func NewGormPendingOperationRepository(db *gorm.DB) *GormPendingOperationRepository {
	return &GormPendingOperationRepository{db: db}
}

func (r *GormPendingOperationRepository) Create(ctx context.Context, op *lifecycle.PendingOperation) error {
	result := r.db.WithContext(ctx).Create(operationToModel(op))
	if result.Error != nil {
		return fmt.Errorf("failed to create pending operation: %w", result.Error)
	}
	return nil
}

func (r *GormPendingOperationRepository) Find(ctx context.Context, id uuid.UUID) (*lifecycle.PendingOperation, error) {
	var model PendingOperationModel
	result := r.db.WithContext(ctx).Where("id = ?", id.String()).First(&model)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, shared.NewNotFoundError("pending operation", id.String())
		}
		return nil, fmt.Errorf("failed to find pending operation: %w", result.Error)
	}

	return modelToOperation(&model)
}

func (r *GormPendingOperationRepository) Delete(ctx context.Context, op *lifecycle.PendingOperation) error {
	result := r.db.WithContext(ctx).
		Where("id = ?", op.ID().String()).
		Delete(&PendingOperationModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete pending operation: %w", result.Error)
	}
	return nil
}

func (r *GormPendingOperationRepository) FindByGrid(ctx context.Context, gridID int) ([]*lifecycle.PendingOperation, error) {
	var models []PendingOperationModel
	result := r.db.WithContext(ctx).
		Where("grid_id = ?", gridID).
		Order("started_at").
		Find(&models)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to load pending operations: %w", result.Error)
	}

	return modelsToOperations(models)
}

func (r *GormPendingOperationRepository) DeleteByGridAndKinds(ctx context.Context, gridID int, kinds ...lifecycle.Kind) error {
	if len(kinds) == 0 {
		return nil
	}

	kindStrings := make([]string, len(kinds))
	for i, k := range kinds {
		kindStrings[i] = string(k)
	}

	result := r.db.WithContext(ctx).
		Where("grid_id = ? AND kind IN ?", gridID, kindStrings).
		Delete(&PendingOperationModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete pending operations: %w", result.Error)
	}
	return nil
}

func (r *GormPendingOperationRepository) IDsByKind(ctx context.Context, kind lifecycle.Kind) ([]uuid.UUID, error) {
	var ids []string
	result := r.db.WithContext(ctx).
		Model(&PendingOperationModel{}).
		Where("kind = ?", string(kind)).
		Order("ended_at").
		Pluck("id", &ids)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list pending operation ids: %w", result.Error)
	}

	return parseIDs(ids)
}

func (r *GormPendingOperationRepository) DueIDsByKind(ctx context.Context, kind lifecycle.Kind, now time.Time) ([]uuid.UUID, error) {
	var ids []string
	result := r.db.WithContext(ctx).
		Model(&PendingOperationModel{}).
		Where("kind = ? AND ended_at <= ?", string(kind), now).
		Order("ended_at").
		Pluck("id", &ids)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list due pending operation ids: %w", result.Error)
	}

	return parseIDs(ids)
}

func (r *GormPendingOperationRepository) ConstructingCounts(ctx context.Context, planetID int) (map[int]int, error) {
	var rows []struct {
		BuildingID int
		Count      int
	}

	result := r.db.WithContext(ctx).
		Model(&PendingOperationModel{}).
		Select("building_id, COUNT(*) AS count").
		Where("planet_id = ? AND kind = ? AND building_id IS NOT NULL", planetID, string(lifecycle.KindConstruction)).
		Group("building_id").
		Scan(&rows)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to count pending constructions: %w", result.Error)
	}

	counts := make(map[int]int, len(rows))
	for _, row := range rows {
		counts[row.BuildingID] = row.Count
	}
	return counts, nil
}

func parseIDs(raw []string) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, len(raw))
	for i, s := range raw {
		id, err := uuid.Parse(s)
		if err != nil {
			return nil, fmt.Errorf("invalid pending operation id in database: %w", err)
		}
		ids[i] = id
	}
	return ids, nil
}

func modelsToOperations(models []PendingOperationModel) ([]*lifecycle.PendingOperation, error) {
	ops := make([]*lifecycle.PendingOperation, len(models))
	for i := range models {
		op, err := modelToOperation(&models[i])
		if err != nil {
			return nil, err
		}
		ops[i] = op
	}
	return ops, nil
}

func modelToOperation(model *PendingOperationModel) (*lifecycle.PendingOperation, error) {
	id, err := uuid.Parse(model.ID)
	if err != nil {
		return nil, fmt.Errorf("invalid pending operation id in database: %w", err)
	}

	kind, err := lifecycle.ParseKind(model.Kind)
	if err != nil {
		return nil, fmt.Errorf("invalid pending operation kind in database: %w", err)
	}

	return lifecycle.ReconstructPendingOperation(
		id,
		model.GridID,
		model.PlanetID,
		kind,
		model.BuildingID,
		model.TargetLevel,
		model.UnitID,
		model.Quantity,
		model.StartedAt,
		model.EndedAt,
	), nil
}

func operationToModel(op *lifecycle.PendingOperation) *PendingOperationModel {
	return &PendingOperationModel{
		ID:          op.ID().String(),
		GridID:      op.GridID(),
		PlanetID:    op.PlanetID(),
		Kind:        string(op.Kind()),
		BuildingID:  op.BuildingID(),
		TargetLevel: op.TargetLevel(),
		UnitID:      op.UnitID(),
		Quantity:    op.Quantity(),
		StartedAt:   op.StartedAt(),
		EndedAt:     op.EndedAt(),
	}
}
