package persistence

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"gorm.io/gorm"

	"github.com/cryptixcoder/galaxyofdrones-online/internal/domain/player"
	"github.com/cryptixcoder/galaxyofdrones-online/internal/domain/shared"
)

// GormUserRepository implements player.UserRepository using GORM
type GormUserRepository struct {
	db *gorm.DB
}

func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

func (r *GormUserRepository) Find(ctx context.Context, id int) (*player.User, error) {
	var model UserModel
	result := r.db.WithContext(ctx).First(&model, id)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, shared.NewNotFoundError("user", strconv.Itoa(id))
		}
		return nil, fmt.Errorf("failed to find user: %w", result.Error)
	}

	return modelToUser(&model)
}

func (r *GormUserRepository) Save(ctx context.Context, u *player.User) error {
	model, err := userToModel(u)
	if err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Save(model)
	if result.Error != nil {
		return fmt.Errorf("failed to save user: %w", result.Error)
	}
	return nil
}

func modelToUser(model *UserModel) (*player.User, error) {
	var resourceIDs []int
	if model.Resources != "" {
		if err := json.Unmarshal([]byte(model.Resources), &resourceIDs); err != nil {
			return nil, fmt.Errorf("invalid resources column for user %d: %w", model.ID, err)
		}
	}

	return player.ReconstructUser(model.ID, model.Username, model.Energy, resourceIDs), nil
}

func userToModel(u *player.User) (*UserModel, error) {
	resources, err := json.Marshal(u.ResourceIDs())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal resources: %w", err)
	}

	return &UserModel{
		ID:        u.ID(),
		Username:  u.Username(),
		Energy:    u.Energy(),
		Resources: string(resources),
	}, nil
}
