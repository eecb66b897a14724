package player

import (
	"context"

	"github.com/cryptixcoder/galaxyofdrones-online/internal/domain/shared"
)

// User is the acting player. Energy is the secondary attribute the
// producer exchange converts stock into; resourceIDs are the resource
// types the user has unlocked.
type User struct {
	id          int
	username    string
	energy      int64
	resourceIDs map[int]struct{}
}

func NewUser(id int, username string) *User {
	return &User{id: id, username: username, resourceIDs: make(map[int]struct{})}
}

// ReconstructUser restores a user from persisted state
func ReconstructUser(id int, username string, energy int64, resourceIDs []int) *User {
	u := NewUser(id, username)
	u.energy = energy
	for _, rid := range resourceIDs {
		u.resourceIDs[rid] = struct{}{}
	}
	return u
}

func (u *User) ID() int {
	return u.id
}

func (u *User) Username() string {
	return u.username
}

func (u *User) Energy() int64 {
	return u.energy
}

// ResourceIDs returns the unlocked resource ids, unordered
func (u *User) ResourceIDs() []int {
	ids := make([]int, 0, len(u.resourceIDs))
	for rid := range u.resourceIDs {
		ids = append(ids, rid)
	}
	return ids
}

// HasResource reports whether the user is entitled to the resource type
func (u *User) HasResource(resourceID int) bool {
	_, ok := u.resourceIDs[resourceID]
	return ok
}

// UnlockResource grants the user access to the resource type
func (u *User) UnlockResource(resourceID int) {
	u.resourceIDs[resourceID] = struct{}{}
}

// IncrementEnergy adds amount to the user's energy. A negative amount is
// a caller error.
func (u *User) IncrementEnergy(amount int64) error {
	if amount < 0 {
		return shared.NewInvalidAmountError(amount)
	}
	u.energy += amount
	return nil
}

// DecrementEnergy subtracts amount, failing when the user holds less.
// Nothing is mutated on failure.
func (u *User) DecrementEnergy(amount int64) error {
	if amount < 0 {
		return shared.NewInvalidAmountError(amount)
	}
	if amount > u.energy {
		return shared.NewInsufficientStockError(amount, u.energy)
	}
	u.energy -= amount
	return nil
}

// UserRepository persists users
type UserRepository interface {
	Find(ctx context.Context, id int) (*User, error)
	Save(ctx context.Context, u *User) error
}
