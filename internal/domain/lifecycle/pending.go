package lifecycle

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/cryptixcoder/galaxyofdrones-online/internal/domain/shared"
)

// Kind discriminates the pending operation variants. Modelling the three
// variants as one entity keeps per-cell mutual exclusivity a single
// uniqueness rule instead of three parallel relations.
type Kind string

const (
	KindConstruction Kind = "CONSTRUCTION"
	KindUpgrade      Kind = "UPGRADE"
	KindTraining     Kind = "TRAINING"
)

// ParseKind converts a stored kind string back to a Kind
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindConstruction, KindUpgrade, KindTraining:
		return Kind(s), nil
	}
	return "", fmt.Errorf("unknown pending operation kind %q", s)
}

// PendingOperation is a time-bounded operation tied 1:1 to a grid cell.
// It exists from start until an explicit finish or cancel; finishing
// applies the side effects and deletes the record, so a record's mere
// existence means the operation is still pending.
type PendingOperation struct {
	id       uuid.UUID
	gridID   int
	planetID int
	kind     Kind

	// Construction and upgrade outcome.
	buildingID  *int
	targetLevel *int

	// Training outcome.
	unitID   *int
	quantity int64

	startedAt time.Time
	endedAt   time.Time
}

// NewConstruction starts a construction of the given building on an empty
// cell, completing after duration.
func NewConstruction(gridID, planetID, buildingID int, duration time.Duration, clock shared.Clock) *PendingOperation {
	now := clock.Now()
	level := 1
	return &PendingOperation{
		id:          uuid.New(),
		gridID:      gridID,
		planetID:    planetID,
		kind:        KindConstruction,
		buildingID:  &buildingID,
		targetLevel: &level,
		startedAt:   now,
		endedAt:     now.Add(duration),
	}
}

// NewUpgrade starts an upgrade of the cell's building to targetLevel
func NewUpgrade(gridID, planetID, targetLevel int, duration time.Duration, clock shared.Clock) *PendingOperation {
	now := clock.Now()
	return &PendingOperation{
		id:          uuid.New(),
		gridID:      gridID,
		planetID:    planetID,
		kind:        KindUpgrade,
		targetLevel: &targetLevel,
		startedAt:   now,
		endedAt:     now.Add(duration),
	}
}

// NewTraining starts training quantity units on the cell's trainer
func NewTraining(gridID, planetID, unitID int, quantity int64, duration time.Duration, clock shared.Clock) *PendingOperation {
	now := clock.Now()
	return &PendingOperation{
		id:        uuid.New(),
		gridID:    gridID,
		planetID:  planetID,
		kind:      KindTraining,
		unitID:    &unitID,
		quantity:  quantity,
		startedAt: now,
		endedAt:   now.Add(duration),
	}
}

// ReconstructPendingOperation restores a pending operation from persisted state
func ReconstructPendingOperation(
	id uuid.UUID,
	gridID, planetID int,
	kind Kind,
	buildingID, targetLevel, unitID *int,
	quantity int64,
	startedAt, endedAt time.Time,
) *PendingOperation {
	return &PendingOperation{
		id:          id,
		gridID:      gridID,
		planetID:    planetID,
		kind:        kind,
		buildingID:  buildingID,
		targetLevel: targetLevel,
		unitID:      unitID,
		quantity:    quantity,
		startedAt:   startedAt,
		endedAt:     endedAt,
	}
}

func (p *PendingOperation) ID() uuid.UUID {
	return p.id
}

func (p *PendingOperation) GridID() int {
	return p.gridID
}

func (p *PendingOperation) PlanetID() int {
	return p.planetID
}

func (p *PendingOperation) Kind() Kind {
	return p.kind
}

// BuildingID returns the target building for constructions, nil otherwise
func (p *PendingOperation) BuildingID() *int {
	return p.buildingID
}

// TargetLevel returns the resulting level for constructions and upgrades
func (p *PendingOperation) TargetLevel() *int {
	return p.targetLevel
}

// UnitID returns the trained unit for trainings, nil otherwise
func (p *PendingOperation) UnitID() *int {
	return p.unitID
}

// Quantity returns the number of units being trained
func (p *PendingOperation) Quantity() int64 {
	return p.quantity
}

func (p *PendingOperation) StartedAt() time.Time {
	return p.startedAt
}

func (p *PendingOperation) EndedAt() time.Time {
	return p.endedAt
}

// IsDue reports whether the completion time has been reached
func (p *PendingOperation) IsDue(now time.Time) bool {
	return !p.endedAt.After(now)
}

// ValidateExclusive checks that starting next alongside the cell's
// existing pending operations keeps the mutual exclusivity invariant:
// at most one operation per kind, and a construction never coexists
// with anything else on the same cell.
func ValidateExclusive(existing []Kind, next Kind) error {
	for _, k := range existing {
		if k == next {
			return shared.NewInvalidRequestError(
				fmt.Sprintf("cell already has a pending %s", next))
		}
		if k == KindConstruction || next == KindConstruction {
			return shared.NewInvalidRequestError(
				fmt.Sprintf("pending %s excludes starting a %s on the same cell", k, next))
		}
	}
	return nil
}
