package catalog

import "math"

// Modifiers is the context a building's base stats are resolved against:
// a level plus the owning planet's bonuses in percent points.
type Modifiers struct {
	Level                 int
	DefenseBonus          float64
	ConstructionTimeBonus float64
}

// EffectiveBuilding is a building's stats after applying level and bonus
// modifiers. It is a plain value object; gameplay-visible quantities are
// rounded half-up.
type EffectiveBuilding struct {
	ID                    int
	Name                  string
	Type                  BuildingType
	Level                 int
	ConstructionCost      int64
	ConstructionTime      int
	Defense               int64
	DefenseBonus          float64
	ConstructionTimeBonus float64
	Capacity              int64
	Production            int64
}

// ApplyModifiers resolves the building's effective stats for the given
// modifiers. Pure and deterministic: identical inputs yield identical
// outputs, and the catalog entry is never mutated.
//
// Scaling rules:
//   - construction cost, defense, capacity and production scale linearly
//     with level
//   - construction time scales with level and is reduced by the planet's
//     construction-time bonus
//   - defense is additionally raised by the planet's defense bonus
func (b *Building) ApplyModifiers(m Modifiers) *EffectiveBuilding {
	level := m.Level
	if level < 1 {
		level = 1
	}

	timeFactor := 1 - m.ConstructionTimeBonus/100
	if timeFactor < 0 {
		timeFactor = 0
	}
	defenseFactor := 1 + m.DefenseBonus/100

	return &EffectiveBuilding{
		ID:                    b.id,
		Name:                  b.name,
		Type:                  b.btype,
		Level:                 level,
		ConstructionCost:      roundHalfUp(float64(b.constructionCost) * float64(level)),
		ConstructionTime:      int(roundHalfUp(float64(b.constructionTime) * float64(level) * timeFactor)),
		Defense:               roundHalfUp(float64(b.defense) * float64(level) * defenseFactor),
		DefenseBonus:          b.defenseBonus * float64(level),
		ConstructionTimeBonus: b.constructionTimeBonus * float64(level),
		Capacity:              b.capacity * int64(level),
		Production:            b.production * int64(level),
	}
}

// roundHalfUp rounds to the nearest integer, halves away from zero.
// Intermediate math stays fractional; only exposed quantities are rounded.
func roundHalfUp(v float64) int64 {
	return int64(math.Round(v))
}
