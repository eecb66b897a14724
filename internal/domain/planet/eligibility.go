package planet

import "github.com/cryptixcoder/galaxyofdrones-online/internal/domain/catalog"

// Surveyor is the read-only eligibility engine: given a snapshot of a
// planet's constructed and constructing buildings it computes, for one
// cell, the buildings that may be constructed there.
type Surveyor struct {
	catalog *catalog.Catalog
}

func NewSurveyor(c *catalog.Catalog) *Surveyor {
	return &Surveyor{catalog: c}
}

// Survey captures the planet-wide state eligibility is decided against.
// Counts are grouped by building id across all cells of the planet.
type Survey struct {
	// ConstructedCounts maps building id to the number of cells holding it.
	ConstructedCounts map[int]int

	// ConstructingCounts maps building id to the number of pending
	// constructions targeting it.
	ConstructingCounts map[int]int

	DefenseBonus          float64
	ConstructionTimeBonus float64
}

// ConstructableBuildings computes the ordered set of effective buildings
// the given cell may construct. hasPendingConstruction reports whether
// the cell already has a construction in flight.
//
// A cell that holds a building, or that is already constructing, yields
// nothing: a cell only ever progresses one construction at a time.
func (s *Surveyor) ConstructableBuildings(g *Grid, hasPendingConstruction bool, survey Survey) []*catalog.EffectiveBuilding {
	result := []*catalog.EffectiveBuilding{}

	if g.HasBuilding() || hasPendingConstruction {
		return result
	}

	requiredCount := s.catalog.RequiredCount()
	distinctConstructed := len(survey.ConstructedCounts)

	for _, b := range s.catalog.Buildings() {
		if !s.prerequisiteMet(b, survey) {
			continue
		}

		if !cellAccepts(g.Type(), b.Type()) {
			continue
		}

		if !s.withinLimits(b, survey, distinctConstructed, requiredCount) {
			continue
		}

		result = append(result, b.ApplyModifiers(catalog.Modifiers{
			Level:                 1,
			DefenseBonus:          survey.DefenseBonus,
			ConstructionTimeBonus: survey.ConstructionTimeBonus,
		}))
	}

	return result
}

// prerequisiteMet reports whether the building's parent already exists
// somewhere on the planet. Roots carry no prerequisite.
func (s *Surveyor) prerequisiteMet(b *catalog.Building, survey Survey) bool {
	if b.IsRoot() {
		return true
	}
	return survey.ConstructedCounts[*b.ParentID()] > 0
}

// cellAccepts encodes the type filter: resource cells only offer miners,
// all other cells offer every non-central, non-miner building.
func cellAccepts(gt GridType, bt catalog.BuildingType) bool {
	if gt == GridTypeResource {
		return bt == catalog.BuildingTypeMiner
	}
	return bt != catalog.BuildingTypeCentral && bt != catalog.BuildingTypeMiner
}

// withinLimits enforces the breadth-first requirement phase and the
// per-building instance cap.
//
// While the planet holds fewer distinct constructed types than there are
// root requirements, a candidate is eligible only with zero instances
// constructed or constructing anywhere on the planet. Past that phase a
// capped building stays eligible while constructed plus constructing
// instances are below its limit.
func (s *Surveyor) withinLimits(b *catalog.Building, survey Survey, distinctConstructed, requiredCount int) bool {
	constructed := survey.ConstructedCounts[b.ID()]
	constructing := survey.ConstructingCounts[b.ID()]

	if distinctConstructed < requiredCount {
		return constructed == 0 && constructing == 0
	}

	if b.HasLimit() {
		return constructed+constructing < b.Limit()
	}

	return true
}
