package common

import (
	"context"

	"github.com/cryptixcoder/galaxyofdrones-online/internal/domain/planet"
)

// BuildSurvey collects the planet-wide grouped counts and bonuses the
// eligibility engine decides against, inside the given scope.
func BuildSurvey(ctx context.Context, scope TransactionScope, p *planet.Planet) (planet.Survey, error) {
	constructed, err := scope.Grids().ConstructedCounts(ctx, p.ID())
	if err != nil {
		return planet.Survey{}, err
	}

	constructing, err := scope.PendingOperations().ConstructingCounts(ctx, p.ID())
	if err != nil {
		return planet.Survey{}, err
	}

	return planet.Survey{
		ConstructedCounts:     constructed,
		ConstructingCounts:    constructing,
		DefenseBonus:          p.DefenseBonus(),
		ConstructionTimeBonus: p.ConstructionTimeBonus(),
	}, nil
}
