package helpers

import (
	"context"
	"strconv"

	"github.com/cryptixcoder/galaxyofdrones-online/internal/domain/catalog"
	"github.com/cryptixcoder/galaxyofdrones-online/internal/domain/shared"
)

// Fixture resource and unit ids shared across tests
const (
	CrystalResourceID = 1
	GasResourceID     = 2
	DroneUnitID       = 1
)

// StaticCatalogProvider serves a fixed in-memory catalog, bypassing the
// database-backed provider in tests.
type StaticCatalogProvider struct {
	Cat       *catalog.Catalog
	Resources map[int]*catalog.Resource
	Units     map[int]*catalog.Unit
}

// NewStaticCatalogProvider returns a provider over the standard test
// catalog, two resources and one trainable unit.
func NewStaticCatalogProvider() *StaticCatalogProvider {
	return &StaticCatalogProvider{
		Cat: NewTestCatalog(),
		Resources: map[int]*catalog.Resource{
			CrystalResourceID: catalog.NewResource(CrystalResourceID, "Crystal", 2.0),
			GasResourceID:     catalog.NewResource(GasResourceID, "Gas", 0.5),
		},
		Units: map[int]*catalog.Unit{
			DroneUnitID: catalog.NewUnit(DroneUnitID, "Drone", 1, 10, 25),
		},
	}
}

func (p *StaticCatalogProvider) Catalog(ctx context.Context) (*catalog.Catalog, error) {
	return p.Cat, nil
}

func (p *StaticCatalogProvider) Resource(ctx context.Context, id int) (*catalog.Resource, error) {
	r, ok := p.Resources[id]
	if !ok {
		return nil, shared.NewNotFoundError("resource", strconv.Itoa(id))
	}
	return r, nil
}

func (p *StaticCatalogProvider) Unit(ctx context.Context, id int) (*catalog.Unit, error) {
	u, ok := p.Units[id]
	if !ok {
		return nil, shared.NewNotFoundError("unit", strconv.Itoa(id))
	}
	return u, nil
}
