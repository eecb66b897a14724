package catalog

import "context"

// Repository loads the immutable catalog data from the store.
// Implementations live in the persistence adapter.
type Repository interface {
	// LoadCatalog loads all buildings in canonical order and builds the
	// catalog indexes.
	LoadCatalog(ctx context.Context) (*Catalog, error)

	// FindResource returns the resource catalog entry
	FindResource(ctx context.Context, id int) (*Resource, error)

	// FindUnit returns the unit catalog entry
	FindUnit(ctx context.Context, id int) (*Unit, error)
}
