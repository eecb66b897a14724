package persistence

import (
	"context"
	"sync"

	"github.com/cryptixcoder/galaxyofdrones-online/internal/domain/catalog"
)

// CatalogCache implements the application's CatalogProvider on top of
// catalog.Repository. The catalog is immutable after load, so it is
// read once and shared; resources and units are memoized per id.
type CatalogCache struct {
	repo catalog.Repository

	mu        sync.RWMutex
	catalog   *catalog.Catalog
	resources map[int]*catalog.Resource
	units     map[int]*catalog.Unit
}

func NewCatalogCache(repo catalog.Repository) *CatalogCache {
	return &CatalogCache{
		repo:      repo,
		resources: make(map[int]*catalog.Resource),
		units:     make(map[int]*catalog.Unit),
	}
}

func (c *CatalogCache) Catalog(ctx context.Context) (*catalog.Catalog, error) {
	c.mu.RLock()
	cached := c.catalog
	c.mu.RUnlock()
	if cached != nil {
		return cached, nil
	}

	loaded, err := c.repo.LoadCatalog(ctx)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.catalog = loaded
	c.mu.Unlock()
	return loaded, nil
}

func (c *CatalogCache) Resource(ctx context.Context, id int) (*catalog.Resource, error) {
	c.mu.RLock()
	cached, ok := c.resources[id]
	c.mu.RUnlock()
	if ok {
		return cached, nil
	}

	resource, err := c.repo.FindResource(ctx, id)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.resources[id] = resource
	c.mu.Unlock()
	return resource, nil
}

func (c *CatalogCache) Unit(ctx context.Context, id int) (*catalog.Unit, error) {
	c.mu.RLock()
	cached, ok := c.units[id]
	c.mu.RUnlock()
	if ok {
		return cached, nil
	}

	unit, err := c.repo.FindUnit(ctx, id)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.units[id] = unit
	c.mu.Unlock()
	return unit, nil
}
