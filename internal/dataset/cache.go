package dataset

import (
	"sync"

	"github.com/signaldeck/signaldeck-backend-go/internal/models"
)

// Cache is an explicit keyed cache of loaded datasets (region -> Dataset).
// Correctness never depends on it; it only avoids re-parsing when the same
// region is requested repeatedly within a session.
type Cache struct {
	loader *Loader

	mu   sync.RWMutex
	data map[models.Region]*models.Dataset
}

// NewCache wraps a loader with a keyed cache.
func NewCache(loader *Loader) *Cache {
	return &Cache{
		loader: loader,
		data:   make(map[models.Region]*models.Dataset),
	}
}

// Get returns the cached dataset for a region, loading it on first use.
// Load failures are not cached.
func (c *Cache) Get(region models.Region) (*models.Dataset, error) {
	c.mu.RLock()
	ds, ok := c.data[region]
	c.mu.RUnlock()
	if ok {
		return ds, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if ds, ok := c.data[region]; ok {
		return ds, nil
	}

	ds, err := c.loader.Load(region)
	if err != nil {
		return nil, err
	}
	c.data[region] = ds
	return ds, nil
}

// Invalidate drops the cached dataset for a region.
func (c *Cache) Invalidate(region models.Region) {
	c.mu.Lock()
	delete(c.data, region)
	c.mu.Unlock()
}

// Reload drops the cached dataset and loads it again wholesale.
func (c *Cache) Reload(region models.Region) (*models.Dataset, error) {
	c.Invalidate(region)
	return c.Get(region)
}
