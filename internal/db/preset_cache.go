package db

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// PresetCache is a PresetStore that keeps presets looked up by ID in memory.
// Writes go through to the underlying store and invalidate the cache.
//
// Writes are serialized. Every invalidation bumps a generation counter, and a
// read only populates the cache when no invalidation happened while its store
// call was in flight, so a row read before a concurrent write is never cached
// after that write.
type PresetCache struct {
	store PresetStore

	writeMu sync.Mutex

	mu   sync.RWMutex
	gen  uint64
	byID map[uuid.UUID]*FilterPreset
}

var _ PresetStore = (*PresetCache)(nil)

func NewPresetCache(store PresetStore) *PresetCache {
	return &PresetCache{store: store, byID: make(map[uuid.UUID]*FilterPreset)}
}

// lookup returns the cached preset, or the current generation on a miss.
func (c *PresetCache) lookup(id uuid.UUID) (*FilterPreset, uint64, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	p, ok := c.byID[id]
	return p, c.gen, ok
}

func (c *PresetCache) generation() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.gen
}

// putIf caches p unless the cache was invalidated since gen was read.
func (c *PresetCache) putIf(p *FilterPreset, gen uint64) {
	if p == nil || !p.ID.Valid {
		return
	}
	c.mu.Lock()
	if c.gen == gen {
		c.byID[uuid.UUID(p.ID.Bytes)] = p
	}
	c.mu.Unlock()
}

// evict drops id and returns the new generation.
func (c *PresetCache) evict(id uuid.UUID) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gen++
	delete(c.byID, id)
	return c.gen
}

// Reload drops every cached preset.
func (c *PresetCache) Reload() {
	c.mu.Lock()
	c.gen++
	c.byID = make(map[uuid.UUID]*FilterPreset)
	c.mu.Unlock()
}

func (c *PresetCache) CreatePreset(ctx context.Context, arg CreatePresetParams) (*FilterPreset, error) {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	gen := c.generation()
	p, err := c.store.CreatePreset(ctx, arg)
	if err != nil {
		return nil, err
	}
	c.putIf(p, gen)
	return p, nil
}

func (c *PresetCache) GetPreset(ctx context.Context, id uuid.UUID) (*FilterPreset, error) {
	p, gen, ok := c.lookup(id)
	if ok {
		return p, nil
	}
	p, err := c.store.GetPreset(ctx, id)
	if err != nil {
		return nil, err
	}
	c.putIf(p, gen)
	return p, nil
}

func (c *PresetCache) GetPresetByName(ctx context.Context, name string) (*FilterPreset, error) {
	gen := c.generation()
	p, err := c.store.GetPresetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	c.putIf(p, gen)
	return p, nil
}

func (c *PresetCache) ListPresets(ctx context.Context) ([]*FilterPreset, error) {
	return c.store.ListPresets(ctx)
}

func (c *PresetCache) UpdatePreset(ctx context.Context, arg UpdatePresetParams) (*FilterPreset, error) {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	c.evict(arg.ID)
	p, err := c.store.UpdatePreset(ctx, arg)
	gen := c.evict(arg.ID)
	if err != nil {
		return nil, err
	}
	c.putIf(p, gen)
	return p, nil
}

func (c *PresetCache) DeletePreset(ctx context.Context, id uuid.UUID) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	c.evict(id)
	err := c.store.DeletePreset(ctx, id)
	c.evict(id)
	return err
}
