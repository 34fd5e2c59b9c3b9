package view

import (
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/hieuluvjingliu/GardenBredN/internal/domain"
)

// CacheSchemaVersion is the current version of the cached view shape.
// Increment when PlayerView changes to auto-invalidate old entries.
const CacheSchemaVersion = "1.0"

// cachedViewEntry wraps a snapshot with version metadata for invalidation
type cachedViewEntry struct {
	Version string             `json:"version"`
	View    *domain.PlayerView `json:"view"`
}

// viewCache is a short-TTL LRU over computed player snapshots. The push loop
// recomputes every connected player's view on an interval; the cache absorbs
// the request-path reads in between.
type viewCache struct {
	lru *expirable.LRU[uuid.UUID, *cachedViewEntry]
}

func newViewCache(size int, ttl time.Duration) *viewCache {
	return &viewCache{
		lru: expirable.NewLRU[uuid.UUID, *cachedViewEntry](size, nil, ttl),
	}
}

func (c *viewCache) Get(playerID uuid.UUID) (*domain.PlayerView, bool) {
	entry, found := c.lru.Get(playerID)
	if !found {
		return nil, false
	}
	if entry.Version != CacheSchemaVersion {
		c.lru.Remove(playerID)
		return nil, false
	}
	return entry.View, true
}

func (c *viewCache) Set(playerID uuid.UUID, v *domain.PlayerView) {
	c.lru.Add(playerID, &cachedViewEntry{Version: CacheSchemaVersion, View: v})
}

func (c *viewCache) Invalidate(playerID uuid.UUID) {
	c.lru.Remove(playerID)
}
