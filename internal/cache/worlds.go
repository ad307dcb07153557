package cache

import (
	"sync"

	"github.com/Red1144/VRChatAppi/internal/models"
	"github.com/Red1144/VRChatAppi/internal/store"
)

// worldsRecord is the on-disk shape of the world cache.
type worldsRecord struct {
	Worlds []models.WorldSummary `json:"worlds"`
}

// Worlds is the durable world cache: at most one summary per world id,
// persisted on every mutation, surviving restarts. Once a world is cached it
// is authoritative until ClearCache wipes the lot; there is no TTL.
type Worlds struct {
	mu      sync.Mutex
	entries []models.WorldSummary
	store   *store.Store
}

// NewWorlds returns a world cache persisting through st.
func NewWorlds(st *store.Store) *Worlds {
	return &Worlds{store: st}
}

// Load replaces the in-memory entries with the persisted record, if any.
func (c *Worlds) Load() error {
	var rec worldsRecord
	ok, err := c.store.Get(store.KeyWorlds, &rec)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if ok {
		c.entries = rec.Worlds
	}
	return nil
}

// Get returns the cached summary for id.
func (c *Worlds) Get(id string) (models.WorldSummary, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, w := range c.entries {
		if w.ID == id {
			return w, true
		}
	}
	return models.WorldSummary{}, false
}

// Put inserts or refreshes the entry for w.ID and persists the cache. The id
// stays unique: a re-fetch updates in place rather than appending.
func (c *Worlds) Put(w models.WorldSummary) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	replaced := false
	for i := range c.entries {
		if c.entries[i].ID == w.ID {
			c.entries[i] = w
			replaced = true
			break
		}
	}
	if !replaced {
		c.entries = append(c.entries, w)
	}
	return c.persistLocked()
}

// Len reports how many worlds are cached.
func (c *Worlds) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Clear drops every entry and persists the now-empty cache.
func (c *Worlds) Clear() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = nil
	return c.persistLocked()
}

func (c *Worlds) persistLocked() error {
	return c.store.Set(store.KeyWorlds, worldsRecord{Worlds: c.entries})
}
