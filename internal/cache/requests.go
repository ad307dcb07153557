// Package cache holds the two result caches that sit in front of the API
// gateway: an in-memory request cache keyed by operation identifier, and a
// durable world cache keyed by world id.
package cache

import (
	"bytes"
	"encoding/json"
	"sync"
)

var emptyObject = json.RawMessage(`{}`)

// Requests remembers the last successful payload per operation identifier.
// Entries live for the process lifetime, are overwritten by every live fetch
// and are never evicted. Freshness is the rate limiter's problem, not ours.
type Requests struct {
	mu      sync.RWMutex
	entries map[string]json.RawMessage
}

// NewRequests returns an empty request cache.
func NewRequests() *Requests {
	return &Requests{entries: make(map[string]json.RawMessage)}
}

// Store overwrites the cached payload for ident.
func (c *Requests) Store(ident string, payload json.RawMessage) {
	cp := make(json.RawMessage, len(payload))
	copy(cp, payload)
	c.mu.Lock()
	c.entries[ident] = cp
	c.mu.Unlock()
}

// Fetch returns the cached payload for ident, or an empty JSON object when
// nothing has been cached. Callers inspect the payload shape, never nil.
func (c *Requests) Fetch(ident string) json.RawMessage {
	c.mu.RLock()
	payload, ok := c.entries[ident]
	c.mu.RUnlock()
	if !ok {
		return emptyObject
	}
	return payload
}

// IsMiss reports whether payload is the empty-object sentinel Fetch returns
// for identifiers that were never cached.
func IsMiss(payload json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(payload), emptyObject)
}
