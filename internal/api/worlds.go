package api

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Red1144/VRChatAppi/internal/cache"
	"github.com/Red1144/VRChatAppi/internal/models"
)

// GetWorlds lists the user's own worlds.
func (c *Client) GetWorlds(ctx context.Context, amount int, order string, cached bool) ([]models.World, error) {
	if err := c.requireAuth(); err != nil {
		return nil, err
	}
	key := WorldsKey(amount, order)

	if cached {
		raw := c.requests.Fetch(key)
		if cache.IsMiss(raw) {
			return nil, nil
		}
		var worlds []models.World
		if err := json.Unmarshal(raw, &worlds); err != nil {
			return nil, err
		}
		return worlds, nil
	}

	path, err := c.formatPath("/worlds")
	if err != nil {
		return nil, err
	}
	path += fmt.Sprintf("&user=me&releaseStatus=all&n=%d&sort=%s&order=descending", amount, order)
	raw, err := c.get(ctx, path)
	if err != nil {
		return nil, err
	}
	if apiErr := apiError(raw); apiErr != nil {
		return nil, apiErr
	}
	var worlds []models.World
	if err := json.Unmarshal(raw, &worlds); err != nil {
		return nil, err
	}
	c.requests.Store(key, raw)
	return worlds, nil
}

// GetOwnWorld fetches one of the user's own worlds, unprojected.
func (c *Client) GetOwnWorld(ctx context.Context, id string) (models.World, error) {
	if err := c.requireAuth(); err != nil {
		return models.World{}, err
	}
	path, err := c.formatPath("/worlds/" + id)
	if err != nil {
		return models.World{}, err
	}
	raw, err := c.get(ctx, path)
	if err != nil {
		return models.World{}, err
	}
	if apiErr := apiError(raw); apiErr != nil {
		return models.World{}, apiErr
	}
	var world models.World
	if err := json.Unmarshal(raw, &world); err != nil {
		return models.World{}, err
	}
	return world, nil
}

// GetWorld resolves a world id to its cached summary. The durable world cache
// is consulted first and is authoritative once populated; a hit returns
// without any network traffic even when the caller would have accepted a live
// fetch. On a miss with cacheOnly set, the nil summary distinguishes "never
// fetched" from a cached entry. Otherwise the world is fetched live,
// projected, merged into the cache and persisted.
func (c *Client) GetWorld(ctx context.Context, id string, cacheOnly bool) (*models.WorldSummary, error) {
	if w, ok := c.worlds.Get(id); ok {
		return &w, nil
	}
	if cacheOnly {
		return nil, nil
	}
	if err := c.requireAuth(); err != nil {
		return nil, err
	}

	path, err := c.formatPath("/worlds/" + id)
	if err != nil {
		return nil, err
	}
	raw, err := c.get(ctx, path)
	if err != nil {
		return nil, err
	}
	if apiErr := apiError(raw); apiErr != nil {
		return nil, apiErr
	}
	var world models.World
	if err := json.Unmarshal(raw, &world); err != nil {
		return nil, err
	}
	summary := world.Summary()
	if err := c.worlds.Put(summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

// GetWorldMetadata fetches the metadata of one world instance. Cached mode
// serves the last live payload for this exact world+instance pair; a miss
// yields nil.
func (c *Client) GetWorldMetadata(ctx context.Context, worldID, instanceID string, cached bool) (*models.Instance, error) {
	if err := c.requireAuth(); err != nil {
		return nil, err
	}
	key := InstanceKey(worldID, instanceID)

	if cached {
		raw := c.requests.Fetch(key)
		if cache.IsMiss(raw) {
			return nil, nil
		}
		var inst models.Instance
		if err := json.Unmarshal(raw, &inst); err != nil {
			return nil, err
		}
		return &inst, nil
	}

	path, err := c.formatPath("/worlds/" + worldID + "/" + instanceID)
	if err != nil {
		return nil, err
	}
	raw, err := c.get(ctx, path)
	if err != nil {
		return nil, err
	}
	if apiErr := apiError(raw); apiErr != nil {
		return nil, apiErr
	}
	var inst models.Instance
	if err := json.Unmarshal(raw, &inst); err != nil {
		return nil, err
	}
	c.requests.Store(key, raw)
	return &inst, nil
}

// ClearCache wipes the durable world cache.
func (c *Client) ClearCache() error {
	return c.worlds.Clear()
}
