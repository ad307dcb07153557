package api

import (
	"context"
	"encoding/json"

	"github.com/Red1144/VRChatAppi/internal/models"
	"github.com/Red1144/VRChatAppi/internal/store"
)

// GetFavorites fetches the user's favorites from the API. The live payload is
// also written to the request cache under its operation identifier.
func (c *Client) GetFavorites(ctx context.Context) ([]models.Favorite, error) {
	if err := c.requireAuth(); err != nil {
		return nil, err
	}
	path, err := c.formatPath("/favorites")
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
	var favorites []models.Favorite
	if err := json.Unmarshal(raw, &favorites); err != nil {
		return nil, err
	}
	c.requests.Store(FavoritesKey(), raw)
	return favorites, nil
}

// SaveFavorites persists the favorites list as a durable record.
func (c *Client) SaveFavorites(list []models.Favorite) error {
	return c.store.Set(store.KeyFavorites, list)
}

// LoadFavorites reads the persisted favorites list. A nil list means no
// record has been saved yet.
func (c *Client) LoadFavorites() ([]models.Favorite, error) {
	var list []models.Favorite
	ok, err := c.store.Get(store.KeyFavorites, &list)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return list, nil
}
