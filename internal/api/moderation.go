package api

import (
	"context"
	"encoding/json"

	"github.com/Red1144/VRChatAppi/internal/models"
)

// ModGetMine fetches the player moderations the user has sent.
func (c *Client) ModGetMine(ctx context.Context) ([]models.Moderation, error) {
	return c.getModerations(ctx, "/auth/user/playermoderations")
}

// ModGetAgainstMe fetches the player moderations recorded against the user.
func (c *Client) ModGetAgainstMe(ctx context.Context) ([]models.Moderation, error) {
	return c.getModerations(ctx, "/auth/user/playermoderated")
}

func (c *Client) getModerations(ctx context.Context, endpoint string) ([]models.Moderation, error) {
	if err := c.requireAuth(); err != nil {
		return nil, err
	}
	path, err := c.formatPath(endpoint)
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
	var mods []models.Moderation
	if err := json.Unmarshal(raw, &mods); err != nil {
		return nil, err
	}
	return mods, nil
}
