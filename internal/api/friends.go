package api

import (
	"context"
	"encoding/json"

	"github.com/Red1144/VRChatAppi/internal/cache"
	"github.com/Red1144/VRChatAppi/internal/models"
)

// GetFriends fetches the friends list. With cached set, the last live payload
// is served from the request cache without touching the network; a cache miss
// yields an empty list.
func (c *Client) GetFriends(ctx context.Context, cached bool) ([]models.Friend, error) {
	if err := c.requireAuth(); err != nil {
		return nil, err
	}

	if cached {
		raw := c.requests.Fetch(FriendsKey())
		if cache.IsMiss(raw) {
			return nil, nil
		}
		var friends []models.Friend
		if err := json.Unmarshal(raw, &friends); err != nil {
			return nil, err
		}
		return friends, nil
	}

	path, err := c.formatPath("/auth/user/friends")
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
	var friends []models.Friend
	if err := json.Unmarshal(raw, &friends); err != nil {
		return nil, err
	}
	c.requests.Store(FriendsKey(), raw)
	return friends, nil
}
