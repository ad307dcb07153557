package api

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Red1144/VRChatAppi/internal/cache"
	"github.com/Red1144/VRChatAppi/internal/models"
)

// GetAvatars lists the user's own avatars, one page at a time. amount, offset
// and order are all part of the operation identifier, so each page is cached
// and throttled independently.
func (c *Client) GetAvatars(ctx context.Context, amount, offset int, order string, cached bool) ([]models.Avatar, error) {
	if err := c.requireAuth(); err != nil {
		return nil, err
	}
	key := AvatarsKey(amount, offset, order)

	if cached {
		raw := c.requests.Fetch(key)
		if cache.IsMiss(raw) {
			return nil, nil
		}
		var avatars []models.Avatar
		if err := json.Unmarshal(raw, &avatars); err != nil {
			return nil, err
		}
		return avatars, nil
	}

	path, err := c.formatPath("/avatars")
	if err != nil {
		return nil, err
	}
	path += fmt.Sprintf("&user=me&releaseStatus=all&n=%d&offset=%d&sort=%s&order=descending", amount, offset, order)
	raw, err := c.get(ctx, path)
	if err != nil {
		return nil, err
	}
	if apiErr := apiError(raw); apiErr != nil {
		return nil, apiErr
	}
	var avatars []models.Avatar
	if err := json.Unmarshal(raw, &avatars); err != nil {
		return nil, err
	}
	c.requests.Store(key, raw)
	return avatars, nil
}

// GetAvatar fetches a single avatar by id.
func (c *Client) GetAvatar(ctx context.Context, id string) (models.Avatar, error) {
	if err := c.requireAuth(); err != nil {
		return models.Avatar{}, err
	}
	path, err := c.formatPath("/avatars/" + id)
	if err != nil {
		return models.Avatar{}, err
	}
	raw, err := c.get(ctx, path)
	if err != nil {
		return models.Avatar{}, err
	}
	if apiErr := apiError(raw); apiErr != nil {
		return models.Avatar{}, apiErr
	}
	var avatar models.Avatar
	if err := json.Unmarshal(raw, &avatar); err != nil {
		return models.Avatar{}, err
	}
	return avatar, nil
}

// SaveAvatar updates avatar metadata. Refused while the allow-write-access
// setting is off.
func (c *Client) SaveAvatar(ctx context.Context, id string, update models.AvatarUpdate) (models.Avatar, error) {
	if !c.GetUserSettings().AllowWriteAccess {
		return models.Avatar{}, ErrWritesDisabled
	}
	if err := c.requireAuth(); err != nil {
		return models.Avatar{}, err
	}
	path, err := c.formatPath("/avatars/" + id)
	if err != nil {
		return models.Avatar{}, err
	}
	raw, err := c.put(ctx, path, update)
	if err != nil {
		return models.Avatar{}, err
	}
	if apiErr := apiError(raw); apiErr != nil {
		return models.Avatar{}, apiErr
	}
	var avatar models.Avatar
	if err := json.Unmarshal(raw, &avatar); err != nil {
		return models.Avatar{}, err
	}
	return avatar, nil
}
