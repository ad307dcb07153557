package api

import (
	"fmt"

	"github.com/Red1144/VRChatAppi/internal/models"
	"github.com/Red1144/VRChatAppi/internal/store"
)

// GetUserSettings returns the current settings.
func (c *Client) GetUserSettings() models.Settings {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.settings
}

// SaveSettings validates s, swaps it in wholesale and persists it.
func (c *Client) SaveSettings(s models.Settings) error {
	if !models.ValidSortingOrder(s.SortingOrder) {
		return fmt.Errorf("invalid sorting order %q", s.SortingOrder)
	}
	for name, v := range map[string]int{
		"maxAvatarsPerPage":          s.MaxAvatarsPerPage,
		"maxWorldsPerPage":           s.MaxWorldsPerPage,
		"notificationTimeoutSeconds": s.NotificationTimeout,
	} {
		if v < 1 || v > 100 {
			return fmt.Errorf("%s out of range: %d", name, v)
		}
	}
	if err := c.store.Set(store.KeySettings, s); err != nil {
		return err
	}
	c.mu.Lock()
	c.settings = s
	c.mu.Unlock()
	return nil
}

// LoadSettings reads the persisted settings record. When none exists the
// defaults stay in place.
func (c *Client) LoadSettings() error {
	var s models.Settings
	ok, err := c.store.Get(store.KeySettings, &s)
	if err != nil {
		return err
	}
	if ok {
		c.mu.Lock()
		c.settings = s
		c.mu.Unlock()
	}
	return nil
}
