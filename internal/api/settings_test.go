package api

import (
	"testing"

	"github.com/Red1144/VRChatAppi/internal/models"
	"github.com/Red1144/VRChatAppi/internal/store"
)

func TestSettingsDefaults(t *testing.T) {
	c := New(store.New(t.TempDir()), Options{BaseURL: "http://unused.test"})

	s := c.GetUserSettings()
	if s.MaxAvatarsPerPage != 10 || s.MaxWorldsPerPage != 20 || s.NotificationTimeout != 5 {
		t.Errorf("unexpected defaults: %+v", s)
	}
	if s.SortingOrder != models.SortUpdated {
		t.Errorf("default sorting order = %q", s.SortingOrder)
	}
	if s.AllowWriteAccess {
		t.Error("writes must default to off")
	}
}

func TestSaveSettingsValidation(t *testing.T) {
	c := New(store.New(t.TempDir()), Options{BaseURL: "http://unused.test"})

	s := c.GetUserSettings()
	s.SortingOrder = "alphabetical"
	if err := c.SaveSettings(s); err == nil {
		t.Error("unknown sorting order accepted")
	}

	s = c.GetUserSettings()
	s.MaxWorldsPerPage = 101
	if err := c.SaveSettings(s); err == nil {
		t.Error("out-of-range page size accepted")
	}

	s = c.GetUserSettings()
	s.NotificationTimeout = 0
	if err := c.SaveSettings(s); err == nil {
		t.Error("zero timeout accepted")
	}

	// A rejected save must not touch the live settings.
	if got := c.GetUserSettings(); got.MaxWorldsPerPage != 20 {
		t.Errorf("failed save leaked into settings: %+v", got)
	}
}

func TestSettingsPersistAcrossRestart(t *testing.T) {
	dir := t.TempDir()

	a := New(store.New(dir), Options{BaseURL: "http://unused.test"})
	s := a.GetUserSettings()
	s.UseAlternateTheme = true
	s.MaxAvatarsPerPage = 25
	s.SortingOrder = models.SortCreated
	if err := a.SaveSettings(s); err != nil {
		t.Fatal(err)
	}

	b := New(store.New(dir), Options{BaseURL: "http://unused.test"})
	if err := b.LoadSettings(); err != nil {
		t.Fatal(err)
	}
	got := b.GetUserSettings()
	if !got.UseAlternateTheme || got.MaxAvatarsPerPage != 25 || got.SortingOrder != models.SortCreated {
		t.Errorf("settings did not survive the restart: %+v", got)
	}
}

func TestLoadSettingsWithoutRecordKeepsDefaults(t *testing.T) {
	c := New(store.New(t.TempDir()), Options{BaseURL: "http://unused.test"})
	if err := c.LoadSettings(); err != nil {
		t.Fatal(err)
	}
	if got := c.GetUserSettings(); got != models.DefaultSettings() {
		t.Errorf("defaults disturbed: %+v", got)
	}
}
