package cache

import (
	"testing"

	"github.com/Red1144/VRChatAppi/internal/models"
	"github.com/Red1144/VRChatAppi/internal/store"
)

func testWorld(id, name string) models.WorldSummary {
	return models.WorldSummary{
		ID:            id,
		Name:          name,
		ImageURL:      "https://example.test/" + id + ".png",
		AuthorName:    "aurelia",
		ReleaseStatus: "public",
	}
}

func TestWorldsPutIsIdempotentPerID(t *testing.T) {
	c := NewWorlds(store.New(t.TempDir()))

	if err := c.Put(testWorld("wrld_1", "Hub")); err != nil {
		t.Fatal(err)
	}
	if err := c.Put(testWorld("wrld_1", "Hub v2")); err != nil {
		t.Fatal(err)
	}

	if c.Len() != 1 {
		t.Fatalf("expected 1 entry, got %d", c.Len())
	}
	w, ok := c.Get("wrld_1")
	if !ok {
		t.Fatal("entry missing")
	}
	if w.Name != "Hub v2" {
		t.Errorf("re-put should refresh the projection, got name %q", w.Name)
	}
}

func TestWorldsSurviveReload(t *testing.T) {
	dir := t.TempDir()
	st := store.New(dir)

	c := NewWorlds(st)
	if err := c.Put(testWorld("wrld_1", "Hub")); err != nil {
		t.Fatal(err)
	}
	if err := c.Put(testWorld("wrld_2", "Void")); err != nil {
		t.Fatal(err)
	}

	// Fresh instance over the same directory, as after a restart.
	c2 := NewWorlds(store.New(dir))
	if err := c2.Load(); err != nil {
		t.Fatal(err)
	}
	if c2.Len() != 2 {
		t.Fatalf("expected 2 entries after reload, got %d", c2.Len())
	}
	if _, ok := c2.Get("wrld_2"); !ok {
		t.Error("wrld_2 missing after reload")
	}
}

func TestWorldsClear(t *testing.T) {
	dir := t.TempDir()
	c := NewWorlds(store.New(dir))

	if err := c.Put(testWorld("wrld_1", "Hub")); err != nil {
		t.Fatal(err)
	}
	if err := c.Clear(); err != nil {
		t.Fatal(err)
	}
	if _, ok := c.Get("wrld_1"); ok {
		t.Error("entry survived Clear")
	}

	// The wipe must be durable too.
	c2 := NewWorlds(store.New(dir))
	if err := c2.Load(); err != nil {
		t.Fatal(err)
	}
	if c2.Len() != 0 {
		t.Errorf("expected empty cache after reload, got %d entries", c2.Len())
	}
}

func TestWorldsGetMiss(t *testing.T) {
	c := NewWorlds(store.New(t.TempDir()))
	if _, ok := c.Get("wrld_nope"); ok {
		t.Error("Get on empty cache reported a hit")
	}
}
