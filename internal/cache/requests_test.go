package cache

import (
	"encoding/json"
	"testing"
)

func TestRequestsOverwrite(t *testing.T) {
	c := NewRequests()

	c.Store("friends", json.RawMessage(`[{"id":"a"}]`))
	c.Store("friends", json.RawMessage(`[{"id":"b"}]`))

	got := string(c.Fetch("friends"))
	if got != `[{"id":"b"}]` {
		t.Errorf("Fetch returned %s, want the later payload", got)
	}
}

func TestRequestsMissReturnsEmptyObject(t *testing.T) {
	c := NewRequests()

	raw := c.Fetch("never-stored")
	if raw == nil {
		t.Fatal("Fetch must never return nil")
	}
	if !IsMiss(raw) {
		t.Errorf("Fetch on unknown identifier returned %s, want empty object", raw)
	}
}

func TestIsMiss(t *testing.T) {
	if IsMiss(json.RawMessage(`[]`)) {
		t.Error("an empty list is a real payload, not a miss")
	}
	if !IsMiss(json.RawMessage(`{}`)) {
		t.Error("the empty object is the miss sentinel")
	}
}

func TestRequestsCopiesPayload(t *testing.T) {
	c := NewRequests()

	payload := json.RawMessage(`{"n":1}`)
	c.Store("meta", payload)
	payload[5] = '2'

	if got := string(c.Fetch("meta")); got != `{"n":1}` {
		t.Errorf("cached payload was aliased to the caller's slice: %s", got)
	}
}
