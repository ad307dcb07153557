package store

import (
	"testing"
)

type record struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestSetGetRoundTrip(t *testing.T) {
	s := New(t.TempDir())

	want := record{Name: "worlds", Count: 3}
	if err := s.Set("worlds", want); err != nil {
		t.Fatal(err)
	}

	var got record
	ok, err := s.Get("worlds", &got)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("record reported missing after Set")
	}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestGetMissingIsNotAnError(t *testing.T) {
	s := New(t.TempDir())

	var got record
	ok, err := s.Get("session", &got)
	if err != nil {
		t.Fatalf("missing record must not error: %v", err)
	}
	if ok {
		t.Error("missing record reported present")
	}
}

func TestSetOverwrites(t *testing.T) {
	s := New(t.TempDir())

	if err := s.Set("settings", record{Name: "old"}); err != nil {
		t.Fatal(err)
	}
	if err := s.Set("settings", record{Name: "new"}); err != nil {
		t.Fatal(err)
	}

	var got record
	if _, err := s.Get("settings", &got); err != nil {
		t.Fatal(err)
	}
	if got.Name != "new" {
		t.Errorf("got %q, want overwrite to win", got.Name)
	}
}

func TestHasAndRemove(t *testing.T) {
	s := New(t.TempDir())

	if s.Has("session") {
		t.Error("Has on empty store")
	}
	if err := s.Set("session", record{}); err != nil {
		t.Fatal(err)
	}
	if !s.Has("session") {
		t.Error("Has false after Set")
	}
	if err := s.Remove("session"); err != nil {
		t.Fatal(err)
	}
	if s.Has("session") {
		t.Error("Has true after Remove")
	}
	// Removing twice is a no-op.
	if err := s.Remove("session"); err != nil {
		t.Errorf("second Remove errored: %v", err)
	}
}
