package main

import (
	"context"
	"errors"
	"testing"
)

func TestProfileStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s := &profileStore{store: newMemoryStore()}

	want := profile{Age: 41, Height: 168.5, Weight: 63.2, Activity: "sedentary", Goal: "gain", Gender: "female", Preference: "veg"}
	if err := s.save(ctx, want); err != nil {
		t.Fatalf("save: %v", err)
	}

	got := s.load(ctx)
	if got == nil {
		t.Fatal("load returned nil after save")
	}
	if *got != want {
		t.Errorf("load = %+v, want %+v", *got, want)
	}
}

// TestProfileStore_SaveReplaces verifies there are no partial updates.
func TestProfileStore_SaveReplaces(t *testing.T) {
	ctx := context.Background()
	s := &profileStore{store: newMemoryStore()}

	s.save(ctx, profile{Age: 30, Height: 180, Weight: 80, Goal: "loss", Preference: "nonveg"})
	s.save(ctx, profile{Age: 31, Height: 180, Weight: 79})

	got := s.load(ctx)
	if got.Goal != "" || got.Preference != "" {
		t.Errorf("fields from the first save leaked through: %+v", *got)
	}
}

func TestProfileStore_LoadMissingOrCorrupt(t *testing.T) {
	ctx := context.Background()
	store := newMemoryStore()
	s := &profileStore{store: store}

	if got := s.load(ctx); got != nil {
		t.Errorf("expected nil for missing profile, got %+v", got)
	}

	for _, raw := range []string{"{broken", "null", "[1,2]"} {
		store.Set(ctx, profileKey, raw)
		if got := s.load(ctx); got != nil {
			t.Errorf("raw %q: expected nil, got %+v", raw, got)
		}
	}
}

func TestProfileStore_Clear(t *testing.T) {
	ctx := context.Background()
	s := &profileStore{store: newMemoryStore()}
	s.save(ctx, makeProfile("male", "active", "maintain"))

	if err := s.clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if got := s.load(ctx); got != nil {
		t.Errorf("expected nil after clear, got %+v", got)
	}
}

/* ─── Theme ──────────────────────────────────────────────────────────── */

func TestThemeStore(t *testing.T) {
	ctx := context.Background()
	store := newMemoryStore()
	s := &themeStore{store: store}

	if got := s.load(ctx); got != "dark" {
		t.Errorf("default theme = %q, want dark", got)
	}

	store.Set(ctx, themeKey, "purple")
	if got := s.load(ctx); got != "dark" {
		t.Errorf("unknown stored theme = %q, want dark", got)
	}

	if err := s.save(ctx, "sepia"); !errors.Is(err, errInvalidTheme) {
		t.Errorf("save(sepia) err = %v, want errInvalidTheme", err)
	}

	if next, err := s.toggle(ctx); err != nil || next != "light" {
		t.Errorf("toggle from dark = %q, %v; want light", next, err)
	}
	if got := s.load(ctx); got != "light" {
		t.Errorf("after toggle load = %q, want light", got)
	}
	if next, _ := s.toggle(ctx); next != "dark" {
		t.Errorf("second toggle = %q, want dark", next)
	}
}
