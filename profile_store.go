package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// profileStore persists the last submitted profile as one record.
// There are no partial updates: save always replaces the whole thing.
type profileStore struct {
	store kvStore
}

// load returns the stored profile, or nil when there is none or it can't be
// read. Failures are logged, never returned.
func (s *profileStore) load(ctx context.Context) *profile {
	raw, found, err := s.store.Get(ctx, profileKey)
	if err != nil {
		log.Printf("[profileStore.load] read failed: %v", err)
		return nil
	}
	if !found || raw == "" {
		return nil
	}

	var p *profile
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		log.Printf("[profileStore.load] Failed to parse profile: %v", err)
		return nil
	}
	return p
}

func (s *profileStore) save(ctx context.Context, p profile) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}
	if err := s.store.Set(ctx, profileKey, string(data)); err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}

func (s *profileStore) clear(ctx context.Context) error {
	if err := s.store.Remove(ctx, profileKey); err != nil {
		return fmt.Errorf("clear profile: %w", err)
	}
	return nil
}

/* ─── Handlers ───────────────────────────────────────────────────────── */

// getProfile returns the stored profile. GET /api/profile. 404 when none.
func (h *Handler) getProfile(c *gin.Context) {
	p := h.app.profiles.load(c)
	if p == nil {
		apiError(c, http.StatusNotFound, "profile not found")
		return
	}
	c.JSON(http.StatusOK, p)
}

// deleteProfile clears the stored profile (the page's reset button).
// DELETE /api/profile. Returns 204 even if nothing was stored.
func (h *Handler) deleteProfile(c *gin.Context) {
	if err := h.app.resetProfile(c); err != nil {
		log.Printf("[deleteProfile] %v", err)
		apiError(c, http.StatusInternalServerError, "failed to clear profile")
		return
	}
	c.Status(http.StatusNoContent)
}
