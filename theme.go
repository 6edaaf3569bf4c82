package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

const defaultTheme = "dark"

// themeStore persists the light/dark preference as a bare string.
type themeStore struct {
	store kvStore
}

// load returns the saved theme, falling back to dark for missing or
// unknown values.
func (s *themeStore) load(ctx context.Context) string {
	theme, found, err := s.store.Get(ctx, themeKey)
	if err != nil {
		log.Printf("[themeStore.load] read failed: %v", err)
		return defaultTheme
	}
	if !found || (theme != "dark" && theme != "light") {
		return defaultTheme
	}
	return theme
}

func (s *themeStore) save(ctx context.Context, theme string) error {
	if theme != "dark" && theme != "light" {
		return errInvalidTheme
	}
	if err := s.store.Set(ctx, themeKey, theme); err != nil {
		return fmt.Errorf("save theme: %w", err)
	}
	return nil
}

// toggle flips between dark and light and returns the new theme.
func (s *themeStore) toggle(ctx context.Context) (string, error) {
	next := "light"
	if s.load(ctx) == "light" {
		next = "dark"
	}
	return next, s.save(ctx, next)
}

/* ─── Handlers ───────────────────────────────────────────────────────── */

// getTheme returns the saved theme. GET /api/theme.
func (h *Handler) getTheme(c *gin.Context) {
	c.JSON(http.StatusOK, themeRequest{Theme: h.app.themes.load(c)})
}

// putTheme saves the theme. PUT /api/theme. Body: { "theme": "dark" | "light" }.
func (h *Handler) putTheme(c *gin.Context) {
	var body themeRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.app.saveTheme(c, body.Theme); err != nil {
		if errors.Is(err, errInvalidTheme) {
			apiError(c, http.StatusBadRequest, "theme must be one of: dark, light")
		} else {
			apiError(c, http.StatusInternalServerError, "failed to save theme")
		}
		return
	}
	c.JSON(http.StatusOK, body)
}

// toggleTheme flips the theme. POST /api/theme/toggle.
func (h *Handler) toggleTheme(c *gin.Context) {
	theme, err := h.app.toggleTheme(c)
	if err != nil {
		apiError(c, http.StatusInternalServerError, "failed to save theme")
		return
	}
	c.JSON(http.StatusOK, themeRequest{Theme: theme})
}
