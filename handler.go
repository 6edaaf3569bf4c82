package main

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Handler holds shared dependencies for all route handlers.
type Handler struct {
	app *wellnessApp
}

const headerRequestID = "X-Request-Id"

// apiError returns a consistent JSON error response: {"error": "message"}.
func apiError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// requestIDMiddleware echoes the client's X-Request-Id or generates one, and
// stores it on the context as "request_id".
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(headerRequestID)
		if id == "" {
			id = uuid.New().String()
		}
		c.Set("request_id", id)
		c.Header(headerRequestID, id)
		c.Next()
	}
}

// registerRoutes registers all API routes on the router.
func (h *Handler) registerRoutes(router *gin.Engine) {
	api := router.Group("/api", requestIDMiddleware())

	api.POST("/plan", h.postPlan)
	api.GET("/plan", h.getPlan)
	api.GET("/profile", h.getProfile)
	api.DELETE("/profile", h.deleteProfile)
	api.GET("/recipes", h.getRecipes)
	api.GET("/quote", h.getQuote)

	api.GET("/progress", h.getProgress)
	api.GET("/progress/chart", h.getProgressChart)
	api.POST("/progress", h.addProgressEntry)
	api.DELETE("/progress", h.clearProgress)

	api.GET("/theme", h.getTheme)
	api.PUT("/theme", h.putTheme)
	api.POST("/theme/toggle", h.toggleTheme)

	api.GET("/steps", h.getSteps)
	api.POST("/steps/start", h.startSteps)
	api.POST("/steps/stop", h.stopSteps)
	api.POST("/steps/reset", h.resetSteps)
}
