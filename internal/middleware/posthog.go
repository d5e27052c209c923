package middleware

import (
	"net/http"
	"strings"

	"github.com/SscSPs/business_panel/internal/utils"
	"github.com/gin-gonic/gin"
)

// pathsToSkip contains paths that should not be tracked by PostHog
var pathsToSkip = map[string]bool{
	"/health":  true,
	"/version": true,
}

// PosthogMiddleware records a screen view for every page a signed-in user opens.
func PosthogMiddleware(posthogClient *utils.PosthogClientWrapper) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Skip if PostHog is not initialized or path is in skip list
		if !posthogClient.IsInitialized() || pathsToSkip[c.Request.URL.Path] || c.Request.Method != http.MethodGet {
			c.Next()
			return
		}

		// Process request first
		c.Next()

		// Only successful page renders count as views
		if len(c.Errors) > 0 || c.Writer.Status() != http.StatusOK {
			return
		}

		userID, exists := GetUserIDFromContext(c)
		if !exists {
			return
		}

		// "/dashboard/employees" -> "dashboard_employees"
		screen := strings.ReplaceAll(strings.Trim(c.FullPath(), "/"), "/", "_")
		if screen == "" {
			return
		}

		posthogClient.ScreenViewed(userID, screen, map[string]any{
			"path":     c.Request.URL.Path,
			"viewport": GetViewportWidth(c),
		})
	}
}

// PosthogEvent is a helper to manually send custom events from handlers when needed
func PosthogEvent(c *gin.Context, posthogClient *utils.PosthogClientWrapper, eventName string, properties map[string]any) {
	if !posthogClient.IsInitialized() {
		return
	}

	userID, exists := GetUserIDFromContext(c)
	if !exists {
		return
	}

	if properties == nil {
		properties = make(map[string]any)
	}
	properties["path"] = c.Request.URL.Path

	posthogClient.Enqueue(userID, eventName, properties)
}
