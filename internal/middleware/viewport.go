package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	// ViewportCookie is written by the layout script with window.innerWidth.
	ViewportCookie = "vw"

	DesktopViewportWidth = 1280
	MobileViewportWidth  = 390
)

var viewportHints = []string{"Sec-CH-Viewport-Width", "Viewport-Width"}

// ViewportMiddleware asks for viewport client hints and stores the detected
// width for the screens' breakpoint checks.
func ViewportMiddleware() gin.HandlerFunc {
	acceptCH := strings.Join(viewportHints, ", ")
	return func(c *gin.Context) {
		c.Header("Accept-CH", acceptCH)
		c.Header("Vary", acceptCH+", Cookie")
		c.Set(string(viewportKey), DetectViewportWidth(c.Request))
		c.Next()
	}
}

// DetectViewportWidth reads client hints, then the vw cookie, then falls back
// to a user agent guess.
func DetectViewportWidth(r *http.Request) int {
	for _, header := range viewportHints {
		if width, ok := parseWidth(r.Header.Get(header)); ok {
			return width
		}
	}
	if cookie, err := r.Cookie(ViewportCookie); err == nil {
		if width, ok := parseWidth(cookie.Value); ok {
			return width
		}
	}
	if strings.Contains(r.UserAgent(), "Mobi") {
		return MobileViewportWidth
	}
	return DesktopViewportWidth
}

// GetViewportWidth returns the width stored by ViewportMiddleware.
func GetViewportWidth(c *gin.Context) int {
	if width, ok := c.Get(string(viewportKey)); ok {
		if w, ok := width.(int); ok {
			return w
		}
	}
	return DetectViewportWidth(c.Request)
}

func parseWidth(raw string) (int, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || f <= 0 {
		return 0, false
	}
	return int(f), true
}
