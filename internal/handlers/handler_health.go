package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/business_panel/internal/middleware"
	goversion "github.com/caarlos0/go-version"
	"github.com/gin-gonic/gin"
)

const healthTimeout = 2 * time.Second

// HealthChecker is the session store as seen by the health check.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

func registerHealthRoutes(r *gin.Engine, store HealthChecker, info goversion.Info) {
	r.GET("/health", func(c *gin.Context) {
		if store != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
			defer cancel()
			if err := store.Ping(ctx); err != nil {
				middleware.GetLoggerFromCtx(c.Request.Context()).Error("Health check failed", slog.String("error", err.Error()))
				c.String(http.StatusServiceUnavailable, "UNAVAILABLE")
				return
			}
		}
		c.String(http.StatusOK, "OK")
	})

	r.GET("/version", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"version":   info.GitVersion,
			"commit":    info.GitCommit,
			"treeState": info.GitTreeState,
			"buildDate": info.BuildDate,
			"builtBy":   info.BuiltBy,
			"goVersion": info.GoVersion,
			"platform":  info.Platform,
		})
	})
}
