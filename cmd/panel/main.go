package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SscSPs/business_panel/internal/adapters/database/pgsql"
	redisstore "github.com/SscSPs/business_panel/internal/adapters/database/redis"
	"github.com/SscSPs/business_panel/internal/adapters/memory"
	"github.com/SscSPs/business_panel/internal/adapters/rest"
	"github.com/SscSPs/business_panel/internal/apiclient"
	portsrepo "github.com/SscSPs/business_panel/internal/core/ports/repositories"
	"github.com/SscSPs/business_panel/internal/core/services"
	"github.com/SscSPs/business_panel/internal/handlers"
	"github.com/SscSPs/business_panel/internal/handlers/views"
	"github.com/SscSPs/business_panel/internal/middleware"
	"github.com/SscSPs/business_panel/internal/platform/config"
	"github.com/SscSPs/business_panel/internal/platform/timezone"
	"github.com/SscSPs/business_panel/internal/utils"
	"github.com/SscSPs/business_panel/pkg/database"
	goversion "github.com/caarlos0/go-version"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

var (
	version   = "dev"
	commit    = ""
	treeState = ""
	date      = ""
	builtBy   = ""
)

const shutdownTimeout = 10 * time.Second

// sessionStore is a session repository the health check can ping.
type sessionStore interface {
	portsrepo.SessionRepositoryFacade
	Ping(ctx context.Context) error
}

func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}
	loc := timezone.Use(cfg.Location)
	logger.Info("Using time zone", slog.String("location", loc.String()))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sealer, err := utils.NewTokenSealer(cfg.SessionSecret)
	if err != nil {
		logger.Error("Failed to create token sealer", slog.String("error", err.Error()))
		os.Exit(1)
	}

	store, closeStore, err := openSessionStore(ctx, cfg, sealer, logger)
	if err != nil {
		logger.Error("Failed to open session store", slog.String("store", cfg.SessionStore), slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer closeStore()
	logger.Info("Session store ready", slog.String("store", cfg.SessionStore))

	client, err := apiclient.New(cfg.APIBaseURL, apiclient.WithTimeout(cfg.APITimeout))
	if err != nil {
		logger.Error("Failed to create backend client", slog.String("error", err.Error()))
		os.Exit(1)
	}

	authService := services.NewAuthService(store, rest.NewAuthRepository(client), services.WithSessionTTL(cfg.SessionTTL))
	container := services.NewServiceContainer(authService, rest.NewProviderFactory(client))
	go services.RunSessionJanitor(ctx, authService, cfg.SessionPurgeInterval, logger)

	posthogClient := utils.InitializePosthogClient(cfg.PosthogAPIKey, logger)
	defer posthogClient.Close()

	loginLimiter, err := middleware.NewLimiter(cfg.LoginRateLimit)
	if err != nil {
		logger.Error("Invalid LOGIN_RATE_LIMIT", slog.String("error", err.Error()))
		os.Exit(1)
	}

	renderer, err := views.NewRenderer()
	if err != nil {
		logger.Error("Failed to parse templates", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.HTMLRender = renderer

	// Global middleware (logging, recovery)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.CORSAllowedOrigins,
			AllowMethods:     []string{http.MethodGet, http.MethodPost},
			AllowHeaders:     []string{"Origin", "Content-Type", "Sec-CH-Viewport-Width", "Viewport-Width"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, container, handlers.Options{
		Cookie:       middleware.SessionCookie{Name: cfg.SessionCookieName, Secure: cfg.IsProduction},
		LoginLimiter: loginLimiter,
		Store:        store,
		Version:      buildVersion(),
		Analytics:    posthogClient,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed to run", slog.String("error", err.Error()))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Graceful shutdown failed", slog.String("error", err.Error()))
	}
}

// openSessionStore connects the configured session backend. The returned
// func releases it.
func openSessionStore(ctx context.Context, cfg *config.Config, sealer *utils.TokenSealer, logger *slog.Logger) (sessionStore, func(), error) {
	switch cfg.SessionStore {
	case config.StorePostgres:
		pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
		if err != nil {
			return nil, nil, fmt.Errorf("connecting to postgres: %w", err)
		}
		if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, logger); err != nil {
			pool.Close()
			return nil, nil, err
		}
		return pgsql.NewSessionRepository(pool, sealer), pool.Close, nil

	case config.StoreRedis:
		client, err := database.NewRedisClient(ctx, cfg.RedisURL, cfg.EnableDBCheck)
		if err != nil {
			return nil, nil, fmt.Errorf("connecting to redis: %w", err)
		}
		closeClient := func() {
			if err := client.Close(); err != nil {
				logger.Error("Error closing redis client", slog.String("error", err.Error()))
			}
		}
		return redisstore.NewSessionRepository(client, sealer), closeClient, nil

	default:
		return memory.NewSessionRepository(), func() {}, nil
	}
}

func buildVersion() goversion.Info {
	return goversion.GetVersionInfo(
		goversion.WithAppDetails("business-panel", "Work Management panel", ""),
		func(i *goversion.Info) {
			if version != "" {
				i.GitVersion = version
			}
			if commit != "" {
				i.GitCommit = commit
			}
			if treeState != "" {
				i.GitTreeState = treeState
			}
			if date != "" {
				i.BuildDate = date
			}
			if builtBy != "" {
				i.BuiltBy = builtBy
			}
		},
	)
}
