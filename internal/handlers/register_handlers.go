package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/business_panel/internal/core/ports/services"
	"github.com/SscSPs/business_panel/internal/middleware"
	"github.com/SscSPs/business_panel/internal/router"
	"github.com/SscSPs/business_panel/internal/utils"
	goversion "github.com/caarlos0/go-version"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
)

// Options are the collaborators RegisterRoutes needs besides the services.
type Options struct {
	Cookie       middleware.SessionCookie
	LoginLimiter *limiter.Limiter
	Store        HealthChecker
	Version      goversion.Info
	Analytics    *utils.PosthogClientWrapper
}

// RegisterRoutes sets up all panel routes. Pages run behind the session
// middleware; /health and /version do not.
func RegisterRoutes(r *gin.Engine, services *portssvc.ServiceContainer, opts Options) {
	registerHealthRoutes(r, opts.Store, opts.Version)

	base := newBaseHandler(services, opts.Cookie, opts.Analytics)

	app := r.Group("",
		middleware.SessionMiddleware(services.Auth, opts.Cookie),
		middleware.ViewportMiddleware(),
		middleware.PosthogMiddleware(opts.Analytics),
	)
	app.GET(router.RootPath, func(c *gin.Context) {
		c.Redirect(http.StatusSeeOther, router.DashboardPath)
	})

	registerAuthRoutes(app, base, opts.LoginLimiter)

	private := app.Group("", router.PrivateRoute(services.Auth))
	{
		registerDashboardRoutes(private, base)
		registerEmployeeRoutes(private, base)
		registerWorkplaceRoutes(private, base)
		registerFinanceRoutes(private, base)
		registerScheduleRoutes(private, base)
		registerReportingRoutes(private, base)
		registerUserRoutes(private, base)
	}

	r.NoRoute(func(c *gin.Context) {
		base.render(c, http.StatusNotFound, "error", "", "Nie znaleziono strony")
	})
}
