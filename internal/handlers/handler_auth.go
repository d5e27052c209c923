package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/business_panel/internal/core/ports/services"
	"github.com/SscSPs/business_panel/internal/dto"
	"github.com/SscSPs/business_panel/internal/middleware"
	"github.com/SscSPs/business_panel/internal/router"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
)

// AuthView is the Data of the login and register pages.
type AuthView[F any] struct {
	Form  F
	State portssvc.AuthFormState
}

type authHandler struct {
	*baseHandler
}

func newAuthHandler(base *baseHandler) *authHandler {
	return &authHandler{baseHandler: base}
}

// registerAuthRoutes sets up login, registration and logout. Credential
// posts are rate limited per client IP.
func registerAuthRoutes(rg *gin.RouterGroup, base *baseHandler, loginLimiter *limiter.Limiter) {
	h := newAuthHandler(base)

	public := rg.Group("", router.PublicRoute(base.auth))
	{
		public.GET(router.LoginPath, h.loginPage)
		public.GET(router.RegisterPath, h.registerPage)
		public.POST(router.LoginPath, middleware.RateLimit(loginLimiter), h.login)
		public.POST(router.RegisterPath, middleware.RateLimit(loginLimiter), h.register)
	}

	rg.POST(router.LogoutPath, h.logout)
}

func (h *authHandler) loginPage(c *gin.Context) {
	h.render(c, http.StatusOK, "login", router.LoginPath, AuthView[dto.LoginForm]{})
}

func (h *authHandler) registerPage(c *gin.Context) {
	h.render(c, http.StatusOK, "register", router.RegisterPath, AuthView[dto.RegisterForm]{})
}

func (h *authHandler) login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	session, _ := middleware.GetSessionFromContext(c)

	var form dto.LoginForm
	if err := c.ShouldBind(&form); err != nil {
		logger.Warn("Failed to bind login form", slog.String("error", err.Error()))
	}

	state, err := h.auth.Login(c.Request.Context(), session, form)
	if err != nil {
		// the password is never echoed back
		h.render(c, statusFor(err), "login", router.LoginPath, AuthView[dto.LoginForm]{
			Form:  dto.LoginForm{Email: form.Email},
			State: state,
		})
		return
	}

	logger.Info("User signed in", slog.String("session_id", session.ID))
	middleware.SetSessionCookie(c, h.cookie, session)
	middleware.PosthogEvent(c, h.analytics, "user_signed_in", nil)
	c.Redirect(http.StatusSeeOther, router.DashboardPath)
}

func (h *authHandler) register(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	session, _ := middleware.GetSessionFromContext(c)

	var form dto.RegisterForm
	if err := c.ShouldBind(&form); err != nil {
		logger.Warn("Failed to bind register form", slog.String("error", err.Error()))
	}

	state, err := h.auth.Register(c.Request.Context(), session, form)
	if err != nil {
		form.Password = ""
		h.render(c, statusFor(err), "register", router.RegisterPath, AuthView[dto.RegisterForm]{
			Form:  form,
			State: state,
		})
		return
	}

	logger.Info("User registered", slog.String("session_id", session.ID))
	middleware.SetSessionCookie(c, h.cookie, session)
	middleware.PosthogEvent(c, h.analytics, "user_registered", nil)
	c.Redirect(http.StatusSeeOther, router.DashboardPath)
}

func (h *authHandler) logout(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if session, ok := middleware.GetSessionFromContext(c); ok {
		if err := h.auth.Logout(c.Request.Context(), session); err != nil {
			logger.Error("Failed to delete session on logout", slog.String("error", err.Error()))
		}
	}
	middleware.ClearSessionCookie(c, h.cookie)
	c.Redirect(http.StatusSeeOther, router.LoginPath)
}
