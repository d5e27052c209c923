package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/business_panel/internal/apperrors"
	"github.com/SscSPs/business_panel/internal/core/domain"
	portssvc "github.com/SscSPs/business_panel/internal/core/ports/services"
	"github.com/SscSPs/business_panel/internal/middleware"
	"github.com/SscSPs/business_panel/internal/router"
	"github.com/SscSPs/business_panel/internal/utils"
	"github.com/gin-gonic/gin"
)

// Page is the view model every template receives. Data holds the
// screen-specific part.
type Page struct {
	Title string
	Path  string
	User  *domain.User
	Nav   []router.NavItem
	Cards bool
	Data  any
}

// baseHandler carries what every page handler needs.
type baseHandler struct {
	auth       portssvc.AuthSvc
	workspaces portssvc.WorkspaceFactory
	cookie     middleware.SessionCookie
	analytics  *utils.PosthogClientWrapper
}

func newBaseHandler(services *portssvc.ServiceContainer, cookie middleware.SessionCookie, analytics *utils.PosthogClientWrapper) *baseHandler {
	return &baseHandler{
		auth:       services.Auth,
		workspaces: services.Workspace,
		cookie:     cookie,
		analytics:  analytics,
	}
}

func (h *baseHandler) workspace(c *gin.Context) *portssvc.Workspace {
	session, _ := middleware.GetSessionFromContext(c)
	return h.workspaces.ForSession(session)
}

// render wraps data in a Page for the route at path.
func (h *baseHandler) render(c *gin.Context, status int, template, path string, data any) {
	route, _ := router.Lookup(path)
	p := Page{
		Title: route.Title,
		Path:  route.Path,
		Nav:   router.NavItems(path),
		Cards: router.UseCards(middleware.GetViewportWidth(c), route.Breakpoint),
		Data:  data,
	}
	if session, ok := middleware.GetSessionFromContext(c); ok && h.auth.IsAuthenticated(session) {
		p.User = session.User
		if p.User == nil {
			p.User = &domain.User{}
		}
	}
	c.HTML(status, template, p)
}

// expired ends the session when the backend no longer accepts its token and
// sends the browser to the login page. It reports whether it did so.
func (h *baseHandler) expired(c *gin.Context, err error) bool {
	if !errors.Is(err, apperrors.ErrUnauthorized) {
		return false
	}
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	logger.Warn("Backend rejected the session token, signing out")

	if session, ok := middleware.GetSessionFromContext(c); ok {
		if logoutErr := h.auth.Logout(c.Request.Context(), session); logoutErr != nil {
			logger.Error("Failed to drop expired session", slog.String("error", logoutErr.Error()))
		}
	}
	middleware.ClearSessionCookie(c, h.cookie)
	c.Redirect(http.StatusSeeOther, router.LoginPath)
	return true
}

// statusFor maps the outcome of a screen operation to the page's status code.
func statusFor(err error) int {
	var appErr *apperrors.AppError
	switch {
	case err == nil, errors.Is(err, apperrors.ErrDeclined):
		return http.StatusOK
	case errors.As(err, &appErr):
		return appErr.Code
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrValidation), errors.Is(err, apperrors.ErrDuplicate):
		return http.StatusUnprocessableEntity
	case errors.Is(err, apperrors.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, apperrors.ErrForbidden):
		return http.StatusForbidden
	default:
		return http.StatusBadGateway
	}
}
