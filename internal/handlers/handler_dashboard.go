package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/business_panel/internal/core/domain"
	"github.com/SscSPs/business_panel/internal/middleware"
	"github.com/SscSPs/business_panel/internal/router"
	"github.com/gin-gonic/gin"
)

const dashboardLoadFailed = "Nie udało się pobrać danych panelu"

// DashboardView is the Data of the dashboard page.
type DashboardView struct {
	Summary *domain.DashboardSummary
	Error   string
}

type dashboardHandler struct {
	*baseHandler
}

func registerDashboardRoutes(rg *gin.RouterGroup, base *baseHandler) {
	h := &dashboardHandler{baseHandler: base}
	rg.GET(router.DashboardPath, h.getDashboard)
}

func (h *dashboardHandler) getDashboard(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	summary, err := h.workspace(c).Dashboard.Summary(c.Request.Context())
	if h.expired(c, err) {
		return
	}
	if err != nil {
		logger.Error("Failed to load dashboard", slog.String("error", err.Error()))
		h.render(c, statusFor(err), "dashboard", router.DashboardPath, DashboardView{Error: dashboardLoadFailed})
		return
	}
	h.render(c, http.StatusOK, "dashboard", router.DashboardPath, DashboardView{Summary: summary})
}
