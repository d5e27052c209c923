package handlers

import (
	"log/slog"

	"github.com/SscSPs/business_panel/internal/dto"
	"github.com/SscSPs/business_panel/internal/middleware"
	"github.com/SscSPs/business_panel/internal/router"
	"github.com/gin-gonic/gin"
)

// userHandler serves the profile of the signed-in user.
type userHandler struct {
	*baseHandler
}

func registerUserRoutes(rg *gin.RouterGroup, base *baseHandler) {
	h := &userHandler{baseHandler: base}
	rg.GET(router.ProfilePath, h.getProfile)
	rg.POST(router.ProfilePath, h.updateProfile)
}

func (h *userHandler) getProfile(c *gin.Context) {
	state, err := h.workspace(c).Profile.Load(c.Request.Context())
	if h.expired(c, err) {
		return
	}
	h.render(c, statusFor(err), "profile", router.ProfilePath, state)
}

func (h *userHandler) updateProfile(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var form dto.ProfileForm
	if err := c.ShouldBind(&form); err != nil {
		logger.Warn("Failed to bind profile form", slog.String("error", err.Error()))
	}

	state, err := h.workspace(c).Profile.Save(c.Request.Context(), form)
	if h.expired(c, err) {
		return
	}
	h.render(c, statusFor(err), "profile", router.ProfilePath, state)
}
