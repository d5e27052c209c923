package handlers

import (
	"github.com/SscSPs/business_panel/internal/core/domain"
	portssvc "github.com/SscSPs/business_panel/internal/core/ports/services"
	"github.com/SscSPs/business_panel/internal/dto"
	"github.com/SscSPs/business_panel/internal/router"
	"github.com/gin-gonic/gin"
)

type workplaceView = ScreenView[domain.Workplace, dto.WorkplaceForm]

// registerWorkplaceRoutes registers the workplaces screen. Besides the list
// actions, ?entries=costs|revenues&id=... opens the entries dialog of one
// workplace.
func registerWorkplaceRoutes(rg *gin.RouterGroup, base *baseHandler) {
	registerScreenRoutes(rg, &screenHandler[domain.Workplace, dto.WorkplaceForm]{
		baseHandler: base,
		path:        router.WorkplacesPath,
		template:    "workplaces",
		screen: func(ws *portssvc.Workspace) portssvc.ListScreen[domain.Workplace, dto.WorkplaceForm] {
			return ws.Workplaces
		},
		extra: openWorkplaceEntries,
	})
}

func openWorkplaceEntries(c *gin.Context, ws *portssvc.Workspace, view *workplaceView) error {
	kind, id := c.Query("entries"), c.Query("id")
	if kind == "" || id == "" {
		return nil
	}
	// a failed fetch still yields an empty dialog; unknown ids or kinds yield none
	dialog, err := ws.Workplaces.OpenEntries(c.Request.Context(), domain.ID(id), kind)
	view.Entries = dialog
	return err
}
