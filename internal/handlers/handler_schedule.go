package handlers

import (
	"github.com/SscSPs/business_panel/internal/core/domain"
	portssvc "github.com/SscSPs/business_panel/internal/core/ports/services"
	"github.com/SscSPs/business_panel/internal/dto"
	"github.com/SscSPs/business_panel/internal/router"
	"github.com/gin-gonic/gin"
)

func registerScheduleRoutes(rg *gin.RouterGroup, base *baseHandler) {
	registerScreenRoutes(rg, &screenHandler[domain.Schedule, dto.ScheduleForm]{
		baseHandler: base,
		path:        router.SchedulesPath,
		template:    "schedules",
		screen: func(ws *portssvc.Workspace) portssvc.ListScreen[domain.Schedule, dto.ScheduleForm] {
			return ws.Schedules
		},
	})
}
