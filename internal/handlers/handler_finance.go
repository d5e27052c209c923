package handlers

import (
	"github.com/SscSPs/business_panel/internal/core/domain"
	portssvc "github.com/SscSPs/business_panel/internal/core/ports/services"
	"github.com/SscSPs/business_panel/internal/dto"
	"github.com/SscSPs/business_panel/internal/router"
	"github.com/gin-gonic/gin"
)

type financeView = ScreenView[domain.FinanceEntry, dto.FinanceForm]

// Costs and revenues share one template; only the labels differ.
func registerFinanceRoutes(rg *gin.RouterGroup, base *baseHandler) {
	registerScreenRoutes(rg, &screenHandler[domain.FinanceEntry, dto.FinanceForm]{
		baseHandler: base,
		path:        router.CostsPath,
		template:    "finance",
		screen: func(ws *portssvc.Workspace) portssvc.ListScreen[domain.FinanceEntry, dto.FinanceForm] {
			return ws.Costs
		},
		decorate: func(v *financeView) {
			v.Heading, v.AddLabel, v.EditLabel = "Koszty", "Dodaj koszt", "Edytuj koszt"
		},
	})

	registerScreenRoutes(rg, &screenHandler[domain.FinanceEntry, dto.FinanceForm]{
		baseHandler: base,
		path:        router.RevenuesPath,
		template:    "finance",
		screen: func(ws *portssvc.Workspace) portssvc.ListScreen[domain.FinanceEntry, dto.FinanceForm] {
			return ws.Revenues
		},
		decorate: func(v *financeView) {
			v.Heading, v.AddLabel, v.EditLabel = "Przychody", "Dodaj przychód", "Edytuj przychód"
		},
	})
}
