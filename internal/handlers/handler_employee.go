package handlers

import (
	"github.com/SscSPs/business_panel/internal/core/domain"
	portssvc "github.com/SscSPs/business_panel/internal/core/ports/services"
	"github.com/SscSPs/business_panel/internal/dto"
	"github.com/SscSPs/business_panel/internal/router"
	"github.com/gin-gonic/gin"
)

func registerEmployeeRoutes(rg *gin.RouterGroup, base *baseHandler) {
	registerScreenRoutes(rg, &screenHandler[domain.Employee, dto.EmployeeForm]{
		baseHandler: base,
		path:        router.EmployeesPath,
		template:    "employees",
		screen: func(ws *portssvc.Workspace) portssvc.ListScreen[domain.Employee, dto.EmployeeForm] {
			return ws.Employees
		},
	})
}
