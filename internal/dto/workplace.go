package dto

import (
	"github.com/SscSPs/business_panel/internal/core/domain"
	"github.com/shopspring/decimal"
)

// --- Workplace wire DTOs ---

// WorkplaceResponse is a workplace as the backend sends it.
type WorkplaceResponse struct {
	ID              domain.ID       `json:"id"`
	Name            string          `json:"name"`
	Location        string          `json:"location"`
	Description     string          `json:"description"`
	MonthlyCosts    decimal.Decimal `json:"monthly_costs"`
	MonthlyRevenues decimal.Decimal `json:"monthly_revenues"`
}

// WorkplaceRequest is the body of POST and PUT /api/workplaces.
type WorkplaceRequest struct {
	Name        string `json:"name"`
	Location    string `json:"location"`
	Description string `json:"description"`
}

// WorkplaceEntryResponse is a row of /api/workplaces/:id/costs or /revenues.
type WorkplaceEntryResponse struct {
	ID          domain.ID       `json:"id"`
	EmployeeID  domain.ID       `json:"employee_id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Date        domain.Day      `json:"date"`
}

// --- Workplace form ---

// WorkplaceForm is the workplace modal.
type WorkplaceForm struct {
	Name        string `form:"name" validate:"required"`
	Location    string `form:"location" validate:"required"`
	Description string `form:"description"`
}

func (WorkplaceForm) ValidationMessages() map[string]string {
	return map[string]string{
		"name.required":     "Nazwa jest wymagana",
		"location.required": "Lokalizacja jest wymagana",
	}
}
