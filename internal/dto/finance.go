package dto

import (
	"encoding/json"
	"strings"

	"github.com/SscSPs/business_panel/internal/core/domain"
	"github.com/shopspring/decimal"
)

// --- Cost / revenue wire DTOs ---

// FinanceEntryResponse is a cost or a revenue as the backend sends it.
type FinanceEntryResponse struct {
	ID            domain.ID        `json:"id"`
	Type          string           `json:"type"`
	WorkplaceID   domain.ID        `json:"workplace_id"`
	WorkplaceName string           `json:"workplace_name"`
	EmployeeID    domain.ID        `json:"employee_id"`
	EmployeeName  string           `json:"employee_name"`
	Description   string           `json:"description"`
	Amount        decimal.Decimal  `json:"amount"`
	Date          domain.Day       `json:"date"`
	CreatedAt     domain.Timestamp `json:"created_at"`
}

// FinanceEntryRequest is the body of POST /api/costs|revenues and
// PUT /api/costs|revenues/:type/:id.
type FinanceEntryRequest struct {
	Type        string      `json:"type"`
	WorkplaceID *domain.ID  `json:"workplace_id,omitempty"`
	EmployeeID  *domain.ID  `json:"employee_id,omitempty"`
	Description string      `json:"description"`
	Amount      json.Number `json:"amount"`
	Date        string      `json:"date"`
}

// --- Cost / revenue form ---

// FinanceForm is the cost and revenue modal. The target id is required only
// for the matching type.
type FinanceForm struct {
	Type        string `form:"type" validate:"required,oneof=workplace employee"`
	WorkplaceID string `form:"workplace_id" validate:"required_if=Type workplace"`
	EmployeeID  string `form:"employee_id" validate:"required_if=Type employee"`
	Description string `form:"description"`
	Amount      string `form:"amount" validate:"required,numeric"`
	Date        string `form:"date" validate:"required,datetime=2006-01-02"`
}

// Normalize accepts a decimal comma in the amount.
func (f *FinanceForm) Normalize() {
	f.Amount = strings.ReplaceAll(strings.TrimSpace(f.Amount), ",", ".")
	f.Description = strings.TrimSpace(f.Description)
}

func (FinanceForm) ValidationMessages() map[string]string {
	return map[string]string{
		"type.required":            "Typ jest wymagany",
		"type.oneof":               "Typ jest wymagany",
		"workplace_id.required_if": "Miejsce pracy jest wymagane",
		"employee_id.required_if":  "Pracownik jest wymagany",
		"description.required":     "Opis jest wymagany",
		"amount.required":          "Kwota jest wymagana",
		"amount.numeric":           "Kwota musi być liczbą",
		"date.required":            "Data jest wymagana",
		"date.datetime":            "Nieprawidłowy format daty",
	}
}
