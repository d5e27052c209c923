package dto

import (
	"strings"

	"github.com/SscSPs/business_panel/internal/core/domain"
)

// --- Schedule wire DTOs ---

// ScheduleResponse is a schedule as the backend sends it.
type ScheduleResponse struct {
	ID            domain.ID        `json:"id"`
	WorkplaceID   domain.ID        `json:"workplace_id"`
	WorkplaceName string           `json:"workplace_name"`
	EmployeeID    domain.ID        `json:"employee_id"`
	EmployeeName  string           `json:"employee_name"`
	Date          domain.Day       `json:"date"`
	Hours         float64          `json:"hours"`
	CreatedAt     domain.Timestamp `json:"created_at"`
}

// ScheduleRequest is the body of POST and PUT /api/schedules.
type ScheduleRequest struct {
	WorkplaceID domain.ID `json:"workplace_id"`
	EmployeeID  domain.ID `json:"employee_id"`
	Date        string    `json:"date"`
	Hours       float64   `json:"hours"`
}

// --- Schedule form ---

// ScheduleForm is the schedule modal.
type ScheduleForm struct {
	WorkplaceID string `form:"workplace_id" validate:"required"`
	EmployeeID  string `form:"employee_id" validate:"required"`
	Date        string `form:"date" validate:"required,datetime=2006-01-02"`
	Hours       string `form:"hours" validate:"required,numeric,minnum=0.5,maxnum=24"`
}

// Normalize accepts a decimal comma in the hours.
func (f *ScheduleForm) Normalize() {
	f.Hours = strings.ReplaceAll(strings.TrimSpace(f.Hours), ",", ".")
}

func (ScheduleForm) ValidationMessages() map[string]string {
	return map[string]string{
		"workplace_id.required": "Miejsce pracy jest wymagane",
		"employee_id.required":  "Pracownik jest wymagany",
		"date.required":         "Data jest wymagana",
		"date.datetime":         "Nieprawidłowy format daty",
		"hours.required":        "Liczba godzin jest wymagana",
		"hours.numeric":         "Liczba godzin musi być liczbą",
		"hours.minnum":          "Minimalna liczba godzin to 0.5",
		"hours.maxnum":          "Maksymalna liczba godzin to 24",
	}
}
