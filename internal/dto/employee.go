package dto

import (
	"github.com/SscSPs/business_panel/internal/core/domain"
	"github.com/shopspring/decimal"
)

// --- Employee wire DTOs ---

// EmployeeResponse is an employee as the backend sends it.
type EmployeeResponse struct {
	ID              domain.ID       `json:"id"`
	FirstName       string          `json:"first_name"`
	LastName        string          `json:"last_name"`
	Email           string          `json:"email"`
	Phone           string          `json:"phone"`
	MonthlyCosts    decimal.Decimal `json:"monthly_costs"`
	MonthlyRevenues decimal.Decimal `json:"monthly_revenues"`
}

// EmployeeRequest is the body of POST and PUT /api/employees.
type EmployeeRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

// --- Employee form ---

// EmployeeForm is the employee modal.
type EmployeeForm struct {
	FirstName string `form:"firstName" validate:"required"`
	LastName  string `form:"lastName" validate:"required"`
	Email     string `form:"email" validate:"required,email"`
	Phone     string `form:"phone"`
}

func (EmployeeForm) ValidationMessages() map[string]string {
	return map[string]string{
		"firstName.required": "Imię jest wymagane",
		"lastName.required":  "Nazwisko jest wymagane",
		"email.required":     "Email jest wymagany",
		"email.email":        "Nieprawidłowy format email",
	}
}
