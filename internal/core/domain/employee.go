package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Employee is a person working for the business.
type Employee struct {
	ID              ID              `json:"id"`
	FirstName       string          `json:"firstName"`
	LastName        string          `json:"lastName"`
	Email           string          `json:"email"`
	Phone           string          `json:"phone"`            // Optional
	MonthlyCosts    decimal.Decimal `json:"monthly_costs"`    // Computed by the backend for the current month
	MonthlyRevenues decimal.Decimal `json:"monthly_revenues"` // Computed by the backend for the current month
}

func (e Employee) GetID() ID { return e.ID }

func (e Employee) FullName() string {
	return strings.TrimSpace(e.FirstName + " " + e.LastName)
}
