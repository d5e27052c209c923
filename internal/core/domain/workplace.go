package domain

import "github.com/shopspring/decimal"

// Workplace is a site where employees work and where costs and revenues are booked.
type Workplace struct {
	ID              ID              `json:"id"`
	Name            string          `json:"name"`
	Location        string          `json:"location"`
	Description     string          `json:"description"` // Optional
	MonthlyCosts    decimal.Decimal `json:"monthly_costs"`
	MonthlyRevenues decimal.Decimal `json:"monthly_revenues"`
}

func (w Workplace) GetID() ID { return w.ID }

// WorkplaceEntry is a single cost or revenue row booked on a workplace.
type WorkplaceEntry struct {
	ID          ID              `json:"id"`
	EmployeeID  ID              `json:"employee_id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Date        Day             `json:"date"`
}
