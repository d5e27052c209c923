package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryTarget says what a cost or revenue is attributed to.
type EntryTarget string

const (
	TargetWorkplace EntryTarget = "workplace"
	TargetEmployee  EntryTarget = "employee"
)

func (t EntryTarget) IsValid() bool {
	return t == TargetWorkplace || t == TargetEmployee
}

// Label is the Polish name of the target kind.
func (t EntryTarget) Label() string {
	switch t {
	case TargetWorkplace:
		return "Miejsce pracy"
	case TargetEmployee:
		return "Pracownik"
	default:
		return string(t)
	}
}

// FinanceEntry is a cost or a revenue. Exactly one of WorkplaceID and
// EmployeeID is meaningful, chosen by Type.
type FinanceEntry struct {
	ID            ID              `json:"id"`
	Type          EntryTarget     `json:"type"`
	WorkplaceID   ID              `json:"workplace_id,omitempty"`
	WorkplaceName string          `json:"workplace_name,omitempty"` // Read-only, joined by the backend
	EmployeeID    ID              `json:"employee_id,omitempty"`
	EmployeeName  string          `json:"employee_name,omitempty"` // Read-only, joined by the backend
	Description   string          `json:"description"`
	Amount        decimal.Decimal `json:"amount"`
	Date          Day             `json:"date"`
	CreatedAt     time.Time       `json:"created_at"`

	// StoredType is the type the backend filed the entry under. Single
	// entries are addressed by it, so an edit that changes Type still
	// reaches the stored row.
	StoredType EntryTarget `json:"-"`
}

// Cost is money spent on a workplace or an employee.
type Cost = FinanceEntry

// Revenue is money earned by a workplace or an employee.
type Revenue = FinanceEntry

func (f FinanceEntry) GetID() ID { return f.ID }

// PathType is the type used to address the stored entry.
func (f FinanceEntry) PathType() EntryTarget {
	if f.StoredType != "" {
		return f.StoredType
	}
	return f.Type
}

// TargetID returns the id of whatever the entry is attributed to.
func (f FinanceEntry) TargetID() ID {
	if f.Type == TargetEmployee {
		return f.EmployeeID
	}
	return f.WorkplaceID
}

// TargetName returns the joined name of the workplace or employee.
func (f FinanceEntry) TargetName() string {
	if f.Type == TargetEmployee {
		return f.EmployeeName
	}
	return f.WorkplaceName
}
