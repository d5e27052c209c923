package domain

import "time"

const (
	MinScheduleHours = 0.5
	MaxScheduleHours = 24
)

// Schedule assigns an employee to a workplace for a number of hours on a day.
type Schedule struct {
	ID            ID        `json:"id"`
	WorkplaceID   ID        `json:"workplace_id"`
	WorkplaceName string    `json:"workplace_name"`
	EmployeeID    ID        `json:"employee_id"`
	EmployeeName  string    `json:"employee_name"`
	Date          Day       `json:"date"`
	Hours         float64   `json:"hours"`
	CreatedAt     time.Time `json:"created_at"`
}

func (s Schedule) GetID() ID { return s.ID }
