package repositories

import (
	"context"

	"github.com/SscSPs/business_panel/internal/core/domain"
)

// EmployeeRepository is backed by /api/employees.
type EmployeeRepository = CollectionRepository[domain.Employee]

// FinanceRepository is backed by /api/costs or /api/revenues.
type FinanceRepository = CollectionRepository[domain.FinanceEntry]

// ScheduleRepository is backed by /api/schedules.
type ScheduleRepository = CollectionRepository[domain.Schedule]

// WorkplaceEntryReader lists the bookings of one workplace.
type WorkplaceEntryReader interface {
	ListWorkplaceCosts(ctx context.Context, workplaceID domain.ID) ([]domain.WorkplaceEntry, error)
	ListWorkplaceRevenues(ctx context.Context, workplaceID domain.ID) ([]domain.WorkplaceEntry, error)
}

// WorkplaceRepository is backed by /api/workplaces.
type WorkplaceRepository interface {
	CollectionRepository[domain.Workplace]
	WorkplaceEntryReader
}
