package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/business_panel/internal/core/domain"
	portsrepo "github.com/SscSPs/business_panel/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/business_panel/internal/core/ports/services"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

type dashboardService struct {
	BaseService
	employees  portsrepo.CollectionReader[domain.Employee]
	workplaces portsrepo.CollectionReader[domain.Workplace]
	costs      portsrepo.CollectionReader[domain.FinanceEntry]
	revenues   portsrepo.CollectionReader[domain.FinanceEntry]
}

// NewDashboardService creates the dashboard summary over four collections.
func NewDashboardService(
	employees portsrepo.CollectionReader[domain.Employee],
	workplaces portsrepo.CollectionReader[domain.Workplace],
	costs portsrepo.CollectionReader[domain.FinanceEntry],
	revenues portsrepo.CollectionReader[domain.FinanceEntry],
) portssvc.DashboardSvc {
	return &dashboardService{employees: employees, workplaces: workplaces, costs: costs, revenues: revenues}
}

var _ portssvc.DashboardSvc = (*dashboardService)(nil)

func (s *dashboardService) Summary(ctx context.Context) (*domain.DashboardSummary, error) {
	var (
		employees  []domain.Employee
		workplaces []domain.Workplace
		costs      []domain.FinanceEntry
		revenues   []domain.FinanceEntry
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		employees, err = s.employees.List(gctx)
		return err
	})
	g.Go(func() (err error) {
		workplaces, err = s.workplaces.List(gctx)
		return err
	})
	g.Go(func() (err error) {
		costs, err = s.costs.List(gctx)
		return err
	})
	g.Go(func() (err error) {
		revenues, err = s.revenues.List(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		s.LogError(ctx, err, "Failed to load dashboard")
		return nil, fmt.Errorf("loading dashboard: %w", err)
	}

	summary := &domain.DashboardSummary{
		EmployeeCount:  len(employees),
		WorkplaceCount: len(workplaces),
		TotalCosts:     sumAmounts(costs),
		TotalRevenues:  sumAmounts(revenues),
	}
	summary.Profit = summary.TotalRevenues.Sub(summary.TotalCosts)

	s.LogDebug(ctx, "Dashboard loaded",
		slog.Int("employees", summary.EmployeeCount),
		slog.Int("workplaces", summary.WorkplaceCount))
	return summary, nil
}

func sumAmounts(entries []domain.FinanceEntry) decimal.Decimal {
	total := decimal.Zero
	for _, e := range entries {
		total = total.Add(e.Amount)
	}
	return total
}
