package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/business_panel/internal/core/domain"
	portsrepo "github.com/SscSPs/business_panel/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/business_panel/internal/core/ports/services"
)

type workspaceFactory struct {
	providers portsrepo.ProviderFactory
}

// NewWorkspaceFactory builds per-session workspaces from backend repositories.
func NewWorkspaceFactory(providers portsrepo.ProviderFactory) portssvc.WorkspaceFactory {
	return &workspaceFactory{providers: providers}
}

func (f *workspaceFactory) ForSession(session *domain.Session) *portssvc.Workspace {
	var token string
	if session != nil {
		token = session.Token
	}
	repos := f.providers.ForToken(token)

	return &portssvc.Workspace{
		Employees:  NewEmployeeScreen(repos.Employees),
		Workplaces: NewWorkplaceScreen(repos.Workplaces),
		Costs:      NewCostScreen(repos.Costs, repos.Workplaces, repos.Employees),
		Revenues:   NewRevenueScreen(repos.Revenues, repos.Workplaces, repos.Employees),
		Schedules:  NewScheduleScreen(repos.Schedules, repos.Workplaces, repos.Employees),
		Dashboard:  NewDashboardService(repos.Employees, repos.Workplaces, repos.Costs, repos.Revenues),
		Reports:    NewReportService(repos.Reports, repos.Workplaces, repos.Employees),
		Profile:    NewProfileService(repos.Profile),
	}
}

// NewServiceContainer wires the services the handlers use.
func NewServiceContainer(auth *AuthService, providers portsrepo.ProviderFactory) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Auth:      auth,
		Workspace: NewWorkspaceFactory(providers),
	}
}

// RunSessionJanitor purges expired sessions every interval until ctx is done.
func RunSessionJanitor(ctx context.Context, auth *AuthService, interval time.Duration, logger *slog.Logger) {
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			logger.Info("Session janitor stopped")
			return
		case <-ticker.C:
			if _, err := auth.PurgeExpiredSessions(ctx); err != nil {
				logger.Error("Failed to purge expired sessions", slog.String("error", err.Error()))
			}
		}
	}
}
