package services

import (
	"context"

	"github.com/SscSPs/business_panel/internal/core/domain"
	"github.com/SscSPs/business_panel/internal/dto"
	"github.com/SscSPs/business_panel/internal/validation"
)

// DashboardSvc loads the summary of the dashboard.
type DashboardSvc interface {
	Summary(ctx context.Context) (*domain.DashboardSummary, error)
}

// ReportState is what the report page renders.
type ReportState struct {
	Form        dto.ReportFilterForm
	FieldErrors validation.FieldErrors
	Error       string
	Report      *domain.Report
	Lookups     map[string][]LookupOption
}

// ReportSvc generates reports and spreadsheets.
type ReportSvc interface {
	// Defaults returns the toolbar for the current month.
	Defaults(ctx context.Context) ReportState
	Generate(ctx context.Context, form dto.ReportFilterForm) (ReportState, error)
	Excel(ctx context.Context, form dto.ReportFilterForm) (*domain.ReportFile, ReportState, error)
}

// ProfileState is what the profile page renders.
type ProfileState struct {
	Form        dto.ProfileForm
	FieldErrors validation.FieldErrors
	Success     string
	Error       string
}

// ProfileSvc reads and updates the signed-in user.
type ProfileSvc interface {
	Load(ctx context.Context) (ProfileState, error)
	Save(ctx context.Context, form dto.ProfileForm) (ProfileState, error)
}

// Workspace is the set of services bound to one signed-in session. Screens
// are created fresh for every request.
type Workspace struct {
	Employees  EmployeeScreen
	Workplaces WorkplaceScreen
	Costs      FinanceScreen
	Revenues   FinanceScreen
	Schedules  ScheduleScreen
	Dashboard  DashboardSvc
	Reports    ReportSvc
	Profile    ProfileSvc
}

// WorkspaceFactory binds a Workspace to a session.
type WorkspaceFactory interface {
	ForSession(session *domain.Session) *Workspace
}
