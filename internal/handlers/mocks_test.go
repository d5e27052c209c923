package handlers_test

import (
	"context"

	"github.com/SscSPs/business_panel/internal/core/domain"
	portssvc "github.com/SscSPs/business_panel/internal/core/ports/services"
	"github.com/SscSPs/business_panel/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock AuthSvc ---
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Restore(ctx context.Context, sessionID string) (*domain.Session, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Session), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, session *domain.Session, form dto.LoginForm) (portssvc.AuthFormState, error) {
	args := m.Called(ctx, session, form)
	return args.Get(0).(portssvc.AuthFormState), args.Error(1)
}

func (m *MockAuthService) Register(ctx context.Context, session *domain.Session, form dto.RegisterForm) (portssvc.AuthFormState, error) {
	args := m.Called(ctx, session, form)
	return args.Get(0).(portssvc.AuthFormState), args.Error(1)
}

func (m *MockAuthService) Logout(ctx context.Context, session *domain.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockAuthService) IsAuthenticated(session *domain.Session) bool {
	args := m.Called(session)
	return args.Bool(0)
}

// --- Mock WorkspaceFactory ---
type MockWorkspaceFactory struct {
	mock.Mock
}

func (m *MockWorkspaceFactory) ForSession(session *domain.Session) *portssvc.Workspace {
	args := m.Called(session)
	return args.Get(0).(*portssvc.Workspace)
}

// --- Mock ListScreen ---
type MockListScreen[T any, F any] struct {
	mock.Mock
}

func (m *MockListScreen[T, F]) Load(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockListScreen[T, F]) OpenCreate() {
	m.Called()
}

func (m *MockListScreen[T, F]) OpenEdit(id domain.ID) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockListScreen[T, F]) CloseModal() {
	m.Called()
}

func (m *MockListScreen[T, F]) Submit(ctx context.Context, form F) error {
	args := m.Called(ctx, form)
	return args.Error(0)
}

func (m *MockListScreen[T, F]) Delete(ctx context.Context, id domain.ID, confirm portssvc.Confirmer) error {
	args := m.Called(ctx, id, confirm)
	return args.Error(0)
}

func (m *MockListScreen[T, F]) State() portssvc.ScreenState[T, F] {
	args := m.Called()
	return args.Get(0).(portssvc.ScreenState[T, F])
}

// --- Mock WorkplaceScreen ---
type MockWorkplaceScreen struct {
	MockListScreen[domain.Workplace, dto.WorkplaceForm]
}

func (m *MockWorkplaceScreen) OpenEntries(ctx context.Context, id domain.ID, kind string) (*portssvc.EntryDialog, error) {
	args := m.Called(ctx, id, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*portssvc.EntryDialog), args.Error(1)
}

// --- Mock DashboardSvc ---
type MockDashboardService struct {
	mock.Mock
}

func (m *MockDashboardService) Summary(ctx context.Context) (*domain.DashboardSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DashboardSummary), args.Error(1)
}

// --- Mock ReportSvc ---
type MockReportService struct {
	mock.Mock
}

func (m *MockReportService) Defaults(ctx context.Context) portssvc.ReportState {
	args := m.Called(ctx)
	return args.Get(0).(portssvc.ReportState)
}

func (m *MockReportService) Generate(ctx context.Context, form dto.ReportFilterForm) (portssvc.ReportState, error) {
	args := m.Called(ctx, form)
	return args.Get(0).(portssvc.ReportState), args.Error(1)
}

func (m *MockReportService) Excel(ctx context.Context, form dto.ReportFilterForm) (*domain.ReportFile, portssvc.ReportState, error) {
	args := m.Called(ctx, form)
	var file *domain.ReportFile
	if args.Get(0) != nil {
		file = args.Get(0).(*domain.ReportFile)
	}
	return file, args.Get(1).(portssvc.ReportState), args.Error(2)
}

// --- Mock ProfileSvc ---
type MockProfileService struct {
	mock.Mock
}

func (m *MockProfileService) Load(ctx context.Context) (portssvc.ProfileState, error) {
	args := m.Called(ctx)
	return args.Get(0).(portssvc.ProfileState), args.Error(1)
}

func (m *MockProfileService) Save(ctx context.Context, form dto.ProfileForm) (portssvc.ProfileState, error) {
	args := m.Called(ctx, form)
	return args.Get(0).(portssvc.ProfileState), args.Error(1)
}

// --- Mock HealthChecker ---
type MockHealthChecker struct {
	mock.Mock
}

func (m *MockHealthChecker) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
