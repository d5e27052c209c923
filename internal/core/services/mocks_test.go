package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/business_panel/internal/core/domain"
	portsrepo "github.com/SscSPs/business_panel/internal/core/ports/repositories"
	"github.com/stretchr/testify/mock"
)

// --- Mock CollectionRepository (any entity kind) ---
type MockCollectionRepository[T portsrepo.Entity] struct {
	mock.Mock
	ListFn func(ctx context.Context) ([]T, error)
}

func (m *MockCollectionRepository[T]) List(ctx context.Context) ([]T, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	args := m.Called(ctx)
	var items []T
	if args.Get(0) != nil {
		items = args.Get(0).([]T)
	}
	return items, args.Error(1)
}

func (m *MockCollectionRepository[T]) Create(ctx context.Context, item T) (*T, error) {
	args := m.Called(ctx, item)
	var stored *T
	if args.Get(0) != nil {
		stored = args.Get(0).(*T)
	}
	return stored, args.Error(1)
}

func (m *MockCollectionRepository[T]) Update(ctx context.Context, item T) (*T, error) {
	args := m.Called(ctx, item)
	var stored *T
	if args.Get(0) != nil {
		stored = args.Get(0).(*T)
	}
	return stored, args.Error(1)
}

func (m *MockCollectionRepository[T]) Delete(ctx context.Context, item T) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

// --- Mock WorkplaceRepository ---
type MockWorkplaceRepository struct {
	MockCollectionRepository[domain.Workplace]
}

func (m *MockWorkplaceRepository) ListWorkplaceCosts(ctx context.Context, workplaceID domain.ID) ([]domain.WorkplaceEntry, error) {
	args := m.Called(ctx, workplaceID)
	var entries []domain.WorkplaceEntry
	if args.Get(0) != nil {
		entries = args.Get(0).([]domain.WorkplaceEntry)
	}
	return entries, args.Error(1)
}

func (m *MockWorkplaceRepository) ListWorkplaceRevenues(ctx context.Context, workplaceID domain.ID) ([]domain.WorkplaceEntry, error) {
	args := m.Called(ctx, workplaceID)
	var entries []domain.WorkplaceEntry
	if args.Get(0) != nil {
		entries = args.Get(0).([]domain.WorkplaceEntry)
	}
	return entries, args.Error(1)
}

// --- Mock SessionRepository ---
type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) FindSessionByID(ctx context.Context, sessionID string) (*domain.Session, error) {
	args := m.Called(ctx, sessionID)
	var session *domain.Session
	if args.Get(0) != nil {
		session = args.Get(0).(*domain.Session)
	}
	return session, args.Error(1)
}

func (m *MockSessionRepository) SaveSession(ctx context.Context, session domain.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockSessionRepository) DeleteSession(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

func (m *MockSessionRepository) DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}

// --- Mock Authenticator ---
type MockAuthenticator struct {
	mock.Mock
}

func (m *MockAuthenticator) Login(ctx context.Context, credentials domain.Credentials) (string, *domain.User, error) {
	args := m.Called(ctx, credentials)
	var user *domain.User
	if args.Get(1) != nil {
		user = args.Get(1).(*domain.User)
	}
	return args.String(0), user, args.Error(2)
}

func (m *MockAuthenticator) Register(ctx context.Context, registration domain.Registration) error {
	args := m.Called(ctx, registration)
	return args.Error(0)
}

// --- Mock ProfileRepository ---
type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) GetProfile(ctx context.Context) (*domain.Profile, error) {
	args := m.Called(ctx)
	var profile *domain.Profile
	if args.Get(0) != nil {
		profile = args.Get(0).(*domain.Profile)
	}
	return profile, args.Error(1)
}

func (m *MockProfileRepository) CurrentUser(ctx context.Context) (*domain.User, error) {
	args := m.Called(ctx)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockProfileRepository) UpdateProfile(ctx context.Context, profile domain.Profile) (*domain.Profile, error) {
	args := m.Called(ctx, profile)
	var stored *domain.Profile
	if args.Get(0) != nil {
		stored = args.Get(0).(*domain.Profile)
	}
	return stored, args.Error(1)
}

func (m *MockProfileRepository) ChangePassword(ctx context.Context, change domain.PasswordChange) error {
	args := m.Called(ctx, change)
	return args.Error(0)
}

// --- Mock ReportRepository ---
type MockReportRepository struct {
	mock.Mock
}

func (m *MockReportRepository) GetReport(ctx context.Context, filter domain.ReportFilter) (*domain.ReportData, error) {
	args := m.Called(ctx, filter)
	var data *domain.ReportData
	if args.Get(0) != nil {
		data = args.Get(0).(*domain.ReportData)
	}
	return data, args.Error(1)
}

func (m *MockReportRepository) GetStats(ctx context.Context, filter domain.ReportFilter) (*domain.ReportStats, error) {
	args := m.Called(ctx, filter)
	var stats *domain.ReportStats
	if args.Get(0) != nil {
		stats = args.Get(0).(*domain.ReportStats)
	}
	return stats, args.Error(1)
}

func (m *MockReportRepository) ExportExcel(ctx context.Context, filter domain.ReportFilter) (*domain.ReportFile, error) {
	args := m.Called(ctx, filter)
	var file *domain.ReportFile
	if args.Get(0) != nil {
		file = args.Get(0).(*domain.ReportFile)
	}
	return file, args.Error(1)
}

func mustDay(s string) domain.Day {
	day, err := domain.ParseDay(s)
	if err != nil {
		panic(err)
	}
	return day
}
