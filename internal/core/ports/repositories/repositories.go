package repositories

// RepositoryProvider holds the backend repositories of one session token.
type RepositoryProvider struct {
	Employees  EmployeeRepository
	Workplaces WorkplaceRepository
	Costs      FinanceRepository
	Revenues   FinanceRepository
	Schedules  ScheduleRepository
	Profile    ProfileRepository
	Reports    ReportRepository
}

// ProviderFactory builds the repositories for a bearer token.
type ProviderFactory interface {
	ForToken(token string) *RepositoryProvider
}
