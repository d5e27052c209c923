package services

// ServiceContainer holds instances of all the application services and is
// what the handlers are wired with.
type ServiceContainer struct {
	Auth      AuthSvc
	Workspace WorkspaceFactory
}
