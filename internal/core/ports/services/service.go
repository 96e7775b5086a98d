package services

// ServiceContainer holds instances of all the application services.
// Handlers depend on it rather than on concrete implementations.
type ServiceContainer struct {
	Document  DocumentSvcFacade
	Reference ReferenceSvcFacade
}
