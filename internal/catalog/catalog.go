package catalog

import (
	"bulwark/internal/catalog/models"
	"bulwark/internal/catalog/service"
)

// Service answers rule and asset scope questions.
type Service = service.Service

// DBScope identifies the database assets of a system.
type DBScope = models.DBScope

// NewService constructs the catalog service over a store.
func NewService(store service.Store, opts ...service.Option) *Service {
	return service.New(store, opts...)
}

// Templates lists the rule atom families.
func Templates() []service.Template {
	return service.Templates()
}
