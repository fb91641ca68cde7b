package risk

import (
	"bulwark/internal/risk/domains"
	"bulwark/internal/risk/models"
	"bulwark/internal/risk/service"
)

type (
	Handler    = service.Handler
	Runner     = service.Runner
	Reminder   = service.Reminder
	LogScanner = service.LogScanner
	Annotation = models.Annotation
	Policy     = domains.Policy
)

// NewDomainSet builds the application, OS and database views of audit systems.
func NewDomainSet(cat domains.Catalog, assets domains.Assets, normalizer domains.Normalizer, policy Policy) (*domains.Set, error) {
	return domains.NewSet(cat, assets, normalizer, policy)
}
