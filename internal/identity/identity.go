package identity

import (
	"bulwark/internal/identity/ports"
	"bulwark/internal/identity/service"
)

// Normalizer maps account spellings onto canonical ids.
type Normalizer = service.Normalizer

// Resolver is the directory port.
type Resolver = ports.Resolver

// NewNormalizer constructs the normalizer over an alias store and a directory resolver.
func NewNormalizer(aliases service.AliasStore, resolver ports.Resolver, opts ...service.Option) *Normalizer {
	return service.New(aliases, resolver, opts...)
}
