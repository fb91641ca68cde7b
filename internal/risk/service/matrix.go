package service

import (
	"context"
	"fmt"
	"sort"

	catalog "bulwark/internal/catalog/models"
	"bulwark/internal/period"
	"bulwark/internal/risk/models"
	"bulwark/internal/risk/ports"
)

// MatrixHandler flags accounts that hold incompatible admin capabilities
// across the application, OS and database domains of a system.
type MatrixHandler struct {
	deps
	domains     ports.DomainSet
	annotations AnnotationStore
}

func NewMatrixHandler(domains ports.DomainSet, annotations AnnotationStore, opts ...Option) *MatrixHandler {
	return &MatrixHandler{deps: newDeps(opts), domains: domains, annotations: annotations}
}

func (h *MatrixHandler) Name() string { return "matrix" }

func (h *MatrixHandler) Validate(ctx context.Context, systemID string) error {
	day := period.Yesterday(h.now())
	domains := h.domains.For(systemID, day)

	caps := make(map[string]*models.Capabilities)
	for _, d := range domains {
		admins, err := d.AdminUsers(ctx)
		if err != nil {
			return fmt.Errorf("list %s admins: %w", d.Kind(), err)
		}
		for _, id := range admins {
			c, ok := caps[id]
			if !ok {
				c = &models.Capabilities{}
				caps[id] = c
			}
			switch d.Kind() {
			case catalog.DomainApp:
				c.App = true
			case catalog.DomainSA:
				c.OS = true
			case catalog.DomainDBA:
				c.DB = true
			}
		}
	}

	// only accounts in at least two admin sets are judged
	var users []string
	for id, c := range caps {
		if c.Count() >= 2 {
			users = append(users, id)
		}
	}
	sort.Strings(users)

	var compliant, violating []string
	for _, id := range users {
		c := caps[id]
		if err := h.annotations.Upsert(ctx, systemID, id, day, models.Matrix(c.Violation())); err != nil {
			return fmt.Errorf("annotate matrix risk: %w", err)
		}
		if c.Compliant() {
			compliant = append(compliant, id)
		} else {
			violating = append(violating, id)
		}
	}
	if err := markRisk(ctx, domains, compliant, true); err != nil {
		return err
	}
	if err := markRisk(ctx, domains, violating, false); err != nil {
		return err
	}
	h.metrics.AddFlagged(h.Name(), len(violating))
	h.logger.InfoContext(ctx, "matrix validated",
		"system_id", systemID,
		"judged", len(users),
		"violating", len(violating),
	)
	return nil
}
