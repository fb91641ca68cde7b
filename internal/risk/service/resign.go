package service

import (
	"context"
	"fmt"

	"bulwark/internal/period"
	"bulwark/internal/risk/models"
	"bulwark/internal/risk/ports"
)

// ResignHandler flags accounts whose owner has left the company.
type ResignHandler struct {
	deps
	domains     ports.DomainSet
	annotations AnnotationStore
	directory   EmploymentChecker
}

func NewResignHandler(domains ports.DomainSet, annotations AnnotationStore, directory EmploymentChecker, opts ...Option) *ResignHandler {
	return &ResignHandler{deps: newDeps(opts), domains: domains, annotations: annotations, directory: directory}
}

func (h *ResignHandler) Name() string { return "resign" }

func (h *ResignHandler) Validate(ctx context.Context, systemID string) error {
	day := period.Yesterday(h.now())
	domains := h.domains.For(systemID, day)
	users, err := allUsers(ctx, domains)
	if err != nil {
		return fmt.Errorf("list accounts: %w", err)
	}

	var resigned []string
	for _, id := range users {
		employed, err := h.directory.IsEmployed(ctx, id)
		if err != nil {
			h.logger.WarnContext(ctx, "employment check failed",
				"system_id", systemID,
				"account_id", id,
				"error", err,
			)
			continue
		}
		if !employed {
			resigned = append(resigned, id)
		}
	}

	if err := markRisk(ctx, domains, resigned, false); err != nil {
		return err
	}
	for _, id := range resigned {
		if err := h.annotations.Upsert(ctx, systemID, id, day, models.Staff(models.ReasonResigned)); err != nil {
			return fmt.Errorf("annotate staff risk: %w", err)
		}
	}
	h.metrics.AddFlagged(h.Name(), len(resigned))
	return nil
}
