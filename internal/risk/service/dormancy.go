package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	assetstore "bulwark/internal/asset/store"
	catalog "bulwark/internal/catalog/models"
	"bulwark/internal/period"
	"bulwark/internal/risk/models"
	"bulwark/pkg/platform/sentinel"
	pkgstrings "bulwark/pkg/platform/strings"
)

// DormancyHandler flags application accounts without a logged request for
// the idle threshold. It only runs for systems with a NO_USE rule atom.
type DormancyHandler struct {
	deps
	catalog     Catalog
	activity    ActivityStore
	annotations AnnotationStore
	idleDays    int
	whiteUsers  []string
}

// DormancyOption tunes the idle threshold and the allowlist.
type DormancyOption func(*DormancyHandler)

func WithIdleDays(days int) DormancyOption {
	return func(h *DormancyHandler) {
		if days > 0 {
			h.idleDays = days
		}
	}
}

func WithWhiteUsers(users []string) DormancyOption {
	return func(h *DormancyHandler) {
		h.whiteUsers = users
	}
}

func NewDormancyHandler(cat Catalog, activity ActivityStore, annotations AnnotationStore, opts []Option, dopts ...DormancyOption) *DormancyHandler {
	h := &DormancyHandler{
		deps:        newDeps(opts),
		catalog:     cat,
		activity:    activity,
		annotations: annotations,
		idleDays:    models.DefaultIdleDays,
	}
	for _, opt := range dopts {
		opt(h)
	}
	return h
}

func (h *DormancyHandler) Name() string { return "dormancy" }

func (h *DormancyHandler) Validate(ctx context.Context, systemID string) error {
	configured, err := h.catalog.SystemHasRule(ctx, systemID, catalog.RuleNoUse)
	if err != nil {
		return err
	}
	if !configured {
		return nil
	}

	now := h.now()
	day := period.Yesterday(now)
	bgs, err := h.catalog.AssetNames(ctx, systemID, catalog.DomainApp)
	if err != nil {
		return err
	}
	if len(bgs) == 0 {
		return nil
	}
	rows, err := h.activity.AppRoles(ctx, assetstore.SnapshotQuery{Day: day, BGNames: bgs})
	if err != nil {
		return fmt.Errorf("list app roles: %w", err)
	}
	var users []string
	for _, r := range rows {
		if !slices.Contains(h.whiteUsers, r.User) {
			users = append(users, r.User)
		}
	}
	users = pkgstrings.DedupeAndTrim(users)

	today := period.Day(now)
	reason := models.DormantReason(h.idleDays)
	var idle []string
	for _, user := range users {
		last, err := h.activity.LastAccess(ctx, user, bgs)
		if errors.Is(err, sentinel.ErrNotFound) {
			continue
		}
		if err != nil {
			return fmt.Errorf("find last access: %w", err)
		}
		if int(today.Sub(last)/(24*time.Hour)) < h.idleDays {
			continue
		}
		idle = append(idle, user)
		if err := h.annotations.Upsert(ctx, systemID, user, day, models.NoUse(reason)); err != nil {
			return fmt.Errorf("annotate dormancy: %w", err)
		}
	}
	if len(idle) == 0 {
		return nil
	}
	q := assetstore.SnapshotQuery{Day: day, BGNames: bgs, Users: idle}
	if _, err := h.activity.MarkAppRisk(ctx, q, systemID, true); err != nil {
		return fmt.Errorf("flag idle accounts: %w", err)
	}
	h.metrics.AddFlagged(h.Name(), len(idle))
	return nil
}
