package service

import (
	"context"
	"fmt"
	"slices"

	"bulwark/internal/period"
	"bulwark/internal/risk/ports"
)

// JobTransferHandler records, per active task, the accounts whose owner
// changed position since the task's period began.
type JobTransferHandler struct {
	deps
	catalog   Catalog
	domains   ports.DomainSet
	tasks     TaskLister
	transfers TransferLog
	accounts  AccountLookup
	snapshots SnapshotStore
}

func NewJobTransferHandler(
	cat Catalog,
	domains ports.DomainSet,
	tasks TaskLister,
	transfers TransferLog,
	accounts AccountLookup,
	snapshots SnapshotStore,
	opts ...Option,
) *JobTransferHandler {
	return &JobTransferHandler{
		deps:      newDeps(opts),
		catalog:   cat,
		domains:   domains,
		tasks:     tasks,
		transfers: transfers,
		accounts:  accounts,
		snapshots: snapshots,
	}
}

func (h *JobTransferHandler) Name() string { return "job_transfer" }

func (h *JobTransferHandler) Validate(ctx context.Context, systemID string) error {
	managers, err := h.catalog.TaskManagersBySystem(ctx, systemID)
	if err != nil {
		return err
	}
	if len(managers) == 0 {
		return nil
	}
	ids := make([]string, 0, len(managers))
	for _, m := range managers {
		ids = append(ids, m.ID)
	}
	tasks, err := h.tasks.ListUnfinished(ctx, ids)
	if err != nil {
		return fmt.Errorf("list active tasks: %w", err)
	}
	if len(tasks) == 0 {
		return nil
	}

	now := h.now()
	users, err := allUsers(ctx, h.domains.For(systemID, period.Yesterday(now)))
	if err != nil {
		return fmt.Errorf("list accounts: %w", err)
	}

	for _, task := range tasks {
		cadence, err := h.catalog.Cadence(ctx, task.TaskManagerID)
		if err != nil {
			return err
		}
		start, _ := period.Range(cadence, task.CreatedAt)
		moved, err := h.transfers.AccountIDsBetween(ctx, start, now)
		if err != nil {
			return fmt.Errorf("list position changes: %w", err)
		}
		var flagged []string
		for _, id := range users {
			if slices.Contains(moved, id) {
				flagged = append(flagged, id)
			}
		}
		if len(flagged) == 0 {
			continue
		}
		emails, err := h.accounts.EmailPrefixes(ctx, flagged)
		if err != nil {
			return err
		}
		names, err := h.accounts.AliasNames(ctx, systemID, flagged)
		if err != nil {
			return err
		}
		if err := h.snapshots.Replace(ctx, task.ID,
			append(slices.Clone(flagged), names...),
			append(emails, names...),
			now,
		); err != nil {
			return fmt.Errorf("save job transfer snapshot: %w", err)
		}
		h.metrics.AddFlagged(h.Name(), len(flagged))
		h.logger.InfoContext(ctx, "job transfers recorded",
			"system_id", systemID,
			"task_id", task.ID,
			"accounts", len(flagged),
		)
	}
	return nil
}
