package service

import (
	"context"
	"fmt"
	"strings"

	notifymodels "bulwark/internal/notify/models"
	"bulwark/internal/period"
	"bulwark/internal/risk/models"
	taskmodels "bulwark/internal/task/models"
)

// Reminder pushes one daily summary of the systems that carry matrix risk.
type Reminder struct {
	deps
	annotations AnnotationStore
	catalog     Catalog
	tasks       TaskLister
	notifier    Notifier
	recipients  []string
	reportHost  string
}

func NewReminder(
	annotations AnnotationStore,
	cat Catalog,
	tasks TaskLister,
	notifier Notifier,
	recipients []string,
	reportHost string,
	opts ...Option,
) *Reminder {
	return &Reminder{
		deps:        newDeps(opts),
		annotations: annotations,
		catalog:     cat,
		tasks:       tasks,
		notifier:    notifier,
		recipients:  recipients,
		reportHost:  reportHost,
	}
}

// Run builds and sends the summary. It returns the pushed content, empty
// when nothing was sent.
func (r *Reminder) Run(ctx context.Context) (string, error) {
	now := r.now()
	day := period.Yesterday(now)
	ids, err := r.annotations.SystemsWithMatrixRisk(ctx, day)
	if err != nil {
		return "", fmt.Errorf("list risky systems: %w", err)
	}

	var lines, reminded []string
	for _, id := range ids {
		line, err := r.systemLine(ctx, id)
		if err != nil {
			return "", err
		}
		if line == "" {
			continue
		}
		lines = append(lines, line)
		reminded = append(reminded, id)
	}
	if len(lines) == 0 || len(r.recipients) == 0 {
		r.logger.InfoContext(ctx, "no risk reminder sent",
			"systems", len(ids),
			"recipients", len(r.recipients),
		)
		return "", nil
	}

	content := fmt.Sprintf(models.ReminderTemplate, strings.Join(lines, "\n"), period.Day(now).Format("2006-01-02"))
	if err := r.notifier.Enqueue(ctx, notifymodels.KindRiskReminder, content, r.recipients); err != nil {
		return "", fmt.Errorf("send risk reminder: %w", err)
	}
	r.metrics.IncReminder()
	if err := r.annotations.MarkReminded(ctx, reminded, day, now); err != nil {
		return content, fmt.Errorf("mark reminded: %w", err)
	}
	return content, nil
}

// systemLine renders "name【 link;link 】" from the system's tasks whose
// period contains now. Systems without such a task yield "".
func (r *Reminder) systemLine(ctx context.Context, systemID string) (string, error) {
	sys, err := r.catalog.System(ctx, systemID)
	if err != nil {
		return "", err
	}
	managers, err := r.catalog.TaskManagersBySystem(ctx, systemID)
	if err != nil || len(managers) == 0 {
		return "", err
	}
	ids := make([]string, 0, len(managers))
	for _, m := range managers {
		ids = append(ids, m.ID)
	}
	tasks, err := r.tasks.ListUnfinished(ctx, ids)
	if err != nil {
		return "", fmt.Errorf("list active tasks: %w", err)
	}
	now := r.now()
	var links []string
	for _, t := range tasks {
		cadence, err := r.catalog.Cadence(ctx, t.TaskManagerID)
		if err != nil {
			return "", err
		}
		if period.WindowOf(cadence, t.CreatedAt).Contains(now) {
			links = append(links, taskmodels.ReportURL(r.reportHost, t.ID))
		}
	}
	if len(links) == 0 {
		return "", nil
	}
	return fmt.Sprintf("%s【 %s 】", sys.Name, strings.Join(links, ";")), nil
}
