package service

import (
	"context"
	"slices"
	"sort"
	"time"

	assetmodels "bulwark/internal/asset/models"
	assetstore "bulwark/internal/asset/store"
	catalog "bulwark/internal/catalog/models"
	"bulwark/internal/review/models"
	dErrors "bulwark/pkg/domain-errors"
)

const defaultPageSize = 10

// logSet is the matched logs of a view window.
type logSet struct {
	access  []*assetmodels.AccessLog
	command []*assetmodels.CommandLog
}

// LogSummary counts a task's logs per rule atom and user.
func (s *FeedService) LogSummary(ctx context.Context, taskID string, domain catalog.Domain) (sum *models.LogSummary, err error) {
	start := time.Now()
	defer func() { s.metrics.ObserveFeed("log_summary", start, err) }()

	if !logDomain(domain) {
		return nil, dErrors.New(dErrors.CodeBadRequest, "unsupported log domain")
	}
	view, err := loadTaskView(ctx, s.Tasks, s.Catalog, taskID, s.now())
	if err != nil {
		return nil, err
	}
	logs, err := s.fetchLogs(ctx, view, domain, "", "")
	if err != nil {
		return nil, err
	}

	type key struct{ atom, user string }
	groups := map[key]*models.LogGroup{}
	var order []key
	bump := func(k key, risky bool) {
		g, ok := groups[k]
		if !ok {
			g = &models.LogGroup{RuleAtomID: k.atom, OriginName: k.user}
			groups[k] = g
			order = append(order, k)
		}
		g.Count++
		g.PermRisk = g.PermRisk || risky
	}
	for _, l := range logs.access {
		bump(key{user: l.User}, l.RiskFlag)
	}
	for _, l := range logs.command {
		for _, atom := range l.HitRuleAtoms {
			bump(key{atom: atom, user: l.User}, l.RiskFlag)
		}
	}
	if len(order) == 0 {
		return &models.LogSummary{ShowColumns: models.LogSummaryColumns, Results: []*models.LogGroup{}}, nil
	}

	var atomIDs, users []string
	for _, k := range order {
		if k.atom != "" {
			atomIDs = append(atomIDs, k.atom)
		}
		users = append(users, k.user)
	}
	atomNames := map[string]string{}
	if len(atomIDs) > 0 {
		if atomNames, err = s.Catalog.AtomNames(ctx, sortedUnique(atomIDs)); err != nil {
			return nil, err
		}
	}
	users = sortedUnique(users)
	idDomain := domain
	if domain != catalog.DomainApp {
		idDomain = catalog.DomainSysDB
	}
	ppl, err := s.people(ctx, view, users, idDomain)
	if err != nil {
		return nil, err
	}
	snap, err := s.snapshot(ctx, view.task.ID)
	if err != nil {
		return nil, err
	}

	results := make([]*models.LogGroup, 0, len(order))
	for _, k := range order {
		g := groups[k]
		if k.atom == "" {
			g.RuleAtomName = models.AppLogRule
		} else {
			g.RuleAtomName = atomNames[k.atom]
		}
		p := ppl.profile(k.user)
		if p.IsZero() {
			g.Risk = models.UnknownProfile
		} else {
			g.Name = p.Name
		}
		g.TransferRisk = snap.Contains(p.AccountID) || snap.Contains(k.user)
		results = append(results, g)
	}
	sort.SliceStable(results, func(i, j int) bool { return models.LessLogGroup(results[i], results[j]) })
	return &models.LogSummary{
		ShowColumns: models.LogSummaryColumns,
		Count:       len(results),
		Results:     results,
	}, nil
}

// LogDetail pages through one user's logs, or a single log by id, newest
// first.
func (s *FeedService) LogDetail(ctx context.Context, taskID string, domain catalog.Domain, user, logID string, page, size int) (*models.LogDetail, error) {
	if !logDomain(domain) {
		return nil, dErrors.New(dErrors.CodeBadRequest, "unsupported log domain")
	}
	columns, rt := models.SysDBLogColumns, catalog.ReviewSysDBLog
	if domain == catalog.DomainApp {
		columns, rt = models.AppLogColumns, catalog.ReviewAppLog
	}
	empty := &models.LogDetail{ShowColumns: columns, Results: []*models.LogEntry{}}
	if user == "" && logID == "" {
		return empty, nil
	}
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = defaultPageSize
	}
	view, err := loadTaskView(ctx, s.Tasks, s.Catalog, taskID, s.now())
	if err != nil {
		return nil, err
	}
	logs, err := s.fetchLogs(ctx, view, domain, user, logID)
	if err != nil {
		return nil, err
	}

	entries := make([]*models.LogEntry, 0, len(logs.access)+len(logs.command))
	for _, l := range logs.access {
		entries = append(entries, &models.LogEntry{
			ID: l.ID, Type: string(catalog.DomainApp), User: l.User, Time: l.AccessedAt,
			Host: l.Host, URL: l.URL, Params: l.Params,
		})
	}
	for _, l := range logs.command {
		entries = append(entries, &models.LogEntry{
			ID: l.ID, Type: string(l.Source), User: l.User, Time: l.ExecutedAt,
			ServerName: l.ServerName, DBName: l.DBName, Command: l.Command,
		})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		if !entries[i].Time.Equal(entries[j].Time) {
			return entries[i].Time.After(entries[j].Time)
		}
		return entries[i].ID < entries[j].ID
	})

	total := len(entries)
	from := min((page-1)*size, total)
	entries = entries[from:min(from+size, total)]

	ids := make([]string, len(entries))
	for i, e := range entries {
		ids[i] = e.ID
	}
	if len(ids) > 0 {
		contents, err := s.Comments.SingleContents(ctx, models.ScopeFor(view.task.ID, view.task.Period, view.system, rt), ids)
		if err != nil {
			return nil, err
		}
		for _, e := range entries {
			e.ReviewContent = contents[e.ID]
		}
	}
	return &models.LogDetail{ShowColumns: columns, Count: total, Results: entries}, nil
}

func logDomain(d catalog.Domain) bool {
	switch d {
	case catalog.DomainApp, catalog.DomainSA, catalog.DomainDBA, catalog.DomainSysDB:
		return true
	}
	return false
}

// logUsers returns the users with at least one matched log in the view
// window.
func (s *FeedService) logUsers(ctx context.Context, view *taskView, rt catalog.ReviewType) (map[string]struct{}, error) {
	domain := catalog.DomainSysDB
	if rt == catalog.ReviewApp {
		domain = catalog.DomainApp
	}
	logs, err := s.fetchLogs(ctx, view, domain, "", "")
	if err != nil {
		return nil, err
	}
	users := make(map[string]struct{})
	for _, l := range logs.access {
		users[l.User] = struct{}{}
	}
	for _, l := range logs.command {
		users[l.User] = struct{}{}
	}
	return users, nil
}

// fetchLogs reads the view window's logs for domain. SA reads shell history,
// DBA reads SQL audit logs and SYS_DB reads both. Service accounts are
// dropped.
func (s *FeedService) fetchLogs(ctx context.Context, view *taskView, domain catalog.Domain, user, logID string) (*logSet, error) {
	out := &logSet{}
	sysID := view.system.ID

	if domain == catalog.DomainApp {
		bgNames, err := s.Catalog.AssetNames(ctx, sysID, catalog.DomainApp)
		if err != nil || len(bgNames) == 0 {
			return out, err
		}
		rows, err := s.Assets.AccessLogs(ctx, assetstore.AccessQuery{
			Start: view.periodStart, End: view.until, BGNames: bgNames,
			User: user, ID: logID, WriteOnly: true,
		})
		if err != nil {
			return nil, err
		}
		for _, l := range rows {
			if !slices.Contains(s.serviceAccounts, l.User) {
				out.access = append(out.access, l)
			}
		}
		return out, nil
	}

	patterns, err := s.regexPatterns(ctx, view)
	if err != nil {
		return nil, err
	}
	keep := func(rows []*assetmodels.CommandLog) {
		for _, l := range rows {
			if !slices.Contains(s.serviceAccounts, l.User) {
				out.command = append(out.command, l)
			}
		}
	}
	if domain == catalog.DomainSA || domain == catalog.DomainSysDB {
		servers, err := s.Catalog.AssetNames(ctx, sysID, catalog.DomainSA)
		if err != nil {
			return nil, err
		}
		if len(servers) > 0 {
			rows, err := s.Assets.CommandLogs(ctx, assetstore.CommandQuery{
				Source: assetmodels.SourceOS, Start: view.periodStart, End: view.until,
				Servers: servers, PatternIDs: patterns, User: user, ID: logID,
			})
			if err != nil {
				return nil, err
			}
			keep(rows)
		}
	}
	if domain == catalog.DomainDBA || domain == catalog.DomainSysDB {
		scope, err := s.Catalog.DBScope(ctx, sysID)
		if err != nil {
			return nil, err
		}
		if !scope.IsEmpty() {
			rows, err := s.Assets.CommandLogs(ctx, assetstore.CommandQuery{
				Source: assetmodels.SourceDB, Start: view.periodStart, End: view.until,
				Scope: scope, PatternIDs: patterns, User: user, ID: logID,
			})
			if err != nil {
				return nil, err
			}
			keep(rows)
		}
	}
	return out, nil
}

// regexPatterns collects the pattern ids of the task's active REGEX atoms.
func (s *FeedService) regexPatterns(ctx context.Context, view *taskView) ([]string, error) {
	atoms, err := s.Catalog.ActiveAtoms(ctx, view.manager.ID)
	if err != nil {
		return nil, err
	}
	var ids []string
	for _, a := range atoms {
		if a.Type == catalog.RuleRegex {
			ids = append(ids, a.PatternIDs...)
		}
	}
	return sortedUnique(ids), nil
}
