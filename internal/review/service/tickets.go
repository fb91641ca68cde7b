package service

import (
	"context"
	"sort"
	"strings"
	"time"

	assetmodels "bulwark/internal/asset/models"
	assetstore "bulwark/internal/asset/store"
	catalog "bulwark/internal/catalog/models"
	identity "bulwark/internal/identity/models"
	"bulwark/internal/review/models"
	ticketmodels "bulwark/internal/ticket/models"
	ticketstore "bulwark/internal/ticket/store"
	dErrors "bulwark/pkg/domain-errors"
	strutil "bulwark/pkg/platform/strings"
)

const (
	roleSubmitter = "submitter"
	roleDeployer  = "deployer"
)

// ticketUser accumulates one person's tickets and risky deploys.
type ticketUser struct {
	email     string
	roles     map[string]struct{}
	projects  []string
	ticketIDs []string
	deployers map[string]struct{}
	count     int
}

func newTicketUser(email string) *ticketUser {
	return &ticketUser{email: email, roles: map[string]struct{}{}, deployers: map[string]struct{}{}}
}

// Tickets aggregates the approved online tickets and risky deploys of the
// system's deploy department per submitter, and per deployer for risky
// deploys no ticket explains.
func (s *FeedService) Tickets(ctx context.Context, taskID string, f models.Filter) (feed *models.TicketFeed, err error) {
	start := time.Now()
	defer func() { s.metrics.ObserveFeed(string(catalog.ReviewTicket), start, err) }()

	view, err := loadTaskView(ctx, s.Tasks, s.Catalog, taskID, s.now())
	if err != nil {
		return nil, err
	}
	appKeys, err := s.Catalog.AppKeys(ctx, view.system)
	if err != nil {
		return nil, err
	}
	deploys, err := s.TicketData.Deploys(ctx, ticketstore.DeployQuery{
		Dept:    view.system.DeployTicketDept,
		From:    view.periodStart,
		To:      view.until,
		AppKeys: appKeys,
	})
	if err != nil {
		return nil, err
	}

	var ids []string
	for _, d := range deploys {
		if d.TicketID != "" {
			ids = append(ids, d.TicketID)
		}
	}
	tickets := map[string]*ticketmodels.OnlineTicket{}
	if len(ids) > 0 {
		rows, err := s.TicketData.TicketsByIDs(ctx, sortedUnique(ids), ticketmodels.ApprovedStatuses)
		if err != nil {
			return nil, err
		}
		for _, t := range rows {
			tickets[t.TicketID] = t
		}
	}

	// risky deploys per ticket, and those with no ticket at all
	type ticketRisk struct {
		deployers map[string]struct{}
		count     int
	}
	risks := map[string]*ticketRisk{}
	var unmatched []*ticketmodels.DeployRecord
	for _, d := range deploys {
		if d.Risk == nil || !*d.Risk {
			continue
		}
		if d.TicketID == "" {
			unmatched = append(unmatched, d)
			continue
		}
		if _, ok := tickets[d.TicketID]; !ok {
			continue
		}
		r := risks[d.TicketID]
		if r == nil {
			r = &ticketRisk{deployers: map[string]struct{}{}}
			risks[d.TicketID] = r
		}
		r.deployers[d.Deployer] = struct{}{}
		r.count++
	}

	users := map[string]*ticketUser{}
	get := func(email string) *ticketUser {
		u := users[email]
		if u == nil {
			u = newTicketUser(email)
			users[email] = u
		}
		return u
	}
	ticketIDs := make([]string, 0, len(tickets))
	for id := range tickets {
		ticketIDs = append(ticketIDs, id)
	}
	sort.Strings(ticketIDs)
	for _, id := range ticketIDs {
		t := tickets[id]
		u := get(t.SubmitterEmail)
		u.roles[roleSubmitter] = struct{}{}
		u.projects = append(u.projects, t.Project)
		u.ticketIDs = append(u.ticketIDs, id)
		if r := risks[id]; r != nil {
			u.count += r.count
			for d := range r.deployers {
				u.deployers[d] = struct{}{}
			}
		}
	}
	for _, d := range unmatched {
		u := get(d.Deployer)
		u.roles[roleDeployer] = struct{}{}
		u.deployers[d.Deployer] = struct{}{}
		u.count++
	}

	var emails []string
	for email, u := range users {
		emails = append(emails, email)
		for d := range u.deployers {
			emails = append(emails, d)
		}
	}
	profiles := map[string]identity.Profile{}
	if len(emails) > 0 {
		profiles = s.Identities.Profiles(ctx, sortedUnique(emails))
	}

	results := make([]*models.TicketUser, 0, len(users))
	for _, u := range users {
		p := profiles[u.email]
		results = append(results, &models.TicketUser{
			Email:           u.email,
			Name:            p.Name,
			DeptName:        identity.DisplayDept(p.DeptName),
			Role:            strings.Join(setKeys(u.roles), ","),
			Projects:        strutil.NormalizeList(strings.Join(u.projects, ",")),
			Deployers:       deployerNames(u.deployers, profiles),
			RiskDeployCount: u.count,
			TicketIDs:       u.ticketIDs,
		})
	}
	sort.Slice(results, func(i, j int) bool {
		if results[i].RiskDeployCount != results[j].RiskDeployCount {
			return results[i].RiskDeployCount > results[j].RiskDeployCount
		}
		return results[i].Email < results[j].Email
	})

	if len(results) > 0 {
		contents, err := s.Comments.SingleContents(ctx,
			models.ScopeFor(view.task.ID, view.task.Period, view.system, catalog.ReviewTicket), sortedUnique(setKeysOf(users)))
		if err != nil {
			return nil, err
		}
		for _, r := range results {
			r.ReviewContent = contents[r.Email]
		}
	}

	var depts []string
	filtered := make([]*models.TicketUser, 0, len(results))
	for _, r := range results {
		if r.DeptName != "" {
			depts = append(depts, r.DeptName)
		}
		if f.Dept != "" && r.DeptName != f.Dept {
			continue
		}
		if f.NotReviewed && r.ReviewContent != "" {
			continue
		}
		filtered = append(filtered, r)
	}
	return &models.TicketFeed{
		ShowColumns: models.TicketColumns,
		DeptNames:   append([]string{""}, sortedUnique(depts)...),
		UserCount:   len(filtered),
		Results:     filtered,
	}, nil
}

func deployerNames(deployers map[string]struct{}, profiles map[string]identity.Profile) string {
	names := make([]string, 0, len(deployers))
	for _, email := range setKeys(deployers) {
		name := profiles[email].Name
		if name == "" {
			name = email
		}
		names = append(names, name)
	}
	return strings.Join(names, ",")
}

func setKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func setKeysOf(users map[string]*ticketUser) []string {
	out := make([]string, 0, len(users))
	for k := range users {
		out = append(out, k)
	}
	return out
}

// ServerRoles lists the system hosts user holds privileges on at the view
// date, with per-host roles and counts of the administrative ones.
func (s *FeedService) ServerRoles(ctx context.Context, taskID, user string) (*models.ServerRoles, error) {
	if user == "" {
		return nil, dErrors.New(dErrors.CodeBadRequest, "user is required")
	}
	view, err := loadTaskView(ctx, s.Tasks, s.Catalog, taskID, s.now())
	if err != nil {
		return nil, err
	}
	var servers []string
	for _, kind := range []catalog.Domain{catalog.DomainSA, catalog.DomainDBA} {
		names, err := s.Catalog.AssetNames(ctx, view.system.ID, kind)
		if err != nil {
			return nil, err
		}
		servers = append(servers, names...)
	}
	servers = sortedUnique(servers)

	roles := map[string]map[string]struct{}{}
	grant := func(server, role string) {
		if roles[server] == nil {
			roles[server] = map[string]struct{}{}
		}
		roles[server][role] = struct{}{}
	}
	if len(servers) > 0 {
		osRows, err := s.Assets.OSAccounts(ctx, assetstore.SnapshotQuery{Day: view.lastDate, Servers: servers, Users: []string{user}})
		if err != nil {
			return nil, err
		}
		for _, r := range osRows {
			grant(r.ServerName, assetmodels.RoleOSAdmin)
		}
		dbRows, err := s.Assets.DBRoles(ctx, assetstore.SnapshotQuery{
			Day:   view.lastDate,
			Scope: catalog.DBScope{ServerNames: servers},
			Users: []string{user},
		})
		if err != nil {
			return nil, err
		}
		for _, r := range dbRows {
			grant(r.ServerName, r.Role)
		}
	}

	out := &models.ServerRoles{
		Results: make(map[string]string, len(roles)),
		Stats:   map[string]int{assetmodels.RoleOSAdmin: 0, assetmodels.RoleDBHostOSAdmin: 0},
	}
	for server, set := range roles {
		out.Results[server] = strings.Join(setKeys(set), ",")
		for stat := range out.Stats {
			if _, ok := set[stat]; ok {
				out.Stats[stat]++
			}
		}
	}

	scope, err := s.Catalog.DBScope(ctx, view.system.ID)
	if err != nil {
		return nil, err
	}
	if !scope.IsEmpty() {
		perm, err := s.Assets.DBRoles(ctx, assetstore.SnapshotQuery{
			Day:   view.lastDate,
			Scope: scope,
			Users: []string{user},
			Roles: []string{assetmodels.RoleDBQuery},
		})
		if err != nil {
			return nil, err
		}
		out.HasSearchPerm = len(perm) > 0
	}
	return out, nil
}
