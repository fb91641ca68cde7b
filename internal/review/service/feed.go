package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sort"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	assetmodels "bulwark/internal/asset/models"
	assetstore "bulwark/internal/asset/store"
	catalog "bulwark/internal/catalog/models"
	identity "bulwark/internal/identity/models"
	"bulwark/internal/review/models"
	riskmodels "bulwark/internal/risk/models"
	"bulwark/pkg/platform/sentinel"
)

// FeedDeps are the stores and services a FeedService reads.
type FeedDeps struct {
	Tasks       TaskStore
	Catalog     Catalog
	Assets      Assets
	Annotations Annotations
	Snapshots   Snapshots
	Positions   Positions
	Identities  Identities
	TicketData  Tickets
	Comments    CommentStore
}

// FeedService builds the reviewer-facing datasets of a task.
type FeedService struct {
	FeedDeps
	options
	tracer trace.Tracer
}

func NewFeedService(d FeedDeps, opts ...Option) *FeedService {
	return &FeedService{
		FeedDeps: d,
		options:  newOptions(opts),
		tracer:   otel.Tracer("bulwark/review"),
	}
}

// AppAccounts is the application account review. Dormancy findings are
// shown here only.
func (s *FeedService) AppAccounts(ctx context.Context, taskID string, f models.Filter) (*models.Feed, error) {
	return s.accountFeed(ctx, taskID, catalog.ReviewApp, f)
}

// SysDbAccounts merges OS root users and database grants into one review.
func (s *FeedService) SysDbAccounts(ctx context.Context, taskID string, f models.Filter) (*models.Feed, error) {
	return s.accountFeed(ctx, taskID, catalog.ReviewSysDB, f)
}

// Warm builds both account feeds of a task and stores them in the cache.
func (s *FeedService) Warm(ctx context.Context, taskID string) error {
	view, err := loadTaskView(ctx, s.Tasks, s.Catalog, taskID, s.now())
	if err != nil {
		return err
	}
	var errs []error
	for _, rt := range []catalog.ReviewType{catalog.ReviewApp, catalog.ReviewSysDB} {
		accounts, err := s.buildAccounts(ctx, view, rt)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s feed: %w", rt, err))
			continue
		}
		s.storeCached(ctx, view, rt, accounts)
	}
	return errors.Join(errs...)
}

func (s *FeedService) accountFeed(ctx context.Context, taskID string, rt catalog.ReviewType, f models.Filter) (feed *models.Feed, err error) {
	start := time.Now()
	ctx, span := s.tracer.Start(ctx, "review.account_feed", trace.WithAttributes(
		attribute.String("task.id", taskID),
		attribute.String("review.type", string(rt)),
	))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
		s.metrics.ObserveFeed(string(rt), start, err)
	}()

	view, err := loadTaskView(ctx, s.Tasks, s.Catalog, taskID, s.now())
	if err != nil {
		return nil, err
	}
	accounts, ok := s.loadCached(ctx, view, rt)
	if !ok {
		accounts, err = s.buildAccounts(ctx, view, rt)
		if err != nil {
			return nil, err
		}
		s.storeCached(ctx, view, rt, accounts)
	}

	var allRoles []string
	for _, a := range accounts {
		allRoles = append(allRoles, a.Roles...)
	}
	allRoles = sortedUnique(allRoles)

	accounts = filterRoles(accounts, f.Roles)
	var names []string
	for _, a := range accounts {
		names = append(names, a.Tags()...)
	}
	contents, err := s.Comments.SingleContents(ctx, models.ScopeFor(view.task.ID, view.task.Period, view.system, rt), names)
	if err != nil {
		return nil, err
	}
	var depts []string
	for _, a := range accounts {
		for _, tag := range a.Tags() {
			if c := contents[tag]; c != "" {
				a.ReviewContent = c
				break
			}
		}
		roles := slices.Clone(a.Roles)
		sort.Strings(roles)
		a.RolesText = strings.Join(roles, ",")
		if a.DeptName != "" {
			depts = append(depts, a.DeptName)
		}
	}

	results := make([]*models.Account, 0, len(accounts))
	for _, a := range accounts {
		if f.Dept != "" && a.DeptName != f.Dept {
			continue
		}
		if f.NotReviewed && a.ReviewContent != "" {
			continue
		}
		results = append(results, a)
	}
	sort.SliceStable(results, func(i, j int) bool { return models.Less(results[i], results[j]) })

	return &models.Feed{
		ShowColumns: models.AccountColumns,
		DeptNames:   append([]string{""}, sortedUnique(depts)...),
		AllRoles:    allRoles,
		UserCount:   len(results),
		Results:     results,
	}, nil
}

// filterRoles keeps accounts holding one of roles and narrows their roles to
// the requested ones.
func filterRoles(accounts []*models.Account, roles []string) []*models.Account {
	if len(roles) == 0 {
		return accounts
	}
	out := accounts[:0]
	for _, a := range accounts {
		var hit []string
		for _, r := range a.Roles {
			if slices.Contains(roles, r) {
				hit = append(hit, r)
			}
		}
		if len(hit) == 0 {
			continue
		}
		a.Roles = hit
		out = append(out, a)
	}
	return out
}

func cacheKey(view *taskView, rt catalog.ReviewType) string {
	return fmt.Sprintf("%s:%s:%s", rt, view.task.ID, view.lastDate.Format(time.DateOnly))
}

func (s *FeedService) loadCached(ctx context.Context, view *taskView, rt catalog.ReviewType) ([]*models.Account, bool) {
	if s.cache == nil {
		return nil, false
	}
	var accounts []*models.Account
	hit, err := s.cache.Get(ctx, cacheKey(view, rt), &accounts)
	if err != nil {
		s.logger.WarnContext(ctx, "feed cache read failed", "task_id", view.task.ID, "error", err)
		return nil, false
	}
	s.metrics.IncCache(hit)
	return accounts, hit
}

func (s *FeedService) storeCached(ctx context.Context, view *taskView, rt catalog.ReviewType, accounts []*models.Account) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, cacheKey(view, rt), accounts); err != nil {
		s.logger.WarnContext(ctx, "feed cache write failed", "task_id", view.task.ID, "error", err)
	}
}

// buildAccounts merges the snapshot rows of the view's day per canonical
// identity and attaches profile, risk and log presence. It does not read
// comments.
func (s *FeedService) buildAccounts(ctx context.Context, view *taskView, rt catalog.ReviewType) ([]*models.Account, error) {
	byTag, err := s.snapshotAccounts(ctx, view, rt)
	if err != nil {
		return nil, err
	}
	if len(byTag) == 0 {
		return nil, nil
	}
	tags := make([]string, 0, len(byTag))
	for tag := range byTag {
		tags = append(tags, tag)
	}
	sort.Strings(tags)

	domain := catalog.DomainApp
	if rt == catalog.ReviewSysDB {
		domain = catalog.DomainSysDB
	}
	people, err := s.people(ctx, view, tags, domain)
	if err != nil {
		return nil, err
	}
	hasTransfer, err := s.hasRule(ctx, view, catalog.RuleJobTrans)
	if err != nil {
		return nil, err
	}
	withLogs, err := s.logUsers(ctx, view, rt)
	if err != nil {
		return nil, err
	}

	groups := groupByIdentity(tags, people.ids)
	out := make([]*models.Account, 0, len(groups))
	for _, g := range groups {
		a := &models.Account{
			OriginName:  g.tags[0],
			CanonicalID: strings.Join(g.ids, ","),
			OriginTags:  g.tags,
		}
		for _, tag := range g.tags {
			a.Absorb(byTag[tag])
			if _, ok := withLogs[tag]; ok {
				a.HasLogs = true
			}
		}
		if err := s.formatAccount(ctx, view, rt, a, g.ids, people, hasTransfer); err != nil {
			s.metrics.IncDropped(string(rt))
			s.logger.ErrorContext(ctx, "format review account failed",
				"task_id", view.task.ID,
				"canonical_id", a.CanonicalID,
				"error", err,
			)
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

// identityGroup is one review row: the canonical ids of a person and every
// raw tag that resolved to them.
type identityGroup struct {
	ids  []string
	tags []string
}

// groupByIdentity joins tags that share a canonical id. An alias naming
// several ids pulls all of them, and the tags behind them, into one group.
func groupByIdentity(tags []string, idsOf func(string) []string) []identityGroup {
	parent := make(map[string]string)
	find := func(x string) string {
		for parent[x] != x {
			parent[x] = parent[parent[x]]
			x = parent[x]
		}
		return x
	}
	for _, t := range tags {
		ids := idsOf(t)
		for _, id := range ids {
			if _, ok := parent[id]; !ok {
				parent[id] = id
			}
		}
		for _, id := range ids[1:] {
			ra, rb := find(ids[0]), find(id)
			if rb < ra {
				ra, rb = rb, ra
			}
			parent[rb] = ra
		}
	}

	byRoot := make(map[string]*identityGroup)
	var roots []string
	for _, t := range tags {
		ids := idsOf(t)
		root := find(ids[0])
		g, ok := byRoot[root]
		if !ok {
			g = &identityGroup{}
			byRoot[root] = g
			roots = append(roots, root)
		}
		g.tags = append(g.tags, t)
		g.ids = append(g.ids, ids...)
	}
	out := make([]identityGroup, 0, len(roots))
	for _, root := range roots {
		g := byRoot[root]
		g.ids = sortedUnique(g.ids)
		sort.Strings(g.tags)
		out = append(out, *g)
	}
	return out
}

// formatAccount fills display and risk fields from every canonical id of
// the account. A panic is returned as an error so one bad record cannot take
// the feed down.
func (s *FeedService) formatAccount(ctx context.Context, view *taskView, rt catalog.ReviewType, a *models.Account, ids []string, people *people, hasTransfer bool) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	p := people.first(ids)
	a.Name = p.Name
	a.DeptName = identity.DisplayDept(p.DeptName)

	accountIDs := people.accountIDs(ids)
	var transfer string
	if hasTransfer && len(accountIDs) > 0 {
		transfer, err = s.transferReason(ctx, view, accountIDs)
		if err != nil {
			return err
		}
	}
	anns := make([]*riskmodels.Annotation, 0, len(accountIDs))
	for _, id := range accountIDs {
		if ann := people.annotations[id]; ann != nil {
			anns = append(anns, ann)
		}
	}
	a.RiskReason, a.RiskLevel = assessRisk(a.PermRisk(view.system.ID), anns, transfer,
		rt == catalog.ReviewApp, len(accountIDs) > 0)
	return nil
}

// assessRisk joins the triggered reasons in matrix, resignation, dormancy,
// transfer order and returns the most severe level among them. Annotations
// of every canonical id behind the account count.
func assessRisk(perm bool, anns []*riskmodels.Annotation, transfer string, showDormancy, known bool) (string, int) {
	if !known {
		return "", models.NoRiskLevel
	}
	var reasons []string
	level := models.NoRiskLevel
	add := func(reason string, l int) {
		if reason == "" || slices.Contains(reasons, reason) {
			return
		}
		reasons = append(reasons, reason)
		level = min(level, l)
	}
	if perm {
		for _, ann := range anns {
			add(ann.MatrixRisk, models.LevelMatrix)
		}
		for _, ann := range anns {
			add(ann.StaffRisk, models.LevelResigned)
		}
		if showDormancy {
			for _, ann := range anns {
				add(ann.NoUseRisk, models.LevelDormant)
			}
		}
	}
	add(transfer, models.LevelTransfer)
	return strings.Join(reasons, ";"), level
}

// transferReason ranks the position changes of every account id inside the
// view window, newest first.
func (s *FeedService) transferReason(ctx context.Context, view *taskView, accountIDs []string) (string, error) {
	var changes []*identity.PositionChange
	for _, id := range accountIDs {
		c, err := s.Positions.ChangesFor(ctx, id, view.periodStart, view.until)
		if err != nil {
			return "", err
		}
		changes = append(changes, c...)
	}
	sort.SliceStable(changes, func(i, j int) bool { return changes[i].ModifiedAt.After(changes[j].ModifiedAt) })
	return models.TransferReason(changes), nil
}

func (s *FeedService) hasRule(ctx context.Context, view *taskView, rule catalog.RuleType) (bool, error) {
	atoms, err := s.Catalog.ActiveAtoms(ctx, view.manager.ID)
	if err != nil {
		return false, err
	}
	return slices.ContainsFunc(atoms, func(a *catalog.RuleAtom) bool { return a.Type == rule }), nil
}

// snapshotAccounts merges the view day's rows per raw user tag.
func (s *FeedService) snapshotAccounts(ctx context.Context, view *taskView, rt catalog.ReviewType) (map[string]*models.Account, error) {
	out := make(map[string]*models.Account)
	add := func(user string, roles []string, firstSeen, recordDate time.Time, risky bool, systems []string) {
		if user == "" || slices.Contains(s.serviceAccounts, user) {
			return
		}
		a, ok := out[user]
		if !ok {
			a = &models.Account{OriginName: user}
			out[user] = a
		}
		a.Merge(roles, assetmodels.Created(firstSeen, recordDate), risky, systems)
	}
	sysID := view.system.ID

	if rt == catalog.ReviewApp {
		bgNames, err := s.Catalog.AssetNames(ctx, sysID, catalog.DomainApp)
		if err != nil || len(bgNames) == 0 {
			return out, err
		}
		rows, err := s.Assets.AppRoles(ctx, assetstore.SnapshotQuery{Day: view.lastDate, BGNames: bgNames})
		if err != nil {
			return nil, err
		}
		for _, r := range rows {
			add(r.User, []string{r.Role}, r.FirstSeen, r.RecordDate, r.RiskFlag, r.RiskSystems)
		}
		return out, nil
	}

	servers, err := s.Catalog.AssetNames(ctx, sysID, catalog.DomainSA)
	if err != nil {
		return nil, err
	}
	if len(servers) > 0 {
		rows, err := s.Assets.OSAccounts(ctx, assetstore.SnapshotQuery{Day: view.lastDate, Servers: servers})
		if err != nil {
			return nil, err
		}
		for _, r := range rows {
			add(r.User, []string{assetmodels.RoleOSAdmin}, r.FirstSeen, r.RecordDate, r.RiskFlag, r.RiskSystems)
		}
	}
	scope, err := s.Catalog.DBScope(ctx, sysID)
	if err != nil {
		return nil, err
	}
	if !scope.IsEmpty() {
		rows, err := s.Assets.DBRoles(ctx, assetstore.SnapshotQuery{Day: view.lastDate, Scope: scope})
		if err != nil {
			return nil, err
		}
		for _, r := range rows {
			add(r.User, []string{r.Role}, r.FirstSeen, r.RecordDate, r.RiskFlag, r.RiskSystems)
		}
	}
	return out, nil
}

// people carries the directory view of a set of user tags.
type people struct {
	canonical   map[string][]string
	profiles    map[string]identity.Profile
	annotations map[string]*riskmodels.Annotation
}

// ids returns the canonical ids behind tag. A tag without an alias is its
// own canonical id.
func (p *people) ids(tag string) []string {
	if ids := p.canonical[tag]; len(ids) > 0 {
		return ids
	}
	return []string{tag}
}

// first returns the first known directory profile among ids.
func (p *people) first(ids []string) identity.Profile {
	for _, id := range ids {
		if prof := p.profiles[id]; !prof.IsZero() {
			return prof
		}
	}
	return identity.Profile{}
}

func (p *people) profile(tag string) identity.Profile {
	return p.first(p.ids(tag))
}

func (p *people) accountIDs(ids []string) []string {
	var out []string
	for _, id := range ids {
		if acc := p.profiles[id].AccountID; acc != "" {
			out = append(out, acc)
		}
	}
	return sortedUnique(out)
}

func (s *FeedService) people(ctx context.Context, view *taskView, tags []string, domain catalog.Domain) (*people, error) {
	canonical, err := s.Identities.ResolveToCanonical(ctx, tags, view.system.ID, domain)
	if err != nil {
		return nil, err
	}
	for tag, ids := range canonical {
		canonical[tag] = sortedUnique(ids)
	}
	p := &people{canonical: canonical}
	var lookup []string
	for _, t := range tags {
		lookup = append(lookup, p.ids(t)...)
	}
	p.profiles = s.Identities.Profiles(ctx, sortedUnique(lookup))

	var accountIDs []string
	for _, prof := range p.profiles {
		if prof.AccountID != "" {
			accountIDs = append(accountIDs, prof.AccountID)
		}
	}
	p.annotations = map[string]*riskmodels.Annotation{}
	if len(accountIDs) > 0 {
		p.annotations, err = s.Annotations.ForAccounts(ctx, view.system.ID, view.lastDate, sortedUnique(accountIDs))
		if err != nil {
			return nil, err
		}
	}
	return p, nil
}

// snapshot returns the task's job-transfer snapshot; a missing one is empty.
func (s *FeedService) snapshot(ctx context.Context, taskID string) (*riskmodels.JobTransferSnapshot, error) {
	snap, err := s.Snapshots.Get(ctx, taskID)
	if errors.Is(err, sentinel.ErrNotFound) {
		return nil, nil
	}
	return snap, err
}

func sortedUnique(items []string) []string {
	out := slices.Clone(items)
	sort.Strings(out)
	return slices.Compact(out)
}
