// Package models holds the read-only audit configuration: business systems,
// their assets, rule atoms and the task managers that schedule reviews.
package models

import (
	"slices"
	"strings"

	"bulwark/internal/period"
	pkgstrings "bulwark/pkg/platform/strings"
)

// Domain is an asset domain or a review audience.
type Domain string

const (
	DomainSA     Domain = "SA"
	DomainDBA    Domain = "DBA"
	DomainApp    Domain = "APP"
	DomainTicket Domain = "TICKET"
	DomainSysDB  Domain = "SYS_DB"
)

var domainDescriptions = map[Domain]string{
	DomainSA:     "操作系统",
	DomainDBA:    "数据库",
	DomainApp:    "应用系统",
	DomainTicket: "工单",
	DomainSysDB:  "操作系统/数据库",
}

func (d Domain) Description() string {
	if desc, ok := domainDescriptions[d]; ok {
		return desc
	}
	return string(d)
}

func (d Domain) IsValid() bool {
	_, ok := domainDescriptions[d]
	return ok
}

// UsesAccountID reports whether tags in this domain canonicalize to account
// ids. Every other domain canonicalizes to email prefixes.
func (d Domain) UsesAccountID() bool {
	return d == DomainApp
}

// Status toggles configuration entries on and off.
type Status string

const (
	StatusOnline  Status = "ONLINE"
	StatusOffline Status = "OFFLINE"
)

// RuleType is the family a rule atom belongs to.
type RuleType string

const (
	RulePerm     RuleType = "PERM"
	RuleRegex    RuleType = "REGEX"
	RuleNoUse    RuleType = "NO_USE"
	RuleJobTrans RuleType = "JOB_TRANS"
)

// RuleTypes is the declaration order used by the template listing.
var RuleTypes = []RuleType{RulePerm, RuleRegex, RuleNoUse, RuleJobTrans}

var ruleDescriptions = map[RuleType]string{
	RulePerm:     "权限矩阵",
	RuleRegex:    "正则匹配",
	RuleNoUse:    "长期未使用",
	RuleJobTrans: "转岗异动",
}

func (r RuleType) Description() string {
	if desc, ok := ruleDescriptions[r]; ok {
		return desc
	}
	return string(r)
}

// ReviewType scopes a review comment.
type ReviewType string

const (
	ReviewApp          ReviewType = "APP"
	ReviewSysDB        ReviewType = "SYS_DB"
	ReviewTicket       ReviewType = "TICKET"
	ReviewAppLog       ReviewType = "APP_LOG"
	ReviewSysDBLog     ReviewType = "SYS_DB_LOG"
	ReviewOnlineTicket ReviewType = "ONLINE_TICKET"
	ReviewDeployTicket ReviewType = "DEPLOY_TICKET"
)

// WholeReviewTypes must each carry a whole-task comment before a task can
// leave review.
var WholeReviewTypes = []ReviewType{ReviewApp, ReviewSysDB, ReviewTicket}

var reviewDescriptions = map[ReviewType]string{
	ReviewApp:          "应用",
	ReviewSysDB:        "数据库/操作系统",
	ReviewTicket:       "工单",
	ReviewAppLog:       "应用日志",
	ReviewSysDBLog:     "数据库/操作系统日志",
	ReviewOnlineTicket: "上线单",
	ReviewDeployTicket: "部署单",
}

func (r ReviewType) Description() string {
	if desc, ok := reviewDescriptions[r]; ok {
		return desc
	}
	return string(r)
}

func (r ReviewType) IsValid() bool {
	_, ok := reviewDescriptions[r]
	return ok
}

// IsTicket reports whether comments of this type are keyed by department and
// period instead of by task.
func (r ReviewType) IsTicket() bool {
	return r == ReviewTicket || r == ReviewOnlineTicket || r == ReviewDeployTicket
}

// Group returns the whole review type that owns r: log reviews belong to
// their account review, ticket variants to TICKET.
func (r ReviewType) Group() ReviewType {
	switch r {
	case ReviewApp, ReviewAppLog:
		return ReviewApp
	case ReviewSysDB, ReviewSysDBLog:
		return ReviewSysDB
	case ReviewTicket, ReviewOnlineTicket, ReviewDeployTicket:
		return ReviewTicket
	}
	return ""
}

// AuditSystem is a business line under compliance review.
type AuditSystem struct {
	ID       string `json:"id"`
	Name     string `json:"sys_name"`
	ConfigID string `json:"sys_id"`
	DeptName string `json:"dept_name"`
	// DBNames narrows database assets to the system's schemas. Empty means no narrowing.
	DBNames          []string `json:"db_names"`
	OnlineTicketDept string   `json:"online_ticket_dept_id"`
	DeployTicketDept string   `json:"deploy_ticket_dept"`
	Leaders          []string `json:"leader"`
	AppAuditors      []string `json:"app_auditor"`
	SysDBAuditors    []string `json:"sys_db_auditor"`
	TicketAuditors   []string `json:"ticket_auditor"`
}

// AllAuditors is the de-duplicated union of application and SYS_DB auditors.
func (s *AuditSystem) AllAuditors() []string {
	all := append(slices.Clone(s.AppAuditors), s.SysDBAuditors...)
	return pkgstrings.DedupeAndTrim(all)
}

// AuditorsFor returns the auditors of a whole review type.
func (s *AuditSystem) AuditorsFor(review ReviewType) []string {
	switch review.Group() {
	case ReviewApp:
		return s.AppAuditors
	case ReviewSysDB:
		return s.SysDBAuditors
	case ReviewTicket:
		return s.TicketAuditors
	}
	return nil
}

// IsAuditor reports whether accountID reviews the given type for this system.
func (s *AuditSystem) IsAuditor(review ReviewType, accountID string) bool {
	if accountID == "" {
		return false
	}
	return slices.Contains(s.AuditorsFor(review), accountID)
}

// TicketDept returns the department ticket comments of this type are keyed by.
func (s *AuditSystem) TicketDept(review ReviewType) string {
	if review == ReviewDeployTicket {
		return s.DeployTicketDept
	}
	return s.OnlineTicketDept
}

// Server is one audited asset. Application assets name business-group
// backends through BGAlias.
type Server struct {
	Name     string `json:"server_name"`
	SystemID string `json:"audit_sys"`
	Kind     Domain `json:"server_kind"`
	Type     string `json:"server_type"`
	BGAlias  string `json:"bg_alias"`
}

// AssetNames resolves the names records of this asset are stored under.
func (s *Server) AssetNames() []string {
	if s.Kind != DomainApp {
		return []string{s.Name}
	}
	var names []string
	for _, n := range strings.Split(s.BGAlias, ",") {
		if n = strings.TrimSpace(n); n != "" {
			names = append(names, n)
		}
	}
	return names
}

// Project links a system to a deploy appkey.
type Project struct {
	SystemConfigID string `json:"sys_id"`
	Name           string `json:"project"`
	AppKey         string `json:"appkey"`
}

type RegexPattern struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Regex       string `json:"regex"`
	Description string `json:"desc"`
}

type RuleAtom struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Status      Status   `json:"status"`
	Type        RuleType `json:"rule_type"`
	Description string   `json:"desc"`
	PatternIDs  []string `json:"regex_pattern"`
}

func (a *RuleAtom) IsOnline() bool {
	return a.Status == StatusOnline
}

type RuleGroup struct {
	ID      string         `json:"id"`
	Name    string         `json:"name"`
	AtomIDs []string       `json:"atoms"`
	Cadence period.Cadence `json:"audit_period"`
	Status  Status         `json:"status"`
}

func (g *RuleGroup) IsOnline() bool {
	return g.Status == StatusOnline
}

// TaskManager schedules review tasks for one system under one rule group.
type TaskManager struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Description    string `json:"desc"`
	SystemID       string `json:"sys"`
	RuleGroupID    string `json:"rule_group"`
	FollowUpPerson string `json:"follow_up_person"`
	Status         Status `json:"status"`
}

func (m *TaskManager) IsOnline() bool {
	return m.Status == StatusOnline
}

// DBScope identifies the database assets of a system. A record is in scope
// when its server or node matches and its schema is in DBNames, or DBNames
// is empty, or the record carries no schema.
type DBScope struct {
	ServerNames []string
	Nodes       []string
	DBNames     []string
}

func (s DBScope) Contains(serverName, node, dbName string) bool {
	if !slices.Contains(s.ServerNames, serverName) && !slices.Contains(s.Nodes, node) {
		return false
	}
	return len(s.DBNames) == 0 || dbName == "" || slices.Contains(s.DBNames, dbName)
}

// IsEmpty reports whether no asset can match.
func (s DBScope) IsEmpty() bool {
	return len(s.ServerNames) == 0 && len(s.Nodes) == 0
}
