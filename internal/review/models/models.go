// Package models holds review comments, message-board entries and the
// reviewer-facing feed payloads.
package models

import (
	"slices"
	"strings"
	"time"

	catalog "bulwark/internal/catalog/models"
	identity "bulwark/internal/identity/models"
)

// Comment is a reviewer's judgement. Whole comments carry no SingleID and
// cover a review type for the task; single comments judge one record.
// Ticket review types are keyed by Dept and Period instead of TaskID.
type Comment struct {
	ID         string             `json:"id"`
	Legacy     bool               `json:"-"`
	TaskID     string             `json:"task,omitempty"`
	Dept       string             `json:"dept,omitempty"`
	Period     string             `json:"period,omitempty"`
	Reviewer   string             `json:"user"`
	ReviewType catalog.ReviewType `json:"review_type"`
	Content    string             `json:"content"`
	SingleID   string             `json:"single_id,omitempty"`
	SingleDesc string             `json:"single_desc,omitempty"`
	CreatedAt  time.Time          `json:"created_time"`
}

func (c *Comment) IsWhole() bool {
	return c.SingleID == ""
}

// Scope is the key comments of one review type are stored under.
type Scope struct {
	TaskID     string
	Dept       string
	Period     string
	ReviewType catalog.ReviewType
}

// ScopeFor keys ticket review types by the system's ticket department and
// the task period, every other type by the task.
func ScopeFor(taskID, period string, sys *catalog.AuditSystem, rt catalog.ReviewType) Scope {
	if !rt.IsTicket() {
		return Scope{TaskID: taskID, ReviewType: rt}
	}
	return Scope{Dept: sys.TicketDept(rt), Period: period, ReviewType: rt}
}

// Matches reports whether c is stored under s.
func (s Scope) Matches(c *Comment) bool {
	if c.ReviewType != s.ReviewType {
		return false
	}
	if s.TaskID != "" {
		return c.TaskID == s.TaskID
	}
	return c.Dept == s.Dept && c.Period == s.Period
}

// Apply copies the scope keys onto c.
func (s Scope) Apply(c *Comment) {
	c.ReviewType = s.ReviewType
	c.TaskID = s.TaskID
	c.Dept = s.Dept
	c.Period = s.Period
}

// BoardEntry is a free-text message left on a task's review page.
type BoardEntry struct {
	ID         string             `json:"id"`
	TaskID     string             `json:"task,omitempty"`
	Dept       string             `json:"dept,omitempty"`
	Period     string             `json:"period,omitempty"`
	Author     string             `json:"user"`
	ReviewType catalog.ReviewType `json:"review_type"`
	Content    string             `json:"content"`
	CreatedAt  time.Time          `json:"created_time"`
}

// ReviewStatus tells, per whole review type, whether a whole comment exists.
type ReviewStatus map[catalog.ReviewType]bool

// All reports whether every whole review type is reviewed.
func (s ReviewStatus) All() bool {
	for _, rt := range catalog.WholeReviewTypes {
		if !s[rt] {
			return false
		}
	}
	return true
}

// Any reports whether at least one whole review type is reviewed.
func (s ReviewStatus) Any() bool {
	for _, rt := range catalog.WholeReviewTypes {
		if s[rt] {
			return true
		}
	}
	return false
}

// Render reads "应用、工单已审阅;数据库/操作系统未审阅".
func (s ReviewStatus) Render() string {
	var done, pending []string
	for _, rt := range catalog.WholeReviewTypes {
		if s[rt] {
			done = append(done, rt.Description())
		} else {
			pending = append(pending, rt.Description())
		}
	}
	var parts []string
	if len(done) > 0 {
		parts = append(parts, strings.Join(done, "、")+"已审阅")
	}
	if len(pending) > 0 {
		parts = append(parts, strings.Join(pending, "、")+"未审阅")
	}
	return strings.Join(parts, ";")
}

// Risk levels; lower is more severe.
const (
	LevelMatrix   = 1
	LevelTransfer = 2
	LevelResigned = 3
	LevelDormant  = 4
	NoRiskLevel   = 99999
)

type transferReason struct {
	action identity.TransferAction
	text   string
}

var transferReasons = []transferReason{
	{identity.ActionRehire, "该员工为返聘"},
	{identity.ActionDeptChange, "部门异动"},
	{identity.ActionReportChange, "调整汇报关系"},
	{identity.ActionTransfer, "员工个人转岗"},
}

// TransferReason ranks an account's position changes, newest first, and
// returns the most severe reason. Unknown action codes count as a personal
// transfer, which reads "转岗至" plus the latest target department.
func TransferReason(changes []*identity.PositionChange) string {
	if len(changes) == 0 {
		return ""
	}
	seen := make(map[identity.TransferAction]bool)
	for _, c := range changes {
		known := slices.ContainsFunc(transferReasons, func(r transferReason) bool {
			return r.action == c.Action
		})
		if !known {
			seen[identity.ActionTransfer] = true
			continue
		}
		seen[c.Action] = true
	}
	for _, r := range transferReasons {
		if !seen[r.action] {
			continue
		}
		if r.action == identity.ActionTransfer {
			return "转岗至" + changes[0].DepartmentAfter
		}
		return r.text
	}
	return ""
}

// Filter narrows an account feed.
type Filter struct {
	Dept        string
	NotReviewed bool
	Roles       []string
}

// Account is one row of an account review feed.
type Account struct {
	OriginName    string    `json:"origin_name"`
	CanonicalID   string    `json:"canonical_id"`
	OriginTags    []string  `json:"origin_tags,omitempty"`
	Name          string    `json:"name"`
	DeptName      string    `json:"dept_name"`
	Roles         []string  `json:"role_list,omitempty"`
	RolesText     string    `json:"roles"`
	RiskReason    string    `json:"risk_reason"`
	RiskLevel     int       `json:"risk_level"`
	ReviewContent string    `json:"review_content"`
	HasLogs       bool      `json:"has_logs"`
	Created       time.Time `json:"create_dt"`

	riskFlag    bool
	riskSystems []string
}

// Merge folds another snapshot row of the same user into a. The account
// keeps its earliest creation time.
func (a *Account) Merge(roles []string, created time.Time, risky bool, systems []string) {
	for _, r := range roles {
		if !slices.Contains(a.Roles, r) {
			a.Roles = append(a.Roles, r)
		}
	}
	if a.Created.IsZero() || (!created.IsZero() && created.Before(a.Created)) {
		a.Created = created
	}
	a.riskFlag = a.riskFlag || risky
	for _, s := range systems {
		if !slices.Contains(a.riskSystems, s) {
			a.riskSystems = append(a.riskSystems, s)
		}
	}
}

// Absorb folds the rows merged under another raw tag of the same person.
func (a *Account) Absorb(o *Account) {
	if o == nil {
		return
	}
	a.Merge(o.Roles, o.Created, o.riskFlag, o.riskSystems)
}

// Tags lists the raw tags comments may be keyed by.
func (a *Account) Tags() []string {
	if len(a.OriginTags) > 0 {
		return a.OriginTags
	}
	return []string{a.OriginName}
}

// PermRisk reports whether snapshot rows flagged the account for systemID.
func (a *Account) PermRisk(systemID string) bool {
	return a.riskFlag && slices.Contains(a.riskSystems, systemID)
}

// Less orders accounts by severity, then newest first, then canonical id.
func Less(a, b *Account) bool {
	if a.RiskLevel != b.RiskLevel {
		return a.RiskLevel < b.RiskLevel
	}
	if !a.Created.Equal(b.Created) {
		return a.Created.After(b.Created)
	}
	if a.CanonicalID != b.CanonicalID {
		return a.CanonicalID < b.CanonicalID
	}
	return a.OriginName < b.OriginName
}

// Feed is the account review payload.
type Feed struct {
	ShowColumns map[string]string `json:"show_columns"`
	DeptNames   []string          `json:"dept_names"`
	AllRoles    []string          `json:"all_roles"`
	UserCount   int               `json:"user_count"`
	Results     []*Account        `json:"results"`
}

var AccountColumns = map[string]string{
	"origin_name":    "用户标识",
	"name":           "用户",
	"dept_name":      "所属部门",
	"roles":          "角色/权限",
	"risk_reason":    "异常原因",
	"review_content": "审阅意见",
}

// Log summary texts.
const (
	AppLogRule     = "写操作"
	UnknownProfile = "查不到该员工信息"
)

// LogGroup counts one user's logs under one rule atom.
type LogGroup struct {
	RuleAtomID   string `json:"rule_atom_id,omitempty"`
	RuleAtomName string `json:"rule_atom_name"`
	OriginName   string `json:"origin_name"`
	Name         string `json:"name"`
	Count        int    `json:"count"`
	Risk         string `json:"risk"`

	PermRisk     bool `json:"-"`
	TransferRisk bool `json:"-"`
}

// LessLogGroup orders permission risk first, then transfer risk, then the
// busiest users.
func LessLogGroup(a, b *LogGroup) bool {
	if a.PermRisk != b.PermRisk {
		return a.PermRisk
	}
	if a.TransferRisk != b.TransferRisk {
		return a.TransferRisk
	}
	if a.Count != b.Count {
		return a.Count > b.Count
	}
	if a.OriginName != b.OriginName {
		return a.OriginName < b.OriginName
	}
	return a.RuleAtomID < b.RuleAtomID
}

type LogSummary struct {
	ShowColumns map[string]string `json:"show_columns"`
	Count       int               `json:"count"`
	Results     []*LogGroup       `json:"results"`
}

var LogSummaryColumns = map[string]string{
	"origin_name":    "用户标识",
	"rule_atom_name": "日志类型",
	"name":           "用户",
	"count":          "操作次数",
	"risk":           "异常原因",
}

// LogEntry is one row of a log detail page.
type LogEntry struct {
	ID            string    `json:"id"`
	Type          string    `json:"type"`
	User          string    `json:"user"`
	Time          time.Time `json:"time"`
	ServerName    string    `json:"server_name,omitempty"`
	DBName        string    `json:"db_name,omitempty"`
	Command       string    `json:"command,omitempty"`
	Host          string    `json:"host,omitempty"`
	URL           string    `json:"url,omitempty"`
	Params        string    `json:"params,omitempty"`
	ReviewContent string    `json:"review_content"`
}

type LogDetail struct {
	ShowColumns map[string]string `json:"show_columns"`
	Count       int               `json:"count"`
	Results     []*LogEntry       `json:"results"`
}

var (
	AppLogColumns = map[string]string{
		"host":   "域名",
		"url":    "url",
		"params": "参数",
		"time":   "执行时间",
	}
	SysDBLogColumns = map[string]string{
		"server_name": "服务器名称",
		"db_name":     "数据库名称",
		"command":     "命令",
		"time":        "执行时间",
	}
)

// TicketUser aggregates online tickets and risky deploys per person.
type TicketUser struct {
	Email           string   `json:"email"`
	Name            string   `json:"name"`
	DeptName        string   `json:"dept_name"`
	Role            string   `json:"role"`
	Projects        string   `json:"projects"`
	Deployers       string   `json:"deployers"`
	RiskDeployCount int      `json:"deploy_risk_count"`
	TicketIDs       []string `json:"ticket_ids,omitempty"`
	ReviewContent   string   `json:"review_content"`
}

type TicketFeed struct {
	ShowColumns map[string]string `json:"show_columns"`
	DeptNames   []string          `json:"dept_names"`
	UserCount   int               `json:"user_count"`
	Results     []*TicketUser     `json:"results"`
}

var TicketColumns = map[string]string{
	"email":             "用户标识",
	"name":              "用户",
	"dept_name":         "所属部门",
	"projects":          "负责项目",
	"deployers":         "部署人",
	"deploy_risk_count": "异常部署次数",
	"review_content":    "审阅意见",
}

// ServerRoles lists a user's hosts and the roles held on each.
type ServerRoles struct {
	Results       map[string]string `json:"results"`
	Stats         map[string]int    `json:"statis_result"`
	HasSearchPerm bool              `json:"has_search_perm"`
}
