// Package models holds the daily account snapshots and the operation logs
// collected from audited assets.
package models

import (
	"slices"
	"time"
)

// Role names the OS snapshot reports for root users.
const (
	RoleOSAdmin       = "操作系统管理员"
	RoleDBHostOSAdmin = "数据库主机操作系统管理员"
	RoleDBQuery       = "查询权限"
)

// AppRole is one (business group, user, role) row of a daily snapshot.
type AppRole struct {
	BGName      string    `json:"bg_name"`
	Role        string    `json:"role"`
	User        string    `json:"user"`
	RecordDate  time.Time `json:"record_date"`
	FirstSeen   time.Time `json:"create_dt"`
	RiskFlag    bool      `json:"risk_tag"`
	RiskSystems []string  `json:"risk_sys"`
	DeptName    string    `json:"dept_name"`
}

// OSAccount records a root user on a server for one day.
type OSAccount struct {
	ServerName  string    `json:"server_name"`
	User        string    `json:"root_user"`
	RecordDate  time.Time `json:"record_date"`
	FirstSeen   time.Time `json:"create_dt"`
	RiskFlag    bool      `json:"risk_tag"`
	RiskSystems []string  `json:"risk_sys"`
	DeptName    string    `json:"dept_name"`
}

// DBRole is a database grant for one day. User is an email prefix.
type DBRole struct {
	ID          int64     `json:"id"`
	User        string    `json:"user"`
	Role        string    `json:"role"`
	DBNode      string    `json:"db_node"`
	ServerName  string    `json:"server_name"`
	DBName      string    `json:"db_name"`
	RecordDate  time.Time `json:"record_date"`
	FirstSeen   time.Time `json:"create_dt"`
	RiskFlag    bool      `json:"risk_tag"`
	RiskSystems []string  `json:"risk_sys"`
	DeptName    string    `json:"dept_name"`
}

// Created returns the first-seen time, falling back to the record date.
func Created(firstSeen, recordDate time.Time) time.Time {
	if firstSeen.IsZero() {
		return recordDate
	}
	return firstSeen
}

// ApplyRiskVerdict records one system's verdict on a record. risk_systems
// holds the systems that currently see the record as risky, so a system only
// adds or removes itself and the flag stays set while any system remains.
func ApplyRiskVerdict(systems []string, systemID string, risky bool) ([]string, bool) {
	if risky {
		if !slices.Contains(systems, systemID) {
			systems = append(systems, systemID)
		}
		return systems, true
	}
	systems = slices.DeleteFunc(slices.Clone(systems), func(s string) bool { return s == systemID })
	return systems, len(systems) > 0
}

// AccessLog is an application request.
type AccessLog struct {
	ID         string    `json:"id"`
	BGName     string    `json:"bg_name"`
	User       string    `json:"user"`
	AccessedAt time.Time `json:"access_dt"`
	Host       string    `json:"host"`
	URL        string    `json:"url"`
	Method     string    `json:"method"`
	Params     string    `json:"params"`
	RiskFlag   bool      `json:"risk_tag"`
}

// WriteMethods are the HTTP methods application log review looks at.
var WriteMethods = []string{"PUT", "POST", "DELETE"}

// IsWrite reports whether the request changed state and carried parameters.
func (l *AccessLog) IsWrite() bool {
	return slices.Contains(WriteMethods, l.Method) && l.Params != "" && l.Params != "{}"
}

// LogSource tells shell history from SQL audit logs.
type LogSource string

const (
	SourceOS LogSource = "sys"
	SourceDB LogSource = "db"
)

// CommandLog is a shell command or a SQL statement. HitPatterns and
// HitRuleAtoms carry ids of the regex patterns and rule atoms it matched.
type CommandLog struct {
	ID           string    `json:"id"`
	Source       LogSource `json:"type"`
	ServerName   string    `json:"server_name"`
	DBNode       string    `json:"db_node"`
	DBName       string    `json:"db_name"`
	User         string    `json:"user"`
	Command      string    `json:"command"`
	ExecutedAt   time.Time `json:"time"`
	HitPatterns  []string  `json:"hit_patterns"`
	HitRuleAtoms []string  `json:"hit_rule_atoms"`
	RiskFlag     bool      `json:"risk_tag"`
	Scanned      bool      `json:"-"`
}

// HitsAny reports whether the log matched one of patternIDs. An empty list
// matches every log.
func (l *CommandLog) HitsAny(patternIDs []string) bool {
	if len(patternIDs) == 0 {
		return true
	}
	for _, p := range l.HitPatterns {
		if slices.Contains(patternIDs, p) {
			return true
		}
	}
	return false
}
