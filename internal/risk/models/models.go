// Package models holds the per-account risk annotations the rule handlers
// write and the job-transfer snapshots kept per task.
package models

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

// Risk reason texts.
const (
	MatrixPrefix     = "兼具"
	ReasonResigned   = "已离职"
	dormantFormat    = "已有%d天未操作"
	DefaultIdleDays  = 45
	ReminderTemplate = "### 请注意 ###\n以下业务线存在权限不相容情况, 请在合规平台中查看详情:\n%s\n日期:%s"
)

// DormantReason renders the dormancy reason for a threshold.
func DormantReason(days int) string {
	return fmt.Sprintf(dormantFormat, days)
}

// Admin capabilities, in the order violation texts list them.
const (
	CapabilityApp = "应用管理员"
	CapabilityOS  = "系统管理员"
	CapabilityDB  = "数据库管理员"
)

// Capabilities records which admin sets an account belongs to.
type Capabilities struct {
	App bool
	OS  bool
	DB  bool
}

func (c Capabilities) Count() int {
	n := 0
	for _, b := range []bool{c.App, c.OS, c.DB} {
		if b {
			n++
		}
	}
	return n
}

// SanctionedOverlap is the only pair of admin capabilities one account may
// hold: operating system together with database.
var SanctionedOverlap = Capabilities{OS: true, DB: true}

// Compliant reports whether the capability mix is allowed.
func (c Capabilities) Compliant() bool {
	n := c.Count()
	return n <= 1 || (n == 2 && c == SanctionedOverlap)
}

// Violation describes a non-compliant mix, empty when compliant.
func (c Capabilities) Violation() string {
	if c.Compliant() {
		return ""
	}
	var held []string
	if c.App {
		held = append(held, CapabilityApp)
	}
	if c.OS {
		held = append(held, CapabilityOS)
	}
	if c.DB {
		held = append(held, CapabilityDB)
	}
	return MatrixPrefix + strings.Join(held, "、")
}

// Fields is a partial annotation. Nil columns are left untouched on upsert.
type Fields struct {
	MatrixRisk *string
	StaffRisk  *string
	NoUseRisk  *string
}

func Matrix(reason string) Fields { return Fields{MatrixRisk: &reason} }
func Staff(reason string) Fields  { return Fields{StaffRisk: &reason} }
func NoUse(reason string) Fields  { return Fields{NoUseRisk: &reason} }

// IsEmpty reports whether no column carries a value. Empty writes are skipped.
func (f Fields) IsEmpty() bool {
	for _, v := range []*string{f.MatrixRisk, f.StaffRisk, f.NoUseRisk} {
		if v != nil && *v != "" {
			return false
		}
	}
	return true
}

// Annotation is the risk record of one account in one system for one day.
type Annotation struct {
	SystemID   string     `json:"audit_sys"`
	Account    string     `json:"user"`
	RecordDate time.Time  `json:"record_date"`
	MatrixRisk string     `json:"matrix_risk"`
	StaffRisk  string     `json:"staff_risk"`
	NoUseRisk  string     `json:"no_use_risk"`
	LastRemind *time.Time `json:"last_remind"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// Merge applies the set columns of f.
func (a *Annotation) Merge(f Fields) {
	if f.MatrixRisk != nil {
		a.MatrixRisk = *f.MatrixRisk
	}
	if f.StaffRisk != nil {
		a.StaffRisk = *f.StaffRisk
	}
	if f.NoUseRisk != nil {
		a.NoUseRisk = *f.NoUseRisk
	}
}

// JobTransferSnapshot lists the accounts of a task that changed position
// inside the task's period. Both lists include alias names.
type JobTransferSnapshot struct {
	TaskID     string    `json:"task"`
	AccountIDs []string  `json:"accountid"`
	Emails     []string  `json:"email"`
	CreatedAt  time.Time `json:"created_time"`
	UpdatedAt  time.Time `json:"update_time"`
}

// Contains reports whether tag appears in either list.
func (s *JobTransferSnapshot) Contains(tag string) bool {
	if s == nil || tag == "" {
		return false
	}
	return slices.Contains(s.AccountIDs, tag) || slices.Contains(s.Emails, tag)
}
