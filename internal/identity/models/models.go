// Package models holds directory profiles, non-standard account aliases and
// HR position changes.
package models

import (
	"strings"
	"time"

	catalog "bulwark/internal/catalog/models"
)

// Profile is a directory entry. AccountID is the canonical identifier for
// application accounts, the email prefix for every other domain.
type Profile struct {
	AccountID string `json:"accountid"`
	Name      string `json:"name"`
	DeptName  string `json:"dept_name"`
	Email     string `json:"email"`
}

// IsZero reports whether the directory returned nothing for the lookup.
func (p Profile) IsZero() bool {
	return p.AccountID == "" && p.Name == "" && p.Email == ""
}

// EmailPrefix is the local part of the profile email.
func (p Profile) EmailPrefix() string {
	if i := strings.Index(p.Email, "@"); i >= 0 {
		return p.Email[:i]
	}
	return p.Email
}

// DisplayDept truncates a department path to its first two "-" segments.
func DisplayDept(dept string) string {
	parts := strings.SplitN(dept, "-", 3)
	if len(parts) > 2 {
		parts = parts[:2]
	}
	return strings.Join(parts, "-")
}

// IsAccountID reports whether a tag is already a numeric account id.
func IsAccountID(tag string) bool {
	if tag == "" {
		return false
	}
	for _, r := range tag {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Alias maps a non-standard account name on an asset to the person behind it.
type Alias struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	SystemID  string         `json:"audit_sys"`
	Domain    catalog.Domain `json:"server_kind"`
	AccountID string         `json:"user"`
	Email     string         `json:"user_email"`
	UserName  string         `json:"user_name"`
	Dept      string         `json:"dept"`
	Deleted   bool           `json:"deleted"`
}

// Canonical returns the identifier the alias resolves to in its domain.
func (a *Alias) Canonical() string {
	if a.Domain.UsesAccountID() {
		return a.AccountID
	}
	if i := strings.Index(a.Email, "@"); i >= 0 {
		return a.Email[:i]
	}
	return a.Email
}

// TransferAction classifies an HR position change.
type TransferAction string

const (
	ActionRehire       TransferAction = "fanpin"
	ActionDeptChange   TransferAction = "yidong"
	ActionReportChange TransferAction = "huibao"
	ActionTransfer     TransferAction = "zhuangang"
)

// PositionChange is one HR record of an employee changing position.
type PositionChange struct {
	ID               string         `json:"id"`
	EmployeeID       string         `json:"employee_id"`
	AccountID        string         `json:"accountid"`
	Name             string         `json:"name"`
	TitleBefore      string         `json:"title_before"`
	TitleAfter       string         `json:"title_after"`
	DepartmentBefore string         `json:"department_before"`
	DepartmentAfter  string         `json:"department_after"`
	ModifiedAt       time.Time      `json:"modify_dt"`
	Action           TransferAction `json:"action"`
}
