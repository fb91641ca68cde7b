// Package models describes deploy records, the online change tickets they are
// matched against and the manual approval closures that can excuse them.
package models

import (
	"slices"
	"strings"
	"time"

	strutil "bulwark/pkg/platform/strings"
)

// PrefixLen is how many leading characters of a deploy's commit id are
// matched against ticket commit ids.
const PrefixLen = 7

// Ticket workflow statuses that count as approved.
const (
	StatusReady = "ready"
	StatusDone  = "done"
)

// ApprovedStatuses are the ticket statuses the review feed and the verifier
// treat as an approved workflow.
var ApprovedStatuses = []string{StatusReady, StatusDone}

// Verdict reasons written to deploy records.
const (
	ReasonUnauthorized   = "未授权变更"
	ReasonApproval       = "工单审批异常"
	ReasonNonStandard    = "操作不规范"
	ReasonClosureGranted = "发布系统工单关闭已审批授权"
)

// OnlineTicket is a change request from the ticket workflow. CommitID may
// hold several commit ids separated by list separators.
type OnlineTicket struct {
	TicketID       string
	Type           string
	CommitID       string
	SubmittedAt    time.Time
	Project        string
	SubmitterEmail string
	SubmitterName  string
	Status         string
	DeptID         string
}

// CommitIDs splits the stored commit id field.
func (t *OnlineTicket) CommitIDs() []string {
	return strutil.SplitList(t.CommitID)
}

// Hits reports whether prefix is a string prefix of one of the ticket's
// commit ids.
func (t *OnlineTicket) Hits(prefix string) bool {
	if prefix == "" {
		return false
	}
	return slices.ContainsFunc(t.CommitIDs(), func(id string) bool {
		return strings.HasPrefix(id, prefix)
	})
}

// Approved reports whether the ticket's workflow reached ready or done.
func (t *OnlineTicket) Approved() bool {
	return slices.Contains(ApprovedStatuses, t.Status)
}

// DeployRecord is one deployment event. Risk is nil until verified.
type DeployRecord struct {
	SourceID   string
	CommitID   string
	Deployer   string
	Project    string
	DeployTime time.Time
	Dept       string
	AppKey     string
	Risk       *bool
	RiskReason string
	TicketID   string
	WosURL     string
}

// Prefix returns the leading PrefixLen characters of the commit id.
func (d *DeployRecord) Prefix() string {
	return CommitPrefix(d.CommitID)
}

func CommitPrefix(commitID string) string {
	if len(commitID) <= PrefixLen {
		return commitID
	}
	return commitID[:PrefixLen]
}

// Closure is a manually approved window during which deploys of the listed
// projects may skip the ticket workflow.
type Closure struct {
	ID       string
	Projects []string
	Reason   string
	Start    time.Time
	End      time.Time
	WosURL   string
}

// Covers reports whether the closure includes t (both ends inclusive) for
// one of the projects.
func (c *Closure) Covers(projects []string, t time.Time) bool {
	if t.Before(c.Start) || t.After(c.End) {
		return false
	}
	return slices.ContainsFunc(projects, func(p string) bool {
		return slices.Contains(c.Projects, p)
	})
}

// Verdict is the outcome written to every deploy record of a commit.
type Verdict struct {
	Risk       bool
	RiskReason string
	TicketID   string
	WosURL     string
}

// Classify derives the verdict from the matched ticket, nil when none
// matched.
func Classify(t *OnlineTicket) Verdict {
	if t == nil {
		return Verdict{Risk: true, RiskReason: ReasonUnauthorized}
	}
	v := Verdict{TicketID: t.TicketID}
	switch {
	case !t.Approved():
		v.Risk = true
		v.RiskReason = ReasonApproval
	case t.Status == StatusReady:
		v.Risk = true
		v.RiskReason = ReasonNonStandard
	}
	return v
}

// Unauthorized reports whether no ticket matched at all.
func (v Verdict) Unauthorized() bool {
	return v.Risk && v.RiskReason == ReasonUnauthorized
}

// Excuse turns an unauthorized verdict into a compliant one backed by the
// closure's ticket.
func (v Verdict) Excuse(c *Closure) Verdict {
	return Verdict{Risk: false, RiskReason: ReasonClosureGranted, TicketID: v.TicketID, WosURL: c.WosURL}
}
