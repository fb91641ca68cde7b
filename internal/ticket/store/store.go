// Package store persists deploy records, online tickets and approval
// closures.
package store

import (
	"time"

	"bulwark/internal/ticket/models"
)

// DeployQuery selects deploy records of one department with From <= deploy
// time < To. Empty AppKeys means every app; RiskyOnly keeps records whose
// verdict is risky.
type DeployQuery struct {
	Dept      string
	From      time.Time
	To        time.Time
	AppKeys   []string
	RiskyOnly bool
}

func (q DeployQuery) matches(d *models.DeployRecord) bool {
	if d.Dept != q.Dept {
		return false
	}
	if d.DeployTime.Before(q.From) || !d.DeployTime.Before(q.To) {
		return false
	}
	if len(q.AppKeys) > 0 && !contains(q.AppKeys, d.AppKey) {
		return false
	}
	if q.RiskyOnly && (d.Risk == nil || !*d.Risk) {
		return false
	}
	return true
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
