// Package store persists account snapshots and operation logs.
package store

import (
	"slices"
	"time"

	"bulwark/internal/asset/models"
	catalog "bulwark/internal/catalog/models"
)

// SnapshotQuery selects one day of snapshot rows. Users narrows to the given
// tags; empty means every user.
type SnapshotQuery struct {
	Day     time.Time
	BGNames []string
	Servers []string
	Scope   catalog.DBScope
	Users   []string
	Roles   []string
}

func (q SnapshotQuery) matchUser(user string) bool {
	return len(q.Users) == 0 || slices.Contains(q.Users, user)
}

func (q SnapshotQuery) matchRole(role string) bool {
	return len(q.Roles) == 0 || slices.Contains(q.Roles, role)
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// AccessQuery selects application logs in [Start, End). WriteOnly keeps
// state-changing requests that carried parameters.
type AccessQuery struct {
	Start     time.Time
	End       time.Time
	BGNames   []string
	User      string
	ID        string
	WriteOnly bool
}

func (q AccessQuery) match(l *models.AccessLog) bool {
	if q.ID != "" {
		return l.ID == q.ID && (q.User == "" || l.User == q.User)
	}
	if l.AccessedAt.Before(q.Start) || !l.AccessedAt.Before(q.End) {
		return false
	}
	if !slices.Contains(q.BGNames, l.BGName) {
		return false
	}
	if q.User != "" && l.User != q.User {
		return false
	}
	return !q.WriteOnly || l.IsWrite()
}

// CommandQuery selects command logs of one source in [Start, End). OS logs
// match on Servers, DB logs on Scope. PatternIDs keeps logs that hit one of
// the patterns; empty keeps all.
type CommandQuery struct {
	Source     models.LogSource
	Start      time.Time
	End        time.Time
	Servers    []string
	Scope      catalog.DBScope
	PatternIDs []string
	User       string
	ID         string
}

func (q CommandQuery) match(l *models.CommandLog) bool {
	if l.Source != q.Source {
		return false
	}
	if q.ID != "" {
		return l.ID == q.ID && (q.User == "" || l.User == q.User)
	}
	if l.ExecutedAt.Before(q.Start) || !l.ExecutedAt.Before(q.End) {
		return false
	}
	if q.User != "" && l.User != q.User {
		return false
	}
	if q.Source == models.SourceDB {
		if !q.Scope.Contains(l.ServerName, l.DBNode, l.DBName) {
			return false
		}
	} else if !slices.Contains(q.Servers, l.ServerName) {
		return false
	}
	return l.HitsAny(q.PatternIDs)
}
