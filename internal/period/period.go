// Package period computes the review cycle a point in time belongs to.
//
// Every function is pure: the same cadence and instant always yield the same
// bucket, in the location carried by the instant.
package period

import (
	"fmt"
	"time"

	dErrors "bulwark/pkg/domain-errors"
)

// Cadence is how often a task manager mints review tasks.
type Cadence string

const (
	Month    Cadence = "MONTH"
	Quarter  Cadence = "QUARTER"
	HalfYear Cadence = "HALFYEAR"
)

var descriptions = map[Cadence]string{
	Month:    "每月",
	Quarter:  "每季度",
	HalfYear: "半年",
}

// Description returns the display label, or the raw value when unknown.
func (c Cadence) Description() string {
	if d, ok := descriptions[c]; ok {
		return d
	}
	return string(c)
}

func (c Cadence) IsValid() bool {
	_, ok := descriptions[c]
	return ok
}

// ParseCadence validates a stored cadence name.
func ParseCadence(s string) (Cadence, error) {
	c := Cadence(s)
	if !c.IsValid() {
		return "", dErrors.New(dErrors.CodeInvalidInput, fmt.Sprintf("错误周期名称: %s", s))
	}
	return c, nil
}

// months is the bucket width.
func (c Cadence) months() int {
	switch c {
	case Month:
		return 1
	case Quarter:
		return 3
	case HalfYear:
		return 6
	}
	return 0
}

// Window is a closed time interval [Start, End].
type Window struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside the window.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

func firstMonth(c Cadence, m time.Month) time.Month {
	width := c.months()
	return time.Month((int(m)-1)/width*width + 1)
}

// Range returns the first and last instant of the bucket containing t.
// Unknown cadences yield the zero window.
func Range(c Cadence, t time.Time) (start, end time.Time) {
	if !c.IsValid() {
		return time.Time{}, time.Time{}
	}
	start = time.Date(t.Year(), firstMonth(c, t.Month()), 1, 0, 0, 0, 0, t.Location())
	end = start.AddDate(0, c.months(), 0).Add(-time.Nanosecond)
	return start, end
}

// WindowOf is Range as a Window.
func WindowOf(c Cadence, t time.Time) Window {
	start, end := Range(c, t)
	return Window{Start: start, End: end}
}

// Tag renders the human readable period label, e.g. 2024年Q1, 2024年上, 2024年3月.
func Tag(c Cadence, t time.Time) string {
	switch c {
	case Quarter:
		return fmt.Sprintf("%d年Q%d", t.Year(), (int(t.Month())+2)/3)
	case HalfYear:
		half := "上"
		if t.Month() >= time.July {
			half = "下"
		}
		return fmt.Sprintf("%d年%s", t.Year(), half)
	case Month:
		return fmt.Sprintf("%d年%d月", t.Year(), int(t.Month()))
	}
	return ""
}

// IsTriggerDay reports whether t's calendar date is the first day of its bucket.
func IsTriggerDay(c Cadence, t time.Time) bool {
	if !c.IsValid() {
		return false
	}
	start, _ := Range(c, t)
	return t.Year() == start.Year() && t.Month() == start.Month() && t.Day() == 1
}

// Day truncates t to local midnight.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Yesterday is local midnight of the day before now.
func Yesterday(now time.Time) time.Time {
	return Day(now).AddDate(0, 0, -1)
}
