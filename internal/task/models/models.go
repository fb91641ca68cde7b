// Package models defines audit tasks and their lifecycle rules.
package models

import (
	"fmt"
	"strings"
	"time"

	dErrors "bulwark/pkg/domain-errors"
)

// Status is a task lifecycle state. Declaration order is the rank used by
// transition checks; PAUSE ranks last.
type Status string

const (
	StatusNotStarted  Status = "NOT_STARTED"
	StatusStarted     Status = "STARTED"
	StatusUnderReview Status = "UNDER_REVIEW"
	StatusNotAudited  Status = "NOT_AUDITED"
	StatusFinished    Status = "FINISHED"
	StatusPause       Status = "PAUSE"
)

var statusOrder = []Status{
	StatusNotStarted,
	StatusStarted,
	StatusUnderReview,
	StatusNotAudited,
	StatusFinished,
	StatusPause,
}

var statusDescriptions = map[Status]string{
	StatusNotStarted:  "待启动",
	StatusStarted:     "已启动",
	StatusUnderReview: "审阅中",
	StatusNotAudited:  "待审核",
	StatusFinished:    "已完成",
	StatusPause:       "暂停",
}

func (s Status) Description() string {
	if d, ok := statusDescriptions[s]; ok {
		return d
	}
	return string(s)
}

func (s Status) IsValid() bool {
	_, ok := statusDescriptions[s]
	return ok
}

// Rank is the status position in declaration order, -1 when unknown.
func (s Status) Rank() int {
	for i, st := range statusOrder {
		if st == s {
			return i
		}
	}
	return -1
}

// ParseStatus accepts a status name.
func ParseStatus(s string) (Status, error) {
	st := Status(strings.ToUpper(strings.TrimSpace(s)))
	if !st.IsValid() {
		return "", dErrors.New(dErrors.CodeInvalidInput, fmt.Sprintf("未知任务状态: %s", s))
	}
	return st, nil
}

// IsRecovery reports the PAUSE -> NOT_STARTED reset.
func IsRecovery(from, to Status) bool {
	return from == StatusPause && to == StatusNotStarted
}

// ValidateTransition checks the rank rules. Recovery is always legal; rank
// may not go down, NOT_STARTED cannot jump to FINISHED and a FINISHED task
// cannot be paused.
func ValidateTransition(from, to Status) error {
	if IsRecovery(from, to) {
		return nil
	}
	if to.Rank() < from.Rank() ||
		(from == StatusNotStarted && to == StatusFinished) ||
		(from == StatusFinished && to == StatusPause) {
		return dErrors.New(dErrors.CodeInvalidRequest,
			fmt.Sprintf("状态变更非法: %s->%s", from.Description(), to.Description()))
	}
	return nil
}

// Task is one review round of a task manager for one period.
type Task struct {
	ID            string     `json:"id"`
	TaskManagerID string     `json:"task_manager"`
	Period        string     `json:"period"`
	Status        Status     `json:"status"`
	CreatedAt     time.Time  `json:"created_time"`
	StartTime     *time.Time `json:"start_time"`
	FinishedTime  *time.Time `json:"finished_time"`
}

func (t *Task) IsFinished() bool {
	return t.Status == StatusFinished
}

// Title names the review report of a task.
func Title(systemName, period string) string {
	return systemName + period + "审阅报告"
}

// ReportURL is the review page of a task under host, which ends with a slash.
func ReportURL(host, taskID string) string {
	return host + "report/newreview/" + taskID
}

// LastDate is the snapshot day a task's review reads: the day before it
// finished, or yesterday while it is still open.
func (t *Task) LastDate(now time.Time) time.Time {
	ref := now
	if t.IsFinished() && t.FinishedTime != nil {
		ref = *t.FinishedTime
	}
	y, m, d := ref.AddDate(0, 0, -1).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, ref.Location())
}

// Event is a push-worthy transition.
type Event string

const (
	EventStarted    Event = "STARTED"
	EventReviewed   Event = "REVIEWED"
	EventTicketOpen Event = "TIC_STARTED"
)

var eventDescriptions = map[Event]string{
	EventStarted:    "启动事件",
	EventReviewed:   "已审阅事件",
	EventTicketOpen: "工单启动事件",
}

func (e Event) Description() string {
	return eventDescriptions[e]
}

// EventFor maps a transition to the event it announces, if any.
func EventFor(from, to Status) (Event, bool) {
	switch {
	case from == to:
		return "", false
	case from == StatusNotStarted && to == StatusStarted:
		return EventStarted, true
	case from == StatusUnderReview && to == StatusNotAudited:
		return EventReviewed, true
	}
	return "", false
}

// Push texts.
const (
	StartedContent  = "您好，合规审阅已开始，请登录 %s 进行审阅"
	TicketContent   = "您好，合规审阅(上线工单)已开始，请登录 %s 进行审阅"
	ReviewedContent = "%s已审阅，请登录 %s 确认"
	PauseTip        = "该任务已被暂停, 详请咨询"
	PauseFallback   = "合规同事"
	EarlyStart      = "周期尚未结束, 任务不可以开始噢~"
)

// Detail is the task header a review page renders.
type Detail struct {
	ID               string          `json:"id"`
	Status           Status          `json:"status"`
	StatusDesc       string          `json:"status_desc"`
	ReviewStatus     map[string]bool `json:"review_status"`
	ReviewStatusDesc string          `json:"review_status_desc"`
	IsPause          bool            `json:"is_pause"`
	PauseTip         string          `json:"pause_tip,omitempty"`
	Title            string          `json:"name"`
	Period           string          `json:"period"`
	CreatedTime      string          `json:"created_time"`
	ReportURL        string          `json:"report_url"`
}
