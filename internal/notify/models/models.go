// Package models defines the push messages queued in the notification outbox.
package models

import (
	"time"

	dErrors "bulwark/pkg/domain-errors"
)

// Kind tags what triggered a push.
type Kind string

const (
	KindTaskStarted   Kind = "STARTED"
	KindTaskReviewed  Kind = "REVIEWED"
	KindTicketStarted Kind = "TIC_STARTED"
	KindRiskReminder  Kind = "RISK_REMINDER"
	KindReviewerGrant Kind = "REVIEWER_GRANT"
)

// Message is one push to a list of recipients.
type Message struct {
	ID         string     `json:"id"`
	Kind       Kind       `json:"kind"`
	Content    string     `json:"content"`
	Recipients []string   `json:"recipients"`
	CreatedAt  time.Time  `json:"created_at"`
	SentAt     *time.Time `json:"sent_at,omitempty"`
	Attempts   int        `json:"attempts"`
	LastError  string     `json:"last_error,omitempty"`
}

func (m *Message) Validate() error {
	if m.Content == "" {
		return dErrors.New(dErrors.CodeValidation, "message content is required")
	}
	if len(m.Recipients) == 0 {
		return dErrors.New(dErrors.CodeValidation, "message needs at least one recipient")
	}
	return nil
}

func (m *Message) IsSent() bool {
	return m.SentAt != nil
}
