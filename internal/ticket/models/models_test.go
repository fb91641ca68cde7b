package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOnlineTicketHits(t *testing.T) {
	ticket := &OnlineTicket{CommitID: "abc1234ffee, 9f8e7d6c5b；deadbeef00"}

	assert.True(t, ticket.Hits("abc1234"))
	assert.True(t, ticket.Hits("9f8e7d6"))
	assert.True(t, ticket.Hits("deadbee"))
	assert.False(t, ticket.Hits("bc12345"), "substring that is not a prefix")
	assert.False(t, ticket.Hits(""))
	assert.False(t, (&OnlineTicket{}).Hits("abc1234"))
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name   string
		ticket *OnlineTicket
		want   Verdict
	}{
		{"no ticket", nil, Verdict{Risk: true, RiskReason: ReasonUnauthorized}},
		{"rejected", &OnlineTicket{TicketID: "T1", Status: "rejected"}, Verdict{Risk: true, RiskReason: ReasonApproval, TicketID: "T1"}},
		{"ready", &OnlineTicket{TicketID: "T2", Status: StatusReady}, Verdict{Risk: true, RiskReason: ReasonNonStandard, TicketID: "T2"}},
		{"done", &OnlineTicket{TicketID: "T3", Status: StatusDone}, Verdict{TicketID: "T3"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.ticket))
		})
	}
}

func TestClosureCovers(t *testing.T) {
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	c := &Closure{Projects: []string{"pay"}, Start: start, End: start.Add(48 * time.Hour), WosURL: "https://wos/1"}

	assert.True(t, c.Covers([]string{"web", "pay"}, start))
	assert.True(t, c.Covers([]string{"pay"}, start.Add(48*time.Hour)))
	assert.False(t, c.Covers([]string{"pay"}, start.Add(49*time.Hour)))
	assert.False(t, c.Covers([]string{"web"}, start.Add(time.Hour)))

	v := Classify(nil).Excuse(c)
	assert.False(t, v.Risk)
	assert.Equal(t, ReasonClosureGranted, v.RiskReason)
	assert.Equal(t, "https://wos/1", v.WosURL)
}

func TestCommitPrefix(t *testing.T) {
	assert.Equal(t, "abc1234", CommitPrefix("abc1234ffee"))
	assert.Equal(t, "abc", CommitPrefix("abc"))
	assert.Equal(t, "abc1234", (&DeployRecord{CommitID: "abc1234"}).Prefix())
}
