package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunRejectsUnknownJob(t *testing.T) {
	var out bytes.Buffer
	assert.Equal(t, 2, Run([]string{"jobs", "reindex"}, &out))
	assert.Contains(t, out.String(), `unknown job "reindex"`)
	assert.Contains(t, out.String(), "ticket-verify")

	out.Reset()
	assert.Equal(t, 2, Run([]string{"jobs"}, &out))
	assert.Contains(t, out.String(), "usage: jobs <job>")
}

func TestParseWindow(t *testing.T) {
	now := time.Date(2024, 4, 2, 9, 30, 0, 0, time.UTC)

	t.Run("defaults to yesterday", func(t *testing.T) {
		start, end, err := parseWindow("ticket-verify", nil, now)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC), start)
		assert.Equal(t, time.Date(2024, 4, 2, 0, 0, 0, 0, time.UTC), end)
	})
	t.Run("explicit days", func(t *testing.T) {
		start, end, err := parseWindow("ticket-verify", []string{"-start", "2020-10-19", "-end", "2020-10-21"}, now)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2020, 10, 19, 0, 0, 0, 0, time.UTC), start)
		assert.Equal(t, time.Date(2020, 10, 21, 0, 0, 0, 0, time.UTC), end)
	})
	t.Run("bad day", func(t *testing.T) {
		_, _, err := parseWindow("log-scan", []string{"-start", "19/10/2020"}, now)
		assert.ErrorContains(t, err, "parse -start")
	})
	t.Run("empty window", func(t *testing.T) {
		_, _, err := parseWindow("log-scan", []string{"-start", "2024-04-02"}, now)
		assert.ErrorContains(t, err, "empty window")
	})
}
