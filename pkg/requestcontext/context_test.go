package requestcontext

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAccessors(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, ReviewerIdentity{}, Reviewer(ctx))
	assert.Empty(t, RequestID(ctx))

	fixed := time.Date(2024, 7, 1, 9, 0, 0, 0, time.Local)
	ctx = WithTime(ctx, fixed)
	ctx = WithRequestID(ctx, "req-1")
	ctx = WithReviewer(ctx, ReviewerIdentity{AccountID: "40008", Email: "a@example.com"})

	assert.Equal(t, fixed, Now(ctx))
	assert.Equal(t, "req-1", RequestID(ctx))
	assert.Equal(t, "40008", Reviewer(ctx).AccountID)
}
