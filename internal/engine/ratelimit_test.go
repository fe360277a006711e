package engine

import (
	"context"
	"testing"
	"time"

	"github.com/draftline/draftline/config"
	"github.com/draftline/draftline/internal/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRateLimiter(t *testing.T, limits config.Limits) *RateLimiter {
	t.Helper()
	store, err := database.NewFileStore(t.TempDir())
	require.NoError(t, err)
	return NewRateLimiter(store, limits)
}

func TestRateLimiter_FreshStateAdmits(t *testing.T) {
	limiter := newTestRateLimiter(t, config.DefaultLimits())

	decision, err := limiter.Check(context.Background(), ActionDraft)
	require.NoError(t, err)

	assert.True(t, decision.Allowed)
	require.NotNil(t, decision.Remaining)
	assert.Equal(t, 1, decision.Remaining.Hour)
	assert.Equal(t, 20, decision.Remaining.Day)
}

func TestRateLimiter_HourCapDeniesSecondAction(t *testing.T) {
	limiter := newTestRateLimiter(t, config.DefaultLimits())
	ctx := context.Background()

	base := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return base }
	require.NoError(t, limiter.Record(ctx, ActionDraft))

	limiter.now = func() time.Time { return base.Add(10 * time.Minute) }
	decision, err := limiter.Check(ctx, ActionDraft)
	require.NoError(t, err)

	assert.False(t, decision.Allowed)
	assert.Contains(t, decision.Reason, "1/1 drafts in the last hour")
	require.NotNil(t, decision.ResetTime)
	assert.Equal(t, base.Add(time.Hour), *decision.ResetTime)
}

func TestRateLimiter_CheckDoesNotConsumeBudget(t *testing.T) {
	limiter := newTestRateLimiter(t, config.DefaultLimits())
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		decision, err := limiter.Check(ctx, ActionDraft)
		require.NoError(t, err)
		assert.True(t, decision.Allowed)
	}
}

func TestRateLimiter_DayCap(t *testing.T) {
	limits := config.DefaultLimits()
	limits.MaxDraftsPerHour = 10
	limits.MaxDraftsPerDay = 2
	limiter := newTestRateLimiter(t, limits)
	ctx := context.Background()

	base := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return base }
	require.NoError(t, limiter.Record(ctx, ActionDraft))
	limiter.now = func() time.Time { return base.Add(time.Minute) }
	require.NoError(t, limiter.Record(ctx, ActionDraft))

	limiter.now = func() time.Time { return base.Add(2 * time.Hour) }
	decision, err := limiter.Check(ctx, ActionDraft)
	require.NoError(t, err)

	assert.False(t, decision.Allowed)
	assert.Contains(t, decision.Reason, "2/2 drafts in the last day")
	require.NotNil(t, decision.ResetTime)
	assert.Equal(t, base.Add(24*time.Hour), *decision.ResetTime)
}

func TestRateLimiter_ExpiredEntriesIgnoredOnRead(t *testing.T) {
	limiter := newTestRateLimiter(t, config.DefaultLimits())
	ctx := context.Background()

	base := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return base }
	require.NoError(t, limiter.Record(ctx, ActionDraft))

	// 25 hours later the old entry is stale even though it is still on disk.
	limiter.now = func() time.Time { return base.Add(25 * time.Hour) }
	decision, err := limiter.Check(ctx, ActionDraft)
	require.NoError(t, err)

	assert.True(t, decision.Allowed)
	assert.Equal(t, 1, decision.Remaining.Hour)
	assert.Equal(t, 20, decision.Remaining.Day)
}

func TestRateLimiter_KindsAreIndependent(t *testing.T) {
	limiter := newTestRateLimiter(t, config.DefaultLimits())
	ctx := context.Background()

	require.NoError(t, limiter.Record(ctx, ActionDraft))

	decision, err := limiter.Check(ctx, ActionPost)
	require.NoError(t, err)

	assert.True(t, decision.Allowed, "a draft action must not consume post budget")
	assert.Equal(t, 1, decision.Remaining.Hour)
	assert.Equal(t, 3, decision.Remaining.Day)
}

func TestRateLimiter_RecordPrunesStaleEntries(t *testing.T) {
	limits := config.DefaultLimits()
	limits.MaxDraftsPerHour = 10
	limiter := newTestRateLimiter(t, limits)
	ctx := context.Background()

	base := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return base }
	require.NoError(t, limiter.Record(ctx, ActionDraft))

	limiter.now = func() time.Time { return base.Add(30 * time.Hour) }
	require.NoError(t, limiter.Record(ctx, ActionDraft))

	window, err := limiter.load(ctx)
	require.NoError(t, err)
	assert.Len(t, window.Drafts, 1, "stale entries should be dropped on write")
}
