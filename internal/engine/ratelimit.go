package engine

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/draftline/draftline/config"
	"github.com/draftline/draftline/internal/database"
	"github.com/draftline/draftline/internal/models"
)

// ActionKind is a rate-limited action category with its own caps and history.
type ActionKind string

const (
	ActionDraft ActionKind = "draft"
	ActionPost  ActionKind = "post"
)

const rateLimitKey = "rate_limits.json"

// RateLimiter applies sliding-window admission control over the persisted
// per-kind timestamp history. Check never mutates state; Record appends the
// current time and is invoked only after every other check has passed, so a
// denial never consumes budget.
type RateLimiter struct {
	store  database.Store
	limits config.Limits
	now    func() time.Time
}

func NewRateLimiter(store database.Store, limits config.Limits) *RateLimiter {
	return &RateLimiter{
		store:  store,
		limits: limits,
		now:    time.Now,
	}
}

func (r *RateLimiter) caps(kind ActionKind) (maxHour, maxDay int) {
	if kind == ActionPost {
		return r.limits.MaxPostsPerHour, r.limits.MaxPostsPerDay
	}
	return r.limits.MaxDraftsPerHour, r.limits.MaxDraftsPerDay
}

func (r *RateLimiter) load(ctx context.Context) (*models.RateWindow, error) {
	data, err := r.store.Get(ctx, rateLimitKey)
	if err != nil {
		if errors.Is(err, database.ErrKeyNotFound) {
			return &models.RateWindow{}, nil
		}
		return nil, fmt.Errorf("failed to load rate limit state: %w", err)
	}

	var window models.RateWindow
	if err := json.Unmarshal(data, &window); err != nil {
		return nil, fmt.Errorf("failed to parse rate limit state: %w", err)
	}
	return &window, nil
}

func (r *RateLimiter) save(ctx context.Context, window *models.RateWindow) error {
	data, err := json.MarshalIndent(window, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode rate limit state: %w", err)
	}
	if err := r.store.Put(ctx, rateLimitKey, data); err != nil {
		return fmt.Errorf("failed to save rate limit state: %w", err)
	}
	return nil
}

func (r *RateLimiter) history(window *models.RateWindow, kind ActionKind) []time.Time {
	if kind == ActionPost {
		return window.Posts
	}
	return window.Drafts
}

// Check reports whether another action of the given kind is admissible right
// now. Timestamps older than the 24-hour window are ignored even if still
// physically present in the state file.
func (r *RateLimiter) Check(ctx context.Context, kind ActionKind) (models.RateDecision, error) {
	window, err := r.load(ctx)
	if err != nil {
		return models.RateDecision{}, err
	}

	now := r.now()
	oneHourAgo := now.Add(-time.Hour)
	oneDayAgo := now.Add(-24 * time.Hour)

	var dayWindow, hourWindow []time.Time
	for _, ts := range r.history(window, kind) {
		if ts.After(oneDayAgo) {
			dayWindow = append(dayWindow, ts)
			if ts.After(oneHourAgo) {
				hourWindow = append(hourWindow, ts)
			}
		}
	}

	maxHour, maxDay := r.caps(kind)

	if len(hourWindow) >= maxHour {
		reset := earliest(hourWindow).Add(time.Hour)
		return models.RateDecision{
			Allowed:   false,
			Reason:    fmt.Sprintf("Rate limit exceeded: %d/%d %ss in the last hour", len(hourWindow), maxHour, kind),
			ResetTime: &reset,
		}, nil
	}

	if len(dayWindow) >= maxDay {
		reset := earliest(dayWindow).Add(24 * time.Hour)
		return models.RateDecision{
			Allowed:   false,
			Reason:    fmt.Sprintf("Rate limit exceeded: %d/%d %ss in the last day", len(dayWindow), maxDay, kind),
			ResetTime: &reset,
		}, nil
	}

	return models.RateDecision{
		Allowed: true,
		Remaining: &models.RateRemaining{
			Hour: maxHour - len(hourWindow),
			Day:  maxDay - len(dayWindow),
		},
	}, nil
}

// Record appends the current time to the kind's history and persists it,
// pruning entries that have aged out of the 24-hour window.
func (r *RateLimiter) Record(ctx context.Context, kind ActionKind) error {
	window, err := r.load(ctx)
	if err != nil {
		return err
	}

	now := r.now()
	oneDayAgo := now.Add(-24 * time.Hour)

	pruned := make([]time.Time, 0, len(r.history(window, kind))+1)
	for _, ts := range r.history(window, kind) {
		if ts.After(oneDayAgo) {
			pruned = append(pruned, ts)
		}
	}
	pruned = append(pruned, now)

	if kind == ActionPost {
		window.Posts = pruned
	} else {
		window.Drafts = pruned
	}

	return r.save(ctx, window)
}

func earliest(timestamps []time.Time) time.Time {
	min := timestamps[0]
	for _, ts := range timestamps[1:] {
		if ts.Before(min) {
			min = ts
		}
	}
	return min
}
