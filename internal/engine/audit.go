package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/draftline/draftline/internal/database"
	"github.com/draftline/draftline/internal/models"
	"github.com/sirupsen/logrus"
)

const auditSource = "linkedin_drafts"

// AuditLogger appends engine actions to a per-day journal. Entries are never
// mutated or deleted. Logging is strictly best-effort: a failed write is
// logged locally and never fails the caller's primary operation, which is why
// Append returns nothing.
type AuditLogger struct {
	store database.Store
	log   logrus.FieldLogger
	now   func() time.Time
}

func NewAuditLogger(store database.Store, log logrus.FieldLogger) *AuditLogger {
	return &AuditLogger{
		store: store,
		log:   log,
		now:   time.Now,
	}
}

// Append adds one entry to today's journal, creating it if absent.
func (a *AuditLogger) Append(ctx context.Context, action string, details map[string]any) {
	now := a.now()
	key := fmt.Sprintf("logs/%s.json", now.Format("2006-01-02"))

	var entries []models.AuditEntry
	if data, err := a.store.Get(ctx, key); err == nil {
		// A corrupt journal starts fresh rather than blocking the append.
		if err := json.Unmarshal(data, &entries); err != nil {
			a.log.WithError(err).WithField("key", key).Warn("Audit log unreadable, starting a new one")
			entries = nil
		}
	}

	entries = append(entries, models.AuditEntry{
		Timestamp: now,
		Source:    auditSource,
		Action:    action,
		Details:   details,
	})

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		a.log.WithError(err).Warn("Failed to encode audit log")
		return
	}
	if err := a.store.Put(ctx, key, data); err != nil {
		a.log.WithError(err).WithField("key", key).Warn("Failed to write audit log")
	}
}
