package engine

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/draftline/draftline/internal/agents"
	"github.com/draftline/draftline/internal/database"
	"github.com/draftline/draftline/internal/models"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// postingInstructions is the manual publication checklist attached to every
// draft. The engine never posts anything itself.
var postingInstructions = []string{
	"1. Open LinkedIn in your browser",
	"2. Click \"Start a post\"",
	"3. Copy the content from this draft",
	"4. Add any images or media",
	"5. Review and post",
	"6. Update draft status to \"posted\" when done",
}

// Notifier is an optional hook invoked after a draft is persisted, e.g. to
// ping a review channel. Implementations must be best-effort: no error
// return, no effect on the creation result.
type Notifier interface {
	DraftCreated(ctx context.Context, draft *models.Draft, key string)
}

// Manager orchestrates the draft lifecycle: validation, admission control,
// enrichment, persistence, rate recording and audit logging. It is the sole
// entry point the tool layer calls into.
type Manager struct {
	store        database.Store
	limiter      *RateLimiter
	validator    *agents.Validator
	hashtags     *agents.HashtagAdvisor
	postingTimes *agents.PostingTimeAdvisor
	audit        *AuditLogger
	notifier     Notifier
	log          logrus.FieldLogger
	now          func() time.Time
}

// ManagerConfig wires a Manager. Notifier may be nil.
type ManagerConfig struct {
	Store        database.Store
	Limiter      *RateLimiter
	Validator    *agents.Validator
	Hashtags     *agents.HashtagAdvisor
	PostingTimes *agents.PostingTimeAdvisor
	Audit        *AuditLogger
	Notifier     Notifier
	Logger       logrus.FieldLogger
}

func NewManager(cfg ManagerConfig) *Manager {
	return &Manager{
		store:        cfg.Store,
		limiter:      cfg.Limiter,
		validator:    cfg.Validator,
		hashtags:     cfg.Hashtags,
		postingTimes: cfg.PostingTimes,
		audit:        cfg.Audit,
		notifier:     cfg.Notifier,
		log:          cfg.Logger,
		now:          time.Now,
	}
}

func draftKey(id string) string {
	return fmt.Sprintf("drafts/%s.json", id)
}

func readableKey(id string) string {
	return fmt.Sprintf("drafts/%s.md", id)
}

// newDraftID combines a sortable millisecond prefix with a random fragment.
func (m *Manager) newDraftID() string {
	fragment := strings.SplitN(uuid.NewString(), "-", 2)[0]
	return fmt.Sprintf("li_%d_%s", m.now().UnixMilli(), fragment)
}

// Create validates the content, checks the draft rate budget and, if both
// pass, persists a new draft plus its human-readable rendering. Only then is
// the rate budget consumed and the action audited, so a rejected call leaves
// no trace.
func (m *Manager) Create(ctx context.Context, content string, meta models.CallerMetadata) (*models.DraftSummary, error) {
	validation := m.validator.Validate(content)
	if !validation.Valid {
		return nil, &ValidationError{Violations: validation.Errors}
	}

	decision, err := m.limiter.Check(ctx, ActionDraft)
	if err != nil {
		return nil, err
	}
	if !decision.Allowed {
		rle := &RateLimitError{Kind: ActionDraft, Reason: decision.Reason}
		if decision.ResetTime != nil {
			rle.ResetTime = *decision.ResetTime
		}
		return nil, rle
	}

	id := m.newDraftID()
	now := m.now()
	suggested := m.hashtags.Suggest(content)
	bestTimes := m.postingTimes.Recommend(now)

	draft := &models.Draft{
		ID:        id,
		CreatedAt: now,
		Status:    models.StatusDraft,
		Content:   content,
		Metadata: models.DraftMetadata{
			ScheduleTime:      meta.ScheduleTime,
			Tags:              meta.Tags,
			Notes:             meta.Notes,
			Type:              meta.Type,
			Validation:        validation,
			SuggestedHashtags: suggested,
			BestPostingTimes:  bestTimes,
		},
		Posting: models.PostingInfo{
			Method:       "manual",
			Instructions: postingInstructions,
		},
	}

	data, err := json.MarshalIndent(draft, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode draft %s: %w", id, err)
	}
	if err := m.store.Put(ctx, draftKey(id), data); err != nil {
		return nil, fmt.Errorf("failed to persist draft %s: %w", id, err)
	}
	if err := m.store.Put(ctx, readableKey(id), []byte(renderDraftMarkdown(draft))); err != nil {
		return nil, fmt.Errorf("failed to persist draft rendering %s: %w", id, err)
	}

	if err := m.limiter.Record(ctx, ActionDraft); err != nil {
		return nil, err
	}

	m.audit.Append(ctx, "draft_created", map[string]any{
		"draftId":       id,
		"contentLength": validation.Stats.Length,
		"hashtags":      validation.Stats.Hashtags,
		"warnings":      validation.Warnings,
	})

	if m.notifier != nil {
		m.notifier.DraftCreated(ctx, draft, draftKey(id))
	}

	m.log.WithField("draft_id", id).Info("Draft created")

	return &models.DraftSummary{
		DraftID:           id,
		Path:              draftKey(id),
		ReadablePath:      readableKey(id),
		Validation:        validation,
		SuggestedHashtags: suggested,
		BestPostingTimes:  bestTimes,
		RateLimit:         *decision.Remaining,
	}, nil
}

// Get reads one draft by id. A missing or unparsable record is NotFound.
func (m *Manager) Get(ctx context.Context, id string) (*models.Draft, error) {
	data, err := m.store.Get(ctx, draftKey(id))
	if err != nil {
		if errors.Is(err, database.ErrKeyNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to read draft %s: %w", id, err)
	}

	var draft models.Draft
	if err := json.Unmarshal(data, &draft); err != nil {
		return nil, fmt.Errorf("%w: %s (record unparsable)", ErrNotFound, id)
	}
	return &draft, nil
}

// List returns every stored draft, optionally filtered by status, newest
// first. Individual unparsable records (external edits gone wrong) are
// skipped with a warning rather than failing the whole listing.
func (m *Manager) List(ctx context.Context, status string) ([]*models.Draft, error) {
	records, err := m.store.ListByPrefix(ctx, "drafts/")
	if err != nil {
		return nil, fmt.Errorf("failed to list drafts: %w", err)
	}

	drafts := make([]*models.Draft, 0, len(records))
	for key, data := range records {
		if !strings.HasSuffix(key, ".json") {
			continue
		}
		var draft models.Draft
		if err := json.Unmarshal(data, &draft); err != nil {
			m.log.WithError(err).WithField("key", key).Warn("Skipping unparsable draft record")
			continue
		}
		if status != "" && draft.Status != status {
			continue
		}
		drafts = append(drafts, &draft)
	}

	sort.Slice(drafts, func(i, j int) bool {
		return drafts[i].CreatedAt.After(drafts[j].CreatedAt)
	})
	return drafts, nil
}

// ValidateOnly runs the validator and hashtag advisor without touching the
// rate limiter or the store. Safe to call any number of times.
func (m *Manager) ValidateOnly(content string) *models.ValidationReport {
	validation := m.validator.Validate(content)

	recommendations := validation.Warnings
	if len(recommendations) == 0 {
		recommendations = []string{"Content looks good! Ready to post."}
	}

	return &models.ValidationReport{
		Validation:        validation,
		SuggestedHashtags: m.hashtags.Suggest(content),
		Recommendations:   recommendations,
	}
}

// Recommendations returns posting-time suggestions plus a read-only snapshot
// of the post rate budget. Nothing is consumed.
func (m *Manager) Recommendations(ctx context.Context) (*models.PostingAdvice, error) {
	decision, err := m.limiter.Check(ctx, ActionPost)
	if err != nil {
		return nil, err
	}
	return &models.PostingAdvice{
		PostingTimes: m.postingTimes.Recommend(m.now()),
		RateLimit:    decision,
	}, nil
}
