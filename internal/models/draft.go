package models

import "time"

// Draft statuses. The engine only ever writes StatusDraft; the other two are
// applied by a human editing the stored record after posting.
const (
	StatusDraft    = "draft"
	StatusPosted   = "posted"
	StatusArchived = "archived"
)

// Draft is a persisted post draft awaiting manual review and publication.
type Draft struct {
	ID        string        `json:"draftId"`
	CreatedAt time.Time     `json:"createdAt"`
	Status    string        `json:"status"`
	Content   string        `json:"content"`
	Metadata  DraftMetadata `json:"metadata"`
	Posting   PostingInfo   `json:"posting"`
}

// DraftMetadata embeds the validation snapshot and advisory suggestions
// captured at creation time, plus any caller-supplied fields.
type DraftMetadata struct {
	ScheduleTime      string           `json:"scheduleTime,omitempty"`
	Tags              []string         `json:"tags,omitempty"`
	Notes             string           `json:"notes,omitempty"`
	Type              string           `json:"type,omitempty"`
	Validation        ValidationResult `json:"validation"`
	SuggestedHashtags []string         `json:"suggestedHashtags"`
	BestPostingTimes  PostingTimes     `json:"bestPostingTimes"`
}

// PostingInfo describes how the draft gets published (always manually).
type PostingInfo struct {
	Method       string   `json:"method"`
	Instructions []string `json:"instructions"`
}

// CallerMetadata carries the optional free-form fields a tool call may attach
// to a new draft.
type CallerMetadata struct {
	ScheduleTime string
	Tags         []string
	Notes        string
	Type         string
}

// DraftSummary is returned after a successful creation.
type DraftSummary struct {
	DraftID           string           `json:"draftId"`
	Path              string           `json:"path"`
	ReadablePath      string           `json:"readablePath"`
	Validation        ValidationResult `json:"validation"`
	SuggestedHashtags []string         `json:"suggestedHashtags"`
	BestPostingTimes  PostingTimes     `json:"bestPostingTimes"`
	RateLimit         RateRemaining    `json:"rateLimit"`
}

// ValidationReport is the result of a validate-only check: the validation
// outcome plus advisory suggestions, with no state touched.
type ValidationReport struct {
	Validation        ValidationResult `json:"validation"`
	SuggestedHashtags []string         `json:"suggestedHashtags"`
	Recommendations   []string         `json:"recommendations"`
}

// PostingAdvice is the result of a recommendations request.
type PostingAdvice struct {
	PostingTimes
	RateLimit RateDecision `json:"rateLimit"`
}
