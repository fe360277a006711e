package models

import "time"

// RateWindow is the persisted rate-limit state: one append-only timestamp
// list per action kind. Entries older than 24 hours are ignored on read and
// pruned on the next write.
type RateWindow struct {
	Posts  []time.Time `json:"posts"`
	Drafts []time.Time `json:"drafts"`
}

// RateDecision is the outcome of an admission check.
type RateDecision struct {
	Allowed   bool           `json:"allowed"`
	Reason    string         `json:"reason,omitempty"`
	ResetTime *time.Time     `json:"resetTime,omitempty"`
	Remaining *RateRemaining `json:"remaining,omitempty"`
}

// RateRemaining reports the budget left in each window.
type RateRemaining struct {
	Hour int `json:"hour"`
	Day  int `json:"day"`
}

// PostingTimes is the scheduling advisor output.
type PostingTimes struct {
	Recommendations []TimeRecommendation `json:"recommendations"`
	Tip             string               `json:"tip"`
}

// TimeRecommendation is one suggested future posting slot.
type TimeRecommendation struct {
	Time         time.Time `json:"time"`
	LocalTime    string    `json:"localTime"`
	HoursFromNow int       `json:"hoursFromNow"`
}
