package agents

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/draftline/draftline/config"
	"github.com/draftline/draftline/internal/models"
)

var (
	hashtagPattern = regexp.MustCompile(`#\w+`)
	mentionPattern = regexp.MustCompile(`@\w+`)
	urlPattern     = regexp.MustCompile(`https?://\S+`)
)

// Validator applies the content quality rules. It is a pure function of the
// content string and the configured limits; it never touches any state.
type Validator struct {
	limits config.Limits
}

func NewValidator(limits config.Limits) *Validator {
	return &Validator{limits: limits}
}

// Validate runs every rule and returns all violations at once. Stats are
// computed regardless of validity.
func (v *Validator) Validate(content string) models.ValidationResult {
	errors := []string{}
	warnings := []string{}

	if strings.TrimSpace(content) == "" {
		errors = append(errors, "Content cannot be empty")
	}

	if len(content) > v.limits.MaxContentLength {
		errors = append(errors, fmt.Sprintf("Content exceeds maximum length: %d/%d characters",
			len(content), v.limits.MaxContentLength))
	}

	hashtags := hashtagPattern.FindAllString(content, -1)
	if len(hashtags) > v.limits.MaxHashtags {
		warnings = append(warnings, fmt.Sprintf("Too many hashtags (%d). LinkedIn recommends %d or fewer.",
			len(hashtags), v.limits.RecommendedHashtags))
	}

	urls := urlPattern.FindAllString(content, -1)
	if len(urls) > v.limits.MaxURLs {
		warnings = append(warnings, fmt.Sprintf("Multiple URLs detected (%d). Consider limiting to 1-2 for better engagement.",
			len(urls)))
	}

	if len(content) < v.limits.MinEngagementLength {
		warnings = append(warnings, "Content is quite short. LinkedIn posts with 150-300 characters tend to perform better.")
	} else if len(content) > v.limits.LongPostLength {
		warnings = append(warnings, "Long post detected. Consider breaking into multiple posts or using LinkedIn articles.")
	}

	return models.ValidationResult{
		Valid:    len(errors) == 0,
		Errors:   errors,
		Warnings: warnings,
		Stats: models.ContentStats{
			Length:   len(content),
			Hashtags: len(hashtags),
			URLs:     len(urls),
			Mentions: len(mentionPattern.FindAllString(content, -1)),
		},
	}
}
