package agents

import (
	"strings"

	"github.com/draftline/draftline/config"
)

// HashtagAdvisor suggests professional hashtags by matching trigger keywords
// against the content. Purely advisory: suggestions never block anything.
type HashtagAdvisor struct {
	categories []config.HashtagCategory
	limit      int
}

func NewHashtagAdvisor(categories []config.HashtagCategory, limit int) *HashtagAdvisor {
	return &HashtagAdvisor{categories: categories, limit: limit}
}

// Suggest returns up to the configured number of hashtags, deduplicated in
// first-seen order across the fixed category sequence. Each matched category
// contributes its first two tags.
func (a *HashtagAdvisor) Suggest(content string) []string {
	contentLower := strings.ToLower(content)

	suggestions := []string{}
	seen := make(map[string]bool)

	for _, category := range a.categories {
		matched := false
		for _, keyword := range category.Keywords {
			if strings.Contains(contentLower, keyword) {
				matched = true
				break
			}
		}
		if !matched {
			continue
		}

		tags := category.Tags
		if len(tags) > 2 {
			tags = tags[:2]
		}
		for _, tag := range tags {
			if seen[tag] {
				continue
			}
			seen[tag] = true
			suggestions = append(suggestions, tag)
		}
	}

	if len(suggestions) > a.limit {
		suggestions = suggestions[:a.limit]
	}
	return suggestions
}
