package agents

import (
	"testing"

	"github.com/draftline/draftline/config"
	"github.com/stretchr/testify/assert"
)

func newTestAdvisor() *HashtagAdvisor {
	limits := config.DefaultLimits()
	return NewHashtagAdvisor(config.DefaultHashtagCategories(), limits.RecommendedHashtags)
}

func TestSuggest_BusinessKeywords(t *testing.T) {
	suggestions := newTestAdvisor().Suggest("Our startup raised funding this week!")

	assert.Contains(t, suggestions, "#Business")
	assert.Contains(t, suggestions, "#Entrepreneurship")
}

func TestSuggest_NoRecognizedKeywords(t *testing.T) {
	suggestions := newTestAdvisor().Suggest("Lovely weather for a walk in the park.")

	assert.Empty(t, suggestions)
}

func TestSuggest_CaseInsensitive(t *testing.T) {
	suggestions := newTestAdvisor().Suggest("HIRING a senior engineer for our team")

	assert.Contains(t, suggestions, "#Career")
	assert.Contains(t, suggestions, "#JobSearch")
}

func TestSuggest_CapsAtRecommendedCount(t *testing.T) {
	// Touches business, technology, marketing and career: eight candidate
	// tags, truncated to five.
	content := "Our startup ships software and content marketing tools, and we are hiring."

	suggestions := newTestAdvisor().Suggest(content)

	assert.Len(t, suggestions, 5)
	assert.Equal(t, []string{"#Business", "#Entrepreneurship", "#Technology", "#TechNews", "#Marketing"}, suggestions)
}

func TestSuggest_DeduplicatesAcrossCategories(t *testing.T) {
	categories := []config.HashtagCategory{
		{Name: "a", Tags: []string{"#Shared", "#First"}, Keywords: []string{"alpha"}},
		{Name: "b", Tags: []string{"#Shared", "#Second"}, Keywords: []string{"beta"}},
	}
	advisor := NewHashtagAdvisor(categories, 5)

	suggestions := advisor.Suggest("alpha beta")

	assert.Equal(t, []string{"#Shared", "#First", "#Second"}, suggestions)
}
