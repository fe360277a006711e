package agents

import (
	"strings"
	"testing"

	"github.com/draftline/draftline/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestValidator() *Validator {
	return NewValidator(config.DefaultLimits())
}

func TestValidate_EmptyContent(t *testing.T) {
	result := newTestValidator().Validate("   \n\t ")

	assert.False(t, result.Valid)
	require.NotEmpty(t, result.Errors)
	assert.Contains(t, result.Errors[0], "empty")
}

func TestValidate_TooLong(t *testing.T) {
	result := newTestValidator().Validate(strings.Repeat("A", 4000))

	assert.False(t, result.Valid)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "exceeds maximum length")
	assert.Contains(t, result.Errors[0], "4000/3000")
	// Stats are still computed for invalid content.
	assert.Equal(t, 4000, result.Stats.Length)
}

func TestValidate_SweetSpotHasNoWarnings(t *testing.T) {
	content := strings.Repeat("Sharing a few thoughts on shipping reliable systems. ", 5)
	require.GreaterOrEqual(t, len(content), 150)
	require.LessOrEqual(t, len(content), 1500)

	result := newTestValidator().Validate(content)

	assert.True(t, result.Valid)
	assert.Empty(t, result.Errors)
	assert.Empty(t, result.Warnings)
}

func TestValidate_ShortContentWarns(t *testing.T) {
	result := newTestValidator().Validate("Short update.")

	assert.True(t, result.Valid)
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "quite short")
}

func TestValidate_LongContentWarns(t *testing.T) {
	result := newTestValidator().Validate(strings.Repeat("B", 2000))

	assert.True(t, result.Valid)
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "Long post")
}

func TestValidate_TooManyURLs(t *testing.T) {
	content := strings.Repeat("Check https://example.com/a https://example.com/b ", 2) +
		strings.Repeat("pad ", 40)

	result := newTestValidator().Validate(content)

	assert.True(t, result.Valid)
	assert.Equal(t, 4, result.Stats.URLs)

	found := false
	for _, w := range result.Warnings {
		if strings.Contains(w, "Multiple URLs") {
			found = true
		}
	}
	assert.True(t, found, "expected a URL warning, got %v", result.Warnings)
}

func TestValidate_TooManyHashtags(t *testing.T) {
	var b strings.Builder
	b.WriteString(strings.Repeat("word ", 40))
	for i := 0; i < 31; i++ {
		b.WriteString("#tag ")
	}

	result := newTestValidator().Validate(b.String())

	assert.True(t, result.Valid)
	assert.Equal(t, 31, result.Stats.Hashtags)

	found := false
	for _, w := range result.Warnings {
		if strings.Contains(w, "Too many hashtags") {
			found = true
		}
	}
	assert.True(t, found, "expected a hashtag warning, got %v", result.Warnings)
}

func TestValidate_Stats(t *testing.T) {
	content := "Big news from @acme and @contoso: we shipped #golang #backend work, see https://example.com/post"

	result := newTestValidator().Validate(content)

	assert.Equal(t, len(content), result.Stats.Length)
	assert.Equal(t, 2, result.Stats.Hashtags)
	assert.Equal(t, 2, result.Stats.Mentions)
	assert.Equal(t, 1, result.Stats.URLs)
}

func TestValidate_Idempotent(t *testing.T) {
	v := newTestValidator()
	content := "A perfectly ordinary update about #work " + strings.Repeat("and more context ", 10)

	first := v.Validate(content)
	second := v.Validate(content)

	assert.Equal(t, first, second)
}

func TestValidate_CustomLimits(t *testing.T) {
	limits := config.DefaultLimits()
	limits.MaxContentLength = 10

	result := NewValidator(limits).Validate("this is longer than ten")

	assert.False(t, result.Valid)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "23/10")
}
