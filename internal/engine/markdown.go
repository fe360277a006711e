package engine

import (
	"fmt"
	"strings"
	"time"

	"github.com/draftline/draftline/internal/models"
)

// renderDraftMarkdown mirrors the draft record as structured text for manual
// review, stored next to the JSON record under the same id.
func renderDraftMarkdown(draft *models.Draft) string {
	var b strings.Builder

	b.WriteString("# LinkedIn Post Draft\n\n")
	fmt.Fprintf(&b, "**Draft ID:** %s\n", draft.ID)
	fmt.Fprintf(&b, "**Created:** %s\n", draft.CreatedAt.Format("Mon Jan 2, 2006 at 3:04 PM"))
	fmt.Fprintf(&b, "**Status:** %s\n\n", draft.Status)

	b.WriteString("---\n\n## Content\n\n")
	b.WriteString(draft.Content)
	b.WriteString("\n\n")

	if len(draft.Metadata.SuggestedHashtags) > 0 {
		b.WriteString("---\n\n## Suggested Hashtags\n\n")
		b.WriteString(strings.Join(draft.Metadata.SuggestedHashtags, " "))
		b.WriteString("\n\n")
	}

	if len(draft.Metadata.Validation.Warnings) > 0 {
		b.WriteString("---\n\n## Content Warnings\n\n")
		for _, w := range draft.Metadata.Validation.Warnings {
			fmt.Fprintf(&b, "- %s\n", w)
		}
		b.WriteString("\n")
	}

	stats := draft.Metadata.Validation.Stats
	b.WriteString("---\n\n## Content Stats\n\n")
	fmt.Fprintf(&b, "- Length: %d characters\n", stats.Length)
	fmt.Fprintf(&b, "- Hashtags: %d\n", stats.Hashtags)
	fmt.Fprintf(&b, "- URLs: %d\n", stats.URLs)
	fmt.Fprintf(&b, "- Mentions: %d\n\n", stats.Mentions)

	times := draft.Metadata.BestPostingTimes
	if len(times.Recommendations) > 0 {
		b.WriteString("---\n\n## Best Posting Times\n\n")
		fmt.Fprintf(&b, "%s\n\n", times.Tip)
		top := times.Recommendations
		if len(top) > 3 {
			top = top[:3]
		}
		for i, rec := range top {
			fmt.Fprintf(&b, "%d. %s (%dh from now)\n", i+1, rec.LocalTime, rec.HoursFromNow)
		}
		b.WriteString("\n")
	}

	b.WriteString("---\n\n## How to Post\n\n")
	for _, instruction := range draft.Posting.Instructions {
		b.WriteString(instruction)
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString("---\n\n## After Posting\n\n")
	fmt.Fprintf(&b, "Update this draft's status by editing `%s.json`:\n\n", draft.ID)
	b.WriteString("```json\n{\n")
	b.WriteString("  \"status\": \"posted\",\n")
	fmt.Fprintf(&b, "  \"postedAt\": %q,\n", draft.CreatedAt.Format(time.RFC3339))
	b.WriteString("  \"postUrl\": \"https://linkedin.com/posts/your-post-url\"\n")
	b.WriteString("}\n```\n")

	return b.String()
}
