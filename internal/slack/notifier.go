package slack

import (
	"context"
	"fmt"
	"strings"

	"github.com/draftline/draftline/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/slack-go/slack"
)

const previewLength = 300

// Notifier posts a summary of each new draft to a review channel so a human
// sees it without polling the vault. Strictly best-effort: delivery failures
// are logged and never affect the draft that was already persisted.
type Notifier struct {
	api     *slack.Client
	channel string
	log     logrus.FieldLogger
}

func NewNotifier(token, channel string, log logrus.FieldLogger) (*Notifier, error) {
	api := slack.New(token)

	authTest, err := api.AuthTest()
	if err != nil {
		return nil, fmt.Errorf("failed to authenticate with Slack: %w", err)
	}
	log.WithField("bot_id", authTest.UserID).Info("Slack notifier connected")

	return &Notifier{
		api:     api,
		channel: channel,
		log:     log,
	}, nil
}

// DraftCreated announces a freshly persisted draft in the review channel.
func (n *Notifier) DraftCreated(ctx context.Context, draft *models.Draft, key string) {
	preview := draft.Content
	if len(preview) > previewLength {
		preview = preview[:previewLength] + "…"
	}

	blocks := []slack.Block{
		slack.NewHeaderBlock(slack.NewTextBlockObject(slack.PlainTextType, "New LinkedIn draft for review", false, false)),
		slack.NewSectionBlock(slack.NewTextBlockObject(slack.MarkdownType, preview, false, false), nil, nil),
		slack.NewContextBlock("",
			slack.NewTextBlockObject(slack.MarkdownType, fmt.Sprintf("*ID:* `%s` · *Stored at:* `%s`", draft.ID, key), false, false),
		),
	}

	if warnings := draft.Metadata.Validation.Warnings; len(warnings) > 0 {
		blocks = append(blocks, slack.NewSectionBlock(
			slack.NewTextBlockObject(slack.MarkdownType, ":warning: "+strings.Join(warnings, "\n:warning: "), false, false),
			nil, nil,
		))
	}

	_, _, err := n.api.PostMessageContext(ctx, n.channel, slack.MsgOptionBlocks(blocks...))
	if err != nil {
		n.log.WithError(err).WithField("draft_id", draft.ID).Warn("Failed to notify review channel")
	}
}
