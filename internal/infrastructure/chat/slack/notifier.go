package slack

import (
	"context"
	"fmt"
	"strings"

	"github.com/slack-go/slack"

	domainerrors "github.com/delivops/release-notes-generator/internal/domain/errors"
	"github.com/delivops/release-notes-generator/internal/domain/models"
	"github.com/delivops/release-notes-generator/internal/domain/ports"
	"github.com/delivops/release-notes-generator/internal/i18n"
	"github.com/delivops/release-notes-generator/internal/logger"
)

var _ ports.Notifier = (*Notifier)(nil)

type Client interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
	AuthTestContext(ctx context.Context) (*slack.AuthTestResponse, error)
}

// Notifier renders the aggregated release notes into Slack blocks and posts
// them to a single channel.
type Notifier struct {
	client  Client
	channel string
	trans   *i18n.Translations
}

func NewNotifier(token, channel string, trans *i18n.Translations) *Notifier {
	return &Notifier{
		client:  slack.New(token),
		channel: channel,
		trans:   trans,
	}
}

func NewNotifierWithClient(client Client, channel string, trans *i18n.Translations) *Notifier {
	return &Notifier{
		client:  client,
		channel: channel,
		trans:   trans,
	}
}

func (n *Notifier) CheckAuth(ctx context.Context) error {
	if _, err := n.client.AuthTestContext(ctx); err != nil {
		return fmt.Errorf("slack authentication check: %w", err)
	}
	return nil
}

// PostReleaseNotes posts message as a block sequence with a plain-text
// fallback, link previews disabled. A platform rejection is logged and
// returned as a PublishError.
func (n *Notifier) PostReleaseNotes(ctx context.Context, message, dateRange string) (string, error) {
	blocks := n.BuildBlocks(message, dateRange)

	_, ts, err := n.client.PostMessageContext(ctx, n.channel,
		slack.MsgOptionText(FallbackText(message), false),
		slack.MsgOptionBlocks(blocks...),
		slack.MsgOptionDisableLinkUnfurl(),
	)
	if err != nil {
		logger.Error(ctx, "slack rejected the release notes post", err, "channel", n.channel)
		return "", domainerrors.NewPublishError(n.channel, err)
	}

	logger.Info(ctx, "release notes posted to slack", "channel", n.channel, "ts", ts)
	return ts, nil
}

// BuildBlocks converts the aggregated text into an ordered block sequence:
// an overall title and divider, then one header, one content section and one
// divider per repository section of the message.
func (n *Notifier) BuildBlocks(message, dateRange string) []slack.Block {
	header := n.trans.GetMessage("release_notes_header", 0, nil)
	if dateRange != "" {
		header += fmt.Sprintf(" (%s)", dateRange)
	}

	blocks := []slack.Block{
		slack.NewHeaderBlock(slack.NewTextBlockObject(slack.PlainTextType, header, true, false)),
		slack.NewDividerBlock(),
	}

	for _, section := range strings.Split(message, models.SectionDivider) {
		section = strings.TrimSpace(section)
		if section == "" {
			continue
		}

		lines := strings.Split(section, "\n")
		first := lines[0]
		if strings.HasPrefix(first, "*") && strings.HasSuffix(first, "*") && len(first) > 1 {
			repoName := strings.Trim(first, "*")
			blocks = append(blocks, slack.NewHeaderBlock(
				slack.NewTextBlockObject(slack.PlainTextType, repoName, false, false)))

			if content := strings.TrimSpace(strings.Join(lines[1:], "\n")); content != "" {
				blocks = append(blocks, slack.NewSectionBlock(
					slack.NewTextBlockObject(slack.MarkdownType, content, false, false), nil, nil))
			}
		} else {
			// Sections without an emphasized repo header (inline error
			// sentences, no-changes entries) are posted as-is.
			blocks = append(blocks, slack.NewSectionBlock(
				slack.NewTextBlockObject(slack.MarkdownType, section, false, false), nil, nil))
		}

		blocks = append(blocks, slack.NewDividerBlock())
	}

	return blocks
}

var fallbackReplacer = strings.NewReplacer(
	"*", "",
	"•", "-",
	"◦", "  -",
	"─", "-",
)

// FallbackText derives the plain-text rendering used for accessibility.
func FallbackText(message string) string {
	return fallbackReplacer.Replace(message)
}
