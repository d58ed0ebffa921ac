// Package messenger implements the Messenger contract on top of the Slack API.
package messenger

import (
	"fmt"

	"github.com/slack-go/slack"

	"github.com/standupbot/slack-standup-bot/internal/domain/contract"
)

type slackMessenger struct {
	api contract.SlackAPI
}

// New returns a Messenger backed by the Slack web API.
func New(api contract.SlackAPI) contract.Messenger {
	return &slackMessenger{api: api}
}

// SendDirect opens (or resumes) a DM with the user and posts text to it.
func (m *slackMessenger) SendDirect(userID, text string) error {
	channel, _, _, err := m.api.OpenConversation(&slack.OpenConversationParameters{
		Users: []string{userID},
	})
	if err != nil {
		return fmt.Errorf("failed to open conversation with %s: %w", userID, err)
	}

	if _, _, err := m.api.PostMessage(channel.ID, slack.MsgOptionText(text, false)); err != nil {
		return fmt.Errorf("failed to send direct message to %s: %w", userID, err)
	}
	return nil
}

func (m *slackMessenger) SendToChannel(channelID, text string) error {
	if _, _, err := m.api.PostMessage(channelID, slack.MsgOptionText(text, false)); err != nil {
		return fmt.Errorf("failed to send message to channel %s: %w", channelID, err)
	}
	return nil
}
