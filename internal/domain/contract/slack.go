package contract

import "github.com/slack-go/slack"

// SlackAPI defines the Slack operations the bot depends on.
// This allows mocking in tests while keeping the real implementation simple
type SlackAPI interface {
	// GetUserInfo retrieves user information from Slack
	GetUserInfo(userID string) (*slack.User, error)

	// PostMessage sends a message to a Slack channel
	PostMessage(channelID string, options ...slack.MsgOption) (string, string, error)

	// OpenConversation opens (or resumes) a direct-message channel with a user
	OpenConversation(params *slack.OpenConversationParameters) (*slack.Channel, bool, bool, error)
}

// Messenger is the narrow send-only surface used by scheduled actions.
type Messenger interface {
	SendDirect(userID, text string) error
	SendToChannel(channelID, text string) error
}
