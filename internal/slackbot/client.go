package slackbot

import (
	"fmt"

	"github.com/slack-go/slack"
)

// Client adapts the slack-go API client to the narrow messaging and name
// resolution surface the services depend on.
type Client struct {
	api *slack.Client
}

func NewClient(api *slack.Client) *Client {
	return &Client{api: api}
}

func (c *Client) Send(channel, text string, markdown bool) error {
	opts := []slack.MsgOption{
		slack.MsgOptionText(text, false),
		slack.MsgOptionAsUser(false),
	}
	if !markdown {
		opts = append(opts, slack.MsgOptionDisableMarkdown())
	}

	if _, _, err := c.api.PostMessage(channel, opts...); err != nil {
		return fmt.Errorf("failed to send message to %s: %w", channel, err)
	}

	return nil
}

// SendDM opens (or reuses) the one-on-one conversation with the user and
// posts a single message there.
func (c *Client) SendDM(userID, text string) error {
	im, _, _, err := c.api.OpenConversation(&slack.OpenConversationParameters{
		Users:    []string{userID},
		ReturnIM: true,
	})
	if err != nil {
		return fmt.Errorf("failed to open conversation with %s: %w", userID, err)
	}

	return c.Send(im.ID, text, true)
}

func (c *Client) UserName(userID string) (string, error) {
	user, err := c.api.GetUserInfo(userID)
	if err != nil {
		return "", fmt.Errorf("failed to get user info for %s: %w", userID, err)
	}

	return user.Name, nil
}

func (c *Client) ChannelName(channelID string) (string, error) {
	channel, err := c.api.GetConversationInfo(&slack.GetConversationInfoInput{
		ChannelID: channelID,
	})
	if err != nil {
		return "", fmt.Errorf("failed to get channel info for %s: %w", channelID, err)
	}

	return channel.Name, nil
}
