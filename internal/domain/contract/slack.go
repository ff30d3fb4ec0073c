package contract

import "context"

// Messenger sends a message to a channel. Delivery is fire-and-forget from the
// caller's perspective; the error only covers handing the message to Slack.
type Messenger interface {
	Send(channel, text string, markdown bool) error
}

// DirectMessenger sends a one-off message in a private conversation with a
// user, opening the conversation when needed.
type DirectMessenger interface {
	SendDM(userID, text string) error
}

// NameResolver looks up display names for the opaque Slack identifiers.
type NameResolver interface {
	UserName(userID string) (string, error)
	ChannelName(channelID string) (string, error)
}

// DialogOpener starts a one-on-one conversation with a user.
type DialogOpener interface {
	OpenDialog(ctx context.Context, userID string) (Dialog, error)
}

// Dialog is a single in-flight one-on-one conversation. Ask blocks until the
// user's next reply arrives or ctx is done. There is no timeout: a user who
// never answers leaves the dialog suspended until the context is cancelled.
type Dialog interface {
	Ask(ctx context.Context, question string) (string, error)
	Say(text string) error
	Close()
}
