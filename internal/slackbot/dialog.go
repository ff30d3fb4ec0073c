package slackbot

import (
	"context"
	"fmt"
	"sync"

	"github.com/icos-labs/standup-bot/internal/domain/contract"
	"github.com/slack-go/slack"
)

// DialogRegistry hands out one-on-one dialogs and routes inbound DM replies to
// whichever dialog is waiting for that user's next message. A user has at most
// one dialog in flight: their DM stream is a single channel of text, so two
// concurrent dialogs for the same user could not tell the replies apart.
type DialogRegistry struct {
	api *slack.Client

	mu     sync.Mutex
	active map[string]*dmDialog
}

func NewDialogRegistry(api *slack.Client) *DialogRegistry {
	return &DialogRegistry{
		api:    api,
		active: make(map[string]*dmDialog),
	}
}

func (r *DialogRegistry) OpenDialog(ctx context.Context, userID string) (contract.Dialog, error) {
	dialog := &dmDialog{
		registry: r,
		user:     userID,
		answers:  make(chan string, 1),
	}

	// The user's slot is claimed before opening the conversation, so a refused
	// second dialog never reaches the Slack API.
	r.mu.Lock()
	if _, exists := r.active[userID]; exists {
		r.mu.Unlock()
		return nil, fmt.Errorf("a dialog with %s is already in progress", userID)
	}
	r.active[userID] = dialog
	r.mu.Unlock()

	im, _, _, err := r.api.OpenConversation(&slack.OpenConversationParameters{
		Users:    []string{userID},
		ReturnIM: true,
	})
	if err != nil {
		r.release(userID)
		return nil, fmt.Errorf("failed to open conversation with %s: %w", userID, err)
	}
	dialog.im = im.ID

	return dialog, nil
}

// HandleMessage delivers an inbound DM to the user's waiting dialog. It
// reports false when no dialog is waiting; such messages are ignored.
func (r *DialogRegistry) HandleMessage(userID, text string) bool {
	r.mu.Lock()
	dialog, ok := r.active[userID]
	r.mu.Unlock()
	if !ok {
		return false
	}

	select {
	case dialog.answers <- text:
		return true
	default:
		// Dialog is not between a question and an answer right now
		return false
	}
}

func (r *DialogRegistry) release(userID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.active, userID)
}

// dmDialog is one in-flight private conversation. Ask suspends the calling
// goroutine until the user's next DM arrives; there is no timeout beyond the
// caller's context.
type dmDialog struct {
	registry *DialogRegistry
	user     string
	im       string
	answers  chan string
}

func (d *dmDialog) Ask(ctx context.Context, question string) (string, error) {
	if err := d.Say(question); err != nil {
		return "", err
	}

	select {
	case answer := <-d.answers:
		return answer, nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

func (d *dmDialog) Say(text string) error {
	_, _, err := d.registry.api.PostMessage(d.im, slack.MsgOptionText(text, false))
	if err != nil {
		return fmt.Errorf("failed to message %s: %w", d.user, err)
	}

	return nil
}

func (d *dmDialog) Close() {
	d.registry.release(d.user)
}
