package slackbot

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func activeTestDialog(r *DialogRegistry, userID string) *dmDialog {
	dialog := &dmDialog{
		registry: r,
		user:     userID,
		im:       "D123456789",
		answers:  make(chan string, 1),
	}
	r.active[userID] = dialog
	return dialog
}

func TestDialogRegistry_HandleMessage_RoutesToWaitingDialog(t *testing.T) {
	r := NewDialogRegistry(nil)
	dialog := activeTestDialog(r, "U111111111")

	assert.True(t, r.HandleMessage("U111111111", "my answer"))
	assert.Equal(t, "my answer", <-dialog.answers)
}

func TestDialogRegistry_HandleMessage_NoWaitingDialog(t *testing.T) {
	r := NewDialogRegistry(nil)

	assert.False(t, r.HandleMessage("U111111111", "stray message"))
}

func TestDialogRegistry_HandleMessage_AnswerNotConsumedYet(t *testing.T) {
	r := NewDialogRegistry(nil)
	activeTestDialog(r, "U111111111")

	assert.True(t, r.HandleMessage("U111111111", "first"))
	// The dialog hasn't consumed the first answer, so a second message is dropped
	assert.False(t, r.HandleMessage("U111111111", "second"))
}

func TestDialogRegistry_OpenDialog_RefusedBeforeAPICall(t *testing.T) {
	// A nil API client would panic if the refusal path reached Slack
	r := NewDialogRegistry(nil)
	activeTestDialog(r, "U111111111")

	dialog, err := r.OpenDialog(context.Background(), "U111111111")
	require.Error(t, err)
	assert.Nil(t, dialog)
}

func TestDialogRegistry_Close_ReleasesUser(t *testing.T) {
	r := NewDialogRegistry(nil)
	dialog := activeTestDialog(r, "U111111111")

	dialog.Close()

	assert.False(t, r.HandleMessage("U111111111", "too late"))
}
