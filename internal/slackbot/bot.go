package slackbot

import (
	"context"
	"fmt"

	"github.com/icos-labs/standup-bot/internal/clock"
	"github.com/icos-labs/standup-bot/internal/domain/contract"
	"github.com/icos-labs/standup-bot/internal/domain/service"
	"github.com/icos-labs/standup-bot/internal/logger"
	"github.com/slack-go/slack"
	"github.com/slack-go/slack/slackevents"
	"github.com/slack-go/slack/socketmode"
)

// Bot ties the Socket Mode event stream to the command surface: @-mentions
// carry commands, DMs carry dialog answers.
type Bot struct {
	api       *slack.Client
	socket    *socketmode.Client
	messenger contract.Messenger
	resolver  contract.NameResolver
	dms       contract.DirectMessenger
	dialogs   *DialogRegistry
	dm        contract.DataManager
	standup   contract.StandupService
	botUserID string
}

func NewBot(
	api *slack.Client,
	socket *socketmode.Client,
	client *Client,
	dialogs *DialogRegistry,
	dm contract.DataManager,
	standup contract.StandupService,
) *Bot {
	return &Bot{
		api:       api,
		socket:    socket,
		messenger: client,
		resolver:  client,
		dms:       client,
		dialogs:   dialogs,
		dm:        dm,
		standup:   standup,
	}
}

// Run identifies the bot user, starts consuming events and blocks until the
// Socket Mode connection ends.
func (b *Bot) Run(ctx context.Context) error {
	auth, err := b.api.AuthTest()
	if err != nil {
		return fmt.Errorf("failed to identify bot user: %w", err)
	}
	b.botUserID = auth.UserID
	logger.Log.Infof("Connected as %s (%s)", auth.User, auth.UserID)

	go b.consumeEvents(ctx)

	return b.socket.RunContext(ctx)
}

func (b *Bot) consumeEvents(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case evt, ok := <-b.socket.Events:
			if !ok {
				return
			}

			switch evt.Type {
			case socketmode.EventTypeConnected:
				logger.Log.Info("Socket Mode connected")
			case socketmode.EventTypeConnectionError:
				logger.Log.Warnf("Socket Mode connection error: %v", evt.Data)
			case socketmode.EventTypeEventsAPI:
				apiEvent, castOK := evt.Data.(slackevents.EventsAPIEvent)
				if !castOK {
					continue
				}
				if evt.Request != nil {
					b.socket.Ack(*evt.Request)
				}
				b.handleEventsAPI(ctx, apiEvent)
			}
		}
	}
}

func (b *Bot) handleEventsAPI(ctx context.Context, apiEvent slackevents.EventsAPIEvent) {
	if apiEvent.Type != slackevents.CallbackEvent {
		return
	}

	switch ev := apiEvent.InnerEvent.Data.(type) {
	case *slackevents.AppMentionEvent:
		b.handleMention(ctx, ev)
	case *slackevents.MessageEvent:
		b.handleMessage(ev)
	case *slackevents.MemberJoinedChannelEvent:
		b.handleMemberJoined(ev)
	}
}

// handleMemberJoined greets the channel when the bot itself is added and
// welcomes anyone else who joins.
func (b *Bot) handleMemberJoined(ev *slackevents.MemberJoinedChannelEvent) {
	greeting := "Welcome to the channel!"
	if ev.User == b.botUserID {
		greeting = "I'm here!"
	}

	if err := b.messenger.Send(ev.Channel, greeting, false); err != nil {
		logger.Log.Warnf("Failed to greet channel %s: %v", ev.Channel, err)
	}
}

// handleMessage routes DM replies into waiting dialogs. Anything that is not a
// human DM, or that no dialog is waiting for, is dropped.
func (b *Bot) handleMessage(ev *slackevents.MessageEvent) {
	if ev.ChannelType != "im" || ev.SubType != "" || ev.BotID != "" {
		return
	}
	if ev.User == "" || ev.User == b.botUserID {
		return
	}

	b.dialogs.HandleMessage(ev.User, ev.Text)
}

func (b *Bot) handleMention(ctx context.Context, ev *slackevents.AppMentionEvent) {
	cmd, err := ParseCommand(ev.Text)
	if err != nil {
		b.reply(ev.Channel, fmt.Sprintf("%v, try `help`", err))
		return
	}

	logger.Log.WithField("user", ev.User).WithField("channel", ev.Channel).
		Debugf("Handling command %s", cmd.Type)

	switch cmd.Type {
	case CmdSetReportTime:
		go b.handleSetReportTime(ctx, ev.User, ev.Channel)
	case CmdWhenReport:
		b.handleWhenReport(ev.Channel)
	case CmdCancelReport:
		b.handleCancelReport(ev.Channel)
	case CmdSetAskTime:
		go b.handleSetAskTime(ctx, ev.User, ev.Channel)
	case CmdWhenAsk:
		b.handleWhenAsk(ev.User, ev.Channel)
	case CmdCancelAsk:
		b.handleCancelAsk(ev.User, ev.Channel)
	case CmdStandup:
		go b.handleStandup(ctx, ev.User, ev.Channel)
	case CmdTrigger:
		b.handleTrigger(ev.Channel)
	case CmdWhoAmI:
		b.handleWhoAmI(ev.User, ev.Channel)
	case CmdWhereAmI:
		b.handleWhereAmI(ev.Channel)
	case CmdHelp:
		b.handleHelp(ev.User)
	}
}

// askForTime collects an "HH:MM" answer over the dialog, echoing back anything
// it cannot parse and repeating the question until it gets a valid time or the
// dialog dies.
func (b *Bot) askForTime(ctx context.Context, dialog contract.Dialog, question string) (clock.TimeOfDay, error) {
	for {
		answer, err := dialog.Ask(ctx, question)
		if err != nil {
			return clock.TimeOfDay{}, err
		}

		t, parseErr := clock.Parse(answer)
		if parseErr == nil {
			return t, nil
		}

		if err := dialog.Say("Error reading the entered time."); err != nil {
			return clock.TimeOfDay{}, err
		}
		if err := dialog.Say("You said: " + answer); err != nil {
			return clock.TimeOfDay{}, err
		}
	}
}

func (b *Bot) handleSetReportTime(ctx context.Context, userID, channelID string) {
	dialog, err := b.dialogs.OpenDialog(ctx, userID)
	if err != nil {
		logger.Log.WithField("user", userID).Warnf("setreporttime: %v", err)
		return
	}
	defer dialog.Close()

	if err := dialog.Say("You asked to set the time of the standup report!"); err != nil {
		logger.Log.WithField("user", userID).Warnf("setreporttime: %v", err)
		return
	}

	t, err := b.askForTime(ctx, dialog, "What time would you like to generate the standup report? (hh:mm, in 24h time)")
	if err != nil {
		logger.Log.WithField("user", userID).Infof("setreporttime dialog ended early: %v", err)
		return
	}

	if err := b.dm.Schedules().SetReportTime(channelID, &t); err != nil {
		logger.Log.WithField("channel", channelID).Errorf("setreporttime: %v", err)
		return
	}

	if err := dialog.Say(fmt.Sprintf("Standup reporting time has been changed to `%s`.", t)); err != nil {
		logger.Log.WithField("user", userID).Warnf("setreporttime: %v", err)
	}
	b.reply(channelID, fmt.Sprintf("*Attention*: standup reporting time has been changed to `%s`.", t))
}

func (b *Bot) handleWhenReport(channelID string) {
	channelName, err := b.resolver.ChannelName(channelID)
	if err != nil {
		// Lookup failures abort silently, nothing is posted to the channel
		logger.Log.WithField("channel", channelID).Warnf("whenreport: %v", err)
		return
	}

	t, err := b.dm.Schedules().GetReportTime(channelID)
	if err != nil {
		logger.Log.WithField("channel", channelID).Errorf("whenreport: %v", err)
		return
	}

	if t == nil {
		b.reply(channelID, "A standup time has not been set for #"+channelName)
		return
	}
	b.reply(channelID, fmt.Sprintf("Standup reporting time for #%s is %s", channelName, t))
}

func (b *Bot) handleCancelReport(channelID string) {
	if err := b.dm.Schedules().ClearReportTime(channelID); err != nil {
		logger.Log.WithField("channel", channelID).Errorf("cancelreport: %v", err)
		return
	}

	b.reply(channelID, "Standup report has been cancelled for this channel. Please `setreporttime` again to resume.")
}

func (b *Bot) handleSetAskTime(ctx context.Context, userID, channelID string) {
	dialog, err := b.dialogs.OpenDialog(ctx, userID)
	if err != nil {
		logger.Log.WithField("user", userID).Warnf("set: %v", err)
		return
	}
	defer dialog.Close()

	t, err := b.askForTime(ctx, dialog, "What time would you like to be asked about your standup? (hh:mm, in 24h time)")
	if err != nil {
		logger.Log.WithField("user", userID).Infof("set dialog ended early: %v", err)
		return
	}

	if err := b.dm.Schedules().SetAskTime(userID, channelID, t); err != nil {
		logger.Log.WithField("user", userID).Errorf("set: %v", err)
		return
	}

	if err := dialog.Say(fmt.Sprintf("You will be asked about your standup at `%s`.", t)); err != nil {
		logger.Log.WithField("user", userID).Warnf("set: %v", err)
	}
}

func (b *Bot) handleWhenAsk(userID, channelID string) {
	channelName, err := b.resolver.ChannelName(channelID)
	if err != nil {
		logger.Log.WithField("channel", channelID).Warnf("when: %v", err)
		return
	}

	t, err := b.dm.Schedules().GetAskTime(userID, channelID)
	if err != nil {
		logger.Log.WithField("user", userID).Errorf("when: %v", err)
		return
	}

	if t == nil {
		b.reply(channelID, fmt.Sprintf("<@%s>, you are not scheduled to be asked about your standup in #%s", userID, channelName))
		return
	}
	b.reply(channelID, fmt.Sprintf("<@%s>, you will be asked about your standup in #%s at %s", userID, channelName, t))
}

func (b *Bot) handleCancelAsk(userID, channelID string) {
	if err := b.dm.Schedules().ClearAskTime(userID, channelID); err != nil {
		logger.Log.WithField("user", userID).Errorf("cancel: %v", err)
		return
	}

	b.reply(channelID, fmt.Sprintf("<@%s>, you will no longer be asked about standups in this channel.", userID))
}

func (b *Bot) handleStandup(ctx context.Context, userID, channelID string) {
	if err := b.standup.RunStandup(ctx, userID, channelID); err != nil {
		logger.Log.WithField("user", userID).Errorf("standup: %v", err)
	}
}

// handleTrigger posts the report on demand. Unlike the scheduled report it
// does not clear the stored standups.
func (b *Bot) handleTrigger(channelID string) {
	reports, err := b.dm.Reports().GetReports(channelID)
	if err != nil {
		logger.Log.WithField("channel", channelID).Errorf("trigger: %v", err)
		return
	}

	b.reply(channelID, service.FormatReports(reports))
}

func (b *Bot) handleWhoAmI(userID, channelID string) {
	b.reply(channelID, "userId: "+userID)
	if name, err := b.resolver.UserName(userID); err == nil {
		b.reply(channelID, "userName: "+name)
	}
}

func (b *Bot) handleWhereAmI(channelID string) {
	b.reply(channelID, "channelId: "+channelID)
	if name, err := b.resolver.ChannelName(channelID); err == nil {
		b.reply(channelID, "channelName: "+name)
	}
}

func (b *Bot) handleHelp(userID string) {
	if err := b.dms.SendDM(userID, GetHelpText()); err != nil {
		logger.Log.WithField("user", userID).Warnf("help: %v", err)
	}
}

func (b *Bot) reply(channelID, text string) {
	if err := b.messenger.Send(channelID, text, true); err != nil {
		logger.Log.WithField("channel", channelID).Warnf("Failed to reply: %v", err)
	}
}
