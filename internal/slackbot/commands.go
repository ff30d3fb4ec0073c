package slackbot

import (
	"fmt"
	"strings"
)

type CommandType string

const (
	CmdSetReportTime CommandType = "setreporttime"
	CmdWhenReport    CommandType = "whenreport"
	CmdCancelReport  CommandType = "cancelreport"
	CmdSetAskTime    CommandType = "set"
	CmdWhenAsk       CommandType = "when"
	CmdCancelAsk     CommandType = "cancel"
	CmdStandup       CommandType = "standup"
	CmdTrigger       CommandType = "trigger"
	CmdHelp          CommandType = "help"
	CmdWhoAmI        CommandType = "whoami"
	CmdWhereAmI      CommandType = "whereami"
)

type Command struct {
	Type CommandType
	Raw  string
}

// ParseCommand reads the first word of an @-mention, ignoring the mention
// tokens themselves. An empty mention asks for help.
func ParseCommand(text string) (*Command, error) {
	cmd := &Command{Raw: text}

	var word string
	for _, part := range strings.Fields(text) {
		if strings.HasPrefix(part, "<@") {
			continue
		}
		word = strings.ToLower(part)
		break
	}

	switch word {
	case "setreporttime":
		cmd.Type = CmdSetReportTime
	case "whenreport":
		cmd.Type = CmdWhenReport
	case "cancelreport":
		cmd.Type = CmdCancelReport
	case "set":
		cmd.Type = CmdSetAskTime
	case "when":
		cmd.Type = CmdWhenAsk
	case "cancel":
		cmd.Type = CmdCancelAsk
	case "standup":
		cmd.Type = CmdStandup
	case "trigger":
		cmd.Type = CmdTrigger
	case "whoami":
		cmd.Type = CmdWhoAmI
	case "whereami":
		cmd.Type = CmdWhereAmI
	case "help", "":
		cmd.Type = CmdHelp
	default:
		return nil, fmt.Errorf("unknown command: %s", word)
	}

	return cmd, nil
}

func GetHelpText() string {
	var b strings.Builder
	b.WriteString("*icosStandupBot*\n")
	b.WriteString("_intended mode of use_: use the `setreporttime` command to set a report time, each team member uses the `standup` command (or a scheduled `set` time) to do their daily standup report.\n\n")
	b.WriteString("_note_: the scheduled report clears the standup data after posting, while `trigger` does not.\n\n")
	b.WriteString("*commands about when the standup report will be generated*\n")
	b.WriteString("_setreporttime_: `sets the time the report will be generated. done in a private convo.`\n")
	b.WriteString("_whenreport_: `informs the channel when the report will be generated`\n")
	b.WriteString("_cancelreport_: `cancels report generation for this channel`\n\n")
	b.WriteString("*commands about being asked for your standup*\n")
	b.WriteString("_set_: `sets the time you will be asked for your standup. done in a private convo.`\n")
	b.WriteString("_when_: `tells you when you will be asked for your standup`\n")
	b.WriteString("_cancel_: `stops the bot asking you for standups in this channel`\n\n")
	b.WriteString("*commands about collecting and reporting standup data*\n")
	b.WriteString("_standup_: `bot will ask the standup questions in a private convo`\n")
	b.WriteString("_trigger_: `posts the standup report immediately, without clearing it`\n")
	return b.String()
}
