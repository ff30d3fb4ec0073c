package service

import (
	"fmt"
	"strings"

	"github.com/icos-labs/standup-bot/internal/domain/entity"
)

const noReportDataMessage = "*There is no standup data to report.*"

// FormatReports collates the accumulated standups of one channel into the
// message posted at report time. Answers are rendered verbatim; whatever
// markup the user typed passes through to Slack.
func FormatReports(reports []entity.StandupReport) string {
	if len(reports) == 0 {
		return noReportDataMessage
	}

	var b strings.Builder
	b.WriteString("*Standup Report*\n\n")
	for _, report := range reports {
		b.WriteString(formatSingleReport(report))
	}

	return b.String()
}

func formatSingleReport(report entity.StandupReport) string {
	var b strings.Builder
	fmt.Fprintf(&b, "*%s* did their standup at %s\n", report.UserName, report.SubmittedAt)
	fmt.Fprintf(&b, "_What did you work on yesterday:_ `%s`\n", report.Yesterday)
	fmt.Fprintf(&b, "_What are you working on today:_ `%s`\n", report.Today)
	fmt.Fprintf(&b, "_Any obstacles:_ `%s`\n\n", report.Obstacles)
	return b.String()
}
