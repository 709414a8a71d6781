package formatter

import (
	"fmt"
	"net/url"
	"statusdrafter/pkg/draftime"
	"statusdrafter/pkg/models"
	"strings"
	"time"
)

const DateLayout = "02/01/2006"

// Divider frames the weekly summary body
var Divider = strings.Repeat("━", 26)

// Daily renders the daily update. An empty DateRange falls back to now.
func Daily(fields models.DraftFields, now time.Time) string {
	date := fields.DateRange
	if date == "" {
		date = now.Format(DateLayout)
	}

	namePart := ""
	if fields.UserName != "" {
		namePart = fmt.Sprintf("[%s] ", fields.UserName)
	}

	blockerText := ""
	if fields.Blockers != "" {
		blockerText = "\nBlockers: " + fields.Blockers
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%sDaily Update - %s\n\n", namePart, date)
	fmt.Fprintf(&b, "Task: %s\n", fields.TaskTitle)
	fmt.Fprintf(&b, "Status: %s\n\n", fields.ProgressStatus)
	fmt.Fprintf(&b, "Done / In Progress:\n%s\n", fields.TaskDesc)
	fmt.Fprintf(&b, "%s\n", blockerText)
	fmt.Fprintf(&b, "Next Steps:\n%s", fields.NextSteps)
	return b.String()
}

func Weekly(fields models.DraftFields) string {
	date := fields.DateRange
	if date == "" {
		date = "This Week"
	}

	namePart := ""
	if fields.UserName != "" {
		namePart = fmt.Sprintf("Author: %s\n", fields.UserName)
	}

	blockers := fields.Blockers
	if blockers == "" {
		blockers = "None"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Weekly Summary (%s)\n%s\n", date, namePart)
	fmt.Fprintf(&b, "%s\n", Divider)
	fmt.Fprintf(&b, "Key Highlight:\n%s\n\n", fields.TaskTitle)
	fmt.Fprintf(&b, "Work Accomplished:\n%s\n\n", fields.TaskDesc)
	fmt.Fprintf(&b, "Challenges / Blockers:\n%s\n\n", blockers)
	fmt.Fprintf(&b, "Focus for Next Week:\n%s\n", fields.NextSteps)
	b.WriteString(Divider)
	return b.String()
}

// Format picks the renderer for mode, anything other than weekly is daily
func Format(mode models.DraftType, fields models.DraftFields, now time.Time) string {
	if mode == models.WeeklyDraft {
		return Weekly(fields)
	}
	return Daily(fields, now)
}

// DefaultDateRange is today for daily drafts and Monday to Friday of the
// current week for weekly drafts
func DefaultDateRange(mode models.DraftType, now time.Time) string {
	if mode != models.WeeklyDraft {
		return now.Format(DateLayout)
	}
	monday := draftime.StartOfWeek(now)
	friday := monday.AddDate(0, 0, 4)
	return fmt.Sprintf("%s - %s", monday.Format(DateLayout), friday.Format(DateLayout))
}

func Subject(mode models.DraftType) string {
	if mode == models.WeeklyDraft {
		return "Weekly Summary"
	}
	return "Daily Update"
}

// EmailLink builds a mailto link with the rendered text as body
func EmailLink(mode models.DraftType, text string) string {
	return fmt.Sprintf("mailto:?subject=%s&body=%s", escapeComponent(Subject(mode)), escapeComponent(text))
}

// SlackBlock wraps text in a code fence so Slack keeps the layout
func SlackBlock(text string) string {
	return "```\n" + text + "\n```"
}

func escapeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
