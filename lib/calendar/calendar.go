package calendar

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

const (
	icsTimeLayout = "20060102T150405Z"
	eventDuration = time.Hour
	uidDomain     = "jobportal.com"
	ContentType   = "text/calendar;charset=utf-8"
)

var whitespaceRe = regexp.MustCompile(`\s`)

type InterviewEvent struct {
	InterviewID    string
	CandidateName  string
	JobTitle       string
	Company        string
	Start          time.Time
	LocationOrLink string
	Notes          string
}

// BuildIcs renders a VCALENDAR with a single one-hour VEVENT.
func BuildIcs(event InterviewEvent, now time.Time) string {
	notes := event.Notes
	if strings.TrimSpace(notes) == "" {
		notes = "No notes provided."
	}
	description := fmt.Sprintf("Interview with %s for the %s position at %s.\n\nNotes: %s",
		event.CandidateName, event.JobTitle, event.Company, notes)

	lines := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:-//JobPortal//EN",
		"BEGIN:VEVENT",
		fmt.Sprintf("UID:%s@%s", event.InterviewID, uidDomain),
		"DTSTAMP:" + formatTime(now),
		"DTSTART:" + formatTime(event.Start),
		"DTEND:" + formatTime(event.Start.Add(eventDuration)),
		"SUMMARY:" + escapeText(fmt.Sprintf("Interview: %s for %s", event.CandidateName, event.JobTitle)),
		"DESCRIPTION:" + escapeText(description),
		"LOCATION:" + escapeText(event.LocationOrLink),
		"END:VEVENT",
		"END:VCALENDAR",
	}
	return strings.Join(lines, "\r\n")
}

// FileName is the download name of the invitation, whitespace replaced with "_".
func FileName(candidateName string) string {
	return "interview-" + whitespaceRe.ReplaceAllString(candidateName, "_") + ".ics"
}

func formatTime(t time.Time) string {
	return t.UTC().Format(icsTimeLayout)
}

func escapeText(value string) string {
	return strings.NewReplacer(
		`\`, `\\`,
		";", `\;`,
		",", `\,`,
		"\r\n", `\n`,
		"\n", `\n`,
	).Replace(value)
}
