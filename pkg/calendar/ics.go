package calendar

import (
	"fmt"
	"time"
)

// DefaultDuration is applied when an invite has no explicit end time.
const DefaultDuration = 60 * time.Minute

const timestampLayout = "20060102T150405"

// Invite renders a minimal iCalendar block with an explicit end time.
// Timestamps are emitted in basic local form (no timezone component) to
// stay byte-compatible with invites already delivered to candidates.
func Invite(title, description string, start, end time.Time) string {
	return fmt.Sprintf(`BEGIN:VCALENDAR
VERSION:2.0
PRODID:-//Recruitment Portal//Interview Calendar//EN
CALSCALE:GREGORIAN
BEGIN:VEVENT
SUMMARY:%s
DESCRIPTION:%s
DTSTART:%s
DTEND:%s
END:VEVENT
END:VCALENDAR
`, title, description, start.Format(timestampLayout), end.Format(timestampLayout))
}

// InterviewInvite renders an invite for an interview starting at start and
// running for DefaultDuration.
func InterviewInvite(title, description string, start time.Time) string {
	return Invite(title, description, start, start.Add(DefaultDuration))
}
