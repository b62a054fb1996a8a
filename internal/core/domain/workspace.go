package domain

import (
	"fmt"
	"time"
)

// Induction slot: tomorrow, 10:00 to 11:00 local time.
const (
	InductionHour     = 10
	InductionDuration = time.Hour
)

// CalendarEvent holds the parameters of an event insert.
type CalendarEvent struct {
	Summary     string
	Description string
	Start       time.Time
	End         time.Time
	// TimeZone is the IANA zone name sent with start and end.
	TimeZone string
}

// NewInductionEvent builds the induction event for an employee, dated the day
// after now in loc at the fixed 10:00 slot.
func NewInductionEvent(employee string, now time.Time, loc *time.Location) CalendarEvent {
	if loc == nil {
		loc = time.Local
	}
	local := now.In(loc)
	tomorrow := local.AddDate(0, 0, 1)
	start := time.Date(tomorrow.Year(), tomorrow.Month(), tomorrow.Day(), InductionHour, 0, 0, 0, loc)

	return CalendarEvent{
		Summary:     fmt.Sprintf("Induction: %s", employee),
		Description: "Welcome session with HR.",
		Start:       start,
		End:         start.Add(InductionDuration),
		TimeZone:    loc.String(),
	}
}

// MailDraft holds the parameters of a Gmail draft.
type MailDraft struct {
	From    string
	To      string
	Subject string
	Body    string
}

// NewWelcomeDraft builds the welcome mail for an employee, sent from the
// authenticated mailbox. The recipient is left empty for HR to fill in.
func NewWelcomeDraft(employee, sender string) MailDraft {
	return MailDraft{
		From:    sender,
		Subject: fmt.Sprintf("Welcome aboard, %s!", employee),
		Body: fmt.Sprintf("Hi %s,\n\nWelcome to the team! Your induction session with HR "+
			"is scheduled for tomorrow at 10:00 AM.\n\nBest regards,\nHR", employee),
	}
}
