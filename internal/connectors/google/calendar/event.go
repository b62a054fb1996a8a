// Package calendar maps domain events onto the Google Calendar API.
package calendar

import (
	"time"

	"google.golang.org/api/calendar/v3"

	"github.com/onboardai/onboard/internal/core/domain"
)

// ToAPIEvent converts a domain event to the Calendar insert payload.
// Start and end carry both an RFC 3339 instant and the IANA zone name.
func ToAPIEvent(ev domain.CalendarEvent) *calendar.Event {
	return &calendar.Event{
		Summary:     ev.Summary,
		Description: ev.Description,
		Start:       toDateTime(ev.Start, ev.TimeZone),
		End:         toDateTime(ev.End, ev.TimeZone),
	}
}

func toDateTime(t time.Time, zone string) *calendar.EventDateTime {
	return &calendar.EventDateTime{
		DateTime: t.Format(time.RFC3339),
		TimeZone: zone,
	}
}
