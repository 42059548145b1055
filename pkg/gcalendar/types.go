package gcalendar

import "time"

// Event is a normalized calendar event.
type Event struct {
	ID          string
	Summary     string
	Description string
	HtmlLink    string
	StartTime   time.Time
	EndTime     time.Time
}

// ListEventsRequest bounds an upcoming-events query.
type ListEventsRequest struct {
	CalendarID string // defaults to "primary"
	From       time.Time
	To         time.Time
	MaxResults int64 // defaults to 250
}
