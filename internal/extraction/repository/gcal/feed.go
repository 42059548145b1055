package gcal

import (
	"context"
	"fmt"
	"strings"
	"time"

	"coursepilot/internal/model"
	"coursepilot/pkg/gcalendar"
	pkgLog "coursepilot/pkg/log"
)

// feedRepository renders Google Calendar events as a calendar-feed source.
// The pipeline then treats the feed like any other pasted text, so calendar
// deadlines flow through the same classification and deduplication.
type feedRepository struct {
	l          pkgLog.Logger
	client     *gcalendar.Client
	calendarID string
}

// New creates a calendar-backed FeedRepository.
func New(l pkgLog.Logger, client *gcalendar.Client, calendarID string) *feedRepository {
	return &feedRepository{
		l:          l,
		client:     client,
		calendarID: calendarID,
	}
}

// FetchFeed pulls the window's events and renders one line per event in the
// "title due <date> at <time>" shape the line classifier understands.
func (r *feedRepository) FetchFeed(ctx context.Context, from, to time.Time) (model.RawSource, error) {
	events, err := r.client.ListUpcomingEvents(ctx, gcalendar.ListEventsRequest{
		CalendarID: r.calendarID,
		From:       from,
		To:         to,
	})
	if err != nil {
		return model.RawSource{}, fmt.Errorf("failed to fetch calendar feed: %w", err)
	}

	r.l.Infof(ctx, "FetchFeed: calendar=%s events=%d", r.calendarID, len(events))

	var sb strings.Builder
	for _, ev := range events {
		if strings.TrimSpace(ev.Summary) == "" || ev.StartTime.IsZero() {
			continue
		}
		fmt.Fprintf(&sb, "%s due %s at %s\n",
			strings.TrimSpace(ev.Summary),
			ev.StartTime.Format("1/2/2006"),
			ev.StartTime.Format("3:04pm"))
	}

	return model.RawSource{
		Kind: model.SourceCalendarFeed,
		Text: sb.String(),
	}, nil
}
