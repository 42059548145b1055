package recurrence

import (
	"fmt"
	"time"

	"coursepilot/internal/model"
)

// DefaultHorizon is the number of periods a recurring template expands into
// when the caller does not say otherwise.
const DefaultHorizon = 12

// Expand turns a recurring template into concrete dated task instances over
// a bounded horizon. Deterministic and idempotent: the same template, start
// date, and horizon always yield the same instances in the same order.
// Non-recurring tasks are returned unchanged as a single-element slice.
func Expand(template model.CandidateTask, start time.Time, horizon int) []model.CandidateTask {
	if !template.IsRecurring {
		return []model.CandidateTask{template}
	}
	if horizon <= 0 {
		horizon = DefaultHorizon
	}

	instances := make([]model.CandidateTask, 0, horizon)
	for period := 1; period <= horizon; period++ {
		instance := template
		instance.IsRecurring = false
		instance.Title = fmt.Sprintf("%s (Week %d)", template.Title, period)
		if instance.OriginalPattern == "" {
			instance.OriginalPattern = string(template.RecurrencePattern)
		}

		due := dueDateFor(template, start, period)
		instance.DueDate = &due
		instance.RecurrencePattern = ""
		instance.RecurrenceWeekday = nil

		instances = append(instances, instance)
	}

	return instances
}

// dueDateFor computes the concrete due date for the 1-based period index.
func dueDateFor(template model.CandidateTask, start time.Time, period int) time.Time {
	switch template.RecurrencePattern {
	case model.RecurrenceBiweekly:
		return start.AddDate(0, 0, 14*period)
	case model.RecurrenceMonthly:
		return addMonthsClamped(start, period)
	default: // weekly
		due := start.AddDate(0, 0, 7*period)
		if template.RecurrenceWeekday != nil {
			// Advance forward, never backward, to the requested weekday
			// within the same week window.
			days := int(*template.RecurrenceWeekday-due.Weekday()+7) % 7
			due = due.AddDate(0, 0, days)
		}
		return due
	}
}

// addMonthsClamped advances by calendar months, clamping the day of month
// so Jan 31 + 1 month lands on the last day of February instead of rolling
// into March (time.AddDate would normalize it forward).
func addMonthsClamped(t time.Time, months int) time.Time {
	year, month, day := t.Date()
	hour, minute, sec := t.Clock()

	// Normalize the target month first with day 1, then clamp the day.
	first := time.Date(year, month, 1, 0, 0, 0, 0, t.Location()).AddDate(0, months, 0)
	last := daysInMonth(first.Year(), first.Month())
	if day > last {
		day = last
	}

	return time.Date(first.Year(), first.Month(), day, hour, minute, sec, t.Nanosecond(), t.Location())
}

func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
