package classifier

import (
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"coursepilot/internal/model"
	"coursepilot/pkg/datemath"
)

const minLineLength = 5

// UntitledTask is substituted when title derivation leaves nothing usable.
const UntitledTask = "Untitled Task"

var titleCaser = cases.Title(language.English, cases.NoLower)

// Classify decides whether one line of text describes an actionable academic
// obligation and, if so, builds a CandidateTask for it. Returns nil for
// prose, headers, and anything it cannot make sense of — a malformed line
// must never abort extraction of the rest of the document.
func (c *Classifier) Classify(line string, opts Options) *model.CandidateTask {
	line = strings.TrimSpace(line)
	if len(line) < minLineLength {
		return nil
	}

	lower := strings.ToLower(line)

	pattern, weekday, patternText := detectRecurrence(lower)
	isRecurring := pattern != ""

	var dueDate *time.Time
	var dateText string
	if isRecurring {
		// The expander assigns concrete dates; the weekday reference must
		// not be consumed as a one-off date.
		if !hasDueIndicator(lower) {
			return nil
		}
	} else {
		match, found := c.dates.Extract(line, opts.Now)
		if found {
			t := match.Time
			dueDate = &t
			dateText = match.Text
		} else {
			if !hasDueIndicator(lower) {
				return nil
			}
			fallback := c.fallbackDueDate(opts)
			dueDate = &fallback
		}
	}

	taskType := classifyType(lower)
	title := c.deriveTitle(line, dateText, weekday)
	complexity, hours := Estimate(lower, taskType)

	hard := taskType == model.TaskTypeExam
	for _, marker := range hardDeadlineMarkers {
		if strings.Contains(lower, marker) {
			hard = true
		}
	}
	buffer := 20
	if taskType == model.TaskTypeExam {
		buffer = 10
	}

	courseID := MatchCourse(line, opts.Courses)
	if courseID == "" {
		if len(opts.Courses) > 0 {
			courseID = opts.Courses[0].ID
		} else {
			courseID = opts.DefaultCourseID
		}
	}

	var recurrenceWeekday *time.Weekday
	if isRecurring && weekday != nil {
		recurrenceWeekday = weekday
	}

	return &model.CandidateTask{
		Title:             title,
		Type:              taskType,
		CourseID:          courseID,
		DueDate:           dueDate,
		IsRecurring:       isRecurring,
		RecurrencePattern: pattern,
		RecurrenceWeekday: recurrenceWeekday,
		OriginalPattern:   patternText,
		Complexity:        complexity,
		EstimatedHours:    hours,
		IsHardDeadline:    hard,
		BufferPercentage:  buffer,
		Confidence:        model.ConfidenceMedium,
		SourceExcerpt:     line,
	}
}

// fallbackDueDate is the universal due-date fallback: end of day,
// FallbackDueDays from now.
func (c *Classifier) fallbackDueDate(opts Options) time.Time {
	days := opts.FallbackDueDays
	if days <= 0 {
		days = 14
	}
	day := opts.Now.In(c.dates.Location()).AddDate(0, 0, days)
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, c.dates.Location())
	return c.dates.EndOfDay(start)
}

// classifyType walks the ordered rule table; first keyword hit wins.
func classifyType(lower string) model.TaskType {
	for _, rule := range typeRules {
		for _, kw := range rule.Keywords {
			if strings.Contains(lower, kw) {
				return rule.Type
			}
		}
	}
	return model.TaskTypeAssignment
}

// detectRecurrence looks for a cadence phrase and an optional weekday.
// Returns empty pattern when the line is not recurring.
func detectRecurrence(lower string) (model.RecurrencePattern, *time.Weekday, string) {
	for _, rule := range recurrenceRules {
		for _, phrase := range rule.Phrases {
			if !strings.Contains(lower, phrase) {
				continue
			}
			patternText := phrase
			var weekday *time.Weekday
			for name := range weekdayNames {
				if strings.Contains(lower, name) {
					if d, ok := datemath.ParseWeekday(name); ok {
						weekday = &d
						patternText = phrase + " on " + name
					}
					break
				}
			}
			return rule.Pattern, weekday, patternText
		}
	}
	return "", nil, ""
}

var weekdayNames = map[string]struct{}{
	"monday": {}, "tuesday": {}, "wednesday": {}, "thursday": {},
	"friday": {}, "saturday": {}, "sunday": {},
}

func hasDueIndicator(lower string) bool {
	for _, ind := range dueIndicators {
		if strings.Contains(lower, ind) {
			return true
		}
	}
	return false
}

// deriveTitle strips the matched date, clock phrase, due indicators, and
// (for recurring lines) the weekday reference, then collapses whitespace and
// title-cases each word.
func (c *Classifier) deriveTitle(line, dateText string, weekday *time.Weekday) string {
	title := listMarkerRe.ReplaceAllString(line, "")
	if dateText != "" {
		title = strings.Replace(title, dateText, "", 1)
	}
	if weekday != nil {
		name := weekday.String()
		title = strings.ReplaceAll(title, name+"s", "")
		title = strings.ReplaceAll(title, name, "")
		lowerName := strings.ToLower(name)
		title = strings.ReplaceAll(title, lowerName+"s", "")
		title = strings.ReplaceAll(title, lowerName, "")
	}
	title = clockPhraseRe.ReplaceAllString(title, "")
	title = dueWordRe.ReplaceAllString(title, "")
	title = deadlineWordRe.ReplaceAllString(title, "")
	title = trailingJoinerRe.ReplaceAllString(title, "")
	title = leadingJoinerRe.ReplaceAllString(title, "")
	title = whitespaceRe.ReplaceAllString(title, " ")
	title = strings.TrimSpace(title)

	if len(title) < 3 {
		return UntitledTask
	}
	return titleCaser.String(title)
}
