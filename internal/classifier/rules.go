package classifier

import (
	"regexp"

	"coursepilot/internal/model"
)

// typeRule maps keywords to a task type. Rules are evaluated in table order;
// the first rule with a matching keyword wins, so precedence lives in the
// data, not in control flow.
type typeRule struct {
	Type     model.TaskType
	Keywords []string
}

// typeRules is the ordered classification table. Exam-family keywords beat
// project-family, which beat reading-family, which beat lab-family; anything
// else falls through to assignment.
var typeRules = []typeRule{
	{Type: model.TaskTypeExam, Keywords: []string{"exam", "midterm", "final", "test"}},
	{Type: model.TaskTypeQuiz, Keywords: []string{"quiz"}},
	{Type: model.TaskTypeProject, Keywords: []string{"project", "presentation", "proposal"}},
	{Type: model.TaskTypeReading, Keywords: []string{"read", "chapter", "article", "textbook"}},
	{Type: model.TaskTypeLab, Keywords: []string{"lab", "experiment", "practical"}},
	{Type: model.TaskTypeDiscussion, Keywords: []string{"discussion", "forum post", "reply to"}},
	{Type: model.TaskTypeParticipation, Keywords: []string{"participation", "attendance"}},
	{Type: model.TaskTypeReview, Keywords: []string{"review", "peer feedback"}},
	{Type: model.TaskTypePreparation, Keywords: []string{"prepare", "study for"}},
}

// recurrenceRule maps a cadence phrase to a recurrence pattern.
type recurrenceRule struct {
	Pattern model.RecurrencePattern
	Phrases []string
}

// Biweekly before weekly: "biweekly" contains "weekly".
var recurrenceRules = []recurrenceRule{
	{Pattern: model.RecurrenceBiweekly, Phrases: []string{"biweekly", "bi-weekly", "every other week", "every two weeks", "fortnightly"}},
	{Pattern: model.RecurrenceWeekly, Phrases: []string{"weekly", "every week", "each week"}},
	{Pattern: model.RecurrenceMonthly, Phrases: []string{"monthly", "every month", "each month"}},
}

// dueIndicators qualify a dateless line as an obligation. A line with
// neither a date nor one of these is treated as prose, not a task.
var dueIndicators = []string{"due", "by ", "before", "deadline", "submit", "turn in", "hand in"}

// hardDeadlineMarkers force IsHardDeadline on non-exam tasks.
var hardDeadlineMarkers = []string{"final", "mandatory"}

// Title cleanup patterns, applied after the matched date substring is
// removed from the line.
var (
	clockPhraseRe    = regexp.MustCompile(`(?i)(?:\bat\s+|@\s*)\d{1,2}(?::\d{2})?\s*(?:am|pm)?`)
	dueWordRe        = regexp.MustCompile(`(?i)\bdue(?:\s+(?:by|on|date))?\b:?`)
	deadlineWordRe   = regexp.MustCompile(`(?i)\bdeadline\b:?`)
	trailingJoinerRe = regexp.MustCompile(`(?i)(?:\b(?:by|before|on|at|is|are)\b|[-:,.;]|\s)+$`)
	leadingJoinerRe  = regexp.MustCompile(`^(?:[-:,.;*•]|\s)+`)
	whitespaceRe     = regexp.MustCompile(`\s+`)
	listMarkerRe     = regexp.MustCompile(`^\s*(?:[-*•]|\d+[.)])\s*`)
)
