package model

import "time"

// TaskType classifies an extracted academic obligation.
type TaskType string

const (
	TaskTypeAssignment    TaskType = "assignment"
	TaskTypeExam          TaskType = "exam"
	TaskTypeQuiz          TaskType = "quiz"
	TaskTypeProject       TaskType = "project"
	TaskTypeReading       TaskType = "reading"
	TaskTypeLab           TaskType = "lab"
	TaskTypeDiscussion    TaskType = "discussion"
	TaskTypeParticipation TaskType = "participation"
	TaskTypeReview        TaskType = "review"
	TaskTypePreparation   TaskType = "preparation"

	// TaskTypeOther catches anything the extractor cannot place.
	TaskTypeOther TaskType = "other"
)

// ParseTaskType maps a free-form type string (e.g. from a model response)
// onto the closed TaskType set, defaulting to TaskTypeOther.
func ParseTaskType(s string) TaskType {
	switch TaskType(s) {
	case TaskTypeAssignment, TaskTypeExam, TaskTypeQuiz, TaskTypeProject,
		TaskTypeReading, TaskTypeLab, TaskTypeDiscussion,
		TaskTypeParticipation, TaskTypeReview, TaskTypePreparation:
		return TaskType(s)
	default:
		return TaskTypeOther
	}
}

// RecurrencePattern is the cadence of a recurring obligation.
type RecurrencePattern string

const (
	RecurrenceWeekly   RecurrencePattern = "weekly"
	RecurrenceBiweekly RecurrencePattern = "biweekly"
	RecurrenceMonthly  RecurrencePattern = "monthly"
)

// ParseRecurrencePattern maps a free-form pattern string onto the closed
// RecurrencePattern set. The bool reports whether the input was recognized.
func ParseRecurrencePattern(s string) (RecurrencePattern, bool) {
	switch RecurrencePattern(s) {
	case RecurrenceWeekly, RecurrenceBiweekly, RecurrenceMonthly:
		return RecurrencePattern(s), true
	default:
		return "", false
	}
}

// Confidence grades how sure the extractor is about a task.
// The heuristic path always produces ConfidenceMedium.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// CandidateTask is the pipeline's working unit: a normalized academic
// obligation extracted from text, before being committed to storage.
//
// Every task surfaced to the caller has a non-nil DueDate and a non-empty
// CourseID. Recurring templates (IsRecurring=true, DueDate possibly nil)
// only exist inside one orchestration call; the expander turns them into
// concrete instances before results leave the pipeline.
type CandidateTask struct {
	ID       string // deterministic UUIDv5 of (title, due date)
	Title    string
	Type     TaskType
	CourseID string

	DueDate *time.Time

	IsRecurring       bool
	RecurrencePattern RecurrencePattern
	RecurrenceWeekday *time.Weekday
	OriginalPattern   string // human-readable pattern kept for audit

	Complexity     int     // 1..5
	EstimatedHours float64 // > 0, rounded to nearest 0.5

	IsHardDeadline   bool
	BufferPercentage int // scheduler slack: 10 for exams, 20 otherwise

	Confidence    Confidence
	SourceExcerpt string
}

// PatternDescription describes a detected recurring obligation for user
// review, alongside the expanded task instances.
type PatternDescription struct {
	Pattern    string `json:"pattern"`
	Frequency  string `json:"frequency"`
	Importance string `json:"importance"`
}
