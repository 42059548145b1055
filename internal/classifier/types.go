package classifier

import (
	"time"

	"coursepilot/internal/model"
	"coursepilot/pkg/datemath"
)

// Options carries everything a classification pass needs beyond the line
// itself. One Options value is built per orchestration call so every line in
// a document shares the same "now".
type Options struct {
	Now             time.Time
	Courses         []model.Course
	DefaultCourseID string // sentinel when no course matches and the list is empty
	FallbackDueDays int    // due-date horizon when a line has no resolvable date
}

// Classifier turns single lines of academic text into CandidateTasks.
type Classifier struct {
	dates *datemath.Parser
}

// New creates a line classifier backed by the given date parser.
func New(dates *datemath.Parser) *Classifier {
	return &Classifier{dates: dates}
}
