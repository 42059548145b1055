package extraction

import (
	"time"

	"coursepilot/internal/chunker"
	"coursepilot/internal/model"
)

// --- UseCase Inputs ---

// ExtractInput carries everything one extraction run needs. ExistingTasks
// lets the merger drop candidates the caller already tracks.
type ExtractInput struct {
	Sources       []model.RawSource
	Courses       []model.Course
	ExistingTasks []model.CandidateTask
	Options       ExtractOptions
}

// ExtractOptions tunes a single run. Zero values fall back to the
// service-level configuration.
type ExtractOptions struct {
	// Now anchors relative date resolution; zero means wall clock.
	Now time.Time

	// FallbackDueDays is applied when a task has a due indicator but no
	// resolvable date.
	FallbackDueDays int

	// RecurrenceHorizon is the number of periods a recurring obligation
	// expands into.
	RecurrenceHorizon int

	// MaxChunkSize caps chunk size in characters before a source is split.
	MaxChunkSize int

	// DefaultCourseID is the sentinel assigned when no course matches and
	// the course list is empty.
	DefaultCourseID string

	// HeuristicsOnly skips the model pass even when providers are configured.
	HeuristicsOnly bool

	// IncludeCalendarFeed pulls upcoming calendar events as an extra source
	// when a feed repository is configured.
	IncludeCalendarFeed bool
}

// --- UseCase Outputs ---

// ExtractOutput is the merged, deduplicated result of one run.
type ExtractOutput struct {
	// Tasks holds only newly extracted tasks, sorted by due date.
	// ExistingTasks suppress duplicates but are not echoed back; callers
	// union this with the list they already hold.
	Tasks             []model.CandidateTask
	RecurringPatterns []model.PatternDescription
	Warnings          []string

	// Metadata is the best-effort document summary from chunking.
	Metadata chunker.Metadata

	// Degraded is true when the model pass was skipped or failed and only
	// heuristic results are included.
	Degraded bool

	// NothingToExtract is true when the sources held no actionable content.
	// It is a signal, not an error.
	NothingToExtract bool
}
