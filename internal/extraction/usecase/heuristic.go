package usecase

import (
	"strings"
	"time"

	"coursepilot/internal/classifier"
	"coursepilot/internal/extraction"
	"coursepilot/internal/model"
)

// heuristicPass classifies a chunk line by line. It is pure and cheap: it
// runs on every chunk regardless of model availability, so a provider outage
// still yields a complete (if less confident) result set.
func (uc *implUseCase) heuristicPass(item workItem, courses []model.Course, now time.Time, opts extraction.ExtractOptions) ([]model.CandidateTask, []model.PatternDescription) {
	clsOpts := classifier.Options{
		Now:             now,
		Courses:         courses,
		DefaultCourseID: opts.DefaultCourseID,
		FallbackDueDays: opts.FallbackDueDays,
	}

	var tasks []model.CandidateTask
	var patterns []model.PatternDescription

	for _, line := range strings.Split(item.text, "\n") {
		task := uc.cls.Classify(line, clsOpts)
		if task == nil {
			continue
		}
		tasks = append(tasks, *task)

		if task.IsRecurring {
			patterns = append(patterns, model.PatternDescription{
				Pattern:    strings.TrimSpace(line),
				Frequency:  string(task.RecurrencePattern),
				Importance: patternImportance(task.Type),
			})
		}
	}

	return tasks, patterns
}

// patternImportance grades a recurring obligation by its task type.
func patternImportance(t model.TaskType) string {
	switch t {
	case model.TaskTypeExam, model.TaskTypeQuiz, model.TaskTypeProject:
		return "high"
	case model.TaskTypeParticipation, model.TaskTypeReview, model.TaskTypePreparation:
		return "low"
	default:
		return "medium"
	}
}
