package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"

	"coursepilot/internal/classifier"
	"coursepilot/internal/extraction"
	"coursepilot/internal/model"
	"coursepilot/pkg/datemath"
	"coursepilot/pkg/gemini"
	"coursepilot/pkg/llmprovider"
)

// modelExtraction is the JSON envelope the model is instructed to return.
type modelExtraction struct {
	Tasks             []modelTask                `json:"tasks"`
	RecurringPatterns []model.PatternDescription `json:"recurring_patterns"`
	Warnings          []string                   `json:"warnings"`
}

type modelTask struct {
	Title             string  `json:"title"`
	Type              string  `json:"type"`
	CourseID          string  `json:"course_id"`
	DueDate           string  `json:"due_date"`
	IsRecurring       bool    `json:"is_recurring"`
	RecurrencePattern string  `json:"recurrence_pattern"`
	RecurrenceWeekday string  `json:"recurrence_weekday"`
	Complexity        int     `json:"complexity"`
	EstimatedHours    float64 `json:"estimated_hours"`
	IsHardDeadline    bool    `json:"is_hard_deadline"`
	Confidence        string  `json:"confidence"`
	SourceExcerpt     string  `json:"source_excerpt"`
}

// modelPass sends one chunk to the provider chain and normalizes the reply.
// The returned warnings are the model's own caveats, surfaced verbatim.
func (uc *implUseCase) modelPass(ctx context.Context, item workItem, courses []model.Course, existing []model.CandidateTask, opts extraction.ExtractOptions, now time.Time) ([]model.CandidateTask, []model.PatternDescription, []string, error) {
	callCtx, cancel := context.WithTimeout(ctx, uc.cfg.ModelTimeout)
	defer cancel()

	prompt := gemini.BuildExtractionPrompt(
		string(item.kind),
		courseContext(courses),
		now.Format(time.RFC3339),
		knownTaskContext(existing),
		item.text,
	)

	resp, err := uc.llm.GenerateContent(callCtx, &llmprovider.Request{
		Prompt:      prompt,
		Temperature: 0.2, // low temperature for deterministic JSON output
		MaxTokens:   4096,
	})
	if err != nil {
		return nil, nil, nil, fmt.Errorf("LLM request failed: %w", err)
	}
	if strings.TrimSpace(resp.Text) == "" {
		return nil, nil, nil, fmt.Errorf("empty response from LLM")
	}

	cleanedJSON := sanitizeJSONResponse(resp.Text)

	var parsed modelExtraction
	if err := json.Unmarshal([]byte(cleanedJSON), &parsed); err != nil {
		uc.l.Errorf(ctx, "Failed to parse LLM response. Raw=%q Cleaned=%q", resp.Text, cleanedJSON)
		return nil, nil, nil, fmt.Errorf("failed to parse LLM JSON response: %w", err)
	}

	fallbackDue := uc.fallbackDue(now, opts.FallbackDueDays)

	tasks := make([]model.CandidateTask, 0, len(parsed.Tasks))
	for _, mt := range parsed.Tasks {
		task, ok := uc.normalizeModelTask(mt, courses, opts.DefaultCourseID, fallbackDue)
		if !ok {
			continue
		}
		tasks = append(tasks, task)
	}

	return tasks, parsed.RecurringPatterns, parsed.Warnings, nil
}

// normalizeModelTask maps a model-reported task onto the closed domain types.
// Returns ok=false for entries too malformed to keep (no title at all).
func (uc *implUseCase) normalizeModelTask(mt modelTask, courses []model.Course, defaultCourseID string, fallbackDue time.Time) (model.CandidateTask, bool) {
	title := strings.TrimSpace(mt.Title)
	if title == "" {
		return model.CandidateTask{}, false
	}

	task := model.CandidateTask{
		Title:          title,
		Type:           model.ParseTaskType(mt.Type),
		CourseID:       strings.TrimSpace(mt.CourseID),
		IsHardDeadline: mt.IsHardDeadline,
		SourceExcerpt:  mt.SourceExcerpt,
	}

	if mt.IsRecurring {
		pattern, ok := model.ParseRecurrencePattern(mt.RecurrencePattern)
		if !ok {
			pattern = model.RecurrenceWeekly
		}
		task.IsRecurring = true
		task.RecurrencePattern = pattern
		task.OriginalPattern = mt.SourceExcerpt
		if wd, ok := datemath.ParseWeekday(mt.RecurrenceWeekday); ok {
			task.RecurrenceWeekday = &wd
		}
	} else {
		// Non-recurring tasks need a concrete due date. When the model could
		// not resolve one, the universal fallback applies: a slightly wrong
		// due date is more useful than a silently dropped task.
		due, err := time.Parse(time.RFC3339, mt.DueDate)
		if err != nil {
			due = fallbackDue
		} else {
			due = due.In(uc.dateMath.Location())
		}
		task.DueDate = &due
	}

	task.Complexity = mt.Complexity
	task.EstimatedHours = mt.EstimatedHours
	if task.Complexity < 1 || task.Complexity > 5 || task.EstimatedHours <= 0 {
		task.Complexity, task.EstimatedHours = classifier.Estimate(strings.ToLower(title), task.Type)
	}

	task.BufferPercentage = 20
	if task.Type == model.TaskTypeExam {
		task.BufferPercentage = 10
		task.IsHardDeadline = true
	}

	switch model.Confidence(mt.Confidence) {
	case model.ConfidenceHigh, model.ConfidenceMedium, model.ConfidenceLow:
		task.Confidence = model.Confidence(mt.Confidence)
	default:
		task.Confidence = model.ConfidenceMedium
	}

	if task.CourseID == "" {
		task.CourseID = classifier.MatchCourse(title+" "+mt.SourceExcerpt, courses)
	}
	if task.CourseID == "" {
		if len(courses) > 0 {
			task.CourseID = courses[0].ID
		} else {
			task.CourseID = defaultCourseID
		}
	}

	return task, true
}

// fallbackDue is the universal due-date fallback for model-reported tasks:
// end of day, FallbackDueDays from now, matching the line classifier's.
func (uc *implUseCase) fallbackDue(now time.Time, days int) time.Time {
	if days <= 0 {
		days = 14
	}
	loc := uc.dateMath.Location()
	day := now.In(loc).AddDate(0, 0, days)
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, loc)
	return uc.dateMath.EndOfDay(start)
}

// knownTaskContext renders the caller's already-tracked tasks as the prompt's
// do-not-duplicate list.
func knownTaskContext(existing []model.CandidateTask) string {
	if len(existing) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, t := range existing {
		fmt.Fprintf(&sb, "- %s (due %s)\n", t.Title, dueLabel(t))
	}
	return sb.String()
}

// courseContext renders the known courses for the prompt.
func courseContext(courses []model.Course) string {
	if len(courses) == 0 {
		return "(none)"
	}
	var sb strings.Builder
	for _, c := range courses {
		fmt.Fprintf(&sb, "- id=%s code=%s name=%s\n", c.ID, c.Code, c.Name)
	}
	return sb.String()
}

// sanitizeJSONResponse removes markdown code fences and leading/trailing prose
// that LLMs often add around JSON output.
func sanitizeJSONResponse(text string) string {
	// Remove ```json ... ``` or ``` ... ``` blocks
	re := regexp.MustCompile("(?s)```(?:json)?\\s*(.+?)\\s*```")
	matches := re.FindStringSubmatch(text)
	if len(matches) > 1 {
		return strings.TrimSpace(matches[1])
	}

	// No code block: find first [ or { and last ] or }
	start := strings.IndexAny(text, "[{")
	if start == -1 {
		return text
	}
	end := strings.LastIndexAny(text, "]}")
	if end == -1 || end < start {
		return text
	}
	return strings.TrimSpace(text[start : end+1])
}
