package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"coursepilot/internal/extraction"
	"coursepilot/internal/model"
	"coursepilot/pkg/llmprovider"
)

func testInput(text string) extraction.ExtractInput {
	return extraction.ExtractInput{
		Sources: []model.RawSource{{Kind: model.SourceSyllabus, Text: text}},
		Courses: []model.Course{{ID: "c1", Code: "CS101", Name: "Intro to CS"}},
		Options: extraction.ExtractOptions{
			// Wednesday, May 1, 2024
			Now: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		},
	}
}

func TestExtractNoSources(t *testing.T) {
	uc := newTestUseCase(t, nil)

	_, err := uc.Extract(context.Background(), extraction.ExtractInput{})
	if !errors.Is(err, extraction.ErrNoSources) {
		t.Fatalf("expected ErrNoSources, got %v", err)
	}
}

func TestExtractNothingToExtract(t *testing.T) {
	uc := newTestUseCase(t, nil)

	out, err := uc.Extract(context.Background(), testInput("   \n  \n"))
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if !out.NothingToExtract {
		t.Error("expected NothingToExtract for blank sources")
	}
}

func TestExtractMidtermScenario(t *testing.T) {
	uc := newTestUseCase(t, nil)

	out, err := uc.Extract(context.Background(), testInput("Midterm Exam due Oct 25 at 11:59pm"))
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if len(out.Tasks) != 1 {
		t.Fatalf("expected 1 task, got %d", len(out.Tasks))
	}

	task := out.Tasks[0]
	if task.Title != "Midterm Exam" {
		t.Errorf("title = %q", task.Title)
	}
	if task.Type != model.TaskTypeExam {
		t.Errorf("type = %q, want exam", task.Type)
	}
	if !task.IsHardDeadline || task.BufferPercentage != 10 {
		t.Errorf("hard=%t buffer=%d, want hard deadline with 10%% buffer", task.IsHardDeadline, task.BufferPercentage)
	}
	want := time.Date(2024, 10, 25, 23, 59, 0, 0, time.UTC)
	if task.DueDate == nil || !task.DueDate.Equal(want) {
		t.Errorf("due = %v, want %v", task.DueDate, want)
	}
	if task.ID == "" {
		t.Error("task ID not assigned")
	}
	if !out.Degraded {
		t.Error("no providers configured: run should be flagged degraded")
	}
}

func TestExtractWeeklyReflectionsScenario(t *testing.T) {
	uc := newTestUseCase(t, nil)

	out, err := uc.Extract(context.Background(), testInput("Weekly reflections due Fridays"))
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}

	if len(out.Tasks) != 12 {
		t.Fatalf("expected 12 expanded instances, got %d", len(out.Tasks))
	}
	for i, task := range out.Tasks {
		if task.IsRecurring {
			t.Errorf("instance %d still flagged recurring", i)
		}
		if task.DueDate == nil {
			t.Fatalf("instance %d has nil due date", i)
		}
		if task.DueDate.Weekday() != time.Friday {
			t.Errorf("instance %d falls on %v, want Friday", i, task.DueDate.Weekday())
		}
	}
	if out.Tasks[0].Title != "Weekly Reflections (Week 1)" {
		t.Errorf("first title = %q", out.Tasks[0].Title)
	}

	if len(out.RecurringPatterns) != 1 {
		t.Fatalf("expected 1 pattern description, got %d", len(out.RecurringPatterns))
	}
	if out.RecurringPatterns[0].Frequency != "weekly" {
		t.Errorf("frequency = %q", out.RecurringPatterns[0].Frequency)
	}
}

func TestExtractDegradedModeCompleteness(t *testing.T) {
	// A failing provider must not lose heuristic results.
	failing := &stubProvider{shouldFail: true}
	uc := newTestUseCase(t, []llmprovider.Provider{failing})

	out, err := uc.Extract(context.Background(), testInput("Midterm Exam due Oct 25 at 11:59pm\nProblem set 4 due 11/2"))
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if !out.Degraded {
		t.Error("expected Degraded=true after model failure")
	}
	if len(out.Tasks) != 2 {
		t.Fatalf("expected both heuristic tasks despite model failure, got %d", len(out.Tasks))
	}
	if len(out.Warnings) == 0 {
		t.Error("expected a warning about the failed model pass")
	}
}

func TestExtractModelPathWinsTies(t *testing.T) {
	// The stub reports the same obligation the heuristics find, with higher
	// confidence; the model copy must win deduplication.
	stub := &stubProvider{text: `{
		"tasks": [{
			"title": "Final Project",
			"type": "project",
			"course_id": "c1",
			"due_date": "2024-12-15T23:59:59Z",
			"is_recurring": false,
			"complexity": 4,
			"estimated_hours": 10,
			"is_hard_deadline": false,
			"confidence": "high",
			"source_excerpt": "Final Project due 12/15"
		}],
		"recurring_patterns": [],
		"warnings": ["verify the rubric deadline"]
	}`}
	uc := newTestUseCase(t, []llmprovider.Provider{stub})

	out, err := uc.Extract(context.Background(), testInput("Final Project due 12/15"))
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if out.Degraded {
		t.Error("model pass succeeded: run should not be degraded")
	}
	if len(out.Tasks) != 1 {
		t.Fatalf("expected 1 deduplicated task, got %d", len(out.Tasks))
	}
	if out.Tasks[0].Confidence != model.ConfidenceHigh {
		t.Errorf("confidence = %q, want high (model copy kept)", out.Tasks[0].Confidence)
	}
	if out.Tasks[0].EstimatedHours != 10 {
		t.Errorf("hours = %v, want model estimate 10", out.Tasks[0].EstimatedHours)
	}

	found := false
	for _, w := range out.Warnings {
		if w == "verify the rubric deadline" {
			found = true
		}
	}
	if !found {
		t.Errorf("model warning not surfaced: %v", out.Warnings)
	}
}

func TestExtractModelTaskDateFallback(t *testing.T) {
	// The model finds a prose obligation the line heuristics reject (no
	// date, no due indicator) and reports it without a resolvable date.
	// The task must survive with the universal fallback due date, not be
	// dropped.
	stub := &stubProvider{text: `{
		"tasks": [{
			"title": "Reflection Essay",
			"type": "assignment",
			"course_id": "",
			"due_date": "",
			"is_recurring": false,
			"complexity": 3,
			"estimated_hours": 3,
			"is_hard_deadline": false,
			"confidence": "medium",
			"source_excerpt": "Students are expected to complete a reflection essay."
		}],
		"recurring_patterns": [],
		"warnings": []
	}`}
	uc := newTestUseCase(t, []llmprovider.Provider{stub})

	out, err := uc.Extract(context.Background(), testInput("Students are expected to complete a reflection essay."))
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if len(out.Tasks) != 1 {
		t.Fatalf("expected the undated model task to survive, got %d tasks", len(out.Tasks))
	}

	task := out.Tasks[0]
	if task.Title != "Reflection Essay" {
		t.Errorf("title = %q", task.Title)
	}
	// Now + 14 days, end of day.
	want := time.Date(2024, 5, 15, 23, 59, 59, 0, time.UTC)
	if task.DueDate == nil || !task.DueDate.Equal(want) {
		t.Errorf("due = %v, want fallback %v", task.DueDate, want)
	}
}

func TestExtractModelGarbageDegrades(t *testing.T) {
	stub := &stubProvider{text: "Sorry, I cannot help with that."}
	uc := newTestUseCase(t, []llmprovider.Provider{stub})

	out, err := uc.Extract(context.Background(), testInput("Quiz 3 due 11/2"))
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if !out.Degraded {
		t.Error("unparseable model output should degrade the run")
	}
	if len(out.Tasks) != 1 {
		t.Fatalf("expected the heuristic task, got %d", len(out.Tasks))
	}
}

func TestExtractCalendarFeedSource(t *testing.T) {
	uc := newTestUseCase(t, nil)
	uc.feed = &stubFeed{text: "Chemistry Quiz due 5/10/2024 at 9:00am\n"}

	input := testInput("Essay due 5/20")
	input.Options.IncludeCalendarFeed = true

	out, err := uc.Extract(context.Background(), input)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if len(out.Tasks) != 2 {
		t.Fatalf("expected pasted + feed tasks, got %d", len(out.Tasks))
	}
	if out.Tasks[0].Title != "Chemistry Quiz" {
		t.Errorf("first task = %q, want the earlier feed task first", out.Tasks[0].Title)
	}
	if out.Tasks[0].Type != model.TaskTypeQuiz {
		t.Errorf("feed task type = %q, want quiz", out.Tasks[0].Type)
	}
}

func TestExtractCalendarFeedFailureWarns(t *testing.T) {
	uc := newTestUseCase(t, nil)
	uc.feed = &stubFeed{err: errors.New("token expired")}

	input := testInput("Essay due 5/20")
	input.Options.IncludeCalendarFeed = true

	out, err := uc.Extract(context.Background(), input)
	if err != nil {
		t.Fatalf("feed failure must not fail the run: %v", err)
	}
	if len(out.Tasks) != 1 {
		t.Fatalf("expected the pasted task to survive, got %d", len(out.Tasks))
	}
	if len(out.Warnings) == 0 {
		t.Error("expected a warning about the unavailable feed")
	}
}

func TestExtractIdempotentAcrossRuns(t *testing.T) {
	uc := newTestUseCase(t, nil)
	input := testInput("Midterm Exam due Oct 25 at 11:59pm")

	first, err := uc.Extract(context.Background(), input)
	if err != nil {
		t.Fatalf("first Extract: %v", err)
	}

	input.ExistingTasks = first.Tasks
	second, err := uc.Extract(context.Background(), input)
	if err != nil {
		t.Fatalf("second Extract: %v", err)
	}
	if len(second.Tasks) != 0 {
		t.Errorf("re-extraction produced %d duplicate tasks", len(second.Tasks))
	}
	if !second.NothingToExtract {
		t.Error("expected NothingToExtract when every candidate is already tracked")
	}
}
