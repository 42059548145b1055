package recurrence_test

import (
	"fmt"
	"testing"
	"time"

	"coursepilot/internal/model"
	"coursepilot/internal/recurrence"
)

func weeklyTemplate() model.CandidateTask {
	return model.CandidateTask{
		Title:             "Weekly Reflections",
		Type:              model.TaskTypeAssignment,
		CourseID:          "c1",
		IsRecurring:       true,
		RecurrencePattern: model.RecurrenceWeekly,
		Complexity:        3,
		EstimatedHours:    3,
		Confidence:        model.ConfidenceMedium,
	}
}

func TestExpandWeeklyCount(t *testing.T) {
	start := time.Date(2024, 5, 6, 23, 59, 59, 0, time.UTC) // a Monday

	instances := recurrence.Expand(weeklyTemplate(), start, 12)
	if len(instances) != 12 {
		t.Fatalf("expected 12 instances, got %d", len(instances))
	}

	for i, inst := range instances {
		if inst.IsRecurring {
			t.Errorf("instance %d still flagged recurring", i)
		}
		if inst.DueDate == nil {
			t.Fatalf("instance %d has nil due date", i)
		}
		want := start.AddDate(0, 0, 7*(i+1))
		if !inst.DueDate.Equal(want) {
			t.Errorf("instance %d due = %v, want %v (7 days apart)", i, inst.DueDate, want)
		}
		wantTitle := fmt.Sprintf("Weekly Reflections (Week %d)", i+1)
		if inst.Title != wantTitle {
			t.Errorf("instance %d title = %q, want %q", i, inst.Title, wantTitle)
		}
	}
}

func TestExpandWeeklyWeekdayAdjustment(t *testing.T) {
	// Start on a Monday; each instance must land on the Friday of its week.
	start := time.Date(2024, 5, 6, 23, 59, 59, 0, time.UTC) // Monday
	friday := time.Friday

	template := weeklyTemplate()
	template.RecurrenceWeekday = &friday

	instances := recurrence.Expand(template, start, 2)
	if len(instances) != 2 {
		t.Fatalf("expected 2 instances, got %d", len(instances))
	}

	want1 := time.Date(2024, 5, 17, 23, 59, 59, 0, time.UTC) // Friday of week 1
	want2 := time.Date(2024, 5, 24, 23, 59, 59, 0, time.UTC) // Friday of week 2

	if !instances[0].DueDate.Equal(want1) {
		t.Errorf("week 1 due = %v, want %v", instances[0].DueDate, want1)
	}
	if !instances[1].DueDate.Equal(want2) {
		t.Errorf("week 2 due = %v, want %v", instances[1].DueDate, want2)
	}
	for i, inst := range instances {
		if inst.DueDate.Weekday() != time.Friday {
			t.Errorf("instance %d falls on %v, want Friday", i, inst.DueDate.Weekday())
		}
	}
	if instances[0].Title != "Weekly Reflections (Week 1)" || instances[1].Title != "Weekly Reflections (Week 2)" {
		t.Errorf("titles = %q, %q", instances[0].Title, instances[1].Title)
	}
}

func TestExpandBiweekly(t *testing.T) {
	start := time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC)
	template := weeklyTemplate()
	template.RecurrencePattern = model.RecurrenceBiweekly

	instances := recurrence.Expand(template, start, 3)
	for i, inst := range instances {
		want := start.AddDate(0, 0, 14*(i+1))
		if !inst.DueDate.Equal(want) {
			t.Errorf("instance %d due = %v, want %v", i, inst.DueDate, want)
		}
	}
}

func TestExpandMonthlyClampsDayOverflow(t *testing.T) {
	// Jan 31 + 1 month must land in February, not roll into March.
	start := time.Date(2024, 1, 31, 23, 59, 59, 0, time.UTC)
	template := weeklyTemplate()
	template.RecurrencePattern = model.RecurrenceMonthly

	instances := recurrence.Expand(template, start, 3)
	if len(instances) != 3 {
		t.Fatalf("expected 3 instances, got %d", len(instances))
	}

	wantMonths := []time.Month{time.February, time.March, time.April}
	wantDays := []int{29, 31, 30} // 2024 is a leap year

	for i, inst := range instances {
		if inst.DueDate.Month() != wantMonths[i] {
			t.Errorf("instance %d month = %v, want %v", i, inst.DueDate.Month(), wantMonths[i])
		}
		if inst.DueDate.Day() != wantDays[i] {
			t.Errorf("instance %d day = %d, want %d", i, inst.DueDate.Day(), wantDays[i])
		}
	}
}

func TestExpandDeterministic(t *testing.T) {
	start := time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC)
	template := weeklyTemplate()

	a := recurrence.Expand(template, start, 5)
	b := recurrence.Expand(template, start, 5)

	if len(a) != len(b) {
		t.Fatalf("lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i].Title != b[i].Title || !a[i].DueDate.Equal(*b[i].DueDate) {
			t.Errorf("instance %d differs between runs", i)
		}
	}
}

func TestExpandNonRecurringPassthrough(t *testing.T) {
	due := time.Date(2024, 10, 25, 23, 59, 0, 0, time.UTC)
	task := model.CandidateTask{Title: "Midterm Exam", DueDate: &due}

	out := recurrence.Expand(task, time.Now(), 12)
	if len(out) != 1 {
		t.Fatalf("expected passthrough, got %d instances", len(out))
	}
	if out[0].Title != "Midterm Exam" {
		t.Errorf("title = %q", out[0].Title)
	}
}
