package classifier_test

import (
	"testing"

	"coursepilot/internal/classifier"
	"coursepilot/internal/model"
)

func TestEstimateBaseTable(t *testing.T) {
	tests := []struct {
		name           string
		text           string
		taskType       model.TaskType
		wantComplexity int
		wantHours      float64
	}{
		{name: "Exam", text: "midterm exam", taskType: model.TaskTypeExam, wantComplexity: 5, wantHours: 8},
		{name: "Project", text: "research project", taskType: model.TaskTypeProject, wantComplexity: 4, wantHours: 6},
		{name: "Lab", text: "physics lab", taskType: model.TaskTypeLab, wantComplexity: 3, wantHours: 3},
		{name: "Reading default", text: "read the article", taskType: model.TaskTypeReading, wantComplexity: 2, wantHours: 2},
		{name: "Assignment default", text: "problem set 2", taskType: model.TaskTypeAssignment, wantComplexity: 3, wantHours: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			complexity, hours := classifier.Estimate(tt.text, tt.taskType)
			if complexity != tt.wantComplexity {
				t.Errorf("complexity = %d, want %d", complexity, tt.wantComplexity)
			}
			if hours != tt.wantHours {
				t.Errorf("hours = %v, want %v", hours, tt.wantHours)
			}
		})
	}
}

func TestEstimateReadingRefinement(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantHours float64
	}{
		// 3 chapters at 1.5h each
		{name: "Chapter range", text: "read chapters 3-5", wantHours: 4.5},
		{name: "Single chapter", text: "read chapter 7", wantHours: 1.5},
		// 40 pages at 20 pages/hour
		{name: "Page count", text: "read 40 pages of the textbook", wantHours: 2},
		// 31 pages rounds to 1.5
		{name: "Page range", text: "read pp. 120-150", wantHours: 1.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, hours := classifier.Estimate(tt.text, model.TaskTypeReading)
			if hours != tt.wantHours {
				t.Errorf("hours = %v, want %v", hours, tt.wantHours)
			}
		})
	}
}

func TestEstimateModifiers(t *testing.T) {
	tests := []struct {
		name           string
		text           string
		taskType       model.TaskType
		wantComplexity int
		wantHours      float64
	}{
		// Complexity clamps at 5; 8h * 1.5 = 12h
		{name: "Final exam", text: "final comprehensive exam", taskType: model.TaskTypeExam, wantComplexity: 5, wantHours: 12},
		// 3 + 1 = 4; 3h * 1.2 = 3.6 -> 3.5
		{name: "Group assignment", text: "group worksheet", taskType: model.TaskTypeAssignment, wantComplexity: 4, wantHours: 3.5},
		// 3 - 1 = 2; 3h * 0.5 = 1.5
		{name: "Short assignment", text: "short response paper", taskType: model.TaskTypeAssignment, wantComplexity: 2, wantHours: 1.5},
		// 2 + 1 = 3; 2h * 1.5 = 3
		{name: "Detailed reading", text: "detailed reading response", taskType: model.TaskTypeReading, wantComplexity: 3, wantHours: 3},
		// Floors at 0.5: reading 2h * 0.5 = 1, then nothing drops below 0.5
		{name: "Quick reading", text: "quick skim", taskType: model.TaskTypeReading, wantComplexity: 1, wantHours: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			complexity, hours := classifier.Estimate(tt.text, tt.taskType)
			if complexity != tt.wantComplexity {
				t.Errorf("complexity = %d, want %d", complexity, tt.wantComplexity)
			}
			if hours != tt.wantHours {
				t.Errorf("hours = %v, want %v", hours, tt.wantHours)
			}
		})
	}
}

func TestEstimateHoursFloor(t *testing.T) {
	// 5 pages = 0.25h, rounds to 0.5 via the floor.
	_, hours := classifier.Estimate("read 5 pages", model.TaskTypeReading)
	if hours != 0.5 {
		t.Errorf("hours = %v, want 0.5 floor", hours)
	}
}

func TestMatchCourse(t *testing.T) {
	courses := []model.Course{
		{ID: "c1", Code: "CS101", Name: "Intro to Computer Science"},
		{ID: "c2", Code: "MATH200", Name: "Linear Algebra"},
		{ID: "c3", Code: "", Name: "World Literature Survey"},
	}

	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "Code match", text: "cs101 homework 3 due friday", want: "c1"},
		{name: "Code match case-insensitive", text: "Submit the Math200 worksheet", want: "c2"},
		{name: "Name word match", text: "algebra practice problems", want: "c2"},
		{name: "Name word match other course", text: "literature essay draft", want: "c3"},
		{name: "Short name words ignored", text: "go to the office", want: ""},
		{name: "No match", text: "buy groceries", want: ""},
		// Code precedence beats an earlier name match.
		{name: "Code beats name order", text: "computer architecture MATH200 notes", want: "c2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifier.MatchCourse(tt.text, courses)
			if got != tt.want {
				t.Errorf("MatchCourse() = %q, want %q", got, tt.want)
			}
		})
	}
}
