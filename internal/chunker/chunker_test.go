package chunker_test

import (
	"fmt"
	"strings"
	"testing"

	"coursepilot/internal/chunker"
)

// joined strips line breaks so forced-split boundaries do not affect the
// content comparison.
func joined(chunks []string) string {
	return strings.ReplaceAll(strings.Join(chunks, ""), "\n", "")
}

func TestChunkSectionRouting(t *testing.T) {
	doc := strings.Join([]string{
		"Syllabus",
		"This course covers the foundations of modern computing.",
		"Grading: 40% exams, 40% assignments, 20% participation.",
		"Assignments",
		"Assignment 1 due 9/12",
		"Assignment 2 due 9/26",
		"Modules",
		"Week 1: Introduction and history",
		"Week 2: Boolean logic",
	}, "\n")

	result := chunker.New(0).Chunk(doc)

	if len(result.Syllabus) != 1 || !strings.Contains(result.Syllabus[0], "foundations of modern computing") {
		t.Errorf("syllabus chunks = %q", result.Syllabus)
	}
	if len(result.Assignments) != 1 || !strings.Contains(result.Assignments[0], "Assignment 2 due 9/26") {
		t.Errorf("assignment chunks = %q", result.Assignments)
	}
	if len(result.Modules) != 1 || !strings.Contains(result.Modules[0], "Week 2: Boolean logic") {
		t.Errorf("module chunks = %q", result.Modules)
	}
}

func TestChunkUnclassifiedHeuristic(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want func(r chunker.Result) []string
	}{
		{
			name: "Obligation lines read as assignments",
			doc:  "Problem set 1 due Friday\nProblem set 2 due 10/3",
			want: func(r chunker.Result) []string { return r.Assignments },
		},
		{
			name: "Week markers read as modules",
			doc:  "Week 1 covers sorting\nWeek 2 covers trees",
			want: func(r chunker.Result) []string { return r.Modules },
		},
		{
			name: "Plain prose reads as syllabus",
			doc:  "Office hours are Tuesdays from 2 to 4 in room 301.",
			want: func(r chunker.Result) []string { return r.Syllabus },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := chunker.New(0).Chunk(tt.doc)
			got := tt.want(result)
			if len(got) == 0 || joined(got) != strings.ReplaceAll(tt.doc, "\n", "") {
				t.Errorf("section chunks = %q, want full document", got)
			}
		})
	}
}

func TestChunkSizeBoundAndPreservation(t *testing.T) {
	const maxSize = 1500
	hardMax := maxSize * 12 / 10

	var lines []string
	for i := 1; i <= 40; i++ {
		lines = append(lines, fmt.Sprintf("Assignment %d", i))
		lines = append(lines, strings.Repeat("reading notes and detailed instructions ", 7)+"due later")
	}
	doc := strings.Join(lines, "\n")

	result := chunker.New(maxSize).Chunk(doc)
	chunks := result.Assignments
	if len(chunks) < 2 {
		t.Fatalf("expected multiple chunks, got %d", len(chunks))
	}

	for i, chunk := range chunks {
		if len(chunk) > hardMax {
			t.Errorf("chunk %d length %d exceeds hard limit %d", i, len(chunk), hardMax)
		}
	}

	// Boundary-preferring splits: every chunk after the first starts on an
	// obligation boundary rather than mid-entry.
	for i, chunk := range chunks[1:] {
		if !strings.HasPrefix(chunk, "Assignment ") {
			t.Errorf("chunk %d starts mid-entry: %q", i+1, chunk[:30])
		}
	}

	if joined(chunks) != strings.ReplaceAll(doc, "\n", "") {
		t.Error("concatenated chunks do not reproduce the section content")
	}
}

func TestChunkOversizedSingleLine(t *testing.T) {
	const maxSize = 100
	hardMax := maxSize * 12 / 10

	line := strings.Repeat("x", 500) + " due tomorrow"
	result := chunker.New(maxSize).Chunk(line)

	chunks := result.Assignments
	for i, chunk := range chunks {
		if len(chunk) > hardMax {
			t.Errorf("chunk %d length %d exceeds hard limit %d", i, len(chunk), hardMax)
		}
	}
	if joined(chunks) != line {
		t.Error("concatenated chunks do not reproduce the oversized line")
	}
}

func TestChunkMetadata(t *testing.T) {
	doc := strings.Join([]string{
		"Course: Intro to Computer Science",
		"Instructor: Dr. Jane Smith",
		"Assignments",
		"Assignment 1 due 9/12",
		"Assignment 2 due 9/26",
		"Reading response, submit on Canvas",
	}, "\n")

	meta := chunker.New(0).Chunk(doc).Metadata

	if meta.CourseTitle != "Intro to Computer Science" {
		t.Errorf("course title = %q", meta.CourseTitle)
	}
	if meta.Instructor != "Dr. Jane Smith" {
		t.Errorf("instructor = %q", meta.Instructor)
	}
	if meta.AssignmentCount != 3 {
		t.Errorf("assignment count = %d, want 3", meta.AssignmentCount)
	}
}

func TestChunkMetadataFromContext(t *testing.T) {
	doc := "Welcome to CS101, taught by Prof. Alvarez.\nFirst quiz due 9/20."

	meta := chunker.New(0).Chunk(doc).Metadata
	if meta.CourseTitle != "CS101" {
		t.Errorf("course title = %q, want CS101", meta.CourseTitle)
	}
	if meta.Instructor != "Prof. Alvarez" {
		t.Errorf("instructor = %q, want Prof. Alvarez", meta.Instructor)
	}
}
