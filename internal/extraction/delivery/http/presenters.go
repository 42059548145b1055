package http

import (
	"time"

	"coursepilot/internal/extraction"
	"coursepilot/internal/model"
)

// --- Request DTOs ---

type extractReq struct {
	Sources       []sourceReq       `json:"sources"        binding:"dive"`
	Courses       []courseReq       `json:"courses"        binding:"dive"`
	ExistingTasks []existingTaskReq `json:"existing_tasks" binding:"dive"`
	Options       optionsReq        `json:"options"`
}

type sourceReq struct {
	Kind string `json:"kind" binding:"required"`
	Text string `json:"text" binding:"max=1000000"`
}

type courseReq struct {
	ID   string `json:"id"   binding:"required"`
	Code string `json:"code"`
	Name string `json:"name"`
}

type existingTaskReq struct {
	Title   string     `json:"title" binding:"required"`
	DueDate *time.Time `json:"due_date"`
}

type optionsReq struct {
	DefaultCourseID     string `json:"default_course_id"`
	FallbackDueDays     int    `json:"fallback_due_days"  binding:"omitempty,min=1,max=365"`
	RecurrenceHorizon   int    `json:"recurrence_horizon" binding:"omitempty,min=1,max=52"`
	HeuristicsOnly      bool   `json:"heuristics_only"`
	IncludeCalendarFeed bool   `json:"include_calendar_feed"`
}

func (r extractReq) validate() error {
	if len(r.Sources) == 0 && !r.Options.IncludeCalendarFeed {
		return extraction.ErrNoSources
	}
	for _, src := range r.Sources {
		if _, ok := model.ParseSourceKind(src.Kind); !ok {
			return extraction.ErrUnknownSourceKind
		}
	}
	return nil
}

func (r extractReq) toInput() extraction.ExtractInput {
	sources := make([]model.RawSource, len(r.Sources))
	for i, s := range r.Sources {
		kind, _ := model.ParseSourceKind(s.Kind)
		sources[i] = model.RawSource{Kind: kind, Text: s.Text}
	}

	courses := make([]model.Course, len(r.Courses))
	for i, c := range r.Courses {
		courses[i] = model.Course{ID: c.ID, Code: c.Code, Name: c.Name}
	}

	existing := make([]model.CandidateTask, len(r.ExistingTasks))
	for i, t := range r.ExistingTasks {
		existing[i] = model.CandidateTask{Title: t.Title, DueDate: t.DueDate}
	}

	return extraction.ExtractInput{
		Sources:       sources,
		Courses:       courses,
		ExistingTasks: existing,
		Options: extraction.ExtractOptions{
			DefaultCourseID:     r.Options.DefaultCourseID,
			FallbackDueDays:     r.Options.FallbackDueDays,
			RecurrenceHorizon:   r.Options.RecurrenceHorizon,
			HeuristicsOnly:      r.Options.HeuristicsOnly,
			IncludeCalendarFeed: r.Options.IncludeCalendarFeed,
		},
	}
}

// --- Response DTOs ---

type taskResp struct {
	ID               string     `json:"id"`
	Title            string     `json:"title"`
	Type             string     `json:"type"`
	CourseID         string     `json:"course_id,omitempty"`
	DueDate          *time.Time `json:"due_date"`
	OriginalPattern  string     `json:"original_pattern,omitempty"`
	Complexity       int        `json:"complexity"`
	EstimatedHours   float64    `json:"estimated_hours"`
	IsHardDeadline   bool       `json:"is_hard_deadline"`
	BufferPercentage int        `json:"buffer_percentage"`
	Confidence       string     `json:"confidence"`
	SourceExcerpt    string     `json:"source_excerpt,omitempty"`
}

func newTaskResp(t model.CandidateTask) taskResp {
	return taskResp{
		ID:               t.ID,
		Title:            t.Title,
		Type:             string(t.Type),
		CourseID:         t.CourseID,
		DueDate:          t.DueDate,
		OriginalPattern:  t.OriginalPattern,
		Complexity:       t.Complexity,
		EstimatedHours:   t.EstimatedHours,
		IsHardDeadline:   t.IsHardDeadline,
		BufferPercentage: t.BufferPercentage,
		Confidence:       string(t.Confidence),
		SourceExcerpt:    t.SourceExcerpt,
	}
}

type patternResp struct {
	Pattern    string `json:"pattern"`
	Frequency  string `json:"frequency"`
	Importance string `json:"importance"`
}

type metadataResp struct {
	CourseTitle     string `json:"course_title,omitempty"`
	Instructor      string `json:"instructor,omitempty"`
	AssignmentCount int    `json:"assignment_count"`
}

type extractResp struct {
	Tasks             []taskResp    `json:"tasks"`
	RecurringPatterns []patternResp `json:"recurring_patterns"`
	Warnings          []string      `json:"warnings,omitempty"`
	Metadata          metadataResp  `json:"metadata"`
	Degraded          bool          `json:"degraded"`
	NothingToExtract  bool          `json:"nothing_to_extract"`
}

func (h *handler) newExtractResp(out extraction.ExtractOutput) extractResp {
	tasks := make([]taskResp, len(out.Tasks))
	for i, t := range out.Tasks {
		tasks[i] = newTaskResp(t)
	}

	patterns := make([]patternResp, len(out.RecurringPatterns))
	for i, p := range out.RecurringPatterns {
		patterns[i] = patternResp{Pattern: p.Pattern, Frequency: p.Frequency, Importance: p.Importance}
	}

	return extractResp{
		Tasks:             tasks,
		RecurringPatterns: patterns,
		Warnings:          out.Warnings,
		Metadata: metadataResp{
			CourseTitle:     out.Metadata.CourseTitle,
			Instructor:      out.Metadata.Instructor,
			AssignmentCount: out.Metadata.AssignmentCount,
		},
		Degraded:         out.Degraded,
		NothingToExtract: out.NothingToExtract,
	}
}
