package usecase

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"coursepilot/internal/model"
)

// taskNamespace seeds the deterministic task IDs so the same (title, due
// date) pair always yields the same UUID across runs and processes.
var taskNamespace = uuid.MustParse("4a1c6f0a-9d3e-5b2f-8c47-2d90a1e5b7c3")

// dedupKey identifies a task by its verbatim title and due date. Titles are
// already normalized by the classifier, so only exact matches collapse;
// near-duplicates with differing casing survive as separate tasks. A missed
// merge produces a harmless duplicate, an aggressive one loses information.
func dedupKey(t model.CandidateTask) string {
	due := "unscheduled"
	if t.DueDate != nil {
		due = t.DueDate.UTC().Format(time.RFC3339)
	}
	return t.Title + "|" + due
}

// taskID derives the deterministic UUID for a task from its dedup key.
func taskID(t model.CandidateTask) string {
	return uuid.NewSHA1(taskNamespace, []byte(dedupKey(t))).String()
}

// mergeTasks deduplicates candidates against the caller's existing tasks and
// against each other. First occurrence wins; later duplicates are dropped,
// with a warning when the dropped copy disagreed on anything material.
// Idempotent: merging the output with itself yields the output.
func mergeTasks(existing, candidates []model.CandidateTask) ([]model.CandidateTask, []string) {
	seen := make(map[string]model.CandidateTask, len(existing)+len(candidates))
	for _, t := range existing {
		seen[dedupKey(t)] = t
	}

	var merged []model.CandidateTask
	var warnings []string

	for _, t := range candidates {
		key := dedupKey(t)
		if kept, dup := seen[key]; dup {
			if conflicts(kept, t) {
				warnings = append(warnings,
					fmt.Sprintf("duplicate of %q (due %s) dropped with conflicting details", t.Title, dueLabel(t)))
			}
			continue
		}
		t.ID = taskID(t)
		seen[key] = t
		merged = append(merged, t)
	}

	// Earliest due date first; unscheduled entries sink to the end. Ties
	// break on title so output order is stable across runs.
	sort.SliceStable(merged, func(i, j int) bool {
		a, b := merged[i], merged[j]
		switch {
		case a.DueDate == nil && b.DueDate == nil:
			return a.Title < b.Title
		case a.DueDate == nil:
			return false
		case b.DueDate == nil:
			return true
		case a.DueDate.Equal(*b.DueDate):
			return a.Title < b.Title
		default:
			return a.DueDate.Before(*b.DueDate)
		}
	})

	return merged, warnings
}

// conflicts reports whether a dropped duplicate disagreed with the kept task
// on anything a student would care about.
func conflicts(kept, dropped model.CandidateTask) bool {
	return kept.Type != dropped.Type ||
		(kept.CourseID != dropped.CourseID && kept.CourseID != "" && dropped.CourseID != "") ||
		kept.IsHardDeadline != dropped.IsHardDeadline
}

func dueLabel(t model.CandidateTask) string {
	if t.DueDate == nil {
		return "unscheduled"
	}
	return t.DueDate.Format("2006-01-02")
}

// dedupePatterns drops repeated pattern descriptions, preserving order.
func dedupePatterns(patterns []model.PatternDescription) []model.PatternDescription {
	seen := make(map[string]struct{}, len(patterns))
	var out []model.PatternDescription
	for _, p := range patterns {
		key := strings.ToLower(p.Pattern) + "|" + p.Frequency
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, p)
	}
	return out
}
