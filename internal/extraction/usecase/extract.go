package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"coursepilot/internal/chunker"
	"coursepilot/internal/extraction"
	"coursepilot/internal/model"
	"coursepilot/internal/recurrence"
)

// workItem is one chunk of one source, ready for a pipeline pass.
type workItem struct {
	kind model.SourceKind
	text string
}

// chunkResult collects everything both passes produced for one chunk.
type chunkResult struct {
	heuristic []model.CandidateTask
	model     []model.CandidateTask
	patterns  []model.PatternDescription
	warnings  []string
	degraded  bool
}

// Extract runs the full pipeline: chunk, classify in parallel, expand
// recurring templates, then merge and deduplicate.
func (uc *implUseCase) Extract(ctx context.Context, input extraction.ExtractInput) (extraction.ExtractOutput, error) {
	wantFeed := input.Options.IncludeCalendarFeed && uc.feed != nil
	if len(input.Sources) == 0 && !wantFeed {
		return extraction.ExtractOutput{}, extraction.ErrNoSources
	}

	now := input.Options.Now
	if now.IsZero() {
		now = time.Now().In(uc.dateMath.Location())
	}
	opts := uc.resolveOptions(input.Options)

	sources := input.Sources
	var warnings []string
	if wantFeed {
		// The feed window tracks the recurrence horizon so calendar events
		// cover the same span the expander produces.
		feedSrc, err := uc.feed.FetchFeed(ctx, now, now.AddDate(0, 0, 7*opts.RecurrenceHorizon))
		if err != nil {
			uc.l.Warnf(ctx, "Extract: calendar feed unavailable: %v", err)
			warnings = append(warnings, "calendar feed unavailable, continuing without it")
		} else if strings.TrimSpace(feedSrc.Text) != "" {
			sources = append(append([]model.RawSource{}, sources...), feedSrc)
		}
	}

	items, meta := uc.chunkSources(sources, opts.MaxChunkSize)
	if len(items) == 0 {
		return extraction.ExtractOutput{NothingToExtract: true, Metadata: meta, Warnings: warnings}, nil
	}

	useModel := uc.llm != nil && uc.llm.HasProviders() && !input.Options.HeuristicsOnly
	uc.l.Infof(ctx, "Extract: sources=%d chunks=%d model_enabled=%t", len(sources), len(items), useModel)

	// Fan out one goroutine per chunk; each writes its own slot.
	results := make([]chunkResult, len(items))
	var wg sync.WaitGroup
	for i, item := range items {
		wg.Add(1)
		go func(i int, item workItem) {
			defer wg.Done()
			results[i] = uc.processChunk(ctx, item, input, now, opts, useModel)
		}(i, item)
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return extraction.ExtractOutput{}, err
	}

	degraded := !useModel
	var candidates []model.CandidateTask
	var patterns []model.PatternDescription

	// Model results go in front so they win ties during deduplication:
	// they carry richer context than line heuristics.
	for _, r := range results {
		candidates = append(candidates, r.model...)
	}
	for _, r := range results {
		candidates = append(candidates, r.heuristic...)
		patterns = append(patterns, r.patterns...)
		warnings = append(warnings, r.warnings...)
		if r.degraded {
			degraded = true
		}
	}

	// Recurring templates become concrete dated instances before anything
	// leaves the pipeline.
	expandStart := uc.dateMath.EndOfDay(now)
	expanded := make([]model.CandidateTask, 0, len(candidates))
	for _, c := range candidates {
		expanded = append(expanded, recurrence.Expand(c, expandStart, opts.RecurrenceHorizon)...)
	}

	merged, mergeWarnings := mergeTasks(input.ExistingTasks, expanded)
	warnings = append(warnings, mergeWarnings...)

	out := extraction.ExtractOutput{
		Tasks:             merged,
		RecurringPatterns: dedupePatterns(patterns),
		Warnings:          warnings,
		Metadata:          meta,
		Degraded:          degraded,
	}
	out.NothingToExtract = len(out.Tasks) == 0 && len(out.RecurringPatterns) == 0

	uc.l.Infof(ctx, "Extract: tasks=%d patterns=%d warnings=%d degraded=%t",
		len(out.Tasks), len(out.RecurringPatterns), len(out.Warnings), out.Degraded)

	return out, nil
}

// resolveOptions fills request options from service defaults.
func (uc *implUseCase) resolveOptions(o extraction.ExtractOptions) extraction.ExtractOptions {
	if o.FallbackDueDays <= 0 {
		o.FallbackDueDays = uc.cfg.FallbackDueDays
	}
	if o.RecurrenceHorizon <= 0 {
		o.RecurrenceHorizon = uc.cfg.RecurrenceHorizon
	}
	if o.MaxChunkSize <= 0 {
		o.MaxChunkSize = uc.cfg.MaxChunkSize
	}
	return o
}

// chunkSources splits every non-empty source into bounded chunks and folds
// document metadata across sources (first source to report a field wins,
// assignment counts accumulate).
func (uc *implUseCase) chunkSources(sources []model.RawSource, maxChunkSize int) ([]workItem, chunker.Metadata) {
	ch := chunker.New(maxChunkSize)

	var items []workItem
	var meta chunker.Metadata

	for _, src := range sources {
		if strings.TrimSpace(src.Text) == "" {
			continue
		}
		result := ch.Chunk(src.Text)

		if meta.CourseTitle == "" {
			meta.CourseTitle = result.Metadata.CourseTitle
		}
		if meta.Instructor == "" {
			meta.Instructor = result.Metadata.Instructor
		}
		meta.AssignmentCount += result.Metadata.AssignmentCount

		for _, text := range result.Chunks() {
			items = append(items, workItem{kind: src.Kind, text: text})
		}
	}

	return items, meta
}

// processChunk runs the heuristic pass and, when enabled, the model pass on
// one chunk. A model failure degrades the chunk instead of failing the run.
func (uc *implUseCase) processChunk(ctx context.Context, item workItem, input extraction.ExtractInput, now time.Time, opts extraction.ExtractOptions, useModel bool) chunkResult {
	var result chunkResult

	if err := ctx.Err(); err != nil {
		result.warnings = append(result.warnings, fmt.Sprintf("chunk skipped: %v", err))
		result.degraded = true
		return result
	}

	result.heuristic, result.patterns = uc.heuristicPass(item, input.Courses, now, opts)

	if !useModel {
		return result
	}

	modelTasks, modelPatterns, modelWarnings, err := uc.modelPass(ctx, item, input.Courses, input.ExistingTasks, opts, now)
	if err != nil {
		uc.l.Warnf(ctx, "Extract: model pass failed, keeping heuristic results: %v", err)
		result.warnings = append(result.warnings,
			fmt.Sprintf("model extraction unavailable for one %s chunk, heuristic results only", item.kind))
		result.degraded = true
		return result
	}

	result.model = modelTasks
	result.patterns = append(result.patterns, modelPatterns...)
	result.warnings = append(result.warnings, modelWarnings...)
	return result
}
