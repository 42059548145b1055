package classifier

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"coursepilot/internal/model"
)

// baseWorkload is the per-type starting point for complexity and hours.
type baseWorkload struct {
	Complexity int
	Hours      float64
}

var workloadTable = map[model.TaskType]baseWorkload{
	model.TaskTypeExam:    {Complexity: 5, Hours: 8},
	model.TaskTypeProject: {Complexity: 4, Hours: 6},
	model.TaskTypeLab:     {Complexity: 3, Hours: 3},
	model.TaskTypeReading: {Complexity: 2, Hours: 2},
}

var defaultWorkload = baseWorkload{Complexity: 3, Hours: 3}

// workloadModifier adjusts the base figures when a keyword appears.
// Applied in table order, complexity clamped to 1..5 after each step.
type workloadModifier struct {
	Keywords        []string
	ComplexityDelta int
	HoursFactor     float64
}

var workloadModifiers = []workloadModifier{
	{Keywords: []string{"final", "comprehensive"}, ComplexityDelta: 1, HoursFactor: 1.5},
	{Keywords: []string{"group", "team"}, ComplexityDelta: 1, HoursFactor: 1.2},
	{Keywords: []string{"short", "brief", "quick"}, ComplexityDelta: -1, HoursFactor: 0.5},
	{Keywords: []string{"long", "extensive", "detailed"}, ComplexityDelta: 1, HoursFactor: 1.5},
}

var (
	chapterRangeRe  = regexp.MustCompile(`(?i)chapters?\s+(\d+)\s*(?:-|–|to|through)\s*(\d+)`)
	chapterSingleRe = regexp.MustCompile(`(?i)chapter\s+\d+\b`)
	pageCountRe     = regexp.MustCompile(`(?i)(\d+)\s*(?:pages|pgs?\.?\b)`)
	pageRangeRe     = regexp.MustCompile(`(?i)pp?\.\s*(\d+)\s*-\s*(\d+)`)
)

const hoursPerChapter = 1.5
const pagesPerHour = 20.0

// Estimate assigns a complexity score (1..5) and an estimated-hours figure
// to a classified task. Pure function: same text and type always yield the
// same estimate. Hours are rounded to the nearest 0.5 and floored at 0.5.
func Estimate(text string, taskType model.TaskType) (int, float64) {
	lower := strings.ToLower(text)

	base, ok := workloadTable[taskType]
	if !ok {
		base = defaultWorkload
	}
	complexity := base.Complexity
	hours := base.Hours

	if taskType == model.TaskTypeReading {
		if refined, ok := readingHours(lower); ok {
			hours = refined
		}
	}

	for _, mod := range workloadModifiers {
		for _, kw := range mod.Keywords {
			if strings.Contains(lower, kw) {
				complexity = clampComplexity(complexity + mod.ComplexityDelta)
				hours *= mod.HoursFactor
				break
			}
		}
	}

	return complexity, roundHalf(hours)
}

// readingHours refines the reading estimate from detected chapter or page
// counts: 1.5h per chapter, 1h per 20 pages.
func readingHours(lower string) (float64, bool) {
	if m := chapterRangeRe.FindStringSubmatch(lower); m != nil {
		lo, _ := strconv.Atoi(m[1])
		hi, _ := strconv.Atoi(m[2])
		if hi >= lo {
			return float64(hi-lo+1) * hoursPerChapter, true
		}
	}
	if chapterSingleRe.MatchString(lower) {
		return hoursPerChapter, true
	}
	if m := pageRangeRe.FindStringSubmatch(lower); m != nil {
		lo, _ := strconv.Atoi(m[1])
		hi, _ := strconv.Atoi(m[2])
		if hi >= lo {
			return float64(hi-lo+1) / pagesPerHour, true
		}
	}
	if m := pageCountRe.FindStringSubmatch(lower); m != nil {
		pages, _ := strconv.Atoi(m[1])
		return float64(pages) / pagesPerHour, true
	}
	return 0, false
}

func clampComplexity(c int) int {
	if c < 1 {
		return 1
	}
	if c > 5 {
		return 5
	}
	return c
}

// roundHalf rounds to the nearest 0.5, floored at 0.5.
func roundHalf(h float64) float64 {
	rounded := math.Round(h*2) / 2
	if rounded < 0.5 {
		return 0.5
	}
	return rounded
}
