package chunker

import (
	"regexp"
	"strings"
)

// Chunker splits raw academic documents into section-scoped chunks small
// enough for a single model call, without losing any content.
type Chunker struct {
	maxChunkSize int
}

// New builds a Chunker. A non-positive maxChunkSize falls back to the default.
func New(maxChunkSize int) *Chunker {
	if maxChunkSize <= 0 {
		maxChunkSize = DefaultMaxChunkSize
	}
	return &Chunker{maxChunkSize: maxChunkSize}
}

var (
	assignmentsHeaderRe = regexp.MustCompile(`(?i)^\s*(?:#{1,6}\s*)?(?:upcoming\s+)?(?:assignments?|homework)(?:\s+(?:page|list))?\s*:?\s*$`)
	modulesHeaderRe     = regexp.MustCompile(`(?i)^\s*(?:#{1,6}\s*)?(?:course\s+)?modules?(?:\s+(?:page|list))?\s*:?\s*$`)
	syllabusHeaderRe    = regexp.MustCompile(`(?i)^\s*(?:#{1,6}\s*)?(?:course\s+)?(?:syllabus|schedule|outline|calendar)\s*:?\s*$`)

	// boundaryRe marks natural split points inside a section: headings,
	// horizontal rules, and numbered obligation lines.
	boundaryRe = regexp.MustCompile(`(?i)^\s*(?:#{1,6}\s|[-=*_]{3,}\s*$|(?:assignment|quiz|exam|lab|project|module|week|unit)\s+\d)`)

	obligationLineRe = regexp.MustCompile(`(?i)\b(?:due|submit|deadline|turn in|hand in)\b`)
	weekMarkerRe     = regexp.MustCompile(`(?i)\b(?:week|module|unit)\s+\d`)

	courseLabelRe     = regexp.MustCompile(`(?i)^\s*course(?:\s+title)?\s*:\s*(.+)$`)
	courseCodeRe      = regexp.MustCompile(`\b[A-Z]{2,4}\s?\d{3}\b`)
	instructorLabelRe = regexp.MustCompile(`(?i)^\s*(?:instructor|professor|taught by)\s*:\s*(.+)$`)
	instructorNameRe  = regexp.MustCompile(`\b(?:Dr|Prof)\.\s+[A-Z][a-zA-Z'-]+(?:\s+[A-Z][a-zA-Z'-]+)*`)
)

// Chunk scans the document line by line, assigns lines to sections, and
// splits each section into bounded chunks. Concatenating a section's chunks
// reproduces that section's content exactly.
func (c *Chunker) Chunk(text string) Result {
	lines := strings.Split(text, "\n")

	var (
		current      = sectionUnknown
		assignments  []string
		modules      []string
		syllabus     []string
		unclassified []string
		meta         Metadata
	)

	for _, line := range lines {
		c.scanMetadata(line, &meta)

		if next, ok := headerSection(line); ok {
			// Lines buffered before the first header get assigned once we
			// know what kind of document this is.
			if current == sectionUnknown && len(unclassified) > 0 {
				flushUnclassified(unclassified, &assignments, &modules, &syllabus)
				unclassified = nil
			}
			current = next
		}

		switch current {
		case sectionAssignments:
			assignments = append(assignments, line)
		case sectionModules:
			modules = append(modules, line)
		case sectionSyllabus:
			syllabus = append(syllabus, line)
		default:
			unclassified = append(unclassified, line)
		}
	}

	if len(unclassified) > 0 {
		flushUnclassified(unclassified, &assignments, &modules, &syllabus)
	}

	meta.AssignmentCount = countObligations(assignments)

	return Result{
		Assignments: c.split(assignments),
		Modules:     c.split(modules),
		Syllabus:    c.split(syllabus),
		Metadata:    meta,
	}
}

func headerSection(line string) (section, bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || len(trimmed) > 80 {
		return sectionUnknown, false
	}
	switch {
	case assignmentsHeaderRe.MatchString(trimmed):
		return sectionAssignments, true
	case modulesHeaderRe.MatchString(trimmed):
		return sectionModules, true
	case syllabusHeaderRe.MatchString(trimmed):
		return sectionSyllabus, true
	}
	return sectionUnknown, false
}

// flushUnclassified routes headerless content to the section its vocabulary
// suggests: obligation lines read like an assignment list, week markers like
// a module page, anything else like syllabus prose.
func flushUnclassified(lines []string, assignments, modules, syllabus *[]string) {
	var obligations, weeks int
	for _, line := range lines {
		if obligationLineRe.MatchString(line) {
			obligations++
		}
		if weekMarkerRe.MatchString(line) {
			weeks++
		}
	}

	switch {
	case obligations > 0:
		*assignments = append(*assignments, lines...)
	case weeks > 0:
		*modules = append(*modules, lines...)
	default:
		*syllabus = append(*syllabus, lines...)
	}
}

// split joins the section lines and cuts them into chunks. Splits prefer
// boundary lines once a chunk has real content; a hard split is forced
// before any chunk exceeds maxChunkSize * hardSplitFactor.
func (c *Chunker) split(lines []string) []string {
	if len(lines) == 0 {
		return nil
	}

	hardMax := int(float64(c.maxChunkSize) * hardSplitFactor)

	var chunks []string
	var current strings.Builder

	flush := func() {
		if current.Len() > 0 {
			chunks = append(chunks, current.String())
			current.Reset()
		}
	}

	for _, line := range lines {
		// Oversized single lines are cut at the hard limit directly.
		if len(line) > hardMax {
			flush()
			for len(line) > hardMax {
				chunks = append(chunks, line[:hardMax])
				line = line[hardMax:]
			}
		}

		sep := 0
		if current.Len() > 0 {
			sep = 1
		}

		switch {
		case current.Len()+sep+len(line) > hardMax:
			flush()
		case current.Len()+sep+len(line) > c.maxChunkSize &&
			current.Len() >= minSplitSize &&
			boundaryRe.MatchString(line):
			flush()
		}

		if current.Len() > 0 {
			current.WriteByte('\n')
		}
		current.WriteString(line)
	}
	flush()

	return chunks
}

func (c *Chunker) scanMetadata(line string, meta *Metadata) {
	if meta.CourseTitle == "" {
		if m := courseLabelRe.FindStringSubmatch(line); m != nil {
			meta.CourseTitle = strings.TrimSpace(m[1])
		} else if code := courseCodeRe.FindString(line); code != "" {
			meta.CourseTitle = code
		}
	}
	if meta.Instructor == "" {
		if m := instructorLabelRe.FindStringSubmatch(line); m != nil {
			meta.Instructor = strings.TrimSpace(m[1])
		} else if name := instructorNameRe.FindString(line); name != "" {
			meta.Instructor = name
		}
	}
}

func countObligations(lines []string) int {
	count := 0
	for _, line := range lines {
		if obligationLineRe.MatchString(line) {
			count++
		}
	}
	return count
}
