package chunker

// DefaultMaxChunkSize is sized so the vast majority of real documents
// produce exactly one chunk per section; splitting is the exception path.
const DefaultMaxChunkSize = 50000

// minSplitSize prevents pathologically tiny chunks: a boundary split is
// only taken once the accumulated chunk exceeds this many characters.
const minSplitSize = 1000

// hardSplitFactor bounds every chunk at maxChunkSize * 1.2; a split is
// forced there even with no boundary available, guaranteeing termination.
const hardSplitFactor = 1.2

// section is the state of the line scanner.
type section int

const (
	sectionUnknown section = iota
	sectionAssignments
	sectionModules
	sectionSyllabus
)

// Metadata is the best-effort document summary gathered while scanning.
type Metadata struct {
	CourseTitle     string
	Instructor      string
	AssignmentCount int
}

// Result maps each logical section to its ordered chunks. Chunks are
// transient: they exist for one orchestration call and are never persisted.
type Result struct {
	Assignments []string
	Modules     []string
	Syllabus    []string
	Metadata    Metadata
}

// Chunks returns all section chunks in a stable order.
func (r Result) Chunks() []string {
	out := make([]string, 0, len(r.Assignments)+len(r.Modules)+len(r.Syllabus))
	out = append(out, r.Assignments...)
	out = append(out, r.Modules...)
	out = append(out, r.Syllabus...)
	return out
}
