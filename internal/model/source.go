package model

// SourceKind declares what kind of text a RawSource carries. The kind is
// caller-declared; the pipeline never sniffs file formats.
type SourceKind string

const (
	SourceSyllabus              SourceKind = "syllabus"
	SourceAnnouncement          SourceKind = "announcement"
	SourceDiscussionPost        SourceKind = "discussion-post"
	SourceModuleDescription     SourceKind = "module-description"
	SourceAssignmentDescription SourceKind = "assignment-description"
	SourceCalendarFeed          SourceKind = "calendar-feed"
)

// ParseSourceKind validates a caller-supplied kind string.
func ParseSourceKind(s string) (SourceKind, bool) {
	switch SourceKind(s) {
	case SourceSyllabus, SourceAnnouncement, SourceDiscussionPost,
		SourceModuleDescription, SourceAssignmentDescription, SourceCalendarFeed:
		return SourceKind(s), true
	default:
		return "", false
	}
}

// RawSource is an opaque text blob plus its declared kind. Immutable once
// ingested; the pipeline only reads it.
type RawSource struct {
	Kind SourceKind `json:"kind"`
	Text string     `json:"text"`
}
