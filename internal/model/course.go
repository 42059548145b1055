package model

// Course is a known course supplied by the caller, used for course-affinity
// matching. The pipeline never invents courses.
type Course struct {
	ID   string `json:"id"`
	Code string `json:"code"` // e.g. "CS101"
	Name string `json:"name"` // e.g. "Intro to Computer Science"
}
