package classifier

import (
	"strings"

	"coursepilot/internal/model"
)

const minNameWordLength = 4

// MatchCourse associates a line of text with a known course. Precedence:
// exact case-insensitive substring match of a course code first, then any
// word of length >= 4 from a course name. First match wins in list order.
// Returns "" when nothing matches; the caller applies its own default.
func MatchCourse(text string, courses []model.Course) string {
	lower := strings.ToLower(text)

	for _, course := range courses {
		if course.Code != "" && strings.Contains(lower, strings.ToLower(course.Code)) {
			return course.ID
		}
	}

	for _, course := range courses {
		for _, word := range strings.Fields(strings.ToLower(course.Name)) {
			word = strings.Trim(word, ".,:;()")
			if len(word) < minNameWordLength {
				continue
			}
			if strings.Contains(lower, word) {
				return course.ID
			}
		}
	}

	return ""
}
