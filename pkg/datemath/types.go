package datemath

import "time"

// Match is a date located inside free text.
type Match struct {
	// Time is the resolved due time in the parser's timezone. When the text
	// carries no clock time, this is end of day (23:59:59).
	Time time.Time

	// Text is the exact substring that matched, so callers can strip it
	// when deriving titles.
	Text string
}
