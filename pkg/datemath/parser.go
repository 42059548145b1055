package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Parser locates calendar dates and day-of-week references embedded in prose
// and converts relative date strings to absolute time.Time values.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "America/New_York"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

var (
	// 10/25 or 10/25/2026. The dash form requires a year so chapter and
	// page ranges like "3-5" never read as dates.
	slashDateRe = regexp.MustCompile(`\b(\d{1,2})/(\d{1,2})(?:/(\d{2,4}))?\b`)
	dashDateRe  = regexp.MustCompile(`\b(\d{1,2})-(\d{1,2})-(\d{2,4})\b`)

	monthNameRe = regexp.MustCompile(`(?i)\b(jan(?:uary)?|feb(?:ruary)?|mar(?:ch)?|apr(?:il)?|may|june?|july?|aug(?:ust)?|sept?(?:ember)?|oct(?:ober)?|nov(?:ember)?|dec(?:ember)?)\.?\s+(\d{1,2})(?:st|nd|rd|th)?(?:,?\s+(\d{4}))?\b`)

	relativeRe = regexp.MustCompile(`(?i)\b(today|tomorrow|next\s+(?:monday|tuesday|wednesday|thursday|friday|saturday|sunday)|in\s+(?:\d+|one|two|three|four|five|six|seven|eight|nine|ten|eleven|twelve)\s+(?:days?|weeks?|months?))\b`)

	weekdayRe = regexp.MustCompile(`(?i)\b(monday|tuesday|wednesday|thursday|friday|saturday|sunday)s?\b`)

	clockRe = regexp.MustCompile(`(?i)(?:\bat\s+|@\s*)(\d{1,2})(?::(\d{2}))?\s*(am|pm)?\b`)
)

var months = map[string]time.Month{
	"jan": time.January, "feb": time.February, "mar": time.March,
	"apr": time.April, "may": time.May, "jun": time.June,
	"jul": time.July, "aug": time.August, "sep": time.September,
	"oct": time.October, "nov": time.November, "dec": time.December,
}

var weekdays = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

var wordNumbers = map[string]int{
	"one": 1, "two": 2, "three": 3, "four": 4, "five": 5, "six": 6,
	"seven": 7, "eight": 8, "nine": 9, "ten": 10, "eleven": 11, "twelve": 12,
}

// ParseWeekday resolves a weekday name ("friday", "Fridays") to time.Weekday.
func ParseWeekday(s string) (time.Weekday, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.TrimSuffix(s, "s")
	d, ok := weekdays[s]
	return d, ok
}

// Extract locates the single best-guess calendar date embedded in text,
// relative to base. Precedence: explicit numeric dates, then written
// month-day dates, then relative phrases, then a bare weekday name.
// When the year is absent and the resolved date is already past, it rolls
// forward one year. Returns false when no date is found; callers decide
// what that means.
func (p *Parser) Extract(text string, base time.Time) (Match, bool) {
	base = base.In(p.location)

	if m := slashDateRe.FindStringSubmatch(text); m != nil {
		if match, ok := p.resolveNumeric(m, base, text); ok {
			return match, true
		}
	}
	if m := dashDateRe.FindStringSubmatch(text); m != nil {
		if match, ok := p.resolveNumeric(m, base, text); ok {
			return match, true
		}
	}

	if m := monthNameRe.FindStringSubmatch(text); m != nil {
		month := months[strings.ToLower(m[1])[:3]]
		day, _ := strconv.Atoi(m[2])
		if day >= 1 && day <= 31 {
			year := base.Year()
			explicitYear := m[3] != ""
			if explicitYear {
				year, _ = strconv.Atoi(m[3])
			}
			t := time.Date(year, month, day, 0, 0, 0, 0, p.location)
			if !explicitYear && t.Before(p.startOfDay(base)) {
				t = t.AddDate(1, 0, 0)
			}
			return Match{Time: p.withClock(t, text), Text: m[0]}, true
		}
	}

	if m := relativeRe.FindString(text); m != "" {
		if t, err := p.Parse(m, base); err == nil {
			return Match{Time: p.withClock(t, text), Text: m}, true
		}
	}

	if m := weekdayRe.FindStringSubmatch(text); m != nil {
		if target, ok := ParseWeekday(m[1]); ok {
			days := int(target-base.Weekday()+7) % 7
			if days == 0 {
				days = 7
			}
			t := p.startOfDay(base.AddDate(0, 0, days))
			return Match{Time: p.withClock(t, text), Text: m[0]}, true
		}
	}

	return Match{}, false
}

// resolveNumeric turns a numeric date submatch (month, day, optional year)
// into a Match, rejecting out-of-range components.
func (p *Parser) resolveNumeric(m []string, base time.Time, text string) (Match, bool) {
	month, _ := strconv.Atoi(m[1])
	day, _ := strconv.Atoi(m[2])
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return Match{}, false
	}

	year := base.Year()
	explicitYear := len(m) > 3 && m[3] != ""
	if explicitYear {
		year, _ = strconv.Atoi(m[3])
		if year < 100 {
			year += 2000
		}
	}

	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, p.location)
	if !explicitYear && t.Before(p.startOfDay(base)) {
		t = t.AddDate(1, 0, 0)
	}

	return Match{Time: p.withClock(t, text), Text: m[0]}, true
}

// withClock applies an explicit clock time found in text ("at 11:59pm"),
// or end of day when none is present.
func (p *Parser) withClock(day time.Time, text string) time.Time {
	day = p.startOfDay(day)

	m := clockRe.FindStringSubmatch(text)
	if m == nil {
		return p.EndOfDay(day)
	}

	hour, _ := strconv.Atoi(m[1])
	minute := 0
	if m[2] != "" {
		minute, _ = strconv.Atoi(m[2])
	}
	switch strings.ToLower(m[3]) {
	case "pm":
		if hour < 12 {
			hour += 12
		}
	case "am":
		if hour == 12 {
			hour = 0
		}
	}
	if hour > 23 || minute > 59 {
		return p.EndOfDay(day)
	}

	return day.Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
}

// Parse converts a relative date string to an absolute time.Time.
// The baseTime is used as the reference point (usually time.Now()).
func (p *Parser) Parse(relative string, baseTime time.Time) (time.Time, error) {
	relative = strings.ToLower(strings.TrimSpace(relative))

	switch relative {
	case "today":
		return p.startOfDay(baseTime), nil
	case "tomorrow":
		return p.startOfDay(baseTime.AddDate(0, 0, 1)), nil
	case "yesterday":
		return p.startOfDay(baseTime.AddDate(0, 0, -1)), nil
	}

	// Handle "in X days/weeks/months"
	if strings.HasPrefix(relative, "in ") {
		return p.parseInDuration(relative, baseTime)
	}

	// Handle "next <weekday>"
	if strings.HasPrefix(relative, "next ") {
		return p.parseNextWeekday(relative, baseTime)
	}

	return baseTime, fmt.Errorf("unrecognized relative date: %q", relative)
}

// parseInDuration handles patterns like "in 3 days", "in two weeks", "in 1 month".
func (p *Parser) parseInDuration(relative string, baseTime time.Time) (time.Time, error) {
	re := regexp.MustCompile(`in (\S+) (day|days|week|weeks|month|months)`)
	matches := re.FindStringSubmatch(relative)
	if len(matches) != 3 {
		return baseTime, fmt.Errorf("invalid duration format: %q", relative)
	}

	amount, err := strconv.Atoi(matches[1])
	if err != nil {
		var ok bool
		amount, ok = wordNumbers[matches[1]]
		if !ok {
			return baseTime, fmt.Errorf("invalid duration amount: %q", matches[1])
		}
	}
	unit := matches[2]

	switch {
	case strings.HasPrefix(unit, "day"):
		return p.startOfDay(baseTime.AddDate(0, 0, amount)), nil
	case strings.HasPrefix(unit, "week"):
		return p.startOfDay(baseTime.AddDate(0, 0, amount*7)), nil
	case strings.HasPrefix(unit, "month"):
		return p.startOfDay(baseTime.AddDate(0, amount, 0)), nil
	}

	return baseTime, fmt.Errorf("unknown time unit: %q", unit)
}

// parseNextWeekday handles patterns like "next monday", "next friday".
func (p *Parser) parseNextWeekday(relative string, baseTime time.Time) (time.Time, error) {
	dayName := strings.TrimPrefix(relative, "next ")
	targetWeekday, ok := weekdays[dayName]
	if !ok {
		return baseTime, fmt.Errorf("unknown weekday: %q", dayName)
	}

	currentWeekday := baseTime.Weekday()
	daysUntil := int(targetWeekday - currentWeekday)
	if daysUntil <= 0 {
		daysUntil += 7
	}

	return p.startOfDay(baseTime.AddDate(0, 0, daysUntil)), nil
}

// startOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) startOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

// EndOfDay returns 23:59:59 at the end of the given start-of-day time.
func (p *Parser) EndOfDay(startOfDay time.Time) time.Time {
	return startOfDay.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
}

// Location returns the parser's timezone.
func (p *Parser) Location() *time.Location {
	return p.location
}
