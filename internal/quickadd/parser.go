package quickadd

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Result is the outcome of parsing one free-text capture line. Date always
// carries a usable value: whatever the text did not specify is inherited
// from the base date handed to Parse.
type Result struct {
	Title   string
	Date    time.Time
	HasDate bool
	HasTime bool
}

// Parser extracts a cleaned title and a best-guess date/time from loosely
// formatted capture text ("Grade papers tomorrow 5pm"). The clock is
// injectable because "today", "tomorrow" and weekday names resolve against
// the real current day, not the caller's base date.
type Parser struct {
	now func() time.Time
}

func New() *Parser {
	return &Parser{now: time.Now}
}

func NewWithClock(now func() time.Time) *Parser {
	if now == nil {
		now = time.Now
	}
	return &Parser{now: now}
}

var (
	bulletRe   = regexp.MustCompile(`^(?:\d+[.)]|[a-z][.)]|[-*])\s+`)
	tomorrowRe = regexp.MustCompile(`(?i)\b(?:tomorrow|tmrw)\b`)
	todayRe    = regexp.MustCompile(`(?i)\btoday\b`)
	weekdayRe  = regexp.MustCompile(`(?i)\b(?:on )?(sun|mon|tue|wed|thu|fri|sat)(?:day|s|es)?`)
	lastRe     = regexp.MustCompile(`(?i)\blast\b`)
	// The 12-hour branch is listed first and owns any match it can reach;
	// the trailing HH:MM branch is distinguished by groups 4 and 5.
	timeRe      = regexp.MustCompile(`(?i)\b(?:(?:at )?(\d{1,2})(?::(\d{2}))?\s?(am|pm|a\.m\.|p\.m\.)?|(\d{1,2}):(\d{2}))`)
	spaceRe     = regexp.MustCompile(`\s+`)
	leadPunctRe = regexp.MustCompile(`^[-*,.] ?`)
)

var weekdayIndex = map[string]int{
	"sun": 0, "mon": 1, "tue": 2, "wed": 3, "thu": 4, "fri": 5, "sat": 6,
}

// Parse runs the ordered match-and-strip passes over a copy of input.
// It never fails: unrecognized fragments simply leave the corresponding
// field at its base-date default.
func (p *Parser) Parse(input string, base time.Time) Result {
	text := input
	date := base
	hasDate := false
	hasTime := false
	today := p.now()

	text = bulletRe.ReplaceAllString(text, "")

	if loc := tomorrowRe.FindStringIndex(text); loc != nil {
		date = withDate(date, today.AddDate(0, 0, 1))
		hasDate = true
		text = cut(text, loc[0], loc[1])
	} else if loc := todayRe.FindStringIndex(text); loc != nil {
		date = withDate(date, today)
		hasDate = true
		text = cut(text, loc[0], loc[1])
	}

	if m := weekdayRe.FindStringSubmatchIndex(text); m != nil {
		stem := strings.ToLower(text[m[2]:m[3]])
		if target, ok := weekdayIndex[stem]; ok {
			daysToAdd := target - int(today.Weekday())
			// A same-weekday or earlier match rolls forward to next week
			// unless the text says "last".
			if daysToAdd <= 0 && !lastRe.MatchString(text) {
				daysToAdd += 7
			}
			date = withDate(date, today.AddDate(0, 0, daysToAdd))
			hasDate = true
		}
		text = cut(text, m[0], m[1])
	}

	if m := timeRe.FindStringSubmatchIndex(text); m != nil {
		if hour, minute, ok := resolveClock(text, m); ok {
			date = withClock(date, hour, minute)
			hasTime = true
			text = cut(text, m[0], m[1])
		}
	}

	title := strings.TrimSpace(spaceRe.ReplaceAllString(text, " "))
	title = leadPunctRe.ReplaceAllString(title, "")
	if title == "" {
		title = input
	}

	return Result{Title: title, Date: date, HasDate: hasDate, HasTime: hasTime}
}

// ParseLines feeds each non-blank line of a bulk capture through Parse,
// sharing one base date across the batch.
func (p *Parser) ParseLines(input string, base time.Time) []Result {
	lines := strings.Split(input, "\n")
	out := make([]Result, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		out = append(out, p.Parse(line, base))
	}
	return out
}

// resolveClock turns the time-regex submatches into an hour and minute.
// Groups 4/5 populated means the 24-hour branch matched and the values are
// used directly; otherwise the 12-hour branch applies meridian rules and
// the bare-small-number afternoon heuristic. Hours outside [0,24) are
// rejected and the pass contributes nothing.
func resolveClock(text string, m []int) (hour, minute int, ok bool) {
	group := func(i int) string {
		lo, hi := m[2*i], m[2*i+1]
		if lo < 0 {
			return ""
		}
		return text[lo:hi]
	}

	if raw := group(4); raw != "" {
		hour, _ = strconv.Atoi(raw)
		minute, _ = strconv.Atoi(group(5))
		if hour < 0 || hour >= 24 {
			return 0, 0, false
		}
		return hour, minute, true
	}

	hour, err := strconv.Atoi(group(1))
	if err != nil {
		return 0, 0, false
	}
	if raw := group(2); raw != "" {
		minute, _ = strconv.Atoi(raw)
	}

	meridian := strings.ToLower(strings.ReplaceAll(group(3), ".", ""))
	switch {
	case meridian == "pm" && hour < 12:
		hour += 12
	case meridian == "am" && hour == 12:
		hour = 0
	case meridian == "" && hour < 7:
		// Bare small numbers mean afternoon: "at 2" is 14:00, "at 9" stays.
		hour += 12
	}
	if hour < 0 || hour >= 24 {
		return 0, 0, false
	}
	return hour, minute, true
}

func cut(s string, lo, hi int) string {
	return s[:lo] + s[hi:]
}

func withDate(t, day time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

func withClock(t time.Time, hour, minute int) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), hour, minute, 0, 0, t.Location())
}
