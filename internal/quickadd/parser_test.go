package quickadd

import (
	"testing"
	"time"
)

// 2026-03-06 is a Friday.
var testClock = func() time.Time {
	return time.Date(2026, 3, 6, 10, 0, 0, 0, time.UTC)
}

var testBase = time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC)

func newTestParser() *Parser {
	return NewWithClock(testClock)
}

func TestParsePlainTextKeepsBase(t *testing.T) {
	p := newTestParser()
	res := p.Parse("Buy milk", testBase)
	if res.Title != "Buy milk" {
		t.Fatalf("title: got %q", res.Title)
	}
	if !res.Date.Equal(testBase) {
		t.Fatalf("date: got %v, want base %v", res.Date, testBase)
	}
	if res.HasDate || res.HasTime {
		t.Fatalf("flags: got hasDate=%v hasTime=%v", res.HasDate, res.HasTime)
	}
}

func TestParseTomorrowWithTime(t *testing.T) {
	p := newTestParser()
	res := p.Parse("Grade papers tomorrow 5pm", testBase)
	if res.Title != "Grade papers" {
		t.Fatalf("title: got %q", res.Title)
	}
	want := time.Date(2026, 3, 7, 17, 0, 0, 0, time.UTC)
	if !res.Date.Equal(want) {
		t.Fatalf("date: got %v, want %v", res.Date, want)
	}
	if !res.HasDate || !res.HasTime {
		t.Fatalf("flags: got hasDate=%v hasTime=%v", res.HasDate, res.HasTime)
	}
}

func TestParseTmrwAndToday(t *testing.T) {
	p := newTestParser()

	res := p.Parse("submit report tmrw", testBase)
	if !res.HasDate || res.Date.Day() != 7 {
		t.Fatalf("tmrw: got %v hasDate=%v", res.Date, res.HasDate)
	}
	if res.Title != "submit report" {
		t.Fatalf("tmrw title: got %q", res.Title)
	}

	res = p.Parse("water plants today", testBase)
	if !res.HasDate || res.Date.Day() != 6 {
		t.Fatalf("today: got %v hasDate=%v", res.Date, res.HasDate)
	}
	// Time of day still comes from the base.
	if res.Date.Hour() != 9 || res.Date.Minute() != 30 {
		t.Fatalf("today clock: got %v", res.Date)
	}
}

func TestParseAfternoonHeuristic(t *testing.T) {
	p := newTestParser()

	res := p.Parse("review PRs at 2", testBase)
	if !res.HasTime || res.Date.Hour() != 14 {
		t.Fatalf("at 2: got hour %d hasTime=%v", res.Date.Hour(), res.HasTime)
	}
	if res.Title != "review PRs" {
		t.Fatalf("at 2 title: got %q", res.Title)
	}

	res = p.Parse("standup at 9", testBase)
	if !res.HasTime || res.Date.Hour() != 9 {
		t.Fatalf("at 9: got hour %d hasTime=%v", res.Date.Hour(), res.HasTime)
	}
}

func TestParseMeridianRules(t *testing.T) {
	p := newTestParser()

	res := p.Parse("lunch 12pm", testBase)
	if res.Date.Hour() != 12 {
		t.Fatalf("12pm: got hour %d", res.Date.Hour())
	}

	res = p.Parse("redeye 12am", testBase)
	if res.Date.Hour() != 0 {
		t.Fatalf("12am: got hour %d", res.Date.Hour())
	}

	res = p.Parse("checkin at 8:45pm", testBase)
	if res.Date.Hour() != 20 || res.Date.Minute() != 45 {
		t.Fatalf("8:45pm: got %02d:%02d", res.Date.Hour(), res.Date.Minute())
	}
}

// The 12-hour branch is tried first, so HH:MM inputs resolve through it:
// a small leading hour with no meridian still gets the afternoon bump.
func TestParseTimeBranchPrecedence(t *testing.T) {
	p := newTestParser()

	res := p.Parse("retro 17:30", testBase)
	if res.Date.Hour() != 17 || res.Date.Minute() != 30 {
		t.Fatalf("17:30: got %02d:%02d", res.Date.Hour(), res.Date.Minute())
	}

	res = p.Parse("sync 02:15", testBase)
	if res.Date.Hour() != 14 || res.Date.Minute() != 15 {
		t.Fatalf("02:15: got %02d:%02d", res.Date.Hour(), res.Date.Minute())
	}
}

func TestParseOutOfRangeHourIgnored(t *testing.T) {
	p := newTestParser()
	res := p.Parse("wake 99:10", testBase)
	if res.HasTime {
		t.Fatal("expected no time for out-of-range hour")
	}
	if res.Title != "wake 99:10" {
		t.Fatalf("title: got %q", res.Title)
	}
	if !res.Date.Equal(testBase) {
		t.Fatalf("date: got %v, want base", res.Date)
	}
}

func TestParseWeekdayRollsForward(t *testing.T) {
	p := newTestParser()

	// Friday asking for Monday lands on the next Monday, March 9.
	res := p.Parse("plan sprint Monday", testBase)
	if !res.HasDate {
		t.Fatal("expected hasDate")
	}
	if res.Date.Weekday() != time.Monday || res.Date.Day() != 9 {
		t.Fatalf("monday: got %v", res.Date)
	}
	if res.Title != "plan sprint" {
		t.Fatalf("title: got %q", res.Title)
	}

	// Same weekday as today projects a full week out.
	res = p.Parse("gym friday", testBase)
	if res.Date.Day() != 13 {
		t.Fatalf("friday from friday: got %v", res.Date)
	}

	// "last" suppresses the roll-forward.
	res = p.Parse("expenses from last Monday", testBase)
	if res.Date.Weekday() != time.Monday || res.Date.Day() != 2 {
		t.Fatalf("last monday: got %v", res.Date)
	}
}

func TestParseWeekdayOnPrefix(t *testing.T) {
	p := newTestParser()
	res := p.Parse("dentist on wed", testBase)
	if !res.HasDate || res.Date.Weekday() != time.Wednesday || res.Date.Day() != 11 {
		t.Fatalf("on wed: got %v hasDate=%v", res.Date, res.HasDate)
	}
	if res.Title != "dentist" {
		t.Fatalf("title: got %q", res.Title)
	}
}

func TestParseBulletMarkers(t *testing.T) {
	p := newTestParser()

	cases := map[string]string{
		"1. buy stamps":   "buy stamps",
		"2) return books": "return books",
		"a) call plumber": "call plumber",
		"- water garden":  "water garden",
		"* fix faucet":    "fix faucet",
	}
	for input, want := range cases {
		res := p.Parse(input, testBase)
		if res.Title != want {
			t.Fatalf("%q: got title %q, want %q", input, res.Title, want)
		}
	}
}

func TestParseEmptyTitleFallsBackToInput(t *testing.T) {
	p := newTestParser()
	res := p.Parse("tomorrow 5pm", testBase)
	if res.Title != "tomorrow 5pm" {
		t.Fatalf("title: got %q, want original input", res.Title)
	}
	if !res.HasDate || !res.HasTime {
		t.Fatal("date and time should still be extracted")
	}
}

func TestParseIdempotentOnCleanTitle(t *testing.T) {
	p := newTestParser()
	first := p.Parse("Grade papers tomorrow 5pm", testBase)
	second := p.Parse(first.Title, testBase)
	if second.Title != first.Title {
		t.Fatalf("title drifted: %q -> %q", first.Title, second.Title)
	}
	if second.HasDate || second.HasTime {
		t.Fatalf("clean title re-parse flagged: hasDate=%v hasTime=%v", second.HasDate, second.HasTime)
	}
	if !second.Date.Equal(testBase) {
		t.Fatalf("clean title re-parse moved date: %v", second.Date)
	}
}

func TestParseLines(t *testing.T) {
	p := newTestParser()
	input := "1. buy stamps\n\n2. dentist tomorrow\n   \n3. standup at 9\n"
	results := p.ParseLines(input, testBase)
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	if results[0].Title != "buy stamps" || results[0].HasDate || results[0].HasTime {
		t.Fatalf("line 1: %+v", results[0])
	}
	if results[1].Title != "dentist" || !results[1].HasDate {
		t.Fatalf("line 2: %+v", results[1])
	}
	if results[2].Title != "standup" || !results[2].HasTime || results[2].Date.Hour() != 9 {
		t.Fatalf("line 3: %+v", results[2])
	}
	// Lines without a date inherit the shared base.
	if !results[0].Date.Equal(testBase) {
		t.Fatalf("line 1 date: got %v, want base", results[0].Date)
	}
}
