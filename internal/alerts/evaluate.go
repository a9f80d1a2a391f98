package alerts

import (
	"time"

	"daydash/internal/model"
)

// StaleEventWindow bounds how long past its end time an event keeps
// re-alerting. Without the cutoff a repeating alert on an old event would
// resurrect forever.
const StaleEventWindow = 2 * time.Hour

// EvaluateTasks returns the IDs of tasks whose alert is due at now, in
// collection order. Pure; the caller decides what actually fires.
func EvaluateTasks(tasks []model.Task, now time.Time) []string {
	ids := make([]string, 0)
	for _, t := range tasks {
		if taskEligible(t, now) {
			ids = append(ids, t.ID)
		}
	}
	return ids
}

// EvaluateEvents returns the IDs of calendar events whose alert is due at
// now, in collection order.
func EvaluateEvents(events []model.CalendarEvent, now time.Time) []string {
	ids := make([]string, 0)
	for _, e := range events {
		if eventEligible(e, now) {
			ids = append(ids, e.ID)
		}
	}
	return ids
}

func taskEligible(t model.Task, now time.Time) bool {
	if t.Completed {
		return false
	}
	if t.DueAt.After(now) {
		return false
	}
	return repeatDue(t.AlertRepeat, t.HasAlerted, t.LastAlertedAt, now)
}

func eventEligible(e model.CalendarEvent, now time.Time) bool {
	if now.Before(e.TriggerAt()) {
		return false
	}
	if now.Sub(e.EndAt) >= StaleEventWindow {
		return false
	}
	return repeatDue(e.AlertRepeat, e.HasAlerted, e.LastAlertedAt, now)
}

// repeatDue gates re-firing. A one-shot alert fires only while it has never
// fired. A repeating alert fires on first contact, and again once its
// cadence has elapsed since the last fire; a missing last-fired timestamp
// counts as never fired rather than as bad input.
func repeatDue(repeat model.AlertRepeat, hasAlerted bool, lastAlertedAt *time.Time, now time.Time) bool {
	interval, repeating := repeat.Interval()
	if !repeating {
		return !hasAlerted
	}
	if !hasAlerted || lastAlertedAt == nil {
		return true
	}
	return now.Sub(*lastAlertedAt) >= interval
}
