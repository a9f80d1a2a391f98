package model

import (
	"time"

	"github.com/google/uuid"
)

// PromoteTask builds a CalendarEvent from a task placed on a calendar slot.
// The new event is created silent: alerting is permanently disabled so the
// imported record never re-fires for something the task already covered.
func PromoteTask(t Task, start, end, now time.Time) CalendarEvent {
	return CalendarEvent{
		ID:          uuid.NewString(),
		Title:       t.Title,
		Notes:       t.Notes,
		StartAt:     start,
		EndAt:       end,
		AlertRepeat: RepeatOnce,
		HasAlerted:  true,
		CreatedAt:   now,
	}
}

// DemoteEvent builds a Task from a calendar event pulled back onto the task
// list. Alerting is forced off the same way PromoteTask does it.
func DemoteEvent(e CalendarEvent, due, now time.Time) Task {
	return Task{
		ID:          uuid.NewString(),
		Title:       e.Title,
		Notes:       e.Notes,
		DueAt:       due,
		AlertRepeat: RepeatOnce,
		HasAlerted:  true,
		CreatedAt:   now,
	}
}
