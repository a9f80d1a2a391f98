package storage

import (
	"time"

	"daydash/internal/model"
)

type Task struct {
	ID            string
	Title         string
	Notes         string
	DueAt         time.Time
	Completed     bool
	AlertRepeat   string
	HasAlerted    bool
	LastAlertedAt *time.Time
	EmailEnabled  bool
	EmailTo       string
	SMSEnabled    bool
	SMSTo         string
	AlarmSound    string
	CreatedAt     time.Time
	CompletedAt   *time.Time
}

type CalendarEvent struct {
	ID                 string
	Title              string
	Notes              string
	StartAt            time.Time
	EndAt              time.Time
	AlertOffsetMinutes int
	AlertRepeat        string
	HasAlerted         bool
	LastAlertedAt      *time.Time
	EmailEnabled       bool
	EmailTo            string
	SMSEnabled         bool
	SMSTo              string
	AlarmSound         string
	CreatedAt          time.Time
}

type TaskListFilter struct {
	Completed *bool
	Limit     int
	Offset    int
}

type EventListFilter struct {
	// From/To bound events whose [StartAt, EndAt] overlaps the window.
	// Zero values leave that side unbounded.
	From   time.Time
	To     time.Time
	Limit  int
	Offset int
}

func TaskFromModel(m model.Task) Task {
	return Task{
		ID:            m.ID,
		Title:         m.Title,
		Notes:         m.Notes,
		DueAt:         m.DueAt,
		Completed:     m.Completed,
		AlertRepeat:   string(m.AlertRepeat),
		HasAlerted:    m.HasAlerted,
		LastAlertedAt: m.LastAlertedAt,
		EmailEnabled:  m.EmailEnabled,
		EmailTo:       m.EmailTo,
		SMSEnabled:    m.SMSEnabled,
		SMSTo:         m.SMSTo,
		AlarmSound:    m.AlarmSound,
		CreatedAt:     m.CreatedAt,
		CompletedAt:   m.CompletedAt,
	}
}

func (t Task) ToModel() model.Task {
	return model.Task{
		ID:            t.ID,
		Title:         t.Title,
		Notes:         t.Notes,
		DueAt:         t.DueAt,
		Completed:     t.Completed,
		AlertRepeat:   model.AlertRepeat(t.AlertRepeat),
		HasAlerted:    t.HasAlerted,
		LastAlertedAt: t.LastAlertedAt,
		EmailEnabled:  t.EmailEnabled,
		EmailTo:       t.EmailTo,
		SMSEnabled:    t.SMSEnabled,
		SMSTo:         t.SMSTo,
		AlarmSound:    t.AlarmSound,
		CreatedAt:     t.CreatedAt,
		CompletedAt:   t.CompletedAt,
	}
}

func EventFromModel(m model.CalendarEvent) CalendarEvent {
	return CalendarEvent{
		ID:                 m.ID,
		Title:              m.Title,
		Notes:              m.Notes,
		StartAt:            m.StartAt,
		EndAt:              m.EndAt,
		AlertOffsetMinutes: m.AlertOffsetMinutes,
		AlertRepeat:        string(m.AlertRepeat),
		HasAlerted:         m.HasAlerted,
		LastAlertedAt:      m.LastAlertedAt,
		EmailEnabled:       m.EmailEnabled,
		EmailTo:            m.EmailTo,
		SMSEnabled:         m.SMSEnabled,
		SMSTo:              m.SMSTo,
		AlarmSound:         m.AlarmSound,
		CreatedAt:          m.CreatedAt,
	}
}

func (e CalendarEvent) ToModel() model.CalendarEvent {
	return model.CalendarEvent{
		ID:                 e.ID,
		Title:              e.Title,
		Notes:              e.Notes,
		StartAt:            e.StartAt,
		EndAt:              e.EndAt,
		AlertOffsetMinutes: e.AlertOffsetMinutes,
		AlertRepeat:        model.AlertRepeat(e.AlertRepeat),
		HasAlerted:         e.HasAlerted,
		LastAlertedAt:      e.LastAlertedAt,
		EmailEnabled:       e.EmailEnabled,
		EmailTo:            e.EmailTo,
		SMSEnabled:         e.SMSEnabled,
		SMSTo:              e.SMSTo,
		AlarmSound:         e.AlarmSound,
		CreatedAt:          e.CreatedAt,
	}
}
