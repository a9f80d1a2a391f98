package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

type CalendarEvent struct {
	ID                 string
	Title              string
	Notes              string
	StartAt            time.Time
	EndAt              time.Time
	AlertOffsetMinutes int
	AlertRepeat        AlertRepeat
	HasAlerted         bool
	LastAlertedAt      *time.Time
	EmailEnabled       bool
	EmailTo            string
	SMSEnabled         bool
	SMSTo              string
	AlarmSound         string
	CreatedAt          time.Time
}

func (e CalendarEvent) Validate() error {
	if strings.TrimSpace(e.ID) == "" {
		return errors.New("model: event id is required")
	}
	if strings.TrimSpace(e.Title) == "" {
		return errors.New("model: event title is required")
	}
	if e.StartAt.IsZero() {
		return errors.New("model: event start_at is required")
	}
	if e.EndAt.IsZero() {
		return errors.New("model: event end_at is required")
	}
	if e.EndAt.Before(e.StartAt) {
		return errors.New("model: event end_at must not precede start_at")
	}
	if e.AlertOffsetMinutes < 0 {
		return errors.New("model: event alert offset must not be negative")
	}
	if !e.AlertRepeat.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidAlertRepeat, e.AlertRepeat)
	}
	if e.CreatedAt.IsZero() {
		return errors.New("model: event created_at is required")
	}
	if e.LastAlertedAt != nil && !e.HasAlerted {
		return ErrAlertStateConflict
	}
	return nil
}

// TriggerAt is the instant the event's alert becomes due: the start time
// minus the alert offset.
func (e CalendarEvent) TriggerAt() time.Time {
	return e.StartAt.Add(-time.Duration(e.AlertOffsetMinutes) * time.Minute)
}
