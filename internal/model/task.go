package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrInvalidAlertRepeat = errors.New("model: invalid alert repeat")
	ErrAlertStateConflict = errors.New("model: last_alerted_at requires has_alerted")
)

type Task struct {
	ID            string
	Title         string
	Notes         string
	DueAt         time.Time
	Completed     bool
	AlertRepeat   AlertRepeat
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

func (t Task) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return errors.New("model: task id is required")
	}
	if strings.TrimSpace(t.Title) == "" {
		return errors.New("model: task title is required")
	}
	if t.DueAt.IsZero() {
		return errors.New("model: task due_at is required")
	}
	if !t.AlertRepeat.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidAlertRepeat, t.AlertRepeat)
	}
	if t.CreatedAt.IsZero() {
		return errors.New("model: task created_at is required")
	}
	if t.LastAlertedAt != nil && !t.HasAlerted {
		return ErrAlertStateConflict
	}
	if t.Completed && t.CompletedAt == nil {
		return errors.New("model: completed_at is required when task is completed")
	}
	if !t.Completed && t.CompletedAt != nil {
		return errors.New("model: completed_at must be nil when task is not completed")
	}
	return nil
}

// TriggerAt is the instant the task's alert becomes due. Tasks carry no
// offset, so this is the due time itself.
func (t Task) TriggerAt() time.Time {
	return t.DueAt
}
