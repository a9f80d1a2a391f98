package model

import (
	"errors"
	"testing"
	"time"
)

func TestTaskValidateSuccess(t *testing.T) {
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	task := Task{
		ID:          "task-1",
		Title:       "Grade papers",
		DueAt:       now.Add(2 * time.Hour),
		AlertRepeat: RepeatOnce,
		CreatedAt:   now,
	}
	if err := task.Validate(); err != nil {
		t.Fatalf("expected valid task, got error: %v", err)
	}
}

func TestTaskValidateInvalidRepeat(t *testing.T) {
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	task := Task{
		ID:          "task-1",
		Title:       "Grade papers",
		DueAt:       now,
		AlertRepeat: AlertRepeat("every_7"),
		CreatedAt:   now,
	}
	err := task.Validate()
	if err == nil || !errors.Is(err, ErrInvalidAlertRepeat) {
		t.Fatalf("expected ErrInvalidAlertRepeat, got: %v", err)
	}
}

func TestTaskValidateAlertStateConflict(t *testing.T) {
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	fired := now.Add(-time.Minute)
	task := Task{
		ID:            "task-1",
		Title:         "Grade papers",
		DueAt:         now,
		AlertRepeat:   RepeatEvery3,
		LastAlertedAt: &fired,
		CreatedAt:     now,
	}
	if err := task.Validate(); !errors.Is(err, ErrAlertStateConflict) {
		t.Fatalf("expected ErrAlertStateConflict, got: %v", err)
	}

	task.HasAlerted = true
	if err := task.Validate(); err != nil {
		t.Fatalf("expected valid task once has_alerted is set, got: %v", err)
	}
}

func TestTaskValidateCompletedAtRules(t *testing.T) {
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	task := Task{
		ID:          "task-1",
		Title:       "Grade papers",
		DueAt:       now,
		AlertRepeat: RepeatOnce,
		CreatedAt:   now,
		Completed:   true,
	}
	if err := task.Validate(); err == nil {
		t.Fatal("expected error for completed task without completed_at")
	}

	done := now.Add(time.Hour)
	task.CompletedAt = &done
	if err := task.Validate(); err != nil {
		t.Fatalf("expected valid completed task, got: %v", err)
	}

	task.Completed = false
	if err := task.Validate(); err == nil {
		t.Fatal("expected error for completed_at on open task")
	}
}

func TestAlertRepeatInterval(t *testing.T) {
	if _, ok := RepeatOnce.Interval(); ok {
		t.Fatal("once must not report an interval")
	}
	if d, ok := RepeatEvery3.Interval(); !ok || d != 3*time.Minute {
		t.Fatalf("every_3 interval: got %v ok=%v", d, ok)
	}
	if d, ok := RepeatEvery5.Interval(); !ok || d != 5*time.Minute {
		t.Fatalf("every_5 interval: got %v ok=%v", d, ok)
	}
}
