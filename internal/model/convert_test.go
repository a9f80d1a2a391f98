package model

import (
	"testing"
	"time"
)

func TestPromoteTaskSilencesAlerts(t *testing.T) {
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	fired := now.Add(-time.Minute)
	task := Task{
		ID:            "task-1",
		Title:         "Grade papers",
		Notes:         "section B first",
		DueAt:         now,
		AlertRepeat:   RepeatEvery3,
		HasAlerted:    true,
		LastAlertedAt: &fired,
		EmailEnabled:  true,
		EmailTo:       "me@example.com",
		SMSEnabled:    true,
		SMSTo:         "+15550100",
		AlarmSound:    SoundBell,
		CreatedAt:     now,
	}

	start := now.Add(24 * time.Hour)
	end := start.Add(time.Hour)
	ev := PromoteTask(task, start, end, now)

	if ev.ID == "" || ev.ID == task.ID {
		t.Fatalf("promoted event must get a fresh id, got %q", ev.ID)
	}
	if ev.Title != task.Title || ev.Notes != task.Notes {
		t.Fatal("title and notes must carry over")
	}
	if !ev.StartAt.Equal(start) || !ev.EndAt.Equal(end) {
		t.Fatal("start/end must come from the calendar slot")
	}
	if !ev.HasAlerted {
		t.Fatal("promoted event must be created with has_alerted true")
	}
	if ev.LastAlertedAt != nil {
		t.Fatal("promoted event must not inherit last_alerted_at")
	}
	if ev.AlertRepeat != RepeatOnce || ev.AlarmSound != "" || ev.EmailEnabled || ev.SMSEnabled {
		t.Fatal("promoted event must have all alert channels off")
	}
	if err := ev.Validate(); err != nil {
		t.Fatalf("promoted event must validate: %v", err)
	}
}

func TestDemoteEventSilencesAlerts(t *testing.T) {
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	ev := validEvent(now)
	ev.EmailEnabled = true
	ev.AlarmSound = SoundChime

	due := now.Add(3 * time.Hour)
	task := DemoteEvent(ev, due, now)

	if task.ID == "" || task.ID == ev.ID {
		t.Fatalf("demoted task must get a fresh id, got %q", task.ID)
	}
	if !task.DueAt.Equal(due) {
		t.Fatalf("due at: got %v, want %v", task.DueAt, due)
	}
	if !task.HasAlerted || task.LastAlertedAt != nil {
		t.Fatal("demoted task must be silent from creation")
	}
	if task.AlertRepeat != RepeatOnce || task.AlarmSound != "" || task.EmailEnabled || task.SMSEnabled {
		t.Fatal("demoted task must have all alert channels off")
	}
	if err := task.Validate(); err != nil {
		t.Fatalf("demoted task must validate: %v", err)
	}
}
