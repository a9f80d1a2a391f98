package storage

import (
	"context"
	"time"

	"daydash/internal/model"
)

// AlertStore adapts the repository to the narrow snapshot-and-patch view
// the alert poller works against.
type AlertStore struct {
	repo Repository
}

func NewAlertStore(repo Repository) *AlertStore {
	return &AlertStore{repo: repo}
}

func (s *AlertStore) ListOpenTasks(ctx context.Context) ([]model.Task, error) {
	open := false
	rows, err := s.repo.ListTasks(ctx, TaskListFilter{Completed: &open})
	if err != nil {
		return nil, err
	}
	out := make([]model.Task, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.ToModel())
	}
	return out, nil
}

func (s *AlertStore) ListLiveEvents(ctx context.Context) ([]model.CalendarEvent, error) {
	rows, err := s.repo.ListEvents(ctx, EventListFilter{})
	if err != nil {
		return nil, err
	}
	out := make([]model.CalendarEvent, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.ToModel())
	}
	return out, nil
}

func (s *AlertStore) MarkTasksAlerted(ctx context.Context, ids []string, at time.Time) error {
	return s.repo.MarkTasksAlerted(ctx, ids, at)
}

func (s *AlertStore) MarkEventsAlerted(ctx context.Context, ids []string, at time.Time) error {
	return s.repo.MarkEventsAlerted(ctx, ids, at)
}
