package storage

import (
	"context"
	"errors"
	"time"
)

var ErrNotFound = errors.New("storage: not found")

type Repository interface {
	CreateTask(ctx context.Context, in Task) error
	GetTask(ctx context.Context, id string) (Task, error)
	UpdateTask(ctx context.Context, in Task) error
	DeleteTask(ctx context.Context, id string) error
	ListTasks(ctx context.Context, filter TaskListFilter) ([]Task, error)
	ClearCompletedTasks(ctx context.Context) (int64, error)

	CreateEvent(ctx context.Context, in CalendarEvent) error
	GetEvent(ctx context.Context, id string) (CalendarEvent, error)
	UpdateEvent(ctx context.Context, in CalendarEvent) error
	DeleteEvent(ctx context.Context, id string) error
	ListEvents(ctx context.Context, filter EventListFilter) ([]CalendarEvent, error)

	// MarkTasksAlerted and MarkEventsAlerted patch only alert bookkeeping
	// for the given ids, leaving every other column alone. The alert
	// poller uses these so that its read-evaluate-write cycle cannot
	// clobber a concurrent user edit.
	MarkTasksAlerted(ctx context.Context, ids []string, at time.Time) error
	MarkEventsAlerted(ctx context.Context, ids []string, at time.Time) error
}
