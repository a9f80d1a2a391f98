package update

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"daydash/internal/alerts"
	"daydash/internal/draft"
	"daydash/internal/model"
	"daydash/internal/storage"
)

const repoTimeout = 5 * time.Second

func repoContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), repoTimeout)
}

func loadTasksCmd(repo storage.Repository) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := repoContext()
		defer cancel()

		rows, err := repo.ListTasks(ctx, storage.TaskListFilter{})
		if err != nil {
			return AppErrorMsg{Err: fmt.Errorf("load tasks: %w", err)}
		}
		tasks := make([]model.Task, len(rows))
		for i, row := range rows {
			tasks[i] = row.ToModel()
		}
		return TasksLoadedMsg{Tasks: tasks}
	}
}

func loadEventsCmd(repo storage.Repository) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := repoContext()
		defer cancel()

		rows, err := repo.ListEvents(ctx, storage.EventListFilter{})
		if err != nil {
			return AppErrorMsg{Err: fmt.Errorf("load events: %w", err)}
		}
		events := make([]model.CalendarEvent, len(rows))
		for i, row := range rows {
			events[i] = row.ToModel()
		}
		return EventsLoadedMsg{Events: events}
	}
}

func waitForAlertCmd(ch <-chan alerts.Fire) tea.Cmd {
	return func() tea.Msg {
		fire, ok := <-ch
		return AlertFiredMsg{Fire: fire, OK: ok}
	}
}

// createTask parses quick-add text and persists the resulting task.
func (m Model) createTask(input string) (model.Task, error) {
	parsed := m.parser.Parse(input, m.now())

	task := model.Task{
		ID:          uuid.NewString(),
		Title:       parsed.Title,
		DueAt:       parsed.Date,
		AlertRepeat: model.RepeatOnce,
		AlarmSound:  model.SoundChime,
		CreatedAt:   m.now(),
	}
	if err := task.Validate(); err != nil {
		return model.Task{}, err
	}

	ctx, cancel := repoContext()
	defer cancel()
	if err := m.repo.CreateTask(ctx, storage.TaskFromModel(task)); err != nil {
		return model.Task{}, fmt.Errorf("create task: %w", err)
	}
	return task, nil
}

// createTasksBulk parses multi-line capture text, one task per line.
func (m Model) createTasksBulk(input string) (int, error) {
	results := m.parser.ParseLines(input, m.now())
	created := 0

	ctx, cancel := repoContext()
	defer cancel()

	for _, parsed := range results {
		task := model.Task{
			ID:          uuid.NewString(),
			Title:       parsed.Title,
			DueAt:       parsed.Date,
			AlertRepeat: model.RepeatOnce,
			AlarmSound:  model.SoundChime,
			CreatedAt:   m.now(),
		}
		if err := m.repo.CreateTask(ctx, storage.TaskFromModel(task)); err != nil {
			return created, fmt.Errorf("create task %q: %w", task.Title, err)
		}
		created++
	}
	return created, nil
}

func (m Model) completeTask(id string) error {
	ctx, cancel := repoContext()
	defer cancel()

	row, err := m.repo.GetTask(ctx, id)
	if err != nil {
		return err
	}
	now := m.now()
	row.Completed = true
	row.CompletedAt = &now
	return m.repo.UpdateTask(ctx, row)
}

func (m Model) deleteEntry(kind, id string) error {
	ctx, cancel := repoContext()
	defer cancel()

	if kind == "event" {
		return m.repo.DeleteEvent(ctx, id)
	}
	return m.repo.DeleteTask(ctx, id)
}

// promoteTask converts a task to a calendar event without re-alerting.
func (m Model) promoteTask(id string) (model.CalendarEvent, error) {
	ctx, cancel := repoContext()
	defer cancel()

	row, err := m.repo.GetTask(ctx, id)
	if err != nil {
		return model.CalendarEvent{}, err
	}
	task := row.ToModel()

	start := task.DueAt
	event := model.PromoteTask(task, start, start.Add(time.Hour), m.now())
	if err := m.repo.CreateEvent(ctx, storage.EventFromModel(event)); err != nil {
		return model.CalendarEvent{}, fmt.Errorf("create event: %w", err)
	}
	if err := m.repo.DeleteTask(ctx, id); err != nil {
		return model.CalendarEvent{}, fmt.Errorf("remove source task: %w", err)
	}
	return event, nil
}

// demoteEvent converts a calendar event back to a task without re-alerting.
func (m Model) demoteEvent(id string) (model.Task, error) {
	ctx, cancel := repoContext()
	defer cancel()

	row, err := m.repo.GetEvent(ctx, id)
	if err != nil {
		return model.Task{}, err
	}
	event := row.ToModel()

	task := model.DemoteEvent(event, event.StartAt, m.now())
	if err := m.repo.CreateTask(ctx, storage.TaskFromModel(task)); err != nil {
		return model.Task{}, fmt.Errorf("create task: %w", err)
	}
	if err := m.repo.DeleteEvent(ctx, id); err != nil {
		return model.Task{}, fmt.Errorf("remove source event: %w", err)
	}
	return task, nil
}

func (m Model) clearCompleted() (int64, error) {
	ctx, cancel := repoContext()
	defer cancel()
	return m.repo.ClearCompletedTasks(ctx)
}

func generateDraftCmd(m Model, topic, tone string) tea.Cmd {
	return func() tea.Msg {
		if m.generator == nil {
			return DraftReadyMsg{Topic: topic, Err: fmt.Errorf("draft generator not configured")}
		}
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()

		text, err := m.generator.Generate(ctx, draftParams(topic, tone))
		return DraftReadyMsg{Topic: topic, Text: text, Err: err}
	}
}

func draftParams(topic, tone string) draft.Params {
	return draft.Params{Topic: topic, Tone: tone}
}

func shortID(id string) string {
	if i := strings.IndexByte(id, '-'); i > 0 {
		return id[:i]
	}
	return id
}
