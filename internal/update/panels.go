package update

import (
	"daydash/internal/views"
)

func (m Model) renderTodayView() string {
	now := m.now()
	items := make([]views.TodayTaskData, len(m.Tasks))
	for i, task := range m.Tasks {
		items[i] = views.TodayTaskData{
			ID:          shortID(task.ID),
			Title:       task.Title,
			DueAt:       task.DueAt.Format("Mon 15:04"),
			Overdue:     !task.Completed && task.DueAt.Before(now),
			Completed:   task.Completed,
			AlertRepeat: string(task.AlertRepeat),
			HasAlerted:  task.HasAlerted,
		}
	}
	return views.RenderTodayPanel(views.TodayPanelData{
		QuickAddView: m.quickAddInput.View(),
		Items:        items,
		Cursor:       m.TaskCursor,
	})
}

func (m Model) renderPlannerView() string {
	open := 0
	for _, task := range m.Tasks {
		if !task.Completed {
			open++
		}
	}
	return views.RenderPlannerPanel(views.PlannerPanelData{
		CaptureActive: m.Planner.CaptureMode,
		CaptureView:   m.bulkArea.View(),
		PendingCount:  open,
	})
}

func (m Model) renderCalendarView() string {
	items := make([]views.CalendarEventData, len(m.Events))
	for i, event := range m.Events {
		items[i] = views.CalendarEventData{
			ID:       shortID(event.ID),
			Title:    event.Title,
			Date:     event.StartAt.Format("2006-01-02"),
			Start:    event.StartAt.Format("15:04"),
			End:      event.EndAt.Format("15:04"),
			AlertsAt: event.TriggerAt().Format("15:04"),
		}
	}
	return views.RenderCalendarPanel(views.CalendarPanelData{
		Items:  items,
		Cursor: m.EventCursor,
	})
}

func (m Model) renderDraftsView() string {
	return views.RenderDraftsPanel(views.DraftsPanelData{
		Topic:    m.Drafts.Topic,
		Pending:  m.Drafts.Pending,
		BodyView: views.RenderMarkdown(m.Drafts.Text),
	})
}

func (m Model) renderAlertLogView() string {
	if len(m.AlertLog) == 0 {
		return ""
	}
	entries := make([]views.AlertLogEntryData, len(m.AlertLog))
	for i, fire := range m.AlertLog {
		entries[i] = views.AlertLogEntryData{
			Kind:  string(fire.Kind),
			Title: fire.Title,
			At:    fire.At.Format("15:04:05"),
		}
	}
	return views.RenderAlertLog(entries)
}

func (m Model) renderHelpIfVisible() string {
	if !m.HelpVisible {
		return ""
	}
	bindings := []string{
		"a: quick add (today)",
		"j/k: move cursor",
		"/: command palette",
		"1-4: switch views",
		"q: quit",
	}
	return "\n" + views.RenderHelpPanel(views.HelpPanelData{
		CurrentView: string(m.CurrentView),
		Bindings:    bindings,
	})
}
