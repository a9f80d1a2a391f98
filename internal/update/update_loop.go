package update

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"daydash/internal/notify"
	"daydash/internal/views"
)

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{}
	if m.repo != nil {
		cmds = append(cmds, loadTasksCmd(m.repo), loadEventsCmd(m.repo))
	}
	if m.poller != nil {
		cmds = append(cmds, waitForAlertCmd(m.poller.C()))
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(typed)
	case SwitchViewMsg:
		if isKnownView(typed.View) {
			m.CurrentView = typed.View
		}
		return m, nil
	case SetStatusMsg:
		m.Status = StatusBar{Text: typed.Text, IsError: typed.IsError}
		return m, nil
	case ClearStatusMsg:
		m.Status = StatusBar{}
		return m, nil
	case AppErrorMsg:
		m.LastError = typed.Err
		if typed.Err != nil {
			m.Status = StatusBar{Text: typed.Err.Error(), IsError: true}
		}
		return m, nil
	case TasksLoadedMsg:
		m.Tasks = typed.Tasks
		if m.TaskCursor >= len(m.Tasks) {
			m.TaskCursor = 0
		}
		return m, nil
	case EventsLoadedMsg:
		m.Events = typed.Events
		if m.EventCursor >= len(m.Events) {
			m.EventCursor = 0
		}
		return m, nil
	case AlertFiredMsg:
		if !typed.OK {
			return m, nil
		}
		m.AlertLog = append(m.AlertLog, typed.Fire)
		if len(m.AlertLog) > 20 {
			m.AlertLog = m.AlertLog[len(m.AlertLog)-20:]
		}
		m.Status = StatusBar{Text: fmt.Sprintf("alert: %s", typed.Fire.Title), IsError: false}
		cmds := []tea.Cmd{}
		if m.poller != nil {
			cmds = append(cmds, waitForAlertCmd(m.poller.C()))
		}
		if m.repo != nil {
			cmds = append(cmds, loadTasksCmd(m.repo), loadEventsCmd(m.repo))
		}
		if len(cmds) == 0 {
			return m, nil
		}
		return m, tea.Batch(cmds...)
	case DraftReadyMsg:
		m.Drafts.Pending = false
		if typed.Err != nil {
			m.Status = StatusBar{Text: typed.Err.Error(), IsError: true}
			return m, nil
		}
		m.Drafts.Topic = typed.Topic
		m.Drafts.Text = typed.Text
		m.Status = StatusBar{Text: fmt.Sprintf("draft ready: %s", typed.Topic), IsError: false}
		m.sendNotification("Draft ready", typed.Topic)
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.Palette.Active {
		if msg.String() == m.Keys.Help {
			m.HelpVisible = !m.HelpVisible
			return m, nil
		}
		next, cmd := m.handlePaletteKey(msg)
		return next, cmd
	}

	if m.Planner.CaptureMode && m.CurrentView == ViewPlanner {
		return m.handlePlannerKey(msg)
	}

	if m.quickAddInput.Focused() && m.CurrentView == ViewToday {
		return m.handleQuickAddKey(msg)
	}

	switch msg.String() {
	case "/":
		m.Palette.Active = true
		m.Palette.Input = ""
		m.commandInput.Focus()
		m.commandInput.SetValue("")
		m.Status = StatusBar{Text: "command palette active", IsError: false}
		return m, nil
	case m.Keys.Today:
		m.CurrentView = ViewToday
		return m, nil
	case m.Keys.Planner:
		m.CurrentView = ViewPlanner
		m.Planner.CaptureMode = true
		m.bulkArea.Focus()
		return m, nil
	case m.Keys.Calendar:
		m.CurrentView = ViewCalendar
		return m, nil
	case m.Keys.Drafts:
		m.CurrentView = ViewDrafts
		return m, nil
	case m.Keys.Help:
		m.HelpVisible = !m.HelpVisible
		return m, nil
	case "a":
		if m.CurrentView == ViewToday {
			m.quickAddInput.Focus()
			m.quickAddInput.SetValue("")
			m.Status = StatusBar{Text: "quick add: type and press enter", IsError: false}
			return m, nil
		}
	case "j", "down":
		m.moveCursor(1)
		return m, nil
	case "k", "up":
		m.moveCursor(-1)
		return m, nil
	case "ctrl+c", m.Keys.Quit:
		m.Quitting = true
		return m, tea.Quit
	}

	return m, nil
}

func (m Model) handleQuickAddKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.quickAddInput.Blur()
		m.quickAddInput.SetValue("")
		return m, nil
	case "enter":
		input := strings.TrimSpace(m.quickAddInput.Value())
		m.quickAddInput.Blur()
		m.quickAddInput.SetValue("")
		if input == "" {
			return m, nil
		}
		task, err := m.createTask(input)
		if err != nil {
			m.Status = StatusBar{Text: err.Error(), IsError: true}
			return m, nil
		}
		m.Status = StatusBar{Text: fmt.Sprintf("added: %s (due %s)", task.Title, task.DueAt.Format("Mon 15:04")), IsError: false}
		return m, loadTasksCmd(m.repo)
	default:
		var cmd tea.Cmd
		m.quickAddInput, cmd = m.quickAddInput.Update(msg)
		return m, cmd
	}
}

func (m Model) handlePlannerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.Planner.CaptureMode = false
		m.bulkArea.Blur()
		return m, nil
	case "ctrl+d":
		input := m.bulkArea.Value()
		m.Planner.CaptureMode = false
		m.bulkArea.Blur()
		m.bulkArea.SetValue("")
		created, err := m.createTasksBulk(input)
		if err != nil {
			m.Status = StatusBar{Text: err.Error(), IsError: true}
		} else {
			m.Status = StatusBar{Text: fmt.Sprintf("captured %d task(s)", created), IsError: false}
		}
		if m.repo != nil {
			return m, loadTasksCmd(m.repo)
		}
		return m, nil
	default:
		var cmd tea.Cmd
		m.bulkArea, cmd = m.bulkArea.Update(msg)
		return m, cmd
	}
}

func (m *Model) moveCursor(delta int) {
	switch m.CurrentView {
	case ViewToday:
		m.TaskCursor = clamp(m.TaskCursor+delta, 0, len(m.Tasks)-1)
	case ViewCalendar:
		m.EventCursor = clamp(m.EventCursor+delta, 0, len(m.Events)-1)
	}
}

func (m Model) sendNotification(title, body string) {
	if m.notifier == nil {
		return
	}
	_ = m.notifier.Send(notify.Payload{Title: title, Body: body})
}

func (m Model) View() string {
	status := ""
	if m.Status.Text != "" {
		if m.Status.IsError {
			status = fmt.Sprintf("status: error: %s", m.Status.Text)
		} else {
			status = fmt.Sprintf("status: %s", m.Status.Text)
		}
	}

	leftPane := ""
	rightPane := ""
	switch m.CurrentView {
	case ViewToday:
		leftPane = m.renderTodayView()
		rightPane = m.renderAlertLogView() + m.renderHelpIfVisible()
	case ViewPlanner:
		leftPane = m.renderPlannerView()
		rightPane = m.renderHelpIfVisible()
	case ViewCalendar:
		leftPane = m.renderCalendarView()
		rightPane = m.renderAlertLogView() + m.renderHelpIfVisible()
	case ViewDrafts:
		leftPane = m.renderDraftsView()
		rightPane = m.renderHelpIfVisible()
	}

	return views.RenderApp(views.AppData{
		Header:      fmt.Sprintf("daydash | view: %s", m.CurrentView),
		MainPane:    leftPane,
		SidePane:    rightPane,
		StatusLine:  status,
		StatusError: m.Status.IsError,
		Palette:     views.RenderCommandPalette(m.Palette.Active, m.Palette.Input),
		Footer:      fmt.Sprintf("keys: %s today | %s planner | %s cal | %s drafts | a add | / cmd | %s help | %s quit", m.Keys.Today, m.Keys.Planner, m.Keys.Calendar, m.Keys.Drafts, m.Keys.Help, m.Keys.Quit),
	})
}

func isKnownView(v View) bool {
	switch v {
	case ViewToday, ViewPlanner, ViewCalendar, ViewDrafts:
		return true
	default:
		return false
	}
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
