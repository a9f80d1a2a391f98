package update

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"daydash/internal/commands"
)

func (m Model) handlePaletteKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.Palette.Active = false
		m.Palette.Input = ""
		m.commandInput.SetValue("")
		m.commandInput.Blur()
		m.Status = StatusBar{Text: "command palette closed", IsError: false}
		return m, nil
	case "enter":
		m.Palette.Input = m.commandInput.Value()
		return m.executePaletteCommand()
	default:
		if msg.Type == tea.KeyRunes {
			m.commandInput.SetValue(m.commandInput.Value() + string(msg.Runes))
			m.Palette.Input = m.commandInput.Value()
			return m, nil
		}
		var cmd tea.Cmd
		m.commandInput, cmd = m.commandInput.Update(msg)
		m.Palette.Input = m.commandInput.Value()
		return m, cmd
	}
}

func (m Model) executePaletteCommand() (Model, tea.Cmd) {
	raw := strings.TrimSpace(m.Palette.Input)
	m.Palette.Active = false
	m.Palette.Input = ""
	m.commandInput.SetValue("")

	cmd, err := commands.Parse(raw)
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m, nil
	}

	var followUp tea.Cmd
	res, err := commands.Execute(cmd, commands.Handlers{
		Add: func(a commands.AddArgs) (commands.Result, error) {
			task, err := m.createTask(a.Input)
			if err != nil {
				return commands.Result{}, err
			}
			followUp = loadTasksCmd(m.repo)
			return commands.Result{Message: fmt.Sprintf("added: %s (due %s)", task.Title, task.DueAt.Format("Mon 15:04"))}, nil
		},
		Bulk: func(commands.BulkArgs) (commands.Result, error) {
			m.CurrentView = ViewPlanner
			m.Planner.CaptureMode = true
			m.bulkArea.Focus()
			return commands.Result{Message: "bulk capture: one item per line, ctrl+d to save"}, nil
		},
		Done: func(a commands.DoneArgs) (commands.Result, error) {
			if err := m.completeTask(a.ID); err != nil {
				return commands.Result{}, err
			}
			followUp = loadTasksCmd(m.repo)
			return commands.Result{Message: fmt.Sprintf("completed task %s", shortID(a.ID))}, nil
		},
		Delete: func(a commands.DeleteArgs) (commands.Result, error) {
			if err := m.deleteEntry(a.Kind, a.ID); err != nil {
				return commands.Result{}, err
			}
			if a.Kind == "event" {
				followUp = loadEventsCmd(m.repo)
			} else {
				followUp = loadTasksCmd(m.repo)
			}
			return commands.Result{Message: fmt.Sprintf("deleted %s %s", a.Kind, shortID(a.ID))}, nil
		},
		Promote: func(a commands.PromoteArgs) (commands.Result, error) {
			event, err := m.promoteTask(a.ID)
			if err != nil {
				return commands.Result{}, err
			}
			followUp = tea.Batch(loadTasksCmd(m.repo), loadEventsCmd(m.repo))
			return commands.Result{Message: fmt.Sprintf("promoted to event: %s", event.Title)}, nil
		},
		Demote: func(a commands.DemoteArgs) (commands.Result, error) {
			task, err := m.demoteEvent(a.ID)
			if err != nil {
				return commands.Result{}, err
			}
			followUp = tea.Batch(loadTasksCmd(m.repo), loadEventsCmd(m.repo))
			return commands.Result{Message: fmt.Sprintf("demoted to task: %s", task.Title)}, nil
		},
		Draft: func(a commands.DraftArgs) (commands.Result, error) {
			m.CurrentView = ViewDrafts
			m.Drafts.Topic = a.Topic
			m.Drafts.Pending = true
			m.Drafts.Text = ""
			followUp = generateDraftCmd(m, a.Topic, a.Tone)
			return commands.Result{Message: fmt.Sprintf("drafting: %s", a.Topic)}, nil
		},
		Clear: func(commands.ClearArgs) (commands.Result, error) {
			removed, err := m.clearCompleted()
			if err != nil {
				return commands.Result{}, err
			}
			followUp = loadTasksCmd(m.repo)
			return commands.Result{Message: fmt.Sprintf("cleared %d completed task(s)", removed)}, nil
		},
	})
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m, nil
	}

	m.Status = StatusBar{Text: res.Message, IsError: false}
	return m, followUp
}
