package update

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"

	"daydash/internal/alerts"
	"daydash/internal/draft"
	"daydash/internal/model"
	"daydash/internal/notify"
	"daydash/internal/quickadd"
	"daydash/internal/storage"
)

type View string

const (
	ViewToday    View = "Today"
	ViewPlanner  View = "Planner"
	ViewCalendar View = "Calendar"
	ViewDrafts   View = "Drafts"
)

type StatusBar struct {
	Text    string
	IsError bool
}

type GlobalKeyMap struct {
	Today    string
	Planner  string
	Calendar string
	Drafts   string
	Help     string
	Quit     string
}

type CommandPaletteState struct {
	Active bool
	Input  string
}

type PlannerState struct {
	CaptureMode bool
}

type DraftState struct {
	Topic   string
	Text    string
	Pending bool
}

type Model struct {
	CurrentView View
	Tasks       []model.Task
	Events      []model.CalendarEvent
	TaskCursor  int
	EventCursor int
	Planner     PlannerState
	Drafts      DraftState
	Palette     CommandPaletteState
	AlertLog    []alerts.Fire
	HelpVisible bool
	Status      StatusBar
	Keys        GlobalKeyMap
	Quitting    bool
	LastError   error

	repo      storage.Repository
	poller    *alerts.Poller
	parser    *quickadd.Parser
	generator draft.Generator
	notifier  notify.Notifier
	now       func() time.Time

	quickAddInput textinput.Model
	commandInput  textinput.Model
	bulkArea      textarea.Model
	helpModel     help.Model
}

type SwitchViewMsg struct {
	View View
}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type ClearStatusMsg struct{}

type AppErrorMsg struct {
	Err error
}

type TasksLoadedMsg struct {
	Tasks []model.Task
}

type EventsLoadedMsg struct {
	Events []model.CalendarEvent
}

type AlertFiredMsg struct {
	Fire alerts.Fire
	OK   bool
}

type DraftReadyMsg struct {
	Topic string
	Text  string
	Err   error
}

// Deps carries everything the TUI needs from the composition root.
type Deps struct {
	Repo      storage.Repository
	Poller    *alerts.Poller
	Parser    *quickadd.Parser
	Generator draft.Generator
	Notifier  notify.Notifier
}

func NewModel(deps Deps) Model {
	m := Model{
		CurrentView: ViewToday,
		Keys: GlobalKeyMap{
			Today:    "1",
			Planner:  "2",
			Calendar: "3",
			Drafts:   "4",
			Help:     "?",
			Quit:     "q",
		},
		repo:      deps.Repo,
		poller:    deps.Poller,
		parser:    deps.Parser,
		generator: deps.Generator,
		notifier:  deps.Notifier,
		now:       time.Now,
	}
	if m.parser == nil {
		m.parser = quickadd.New()
	}
	if m.notifier == nil {
		m.notifier = notify.NoopNotifier{}
	}

	m.quickAddInput = textinput.New()
	m.quickAddInput.Placeholder = "Grade papers tomorrow 5pm"
	m.quickAddInput.CharLimit = 200

	m.commandInput = textinput.New()
	m.commandInput.Placeholder = "add | bulk | done | delete | promote | demote | draft | clear"

	m.bulkArea = textarea.New()
	m.bulkArea.Placeholder = "one item per line"
	m.bulkArea.SetHeight(8)

	m.helpModel = help.New()

	return m
}
