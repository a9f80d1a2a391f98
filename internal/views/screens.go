package views

import (
	"fmt"
	"sort"
	"strings"
)

type TodayTaskData struct {
	ID          string
	Title       string
	DueAt       string
	Overdue     bool
	Completed   bool
	AlertRepeat string
	HasAlerted  bool
}

type TodayPanelData struct {
	QuickAddView string
	Items        []TodayTaskData
	Cursor       int
}

type PlannerPanelData struct {
	CaptureActive bool
	CaptureView   string
	PendingCount  int
}

type CalendarEventData struct {
	ID       string
	Title    string
	Date     string
	Start    string
	End      string
	AlertsAt string
}

type CalendarPanelData struct {
	Items  []CalendarEventData
	Cursor int
}

type DraftsPanelData struct {
	Topic    string
	Pending  bool
	BodyView string
}

type AlertLogEntryData struct {
	Kind  string
	Title string
	At    string
}

type HelpPanelData struct {
	CurrentView string
	Bindings    []string
}

func RenderTodayPanel(data TodayPanelData) string {
	var b strings.Builder
	b.WriteString("today:\n")
	b.WriteString(data.QuickAddView + "\n")
	b.WriteString("actions: [a]add [j/k]move [/]command\n")
	if len(data.Items) == 0 {
		b.WriteString("(no tasks)")
		return strings.TrimSpace(b.String())
	}
	for i, item := range data.Items {
		cursor := " "
		if i == data.Cursor {
			cursor = ">"
		}
		b.WriteString(fmt.Sprintf("%s %s %s %s", cursor, taskBadge(item), checkbox(item.Completed), item.Title))
		if item.DueAt != "" {
			b.WriteString(" due:" + item.DueAt)
		}
		if item.AlertRepeat != "once" && item.AlertRepeat != "" {
			b.WriteString(" [" + item.AlertRepeat + "]")
		}
		b.WriteString("\n")
	}
	return strings.TrimSpace(b.String())
}

func RenderPlannerPanel(data PlannerPanelData) string {
	var b strings.Builder
	b.WriteString("planner:\n")
	if data.CaptureActive {
		b.WriteString("bulk capture: one item per line, [ctrl+d]save [esc]cancel\n")
		b.WriteString(data.CaptureView)
	} else {
		b.WriteString("press [2] to open bulk capture\n")
		if data.PendingCount > 0 {
			b.WriteString(fmt.Sprintf("open tasks: %d", data.PendingCount))
		}
	}
	return strings.TrimSpace(b.String())
}

func RenderCalendarPanel(data CalendarPanelData) string {
	var b strings.Builder
	b.WriteString("calendar:\n")
	b.WriteString("actions: [j/k]move [/]command\n")

	grouped := make(map[string][]int)
	dates := make([]string, 0)
	for i, item := range data.Items {
		if _, ok := grouped[item.Date]; !ok {
			dates = append(dates, item.Date)
		}
		grouped[item.Date] = append(grouped[item.Date], i)
	}
	sort.Strings(dates)
	if len(dates) == 0 {
		b.WriteString("(agenda empty)")
		return b.String()
	}

	for _, day := range dates {
		b.WriteString(fmt.Sprintf("\n%s:\n", day))
		for _, idx := range grouped[day] {
			item := data.Items[idx]
			cursor := " "
			if idx == data.Cursor {
				cursor = ">"
			}
			b.WriteString(fmt.Sprintf("%s %s-%s %s", cursor, item.Start, item.End, item.Title))
			if item.AlertsAt != "" {
				b.WriteString(" alert:" + item.AlertsAt)
			}
			b.WriteString("\n")
		}
	}
	return strings.TrimSpace(b.String())
}

func RenderDraftsPanel(data DraftsPanelData) string {
	var b strings.Builder
	b.WriteString("drafts:\n")
	b.WriteString("use /draft <topic> [tone:<tone>] to generate\n")
	if data.Pending {
		b.WriteString(fmt.Sprintf("drafting %q...", data.Topic))
		return b.String()
	}
	if data.Topic == "" {
		b.WriteString("(no draft yet)")
		return b.String()
	}
	b.WriteString(fmt.Sprintf("\ntopic: %s\n\n%s", data.Topic, data.BodyView))
	return strings.TrimSpace(b.String())
}

func RenderAlertLog(entries []AlertLogEntryData) string {
	if len(entries) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("alerts:\n")
	for _, e := range entries {
		b.WriteString(fmt.Sprintf("- [%s] %s %s\n", strings.ToUpper(e.Kind), e.At, e.Title))
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func RenderCommandPalette(active bool, input string) string {
	if !active {
		return ""
	}
	return fmt.Sprintf("command: /%s", input)
}

func RenderHelpPanel(data HelpPanelData) string {
	return fmt.Sprintf("help:\n%s view:\n%s",
		strings.ToLower(data.CurrentView),
		strings.Join(data.Bindings, "\n"),
	)
}

func taskBadge(item TodayTaskData) string {
	if item.Completed {
		return "[DONE]"
	}
	if item.Overdue && !item.HasAlerted {
		return "[RED]"
	}
	if item.Overdue {
		return "[YELLOW]"
	}
	return "[GREEN]"
}

func checkbox(done bool) string {
	if done {
		return "[x]"
	}
	return "[ ]"
}
