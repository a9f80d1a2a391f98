package views

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

// AppData is one frame of the dashboard: a wide content pane, an optional
// narrow side pane (alert log, help), and the chrome around them.
type AppData struct {
	Header      string
	MainPane    string
	SidePane    string
	StatusLine  string
	StatusError bool
	Palette     string
	Footer      string
}

const (
	mainPaneWidth = 72
	sidePaneWidth = 36
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14")).Padding(0, 1)
	mainStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("8")).Padding(0, 1).Width(mainPaneWidth)
	sideStyle    = lipgloss.NewStyle().Padding(0, 1).Width(sidePaneWidth)
	statusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	paletteStyle = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1)
	footerStyle  = lipgloss.NewStyle().Faint(true)
)

func RenderApp(data AppData) string {
	row := mainStyle.Render(data.MainPane)
	if strings.TrimSpace(data.SidePane) != "" {
		row = lipgloss.JoinHorizontal(lipgloss.Top, row, sideStyle.Render(data.SidePane))
	}

	status := statusStyle.Render(data.StatusLine)
	if data.StatusError {
		status = errorStyle.Render(data.StatusLine)
	}

	lines := []string{
		headerStyle.Render(data.Header),
		row,
		status,
	}
	if data.Palette != "" {
		lines = append(lines, paletteStyle.Render(data.Palette))
	}
	if data.Footer != "" {
		lines = append(lines, footerStyle.Render(data.Footer))
	}
	return strings.Join(lines, "\n")
}

func RenderMarkdown(md string) string {
	if strings.TrimSpace(md) == "" {
		return ""
	}
	out, err := glamour.Render(md, "dark")
	if err != nil {
		return md
	}
	return strings.TrimSpace(out)
}
