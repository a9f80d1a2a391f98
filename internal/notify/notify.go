package notify

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"
)

// Payload is a fire-and-forget notification: a title line plus free-form
// body lines. Nothing here is acknowledged or retried.
type Payload struct {
	Title string
	Body  string
}

func (p Payload) String() string {
	if p.Body == "" {
		return p.Title
	}
	return p.Title + "\n" + p.Body
}

type Notifier interface {
	Send(Payload) error
}

type NoopNotifier struct{}

func (NoopNotifier) Send(Payload) error { return nil }

// DesktopNotifier shells out to the platform notification command.
type DesktopNotifier struct{}

func (DesktopNotifier) Send(p Payload) error {
	switch runtime.GOOS {
	case "linux":
		return exec.Command("notify-send", p.Title, p.Body).Run()
	case "darwin":
		script := fmt.Sprintf(`display notification "%s" with title "%s"`, escapeAppleScript(p.Body), escapeAppleScript(p.Title))
		return exec.Command("osascript", "-e", script).Run()
	default:
		return nil
	}
}

func escapeAppleScript(s string) string {
	return strings.ReplaceAll(s, `"`, `\"`)
}
