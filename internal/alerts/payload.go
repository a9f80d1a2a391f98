package alerts

import (
	"fmt"
	"strings"

	"daydash/internal/model"
	"daydash/internal/notify"
)

// TaskPayload summarizes a fired task alert: the title, the cadence when
// repeating, and one line per enabled delivery channel.
func TaskPayload(t model.Task) notify.Payload {
	return notify.Payload{
		Title: "Task due: " + t.Title,
		Body:  strings.Join(channelLines(t.AlertRepeat, t.EmailEnabled, t.EmailTo, t.SMSEnabled, t.SMSTo), "\n"),
	}
}

func EventPayload(e model.CalendarEvent) notify.Payload {
	return notify.Payload{
		Title: "Event starting: " + e.Title,
		Body:  strings.Join(channelLines(e.AlertRepeat, e.EmailEnabled, e.EmailTo, e.SMSEnabled, e.SMSTo), "\n"),
	}
}

func channelLines(repeat model.AlertRepeat, emailEnabled bool, emailTo string, smsEnabled bool, smsTo string) []string {
	lines := make([]string, 0, 3)
	if interval, ok := repeat.Interval(); ok {
		lines = append(lines, fmt.Sprintf("repeats every %d min until handled", int(interval.Minutes())))
	}
	if emailEnabled {
		lines = append(lines, "email: "+destinationOr(emailTo, "(no address set)"))
	}
	if smsEnabled {
		lines = append(lines, "sms: "+destinationOr(smsTo, "(no number set)"))
	}
	return lines
}

func destinationOr(dest, placeholder string) string {
	dest = strings.TrimSpace(dest)
	if dest == "" {
		return placeholder
	}
	return dest
}
