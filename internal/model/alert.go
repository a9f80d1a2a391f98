package model

import "time"

// AlertRepeat controls how often a due reminder re-fires until handled.
type AlertRepeat string

const (
	RepeatOnce   AlertRepeat = "once"
	RepeatEvery3 AlertRepeat = "every_3"
	RepeatEvery5 AlertRepeat = "every_5"
)

func (r AlertRepeat) IsValid() bool {
	switch r {
	case RepeatOnce, RepeatEvery3, RepeatEvery5:
		return true
	default:
		return false
	}
}

// Interval returns the re-fire cadence and true for repeating variants,
// zero and false for one-shot alerts.
func (r AlertRepeat) Interval() (time.Duration, bool) {
	switch r {
	case RepeatEvery3:
		return 3 * time.Minute, true
	case RepeatEvery5:
		return 5 * time.Minute, true
	default:
		return 0, false
	}
}

// Built-in alarm sound presets. AlarmSound fields also accept opaque
// references to user-supplied files; the alert pipeline passes those through.
const (
	SoundChime = "chime"
	SoundBell  = "bell"
	SoundPulse = "pulse"
)

func IsPresetSound(ref string) bool {
	switch ref {
	case SoundChime, SoundBell, SoundPulse:
		return true
	default:
		return false
	}
}
