package notify

import (
	"errors"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"daydash/internal/model"
)

type SoundPlayer interface {
	Play(ref string) error
}

type NoopPlayer struct{}

func (NoopPlayer) Play(string) error { return nil }

// ExecPlayer shells out to the platform audio command. Preset names resolve
// to bundled files under SoundDir; anything else is treated as a path or
// URL and handed to the player as-is.
type ExecPlayer struct {
	SoundDir string
}

func (p ExecPlayer) Play(ref string) error {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return errors.New("notify: empty sound reference")
	}
	target := ref
	if model.IsPresetSound(ref) {
		target = filepath.Join(p.SoundDir, ref+".wav")
	}
	switch runtime.GOOS {
	case "linux":
		return exec.Command("paplay", target).Run()
	case "darwin":
		return exec.Command("afplay", target).Run()
	default:
		return nil
	}
}
