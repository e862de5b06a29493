package clean

import (
	"fmt"

	"github.com/lakshaymaurya-felt/sweep/internal/resolve"
)

// Mode selects the confirmation policy for a run.
type Mode int

const (
	// ModeSilent deletes everything without prompting.
	ModeSilent Mode = iota

	// ModeEveryEntry confirms each profile entry before it is expanded;
	// the resulting targets are then deleted without further prompts.
	ModeEveryEntry

	// ModeEveryPath confirms every resolved target individually.
	ModeEveryPath
)

// ParseMode parses a --mode flag value. Unknown names are configuration
// errors.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "silent":
		return ModeSilent, nil
	case "every-entry":
		return ModeEveryEntry, nil
	case "every-path":
		return ModeEveryPath, nil
	}
	return 0, fmt.Errorf("unknown mode %q (want silent, every-entry or every-path)", s)
}

func (m Mode) String() string {
	switch m {
	case ModeSilent:
		return "silent"
	case ModeEveryEntry:
		return "every-entry"
	case ModeEveryPath:
		return "every-path"
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

// ConfirmsEntries reports whether entries are confirmed before expansion.
func (m Mode) ConfirmsEntries() bool {
	return m == ModeEveryEntry
}

// RequiresConfirmation decides whether a target must be confirmed before
// removal. Kept separate from the executor so new modes (confirm once per
// run, size thresholds) slot in without touching deletion logic.
func RequiresConfirmation(mode Mode, target resolve.Target) bool {
	return mode == ModeEveryPath
}
