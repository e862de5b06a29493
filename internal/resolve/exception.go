package resolve

import (
	"path/filepath"

	"github.com/lakshaymaurya-felt/sweep/internal/profile"
)

// Exclusions returns the subset of matches an exception spares from
// deletion. For every defined exception this is exactly one match; an empty
// match list or ExceptionNone yields nil.
//
// Tie-breaks are deterministic because they decide which file survives:
// mostRecent spares the lexicographically-last path among equal timestamps,
// firstAscending/firstDescending compare full paths when base names collide.
func Exclusions(matches []Match, x profile.Exception) []Match {
	if len(matches) == 0 || x == profile.ExceptionNone {
		return nil
	}

	best := matches[0]
	for _, m := range matches[1:] {
		if prefer(m, best, x) {
			best = m
		}
	}
	return []Match{best}
}

// prefer reports whether candidate m should be spared instead of best.
func prefer(m, best Match, x profile.Exception) bool {
	switch x {
	case profile.ExceptionMostRecent:
		if !m.ModTime.Equal(best.ModTime) {
			return m.ModTime.After(best.ModTime)
		}
		return m.Path > best.Path
	case profile.ExceptionFirstAscending:
		mn, bn := filepath.Base(m.Path), filepath.Base(best.Path)
		if mn != bn {
			return mn < bn
		}
		return m.Path < best.Path
	case profile.ExceptionFirstDescending:
		mn, bn := filepath.Base(m.Path), filepath.Base(best.Path)
		if mn != bn {
			return mn > bn
		}
		return m.Path > best.Path
	}
	return false
}
