package resolve

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/lakshaymaurya-felt/sweep/internal/logging"
	"github.com/lakshaymaurya-felt/sweep/internal/profile"
)

// Plan is the deduplicated, order-preserving deletion plan for one run.
// Warnings carry entries whose resolution failed; the rest of the profile
// is still planned.
type Plan struct {
	Targets  []Target
	Warnings []EntryWarning
}

// EntryWarning records an entry that could not be resolved, e.g. a
// directory that was unreadable during pattern expansion.
type EntryWarning struct {
	Entry profile.Entry
	Err   error
}

// Builder resolves a profile's entries into a Plan.
//
// The zero value is usable. Resolve defaults to ResolveEntry; tests swap it
// to exercise the warning path without needing an unreadable filesystem.
type Builder struct {
	Resolve func(profile.Entry) ([]Target, error)

	// EntryFilter, when set, may veto an entry before it is resolved.
	// The every-entry confirmation mode hooks in here.
	EntryFilter func(profile.Entry) bool
}

// Build resolves every entry in order, concatenates the targets, and
// deduplicates them by canonical path, keeping first-seen order.
//
// Malformed pattern syntax anywhere in the profile is a configuration
// error: Build fails before touching the filesystem. Failures during
// resolution itself only skip the offending entry; they surface as plan
// warnings so the run can report them at the end.
func (b Builder) Build(entries []profile.Entry) (*Plan, error) {
	for i, e := range entries {
		if e.Kind == profile.KindPattern {
			if err := ValidatePattern(e.Value); err != nil {
				return nil, fmt.Errorf("entry %d: %w", i, err)
			}
		}
	}

	resolveFn := b.Resolve
	if resolveFn == nil {
		resolveFn = ResolveEntry
	}

	log := logging.New("resolve")
	plan := &Plan{}
	seen := make(map[string]bool)

	for _, e := range entries {
		if b.EntryFilter != nil && !b.EntryFilter(e) {
			log.Debug().Stringer("entry", e).Msg("entry vetoed")
			continue
		}

		targets, err := resolveFn(e)
		if err != nil {
			log.Warn().Err(err).Stringer("entry", e).Msg("entry skipped")
			plan.Warnings = append(plan.Warnings, EntryWarning{Entry: e, Err: err})
			continue
		}

		for _, t := range targets {
			key := canonicalKey(t.Path)
			if seen[key] {
				continue
			}
			seen[key] = true
			plan.Targets = append(plan.Targets, t)
		}
	}

	log.Debug().Int("targets", len(plan.Targets)).Int("warnings", len(plan.Warnings)).Msg("plan built")
	return plan, nil
}

// canonicalKey normalizes a path so the same physical path reached through
// different entries collapses to one plan item. Windows paths compare
// case-insensitively.
func canonicalKey(p string) string {
	abs, err := filepath.Abs(p)
	if err != nil {
		abs = filepath.Clean(p)
	}
	if runtime.GOOS == "windows" {
		abs = strings.ToLower(abs)
	}
	return abs
}
