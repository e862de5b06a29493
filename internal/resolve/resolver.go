package resolve

import (
	"fmt"

	"github.com/lakshaymaurya-felt/sweep/internal/profile"
)

// Target is a concrete filesystem path scheduled for deletion.
type Target struct {
	Path string
	Kind TargetKind
}

// ResolveEntry maps one profile entry to its targets.
//
// Literal file and directory entries resolve to a single target whether or
// not the path currently exists; "already gone" is decided at deletion
// time. Pattern entries expand against the filesystem and then drop the
// matches their exception spares.
func ResolveEntry(e profile.Entry) ([]Target, error) {
	switch e.Kind {
	case profile.KindFile:
		return []Target{{Path: e.Value, Kind: KindFile}}, nil

	case profile.KindDirectory:
		return []Target{{Path: e.Value, Kind: KindDirectory}}, nil

	case profile.KindPattern:
		matches, err := Expand(e.Value)
		if err != nil {
			return nil, err
		}

		spared := make(map[string]bool)
		for _, m := range Exclusions(matches, e.Exception) {
			spared[m.Path] = true
		}

		targets := make([]Target, 0, len(matches))
		for _, m := range matches {
			if spared[m.Path] {
				continue
			}
			targets = append(targets, Target{Path: m.Path, Kind: m.Kind})
		}
		return targets, nil
	}

	return nil, fmt.Errorf("unhandled entry kind %v", e.Kind)
}
