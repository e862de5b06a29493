// Package resolve turns profile entries into a concrete, deduplicated
// deletion plan. It only ever reads the filesystem; all mutation lives in
// the clean package.
package resolve

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"time"

	"github.com/bmatcuk/doublestar/v4"
)

// TargetKind tags a resolved path as a single file or a directory subtree.
type TargetKind int

const (
	KindFile TargetKind = iota
	KindDirectory
)

func (k TargetKind) String() string {
	if k == KindDirectory {
		return "directory"
	}
	return "file"
}

// Match is one existing filesystem path produced by pattern expansion.
// ModTime feeds the exception filter's tie-break logic.
type Match struct {
	Path    string
	Kind    TargetKind
	ModTime time.Time
}

// ValidatePattern reports malformed glob syntax. It runs before any
// filesystem access so broken profiles fail fast.
func ValidatePattern(pattern string) error {
	if !doublestar.ValidatePattern(filepath.ToSlash(pattern)) {
		return fmt.Errorf("pattern %q: %w", pattern, doublestar.ErrBadPattern)
	}
	return nil
}

// Expand returns the existing paths matching pattern, ordered
// lexicographically by path. The ordering is stable across two scans of an
// unchanged tree. A pattern whose static prefix does not exist expands to
// nothing; an unreadable directory during the walk is an error.
//
// `*` matches within one path segment, so C:\dumps\*\*.dmp expands one
// directory level and then a file name wildcard. Symlinks are matched but
// never followed.
func Expand(pattern string) ([]Match, error) {
	if err := ValidatePattern(pattern); err != nil {
		return nil, err
	}

	base, rest := doublestar.SplitPattern(path.Clean(filepath.ToSlash(pattern)))
	if base == "" {
		base = "/"
	}
	root := filepath.FromSlash(base)
	if _, err := os.Lstat(root); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("inspect %s: %w", root, err)
	}

	var matches []Match
	walkFn := func(p string, d fs.DirEntry) error {
		info, err := d.Info()
		if err != nil {
			return err
		}
		kind := KindFile
		if d.IsDir() {
			kind = KindDirectory
		}
		matches = append(matches, Match{
			Path:    filepath.Join(root, filepath.FromSlash(p)),
			Kind:    kind,
			ModTime: info.ModTime(),
		})
		return nil
	}

	err := doublestar.GlobWalk(os.DirFS(root), rest, walkFn,
		doublestar.WithFailOnIOErrors(), doublestar.WithNoFollow())
	if err != nil {
		return nil, fmt.Errorf("expand pattern %q: %w", pattern, err)
	}

	sort.Slice(matches, func(i, j int) bool { return matches[i].Path < matches[j].Path })
	return matches, nil
}
