// Package profile defines the cleanup profile schema and its JSON form.
//
// A profile is a named, ordered list of entries. Each entry names a single
// file, a directory subtree, or a glob pattern with an optional exception
// rule that spares one of the matches. Profiles are immutable once loaded;
// a run owns exactly one.
package profile

import (
	"encoding/json"
	"fmt"
)

// Kind discriminates the entry variants.
type Kind int

const (
	KindFile Kind = iota
	KindDirectory
	KindPattern
)

// Exception narrows a pattern's match set by excluding one match.
type Exception int

const (
	// ExceptionNone deletes every match.
	ExceptionNone Exception = iota

	// ExceptionMostRecent spares the match with the newest modification
	// time. Ties are broken by sparing the lexicographically-last path.
	ExceptionMostRecent

	// ExceptionFirstAscending spares the match whose file name sorts first.
	ExceptionFirstAscending

	// ExceptionFirstDescending spares the match whose file name sorts last.
	ExceptionFirstDescending
)

// Profile is a named set of cleanup entries, evaluated in order.
type Profile struct {
	Name    string  `json:"name"`
	Entries []Entry `json:"entries"`
}

// Entry is one cleanup rule. Value is a literal path for file and directory
// kinds, a glob pattern for the pattern kind. Exception is only meaningful
// on pattern entries; Validate rejects it elsewhere.
type Entry struct {
	Kind      Kind
	Value     string
	Exception Exception
}

// String renders the entry for prompts and logs, e.g. `pattern <C:\dumps\*.dmp>`.
func (e Entry) String() string {
	return fmt.Sprintf("%s <%s>", e.Kind, e.Value)
}

func (k Kind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindDirectory:
		return "directory"
	case KindPattern:
		return "pattern"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

func (x Exception) String() string {
	switch x {
	case ExceptionNone:
		return "none"
	case ExceptionMostRecent:
		return "mostRecent"
	case ExceptionFirstAscending:
		return "firstAscending"
	case ExceptionFirstDescending:
		return "firstDescending"
	}
	return fmt.Sprintf("exception(%d)", int(x))
}

// Validate checks the structural invariants: non-empty name, non-empty
// entry values, and exceptions only on pattern entries. Violations are
// configuration errors that abort the run before any deletion.
func (p *Profile) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("profile name must not be empty")
	}
	for i, e := range p.Entries {
		if e.Value == "" {
			return fmt.Errorf("entry %d: value must not be empty", i)
		}
		if e.Kind != KindPattern && e.Exception != ExceptionNone {
			return fmt.Errorf("entry %d: exception %q is only valid on pattern entries", i, e.Exception)
		}
	}
	return nil
}

// rawEntry is the wire form of an entry.
type rawEntry struct {
	Type      string  `json:"type"`
	Value     string  `json:"value"`
	Exception *string `json:"exception,omitempty"`
}

// UnmarshalJSON decodes the tagged wire form. Unknown type or exception
// tags are errors, never silently ignored.
func (e *Entry) UnmarshalJSON(data []byte) error {
	var raw rawEntry
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	switch raw.Type {
	case "file":
		e.Kind = KindFile
	case "directory":
		e.Kind = KindDirectory
	case "pattern":
		e.Kind = KindPattern
	default:
		return fmt.Errorf("unknown entry type %q", raw.Type)
	}

	e.Value = raw.Value

	if raw.Exception == nil {
		e.Exception = ExceptionNone
		return nil
	}
	switch *raw.Exception {
	case "mostRecent":
		e.Exception = ExceptionMostRecent
	case "firstAscending":
		e.Exception = ExceptionFirstAscending
	case "firstDescending":
		e.Exception = ExceptionFirstDescending
	default:
		return fmt.Errorf("unknown exception %q", *raw.Exception)
	}
	return nil
}

// MarshalJSON emits the tagged wire form. Used by `sweep init`.
func (e Entry) MarshalJSON() ([]byte, error) {
	raw := rawEntry{Type: e.Kind.String(), Value: e.Value}
	if e.Exception != ExceptionNone {
		s := e.Exception.String()
		raw.Exception = &s
	}
	return json.Marshal(raw)
}
