// Package clean executes a deletion plan under a confirmation policy,
// tolerating partial failure: one locked file never blocks the rest of the
// cleanup.
package clean

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/lakshaymaurya-felt/sweep/internal/logging"
	"github.com/lakshaymaurya-felt/sweep/internal/resolve"
)

// Status is a target's terminal state.
type Status int

const (
	StatusDeleted Status = iota
	StatusSkipped
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusDeleted:
		return "deleted"
	case StatusSkipped:
		return "skipped"
	case StatusFailed:
		return "failed"
	}
	return fmt.Sprintf("status(%d)", int(s))
}

// Skip reasons reported in outcomes.
const (
	ReasonNotFound = "not found"
	ReasonDeclined = "declined"
	ReasonAborted  = "aborted"
)

// Outcome is the terminal result for one plan target. Every plan target
// yields exactly one.
type Outcome struct {
	Target resolve.Target
	Status Status
	Reason string // set when skipped
	Err    error  // set when failed
	Bytes  int64  // reclaimed bytes when deleted
}

// Summary aggregates a run's outcomes.
type Summary struct {
	Deleted    int
	Skipped    int
	Failed     int
	BytesFreed int64
	Elapsed    time.Duration
}

// Executor walks a deletion plan in order, single-threaded. The zero value
// runs silently against the real filesystem; Confirmer is only consulted
// when the mode demands it.
type Executor struct {
	FS        FS
	Confirmer Confirmer
	Mode      Mode

	// OnOutcome, when set, observes each outcome as it is produced.
	// index is the zero-based plan position; total the plan length.
	OnOutcome func(index, total int, o Outcome)
}

// Run processes every target and returns the ordered outcomes plus the
// aggregate summary. Removal errors are recorded, never propagated: the
// run always reaches the last target. Once the operator answers abort, all
// remaining targets are skipped without further prompts.
func (e *Executor) Run(plan *resolve.Plan) ([]Outcome, Summary) {
	fsys := e.FS
	if fsys == nil {
		fsys = OSFilesystem()
	}

	log := logging.New("clean")
	start := time.Now()

	outcomes := make([]Outcome, 0, len(plan.Targets))
	var summary Summary
	aborted := false

	for i, t := range plan.Targets {
		o := e.process(fsys, t, &aborted)
		outcomes = append(outcomes, o)

		switch o.Status {
		case StatusDeleted:
			summary.Deleted++
			summary.BytesFreed += o.Bytes
			log.Debug().Str("path", t.Path).Int64("bytes", o.Bytes).Msg("deleted")
		case StatusSkipped:
			summary.Skipped++
			log.Debug().Str("path", t.Path).Str("reason", o.Reason).Msg("skipped")
		case StatusFailed:
			summary.Failed++
			log.Warn().Err(o.Err).Str("path", t.Path).Msg("removal failed")
		}

		if e.OnOutcome != nil {
			e.OnOutcome(i, len(plan.Targets), o)
		}
	}

	summary.Elapsed = time.Since(start)
	return outcomes, summary
}

// process drives one target through pending → confirming → deleting.
func (e *Executor) process(fsys FS, t resolve.Target, aborted *bool) Outcome {
	o := Outcome{Target: t}

	if *aborted {
		o.Status, o.Reason = StatusSkipped, ReasonAborted
		return o
	}

	info, err := fsys.Lstat(t.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			// Already gone is a valid result, not an error.
			o.Status, o.Reason = StatusSkipped, ReasonNotFound
		} else {
			o.Status, o.Err = StatusFailed, fmt.Errorf("inspect %s: %w", t.Path, err)
		}
		return o
	}

	if RequiresConfirmation(e.Mode, t) {
		switch e.Confirmer.Ask(fmt.Sprintf("Delete %s <%s>?", t.Kind, t.Path)) {
		case AnswerNo:
			o.Status, o.Reason = StatusSkipped, ReasonDeclined
			return o
		case AnswerAbort:
			*aborted = true
			o.Status, o.Reason = StatusSkipped, ReasonAborted
			return o
		}
	}

	var bytes int64
	var rmErr error
	switch t.Kind {
	case resolve.KindDirectory:
		bytes = dirSize(t.Path)
		rmErr = fsys.RemoveDir(t.Path)
	default:
		bytes = info.Size()
		rmErr = fsys.RemoveFile(t.Path)
	}

	if rmErr != nil {
		o.Status, o.Err = StatusFailed, rmErr
		return o
	}
	o.Status, o.Bytes = StatusDeleted, bytes
	return o
}
