package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/lakshaymaurya-felt/sweep/internal/clean"
	"github.com/lakshaymaurya-felt/sweep/internal/core"
	"github.com/lakshaymaurya-felt/sweep/internal/profile"
	"github.com/lakshaymaurya-felt/sweep/internal/resolve"
	"github.com/lakshaymaurya-felt/sweep/internal/ui"
)

var (
	profilePath string
	modeName    string
	dryRun      bool
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Delete the paths a cleanup profile describes",
	Long: `Resolve a profile's entries into a deduplicated deletion plan and
execute it under the chosen confirmation mode.

Modes:
  silent       delete everything without prompting
  every-entry  confirm each profile entry before it is expanded
  every-path   confirm every resolved path individually`,
	RunE: runClean,
}

func init() {
	cleanCmd.Flags().StringVarP(&profilePath, "profile", "p", "", "Profile file to clean with (required)")
	cleanCmd.Flags().StringVarP(&modeName, "mode", "m", "", "Confirmation mode: silent, every-entry or every-path (required)")
	cleanCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Preview the deletion plan without deleting")
	_ = cleanCmd.MarkFlagRequired("profile")
	_ = cleanCmd.MarkFlagRequired("mode")
}

func runClean(cmd *cobra.Command, args []string) error {
	mode, err := clean.ParseMode(modeName)
	if err != nil {
		return err
	}

	prof, err := profile.Load(profilePath)
	if err != nil {
		return err
	}

	fmt.Printf("Discovering paths using profile %q...\n", prof.Name)

	confirmer := newStdinConfirmer()
	builder := resolve.Builder{}
	if mode.ConfirmsEntries() {
		builder.EntryFilter = entryFilter(confirmer)
	}

	start := time.Now()
	plan, err := builder.Build(prof.Entries)
	if err != nil {
		return err
	}
	fmt.Printf("Expanded %d paths in %s.\n", len(plan.Targets), time.Since(start).Round(time.Millisecond))

	if dryRun {
		printPlan(plan)
		printWarnings(plan)
		return nil
	}

	executor := &clean.Executor{Mode: mode, Confirmer: confirmer}

	var (
		outcomes []clean.Outcome
		summary  clean.Summary
	)
	if mode == clean.ModeSilent && isatty.IsTerminal(os.Stdout.Fd()) {
		outcomes, summary, err = clean.RunWithProgress(executor, plan)
		if err != nil {
			// Renderer trouble only: the run itself completed.
			fmt.Fprintln(os.Stderr, ui.StyleWarning.Render("progress display failed: "+err.Error()))
		}
	} else {
		executor.OnOutcome = printOutcome
		outcomes, summary = executor.Run(plan)
	}

	printFailures(outcomes)
	printWarnings(plan)
	printSummary(plan, summary)
	return nil
}

// entryFilter confirms each entry before expansion. Abort vetoes the
// current entry and every later one.
func entryFilter(c clean.Confirmer) func(profile.Entry) bool {
	aborted := false
	return func(e profile.Entry) bool {
		if aborted {
			return false
		}
		switch c.Ask(fmt.Sprintf("Include entry [%s]?", e)) {
		case clean.AnswerYes:
			return true
		case clean.AnswerAbort:
			aborted = true
		}
		return false
	}
}

func printOutcome(index, total int, o clean.Outcome) {
	prefix := ui.StyleMuted.Render(fmt.Sprintf("[%d/%d]", index+1, total))
	switch o.Status {
	case clean.StatusDeleted:
		fmt.Printf("%s %s %s %s\n", prefix,
			ui.StyleSuccess.Render(ui.IconCheck), o.Target.Path,
			ui.StyleMuted.Render("("+core.FormatSize(o.Bytes)+")"))
	case clean.StatusSkipped:
		fmt.Printf("%s %s\n", prefix,
			ui.StyleMuted.Render(ui.IconSkip+" "+o.Target.Path+" ("+o.Reason+")"))
	case clean.StatusFailed:
		fmt.Printf("%s %s\n", prefix,
			ui.StyleError.Render(ui.IconCross+" "+o.Target.Path+": "+o.Err.Error()))
	}
}

func printPlan(plan *resolve.Plan) {
	fmt.Println()
	fmt.Println(ui.StyleTitle.Render("  " + ui.IconDiamond + " Deletion plan (dry run)"))
	var total int64
	for _, t := range plan.Targets {
		size := clean.TargetSize(t)
		total += size
		fmt.Printf("  %s  %s %s\n", t.Path,
			ui.StyleMuted.Render(t.Kind.String()),
			ui.StyleMuted.Render("("+core.FormatSize(size)+")"))
	}
	fmt.Printf("\n  %d paths, %s reclaimable.\n", len(plan.Targets), core.FormatSize(total))
}

func printFailures(outcomes []clean.Outcome) {
	for _, o := range outcomes {
		if o.Status == clean.StatusFailed {
			fmt.Println(ui.StyleError.Render(
				fmt.Sprintf("Failed to delete <%s>: %v.", o.Target.Path, o.Err)))
		}
	}
}

func printWarnings(plan *resolve.Plan) {
	for _, w := range plan.Warnings {
		fmt.Println(ui.StyleWarning.Render(
			fmt.Sprintf("Skipped entry [%s]: %v.", w.Entry, w.Err)))
	}
}

func printSummary(plan *resolve.Plan, s clean.Summary) {
	fmt.Println()
	fmt.Printf("Deleted %d of %d paths in %s, reclaiming %s",
		s.Deleted, len(plan.Targets), s.Elapsed.Round(time.Millisecond),
		core.FormatSize(s.BytesFreed))
	if s.Skipped > 0 || s.Failed > 0 {
		fmt.Printf(" (%d skipped, %d failed)", s.Skipped, s.Failed)
	}
	fmt.Println(".")

	if vol, err := core.FreeSpace(volumeRoot(plan)); err == nil {
		fmt.Println(ui.StyleMuted.Render(
			fmt.Sprintf("Free space on %s: %s.", vol.Path, core.FormatSize(int64(vol.Free)))))
	}
}

// volumeRoot picks an existing path on the volume the plan touched, for
// the free-space report. Deleted targets may be gone, so it climbs to the
// volume root.
func volumeRoot(plan *resolve.Plan) string {
	path := os.TempDir()
	if len(plan.Targets) > 0 {
		if abs, err := filepath.Abs(plan.Targets[0].Path); err == nil {
			path = abs
		}
	}
	if v := filepath.VolumeName(path); v != "" {
		return v + string(filepath.Separator)
	}
	return string(filepath.Separator)
}
