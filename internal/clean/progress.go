package clean

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lakshaymaurya-felt/sweep/internal/core"
	"github.com/lakshaymaurya-felt/sweep/internal/resolve"
	"github.com/lakshaymaurya-felt/sweep/internal/ui"
)

// ─── Messages ────────────────────────────────────────────────────────────────

type outcomeMsg struct {
	index   int
	total   int
	outcome Outcome
}

type runDoneMsg struct{}

// ─── Entry point ─────────────────────────────────────────────────────────────

// RunWithProgress executes the plan while rendering a progress bar. Only
// meaningful for prompt-free modes on a TTY; the renderer and confirmation
// prompts cannot share the terminal.
//
// Deletion always runs to completion: the event channel is buffered for
// the whole plan, so the executor never blocks on the UI, and a renderer
// failure only degrades the display.
func RunWithProgress(e *Executor, plan *resolve.Plan) ([]Outcome, Summary, error) {
	events := make(chan tea.Msg, len(plan.Targets)+1)
	finished := make(chan struct{})

	prev := e.OnOutcome
	e.OnOutcome = func(index, total int, o Outcome) {
		if prev != nil {
			prev(index, total, o)
		}
		events <- outcomeMsg{index: index, total: total, outcome: o}
	}

	var (
		outcomes []Outcome
		summary  Summary
	)
	go func() {
		outcomes, summary = e.Run(plan)
		close(finished)
		events <- runDoneMsg{}
	}()

	_, err := tea.NewProgram(newProgressModel(len(plan.Targets), events)).Run()
	<-finished
	return outcomes, summary, err
}

// ─── Model ───────────────────────────────────────────────────────────────────

type progressModel struct {
	events <-chan tea.Msg
	bar    progress.Model

	total      int
	done       int
	current    string
	deleted    int
	skipped    int
	failed     int
	bytesFreed int64
	finished   bool
}

func newProgressModel(total int, events <-chan tea.Msg) progressModel {
	return progressModel{
		events: events,
		total:  total,
		bar:    progress.New(progress.WithDefaultGradient()),
	}
}

// listen waits for the next executor event.
func (m progressModel) listen() tea.Cmd {
	ch := m.events
	return func() tea.Msg { return <-ch }
}

func (m progressModel) Init() tea.Cmd {
	return m.listen()
}

func (m progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		w := msg.Width - 8
		if w < 10 {
			w = 10
		}
		if w > 60 {
			w = 60
		}
		m.bar.Width = w
		return m, nil

	case outcomeMsg:
		m.done = msg.index + 1
		m.current = msg.outcome.Target.Path
		switch msg.outcome.Status {
		case StatusDeleted:
			m.deleted++
			m.bytesFreed += msg.outcome.Bytes
		case StatusSkipped:
			m.skipped++
		case StatusFailed:
			m.failed++
		}
		return m, m.listen()

	case runDoneMsg:
		m.finished = true
		return m, tea.Quit

	case tea.KeyMsg:
		// Deletions run to completion; keys are deliberately inert.
		return m, nil
	}

	return m, nil
}

func (m progressModel) View() string {
	if m.finished {
		return ""
	}

	pct := 0.0
	if m.total > 0 {
		pct = float64(m.done) / float64(m.total)
	}

	var s strings.Builder
	s.WriteString(ui.StyleTitle.Render("  " + ui.IconDiamond + " Sweeping"))
	s.WriteString("\n\n  ")
	s.WriteString(m.bar.ViewAs(pct))
	s.WriteString(fmt.Sprintf("  %d/%d\n", m.done, m.total))
	if m.current != "" {
		s.WriteString(ui.StyleMuted.Render("  " + m.current))
		s.WriteString("\n")
	}
	s.WriteString(fmt.Sprintf("\n  %s deleted  %s skipped  %s failed  %s freed\n",
		ui.StyleSuccess.Render(fmt.Sprintf("%d", m.deleted)),
		ui.StyleMuted.Render(fmt.Sprintf("%d", m.skipped)),
		ui.StyleError.Render(fmt.Sprintf("%d", m.failed)),
		ui.StyleSuccess.Render(core.FormatSize(m.bytesFreed)),
	))
	return s.String()
}
