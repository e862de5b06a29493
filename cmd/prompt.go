package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lakshaymaurya-felt/sweep/internal/clean"
)

// stdinConfirmer implements clean.Confirmer over the process terminal.
// Empty input means yes; unrecognized input re-asks; EOF aborts the rest
// of the run.
type stdinConfirmer struct {
	in  *bufio.Scanner
	out io.Writer
}

func newStdinConfirmer() *stdinConfirmer {
	return &stdinConfirmer{in: bufio.NewScanner(os.Stdin), out: os.Stdout}
}

func (c *stdinConfirmer) Ask(prompt string) clean.Answer {
	for {
		fmt.Fprintf(c.out, "%s (Y/n/a): ", prompt)
		if !c.in.Scan() {
			return clean.AnswerAbort
		}
		switch strings.ToLower(strings.TrimSpace(c.in.Text())) {
		case "", "y", "yes":
			return clean.AnswerYes
		case "n", "no":
			return clean.AnswerNo
		case "a", "abort":
			return clean.AnswerAbort
		}
	}
}
