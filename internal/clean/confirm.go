package clean

// Answer is the operator's response to a confirmation prompt.
type Answer int

const (
	AnswerYes Answer = iota
	AnswerNo
	AnswerAbort
)

// Confirmer collects a yes/no/abort decision from the operator. The
// executor never formats or parses terminal text itself; tests script this
// interface instead of driving a real terminal.
//
// AnswerNo declines the current target only. AnswerAbort declines the
// current target and every remaining pending one, without further prompts.
type Confirmer interface {
	Ask(prompt string) Answer
}
