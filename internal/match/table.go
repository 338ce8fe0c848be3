// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package match

import "context"

// Answers returned for the two non-answer dispatch outcomes. A matched
// action that produces nothing is observably different from a question no
// pattern matches.
const (
	NoAnswers     = "No answers"
	NotUnderstood = "I don't understand"
)

// Action produces answer lines from the captures bound by its pattern.
type Action func(ctx context.Context, captures []string) ([]string, error)

// Entry pairs a pattern with its action. Stop marks the termination entry;
// its action is never invoked.
type Entry struct {
	Pattern []string
	Action  Action
	Stop    bool
}

// Outcome is the result of dispatching one tokenized question. Stop
// signals the read loop to end instead of printing answers.
type Outcome struct {
	Answers []string
	Stop    bool
}

// Table is an ordered pattern–action list. Entries are scanned in
// declaration order and the first structurally matching pattern wins; the
// table is immutable after construction.
type Table struct {
	entries []Entry
}

// NewTable builds a dispatch table from entries, preserving order.
func NewTable(entries ...Entry) *Table {
	return &Table{entries: entries}
}

// Dispatch runs query against each entry in order. The first matching
// entry's action is invoked with the wildcard captures; an action error is
// returned to the caller untouched so the loop boundary can print it and
// continue. When no pattern matches the outcome is the NotUnderstood
// answer, which is not an error.
func (t *Table) Dispatch(ctx context.Context, query []string) (Outcome, error) {
	for _, e := range t.entries {
		captures, ok := Match(e.Pattern, query)
		if !ok {
			continue
		}
		if e.Stop {
			return Outcome{Stop: true}, nil
		}
		answers, err := e.Action(ctx, captures)
		if err != nil {
			return Outcome{}, err
		}
		if len(answers) == 0 {
			return Outcome{Answers: []string{NoAnswers}}, nil
		}
		return Outcome{Answers: answers}, nil
	}
	return Outcome{Answers: []string{NotUnderstood}}, nil
}
