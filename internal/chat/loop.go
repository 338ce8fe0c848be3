// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package chat runs the interactive question loop: read a line, tokenize,
// dispatch against the pattern table, print, repeat.
// See docs/ARCHITECTURE § Interactive Surface.
package chat

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/pdiddy/wikifacts/internal/match"
)

const (
	defaultPrompt = "> "
	farewell      = "So long!"
)

var welcome = []string{
	"Ask me about world records: fastest times, highest scores, longest",
	"distances, polar radii, and birth dates.",
	`Type "bye" or "exit" to quit.`,
}

// Loop reads questions from in and writes answers to out until a
// termination pattern matches or in is exhausted. One failed question
// never ends the session.
type Loop struct {
	table  *match.Table
	in     io.Reader
	out    io.Writer
	prompt string
}

// NewLoop wires a dispatch table to an input and output stream. An empty
// prompt selects the default.
func NewLoop(table *match.Table, in io.Reader, out io.Writer, prompt string) *Loop {
	if prompt == "" {
		prompt = defaultPrompt
	}
	return &Loop{table: table, in: in, out: out, prompt: prompt}
}

// Run drives the loop. Dispatch errors (a missing page, an ambiguous
// title, an infobox without the field) are printed and the loop continues;
// only the termination pattern, end of input, or a cancelled context end
// it. The farewell line is printed on every exit path.
func (l *Loop) Run(ctx context.Context) error {
	for _, line := range welcome {
		fmt.Fprintln(l.out, line)
	}

	scanner := bufio.NewScanner(l.in)
	for {
		if err := ctx.Err(); err != nil {
			fmt.Fprintln(l.out, farewell)
			return err
		}

		fmt.Fprint(l.out, l.prompt)
		if !scanner.Scan() {
			fmt.Fprintln(l.out)
			fmt.Fprintln(l.out, farewell)
			return scanner.Err()
		}

		tokens := match.Tokenize(scanner.Text())
		if len(tokens) == 0 {
			continue
		}

		outcome, err := l.table.Dispatch(ctx, tokens)
		if err != nil {
			fmt.Fprintln(l.out, err)
			continue
		}
		if outcome.Stop {
			fmt.Fprintln(l.out, farewell)
			return nil
		}
		for _, answer := range outcome.Answers {
			fmt.Fprintln(l.out, answer)
		}
	}
}
