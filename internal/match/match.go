// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package match aligns tokenized questions against wildcard patterns and
// dispatches the first matching pattern's action.
// See docs/ARCHITECTURE § Matching.
package match

import "strings"

// Wildcard is the pattern token that consumes any span of source tokens,
// including the empty span.
const Wildcard = "%"

// Match aligns pattern against source token by token. Literal tokens must
// be equal; a Wildcard binds a contiguous span of source tokens, preferring
// the longest span that lets the rest of the pattern match. On success it
// returns one capture per wildcard occurrence, each a space-joined span, in
// left-to-right order. The second return value distinguishes a failed match
// from a successful match with no wildcards.
//
// Recursion depth is bounded by len(pattern) and each wildcard tries at
// most len(source)+1 splits, so Match always terminates.
func Match(pattern, source []string) ([]string, bool) {
	if len(pattern) == 0 {
		if len(source) == 0 {
			return []string{}, true
		}
		return nil, false
	}

	if pattern[0] == Wildcard {
		// Longest split first keeps the wildcard greedy against the
		// remaining literal tokens.
		for n := len(source); n >= 0; n-- {
			rest, ok := Match(pattern[1:], source[n:])
			if !ok {
				continue
			}
			captures := make([]string, 0, len(rest)+1)
			captures = append(captures, strings.Join(source[:n], " "))
			return append(captures, rest...), true
		}
		return nil, false
	}

	if len(source) == 0 || source[0] != pattern[0] {
		return nil, false
	}
	return Match(pattern[1:], source[1:])
}

// Tokenize turns one typed question into match tokens: question marks are
// stripped, the line is lowercased, and whitespace splits the rest.
func Tokenize(line string) []string {
	return strings.Fields(strings.ToLower(strings.ReplaceAll(line, "?", "")))
}

// Pattern builds a pattern from a space-separated template, e.g.
// "what is the polar radius of %".
func Pattern(template string) []string {
	return strings.Fields(template)
}
