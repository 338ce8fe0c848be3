// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package infobox

import (
	"regexp"
	"strings"
)

var (
	spaceRuns   = regexp.MustCompile(` {2,}`)
	newlineRuns = regexp.MustCompile(`\n{2,}`)
)

// Normalize cleans extracted infobox text for regex matching: every
// character outside the printable ASCII set becomes a single space (so
// word boundaries survive), then runs of spaces collapse to one space and
// runs of newlines collapse to one newline. Idempotent.
func Normalize(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if printable(r) {
			b.WriteRune(r)
		} else {
			b.WriteByte(' ')
		}
	}
	s := spaceRuns.ReplaceAllString(b.String(), " ")
	return newlineRuns.ReplaceAllString(s, "\n")
}

// printable reports whether r is printable ASCII, including the ASCII
// whitespace characters.
func printable(r rune) bool {
	if r >= 0x20 && r < 0x7f {
		return true
	}
	switch r {
	case '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}
