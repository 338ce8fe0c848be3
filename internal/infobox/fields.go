// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package infobox

import (
	"fmt"
	"regexp"
)

// FieldNotFoundError reports that infobox text has no match for a field
// pattern. Message is the caller-supplied per-field explanation shown to
// the user.
type FieldNotFoundError struct {
	Message string
}

func (e *FieldNotFoundError) Error() string {
	return e.Message
}

// CompileField compiles a field pattern with case-insensitive,
// dot-matches-newline semantics. Extraction has to span the newlines that
// Normalize leaves between infobox rows.
func CompileField(pattern string) (*regexp.Regexp, error) {
	re, err := regexp.Compile(`(?is)` + pattern)
	if err != nil {
		return nil, fmt.Errorf("compiling field pattern %q: %w", pattern, err)
	}
	return re, nil
}

// ExtractField searches text for the first match of re and returns its
// named capture groups. When nothing matches it fails with a
// FieldNotFoundError carrying onMissing.
func ExtractField(text string, re *regexp.Regexp, onMissing string) (map[string]string, error) {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return nil, &FieldNotFoundError{Message: onMissing}
	}

	groups := make(map[string]string)
	for i, name := range re.SubexpNames() {
		if name != "" && i < len(m) {
			groups[name] = m[i]
		}
	}
	return groups, nil
}
