// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package records looks up world-record style facts for a subject: fetch
// the subject's page, take its first infobox, normalize the text, and
// extract the requested field. See docs/ARCHITECTURE § Lookup.
package records

import (
	"context"
	"fmt"
	"regexp"

	"github.com/pdiddy/wikifacts/internal/infobox"
	"github.com/pdiddy/wikifacts/pkg/types"
)

// PageSource supplies page HTML for a title. The wiki client implements
// it; tests supply fixtures.
type PageSource interface {
	PageHTML(ctx context.Context, title string) (string, error)
}

type compiledSpec struct {
	FieldSpec
	re *regexp.Regexp
}

// Service resolves facts against a page source using a compiled fact
// table. Read-only after construction.
type Service struct {
	source PageSource
	specs  map[types.FactKind]compiledSpec
}

// NewService compiles the fact table and binds it to a page source.
func NewService(source PageSource, specs []FieldSpec) (*Service, error) {
	compiled := make(map[types.FactKind]compiledSpec, len(specs))
	for _, spec := range specs {
		re, err := infobox.CompileField(spec.Pattern)
		if err != nil {
			return nil, fmt.Errorf("field spec for %s: %w", spec.Fact, err)
		}
		compiled[spec.Fact] = compiledSpec{FieldSpec: spec, re: re}
	}
	return &Service{source: source, specs: compiled}, nil
}

// Kinds lists the fact kinds this service can look up, in built-in order
// first.
func (s *Service) Kinds() []types.FactKind {
	kinds := make([]types.FactKind, 0, len(s.specs))
	for _, k := range types.Kinds() {
		if _, ok := s.specs[k]; ok {
			kinds = append(kinds, k)
		}
	}
	for k := range s.specs {
		if !contains(kinds, k) {
			kinds = append(kinds, k)
		}
	}
	return kinds
}

func contains(kinds []types.FactKind, k types.FactKind) bool {
	for _, have := range kinds {
		if have == k {
			return true
		}
	}
	return false
}

// Lookup retrieves the page for subject and extracts the fact of the given
// kind. Retrieval and extraction failures propagate untouched so callers
// can distinguish a missing page from a missing infobox from a missing
// field.
func (s *Service) Lookup(ctx context.Context, kind types.FactKind, subject string) (types.Fact, error) {
	spec, ok := s.specs[kind]
	if !ok {
		return types.Fact{}, fmt.Errorf("no field spec for fact kind %q", kind)
	}

	html, err := s.source.PageHTML(ctx, subject)
	if err != nil {
		return types.Fact{}, err
	}

	text, err := infobox.FirstText(html)
	if err != nil {
		return types.Fact{}, err
	}

	groups, err := infobox.ExtractField(infobox.Normalize(text), spec.re, spec.Missing)
	if err != nil {
		return types.Fact{}, err
	}

	value, ok := groups[spec.Group]
	if !ok {
		return types.Fact{}, fmt.Errorf("field spec for %s captures no group named %q", kind, spec.Group)
	}

	return types.Fact{
		Kind:    kind,
		Subject: subject,
		Value:   value,
		Unit:    spec.Unit,
	}, nil
}
