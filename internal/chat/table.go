// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package chat

import (
	"context"

	"github.com/pdiddy/wikifacts/internal/match"
	"github.com/pdiddy/wikifacts/internal/records"
	"github.com/pdiddy/wikifacts/pkg/types"
)

// FactLookup is the slice of the records service the table needs.
type FactLookup interface {
	Lookup(ctx context.Context, kind types.FactKind, subject string) (types.Fact, error)
}

// lookupAction binds one fact kind to a dispatch action. The wildcard
// capture is the subject; an empty capture yields no answers rather than a
// pointless page fetch.
func lookupAction(svc FactLookup, kind types.FactKind) match.Action {
	return func(ctx context.Context, captures []string) ([]string, error) {
		if len(captures) == 0 || captures[0] == "" {
			return nil, nil
		}
		fact, err := svc.Lookup(ctx, kind, captures[0])
		if err != nil {
			return nil, err
		}
		return []string{fact.Sentence()}, nil
	}
}

// DefaultTable builds the standard question table. Order matters: the
// first matching pattern wins, and the termination entries carry no
// action.
func DefaultTable(svc FactLookup) *match.Table {
	return match.NewTable(
		match.Entry{
			Pattern: match.Pattern("what is the fastest time for %"),
			Action:  lookupAction(svc, types.FactFastestTime),
		},
		match.Entry{
			Pattern: match.Pattern("who holds the record for the fastest time in %"),
			Action:  lookupAction(svc, types.FactFastestTime),
		},
		match.Entry{
			Pattern: match.Pattern("what is the highest score in %"),
			Action:  lookupAction(svc, types.FactHighestScore),
		},
		match.Entry{
			Pattern: match.Pattern("who has the highest score in %"),
			Action:  lookupAction(svc, types.FactHighestScore),
		},
		match.Entry{
			Pattern: match.Pattern("what is the longest distance in %"),
			Action:  lookupAction(svc, types.FactLongestDistance),
		},
		match.Entry{
			Pattern: match.Pattern("who holds the record for the longest distance in %"),
			Action:  lookupAction(svc, types.FactLongestDistance),
		},
		match.Entry{
			Pattern: match.Pattern("what is the polar radius of %"),
			Action:  lookupAction(svc, types.FactPolarRadius),
		},
		match.Entry{
			Pattern: match.Pattern("when was % born"),
			Action:  lookupAction(svc, types.FactBirthDate),
		},
		match.Entry{
			Pattern: match.Pattern("what is the birth date of %"),
			Action:  lookupAction(svc, types.FactBirthDate),
		},
		match.Entry{Pattern: match.Pattern("bye"), Stop: true},
		match.Entry{Pattern: match.Pattern("exit"), Stop: true},
	)
}

var _ FactLookup = (*records.Service)(nil)
