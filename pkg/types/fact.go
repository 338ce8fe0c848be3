// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "fmt"

// FactKind identifies a queryable infobox attribute.
type FactKind string

const (
	FactFastestTime     FactKind = "fastest-time"
	FactHighestScore    FactKind = "highest-score"
	FactLongestDistance FactKind = "longest-distance"
	FactPolarRadius     FactKind = "polar-radius"
	FactBirthDate       FactKind = "birth-date"
)

// Kinds lists all built-in fact kinds in declaration order.
func Kinds() []FactKind {
	return []FactKind{
		FactFastestTime,
		FactHighestScore,
		FactLongestDistance,
		FactPolarRadius,
		FactBirthDate,
	}
}

// ParseFactKind validates a fact-kind string (e.g. from a CLI flag).
func ParseFactKind(s string) (FactKind, error) {
	for _, k := range Kinds() {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown fact kind %q (expected one of %v)", s, Kinds())
}

// Fact is one extracted attribute value for a subject.
type Fact struct {
	// Kind identifies the attribute.
	Kind FactKind `json:"kind" yaml:"kind"`

	// Subject is the page title the value was extracted from, as the
	// user phrased it.
	Subject string `json:"subject" yaml:"subject"`

	// Value is the raw captured token (e.g. "1:31.552", "6356.8").
	Value string `json:"value" yaml:"value"`

	// Unit is the display unit, empty for unitless facts such as dates.
	Unit string `json:"unit,omitempty" yaml:"unit,omitempty"`
}

// Sentence renders the human-readable answer. The mapping from subject and
// value to sentence is fixed so repeated lookups phrase identically.
func (f Fact) Sentence() string {
	switch f.Kind {
	case FactFastestTime:
		return fmt.Sprintf("the fastest time in %s is %s seconds", f.Subject, f.Value)
	case FactHighestScore:
		return fmt.Sprintf("the highest score in %s is %s points", f.Subject, f.Value)
	case FactLongestDistance:
		return fmt.Sprintf("the longest distance in %s is %s km", f.Subject, f.Value)
	case FactPolarRadius:
		return fmt.Sprintf("the polar radius of %s is %s km", f.Subject, f.Value)
	case FactBirthDate:
		return fmt.Sprintf("%s was born on %s", f.Subject, f.Value)
	default:
		if f.Unit != "" {
			return fmt.Sprintf("the %s of %s is %s %s", f.Kind, f.Subject, f.Value, f.Unit)
		}
		return fmt.Sprintf("the %s of %s is %s", f.Kind, f.Subject, f.Value)
	}
}
