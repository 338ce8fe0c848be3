// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package records

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/wikifacts/pkg/types"
)

// FieldSpec describes how one fact is pulled out of infobox text: the
// pattern to search for, the named group holding the value, the display
// unit, and the message shown when the pattern finds nothing. All facts
// share one extraction mechanism parameterized by these entries.
type FieldSpec struct {
	Fact    types.FactKind `yaml:"fact"`
	Pattern string         `yaml:"pattern"`
	Group   string         `yaml:"group"`
	Unit    string         `yaml:"unit,omitempty"`
	Missing string         `yaml:"missing"`
}

// builtinSpecs is the default fact table. Patterns are compiled with
// case-insensitive dot-all flags, so they match across the newlines left
// between infobox rows.
var builtinSpecs = []FieldSpec{
	{
		Fact:    types.FactFastestTime,
		Pattern: `(?:Fastest time.*?)(?: ?\d+ )?(?P<value>[\d:.]+)(?:.*?)s`,
		Group:   "value",
		Unit:    "seconds",
		Missing: "page infobox has no fastest time information",
	},
	{
		Fact:    types.FactHighestScore,
		Pattern: `(?:Highest score.*?)(?: ?\d+ )?(?P<value>[\d,]+)(?:.*?)points`,
		Group:   "value",
		Unit:    "points",
		Missing: "page infobox has no highest score information",
	},
	{
		Fact:    types.FactLongestDistance,
		Pattern: `(?:Longest distance.*?)(?: ?\d+ )?(?P<value>[\d,.]+)(?:.*?)km`,
		Group:   "value",
		Unit:    "km",
		Missing: "page infobox has no longest distance information",
	},
	{
		Fact:    types.FactPolarRadius,
		Pattern: `(?:Polar radius.*?)(?: ?\d+ )?(?P<value>[\d,.]+)(?:.*?)km`,
		Group:   "value",
		Unit:    "km",
		Missing: "page infobox has no polar radius information",
	},
	{
		Fact:    types.FactBirthDate,
		Pattern: `(?:Born\D*)(?P<value>\d{1,2} \w+ \d{4})`,
		Group:   "value",
		Missing: "page infobox has no birth date information",
	},
}

// BuiltinSpecs returns a copy of the default fact table.
func BuiltinSpecs() []FieldSpec {
	specs := make([]FieldSpec, len(builtinSpecs))
	copy(specs, builtinSpecs)
	return specs
}

// LoadSpecs reads field-spec overrides from a YAML file and merges them
// over the built-in table: an entry with a known fact kind replaces the
// built-in one, an entry with a new kind is appended after the built-ins.
// An empty path returns the built-ins unchanged.
func LoadSpecs(path string) ([]FieldSpec, error) {
	specs := BuiltinSpecs()
	if path == "" {
		return specs, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading field specs: %w", err)
	}

	var overrides []FieldSpec
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return nil, fmt.Errorf("parsing field specs %s: %w", path, err)
	}

	for _, o := range overrides {
		if o.Fact == "" || o.Pattern == "" || o.Group == "" {
			return nil, fmt.Errorf("field spec entry in %s needs fact, pattern, and group", path)
		}
		replaced := false
		for i := range specs {
			if specs[i].Fact == o.Fact {
				specs[i] = o
				replaced = true
				break
			}
		}
		if !replaced {
			specs = append(specs, o)
		}
	}
	return specs, nil
}
