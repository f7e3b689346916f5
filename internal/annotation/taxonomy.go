package annotation

import (
	_ "embed"
	"fmt"
	"slices"
	"sort"

	"gopkg.in/yaml.v3"
)

//go:embed taxonomy.yaml
var taxonomyYAML []byte

// Taxonomy is the fixed enumeration of attitude categories: each attitude
// type maps to its allowed subtypes. It is validated against at edit and
// add time rather than trusted from input.
type Taxonomy struct {
	Types      map[string][]string `yaml:"types"`
	Polarities []string            `yaml:"polarities"`
}

// Attitudes is the taxonomy shipped with the binary.
var Attitudes = mustLoadTaxonomy()

func mustLoadTaxonomy() *Taxonomy {
	t := &Taxonomy{}
	if err := yaml.Unmarshal(taxonomyYAML, t); err != nil {
		panic(fmt.Sprintf("embedded taxonomy is invalid: %v", err))
	}
	return t
}

// TypeNames returns the attitude type names in sorted order.
func (t *Taxonomy) TypeNames() []string {
	names := make([]string, 0, len(t.Types))
	for name := range t.Types {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Subtypes returns the allowed subtypes for an attitude type.
func (t *Taxonomy) Subtypes(attitudeType string) []string {
	return t.Types[attitudeType]
}

// Validate checks an attitude type/subtype/polarity triple against the
// taxonomy. Types without subtypes accept only the subtype "none".
func (t *Taxonomy) Validate(attitudeType, subtype, polarity string) error {
	subtypes, ok := t.Types[attitudeType]
	if !ok {
		return fmt.Errorf("unknown attitude type %q", attitudeType)
	}
	if len(subtypes) == 0 {
		if subtype != "none" && subtype != "" {
			return fmt.Errorf("attitude type %q has no subtype %q", attitudeType, subtype)
		}
	} else if !slices.Contains(subtypes, subtype) {
		return fmt.Errorf("attitude type %q has no subtype %q", attitudeType, subtype)
	}
	if !slices.Contains(t.Polarities, polarity) {
		return fmt.Errorf("unknown polarity %q", polarity)
	}
	return nil
}
