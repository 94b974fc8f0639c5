// Package classify fills the AI classification columns from free-text
// descriptions using an ordered keyword rule table. One configurable table
// replaces the pile of near-identical single-purpose scripts this work
// started from; the rules are a maintained data asset, not an inferred
// model.
package classify

import (
	"fmt"
	"os"
	"strings"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"

	"github.com/sells-group/appdir-cli/internal/model"
)

// Rule assigns a value when any of its keywords appears in the description.
// When a matching rule has sub-rules, the first matching sub-rule refines
// the value; otherwise the rule's own value stands.
type Rule struct {
	Value    string   `yaml:"value"`
	Keywords []string `yaml:"keywords"`
	Sub      []Rule   `yaml:"sub,omitempty"`
}

// FieldRules classifies one column: ordered rules with a default for when
// nothing matches.
type FieldRules struct {
	Default string `yaml:"default"`
	Rules   []Rule `yaml:"rules"`
}

// Apply evaluates the rules in order against a lowercased description.
func (f FieldRules) Apply(desc string) string {
	for _, r := range f.Rules {
		if !anyKeyword(desc, r.Keywords) {
			continue
		}
		for _, sub := range r.Sub {
			if anyKeyword(desc, sub.Keywords) {
				return sub.Value
			}
		}
		return r.Value
	}
	return f.Default
}

// Ruleset holds the rule tables for all four enumerated columns.
type Ruleset struct {
	Potential FieldRules `yaml:"potential"`
	Risk      FieldRules `yaml:"risk"`
	Usage     FieldRules `yaml:"usage"`
	Type      FieldRules `yaml:"type"`
}

// Result is the classification outcome for one application.
type Result struct {
	Potential           model.AIPotential
	Risk                model.AIRisk
	Usage               model.AIUsage
	Type                model.AIType
	TaxonomyDescription string
}

// Classify runs every rule table against the description and derives the
// taxonomy description from the outcome.
func (rs Ruleset) Classify(description string) Result {
	desc := strings.ToLower(description)

	r := Result{
		Potential: model.AIPotential(rs.Potential.Apply(desc)),
		Risk:      model.AIRisk(rs.Risk.Apply(desc)),
		Usage:     model.AIUsage(rs.Usage.Apply(desc)),
		Type:      model.AIType(rs.Type.Apply(desc)),
	}

	if r.Usage != model.AIUsageNoAIUsage {
		r.TaxonomyDescription = fmt.Sprintf(
			"AI-powered application with %s potential and %s risk profile",
			r.Potential, r.Risk,
		)
	} else {
		r.TaxonomyDescription = fmt.Sprintf(
			"Non-AI application with %s potential for AI integration",
			r.Potential,
		)
	}
	return r
}

// Validate checks that every rule value (and default) belongs to its
// column's enumeration, so a hand-edited rules file cannot write invalid
// values into the directory.
func (rs Ruleset) Validate() error {
	checks := []struct {
		name  string
		field FieldRules
		valid func(string) bool
	}{
		{"potential", rs.Potential, func(v string) bool { return model.AIPotential(v).Valid() }},
		{"risk", rs.Risk, func(v string) bool { return model.AIRisk(v).Valid() }},
		{"usage", rs.Usage, func(v string) bool { return model.AIUsage(v).Valid() }},
		{"type", rs.Type, func(v string) bool { return model.AIType(v).Valid() }},
	}
	for _, c := range checks {
		if !c.valid(c.field.Default) {
			return eris.Errorf("classify: %s default %q is not a valid value", c.name, c.field.Default)
		}
		for _, r := range c.field.Rules {
			if !c.valid(r.Value) {
				return eris.Errorf("classify: %s rule value %q is not a valid value", c.name, r.Value)
			}
			for _, sub := range r.Sub {
				if !c.valid(sub.Value) {
					return eris.Errorf("classify: %s sub-rule value %q is not a valid value", c.name, sub.Value)
				}
			}
		}
	}
	return nil
}

// LoadRuleset reads a rule table from a YAML file and validates it.
func LoadRuleset(path string) (Ruleset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Ruleset{}, eris.Wrapf(err, "classify: read rules %s", path)
	}
	var rs Ruleset
	if err := yaml.Unmarshal(data, &rs); err != nil {
		return Ruleset{}, eris.Wrapf(err, "classify: parse rules %s", path)
	}
	if err := rs.Validate(); err != nil {
		return Ruleset{}, err
	}
	return rs, nil
}

func anyKeyword(desc string, keywords []string) bool {
	for _, k := range keywords {
		if k != "" && strings.Contains(desc, k) {
			return true
		}
	}
	return false
}
