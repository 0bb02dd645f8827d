package rules

import (
	_ "embed"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/phnks/webfg-app-sub004/internal/errors"
)

// FatigueRule selects how fatigue interacts with dice-based attributes
type FatigueRule string

// Fatigue rule versions
const (
	// FatigueRuleIgnore is the current behavior: fatigue is accepted and ignored
	FatigueRuleIgnore FatigueRule = "ignore"
	// FatigueRuleSubtract is the legacy behavior: dice attributes lose fatigue
	FatigueRuleSubtract FatigueRule = "subtract"
)

// DefaultMaxChainLength bounds trigger chains when a rule file does not
const DefaultMaxChainLength = 32

//go:embed default_rules.yaml
var defaultRulesYAML []byte

// RuleSet bundles every table the engine consults
type RuleSet struct {
	Version        int
	Catalog        *Catalog
	Bands          *BandTable
	FatigueRule    FatigueRule
	MaxChainLength int
}

// Validate checks the rule set is usable
func (r *RuleSet) Validate() error {
	if r == nil {
		return errors.InvalidArgument("rule set cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if r.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	if r.Bands == nil {
		vb.RequiredField("Bands")
	}
	switch r.FatigueRule {
	case FatigueRuleIgnore, FatigueRuleSubtract:
	default:
		vb.InvalidField("FatigueRule", string(r.FatigueRule))
	}
	if r.MaxChainLength < 1 {
		vb.Field("MaxChainLength", "must be at least 1")
	}
	return vb.Build()
}

type ruleFile struct {
	Version        int               `yaml:"version"`
	FatigueRule    string            `yaml:"fatigueRule"`
	MaxChainLength int               `yaml:"maxChainLength"`
	Attributes     map[string]string `yaml:"attributes"`
	Bands          []Band            `yaml:"bands"`
	FallbackBand   string            `yaml:"fallbackBand"`
}

// Parse builds a rule set from YAML
func Parse(data []byte) (*RuleSet, error) {
	var f ruleFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, errors.InvalidArgumentf("failed to parse rule set: %v", err)
	}

	dice := make(map[string]DieSize, len(f.Attributes))
	for name, raw := range f.Attributes {
		d, err := ParseDie(raw)
		if err != nil {
			return nil, errors.Wrapf(err, "attribute %s", name)
		}
		dice[name] = d
	}

	catalog, err := NewCatalog(dice)
	if err != nil {
		return nil, err
	}

	bands, err := NewBandTable(f.Bands, f.FallbackBand)
	if err != nil {
		return nil, err
	}

	rs := &RuleSet{
		Version:        f.Version,
		Catalog:        catalog,
		Bands:          bands,
		FatigueRule:    FatigueRule(f.FatigueRule),
		MaxChainLength: f.MaxChainLength,
	}
	if rs.FatigueRule == "" {
		rs.FatigueRule = FatigueRuleIgnore
	}
	if rs.MaxChainLength == 0 {
		rs.MaxChainLength = DefaultMaxChainLength
	}

	if err := rs.Validate(); err != nil {
		return nil, err
	}
	return rs, nil
}

// Load reads a rule set file. An empty path yields the built-in rules.
func Load(path string) (*RuleSet, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path) // #nosec G304 -- operator-supplied rules file
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read rule set %s", path)
	}
	return Parse(data)
}

// Default returns the built-in rule set
func Default() *RuleSet {
	rs, err := Parse(defaultRulesYAML)
	if err != nil {
		panic("rules: embedded default rule set is invalid: " + err.Error())
	}
	return rs
}

// WithFatigueRule returns a copy of the rule set using a different fatigue rule
func (r *RuleSet) WithFatigueRule(rule FatigueRule) *RuleSet {
	cp := *r
	cp.FatigueRule = rule
	return &cp
}
