package rules

import "declaudit/internal/metadata"

// Rule evaluates one convention over a declaration snapshot. Rules are
// stateless and never depend on another rule's results.
type Rule interface {
	Name() string
	Evaluate(snapshot *metadata.Snapshot) []metadata.Violation
}

// Engine runs a fixed set of convention rules.
type Engine struct {
	rules []Rule
}

// NewEngine constructs an Engine with the default rule set.
func NewEngine() *Engine {
	return NewEngineWithRules(
		VisibilityLocalityRule{},
		CapabilityPairingRule{},
		RequiredOptionTypingRule{},
		DefaultOptionRule{},
		AliasNamingRule{},
	)
}

// NewEngineWithRules constructs an Engine running the provided rules in order.
func NewEngineWithRules(selectedRules ...Rule) *Engine {
	return &Engine{rules: selectedRules}
}

// Evaluate runs every rule and concatenates the findings. Each rule's
// findings are sorted before concatenation so repeated runs over an
// unchanged snapshot produce identically ordered output.
func (engine *Engine) Evaluate(snapshot *metadata.Snapshot) []metadata.Violation {
	violations := make([]metadata.Violation, 0)
	for _, selectedRule := range engine.rules {
		ruleViolations := selectedRule.Evaluate(snapshot)
		metadata.SortViolations(ruleViolations)
		violations = append(violations, ruleViolations...)
	}
	return violations
}
