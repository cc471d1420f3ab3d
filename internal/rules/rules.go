// Package rules manages the user-defined directives that shape the analysis
// prompt: excluded terms, severity overrides, and free-form instructions.
package rules

// RuleType discriminates how a rule modifies the prompt.
type RuleType string

const (
	ExcludeWord       RuleType = "exclude_word"       // never mention this word/phrase
	SeverityOverride  RuleType = "severity_override"  // force a severity for a topic
	CustomInstruction RuleType = "custom_instruction" // free-form instruction
)

// Severity is the risk level a flagged issue carries in the report.
type Severity string

const (
	SeverityRed    Severity = "red"
	SeverityAmber  Severity = "amber"
	SeverityGreen  Severity = "green"
	SeverityIgnore Severity = "ignore"
)

// Rule is one stored directive. ID is assigned at creation and stable for
// the rule's lifetime.
type Rule struct {
	ID          string   `json:"id"`
	RuleType    RuleType `json:"rule_type"`
	Value       string   `json:"value"`
	Severity    Severity `json:"severity,omitempty"`
	Instruction string   `json:"instruction,omitempty"`
	Enabled     bool     `json:"enabled"`
}

// CreateRule is the payload for creating a rule. Enabled defaults to true
// when omitted.
type CreateRule struct {
	RuleType    RuleType `json:"rule_type"`
	Value       string   `json:"value"`
	Severity    Severity `json:"severity,omitempty"`
	Instruction string   `json:"instruction,omitempty"`
	Enabled     *bool    `json:"enabled,omitempty"`
}

// UpdateRule is a partial update; nil fields keep their current values.
type UpdateRule struct {
	RuleType    *RuleType `json:"rule_type,omitempty"`
	Value       *string   `json:"value,omitempty"`
	Severity    *Severity `json:"severity,omitempty"`
	Instruction *string   `json:"instruction,omitempty"`
	Enabled     *bool     `json:"enabled,omitempty"`
}
