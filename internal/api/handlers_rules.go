package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pkhlegal/legalbrain/internal/rules"
)

func (s *Server) handleListRules(w http.ResponseWriter, r *http.Request) {
	all, err := s.rules.List()
	if err != nil {
		jsonError(w, "failed to load rules: "+err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, all)
}

// handleRuleTypes returns the rule-type and severity enumerations for the
// dashboard to populate its forms.
func (s *Server) handleRuleTypes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]any{
		"rule_types": []map[string]string{
			{"value": string(rules.ExcludeWord), "label": "Exclude Word/Phrase",
				"description": "Never mention this word or phrase in the output"},
			{"value": string(rules.SeverityOverride), "label": "Severity Override",
				"description": "Change the severity level for a specific topic"},
			{"value": string(rules.CustomInstruction), "label": "Custom Instruction",
				"description": "Add a custom instruction for the AI to follow"},
		},
		"severities": []map[string]string{
			{"value": string(rules.SeverityRed), "label": "Red (Deal-breaker)"},
			{"value": string(rules.SeverityAmber), "label": "Amber (Caution)"},
			{"value": string(rules.SeverityGreen), "label": "Green (Standard)"},
			{"value": string(rules.SeverityIgnore), "label": "Ignore (Don't report)"},
		},
	})
}

var validRuleTypes = map[rules.RuleType]bool{
	rules.ExcludeWord:       true,
	rules.SeverityOverride:  true,
	rules.CustomInstruction: true,
}

func (s *Server) handleCreateRule(w http.ResponseWriter, r *http.Request) {
	var spec rules.CreateRule
	if err := json.NewDecoder(r.Body).Decode(&spec); err != nil {
		jsonError(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if !validRuleTypes[spec.RuleType] {
		jsonError(w, "unknown rule_type", http.StatusBadRequest)
		return
	}
	if spec.Value == "" {
		jsonError(w, "value is required", http.StatusBadRequest)
		return
	}

	rule, err := s.rules.Create(spec)
	if err != nil {
		jsonError(w, "failed to create rule: "+err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, rule)
}

func (s *Server) handleGetRule(w http.ResponseWriter, r *http.Request) {
	rule, err := s.rules.Get(chi.URLParam(r, "ruleID"))
	if err != nil {
		s.writeRuleError(w, err)
		return
	}
	writeJSON(w, rule)
}

func (s *Server) handleUpdateRule(w http.ResponseWriter, r *http.Request) {
	var updates rules.UpdateRule
	if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
		jsonError(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if updates.RuleType != nil && !validRuleTypes[*updates.RuleType] {
		jsonError(w, "unknown rule_type", http.StatusBadRequest)
		return
	}

	rule, err := s.rules.Update(chi.URLParam(r, "ruleID"), updates)
	if err != nil {
		s.writeRuleError(w, err)
		return
	}
	writeJSON(w, rule)
}

func (s *Server) handleDeleteRule(w http.ResponseWriter, r *http.Request) {
	if err := s.rules.Delete(chi.URLParam(r, "ruleID")); err != nil {
		s.writeRuleError(w, err)
		return
	}
	writeJSON(w, map[string]string{"status": "deleted"})
}

func (s *Server) handleToggleRule(w http.ResponseWriter, r *http.Request) {
	rule, err := s.rules.Toggle(chi.URLParam(r, "ruleID"))
	if err != nil {
		s.writeRuleError(w, err)
		return
	}
	writeJSON(w, rule)
}

func (s *Server) writeRuleError(w http.ResponseWriter, err error) {
	if errors.Is(err, rules.ErrNotFound) {
		jsonError(w, "Rule not found", http.StatusNotFound)
		return
	}
	jsonError(w, "rule store error: "+err.Error(), http.StatusInternalServerError)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}
