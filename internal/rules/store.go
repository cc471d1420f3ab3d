package rules

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
)

// ErrNotFound is returned when no rule exists with the requested id.
var ErrNotFound = errors.New("rule not found")

// Store persists rules as a flat JSON array on disk. Every operation holds
// the store mutex across its full read-modify-write cycle, so concurrent
// writers cannot lose updates.
type Store struct {
	mu   sync.Mutex
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

func (s *Store) load() ([]Rule, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []Rule{}, nil
		}
		return nil, fmt.Errorf("read rules file: %w", err)
	}
	var rules []Rule
	if err := json.Unmarshal(data, &rules); err != nil {
		return nil, fmt.Errorf("parse rules file: %w", err)
	}
	return rules, nil
}

func (s *Store) save(rules []Rule) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create rules dir: %w", err)
		}
	}
	data, err := json.MarshalIndent(rules, "", "  ")
	if err != nil {
		return fmt.Errorf("encode rules: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write rules file: %w", err)
	}
	return nil
}

// List returns all rules in insertion order.
func (s *Store) List() ([]Rule, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// ListEnabled returns only rules with Enabled set. These are the rules
// visible to prompt construction.
func (s *Store) ListEnabled() ([]Rule, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	all, err := s.load()
	if err != nil {
		return nil, err
	}
	enabled := make([]Rule, 0, len(all))
	for _, r := range all {
		if r.Enabled {
			enabled = append(enabled, r)
		}
	}
	return enabled, nil
}

// Get returns the rule with the given id.
func (s *Store) Get(id string) (Rule, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	all, err := s.load()
	if err != nil {
		return Rule{}, err
	}
	for _, r := range all {
		if r.ID == id {
			return r, nil
		}
	}
	return Rule{}, ErrNotFound
}

// Create assigns a fresh id, persists the rule, and returns it.
func (s *Store) Create(spec CreateRule) (Rule, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	all, err := s.load()
	if err != nil {
		return Rule{}, err
	}

	enabled := true
	if spec.Enabled != nil {
		enabled = *spec.Enabled
	}
	rule := Rule{
		ID:          uuid.NewString(),
		RuleType:    spec.RuleType,
		Value:       spec.Value,
		Severity:    spec.Severity,
		Instruction: spec.Instruction,
		Enabled:     enabled,
	}

	all = append(all, rule)
	if err := s.save(all); err != nil {
		return Rule{}, err
	}
	return rule, nil
}

// Update merges the provided fields into the stored rule.
func (s *Store) Update(id string, updates UpdateRule) (Rule, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	all, err := s.load()
	if err != nil {
		return Rule{}, err
	}
	for i, r := range all {
		if r.ID != id {
			continue
		}
		if updates.RuleType != nil {
			r.RuleType = *updates.RuleType
		}
		if updates.Value != nil {
			r.Value = *updates.Value
		}
		if updates.Severity != nil {
			r.Severity = *updates.Severity
		}
		if updates.Instruction != nil {
			r.Instruction = *updates.Instruction
		}
		if updates.Enabled != nil {
			r.Enabled = *updates.Enabled
		}
		all[i] = r
		if err := s.save(all); err != nil {
			return Rule{}, err
		}
		return r, nil
	}
	return Rule{}, ErrNotFound
}

// Delete removes the rule with the given id.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	all, err := s.load()
	if err != nil {
		return err
	}
	for i, r := range all {
		if r.ID == id {
			all = append(all[:i], all[i+1:]...)
			return s.save(all)
		}
	}
	return ErrNotFound
}

// Toggle flips the rule's enabled flag and returns the updated rule.
func (s *Store) Toggle(id string) (Rule, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	all, err := s.load()
	if err != nil {
		return Rule{}, err
	}
	for i, r := range all {
		if r.ID == id {
			r.Enabled = !r.Enabled
			all[i] = r
			if err := s.save(all); err != nil {
				return Rule{}, err
			}
			return r, nil
		}
	}
	return Rule{}, ErrNotFound
}
