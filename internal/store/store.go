// Package store provides loading and saving of name normalization rules.
package store

import (
	"fmt"
	"os"
	"path/filepath"

	"fjacquet/invoice-recon/internal/logging"
	"fjacquet/invoice-recon/internal/textutils"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

var log = logging.GetLogger()

// SetLogger allows setting a custom logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// RuleStore manages a YAML file holding extra name normalization rules.
// The built-in rules always apply first; file rules are appended after them,
// so the canonical suffix collapsing can never be reordered by configuration.
type RuleStore struct {
	RulesFile string
}

// NewRuleStore creates a store for the given rules file. An empty path means
// only the built-in rules apply.
func NewRuleStore(rulesFile string) *RuleStore {
	return &RuleStore{RulesFile: rulesFile}
}

type rulesDocument struct {
	Rules []textutils.Rule `yaml:"rules"`
}

// Load returns the full rule set: the built-in rules followed by any rules
// from the configured file. A missing or unconfigured file is not an error.
func (s *RuleStore) Load() ([]textutils.Rule, error) {
	rules := make([]textutils.Rule, len(textutils.DefaultRules))
	copy(rules, textutils.DefaultRules)

	if s.RulesFile == "" {
		return rules, nil
	}

	data, err := os.ReadFile(s.RulesFile)
	if err != nil {
		if os.IsNotExist(err) {
			log.WithField(logging.FieldFile, s.RulesFile).Debug("Rules file not found, using built-in rules")
			return rules, nil
		}
		return nil, fmt.Errorf("error reading rules file: %w", err)
	}

	var doc rulesDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("error parsing rules file %s: %w", s.RulesFile, err)
	}

	log.WithFields(logrus.Fields{
		logging.FieldFile:  s.RulesFile,
		logging.FieldCount: len(doc.Rules),
	}).Info("Loaded extra normalization rules")

	return append(rules, doc.Rules...), nil
}

// Save writes the given extra rules (built-in rules are never persisted).
func (s *RuleStore) Save(rules []textutils.Rule) error {
	if s.RulesFile == "" {
		return fmt.Errorf("no rules file configured")
	}

	data, err := yaml.Marshal(rulesDocument{Rules: rules})
	if err != nil {
		return fmt.Errorf("error marshaling rules: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.RulesFile), 0750); err != nil {
		return fmt.Errorf("error creating rules directory: %w", err)
	}

	if err := os.WriteFile(s.RulesFile, data, 0600); err != nil {
		return fmt.Errorf("error writing rules file: %w", err)
	}
	return nil
}
