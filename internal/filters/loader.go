// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package filters

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// GrepConfig is a loaded rule file: the dialect of the device configuration
// and the ordered rules to apply to it.
type GrepConfig struct {
	OSName string
	Rules  []Rule
}

// UnmarshalYAML decodes os_name and filters, validating every rule.
func (c *GrepConfig) UnmarshalYAML(value *yaml.Node) error {
	var raw struct {
		OSName  string    `yaml:"os_name"`
		Filters yaml.Node `yaml:"filters"`
	}
	if err := value.Decode(&raw); err != nil {
		return err
	}

	if raw.Filters.Kind == 0 || raw.Filters.ShortTag() == "!!null" {
		return &ConfigurationError{Index: -1, Reason: "missing filters"}
	}
	if raw.Filters.Kind != yaml.SequenceNode {
		return &ConfigurationError{Index: -1, Reason: "filters must be a list"}
	}

	rules := make([]Rule, 0, len(raw.Filters.Content))
	for i, item := range raw.Filters.Content {
		rule, err := ParseRule(i, item)
		if err != nil {
			return err
		}
		rules = append(rules, rule)
	}

	c.OSName = raw.OSName
	c.Rules = rules
	return nil
}

// ParseGrepConfig decodes a rule file.
func ParseGrepConfig(data []byte) (GrepConfig, error) {
	var cfg GrepConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return GrepConfig{}, err
	}

	if strings.TrimSpace(cfg.OSName) == "" {
		return GrepConfig{}, &ConfigurationError{Index: -1, Reason: "missing os_name"}
	}

	return cfg, nil
}

// LoadGrepConfig reads and decodes the rule file at path.
func LoadGrepConfig(path string) (GrepConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return GrepConfig{}, fmt.Errorf("failed to read grep config: %w", err)
	}

	cfg, err := ParseGrepConfig(data)
	if err != nil {
		return GrepConfig{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}
