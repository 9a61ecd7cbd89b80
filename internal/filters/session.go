// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package filters

import (
	"github.com/dustin/go-humanize"

	"github.com/netcfg-grep/netcfg-grep/internal/confparse"
	"github.com/netcfg-grep/netcfg-grep/internal/log"
)

// Session is one grep run: a parsed device configuration, the rules to apply
// and the failure policy.
type Session struct {
	Model  *confparse.Model
	Rules  []Rule
	Policy Policy
}

// NewSession parses deviceConfig in cfg's dialect. A parse failure is
// returned before any rule is evaluated.
func NewSession(cfg GrepConfig, deviceConfig string, policy Policy) (*Session, error) {
	model, err := confparse.Parse(deviceConfig, cfg.OSName)
	if err != nil {
		return nil, err
	}

	log.Debugf("parsed %s of %s config into %s lines",
		humanize.Bytes(uint64(len(deviceConfig))), model.Dialect().Name,
		humanize.Comma(int64(model.Len())))

	return &Session{Model: model, Rules: cfg.Rules, Policy: policy}, nil
}

// Run evaluates the session's rules.
func (s *Session) Run() ([]string, error) {
	return Evaluate(s.Model, s.Rules, s.Policy)
}
