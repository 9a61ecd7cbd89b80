// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package filters

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/netcfg-grep/netcfg-grep/internal/log"
)

// Model is the queryable configuration the rules run against. Both queries
// return line text in document order.
type Model interface {
	FindLines(re *regexp.Regexp) []string
	FindBlocks(re *regexp.Regexp) []string
}

// Evaluate runs rules in order and returns one result per rule. It fails on
// an invalid rule, or on the first match-count failure under PolicyStrict;
// in both cases no results are returned.
func Evaluate(model Model, rules []Rule, policy Policy) ([]string, error) {
	log.Debugf("evaluating %d filter(s): policy=%s", len(rules), policy)

	results := make([]string, len(rules))
	for i, rule := range rules {
		rule, err := rule.ensureCompiled(i)
		if err != nil {
			return nil, err
		}

		res, mce := strategies[rule.Mode](model, rule)
		if mce != nil && !rule.Mode.Strict() {
			log.Debugf("filter item %d: ignoring match count for %s: %v", i, rule.Mode, mce)
			mce = nil
		}
		if mce != nil {
			log.Debugf("filter item %d: %v", i, mce)
			if res, err = policy.resolve(mce); err != nil {
				return nil, fmt.Errorf("filter item %d: %w", i, err)
			}
		}

		log.Tracef("filter item %d: mode=%s lines=%d", i, rule.Mode, lineCount(res))
		results[i] = res
	}

	return results, nil
}

func lineCount(s string) int {
	if s == "" {
		return 0
	}
	return strings.Count(s, "\n") + 1
}
