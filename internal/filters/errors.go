// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package filters

import "fmt"

// ConfigurationError reports an invalid rule file or rule. Index is the
// 0-based position of the offending rule, or -1 for file-level problems.
type ConfigurationError struct {
	Index  int
	Keys   []string
	Reason string
}

func (e *ConfigurationError) Error() string {
	if e.Index < 0 {
		return "invalid grep config: " + e.Reason
	}
	if len(e.Keys) > 0 {
		return fmt.Sprintf("filter item %d: %s %v", e.Index, e.Reason, e.Keys)
	}
	return fmt.Sprintf("filter item %d: %s", e.Index, e.Reason)
}

// MatchCountError reports a strict mode expression that did not match
// exactly one line.
type MatchCountError struct {
	Mode  Mode
	Expr  string
	Count int
}

func (e *MatchCountError) Error() string {
	return fmt.Sprintf("%s: not exactly one (%d) matching expr: %s", e.Mode, e.Count, e.Expr)
}

// Missing reports whether nothing matched.
func (e *MatchCountError) Missing() bool {
	return e.Count == 0
}
