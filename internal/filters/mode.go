// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package filters

import "fmt"

// Mode selects the matching strategy of a rule.
type Mode int

const (
	IncludeLine Mode = iota
	IncludeExactLines
	IncludeBlock
	IncludeBlockLines
)

// modeKeys holds the rule-file key of each mode. Its order is the order in
// which rule keys are recognized.
var modeKeys = [...]string{
	IncludeLine:       "include-line",
	IncludeExactLines: "include-exact-lines",
	IncludeBlock:      "include-block",
	IncludeBlockLines: "include-block-lines",
}

// String returns the rule-file key of the mode.
func (m Mode) String() string {
	if !m.valid() {
		return fmt.Sprintf("Mode(%d)", int(m))
	}
	return modeKeys[m]
}

// Strict reports whether the mode requires exactly one match.
func (m Mode) Strict() bool {
	return m == IncludeLine || m == IncludeExactLines
}

func (m Mode) valid() bool {
	return m >= IncludeLine && int(m) < len(modeKeys)
}

// ParseMode returns the mode for a rule-file key.
func ParseMode(key string) (Mode, bool) {
	for i, k := range modeKeys {
		if k == key {
			return Mode(i), true
		}
	}
	return 0, false
}

// ModeKeys returns the recognized rule-file keys in recognition order.
func ModeKeys() []string {
	return append([]string(nil), modeKeys[:]...)
}
