// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package filters extracts fragments of a parsed device configuration
// according to an ordered list of filter rules.
//
// Each rule carries exactly one mode key and an expression:
//
//   - include-line : the single line matching ^<expr>
//   - include-exact-lines : one literal line per expression line, each
//     matched as ^<escaped, trimmed text>\s*$ exactly once. Blank
//     expression lines are skipped, so they never fail and add no output
//   - include-block : every line matching ^<expr>\s*$ plus its descendants
//   - include-block-lines : every line matching ^<expr> plus its descendants
//
// Examples:
//
//	os_name: ios
//	filters:
//	  - include-line: "hostname "
//	  - include-block: "interface Eth1"
//	  - include-exact-lines: |
//	      ntp server 10.1.1.1
//	      ntp server 10.1.1.2
//
// Rule Parsing:
//
// Rules are validated when the rule file is loaded. A rule with zero or more
// than one recognized mode key, a non-string expression, or an expression
// that does not compile is a ConfigurationError naming the rule's index.
// Unrecognized keys are ignored. Keys merged in with "<<: *anchor" count as
// if written on the rule; a key set on the rule itself wins. Expressions use
// Go RE2 syntax.
//
// Match Counts and Policy:
//
// include-line and include-exact-lines require exactly one match and report
// a MatchCountError otherwise. The block modes never fail; no match yields an
// empty result. A Policy decides what a MatchCountError becomes:
//
//   - PolicySilent : an empty result
//   - PolicyAnnotated : a "! DEBUG-MISSING: <expr>" or
//     "! DEBUG-EXTRA(<count>): <expr>" marker
//   - PolicyStrict : evaluation aborts with the error
//
// Results:
//
// Evaluate returns one string per rule, in rule order. Every returned line
// has trailing whitespace removed; leading indentation is kept.
package filters
