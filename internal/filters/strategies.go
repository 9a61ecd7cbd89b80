// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package filters

import (
	"strings"
	"unicode"
)

// strategy evaluates one compiled rule against the model. A non-nil
// MatchCountError is only ever returned by the strict modes.
type strategy func(model Model, r Rule) (string, *MatchCountError)

var strategies = [...]strategy{
	IncludeLine:       includeLine,
	IncludeExactLines: includeExactLines,
	IncludeBlock:      includeBlock,
	IncludeBlockLines: includeBlock,
}

// includeLine returns the single line matching the rule's pattern.
func includeLine(model Model, r Rule) (string, *MatchCountError) {
	t := r.terms[0]
	found := model.FindLines(t.re)
	if len(found) != 1 {
		return "", &MatchCountError{Mode: r.Mode, Expr: t.expr, Count: len(found)}
	}
	return trimRight(found[0]), nil
}

// includeExactLines returns one line per literal expression line. The first
// literal that does not match exactly once fails the whole rule.
func includeExactLines(model Model, r Rule) (string, *MatchCountError) {
	res := make([]string, 0, len(r.terms))
	for _, t := range r.terms {
		found := model.FindLines(t.re)
		if len(found) != 1 {
			return "", &MatchCountError{Mode: r.Mode, Expr: t.expr, Count: len(found)}
		}
		res = append(res, trimRight(found[0]))
	}
	return strings.Join(res, "\n"), nil
}

// includeBlock returns every matching line with its descendants. The two
// block modes differ only in how the pattern is anchored.
func includeBlock(model Model, r Rule) (string, *MatchCountError) {
	found := model.FindBlocks(r.terms[0].re)
	for i := range found {
		found[i] = trimRight(found[i])
	}
	return strings.Join(found, "\n"), nil
}

// trimRight strips trailing whitespace and keeps indentation.
func trimRight(s string) string {
	return strings.TrimRightFunc(s, unicode.IsSpace)
}
