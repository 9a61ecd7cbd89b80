// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package filters

import (
	"fmt"
	"regexp"
	"strings"
)

// Policy decides what a match-count failure turns into.
type Policy int

const (
	// PolicySilent yields an empty result for the failing rule.
	PolicySilent Policy = iota
	// PolicyAnnotated yields a DEBUG marker naming the failing expression.
	PolicyAnnotated
	// PolicyStrict aborts the evaluation.
	PolicyStrict
)

const (
	missingMarker = "! DEBUG-MISSING: "
	extraMarker   = "! DEBUG-EXTRA(%d): "
)

var extraMarkerRegex = regexp.MustCompile(`^! DEBUG-EXTRA\(\d+\): `)

// PolicyFromFlags maps the --fail-error and --debug flags onto a Policy.
// failError wins over debug.
func PolicyFromFlags(failError, debug bool) Policy {
	switch {
	case failError:
		return PolicyStrict
	case debug:
		return PolicyAnnotated
	default:
		return PolicySilent
	}
}

func (p Policy) String() string {
	switch p {
	case PolicySilent:
		return "silent"
	case PolicyAnnotated:
		return "annotated"
	case PolicyStrict:
		return "strict"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// resolve turns a match-count failure into a rule result, or returns it as
// an error under PolicyStrict.
func (p Policy) resolve(mce *MatchCountError) (string, error) {
	switch p {
	case PolicyStrict:
		return "", mce
	case PolicyAnnotated:
		return Annotate(mce), nil
	default:
		return "", nil
	}
}

// Annotate renders the DEBUG marker for a match-count failure.
func Annotate(mce *MatchCountError) string {
	if mce.Missing() {
		return missingMarker + mce.Expr
	}
	return fmt.Sprintf(extraMarker, mce.Count) + mce.Expr
}

// IsMarker reports whether a result line is a DEBUG marker, and if so whether
// it marks a missing match.
func IsMarker(line string) (marker bool, missing bool) {
	if strings.HasPrefix(line, missingMarker) {
		return true, true
	}
	return extraMarkerRegex.MatchString(line), false
}
