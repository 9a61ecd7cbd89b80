// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package filters

import (
	"fmt"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/netcfg-grep/netcfg-grep/internal/log"
)

const (
	lineStart = `^`
	// Trailing whitespace on a config line is common enough to tolerate.
	lineEnd = `\s*$`
)

// Rule is a single validated filter rule. Build one with NewRule or
// ParseRule; a zero Rule is compiled on first evaluation.
type Rule struct {
	Index int
	Mode  Mode
	Expr  string

	compiled bool
	// terms holds one entry per pattern the rule runs. All modes run a single
	// pattern except IncludeExactLines, which runs one per expression line.
	terms []term
}

// term is a compiled pattern and the expression text reported on failure.
type term struct {
	expr string
	re   *regexp.Regexp
}

// NewRule validates mode and compiles every pattern expr needs.
func NewRule(index int, mode Mode, expr string) (Rule, error) {
	if !mode.valid() {
		return Rule{}, &ConfigurationError{Index: index, Reason: fmt.Sprintf("unknown filter mode %d", int(mode))}
	}

	r := Rule{Index: index, Mode: mode, Expr: expr, compiled: true}

	var sources []term
	switch mode {
	case IncludeLine, IncludeBlock, IncludeBlockLines:
		sources = []term{{expr: expr}}
	case IncludeExactLines:
		for _, line := range strings.Split(expr, "\n") {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			sources = append(sources, term{expr: line})
		}
	}

	for _, t := range sources {
		re, err := regexp.Compile(pattern(mode, t.expr))
		if err != nil {
			return Rule{}, &ConfigurationError{
				Index:  index,
				Reason: fmt.Sprintf("invalid %s expression %q: %v", mode, t.expr, err),
			}
		}
		r.terms = append(r.terms, term{expr: t.expr, re: re})
	}

	return r, nil
}

// pattern builds the anchored regular expression a mode runs for expr.
func pattern(mode Mode, expr string) string {
	switch mode {
	case IncludeExactLines:
		return lineStart + regexp.QuoteMeta(expr) + lineEnd
	case IncludeBlock:
		return lineStart + expr + lineEnd
	default:
		return lineStart + expr
	}
}

// ParseRule builds a Rule from one entry of the rule file's filters list.
// Exactly one recognized mode key must be present; other keys are ignored.
// Keys pulled in through a YAML merge key ("<<: *base") count as present
// unless the entry sets the same key itself.
func ParseRule(index int, node *yaml.Node) (Rule, error) {
	node = resolveAlias(node)
	if node.Kind != yaml.MappingNode {
		return Rule{}, &ConfigurationError{Index: index, Reason: "filter item is not a mapping"}
	}

	var found []string
	var value *yaml.Node
	var mode Mode
	for _, kv := range mappingPairs(node) {
		m, ok := ParseMode(kv.key)
		if !ok {
			log.Debugf("filter item %d: ignoring key %q", index, kv.key)
			continue
		}
		found = append(found, kv.key)
		mode, value = m, kv.value
	}

	switch {
	case len(found) == 0:
		return Rule{}, &ConfigurationError{
			Index:  index,
			Reason: fmt.Sprintf("no valid filter option found, expected one of %v", ModeKeys()),
		}
	case len(found) > 1:
		return Rule{}, &ConfigurationError{Index: index, Keys: found, Reason: "more than one filter option found"}
	}

	value = resolveAlias(value)
	if value.Kind != yaml.ScalarNode || value.ShortTag() == "!!null" {
		return Rule{}, &ConfigurationError{
			Index:  index,
			Keys:   found,
			Reason: "filter expression must be a string",
		}
	}

	return NewRule(index, mode, value.Value)
}

type keyValue struct {
	key   string
	value *yaml.Node
}

// mappingPairs flattens a mapping node into its keys and values in document
// order, expanding merge keys. A key set on node itself wins over a merged
// one, and among merged mappings the first to set a key wins.
func mappingPairs(node *yaml.Node) []keyValue {
	var direct, merged []keyValue
	for i := 0; i+1 < len(node.Content); i += 2 {
		k, v := node.Content[i], node.Content[i+1]
		if k.Kind == yaml.ScalarNode && k.ShortTag() == "!!merge" {
			merged = append(merged, mergedPairs(v)...)
			continue
		}
		direct = append(direct, keyValue{key: k.Value, value: v})
	}

	seen := make(map[string]bool, len(direct)+len(merged))
	out := make([]keyValue, 0, len(direct)+len(merged))
	for _, kv := range append(direct, merged...) {
		if seen[kv.key] {
			continue
		}
		seen[kv.key] = true
		out = append(out, kv)
	}
	return out
}

// mergedPairs returns the pairs a merge key value contributes: a mapping, or
// a sequence of mappings.
func mergedPairs(node *yaml.Node) []keyValue {
	node = resolveAlias(node)
	switch node.Kind {
	case yaml.MappingNode:
		return mappingPairs(node)
	case yaml.SequenceNode:
		var out []keyValue
		for _, item := range node.Content {
			out = append(out, mergedPairs(item)...)
		}
		return out
	}
	return nil
}

func resolveAlias(node *yaml.Node) *yaml.Node {
	for node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	return node
}

// ensureCompiled compiles a Rule that was not built by NewRule.
func (r Rule) ensureCompiled(index int) (Rule, error) {
	if r.compiled {
		return r, nil
	}
	return NewRule(index, r.Mode, r.Expr)
}
