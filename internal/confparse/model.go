// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package confparse

import (
	"fmt"
	"regexp"
	"strings"
)

// junosIndent is the per-level indentation used when rewriting brace syntax.
const junosIndent = "    "

// ParseError reports configuration text that cannot be turned into a Model.
// Line is 1-based and zero when the error is not tied to a line.
type ParseError struct {
	Dialect string
	Line    int
	Reason  string
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("parse %s config: line %d: %s", e.Dialect, e.Line, e.Reason)
	}
	return fmt.Sprintf("parse %s config: %s", e.Dialect, e.Reason)
}

// Line is a single non-blank configuration line.
type Line struct {
	// Number is the 1-based line number in the source text. For brace
	// dialects it refers to the original, unconverted text.
	Number int
	Text   string
	Indent int

	// Parent is the index of the parent line in the model, or -1.
	Parent int

	// end is the exclusive index of the last descendant.
	end int
}

// Model is a parsed configuration. It is read-only once built and safe for
// concurrent queries.
type Model struct {
	dialect Dialect
	lines   []Line
}

// Parse builds a Model from raw configuration text in the given dialect.
func Parse(text string, dialect string) (*Model, error) {
	d, ok := LookupDialect(dialect)
	if !ok {
		return nil, &ParseError{
			Dialect: dialect,
			Reason: fmt.Sprintf("unsupported dialect %q, must be one of %v",
				dialect, DialectNames()),
		}
	}

	lines := splitLines(text)
	if d.Braces {
		var err error
		if lines, err = convertBraces(d.Name, lines); err != nil {
			return nil, err
		}
	}

	return &Model{dialect: d, lines: buildTree(lines)}, nil
}

// Dialect returns the dialect the model was parsed with.
func (m *Model) Dialect() Dialect {
	return m.dialect
}

// Len returns the number of lines in the model.
func (m *Model) Len() int {
	return len(m.lines)
}

// FindLines returns the text of every line matching re, in document order.
func (m *Model) FindLines(re *regexp.Regexp) []string {
	var found []string
	for _, l := range m.lines {
		if re.MatchString(l.Text) {
			found = append(found, l.Text)
		}
	}
	return found
}

// FindBlocks returns every line matching re together with all of its
// descendants. Lines covered by more than one matching block appear once.
func (m *Model) FindBlocks(re *regexp.Regexp) []string {
	marked := make([]bool, len(m.lines))
	for i := 0; i < len(m.lines); i++ {
		if !re.MatchString(m.lines[i].Text) {
			continue
		}
		for j := i; j < m.lines[i].end; j++ {
			marked[j] = true
		}
	}

	var found []string
	for i, ok := range marked {
		if ok {
			found = append(found, m.lines[i].Text)
		}
	}
	return found
}

// splitLines splits text on newlines, drops carriage returns and blank lines
// and records the source line number of each kept line.
func splitLines(text string) []Line {
	var lines []Line
	for i, raw := range strings.Split(text, "\n") {
		raw = strings.TrimRight(raw, "\r")
		if strings.TrimSpace(raw) == "" {
			continue
		}
		lines = append(lines, Line{Number: i + 1, Text: raw})
	}
	return lines
}

// convertBraces rewrites brace-delimited lines into indentation form. A line
// may carry several statements ("ge-0/0/0 { description x; }"); each becomes
// its own line. A "##" comment after a statement is dropped, a line that is
// only a comment is kept as is.
func convertBraces(dialect string, lines []Line) ([]Line, error) {
	var out []Line
	depth := 0

	for _, l := range lines {
		text := strings.TrimSpace(l.Text)
		if strings.HasPrefix(text, "#") {
			out = append(out, Line{Number: l.Number, Text: strings.Repeat(junosIndent, depth) + text})
			continue
		}

		emit := func(stmt string) {
			if stmt = strings.TrimSpace(stmt); stmt != "" {
				out = append(out, Line{Number: l.Number, Text: strings.Repeat(junosIndent, depth) + stmt})
			}
		}

		var stmt strings.Builder
		quoted := false
	scan:
		for i := 0; i < len(text); i++ {
			c := text[i]
			if quoted {
				stmt.WriteByte(c)
				switch c {
				case '\\':
					if i+1 < len(text) {
						i++
						stmt.WriteByte(text[i])
					}
				case '"':
					quoted = false
				}
				continue
			}

			switch c {
			case '"':
				quoted = true
				stmt.WriteByte(c)
			case '{':
				emit(stmt.String())
				stmt.Reset()
				depth++
			case ';':
				emit(stmt.String())
				stmt.Reset()
			case '}':
				emit(stmt.String())
				stmt.Reset()
				if depth == 0 {
					return nil, &ParseError{Dialect: dialect, Line: l.Number, Reason: "unbalanced closing brace"}
				}
				depth--
			case '#':
				if strings.HasPrefix(text[i:], "##") && strings.TrimSpace(stmt.String()) == "" {
					break scan
				}
				stmt.WriteByte(c)
			default:
				stmt.WriteByte(c)
			}
		}
		emit(stmt.String())
	}

	if depth != 0 {
		return nil, &ParseError{Dialect: dialect, Reason: fmt.Sprintf("%d unclosed brace(s) at end of input", depth)}
	}
	return out, nil
}

// buildTree assigns indentation, parents and subtree extents.
func buildTree(lines []Line) []Line {
	var stack []int

	for i := range lines {
		lines[i].Indent = indentOf(lines[i].Text)
		lines[i].Parent = -1

		for len(stack) > 0 && lines[stack[len(stack)-1]].Indent >= lines[i].Indent {
			lines[stack[len(stack)-1]].end = i
			stack = stack[:len(stack)-1]
		}
		if len(stack) > 0 {
			lines[i].Parent = stack[len(stack)-1]
		}
		stack = append(stack, i)
	}

	for _, i := range stack {
		lines[i].end = len(lines)
	}

	return lines
}

// indentOf counts leading spaces and tabs, one column each.
func indentOf(s string) int {
	return len(s) - len(strings.TrimLeft(s, " \t"))
}
