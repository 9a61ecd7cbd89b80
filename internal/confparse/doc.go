// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package confparse builds a queryable hierarchy from device configuration
// text where indentation implies parent/child.
//
// Dialects:
//
//   - ios, nxos, iosxr, eos, asa : indentation-structured text
//   - junos : brace-delimited text, rewritten into indentation form before
//     the tree is built ("name {" opens a level, "}" closes it, ";" ends a
//     statement and is dropped, four spaces per level). Statements sharing a
//     line are split onto their own lines and a "##" comment trailing a
//     statement is removed.
//
// Blank lines are dropped. Every other line keeps its original text,
// including leading indentation and trailing whitespace. A line's parent is
// the nearest preceding line with strictly smaller indentation, so a block is
// always a line plus the contiguous run of deeper-indented lines after it.
//
// Queries:
//
//   - FindLines : every line whose text matches the pattern
//   - FindBlocks : every matching line plus all of its descendants,
//     de-duplicated and in document order
//
// Patterns are searched unanchored; callers supply ^ and $ as needed.
package confparse
