// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package confparse

import (
	"sort"
	"strings"
)

// Dialect describes one supported configuration syntax.
type Dialect struct {
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description" json:"description"`

	// Braces marks brace-delimited syntax that is rewritten into indentation
	// form before parsing.
	Braces bool `yaml:"braces" json:"braces"`
}

var dialects = map[string]Dialect{
	"ios":   {Name: "ios", Description: "Cisco IOS / IOS-XE"},
	"nxos":  {Name: "nxos", Description: "Cisco NX-OS"},
	"iosxr": {Name: "iosxr", Description: "Cisco IOS-XR"},
	"eos":   {Name: "eos", Description: "Arista EOS"},
	"asa":   {Name: "asa", Description: "Cisco ASA"},
	"junos": {Name: "junos", Description: "Juniper Junos (brace format)", Braces: true},
}

// LookupDialect returns the dialect registered under name. Names are
// case-insensitive.
func LookupDialect(name string) (Dialect, bool) {
	d, ok := dialects[strings.ToLower(strings.TrimSpace(name))]
	return d, ok
}

// Dialects returns all supported dialects sorted by name.
func Dialects() []Dialect {
	out := make([]Dialect, 0, len(dialects))
	for _, d := range dialects {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})
	return out
}

// DialectNames returns the sorted dialect names.
func DialectNames() []string {
	ds := Dialects()
	names := make([]string, len(ds))
	for i, d := range ds {
		names[i] = d.Name
	}
	return names
}
