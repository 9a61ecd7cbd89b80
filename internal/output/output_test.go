// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package output

import (
	"bytes"
	"os"
	"testing"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sample = []string{
	"hostname router1",
	"interface Eth1\n description uplink",
	"",
	"! DEBUG-MISSING: snmp-server",
}

func TestSpit(t *testing.T) {
	tests := []struct {
		name    string
		results []string
		format  string
		want    string
	}{
		{
			name:    "text separates with blank line",
			results: sample,
			format:  "text",
			want:    "hostname router1\n\ninterface Eth1\n description uplink\n\n\n\n! DEBUG-MISSING: snmp-server\n",
		},
		{
			name:    "default format is text",
			results: []string{"a"},
			format:  "",
			want:    "a\n",
		},
		{
			name:    "json",
			results: []string{"a", " b"},
			format:  "json",
			want:    "[\n  \"a\",\n  \" b\"\n]\n",
		},
		{
			name:    "json empty",
			results: nil,
			format:  "json",
			want:    "[]\n",
		},
		{
			name:    "yaml",
			results: []string{"hostname r1", ""},
			format:  "yaml",
			want:    "- hostname r1\n- \"\"\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := Spit(tt.results, Options{Format: tt.format}, &buf)
			require.NoError(t, err)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestSpit_UnsupportedFormat(t *testing.T) {
	var buf bytes.Buffer
	err := Spit(sample, Options{Format: "xml"}, &buf)
	assert.ErrorContains(t, err, "unsupported output format")
	assert.Empty(t, buf.String())
}

func TestColorize(t *testing.T) {
	missing := lipgloss.NewStyle().Bold(true)
	extra := lipgloss.NewStyle().Italic(true)

	in := []string{"hostname r1", "! DEBUG-MISSING: a", "! DEBUG-EXTRA(2): b"}
	got := Colorize(in, missing, extra)

	require.Len(t, got, 3)
	assert.Equal(t, "hostname r1", got[0])
	assert.Equal(t, missing.Render("! DEBUG-MISSING: a"), got[1])
	assert.Equal(t, extra.Render("! DEBUG-EXTRA(2): b"), got[2])

	// The input is not modified.
	assert.Equal(t, "! DEBUG-MISSING: a", in[1])
}

func TestColorEnabled(t *testing.T) {
	assert.False(t, ColorEnabled(false, os.Stdout))
	assert.False(t, ColorEnabled(true, nil))

	f, err := os.CreateTemp(t.TempDir(), "out")
	require.NoError(t, err)
	defer f.Close()
	assert.False(t, ColorEnabled(true, f))
}

func TestTableWriter(t *testing.T) {
	var buf bytes.Buffer
	TableWriter([]string{"NAME", "DESCRIPTION"}, [][]string{
		{"ios", "Cisco IOS"},
		{"junos", "Juniper Junos"},
	}, true, &buf)

	out := buf.String()
	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "ios")
	assert.Contains(t, out, "Juniper Junos")

	buf.Reset()
	TableWriter([]string{"NAME"}, nil, true, &buf)
	assert.Empty(t, buf.String())
}
