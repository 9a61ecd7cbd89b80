// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package command

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/netcfg-grep/netcfg-grep/internal/confparse"
	"github.com/netcfg-grep/netcfg-grep/internal/filters"
)

const (
	testGrep   = "testdata/grep.yaml"
	testRouter = "testdata/router.cfg"
)

func TestRunGrep(t *testing.T) {
	got, err := runGrep(grepRequest{
		GrepConfig:   testGrep,
		DeviceConfig: testRouter,
		Policy:       filters.PolicyAnnotated,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"hostname router1",
		"interface Eth1\n description uplink\n no shutdown",
		"ntp server 10.1.1.1\nntp server 10.1.1.2",
		"! DEBUG-EXTRA(2): ntp server",
	}, got)
}

func TestRunGrep_Stdin(t *testing.T) {
	data, err := os.ReadFile(testRouter)
	require.NoError(t, err)

	got, err := runGrep(grepRequest{
		GrepConfig:   testGrep,
		DeviceConfig: "-",
		Stdin:        bytes.NewReader(data),
	})
	require.NoError(t, err)
	require.Len(t, got, 4)
	assert.Equal(t, "hostname router1", got[0])
	assert.Equal(t, "", got[3])
}

func TestRunGrep_OSNameOverride(t *testing.T) {
	dir := t.TempDir()
	grepPath := filepath.Join(dir, "grep.yaml")
	require.NoError(t, os.WriteFile(grepPath, []byte(
		"os_name: ios\nfilters:\n  - include-block-lines: \"    ntp\"\n"), 0o600))

	got, err := runGrep(grepRequest{
		GrepConfig:   grepPath,
		DeviceConfig: "testdata/edge.junos",
		OSName:       "junos",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"    ntp\n        server 10.1.1.1"}, got)
}

func TestRunGrep_Errors(t *testing.T) {
	tests := []struct {
		name    string
		req     grepRequest
		wantErr string
	}{
		{
			name:    "missing grep config",
			req:     grepRequest{GrepConfig: "testdata/nope.yaml", DeviceConfig: testRouter},
			wantErr: "failed to read grep config",
		},
		{
			name:    "missing device config",
			req:     grepRequest{GrepConfig: testGrep, DeviceConfig: "testdata/nope.cfg"},
			wantErr: "device config does not exist",
		},
		{
			name:    "device config is a directory",
			req:     grepRequest{GrepConfig: testGrep, DeviceConfig: "testdata"},
			wantErr: "device config cannot be a directory",
		},
		{
			name:    "unknown dialect override",
			req:     grepRequest{GrepConfig: testGrep, DeviceConfig: testRouter, OSName: "vyos"},
			wantErr: "vyos",
		},
		{
			name: "strict count failure",
			req: grepRequest{
				GrepConfig:   testGrep,
				DeviceConfig: testRouter,
				Policy:       filters.PolicyStrict,
			},
			wantErr: "filter item 3: include-line: not exactly one (2) matching expr: ntp server",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := runGrep(tt.req)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.Nil(t, got)
		})
	}
}

func TestRunGrep_ParseError(t *testing.T) {
	dir := t.TempDir()
	device := filepath.Join(dir, "bad.junos")
	require.NoError(t, os.WriteFile(device, []byte("system {\n    host-name x;\n"), 0o600))

	_, err := runGrep(grepRequest{GrepConfig: testGrep, DeviceConfig: device, OSName: "junos"})
	var pe *confparse.ParseError
	assert.True(t, errors.As(err, &pe))
}

func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("NETCFG_GREP_CFG_FILE", "testdata/netcfg-grep.yaml")

	args = append([]string{"netcfg-grep"}, args...)
	app, err := InitApp(context.Background(), args)
	require.NoError(t, err)

	var buf bytes.Buffer
	app.Writer = &buf
	err = app.Run(context.Background(), args)
	return buf.String(), err
}

func TestApp_Text(t *testing.T) {
	out, err := runApp(t, "-g", testGrep, "-d", testRouter, "-o", "text")
	require.NoError(t, err)

	assert.Equal(t, strings.Join([]string{
		"hostname router1",
		"interface Eth1\n description uplink\n no shutdown",
		"ntp server 10.1.1.1\nntp server 10.1.1.2",
		"",
	}, "\n\n")+"\n", out)
}

func TestApp_OutputFromConfigFile(t *testing.T) {
	out, err := runApp(t, "-g", testGrep, "-d", testRouter, "--debug")
	require.NoError(t, err)

	var got []string
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 4)
	assert.Equal(t, "! DEBUG-EXTRA(2): ntp server", got[3])
}

func TestApp_Abort(t *testing.T) {
	_, err := runApp(t, "-g", testGrep, "-d", testRouter, "-e", "--debug")
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "ABORT testdata/router.cfg: filter item 3: "))

	var mce *filters.MatchCountError
	require.True(t, errors.As(err, &mce))
	assert.Equal(t, 2, mce.Count)
}

func TestApp_MissingFlags(t *testing.T) {
	_, err := runApp(t, "-g", testGrep)
	assert.EqualError(t, err, "missing required flag --device-config")

	_, err = runApp(t, "-d", testRouter)
	assert.EqualError(t, err, "missing required flag --grep-config")
}

func TestApp_InvalidFlagValues(t *testing.T) {
	_, err := runApp(t, "-g", testGrep, "-d", testRouter, "-o", "xml")
	assert.Error(t, err)

	_, err = runApp(t, "-g", testGrep, "-d", testRouter, "--os-name", "vyos")
	assert.Error(t, err)
}

func TestApp_Dialects(t *testing.T) {
	out, err := runApp(t, "dialects", "-o", "json")
	require.NoError(t, err)

	var got []confparse.Dialect
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, confparse.Dialects(), got)

	out, err = runApp(t, "dialects", "-o", "text", "--titles")
	require.NoError(t, err)
	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "junos")
}

func TestApp_Completion(t *testing.T) {
	out, err := runApp(t, "completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, out, "complete -F _netcfg_grep netcfg-grep")

	out, err = runApp(t, "completion", "zsh")
	require.NoError(t, err)
	assert.Contains(t, out, "#compdef netcfg-grep")
}

func TestValidators(t *testing.T) {
	assert.NoError(t, FlagValidators("json", OutputValidator))
	assert.Error(t, FlagValidators("raw", OutputValidator))

	assert.NoError(t, FlagValidators("", DialectValidator))
	assert.NoError(t, FlagValidators("NXOS", DialectValidator))
	assert.Error(t, FlagValidators("vyos", DialectValidator))
	assert.Error(t, FlagValidators("json", OutputValidator, DialectValidator))
}

func TestConfigFileSources(t *testing.T) {
	chain := configFileSources("grep", "output", "", cli.ValueSourceChain{})
	assert.Empty(t, chain.Chain)

	chain = configFileSources("grep", "output", "testdata/netcfg-grep.yaml",
		cli.NewValueSourceChain(cli.EnvVar("NETCFG_GREP_OUTPUT")))
	assert.Len(t, chain.Chain, 3)

	v, ok := chain.Lookup()
	if os.Getenv("NETCFG_GREP_OUTPUT") == "" {
		require.True(t, ok)
		assert.Equal(t, "json", v)
	}
}

func TestNewGrepFlags_Sorted(t *testing.T) {
	app, err := InitApp(context.Background(), nil)
	require.NoError(t, err)

	var names []string
	for _, f := range app.Flags {
		names = append(names, f.Names()[0])
	}
	assert.IsIncreasing(t, names)
	assert.Contains(t, names, "grep-config")
	assert.Contains(t, names, "device-config")
}
