// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"os"
	"sort"

	"github.com/urfave/cli/v3"

	"github.com/netcfg-grep/netcfg-grep/internal/config"
	"github.com/netcfg-grep/netcfg-grep/internal/meta"
)

// InitApp builds the root command. Flag defaults fall back to the user
// config file when one is found.
func InitApp(ctx context.Context, args []string) (*cli.Command, error) {
	// allow running without a user config
	cfg, _ := config.Load() //nolint
	meta := meta.Meta{
		Args:    args,
		Config:  cfg,
		Context: ctx,
		Stdin:   os.Stdin,
	}

	app := &cli.Command{
		Name:      "netcfg-grep",
		Usage:     "extract sections of network device configurations",
		UsageText: "netcfg-grep -g <grep-config> -d <device-config> [--fail-error] [--debug]",
		Metadata:  map[string]any{"meta": meta},
		Flags: append(NewGrepFlags("grep", cfg.Source),
			&cli.BoolFlag{
				Name:        "version",
				Aliases:     []string{"v"},
				Usage:       "netcfg-grep version info",
				HideDefault: true,
			},
		),
		Action: grepCommandAction,
	}

	app.Commands = append(app.Commands,
		dialectsCommandBuilder(meta),
		completionCommandBuilder(meta),
	)

	// Make sure flags are sorted for the --help text.
	sortFlags(app)
	for _, cmd := range app.Commands {
		sortFlags(cmd)
	}

	return app, nil
}

func sortFlags(cmd *cli.Command) {
	sort.Slice(cmd.Flags, func(i, j int) bool {
		return cmd.Flags[i].Names()[0] < cmd.Flags[j].Names()[0]
	})
}

// GetMeta returns the meta.Meta stored in the command's Metadata. If missing
// or of an unexpected type, it returns the zero value.
func GetMeta(cmd *cli.Command) meta.Meta {
	if cmd == nil || cmd.Metadata == nil {
		return meta.Meta{}
	}
	if m, ok := cmd.Metadata["meta"].(meta.Meta); ok {
		return m
	}
	return meta.Meta{}
}
