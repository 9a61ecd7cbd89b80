// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"github.com/netcfg-grep/netcfg-grep/internal/confparse"
	"github.com/netcfg-grep/netcfg-grep/internal/meta"
	"github.com/netcfg-grep/netcfg-grep/internal/output"
)

// dialectsCommandAction lists the dialects accepted in os_name.
func dialectsCommandAction(ctx context.Context, cmd *cli.Command) error {
	dialects := confparse.Dialects()
	w := cmd.Root().Writer

	switch cmd.String("output") {
	case "json":
		b, err := json.MarshalIndent(dialects, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal dialects: %w", err)
		}
		_, err = fmt.Fprintln(w, string(b))
		return err
	case "yaml":
		b, err := yaml.Marshal(dialects)
		if err != nil {
			return fmt.Errorf("failed to marshal dialects: %w", err)
		}
		_, err = w.Write(b)
		return err
	}

	rows := make([][]string, 0, len(dialects))
	for _, d := range dialects {
		rows = append(rows, []string{d.Name, d.Description})
	}
	output.TableWriter([]string{"NAME", "DESCRIPTION"}, rows, cmd.Bool("titles"), w)
	return nil
}

// dialectsCommandBuilder constructs the "dialects" subcommand.
func dialectsCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "dialects",
		Usage:     "list supported device configuration dialects",
		UsageText: "netcfg-grep dialects [--output text|json|yaml] [--titles]",
		Metadata:  map[string]any{"meta": meta},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "output format",
				Value:   "text",
				Validator: func(value string) error {
					return FlagValidators(value, OutputValidator)
				},
			},
			&cli.BoolFlag{
				Name:    "titles",
				Aliases: []string{"t"},
				Usage:   "show titles with text output",
				Value:   false,
			},
		},
		Action: dialectsCommandAction,
	}
}
