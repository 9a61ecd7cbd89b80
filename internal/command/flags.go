// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"
)

// NewGrepFlags constructs the flags of the grep command. When cfgPath names
// the user config file, policy and output flags also read their defaults from
// it, first under ns and then at the top level.
func NewGrepFlags(ns string, cfgPath string) (flags []cli.Flag) {
	flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "grep-config",
			Aliases: []string{"g"},
			Usage:   "netcfg-grep configuration YAML file",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("NETCFG_GREP_CONFIG"),
			),
		},
		&cli.StringFlag{
			Name:    "device-config",
			Aliases: []string{"d"},
			Usage:   "network device configuration TEXT file, - for stdin",
		},
		&cli.BoolFlag{
			Name:    "fail-error",
			Aliases: []string{"e"},
			Usage:   "abort when a line filter does not match exactly once",
			Sources: configFileSources(ns, "fail-error", cfgPath,
				cli.NewValueSourceChain(cli.EnvVar("NETCFG_GREP_FAIL_ERROR"))),
		},
		&cli.BoolFlag{
			Name:  "debug",
			Usage: "replace failed line filters with DEBUG markers",
			Sources: configFileSources(ns, "debug", cfgPath,
				cli.NewValueSourceChain(cli.EnvVar("NETCFG_GREP_DEBUG"))),
		},
		&cli.BoolFlag{
			Name:    "color",
			Aliases: []string{"c"},
			Usage:   "enable colored DEBUG markers",
			Value:   false,
			Sources: configFileSources(ns, "color", cfgPath, cli.ValueSourceChain{}),
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "output format",
			Value:   "text",
			Sources: configFileSources(ns, "output", cfgPath,
				cli.NewValueSourceChain(cli.EnvVar("NETCFG_GREP_OUTPUT"))),
			Validator: func(value string) error {
				return FlagValidators(value, OutputValidator)
			},
		},
		&cli.StringFlag{
			Name:  "os-name",
			Usage: "device dialect. Overrides os_name in the grep config",
			Validator: func(value string) error {
				return FlagValidators(value, DialectValidator)
			},
		},
	}

	return
}

// configFileSources appends namespaced and global config file sources to
// chain. Without a config file the chain is returned unchanged.
func configFileSources(ns string, name string, path string, chain cli.ValueSourceChain) cli.ValueSourceChain {
	if path == "" {
		return chain
	}

	chain.Chain = append(chain.Chain,
		yaml.YAML(ns+"."+name, altsrc.StringSourcer(path)),
		yaml.YAML(name, altsrc.StringSourcer(path)),
	)

	return chain
}
