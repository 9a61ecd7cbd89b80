// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/netcfg-grep/netcfg-grep/internal/config"
	"github.com/netcfg-grep/netcfg-grep/internal/filters"
	"github.com/netcfg-grep/netcfg-grep/internal/log"
	"github.com/netcfg-grep/netcfg-grep/internal/output"
)

// grepRequest is everything one grep run needs, decoupled from the CLI.
type grepRequest struct {
	GrepConfig   string
	DeviceConfig string
	OSName       string
	Policy       filters.Policy
	Stdin        io.Reader
}

// grepCommandAction is the action handler for the root command. It loads the
// rule file and device configuration, evaluates the rules and prints one
// result per rule.
func grepCommandAction(ctx context.Context, cmd *cli.Command) error {
	meta := GetMeta(cmd)
	log.Debugf("Executing action for %v", meta.Args)

	config.Config.Namespace = "grep"

	req := grepRequest{
		GrepConfig:   cmd.String("grep-config"),
		DeviceConfig: cmd.String("device-config"),
		OSName:       cmd.String("os-name"),
		Policy:       filters.PolicyFromFlags(cmd.Bool("fail-error"), cmd.Bool("debug")),
		Stdin:        meta.Stdin,
	}

	switch {
	case req.GrepConfig == "":
		return errors.New("missing required flag --grep-config")
	case req.DeviceConfig == "":
		return errors.New("missing required flag --device-config")
	}

	results, err := runGrep(req)
	if err != nil {
		return fmt.Errorf("ABORT %s: %w", req.DeviceConfig, err)
	}

	return output.Spit(results, output.Options{
		Format: cmd.String("output"),
		Color:  output.ColorEnabled(cmd.Bool("color"), os.Stdout),
	}, cmd.Writer)
}

// runGrep loads the inputs named by req and evaluates the rules.
func runGrep(req grepRequest) ([]string, error) {
	cfg, err := filters.LoadGrepConfig(req.GrepConfig)
	if err != nil {
		return nil, err
	}

	if req.OSName != "" {
		log.Debugf("dialect override: %s -> %s", cfg.OSName, req.OSName)
		cfg.OSName = req.OSName
	}

	text, err := readDeviceConfig(req.DeviceConfig, req.Stdin)
	if err != nil {
		return nil, err
	}

	session, err := filters.NewSession(cfg, text, req.Policy)
	if err != nil {
		return nil, err
	}

	return session.Run()
}

// readDeviceConfig reads the device configuration from path, or from stdin
// when path is "-".
func readDeviceConfig(path string, stdin io.Reader) (string, error) {
	if path == "-" {
		if stdin == nil {
			stdin = os.Stdin
		}
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read device config from stdin: %w", err)
		}
		return string(data), nil
	}

	if info, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("device config does not exist: %s", path)
	} else if info.IsDir() {
		return "", fmt.Errorf("device config cannot be a directory: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read device config: %w", err)
	}
	return string(data), nil
}
