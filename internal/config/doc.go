// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package config provides loading and typed accessors for netcfg-grep's user
// configuration. This is not the grep rule file; it holds per-user defaults
// such as flag values, named flag sets and marker colors. The configuration
// is a YAML document located in the user's configuration directory,
// typically:
//   - Linux/macOS: $XDG_CONFIG_HOME/netcfg-grep.yaml or $HOME/.config/netcfg-grep.yaml
//   - Windows: %APPDATA%/netcfg-grep.yaml
//
// NETCFG_GREP_CFG_FILE overrides the location. Actual resolution otherwise
// relies on os.UserConfigDir which follows platform conventions.
package config
