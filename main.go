// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/netcfg-grep/netcfg-grep/internal/command"
	"github.com/netcfg-grep/netcfg-grep/internal/config"
	"github.com/netcfg-grep/netcfg-grep/internal/log"
	"github.com/netcfg-grep/netcfg-grep/internal/version"
)

var ctx = context.Background()

// subcommands are passed to the CLI without set expansion.
var subcommands = []string{"dialects", "completion"}

func main() {
	os.Exit(realMain())
}

// handleVersion checks for --version/-v and returns whether it was handled.
func handleVersion(args []string) bool {
	for _, a := range args {
		if a == "--version" || a == "-v" {
			fmt.Println(version.Version)
			return true
		}
	}
	return false
}

// handleNakedCommand appends --help if no arguments are provided.
func handleNakedCommand(args []string) []string {
	if len(args) <= 1 {
		return append(args, "--help")
	}
	return args
}

// processCommandArgs expands @sets and collapses repeated flags for grep
// runs. Subcommands are passed through untouched.
func processCommandArgs(args []string) []string {
	if len(args) > 1 && slices.Contains(subcommands, args[1]) {
		return args
	}

	args = expandSets(args, configSet)
	log.Debugf("args after set processing: args=%v", args)

	return deduplicateFlags(args)
}

// configSet returns the argument set stored under grep.<name> in the user
// config file.
func configSet(name string) []string {
	set, _ := config.GetStringSlice("grep." + name)
	return set
}

// expandSets replaces each @name argument with the set returned by lookup. If
// no @name argument is present the "defaults" set is inserted right after the
// program name, so anything given on the command line wins.
func expandSets(args []string, lookup func(string) []string) []string {
	out := make([]string, 0, len(args))
	found := false

	for i, a := range args {
		if i > 0 && len(a) > 1 && strings.HasPrefix(a, "@") {
			found = true
			out = append(out, splitSet(lookup(a[1:]))...)
			continue
		}
		out = append(out, a)
	}

	if found || len(out) == 0 {
		return out
	}

	defaults := splitSet(lookup("defaults"))
	if len(defaults) == 0 {
		return out
	}
	return append(out[:1], append(defaults, out[1:]...)...)
}

// splitSet splits each set entry on whitespace, so "--output json" becomes
// two arguments.
func splitSet(entries []string) []string {
	var parts []string
	for _, e := range entries {
		parts = append(parts, strings.Fields(e)...)
	}
	return parts
}

// deduplicateFlags keeps only the last occurrence of each flag. A flag
// followed by a token that is not itself a flag is treated as taking that
// token as its value. Everything after "--" is kept verbatim.
func deduplicateFlags(args []string) []string {
	if len(args) <= 1 {
		return args
	}

	type item struct {
		key    string
		tokens []string
	}

	var items []item
	var rest []string
	for i := 1; i < len(args); i++ {
		a := args[i]
		switch {
		case a == "--":
			rest = args[i:]
			i = len(args)
		case !isFlag(a):
			items = append(items, item{tokens: []string{a}})
		case strings.Contains(a, "="):
			items = append(items, item{key: a[:strings.Index(a, "=")], tokens: []string{a}})
		case i+1 < len(args) && !isFlag(args[i+1]) && args[i+1] != "--":
			items = append(items, item{key: a, tokens: []string{a, args[i+1]}})
			i++
		default:
			items = append(items, item{key: a, tokens: []string{a}})
		}
	}

	last := map[string]int{}
	for i, it := range items {
		if it.key != "" {
			last[it.key] = i
		}
	}

	out := []string{args[0]}
	for i, it := range items {
		if it.key == "" || last[it.key] == i {
			out = append(out, it.tokens...)
		}
	}
	return append(out, rest...)
}

// isFlag reports whether a looks like a flag. A lone "-" is a value (stdin).
func isFlag(a string) bool {
	return len(a) > 1 && strings.HasPrefix(a, "-")
}

// initAndRunApp initializes the app and runs it, returning the exit code.
func initAndRunApp(args []string) int {
	app, err := command.InitApp(ctx, args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		log.Debugf("app init err: err=%v", err)
		return 1
	}

	if err := app.Run(ctx, args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		log.Debugf("app run err: err=%v", err)
		return 2
	}

	return 0
}

func realMain() int {
	log.InitLogger()

	args := os.Args
	log.Debugf("args captured: args=%v", args)

	if handleVersion(args) {
		return 0
	}

	args = handleNakedCommand(args)

	// If --help appears anywhere, skip argument processing and let the CLI
	// handle it.
	if !slices.Contains(args, "--help") && !slices.Contains(args, "-h") {
		args = processCommandArgs(args)
	}

	return initAndRunApp(args)
}
