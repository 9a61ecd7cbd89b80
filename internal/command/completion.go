// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/netcfg-grep/netcfg-grep/internal/meta"
)

const bashCompletionScript = `# bash completion for netcfg-grep
# Fallback if bash-completion is not installed
if ! declare -F _get_comp_words_by_ref >/dev/null 2>&1; then
  _get_comp_words_by_ref() {
    cur=${COMP_WORDS[COMP_CWORD]}
    prev=${COMP_WORDS[COMP_CWORD-1]}
  }
fi

_netcfg_grep()
{
    local cur prev cmd
    COMPREPLY=()
    _get_comp_words_by_ref -n : cur prev

    local grep_opts="--grep-config -g --device-config -d --fail-error -e --debug --color -c --output -o --os-name --help --version"

    case "$prev" in
        --output|-o)
            COMPREPLY=( $(compgen -W "text json yaml" -- "$cur") )
            return 0
            ;;
        --os-name)
            COMPREPLY=( $(compgen -W "asa eos ios iosxr junos nxos" -- "$cur") )
            return 0
            ;;
        --grep-config|-g|--device-config|-d)
            COMPREPLY=( $(compgen -f -- "$cur") )
            return 0
            ;;
    esac

    if [[ ${COMP_CWORD} -eq 1 && "$cur" != -* ]]; then
        COMPREPLY=( $(compgen -W "dialects completion" -- "$cur") )
        return 0
    fi

    cmd=${COMP_WORDS[1]}
    case "$cmd" in
        dialects)
            COMPREPLY=( $(compgen -W "--output -o --titles -t" -- "$cur") )
            ;;
        completion)
            COMPREPLY=( $(compgen -W "bash zsh" -- "$cur") )
            ;;
        *)
            COMPREPLY=( $(compgen -W "$grep_opts" -- "$cur") )
            ;;
    esac
    return 0
}

complete -F _netcfg_grep netcfg-grep
`

const zshCompletionScript = `#compdef netcfg-grep

_netcfg_grep() {
  local -a cmds
  cmds=(
    'dialects:list supported device configuration dialects'
    'completion:generate shell completion script'
  )

  local -a grep_opts
  grep_opts=(
  '(-g --grep-config)'{-g,--grep-config}'[grep config YAML file]:file:_files'
  '(-d --device-config)'{-d,--device-config}'[device config TEXT file]:file:_files'
  '(-e --fail-error)'{-e,--fail-error}'[abort on match count errors]'
  '--debug[replace failed line filters with DEBUG markers]'
  '(-c --color)'{-c,--color}'[enable colored DEBUG markers]'
  '(-o --output)'{-o,--output}'[output format]:format:(text json yaml)'
  '--os-name[device dialect]:dialect:(asa eos ios iosxr junos nxos)'
  )

  if (( CURRENT == 2 )) && [[ $words[2] != -* ]]; then
    _describe -t commands 'netcfg-grep commands' cmds
    _arguments $grep_opts
    return
  fi

  case $words[2] in
    dialects)
      _arguments \
        '(-o --output)'{-o,--output}'[output format]:format:(text json yaml)' \
        '(-t --titles)'{-t,--titles}'[show titles]'
      ;;
    completion)
      _arguments '1: :((bash zsh))'
      ;;
    *)
      _arguments $grep_opts
      ;;
  esac
}

# If this file is sourced directly (not autoloaded via fpath), ensure compsys
# is initialized and register the completion
if ! typeset -f compdef >/dev/null 2>&1; then
  autoload -Uz compinit && compinit -i
fi
compdef _netcfg_grep netcfg-grep
`

func completionCommandAction(ctx context.Context, cmd *cli.Command) error {
	w := cmd.Root().Writer
	if w == nil {
		w = os.Stdout
	}

	shell := ""
	if args := cmd.Args().Slice(); len(args) > 0 {
		shell = args[0]
	}
	if shell == "" {
		// Try to detect from SHELL
		sh := os.Getenv("SHELL")
		switch {
		case strings.HasSuffix(sh, "zsh"):
			shell = "zsh"
		case strings.HasSuffix(sh, "bash"):
			shell = "bash"
		}
	}

	switch shell {
	case "bash":
		fmt.Fprint(w, bashCompletionScript)
	case "zsh":
		fmt.Fprint(w, zshCompletionScript)
	default:
		return fmt.Errorf("usage: netcfg-grep completion [bash|zsh]")
	}
	return nil
}

func completionCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "completion",
		Usage:     "generate shell completion script",
		UsageText: "netcfg-grep completion [bash|zsh]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Action: completionCommandAction,
	}
}
