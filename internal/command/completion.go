// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package command

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

const bashCompletionScript = `# bash completion for tldrctl
# Fallback if bash-completion is not installed
if ! declare -F _get_comp_words_by_ref >/dev/null 2>&1; then
  _get_comp_words_by_ref() {
    cur=${COMP_WORDS[COMP_CWORD]}
    prev=${COMP_WORDS[COMP_CWORD-1]}
  }
fi

_tldrctl()
{
    local cur prev
    COMPREPLY=()
    _get_comp_words_by_ref -n : cur prev

    case "$prev" in
    --os)
        COMPREPLY=( $(compgen -W "linux osx sunos" -- "$cur") )
        return 0
        ;;
    --output|-o)
        COMPREPLY=( $(compgen -W "text json yaml" -- "$cur") )
        return 0
        ;;
    --completion)
        COMPREPLY=( $(compgen -W "bash zsh" -- "$cur") )
        return 0
        ;;
    --render|-r)
        COMPREPLY=( $(compgen -f -- "$cur") )
        return 0
        ;;
    esac

    if [[ "$cur" == -* ]]; then
        local opts="--browse -b --color -c --no-color --completion --edit -e --filter -f --help -h --info -i --list -l --long --os --output -o --raw --render -r --sort -s --titles -t --no-titles --version -v"
        COMPREPLY=( $(compgen -W "$opts" -- "$cur") )
        return 0
    fi

    COMPREPLY=( $(compgen -W "$(tldrctl --list 2>/dev/null)" -- "$cur") )
    return 0
}

complete -F _tldrctl tldrctl
`

const zshCompletionScript = `#compdef tldrctl

_tldrctl_pages() {
  local -a pages
  pages=(${(f)"$(tldrctl --list 2>/dev/null)"})
  _describe 'page' pages
}

_tldrctl() {
  _arguments -C \
    '(-b --browse)'{-b,--browse}'[pick a page interactively]' \
    '(-c --color)'{-c,--color}'[enable colored output]' \
    '--no-color[disable colored output]' \
    '--completion[print completion script]:shell:(bash zsh)' \
    '(-e --edit)'{-e,--edit}'[edit the common page]' \
    '(-f --filter)'{-f,--filter}'[filters for --list]:filter' \
    '(-i --info)'{-i,--info}'[show cache info]' \
    '(-l --list)'{-l,--list}'[list all pages]' \
    '--long[include tier and path]' \
    '--os[override the operating system]:os:(linux osx sunos)' \
    '(-o --output)'{-o,--output}'[output format]:format:(text json yaml)' \
    '--raw[print markdown without rendering]' \
    '(-r --render)'{-r,--render}'[render a markdown file]:file:_files' \
    '(-s --sort)'{-s,--sort}'[sort attributes]:sort' \
    '(-t --titles)'{-t,--titles}'[show titles]' \
    '(-v --version)'{-v,--version}'[version info]' \
    '*::page:_tldrctl_pages'
}

# If this file is sourced directly (not autoloaded via fpath), ensure compsys is initialized and register the completion
if ! typeset -f compdef >/dev/null 2>&1; then
  autoload -Uz compinit && compinit -i
fi
compdef _tldrctl tldrctl
`

// CompletionAction prints the completion script for the shell given to
// --completion.
func CompletionAction(ctx context.Context, cmd *cli.Command) error {
	w := stdout(GetMeta(cmd))
	switch shell := cmd.String("completion"); shell {
	case "bash":
		fmt.Fprint(w, bashCompletionScript)
	case "zsh":
		fmt.Fprint(w, zshCompletionScript)
	default:
		return fmt.Errorf("unsupported shell %q", shell)
	}
	return nil
}
