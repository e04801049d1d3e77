// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aws/cfn-shapes/cmd/cfnshape/template"
	"github.com/aws/cfn-shapes/internal/pkg/cli/group"
	"github.com/spf13/cobra"
)

var completionShells = []string{"bash", "zsh", "fish"}

type completionOpts struct {
	Shell string

	w         io.Writer
	completer shellCompleter
}

// Validate returns an error if the shell is not supported.
func (opts *completionOpts) Validate() error {
	if contains(completionShells, opts.Shell) {
		return nil
	}
	return fmt.Errorf("shell must be one of %s", strings.Join(completionShells, ", "))
}

// Execute writes the completion code to the writer.
// This method assumes that Validate() was called prior to invocation.
func (opts *completionOpts) Execute() error {
	switch opts.Shell {
	case "bash":
		return opts.completer.GenBashCompletion(opts.w)
	case "zsh":
		return opts.completer.GenZshCompletion(opts.w)
	default:
		return opts.completer.GenFishCompletion(opts.w, true)
	}
}

// BuildCompletionCmd returns the command to output shell completion code for the specified shell.
func BuildCompletionCmd(rootCmd *cobra.Command) *cobra.Command {
	opts := &completionOpts{}
	cmd := &cobra.Command{
		Use:   "completion [shell]",
		Short: "Output shell completion code.",
		Long: `Output shell completion code for bash, zsh or fish.
The code must be evaluated to provide interactive completion of commands.`,
		Example: `
  Install zsh completion
  /code $ source <(cfnshape completion zsh)
  /code $ cfnshape completion zsh > "${fpath[1]}/_cfnshape" # to autoload on startup

  Install bash completion on linux
  /code $ source <(cfnshape completion bash)
  /code $ cfnshape completion bash > cfnshape.sh
  /code $ sudo mv cfnshape.sh /etc/bash_completion.d/cfnshape

  Install fish completion
  /code $ cfnshape completion fish > ~/.config/fish/completions/cfnshape.fish`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: completionShells,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			opts.Shell = args[0]
			return opts.Validate()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.w = os.Stdout
			opts.completer = rootCmd
			return opts.Execute()
		},
	}
	cmd.SetUsageTemplate(template.Usage)
	cmd.Annotations = map[string]string{
		"group": group.Settings,
	}
	return cmd
}
