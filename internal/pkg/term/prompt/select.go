// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package prompt

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/AlecAivazis/survey/v2"
	"github.com/aws/cfn-shapes/internal/pkg/term/color"
)

// Options are aligned so that hints start in the same column.
const (
	optionMinWidth = 20
	optionTabWidth = 4
	optionPadding  = 2
)

// Option is a value to select along with an optional hint.
type Option struct {
	Value string
	Hint  string
}

// String renders the option as "Value\t(Hint)".
func (o Option) String() string {
	if o.Hint == "" {
		return fmt.Sprintf("%s\t", o.Value)
	}
	return fmt.Sprintf("%s\t%s", o.Value, color.Faint(fmt.Sprintf("(%s)", o.Hint)))
}

// SelectOption asks the user to pick one of opts and returns the Value of the chosen option.
func (p Prompt) SelectOption(message, help string, opts []Option, promptCfgs ...PromptConfig) (string, error) {
	if len(opts) == 0 {
		return "", ErrEmptyOptions
	}
	lines, err := alignOptions(opts)
	if err != nil {
		return "", err
	}
	values := make(map[string]string, len(opts))
	for i, line := range lines {
		values[line] = opts[i].Value
	}

	var chosen string
	sel := &survey.Select{
		Message: message,
		Help:    helpText(help),
		Options: lines,
		Default: lines[0],
	}
	if err := p.ask(sel, &chosen, promptCfgs); err != nil {
		return "", err
	}
	return values[chosen], nil
}

func alignOptions(opts []Option) ([]string, error) {
	var sb strings.Builder
	tw := tabwriter.NewWriter(&sb, optionMinWidth, optionTabWidth, optionPadding, ' ', 0)
	for i, opt := range opts {
		if i > 0 {
			fmt.Fprintln(tw)
		}
		fmt.Fprint(tw, opt.String())
	}
	if err := tw.Flush(); err != nil {
		return nil, fmt.Errorf("align options: %w", err)
	}
	return strings.Split(sb.String(), "\n"), nil
}
