// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package prompt asks the user to pick a value or to confirm an operation in the terminal.
package prompt

import (
	"errors"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/aws/cfn-shapes/internal/pkg/term/color"
)

// ErrEmptyOptions is returned when there is nothing to select from.
var ErrEmptyOptions = errors.New("list of provided options is empty")

// Prompt asks a single question. survey.AskOne satisfies it.
type Prompt func(survey.Prompt, interface{}, ...survey.AskOpt) error

// New returns a Prompt that asks questions on the terminal.
func New() Prompt {
	return survey.AskOne
}

// question is a survey prompt whose message is replaced by a summary once it is answered.
type question struct {
	prompter
	summary string
}

// prompter is survey.Prompt under a name that does not hide its Prompt method when embedded.
type prompter = survey.Prompt

// Cleanup renders the answer next to the summary instead of the original message.
func (q *question) Cleanup(cfg *survey.PromptConfig, answer interface{}) error {
	if q.summary != "" {
		switch p := q.prompter.(type) {
		case *survey.Select:
			p.Message = q.summary
		case *survey.Confirm:
			p.Message = q.summary
		}
	}
	return q.prompter.Cleanup(cfg, answer)
}

// WithStdio forwards the terminal to the wrapped prompt, survey only sets it on prompts that ask for it.
func (q *question) WithStdio(stdio terminal.Stdio) {
	if p, ok := q.prompter.(interface{ WithStdio(terminal.Stdio) }); ok {
		p.WithStdio(stdio)
	}
}

// PromptConfig customizes a question before it is asked.
type PromptConfig func(*question)

// WithFinalMessage replaces the question with msg once the user answers it.
func WithFinalMessage(msg string) PromptConfig {
	return func(q *question) {
		q.summary = color.Emphasize(msg)
	}
}

// WithTrueDefault makes "yes" the default answer of a confirmation.
func WithTrueDefault() PromptConfig {
	return func(q *question) {
		if confirm, ok := q.prompter.(*survey.Confirm); ok {
			confirm.Default = true
		}
	}
}

// Confirm asks a yes/no question.
func (p Prompt) Confirm(message, help string, promptCfgs ...PromptConfig) (bool, error) {
	var confirmed bool
	err := p.ask(&survey.Confirm{Message: message, Help: helpText(help)}, &confirmed, promptCfgs)
	return confirmed, err
}

func (p Prompt) ask(sp survey.Prompt, answer interface{}, cfgs []PromptConfig) error {
	q := &question{prompter: sp}
	for _, cfg := range cfgs {
		cfg(q)
	}
	return p(q, answer, survey.WithStdio(os.Stdin, os.Stderr, os.Stderr), survey.WithIcons(func(icons *survey.IconSet) {
		icons.Question.Format = "default+b"
		// mgutz/ansi has no faint style, help text is fainted with fatih/color instead.
		icons.Help.Format = "default"
	}))
}

func helpText(help string) string {
	if help == "" {
		return ""
	}
	return color.Faint(help)
}
