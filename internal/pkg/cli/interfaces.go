// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"context"
	"io"

	"github.com/aws/cfn-shapes/internal/pkg/term/prompt"
	cfn "github.com/aws/cfn-shapes/pkg/cloudformation"
)

type prompter interface {
	SelectOption(message, help string, opts []prompt.Option, promptCfgs ...prompt.PromptConfig) (string, error)
	Confirm(message, help string, promptCfgs ...prompt.PromptConfig) (bool, error)
}

// progress is the interface to inform the user that a long operation is taking place.
type progress interface {
	// Start starts displaying progress with a label.
	Start(label string)
	// Stop ends displaying progress with a label.
	Stop(label string)
}

type stackDescriber interface {
	DescribeStacks(ctx context.Context, in *cfn.DescribeStacksInput) (*cfn.DescribeStacksOutput, error)
}

type changeSetDescriber interface {
	DescribeChangeSet(ctx context.Context, in *cfn.DescribeChangeSetInput) (*cfn.DescribeChangeSetOutput, error)
}

type rollbackContinuer interface {
	DescribeStack(ctx context.Context, name string) (*cfn.Stack, error)
	ContinueUpdateRollback(ctx context.Context, in *cfn.ContinueUpdateRollbackInput) error
}

type shellCompleter interface {
	GenBashCompletion(w io.Writer) error
	GenZshCompletion(w io.Writer) error
	GenFishCompletion(w io.Writer, includeDesc bool) error
}
