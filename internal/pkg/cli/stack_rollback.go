// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"

	"github.com/aws/cfn-shapes/cmd/cfnshape/template"
	"github.com/aws/cfn-shapes/internal/pkg/cli/group"
	"github.com/aws/cfn-shapes/internal/pkg/term/color"
	"github.com/aws/cfn-shapes/internal/pkg/term/log"
	"github.com/aws/cfn-shapes/internal/pkg/term/prompt"
	"github.com/aws/cfn-shapes/internal/pkg/term/spinner"
	cfn "github.com/aws/cfn-shapes/pkg/cloudformation"
	"github.com/spf13/cobra"
)

const (
	fmtContinueRollbackConfirmPrompt = "Are you sure you want to continue rolling back stack %s?"
	continueRollbackConfirmHelp      = "CloudFormation returns the stack to its last working state. Skipped resources are marked as rolled back without being changed."

	fmtContinueRollbackStart    = "Continuing the rollback of stack %s."
	fmtContinueRollbackFailed   = "Failed to continue the rollback of stack %s."
	fmtContinueRollbackComplete = "Continued the rollback of stack %s."
)

type continueRollbackVars struct {
	awsVars
	stackName          string
	roleARN            string
	resourcesToSkip    []string
	clientRequestToken string
	skipConfirmation   bool
}

type continueRollbackOpts struct {
	continueRollbackVars

	continuer    rollbackContinuer
	prompt       prompter
	spinner      progress
	profileNames func() ([]string, error)
}

func newContinueRollbackOpts(vars continueRollbackVars) *continueRollbackOpts {
	return &continueRollbackOpts{
		continueRollbackVars: vars,
		prompt:               prompt.New(),
		spinner:              spinner.New(),
		profileNames:         profileNames,
	}
}

func (o *continueRollbackOpts) input() *cfn.ContinueUpdateRollbackInput {
	in := new(cfn.ContinueUpdateRollbackInput).SetStackName(o.stackName)
	if o.roleARN != "" {
		in.SetRoleARN(o.roleARN)
	}
	if len(o.resourcesToSkip) > 0 {
		in.AppendResourcesToSkip(o.resourcesToSkip...)
	}
	if o.clientRequestToken != "" {
		in.SetClientRequestToken(o.clientRequestToken)
	}
	return in
}

// Validate returns an error if the flag values are invalid.
func (o *continueRollbackOpts) Validate() error {
	if err := o.validateProfile(o.profileNames); err != nil {
		return err
	}
	if o.stackName == "" {
		return fmt.Errorf("--%s is required", stackNameFlag)
	}
	return o.input().Validate()
}

// Execute checks that the stack is stuck in UPDATE_ROLLBACK_FAILED and resumes its rollback.
func (o *continueRollbackOpts) Execute() error {
	describeCtx, cancelDescribe := newAPIContext()
	stack, err := o.continuer.DescribeStack(describeCtx, o.stackName)
	cancelDescribe()
	if err != nil {
		return err
	}
	if !stack.StackStatus.CanContinueUpdateRollback() {
		return &errStackNotRollbackable{name: o.stackName, status: stack.StackStatus}
	}
	if !o.skipConfirmation {
		confirmed, err := o.prompt.Confirm(
			fmt.Sprintf(fmtContinueRollbackConfirmPrompt, color.HighlightUserInput(o.stackName)),
			continueRollbackConfirmHelp,
			prompt.WithTrueDefault())
		if err != nil {
			return fmt.Errorf("confirm rollback of stack %s: %w", o.stackName, err)
		}
		if !confirmed {
			return errOperationCancelled
		}
	}

	// Time spent at the prompt does not count against the rollback call.
	ctx, cancel := newAPIContext()
	defer cancel()
	name := color.HighlightUserInput(o.stackName)
	o.spinner.Start(fmt.Sprintf(fmtContinueRollbackStart, name))
	if err := o.continuer.ContinueUpdateRollback(ctx, o.input()); err != nil {
		o.spinner.Stop(fmt.Sprintf("%s %s", color.ErrorMarker, fmt.Sprintf(fmtContinueRollbackFailed, name)))
		return err
	}
	o.spinner.Stop(fmt.Sprintf("%s %s", color.SuccessMarker, fmt.Sprintf(fmtContinueRollbackComplete, name)))
	log.Infof("Run %s to follow its progress.\n", color.HighlightCode(fmt.Sprintf("cfnshape describe-stacks --stack-name %s", o.stackName)))
	return nil
}

// BuildContinueRollbackCmd builds the command for resuming a failed rollback.
func BuildContinueRollbackCmd() *cobra.Command {
	vars := continueRollbackVars{}
	cmd := &cobra.Command{
		Use:   "continue-update-rollback",
		Short: "Continues rolling back a stack in the UPDATE_ROLLBACK_FAILED state.",
		Long: `Continues rolling back a stack in the UPDATE_ROLLBACK_FAILED state.
Resources that can't be rolled back can be skipped with --resources-to-skip.`,
		Example: `
  Continues the rollback of the demo stack without prompting.
  /code $ cfnshape continue-update-rollback --stack-name demo --yes
  Skips a bucket that was deleted outside of CloudFormation.
  /code $ cfnshape continue-update-rollback -s demo --resources-to-skip Bucket`,
		RunE: runCmdE(func(cmd *cobra.Command, args []string) error {
			opts := newContinueRollbackOpts(vars)
			if err := opts.Validate(); err != nil {
				return err
			}
			client, err := vars.client()
			if err != nil {
				return err
			}
			opts.continuer = client
			return opts.Execute()
		}),
		Annotations: map[string]string{
			"group": group.Stacks,
		},
	}
	cmd.Flags().StringVarP(&vars.stackName, stackNameFlag, stackNameFlagShort, "", stackNameFlagDescription)
	cmd.Flags().StringVar(&vars.roleARN, roleARNFlag, "", roleARNFlagDescription)
	cmd.Flags().StringSliceVar(&vars.resourcesToSkip, resourcesToSkipFlag, nil, resourcesToSkipFlagDescription)
	cmd.Flags().StringVar(&vars.clientRequestToken, clientRequestTokenFlag, "", clientRequestTokenFlagDescription)
	cmd.Flags().BoolVar(&vars.skipConfirmation, yesFlag, false, yesFlagDescription)
	registerAWSFlags(cmd, &vars.awsVars)
	_ = cmd.MarkFlagRequired(stackNameFlag)
	cmd.SetUsageTemplate(template.Usage)
	return cmd
}
