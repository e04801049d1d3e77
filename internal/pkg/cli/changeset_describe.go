// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/cfn-shapes/cmd/cfnshape/template"
	"github.com/aws/cfn-shapes/internal/pkg/cli/group"
	"github.com/aws/cfn-shapes/internal/pkg/term/color"
	"github.com/aws/cfn-shapes/internal/pkg/term/spinner"
	cfn "github.com/aws/cfn-shapes/pkg/cloudformation"
	"github.com/spf13/cobra"
)

const (
	fmtDescribeChangeSetStart   = "Describing change set %s."
	fmtDescribeChangeSetFailed  = "Failed to describe change set %s."
	fmtDescribeChangeSetSuccess = "Described change set %s with %d changes."
)

type describeChangeSetVars struct {
	awsVars
	stackName        string
	changeSetName    string
	shouldOutputJSON bool
}

type describeChangeSetOpts struct {
	describeChangeSetVars

	describer    changeSetDescriber
	spinner      progress
	profileNames func() ([]string, error)
	w            io.Writer
}

func newDescribeChangeSetOpts(vars describeChangeSetVars) *describeChangeSetOpts {
	return &describeChangeSetOpts{
		describeChangeSetVars: vars,
		spinner:               spinner.New(),
		profileNames:          profileNames,
		w:                     os.Stdout,
	}
}

func (o *describeChangeSetOpts) input() *cfn.DescribeChangeSetInput {
	in := new(cfn.DescribeChangeSetInput).SetChangeSetName(o.changeSetName)
	if o.stackName != "" {
		in.SetStackName(o.stackName)
	}
	return in
}

// Validate returns an error if the flag values are invalid.
func (o *describeChangeSetOpts) Validate() error {
	if err := o.validateProfile(o.profileNames); err != nil {
		return err
	}
	if o.changeSetName == "" {
		return fmt.Errorf("--%s is required", changeSetNameFlag)
	}
	return o.input().Validate()
}

// Execute describes the change set and writes its status and changes.
func (o *describeChangeSetOpts) Execute() error {
	ctx, cancel := newAPIContext()
	defer cancel()
	name := color.HighlightUserInput(o.changeSetName)
	o.spinner.Start(fmt.Sprintf(fmtDescribeChangeSetStart, name))
	out, err := o.describer.DescribeChangeSet(ctx, o.input())
	if err != nil {
		o.spinner.Stop(fmt.Sprintf("%s %s", color.ErrorMarker, fmt.Sprintf(fmtDescribeChangeSetFailed, name)))
		return err
	}
	o.spinner.Stop(fmt.Sprintf("%s %s", color.SuccessMarker, fmt.Sprintf(fmtDescribeChangeSetSuccess, name, len(out.Changes))))

	summary := summarizeChangeSet(out)
	if o.shouldOutputJSON {
		b, err := json.Marshal(summary)
		if err != nil {
			return fmt.Errorf("marshal change set %s: %w", o.changeSetName, err)
		}
		fmt.Fprintf(o.w, "%s\n", b)
		return nil
	}
	return summary.write(o.w)
}

type changeSetSummary struct {
	Name            string          `json:"name"`
	Stack           string          `json:"stack"`
	Status          string          `json:"status"`
	ExecutionStatus string          `json:"executionStatus"`
	Reason          string          `json:"reason,omitempty"`
	Changes         []changeSummary `json:"changes"`
}

type changeSummary struct {
	Action       string `json:"action"`
	LogicalID    string `json:"logicalID"`
	ResourceType string `json:"resourceType"`
	Replacement  string `json:"replacement,omitempty"`
}

func summarizeChangeSet(out *cfn.DescribeChangeSetOutput) *changeSetSummary {
	summary := &changeSetSummary{
		Name:            aws.StringValue(out.ChangeSetName),
		Stack:           aws.StringValue(out.StackName),
		Status:          string(out.Status),
		ExecutionStatus: string(out.ExecutionStatus),
		Reason:          aws.StringValue(out.StatusReason),
		Changes:         []changeSummary{},
	}
	for _, c := range out.Changes {
		rc := c.ResourceChange
		if rc == nil {
			continue
		}
		summary.Changes = append(summary.Changes, changeSummary{
			Action:       string(rc.Action),
			LogicalID:    aws.StringValue(rc.LogicalResourceId),
			ResourceType: aws.StringValue(rc.ResourceType),
			Replacement:  string(rc.Replacement),
		})
	}
	return summary
}

func (s *changeSetSummary) write(w io.Writer) error {
	tw := tabwriter.NewWriter(w, tableMinCellWidth, tableTabWidth, tableCellPadding, tablePaddingChar, noAdditionalFormatter)
	fmt.Fprintf(tw, "Change Set\t%s\n", s.Name)
	fmt.Fprintf(tw, "Stack\t%s\n", s.Stack)
	fmt.Fprintf(tw, "Status\t%s\n", titleCase(s.Status))
	fmt.Fprintf(tw, "Execution\t%s\n", titleCase(s.ExecutionStatus))
	if s.Reason != "" {
		fmt.Fprintf(tw, "Reason\t%s\n", s.Reason)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	if len(s.Changes) == 0 {
		return nil
	}
	fmt.Fprintln(w)
	fmt.Fprintln(tw, "Action\tLogical ID\tType\tReplacement")
	for _, c := range s.Changes {
		replacement := noValue
		if c.Replacement != "" {
			replacement = titleCase(c.Replacement)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", c.Action, c.LogicalID, c.ResourceType, replacement)
	}
	return tw.Flush()
}

// BuildDescribeChangeSetCmd builds the command for describing a change set.
func BuildDescribeChangeSetCmd() *cobra.Command {
	vars := describeChangeSetVars{}
	cmd := &cobra.Command{
		Use:   "describe-change-set",
		Short: "Describes the changes of a change set.",
		Example: `
  Describes the change set created for the demo stack.
  /code $ cfnshape describe-change-set --stack-name demo --change-set-name cfnshape-ae3e1b47`,
		RunE: runCmdE(func(cmd *cobra.Command, args []string) error {
			opts := newDescribeChangeSetOpts(vars)
			if err := opts.Validate(); err != nil {
				return err
			}
			client, err := vars.client()
			if err != nil {
				return err
			}
			opts.describer = client
			return opts.Execute()
		}),
		Annotations: map[string]string{
			"group": group.Stacks,
		},
	}
	cmd.Flags().StringVarP(&vars.stackName, stackNameFlag, stackNameFlagShort, "", stackNameFlagDescription)
	cmd.Flags().StringVarP(&vars.changeSetName, changeSetNameFlag, changeSetNameFlagShort, "", changeSetNameFlagDescription)
	cmd.Flags().BoolVar(&vars.shouldOutputJSON, jsonFlag, false, jsonFlagDescription)
	registerAWSFlags(cmd, &vars.awsVars)
	_ = cmd.MarkFlagRequired(changeSetNameFlag)
	cmd.SetUsageTemplate(template.Usage)
	return cmd
}
