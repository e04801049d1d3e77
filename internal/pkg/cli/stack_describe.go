// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/cfn-shapes/cmd/cfnshape/template"
	"github.com/aws/cfn-shapes/internal/pkg/cli/group"
	"github.com/aws/cfn-shapes/internal/pkg/term/color"
	"github.com/aws/cfn-shapes/internal/pkg/term/log"
	"github.com/aws/cfn-shapes/internal/pkg/term/spinner"
	cfn "github.com/aws/cfn-shapes/pkg/cloudformation"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	fmtDescribeStacksStart   = "Describing stacks in %s."
	describeStacksFailed     = "Failed to describe stacks."
	fmtDescribeStacksSuccess = "Described %d stacks."
	noValue                  = "-"
)

// humanizeTime is overridden in tests so that its output is constant as time passes.
var humanizeTime = humanize.Time

type describeStacksVars struct {
	awsVars
	stackName        string
	shouldOutputJSON bool
}

type describeStacksOpts struct {
	describeStacksVars

	describer    stackDescriber
	spinner      progress
	profileNames func() ([]string, error)
	w            io.Writer
}

func newDescribeStacksOpts(vars describeStacksVars) *describeStacksOpts {
	return &describeStacksOpts{
		describeStacksVars: vars,
		spinner:            spinner.New(),
		profileNames:       profileNames,
		w:                  os.Stdout,
	}
}

// Validate returns an error if the flag values are invalid.
func (o *describeStacksOpts) Validate() error {
	if err := o.validateProfile(o.profileNames); err != nil {
		return err
	}
	if o.stackName == "" {
		return nil
	}
	return new(cfn.DescribeStacksInput).SetStackName(o.stackName).Validate()
}

// Execute describes the stacks and writes a summary of each.
func (o *describeStacksOpts) Execute() error {
	in := new(cfn.DescribeStacksInput)
	if o.stackName != "" {
		in.SetStackName(o.stackName)
	}
	scope := "the account"
	if o.stackName != "" {
		scope = color.HighlightUserInput(o.stackName)
	}

	ctx, cancel := newAPIContext()
	defer cancel()
	o.spinner.Start(fmt.Sprintf(fmtDescribeStacksStart, scope))
	out, err := o.describer.DescribeStacks(ctx, in)
	if err != nil {
		o.spinner.Stop(fmt.Sprintf("%s %s", color.ErrorMarker, describeStacksFailed))
		return err
	}
	o.spinner.Stop(fmt.Sprintf("%s %s", color.SuccessMarker, fmt.Sprintf(fmtDescribeStacksSuccess, len(out.Stacks))))
	if len(out.Stacks) == 0 && !o.shouldOutputJSON {
		log.Warningln("No stacks found.")
		return nil
	}

	if o.shouldOutputJSON {
		data, err := stacksJSON(out.Stacks)
		if err != nil {
			return err
		}
		fmt.Fprint(o.w, data)
		return nil
	}
	return writeStacksTable(o.w, out.Stacks)
}

type stackSummary struct {
	Name        string     `json:"name"`
	Status      string     `json:"status"`
	Reason      string     `json:"reason,omitempty"`
	Created     *time.Time `json:"created,omitempty"`
	LastUpdated *time.Time `json:"lastUpdated,omitempty"`
}

func stacksJSON(stacks []*cfn.Stack) (string, error) {
	type serializedStacks struct {
		Stacks []stackSummary `json:"stacks"`
	}
	summaries := make([]stackSummary, 0, len(stacks))
	for _, s := range stacks {
		summaries = append(summaries, stackSummary{
			Name:        aws.StringValue(s.StackName),
			Status:      string(s.StackStatus),
			Reason:      aws.StringValue(s.StackStatusReason),
			Created:     s.CreationTime,
			LastUpdated: s.LastUpdatedTime,
		})
	}
	b, err := json.Marshal(serializedStacks{Stacks: summaries})
	if err != nil {
		return "", fmt.Errorf("marshal stacks: %w", err)
	}
	return fmt.Sprintf("%s\n", b), nil
}

func writeStacksTable(w io.Writer, stacks []*cfn.Stack) error {
	tw := tabwriter.NewWriter(w, tableMinCellWidth, tableTabWidth, tableCellPadding, tablePaddingChar, noAdditionalFormatter)
	fmt.Fprintln(tw, "Name\tStatus\tCreated\tLast Updated")
	for _, s := range stacks {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			aws.StringValue(s.StackName), prettifyStackStatus(s.StackStatus), humanizeTimePtr(s.CreationTime), humanizeTimePtr(s.LastUpdatedTime))
	}
	return tw.Flush()
}

// prettifyStackStatus turns "UPDATE_ROLLBACK_FAILED" into a colored "Update Rollback Failed".
func prettifyStackStatus(status cfn.StackStatus) string {
	if status == "" {
		return noValue
	}
	title := titleCase(string(status))
	switch {
	case status.IsFailure():
		return color.Failure(title)
	case status.InProgress():
		return color.Pending(title)
	case status.IsSuccess():
		return color.Success(title)
	}
	return title
}

// titleCase turns an API enum value such as "UPDATE_ROLLBACK_FAILED" into "Update Rollback Failed".
func titleCase(v string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(strings.ToLower(v), "_", " "))
}

func humanizeTimePtr(t *time.Time) string {
	if t == nil {
		return noValue
	}
	return humanizeTime(*t)
}

// BuildDescribeStacksCmd builds the command for describing stacks.
func BuildDescribeStacksCmd() *cobra.Command {
	vars := describeStacksVars{}
	cmd := &cobra.Command{
		Use:   "describe-stacks",
		Short: "Describes the status of CloudFormation stacks.",
		Example: `
  Describes every stack of the default profile's region.
  /code $ cfnshape describe-stacks
  Describes a single stack in another region.
  /code $ cfnshape describe-stacks --stack-name demo --region eu-west-1`,
		RunE: runCmdE(func(cmd *cobra.Command, args []string) error {
			opts := newDescribeStacksOpts(vars)
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
	cmd.Flags().StringVarP(&vars.stackName, stackNameFlag, stackNameFlagShort, "", describeStackNameFlagDescription)
	cmd.Flags().BoolVar(&vars.shouldOutputJSON, jsonFlag, false, jsonFlagDescription)
	registerAWSFlags(cmd, &vars.awsVars)
	cmd.SetUsageTemplate(template.Usage)
	return cmd
}
