// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"errors"
	"strings"
	"testing"

	"github.com/aws/cfn-shapes/internal/pkg/cli/mocks"
	cfn "github.com/aws/cfn-shapes/pkg/cloudformation"
	"github.com/fatih/color"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

func TestDescribeChangeSetOpts_Validate(t *testing.T) {
	knownProfiles := func() ([]string, error) {
		return []string{"default"}, nil
	}
	testCases := map[string]struct {
		inVars describeChangeSetVars

		wantedErr string
	}{
		"missing change set name": {
			inVars:    describeChangeSetVars{stackName: "demo"},
			wantedErr: "--change-set-name is required",
		},
		"change set name breaks its pattern": {
			inVars:    describeChangeSetVars{stackName: "demo", changeSetName: "1-changes"},
			wantedErr: "field does not match pattern",
		},
		"unknown profile": {
			inVars:    describeChangeSetVars{awsVars: awsVars{profile: "prod"}, changeSetName: "cfnshape-1"},
			wantedErr: "profile prod is not in the AWS config file",
		},
		"valid without a stack name": {
			inVars: describeChangeSetVars{changeSetName: "arn:aws:cloudformation:us-west-2:123456789012:changeSet/cfnshape-1/1a2b"},
		},
		"valid": {
			inVars: describeChangeSetVars{stackName: "demo", changeSetName: "cfnshape-1"},
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			opts := &describeChangeSetOpts{
				describeChangeSetVars: tc.inVars,
				profileNames:          knownProfiles,
			}

			err := opts.Validate()

			if tc.wantedErr != "" {
				require.ErrorContains(t, err, tc.wantedErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestDescribeChangeSetOpts_Execute(t *testing.T) {
	defer func(og bool) { color.NoColor = og }(color.NoColor)
	color.NoColor = true

	out := new(cfn.DescribeChangeSetOutput).
		SetChangeSetName("cfnshape-1").
		SetStackName("demo").
		SetStatus(cfn.ChangeSetStatusCreateComplete).
		SetExecutionStatus(cfn.ExecutionStatusAvailable).
		AppendChanges(
			new(cfn.Change).SetType(cfn.ChangeTypeResource).SetResourceChange(
				new(cfn.ResourceChange).
					SetAction(cfn.ChangeActionAdd).
					SetLogicalResourceId("Bucket").
					SetResourceType("AWS::S3::Bucket")),
			new(cfn.Change).SetType(cfn.ChangeTypeResource).SetResourceChange(
				new(cfn.ResourceChange).
					SetAction(cfn.ChangeActionModify).
					SetLogicalResourceId("Queue").
					SetResourceType("AWS::SQS::Queue").
					SetReplacement(cfn.ReplacementTrue)),
		)
	wantedIn := new(cfn.DescribeChangeSetInput).SetChangeSetName("cfnshape-1").SetStackName("demo")

	testCases := map[string]struct {
		inVars     describeChangeSetVars
		setupMocks func(d *mocks.MockchangeSetDescriber, p *mocks.Mockprogress)

		wanted    string
		wantedErr error
	}{
		"writes the status and the changes": {
			inVars: describeChangeSetVars{stackName: "demo", changeSetName: "cfnshape-1"},
			setupMocks: func(d *mocks.MockchangeSetDescriber, p *mocks.Mockprogress) {
				gomock.InOrder(
					p.EXPECT().Start("Describing change set cfnshape-1."),
					d.EXPECT().DescribeChangeSet(gomock.Any(), wantedIn).Return(out, nil),
					p.EXPECT().Stop(gomock.Any()),
				)
			},
			wanted: "Change Set  cfnshape-1\n" +
				"Stack       demo\n" +
				"Status      Create Complete\n" +
				"Execution   Available\n" +
				"\n" +
				"Action  Logical ID  Type             Replacement\n" +
				"Add     Bucket      AWS::S3::Bucket  -\n" +
				"Modify  Queue       AWS::SQS::Queue  True\n",
		},
		"writes json": {
			inVars: describeChangeSetVars{stackName: "demo", changeSetName: "cfnshape-1", shouldOutputJSON: true},
			setupMocks: func(d *mocks.MockchangeSetDescriber, p *mocks.Mockprogress) {
				p.EXPECT().Start(gomock.Any())
				d.EXPECT().DescribeChangeSet(gomock.Any(), wantedIn).Return(
					new(cfn.DescribeChangeSetOutput).
						SetChangeSetName("cfnshape-1").
						SetStackName("demo").
						SetStatus(cfn.ChangeSetStatusFailed).
						SetExecutionStatus(cfn.ExecutionStatusUnavailable).
						SetStatusReason("The submitted information didn't contain changes."), nil)
				p.EXPECT().Stop(gomock.Any())
			},
			wanted: `{"name":"cfnshape-1","stack":"demo","status":"FAILED","executionStatus":"UNAVAILABLE",` +
				`"reason":"The submitted information didn't contain changes.","changes":[]}` + "\n",
		},
		"stops the spinner on errors": {
			inVars: describeChangeSetVars{changeSetName: "cfnshape-1"},
			setupMocks: func(d *mocks.MockchangeSetDescriber, p *mocks.Mockprogress) {
				p.EXPECT().Start(gomock.Any())
				d.EXPECT().DescribeChangeSet(gomock.Any(), new(cfn.DescribeChangeSetInput).SetChangeSetName("cfnshape-1")).
					Return(nil, errors.New("some error"))
				p.EXPECT().Stop(gomock.Any())
			},
			wantedErr: errors.New("some error"),
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			// GIVEN
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			d := mocks.NewMockchangeSetDescriber(ctrl)
			p := mocks.NewMockprogress(ctrl)
			tc.setupMocks(d, p)
			b := &strings.Builder{}
			opts := &describeChangeSetOpts{
				describeChangeSetVars: tc.inVars,
				describer:             d,
				spinner:               p,
				w:                     b,
			}

			// WHEN
			err := opts.Execute()

			// THEN
			if tc.wantedErr != nil {
				require.EqualError(t, err, tc.wantedErr.Error())
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.wanted, b.String())
		})
	}
}
