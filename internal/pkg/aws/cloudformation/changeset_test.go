// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cloudformation

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	sdkcloudformation "github.com/aws/aws-sdk-go/service/cloudformation"
	"github.com/aws/cfn-shapes/internal/pkg/aws/cloudformation/mocks"
	cfn "github.com/aws/cfn-shapes/pkg/cloudformation"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

const mockChangeSetName = "cfnshape-" + mockUUID

func TestCloudFormation_CreateChangeSet(t *testing.T) {
	testCases := map[string]struct {
		in         *cfn.CreateChangeSetInput
		createMock func(ctrl *gomock.Controller) client
		wantedErr  string
	}{
		"generates a change set name and client token": {
			in: new(cfn.CreateChangeSetInput).
				SetStackName("phonetool").
				SetTemplateBody("{}").
				SetChangeSetType(cfn.ChangeSetTypeCreate),
			createMock: func(ctrl *gomock.Controller) client {
				m := mocks.NewMockclient(ctrl)
				m.EXPECT().CreateChangeSetWithContext(gomock.Any(), &sdkcloudformation.CreateChangeSetInput{
					StackName:     aws.String("phonetool"),
					TemplateBody:  aws.String("{}"),
					ChangeSetType: aws.String("CREATE"),
					ChangeSetName: aws.String(mockChangeSetName),
					ClientToken:   aws.String(mockUUID),
				}).Return(&sdkcloudformation.CreateChangeSetOutput{
					Id:      aws.String("arn:changeSet/" + mockChangeSetName),
					StackId: aws.String("arn:stack/phonetool"),
				}, nil)
				return m
			},
		},
		"keeps the caller's name and converts resources to import": {
			in: new(cfn.CreateChangeSetInput).
				SetStackName("phonetool").
				SetChangeSetName("import-bucket").
				SetClientToken("token-1").
				SetChangeSetType(cfn.ChangeSetTypeImport).
				AppendResourcesToImport(new(cfn.ResourceToImport).
					SetResourceType("AWS::S3::Bucket").
					SetLogicalResourceId("Bucket").
					SetResourceIdentifier(map[string]*string{"BucketName": aws.String("my-bucket")})),
			createMock: func(ctrl *gomock.Controller) client {
				m := mocks.NewMockclient(ctrl)
				m.EXPECT().CreateChangeSetWithContext(gomock.Any(), &sdkcloudformation.CreateChangeSetInput{
					StackName:     aws.String("phonetool"),
					ChangeSetName: aws.String("import-bucket"),
					ClientToken:   aws.String("token-1"),
					ChangeSetType: aws.String("IMPORT"),
					ResourcesToImport: []*sdkcloudformation.ResourceToImport{
						{
							ResourceType:       aws.String("AWS::S3::Bucket"),
							LogicalResourceId:  aws.String("Bucket"),
							ResourceIdentifier: map[string]*string{"BucketName": aws.String("my-bucket")},
						},
					},
				}).Return(&sdkcloudformation.CreateChangeSetOutput{
					Id:      aws.String("arn:changeSet/" + mockChangeSetName),
					StackId: aws.String("arn:stack/phonetool"),
				}, nil)
				return m
			},
		},
		"nil input fails validation like an empty one": {
			in: nil,
			createMock: func(ctrl *gomock.Controller) client {
				m := mocks.NewMockclient(ctrl)
				m.EXPECT().CreateChangeSetWithContext(gomock.Any(), gomock.Any()).Times(0)
				return m
			},
			wantedErr: "missing required field, CreateChangeSetInput.StackName.",
		},
		"rejects a change set name that does not match the pattern": {
			in: new(cfn.CreateChangeSetInput).
				SetStackName("phonetool").
				SetChangeSetName("1-starts-with-a-digit"),
			createMock: func(ctrl *gomock.Controller) client {
				return mocks.NewMockclient(ctrl)
			},
			wantedErr: "CreateChangeSetInput.ChangeSetName",
		},
		"wraps service errors": {
			in: new(cfn.CreateChangeSetInput).SetStackName("phonetool"),
			createMock: func(ctrl *gomock.Controller) client {
				m := mocks.NewMockclient(ctrl)
				m.EXPECT().CreateChangeSetWithContext(gomock.Any(), gomock.Any()).Return(nil, errors.New("some error"))
				return m
			},
			wantedErr: "create change set " + mockChangeSetName + " for stack phonetool: some error",
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			// GIVEN
			useFixedUUIDs(t)
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			c := CloudFormation{client: tc.createMock(ctrl)}
			before := tc.in.String()

			// WHEN
			out, err := c.CreateChangeSet(context.Background(), tc.in)

			// THEN
			require.Equal(t, before, tc.in.String(), "input must not be mutated")
			if tc.wantedErr != "" {
				require.Error(t, err)
				require.Contains(t, err.Error(), tc.wantedErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, "arn:changeSet/"+mockChangeSetName, aws.StringValue(out.Id))
			require.Equal(t, "arn:stack/phonetool", aws.StringValue(out.StackId))
		})
	}
}

func TestCloudFormation_DescribeChangeSet(t *testing.T) {
	testCases := map[string]struct {
		createMock func(ctrl *gomock.Controller) client
		wanted     *cfn.DescribeChangeSetOutput
		wantedErr  error
	}{
		"merges the changes of every page": {
			createMock: func(ctrl *gomock.Controller) client {
				m := mocks.NewMockclient(ctrl)
				gomock.InOrder(
					m.EXPECT().DescribeChangeSetWithContext(gomock.Any(), &sdkcloudformation.DescribeChangeSetInput{
						ChangeSetName: aws.String("cs"),
						StackName:     aws.String("phonetool"),
					}).Return(&sdkcloudformation.DescribeChangeSetOutput{
						ChangeSetName:   aws.String("cs"),
						ExecutionStatus: aws.String("AVAILABLE"),
						Status:          aws.String("CREATE_COMPLETE"),
						Changes: []*sdkcloudformation.Change{
							{
								Type: aws.String("Resource"),
								ResourceChange: &sdkcloudformation.ResourceChange{
									Action:            aws.String("Add"),
									LogicalResourceId: aws.String("Bucket"),
								},
							},
						},
						NextToken: aws.String("page-2"),
					}, nil),
					m.EXPECT().DescribeChangeSetWithContext(gomock.Any(), &sdkcloudformation.DescribeChangeSetInput{
						ChangeSetName: aws.String("cs"),
						StackName:     aws.String("phonetool"),
						NextToken:     aws.String("page-2"),
					}).Return(&sdkcloudformation.DescribeChangeSetOutput{
						ChangeSetName:   aws.String("cs"),
						ExecutionStatus: aws.String("AVAILABLE"),
						Status:          aws.String("CREATE_COMPLETE"),
						Changes: []*sdkcloudformation.Change{
							{
								Type: aws.String("Resource"),
								ResourceChange: &sdkcloudformation.ResourceChange{
									Action:            aws.String("Modify"),
									LogicalResourceId: aws.String("Queue"),
									Replacement:       aws.String("False"),
									Scope:             aws.StringSlice([]string{"Properties"}),
									Details: []*sdkcloudformation.ResourceChangeDetail{
										{
											Evaluation: aws.String("Static"),
											Target: &sdkcloudformation.ResourceTargetDefinition{
												Attribute: aws.String("Properties"),
												Name:      aws.String("VisibilityTimeout"),
											},
										},
									},
								},
							},
						},
					}, nil),
				)
				return m
			},
			wanted: new(cfn.DescribeChangeSetOutput).
				SetChangeSetName("cs").
				SetExecutionStatus(cfn.ExecutionStatusAvailable).
				SetStatus(cfn.ChangeSetStatusCreateComplete).
				AppendChanges(
					new(cfn.Change).SetType(cfn.ChangeTypeResource).SetResourceChange(new(cfn.ResourceChange).
						SetAction(cfn.ChangeActionAdd).
						SetLogicalResourceId("Bucket")),
					new(cfn.Change).SetType(cfn.ChangeTypeResource).SetResourceChange(new(cfn.ResourceChange).
						SetAction(cfn.ChangeActionModify).
						SetLogicalResourceId("Queue").
						SetReplacement(cfn.ReplacementFalse).
						AppendScope(cfn.ResourceAttributeProperties).
						AppendDetails(new(cfn.ResourceChangeDetail).
							SetEvaluation(cfn.EvaluationTypeStatic).
							SetTarget(new(cfn.ResourceTargetDefinition).
								SetAttribute(cfn.ResourceAttributeProperties).
								SetName("VisibilityTimeout")))),
				),
		},
		"returns ErrChangeSetNotFound": {
			createMock: func(ctrl *gomock.Controller) client {
				m := mocks.NewMockclient(ctrl)
				m.EXPECT().DescribeChangeSetWithContext(gomock.Any(), gomock.Any()).
					Return(nil, awserr.New(sdkcloudformation.ErrCodeChangeSetNotFoundException, "not found", nil))
				return m
			},
			wantedErr: &ErrChangeSetNotFound{name: "cs", stackName: "phonetool"},
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			// GIVEN
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			c := CloudFormation{client: tc.createMock(ctrl)}

			// WHEN
			out, err := c.DescribeChangeSet(context.Background(), new(cfn.DescribeChangeSetInput).
				SetChangeSetName("cs").
				SetStackName("phonetool"))

			// THEN
			if tc.wantedErr != nil {
				require.EqualError(t, err, tc.wantedErr.Error())
				return
			}
			require.NoError(t, err)
			require.Nil(t, out.NextToken)
			require.True(t, tc.wanted.Equal(out), "expected %s\ngot %s", tc.wanted, out)
		})
	}
}

func TestCloudFormation_ExecuteChangeSet(t *testing.T) {
	describeReturns := func(m *mocks.Mockclient, status, reason string) {
		m.EXPECT().DescribeChangeSetWithContext(gomock.Any(), &sdkcloudformation.DescribeChangeSetInput{
			ChangeSetName: aws.String("cs"),
			StackName:     aws.String("phonetool"),
		}).Return(&sdkcloudformation.DescribeChangeSetOutput{
			ExecutionStatus: aws.String(status),
			StatusReason:    aws.String(reason),
		}, nil)
	}
	testCases := map[string]struct {
		createMock func(ctrl *gomock.Controller) client
		wantedErr  error
	}{
		"ignores change sets without changes": {
			createMock: func(ctrl *gomock.Controller) client {
				m := mocks.NewMockclient(ctrl)
				describeReturns(m, "UNAVAILABLE", noChangesReason)
				m.EXPECT().ExecuteChangeSetWithContext(gomock.Any(), gomock.Any()).Times(0)
				return m
			},
		},
		"ignores change sets without updates": {
			createMock: func(ctrl *gomock.Controller) client {
				m := mocks.NewMockclient(ctrl)
				describeReturns(m, "UNAVAILABLE", noUpdatesReason)
				return m
			},
		},
		"returns ErrChangeSetNotExecutable": {
			createMock: func(ctrl *gomock.Controller) client {
				m := mocks.NewMockclient(ctrl)
				describeReturns(m, "OBSOLETE", "a newer change set exists")
				return m
			},
			wantedErr: &ErrChangeSetNotExecutable{
				Name:      "cs",
				StackName: "phonetool",
				Status:    cfn.ExecutionStatusObsolete,
				Reason:    "a newer change set exists",
			},
		},
		"executes an available change set": {
			createMock: func(ctrl *gomock.Controller) client {
				m := mocks.NewMockclient(ctrl)
				describeReturns(m, "AVAILABLE", "")
				m.EXPECT().ExecuteChangeSetWithContext(gomock.Any(), &sdkcloudformation.ExecuteChangeSetInput{
					ChangeSetName:      aws.String("cs"),
					StackName:          aws.String("phonetool"),
					ClientRequestToken: aws.String(mockUUID),
				}).Return(&sdkcloudformation.ExecuteChangeSetOutput{}, nil)
				return m
			},
		},
		"wraps execute errors": {
			createMock: func(ctrl *gomock.Controller) client {
				m := mocks.NewMockclient(ctrl)
				describeReturns(m, "AVAILABLE", "")
				m.EXPECT().ExecuteChangeSetWithContext(gomock.Any(), gomock.Any()).Return(nil, errors.New("some error"))
				return m
			},
			wantedErr: errors.New("execute change set cs: some error"),
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			// GIVEN
			useFixedUUIDs(t)
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			c := CloudFormation{client: tc.createMock(ctrl)}

			// WHEN
			err := c.ExecuteChangeSet(context.Background(), new(cfn.ExecuteChangeSetInput).
				SetChangeSetName("cs").
				SetStackName("phonetool"))

			// THEN
			if tc.wantedErr != nil {
				require.EqualError(t, err, tc.wantedErr.Error())
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestCloudFormation_WaitForChangeSetCreate(t *testing.T) {
	// GIVEN
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := mocks.NewMockclient(ctrl)
	m.EXPECT().WaitUntilChangeSetCreateCompleteWithContext(gomock.Any(), &sdkcloudformation.DescribeChangeSetInput{
		ChangeSetName: aws.String("cs"),
		StackName:     aws.String("phonetool"),
	}, gomock.Any(), gomock.Any()).Return(errors.New("ResourceNotReady: failed waiting for successful resource state"))
	c := CloudFormation{client: m}

	// WHEN
	err := c.WaitForChangeSetCreate(context.Background(), "cs", "phonetool")

	// THEN
	require.EqualError(t, err, "wait for creation of change set cs for stack phonetool: ResourceNotReady: failed waiting for successful resource state")
}
