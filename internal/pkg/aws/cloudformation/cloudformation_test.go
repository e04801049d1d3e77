// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cloudformation

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/request"
	sdkcloudformation "github.com/aws/aws-sdk-go/service/cloudformation"
	"github.com/aws/cfn-shapes/internal/pkg/aws/cloudformation/mocks"
	cfn "github.com/aws/cfn-shapes/pkg/cloudformation"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// mockUUID is the value of every uuid generated while useFixedUUIDs is in effect.
const mockUUID = "31323334-3536-4738-b930-313233343536"

var errDoesNotExist = awserr.New("ValidationError", "does not exist", nil)

func useFixedUUIDs(t *testing.T) {
	uuid.SetRand(bytes.NewReader(bytes.Repeat([]byte("1234567890123456"), 8)))
	t.Cleanup(func() {
		uuid.SetRand(nil)
	})
}

func TestCloudFormation_ContinueUpdateRollback(t *testing.T) {
	testCases := map[string]struct {
		in         *cfn.ContinueUpdateRollbackInput
		createMock func(ctrl *gomock.Controller) client
		wantedErr  error
	}{
		"fails validation before calling the service": {
			in: new(cfn.ContinueUpdateRollbackInput).SetRoleARN("arn"),
			createMock: func(ctrl *gomock.Controller) client {
				m := mocks.NewMockclient(ctrl)
				m.EXPECT().ContinueUpdateRollbackWithContext(gomock.Any(), gomock.Any()).Times(0)
				return m
			},
			wantedErr: errors.New("InvalidParameter: 1 validation error(s) found."),
		},
		"nil input fails validation like an empty one": {
			in: nil,
			createMock: func(ctrl *gomock.Controller) client {
				m := mocks.NewMockclient(ctrl)
				m.EXPECT().ContinueUpdateRollbackWithContext(gomock.Any(), gomock.Any()).Times(0)
				return m
			},
			wantedErr: errors.New("missing required field, ContinueUpdateRollbackInput.StackName."),
		},
		"generates a client request token when unset": {
			in: new(cfn.ContinueUpdateRollbackInput).SetStackName("phonetool").AppendResourcesToSkip("Bucket"),
			createMock: func(ctrl *gomock.Controller) client {
				m := mocks.NewMockclient(ctrl)
				m.EXPECT().ContinueUpdateRollbackWithContext(gomock.Any(), &sdkcloudformation.ContinueUpdateRollbackInput{
					StackName:          aws.String("phonetool"),
					ResourcesToSkip:    aws.StringSlice([]string{"Bucket"}),
					ClientRequestToken: aws.String(mockUUID),
				}).Return(&sdkcloudformation.ContinueUpdateRollbackOutput{}, nil)
				return m
			},
		},
		"keeps the caller's client request token": {
			in: new(cfn.ContinueUpdateRollbackInput).SetStackName("phonetool").SetClientRequestToken("token-1"),
			createMock: func(ctrl *gomock.Controller) client {
				m := mocks.NewMockclient(ctrl)
				m.EXPECT().ContinueUpdateRollbackWithContext(gomock.Any(), &sdkcloudformation.ContinueUpdateRollbackInput{
					StackName:          aws.String("phonetool"),
					ClientRequestToken: aws.String("token-1"),
				}).Return(&sdkcloudformation.ContinueUpdateRollbackOutput{}, nil)
				return m
			},
		},
		"returns ErrStackNotFound if the stack does not exist": {
			in: new(cfn.ContinueUpdateRollbackInput).SetStackName("phonetool"),
			createMock: func(ctrl *gomock.Controller) client {
				m := mocks.NewMockclient(ctrl)
				m.EXPECT().ContinueUpdateRollbackWithContext(gomock.Any(), gomock.Any()).Return(nil, errDoesNotExist)
				return m
			},
			wantedErr: &ErrStackNotFound{name: "phonetool"},
		},
		"wraps unexpected errors": {
			in: new(cfn.ContinueUpdateRollbackInput).SetStackName("phonetool"),
			createMock: func(ctrl *gomock.Controller) client {
				m := mocks.NewMockclient(ctrl)
				m.EXPECT().ContinueUpdateRollbackWithContext(gomock.Any(), gomock.Any()).Return(nil, errors.New("some error"))
				return m
			},
			wantedErr: errors.New("continue update rollback for stack phonetool: some error"),
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
			err := c.ContinueUpdateRollback(context.Background(), tc.in)

			// THEN
			if tc.wantedErr != nil {
				require.Error(t, err)
				require.Contains(t, err.Error(), tc.wantedErr.Error())
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestCloudFormation_ContinueUpdateRollback_DoesNotMutateInput(t *testing.T) {
	// GIVEN
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := mocks.NewMockclient(ctrl)
	m.EXPECT().ContinueUpdateRollbackWithContext(gomock.Any(), gomock.Any()).Return(&sdkcloudformation.ContinueUpdateRollbackOutput{}, nil)
	c := CloudFormation{client: m}
	in := new(cfn.ContinueUpdateRollbackInput).SetStackName("phonetool")
	before := in.String()

	// WHEN
	err := c.ContinueUpdateRollback(context.Background(), in)

	// THEN
	require.NoError(t, err)
	require.Nil(t, in.ClientRequestToken)
	require.Equal(t, before, in.String())
}

func TestCloudFormation_NilInput(t *testing.T) {
	testCases := map[string]struct {
		createMock func(ctrl *gomock.Controller) client
		call       func(c *CloudFormation) error
		wantedErr  string
	}{
		"UpdateStack": {
			createMock: func(ctrl *gomock.Controller) client {
				m := mocks.NewMockclient(ctrl)
				m.EXPECT().UpdateStackWithContext(gomock.Any(), gomock.Any()).Times(0)
				return m
			},
			call: func(c *CloudFormation) error {
				_, err := c.UpdateStack(context.Background(), nil)
				return err
			},
			wantedErr: "missing required field, UpdateStackInput.StackName.",
		},
		"DescribeChangeSet": {
			createMock: func(ctrl *gomock.Controller) client {
				m := mocks.NewMockclient(ctrl)
				m.EXPECT().DescribeChangeSetWithContext(gomock.Any(), gomock.Any()).Times(0)
				return m
			},
			call: func(c *CloudFormation) error {
				_, err := c.DescribeChangeSet(context.Background(), nil)
				return err
			},
			wantedErr: "missing required field, DescribeChangeSetInput.ChangeSetName.",
		},
		"ExecuteChangeSet": {
			createMock: func(ctrl *gomock.Controller) client {
				m := mocks.NewMockclient(ctrl)
				m.EXPECT().ExecuteChangeSetWithContext(gomock.Any(), gomock.Any()).Times(0)
				return m
			},
			call: func(c *CloudFormation) error {
				return c.ExecuteChangeSet(context.Background(), nil)
			},
			wantedErr: "missing required field, ExecuteChangeSetInput.ChangeSetName.",
		},
		"CreateStackSet": {
			createMock: func(ctrl *gomock.Controller) client {
				m := mocks.NewMockclient(ctrl)
				m.EXPECT().CreateStackSetWithContext(gomock.Any(), gomock.Any()).Times(0)
				return m
			},
			call: func(c *CloudFormation) error {
				_, err := c.CreateStackSet(context.Background(), nil)
				return err
			},
			wantedErr: "missing required field, CreateStackSetInput.StackSetName.",
		},
		"DescribeStackSetOperation": {
			createMock: func(ctrl *gomock.Controller) client {
				m := mocks.NewMockclient(ctrl)
				m.EXPECT().DescribeStackSetOperationWithContext(gomock.Any(), gomock.Any()).Times(0)
				return m
			},
			call: func(c *CloudFormation) error {
				_, err := c.DescribeStackSetOperation(context.Background(), nil)
				return err
			},
			wantedErr: "missing required field, DescribeStackSetOperationInput.StackSetName.",
		},
		"ListStackInstances": {
			createMock: func(ctrl *gomock.Controller) client {
				m := mocks.NewMockclient(ctrl)
				m.EXPECT().ListStackInstancesWithContext(gomock.Any(), gomock.Any()).Times(0)
				return m
			},
			call: func(c *CloudFormation) error {
				_, err := c.ListStackInstances(context.Background(), nil)
				return err
			},
			wantedErr: "missing required field, ListStackInstancesInput.StackSetName.",
		},
		"DescribeStacks sends an empty request": {
			createMock: func(ctrl *gomock.Controller) client {
				m := mocks.NewMockclient(ctrl)
				m.EXPECT().DescribeStacksWithContext(gomock.Any(), &sdkcloudformation.DescribeStacksInput{}).
					Return(&sdkcloudformation.DescribeStacksOutput{}, nil)
				return m
			},
			call: func(c *CloudFormation) error {
				_, err := c.DescribeStacks(context.Background(), nil)
				return err
			},
		},
		"DescribeType sends an empty request": {
			createMock: func(ctrl *gomock.Controller) client {
				m := mocks.NewMockclient(ctrl)
				m.EXPECT().DescribeTypeWithContext(gomock.Any(), &sdkcloudformation.DescribeTypeInput{}).
					Return(&sdkcloudformation.DescribeTypeOutput{}, nil)
				return m
			},
			call: func(c *CloudFormation) error {
				_, err := c.DescribeType(context.Background(), nil)
				return err
			},
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			// GIVEN
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			c := &CloudFormation{client: tc.createMock(ctrl)}

			// WHEN
			var err error
			require.NotPanics(t, func() {
				err = tc.call(c)
			})

			// THEN
			if tc.wantedErr != "" {
				require.ErrorContains(t, err, tc.wantedErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestCloudFormation_CreateStack(t *testing.T) {
	testCases := map[string]struct {
		in         *cfn.CreateStackInput
		createMock func(ctrl *gomock.Controller) client
		wanted     *cfn.CreateStackOutput
		wantedErr  string
	}{
		"converts the input and returns the stack id": {
			in: new(cfn.CreateStackInput).
				SetStackName("phonetool").
				SetTemplateBody("{}").
				AppendCapabilities(cfn.CapabilityIAM, cfn.CapabilityNamedIAM).
				SetOnFailure(cfn.OnFailureDelete).
				AppendParameters(new(cfn.Parameter).SetParameterKey("Env").SetParameterValue("test")).
				AppendTags(new(cfn.Tag).SetKey("app").SetValue("phonetool")),
			createMock: func(ctrl *gomock.Controller) client {
				m := mocks.NewMockclient(ctrl)
				m.EXPECT().CreateStackWithContext(gomock.Any(), &sdkcloudformation.CreateStackInput{
					StackName:    aws.String("phonetool"),
					TemplateBody: aws.String("{}"),
					Capabilities: aws.StringSlice([]string{"CAPABILITY_IAM", "CAPABILITY_NAMED_IAM"}),
					OnFailure:    aws.String("DELETE"),
					Parameters: []*sdkcloudformation.Parameter{
						{ParameterKey: aws.String("Env"), ParameterValue: aws.String("test")},
					},
					Tags: []*sdkcloudformation.Tag{
						{Key: aws.String("app"), Value: aws.String("phonetool")},
					},
					ClientRequestToken: aws.String(mockUUID),
				}).Return(&sdkcloudformation.CreateStackOutput{StackId: aws.String("arn:stack/phonetool")}, nil)
				return m
			},
			wanted: new(cfn.CreateStackOutput).SetStackId("arn:stack/phonetool"),
		},
		"nil input fails validation like an empty one": {
			in: nil,
			createMock: func(ctrl *gomock.Controller) client {
				m := mocks.NewMockclient(ctrl)
				m.EXPECT().CreateStackWithContext(gomock.Any(), gomock.Any()).Times(0)
				return m
			},
			wantedErr: "missing required field, CreateStackInput.StackName.",
		},
		"fails validation on a nested tag": {
			in: new(cfn.CreateStackInput).
				SetStackName("phonetool").
				AppendTags(new(cfn.Tag).SetKey("app")),
			createMock: func(ctrl *gomock.Controller) client {
				return mocks.NewMockclient(ctrl)
			},
			wantedErr: "missing required field, CreateStackInput.Tags[0].Value.",
		},
		"wraps service errors": {
			in: new(cfn.CreateStackInput).SetStackName("phonetool"),
			createMock: func(ctrl *gomock.Controller) client {
				m := mocks.NewMockclient(ctrl)
				m.EXPECT().CreateStackWithContext(gomock.Any(), gomock.Any()).
					Return(nil, awserr.New(sdkcloudformation.ErrCodeAlreadyExistsException, "exists", nil))
				return m
			},
			wantedErr: "create stack phonetool: AlreadyExistsException: exists",
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
			out, err := c.CreateStack(context.Background(), tc.in)

			// THEN
			if tc.wantedErr != "" {
				require.Error(t, err)
				require.Contains(t, err.Error(), tc.wantedErr)
				return
			}
			require.NoError(t, err)
			require.True(t, tc.wanted.Equal(out), "expected %s, got %s", tc.wanted, out)
		})
	}
}

func TestCloudFormation_UpdateStack(t *testing.T) {
	testCases := map[string]struct {
		createMock func(ctrl *gomock.Controller) client
		wantedErr  error
	}{
		"returns ErrStackNotFound": {
			createMock: func(ctrl *gomock.Controller) client {
				m := mocks.NewMockclient(ctrl)
				m.EXPECT().UpdateStackWithContext(gomock.Any(), gomock.Any()).Return(nil, errDoesNotExist)
				return m
			},
			wantedErr: &ErrStackNotFound{name: "phonetool"},
		},
		"success": {
			createMock: func(ctrl *gomock.Controller) client {
				m := mocks.NewMockclient(ctrl)
				m.EXPECT().UpdateStackWithContext(gomock.Any(), &sdkcloudformation.UpdateStackInput{
					StackName:           aws.String("phonetool"),
					UsePreviousTemplate: aws.Bool(true),
					ClientRequestToken:  aws.String(mockUUID),
				}).Return(&sdkcloudformation.UpdateStackOutput{StackId: aws.String("id")}, nil)
				return m
			},
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
			out, err := c.UpdateStack(context.Background(), new(cfn.UpdateStackInput).
				SetStackName("phonetool").
				SetUsePreviousTemplate(true))

			// THEN
			if tc.wantedErr != nil {
				require.EqualError(t, err, tc.wantedErr.Error())
				return
			}
			require.NoError(t, err)
			require.Equal(t, "id", aws.StringValue(out.StackId))
		})
	}
}

func TestCloudFormation_DescribeStacks(t *testing.T) {
	created := time.Date(2022, time.August, 1, 12, 0, 0, 0, time.UTC)
	testCases := map[string]struct {
		createMock   func(ctrl *gomock.Controller) client
		wantedStacks []*cfn.Stack
		wantedErr    error
	}{
		"merges every page": {
			createMock: func(ctrl *gomock.Controller) client {
				m := mocks.NewMockclient(ctrl)
				gomock.InOrder(
					m.EXPECT().DescribeStacksWithContext(gomock.Any(), &sdkcloudformation.DescribeStacksInput{}).
						Return(&sdkcloudformation.DescribeStacksOutput{
							Stacks: []*sdkcloudformation.Stack{
								{
									StackName:    aws.String("phonetool"),
									StackStatus:  aws.String("CREATE_COMPLETE"),
									CreationTime: aws.Time(created),
									Capabilities: aws.StringSlice([]string{"CAPABILITY_IAM"}),
									Outputs: []*sdkcloudformation.Output{
										{OutputKey: aws.String("URL"), OutputValue: aws.String("https://example.com")},
									},
									DriftInformation: &sdkcloudformation.StackDriftInformation{
										StackDriftStatus: aws.String("IN_SYNC"),
									},
								},
							},
							NextToken: aws.String("page-2"),
						}, nil),
					m.EXPECT().DescribeStacksWithContext(gomock.Any(), &sdkcloudformation.DescribeStacksInput{
						NextToken: aws.String("page-2"),
					}).Return(&sdkcloudformation.DescribeStacksOutput{
						Stacks: []*sdkcloudformation.Stack{
							{StackName: aws.String("api"), StackStatus: aws.String("UPDATE_ROLLBACK_FAILED")},
						},
					}, nil),
				)
				return m
			},
			wantedStacks: []*cfn.Stack{
				new(cfn.Stack).
					SetStackName("phonetool").
					SetStackStatus(cfn.StackStatusCreateComplete).
					SetCreationTime(created).
					AppendCapabilities(cfn.CapabilityIAM).
					AppendOutputs(new(cfn.Output).SetOutputKey("URL").SetOutputValue("https://example.com")).
					SetDriftInformation(new(cfn.StackDriftInformation).SetStackDriftStatus(cfn.StackDriftStatusInSync)),
				new(cfn.Stack).
					SetStackName("api").
					SetStackStatus(cfn.StackStatusUpdateRollbackFailed),
			},
		},
		"wraps errors": {
			createMock: func(ctrl *gomock.Controller) client {
				m := mocks.NewMockclient(ctrl)
				m.EXPECT().DescribeStacksWithContext(gomock.Any(), gomock.Any()).Return(nil, errors.New("some error"))
				return m
			},
			wantedErr: errors.New("describe stacks: some error"),
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			// GIVEN
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			c := CloudFormation{client: tc.createMock(ctrl)}

			// WHEN
			out, err := c.DescribeStacks(context.Background(), &cfn.DescribeStacksInput{})

			// THEN
			if tc.wantedErr != nil {
				require.EqualError(t, err, tc.wantedErr.Error())
				return
			}
			require.NoError(t, err)
			require.Nil(t, out.NextToken)
			require.True(t, new(cfn.DescribeStacksOutput).SetStacks(tc.wantedStacks).Equal(out), "got %s", out)
		})
	}
}

func TestCloudFormation_DescribeStack(t *testing.T) {
	testCases := map[string]struct {
		createMock func(ctrl *gomock.Controller) client
		wanted     *cfn.Stack
		wantedErr  error
	}{
		"returns ErrStackNotFound on a ValidationError": {
			createMock: func(ctrl *gomock.Controller) client {
				m := mocks.NewMockclient(ctrl)
				m.EXPECT().DescribeStacksWithContext(gomock.Any(), &sdkcloudformation.DescribeStacksInput{
					StackName: aws.String("phonetool"),
				}).Return(nil, errDoesNotExist)
				return m
			},
			wantedErr: &ErrStackNotFound{name: "phonetool"},
		},
		"returns ErrStackNotFound when no stacks are returned": {
			createMock: func(ctrl *gomock.Controller) client {
				m := mocks.NewMockclient(ctrl)
				m.EXPECT().DescribeStacksWithContext(gomock.Any(), gomock.Any()).Return(&sdkcloudformation.DescribeStacksOutput{}, nil)
				return m
			},
			wantedErr: &ErrStackNotFound{name: "phonetool"},
		},
		"returns the first stack": {
			createMock: func(ctrl *gomock.Controller) client {
				m := mocks.NewMockclient(ctrl)
				m.EXPECT().DescribeStacksWithContext(gomock.Any(), gomock.Any()).Return(&sdkcloudformation.DescribeStacksOutput{
					Stacks: []*sdkcloudformation.Stack{
						{StackName: aws.String("phonetool"), StackStatus: aws.String("SOME_NEW_STATUS")},
					},
				}, nil)
				return m
			},
			wanted: new(cfn.Stack).SetStackName("phonetool").SetStackStatus("SOME_NEW_STATUS"),
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			// GIVEN
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			c := CloudFormation{client: tc.createMock(ctrl)}

			// WHEN
			stack, err := c.DescribeStack(context.Background(), "phonetool")

			// THEN
			if tc.wantedErr != nil {
				require.EqualError(t, err, tc.wantedErr.Error())
				var notFound *ErrStackNotFound
				require.True(t, errors.As(err, &notFound))
				return
			}
			require.NoError(t, err)
			require.True(t, tc.wanted.Equal(stack), "got %s", stack)
		})
	}
}

func TestCloudFormation_WaitForCreate(t *testing.T) {
	// GIVEN
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := mocks.NewMockclient(ctrl)
	m.EXPECT().WaitUntilStackCreateCompleteWithContext(gomock.Any(), &sdkcloudformation.DescribeStacksInput{
		StackName: aws.String("phonetool"),
	}, gomock.Any(), gomock.Any()).Return(errors.New("ResourceNotReady"))
	c := CloudFormation{client: m}

	// WHEN
	err := c.WaitForCreate(context.Background(), "phonetool")

	// THEN
	require.EqualError(t, err, "wait until stack phonetool create is complete: ResourceNotReady")
}

func TestCloudFormation_WaitForUpdate(t *testing.T) {
	// GIVEN
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := mocks.NewMockclient(ctrl)
	m.EXPECT().WaitUntilStackUpdateCompleteWithContext(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ aws.Context, _ *sdkcloudformation.DescribeStacksInput, opts ...request.WaiterOption) error {
			w := request.Waiter{}
			w.ApplyOptions(opts...)
			require.Equal(t, 1080, w.MaxAttempts)
			return nil
		})
	c := CloudFormation{client: m}

	// WHEN
	err := c.WaitForUpdate(context.Background(), "phonetool")

	// THEN
	require.NoError(t, err)
}

func TestCloudFormation_DescribeType(t *testing.T) {
	testCases := map[string]struct {
		in         *cfn.DescribeTypeInput
		createMock func(ctrl *gomock.Controller) client
		wanted     *cfn.DescribeTypeOutput
		wantedErr  error
	}{
		"returns ErrTypeNotFound": {
			in: new(cfn.DescribeTypeInput).SetType(cfn.RegistryTypeResource).SetTypeName("Acme::Bucket::Thing"),
			createMock: func(ctrl *gomock.Controller) client {
				m := mocks.NewMockclient(ctrl)
				m.EXPECT().DescribeTypeWithContext(gomock.Any(), gomock.Any()).
					Return(nil, awserr.New(sdkcloudformation.ErrCodeTypeNotFoundException, "not found", nil))
				return m
			},
			wantedErr: &ErrTypeNotFound{name: "Acme::Bucket::Thing"},
		},
		"falls back to the arn in errors": {
			in: new(cfn.DescribeTypeInput).SetArn("arn:aws:cloudformation:us-west-2:123456789012:type/resource/Acme-Bucket-Thing"),
			createMock: func(ctrl *gomock.Controller) client {
				m := mocks.NewMockclient(ctrl)
				m.EXPECT().DescribeTypeWithContext(gomock.Any(), gomock.Any()).Return(nil, errors.New("some error"))
				return m
			},
			wantedErr: fmt.Errorf("describe type %s: some error", "arn:aws:cloudformation:us-west-2:123456789012:type/resource/Acme-Bucket-Thing"),
		},
		"converts the output": {
			in: new(cfn.DescribeTypeInput).SetType(cfn.RegistryTypeResource).SetTypeName("AWS::S3::Bucket"),
			createMock: func(ctrl *gomock.Controller) client {
				m := mocks.NewMockclient(ctrl)
				m.EXPECT().DescribeTypeWithContext(gomock.Any(), &sdkcloudformation.DescribeTypeInput{
					Type:     aws.String("RESOURCE"),
					TypeName: aws.String("AWS::S3::Bucket"),
				}).Return(&sdkcloudformation.DescribeTypeOutput{
					TypeName:         aws.String("AWS::S3::Bucket"),
					Type:             aws.String("RESOURCE"),
					Visibility:       aws.String("PUBLIC"),
					ProvisioningType: aws.String("FULLY_MUTABLE"),
					LoggingConfig: &sdkcloudformation.LoggingConfig{
						LogGroupName: aws.String("/cfn/types"),
						LogRoleArn:   aws.String("arn:role"),
					},
				}, nil)
				return m
			},
			wanted: new(cfn.DescribeTypeOutput).
				SetTypeName("AWS::S3::Bucket").
				SetType(cfn.RegistryTypeResource).
				SetVisibility(cfn.VisibilityPublic).
				SetProvisioningType(cfn.ProvisioningTypeFullyMutable).
				SetLoggingConfig(new(cfn.LoggingConfig).SetLogGroupName("/cfn/types").SetLogRoleArn("arn:role")),
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			// GIVEN
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			c := CloudFormation{client: tc.createMock(ctrl)}

			// WHEN
			out, err := c.DescribeType(context.Background(), tc.in)

			// THEN
			if tc.wantedErr != nil {
				require.EqualError(t, err, tc.wantedErr.Error())
				return
			}
			require.NoError(t, err)
			require.True(t, tc.wanted.Equal(out), "got %s", out)
		})
	}
}
