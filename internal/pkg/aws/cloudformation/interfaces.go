// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cloudformation

import (
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	sdkcloudformation "github.com/aws/aws-sdk-go/service/cloudformation"
)

type client interface {
	ContinueUpdateRollbackWithContext(aws.Context, *sdkcloudformation.ContinueUpdateRollbackInput, ...request.Option) (*sdkcloudformation.ContinueUpdateRollbackOutput, error)
	CreateStackWithContext(aws.Context, *sdkcloudformation.CreateStackInput, ...request.Option) (*sdkcloudformation.CreateStackOutput, error)
	UpdateStackWithContext(aws.Context, *sdkcloudformation.UpdateStackInput, ...request.Option) (*sdkcloudformation.UpdateStackOutput, error)
	DescribeStacksWithContext(aws.Context, *sdkcloudformation.DescribeStacksInput, ...request.Option) (*sdkcloudformation.DescribeStacksOutput, error)
	WaitUntilStackCreateCompleteWithContext(aws.Context, *sdkcloudformation.DescribeStacksInput, ...request.WaiterOption) error
	WaitUntilStackUpdateCompleteWithContext(aws.Context, *sdkcloudformation.DescribeStacksInput, ...request.WaiterOption) error

	CreateChangeSetWithContext(aws.Context, *sdkcloudformation.CreateChangeSetInput, ...request.Option) (*sdkcloudformation.CreateChangeSetOutput, error)
	DescribeChangeSetWithContext(aws.Context, *sdkcloudformation.DescribeChangeSetInput, ...request.Option) (*sdkcloudformation.DescribeChangeSetOutput, error)
	ExecuteChangeSetWithContext(aws.Context, *sdkcloudformation.ExecuteChangeSetInput, ...request.Option) (*sdkcloudformation.ExecuteChangeSetOutput, error)
	WaitUntilChangeSetCreateCompleteWithContext(aws.Context, *sdkcloudformation.DescribeChangeSetInput, ...request.WaiterOption) error

	CreateStackSetWithContext(aws.Context, *sdkcloudformation.CreateStackSetInput, ...request.Option) (*sdkcloudformation.CreateStackSetOutput, error)
	UpdateStackSetWithContext(aws.Context, *sdkcloudformation.UpdateStackSetInput, ...request.Option) (*sdkcloudformation.UpdateStackSetOutput, error)
	UpdateStackInstancesWithContext(aws.Context, *sdkcloudformation.UpdateStackInstancesInput, ...request.Option) (*sdkcloudformation.UpdateStackInstancesOutput, error)
	DescribeStackSetOperationWithContext(aws.Context, *sdkcloudformation.DescribeStackSetOperationInput, ...request.Option) (*sdkcloudformation.DescribeStackSetOperationOutput, error)
	ListStackInstancesWithContext(aws.Context, *sdkcloudformation.ListStackInstancesInput, ...request.Option) (*sdkcloudformation.ListStackInstancesOutput, error)

	DescribeTypeWithContext(aws.Context, *sdkcloudformation.DescribeTypeInput, ...request.Option) (*sdkcloudformation.DescribeTypeOutput, error)
}
