// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package cloudformation provides a client that sends shapes from pkg/cloudformation to AWS CloudFormation.
package cloudformation

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/aws/session"
	sdkcloudformation "github.com/aws/aws-sdk-go/service/cloudformation"
	cfn "github.com/aws/cfn-shapes/pkg/cloudformation"
	"github.com/google/uuid"
)

var waiters = []request.WaiterOption{
	request.WithWaiterDelay(request.ConstantWaiterDelay(5 * time.Second)), // How long to wait in between poll cfn for updates.
	request.WithWaiterMaxAttempts(1080),                                   // Wait for at most 90 mins for any cfn action.
}

// CloudFormation represents a client to make requests to AWS CloudFormation.
type CloudFormation struct {
	client client
}

// New creates a new CloudFormation client.
func New(s *session.Session) *CloudFormation {
	return &CloudFormation{
		client: sdkcloudformation.New(s),
	}
}

// ContinueUpdateRollback resumes the rollback of a stack in the UPDATE_ROLLBACK_FAILED state.
func (c *CloudFormation) ContinueUpdateRollback(ctx context.Context, in *cfn.ContinueUpdateRollbackInput) error {
	if in == nil {
		in = new(cfn.ContinueUpdateRollbackInput)
	}
	if err := in.Validate(); err != nil {
		return err
	}
	req := toSDKContinueUpdateRollbackInput(in)
	if req.ClientRequestToken == nil {
		token, err := newToken()
		if err != nil {
			return err
		}
		req.ClientRequestToken = token
	}
	if _, err := c.client.ContinueUpdateRollbackWithContext(ctx, req); err != nil {
		if stackDoesNotExist(err) {
			return &ErrStackNotFound{name: aws.StringValue(in.StackName)}
		}
		return fmt.Errorf("continue update rollback for stack %s: %w", aws.StringValue(in.StackName), err)
	}
	return nil
}

// CreateStack creates a stack and returns its ID without waiting for the creation to finish.
func (c *CloudFormation) CreateStack(ctx context.Context, in *cfn.CreateStackInput) (*cfn.CreateStackOutput, error) {
	if in == nil {
		in = new(cfn.CreateStackInput)
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}
	req := toSDKCreateStackInput(in)
	if req.ClientRequestToken == nil {
		token, err := newToken()
		if err != nil {
			return nil, err
		}
		req.ClientRequestToken = token
	}
	out, err := c.client.CreateStackWithContext(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("create stack %s: %w", aws.StringValue(in.StackName), err)
	}
	return &cfn.CreateStackOutput{StackId: out.StackId}, nil
}

// UpdateStack starts an update of an existing stack.
func (c *CloudFormation) UpdateStack(ctx context.Context, in *cfn.UpdateStackInput) (*cfn.UpdateStackOutput, error) {
	if in == nil {
		in = new(cfn.UpdateStackInput)
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}
	req := toSDKUpdateStackInput(in)
	if req.ClientRequestToken == nil {
		token, err := newToken()
		if err != nil {
			return nil, err
		}
		req.ClientRequestToken = token
	}
	out, err := c.client.UpdateStackWithContext(ctx, req)
	if err != nil {
		if stackDoesNotExist(err) {
			return nil, &ErrStackNotFound{name: aws.StringValue(in.StackName)}
		}
		return nil, fmt.Errorf("update stack %s: %w", aws.StringValue(in.StackName), err)
	}
	return &cfn.UpdateStackOutput{StackId: out.StackId}, nil
}

// DescribeStacks returns every stack matching the input, following NextToken until all pages are read.
// The returned output never carries a NextToken.
func (c *CloudFormation) DescribeStacks(ctx context.Context, in *cfn.DescribeStacksInput) (*cfn.DescribeStacksOutput, error) {
	if in == nil {
		in = new(cfn.DescribeStacksInput)
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}
	var stacks []*cfn.Stack
	nextToken := in.NextToken
	for {
		out, err := c.client.DescribeStacksWithContext(ctx, &sdkcloudformation.DescribeStacksInput{
			StackName: in.StackName,
			NextToken: nextToken,
		})
		if err != nil {
			if stackDoesNotExist(err) {
				return nil, &ErrStackNotFound{name: aws.StringValue(in.StackName)}
			}
			return nil, fmt.Errorf("describe stacks: %w", err)
		}
		stacks = append(stacks, mapSlice(out.Stacks, fromSDKStack)...)
		nextToken = out.NextToken
		if nextToken == nil {
			break
		}
	}
	return &cfn.DescribeStacksOutput{Stacks: stacks}, nil
}

// DescribeStack returns the stack with the given name or ID.
// If the stack does not exist, returns ErrStackNotFound.
func (c *CloudFormation) DescribeStack(ctx context.Context, name string) (*cfn.Stack, error) {
	out, err := c.DescribeStacks(ctx, new(cfn.DescribeStacksInput).SetStackName(name))
	if err != nil {
		return nil, err
	}
	if len(out.Stacks) == 0 {
		return nil, &ErrStackNotFound{name: name}
	}
	return out.Stacks[0], nil
}

// WaitForCreate blocks until the stack is created or until the max attempt window expires.
func (c *CloudFormation) WaitForCreate(ctx context.Context, stackName string) error {
	err := c.client.WaitUntilStackCreateCompleteWithContext(ctx, &sdkcloudformation.DescribeStacksInput{
		StackName: aws.String(stackName),
	}, waiters...)
	if err != nil {
		return fmt.Errorf("wait until stack %s create is complete: %w", stackName, err)
	}
	return nil
}

// WaitForUpdate blocks until the stack is updated or until the max attempt window expires.
func (c *CloudFormation) WaitForUpdate(ctx context.Context, stackName string) error {
	err := c.client.WaitUntilStackUpdateCompleteWithContext(ctx, &sdkcloudformation.DescribeStacksInput{
		StackName: aws.String(stackName),
	}, waiters...)
	if err != nil {
		return fmt.Errorf("wait until stack %s update is complete: %w", stackName, err)
	}
	return nil
}

// DescribeType returns the registration details of a public or private extension.
func (c *CloudFormation) DescribeType(ctx context.Context, in *cfn.DescribeTypeInput) (*cfn.DescribeTypeOutput, error) {
	if in == nil {
		in = new(cfn.DescribeTypeInput)
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}
	out, err := c.client.DescribeTypeWithContext(ctx, toSDKDescribeTypeInput(in))
	if err != nil {
		name := aws.StringValue(in.TypeName)
		if name == "" {
			name = aws.StringValue(in.Arn)
		}
		if isNotFoundType(err) {
			return nil, &ErrTypeNotFound{name: name}
		}
		return nil, fmt.Errorf("describe type %s: %w", name, err)
	}
	return fromSDKDescribeTypeOutput(out), nil
}

func newToken() (*string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return nil, fmt.Errorf("generate client request token: %w", err)
	}
	return aws.String(id.String()), nil
}
