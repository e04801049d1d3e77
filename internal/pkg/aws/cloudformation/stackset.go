// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cloudformation

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	sdkcloudformation "github.com/aws/aws-sdk-go/service/cloudformation"
	cfn "github.com/aws/cfn-shapes/pkg/cloudformation"
	"golang.org/x/sync/errgroup"
)

// operationPollInterval is how long WaitForOperation sleeps between two describe calls.
var operationPollInterval = 3 * time.Second

// CreateStackSet creates a stack set and returns its ID.
func (c *CloudFormation) CreateStackSet(ctx context.Context, in *cfn.CreateStackSetInput) (*cfn.CreateStackSetOutput, error) {
	if in == nil {
		in = new(cfn.CreateStackSetInput)
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}
	req := toSDKCreateStackSetInput(in)
	if req.ClientRequestToken == nil {
		token, err := newToken()
		if err != nil {
			return nil, err
		}
		req.ClientRequestToken = token
	}
	out, err := c.client.CreateStackSetWithContext(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("create stack set %s: %w", aws.StringValue(in.StackSetName), err)
	}
	return &cfn.CreateStackSetOutput{StackSetId: out.StackSetId}, nil
}

// UpdateStackSet updates a stack set and all of its instances, and returns the ID of the started operation.
// If another operation is already running or the operation ID was used before, returns ErrStackSetOutOfDate.
func (c *CloudFormation) UpdateStackSet(ctx context.Context, in *cfn.UpdateStackSetInput) (*cfn.UpdateStackSetOutput, error) {
	if in == nil {
		in = new(cfn.UpdateStackSetInput)
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}
	req := toSDKUpdateStackSetInput(in)
	if req.OperationId == nil {
		id, err := newToken()
		if err != nil {
			return nil, err
		}
		req.OperationId = id
	}
	out, err := c.client.UpdateStackSetWithContext(ctx, req)
	if err != nil {
		name := aws.StringValue(in.StackSetName)
		switch {
		case isOutdatedStackSet(err):
			return nil, &ErrStackSetOutOfDate{name: name, parentErr: err}
		case isNotFoundStackSet(err):
			return nil, &ErrStackSetNotFound{name: name}
		}
		return nil, fmt.Errorf("update stack set %s: %w", name, err)
	}
	return &cfn.UpdateStackSetOutput{OperationId: out.OperationId}, nil
}

// UpdateStackInstances overrides parameter values of existing stack instances and returns the operation ID.
func (c *CloudFormation) UpdateStackInstances(ctx context.Context, in *cfn.UpdateStackInstancesInput) (*cfn.UpdateStackInstancesOutput, error) {
	if in == nil {
		in = new(cfn.UpdateStackInstancesInput)
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}
	req := toSDKUpdateStackInstancesInput(in)
	if req.OperationId == nil {
		id, err := newToken()
		if err != nil {
			return nil, err
		}
		req.OperationId = id
	}
	out, err := c.client.UpdateStackInstancesWithContext(ctx, req)
	if err != nil {
		name := aws.StringValue(in.StackSetName)
		switch {
		case isOutdatedStackSet(err):
			return nil, &ErrStackSetOutOfDate{name: name, parentErr: err}
		case isNotFoundStackSet(err):
			return nil, &ErrStackSetNotFound{name: name}
		}
		return nil, fmt.Errorf("update instances of stack set %s: %w", name, err)
	}
	return &cfn.UpdateStackInstancesOutput{OperationId: out.OperationId}, nil
}

// DescribeStackSetOperation returns a description of a stack set operation.
func (c *CloudFormation) DescribeStackSetOperation(ctx context.Context, in *cfn.DescribeStackSetOperationInput) (*cfn.DescribeStackSetOperationOutput, error) {
	if in == nil {
		in = new(cfn.DescribeStackSetOperationInput)
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}
	name, opID := aws.StringValue(in.StackSetName), aws.StringValue(in.OperationId)
	out, err := c.client.DescribeStackSetOperationWithContext(ctx, &sdkcloudformation.DescribeStackSetOperationInput{
		StackSetName: in.StackSetName,
		OperationId:  in.OperationId,
	})
	if err != nil {
		switch {
		case isNotFoundStackSet(err):
			return nil, &ErrStackSetNotFound{name: name}
		case isNotFoundOperation(err):
			return nil, &ErrStackSetOperationNotFound{stackSetName: name, operationID: opID}
		}
		return nil, fmt.Errorf("describe operation %s for stack set %s: %w", opID, name, err)
	}
	return &cfn.DescribeStackSetOperationOutput{
		StackSetOperation: fromSDKStackSetOperation(out.StackSetOperation),
	}, nil
}

// DescribeStackSetOperations describes several operations of the same stack set concurrently.
// The returned operations are in the same order as opIDs. The first failure cancels the remaining calls.
func (c *CloudFormation) DescribeStackSetOperations(ctx context.Context, stackSetName string, opIDs []string) ([]*cfn.StackSetOperation, error) {
	ops := make([]*cfn.StackSetOperation, len(opIDs))
	g, ctx := errgroup.WithContext(ctx)
	for i, id := range opIDs {
		i, id := i, id
		g.Go(func() error {
			out, err := c.DescribeStackSetOperation(ctx, new(cfn.DescribeStackSetOperationInput).
				SetStackSetName(stackSetName).
				SetOperationId(id))
			if err != nil {
				return err
			}
			ops[i] = out.StackSetOperation
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return ops, nil
}

// WaitForOperation polls the operation until it completes.
// Returns an error if the operation stops or fails, or if ctx is done first.
func (c *CloudFormation) WaitForOperation(ctx context.Context, stackSetName, opID string) error {
	in := new(cfn.DescribeStackSetOperationInput).SetStackSetName(stackSetName).SetOperationId(opID)
	for {
		out, err := c.DescribeStackSetOperation(ctx, in)
		if err != nil {
			return err
		}
		var status cfn.StackSetOperationStatus
		if op := out.StackSetOperation; op != nil {
			status = op.Status
		}
		switch {
		case status.IsSuccess():
			return nil
		case status == cfn.StackSetOperationStatusStopped:
			return fmt.Errorf("operation %s for stack set %s was manually stopped", opID, stackSetName)
		case status.IsFailure():
			return fmt.Errorf("operation %s for stack set %s failed", opID, stackSetName)
		}
		select {
		case <-ctx.Done():
			return fmt.Errorf("wait for operation %s for stack set %s: %w", opID, stackSetName, ctx.Err())
		case <-time.After(operationPollInterval):
		}
	}
}

// ListStackInstances returns the summaries of every stack instance matching the input, following NextToken
// until all pages are read. The returned output never carries a NextToken.
func (c *CloudFormation) ListStackInstances(ctx context.Context, in *cfn.ListStackInstancesInput) (*cfn.ListStackInstancesOutput, error) {
	if in == nil {
		in = new(cfn.ListStackInstancesInput)
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}
	req := toSDKListStackInstancesInput(in)
	var summaries []*cfn.StackInstanceSummary
	for {
		out, err := c.client.ListStackInstancesWithContext(ctx, req)
		if err != nil {
			if isNotFoundStackSet(err) {
				return nil, &ErrStackSetNotFound{name: aws.StringValue(in.StackSetName)}
			}
			return nil, fmt.Errorf("list stack instances for stack set %s: %w", aws.StringValue(in.StackSetName), err)
		}
		summaries = append(summaries, mapSlice(out.Summaries, fromSDKStackInstanceSummary)...)
		if out.NextToken == nil {
			break
		}
		req.NextToken = out.NextToken
	}
	return &cfn.ListStackInstancesOutput{Summaries: summaries}, nil
}
