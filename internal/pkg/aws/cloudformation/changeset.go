// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cloudformation

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	sdkcloudformation "github.com/aws/aws-sdk-go/service/cloudformation"
	cfn "github.com/aws/cfn-shapes/pkg/cloudformation"
	"github.com/google/uuid"
)

const (
	// The change set name must match the regex [a-zA-Z][-a-zA-Z0-9]*. The generated UUID can start with a number,
	// by prefixing the uuid with a word we guarantee that we start with a letter.
	fmtChangeSetName = "cfnshape-%s"

	// Status reasons that can occur if the change set execution status is "FAILED".
	noChangesReason = "NO_CHANGES_REASON"
	noUpdatesReason = "NO_UPDATES_REASON"
)

// CreateChangeSet creates a change set for a stack.
// A name is generated when the input does not carry one, and the returned output's Id identifies the change set.
func (c *CloudFormation) CreateChangeSet(ctx context.Context, in *cfn.CreateChangeSetInput) (*cfn.CreateChangeSetOutput, error) {
	if in == nil {
		in = new(cfn.CreateChangeSetInput)
	}
	req := toSDKCreateChangeSetInput(in)
	if req.ChangeSetName == nil {
		id, err := uuid.NewRandom()
		if err != nil {
			return nil, fmt.Errorf("generate random id for change set: %w", err)
		}
		req.ChangeSetName = aws.String(fmt.Sprintf(fmtChangeSetName, id.String()))
	}
	// Validation sees the generated name; the caller's input is left untouched.
	withName := *in
	withName.ChangeSetName = req.ChangeSetName
	if err := withName.Validate(); err != nil {
		return nil, err
	}
	if req.ClientToken == nil {
		token, err := newToken()
		if err != nil {
			return nil, err
		}
		req.ClientToken = token
	}
	out, err := c.client.CreateChangeSetWithContext(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("create change set %s for stack %s: %w",
			aws.StringValue(req.ChangeSetName), aws.StringValue(in.StackName), err)
	}
	return &cfn.CreateChangeSetOutput{Id: out.Id, StackId: out.StackId}, nil
}

// DescribeChangeSet gathers all the changes of a change set.
// Pages are merged into a single output, which never carries a NextToken.
func (c *CloudFormation) DescribeChangeSet(ctx context.Context, in *cfn.DescribeChangeSetInput) (*cfn.DescribeChangeSetOutput, error) {
	if in == nil {
		in = new(cfn.DescribeChangeSetInput)
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}
	var descr *cfn.DescribeChangeSetOutput
	nextToken := in.NextToken
	for {
		out, err := c.client.DescribeChangeSetWithContext(ctx, &sdkcloudformation.DescribeChangeSetInput{
			ChangeSetName: in.ChangeSetName,
			StackName:     in.StackName,
			NextToken:     nextToken,
		})
		if err != nil {
			if changeSetDoesNotExist(err) {
				return nil, &ErrChangeSetNotFound{
					name:      aws.StringValue(in.ChangeSetName),
					stackName: aws.StringValue(in.StackName),
				}
			}
			return nil, fmt.Errorf("describe change set %s: %w", aws.StringValue(in.ChangeSetName), err)
		}
		page := fromSDKDescribeChangeSetOutput(out)
		if descr == nil {
			descr = page
		} else {
			descr.Changes = append(descr.Changes, page.Changes...)
		}
		nextToken = out.NextToken
		if nextToken == nil { // no more results left
			break
		}
	}
	descr.NextToken = nil
	return descr, nil
}

// ExecuteChangeSet executes a created change set.
// If the change set holds no modifications, the call is ignored.
// If the change set is not available for another reason, returns ErrChangeSetNotExecutable.
func (c *CloudFormation) ExecuteChangeSet(ctx context.Context, in *cfn.ExecuteChangeSetInput) error {
	if in == nil {
		in = new(cfn.ExecuteChangeSetInput)
	}
	if err := in.Validate(); err != nil {
		return err
	}
	descrIn := new(cfn.DescribeChangeSetInput).SetChangeSetName(aws.StringValue(in.ChangeSetName))
	if in.StackName != nil {
		descrIn.SetStackName(aws.StringValue(in.StackName))
	}
	descr, err := c.DescribeChangeSet(ctx, descrIn)
	if err != nil {
		return err
	}
	if !descr.ExecutionStatus.IsExecutable() {
		// Ignore execute request if the change set does not contain any modifications.
		switch aws.StringValue(descr.StatusReason) {
		case noChangesReason, noUpdatesReason:
			return nil
		}
		return &ErrChangeSetNotExecutable{
			Name:      aws.StringValue(in.ChangeSetName),
			StackName: aws.StringValue(in.StackName),
			Status:    descr.ExecutionStatus,
			Reason:    aws.StringValue(descr.StatusReason),
		}
	}
	req := &sdkcloudformation.ExecuteChangeSetInput{
		ChangeSetName:      in.ChangeSetName,
		StackName:          in.StackName,
		ClientRequestToken: in.ClientRequestToken,
		DisableRollback:    in.DisableRollback,
	}
	if req.ClientRequestToken == nil {
		token, err := newToken()
		if err != nil {
			return err
		}
		req.ClientRequestToken = token
	}
	if _, err := c.client.ExecuteChangeSetWithContext(ctx, req); err != nil {
		return fmt.Errorf("execute change set %s: %w", aws.StringValue(in.ChangeSetName), err)
	}
	return nil
}

// WaitForChangeSetCreate blocks until the change set is created or until the max attempt window expires.
func (c *CloudFormation) WaitForChangeSetCreate(ctx context.Context, changeSetName, stackName string) error {
	err := c.client.WaitUntilChangeSetCreateCompleteWithContext(ctx, &sdkcloudformation.DescribeChangeSetInput{
		ChangeSetName: aws.String(changeSetName),
		StackName:     aws.String(stackName),
	}, waiters...)
	if err != nil {
		return fmt.Errorf("wait for creation of change set %s for stack %s: %w", changeSetName, stackName, err)
	}
	return nil
}
