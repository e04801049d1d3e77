// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package cloudformation provides the request, result and model shapes of the
// AWS CloudFormation API.
//
// Every member of a shape is optional and a nil member is unset. Members are set
// either directly or with chained setters:
//
//	in := new(cloudformation.ContinueUpdateRollbackInput).
//		SetStackName("my-stack").
//		AppendResourcesToSkip("ResA", "ResB")
//
// Shapes are plain values without synchronization: build them on one goroutine and
// share them read-only afterwards.
package cloudformation

// API operation names.
const (
	opContinueUpdateRollback    = "ContinueUpdateRollback"
	opCreateStack               = "CreateStack"
	opUpdateStack               = "UpdateStack"
	opDescribeStacks            = "DescribeStacks"
	opCreateChangeSet           = "CreateChangeSet"
	opDescribeChangeSet         = "DescribeChangeSet"
	opExecuteChangeSet          = "ExecuteChangeSet"
	opCreateStackSet            = "CreateStackSet"
	opUpdateStackSet            = "UpdateStackSet"
	opUpdateStackInstances      = "UpdateStackInstances"
	opDescribeStackSetOperation = "DescribeStackSetOperation"
	opListStackInstances        = "ListStackInstances"
	opDescribeType              = "DescribeType"
)

// Input is a request shape of an API operation.
type Input interface {
	// Validate returns an error if a documented constraint of the input is not met.
	Validate() error
	// OperationName returns the name of the API operation the input is sent to.
	OperationName() string
	String() string
}

var (
	_ Input = (*ContinueUpdateRollbackInput)(nil)
	_ Input = (*CreateStackInput)(nil)
	_ Input = (*UpdateStackInput)(nil)
	_ Input = (*DescribeStacksInput)(nil)
	_ Input = (*CreateChangeSetInput)(nil)
	_ Input = (*DescribeChangeSetInput)(nil)
	_ Input = (*ExecuteChangeSetInput)(nil)
	_ Input = (*CreateStackSetInput)(nil)
	_ Input = (*UpdateStackSetInput)(nil)
	_ Input = (*UpdateStackInstancesInput)(nil)
	_ Input = (*DescribeStackSetOperationInput)(nil)
	_ Input = (*ListStackInstancesInput)(nil)
	_ Input = (*DescribeTypeInput)(nil)
)
