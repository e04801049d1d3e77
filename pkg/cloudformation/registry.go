// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cloudformation

import (
	"github.com/aws/cfn-shapes/internal/pkg/shape"
)

func init() {
	for name, factory := range map[string]shape.Factory{
		// Stacks.
		"Parameter":             func() interface{} { return &Parameter{} },
		"Tag":                   func() interface{} { return &Tag{} },
		"Output":                func() interface{} { return &Output{} },
		"RollbackTrigger":       func() interface{} { return &RollbackTrigger{} },
		"RollbackConfiguration": func() interface{} { return &RollbackConfiguration{} },
		"StackDriftInformation": func() interface{} { return &StackDriftInformation{} },
		"Stack":                 func() interface{} { return &Stack{} },

		"ContinueUpdateRollbackInput":  func() interface{} { return &ContinueUpdateRollbackInput{} },
		"ContinueUpdateRollbackOutput": func() interface{} { return &ContinueUpdateRollbackOutput{} },
		"CreateStackInput":             func() interface{} { return &CreateStackInput{} },
		"CreateStackOutput":            func() interface{} { return &CreateStackOutput{} },
		"UpdateStackInput":             func() interface{} { return &UpdateStackInput{} },
		"UpdateStackOutput":            func() interface{} { return &UpdateStackOutput{} },
		"DescribeStacksInput":          func() interface{} { return &DescribeStacksInput{} },
		"DescribeStacksOutput":         func() interface{} { return &DescribeStacksOutput{} },

		// Change sets.
		"ResourceTargetDefinition": func() interface{} { return &ResourceTargetDefinition{} },
		"ResourceChangeDetail":     func() interface{} { return &ResourceChangeDetail{} },
		"ResourceChange":           func() interface{} { return &ResourceChange{} },
		"Change":                   func() interface{} { return &Change{} },
		"ResourceToImport":         func() interface{} { return &ResourceToImport{} },

		"CreateChangeSetInput":    func() interface{} { return &CreateChangeSetInput{} },
		"CreateChangeSetOutput":   func() interface{} { return &CreateChangeSetOutput{} },
		"DescribeChangeSetInput":  func() interface{} { return &DescribeChangeSetInput{} },
		"DescribeChangeSetOutput": func() interface{} { return &DescribeChangeSetOutput{} },
		"ExecuteChangeSetInput":   func() interface{} { return &ExecuteChangeSetInput{} },
		"ExecuteChangeSetOutput":  func() interface{} { return &ExecuteChangeSetOutput{} },

		// Stack sets.
		"DeploymentTargets":                func() interface{} { return &DeploymentTargets{} },
		"AutoDeployment":                   func() interface{} { return &AutoDeployment{} },
		"StackSetOperationPreferences":     func() interface{} { return &StackSetOperationPreferences{} },
		"StackSetDriftDetectionDetails":    func() interface{} { return &StackSetDriftDetectionDetails{} },
		"StackSet":                         func() interface{} { return &StackSet{} },
		"StackSetOperation":                func() interface{} { return &StackSetOperation{} },
		"StackInstanceComprehensiveStatus": func() interface{} { return &StackInstanceComprehensiveStatus{} },
		"StackInstanceSummary":             func() interface{} { return &StackInstanceSummary{} },
		"StackInstanceFilter":              func() interface{} { return &StackInstanceFilter{} },

		"CreateStackSetInput":             func() interface{} { return &CreateStackSetInput{} },
		"CreateStackSetOutput":            func() interface{} { return &CreateStackSetOutput{} },
		"UpdateStackSetInput":             func() interface{} { return &UpdateStackSetInput{} },
		"UpdateStackSetOutput":            func() interface{} { return &UpdateStackSetOutput{} },
		"UpdateStackInstancesInput":       func() interface{} { return &UpdateStackInstancesInput{} },
		"UpdateStackInstancesOutput":      func() interface{} { return &UpdateStackInstancesOutput{} },
		"DescribeStackSetOperationInput":  func() interface{} { return &DescribeStackSetOperationInput{} },
		"DescribeStackSetOperationOutput": func() interface{} { return &DescribeStackSetOperationOutput{} },
		"ListStackInstancesInput":         func() interface{} { return &ListStackInstancesInput{} },
		"ListStackInstancesOutput":        func() interface{} { return &ListStackInstancesOutput{} },

		// Registry types.
		"LoggingConfig":      func() interface{} { return &LoggingConfig{} },
		"DescribeTypeInput":  func() interface{} { return &DescribeTypeInput{} },
		"DescribeTypeOutput": func() interface{} { return &DescribeTypeOutput{} },
	} {
		shape.Register(name, factory)
	}
}

// ShapeNames returns the sorted names of every shape of the package.
func ShapeNames() []string {
	return shape.Names()
}

// NewShape returns a new zero value of the named shape, as a pointer.
func NewShape(name string) (interface{}, error) {
	return shape.New(name)
}
