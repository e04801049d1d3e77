// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cloudformation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go/aws/awserr"
	sdkcloudformation "github.com/aws/aws-sdk-go/service/cloudformation"
	cfn "github.com/aws/cfn-shapes/pkg/cloudformation"
)

const (
	errCodeValidationError = "ValidationError"
	errMsgDoesNotExist     = "does not exist"
)

// ErrStackNotFound occurs when a CloudFormation stack does not exist.
type ErrStackNotFound struct {
	name string
}

func (e *ErrStackNotFound) Error() string {
	return fmt.Sprintf("stack named %s cannot be found", e.name)
}

// ErrChangeSetNotFound occurs when a change set does not exist.
type ErrChangeSetNotFound struct {
	name      string
	stackName string
}

func (e *ErrChangeSetNotFound) Error() string {
	if e.stackName == "" {
		return fmt.Sprintf("change set %s cannot be found", e.name)
	}
	return fmt.Sprintf("change set %s for stack %s cannot be found", e.name, e.stackName)
}

// ErrChangeSetNotExecutable occurs when a change set cannot be executed.
type ErrChangeSetNotExecutable struct {
	Name      string
	StackName string
	Status    cfn.ExecutionStatus
	Reason    string
}

func (e *ErrChangeSetNotExecutable) Error() string {
	return fmt.Sprintf("execute change set %s for stack %s because status is %s with reason %s",
		e.Name, e.StackName, e.Status, e.Reason)
}

// ErrStackSetNotFound occurs when a stack set with the given name does not exist.
type ErrStackSetNotFound struct {
	name string
}

func (e *ErrStackSetNotFound) Error() string {
	return fmt.Sprintf("stack set %q not found", e.name)
}

// ErrStackSetOperationNotFound occurs when an operation does not exist for a stack set.
type ErrStackSetOperationNotFound struct {
	stackSetName string
	operationID  string
}

func (e *ErrStackSetOperationNotFound) Error() string {
	return fmt.Sprintf("operation %s for stack set %q not found", e.operationID, e.stackSetName)
}

// ErrStackSetOutOfDate occurs when a stack set is read and then updated, but between reading it
// and actually updating it, someone else either started or completed an update.
type ErrStackSetOutOfDate struct {
	name      string
	parentErr error
}

func (e *ErrStackSetOutOfDate) Error() string {
	return fmt.Sprintf("stack set %q update was out of date (feel free to try again): %v", e.name, e.parentErr)
}

// Unwrap returns the error returned by the service.
func (e *ErrStackSetOutOfDate) Unwrap() error {
	return e.parentErr
}

// ErrTypeNotFound occurs when an extension is not registered.
type ErrTypeNotFound struct {
	name string
}

func (e *ErrTypeNotFound) Error() string {
	return fmt.Sprintf("type %s is not registered", e.name)
}

func awsErrCode(err error) (string, string, bool) {
	var aerr awserr.Error
	if !errors.As(err, &aerr) {
		return "", "", false
	}
	return aerr.Code(), aerr.Message(), true
}

// stackDoesNotExist returns true if the underlying error is a stack doesn't exist.
func stackDoesNotExist(err error) bool {
	code, msg, ok := awsErrCode(err)
	if !ok {
		return false
	}
	// A ValidationError occurs if we describe a stack which doesn't exist.
	return code == errCodeValidationError && strings.Contains(msg, errMsgDoesNotExist)
}

func changeSetDoesNotExist(err error) bool {
	code, _, ok := awsErrCode(err)
	return ok && code == sdkcloudformation.ErrCodeChangeSetNotFoundException
}

// isNotFoundStackSet returns true if the stack set does not exist.
func isNotFoundStackSet(err error) bool {
	code, _, ok := awsErrCode(err)
	return ok && code == sdkcloudformation.ErrCodeStackSetNotFoundException
}

func isNotFoundOperation(err error) bool {
	code, _, ok := awsErrCode(err)
	return ok && code == sdkcloudformation.ErrCodeOperationNotFoundException
}

// isOutdatedStackSet returns true if the underlying error is because the operation was already performed.
func isOutdatedStackSet(err error) bool {
	code, _, ok := awsErrCode(err)
	if !ok {
		return false
	}
	switch code {
	case sdkcloudformation.ErrCodeOperationIdAlreadyExistsException,
		sdkcloudformation.ErrCodeOperationInProgressException,
		sdkcloudformation.ErrCodeStaleRequestException:
		return true
	}
	return false
}

func isNotFoundType(err error) bool {
	code, _, ok := awsErrCode(err)
	return ok && code == sdkcloudformation.ErrCodeTypeNotFoundException
}
