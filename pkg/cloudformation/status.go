// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cloudformation

import (
	"strings"
)

const inProgressSuffix = "IN_PROGRESS"

var (
	successStackStatuses = []StackStatus{
		StackStatusCreateComplete,
		StackStatusDeleteComplete,
		StackStatusUpdateComplete,
		StackStatusUpdateCompleteCleanupInProgress,
		StackStatusImportComplete,
	}

	failureStackStatuses = []StackStatus{
		StackStatusCreateFailed,
		StackStatusDeleteFailed,
		StackStatusUpdateFailed,
		StackStatusRollbackInProgress,
		StackStatusRollbackComplete,
		StackStatusRollbackFailed,
		StackStatusUpdateRollbackComplete,
		StackStatusUpdateRollbackCompleteCleanupInProgress,
		StackStatusUpdateRollbackInProgress,
		StackStatusUpdateRollbackFailed,
		StackStatusImportRollbackInProgress,
		StackStatusImportRollbackFailed,
		StackStatusImportRollbackComplete,
	}
)

// InProgress returns true if the stack is currently being mutated.
func (ss StackStatus) InProgress() bool {
	return strings.HasSuffix(string(ss), inProgressSuffix)
}

// UpsertInProgress returns true if the stack is updating or being created.
func (ss StackStatus) UpsertInProgress() bool {
	return ss == StackStatusCreateInProgress || ss == StackStatusUpdateInProgress
}

// RequiresCleanup returns true if the stack was created, but failed and should be deleted.
func (ss StackStatus) RequiresCleanup() bool {
	return ss == StackStatusRollbackComplete || ss == StackStatusRollbackFailed
}

// CanContinueUpdateRollback returns true if a ContinueUpdateRollback call is accepted for the stack.
func (ss StackStatus) CanContinueUpdateRollback() bool {
	return ss == StackStatusUpdateRollbackFailed
}

// IsSuccess returns true if the stack mutated successfully.
func (ss StackStatus) IsSuccess() bool {
	for _, success := range successStackStatuses {
		if ss == success {
			return true
		}
	}
	return false
}

// IsFailure returns true if the stack failed to mutate.
func (ss StackStatus) IsFailure() bool {
	for _, failure := range failureStackStatuses {
		if ss == failure {
			return true
		}
	}
	return false
}

// InProgress returns true if the operation is queued or running.
func (s StackSetOperationStatus) InProgress() bool {
	return s == StackSetOperationStatusQueued || s == StackSetOperationStatusRunning || s == StackSetOperationStatusStopping
}

// IsCompleted returns true if the operation is in a final state.
func (s StackSetOperationStatus) IsCompleted() bool {
	return s.IsSuccess() || s.IsFailure()
}

// IsSuccess returns true if the operation completed successfully.
func (s StackSetOperationStatus) IsSuccess() bool {
	return s == StackSetOperationStatusSucceeded
}

// IsFailure returns true if the operation terminated in failure.
func (s StackSetOperationStatus) IsFailure() bool {
	return s == StackSetOperationStatusStopped || s == StackSetOperationStatusFailed
}

// IsFailure returns true if the change set could not be created or deleted.
func (s ChangeSetStatus) IsFailure() bool {
	return s == ChangeSetStatusFailed || s == ChangeSetStatusDeleteFailed
}

// InProgress returns true if the change set is still being created or deleted.
func (s ChangeSetStatus) InProgress() bool {
	return strings.HasSuffix(string(s), inProgressSuffix) || strings.HasSuffix(string(s), "PENDING")
}

// IsExecutable returns true if the change set can be executed.
func (s ExecutionStatus) IsExecutable() bool {
	return s == ExecutionStatusAvailable
}
