// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cloudformation

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStackStatus(t *testing.T) {
	testCases := map[StackStatus]struct {
		inProgress       bool
		upsertInProgress bool
		requiresCleanup  bool
		isSuccess        bool
		isFailure        bool
	}{
		StackStatusCreateInProgress: {
			inProgress:       true,
			upsertInProgress: true,
		},
		StackStatusUpdateInProgress: {
			inProgress:       true,
			upsertInProgress: true,
		},
		StackStatusReviewInProgress: {
			inProgress: true,
		},
		StackStatusCreateComplete: {
			isSuccess: true,
		},
		StackStatusUpdateCompleteCleanupInProgress: {
			inProgress: true,
			isSuccess:  true,
		},
		StackStatusRollbackComplete: {
			requiresCleanup: true,
			isFailure:       true,
		},
		StackStatusRollbackFailed: {
			requiresCleanup: true,
			isFailure:       true,
		},
		StackStatusUpdateRollbackFailed: {
			isFailure: true,
		},
		StackStatusImportRollbackInProgress: {
			inProgress: true,
			isFailure:  true,
		},
		StackStatus("SOMETHING_NEW"): {},
	}

	for status, wanted := range testCases {
		t.Run(string(status), func(t *testing.T) {
			require.Equal(t, wanted.inProgress, status.InProgress())
			require.Equal(t, wanted.upsertInProgress, status.UpsertInProgress())
			require.Equal(t, wanted.requiresCleanup, status.RequiresCleanup())
			require.Equal(t, wanted.isSuccess, status.IsSuccess())
			require.Equal(t, wanted.isFailure, status.IsFailure())
		})
	}
}

func TestStackStatus_CanContinueUpdateRollback(t *testing.T) {
	require.True(t, StackStatusUpdateRollbackFailed.CanContinueUpdateRollback())
	require.False(t, StackStatusUpdateRollbackComplete.CanContinueUpdateRollback())
}

func TestStackSetOperationStatus(t *testing.T) {
	testCases := map[StackSetOperationStatus]struct {
		inProgress  bool
		isCompleted bool
		isSuccess   bool
		isFailure   bool
	}{
		StackSetOperationStatusQueued: {
			inProgress: true,
		},
		StackSetOperationStatusRunning: {
			inProgress: true,
		},
		StackSetOperationStatusStopping: {
			inProgress: true,
		},
		StackSetOperationStatusSucceeded: {
			isCompleted: true,
			isSuccess:   true,
		},
		StackSetOperationStatusFailed: {
			isCompleted: true,
			isFailure:   true,
		},
		StackSetOperationStatusStopped: {
			isCompleted: true,
			isFailure:   true,
		},
	}

	for status, wanted := range testCases {
		t.Run(string(status), func(t *testing.T) {
			require.Equal(t, wanted.inProgress, status.InProgress())
			require.Equal(t, wanted.isCompleted, status.IsCompleted())
			require.Equal(t, wanted.isSuccess, status.IsSuccess())
			require.Equal(t, wanted.isFailure, status.IsFailure())
		})
	}
}

func TestChangeSetStatus(t *testing.T) {
	require.True(t, ChangeSetStatusFailed.IsFailure())
	require.True(t, ChangeSetStatusDeleteFailed.IsFailure())
	require.False(t, ChangeSetStatusCreateComplete.IsFailure())

	require.True(t, ChangeSetStatusCreatePending.InProgress())
	require.True(t, ChangeSetStatusCreateInProgress.InProgress())
	require.False(t, ChangeSetStatusCreateComplete.InProgress())
}

func TestExecutionStatus(t *testing.T) {
	require.True(t, ExecutionStatusAvailable.IsExecutable())
	require.False(t, ExecutionStatusUnavailable.IsExecutable())
	require.False(t, ExecutionStatusObsolete.IsExecutable())
}

func TestEnums(t *testing.T) {
	t.Run("known values", func(t *testing.T) {
		require.Equal(t, []ExecutionStatus{
			"UNAVAILABLE", "AVAILABLE", "EXECUTE_IN_PROGRESS", "EXECUTE_COMPLETE", "EXECUTE_FAILED", "OBSOLETE",
		}, ExecutionStatus("").Values())
		require.True(t, ExecutionStatus("AVAILABLE").IsKnown())
		require.True(t, CapabilityNamedIAM.IsKnown())
	})
	t.Run("unknown values pass through", func(t *testing.T) {
		status := StackSetStatus("ARCHIVED")

		require.False(t, status.IsKnown())
		require.Equal(t, "ARCHIVED", string(status))
		require.Equal(t, "{Status: ARCHIVED}", new(StackSet).SetStatus(status).String())
	})
	t.Run("empty is unset", func(t *testing.T) {
		require.False(t, Visibility("").IsKnown())
		require.Equal(t, "{}", new(DescribeTypeOutput).SetVisibility("").String())
	})
}
