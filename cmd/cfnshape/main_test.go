// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"testing"

	"github.com/aws/cfn-shapes/internal/pkg/cli/group"
	"github.com/stretchr/testify/require"
)

func TestBuildRootCmd(t *testing.T) {
	cmd := buildRootCmd()

	groups := make(map[string][]string)
	for _, sub := range cmd.Commands() {
		groups[sub.Annotations["group"]] = append(groups[sub.Annotations["group"]], sub.Name())
	}
	require.Equal(t, map[string][]string{
		group.Shapes:   {"list", "schema", "render", "diff"},
		group.Stacks:   {"describe-stacks", "describe-change-set", "continue-update-rollback"},
		group.Settings: {"version", "completion"},
	}, groups)
	require.True(t, cmd.SilenceErrors)
	require.True(t, cmd.SilenceUsage)
}
