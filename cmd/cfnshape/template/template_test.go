// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package template

import (
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

func TestFilterCmdsByGroup(t *testing.T) {
	list := &cobra.Command{Use: "list", Run: func(*cobra.Command, []string) {}, Annotations: map[string]string{"group": "Shapes"}}
	hidden := &cobra.Command{Use: "hidden", Hidden: true, Run: func(*cobra.Command, []string) {}, Annotations: map[string]string{"group": "Shapes"}}
	version := &cobra.Command{Use: "version", Run: func(*cobra.Command, []string) {}, Annotations: map[string]string{"group": "Settings"}}

	got := filterCmdsByGroup([]*cobra.Command{list, hidden, version}, "Shapes")

	require.Equal(t, []*cobra.Command{list}, got)
}

func TestCode(t *testing.T) {
	defer func(og bool) { color.NoColor = og }(color.NoColor)
	color.NoColor = true

	testCases := map[string]struct {
		in     string
		wanted string
	}{
		"removes the marker of code lines": {
			in: `
  Lists every shape.
  /code $ cfnshape list`,
			wanted: `
  Lists every shape.
  $ cfnshape list`,
		},
		"leaves text without markers untouched": {
			in:     "  Prints the version.",
			wanted: "  Prints the version.",
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			require.Equal(t, tc.wanted, code(tc.in))
		})
	}
}

func TestHeaders(t *testing.T) {
	defer func(og bool) { color.NoColor = og }(color.NoColor)
	color.NoColor = true

	require.Equal(t, "EXAMPLES", h1("Examples"))
	require.Equal(t, "Stacks", h2("Stacks"))
	require.Equal(t, 3, inc(2))
	require.Equal(t, []string{"a", "b"}, split("a\nb", "\n"))
	require.Equal(t, []interface{}{"Shapes", "Stacks"}, mkSlice("Shapes", "Stacks"))
}
