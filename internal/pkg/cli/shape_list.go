// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aws/cfn-shapes/cmd/cfnshape/template"
	"github.com/aws/cfn-shapes/internal/pkg/cli/group"
	"github.com/aws/cfn-shapes/internal/pkg/shape"
	"github.com/gobwas/glob"
	"github.com/spf13/cobra"
)

type listShapesVars struct {
	filter           string
	shouldOutputJSON bool
}

type listShapesOpts struct {
	listShapesVars

	names   func() []string
	matcher glob.Glob
	w       io.Writer
}

func newListShapesOpts(vars listShapesVars) *listShapesOpts {
	return &listShapesOpts{
		listShapesVars: vars,
		names:          shape.Names,
		w:              os.Stdout,
	}
}

// Validate returns an error if the filter is not a valid glob pattern.
func (o *listShapesOpts) Validate() error {
	if o.filter == "" {
		return nil
	}
	g, err := glob.Compile(o.filter)
	if err != nil {
		return fmt.Errorf("compile filter %s: %w", o.filter, err)
	}
	o.matcher = g
	return nil
}

// Execute writes the names of the registered shapes that match the filter.
func (o *listShapesOpts) Execute() error {
	var names []string
	for _, name := range o.names() {
		if o.matcher != nil && !o.matcher.Match(name) {
			continue
		}
		names = append(names, name)
	}
	if o.shouldOutputJSON {
		data, err := o.jsonOutput(names)
		if err != nil {
			return err
		}
		fmt.Fprint(o.w, data)
		return nil
	}
	fmt.Fprint(o.w, o.humanOutput(names))
	return nil
}

func (o *listShapesOpts) humanOutput(names []string) string {
	b := &strings.Builder{}
	for _, name := range names {
		fmt.Fprintln(b, name)
	}
	return b.String()
}

func (o *listShapesOpts) jsonOutput(names []string) (string, error) {
	type serializedShapes struct {
		Shapes []string `json:"shapes"`
	}
	if names == nil {
		names = []string{}
	}
	b, err := json.Marshal(serializedShapes{Shapes: names})
	if err != nil {
		return "", fmt.Errorf("marshal shapes: %w", err)
	}
	return fmt.Sprintf("%s\n", b), nil
}

// BuildListShapesCmd builds the command for listing the registered shapes.
func BuildListShapesCmd() *cobra.Command {
	vars := listShapesVars{}
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Lists the CloudFormation shapes.",
		Example: `
  Lists every request shape.
  /code $ cfnshape list --filter "*Input"`,
		RunE: runCmdE(func(cmd *cobra.Command, args []string) error {
			opts := newListShapesOpts(vars)
			if err := opts.Validate(); err != nil {
				return err
			}
			return opts.Execute()
		}),
		Annotations: map[string]string{
			"group": group.Shapes,
		},
	}
	cmd.Flags().StringVar(&vars.filter, filterFlag, "", filterFlagDescription)
	cmd.Flags().BoolVar(&vars.shouldOutputJSON, jsonFlag, false, jsonFlagDescription)
	cmd.SetUsageTemplate(template.Usage)
	return cmd
}
