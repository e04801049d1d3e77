// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/aws/cfn-shapes/cmd/cfnshape/template"
	"github.com/aws/cfn-shapes/internal/pkg/cli/group"
	"github.com/aws/cfn-shapes/internal/pkg/shape"
	"github.com/aws/cfn-shapes/internal/pkg/term/color"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

type diffVars struct {
	name  string
	left  string
	right string
}

type diffOpts struct {
	diffVars

	reader documentReader
	w      io.Writer
}

func newDiffOpts(vars diffVars) *diffOpts {
	return &diffOpts{
		diffVars: vars,
		reader:   documentReader{fs: afero.NewOsFs()},
		w:        os.Stdout,
	}
}

// Validate returns an error if the shape is unknown or a document does not exist.
func (o *diffOpts) Validate() error {
	if _, err := shape.New(o.name); err != nil {
		return err
	}
	if o.left == "" {
		return fmt.Errorf("--%s is required", leftFlag)
	}
	if o.right == "" {
		return fmt.Errorf("--%s is required", rightFlag)
	}
	if err := o.reader.exists(o.left); err != nil {
		return err
	}
	return o.reader.exists(o.right)
}

// Execute compares the two shapes and writes their hash codes and differing members.
func (o *diffOpts) Execute() error {
	left, err := o.readShape(o.left)
	if err != nil {
		return err
	}
	right, err := o.readShape(o.right)
	if err != nil {
		return err
	}
	fmt.Fprintf(o.w, "Hash: %d %d\n", shape.Hash(left), shape.Hash(right))
	if shape.Equal(left, right) {
		fmt.Fprintf(o.w, "%s The shapes are equal.\n", color.SuccessMarker)
		return nil
	}
	diffs := shape.Diff(left, right)
	fmt.Fprintf(o.w, "%s The shapes differ in %d members:\n", color.ErrorMarker, len(diffs))
	for _, d := range diffs {
		fmt.Fprintf(o.w, "  %s\n", d)
	}
	return nil
}

func (o *diffOpts) readShape(path string) (interface{}, error) {
	doc, err := o.reader.read(path)
	if err != nil {
		return nil, err
	}
	return decodeShape(o.name, doc)
}

// BuildDiffCmd builds the command for comparing two shapes.
func BuildDiffCmd() *cobra.Command {
	vars := diffVars{}
	cmd := &cobra.Command{
		Use:   "diff <shape>",
		Short: "Compares two shapes read from YAML or JSON documents.",
		Example: `
  Compares the CreateStack requests of two environments.
  /code $ cfnshape diff CreateStackInput --left test.yml --right prod.yml`,
		Args: cobra.ExactArgs(1),
		RunE: runCmdE(func(cmd *cobra.Command, args []string) error {
			vars.name = args[0]
			opts := newDiffOpts(vars)
			if err := opts.Validate(); err != nil {
				return err
			}
			return opts.Execute()
		}),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return shape.Names(), cobra.ShellCompDirectiveNoFileComp
		},
		Annotations: map[string]string{
			"group": group.Shapes,
		},
	}
	cmd.Flags().StringVar(&vars.left, leftFlag, "", leftFlagDescription)
	cmd.Flags().StringVar(&vars.right, rightFlag, "", rightFlagDescription)
	_ = cmd.MarkFlagRequired(leftFlag)
	_ = cmd.MarkFlagRequired(rightFlag)
	cmd.SetUsageTemplate(template.Usage)
	return cmd
}
