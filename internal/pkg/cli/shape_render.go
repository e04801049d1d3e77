// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"
	"io"
	"os"
	"reflect"
	"sort"

	"github.com/aws/cfn-shapes/cmd/cfnshape/template"
	"github.com/aws/cfn-shapes/internal/pkg/cli/group"
	"github.com/aws/cfn-shapes/internal/pkg/shape"
	"github.com/aws/cfn-shapes/internal/pkg/term/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/xlab/treeprint"
)

type renderVars struct {
	name       string
	file       string
	overlays   []string
	validate   bool
	shouldTree bool
}

type renderOpts struct {
	renderVars

	reader documentReader
	w      io.Writer
}

func newRenderOpts(vars renderVars) *renderOpts {
	return &renderOpts{
		renderVars: vars,
		reader:     documentReader{fs: afero.NewOsFs()},
		w:          os.Stdout,
	}
}

// Validate returns an error if the shape is unknown or a document does not exist.
func (o *renderOpts) Validate() error {
	if _, err := shape.New(o.name); err != nil {
		return err
	}
	if o.file == "" {
		return fmt.Errorf("--%s is required", fileFlag)
	}
	for _, path := range append([]string{o.file}, o.overlays...) {
		if err := o.reader.exists(path); err != nil {
			return err
		}
	}
	return nil
}

// Execute decodes the documents into the shape and writes its string representation.
func (o *renderOpts) Execute() error {
	doc, err := o.reader.readMerged(o.file, o.overlays...)
	if err != nil {
		return err
	}
	v, err := decodeShape(o.name, doc)
	if err != nil {
		return err
	}
	if o.shouldTree {
		fmt.Fprint(o.w, shapeTree(o.name, v).String())
	} else {
		fmt.Fprintln(o.w, v)
	}
	if !o.validate {
		return nil
	}
	validator, ok := v.(interface{ Validate() error })
	if !ok {
		return nil
	}
	if err := validator.Validate(); err != nil {
		return &errInvalidShape{name: o.name, parentErr: err}
	}
	log.Successf("%s is valid.\n", o.name)
	return nil
}

// shapeTree returns the non-null members of v as a tree rooted at name.
func shapeTree(name string, v interface{}) treeprint.Tree {
	tree := treeprint.NewWithRoot(name)
	addMembers(tree, v)
	return tree
}

func addMembers(tree treeprint.Tree, v interface{}) {
	for _, m := range shape.Members(v) {
		addValue(tree, m.Name, m.Value)
	}
}

func addValue(tree treeprint.Tree, name string, v interface{}) {
	if shape.IsShape(v) {
		addMembers(tree.AddBranch(name), v)
		return
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice:
		branch := tree.AddBranch(name)
		for i := 0; i < rv.Len(); i++ {
			addValue(branch, fmt.Sprintf("[%d]", i), rv.Index(i).Interface())
		}
	case reflect.Map:
		branch := tree.AddBranch(name)
		keys := rv.MapKeys()
		sort.Slice(keys, func(i, j int) bool {
			return fmt.Sprint(keys[i].Interface()) < fmt.Sprint(keys[j].Interface())
		})
		for _, k := range keys {
			addValue(branch, fmt.Sprint(k.Interface()), rv.MapIndex(k).Interface())
		}
	default:
		tree.AddNode(fmt.Sprintf("%s: %s", name, shape.String(v)))
	}
}

// BuildRenderCmd builds the command for rendering a shape read from documents.
func BuildRenderCmd() *cobra.Command {
	vars := renderVars{}
	cmd := &cobra.Command{
		Use:   "render <shape>",
		Short: "Reads a shape from YAML or JSON documents and prints it.",
		Example: `
  Prints a CreateStack request and checks its constraints.
  /code $ cfnshape render CreateStackInput --file stack.yml --validate
  Overlays production values and prints the result as a tree.
  /code $ cfnshape render CreateStackInput -f stack.yml --overlay prod.yml --tree`,
		Args: cobra.ExactArgs(1),
		RunE: runCmdE(func(cmd *cobra.Command, args []string) error {
			vars.name = args[0]
			opts := newRenderOpts(vars)
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
	cmd.Flags().StringVarP(&vars.file, fileFlag, fileFlagShort, "", fileFlagDescription)
	cmd.Flags().StringSliceVar(&vars.overlays, overlayFlag, nil, overlayFlagDescription)
	cmd.Flags().BoolVar(&vars.validate, validateFlag, false, validateFlagDescription)
	cmd.Flags().BoolVar(&vars.shouldTree, treeFlag, false, treeFlagDescription)
	_ = cmd.MarkFlagRequired(fileFlag)
	cmd.SetUsageTemplate(template.Usage)
	return cmd
}
