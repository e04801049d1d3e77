// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/aws/cfn-shapes/cmd/cfnshape/template"
	"github.com/aws/cfn-shapes/internal/pkg/cli/group"
	"github.com/aws/cfn-shapes/internal/pkg/shape"
	"github.com/aws/cfn-shapes/internal/pkg/term/prompt"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const (
	schemaShapePrompt     = "Which shape would you like to describe?"
	schemaShapeHelpPrompt = "A shape is a request, result or model structure of the CloudFormation API."
)

// Output formats.
const (
	tableFormat = "table"
	yamlFormat  = "yaml"
	jsonFormat  = "json"
)

var schemaFormats = []string{tableFormat, yamlFormat, jsonFormat}

// Table display settings.
const (
	tableMinCellWidth     = 0
	tableTabWidth         = 4
	tableCellPadding      = 2
	tablePaddingChar      = ' '
	maxConstraintsWidth   = 60
	truncatedConstraints  = "..."
	noAdditionalFormatter = 0
)

type schemaVars struct {
	name   string
	format string
}

type schemaOpts struct {
	schemaVars

	prompt prompter
	names  func() []string
	w      io.Writer
}

func newSchemaOpts(vars schemaVars) *schemaOpts {
	return &schemaOpts{
		schemaVars: vars,
		prompt:     prompt.New(),
		names:      shape.Names,
		w:          os.Stdout,
	}
}

// Validate returns an error if the flag values are invalid.
func (o *schemaOpts) Validate() error {
	if !contains(schemaFormats, o.format) {
		return &errInvalidFormat{format: o.format, allowed: schemaFormats}
	}
	if o.name != "" {
		if _, err := shape.New(o.name); err != nil {
			return err
		}
	}
	return nil
}

// Ask prompts for the shape name if it's not provided.
func (o *schemaOpts) Ask() error {
	if o.name != "" {
		return nil
	}
	var opts []prompt.Option
	for _, name := range o.names() {
		opt := prompt.Option{Value: name}
		if v, err := shape.New(name); err == nil {
			if s, err := shape.Describe(v); err == nil {
				opt.Hint = fmt.Sprintf("%d members", len(s.Fields))
			}
		}
		opts = append(opts, opt)
	}
	name, err := o.prompt.SelectOption(schemaShapePrompt, schemaShapeHelpPrompt, opts, prompt.WithFinalMessage("Shape:"))
	if err != nil {
		return fmt.Errorf("select shape: %w", err)
	}
	o.name = name
	return nil
}

// Execute writes the schema of the shape.
func (o *schemaOpts) Execute() error {
	v, err := shape.New(o.name)
	if err != nil {
		return err
	}
	s, err := shape.Describe(v)
	if err != nil {
		return fmt.Errorf("describe shape %s: %w", o.name, err)
	}
	switch o.format {
	case yamlFormat:
		data, err := yaml.Marshal(s)
		if err != nil {
			return fmt.Errorf("marshal schema of %s to yaml: %w", o.name, err)
		}
		_, err = o.w.Write(data)
		return err
	case jsonFormat:
		data, err := json.MarshalIndent(s, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal schema of %s to json: %w", o.name, err)
		}
		fmt.Fprintf(o.w, "%s\n", data)
		return nil
	}
	return writeSchemaTable(o.w, s)
}

func writeSchemaTable(w io.Writer, s *shape.Schema) error {
	tw := tabwriter.NewWriter(w, tableMinCellWidth, tableTabWidth, tableCellPadding, tablePaddingChar, noAdditionalFormatter)
	fmt.Fprintln(tw, "Name\tKind\tRequired\tConstraints")
	for _, f := range s.Fields {
		required := "no"
		if f.Required {
			required = "yes"
		}
		constraints := runewidth.Truncate(fieldConstraints(f), maxConstraintsWidth, truncatedConstraints)
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", f.Name, fieldKind(f), required, constraints)
	}
	return tw.Flush()
}

func fieldKind(f shape.FieldSchema) string {
	switch f.Kind {
	case shape.KindList:
		return "list of " + f.Element
	case shape.KindMap:
		return "map of " + f.Element
	case shape.KindStructure:
		return f.Shape
	}
	return f.Kind
}

func fieldConstraints(f shape.FieldSchema) string {
	var parts []string
	if f.Min != nil {
		parts = append(parts, fmt.Sprintf("min=%d", *f.Min))
	}
	if f.Max != nil {
		parts = append(parts, fmt.Sprintf("max=%d", *f.Max))
	}
	if f.Pattern != "" {
		parts = append(parts, "pattern="+f.Pattern)
	}
	if len(f.Enum) > 0 {
		parts = append(parts, "one of "+strings.Join(f.Enum, "|"))
	}
	return strings.Join(parts, " ")
}

func contains(values []string, v string) bool {
	for _, value := range values {
		if value == v {
			return true
		}
	}
	return false
}

// BuildSchemaCmd builds the command for describing the members of a shape.
func BuildSchemaCmd() *cobra.Command {
	vars := schemaVars{}
	cmd := &cobra.Command{
		Use:   "schema [shape]",
		Short: "Describes the members of a shape and their constraints.",
		Example: `
  Describes the members of the CreateStack request.
  /code $ cfnshape schema CreateStackInput
  Selects a shape and writes its schema as YAML.
  /code $ cfnshape schema --output yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: runCmdE(func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				vars.name = args[0]
			}
			opts := newSchemaOpts(vars)
			if err := opts.Validate(); err != nil {
				return err
			}
			if err := opts.Ask(); err != nil {
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
	cmd.Flags().StringVar(&vars.format, outputFlag, tableFormat, outputFlagDescription)
	cmd.SetUsageTemplate(template.Usage)
	return cmd
}
