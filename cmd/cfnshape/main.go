// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package main contains the root command.
package main

import (
	"errors"
	"os"

	"github.com/aws/cfn-shapes/cmd/cfnshape/template"
	"github.com/aws/cfn-shapes/internal/pkg/cli"
	"github.com/aws/cfn-shapes/internal/pkg/term/color"
	"github.com/aws/cfn-shapes/internal/pkg/term/log"
	"github.com/aws/cfn-shapes/internal/pkg/version"
	"github.com/spf13/cobra"
)

const shortDescription = "Inspect, validate and compare AWS CloudFormation API shapes."

type actionRecommender interface {
	RecommendActions() string
}

func init() {
	color.DisableColorBasedOnEnvVar()
	cobra.EnableCommandSorting = false // Maintain the order in which we add commands.
}

func main() {
	cmd := buildRootCmd()
	if err := cmd.Execute(); err != nil {
		var ac actionRecommender
		if errors.As(err, &ac) {
			log.Infoln(ac.RecommendActions())
		}
		log.Errorln(err.Error())
		os.Exit(1)
	}
}

func buildRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cfnshape",
		Short: shortDescription,
		Example: `
  Displays the help menu for the "render" command.
  /code $ cfnshape render --help`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// If we don't set a Run() function the help menu doesn't show up.
			// See https://github.com/spf13/cobra/issues/790
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVar(&log.Verbose, "verbose", false, "Print debug messages.")
	cmd.SetOut(log.OutputWriter)
	cmd.SetErr(log.DiagnosticWriter)

	cmd.Version = version.Version
	cmd.SetVersionTemplate("cfnshape version: {{.Version}}\n")

	// NOTE: Order for each grouping below is significant in that it affects help menu output ordering.
	// "Shapes" command group.
	cmd.AddCommand(cli.BuildListShapesCmd())
	cmd.AddCommand(cli.BuildSchemaCmd())
	cmd.AddCommand(cli.BuildRenderCmd())
	cmd.AddCommand(cli.BuildDiffCmd())

	// "Stacks" command group.
	cmd.AddCommand(cli.BuildDescribeStacksCmd())
	cmd.AddCommand(cli.BuildDescribeChangeSetCmd())
	cmd.AddCommand(cli.BuildContinueRollbackCmd())

	// "Settings" command group.
	cmd.AddCommand(cli.BuildVersionCmd())
	cmd.AddCommand(cli.BuildCompletionCmd(cmd))

	cmd.SetUsageTemplate(template.RootUsage)
	return cmd
}
