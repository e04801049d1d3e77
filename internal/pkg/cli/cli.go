// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package cli contains the cfnshape subcommands.
package cli

import (
	"context"
	"os"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	awscfn "github.com/aws/cfn-shapes/internal/pkg/aws/cloudformation"
	"github.com/aws/cfn-shapes/internal/pkg/aws/profile"
	"github.com/aws/cfn-shapes/internal/pkg/aws/sessions"
	"github.com/aws/cfn-shapes/internal/pkg/term/log"
	"github.com/spf13/cobra"
)

// apiTimeout bounds a command's calls to CloudFormation between user prompts.
const apiTimeout = 5 * time.Minute

// runCmdE wraps one of the run error methods, PreRunE, RunE, of a cobra command so that if a user
// types "help" in the arguments the usage string is printed instead of running the command.
func runCmdE(f func(cmd *cobra.Command, args []string) error) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 && args[0] == "help" {
			_ = cmd.Help() // Help always returns nil.
			os.Exit(0)
		}
		return f(cmd, args)
	}
}

// awsVars holds the flags shared by the commands that call CloudFormation.
type awsVars struct {
	profile string
	region  string
}

// validateProfile returns an error if a profile is named but is not in the AWS config file.
// Nothing is checked when the config file can't be read, credentials may come from the environment.
func (v awsVars) validateProfile(names func() ([]string, error)) error {
	if v.profile == "" {
		return nil
	}
	known, err := names()
	if err != nil {
		return nil
	}
	for _, name := range known {
		if name == v.profile {
			return nil
		}
	}
	return &errUnknownProfile{name: v.profile, known: known}
}

func (v awsVars) client() (*awscfn.CloudFormation, error) {
	sess, err := sessions.ImmutableProvider().Session(v.profile, v.region)
	if err != nil {
		return nil, err
	}
	log.Debugf("Calling CloudFormation in %s.\n", aws.StringValue(sess.Config.Region))
	return awscfn.New(sess), nil
}

func profileNames() ([]string, error) {
	conf, err := profile.NewConfig()
	if err != nil {
		return nil, err
	}
	return conf.Names(), nil
}

func registerAWSFlags(cmd *cobra.Command, vars *awsVars) {
	cmd.Flags().StringVar(&vars.profile, profileFlag, "", profileFlagDescription)
	cmd.Flags().StringVar(&vars.region, regionFlag, "", regionFlagDescription)
	_ = cmd.RegisterFlagCompletionFunc(profileFlag, func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		names, err := profileNames()
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	})
}

func newAPIContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), apiTimeout)
}
