// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cli

// Long flag names.
const (
	// Common flags.
	profileFlag = "profile"
	regionFlag  = "region"
	jsonFlag    = "json"
	yesFlag     = "yes"
	outputFlag  = "output"

	// Command specific flags.
	filterFlag             = "filter"
	fileFlag               = "file"
	overlayFlag            = "overlay"
	validateFlag           = "validate"
	treeFlag               = "tree"
	leftFlag               = "left"
	rightFlag              = "right"
	stackNameFlag          = "stack-name"
	changeSetNameFlag      = "change-set-name"
	roleARNFlag            = "role-arn"
	resourcesToSkipFlag    = "resources-to-skip"
	clientRequestTokenFlag = "client-request-token"
)

// Short flag names.
// A short flag only exists if the flag is mandatory by the command.
const (
	fileFlagShort          = "f"
	stackNameFlagShort     = "s"
	changeSetNameFlagShort = "c"
)

// Descriptions for flags.
const (
	profileFlagDescription = "Name of the AWS profile."
	regionFlagDescription  = "AWS region of the stacks, overrides the profile's region."
	jsonFlagDescription    = "Optional. Output in JSON format."
	yesFlagDescription     = "Skips confirmation prompt."
	outputFlagDescription  = `Output format. One of "table", "yaml" or "json".`

	filterFlagDescription             = `Optional. Only list shapes whose name matches the glob pattern, for example "*Input".`
	fileFlagDescription               = "Path to a YAML or JSON document holding the shape's members."
	overlayFlagDescription            = "Optional. Documents merged on top of --file, in order. Later values win."
	validateFlagDescription           = "Optional. Check the shape against its documented constraints."
	treeFlagDescription               = "Optional. Print the shape as a tree."
	leftFlagDescription               = "Path to the document of the first shape."
	rightFlagDescription              = "Path to the document of the second shape."
	stackNameFlagDescription          = "Name or unique ID of the stack."
	changeSetNameFlagDescription      = "Name or ARN of the change set."
	roleARNFlagDescription            = "Optional. ARN of the IAM role CloudFormation assumes to roll back the stack."
	resourcesToSkipFlagDescription    = "Optional. Logical IDs of the resources to skip during the rollback."
	clientRequestTokenFlagDescription = "Optional. Token that identifies the request, generated when omitted."
	describeStackNameFlagDescription  = "Optional. Name or unique ID of a single stack to describe."
)
