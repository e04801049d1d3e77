// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package version holds variables for generating version information
package version

// Version is this binary's version. Set with linker flags when building cfnshape.
var Version string
