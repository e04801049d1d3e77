// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aws/cfn-shapes/internal/pkg/term/color"
	cfn "github.com/aws/cfn-shapes/pkg/cloudformation"
)

var errOperationCancelled = errors.New("operation cancelled")

type errInvalidFormat struct {
	format  string
	allowed []string
}

func (e *errInvalidFormat) Error() string {
	return fmt.Sprintf("output format %s is not supported", e.format)
}

// RecommendActions returns recommended actions to be taken after the error.
// Implements main.actionRecommender interface.
func (e *errInvalidFormat) RecommendActions() string {
	quoted := make([]string, len(e.allowed))
	for i, f := range e.allowed {
		quoted[i] = color.HighlightCode(f)
	}
	return fmt.Sprintf("Use one of %s with %s.", strings.Join(quoted, ", "), color.HighlightCode("--"+outputFlag))
}

type errUnknownProfile struct {
	name  string
	known []string
}

func (e *errUnknownProfile) Error() string {
	return fmt.Sprintf("profile %s is not in the AWS config file", e.name)
}

// RecommendActions returns recommended actions to be taken after the error.
// Implements main.actionRecommender interface.
func (e *errUnknownProfile) RecommendActions() string {
	if len(e.known) == 0 {
		return "There are no named profiles in the AWS config file."
	}
	return fmt.Sprintf("Available profiles are: %s.", strings.Join(e.known, ", "))
}

type errFileNotExist struct {
	path string
}

func (e *errFileNotExist) Error() string {
	return fmt.Sprintf("file %s does not exist", e.path)
}

type errStackNotRollbackable struct {
	name   string
	status cfn.StackStatus
}

func (e *errStackNotRollbackable) Error() string {
	return fmt.Sprintf("stack %s is in state %s and can't continue rolling back", e.name, e.status)
}

// RecommendActions returns recommended actions to be taken after the error.
// Implements main.actionRecommender interface.
func (e *errStackNotRollbackable) RecommendActions() string {
	return fmt.Sprintf("Only stacks in state %s can continue rolling back.", color.HighlightCode(string(cfn.StackStatusUpdateRollbackFailed)))
}

type errInvalidShape struct {
	name      string
	parentErr error
}

func (e *errInvalidShape) Error() string {
	return fmt.Sprintf("%s is invalid: %v", e.name, e.parentErr)
}

func (e *errInvalidShape) Unwrap() error {
	return e.parentErr
}
