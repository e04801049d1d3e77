// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package color provides utilities to globally enable/disable color
// output of the CLI
package color

import (
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2/core"
	"github.com/fatih/color"
)

const (
	colorEnvVar   = "COLOR"
	noColorEnvVar = "NO_COLOR"
)

var lookupEnv = os.LookupEnv

var (
	cyan               = color.New(color.FgHiCyan)
	whiteBoldUnderline = color.New(color.FgHiWhite, color.Bold, color.Underline)
	magenta            = color.New(color.FgHiMagenta)
	faint              = color.New(color.Faint)
	bold               = color.New(color.Bold)
	green              = color.New(color.FgHiGreen)
	red                = color.New(color.FgHiRed)
	yellow             = color.New(color.FgHiYellow)
)

// DisableColorBasedOnEnvVar determines whether the CLI will produce color
// output based on the environment variables COLOR and NO_COLOR.
// COLOR takes precedence when both are set.
func DisableColorBasedOnEnvVar() {
	value, exists := lookupEnv(colorEnvVar)
	if !exists {
		if _, noColor := lookupEnv(noColorEnvVar); noColor {
			setDisabled(true)
			return
		}
		// if the COLOR environment variable is not set
		// then follow the settings in the color library
		// since it's dynamically set based on the type of terminal
		// and whether stdout is connected to a terminal or not.
		core.DisableColor = color.NoColor
		return
	}

	switch strings.ToLower(value) {
	case "false":
		setDisabled(true)
	case "true":
		setDisabled(false)
	}
}

func setDisabled(disabled bool) {
	core.DisableColor = disabled
	color.NoColor = disabled
}

// HighlightUserInput colors the string to denote it as an input from standard input, and returns it.
func HighlightUserInput(s string) string {
	return cyan.Sprint(s)
}

// HighlightResource colors the string to denote it as a resource name, and returns it.
func HighlightResource(s string) string {
	return whiteBoldUnderline.Sprint(s)
}

// HighlightCode wraps the string with the ` character, colors it to denote it's a code block, and returns it.
func HighlightCode(s string) string {
	return magenta.Sprintf("`%s`", s)
}

// Faint returns a fainted version of the string.
func Faint(s string) string {
	return faint.Sprint(s)
}

// Emphasize returns a bold version of the string.
func Emphasize(s string) string {
	return bold.Sprint(s)
}

// Success colors the string to denote a resource in a healthy state.
func Success(s string) string {
	return green.Sprint(s)
}

// Failure colors the string to denote a resource in an unhealthy state.
func Failure(s string) string {
	return red.Sprint(s)
}

// Pending colors the string to denote a resource that is still being worked on.
func Pending(s string) string {
	return yellow.Sprint(s)
}
