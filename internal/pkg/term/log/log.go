// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package log is a wrapper around the fmt package to print messages to the terminal.
package log

import (
	"github.com/fatih/color"
)

// Colored string formatting functions.
var (
	successSprintf = color.HiGreenString
	errorSprintf   = color.HiRedString
	warningSprintf = color.YellowString
	debugSprintf   = color.New(color.Faint).Sprintf
)

// Wrapper writers around standard error and standard output that work on windows.
var (
	DiagnosticWriter = color.Error
	OutputWriter     = color.Output
)

// Verbose turns on the Debug family of functions of the package-level logger.
var Verbose bool

const warningPrefix = "Note:"

func diagnostic() *Logger {
	return &Logger{w: DiagnosticWriter, verbose: Verbose}
}

// Successln prefixes the message with a green "✔ Success!", and writes to standard error with a new line.
func Successln(args ...interface{}) {
	diagnostic().Successln(args...)
}

// Successf formats according to the specifier, prefixes the message with a green "✔ Success!", and writes to standard error.
func Successf(format string, args ...interface{}) {
	diagnostic().Successf(format, args...)
}

// Errorln prefixes the message with a red "✘ Error!", and writes to standard error with a new line.
func Errorln(args ...interface{}) {
	diagnostic().Errorln(args...)
}

// Errorf formats according to the specifier, prefixes the message with a red "✘ Error!", and writes to standard error.
func Errorf(format string, args ...interface{}) {
	diagnostic().Errorf(format, args...)
}

// Warningln prefixes the message with a "Note:", colors the *entire* message in yellow, writes to standard error with a new line.
func Warningln(args ...interface{}) {
	diagnostic().Warningln(args...)
}

// Warningf formats according to the specifier, prefixes the message with a "Note:", colors the *entire* message in yellow, and writes to standard error.
func Warningf(format string, args ...interface{}) {
	diagnostic().Warningf(format, args...)
}

// Infoln writes the message to standard error with a new line.
func Infoln(args ...interface{}) {
	diagnostic().Infoln(args...)
}

// Infof formats according to the specifier, and writes to standard error.
func Infof(format string, args ...interface{}) {
	diagnostic().Infof(format, args...)
}

// Debugln colors the message to make it faint, and writes to standard error with a new line if Verbose is set.
func Debugln(args ...interface{}) {
	diagnostic().Debugln(args...)
}

// Debugf formats according to the specifier, colors the message to make it faint, and writes to standard error if Verbose is set.
func Debugf(format string, args ...interface{}) {
	diagnostic().Debugf(format, args...)
}
