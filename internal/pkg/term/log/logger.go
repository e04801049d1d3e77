// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package log

import (
	"fmt"
	"io"
)

// Logger represents a logging object that writes to an io.Writer lines of outputs.
type Logger struct {
	w       io.Writer
	verbose bool
}

// New creates a new Logger. Debug messages are dropped unless the logger is made verbose.
func New(w io.Writer) *Logger {
	return &Logger{
		w: w,
	}
}

// NewVerbose creates a new Logger that also writes debug messages.
func NewVerbose(w io.Writer) *Logger {
	return &Logger{
		w:       w,
		verbose: true,
	}
}

// Successln writes args prefixed with a "✔ Success!" and a new line.
func (l *Logger) Successln(args ...interface{}) {
	fmt.Fprintln(l.w, successSprintf(successPrefix), fmt.Sprint(args...))
}

// Successf formats according to the specifier, prefixes the message with a "✔ Success!", and writes it.
func (l *Logger) Successf(format string, args ...interface{}) {
	fmt.Fprintf(l.w, "%s %s", successSprintf(successPrefix), fmt.Sprintf(format, args...))
}

// Errorln writes args prefixed with a "✘ Error!" and a new line.
func (l *Logger) Errorln(args ...interface{}) {
	fmt.Fprintln(l.w, errorSprintf(errorPrefix), fmt.Sprint(args...))
}

// Errorf formats according to the specifier, prefixes the message with a "✘ Error!", and writes it.
func (l *Logger) Errorf(format string, args ...interface{}) {
	fmt.Fprintf(l.w, "%s %s", errorSprintf(errorPrefix), fmt.Sprintf(format, args...))
}

// Warningln writes args prefixed with a "Note:" and a new line, in yellow.
func (l *Logger) Warningln(args ...interface{}) {
	fmt.Fprintln(l.w, warningSprintf("%s %s", warningPrefix, fmt.Sprint(args...)))
}

// Warningf formats according to the specifier, prefixes the message with a "Note:", and writes it in yellow.
func (l *Logger) Warningf(format string, args ...interface{}) {
	fmt.Fprint(l.w, warningSprintf("%s %s", warningPrefix, fmt.Sprintf(format, args...)))
}

// Infoln writes args with a new line.
func (l *Logger) Infoln(args ...interface{}) {
	fmt.Fprintln(l.w, fmt.Sprint(args...))
}

// Infof formats according to the specifier and writes the message.
func (l *Logger) Infof(format string, args ...interface{}) {
	fmt.Fprintf(l.w, format, args...)
}

// Debugln writes args in a faint color with a new line.
func (l *Logger) Debugln(args ...interface{}) {
	if !l.verbose {
		return
	}
	fmt.Fprintln(l.w, debugSprintf("%s", fmt.Sprint(args...)))
}

// Debugf formats according to the specifier and writes the message in a faint color.
func (l *Logger) Debugf(format string, args ...interface{}) {
	if !l.verbose {
		return
	}
	fmt.Fprint(l.w, debugSprintf(format, args...))
}
