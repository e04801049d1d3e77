// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package spinner shows progress while waiting on CloudFormation.
package spinner

import (
	"fmt"
	"io"
	"os"
	"time"

	spin "github.com/briandowns/spinner"
	"github.com/mattn/go-isatty"
)

var frames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

const frameDelay = 125 * time.Millisecond

type animation interface {
	Start()
	Stop()
}

// Spinner animates a label on a terminal.
// When the writer is not a terminal only the final label of each operation is written.
type Spinner struct {
	anim animation
	w    io.Writer
}

// New returns a Spinner that writes to stderr.
func New() *Spinner {
	return NewWithWriter(os.Stderr)
}

// NewWithWriter returns a Spinner that writes to w.
func NewWithWriter(w io.Writer) *Spinner {
	if f, ok := w.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		return newAnimated(w)
	}
	return &Spinner{w: w}
}

func newAnimated(w io.Writer) *Spinner {
	s := spin.New(frames, frameDelay, spin.WithHiddenCursor(true), spin.WithWriter(w))
	return &Spinner{anim: s, w: w}
}

// Start spins next to label.
func (s *Spinner) Start(label string) {
	if s.anim == nil {
		return
	}
	s.update(func(sp *spin.Spinner) {
		sp.Suffix = " " + label
	})
	s.anim.Start()
}

// Stop replaces the spinner with label.
func (s *Spinner) Stop(label string) {
	if s.anim == nil {
		fmt.Fprintln(s.w, label)
		return
	}
	s.update(func(sp *spin.Spinner) {
		sp.FinalMSG = label + "\n"
	})
	s.anim.Stop()
}

// update changes the labels while the animation goroutine may be reading them.
func (s *Spinner) update(fn func(*spin.Spinner)) {
	sp, ok := s.anim.(*spin.Spinner)
	if !ok {
		return
	}
	sp.Lock()
	defer sp.Unlock()
	fn(sp)
}
