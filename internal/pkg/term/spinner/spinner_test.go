// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package spinner

import (
	"strings"
	"testing"
	"time"

	"github.com/aws/cfn-shapes/internal/pkg/term/spinner/mocks"
	spin "github.com/briandowns/spinner"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

func TestNewWithWriter(t *testing.T) {
	t.Run("does not animate when the writer is not a terminal", func(t *testing.T) {
		b := new(strings.Builder)

		s := NewWithWriter(b)

		require.Nil(t, s.anim)
		s.Start("Describing stacks.")
		s.Stop("✔ Described 2 stacks.")
		require.Equal(t, "✔ Described 2 stacks.\n", b.String())
	})
	t.Run("animates with the braille frames", func(t *testing.T) {
		s := newAnimated(new(strings.Builder))

		v, ok := s.anim.(*spin.Spinner)
		require.True(t, ok)
		require.Equal(t, frameDelay, v.Delay)
		require.Equal(t, 125*time.Millisecond, v.Delay)
	})
}

func TestSpinner_Update(t *testing.T) {
	s := newAnimated(new(strings.Builder))
	v := s.anim.(*spin.Spinner)

	s.update(func(sp *spin.Spinner) {
		sp.Suffix = " Describing stack demo"
		sp.FinalMSG = "done\n"
	})

	require.Equal(t, " Describing stack demo", v.Suffix)
	require.Equal(t, "done\n", v.FinalMSG)
}

func TestSpinner_Start(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := mocks.NewMockanimation(ctrl)
	s := &Spinner{anim: m}

	m.EXPECT().Start()

	s.Start("start")
}

func TestSpinner_Stop(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := mocks.NewMockanimation(ctrl)
	s := &Spinner{anim: m}

	m.EXPECT().Stop()

	s.Stop("stop")
}
