// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"
	"strings"
	"testing"

	"github.com/aws/cfn-shapes/internal/pkg/term/color"
	cfn "github.com/aws/cfn-shapes/pkg/cloudformation"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

func TestDiffOpts_Validate(t *testing.T) {
	testCases := map[string]struct {
		inVars diffVars

		wantedErr string
	}{
		"unknown shape": {
			inVars:    diffVars{name: "Bucket"},
			wantedErr: "shape Bucket is not registered",
		},
		"missing left": {
			inVars:    diffVars{name: "Tag", right: "b.yml"},
			wantedErr: "--left is required",
		},
		"missing right file": {
			inVars:    diffVars{name: "Tag", left: "a.yml", right: "c.yml"},
			wantedErr: "file c.yml does not exist",
		},
		"valid": {
			inVars: diffVars{name: "Tag", left: "a.yml", right: "b.yml"},
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			require.NoError(t, afero.WriteFile(fs, "a.yml", []byte("Key: team"), 0644))
			require.NoError(t, afero.WriteFile(fs, "b.yml", []byte("Key: team"), 0644))
			opts := &diffOpts{
				diffVars: tc.inVars,
				reader:   documentReader{fs: fs},
			}

			err := opts.Validate()

			if tc.wantedErr != "" {
				require.EqualError(t, err, tc.wantedErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestDiffOpts_Execute(t *testing.T) {
	team := new(cfn.Tag).SetKey("team").SetValue("shapes")
	testCases := map[string]struct {
		inLeft  string
		inRight string

		wanted string
	}{
		"equal shapes": {
			inLeft:  "Key: team\nValue: shapes\n",
			inRight: `{"Value": "shapes", "Key": "team"}`,
			wanted: fmt.Sprintf("Hash: %d %d\n%s The shapes are equal.\n",
				team.Hash(), team.Hash(), color.SuccessMarker),
		},
		"different members": {
			inLeft:  "Key: team\nValue: shapes\n",
			inRight: "Key: team\n",
			wanted: fmt.Sprintf("Hash: %d %d\n%s The shapes differ in 1 members:\n  Value: shapes -> null\n",
				team.Hash(), new(cfn.Tag).SetKey("team").Hash(), color.ErrorMarker),
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			// GIVEN
			fs := afero.NewMemMapFs()
			require.NoError(t, afero.WriteFile(fs, "left.yml", []byte(tc.inLeft), 0644))
			require.NoError(t, afero.WriteFile(fs, "right.yml", []byte(tc.inRight), 0644))
			b := &strings.Builder{}
			opts := &diffOpts{
				diffVars: diffVars{name: "Tag", left: "left.yml", right: "right.yml"},
				reader:   documentReader{fs: fs},
				w:        b,
			}

			// WHEN
			err := opts.Execute()

			// THEN
			require.NoError(t, err)
			require.Equal(t, tc.wanted, b.String())
		})
	}
}
