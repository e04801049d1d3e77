// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestListShapesOpts_Validate(t *testing.T) {
	testCases := map[string]struct {
		inFilter string

		wantedErr string
	}{
		"no filter": {},
		"valid glob": {
			inFilter: "*Input",
		},
		"invalid glob": {
			inFilter:  "[Input",
			wantedErr: "compile filter [Input",
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			opts := &listShapesOpts{
				listShapesVars: listShapesVars{filter: tc.inFilter},
			}

			err := opts.Validate()

			if tc.wantedErr != "" {
				require.ErrorContains(t, err, tc.wantedErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestListShapesOpts_Execute(t *testing.T) {
	names := func() []string {
		return []string{"CreateStackInput", "CreateStackOutput", "Stack", "Tag", "UpdateStackInput"}
	}
	testCases := map[string]struct {
		inVars listShapesVars

		wanted string
	}{
		"lists every shape": {
			wanted: "CreateStackInput\nCreateStackOutput\nStack\nTag\nUpdateStackInput\n",
		},
		"filters with a glob": {
			inVars: listShapesVars{filter: "*Input"},
			wanted: "CreateStackInput\nUpdateStackInput\n",
		},
		"outputs json": {
			inVars: listShapesVars{filter: "Create*", shouldOutputJSON: true},
			wanted: `{"shapes":["CreateStackInput","CreateStackOutput"]}` + "\n",
		},
		"outputs an empty json list when nothing matches": {
			inVars: listShapesVars{filter: "Bucket*", shouldOutputJSON: true},
			wanted: `{"shapes":[]}` + "\n",
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			// GIVEN
			b := &strings.Builder{}
			opts := &listShapesOpts{
				listShapesVars: tc.inVars,
				names:          names,
				w:              b,
			}
			require.NoError(t, opts.Validate())

			// WHEN
			err := opts.Execute()

			// THEN
			require.NoError(t, err)
			require.Equal(t, tc.wanted, b.String())
		})
	}
}
