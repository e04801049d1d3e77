// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"errors"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

func TestRenderOpts_Validate(t *testing.T) {
	testCases := map[string]struct {
		inVars renderVars

		wantedErr string
	}{
		"unknown shape": {
			inVars:    renderVars{name: "Bucket", file: "stack.yml"},
			wantedErr: "shape Bucket is not registered",
		},
		"missing file flag": {
			inVars:    renderVars{name: "Tag"},
			wantedErr: "--file is required",
		},
		"missing overlay": {
			inVars:    renderVars{name: "Tag", file: "stack.yml", overlays: []string{"prod.yml"}},
			wantedErr: "file prod.yml does not exist",
		},
		"valid": {
			inVars: renderVars{name: "Tag", file: "stack.yml"},
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			require.NoError(t, afero.WriteFile(fs, "stack.yml", []byte("Key: team"), 0644))
			opts := &renderOpts{
				renderVars: tc.inVars,
				reader:     documentReader{fs: fs},
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

func TestRenderOpts_Execute(t *testing.T) {
	testCases := map[string]struct {
		inVars  renderVars
		inFiles map[string]string

		wanted    string
		wantedErr string
	}{
		"prints the string representation without null members": {
			inVars: renderVars{name: "ContinueUpdateRollbackInput", file: "rollback.yml"},
			inFiles: map[string]string{
				"rollback.yml": "StackName: demo\nResourcesToSkip: [ResA, ResB]\n",
			},
			wanted: "{StackName: demo,ResourcesToSkip: [ResA, ResB]}\n",
		},
		"applies overlays in order": {
			inVars: renderVars{name: "Tag", file: "tag.yml", overlays: []string{"prod.yml"}},
			inFiles: map[string]string{
				"tag.yml":  "Key: stage\nValue: test\n",
				"prod.yml": "Value: prod\n",
			},
			wanted: "{Key: stage,Value: prod}\n",
		},
		"prints a tree": {
			inVars: renderVars{name: "ContinueUpdateRollbackInput", file: "rollback.json", shouldTree: true},
			inFiles: map[string]string{
				"rollback.json": `{"StackName": "demo", "ResourcesToSkip": ["ResA", "ResB"]}`,
			},
			wanted: `ContinueUpdateRollbackInput
├── StackName: demo
└── ResourcesToSkip
    ├── [0]: ResA
    └── [1]: ResB
`,
		},
		"prints nested shapes in a tree": {
			inVars: renderVars{name: "CreateStackInput", file: "stack.yml", shouldTree: true},
			inFiles: map[string]string{
				"stack.yml": "StackName: demo\nTags:\n  - Key: team\n    Value: shapes\n",
			},
			wanted: `CreateStackInput
├── StackName: demo
└── Tags
    └── [0]
        ├── Key: team
        └── Value: shapes
`,
		},
		"returns validation errors": {
			inVars: renderVars{name: "Tag", file: "tag.yml", validate: true},
			inFiles: map[string]string{
				"tag.yml": "Key: team\n",
			},
			wanted:    "{Key: team}\n",
			wantedErr: "Tag is invalid",
		},
		"passes validation": {
			inVars: renderVars{name: "Tag", file: "tag.yml", validate: true},
			inFiles: map[string]string{
				"tag.yml": "Key: team\nValue: shapes\n",
			},
			wanted: "{Key: team,Value: shapes}\n",
		},
		"rejects unknown members": {
			inVars: renderVars{name: "Tag", file: "tag.yml"},
			inFiles: map[string]string{
				"tag.yml": "Key: team\nColor: blue\n",
			},
			wantedErr: "decode Tag document",
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			// GIVEN
			fs := afero.NewMemMapFs()
			for path, content := range tc.inFiles {
				require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0644))
			}
			b := &strings.Builder{}
			opts := &renderOpts{
				renderVars: tc.inVars,
				reader:     documentReader{fs: fs},
				w:          b,
			}

			// WHEN
			err := opts.Execute()

			// THEN
			if tc.wantedErr != "" {
				require.ErrorContains(t, err, tc.wantedErr)
			} else {
				require.NoError(t, err)
			}
			require.Equal(t, tc.wanted, b.String())
		})
	}
}

func TestRenderOpts_Execute_ValidationErrorIsInvalidParams(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "tag.yml", []byte("Value: shapes\n"), 0644))
	opts := &renderOpts{
		renderVars: renderVars{name: "Tag", file: "tag.yml", validate: true},
		reader:     documentReader{fs: fs},
		w:          &strings.Builder{},
	}

	err := opts.Execute()

	var invalid request.ErrInvalidParams
	require.True(t, errors.As(err, &invalid))
	require.Len(t, invalid.OrigErrs(), 1)
	require.Equal(t, "Tag.Key", invalid.OrigErrs()[0].(request.ErrInvalidParam).Field())
}
