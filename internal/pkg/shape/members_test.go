// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package shape

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMembers(t *testing.T) {
	name := "my-stack"
	key := "Env"
	nested := &memberTestTag{Key: &key}

	testCases := map[string]struct {
		in interface{}

		wanted []Member
	}{
		"nil pointer has no members": {
			in: (*memberTestShape)(nil),
		},
		"non-shape value has no members": {
			in: "hello",
		},
		"skips null members and dereferences scalars": {
			in: &memberTestShape{
				StackName: &name,
				Tag:       nested,
			},
			wanted: []Member{
				{Name: "StackName", Value: "my-stack"},
				{Name: "Tag", Value: nested},
			},
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			require.Equal(t, tc.wanted, Members(tc.in))
		})
	}
}

func TestIsShape(t *testing.T) {
	require.True(t, IsShape(&memberTestTag{}))
	require.True(t, IsShape(memberTestTag{}))
	require.False(t, IsShape((*memberTestTag)(nil)))
	require.False(t, IsShape("Env"))
}

type memberTestTag struct {
	_ struct{} `type:"structure"`

	Key *string `locationName:"Key" type:"string"`
}

type memberTestShape struct {
	_ struct{} `type:"structure"`

	StackName *string        `locationName:"StackName" type:"string"`
	Tags      []*string      `locationName:"Tags" type:"list"`
	Tag       *memberTestTag `locationName:"Tag" type:"structure"`
}
