// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package shape

import (
	"reflect"
)

// Member is a non-null member of a shape value.
type Member struct {
	Name string // Wire name.
	// Value is a pointer to a nested shape, a list, a map, or the dereferenced scalar.
	Value interface{}
}

// Members returns the non-null members of the shape held by v in declaration order.
// It returns nil if v is null or not a shape.
func Members(v interface{}) []Member {
	sv, ok := indirect(reflect.ValueOf(v))
	if !ok || !isShape(sv.Type()) {
		return nil
	}
	var out []Member
	for _, m := range membersOf(sv.Type()) {
		fv := sv.Field(m.index)
		if isNull(fv) {
			continue
		}
		out = append(out, Member{
			Name:  m.wireName,
			Value: valueOf(fv),
		})
	}
	return out
}

// IsShape returns true if v holds a struct shape, directly or through pointers.
func IsShape(v interface{}) bool {
	sv, ok := indirect(reflect.ValueOf(v))
	return ok && isShape(sv.Type())
}
