// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package shape

import (
	"fmt"
	"reflect"
)

// Difference is a member whose value differs between two shapes.
type Difference struct {
	// Path is the dotted wire path of the member, e.g. "Parameters[0].ParameterValue".
	Path string
	// A is the value in the first shape, nil when the member is null.
	A interface{}
	// B is the value in the second shape, nil when the member is null.
	B interface{}
}

// String implements fmt.Stringer.
func (d Difference) String() string {
	return fmt.Sprintf("%s: %s -> %s", d.Path, String(d.A), String(d.B))
}

// Diff returns the members that differ between a and b, walking nested shapes and
// lists of shapes of the same length. Equal shapes produce no differences.
func Diff(a, b interface{}) []Difference {
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if !va.IsValid() || !vb.IsValid() || va.Type() != vb.Type() {
		if Equal(a, b) {
			return nil
		}
		return []Difference{{A: a, B: b}}
	}
	var diffs []Difference
	diff(va, vb, "", &diffs)
	return diffs
}

func diff(a, b reflect.Value, path string, out *[]Difference) {
	nullA, nullB := isNull(a), isNull(b)
	if nullA || nullB {
		if nullA != nullB {
			*out = append(*out, Difference{Path: path, A: valueOf(a), B: valueOf(b)})
		}
		return
	}
	ea, _ := indirect(a)
	eb, _ := indirect(b)
	switch {
	case isShape(ea.Type()):
		for _, m := range membersOf(ea.Type()) {
			diff(ea.Field(m.index), eb.Field(m.index), join(path, m.wireName), out)
		}
		return
	case ea.Kind() == reflect.Slice && ea.Len() == eb.Len() && isShapeList(ea.Type()):
		for i := 0; i < ea.Len(); i++ {
			diff(ea.Index(i), eb.Index(i), fmt.Sprintf("%s[%d]", path, i), out)
		}
		return
	}
	if !equal(a, b) {
		*out = append(*out, Difference{Path: path, A: valueOf(a), B: valueOf(b)})
	}
}

func isShapeList(t reflect.Type) bool {
	e := t.Elem()
	for e.Kind() == reflect.Ptr {
		e = e.Elem()
	}
	return isShape(e)
}

// valueOf returns the dereferenced value held by v, or nil for null members.
func valueOf(v reflect.Value) interface{} {
	if isNull(v) {
		return nil
	}
	if e, ok := indirect(v); ok && v.Kind() == reflect.Ptr && !isShape(e.Type()) {
		return e.Interface()
	}
	return v.Interface()
}

func join(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + "." + name
}
