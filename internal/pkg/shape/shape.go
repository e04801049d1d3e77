// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package shape implements the behavior shared by every API shape: debug rendering,
// null-aware structural equality, hashing, validation of documented constraints and
// introspection of the wire schema.
//
// A shape is a struct whose exported fields are optional wire members. A member is null
// when it holds a nil pointer, a nil slice, a nil map or an empty enum string.
// Members are described with struct tags:
//
//	StackName *string `locationName:"StackName" min:"1" type:"string" required:"true"`
package shape

import (
	"reflect"
	"strconv"
	"sync"
	"time"
)

// Struct tag keys.
const (
	tagLocationName = "locationName"
	tagType         = "type"
	tagRequired     = "required"
	tagMin          = "min"
	tagMax          = "max"
	tagPattern      = "pattern"
	tagEnum         = "enum"
)

var timeType = reflect.TypeOf(time.Time{})

// member is an exported field of a shape.
type member struct {
	index    int
	name     string // Go field name.
	wireName string
	typ      reflect.Type
	tag      reflect.StructTag
}

func (m member) required() bool {
	return m.tag.Get(tagRequired) == "true"
}

func (m member) bound(key string) (int64, bool) {
	v, ok := m.tag.Lookup(key)
	if !ok || v == "" {
		return 0, false
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// members are cached per type, shapes are declared once and never change at runtime.
var memberCache sync.Map // map[reflect.Type][]member

func membersOf(t reflect.Type) []member {
	if cached, ok := memberCache.Load(t); ok {
		return cached.([]member)
	}
	var ms []member
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.PkgPath != "" { // unexported, includes the "_ struct{}" marker.
			continue
		}
		wire := f.Tag.Get(tagLocationName)
		if wire == "" {
			wire = f.Name
		}
		ms = append(ms, member{
			index:    i,
			name:     f.Name,
			wireName: wire,
			typ:      f.Type,
			tag:      f.Tag,
		})
	}
	memberCache.Store(t, ms)
	return ms
}

// isShape returns true if t is a struct that should be walked member by member.
func isShape(t reflect.Type) bool {
	return t.Kind() == reflect.Struct && t != timeType
}

// isNull reports whether v holds no value.
func isNull(v reflect.Value) bool {
	if !v.IsValid() {
		return true
	}
	switch v.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Slice, reflect.Map:
		return v.IsNil()
	case reflect.String:
		// Only enums are declared as non-pointer strings.
		return v.Len() == 0
	}
	return false
}

// indirect dereferences pointers and interfaces until it reaches a concrete value.
// It returns false if a nil is encountered on the way.
func indirect(v reflect.Value) (reflect.Value, bool) {
	for v.IsValid() && (v.Kind() == reflect.Ptr || v.Kind() == reflect.Interface) {
		if v.IsNil() {
			return v, false
		}
		v = v.Elem()
	}
	return v, v.IsValid()
}

// Name returns the declared name of the shape held by v, dereferencing pointers.
func Name(v interface{}) string {
	t := reflect.TypeOf(v)
	if t == nil {
		return ""
	}
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}
