// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package shape

import (
	"reflect"
)

// Member kinds of a schema.
const (
	KindString    = "string"
	KindEnum      = "enum"
	KindInteger   = "integer"
	KindBoolean   = "boolean"
	KindTimestamp = "timestamp"
	KindStructure = "structure"
	KindList      = "list"
	KindMap       = "map"
)

// Schema describes the wire members of a shape.
type Schema struct {
	Name   string        `yaml:"name" json:"name"`
	Fields []FieldSchema `yaml:"fields" json:"fields"`
}

// FieldSchema describes a single member and its documented constraints.
type FieldSchema struct {
	Name     string   `yaml:"name" json:"name"`
	WireName string   `yaml:"wireName" json:"wireName"`
	Kind     string   `yaml:"kind" json:"kind"`
	Element  string   `yaml:"element,omitempty" json:"element,omitempty"` // Element kind or shape name of lists and maps.
	Shape    string   `yaml:"shape,omitempty" json:"shape,omitempty"`
	Required bool     `yaml:"required,omitempty" json:"required,omitempty"`
	Min      *int64   `yaml:"min,omitempty" json:"min,omitempty"`
	Max      *int64   `yaml:"max,omitempty" json:"max,omitempty"`
	Pattern  string   `yaml:"pattern,omitempty" json:"pattern,omitempty"`
	Enum     []string `yaml:"enum,omitempty" json:"enum,omitempty"`
}

// Describe returns the schema of the shape held by v.
func Describe(v interface{}) (*Schema, error) {
	t := reflect.TypeOf(v)
	for t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t == nil || !isShape(t) {
		return nil, &ErrNotShape{Value: v}
	}
	s := &Schema{Name: t.Name()}
	for _, m := range membersOf(t) {
		f := FieldSchema{
			Name:     m.name,
			WireName: m.wireName,
			Required: m.required(),
			Pattern:  m.tag.Get(tagPattern),
		}
		if min, ok := m.bound(tagMin); ok {
			f.Min = &min
		}
		if max, ok := m.bound(tagMax); ok {
			f.Max = &max
		}
		f.Kind, f.Shape, f.Enum = describeType(m.typ)
		switch m.typ.Kind() {
		case reflect.Slice, reflect.Map:
			var elemKind string
			elemKind, f.Shape, f.Enum = describeType(m.typ.Elem())
			f.Element = elemKind
			if f.Shape != "" {
				f.Element = f.Shape
			}
		}
		s.Fields = append(s.Fields, f)
	}
	return s, nil
}

// describeType returns the kind of t, the shape name for structures and the known
// values for enums.
func describeType(t reflect.Type) (kind string, shapeName string, enum []string) {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.String:
		if values := enumValues(t); values != nil {
			return KindEnum, "", values
		}
		return KindString, "", nil
	case reflect.Int, reflect.Int32, reflect.Int64:
		return KindInteger, "", nil
	case reflect.Bool:
		return KindBoolean, "", nil
	case reflect.Slice:
		return KindList, "", nil
	case reflect.Map:
		return KindMap, "", nil
	case reflect.Struct:
		if t == timeType {
			return KindTimestamp, "", nil
		}
		return KindStructure, t.Name(), nil
	}
	return t.Kind().String(), "", nil
}

// enumValues calls the Values method of a typed string enum.
func enumValues(t reflect.Type) []string {
	if t.PkgPath() == "" { // builtin string.
		return nil
	}
	method := reflect.Zero(t).MethodByName("Values")
	if !method.IsValid() || method.Type().NumIn() != 0 || method.Type().NumOut() != 1 {
		return nil
	}
	out := method.Call(nil)[0]
	if out.Kind() != reflect.Slice {
		return nil
	}
	values := make([]string, 0, out.Len())
	for i := 0; i < out.Len(); i++ {
		el := out.Index(i)
		if el.Kind() != reflect.String {
			return nil
		}
		values = append(values, el.String())
	}
	return values
}
