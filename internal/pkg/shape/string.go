// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package shape

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
	"time"
)

const nullString = "null"

// String returns the debug representation of a shape.
//
// Every non-null member is written as "Name: value" in declaration order, members are
// separated by commas and wrapped in braces. Null members are omitted:
//
//	{StackName: my-stack,ResourcesToSkip: [ResA, ResB],ClientRequestToken: tok-1}
func String(v interface{}) string {
	var b strings.Builder
	writeValue(&b, reflect.ValueOf(v))
	return b.String()
}

func writeValue(b *strings.Builder, v reflect.Value) {
	v, ok := indirect(v)
	if !ok {
		b.WriteString(nullString)
		return
	}
	switch v.Kind() {
	case reflect.Struct:
		if v.Type() == timeType {
			b.WriteString(v.Interface().(time.Time).Format(time.RFC3339))
			return
		}
		writeStruct(b, v)
	case reflect.Slice, reflect.Array:
		b.WriteString("[")
		for i := 0; i < v.Len(); i++ {
			if i > 0 {
				b.WriteString(", ")
			}
			writeValue(b, v.Index(i))
		}
		b.WriteString("]")
	case reflect.Map:
		writeMap(b, v)
	case reflect.String:
		b.WriteString(v.String())
	default:
		fmt.Fprint(b, v.Interface())
	}
}

func writeStruct(b *strings.Builder, v reflect.Value) {
	b.WriteString("{")
	written := 0
	for _, m := range membersOf(v.Type()) {
		fv := v.Field(m.index)
		if isNull(fv) {
			continue
		}
		if written > 0 {
			b.WriteString(",")
		}
		b.WriteString(m.wireName)
		b.WriteString(": ")
		writeValue(b, fv)
		written++
	}
	b.WriteString("}")
}

func writeMap(b *strings.Builder, v reflect.Value) {
	keys := v.MapKeys()
	sort.Slice(keys, func(i, j int) bool {
		return fmt.Sprint(keys[i].Interface()) < fmt.Sprint(keys[j].Interface())
	})
	b.WriteString("{")
	for i, k := range keys {
		if i > 0 {
			b.WriteString(", ")
		}
		writeValue(b, k)
		b.WriteString("=")
		writeValue(b, v.MapIndex(k))
	}
	b.WriteString("}")
}
