// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package shape

import (
	"math"
	"reflect"
	"time"
	"unicode/utf16"
)

const (
	hashPrime = 31

	hashTrue  = 1231
	hashFalse = 1237
)

// Hash returns a hash code of v that is consistent with Equal.
//
// The hash of a shape starts at 1 and folds in every member in declaration order with
// h = 31*h + hash(member), a null member contributing 0. Arithmetic wraps on 32 bits so
// that two equal shapes always produce the same value regardless of platform.
func Hash(v interface{}) int32 {
	return hash(reflect.ValueOf(v))
}

func hash(v reflect.Value) int32 {
	v, ok := indirect(v)
	if !ok {
		return 0
	}
	switch v.Kind() {
	case reflect.Struct:
		if v.Type() == timeType {
			return hashInt64(v.Interface().(time.Time).UnixMilli())
		}
		var h int32 = 1
		for _, m := range membersOf(v.Type()) {
			h = hashPrime*h + hash(v.Field(m.index))
		}
		return h
	case reflect.Slice, reflect.Array:
		if v.Kind() == reflect.Slice && v.IsNil() {
			return 0
		}
		var h int32 = 1
		for i := 0; i < v.Len(); i++ {
			h = hashPrime*h + hash(v.Index(i))
		}
		return h
	case reflect.Map:
		if v.IsNil() {
			return 0
		}
		var h int32
		iter := v.MapRange()
		for iter.Next() {
			h += hash(iter.Key()) ^ hash(iter.Value())
		}
		return h
	case reflect.String:
		return hashString(v.String())
	case reflect.Bool:
		if v.Bool() {
			return hashTrue
		}
		return hashFalse
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32:
		return int32(v.Int())
	case reflect.Int64:
		return hashInt64(v.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return hashInt64(int64(v.Uint()))
	case reflect.Float32, reflect.Float64:
		return hashInt64(int64(math.Float64bits(v.Float())))
	}
	return 0
}

// hashString folds the UTF-16 code units of s, so non-BMP runes count as surrogate pairs.
func hashString(s string) int32 {
	var h int32
	for _, r := range s {
		if r >= 0x10000 {
			r1, r2 := utf16.EncodeRune(r)
			h = hashPrime*h + int32(r1)
			h = hashPrime*h + int32(r2)
			continue
		}
		h = hashPrime*h + int32(r)
	}
	return h
}

func hashInt64(n int64) int32 {
	return int32(n ^ int64(uint64(n)>>32))
}
