// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package shape

import (
	"fmt"
	"reflect"
	"regexp"
	"sync"
	"unicode/utf8"

	"github.com/aws/aws-sdk-go/aws/request"
)

// Validate checks the documented constraints of v: required members, minimum and maximum
// lengths, numeric ranges and patterns. Nested shapes and lists of shapes are validated
// too. Enum members are not checked against their known values.
//
// The returned error is a request.ErrInvalidParams whose context is the shape's name.
// Validate returns nil if v is nil or satisfies all of its constraints.
func Validate(v interface{}) error {
	rv, ok := indirect(reflect.ValueOf(v))
	if !ok || !isShape(rv.Type()) {
		return nil
	}
	invalidParams := validate(rv)
	if invalidParams.Len() > 0 {
		return invalidParams
	}
	return nil
}

func validate(v reflect.Value) request.ErrInvalidParams {
	invalidParams := request.ErrInvalidParams{Context: v.Type().Name()}
	for _, m := range membersOf(v.Type()) {
		fv := v.Field(m.index)
		if isNull(fv) {
			if m.required() {
				invalidParams.Add(request.NewErrParamRequired(m.wireName))
			}
			continue
		}
		ev, _ := indirect(fv)
		switch ev.Kind() {
		case reflect.String:
			s := ev.String()
			validateSize(&invalidParams, m, int64(utf8.RuneCountInString(s)))
			validatePattern(&invalidParams, m, s)
		case reflect.Int, reflect.Int32, reflect.Int64:
			validateRange(&invalidParams, m, ev.Int())
		case reflect.Slice, reflect.Map:
			validateSize(&invalidParams, m, int64(ev.Len()))
			if ev.Kind() == reflect.Map {
				continue
			}
			for i := 0; i < ev.Len(); i++ {
				el, ok := indirect(ev.Index(i))
				if !ok || !isShape(el.Type()) {
					continue
				}
				if nested := validate(el); nested.Len() > 0 {
					invalidParams.AddNested(fmt.Sprintf("%s[%v]", m.wireName, i), nested)
				}
			}
		case reflect.Struct:
			if ev.Type() == timeType {
				continue
			}
			if nested := validate(ev); nested.Len() > 0 {
				invalidParams.AddNested(m.wireName, nested)
			}
		}
	}
	return invalidParams
}

func validateSize(errs *request.ErrInvalidParams, m member, size int64) {
	if min, ok := m.bound(tagMin); ok && size < min {
		errs.Add(request.NewErrParamMinLen(m.wireName, int(min)))
	}
	if max, ok := m.bound(tagMax); ok && size > max {
		errs.Add(NewErrParamMaxLen(m.wireName, max))
	}
}

func validateRange(errs *request.ErrInvalidParams, m member, n int64) {
	if min, ok := m.bound(tagMin); ok && n < min {
		errs.Add(request.NewErrParamMinValue(m.wireName, float64(min)))
	}
	if max, ok := m.bound(tagMax); ok && n > max {
		errs.Add(NewErrParamMaxValue(m.wireName, max))
	}
}

func validatePattern(errs *request.ErrInvalidParams, m member, s string) {
	pattern := m.tag.Get(tagPattern)
	if pattern == "" {
		return
	}
	re, ok := compilePattern(pattern)
	if !ok {
		return
	}
	if !re.MatchString(s) {
		errs.Add(NewErrParamPattern(m.wireName, pattern))
	}
}

// patterns caches compiled patterns, nil marks a pattern that does not compile.
var patterns sync.Map // map[string]*regexp.Regexp

// compilePattern anchors pattern so that it must match the whole value.
func compilePattern(pattern string) (*regexp.Regexp, bool) {
	if cached, ok := patterns.Load(pattern); ok {
		re := cached.(*regexp.Regexp)
		return re, re != nil
	}
	re, err := regexp.Compile(fmt.Sprintf("^(?:%s)$", pattern))
	if err != nil {
		patterns.Store(pattern, (*regexp.Regexp)(nil))
		return nil, false
	}
	patterns.Store(pattern, re)
	return re, true
}
