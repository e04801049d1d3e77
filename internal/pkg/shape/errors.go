// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package shape

import (
	"fmt"

	"github.com/aws/aws-sdk-go/aws/request"
)

// Error codes for constraints the SDK does not provide an error type for.
const (
	ParamMaxLenErrCode   = "ParamMaxLenError"
	ParamMaxValueErrCode = "ParamMaxValueError"
	ParamPatternErrCode  = "ParamPatternError"
)

// ErrUnknownShape is returned when a shape name is not registered.
type ErrUnknownShape struct {
	Name string
}

func (e *ErrUnknownShape) Error() string {
	return fmt.Sprintf("shape %s is not registered", e.Name)
}

// ErrNotShape is returned when a value that is not a struct is described.
type ErrNotShape struct {
	Value interface{}
}

func (e *ErrNotShape) Error() string {
	return fmt.Sprintf("value of type %T is not a shape", e.Value)
}

// invalidParam implements request.ErrInvalidParam the same way the SDK's own parameter
// errors do, so that they can be collected in a request.ErrInvalidParams.
type invalidParam struct {
	code          string
	msg           string
	context       string
	nestedContext string
	field         string
}

var _ request.ErrInvalidParam = (*invalidParam)(nil)

func (e *invalidParam) Code() string {
	return e.code
}

func (e *invalidParam) Message() string {
	return fmt.Sprintf("%s, %s.", e.msg, e.Field())
}

func (e *invalidParam) Error() string {
	return fmt.Sprintf("%s: %s", e.code, e.Message())
}

func (e *invalidParam) OrigErr() error {
	return nil
}

// Field returns the dotted path of the invalid member.
func (e *invalidParam) Field() string {
	field := e.context
	if field != "" {
		field += "."
	}
	if e.nestedContext != "" {
		field += e.nestedContext + "."
	}
	return field + e.field
}

func (e *invalidParam) SetContext(ctx string) {
	e.context = ctx
}

func (e *invalidParam) AddNestedContext(ctx string) {
	if e.nestedContext == "" {
		e.nestedContext = ctx
		return
	}
	e.nestedContext = fmt.Sprintf("%s.%s", ctx, e.nestedContext)
}

// ErrParamMaxLen is a member longer than its documented maximum.
type ErrParamMaxLen struct {
	invalidParam
	max int64
}

// NewErrParamMaxLen returns an error for a member longer than max.
func NewErrParamMaxLen(field string, max int64) *ErrParamMaxLen {
	return &ErrParamMaxLen{
		invalidParam: invalidParam{
			code:  ParamMaxLenErrCode,
			field: field,
			msg:   fmt.Sprintf("maximum field size of %v", max),
		},
		max: max,
	}
}

// MaxLen returns the maximum length of the member.
func (e *ErrParamMaxLen) MaxLen() int64 {
	return e.max
}

// ErrParamMaxValue is a numeric member above its documented maximum.
type ErrParamMaxValue struct {
	invalidParam
	max int64
}

// NewErrParamMaxValue returns an error for a numeric member above max.
func NewErrParamMaxValue(field string, max int64) *ErrParamMaxValue {
	return &ErrParamMaxValue{
		invalidParam: invalidParam{
			code:  ParamMaxValueErrCode,
			field: field,
			msg:   fmt.Sprintf("maximum field value of %v", max),
		},
		max: max,
	}
}

// MaxValue returns the maximum value of the member.
func (e *ErrParamMaxValue) MaxValue() int64 {
	return e.max
}

// ErrParamPattern is a string member that does not match its documented pattern.
type ErrParamPattern struct {
	invalidParam
	pattern string
}

// NewErrParamPattern returns an error for a member that does not match pattern.
func NewErrParamPattern(field, pattern string) *ErrParamPattern {
	return &ErrParamPattern{
		invalidParam: invalidParam{
			code:  ParamPatternErrCode,
			field: field,
			msg:   fmt.Sprintf("field does not match pattern %s", pattern),
		},
		pattern: pattern,
	}
}

// Pattern returns the pattern the member must match.
func (e *ErrParamPattern) Pattern() string {
	return e.pattern
}
