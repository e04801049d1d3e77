// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cloudformation

import (
	"time"

	"github.com/aws/cfn-shapes/internal/pkg/shape"
)

// Parameter is an input value of a template.
type Parameter struct {
	_ struct{} `type:"structure"`

	// The key associated with the parameter. If you don't specify a key and value
	// for a particular parameter, the template's default value is used.
	ParameterKey *string `locationName:"ParameterKey" type:"string"`

	ParameterValue *string `locationName:"ParameterValue" type:"string"`

	// During a stack update, use the existing parameter value that the stack is
	// using for a given parameter key.
	UsePreviousValue *bool `locationName:"UsePreviousValue" type:"boolean"`

	// Read-only. The value that corresponds to a Systems Manager parameter key.
	ResolvedValue *string `locationName:"ResolvedValue" type:"string"`
}

// String returns the string representation.
func (s *Parameter) String() string {
	return shape.String(s)
}

// GoString returns the string representation.
func (s *Parameter) GoString() string {
	return s.String()
}

// Equal returns true if o holds the same values as s.
func (s *Parameter) Equal(o *Parameter) bool {
	return shape.Equal(s, o)
}

// Hash returns a hash code consistent with Equal.
func (s *Parameter) Hash() int32 {
	return shape.Hash(s)
}

// Validate inspects the fields of the type to determine if they are valid.
func (s *Parameter) Validate() error {
	return shape.Validate(s)
}

// SetParameterKey sets the ParameterKey field's value.
func (s *Parameter) SetParameterKey(v string) *Parameter {
	s.ParameterKey = &v
	return s
}

// SetParameterValue sets the ParameterValue field's value.
func (s *Parameter) SetParameterValue(v string) *Parameter {
	s.ParameterValue = &v
	return s
}

// SetUsePreviousValue sets the UsePreviousValue field's value.
func (s *Parameter) SetUsePreviousValue(v bool) *Parameter {
	s.UsePreviousValue = &v
	return s
}

// SetResolvedValue sets the ResolvedValue field's value.
func (s *Parameter) SetResolvedValue(v string) *Parameter {
	s.ResolvedValue = &v
	return s
}

// Tag is a key-value pair associated with a stack or a stack set.
type Tag struct {
	_ struct{} `type:"structure"`

	Key *string `locationName:"Key" min:"1" max:"128" type:"string" required:"true"`

	Value *string `locationName:"Value" min:"1" max:"256" type:"string" required:"true"`
}

// String returns the string representation.
func (s *Tag) String() string {
	return shape.String(s)
}

// GoString returns the string representation.
func (s *Tag) GoString() string {
	return s.String()
}

// Equal returns true if o holds the same values as s.
func (s *Tag) Equal(o *Tag) bool {
	return shape.Equal(s, o)
}

// Hash returns a hash code consistent with Equal.
func (s *Tag) Hash() int32 {
	return shape.Hash(s)
}

// Validate inspects the fields of the type to determine if they are valid.
func (s *Tag) Validate() error {
	return shape.Validate(s)
}

// SetKey sets the Key field's value.
func (s *Tag) SetKey(v string) *Tag {
	s.Key = &v
	return s
}

// SetValue sets the Value field's value.
func (s *Tag) SetValue(v string) *Tag {
	s.Value = &v
	return s
}

// Output is a value exported by a stack.
type Output struct {
	_ struct{} `type:"structure"`

	OutputKey *string `locationName:"OutputKey" type:"string"`

	OutputValue *string `locationName:"OutputValue" type:"string"`

	Description *string `locationName:"Description" min:"1" max:"1024" type:"string"`

	// The name of the export associated with the output.
	ExportName *string `locationName:"ExportName" type:"string"`
}

// String returns the string representation.
func (s *Output) String() string {
	return shape.String(s)
}

// GoString returns the string representation.
func (s *Output) GoString() string {
	return s.String()
}

// Equal returns true if o holds the same values as s.
func (s *Output) Equal(o *Output) bool {
	return shape.Equal(s, o)
}

// Hash returns a hash code consistent with Equal.
func (s *Output) Hash() int32 {
	return shape.Hash(s)
}

// SetOutputKey sets the OutputKey field's value.
func (s *Output) SetOutputKey(v string) *Output {
	s.OutputKey = &v
	return s
}

// SetOutputValue sets the OutputValue field's value.
func (s *Output) SetOutputValue(v string) *Output {
	s.OutputValue = &v
	return s
}

// SetDescription sets the Description field's value.
func (s *Output) SetDescription(v string) *Output {
	s.Description = &v
	return s
}

// SetExportName sets the ExportName field's value.
func (s *Output) SetExportName(v string) *Output {
	s.ExportName = &v
	return s
}

// RollbackTrigger is an alarm that CloudFormation monitors during stack creation
// and updating operations.
type RollbackTrigger struct {
	_ struct{} `type:"structure"`

	Arn *string `locationName:"Arn" type:"string" required:"true"`

	// The resource type of the rollback trigger, either AWS::CloudWatch::Alarm
	// or AWS::CloudWatch::CompositeAlarm.
	Type *string `locationName:"Type" type:"string" required:"true"`
}

// String returns the string representation.
func (s *RollbackTrigger) String() string {
	return shape.String(s)
}

// GoString returns the string representation.
func (s *RollbackTrigger) GoString() string {
	return s.String()
}

// Equal returns true if o holds the same values as s.
func (s *RollbackTrigger) Equal(o *RollbackTrigger) bool {
	return shape.Equal(s, o)
}

// Hash returns a hash code consistent with Equal.
func (s *RollbackTrigger) Hash() int32 {
	return shape.Hash(s)
}

// Validate inspects the fields of the type to determine if they are valid.
func (s *RollbackTrigger) Validate() error {
	return shape.Validate(s)
}

// SetArn sets the Arn field's value.
func (s *RollbackTrigger) SetArn(v string) *RollbackTrigger {
	s.Arn = &v
	return s
}

// SetType sets the Type field's value.
func (s *RollbackTrigger) SetType(v string) *RollbackTrigger {
	s.Type = &v
	return s
}

// RollbackConfiguration is the rollback triggers for CloudFormation to monitor
// during stack creation and updating operations, and for the specified monitoring
// period afterwards.
type RollbackConfiguration struct {
	_ struct{} `type:"structure"`

	MonitoringTimeInMinutes *int64 `locationName:"MonitoringTimeInMinutes" max:"180" type:"integer"`

	RollbackTriggers []*RollbackTrigger `locationName:"RollbackTriggers" max:"5" type:"list"`
}

// String returns the string representation.
func (s *RollbackConfiguration) String() string {
	return shape.String(s)
}

// GoString returns the string representation.
func (s *RollbackConfiguration) GoString() string {
	return s.String()
}

// Equal returns true if o holds the same values as s.
func (s *RollbackConfiguration) Equal(o *RollbackConfiguration) bool {
	return shape.Equal(s, o)
}

// Hash returns a hash code consistent with Equal.
func (s *RollbackConfiguration) Hash() int32 {
	return shape.Hash(s)
}

// Validate inspects the fields of the type to determine if they are valid.
func (s *RollbackConfiguration) Validate() error {
	return shape.Validate(s)
}

// SetMonitoringTimeInMinutes sets the MonitoringTimeInMinutes field's value.
func (s *RollbackConfiguration) SetMonitoringTimeInMinutes(v int64) *RollbackConfiguration {
	s.MonitoringTimeInMinutes = &v
	return s
}

// SetRollbackTriggers sets the RollbackTriggers field's value to a copy of v.
func (s *RollbackConfiguration) SetRollbackTriggers(v []*RollbackTrigger) *RollbackConfiguration {
	s.RollbackTriggers = shape.Copy(v)
	return s
}

// AppendRollbackTriggers appends v to the RollbackTriggers field's value.
func (s *RollbackConfiguration) AppendRollbackTriggers(v ...*RollbackTrigger) *RollbackConfiguration {
	s.RollbackTriggers = shape.Append(s.RollbackTriggers, v...)
	return s
}

// StackDriftInformation contains information about whether the stack's actual
// configuration differs from its expected template configuration.
type StackDriftInformation struct {
	_ struct{} `type:"structure"`

	LastCheckTimestamp *time.Time `locationName:"LastCheckTimestamp" type:"timestamp"`

	StackDriftStatus StackDriftStatus `locationName:"StackDriftStatus" type:"string" required:"true" enum:"StackDriftStatus"`
}

// String returns the string representation.
func (s *StackDriftInformation) String() string {
	return shape.String(s)
}

// GoString returns the string representation.
func (s *StackDriftInformation) GoString() string {
	return s.String()
}

// Equal returns true if o holds the same values as s.
func (s *StackDriftInformation) Equal(o *StackDriftInformation) bool {
	return shape.Equal(s, o)
}

// Hash returns a hash code consistent with Equal.
func (s *StackDriftInformation) Hash() int32 {
	return shape.Hash(s)
}

// SetLastCheckTimestamp sets the LastCheckTimestamp field's value.
func (s *StackDriftInformation) SetLastCheckTimestamp(v time.Time) *StackDriftInformation {
	s.LastCheckTimestamp = &v
	return s
}

// SetStackDriftStatus sets the StackDriftStatus field's value.
func (s *StackDriftInformation) SetStackDriftStatus(v StackDriftStatus) *StackDriftInformation {
	s.StackDriftStatus = v
	return s
}

// Stack is the description of a stack.
type Stack struct {
	_ struct{} `type:"structure"`

	StackId *string `locationName:"StackId" type:"string"`

	StackName *string `locationName:"StackName" type:"string" required:"true"`

	ChangeSetId *string `locationName:"ChangeSetId" min:"1" pattern:"arn:[-a-zA-Z0-9:/]*" type:"string"`

	Description *string `locationName:"Description" min:"1" max:"1024" type:"string"`

	Parameters []*Parameter `locationName:"Parameters" type:"list"`

	CreationTime *time.Time `locationName:"CreationTime" type:"timestamp" required:"true"`

	DeletionTime *time.Time `locationName:"DeletionTime" type:"timestamp"`

	LastUpdatedTime *time.Time `locationName:"LastUpdatedTime" type:"timestamp"`

	RollbackConfiguration *RollbackConfiguration `locationName:"RollbackConfiguration" type:"structure"`

	StackStatus StackStatus `locationName:"StackStatus" type:"string" required:"true" enum:"StackStatus"`

	StackStatusReason *string `locationName:"StackStatusReason" type:"string"`

	DisableRollback *bool `locationName:"DisableRollback" type:"boolean"`

	NotificationARNs []*string `locationName:"NotificationARNs" max:"5" type:"list"`

	TimeoutInMinutes *int64 `locationName:"TimeoutInMinutes" min:"1" type:"integer"`

	Capabilities []Capability `locationName:"Capabilities" type:"list" enum:"Capability"`

	Outputs []*Output `locationName:"Outputs" type:"list"`

	RoleARN *string `locationName:"RoleARN" min:"20" max:"2048" type:"string"`

	Tags []*Tag `locationName:"Tags" max:"50" type:"list"`

	EnableTerminationProtection *bool `locationName:"EnableTerminationProtection" type:"boolean"`

	// For nested stacks, the stack ID of the direct parent of this stack.
	ParentId *string `locationName:"ParentId" type:"string"`

	// For nested stacks, the stack ID of the top-level stack to which the nested
	// stack ultimately belongs.
	RootId *string `locationName:"RootId" type:"string"`

	DriftInformation *StackDriftInformation `locationName:"DriftInformation" type:"structure"`
}

// String returns the string representation.
func (s *Stack) String() string {
	return shape.String(s)
}

// GoString returns the string representation.
func (s *Stack) GoString() string {
	return s.String()
}

// Equal returns true if o holds the same values as s.
func (s *Stack) Equal(o *Stack) bool {
	return shape.Equal(s, o)
}

// Hash returns a hash code consistent with Equal.
func (s *Stack) Hash() int32 {
	return shape.Hash(s)
}

// SetStackId sets the StackId field's value.
func (s *Stack) SetStackId(v string) *Stack {
	s.StackId = &v
	return s
}

// SetStackName sets the StackName field's value.
func (s *Stack) SetStackName(v string) *Stack {
	s.StackName = &v
	return s
}

// SetChangeSetId sets the ChangeSetId field's value.
func (s *Stack) SetChangeSetId(v string) *Stack {
	s.ChangeSetId = &v
	return s
}

// SetDescription sets the Description field's value.
func (s *Stack) SetDescription(v string) *Stack {
	s.Description = &v
	return s
}

// SetParameters sets the Parameters field's value to a copy of v.
func (s *Stack) SetParameters(v []*Parameter) *Stack {
	s.Parameters = shape.Copy(v)
	return s
}

// AppendParameters appends v to the Parameters field's value.
func (s *Stack) AppendParameters(v ...*Parameter) *Stack {
	s.Parameters = shape.Append(s.Parameters, v...)
	return s
}

// SetCreationTime sets the CreationTime field's value.
func (s *Stack) SetCreationTime(v time.Time) *Stack {
	s.CreationTime = &v
	return s
}

// SetDeletionTime sets the DeletionTime field's value.
func (s *Stack) SetDeletionTime(v time.Time) *Stack {
	s.DeletionTime = &v
	return s
}

// SetLastUpdatedTime sets the LastUpdatedTime field's value.
func (s *Stack) SetLastUpdatedTime(v time.Time) *Stack {
	s.LastUpdatedTime = &v
	return s
}

// SetRollbackConfiguration sets the RollbackConfiguration field's value.
func (s *Stack) SetRollbackConfiguration(v *RollbackConfiguration) *Stack {
	s.RollbackConfiguration = v
	return s
}

// SetStackStatus sets the StackStatus field's value.
func (s *Stack) SetStackStatus(v StackStatus) *Stack {
	s.StackStatus = v
	return s
}

// SetStackStatusReason sets the StackStatusReason field's value.
func (s *Stack) SetStackStatusReason(v string) *Stack {
	s.StackStatusReason = &v
	return s
}

// SetDisableRollback sets the DisableRollback field's value.
func (s *Stack) SetDisableRollback(v bool) *Stack {
	s.DisableRollback = &v
	return s
}

// SetNotificationARNs sets the NotificationARNs field's value to a copy of v.
func (s *Stack) SetNotificationARNs(v []*string) *Stack {
	s.NotificationARNs = shape.CopyStrings(v)
	return s
}

// AppendNotificationARNs appends v to the NotificationARNs field's value.
func (s *Stack) AppendNotificationARNs(v ...string) *Stack {
	s.NotificationARNs = shape.AppendStrings(s.NotificationARNs, v...)
	return s
}

// SetTimeoutInMinutes sets the TimeoutInMinutes field's value.
func (s *Stack) SetTimeoutInMinutes(v int64) *Stack {
	s.TimeoutInMinutes = &v
	return s
}

// SetCapabilities sets the Capabilities field's value to a copy of v.
func (s *Stack) SetCapabilities(v []Capability) *Stack {
	s.Capabilities = shape.Copy(v)
	return s
}

// AppendCapabilities appends v to the Capabilities field's value.
func (s *Stack) AppendCapabilities(v ...Capability) *Stack {
	s.Capabilities = shape.Append(s.Capabilities, v...)
	return s
}

// SetOutputs sets the Outputs field's value to a copy of v.
func (s *Stack) SetOutputs(v []*Output) *Stack {
	s.Outputs = shape.Copy(v)
	return s
}

// AppendOutputs appends v to the Outputs field's value.
func (s *Stack) AppendOutputs(v ...*Output) *Stack {
	s.Outputs = shape.Append(s.Outputs, v...)
	return s
}

// SetRoleARN sets the RoleARN field's value.
func (s *Stack) SetRoleARN(v string) *Stack {
	s.RoleARN = &v
	return s
}

// SetTags sets the Tags field's value to a copy of v.
func (s *Stack) SetTags(v []*Tag) *Stack {
	s.Tags = shape.Copy(v)
	return s
}

// AppendTags appends v to the Tags field's value.
func (s *Stack) AppendTags(v ...*Tag) *Stack {
	s.Tags = shape.Append(s.Tags, v...)
	return s
}

// SetEnableTerminationProtection sets the EnableTerminationProtection field's value.
func (s *Stack) SetEnableTerminationProtection(v bool) *Stack {
	s.EnableTerminationProtection = &v
	return s
}

// SetParentId sets the ParentId field's value.
func (s *Stack) SetParentId(v string) *Stack {
	s.ParentId = &v
	return s
}

// SetRootId sets the RootId field's value.
func (s *Stack) SetRootId(v string) *Stack {
	s.RootId = &v
	return s
}

// SetDriftInformation sets the DriftInformation field's value.
func (s *Stack) SetDriftInformation(v *StackDriftInformation) *Stack {
	s.DriftInformation = v
	return s
}
