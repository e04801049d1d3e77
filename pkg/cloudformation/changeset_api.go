// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cloudformation

import (
	"time"

	"github.com/aws/cfn-shapes/internal/pkg/shape"
)

// CreateChangeSetInput creates a list of changes that will be applied to a stack
// so that they can be reviewed before being executed.
type CreateChangeSetInput struct {
	_ struct{} `type:"structure"`

	StackName *string `locationName:"StackName" min:"1" type:"string" required:"true"`

	TemplateBody *string `locationName:"TemplateBody" min:"1" type:"string"`

	TemplateURL *string `locationName:"TemplateURL" min:"1" max:"1024" type:"string"`

	UsePreviousTemplate *bool `locationName:"UsePreviousTemplate" type:"boolean"`

	Parameters []*Parameter `locationName:"Parameters" type:"list"`

	Capabilities []Capability `locationName:"Capabilities" type:"list" enum:"Capability"`

	ResourceTypes []*string `locationName:"ResourceTypes" type:"list"`

	RoleARN *string `locationName:"RoleARN" min:"20" max:"2048" type:"string"`

	RollbackConfiguration *RollbackConfiguration `locationName:"RollbackConfiguration" type:"structure"`

	NotificationARNs []*string `locationName:"NotificationARNs" max:"5" type:"list"`

	Tags []*Tag `locationName:"Tags" max:"50" type:"list"`

	ChangeSetName *string `locationName:"ChangeSetName" min:"1" max:"128" pattern:"[a-zA-Z][-a-zA-Z0-9]*" type:"string" required:"true"`

	ClientToken *string `locationName:"ClientToken" min:"1" max:"128" type:"string"`

	Description *string `locationName:"Description" min:"1" max:"1024" type:"string"`

	// The type of change set operation. Use CREATE for a stack that doesn't exist
	// yet and IMPORT to bring existing resources under management.
	ChangeSetType ChangeSetType `locationName:"ChangeSetType" type:"string" enum:"ChangeSetType"`

	ResourcesToImport []*ResourceToImport `locationName:"ResourcesToImport" max:"200" type:"list"`
}

// String returns the string representation.
func (s *CreateChangeSetInput) String() string {
	return shape.String(s)
}

// GoString returns the string representation.
func (s *CreateChangeSetInput) GoString() string {
	return s.String()
}

// Equal returns true if o holds the same values as s.
func (s *CreateChangeSetInput) Equal(o *CreateChangeSetInput) bool {
	return shape.Equal(s, o)
}

// Hash returns a hash code consistent with Equal.
func (s *CreateChangeSetInput) Hash() int32 {
	return shape.Hash(s)
}

// Validate inspects the fields of the type to determine if they are valid.
func (s *CreateChangeSetInput) Validate() error {
	return shape.Validate(s)
}

// OperationName returns the name of the API operation the input is sent to.
func (s *CreateChangeSetInput) OperationName() string {
	return opCreateChangeSet
}

// SetStackName sets the StackName field's value.
func (s *CreateChangeSetInput) SetStackName(v string) *CreateChangeSetInput {
	s.StackName = &v
	return s
}

// SetTemplateBody sets the TemplateBody field's value.
func (s *CreateChangeSetInput) SetTemplateBody(v string) *CreateChangeSetInput {
	s.TemplateBody = &v
	return s
}

// SetTemplateURL sets the TemplateURL field's value.
func (s *CreateChangeSetInput) SetTemplateURL(v string) *CreateChangeSetInput {
	s.TemplateURL = &v
	return s
}

// SetUsePreviousTemplate sets the UsePreviousTemplate field's value.
func (s *CreateChangeSetInput) SetUsePreviousTemplate(v bool) *CreateChangeSetInput {
	s.UsePreviousTemplate = &v
	return s
}

// SetParameters sets the Parameters field's value to a copy of v.
func (s *CreateChangeSetInput) SetParameters(v []*Parameter) *CreateChangeSetInput {
	s.Parameters = shape.Copy(v)
	return s
}

// AppendParameters appends v to the Parameters field's value.
func (s *CreateChangeSetInput) AppendParameters(v ...*Parameter) *CreateChangeSetInput {
	s.Parameters = shape.Append(s.Parameters, v...)
	return s
}

// SetCapabilities sets the Capabilities field's value to a copy of v.
func (s *CreateChangeSetInput) SetCapabilities(v []Capability) *CreateChangeSetInput {
	s.Capabilities = shape.Copy(v)
	return s
}

// AppendCapabilities appends v to the Capabilities field's value.
func (s *CreateChangeSetInput) AppendCapabilities(v ...Capability) *CreateChangeSetInput {
	s.Capabilities = shape.Append(s.Capabilities, v...)
	return s
}

// SetResourceTypes sets the ResourceTypes field's value to a copy of v.
func (s *CreateChangeSetInput) SetResourceTypes(v []*string) *CreateChangeSetInput {
	s.ResourceTypes = shape.CopyStrings(v)
	return s
}

// AppendResourceTypes appends v to the ResourceTypes field's value.
func (s *CreateChangeSetInput) AppendResourceTypes(v ...string) *CreateChangeSetInput {
	s.ResourceTypes = shape.AppendStrings(s.ResourceTypes, v...)
	return s
}

// SetRoleARN sets the RoleARN field's value.
func (s *CreateChangeSetInput) SetRoleARN(v string) *CreateChangeSetInput {
	s.RoleARN = &v
	return s
}

// SetRollbackConfiguration sets the RollbackConfiguration field's value.
func (s *CreateChangeSetInput) SetRollbackConfiguration(v *RollbackConfiguration) *CreateChangeSetInput {
	s.RollbackConfiguration = v
	return s
}

// SetNotificationARNs sets the NotificationARNs field's value to a copy of v.
func (s *CreateChangeSetInput) SetNotificationARNs(v []*string) *CreateChangeSetInput {
	s.NotificationARNs = shape.CopyStrings(v)
	return s
}

// AppendNotificationARNs appends v to the NotificationARNs field's value.
func (s *CreateChangeSetInput) AppendNotificationARNs(v ...string) *CreateChangeSetInput {
	s.NotificationARNs = shape.AppendStrings(s.NotificationARNs, v...)
	return s
}

// SetTags sets the Tags field's value to a copy of v.
func (s *CreateChangeSetInput) SetTags(v []*Tag) *CreateChangeSetInput {
	s.Tags = shape.Copy(v)
	return s
}

// AppendTags appends v to the Tags field's value.
func (s *CreateChangeSetInput) AppendTags(v ...*Tag) *CreateChangeSetInput {
	s.Tags = shape.Append(s.Tags, v...)
	return s
}

// SetChangeSetName sets the ChangeSetName field's value.
func (s *CreateChangeSetInput) SetChangeSetName(v string) *CreateChangeSetInput {
	s.ChangeSetName = &v
	return s
}

// SetClientToken sets the ClientToken field's value.
func (s *CreateChangeSetInput) SetClientToken(v string) *CreateChangeSetInput {
	s.ClientToken = &v
	return s
}

// SetDescription sets the Description field's value.
func (s *CreateChangeSetInput) SetDescription(v string) *CreateChangeSetInput {
	s.Description = &v
	return s
}

// SetChangeSetType sets the ChangeSetType field's value.
func (s *CreateChangeSetInput) SetChangeSetType(v ChangeSetType) *CreateChangeSetInput {
	s.ChangeSetType = v
	return s
}

// SetResourcesToImport sets the ResourcesToImport field's value to a copy of v.
func (s *CreateChangeSetInput) SetResourcesToImport(v []*ResourceToImport) *CreateChangeSetInput {
	s.ResourcesToImport = shape.Copy(v)
	return s
}

// AppendResourcesToImport appends v to the ResourcesToImport field's value.
func (s *CreateChangeSetInput) AppendResourcesToImport(v ...*ResourceToImport) *CreateChangeSetInput {
	s.ResourcesToImport = shape.Append(s.ResourcesToImport, v...)
	return s
}

// CreateChangeSetOutput is the result of a CreateChangeSet call.
type CreateChangeSetOutput struct {
	_ struct{} `type:"structure"`

	Id *string `locationName:"Id" min:"1" pattern:"arn:[-a-zA-Z0-9:/]*" type:"string"`

	StackId *string `locationName:"StackId" type:"string"`
}

// String returns the string representation.
func (s *CreateChangeSetOutput) String() string {
	return shape.String(s)
}

// GoString returns the string representation.
func (s *CreateChangeSetOutput) GoString() string {
	return s.String()
}

// Equal returns true if o holds the same values as s.
func (s *CreateChangeSetOutput) Equal(o *CreateChangeSetOutput) bool {
	return shape.Equal(s, o)
}

// Hash returns a hash code consistent with Equal.
func (s *CreateChangeSetOutput) Hash() int32 {
	return shape.Hash(s)
}

// SetId sets the Id field's value.
func (s *CreateChangeSetOutput) SetId(v string) *CreateChangeSetOutput {
	s.Id = &v
	return s
}

// SetStackId sets the StackId field's value.
func (s *CreateChangeSetOutput) SetStackId(v string) *CreateChangeSetOutput {
	s.StackId = &v
	return s
}

// DescribeChangeSetInput describes a change set and the changes it holds.
type DescribeChangeSetInput struct {
	_ struct{} `type:"structure"`

	ChangeSetName *string `locationName:"ChangeSetName" min:"1" max:"1600" pattern:"[a-zA-Z][-a-zA-Z:/0-9]*" type:"string" required:"true"`

	StackName *string `locationName:"StackName" min:"1" pattern:"([a-zA-Z][-a-zA-Z0-9]*)|(arn:\\b(aws|aws-us-gov|aws-cn)\\b:[-a-zA-Z0-9:/._+]*)" type:"string"`

	NextToken *string `locationName:"NextToken" min:"1" max:"1024" type:"string"`
}

// String returns the string representation.
func (s *DescribeChangeSetInput) String() string {
	return shape.String(s)
}

// GoString returns the string representation.
func (s *DescribeChangeSetInput) GoString() string {
	return s.String()
}

// Equal returns true if o holds the same values as s.
func (s *DescribeChangeSetInput) Equal(o *DescribeChangeSetInput) bool {
	return shape.Equal(s, o)
}

// Hash returns a hash code consistent with Equal.
func (s *DescribeChangeSetInput) Hash() int32 {
	return shape.Hash(s)
}

// Validate inspects the fields of the type to determine if they are valid.
func (s *DescribeChangeSetInput) Validate() error {
	return shape.Validate(s)
}

// OperationName returns the name of the API operation the input is sent to.
func (s *DescribeChangeSetInput) OperationName() string {
	return opDescribeChangeSet
}

// SetChangeSetName sets the ChangeSetName field's value.
func (s *DescribeChangeSetInput) SetChangeSetName(v string) *DescribeChangeSetInput {
	s.ChangeSetName = &v
	return s
}

// SetStackName sets the StackName field's value.
func (s *DescribeChangeSetInput) SetStackName(v string) *DescribeChangeSetInput {
	s.StackName = &v
	return s
}

// SetNextToken sets the NextToken field's value.
func (s *DescribeChangeSetInput) SetNextToken(v string) *DescribeChangeSetInput {
	s.NextToken = &v
	return s
}

// DescribeChangeSetOutput is a page of a change set description.
type DescribeChangeSetOutput struct {
	_ struct{} `type:"structure"`

	ChangeSetName *string `locationName:"ChangeSetName" min:"1" max:"128" pattern:"[a-zA-Z][-a-zA-Z0-9]*" type:"string"`

	ChangeSetId *string `locationName:"ChangeSetId" min:"1" pattern:"arn:[-a-zA-Z0-9:/]*" type:"string"`

	StackId *string `locationName:"StackId" type:"string"`

	StackName *string `locationName:"StackName" type:"string"`

	Description *string `locationName:"Description" min:"1" max:"1024" type:"string"`

	Parameters []*Parameter `locationName:"Parameters" type:"list"`

	CreationTime *time.Time `locationName:"CreationTime" type:"timestamp"`

	ExecutionStatus ExecutionStatus `locationName:"ExecutionStatus" type:"string" enum:"ExecutionStatus"`

	Status ChangeSetStatus `locationName:"Status" type:"string" enum:"ChangeSetStatus"`

	StatusReason *string `locationName:"StatusReason" type:"string"`

	NotificationARNs []*string `locationName:"NotificationARNs" max:"5" type:"list"`

	RollbackConfiguration *RollbackConfiguration `locationName:"RollbackConfiguration" type:"structure"`

	Capabilities []Capability `locationName:"Capabilities" type:"list" enum:"Capability"`

	Tags []*Tag `locationName:"Tags" max:"50" type:"list"`

	Changes []*Change `locationName:"Changes" type:"list"`

	NextToken *string `locationName:"NextToken" min:"1" max:"1024" type:"string"`

	IncludeNestedStacks *bool `locationName:"IncludeNestedStacks" type:"boolean"`

	ParentChangeSetId *string `locationName:"ParentChangeSetId" min:"1" pattern:"arn:[-a-zA-Z0-9:/]*" type:"string"`

	RootChangeSetId *string `locationName:"RootChangeSetId" min:"1" pattern:"arn:[-a-zA-Z0-9:/]*" type:"string"`
}

// String returns the string representation.
func (s *DescribeChangeSetOutput) String() string {
	return shape.String(s)
}

// GoString returns the string representation.
func (s *DescribeChangeSetOutput) GoString() string {
	return s.String()
}

// Equal returns true if o holds the same values as s.
func (s *DescribeChangeSetOutput) Equal(o *DescribeChangeSetOutput) bool {
	return shape.Equal(s, o)
}

// Hash returns a hash code consistent with Equal.
func (s *DescribeChangeSetOutput) Hash() int32 {
	return shape.Hash(s)
}

// SetChangeSetName sets the ChangeSetName field's value.
func (s *DescribeChangeSetOutput) SetChangeSetName(v string) *DescribeChangeSetOutput {
	s.ChangeSetName = &v
	return s
}

// SetChangeSetId sets the ChangeSetId field's value.
func (s *DescribeChangeSetOutput) SetChangeSetId(v string) *DescribeChangeSetOutput {
	s.ChangeSetId = &v
	return s
}

// SetStackId sets the StackId field's value.
func (s *DescribeChangeSetOutput) SetStackId(v string) *DescribeChangeSetOutput {
	s.StackId = &v
	return s
}

// SetStackName sets the StackName field's value.
func (s *DescribeChangeSetOutput) SetStackName(v string) *DescribeChangeSetOutput {
	s.StackName = &v
	return s
}

// SetDescription sets the Description field's value.
func (s *DescribeChangeSetOutput) SetDescription(v string) *DescribeChangeSetOutput {
	s.Description = &v
	return s
}

// SetParameters sets the Parameters field's value to a copy of v.
func (s *DescribeChangeSetOutput) SetParameters(v []*Parameter) *DescribeChangeSetOutput {
	s.Parameters = shape.Copy(v)
	return s
}

// AppendParameters appends v to the Parameters field's value.
func (s *DescribeChangeSetOutput) AppendParameters(v ...*Parameter) *DescribeChangeSetOutput {
	s.Parameters = shape.Append(s.Parameters, v...)
	return s
}

// SetCreationTime sets the CreationTime field's value.
func (s *DescribeChangeSetOutput) SetCreationTime(v time.Time) *DescribeChangeSetOutput {
	s.CreationTime = &v
	return s
}

// SetExecutionStatus sets the ExecutionStatus field's value.
func (s *DescribeChangeSetOutput) SetExecutionStatus(v ExecutionStatus) *DescribeChangeSetOutput {
	s.ExecutionStatus = v
	return s
}

// SetStatus sets the Status field's value.
func (s *DescribeChangeSetOutput) SetStatus(v ChangeSetStatus) *DescribeChangeSetOutput {
	s.Status = v
	return s
}

// SetStatusReason sets the StatusReason field's value.
func (s *DescribeChangeSetOutput) SetStatusReason(v string) *DescribeChangeSetOutput {
	s.StatusReason = &v
	return s
}

// SetNotificationARNs sets the NotificationARNs field's value to a copy of v.
func (s *DescribeChangeSetOutput) SetNotificationARNs(v []*string) *DescribeChangeSetOutput {
	s.NotificationARNs = shape.CopyStrings(v)
	return s
}

// AppendNotificationARNs appends v to the NotificationARNs field's value.
func (s *DescribeChangeSetOutput) AppendNotificationARNs(v ...string) *DescribeChangeSetOutput {
	s.NotificationARNs = shape.AppendStrings(s.NotificationARNs, v...)
	return s
}

// SetRollbackConfiguration sets the RollbackConfiguration field's value.
func (s *DescribeChangeSetOutput) SetRollbackConfiguration(v *RollbackConfiguration) *DescribeChangeSetOutput {
	s.RollbackConfiguration = v
	return s
}

// SetCapabilities sets the Capabilities field's value to a copy of v.
func (s *DescribeChangeSetOutput) SetCapabilities(v []Capability) *DescribeChangeSetOutput {
	s.Capabilities = shape.Copy(v)
	return s
}

// AppendCapabilities appends v to the Capabilities field's value.
func (s *DescribeChangeSetOutput) AppendCapabilities(v ...Capability) *DescribeChangeSetOutput {
	s.Capabilities = shape.Append(s.Capabilities, v...)
	return s
}

// SetTags sets the Tags field's value to a copy of v.
func (s *DescribeChangeSetOutput) SetTags(v []*Tag) *DescribeChangeSetOutput {
	s.Tags = shape.Copy(v)
	return s
}

// AppendTags appends v to the Tags field's value.
func (s *DescribeChangeSetOutput) AppendTags(v ...*Tag) *DescribeChangeSetOutput {
	s.Tags = shape.Append(s.Tags, v...)
	return s
}

// SetChanges sets the Changes field's value to a copy of v.
func (s *DescribeChangeSetOutput) SetChanges(v []*Change) *DescribeChangeSetOutput {
	s.Changes = shape.Copy(v)
	return s
}

// AppendChanges appends v to the Changes field's value.
func (s *DescribeChangeSetOutput) AppendChanges(v ...*Change) *DescribeChangeSetOutput {
	s.Changes = shape.Append(s.Changes, v...)
	return s
}

// SetNextToken sets the NextToken field's value.
func (s *DescribeChangeSetOutput) SetNextToken(v string) *DescribeChangeSetOutput {
	s.NextToken = &v
	return s
}

// SetIncludeNestedStacks sets the IncludeNestedStacks field's value.
func (s *DescribeChangeSetOutput) SetIncludeNestedStacks(v bool) *DescribeChangeSetOutput {
	s.IncludeNestedStacks = &v
	return s
}

// SetParentChangeSetId sets the ParentChangeSetId field's value.
func (s *DescribeChangeSetOutput) SetParentChangeSetId(v string) *DescribeChangeSetOutput {
	s.ParentChangeSetId = &v
	return s
}

// SetRootChangeSetId sets the RootChangeSetId field's value.
func (s *DescribeChangeSetOutput) SetRootChangeSetId(v string) *DescribeChangeSetOutput {
	s.RootChangeSetId = &v
	return s
}

// ExecuteChangeSetInput updates a stack using the changes of a change set.
type ExecuteChangeSetInput struct {
	_ struct{} `type:"structure"`

	ChangeSetName *string `locationName:"ChangeSetName" min:"1" max:"1600" pattern:"[a-zA-Z][-a-zA-Z:/0-9]*" type:"string" required:"true"`

	StackName *string `locationName:"StackName" min:"1" pattern:"([a-zA-Z][-a-zA-Z0-9]*)|(arn:\\b(aws|aws-us-gov|aws-cn)\\b:[-a-zA-Z0-9:/._+]*)" type:"string"`

	ClientRequestToken *string `locationName:"ClientRequestToken" min:"1" max:"128" pattern:"[a-zA-Z0-9][-a-zA-Z0-9]*" type:"string"`

	DisableRollback *bool `locationName:"DisableRollback" type:"boolean"`
}

// String returns the string representation.
func (s *ExecuteChangeSetInput) String() string {
	return shape.String(s)
}

// GoString returns the string representation.
func (s *ExecuteChangeSetInput) GoString() string {
	return s.String()
}

// Equal returns true if o holds the same values as s.
func (s *ExecuteChangeSetInput) Equal(o *ExecuteChangeSetInput) bool {
	return shape.Equal(s, o)
}

// Hash returns a hash code consistent with Equal.
func (s *ExecuteChangeSetInput) Hash() int32 {
	return shape.Hash(s)
}

// Validate inspects the fields of the type to determine if they are valid.
func (s *ExecuteChangeSetInput) Validate() error {
	return shape.Validate(s)
}

// OperationName returns the name of the API operation the input is sent to.
func (s *ExecuteChangeSetInput) OperationName() string {
	return opExecuteChangeSet
}

// SetChangeSetName sets the ChangeSetName field's value.
func (s *ExecuteChangeSetInput) SetChangeSetName(v string) *ExecuteChangeSetInput {
	s.ChangeSetName = &v
	return s
}

// SetStackName sets the StackName field's value.
func (s *ExecuteChangeSetInput) SetStackName(v string) *ExecuteChangeSetInput {
	s.StackName = &v
	return s
}

// SetClientRequestToken sets the ClientRequestToken field's value.
func (s *ExecuteChangeSetInput) SetClientRequestToken(v string) *ExecuteChangeSetInput {
	s.ClientRequestToken = &v
	return s
}

// SetDisableRollback sets the DisableRollback field's value.
func (s *ExecuteChangeSetInput) SetDisableRollback(v bool) *ExecuteChangeSetInput {
	s.DisableRollback = &v
	return s
}

// ExecuteChangeSetOutput is the empty result of an ExecuteChangeSet call.
type ExecuteChangeSetOutput struct {
	_ struct{} `type:"structure"`
}

// String returns the string representation.
func (s *ExecuteChangeSetOutput) String() string {
	return shape.String(s)
}

// GoString returns the string representation.
func (s *ExecuteChangeSetOutput) GoString() string {
	return s.String()
}

// Equal returns true if o holds the same values as s.
func (s *ExecuteChangeSetOutput) Equal(o *ExecuteChangeSetOutput) bool {
	return shape.Equal(s, o)
}

// Hash returns a hash code consistent with Equal.
func (s *ExecuteChangeSetOutput) Hash() int32 {
	return shape.Hash(s)
}
