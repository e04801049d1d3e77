// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cloudformation

import (
	"github.com/aws/cfn-shapes/internal/pkg/shape"
)

// ContinueUpdateRollbackInput continues rolling back a stack that is in the
// UPDATE_ROLLBACK_FAILED state to the UPDATE_ROLLBACK_COMPLETE state.
type ContinueUpdateRollbackInput struct {
	_ struct{} `type:"structure"`

	// The name or the unique ID of the stack that you want to continue rolling
	// back.
	StackName *string `locationName:"StackName" min:"1" pattern:"([a-zA-Z][-a-zA-Z0-9]*)|(arn:\\b(aws|aws-us-gov|aws-cn)\\b:[-a-zA-Z0-9:/._+]*)" type:"string" required:"true"`

	RoleARN *string `locationName:"RoleARN" min:"20" max:"2048" type:"string"`

	// A list of the logical IDs of the resources that CloudFormation skips during
	// the continue update rollback operation. Skipped resources are marked
	// UPDATE_COMPLETE.
	ResourcesToSkip []*string `locationName:"ResourcesToSkip" type:"list"`

	// A unique identifier for this request. Retries of the same request must
	// reuse the token.
	ClientRequestToken *string `locationName:"ClientRequestToken" min:"1" max:"128" pattern:"[a-zA-Z0-9][-a-zA-Z0-9]*" type:"string"`
}

// String returns the string representation.
func (s *ContinueUpdateRollbackInput) String() string {
	return shape.String(s)
}

// GoString returns the string representation.
func (s *ContinueUpdateRollbackInput) GoString() string {
	return s.String()
}

// Equal returns true if o holds the same values as s.
func (s *ContinueUpdateRollbackInput) Equal(o *ContinueUpdateRollbackInput) bool {
	return shape.Equal(s, o)
}

// Hash returns a hash code consistent with Equal.
func (s *ContinueUpdateRollbackInput) Hash() int32 {
	return shape.Hash(s)
}

// Validate inspects the fields of the type to determine if they are valid.
func (s *ContinueUpdateRollbackInput) Validate() error {
	return shape.Validate(s)
}

// OperationName returns the name of the API operation the input is sent to.
func (s *ContinueUpdateRollbackInput) OperationName() string {
	return opContinueUpdateRollback
}

// SetStackName sets the StackName field's value.
func (s *ContinueUpdateRollbackInput) SetStackName(v string) *ContinueUpdateRollbackInput {
	s.StackName = &v
	return s
}

// SetRoleARN sets the RoleARN field's value.
func (s *ContinueUpdateRollbackInput) SetRoleARN(v string) *ContinueUpdateRollbackInput {
	s.RoleARN = &v
	return s
}

// SetResourcesToSkip sets the ResourcesToSkip field's value to a copy of v.
func (s *ContinueUpdateRollbackInput) SetResourcesToSkip(v []*string) *ContinueUpdateRollbackInput {
	s.ResourcesToSkip = shape.CopyStrings(v)
	return s
}

// AppendResourcesToSkip appends v to the ResourcesToSkip field's value.
func (s *ContinueUpdateRollbackInput) AppendResourcesToSkip(v ...string) *ContinueUpdateRollbackInput {
	s.ResourcesToSkip = shape.AppendStrings(s.ResourcesToSkip, v...)
	return s
}

// SetClientRequestToken sets the ClientRequestToken field's value.
func (s *ContinueUpdateRollbackInput) SetClientRequestToken(v string) *ContinueUpdateRollbackInput {
	s.ClientRequestToken = &v
	return s
}

// ContinueUpdateRollbackOutput is the empty result of a ContinueUpdateRollback call.
type ContinueUpdateRollbackOutput struct {
	_ struct{} `type:"structure"`
}

// String returns the string representation.
func (s *ContinueUpdateRollbackOutput) String() string {
	return shape.String(s)
}

// GoString returns the string representation.
func (s *ContinueUpdateRollbackOutput) GoString() string {
	return s.String()
}

// Equal returns true if o holds the same values as s.
func (s *ContinueUpdateRollbackOutput) Equal(o *ContinueUpdateRollbackOutput) bool {
	return shape.Equal(s, o)
}

// Hash returns a hash code consistent with Equal.
func (s *ContinueUpdateRollbackOutput) Hash() int32 {
	return shape.Hash(s)
}

// CreateStackInput creates a stack from a template.
type CreateStackInput struct {
	_ struct{} `type:"structure"`

	StackName *string `locationName:"StackName" type:"string" required:"true"`

	TemplateBody *string `locationName:"TemplateBody" min:"1" type:"string"`

	TemplateURL *string `locationName:"TemplateURL" min:"1" max:"1024" type:"string"`

	Parameters []*Parameter `locationName:"Parameters" type:"list"`

	DisableRollback *bool `locationName:"DisableRollback" type:"boolean"`

	RollbackConfiguration *RollbackConfiguration `locationName:"RollbackConfiguration" type:"structure"`

	TimeoutInMinutes *int64 `locationName:"TimeoutInMinutes" min:"1" type:"integer"`

	NotificationARNs []*string `locationName:"NotificationARNs" max:"5" type:"list"`

	Capabilities []Capability `locationName:"Capabilities" type:"list" enum:"Capability"`

	ResourceTypes []*string `locationName:"ResourceTypes" type:"list"`

	RoleARN *string `locationName:"RoleARN" min:"20" max:"2048" type:"string"`

	// Determines what action is taken if stack creation fails. Specify either
	// OnFailure or DisableRollback, but not both.
	OnFailure OnFailure `locationName:"OnFailure" type:"string" enum:"OnFailure"`

	StackPolicyBody *string `locationName:"StackPolicyBody" min:"1" max:"16384" type:"string"`

	StackPolicyURL *string `locationName:"StackPolicyURL" min:"1" max:"1350" type:"string"`

	Tags []*Tag `locationName:"Tags" max:"50" type:"list"`

	ClientRequestToken *string `locationName:"ClientRequestToken" min:"1" max:"128" pattern:"[a-zA-Z0-9][-a-zA-Z0-9]*" type:"string"`

	EnableTerminationProtection *bool `locationName:"EnableTerminationProtection" type:"boolean"`
}

// String returns the string representation.
func (s *CreateStackInput) String() string {
	return shape.String(s)
}

// GoString returns the string representation.
func (s *CreateStackInput) GoString() string {
	return s.String()
}

// Equal returns true if o holds the same values as s.
func (s *CreateStackInput) Equal(o *CreateStackInput) bool {
	return shape.Equal(s, o)
}

// Hash returns a hash code consistent with Equal.
func (s *CreateStackInput) Hash() int32 {
	return shape.Hash(s)
}

// Validate inspects the fields of the type to determine if they are valid.
func (s *CreateStackInput) Validate() error {
	return shape.Validate(s)
}

// OperationName returns the name of the API operation the input is sent to.
func (s *CreateStackInput) OperationName() string {
	return opCreateStack
}

// SetStackName sets the StackName field's value.
func (s *CreateStackInput) SetStackName(v string) *CreateStackInput {
	s.StackName = &v
	return s
}

// SetTemplateBody sets the TemplateBody field's value.
func (s *CreateStackInput) SetTemplateBody(v string) *CreateStackInput {
	s.TemplateBody = &v
	return s
}

// SetTemplateURL sets the TemplateURL field's value.
func (s *CreateStackInput) SetTemplateURL(v string) *CreateStackInput {
	s.TemplateURL = &v
	return s
}

// SetParameters sets the Parameters field's value to a copy of v.
func (s *CreateStackInput) SetParameters(v []*Parameter) *CreateStackInput {
	s.Parameters = shape.Copy(v)
	return s
}

// AppendParameters appends v to the Parameters field's value.
func (s *CreateStackInput) AppendParameters(v ...*Parameter) *CreateStackInput {
	s.Parameters = shape.Append(s.Parameters, v...)
	return s
}

// SetDisableRollback sets the DisableRollback field's value.
func (s *CreateStackInput) SetDisableRollback(v bool) *CreateStackInput {
	s.DisableRollback = &v
	return s
}

// SetRollbackConfiguration sets the RollbackConfiguration field's value.
func (s *CreateStackInput) SetRollbackConfiguration(v *RollbackConfiguration) *CreateStackInput {
	s.RollbackConfiguration = v
	return s
}

// SetTimeoutInMinutes sets the TimeoutInMinutes field's value.
func (s *CreateStackInput) SetTimeoutInMinutes(v int64) *CreateStackInput {
	s.TimeoutInMinutes = &v
	return s
}

// SetNotificationARNs sets the NotificationARNs field's value to a copy of v.
func (s *CreateStackInput) SetNotificationARNs(v []*string) *CreateStackInput {
	s.NotificationARNs = shape.CopyStrings(v)
	return s
}

// AppendNotificationARNs appends v to the NotificationARNs field's value.
func (s *CreateStackInput) AppendNotificationARNs(v ...string) *CreateStackInput {
	s.NotificationARNs = shape.AppendStrings(s.NotificationARNs, v...)
	return s
}

// SetCapabilities sets the Capabilities field's value to a copy of v.
func (s *CreateStackInput) SetCapabilities(v []Capability) *CreateStackInput {
	s.Capabilities = shape.Copy(v)
	return s
}

// AppendCapabilities appends v to the Capabilities field's value.
func (s *CreateStackInput) AppendCapabilities(v ...Capability) *CreateStackInput {
	s.Capabilities = shape.Append(s.Capabilities, v...)
	return s
}

// SetResourceTypes sets the ResourceTypes field's value to a copy of v.
func (s *CreateStackInput) SetResourceTypes(v []*string) *CreateStackInput {
	s.ResourceTypes = shape.CopyStrings(v)
	return s
}

// AppendResourceTypes appends v to the ResourceTypes field's value.
func (s *CreateStackInput) AppendResourceTypes(v ...string) *CreateStackInput {
	s.ResourceTypes = shape.AppendStrings(s.ResourceTypes, v...)
	return s
}

// SetRoleARN sets the RoleARN field's value.
func (s *CreateStackInput) SetRoleARN(v string) *CreateStackInput {
	s.RoleARN = &v
	return s
}

// SetOnFailure sets the OnFailure field's value.
func (s *CreateStackInput) SetOnFailure(v OnFailure) *CreateStackInput {
	s.OnFailure = v
	return s
}

// SetStackPolicyBody sets the StackPolicyBody field's value.
func (s *CreateStackInput) SetStackPolicyBody(v string) *CreateStackInput {
	s.StackPolicyBody = &v
	return s
}

// SetStackPolicyURL sets the StackPolicyURL field's value.
func (s *CreateStackInput) SetStackPolicyURL(v string) *CreateStackInput {
	s.StackPolicyURL = &v
	return s
}

// SetTags sets the Tags field's value to a copy of v.
func (s *CreateStackInput) SetTags(v []*Tag) *CreateStackInput {
	s.Tags = shape.Copy(v)
	return s
}

// AppendTags appends v to the Tags field's value.
func (s *CreateStackInput) AppendTags(v ...*Tag) *CreateStackInput {
	s.Tags = shape.Append(s.Tags, v...)
	return s
}

// SetClientRequestToken sets the ClientRequestToken field's value.
func (s *CreateStackInput) SetClientRequestToken(v string) *CreateStackInput {
	s.ClientRequestToken = &v
	return s
}

// SetEnableTerminationProtection sets the EnableTerminationProtection field's value.
func (s *CreateStackInput) SetEnableTerminationProtection(v bool) *CreateStackInput {
	s.EnableTerminationProtection = &v
	return s
}

// CreateStackOutput is the result of a CreateStack call.
type CreateStackOutput struct {
	_ struct{} `type:"structure"`

	StackId *string `locationName:"StackId" type:"string"`
}

// String returns the string representation.
func (s *CreateStackOutput) String() string {
	return shape.String(s)
}

// GoString returns the string representation.
func (s *CreateStackOutput) GoString() string {
	return s.String()
}

// Equal returns true if o holds the same values as s.
func (s *CreateStackOutput) Equal(o *CreateStackOutput) bool {
	return shape.Equal(s, o)
}

// Hash returns a hash code consistent with Equal.
func (s *CreateStackOutput) Hash() int32 {
	return shape.Hash(s)
}

// SetStackId sets the StackId field's value.
func (s *CreateStackOutput) SetStackId(v string) *CreateStackOutput {
	s.StackId = &v
	return s
}

// UpdateStackInput updates a stack as specified in the template.
type UpdateStackInput struct {
	_ struct{} `type:"structure"`

	StackName *string `locationName:"StackName" type:"string" required:"true"`

	TemplateBody *string `locationName:"TemplateBody" min:"1" type:"string"`

	TemplateURL *string `locationName:"TemplateURL" min:"1" max:"1024" type:"string"`

	UsePreviousTemplate *bool `locationName:"UsePreviousTemplate" type:"boolean"`

	StackPolicyDuringUpdateBody *string `locationName:"StackPolicyDuringUpdateBody" min:"1" max:"16384" type:"string"`

	StackPolicyDuringUpdateURL *string `locationName:"StackPolicyDuringUpdateURL" min:"1" max:"1350" type:"string"`

	Parameters []*Parameter `locationName:"Parameters" type:"list"`

	Capabilities []Capability `locationName:"Capabilities" type:"list" enum:"Capability"`

	ResourceTypes []*string `locationName:"ResourceTypes" type:"list"`

	RoleARN *string `locationName:"RoleARN" min:"20" max:"2048" type:"string"`

	RollbackConfiguration *RollbackConfiguration `locationName:"RollbackConfiguration" type:"structure"`

	StackPolicyBody *string `locationName:"StackPolicyBody" min:"1" max:"16384" type:"string"`

	StackPolicyURL *string `locationName:"StackPolicyURL" min:"1" max:"1350" type:"string"`

	NotificationARNs []*string `locationName:"NotificationARNs" max:"5" type:"list"`

	Tags []*Tag `locationName:"Tags" max:"50" type:"list"`

	ClientRequestToken *string `locationName:"ClientRequestToken" min:"1" max:"128" pattern:"[a-zA-Z0-9][-a-zA-Z0-9]*" type:"string"`
}

// String returns the string representation.
func (s *UpdateStackInput) String() string {
	return shape.String(s)
}

// GoString returns the string representation.
func (s *UpdateStackInput) GoString() string {
	return s.String()
}

// Equal returns true if o holds the same values as s.
func (s *UpdateStackInput) Equal(o *UpdateStackInput) bool {
	return shape.Equal(s, o)
}

// Hash returns a hash code consistent with Equal.
func (s *UpdateStackInput) Hash() int32 {
	return shape.Hash(s)
}

// Validate inspects the fields of the type to determine if they are valid.
func (s *UpdateStackInput) Validate() error {
	return shape.Validate(s)
}

// OperationName returns the name of the API operation the input is sent to.
func (s *UpdateStackInput) OperationName() string {
	return opUpdateStack
}

// SetStackName sets the StackName field's value.
func (s *UpdateStackInput) SetStackName(v string) *UpdateStackInput {
	s.StackName = &v
	return s
}

// SetTemplateBody sets the TemplateBody field's value.
func (s *UpdateStackInput) SetTemplateBody(v string) *UpdateStackInput {
	s.TemplateBody = &v
	return s
}

// SetTemplateURL sets the TemplateURL field's value.
func (s *UpdateStackInput) SetTemplateURL(v string) *UpdateStackInput {
	s.TemplateURL = &v
	return s
}

// SetUsePreviousTemplate sets the UsePreviousTemplate field's value.
func (s *UpdateStackInput) SetUsePreviousTemplate(v bool) *UpdateStackInput {
	s.UsePreviousTemplate = &v
	return s
}

// SetStackPolicyDuringUpdateBody sets the StackPolicyDuringUpdateBody field's value.
func (s *UpdateStackInput) SetStackPolicyDuringUpdateBody(v string) *UpdateStackInput {
	s.StackPolicyDuringUpdateBody = &v
	return s
}

// SetStackPolicyDuringUpdateURL sets the StackPolicyDuringUpdateURL field's value.
func (s *UpdateStackInput) SetStackPolicyDuringUpdateURL(v string) *UpdateStackInput {
	s.StackPolicyDuringUpdateURL = &v
	return s
}

// SetParameters sets the Parameters field's value to a copy of v.
func (s *UpdateStackInput) SetParameters(v []*Parameter) *UpdateStackInput {
	s.Parameters = shape.Copy(v)
	return s
}

// AppendParameters appends v to the Parameters field's value.
func (s *UpdateStackInput) AppendParameters(v ...*Parameter) *UpdateStackInput {
	s.Parameters = shape.Append(s.Parameters, v...)
	return s
}

// SetCapabilities sets the Capabilities field's value to a copy of v.
func (s *UpdateStackInput) SetCapabilities(v []Capability) *UpdateStackInput {
	s.Capabilities = shape.Copy(v)
	return s
}

// AppendCapabilities appends v to the Capabilities field's value.
func (s *UpdateStackInput) AppendCapabilities(v ...Capability) *UpdateStackInput {
	s.Capabilities = shape.Append(s.Capabilities, v...)
	return s
}

// SetResourceTypes sets the ResourceTypes field's value to a copy of v.
func (s *UpdateStackInput) SetResourceTypes(v []*string) *UpdateStackInput {
	s.ResourceTypes = shape.CopyStrings(v)
	return s
}

// AppendResourceTypes appends v to the ResourceTypes field's value.
func (s *UpdateStackInput) AppendResourceTypes(v ...string) *UpdateStackInput {
	s.ResourceTypes = shape.AppendStrings(s.ResourceTypes, v...)
	return s
}

// SetRoleARN sets the RoleARN field's value.
func (s *UpdateStackInput) SetRoleARN(v string) *UpdateStackInput {
	s.RoleARN = &v
	return s
}

// SetRollbackConfiguration sets the RollbackConfiguration field's value.
func (s *UpdateStackInput) SetRollbackConfiguration(v *RollbackConfiguration) *UpdateStackInput {
	s.RollbackConfiguration = v
	return s
}

// SetStackPolicyBody sets the StackPolicyBody field's value.
func (s *UpdateStackInput) SetStackPolicyBody(v string) *UpdateStackInput {
	s.StackPolicyBody = &v
	return s
}

// SetStackPolicyURL sets the StackPolicyURL field's value.
func (s *UpdateStackInput) SetStackPolicyURL(v string) *UpdateStackInput {
	s.StackPolicyURL = &v
	return s
}

// SetNotificationARNs sets the NotificationARNs field's value to a copy of v.
func (s *UpdateStackInput) SetNotificationARNs(v []*string) *UpdateStackInput {
	s.NotificationARNs = shape.CopyStrings(v)
	return s
}

// AppendNotificationARNs appends v to the NotificationARNs field's value.
func (s *UpdateStackInput) AppendNotificationARNs(v ...string) *UpdateStackInput {
	s.NotificationARNs = shape.AppendStrings(s.NotificationARNs, v...)
	return s
}

// SetTags sets the Tags field's value to a copy of v.
func (s *UpdateStackInput) SetTags(v []*Tag) *UpdateStackInput {
	s.Tags = shape.Copy(v)
	return s
}

// AppendTags appends v to the Tags field's value.
func (s *UpdateStackInput) AppendTags(v ...*Tag) *UpdateStackInput {
	s.Tags = shape.Append(s.Tags, v...)
	return s
}

// SetClientRequestToken sets the ClientRequestToken field's value.
func (s *UpdateStackInput) SetClientRequestToken(v string) *UpdateStackInput {
	s.ClientRequestToken = &v
	return s
}

// UpdateStackOutput is the result of an UpdateStack call.
type UpdateStackOutput struct {
	_ struct{} `type:"structure"`

	StackId *string `locationName:"StackId" type:"string"`
}

// String returns the string representation.
func (s *UpdateStackOutput) String() string {
	return shape.String(s)
}

// GoString returns the string representation.
func (s *UpdateStackOutput) GoString() string {
	return s.String()
}

// Equal returns true if o holds the same values as s.
func (s *UpdateStackOutput) Equal(o *UpdateStackOutput) bool {
	return shape.Equal(s, o)
}

// Hash returns a hash code consistent with Equal.
func (s *UpdateStackOutput) Hash() int32 {
	return shape.Hash(s)
}

// SetStackId sets the StackId field's value.
func (s *UpdateStackOutput) SetStackId(v string) *UpdateStackOutput {
	s.StackId = &v
	return s
}

// DescribeStacksInput returns the description of a single stack, or of all the
// stacks created by the account when StackName is omitted.
type DescribeStacksInput struct {
	_ struct{} `type:"structure"`

	StackName *string `locationName:"StackName" type:"string"`

	NextToken *string `locationName:"NextToken" min:"1" max:"1024" type:"string"`
}

// String returns the string representation.
func (s *DescribeStacksInput) String() string {
	return shape.String(s)
}

// GoString returns the string representation.
func (s *DescribeStacksInput) GoString() string {
	return s.String()
}

// Equal returns true if o holds the same values as s.
func (s *DescribeStacksInput) Equal(o *DescribeStacksInput) bool {
	return shape.Equal(s, o)
}

// Hash returns a hash code consistent with Equal.
func (s *DescribeStacksInput) Hash() int32 {
	return shape.Hash(s)
}

// Validate inspects the fields of the type to determine if they are valid.
func (s *DescribeStacksInput) Validate() error {
	return shape.Validate(s)
}

// OperationName returns the name of the API operation the input is sent to.
func (s *DescribeStacksInput) OperationName() string {
	return opDescribeStacks
}

// SetStackName sets the StackName field's value.
func (s *DescribeStacksInput) SetStackName(v string) *DescribeStacksInput {
	s.StackName = &v
	return s
}

// SetNextToken sets the NextToken field's value.
func (s *DescribeStacksInput) SetNextToken(v string) *DescribeStacksInput {
	s.NextToken = &v
	return s
}

// DescribeStacksOutput is a page of stacks.
type DescribeStacksOutput struct {
	_ struct{} `type:"structure"`

	Stacks []*Stack `locationName:"Stacks" type:"list"`

	NextToken *string `locationName:"NextToken" min:"1" max:"1024" type:"string"`
}

// String returns the string representation.
func (s *DescribeStacksOutput) String() string {
	return shape.String(s)
}

// GoString returns the string representation.
func (s *DescribeStacksOutput) GoString() string {
	return s.String()
}

// Equal returns true if o holds the same values as s.
func (s *DescribeStacksOutput) Equal(o *DescribeStacksOutput) bool {
	return shape.Equal(s, o)
}

// Hash returns a hash code consistent with Equal.
func (s *DescribeStacksOutput) Hash() int32 {
	return shape.Hash(s)
}

// SetStacks sets the Stacks field's value to a copy of v.
func (s *DescribeStacksOutput) SetStacks(v []*Stack) *DescribeStacksOutput {
	s.Stacks = shape.Copy(v)
	return s
}

// AppendStacks appends v to the Stacks field's value.
func (s *DescribeStacksOutput) AppendStacks(v ...*Stack) *DescribeStacksOutput {
	s.Stacks = shape.Append(s.Stacks, v...)
	return s
}

// SetNextToken sets the NextToken field's value.
func (s *DescribeStacksOutput) SetNextToken(v string) *DescribeStacksOutput {
	s.NextToken = &v
	return s
}
