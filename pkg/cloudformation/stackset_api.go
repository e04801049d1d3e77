// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cloudformation

import (
	"github.com/aws/cfn-shapes/internal/pkg/shape"
)

// CreateStackSetInput creates a stack set.
type CreateStackSetInput struct {
	_ struct{} `type:"structure"`

	StackSetName *string `locationName:"StackSetName" type:"string" required:"true"`

	Description *string `locationName:"Description" min:"1" max:"1024" type:"string"`

	TemplateBody *string `locationName:"TemplateBody" min:"1" type:"string"`

	TemplateURL *string `locationName:"TemplateURL" min:"1" max:"1024" type:"string"`

	Parameters []*Parameter `locationName:"Parameters" type:"list"`

	Capabilities []Capability `locationName:"Capabilities" type:"list" enum:"Capability"`

	Tags []*Tag `locationName:"Tags" max:"50" type:"list"`

	AdministrationRoleARN *string `locationName:"AdministrationRoleARN" min:"20" max:"2048" type:"string"`

	ExecutionRoleName *string `locationName:"ExecutionRoleName" min:"1" max:"64" pattern:"[a-zA-Z_0-9+=,.@-]+" type:"string"`

	PermissionModel PermissionModels `locationName:"PermissionModel" type:"string" enum:"PermissionModels"`

	AutoDeployment *AutoDeployment `locationName:"AutoDeployment" type:"structure"`

	ClientRequestToken *string `locationName:"ClientRequestToken" min:"1" max:"128" pattern:"[a-zA-Z0-9][-a-zA-Z0-9]*" type:"string"`
}

// String returns the string representation.
func (s *CreateStackSetInput) String() string {
	return shape.String(s)
}

// GoString returns the string representation.
func (s *CreateStackSetInput) GoString() string {
	return s.String()
}

// Equal returns true if o holds the same values as s.
func (s *CreateStackSetInput) Equal(o *CreateStackSetInput) bool {
	return shape.Equal(s, o)
}

// Hash returns a hash code consistent with Equal.
func (s *CreateStackSetInput) Hash() int32 {
	return shape.Hash(s)
}

// Validate inspects the fields of the type to determine if they are valid.
func (s *CreateStackSetInput) Validate() error {
	return shape.Validate(s)
}

// OperationName returns the name of the API operation the input is sent to.
func (s *CreateStackSetInput) OperationName() string {
	return opCreateStackSet
}

// SetStackSetName sets the StackSetName field's value.
func (s *CreateStackSetInput) SetStackSetName(v string) *CreateStackSetInput {
	s.StackSetName = &v
	return s
}

// SetDescription sets the Description field's value.
func (s *CreateStackSetInput) SetDescription(v string) *CreateStackSetInput {
	s.Description = &v
	return s
}

// SetTemplateBody sets the TemplateBody field's value.
func (s *CreateStackSetInput) SetTemplateBody(v string) *CreateStackSetInput {
	s.TemplateBody = &v
	return s
}

// SetTemplateURL sets the TemplateURL field's value.
func (s *CreateStackSetInput) SetTemplateURL(v string) *CreateStackSetInput {
	s.TemplateURL = &v
	return s
}

// SetParameters sets the Parameters field's value to a copy of v.
func (s *CreateStackSetInput) SetParameters(v []*Parameter) *CreateStackSetInput {
	s.Parameters = shape.Copy(v)
	return s
}

// AppendParameters appends v to the Parameters field's value.
func (s *CreateStackSetInput) AppendParameters(v ...*Parameter) *CreateStackSetInput {
	s.Parameters = shape.Append(s.Parameters, v...)
	return s
}

// SetCapabilities sets the Capabilities field's value to a copy of v.
func (s *CreateStackSetInput) SetCapabilities(v []Capability) *CreateStackSetInput {
	s.Capabilities = shape.Copy(v)
	return s
}

// AppendCapabilities appends v to the Capabilities field's value.
func (s *CreateStackSetInput) AppendCapabilities(v ...Capability) *CreateStackSetInput {
	s.Capabilities = shape.Append(s.Capabilities, v...)
	return s
}

// SetTags sets the Tags field's value to a copy of v.
func (s *CreateStackSetInput) SetTags(v []*Tag) *CreateStackSetInput {
	s.Tags = shape.Copy(v)
	return s
}

// AppendTags appends v to the Tags field's value.
func (s *CreateStackSetInput) AppendTags(v ...*Tag) *CreateStackSetInput {
	s.Tags = shape.Append(s.Tags, v...)
	return s
}

// SetAdministrationRoleARN sets the AdministrationRoleARN field's value.
func (s *CreateStackSetInput) SetAdministrationRoleARN(v string) *CreateStackSetInput {
	s.AdministrationRoleARN = &v
	return s
}

// SetExecutionRoleName sets the ExecutionRoleName field's value.
func (s *CreateStackSetInput) SetExecutionRoleName(v string) *CreateStackSetInput {
	s.ExecutionRoleName = &v
	return s
}

// SetPermissionModel sets the PermissionModel field's value.
func (s *CreateStackSetInput) SetPermissionModel(v PermissionModels) *CreateStackSetInput {
	s.PermissionModel = v
	return s
}

// SetAutoDeployment sets the AutoDeployment field's value.
func (s *CreateStackSetInput) SetAutoDeployment(v *AutoDeployment) *CreateStackSetInput {
	s.AutoDeployment = v
	return s
}

// SetClientRequestToken sets the ClientRequestToken field's value.
func (s *CreateStackSetInput) SetClientRequestToken(v string) *CreateStackSetInput {
	s.ClientRequestToken = &v
	return s
}

// CreateStackSetOutput is the result of a CreateStackSet call.
type CreateStackSetOutput struct {
	_ struct{} `type:"structure"`

	StackSetId *string `locationName:"StackSetId" type:"string"`
}

// String returns the string representation.
func (s *CreateStackSetOutput) String() string {
	return shape.String(s)
}

// GoString returns the string representation.
func (s *CreateStackSetOutput) GoString() string {
	return s.String()
}

// Equal returns true if o holds the same values as s.
func (s *CreateStackSetOutput) Equal(o *CreateStackSetOutput) bool {
	return shape.Equal(s, o)
}

// Hash returns a hash code consistent with Equal.
func (s *CreateStackSetOutput) Hash() int32 {
	return shape.Hash(s)
}

// SetStackSetId sets the StackSetId field's value.
func (s *CreateStackSetOutput) SetStackSetId(v string) *CreateStackSetOutput {
	s.StackSetId = &v
	return s
}

// UpdateStackSetInput updates the stack set and, optionally, the associated
// stack instances in the given accounts and regions.
type UpdateStackSetInput struct {
	_ struct{} `type:"structure"`

	StackSetName *string `locationName:"StackSetName" type:"string" required:"true"`

	Description *string `locationName:"Description" min:"1" max:"1024" type:"string"`

	TemplateBody *string `locationName:"TemplateBody" min:"1" type:"string"`

	TemplateURL *string `locationName:"TemplateURL" min:"1" max:"1024" type:"string"`

	UsePreviousTemplate *bool `locationName:"UsePreviousTemplate" type:"boolean"`

	Parameters []*Parameter `locationName:"Parameters" type:"list"`

	Capabilities []Capability `locationName:"Capabilities" type:"list" enum:"Capability"`

	Tags []*Tag `locationName:"Tags" max:"50" type:"list"`

	OperationPreferences *StackSetOperationPreferences `locationName:"OperationPreferences" type:"structure"`

	AdministrationRoleARN *string `locationName:"AdministrationRoleARN" min:"20" max:"2048" type:"string"`

	ExecutionRoleName *string `locationName:"ExecutionRoleName" min:"1" max:"64" pattern:"[a-zA-Z_0-9+=,.@-]+" type:"string"`

	DeploymentTargets *DeploymentTargets `locationName:"DeploymentTargets" type:"structure"`

	PermissionModel PermissionModels `locationName:"PermissionModel" type:"string" enum:"PermissionModels"`

	AutoDeployment *AutoDeployment `locationName:"AutoDeployment" type:"structure"`

	// The unique ID for this stack set operation. Repeating an operation with the
	// same ID is a no-op.
	OperationId *string `locationName:"OperationId" min:"1" max:"128" pattern:"[a-zA-Z0-9][-a-zA-Z0-9]*" type:"string"`

	Accounts []*string `locationName:"Accounts" type:"list"`

	Regions []*string `locationName:"Regions" type:"list"`
}

// String returns the string representation.
func (s *UpdateStackSetInput) String() string {
	return shape.String(s)
}

// GoString returns the string representation.
func (s *UpdateStackSetInput) GoString() string {
	return s.String()
}

// Equal returns true if o holds the same values as s.
func (s *UpdateStackSetInput) Equal(o *UpdateStackSetInput) bool {
	return shape.Equal(s, o)
}

// Hash returns a hash code consistent with Equal.
func (s *UpdateStackSetInput) Hash() int32 {
	return shape.Hash(s)
}

// Validate inspects the fields of the type to determine if they are valid.
func (s *UpdateStackSetInput) Validate() error {
	return shape.Validate(s)
}

// OperationName returns the name of the API operation the input is sent to.
func (s *UpdateStackSetInput) OperationName() string {
	return opUpdateStackSet
}

// SetStackSetName sets the StackSetName field's value.
func (s *UpdateStackSetInput) SetStackSetName(v string) *UpdateStackSetInput {
	s.StackSetName = &v
	return s
}

// SetDescription sets the Description field's value.
func (s *UpdateStackSetInput) SetDescription(v string) *UpdateStackSetInput {
	s.Description = &v
	return s
}

// SetTemplateBody sets the TemplateBody field's value.
func (s *UpdateStackSetInput) SetTemplateBody(v string) *UpdateStackSetInput {
	s.TemplateBody = &v
	return s
}

// SetTemplateURL sets the TemplateURL field's value.
func (s *UpdateStackSetInput) SetTemplateURL(v string) *UpdateStackSetInput {
	s.TemplateURL = &v
	return s
}

// SetUsePreviousTemplate sets the UsePreviousTemplate field's value.
func (s *UpdateStackSetInput) SetUsePreviousTemplate(v bool) *UpdateStackSetInput {
	s.UsePreviousTemplate = &v
	return s
}

// SetParameters sets the Parameters field's value to a copy of v.
func (s *UpdateStackSetInput) SetParameters(v []*Parameter) *UpdateStackSetInput {
	s.Parameters = shape.Copy(v)
	return s
}

// AppendParameters appends v to the Parameters field's value.
func (s *UpdateStackSetInput) AppendParameters(v ...*Parameter) *UpdateStackSetInput {
	s.Parameters = shape.Append(s.Parameters, v...)
	return s
}

// SetCapabilities sets the Capabilities field's value to a copy of v.
func (s *UpdateStackSetInput) SetCapabilities(v []Capability) *UpdateStackSetInput {
	s.Capabilities = shape.Copy(v)
	return s
}

// AppendCapabilities appends v to the Capabilities field's value.
func (s *UpdateStackSetInput) AppendCapabilities(v ...Capability) *UpdateStackSetInput {
	s.Capabilities = shape.Append(s.Capabilities, v...)
	return s
}

// SetTags sets the Tags field's value to a copy of v.
func (s *UpdateStackSetInput) SetTags(v []*Tag) *UpdateStackSetInput {
	s.Tags = shape.Copy(v)
	return s
}

// AppendTags appends v to the Tags field's value.
func (s *UpdateStackSetInput) AppendTags(v ...*Tag) *UpdateStackSetInput {
	s.Tags = shape.Append(s.Tags, v...)
	return s
}

// SetOperationPreferences sets the OperationPreferences field's value.
func (s *UpdateStackSetInput) SetOperationPreferences(v *StackSetOperationPreferences) *UpdateStackSetInput {
	s.OperationPreferences = v
	return s
}

// SetAdministrationRoleARN sets the AdministrationRoleARN field's value.
func (s *UpdateStackSetInput) SetAdministrationRoleARN(v string) *UpdateStackSetInput {
	s.AdministrationRoleARN = &v
	return s
}

// SetExecutionRoleName sets the ExecutionRoleName field's value.
func (s *UpdateStackSetInput) SetExecutionRoleName(v string) *UpdateStackSetInput {
	s.ExecutionRoleName = &v
	return s
}

// SetDeploymentTargets sets the DeploymentTargets field's value.
func (s *UpdateStackSetInput) SetDeploymentTargets(v *DeploymentTargets) *UpdateStackSetInput {
	s.DeploymentTargets = v
	return s
}

// SetPermissionModel sets the PermissionModel field's value.
func (s *UpdateStackSetInput) SetPermissionModel(v PermissionModels) *UpdateStackSetInput {
	s.PermissionModel = v
	return s
}

// SetAutoDeployment sets the AutoDeployment field's value.
func (s *UpdateStackSetInput) SetAutoDeployment(v *AutoDeployment) *UpdateStackSetInput {
	s.AutoDeployment = v
	return s
}

// SetOperationId sets the OperationId field's value.
func (s *UpdateStackSetInput) SetOperationId(v string) *UpdateStackSetInput {
	s.OperationId = &v
	return s
}

// SetAccounts sets the Accounts field's value to a copy of v.
func (s *UpdateStackSetInput) SetAccounts(v []*string) *UpdateStackSetInput {
	s.Accounts = shape.CopyStrings(v)
	return s
}

// AppendAccounts appends v to the Accounts field's value.
func (s *UpdateStackSetInput) AppendAccounts(v ...string) *UpdateStackSetInput {
	s.Accounts = shape.AppendStrings(s.Accounts, v...)
	return s
}

// SetRegions sets the Regions field's value to a copy of v.
func (s *UpdateStackSetInput) SetRegions(v []*string) *UpdateStackSetInput {
	s.Regions = shape.CopyStrings(v)
	return s
}

// AppendRegions appends v to the Regions field's value.
func (s *UpdateStackSetInput) AppendRegions(v ...string) *UpdateStackSetInput {
	s.Regions = shape.AppendStrings(s.Regions, v...)
	return s
}

// UpdateStackSetOutput is the result of an UpdateStackSet call.
type UpdateStackSetOutput struct {
	_ struct{} `type:"structure"`

	OperationId *string `locationName:"OperationId" min:"1" max:"128" pattern:"[a-zA-Z0-9][-a-zA-Z0-9]*" type:"string"`
}

// String returns the string representation.
func (s *UpdateStackSetOutput) String() string {
	return shape.String(s)
}

// GoString returns the string representation.
func (s *UpdateStackSetOutput) GoString() string {
	return s.String()
}

// Equal returns true if o holds the same values as s.
func (s *UpdateStackSetOutput) Equal(o *UpdateStackSetOutput) bool {
	return shape.Equal(s, o)
}

// Hash returns a hash code consistent with Equal.
func (s *UpdateStackSetOutput) Hash() int32 {
	return shape.Hash(s)
}

// SetOperationId sets the OperationId field's value.
func (s *UpdateStackSetOutput) SetOperationId(v string) *UpdateStackSetOutput {
	s.OperationId = &v
	return s
}

// UpdateStackInstancesInput updates the parameter values of stack instances for
// the given accounts within the given regions.
type UpdateStackInstancesInput struct {
	_ struct{} `type:"structure"`

	StackSetName *string `locationName:"StackSetName" type:"string" required:"true"`

	Accounts []*string `locationName:"Accounts" type:"list"`

	DeploymentTargets *DeploymentTargets `locationName:"DeploymentTargets" type:"structure"`

	Regions []*string `locationName:"Regions" type:"list" required:"true"`

	ParameterOverrides []*Parameter `locationName:"ParameterOverrides" type:"list"`

	OperationPreferences *StackSetOperationPreferences `locationName:"OperationPreferences" type:"structure"`

	OperationId *string `locationName:"OperationId" min:"1" max:"128" pattern:"[a-zA-Z0-9][-a-zA-Z0-9]*" type:"string"`
}

// String returns the string representation.
func (s *UpdateStackInstancesInput) String() string {
	return shape.String(s)
}

// GoString returns the string representation.
func (s *UpdateStackInstancesInput) GoString() string {
	return s.String()
}

// Equal returns true if o holds the same values as s.
func (s *UpdateStackInstancesInput) Equal(o *UpdateStackInstancesInput) bool {
	return shape.Equal(s, o)
}

// Hash returns a hash code consistent with Equal.
func (s *UpdateStackInstancesInput) Hash() int32 {
	return shape.Hash(s)
}

// Validate inspects the fields of the type to determine if they are valid.
func (s *UpdateStackInstancesInput) Validate() error {
	return shape.Validate(s)
}

// OperationName returns the name of the API operation the input is sent to.
func (s *UpdateStackInstancesInput) OperationName() string {
	return opUpdateStackInstances
}

// SetStackSetName sets the StackSetName field's value.
func (s *UpdateStackInstancesInput) SetStackSetName(v string) *UpdateStackInstancesInput {
	s.StackSetName = &v
	return s
}

// SetAccounts sets the Accounts field's value to a copy of v.
func (s *UpdateStackInstancesInput) SetAccounts(v []*string) *UpdateStackInstancesInput {
	s.Accounts = shape.CopyStrings(v)
	return s
}

// AppendAccounts appends v to the Accounts field's value.
func (s *UpdateStackInstancesInput) AppendAccounts(v ...string) *UpdateStackInstancesInput {
	s.Accounts = shape.AppendStrings(s.Accounts, v...)
	return s
}

// SetDeploymentTargets sets the DeploymentTargets field's value.
func (s *UpdateStackInstancesInput) SetDeploymentTargets(v *DeploymentTargets) *UpdateStackInstancesInput {
	s.DeploymentTargets = v
	return s
}

// SetRegions sets the Regions field's value to a copy of v.
func (s *UpdateStackInstancesInput) SetRegions(v []*string) *UpdateStackInstancesInput {
	s.Regions = shape.CopyStrings(v)
	return s
}

// AppendRegions appends v to the Regions field's value.
func (s *UpdateStackInstancesInput) AppendRegions(v ...string) *UpdateStackInstancesInput {
	s.Regions = shape.AppendStrings(s.Regions, v...)
	return s
}

// SetParameterOverrides sets the ParameterOverrides field's value to a copy of v.
func (s *UpdateStackInstancesInput) SetParameterOverrides(v []*Parameter) *UpdateStackInstancesInput {
	s.ParameterOverrides = shape.Copy(v)
	return s
}

// AppendParameterOverrides appends v to the ParameterOverrides field's value.
func (s *UpdateStackInstancesInput) AppendParameterOverrides(v ...*Parameter) *UpdateStackInstancesInput {
	s.ParameterOverrides = shape.Append(s.ParameterOverrides, v...)
	return s
}

// SetOperationPreferences sets the OperationPreferences field's value.
func (s *UpdateStackInstancesInput) SetOperationPreferences(v *StackSetOperationPreferences) *UpdateStackInstancesInput {
	s.OperationPreferences = v
	return s
}

// SetOperationId sets the OperationId field's value.
func (s *UpdateStackInstancesInput) SetOperationId(v string) *UpdateStackInstancesInput {
	s.OperationId = &v
	return s
}

// UpdateStackInstancesOutput is the result of an UpdateStackInstances call.
type UpdateStackInstancesOutput struct {
	_ struct{} `type:"structure"`

	OperationId *string `locationName:"OperationId" min:"1" max:"128" pattern:"[a-zA-Z0-9][-a-zA-Z0-9]*" type:"string"`
}

// String returns the string representation.
func (s *UpdateStackInstancesOutput) String() string {
	return shape.String(s)
}

// GoString returns the string representation.
func (s *UpdateStackInstancesOutput) GoString() string {
	return s.String()
}

// Equal returns true if o holds the same values as s.
func (s *UpdateStackInstancesOutput) Equal(o *UpdateStackInstancesOutput) bool {
	return shape.Equal(s, o)
}

// Hash returns a hash code consistent with Equal.
func (s *UpdateStackInstancesOutput) Hash() int32 {
	return shape.Hash(s)
}

// SetOperationId sets the OperationId field's value.
func (s *UpdateStackInstancesOutput) SetOperationId(v string) *UpdateStackInstancesOutput {
	s.OperationId = &v
	return s
}

// DescribeStackSetOperationInput describes a stack set operation.
type DescribeStackSetOperationInput struct {
	_ struct{} `type:"structure"`

	StackSetName *string `locationName:"StackSetName" type:"string" required:"true"`

	OperationId *string `locationName:"OperationId" min:"1" max:"128" pattern:"[a-zA-Z0-9][-a-zA-Z0-9]*" type:"string" required:"true"`
}

// String returns the string representation.
func (s *DescribeStackSetOperationInput) String() string {
	return shape.String(s)
}

// GoString returns the string representation.
func (s *DescribeStackSetOperationInput) GoString() string {
	return s.String()
}

// Equal returns true if o holds the same values as s.
func (s *DescribeStackSetOperationInput) Equal(o *DescribeStackSetOperationInput) bool {
	return shape.Equal(s, o)
}

// Hash returns a hash code consistent with Equal.
func (s *DescribeStackSetOperationInput) Hash() int32 {
	return shape.Hash(s)
}

// Validate inspects the fields of the type to determine if they are valid.
func (s *DescribeStackSetOperationInput) Validate() error {
	return shape.Validate(s)
}

// OperationName returns the name of the API operation the input is sent to.
func (s *DescribeStackSetOperationInput) OperationName() string {
	return opDescribeStackSetOperation
}

// SetStackSetName sets the StackSetName field's value.
func (s *DescribeStackSetOperationInput) SetStackSetName(v string) *DescribeStackSetOperationInput {
	s.StackSetName = &v
	return s
}

// SetOperationId sets the OperationId field's value.
func (s *DescribeStackSetOperationInput) SetOperationId(v string) *DescribeStackSetOperationInput {
	s.OperationId = &v
	return s
}

// DescribeStackSetOperationOutput is the result of a DescribeStackSetOperation call.
type DescribeStackSetOperationOutput struct {
	_ struct{} `type:"structure"`

	StackSetOperation *StackSetOperation `locationName:"StackSetOperation" type:"structure"`
}

// String returns the string representation.
func (s *DescribeStackSetOperationOutput) String() string {
	return shape.String(s)
}

// GoString returns the string representation.
func (s *DescribeStackSetOperationOutput) GoString() string {
	return s.String()
}

// Equal returns true if o holds the same values as s.
func (s *DescribeStackSetOperationOutput) Equal(o *DescribeStackSetOperationOutput) bool {
	return shape.Equal(s, o)
}

// Hash returns a hash code consistent with Equal.
func (s *DescribeStackSetOperationOutput) Hash() int32 {
	return shape.Hash(s)
}

// SetStackSetOperation sets the StackSetOperation field's value.
func (s *DescribeStackSetOperationOutput) SetStackSetOperation(v *StackSetOperation) *DescribeStackSetOperationOutput {
	s.StackSetOperation = v
	return s
}

// ListStackInstancesInput lists the stack instances of a stack set.
type ListStackInstancesInput struct {
	_ struct{} `type:"structure"`

	StackSetName *string `locationName:"StackSetName" type:"string" required:"true"`

	NextToken *string `locationName:"NextToken" min:"1" max:"1024" type:"string"`

	MaxResults *int64 `locationName:"MaxResults" min:"1" max:"100" type:"integer"`

	Filters []*StackInstanceFilter `locationName:"Filters" max:"1" type:"list"`

	StackInstanceAccount *string `locationName:"StackInstanceAccount" type:"string"`

	StackInstanceRegion *string `locationName:"StackInstanceRegion" type:"string"`
}

// String returns the string representation.
func (s *ListStackInstancesInput) String() string {
	return shape.String(s)
}

// GoString returns the string representation.
func (s *ListStackInstancesInput) GoString() string {
	return s.String()
}

// Equal returns true if o holds the same values as s.
func (s *ListStackInstancesInput) Equal(o *ListStackInstancesInput) bool {
	return shape.Equal(s, o)
}

// Hash returns a hash code consistent with Equal.
func (s *ListStackInstancesInput) Hash() int32 {
	return shape.Hash(s)
}

// Validate inspects the fields of the type to determine if they are valid.
func (s *ListStackInstancesInput) Validate() error {
	return shape.Validate(s)
}

// OperationName returns the name of the API operation the input is sent to.
func (s *ListStackInstancesInput) OperationName() string {
	return opListStackInstances
}

// SetStackSetName sets the StackSetName field's value.
func (s *ListStackInstancesInput) SetStackSetName(v string) *ListStackInstancesInput {
	s.StackSetName = &v
	return s
}

// SetNextToken sets the NextToken field's value.
func (s *ListStackInstancesInput) SetNextToken(v string) *ListStackInstancesInput {
	s.NextToken = &v
	return s
}

// SetMaxResults sets the MaxResults field's value.
func (s *ListStackInstancesInput) SetMaxResults(v int64) *ListStackInstancesInput {
	s.MaxResults = &v
	return s
}

// SetFilters sets the Filters field's value to a copy of v.
func (s *ListStackInstancesInput) SetFilters(v []*StackInstanceFilter) *ListStackInstancesInput {
	s.Filters = shape.Copy(v)
	return s
}

// AppendFilters appends v to the Filters field's value.
func (s *ListStackInstancesInput) AppendFilters(v ...*StackInstanceFilter) *ListStackInstancesInput {
	s.Filters = shape.Append(s.Filters, v...)
	return s
}

// SetStackInstanceAccount sets the StackInstanceAccount field's value.
func (s *ListStackInstancesInput) SetStackInstanceAccount(v string) *ListStackInstancesInput {
	s.StackInstanceAccount = &v
	return s
}

// SetStackInstanceRegion sets the StackInstanceRegion field's value.
func (s *ListStackInstancesInput) SetStackInstanceRegion(v string) *ListStackInstancesInput {
	s.StackInstanceRegion = &v
	return s
}

// ListStackInstancesOutput is a page of stack instance summaries.
type ListStackInstancesOutput struct {
	_ struct{} `type:"structure"`

	Summaries []*StackInstanceSummary `locationName:"Summaries" type:"list"`

	NextToken *string `locationName:"NextToken" min:"1" max:"1024" type:"string"`
}

// String returns the string representation.
func (s *ListStackInstancesOutput) String() string {
	return shape.String(s)
}

// GoString returns the string representation.
func (s *ListStackInstancesOutput) GoString() string {
	return s.String()
}

// Equal returns true if o holds the same values as s.
func (s *ListStackInstancesOutput) Equal(o *ListStackInstancesOutput) bool {
	return shape.Equal(s, o)
}

// Hash returns a hash code consistent with Equal.
func (s *ListStackInstancesOutput) Hash() int32 {
	return shape.Hash(s)
}

// SetSummaries sets the Summaries field's value to a copy of v.
func (s *ListStackInstancesOutput) SetSummaries(v []*StackInstanceSummary) *ListStackInstancesOutput {
	s.Summaries = shape.Copy(v)
	return s
}

// AppendSummaries appends v to the Summaries field's value.
func (s *ListStackInstancesOutput) AppendSummaries(v ...*StackInstanceSummary) *ListStackInstancesOutput {
	s.Summaries = shape.Append(s.Summaries, v...)
	return s
}

// SetNextToken sets the NextToken field's value.
func (s *ListStackInstancesOutput) SetNextToken(v string) *ListStackInstancesOutput {
	s.NextToken = &v
	return s
}
