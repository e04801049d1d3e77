// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cloudformation

import (
	"time"

	"github.com/aws/cfn-shapes/internal/pkg/shape"
)

// DeploymentTargets are the AWS Organizations accounts or organizational units
// to which a stack set operation applies.
type DeploymentTargets struct {
	_ struct{} `type:"structure"`

	Accounts []*string `locationName:"Accounts" type:"list"`

	AccountsUrl *string `locationName:"AccountsUrl" min:"1" max:"5120" pattern:"(s3://|http(s?)://).+" type:"string"`

	OrganizationalUnitIds []*string `locationName:"OrganizationalUnitIds" type:"list"`
}

// String returns the string representation.
func (s *DeploymentTargets) String() string {
	return shape.String(s)
}

// GoString returns the string representation.
func (s *DeploymentTargets) GoString() string {
	return s.String()
}

// Equal returns true if o holds the same values as s.
func (s *DeploymentTargets) Equal(o *DeploymentTargets) bool {
	return shape.Equal(s, o)
}

// Hash returns a hash code consistent with Equal.
func (s *DeploymentTargets) Hash() int32 {
	return shape.Hash(s)
}

// Validate inspects the fields of the type to determine if they are valid.
func (s *DeploymentTargets) Validate() error {
	return shape.Validate(s)
}

// SetAccounts sets the Accounts field's value to a copy of v.
func (s *DeploymentTargets) SetAccounts(v []*string) *DeploymentTargets {
	s.Accounts = shape.CopyStrings(v)
	return s
}

// AppendAccounts appends v to the Accounts field's value.
func (s *DeploymentTargets) AppendAccounts(v ...string) *DeploymentTargets {
	s.Accounts = shape.AppendStrings(s.Accounts, v...)
	return s
}

// SetAccountsUrl sets the AccountsUrl field's value.
func (s *DeploymentTargets) SetAccountsUrl(v string) *DeploymentTargets {
	s.AccountsUrl = &v
	return s
}

// SetOrganizationalUnitIds sets the OrganizationalUnitIds field's value to a copy of v.
func (s *DeploymentTargets) SetOrganizationalUnitIds(v []*string) *DeploymentTargets {
	s.OrganizationalUnitIds = shape.CopyStrings(v)
	return s
}

// AppendOrganizationalUnitIds appends v to the OrganizationalUnitIds field's value.
func (s *DeploymentTargets) AppendOrganizationalUnitIds(v ...string) *DeploymentTargets {
	s.OrganizationalUnitIds = shape.AppendStrings(s.OrganizationalUnitIds, v...)
	return s
}

// AutoDeployment describes whether stack instances are deployed to accounts added
// to a target organization or organizational unit.
type AutoDeployment struct {
	_ struct{} `type:"structure"`

	Enabled *bool `locationName:"Enabled" type:"boolean"`

	RetainStacksOnAccountRemoval *bool `locationName:"RetainStacksOnAccountRemoval" type:"boolean"`
}

// String returns the string representation.
func (s *AutoDeployment) String() string {
	return shape.String(s)
}

// GoString returns the string representation.
func (s *AutoDeployment) GoString() string {
	return s.String()
}

// Equal returns true if o holds the same values as s.
func (s *AutoDeployment) Equal(o *AutoDeployment) bool {
	return shape.Equal(s, o)
}

// Hash returns a hash code consistent with Equal.
func (s *AutoDeployment) Hash() int32 {
	return shape.Hash(s)
}

// Validate inspects the fields of the type to determine if they are valid.
func (s *AutoDeployment) Validate() error {
	return shape.Validate(s)
}

// SetEnabled sets the Enabled field's value.
func (s *AutoDeployment) SetEnabled(v bool) *AutoDeployment {
	s.Enabled = &v
	return s
}

// SetRetainStacksOnAccountRemoval sets the RetainStacksOnAccountRemoval field's value.
func (s *AutoDeployment) SetRetainStacksOnAccountRemoval(v bool) *AutoDeployment {
	s.RetainStacksOnAccountRemoval = &v
	return s
}

// StackSetOperationPreferences control how CloudFormation performs a stack set
// operation across regions and accounts.
type StackSetOperationPreferences struct {
	_ struct{} `type:"structure"`

	RegionConcurrencyType RegionConcurrencyType `locationName:"RegionConcurrencyType" type:"string" enum:"RegionConcurrencyType"`

	RegionOrder []*string `locationName:"RegionOrder" type:"list"`

	FailureToleranceCount *int64 `locationName:"FailureToleranceCount" min:"0" type:"integer"`

	FailureTolerancePercentage *int64 `locationName:"FailureTolerancePercentage" min:"0" max:"100" type:"integer"`

	MaxConcurrentCount *int64 `locationName:"MaxConcurrentCount" min:"1" type:"integer"`

	MaxConcurrentPercentage *int64 `locationName:"MaxConcurrentPercentage" min:"1" max:"100" type:"integer"`
}

// String returns the string representation.
func (s *StackSetOperationPreferences) String() string {
	return shape.String(s)
}

// GoString returns the string representation.
func (s *StackSetOperationPreferences) GoString() string {
	return s.String()
}

// Equal returns true if o holds the same values as s.
func (s *StackSetOperationPreferences) Equal(o *StackSetOperationPreferences) bool {
	return shape.Equal(s, o)
}

// Hash returns a hash code consistent with Equal.
func (s *StackSetOperationPreferences) Hash() int32 {
	return shape.Hash(s)
}

// Validate inspects the fields of the type to determine if they are valid.
func (s *StackSetOperationPreferences) Validate() error {
	return shape.Validate(s)
}

// SetRegionConcurrencyType sets the RegionConcurrencyType field's value.
func (s *StackSetOperationPreferences) SetRegionConcurrencyType(v RegionConcurrencyType) *StackSetOperationPreferences {
	s.RegionConcurrencyType = v
	return s
}

// SetRegionOrder sets the RegionOrder field's value to a copy of v.
func (s *StackSetOperationPreferences) SetRegionOrder(v []*string) *StackSetOperationPreferences {
	s.RegionOrder = shape.CopyStrings(v)
	return s
}

// AppendRegionOrder appends v to the RegionOrder field's value.
func (s *StackSetOperationPreferences) AppendRegionOrder(v ...string) *StackSetOperationPreferences {
	s.RegionOrder = shape.AppendStrings(s.RegionOrder, v...)
	return s
}

// SetFailureToleranceCount sets the FailureToleranceCount field's value.
func (s *StackSetOperationPreferences) SetFailureToleranceCount(v int64) *StackSetOperationPreferences {
	s.FailureToleranceCount = &v
	return s
}

// SetFailureTolerancePercentage sets the FailureTolerancePercentage field's value.
func (s *StackSetOperationPreferences) SetFailureTolerancePercentage(v int64) *StackSetOperationPreferences {
	s.FailureTolerancePercentage = &v
	return s
}

// SetMaxConcurrentCount sets the MaxConcurrentCount field's value.
func (s *StackSetOperationPreferences) SetMaxConcurrentCount(v int64) *StackSetOperationPreferences {
	s.MaxConcurrentCount = &v
	return s
}

// SetMaxConcurrentPercentage sets the MaxConcurrentPercentage field's value.
func (s *StackSetOperationPreferences) SetMaxConcurrentPercentage(v int64) *StackSetOperationPreferences {
	s.MaxConcurrentPercentage = &v
	return s
}

// StackSetDriftDetectionDetails holds the results of the last drift detection
// operation performed on a stack set.
type StackSetDriftDetectionDetails struct {
	_ struct{} `type:"structure"`

	DriftStatus StackSetDriftStatus `locationName:"DriftStatus" type:"string" enum:"StackSetDriftStatus"`

	DriftDetectionStatus StackSetDriftDetectionStatus `locationName:"DriftDetectionStatus" type:"string" enum:"StackSetDriftDetectionStatus"`

	LastDriftCheckTimestamp *time.Time `locationName:"LastDriftCheckTimestamp" type:"timestamp"`

	TotalStackInstancesCount *int64 `locationName:"TotalStackInstancesCount" min:"0" type:"integer"`

	DriftedStackInstancesCount *int64 `locationName:"DriftedStackInstancesCount" min:"0" type:"integer"`

	InSyncStackInstancesCount *int64 `locationName:"InSyncStackInstancesCount" min:"0" type:"integer"`

	InProgressStackInstancesCount *int64 `locationName:"InProgressStackInstancesCount" min:"0" type:"integer"`

	FailedStackInstancesCount *int64 `locationName:"FailedStackInstancesCount" min:"0" type:"integer"`
}

// String returns the string representation.
func (s *StackSetDriftDetectionDetails) String() string {
	return shape.String(s)
}

// GoString returns the string representation.
func (s *StackSetDriftDetectionDetails) GoString() string {
	return s.String()
}

// Equal returns true if o holds the same values as s.
func (s *StackSetDriftDetectionDetails) Equal(o *StackSetDriftDetectionDetails) bool {
	return shape.Equal(s, o)
}

// Hash returns a hash code consistent with Equal.
func (s *StackSetDriftDetectionDetails) Hash() int32 {
	return shape.Hash(s)
}

// SetDriftStatus sets the DriftStatus field's value.
func (s *StackSetDriftDetectionDetails) SetDriftStatus(v StackSetDriftStatus) *StackSetDriftDetectionDetails {
	s.DriftStatus = v
	return s
}

// SetDriftDetectionStatus sets the DriftDetectionStatus field's value.
func (s *StackSetDriftDetectionDetails) SetDriftDetectionStatus(v StackSetDriftDetectionStatus) *StackSetDriftDetectionDetails {
	s.DriftDetectionStatus = v
	return s
}

// SetLastDriftCheckTimestamp sets the LastDriftCheckTimestamp field's value.
func (s *StackSetDriftDetectionDetails) SetLastDriftCheckTimestamp(v time.Time) *StackSetDriftDetectionDetails {
	s.LastDriftCheckTimestamp = &v
	return s
}

// SetTotalStackInstancesCount sets the TotalStackInstancesCount field's value.
func (s *StackSetDriftDetectionDetails) SetTotalStackInstancesCount(v int64) *StackSetDriftDetectionDetails {
	s.TotalStackInstancesCount = &v
	return s
}

// SetDriftedStackInstancesCount sets the DriftedStackInstancesCount field's value.
func (s *StackSetDriftDetectionDetails) SetDriftedStackInstancesCount(v int64) *StackSetDriftDetectionDetails {
	s.DriftedStackInstancesCount = &v
	return s
}

// SetInSyncStackInstancesCount sets the InSyncStackInstancesCount field's value.
func (s *StackSetDriftDetectionDetails) SetInSyncStackInstancesCount(v int64) *StackSetDriftDetectionDetails {
	s.InSyncStackInstancesCount = &v
	return s
}

// SetInProgressStackInstancesCount sets the InProgressStackInstancesCount field's value.
func (s *StackSetDriftDetectionDetails) SetInProgressStackInstancesCount(v int64) *StackSetDriftDetectionDetails {
	s.InProgressStackInstancesCount = &v
	return s
}

// SetFailedStackInstancesCount sets the FailedStackInstancesCount field's value.
func (s *StackSetDriftDetectionDetails) SetFailedStackInstancesCount(v int64) *StackSetDriftDetectionDetails {
	s.FailedStackInstancesCount = &v
	return s
}

// StackSet is a set of stacks deployed from a single template across accounts
// and regions.
type StackSet struct {
	_ struct{} `type:"structure"`

	StackSetName *string `locationName:"StackSetName" type:"string"`

	StackSetId *string `locationName:"StackSetId" type:"string"`

	Description *string `locationName:"Description" min:"1" max:"1024" type:"string"`

	Status StackSetStatus `locationName:"Status" type:"string" enum:"StackSetStatus"`

	TemplateBody *string `locationName:"TemplateBody" min:"1" type:"string"`

	Parameters []*Parameter `locationName:"Parameters" type:"list"`

	Capabilities []Capability `locationName:"Capabilities" type:"list" enum:"Capability"`

	Tags []*Tag `locationName:"Tags" max:"50" type:"list"`

	StackSetARN *string `locationName:"StackSetARN" type:"string"`

	AdministrationRoleARN *string `locationName:"AdministrationRoleARN" min:"20" max:"2048" type:"string"`

	ExecutionRoleName *string `locationName:"ExecutionRoleName" min:"1" max:"64" pattern:"[a-zA-Z_0-9+=,.@-]+" type:"string"`

	StackSetDriftDetectionDetails *StackSetDriftDetectionDetails `locationName:"StackSetDriftDetectionDetails" type:"structure"`

	AutoDeployment *AutoDeployment `locationName:"AutoDeployment" type:"structure"`

	PermissionModel PermissionModels `locationName:"PermissionModel" type:"string" enum:"PermissionModels"`

	OrganizationalUnitIds []*string `locationName:"OrganizationalUnitIds" type:"list"`
}

// String returns the string representation.
func (s *StackSet) String() string {
	return shape.String(s)
}

// GoString returns the string representation.
func (s *StackSet) GoString() string {
	return s.String()
}

// Equal returns true if o holds the same values as s.
func (s *StackSet) Equal(o *StackSet) bool {
	return shape.Equal(s, o)
}

// Hash returns a hash code consistent with Equal.
func (s *StackSet) Hash() int32 {
	return shape.Hash(s)
}

// SetStackSetName sets the StackSetName field's value.
func (s *StackSet) SetStackSetName(v string) *StackSet {
	s.StackSetName = &v
	return s
}

// SetStackSetId sets the StackSetId field's value.
func (s *StackSet) SetStackSetId(v string) *StackSet {
	s.StackSetId = &v
	return s
}

// SetDescription sets the Description field's value.
func (s *StackSet) SetDescription(v string) *StackSet {
	s.Description = &v
	return s
}

// SetStatus sets the Status field's value.
func (s *StackSet) SetStatus(v StackSetStatus) *StackSet {
	s.Status = v
	return s
}

// SetTemplateBody sets the TemplateBody field's value.
func (s *StackSet) SetTemplateBody(v string) *StackSet {
	s.TemplateBody = &v
	return s
}

// SetParameters sets the Parameters field's value to a copy of v.
func (s *StackSet) SetParameters(v []*Parameter) *StackSet {
	s.Parameters = shape.Copy(v)
	return s
}

// AppendParameters appends v to the Parameters field's value.
func (s *StackSet) AppendParameters(v ...*Parameter) *StackSet {
	s.Parameters = shape.Append(s.Parameters, v...)
	return s
}

// SetCapabilities sets the Capabilities field's value to a copy of v.
func (s *StackSet) SetCapabilities(v []Capability) *StackSet {
	s.Capabilities = shape.Copy(v)
	return s
}

// AppendCapabilities appends v to the Capabilities field's value.
func (s *StackSet) AppendCapabilities(v ...Capability) *StackSet {
	s.Capabilities = shape.Append(s.Capabilities, v...)
	return s
}

// SetTags sets the Tags field's value to a copy of v.
func (s *StackSet) SetTags(v []*Tag) *StackSet {
	s.Tags = shape.Copy(v)
	return s
}

// AppendTags appends v to the Tags field's value.
func (s *StackSet) AppendTags(v ...*Tag) *StackSet {
	s.Tags = shape.Append(s.Tags, v...)
	return s
}

// SetStackSetARN sets the StackSetARN field's value.
func (s *StackSet) SetStackSetARN(v string) *StackSet {
	s.StackSetARN = &v
	return s
}

// SetAdministrationRoleARN sets the AdministrationRoleARN field's value.
func (s *StackSet) SetAdministrationRoleARN(v string) *StackSet {
	s.AdministrationRoleARN = &v
	return s
}

// SetExecutionRoleName sets the ExecutionRoleName field's value.
func (s *StackSet) SetExecutionRoleName(v string) *StackSet {
	s.ExecutionRoleName = &v
	return s
}

// SetStackSetDriftDetectionDetails sets the StackSetDriftDetectionDetails field's value.
func (s *StackSet) SetStackSetDriftDetectionDetails(v *StackSetDriftDetectionDetails) *StackSet {
	s.StackSetDriftDetectionDetails = v
	return s
}

// SetAutoDeployment sets the AutoDeployment field's value.
func (s *StackSet) SetAutoDeployment(v *AutoDeployment) *StackSet {
	s.AutoDeployment = v
	return s
}

// SetPermissionModel sets the PermissionModel field's value.
func (s *StackSet) SetPermissionModel(v PermissionModels) *StackSet {
	s.PermissionModel = v
	return s
}

// SetOrganizationalUnitIds sets the OrganizationalUnitIds field's value to a copy of v.
func (s *StackSet) SetOrganizationalUnitIds(v []*string) *StackSet {
	s.OrganizationalUnitIds = shape.CopyStrings(v)
	return s
}

// AppendOrganizationalUnitIds appends v to the OrganizationalUnitIds field's value.
func (s *StackSet) AppendOrganizationalUnitIds(v ...string) *StackSet {
	s.OrganizationalUnitIds = shape.AppendStrings(s.OrganizationalUnitIds, v...)
	return s
}

// StackSetOperation is the structure that contains information about a stack set operation.
type StackSetOperation struct {
	_ struct{} `type:"structure"`

	OperationId *string `locationName:"OperationId" min:"1" max:"128" pattern:"[a-zA-Z0-9][-a-zA-Z0-9]*" type:"string"`

	StackSetId *string `locationName:"StackSetId" type:"string"`

	Action StackSetOperationAction `locationName:"Action" type:"string" enum:"StackSetOperationAction"`

	// The overall status of the operation. QUEUED operations wait for a previous
	// operation on the stack set to complete.
	Status StackSetOperationStatus `locationName:"Status" type:"string" enum:"StackSetOperationStatus"`

	OperationPreferences *StackSetOperationPreferences `locationName:"OperationPreferences" type:"structure"`

	RetainStacks *bool `locationName:"RetainStacks" type:"boolean"`

	AdministrationRoleARN *string `locationName:"AdministrationRoleARN" min:"20" max:"2048" type:"string"`

	ExecutionRoleName *string `locationName:"ExecutionRoleName" min:"1" max:"64" pattern:"[a-zA-Z_0-9+=,.@-]+" type:"string"`

	CreationTimestamp *time.Time `locationName:"CreationTimestamp" type:"timestamp"`

	EndTimestamp *time.Time `locationName:"EndTimestamp" type:"timestamp"`

	DeploymentTargets *DeploymentTargets `locationName:"DeploymentTargets" type:"structure"`

	StackSetDriftDetectionDetails *StackSetDriftDetectionDetails `locationName:"StackSetDriftDetectionDetails" type:"structure"`
}

// String returns the string representation.
func (s *StackSetOperation) String() string {
	return shape.String(s)
}

// GoString returns the string representation.
func (s *StackSetOperation) GoString() string {
	return s.String()
}

// Equal returns true if o holds the same values as s.
func (s *StackSetOperation) Equal(o *StackSetOperation) bool {
	return shape.Equal(s, o)
}

// Hash returns a hash code consistent with Equal.
func (s *StackSetOperation) Hash() int32 {
	return shape.Hash(s)
}

// SetOperationId sets the OperationId field's value.
func (s *StackSetOperation) SetOperationId(v string) *StackSetOperation {
	s.OperationId = &v
	return s
}

// SetStackSetId sets the StackSetId field's value.
func (s *StackSetOperation) SetStackSetId(v string) *StackSetOperation {
	s.StackSetId = &v
	return s
}

// SetAction sets the Action field's value.
func (s *StackSetOperation) SetAction(v StackSetOperationAction) *StackSetOperation {
	s.Action = v
	return s
}

// SetStatus sets the Status field's value.
func (s *StackSetOperation) SetStatus(v StackSetOperationStatus) *StackSetOperation {
	s.Status = v
	return s
}

// SetOperationPreferences sets the OperationPreferences field's value.
func (s *StackSetOperation) SetOperationPreferences(v *StackSetOperationPreferences) *StackSetOperation {
	s.OperationPreferences = v
	return s
}

// SetRetainStacks sets the RetainStacks field's value.
func (s *StackSetOperation) SetRetainStacks(v bool) *StackSetOperation {
	s.RetainStacks = &v
	return s
}

// SetAdministrationRoleARN sets the AdministrationRoleARN field's value.
func (s *StackSetOperation) SetAdministrationRoleARN(v string) *StackSetOperation {
	s.AdministrationRoleARN = &v
	return s
}

// SetExecutionRoleName sets the ExecutionRoleName field's value.
func (s *StackSetOperation) SetExecutionRoleName(v string) *StackSetOperation {
	s.ExecutionRoleName = &v
	return s
}

// SetCreationTimestamp sets the CreationTimestamp field's value.
func (s *StackSetOperation) SetCreationTimestamp(v time.Time) *StackSetOperation {
	s.CreationTimestamp = &v
	return s
}

// SetEndTimestamp sets the EndTimestamp field's value.
func (s *StackSetOperation) SetEndTimestamp(v time.Time) *StackSetOperation {
	s.EndTimestamp = &v
	return s
}

// SetDeploymentTargets sets the DeploymentTargets field's value.
func (s *StackSetOperation) SetDeploymentTargets(v *DeploymentTargets) *StackSetOperation {
	s.DeploymentTargets = v
	return s
}

// SetStackSetDriftDetectionDetails sets the StackSetDriftDetectionDetails field's value.
func (s *StackSetOperation) SetStackSetDriftDetectionDetails(v *StackSetDriftDetectionDetails) *StackSetOperation {
	s.StackSetDriftDetectionDetails = v
	return s
}

// StackInstanceComprehensiveStatus is the detailed status of a stack instance.
type StackInstanceComprehensiveStatus struct {
	_ struct{} `type:"structure"`

	DetailedStatus StackInstanceDetailedStatus `locationName:"DetailedStatus" type:"string" enum:"StackInstanceDetailedStatus"`
}

// String returns the string representation.
func (s *StackInstanceComprehensiveStatus) String() string {
	return shape.String(s)
}

// GoString returns the string representation.
func (s *StackInstanceComprehensiveStatus) GoString() string {
	return s.String()
}

// Equal returns true if o holds the same values as s.
func (s *StackInstanceComprehensiveStatus) Equal(o *StackInstanceComprehensiveStatus) bool {
	return shape.Equal(s, o)
}

// Hash returns a hash code consistent with Equal.
func (s *StackInstanceComprehensiveStatus) Hash() int32 {
	return shape.Hash(s)
}

// SetDetailedStatus sets the DetailedStatus field's value.
func (s *StackInstanceComprehensiveStatus) SetDetailedStatus(v StackInstanceDetailedStatus) *StackInstanceComprehensiveStatus {
	s.DetailedStatus = v
	return s
}

// StackInstanceSummary is the structure that contains summary information about
// a stack instance.
type StackInstanceSummary struct {
	_ struct{} `type:"structure"`

	StackSetId *string `locationName:"StackSetId" type:"string"`

	Region *string `locationName:"Region" type:"string"`

	Account *string `locationName:"Account" type:"string"`

	StackId *string `locationName:"StackId" type:"string"`

	Status StackInstanceStatus `locationName:"Status" type:"string" enum:"StackInstanceStatus"`

	StatusReason *string `locationName:"StatusReason" type:"string"`

	StackInstanceStatus *StackInstanceComprehensiveStatus `locationName:"StackInstanceStatus" type:"structure"`

	OrganizationalUnitId *string `locationName:"OrganizationalUnitId" type:"string"`

	DriftStatus StackDriftStatus `locationName:"DriftStatus" type:"string" enum:"StackDriftStatus"`

	LastDriftCheckTimestamp *time.Time `locationName:"LastDriftCheckTimestamp" type:"timestamp"`
}

// String returns the string representation.
func (s *StackInstanceSummary) String() string {
	return shape.String(s)
}

// GoString returns the string representation.
func (s *StackInstanceSummary) GoString() string {
	return s.String()
}

// Equal returns true if o holds the same values as s.
func (s *StackInstanceSummary) Equal(o *StackInstanceSummary) bool {
	return shape.Equal(s, o)
}

// Hash returns a hash code consistent with Equal.
func (s *StackInstanceSummary) Hash() int32 {
	return shape.Hash(s)
}

// SetStackSetId sets the StackSetId field's value.
func (s *StackInstanceSummary) SetStackSetId(v string) *StackInstanceSummary {
	s.StackSetId = &v
	return s
}

// SetRegion sets the Region field's value.
func (s *StackInstanceSummary) SetRegion(v string) *StackInstanceSummary {
	s.Region = &v
	return s
}

// SetAccount sets the Account field's value.
func (s *StackInstanceSummary) SetAccount(v string) *StackInstanceSummary {
	s.Account = &v
	return s
}

// SetStackId sets the StackId field's value.
func (s *StackInstanceSummary) SetStackId(v string) *StackInstanceSummary {
	s.StackId = &v
	return s
}

// SetStatus sets the Status field's value.
func (s *StackInstanceSummary) SetStatus(v StackInstanceStatus) *StackInstanceSummary {
	s.Status = v
	return s
}

// SetStatusReason sets the StatusReason field's value.
func (s *StackInstanceSummary) SetStatusReason(v string) *StackInstanceSummary {
	s.StatusReason = &v
	return s
}

// SetStackInstanceStatus sets the StackInstanceStatus field's value.
func (s *StackInstanceSummary) SetStackInstanceStatus(v *StackInstanceComprehensiveStatus) *StackInstanceSummary {
	s.StackInstanceStatus = v
	return s
}

// SetOrganizationalUnitId sets the OrganizationalUnitId field's value.
func (s *StackInstanceSummary) SetOrganizationalUnitId(v string) *StackInstanceSummary {
	s.OrganizationalUnitId = &v
	return s
}

// SetDriftStatus sets the DriftStatus field's value.
func (s *StackInstanceSummary) SetDriftStatus(v StackDriftStatus) *StackInstanceSummary {
	s.DriftStatus = v
	return s
}

// SetLastDriftCheckTimestamp sets the LastDriftCheckTimestamp field's value.
func (s *StackInstanceSummary) SetLastDriftCheckTimestamp(v time.Time) *StackInstanceSummary {
	s.LastDriftCheckTimestamp = &v
	return s
}

// StackInstanceFilter narrows the stack instances returned by ListStackInstances.
type StackInstanceFilter struct {
	_ struct{} `type:"structure"`

	Name StackInstanceFilterName `locationName:"Name" type:"string" enum:"StackInstanceFilterName"`

	Values *string `locationName:"Values" min:"6" max:"10" type:"string"`
}

// String returns the string representation.
func (s *StackInstanceFilter) String() string {
	return shape.String(s)
}

// GoString returns the string representation.
func (s *StackInstanceFilter) GoString() string {
	return s.String()
}

// Equal returns true if o holds the same values as s.
func (s *StackInstanceFilter) Equal(o *StackInstanceFilter) bool {
	return shape.Equal(s, o)
}

// Hash returns a hash code consistent with Equal.
func (s *StackInstanceFilter) Hash() int32 {
	return shape.Hash(s)
}

// Validate inspects the fields of the type to determine if they are valid.
func (s *StackInstanceFilter) Validate() error {
	return shape.Validate(s)
}

// SetName sets the Name field's value.
func (s *StackInstanceFilter) SetName(v StackInstanceFilterName) *StackInstanceFilter {
	s.Name = v
	return s
}

// SetValues sets the Values field's value.
func (s *StackInstanceFilter) SetValues(v string) *StackInstanceFilter {
	s.Values = &v
	return s
}
