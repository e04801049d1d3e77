// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cloudformation

import (
	"github.com/aws/cfn-shapes/internal/pkg/shape"
)

// ResourceTargetDefinition is the field that CloudFormation will change, such as
// the name of a resource's property, and whether the resource will be recreated.
type ResourceTargetDefinition struct {
	_ struct{} `type:"structure"`

	Attribute ResourceAttribute `locationName:"Attribute" type:"string" enum:"ResourceAttribute"`

	Name *string `locationName:"Name" type:"string"`

	RequiresRecreation RequiresRecreation `locationName:"RequiresRecreation" type:"string" enum:"RequiresRecreation"`
}

// String returns the string representation.
func (s *ResourceTargetDefinition) String() string {
	return shape.String(s)
}

// GoString returns the string representation.
func (s *ResourceTargetDefinition) GoString() string {
	return s.String()
}

// Equal returns true if o holds the same values as s.
func (s *ResourceTargetDefinition) Equal(o *ResourceTargetDefinition) bool {
	return shape.Equal(s, o)
}

// Hash returns a hash code consistent with Equal.
func (s *ResourceTargetDefinition) Hash() int32 {
	return shape.Hash(s)
}

// SetAttribute sets the Attribute field's value.
func (s *ResourceTargetDefinition) SetAttribute(v ResourceAttribute) *ResourceTargetDefinition {
	s.Attribute = v
	return s
}

// SetName sets the Name field's value.
func (s *ResourceTargetDefinition) SetName(v string) *ResourceTargetDefinition {
	s.Name = &v
	return s
}

// SetRequiresRecreation sets the RequiresRecreation field's value.
func (s *ResourceTargetDefinition) SetRequiresRecreation(v RequiresRecreation) *ResourceTargetDefinition {
	s.RequiresRecreation = v
	return s
}

// ResourceChangeDetail describes one change to a resource and what caused it.
type ResourceChangeDetail struct {
	_ struct{} `type:"structure"`

	Target *ResourceTargetDefinition `locationName:"Target" type:"structure"`

	// Static when CloudFormation can determine the target value, Dynamic when
	// the value depends on a function evaluated during the update.
	Evaluation EvaluationType `locationName:"Evaluation" type:"string" enum:"EvaluationType"`

	ChangeSource ChangeSource `locationName:"ChangeSource" type:"string" enum:"ChangeSource"`

	CausingEntity *string `locationName:"CausingEntity" type:"string"`
}

// String returns the string representation.
func (s *ResourceChangeDetail) String() string {
	return shape.String(s)
}

// GoString returns the string representation.
func (s *ResourceChangeDetail) GoString() string {
	return s.String()
}

// Equal returns true if o holds the same values as s.
func (s *ResourceChangeDetail) Equal(o *ResourceChangeDetail) bool {
	return shape.Equal(s, o)
}

// Hash returns a hash code consistent with Equal.
func (s *ResourceChangeDetail) Hash() int32 {
	return shape.Hash(s)
}

// SetTarget sets the Target field's value.
func (s *ResourceChangeDetail) SetTarget(v *ResourceTargetDefinition) *ResourceChangeDetail {
	s.Target = v
	return s
}

// SetEvaluation sets the Evaluation field's value.
func (s *ResourceChangeDetail) SetEvaluation(v EvaluationType) *ResourceChangeDetail {
	s.Evaluation = v
	return s
}

// SetChangeSource sets the ChangeSource field's value.
func (s *ResourceChangeDetail) SetChangeSource(v ChangeSource) *ResourceChangeDetail {
	s.ChangeSource = v
	return s
}

// SetCausingEntity sets the CausingEntity field's value.
func (s *ResourceChangeDetail) SetCausingEntity(v string) *ResourceChangeDetail {
	s.CausingEntity = &v
	return s
}

// ResourceChange is the action CloudFormation will take on a resource when a
// change set is executed.
type ResourceChange struct {
	_ struct{} `type:"structure"`

	Action ChangeAction `locationName:"Action" type:"string" enum:"ChangeAction"`

	LogicalResourceId *string `locationName:"LogicalResourceId" type:"string"`

	PhysicalResourceId *string `locationName:"PhysicalResourceId" type:"string"`

	ResourceType *string `locationName:"ResourceType" min:"1" max:"256" type:"string"`

	Replacement Replacement `locationName:"Replacement" type:"string" enum:"Replacement"`

	Scope []ResourceAttribute `locationName:"Scope" type:"list" enum:"ResourceAttribute"`

	Details []*ResourceChangeDetail `locationName:"Details" type:"list"`

	// The change set ID of the nested change set.
	ChangeSetId *string `locationName:"ChangeSetId" min:"1" pattern:"arn:[-a-zA-Z0-9:/]*" type:"string"`
}

// String returns the string representation.
func (s *ResourceChange) String() string {
	return shape.String(s)
}

// GoString returns the string representation.
func (s *ResourceChange) GoString() string {
	return s.String()
}

// Equal returns true if o holds the same values as s.
func (s *ResourceChange) Equal(o *ResourceChange) bool {
	return shape.Equal(s, o)
}

// Hash returns a hash code consistent with Equal.
func (s *ResourceChange) Hash() int32 {
	return shape.Hash(s)
}

// SetAction sets the Action field's value.
func (s *ResourceChange) SetAction(v ChangeAction) *ResourceChange {
	s.Action = v
	return s
}

// SetLogicalResourceId sets the LogicalResourceId field's value.
func (s *ResourceChange) SetLogicalResourceId(v string) *ResourceChange {
	s.LogicalResourceId = &v
	return s
}

// SetPhysicalResourceId sets the PhysicalResourceId field's value.
func (s *ResourceChange) SetPhysicalResourceId(v string) *ResourceChange {
	s.PhysicalResourceId = &v
	return s
}

// SetResourceType sets the ResourceType field's value.
func (s *ResourceChange) SetResourceType(v string) *ResourceChange {
	s.ResourceType = &v
	return s
}

// SetReplacement sets the Replacement field's value.
func (s *ResourceChange) SetReplacement(v Replacement) *ResourceChange {
	s.Replacement = v
	return s
}

// SetScope sets the Scope field's value to a copy of v.
func (s *ResourceChange) SetScope(v []ResourceAttribute) *ResourceChange {
	s.Scope = shape.Copy(v)
	return s
}

// AppendScope appends v to the Scope field's value.
func (s *ResourceChange) AppendScope(v ...ResourceAttribute) *ResourceChange {
	s.Scope = shape.Append(s.Scope, v...)
	return s
}

// SetDetails sets the Details field's value to a copy of v.
func (s *ResourceChange) SetDetails(v []*ResourceChangeDetail) *ResourceChange {
	s.Details = shape.Copy(v)
	return s
}

// AppendDetails appends v to the Details field's value.
func (s *ResourceChange) AppendDetails(v ...*ResourceChangeDetail) *ResourceChange {
	s.Details = shape.Append(s.Details, v...)
	return s
}

// SetChangeSetId sets the ChangeSetId field's value.
func (s *ResourceChange) SetChangeSetId(v string) *ResourceChange {
	s.ChangeSetId = &v
	return s
}

// Change is a resource that CloudFormation will change and the action it will take.
type Change struct {
	_ struct{} `type:"structure"`

	Type ChangeType `locationName:"Type" type:"string" enum:"ChangeType"`

	ResourceChange *ResourceChange `locationName:"ResourceChange" type:"structure"`
}

// String returns the string representation.
func (s *Change) String() string {
	return shape.String(s)
}

// GoString returns the string representation.
func (s *Change) GoString() string {
	return s.String()
}

// Equal returns true if o holds the same values as s.
func (s *Change) Equal(o *Change) bool {
	return shape.Equal(s, o)
}

// Hash returns a hash code consistent with Equal.
func (s *Change) Hash() int32 {
	return shape.Hash(s)
}

// SetType sets the Type field's value.
func (s *Change) SetType(v ChangeType) *Change {
	s.Type = v
	return s
}

// SetResourceChange sets the ResourceChange field's value.
func (s *Change) SetResourceChange(v *ResourceChange) *Change {
	s.ResourceChange = v
	return s
}

// ResourceToImport describes a target resource of an import operation.
type ResourceToImport struct {
	_ struct{} `type:"structure"`

	ResourceType *string `locationName:"ResourceType" min:"1" max:"256" type:"string" required:"true"`

	LogicalResourceId *string `locationName:"LogicalResourceId" type:"string" required:"true"`

	// A key-value pair that identifies the target resource. The key is an identifier
	// property, for example BucketName for AWS::S3::Bucket resources.
	ResourceIdentifier map[string]*string `locationName:"ResourceIdentifier" min:"1" max:"256" type:"map" required:"true"`
}

// String returns the string representation.
func (s *ResourceToImport) String() string {
	return shape.String(s)
}

// GoString returns the string representation.
func (s *ResourceToImport) GoString() string {
	return s.String()
}

// Equal returns true if o holds the same values as s.
func (s *ResourceToImport) Equal(o *ResourceToImport) bool {
	return shape.Equal(s, o)
}

// Hash returns a hash code consistent with Equal.
func (s *ResourceToImport) Hash() int32 {
	return shape.Hash(s)
}

// Validate inspects the fields of the type to determine if they are valid.
func (s *ResourceToImport) Validate() error {
	return shape.Validate(s)
}

// SetResourceType sets the ResourceType field's value.
func (s *ResourceToImport) SetResourceType(v string) *ResourceToImport {
	s.ResourceType = &v
	return s
}

// SetLogicalResourceId sets the LogicalResourceId field's value.
func (s *ResourceToImport) SetLogicalResourceId(v string) *ResourceToImport {
	s.LogicalResourceId = &v
	return s
}

// SetResourceIdentifier sets the ResourceIdentifier field's value to a copy of v.
func (s *ResourceToImport) SetResourceIdentifier(v map[string]*string) *ResourceToImport {
	s.ResourceIdentifier = shape.CopyMap(v)
	return s
}
