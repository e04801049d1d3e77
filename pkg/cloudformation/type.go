// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cloudformation

import (
	"time"

	"github.com/aws/cfn-shapes/internal/pkg/shape"
)

// LoggingConfig contains logging configuration information for an extension.
type LoggingConfig struct {
	_ struct{} `type:"structure"`

	LogRoleArn *string `locationName:"LogRoleArn" min:"1" max:"256" type:"string" required:"true"`

	LogGroupName *string `locationName:"LogGroupName" min:"1" max:"512" pattern:"[\\.\\-_/#A-Za-z0-9]+" type:"string" required:"true"`
}

// String returns the string representation.
func (s *LoggingConfig) String() string {
	return shape.String(s)
}

// GoString returns the string representation.
func (s *LoggingConfig) GoString() string {
	return s.String()
}

// Equal returns true if o holds the same values as s.
func (s *LoggingConfig) Equal(o *LoggingConfig) bool {
	return shape.Equal(s, o)
}

// Hash returns a hash code consistent with Equal.
func (s *LoggingConfig) Hash() int32 {
	return shape.Hash(s)
}

// SetLogRoleArn sets the LogRoleArn field's value.
func (s *LoggingConfig) SetLogRoleArn(v string) *LoggingConfig {
	s.LogRoleArn = &v
	return s
}

// SetLogGroupName sets the LogGroupName field's value.
func (s *LoggingConfig) SetLogGroupName(v string) *LoggingConfig {
	s.LogGroupName = &v
	return s
}

// DescribeTypeInput returns detailed information about an extension registered
// in the CloudFormation registry. Specify either Arn, or TypeName and Type.
type DescribeTypeInput struct {
	_ struct{} `type:"structure"`

	Type RegistryType `locationName:"Type" type:"string" enum:"RegistryType"`

	TypeName *string `locationName:"TypeName" min:"10" max:"204" pattern:"[A-Za-z0-9]{2,64}::[A-Za-z0-9]{2,64}::[A-Za-z0-9]{2,64}(::MODULE){0,1}" type:"string"`

	Arn *string `locationName:"Arn" max:"1024" pattern:"arn:aws[A-Za-z0-9-]{0,64}:cloudformation:[A-Za-z0-9-]{1,64}:([0-9]{12})?:type/.+" type:"string"`

	VersionId *string `locationName:"VersionId" min:"1" max:"128" pattern:"[A-Za-z0-9-]+" type:"string"`
}

// String returns the string representation.
func (s *DescribeTypeInput) String() string {
	return shape.String(s)
}

// GoString returns the string representation.
func (s *DescribeTypeInput) GoString() string {
	return s.String()
}

// Equal returns true if o holds the same values as s.
func (s *DescribeTypeInput) Equal(o *DescribeTypeInput) bool {
	return shape.Equal(s, o)
}

// Hash returns a hash code consistent with Equal.
func (s *DescribeTypeInput) Hash() int32 {
	return shape.Hash(s)
}

// Validate inspects the fields of the type to determine if they are valid.
func (s *DescribeTypeInput) Validate() error {
	return shape.Validate(s)
}

// OperationName returns the name of the API operation the input is sent to.
func (s *DescribeTypeInput) OperationName() string {
	return opDescribeType
}

// SetType sets the Type field's value.
func (s *DescribeTypeInput) SetType(v RegistryType) *DescribeTypeInput {
	s.Type = v
	return s
}

// SetTypeName sets the TypeName field's value.
func (s *DescribeTypeInput) SetTypeName(v string) *DescribeTypeInput {
	s.TypeName = &v
	return s
}

// SetArn sets the Arn field's value.
func (s *DescribeTypeInput) SetArn(v string) *DescribeTypeInput {
	s.Arn = &v
	return s
}

// SetVersionId sets the VersionId field's value.
func (s *DescribeTypeInput) SetVersionId(v string) *DescribeTypeInput {
	s.VersionId = &v
	return s
}

// DescribeTypeOutput is the description of a registered extension.
type DescribeTypeOutput struct {
	_ struct{} `type:"structure"`

	Arn *string `locationName:"Arn" max:"1024" type:"string"`

	Type RegistryType `locationName:"Type" type:"string" enum:"RegistryType"`

	TypeName *string `locationName:"TypeName" min:"10" max:"196" pattern:"[A-Za-z0-9]{2,64}::[A-Za-z0-9]{2,64}::[A-Za-z0-9]{2,64}" type:"string"`

	DefaultVersionId *string `locationName:"DefaultVersionId" min:"1" max:"128" pattern:"[A-Za-z0-9-]+" type:"string"`

	IsDefaultVersion *bool `locationName:"IsDefaultVersion" type:"boolean"`

	Description *string `locationName:"Description" min:"1" max:"1024" type:"string"`

	// The schema that defines the extension, as a JSON document.
	Schema *string `locationName:"Schema" min:"1" max:"16777216" type:"string"`

	ProvisioningType ProvisioningType `locationName:"ProvisioningType" type:"string" enum:"ProvisioningType"`

	DeprecatedStatus DeprecatedStatus `locationName:"DeprecatedStatus" type:"string" enum:"DeprecatedStatus"`

	LoggingConfig *LoggingConfig `locationName:"LoggingConfig" type:"structure"`

	ExecutionRoleArn *string `locationName:"ExecutionRoleArn" min:"1" max:"256" pattern:"arn:.+:iam::[0-9]{12}:role/.+" type:"string"`

	Visibility Visibility `locationName:"Visibility" type:"string" enum:"Visibility"`

	SourceUrl *string `locationName:"SourceUrl" max:"4096" type:"string"`

	DocumentationUrl *string `locationName:"DocumentationUrl" max:"4096" type:"string"`

	LastUpdated *time.Time `locationName:"LastUpdated" type:"timestamp"`

	TimeCreated *time.Time `locationName:"TimeCreated" type:"timestamp"`
}

// String returns the string representation.
func (s *DescribeTypeOutput) String() string {
	return shape.String(s)
}

// GoString returns the string representation.
func (s *DescribeTypeOutput) GoString() string {
	return s.String()
}

// Equal returns true if o holds the same values as s.
func (s *DescribeTypeOutput) Equal(o *DescribeTypeOutput) bool {
	return shape.Equal(s, o)
}

// Hash returns a hash code consistent with Equal.
func (s *DescribeTypeOutput) Hash() int32 {
	return shape.Hash(s)
}

// SetArn sets the Arn field's value.
func (s *DescribeTypeOutput) SetArn(v string) *DescribeTypeOutput {
	s.Arn = &v
	return s
}

// SetType sets the Type field's value.
func (s *DescribeTypeOutput) SetType(v RegistryType) *DescribeTypeOutput {
	s.Type = v
	return s
}

// SetTypeName sets the TypeName field's value.
func (s *DescribeTypeOutput) SetTypeName(v string) *DescribeTypeOutput {
	s.TypeName = &v
	return s
}

// SetDefaultVersionId sets the DefaultVersionId field's value.
func (s *DescribeTypeOutput) SetDefaultVersionId(v string) *DescribeTypeOutput {
	s.DefaultVersionId = &v
	return s
}

// SetIsDefaultVersion sets the IsDefaultVersion field's value.
func (s *DescribeTypeOutput) SetIsDefaultVersion(v bool) *DescribeTypeOutput {
	s.IsDefaultVersion = &v
	return s
}

// SetDescription sets the Description field's value.
func (s *DescribeTypeOutput) SetDescription(v string) *DescribeTypeOutput {
	s.Description = &v
	return s
}

// SetSchema sets the Schema field's value.
func (s *DescribeTypeOutput) SetSchema(v string) *DescribeTypeOutput {
	s.Schema = &v
	return s
}

// SetProvisioningType sets the ProvisioningType field's value.
func (s *DescribeTypeOutput) SetProvisioningType(v ProvisioningType) *DescribeTypeOutput {
	s.ProvisioningType = v
	return s
}

// SetDeprecatedStatus sets the DeprecatedStatus field's value.
func (s *DescribeTypeOutput) SetDeprecatedStatus(v DeprecatedStatus) *DescribeTypeOutput {
	s.DeprecatedStatus = v
	return s
}

// SetLoggingConfig sets the LoggingConfig field's value.
func (s *DescribeTypeOutput) SetLoggingConfig(v *LoggingConfig) *DescribeTypeOutput {
	s.LoggingConfig = v
	return s
}

// SetExecutionRoleArn sets the ExecutionRoleArn field's value.
func (s *DescribeTypeOutput) SetExecutionRoleArn(v string) *DescribeTypeOutput {
	s.ExecutionRoleArn = &v
	return s
}

// SetVisibility sets the Visibility field's value.
func (s *DescribeTypeOutput) SetVisibility(v Visibility) *DescribeTypeOutput {
	s.Visibility = v
	return s
}

// SetSourceUrl sets the SourceUrl field's value.
func (s *DescribeTypeOutput) SetSourceUrl(v string) *DescribeTypeOutput {
	s.SourceUrl = &v
	return s
}

// SetDocumentationUrl sets the DocumentationUrl field's value.
func (s *DescribeTypeOutput) SetDocumentationUrl(v string) *DescribeTypeOutput {
	s.DocumentationUrl = &v
	return s
}

// SetLastUpdated sets the LastUpdated field's value.
func (s *DescribeTypeOutput) SetLastUpdated(v time.Time) *DescribeTypeOutput {
	s.LastUpdated = &v
	return s
}

// SetTimeCreated sets the TimeCreated field's value.
func (s *DescribeTypeOutput) SetTimeCreated(v time.Time) *DescribeTypeOutput {
	s.TimeCreated = &v
	return s
}
