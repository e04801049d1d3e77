// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cloudformation

import (
	"github.com/aws/aws-sdk-go/aws"
	sdkcloudformation "github.com/aws/aws-sdk-go/service/cloudformation"
	"github.com/aws/cfn-shapes/internal/pkg/shape"
	cfn "github.com/aws/cfn-shapes/pkg/cloudformation"
)

// The functions below translate shapes to and from the SDK's wire types.
// Lists are copied so that the caller's shape and the SDK input never share a backing array.

func enumPtr[E ~string](e E) *string {
	if e == "" {
		return nil
	}
	return aws.String(string(e))
}

func enumValue[E ~string](s *string) E {
	return E(aws.StringValue(s))
}

func enumPtrs[E ~string](in []E) []*string {
	if in == nil {
		return nil
	}
	out := make([]*string, len(in))
	for i, e := range in {
		out[i] = aws.String(string(e))
	}
	return out
}

func enumValues[E ~string](in []*string) []E {
	if in == nil {
		return nil
	}
	out := make([]E, len(in))
	for i, s := range in {
		out[i] = E(aws.StringValue(s))
	}
	return out
}

func mapSlice[A, B any](in []*A, fn func(*A) *B) []*B {
	if in == nil {
		return nil
	}
	out := make([]*B, len(in))
	for i, v := range in {
		out[i] = fn(v)
	}
	return out
}

// Shared model shapes.

func toSDKParameter(in *cfn.Parameter) *sdkcloudformation.Parameter {
	if in == nil {
		return nil
	}
	return &sdkcloudformation.Parameter{
		ParameterKey:     in.ParameterKey,
		ParameterValue:   in.ParameterValue,
		UsePreviousValue: in.UsePreviousValue,
		ResolvedValue:    in.ResolvedValue,
	}
}

func fromSDKParameter(in *sdkcloudformation.Parameter) *cfn.Parameter {
	if in == nil {
		return nil
	}
	return &cfn.Parameter{
		ParameterKey:     in.ParameterKey,
		ParameterValue:   in.ParameterValue,
		UsePreviousValue: in.UsePreviousValue,
		ResolvedValue:    in.ResolvedValue,
	}
}

func toSDKTag(in *cfn.Tag) *sdkcloudformation.Tag {
	if in == nil {
		return nil
	}
	return &sdkcloudformation.Tag{Key: in.Key, Value: in.Value}
}

func fromSDKTag(in *sdkcloudformation.Tag) *cfn.Tag {
	if in == nil {
		return nil
	}
	return &cfn.Tag{Key: in.Key, Value: in.Value}
}

func fromSDKOutput(in *sdkcloudformation.Output) *cfn.Output {
	if in == nil {
		return nil
	}
	return &cfn.Output{
		OutputKey:   in.OutputKey,
		OutputValue: in.OutputValue,
		Description: in.Description,
		ExportName:  in.ExportName,
	}
}

func toSDKRollbackConfiguration(in *cfn.RollbackConfiguration) *sdkcloudformation.RollbackConfiguration {
	if in == nil {
		return nil
	}
	return &sdkcloudformation.RollbackConfiguration{
		MonitoringTimeInMinutes: in.MonitoringTimeInMinutes,
		RollbackTriggers: mapSlice(in.RollbackTriggers, func(t *cfn.RollbackTrigger) *sdkcloudformation.RollbackTrigger {
			if t == nil {
				return nil
			}
			return &sdkcloudformation.RollbackTrigger{Arn: t.Arn, Type: t.Type}
		}),
	}
}

func fromSDKRollbackConfiguration(in *sdkcloudformation.RollbackConfiguration) *cfn.RollbackConfiguration {
	if in == nil {
		return nil
	}
	return &cfn.RollbackConfiguration{
		MonitoringTimeInMinutes: in.MonitoringTimeInMinutes,
		RollbackTriggers: mapSlice(in.RollbackTriggers, func(t *sdkcloudformation.RollbackTrigger) *cfn.RollbackTrigger {
			if t == nil {
				return nil
			}
			return &cfn.RollbackTrigger{Arn: t.Arn, Type: t.Type}
		}),
	}
}

func fromSDKStack(in *sdkcloudformation.Stack) *cfn.Stack {
	if in == nil {
		return nil
	}
	out := &cfn.Stack{
		StackId:                     in.StackId,
		StackName:                   in.StackName,
		ChangeSetId:                 in.ChangeSetId,
		Description:                 in.Description,
		Parameters:                  mapSlice(in.Parameters, fromSDKParameter),
		CreationTime:                in.CreationTime,
		DeletionTime:                in.DeletionTime,
		LastUpdatedTime:             in.LastUpdatedTime,
		RollbackConfiguration:       fromSDKRollbackConfiguration(in.RollbackConfiguration),
		StackStatus:                 enumValue[cfn.StackStatus](in.StackStatus),
		StackStatusReason:           in.StackStatusReason,
		DisableRollback:             in.DisableRollback,
		NotificationARNs:            shape.CopyStrings(in.NotificationARNs),
		TimeoutInMinutes:            in.TimeoutInMinutes,
		Capabilities:                enumValues[cfn.Capability](in.Capabilities),
		Outputs:                     mapSlice(in.Outputs, fromSDKOutput),
		RoleARN:                     in.RoleARN,
		Tags:                        mapSlice(in.Tags, fromSDKTag),
		EnableTerminationProtection: in.EnableTerminationProtection,
		ParentId:                    in.ParentId,
		RootId:                      in.RootId,
	}
	if drift := in.DriftInformation; drift != nil {
		out.DriftInformation = &cfn.StackDriftInformation{
			LastCheckTimestamp: drift.LastCheckTimestamp,
			StackDriftStatus:   enumValue[cfn.StackDriftStatus](drift.StackDriftStatus),
		}
	}
	return out
}

// Stack operations.

func toSDKContinueUpdateRollbackInput(in *cfn.ContinueUpdateRollbackInput) *sdkcloudformation.ContinueUpdateRollbackInput {
	return &sdkcloudformation.ContinueUpdateRollbackInput{
		StackName:          in.StackName,
		RoleARN:            in.RoleARN,
		ResourcesToSkip:    shape.CopyStrings(in.ResourcesToSkip),
		ClientRequestToken: in.ClientRequestToken,
	}
}

func toSDKCreateStackInput(in *cfn.CreateStackInput) *sdkcloudformation.CreateStackInput {
	return &sdkcloudformation.CreateStackInput{
		StackName:                   in.StackName,
		TemplateBody:                in.TemplateBody,
		TemplateURL:                 in.TemplateURL,
		Parameters:                  mapSlice(in.Parameters, toSDKParameter),
		DisableRollback:             in.DisableRollback,
		RollbackConfiguration:       toSDKRollbackConfiguration(in.RollbackConfiguration),
		TimeoutInMinutes:            in.TimeoutInMinutes,
		NotificationARNs:            shape.CopyStrings(in.NotificationARNs),
		Capabilities:                enumPtrs(in.Capabilities),
		ResourceTypes:               shape.CopyStrings(in.ResourceTypes),
		RoleARN:                     in.RoleARN,
		OnFailure:                   enumPtr(in.OnFailure),
		StackPolicyBody:             in.StackPolicyBody,
		StackPolicyURL:              in.StackPolicyURL,
		Tags:                        mapSlice(in.Tags, toSDKTag),
		ClientRequestToken:          in.ClientRequestToken,
		EnableTerminationProtection: in.EnableTerminationProtection,
	}
}

func toSDKUpdateStackInput(in *cfn.UpdateStackInput) *sdkcloudformation.UpdateStackInput {
	return &sdkcloudformation.UpdateStackInput{
		StackName:                   in.StackName,
		TemplateBody:                in.TemplateBody,
		TemplateURL:                 in.TemplateURL,
		UsePreviousTemplate:         in.UsePreviousTemplate,
		StackPolicyDuringUpdateBody: in.StackPolicyDuringUpdateBody,
		StackPolicyDuringUpdateURL:  in.StackPolicyDuringUpdateURL,
		Parameters:                  mapSlice(in.Parameters, toSDKParameter),
		Capabilities:                enumPtrs(in.Capabilities),
		ResourceTypes:               shape.CopyStrings(in.ResourceTypes),
		RoleARN:                     in.RoleARN,
		RollbackConfiguration:       toSDKRollbackConfiguration(in.RollbackConfiguration),
		StackPolicyBody:             in.StackPolicyBody,
		StackPolicyURL:              in.StackPolicyURL,
		NotificationARNs:            shape.CopyStrings(in.NotificationARNs),
		Tags:                        mapSlice(in.Tags, toSDKTag),
		ClientRequestToken:          in.ClientRequestToken,
	}
}

// Change sets.

func toSDKCreateChangeSetInput(in *cfn.CreateChangeSetInput) *sdkcloudformation.CreateChangeSetInput {
	return &sdkcloudformation.CreateChangeSetInput{
		StackName:             in.StackName,
		TemplateBody:          in.TemplateBody,
		TemplateURL:           in.TemplateURL,
		UsePreviousTemplate:   in.UsePreviousTemplate,
		Parameters:            mapSlice(in.Parameters, toSDKParameter),
		Capabilities:          enumPtrs(in.Capabilities),
		ResourceTypes:         shape.CopyStrings(in.ResourceTypes),
		RoleARN:               in.RoleARN,
		RollbackConfiguration: toSDKRollbackConfiguration(in.RollbackConfiguration),
		NotificationARNs:      shape.CopyStrings(in.NotificationARNs),
		Tags:                  mapSlice(in.Tags, toSDKTag),
		ChangeSetName:         in.ChangeSetName,
		ClientToken:           in.ClientToken,
		Description:           in.Description,
		ChangeSetType:         enumPtr(in.ChangeSetType),
		ResourcesToImport: mapSlice(in.ResourcesToImport, func(r *cfn.ResourceToImport) *sdkcloudformation.ResourceToImport {
			if r == nil {
				return nil
			}
			return &sdkcloudformation.ResourceToImport{
				ResourceType:       r.ResourceType,
				LogicalResourceId:  r.LogicalResourceId,
				ResourceIdentifier: shape.CopyMap(r.ResourceIdentifier),
			}
		}),
	}
}

func fromSDKChange(in *sdkcloudformation.Change) *cfn.Change {
	if in == nil {
		return nil
	}
	out := &cfn.Change{
		Type: enumValue[cfn.ChangeType](in.Type),
	}
	if rc := in.ResourceChange; rc != nil {
		out.ResourceChange = &cfn.ResourceChange{
			Action:             enumValue[cfn.ChangeAction](rc.Action),
			LogicalResourceId:  rc.LogicalResourceId,
			PhysicalResourceId: rc.PhysicalResourceId,
			ResourceType:       rc.ResourceType,
			Replacement:        enumValue[cfn.Replacement](rc.Replacement),
			Scope:              enumValues[cfn.ResourceAttribute](rc.Scope),
			Details:            mapSlice(rc.Details, fromSDKResourceChangeDetail),
			ChangeSetId:        rc.ChangeSetId,
		}
	}
	return out
}

func fromSDKResourceChangeDetail(in *sdkcloudformation.ResourceChangeDetail) *cfn.ResourceChangeDetail {
	if in == nil {
		return nil
	}
	out := &cfn.ResourceChangeDetail{
		Evaluation:    enumValue[cfn.EvaluationType](in.Evaluation),
		ChangeSource:  enumValue[cfn.ChangeSource](in.ChangeSource),
		CausingEntity: in.CausingEntity,
	}
	if t := in.Target; t != nil {
		out.Target = &cfn.ResourceTargetDefinition{
			Attribute:          enumValue[cfn.ResourceAttribute](t.Attribute),
			Name:               t.Name,
			RequiresRecreation: enumValue[cfn.RequiresRecreation](t.RequiresRecreation),
		}
	}
	return out
}

func fromSDKDescribeChangeSetOutput(in *sdkcloudformation.DescribeChangeSetOutput) *cfn.DescribeChangeSetOutput {
	return &cfn.DescribeChangeSetOutput{
		ChangeSetName:         in.ChangeSetName,
		ChangeSetId:           in.ChangeSetId,
		StackId:               in.StackId,
		StackName:             in.StackName,
		Description:           in.Description,
		Parameters:            mapSlice(in.Parameters, fromSDKParameter),
		CreationTime:          in.CreationTime,
		ExecutionStatus:       enumValue[cfn.ExecutionStatus](in.ExecutionStatus),
		Status:                enumValue[cfn.ChangeSetStatus](in.Status),
		StatusReason:          in.StatusReason,
		NotificationARNs:      shape.CopyStrings(in.NotificationARNs),
		RollbackConfiguration: fromSDKRollbackConfiguration(in.RollbackConfiguration),
		Capabilities:          enumValues[cfn.Capability](in.Capabilities),
		Tags:                  mapSlice(in.Tags, fromSDKTag),
		Changes:               mapSlice(in.Changes, fromSDKChange),
		NextToken:             in.NextToken,
		IncludeNestedStacks:   in.IncludeNestedStacks,
		ParentChangeSetId:     in.ParentChangeSetId,
		RootChangeSetId:       in.RootChangeSetId,
	}
}

// Stack sets.

func toSDKDeploymentTargets(in *cfn.DeploymentTargets) *sdkcloudformation.DeploymentTargets {
	if in == nil {
		return nil
	}
	return &sdkcloudformation.DeploymentTargets{
		Accounts:              shape.CopyStrings(in.Accounts),
		AccountsUrl:           in.AccountsUrl,
		OrganizationalUnitIds: shape.CopyStrings(in.OrganizationalUnitIds),
	}
}

func fromSDKDeploymentTargets(in *sdkcloudformation.DeploymentTargets) *cfn.DeploymentTargets {
	if in == nil {
		return nil
	}
	return &cfn.DeploymentTargets{
		Accounts:              shape.CopyStrings(in.Accounts),
		AccountsUrl:           in.AccountsUrl,
		OrganizationalUnitIds: shape.CopyStrings(in.OrganizationalUnitIds),
	}
}

func toSDKAutoDeployment(in *cfn.AutoDeployment) *sdkcloudformation.AutoDeployment {
	if in == nil {
		return nil
	}
	return &sdkcloudformation.AutoDeployment{
		Enabled:                      in.Enabled,
		RetainStacksOnAccountRemoval: in.RetainStacksOnAccountRemoval,
	}
}

func toSDKOperationPreferences(in *cfn.StackSetOperationPreferences) *sdkcloudformation.StackSetOperationPreferences {
	if in == nil {
		return nil
	}
	return &sdkcloudformation.StackSetOperationPreferences{
		RegionConcurrencyType:      enumPtr(in.RegionConcurrencyType),
		RegionOrder:                shape.CopyStrings(in.RegionOrder),
		FailureToleranceCount:      in.FailureToleranceCount,
		FailureTolerancePercentage: in.FailureTolerancePercentage,
		MaxConcurrentCount:         in.MaxConcurrentCount,
		MaxConcurrentPercentage:    in.MaxConcurrentPercentage,
	}
}

func fromSDKOperationPreferences(in *sdkcloudformation.StackSetOperationPreferences) *cfn.StackSetOperationPreferences {
	if in == nil {
		return nil
	}
	return &cfn.StackSetOperationPreferences{
		RegionConcurrencyType:      enumValue[cfn.RegionConcurrencyType](in.RegionConcurrencyType),
		RegionOrder:                shape.CopyStrings(in.RegionOrder),
		FailureToleranceCount:      in.FailureToleranceCount,
		FailureTolerancePercentage: in.FailureTolerancePercentage,
		MaxConcurrentCount:         in.MaxConcurrentCount,
		MaxConcurrentPercentage:    in.MaxConcurrentPercentage,
	}
}

func fromSDKDriftDetectionDetails(in *sdkcloudformation.StackSetDriftDetectionDetails) *cfn.StackSetDriftDetectionDetails {
	if in == nil {
		return nil
	}
	return &cfn.StackSetDriftDetectionDetails{
		DriftStatus:                   enumValue[cfn.StackSetDriftStatus](in.DriftStatus),
		DriftDetectionStatus:          enumValue[cfn.StackSetDriftDetectionStatus](in.DriftDetectionStatus),
		LastDriftCheckTimestamp:       in.LastDriftCheckTimestamp,
		TotalStackInstancesCount:      in.TotalStackInstancesCount,
		DriftedStackInstancesCount:    in.DriftedStackInstancesCount,
		InSyncStackInstancesCount:     in.InSyncStackInstancesCount,
		InProgressStackInstancesCount: in.InProgressStackInstancesCount,
		FailedStackInstancesCount:     in.FailedStackInstancesCount,
	}
}

func toSDKCreateStackSetInput(in *cfn.CreateStackSetInput) *sdkcloudformation.CreateStackSetInput {
	return &sdkcloudformation.CreateStackSetInput{
		StackSetName:          in.StackSetName,
		Description:           in.Description,
		TemplateBody:          in.TemplateBody,
		TemplateURL:           in.TemplateURL,
		Parameters:            mapSlice(in.Parameters, toSDKParameter),
		Capabilities:          enumPtrs(in.Capabilities),
		Tags:                  mapSlice(in.Tags, toSDKTag),
		AdministrationRoleARN: in.AdministrationRoleARN,
		ExecutionRoleName:     in.ExecutionRoleName,
		PermissionModel:       enumPtr(in.PermissionModel),
		AutoDeployment:        toSDKAutoDeployment(in.AutoDeployment),
		ClientRequestToken:    in.ClientRequestToken,
	}
}

func toSDKUpdateStackSetInput(in *cfn.UpdateStackSetInput) *sdkcloudformation.UpdateStackSetInput {
	return &sdkcloudformation.UpdateStackSetInput{
		StackSetName:          in.StackSetName,
		Description:           in.Description,
		TemplateBody:          in.TemplateBody,
		TemplateURL:           in.TemplateURL,
		UsePreviousTemplate:   in.UsePreviousTemplate,
		Parameters:            mapSlice(in.Parameters, toSDKParameter),
		Capabilities:          enumPtrs(in.Capabilities),
		Tags:                  mapSlice(in.Tags, toSDKTag),
		OperationPreferences:  toSDKOperationPreferences(in.OperationPreferences),
		AdministrationRoleARN: in.AdministrationRoleARN,
		ExecutionRoleName:     in.ExecutionRoleName,
		DeploymentTargets:     toSDKDeploymentTargets(in.DeploymentTargets),
		PermissionModel:       enumPtr(in.PermissionModel),
		AutoDeployment:        toSDKAutoDeployment(in.AutoDeployment),
		OperationId:           in.OperationId,
		Accounts:              shape.CopyStrings(in.Accounts),
		Regions:               shape.CopyStrings(in.Regions),
	}
}

func toSDKUpdateStackInstancesInput(in *cfn.UpdateStackInstancesInput) *sdkcloudformation.UpdateStackInstancesInput {
	return &sdkcloudformation.UpdateStackInstancesInput{
		StackSetName:         in.StackSetName,
		Accounts:             shape.CopyStrings(in.Accounts),
		DeploymentTargets:    toSDKDeploymentTargets(in.DeploymentTargets),
		Regions:              shape.CopyStrings(in.Regions),
		ParameterOverrides:   mapSlice(in.ParameterOverrides, toSDKParameter),
		OperationPreferences: toSDKOperationPreferences(in.OperationPreferences),
		OperationId:          in.OperationId,
	}
}

func fromSDKStackSetOperation(in *sdkcloudformation.StackSetOperation) *cfn.StackSetOperation {
	if in == nil {
		return nil
	}
	return &cfn.StackSetOperation{
		OperationId:                   in.OperationId,
		StackSetId:                    in.StackSetId,
		Action:                        enumValue[cfn.StackSetOperationAction](in.Action),
		Status:                        enumValue[cfn.StackSetOperationStatus](in.Status),
		OperationPreferences:          fromSDKOperationPreferences(in.OperationPreferences),
		RetainStacks:                  in.RetainStacks,
		AdministrationRoleARN:         in.AdministrationRoleARN,
		ExecutionRoleName:             in.ExecutionRoleName,
		CreationTimestamp:             in.CreationTimestamp,
		EndTimestamp:                  in.EndTimestamp,
		DeploymentTargets:             fromSDKDeploymentTargets(in.DeploymentTargets),
		StackSetDriftDetectionDetails: fromSDKDriftDetectionDetails(in.StackSetDriftDetectionDetails),
	}
}

func toSDKListStackInstancesInput(in *cfn.ListStackInstancesInput) *sdkcloudformation.ListStackInstancesInput {
	return &sdkcloudformation.ListStackInstancesInput{
		StackSetName: in.StackSetName,
		NextToken:    in.NextToken,
		MaxResults:   in.MaxResults,
		Filters: mapSlice(in.Filters, func(f *cfn.StackInstanceFilter) *sdkcloudformation.StackInstanceFilter {
			if f == nil {
				return nil
			}
			return &sdkcloudformation.StackInstanceFilter{
				Name:   enumPtr(f.Name),
				Values: f.Values,
			}
		}),
		StackInstanceAccount: in.StackInstanceAccount,
		StackInstanceRegion:  in.StackInstanceRegion,
	}
}

func fromSDKStackInstanceSummary(in *sdkcloudformation.StackInstanceSummary) *cfn.StackInstanceSummary {
	if in == nil {
		return nil
	}
	out := &cfn.StackInstanceSummary{
		StackSetId:              in.StackSetId,
		Region:                  in.Region,
		Account:                 in.Account,
		StackId:                 in.StackId,
		Status:                  enumValue[cfn.StackInstanceStatus](in.Status),
		StatusReason:            in.StatusReason,
		OrganizationalUnitId:    in.OrganizationalUnitId,
		DriftStatus:             enumValue[cfn.StackDriftStatus](in.DriftStatus),
		LastDriftCheckTimestamp: in.LastDriftCheckTimestamp,
	}
	if s := in.StackInstanceStatus; s != nil {
		out.StackInstanceStatus = &cfn.StackInstanceComprehensiveStatus{
			DetailedStatus: enumValue[cfn.StackInstanceDetailedStatus](s.DetailedStatus),
		}
	}
	return out
}

// Registry types.

func toSDKDescribeTypeInput(in *cfn.DescribeTypeInput) *sdkcloudformation.DescribeTypeInput {
	return &sdkcloudformation.DescribeTypeInput{
		Type:      enumPtr(in.Type),
		TypeName:  in.TypeName,
		Arn:       in.Arn,
		VersionId: in.VersionId,
	}
}

func fromSDKDescribeTypeOutput(in *sdkcloudformation.DescribeTypeOutput) *cfn.DescribeTypeOutput {
	out := &cfn.DescribeTypeOutput{
		Arn:              in.Arn,
		Type:             enumValue[cfn.RegistryType](in.Type),
		TypeName:         in.TypeName,
		DefaultVersionId: in.DefaultVersionId,
		IsDefaultVersion: in.IsDefaultVersion,
		Description:      in.Description,
		Schema:           in.Schema,
		ProvisioningType: enumValue[cfn.ProvisioningType](in.ProvisioningType),
		DeprecatedStatus: enumValue[cfn.DeprecatedStatus](in.DeprecatedStatus),
		ExecutionRoleArn: in.ExecutionRoleArn,
		Visibility:       enumValue[cfn.Visibility](in.Visibility),
		SourceUrl:        in.SourceUrl,
		DocumentationUrl: in.DocumentationUrl,
		LastUpdated:      in.LastUpdated,
		TimeCreated:      in.TimeCreated,
	}
	if lc := in.LoggingConfig; lc != nil {
		out.LoggingConfig = &cfn.LoggingConfig{
			LogRoleArn:   lc.LogRoleArn,
			LogGroupName: lc.LogGroupName,
		}
	}
	return out
}
