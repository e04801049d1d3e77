// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cloudformation

import (
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/stretchr/testify/require"
)

func TestCreateChangeSetInput(t *testing.T) {
	newInput := func() *CreateChangeSetInput {
		return new(CreateChangeSetInput).
			SetStackName("phonetool").
			AppendCapabilities(CapabilityIAM).
			AppendTags(new(Tag).SetKey("app").SetValue("phonetool")).
			SetChangeSetName("cfnshape-1").
			SetChangeSetType(ChangeSetTypeUpdate)
	}

	t.Run("renders", func(t *testing.T) {
		require.Equal(t, "{StackName: phonetool,Capabilities: [CAPABILITY_IAM],Tags: [{Key: app,Value: phonetool}],"+
			"ChangeSetName: cfnshape-1,ChangeSetType: UPDATE}", newInput().String())
	})
	t.Run("appends to lists", func(t *testing.T) {
		in := newInput().
			AppendCapabilities(CapabilityNamedIAM).
			AppendResourcesToImport(new(ResourceToImport).SetResourceType("AWS::S3::Bucket").SetLogicalResourceId("Bucket"))

		require.Equal(t, []Capability{CapabilityIAM, CapabilityNamedIAM}, in.Capabilities)
		require.Len(t, in.ResourcesToImport, 1)
		require.False(t, newInput().Equal(in))
	})
	t.Run("equality", func(t *testing.T) {
		require.True(t, newInput().Equal(newInput()))
		require.Equal(t, newInput().Hash(), newInput().Hash())
	})
	t.Run("validates", func(t *testing.T) {
		require.NoError(t, newInput().Validate())
	})
	t.Run("requires a stack and change set name", func(t *testing.T) {
		err := new(CreateChangeSetInput).Validate()

		require.Error(t, err)
		require.Contains(t, err.Error(), "2 validation error(s) found.")
		require.Contains(t, err.Error(), "missing required field, CreateChangeSetInput.StackName.")
		require.Contains(t, err.Error(), "missing required field, CreateChangeSetInput.ChangeSetName.")
	})
	t.Run("rejects a change set name that does not start with a letter", func(t *testing.T) {
		in := newInput().SetChangeSetName("1-bucket")

		var invalidParams request.ErrInvalidParams
		require.True(t, errors.As(in.Validate(), &invalidParams))
		require.Len(t, invalidParams.OrigErrs(), 1)
		require.Equal(t, "CreateChangeSetInput.ChangeSetName", invalidParams.OrigErrs()[0].(request.ErrInvalidParam).Field())
	})
}

func TestDescribeChangeSetOutput(t *testing.T) {
	out := new(DescribeChangeSetOutput).
		SetChangeSetName("cfnshape-1").
		SetExecutionStatus(ExecutionStatusAvailable).
		SetStatus(ChangeSetStatusCreateComplete).
		AppendChanges(new(Change).
			SetType(ChangeTypeResource).
			SetResourceChange(new(ResourceChange).
				SetAction(ChangeActionModify).
				SetLogicalResourceId("Bucket").
				SetReplacement(ReplacementConditional).
				AppendScope(ResourceAttributeProperties).
				AppendDetails(new(ResourceChangeDetail).
					SetEvaluation(EvaluationTypeStatic).
					SetTarget(new(ResourceTargetDefinition).
						SetAttribute(ResourceAttributeProperties).
						SetName("BucketName").
						SetRequiresRecreation(RequiresRecreationAlways)))))

	require.Equal(t, "{ChangeSetName: cfnshape-1,ExecutionStatus: AVAILABLE,Status: CREATE_COMPLETE,"+
		"Changes: [{Type: Resource,ResourceChange: {Action: Modify,LogicalResourceId: Bucket,Replacement: Conditional,"+
		"Scope: [Properties],Details: [{Target: {Attribute: Properties,Name: BucketName,RequiresRecreation: Always},"+
		"Evaluation: Static}]}}]}", out.String())
}

func TestResourceToImport_SetResourceIdentifier(t *testing.T) {
	id := map[string]*string{"BucketName": nil}
	r := new(ResourceToImport).SetResourceIdentifier(id)

	id["Other"] = nil
	require.Len(t, r.ResourceIdentifier, 1)
}
