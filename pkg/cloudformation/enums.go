// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cloudformation

// Capability acknowledges that a template contains resources that can affect permissions or expand macros.
type Capability string

// Enum values for Capability
const (
	CapabilityIAM        Capability = "CAPABILITY_IAM"
	CapabilityNamedIAM   Capability = "CAPABILITY_NAMED_IAM"
	CapabilityAutoExpand Capability = "CAPABILITY_AUTO_EXPAND"
)

// Values returns all known values for Capability. Note that this can be expanded in the
// future, and so it is only as up to date as the client.
func (Capability) Values() []Capability {
	return []Capability{
		CapabilityIAM,
		CapabilityNamedIAM,
		CapabilityAutoExpand,
	}
}

// IsKnown returns true if e is one of the values returned by Values.
func (e Capability) IsKnown() bool {
	for _, v := range e.Values() {
		if e == v {
			return true
		}
	}
	return false
}

// ChangeAction is the action CloudFormation takes on a resource in a change set.
type ChangeAction string

// Enum values for ChangeAction
const (
	ChangeActionAdd     ChangeAction = "Add"
	ChangeActionModify  ChangeAction = "Modify"
	ChangeActionRemove  ChangeAction = "Remove"
	ChangeActionImport  ChangeAction = "Import"
	ChangeActionDynamic ChangeAction = "Dynamic"
)

// Values returns all known values for ChangeAction. Note that this can be expanded in the
// future, and so it is only as up to date as the client.
func (ChangeAction) Values() []ChangeAction {
	return []ChangeAction{
		ChangeActionAdd,
		ChangeActionModify,
		ChangeActionRemove,
		ChangeActionImport,
		ChangeActionDynamic,
	}
}

// IsKnown returns true if e is one of the values returned by Values.
func (e ChangeAction) IsKnown() bool {
	for _, v := range e.Values() {
		if e == v {
			return true
		}
	}
	return false
}

// ChangeSetStatus is the state of a change set's creation.
type ChangeSetStatus string

// Enum values for ChangeSetStatus
const (
	ChangeSetStatusCreatePending    ChangeSetStatus = "CREATE_PENDING"
	ChangeSetStatusCreateInProgress ChangeSetStatus = "CREATE_IN_PROGRESS"
	ChangeSetStatusCreateComplete   ChangeSetStatus = "CREATE_COMPLETE"
	ChangeSetStatusDeletePending    ChangeSetStatus = "DELETE_PENDING"
	ChangeSetStatusDeleteInProgress ChangeSetStatus = "DELETE_IN_PROGRESS"
	ChangeSetStatusDeleteComplete   ChangeSetStatus = "DELETE_COMPLETE"
	ChangeSetStatusDeleteFailed     ChangeSetStatus = "DELETE_FAILED"
	ChangeSetStatusFailed           ChangeSetStatus = "FAILED"
)

// Values returns all known values for ChangeSetStatus. Note that this can be expanded in the
// future, and so it is only as up to date as the client.
func (ChangeSetStatus) Values() []ChangeSetStatus {
	return []ChangeSetStatus{
		ChangeSetStatusCreatePending,
		ChangeSetStatusCreateInProgress,
		ChangeSetStatusCreateComplete,
		ChangeSetStatusDeletePending,
		ChangeSetStatusDeleteInProgress,
		ChangeSetStatusDeleteComplete,
		ChangeSetStatusDeleteFailed,
		ChangeSetStatusFailed,
	}
}

// IsKnown returns true if e is one of the values returned by Values.
func (e ChangeSetStatus) IsKnown() bool {
	for _, v := range e.Values() {
		if e == v {
			return true
		}
	}
	return false
}

// ChangeSetType is whether a change set creates, updates or imports into a stack.
type ChangeSetType string

// Enum values for ChangeSetType
const (
	ChangeSetTypeCreate ChangeSetType = "CREATE"
	ChangeSetTypeUpdate ChangeSetType = "UPDATE"
	ChangeSetTypeImport ChangeSetType = "IMPORT"
)

// Values returns all known values for ChangeSetType. Note that this can be expanded in the
// future, and so it is only as up to date as the client.
func (ChangeSetType) Values() []ChangeSetType {
	return []ChangeSetType{
		ChangeSetTypeCreate,
		ChangeSetTypeUpdate,
		ChangeSetTypeImport,
	}
}

// IsKnown returns true if e is one of the values returned by Values.
func (e ChangeSetType) IsKnown() bool {
	for _, v := range e.Values() {
		if e == v {
			return true
		}
	}
	return false
}

// ChangeSource is the source of a resource attribute change.
type ChangeSource string

// Enum values for ChangeSource
const (
	ChangeSourceResourceReference  ChangeSource = "ResourceReference"
	ChangeSourceParameterReference ChangeSource = "ParameterReference"
	ChangeSourceResourceAttribute  ChangeSource = "ResourceAttribute"
	ChangeSourceDirectModification ChangeSource = "DirectModification"
	ChangeSourceAutomatic          ChangeSource = "Automatic"
)

// Values returns all known values for ChangeSource. Note that this can be expanded in the
// future, and so it is only as up to date as the client.
func (ChangeSource) Values() []ChangeSource {
	return []ChangeSource{
		ChangeSourceResourceReference,
		ChangeSourceParameterReference,
		ChangeSourceResourceAttribute,
		ChangeSourceDirectModification,
		ChangeSourceAutomatic,
	}
}

// IsKnown returns true if e is one of the values returned by Values.
func (e ChangeSource) IsKnown() bool {
	for _, v := range e.Values() {
		if e == v {
			return true
		}
	}
	return false
}

// ChangeType is the kind of entity a change describes.
type ChangeType string

// Enum values for ChangeType
const (
	ChangeTypeResource ChangeType = "Resource"
)

// Values returns all known values for ChangeType. Note that this can be expanded in the
// future, and so it is only as up to date as the client.
func (ChangeType) Values() []ChangeType {
	return []ChangeType{
		ChangeTypeResource,
	}
}

// IsKnown returns true if e is one of the values returned by Values.
func (e ChangeType) IsKnown() bool {
	for _, v := range e.Values() {
		if e == v {
			return true
		}
	}
	return false
}

// DeprecatedStatus is whether a registered extension version is still usable.
type DeprecatedStatus string

// Enum values for DeprecatedStatus
const (
	DeprecatedStatusLive       DeprecatedStatus = "LIVE"
	DeprecatedStatusDeprecated DeprecatedStatus = "DEPRECATED"
)

// Values returns all known values for DeprecatedStatus. Note that this can be expanded in the
// future, and so it is only as up to date as the client.
func (DeprecatedStatus) Values() []DeprecatedStatus {
	return []DeprecatedStatus{
		DeprecatedStatusLive,
		DeprecatedStatusDeprecated,
	}
}

// IsKnown returns true if e is one of the values returned by Values.
func (e DeprecatedStatus) IsKnown() bool {
	for _, v := range e.Values() {
		if e == v {
			return true
		}
	}
	return false
}

// EvaluationType is whether CloudFormation can determine a target value statically.
type EvaluationType string

// Enum values for EvaluationType
const (
	EvaluationTypeStatic  EvaluationType = "Static"
	EvaluationTypeDynamic EvaluationType = "Dynamic"
)

// Values returns all known values for EvaluationType. Note that this can be expanded in the
// future, and so it is only as up to date as the client.
func (EvaluationType) Values() []EvaluationType {
	return []EvaluationType{
		EvaluationTypeStatic,
		EvaluationTypeDynamic,
	}
}

// IsKnown returns true if e is one of the values returned by Values.
func (e EvaluationType) IsKnown() bool {
	for _, v := range e.Values() {
		if e == v {
			return true
		}
	}
	return false
}

// ExecutionStatus is whether a change set can be executed.
type ExecutionStatus string

// Enum values for ExecutionStatus
const (
	ExecutionStatusUnavailable       ExecutionStatus = "UNAVAILABLE"
	ExecutionStatusAvailable         ExecutionStatus = "AVAILABLE"
	ExecutionStatusExecuteInProgress ExecutionStatus = "EXECUTE_IN_PROGRESS"
	ExecutionStatusExecuteComplete   ExecutionStatus = "EXECUTE_COMPLETE"
	ExecutionStatusExecuteFailed     ExecutionStatus = "EXECUTE_FAILED"
	ExecutionStatusObsolete          ExecutionStatus = "OBSOLETE"
)

// Values returns all known values for ExecutionStatus. Note that this can be expanded in the
// future, and so it is only as up to date as the client.
func (ExecutionStatus) Values() []ExecutionStatus {
	return []ExecutionStatus{
		ExecutionStatusUnavailable,
		ExecutionStatusAvailable,
		ExecutionStatusExecuteInProgress,
		ExecutionStatusExecuteComplete,
		ExecutionStatusExecuteFailed,
		ExecutionStatusObsolete,
	}
}

// IsKnown returns true if e is one of the values returned by Values.
func (e ExecutionStatus) IsKnown() bool {
	for _, v := range e.Values() {
		if e == v {
			return true
		}
	}
	return false
}

// OnFailure is the action taken when stack creation fails.
type OnFailure string

// Enum values for OnFailure
const (
	OnFailureDoNothing OnFailure = "DO_NOTHING"
	OnFailureRollback  OnFailure = "ROLLBACK"
	OnFailureDelete    OnFailure = "DELETE"
)

// Values returns all known values for OnFailure. Note that this can be expanded in the
// future, and so it is only as up to date as the client.
func (OnFailure) Values() []OnFailure {
	return []OnFailure{
		OnFailureDoNothing,
		OnFailureRollback,
		OnFailureDelete,
	}
}

// IsKnown returns true if e is one of the values returned by Values.
func (e OnFailure) IsKnown() bool {
	for _, v := range e.Values() {
		if e == v {
			return true
		}
	}
	return false
}

// PermissionModels is how the IAM roles for stack set operations are created.
type PermissionModels string

// Enum values for PermissionModels
const (
	PermissionModelsServiceManaged PermissionModels = "SERVICE_MANAGED"
	PermissionModelsSelfManaged    PermissionModels = "SELF_MANAGED"
)

// Values returns all known values for PermissionModels. Note that this can be expanded in the
// future, and so it is only as up to date as the client.
func (PermissionModels) Values() []PermissionModels {
	return []PermissionModels{
		PermissionModelsServiceManaged,
		PermissionModelsSelfManaged,
	}
}

// IsKnown returns true if e is one of the values returned by Values.
func (e PermissionModels) IsKnown() bool {
	for _, v := range e.Values() {
		if e == v {
			return true
		}
	}
	return false
}

// ProvisioningType is whether an extension supports create, read, update and delete handlers.
type ProvisioningType string

// Enum values for ProvisioningType
const (
	ProvisioningTypeNonProvisionable ProvisioningType = "NON_PROVISIONABLE"
	ProvisioningTypeImmutable        ProvisioningType = "IMMUTABLE"
	ProvisioningTypeFullyMutable     ProvisioningType = "FULLY_MUTABLE"
)

// Values returns all known values for ProvisioningType. Note that this can be expanded in the
// future, and so it is only as up to date as the client.
func (ProvisioningType) Values() []ProvisioningType {
	return []ProvisioningType{
		ProvisioningTypeNonProvisionable,
		ProvisioningTypeImmutable,
		ProvisioningTypeFullyMutable,
	}
}

// IsKnown returns true if e is one of the values returned by Values.
func (e ProvisioningType) IsKnown() bool {
	for _, v := range e.Values() {
		if e == v {
			return true
		}
	}
	return false
}

// RegionConcurrencyType is whether a stack set operation deploys to regions one at a time or in parallel.
type RegionConcurrencyType string

// Enum values for RegionConcurrencyType
const (
	RegionConcurrencyTypeSequential RegionConcurrencyType = "SEQUENTIAL"
	RegionConcurrencyTypeParallel   RegionConcurrencyType = "PARALLEL"
)

// Values returns all known values for RegionConcurrencyType. Note that this can be expanded in the
// future, and so it is only as up to date as the client.
func (RegionConcurrencyType) Values() []RegionConcurrencyType {
	return []RegionConcurrencyType{
		RegionConcurrencyTypeSequential,
		RegionConcurrencyTypeParallel,
	}
}

// IsKnown returns true if e is one of the values returned by Values.
func (e RegionConcurrencyType) IsKnown() bool {
	for _, v := range e.Values() {
		if e == v {
			return true
		}
	}
	return false
}

// RegistryType is the kind of registry extension.
type RegistryType string

// Enum values for RegistryType
const (
	RegistryTypeResource RegistryType = "RESOURCE"
	RegistryTypeModule   RegistryType = "MODULE"
)

// Values returns all known values for RegistryType. Note that this can be expanded in the
// future, and so it is only as up to date as the client.
func (RegistryType) Values() []RegistryType {
	return []RegistryType{
		RegistryTypeResource,
		RegistryTypeModule,
	}
}

// IsKnown returns true if e is one of the values returned by Values.
func (e RegistryType) IsKnown() bool {
	for _, v := range e.Values() {
		if e == v {
			return true
		}
	}
	return false
}

// Replacement is whether a resource change requires replacing the resource.
type Replacement string

// Enum values for Replacement
const (
	ReplacementTrue        Replacement = "True"
	ReplacementFalse       Replacement = "False"
	ReplacementConditional Replacement = "Conditional"
)

// Values returns all known values for Replacement. Note that this can be expanded in the
// future, and so it is only as up to date as the client.
func (Replacement) Values() []Replacement {
	return []Replacement{
		ReplacementTrue,
		ReplacementFalse,
		ReplacementConditional,
	}
}

// IsKnown returns true if e is one of the values returned by Values.
func (e Replacement) IsKnown() bool {
	for _, v := range e.Values() {
		if e == v {
			return true
		}
	}
	return false
}

// RequiresRecreation is when changing a property recreates the resource.
type RequiresRecreation string

// Enum values for RequiresRecreation
const (
	RequiresRecreationNever         RequiresRecreation = "Never"
	RequiresRecreationConditionally RequiresRecreation = "Conditionally"
	RequiresRecreationAlways        RequiresRecreation = "Always"
)

// Values returns all known values for RequiresRecreation. Note that this can be expanded in the
// future, and so it is only as up to date as the client.
func (RequiresRecreation) Values() []RequiresRecreation {
	return []RequiresRecreation{
		RequiresRecreationNever,
		RequiresRecreationConditionally,
		RequiresRecreationAlways,
	}
}

// IsKnown returns true if e is one of the values returned by Values.
func (e RequiresRecreation) IsKnown() bool {
	for _, v := range e.Values() {
		if e == v {
			return true
		}
	}
	return false
}

// ResourceAttribute is the resource attribute a change modifies.
type ResourceAttribute string

// Enum values for ResourceAttribute
const (
	ResourceAttributeProperties     ResourceAttribute = "Properties"
	ResourceAttributeMetadata       ResourceAttribute = "Metadata"
	ResourceAttributeCreationPolicy ResourceAttribute = "CreationPolicy"
	ResourceAttributeUpdatePolicy   ResourceAttribute = "UpdatePolicy"
	ResourceAttributeDeletionPolicy ResourceAttribute = "DeletionPolicy"
	ResourceAttributeTags           ResourceAttribute = "Tags"
)

// Values returns all known values for ResourceAttribute. Note that this can be expanded in the
// future, and so it is only as up to date as the client.
func (ResourceAttribute) Values() []ResourceAttribute {
	return []ResourceAttribute{
		ResourceAttributeProperties,
		ResourceAttributeMetadata,
		ResourceAttributeCreationPolicy,
		ResourceAttributeUpdatePolicy,
		ResourceAttributeDeletionPolicy,
		ResourceAttributeTags,
	}
}

// IsKnown returns true if e is one of the values returned by Values.
func (e ResourceAttribute) IsKnown() bool {
	for _, v := range e.Values() {
		if e == v {
			return true
		}
	}
	return false
}

// StackDriftStatus is the drift status of a stack compared to its template.
type StackDriftStatus string

// Enum values for StackDriftStatus
const (
	StackDriftStatusDrifted    StackDriftStatus = "DRIFTED"
	StackDriftStatusInSync     StackDriftStatus = "IN_SYNC"
	StackDriftStatusUnknown    StackDriftStatus = "UNKNOWN"
	StackDriftStatusNotChecked StackDriftStatus = "NOT_CHECKED"
)

// Values returns all known values for StackDriftStatus. Note that this can be expanded in the
// future, and so it is only as up to date as the client.
func (StackDriftStatus) Values() []StackDriftStatus {
	return []StackDriftStatus{
		StackDriftStatusDrifted,
		StackDriftStatusInSync,
		StackDriftStatusUnknown,
		StackDriftStatusNotChecked,
	}
}

// IsKnown returns true if e is one of the values returned by Values.
func (e StackDriftStatus) IsKnown() bool {
	for _, v := range e.Values() {
		if e == v {
			return true
		}
	}
	return false
}

// StackInstanceDetailedStatus is the detailed status of a stack instance.
type StackInstanceDetailedStatus string

// Enum values for StackInstanceDetailedStatus
const (
	StackInstanceDetailedStatusPending    StackInstanceDetailedStatus = "PENDING"
	StackInstanceDetailedStatusRunning    StackInstanceDetailedStatus = "RUNNING"
	StackInstanceDetailedStatusSucceeded  StackInstanceDetailedStatus = "SUCCEEDED"
	StackInstanceDetailedStatusFailed     StackInstanceDetailedStatus = "FAILED"
	StackInstanceDetailedStatusCancelled  StackInstanceDetailedStatus = "CANCELLED"
	StackInstanceDetailedStatusInoperable StackInstanceDetailedStatus = "INOPERABLE"
)

// Values returns all known values for StackInstanceDetailedStatus. Note that this can be expanded in the
// future, and so it is only as up to date as the client.
func (StackInstanceDetailedStatus) Values() []StackInstanceDetailedStatus {
	return []StackInstanceDetailedStatus{
		StackInstanceDetailedStatusPending,
		StackInstanceDetailedStatusRunning,
		StackInstanceDetailedStatusSucceeded,
		StackInstanceDetailedStatusFailed,
		StackInstanceDetailedStatusCancelled,
		StackInstanceDetailedStatusInoperable,
	}
}

// IsKnown returns true if e is one of the values returned by Values.
func (e StackInstanceDetailedStatus) IsKnown() bool {
	for _, v := range e.Values() {
		if e == v {
			return true
		}
	}
	return false
}

// StackInstanceFilterName is the field a stack instance filter matches on.
type StackInstanceFilterName string

// Enum values for StackInstanceFilterName
const (
	StackInstanceFilterNameDetailedStatus StackInstanceFilterName = "DETAILED_STATUS"
)

// Values returns all known values for StackInstanceFilterName. Note that this can be expanded in the
// future, and so it is only as up to date as the client.
func (StackInstanceFilterName) Values() []StackInstanceFilterName {
	return []StackInstanceFilterName{
		StackInstanceFilterNameDetailedStatus,
	}
}

// IsKnown returns true if e is one of the values returned by Values.
func (e StackInstanceFilterName) IsKnown() bool {
	for _, v := range e.Values() {
		if e == v {
			return true
		}
	}
	return false
}

// StackInstanceStatus is the status of a stack instance.
type StackInstanceStatus string

// Enum values for StackInstanceStatus
const (
	StackInstanceStatusCurrent    StackInstanceStatus = "CURRENT"
	StackInstanceStatusOutdated   StackInstanceStatus = "OUTDATED"
	StackInstanceStatusInoperable StackInstanceStatus = "INOPERABLE"
)

// Values returns all known values for StackInstanceStatus. Note that this can be expanded in the
// future, and so it is only as up to date as the client.
func (StackInstanceStatus) Values() []StackInstanceStatus {
	return []StackInstanceStatus{
		StackInstanceStatusCurrent,
		StackInstanceStatusOutdated,
		StackInstanceStatusInoperable,
	}
}

// IsKnown returns true if e is one of the values returned by Values.
func (e StackInstanceStatus) IsKnown() bool {
	for _, v := range e.Values() {
		if e == v {
			return true
		}
	}
	return false
}

// StackSetDriftDetectionStatus is the status of the latest drift detection on a stack set.
type StackSetDriftDetectionStatus string

// Enum values for StackSetDriftDetectionStatus
const (
	StackSetDriftDetectionStatusCompleted      StackSetDriftDetectionStatus = "COMPLETED"
	StackSetDriftDetectionStatusFailed         StackSetDriftDetectionStatus = "FAILED"
	StackSetDriftDetectionStatusPartialSuccess StackSetDriftDetectionStatus = "PARTIAL_SUCCESS"
	StackSetDriftDetectionStatusInProgress     StackSetDriftDetectionStatus = "IN_PROGRESS"
	StackSetDriftDetectionStatusStopped        StackSetDriftDetectionStatus = "STOPPED"
)

// Values returns all known values for StackSetDriftDetectionStatus. Note that this can be expanded in the
// future, and so it is only as up to date as the client.
func (StackSetDriftDetectionStatus) Values() []StackSetDriftDetectionStatus {
	return []StackSetDriftDetectionStatus{
		StackSetDriftDetectionStatusCompleted,
		StackSetDriftDetectionStatusFailed,
		StackSetDriftDetectionStatusPartialSuccess,
		StackSetDriftDetectionStatusInProgress,
		StackSetDriftDetectionStatusStopped,
	}
}

// IsKnown returns true if e is one of the values returned by Values.
func (e StackSetDriftDetectionStatus) IsKnown() bool {
	for _, v := range e.Values() {
		if e == v {
			return true
		}
	}
	return false
}

// StackSetDriftStatus is the drift status of a stack set.
type StackSetDriftStatus string

// Enum values for StackSetDriftStatus
const (
	StackSetDriftStatusDrifted    StackSetDriftStatus = "DRIFTED"
	StackSetDriftStatusInSync     StackSetDriftStatus = "IN_SYNC"
	StackSetDriftStatusNotChecked StackSetDriftStatus = "NOT_CHECKED"
)

// Values returns all known values for StackSetDriftStatus. Note that this can be expanded in the
// future, and so it is only as up to date as the client.
func (StackSetDriftStatus) Values() []StackSetDriftStatus {
	return []StackSetDriftStatus{
		StackSetDriftStatusDrifted,
		StackSetDriftStatusInSync,
		StackSetDriftStatusNotChecked,
	}
}

// IsKnown returns true if e is one of the values returned by Values.
func (e StackSetDriftStatus) IsKnown() bool {
	for _, v := range e.Values() {
		if e == v {
			return true
		}
	}
	return false
}

// StackSetOperationAction is the kind of stack set operation.
type StackSetOperationAction string

// Enum values for StackSetOperationAction
const (
	StackSetOperationActionCreate      StackSetOperationAction = "CREATE"
	StackSetOperationActionUpdate      StackSetOperationAction = "UPDATE"
	StackSetOperationActionDelete      StackSetOperationAction = "DELETE"
	StackSetOperationActionDetectDrift StackSetOperationAction = "DETECT_DRIFT"
)

// Values returns all known values for StackSetOperationAction. Note that this can be expanded in the
// future, and so it is only as up to date as the client.
func (StackSetOperationAction) Values() []StackSetOperationAction {
	return []StackSetOperationAction{
		StackSetOperationActionCreate,
		StackSetOperationActionUpdate,
		StackSetOperationActionDelete,
		StackSetOperationActionDetectDrift,
	}
}

// IsKnown returns true if e is one of the values returned by Values.
func (e StackSetOperationAction) IsKnown() bool {
	for _, v := range e.Values() {
		if e == v {
			return true
		}
	}
	return false
}

// StackSetOperationStatus is the overall status of a stack set operation.
type StackSetOperationStatus string

// Enum values for StackSetOperationStatus
const (
	StackSetOperationStatusRunning   StackSetOperationStatus = "RUNNING"
	StackSetOperationStatusSucceeded StackSetOperationStatus = "SUCCEEDED"
	StackSetOperationStatusFailed    StackSetOperationStatus = "FAILED"
	StackSetOperationStatusStopping  StackSetOperationStatus = "STOPPING"
	StackSetOperationStatusStopped   StackSetOperationStatus = "STOPPED"
	StackSetOperationStatusQueued    StackSetOperationStatus = "QUEUED"
)

// Values returns all known values for StackSetOperationStatus. Note that this can be expanded in the
// future, and so it is only as up to date as the client.
func (StackSetOperationStatus) Values() []StackSetOperationStatus {
	return []StackSetOperationStatus{
		StackSetOperationStatusRunning,
		StackSetOperationStatusSucceeded,
		StackSetOperationStatusFailed,
		StackSetOperationStatusStopping,
		StackSetOperationStatusStopped,
		StackSetOperationStatusQueued,
	}
}

// IsKnown returns true if e is one of the values returned by Values.
func (e StackSetOperationStatus) IsKnown() bool {
	for _, v := range e.Values() {
		if e == v {
			return true
		}
	}
	return false
}

// StackSetStatus is whether a stack set is active or deleted.
type StackSetStatus string

// Enum values for StackSetStatus
const (
	StackSetStatusActive  StackSetStatus = "ACTIVE"
	StackSetStatusDeleted StackSetStatus = "DELETED"
)

// Values returns all known values for StackSetStatus. Note that this can be expanded in the
// future, and so it is only as up to date as the client.
func (StackSetStatus) Values() []StackSetStatus {
	return []StackSetStatus{
		StackSetStatusActive,
		StackSetStatusDeleted,
	}
}

// IsKnown returns true if e is one of the values returned by Values.
func (e StackSetStatus) IsKnown() bool {
	for _, v := range e.Values() {
		if e == v {
			return true
		}
	}
	return false
}

// StackStatus is the current status of a stack.
type StackStatus string

// Enum values for StackStatus
const (
	StackStatusCreateInProgress                        StackStatus = "CREATE_IN_PROGRESS"
	StackStatusCreateFailed                            StackStatus = "CREATE_FAILED"
	StackStatusCreateComplete                          StackStatus = "CREATE_COMPLETE"
	StackStatusRollbackInProgress                      StackStatus = "ROLLBACK_IN_PROGRESS"
	StackStatusRollbackFailed                          StackStatus = "ROLLBACK_FAILED"
	StackStatusRollbackComplete                        StackStatus = "ROLLBACK_COMPLETE"
	StackStatusDeleteInProgress                        StackStatus = "DELETE_IN_PROGRESS"
	StackStatusDeleteFailed                            StackStatus = "DELETE_FAILED"
	StackStatusDeleteComplete                          StackStatus = "DELETE_COMPLETE"
	StackStatusUpdateInProgress                        StackStatus = "UPDATE_IN_PROGRESS"
	StackStatusUpdateCompleteCleanupInProgress         StackStatus = "UPDATE_COMPLETE_CLEANUP_IN_PROGRESS"
	StackStatusUpdateComplete                          StackStatus = "UPDATE_COMPLETE"
	StackStatusUpdateFailed                            StackStatus = "UPDATE_FAILED"
	StackStatusUpdateRollbackInProgress                StackStatus = "UPDATE_ROLLBACK_IN_PROGRESS"
	StackStatusUpdateRollbackFailed                    StackStatus = "UPDATE_ROLLBACK_FAILED"
	StackStatusUpdateRollbackCompleteCleanupInProgress StackStatus = "UPDATE_ROLLBACK_COMPLETE_CLEANUP_IN_PROGRESS"
	StackStatusUpdateRollbackComplete                  StackStatus = "UPDATE_ROLLBACK_COMPLETE"
	StackStatusReviewInProgress                        StackStatus = "REVIEW_IN_PROGRESS"
	StackStatusImportInProgress                        StackStatus = "IMPORT_IN_PROGRESS"
	StackStatusImportComplete                          StackStatus = "IMPORT_COMPLETE"
	StackStatusImportRollbackInProgress                StackStatus = "IMPORT_ROLLBACK_IN_PROGRESS"
	StackStatusImportRollbackFailed                    StackStatus = "IMPORT_ROLLBACK_FAILED"
	StackStatusImportRollbackComplete                  StackStatus = "IMPORT_ROLLBACK_COMPLETE"
)

// Values returns all known values for StackStatus. Note that this can be expanded in the
// future, and so it is only as up to date as the client.
func (StackStatus) Values() []StackStatus {
	return []StackStatus{
		StackStatusCreateInProgress,
		StackStatusCreateFailed,
		StackStatusCreateComplete,
		StackStatusRollbackInProgress,
		StackStatusRollbackFailed,
		StackStatusRollbackComplete,
		StackStatusDeleteInProgress,
		StackStatusDeleteFailed,
		StackStatusDeleteComplete,
		StackStatusUpdateInProgress,
		StackStatusUpdateCompleteCleanupInProgress,
		StackStatusUpdateComplete,
		StackStatusUpdateFailed,
		StackStatusUpdateRollbackInProgress,
		StackStatusUpdateRollbackFailed,
		StackStatusUpdateRollbackCompleteCleanupInProgress,
		StackStatusUpdateRollbackComplete,
		StackStatusReviewInProgress,
		StackStatusImportInProgress,
		StackStatusImportComplete,
		StackStatusImportRollbackInProgress,
		StackStatusImportRollbackFailed,
		StackStatusImportRollbackComplete,
	}
}

// IsKnown returns true if e is one of the values returned by Values.
func (e StackStatus) IsKnown() bool {
	for _, v := range e.Values() {
		if e == v {
			return true
		}
	}
	return false
}

// Visibility is whether an extension is public or private to the account.
type Visibility string

// Enum values for Visibility
const (
	VisibilityPublic  Visibility = "PUBLIC"
	VisibilityPrivate Visibility = "PRIVATE"
)

// Values returns all known values for Visibility. Note that this can be expanded in the
// future, and so it is only as up to date as the client.
func (Visibility) Values() []Visibility {
	return []Visibility{
		VisibilityPublic,
		VisibilityPrivate,
	}
}

// IsKnown returns true if e is one of the values returned by Values.
func (e Visibility) IsKnown() bool {
	for _, v := range e.Values() {
		if e == v {
			return true
		}
	}
	return false
}
