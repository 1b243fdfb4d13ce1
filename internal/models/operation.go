package models

// OperationKind identifies one kind of change the executor can apply.
type OperationKind string

const (
	OpCreateCluster          OperationKind = "CreateCluster"
	OpRegisterTaskDefinition OperationKind = "RegisterTaskDefinition"
	OpUpdateService          OperationKind = "UpdateService"
	OpUpdateNetworking       OperationKind = "UpdateNetworking"
)

// ChangeOperation is a single step of a deployment plan. Each operation
// carries everything needed to apply and audit it independently of the rest
// of the plan.
type ChangeOperation struct {
	Kind   OperationKind `json:"kind"`
	Reason string        `json:"reason"`

	ClusterName string          `json:"cluster_name"`
	Spec        *DeploymentSpec `json:"spec,omitempty"`

	// CreateService is set on UpdateService operations when the service does
	// not exist yet and must be created rather than updated.
	CreateService bool `json:"create_service,omitempty"`

	// PreviousTaskDefinitionARN records, on UpdateService operations against
	// an existing service, the revision the service ran before this
	// deployment. It is the rollback anchor.
	PreviousTaskDefinitionARN string `json:"previous_task_definition_arn,omitempty"`

	// Networking payload, set on UpdateNetworking operations.
	SecurityGroupID string              `json:"security_group_id,omitempty"`
	AuthorizeRules  []SecurityGroupRule `json:"authorize_rules,omitempty"`
	RevokeRules     []SecurityGroupRule `json:"revoke_rules,omitempty"`
}

// DeploymentResult is the terminal record of a run: either a converged
// success with the final service state, or a failure pointing at the
// operation that broke and whether a rollback was performed.
type DeploymentResult struct {
	Success     bool   `json:"success"`
	ServiceName string `json:"service_name"`
	ClusterName string `json:"cluster_name"`

	TaskDefinitionARN string `json:"task_definition_arn,omitempty"`
	DesiredCount      int32  `json:"desired_count"`
	RunningCount      int32  `json:"running_count"`

	// FailedOperationIndex is the zero-based index into the plan of the
	// operation that failed, or -1 when no operation failed.
	FailedOperationIndex int    `json:"failed_operation_index"`
	RolledBack           bool   `json:"rolled_back"`
	Error                string `json:"error,omitempty"`
}
