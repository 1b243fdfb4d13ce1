package models

// DeploymentSpec is the desired state for a single containerized service,
// loaded once per run from the deployment descriptor. It is never mutated
// after validation.
type DeploymentSpec struct {
	ServiceName        string              `json:"service_name"`
	ClusterName        string              `json:"cluster_name"`
	Image              string              `json:"image"`
	CPU                int32               `json:"cpu"`
	Memory             int32               `json:"memory"`
	Port               int32               `json:"port"`
	DesiredCount       int32               `json:"desired_count"`
	Subnets            []string            `json:"subnets"`
	SecurityGroupID    string              `json:"security_group,omitempty"`
	SecurityGroupRules []SecurityGroupRule `json:"security_group_rules,omitempty"`
}

// SecurityGroupRule is a single ingress rule the service requires.
type SecurityGroupRule struct {
	Protocol string `json:"protocol"`
	Port     int32  `json:"port"`
	CIDR     string `json:"cidr"`
}

// ClusterState is the observed state of the target cluster.
type ClusterState struct {
	ARN    string `json:"arn"`
	Name   string `json:"name"`
	Status string `json:"status"`
}

// ServiceState is the observed state of the target service.
type ServiceState struct {
	ARN               string `json:"arn"`
	Name              string `json:"name"`
	Status            string `json:"status"`
	TaskDefinitionARN string `json:"task_definition_arn"`
	DesiredCount      int32  `json:"desired_count"`
	RunningCount      int32  `json:"running_count"`
	PendingCount      int32  `json:"pending_count"`
	// DeploymentCount is the number of in-flight deployments reported by the
	// platform; a steady service has exactly one (the primary).
	DeploymentCount int `json:"deployment_count"`
}

// Steady reports whether the platform considers the service converged:
// a single primary deployment with every desired task running.
func (s *ServiceState) Steady() bool {
	return s != nil &&
		s.DeploymentCount <= 1 &&
		s.PendingCount == 0 &&
		s.RunningCount == s.DesiredCount
}

// TaskDefinitionState is the observed state of the task-definition revision
// currently referenced by the service.
type TaskDefinitionState struct {
	ARN      string `json:"arn"`
	Family   string `json:"family"`
	Revision int32  `json:"revision"`
	Image    string `json:"image"`
	CPU      int32  `json:"cpu"`
	Memory   int32  `json:"memory"`
	Port     int32  `json:"port"`
}

// SecurityGroupState is the observed ingress configuration of the security
// group named by the descriptor.
type SecurityGroupState struct {
	ID    string              `json:"id"`
	Rules []SecurityGroupRule `json:"rules"`
}

// RemoteState is a read-only snapshot of what currently exists on the
// platform for the named cluster/service. Nil fields mean the resource does
// not exist yet; the whole struct is fetched fresh once per invocation.
type RemoteState struct {
	Cluster        *ClusterState        `json:"cluster,omitempty"`
	Service        *ServiceState        `json:"service,omitempty"`
	TaskDefinition *TaskDefinitionState `json:"task_definition,omitempty"`
	SecurityGroup  *SecurityGroupState  `json:"security_group,omitempty"`
}
