package config

import "github.com/hashicorp/hcl/v2"

// HCLRule represents a security_group_rule block in the descriptor.
type HCLRule struct {
	Protocol string `hcl:"protocol"`
	Port     int32  `hcl:"port"`
	CIDR     string `hcl:"cidr"`
}

// HCLService represents the body of a service block in the descriptor.
type HCLService struct {
	Cluster       string     `hcl:"cluster,optional"`
	Image         string     `hcl:"image"`
	CPU           int32      `hcl:"cpu"`
	Memory        int32      `hcl:"memory"`
	Port          int32      `hcl:"port"`
	DesiredCount  int32      `hcl:"desired_count"`
	Subnets       []string   `hcl:"subnets"`
	SecurityGroup string     `hcl:"security_group,optional"`
	Rules         []*HCLRule `hcl:"security_group_rule,block"`
}

// ServiceBlock represents a single labeled service block.
type ServiceBlock struct {
	Name string   `hcl:"name,label"`
	Body hcl.Body `hcl:",remain"`
}

// DescriptorFile represents the top-level structure of a deployment
// descriptor.
type DescriptorFile struct {
	Services []*ServiceBlock `hcl:"service,block"`
	Remain   hcl.Body        `hcl:",remain"` // Catch-all for other blocks if necessary
}
