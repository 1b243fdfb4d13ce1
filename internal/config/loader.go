package config

import (
	"fmt"
	"net"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"ecsdeployer/internal/deploy"
	"ecsdeployer/internal/models"
	"ecsdeployer/pkg/logging"
)

// fargateMemoryRange lists the valid memory range (MiB) for each Fargate CPU
// size. Memory outside the range for the declared cpu is rejected before any
// remote call is made.
var fargateMemoryRange = map[int32][2]int32{
	256:  {512, 2048},
	512:  {1024, 4096},
	1024: {2048, 8192},
	2048: {4096, 16384},
	4096: {8192, 30720},
}

type DefaultLoader struct {
	logger logging.Logger
}

// NewDefaultLoader creates a new instance of DefaultLoader
func NewDefaultLoader() *DefaultLoader {
	return NewLoaderWithLogger(
		logging.NewDefaultLogger(),
	)
}

// NewLoaderWithLogger creates a new instance of DefaultLoader with a specific logger
func NewLoaderWithLogger(logger logging.Logger) *DefaultLoader {
	return &DefaultLoader{
		logger: logger,
	}
}

// LoadDescriptor parses an HCL deployment descriptor and returns the
// validated DeploymentSpec for the first service block found.
func (l DefaultLoader) LoadDescriptor(path string) (*models.DeploymentSpec, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)

	if diags.HasErrors() {
		return nil, deploy.NewValidationError(
			fmt.Sprintf("failed to parse descriptor %s: %s", path, diags.Error()), nil)
	}

	if file == nil || file.Body == nil {
		return nil, deploy.NewValidationError(
			fmt.Sprintf("parsed descriptor is empty or invalid: %s", path), nil)
	}

	var descriptor DescriptorFile
	diags = gohcl.DecodeBody(file.Body, nil, &descriptor)
	if diags.HasErrors() {
		return nil, deploy.NewValidationError(
			fmt.Sprintf("failed to decode descriptor %s: %s", path, diags.Error()), nil)
	}

	if len(descriptor.Services) == 0 {
		return nil, deploy.NewValidationError(
			fmt.Sprintf("no 'service' block found in %s", path), nil)
	}
	if len(descriptor.Services) > 1 {
		return nil, deploy.NewValidationError(
			fmt.Sprintf("descriptor %s declares %d service blocks, exactly one is supported", path, len(descriptor.Services)), nil)
	}

	block := descriptor.Services[0]
	l.logger.Debug("Decoding service %q from %s", block.Name, path)

	var svc HCLService
	diags = gohcl.DecodeBody(block.Body, nil, &svc)
	if diags.HasErrors() {
		return nil, deploy.NewValidationError(
			fmt.Sprintf("failed to decode service %q: %s", block.Name, diags.Error()), nil)
	}

	spec := &models.DeploymentSpec{
		ServiceName:     block.Name,
		ClusterName:     svc.Cluster,
		Image:           svc.Image,
		CPU:             svc.CPU,
		Memory:          svc.Memory,
		Port:            svc.Port,
		DesiredCount:    svc.DesiredCount,
		Subnets:         svc.Subnets,
		SecurityGroupID: svc.SecurityGroup,
	}
	if spec.ClusterName == "" {
		spec.ClusterName = spec.ServiceName + "-cluster"
	}
	for _, r := range svc.Rules {
		spec.SecurityGroupRules = append(spec.SecurityGroupRules, models.SecurityGroupRule{
			Protocol: r.Protocol,
			Port:     r.Port,
			CIDR:     r.CIDR,
		})
	}

	if err := Validate(spec); err != nil {
		return nil, err
	}

	l.logger.Info("Loaded descriptor for service %q (image %s, %d replicas)",
		spec.ServiceName, spec.Image, spec.DesiredCount)
	return spec, nil
}

// Validate checks every DeploymentSpec field before any remote call.
func Validate(spec *models.DeploymentSpec) error {
	if spec.ServiceName == "" {
		return deploy.NewValidationError("service name is required", nil)
	}
	if spec.Image == "" {
		return deploy.NewValidationError("image is required", nil)
	}

	memRange, ok := fargateMemoryRange[spec.CPU]
	if !ok {
		return deploy.NewValidationError(
			fmt.Sprintf("cpu %d is not a valid Fargate size (256, 512, 1024, 2048 or 4096)", spec.CPU), nil)
	}
	if spec.Memory < memRange[0] || spec.Memory > memRange[1] {
		return deploy.NewValidationError(
			fmt.Sprintf("memory %d is out of range for cpu %d (valid: %d-%d)",
				spec.Memory, spec.CPU, memRange[0], memRange[1]), nil)
	}

	if spec.Port < 1 || spec.Port > 65535 {
		return deploy.NewValidationError(
			fmt.Sprintf("port %d is out of range (1-65535)", spec.Port), nil)
	}
	if spec.DesiredCount < 0 {
		return deploy.NewValidationError(
			fmt.Sprintf("desired_count %d must not be negative", spec.DesiredCount), nil)
	}
	if len(spec.Subnets) == 0 {
		return deploy.NewValidationError("at least one subnet is required", nil)
	}
	for _, subnet := range spec.Subnets {
		if subnet == "" {
			return deploy.NewValidationError("subnet ids must not be empty", nil)
		}
	}

	if len(spec.SecurityGroupRules) > 0 && spec.SecurityGroupID == "" {
		return deploy.NewValidationError(
			"security_group is required when security_group_rule blocks are declared", nil)
	}
	for _, rule := range spec.SecurityGroupRules {
		if rule.Protocol != "tcp" && rule.Protocol != "udp" {
			return deploy.NewValidationError(
				fmt.Sprintf("rule protocol %q must be tcp or udp", rule.Protocol), nil)
		}
		if rule.Port < 1 || rule.Port > 65535 {
			return deploy.NewValidationError(
				fmt.Sprintf("rule port %d is out of range (1-65535)", rule.Port), nil)
		}
		if _, _, err := net.ParseCIDR(rule.CIDR); err != nil {
			return deploy.NewValidationError(
				fmt.Sprintf("rule cidr %q is not valid", rule.CIDR), err)
		}
	}

	return nil
}
