package aws

import (
	"context"
	"fmt"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/aws/aws-sdk-go-v2/service/ecs"
	ecstypes "github.com/aws/aws-sdk-go-v2/service/ecs/types"

	"ecsdeployer/internal/models"
)

// DeploymentService handles interactions with the ECS and EC2 APIs.
type DeploymentService struct {
	ecsClient ECSClientAPI
	ec2Client EC2ClientAPI
}

// NewDeploymentServiceWithDefaultConfig creates a new DeploymentService with the default AWS SDK configuration
func NewDeploymentServiceWithDefaultConfig(ctx context.Context) (*DeploymentService, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("unable to load AWS SDK config: %w", err)
	}

	return NewDeploymentServiceWithClients(ecs.NewFromConfig(cfg), ec2.NewFromConfig(cfg)), nil
}

// NewDeploymentServiceWithClients creates a new DeploymentService with provided clients
func NewDeploymentServiceWithClients(ecsClient ECSClientAPI, ec2Client EC2ClientAPI) *DeploymentService {
	return &DeploymentService{
		ecsClient: ecsClient,
		ec2Client: ec2Client,
	}
}

// DescribeRemoteState fetches the current remote state for the cluster,
// service, referenced task-definition revision and security group named by
// the spec. Absent resources are nil in the snapshot, not errors.
func (s *DeploymentService) DescribeRemoteState(ctx context.Context, spec *models.DeploymentSpec) (*models.RemoteState, error) {
	state := &models.RemoteState{}

	cluster, err := s.describeCluster(ctx, spec.ClusterName)
	if err != nil {
		return nil, err
	}
	state.Cluster = cluster

	if cluster != nil {
		service, err := s.DescribeService(ctx, spec.ClusterName, spec.ServiceName)
		if err != nil {
			return nil, err
		}
		state.Service = service

		if service != nil && service.TaskDefinitionARN != "" {
			taskDef, err := s.describeTaskDefinition(ctx, service.TaskDefinitionARN)
			if err != nil {
				return nil, err
			}
			state.TaskDefinition = taskDef
		}
	}

	if spec.SecurityGroupID != "" {
		group, err := s.describeSecurityGroup(ctx, spec.SecurityGroupID)
		if err != nil {
			return nil, err
		}
		state.SecurityGroup = group
	}

	return state, nil
}

// describeCluster returns the cluster state, or nil if it does not exist.
func (s *DeploymentService) describeCluster(ctx context.Context, name string) (*models.ClusterState, error) {
	resp, err := s.ecsClient.DescribeClusters(ctx, &ecs.DescribeClustersInput{
		Clusters: []string{name},
	})
	if err != nil {
		return nil, ClassifyAWSError(err, "cluster", name)
	}

	for _, cluster := range resp.Clusters {
		// An INACTIVE cluster is still describable after deletion; treat it
		// as absent so the plan recreates it.
		if aws.ToString(cluster.Status) == "INACTIVE" {
			continue
		}
		return &models.ClusterState{
			ARN:    aws.ToString(cluster.ClusterArn),
			Name:   aws.ToString(cluster.ClusterName),
			Status: aws.ToString(cluster.Status),
		}, nil
	}

	// Missing clusters are reported in Failures, not as an API error.
	return nil, nil
}

// DescribeService returns the service state, or nil if it does not exist.
func (s *DeploymentService) DescribeService(ctx context.Context, clusterName, serviceName string) (*models.ServiceState, error) {
	resp, err := s.ecsClient.DescribeServices(ctx, &ecs.DescribeServicesInput{
		Cluster:  aws.String(clusterName),
		Services: []string{serviceName},
	})
	if err != nil {
		return nil, ClassifyAWSError(err, "service", serviceName)
	}

	for _, service := range resp.Services {
		if aws.ToString(service.Status) == "INACTIVE" {
			continue
		}
		return &models.ServiceState{
			ARN:               aws.ToString(service.ServiceArn),
			Name:              aws.ToString(service.ServiceName),
			Status:            aws.ToString(service.Status),
			TaskDefinitionARN: aws.ToString(service.TaskDefinition),
			DesiredCount:      service.DesiredCount,
			RunningCount:      service.RunningCount,
			PendingCount:      service.PendingCount,
			DeploymentCount:   len(service.Deployments),
		}, nil
	}

	return nil, nil
}

// describeTaskDefinition resolves a task-definition ARN to the fields the
// plan compares against the descriptor.
func (s *DeploymentService) describeTaskDefinition(ctx context.Context, taskDefinitionARN string) (*models.TaskDefinitionState, error) {
	resp, err := s.ecsClient.DescribeTaskDefinition(ctx, &ecs.DescribeTaskDefinitionInput{
		TaskDefinition: aws.String(taskDefinitionARN),
	})
	if err != nil {
		return nil, ClassifyAWSError(err, "task-definition", taskDefinitionARN)
	}
	if resp.TaskDefinition == nil {
		return nil, NewAWSError(ErrResourceNotFound, "task-definition", taskDefinitionARN,
			"Task definition not found", nil)
	}

	taskDef := resp.TaskDefinition
	state := &models.TaskDefinitionState{
		ARN:      aws.ToString(taskDef.TaskDefinitionArn),
		Family:   aws.ToString(taskDef.Family),
		Revision: taskDef.Revision,
		CPU:      parseResourceUnits(aws.ToString(taskDef.Cpu)),
		Memory:   parseResourceUnits(aws.ToString(taskDef.Memory)),
	}

	if len(taskDef.ContainerDefinitions) > 0 {
		container := taskDef.ContainerDefinitions[0]
		state.Image = aws.ToString(container.Image)
		if len(container.PortMappings) > 0 {
			state.Port = aws.ToInt32(container.PortMappings[0].ContainerPort)
		}
	}

	return state, nil
}

// describeSecurityGroup returns the group's single-port ingress rules, or
// nil if the group does not exist.
func (s *DeploymentService) describeSecurityGroup(ctx context.Context, groupID string) (*models.SecurityGroupState, error) {
	// Filtering by group-id instead of passing GroupIds avoids a hard API
	// error for unknown ids.
	resp, err := s.ec2Client.DescribeSecurityGroups(ctx, &ec2.DescribeSecurityGroupsInput{
		Filters: []ec2types.Filter{
			{Name: aws.String("group-id"), Values: []string{groupID}},
		},
	})
	if err != nil {
		return nil, ClassifyAWSError(err, "security-group", groupID)
	}
	if len(resp.SecurityGroups) == 0 {
		return nil, nil
	}

	group := resp.SecurityGroups[0]
	state := &models.SecurityGroupState{
		ID: aws.ToString(group.GroupId),
	}
	for _, perm := range group.IpPermissions {
		// The descriptor declares single-port rules only, so wider port
		// ranges never match and are left untouched.
		if perm.FromPort == nil || perm.ToPort == nil || *perm.FromPort != *perm.ToPort {
			continue
		}
		for _, ipRange := range perm.IpRanges {
			state.Rules = append(state.Rules, models.SecurityGroupRule{
				Protocol: aws.ToString(perm.IpProtocol),
				Port:     aws.ToInt32(perm.FromPort),
				CIDR:     aws.ToString(ipRange.CidrIp),
			})
		}
	}

	return state, nil
}

// MissingSubnets returns the subset of subnetIDs that do not exist in the
// target account.
func (s *DeploymentService) MissingSubnets(ctx context.Context, subnetIDs []string) ([]string, error) {
	resp, err := s.ec2Client.DescribeSubnets(ctx, &ec2.DescribeSubnetsInput{
		Filters: []ec2types.Filter{
			{Name: aws.String("subnet-id"), Values: subnetIDs},
		},
	})
	if err != nil {
		return nil, ClassifyAWSError(err, "subnet", "")
	}

	found := make(map[string]bool, len(resp.Subnets))
	for _, subnet := range resp.Subnets {
		found[aws.ToString(subnet.SubnetId)] = true
	}

	var missing []string
	for _, id := range subnetIDs {
		if !found[id] {
			missing = append(missing, id)
		}
	}
	return missing, nil
}

// SecurityGroupExists reports whether the security group exists.
func (s *DeploymentService) SecurityGroupExists(ctx context.Context, groupID string) (bool, error) {
	group, err := s.describeSecurityGroup(ctx, groupID)
	if err != nil {
		return false, err
	}
	return group != nil, nil
}

// CreateCluster creates the cluster and returns its state.
func (s *DeploymentService) CreateCluster(ctx context.Context, name string) (*models.ClusterState, error) {
	resp, err := s.ecsClient.CreateCluster(ctx, &ecs.CreateClusterInput{
		ClusterName: aws.String(name),
	})
	if err != nil {
		return nil, ClassifyAWSError(err, "cluster", name)
	}

	return &models.ClusterState{
		ARN:    aws.ToString(resp.Cluster.ClusterArn),
		Name:   aws.ToString(resp.Cluster.ClusterName),
		Status: aws.ToString(resp.Cluster.Status),
	}, nil
}

// RegisterTaskDefinition registers a new Fargate task-definition revision
// for the spec and returns it.
func (s *DeploymentService) RegisterTaskDefinition(ctx context.Context, spec *models.DeploymentSpec) (*models.TaskDefinitionState, error) {
	resp, err := s.ecsClient.RegisterTaskDefinition(ctx, &ecs.RegisterTaskDefinitionInput{
		Family:                  aws.String(spec.ServiceName),
		Cpu:                     aws.String(strconv.Itoa(int(spec.CPU))),
		Memory:                  aws.String(strconv.Itoa(int(spec.Memory))),
		NetworkMode:             ecstypes.NetworkModeAwsvpc,
		RequiresCompatibilities: []ecstypes.Compatibility{ecstypes.CompatibilityFargate},
		ContainerDefinitions: []ecstypes.ContainerDefinition{
			{
				Name:      aws.String(spec.ServiceName),
				Image:     aws.String(spec.Image),
				Essential: aws.Bool(true),
				PortMappings: []ecstypes.PortMapping{
					{
						ContainerPort: aws.Int32(spec.Port),
						Protocol:      ecstypes.TransportProtocolTcp,
					},
				},
			},
		},
	})
	if err != nil {
		return nil, ClassifyAWSError(err, "task-definition", spec.ServiceName)
	}

	taskDef := resp.TaskDefinition
	return &models.TaskDefinitionState{
		ARN:      aws.ToString(taskDef.TaskDefinitionArn),
		Family:   aws.ToString(taskDef.Family),
		Revision: taskDef.Revision,
		Image:    spec.Image,
		CPU:      spec.CPU,
		Memory:   spec.Memory,
		Port:     spec.Port,
	}, nil
}

// CreateService creates the Fargate service running the given revision.
func (s *DeploymentService) CreateService(ctx context.Context, spec *models.DeploymentSpec, taskDefinitionARN string) error {
	var securityGroups []string
	if spec.SecurityGroupID != "" {
		securityGroups = []string{spec.SecurityGroupID}
	}

	_, err := s.ecsClient.CreateService(ctx, &ecs.CreateServiceInput{
		Cluster:        aws.String(spec.ClusterName),
		ServiceName:    aws.String(spec.ServiceName),
		TaskDefinition: aws.String(taskDefinitionARN),
		DesiredCount:   aws.Int32(spec.DesiredCount),
		LaunchType:     ecstypes.LaunchTypeFargate,
		NetworkConfiguration: &ecstypes.NetworkConfiguration{
			AwsvpcConfiguration: &ecstypes.AwsVpcConfiguration{
				Subnets:        spec.Subnets,
				SecurityGroups: securityGroups,
				AssignPublicIp: ecstypes.AssignPublicIpEnabled,
			},
		},
	})
	if err != nil {
		return ClassifyAWSError(err, "service", spec.ServiceName)
	}
	return nil
}

// UpdateService points the existing service at a task-definition revision
// and desired count.
func (s *DeploymentService) UpdateService(ctx context.Context, clusterName, serviceName, taskDefinitionARN string, desiredCount int32) error {
	_, err := s.ecsClient.UpdateService(ctx, &ecs.UpdateServiceInput{
		Cluster:        aws.String(clusterName),
		Service:        aws.String(serviceName),
		TaskDefinition: aws.String(taskDefinitionARN),
		DesiredCount:   aws.Int32(desiredCount),
	})
	if err != nil {
		return ClassifyAWSError(err, "service", serviceName)
	}
	return nil
}

// AuthorizeIngress adds the given ingress rules to the security group.
func (s *DeploymentService) AuthorizeIngress(ctx context.Context, groupID string, rules []models.SecurityGroupRule) error {
	if len(rules) == 0 {
		return nil
	}

	_, err := s.ec2Client.AuthorizeSecurityGroupIngress(ctx, &ec2.AuthorizeSecurityGroupIngressInput{
		GroupId:       aws.String(groupID),
		IpPermissions: toIPPermissions(rules),
	})
	if err != nil {
		return ClassifyAWSError(err, "security-group", groupID)
	}
	return nil
}

// RevokeIngress removes the given ingress rules from the security group.
func (s *DeploymentService) RevokeIngress(ctx context.Context, groupID string, rules []models.SecurityGroupRule) error {
	if len(rules) == 0 {
		return nil
	}

	_, err := s.ec2Client.RevokeSecurityGroupIngress(ctx, &ec2.RevokeSecurityGroupIngressInput{
		GroupId:       aws.String(groupID),
		IpPermissions: toIPPermissions(rules),
	})
	if err != nil {
		return ClassifyAWSError(err, "security-group", groupID)
	}
	return nil
}

// toIPPermissions converts descriptor rules to the EC2 wire shape.
func toIPPermissions(rules []models.SecurityGroupRule) []ec2types.IpPermission {
	perms := make([]ec2types.IpPermission, 0, len(rules))
	for _, rule := range rules {
		perms = append(perms, ec2types.IpPermission{
			IpProtocol: aws.String(rule.Protocol),
			FromPort:   aws.Int32(rule.Port),
			ToPort:     aws.Int32(rule.Port),
			IpRanges: []ec2types.IpRange{
				{CidrIp: aws.String(rule.CIDR)},
			},
		})
	}
	return perms
}

// parseResourceUnits converts the SDK's string cpu/memory values; malformed
// values read as 0 and show up as drift.
func parseResourceUnits(value string) int32 {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}
	return int32(n)
}
