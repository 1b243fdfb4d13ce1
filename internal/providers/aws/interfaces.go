package aws

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ecs"

	"ecsdeployer/internal/models"
)

// ECSClientAPI defines the interface for ECS operations we need to mock
//
//go:generate mockery --name=ECSClientAPI --output=./mocks
type ECSClientAPI interface {
	DescribeClusters(ctx context.Context, params *ecs.DescribeClustersInput, optFns ...func(*ecs.Options)) (*ecs.DescribeClustersOutput, error)
	CreateCluster(ctx context.Context, params *ecs.CreateClusterInput, optFns ...func(*ecs.Options)) (*ecs.CreateClusterOutput, error)
	RegisterTaskDefinition(ctx context.Context, params *ecs.RegisterTaskDefinitionInput, optFns ...func(*ecs.Options)) (*ecs.RegisterTaskDefinitionOutput, error)
	DescribeTaskDefinition(ctx context.Context, params *ecs.DescribeTaskDefinitionInput, optFns ...func(*ecs.Options)) (*ecs.DescribeTaskDefinitionOutput, error)
	DescribeServices(ctx context.Context, params *ecs.DescribeServicesInput, optFns ...func(*ecs.Options)) (*ecs.DescribeServicesOutput, error)
	CreateService(ctx context.Context, params *ecs.CreateServiceInput, optFns ...func(*ecs.Options)) (*ecs.CreateServiceOutput, error)
	UpdateService(ctx context.Context, params *ecs.UpdateServiceInput, optFns ...func(*ecs.Options)) (*ecs.UpdateServiceOutput, error)
}

// EC2ClientAPI defines the interface for EC2 operations we need to mock
//
//go:generate mockery --name=EC2ClientAPI --output=./mocks
type EC2ClientAPI interface {
	DescribeSubnets(ctx context.Context, params *ec2.DescribeSubnetsInput, optFns ...func(*ec2.Options)) (*ec2.DescribeSubnetsOutput, error)
	DescribeSecurityGroups(ctx context.Context, params *ec2.DescribeSecurityGroupsInput, optFns ...func(*ec2.Options)) (*ec2.DescribeSecurityGroupsOutput, error)
	AuthorizeSecurityGroupIngress(ctx context.Context, params *ec2.AuthorizeSecurityGroupIngressInput, optFns ...func(*ec2.Options)) (*ec2.AuthorizeSecurityGroupIngressOutput, error)
	RevokeSecurityGroupIngress(ctx context.Context, params *ec2.RevokeSecurityGroupIngressInput, optFns ...func(*ec2.Options)) (*ec2.RevokeSecurityGroupIngressOutput, error)
}

// DeploymentServiceAPI defines the platform operations the planner,
// executor and rollback controller work against.
//
//go:generate mockery --name=DeploymentServiceAPI --output=./mocks
type DeploymentServiceAPI interface {
	DescribeRemoteState(ctx context.Context, spec *models.DeploymentSpec) (*models.RemoteState, error)
	MissingSubnets(ctx context.Context, subnetIDs []string) ([]string, error)
	SecurityGroupExists(ctx context.Context, groupID string) (bool, error)
	CreateCluster(ctx context.Context, name string) (*models.ClusterState, error)
	RegisterTaskDefinition(ctx context.Context, spec *models.DeploymentSpec) (*models.TaskDefinitionState, error)
	CreateService(ctx context.Context, spec *models.DeploymentSpec, taskDefinitionARN string) error
	UpdateService(ctx context.Context, clusterName, serviceName, taskDefinitionARN string, desiredCount int32) error
	DescribeService(ctx context.Context, clusterName, serviceName string) (*models.ServiceState, error)
	AuthorizeIngress(ctx context.Context, groupID string, rules []models.SecurityGroupRule) error
	RevokeIngress(ctx context.Context, groupID string, rules []models.SecurityGroupRule) error
}
