package aws

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/aws/aws-sdk-go-v2/service/ecs"
	ecstypes "github.com/aws/aws-sdk-go-v2/service/ecs/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"ecsdeployer/internal/models"
	"ecsdeployer/internal/providers/aws/mocks"
)

const taskDefARN = "arn:aws:ecs:us-east-1:123456789012:task-definition/hello:3"

func helloSpec() *models.DeploymentSpec {
	return &models.DeploymentSpec{
		ServiceName:     "hello",
		ClusterName:     "hello-cluster",
		Image:           "repo/hello:latest",
		CPU:             256,
		Memory:          512,
		Port:            3000,
		DesiredCount:    1,
		Subnets:         []string{"subnet-0aaa111"},
		SecurityGroupID: "sg-0ccc333",
		SecurityGroupRules: []models.SecurityGroupRule{
			{Protocol: "tcp", Port: 3000, CIDR: "0.0.0.0/0"},
		},
	}
}

func TestDescribeRemoteState_AllResourcesPresent(t *testing.T) {
	ecsMock := mocks.NewECSClientAPI(t)
	ec2Mock := mocks.NewEC2ClientAPI(t)

	ecsMock.On("DescribeClusters", mock.Anything, mock.MatchedBy(func(input *ecs.DescribeClustersInput) bool {
		return len(input.Clusters) == 1 && input.Clusters[0] == "hello-cluster"
	})).Return(&ecs.DescribeClustersOutput{
		Clusters: []ecstypes.Cluster{
			{
				ClusterArn:  aws.String("arn:aws:ecs:us-east-1:123456789012:cluster/hello-cluster"),
				ClusterName: aws.String("hello-cluster"),
				Status:      aws.String("ACTIVE"),
			},
		},
	}, nil)

	ecsMock.On("DescribeServices", mock.Anything, mock.MatchedBy(func(input *ecs.DescribeServicesInput) bool {
		return aws.ToString(input.Cluster) == "hello-cluster" &&
			len(input.Services) == 1 && input.Services[0] == "hello"
	})).Return(&ecs.DescribeServicesOutput{
		Services: []ecstypes.Service{
			{
				ServiceArn:     aws.String("arn:aws:ecs:us-east-1:123456789012:service/hello-cluster/hello"),
				ServiceName:    aws.String("hello"),
				Status:         aws.String("ACTIVE"),
				TaskDefinition: aws.String(taskDefARN),
				DesiredCount:   1,
				RunningCount:   1,
				Deployments:    []ecstypes.Deployment{{Status: aws.String("PRIMARY")}},
			},
		},
	}, nil)

	ecsMock.On("DescribeTaskDefinition", mock.Anything, mock.MatchedBy(func(input *ecs.DescribeTaskDefinitionInput) bool {
		return aws.ToString(input.TaskDefinition) == taskDefARN
	})).Return(&ecs.DescribeTaskDefinitionOutput{
		TaskDefinition: &ecstypes.TaskDefinition{
			TaskDefinitionArn: aws.String(taskDefARN),
			Family:            aws.String("hello"),
			Revision:          3,
			Cpu:               aws.String("256"),
			Memory:            aws.String("512"),
			ContainerDefinitions: []ecstypes.ContainerDefinition{
				{
					Image: aws.String("repo/hello:latest"),
					PortMappings: []ecstypes.PortMapping{
						{ContainerPort: aws.Int32(3000)},
					},
				},
			},
		},
	}, nil)

	ec2Mock.On("DescribeSecurityGroups", mock.Anything, mock.Anything).Return(&ec2.DescribeSecurityGroupsOutput{
		SecurityGroups: []ec2types.SecurityGroup{
			{
				GroupId: aws.String("sg-0ccc333"),
				IpPermissions: []ec2types.IpPermission{
					{
						IpProtocol: aws.String("tcp"),
						FromPort:   aws.Int32(3000),
						ToPort:     aws.Int32(3000),
						IpRanges:   []ec2types.IpRange{{CidrIp: aws.String("0.0.0.0/0")}},
					},
				},
			},
		},
	}, nil)

	service := NewDeploymentServiceWithClients(ecsMock, ec2Mock)
	state, err := service.DescribeRemoteState(context.Background(), helloSpec())

	assert.NoError(t, err)
	assert.NotNil(t, state.Cluster)
	assert.Equal(t, "ACTIVE", state.Cluster.Status)

	assert.NotNil(t, state.Service)
	assert.Equal(t, taskDefARN, state.Service.TaskDefinitionARN)
	assert.Equal(t, 1, state.Service.DeploymentCount)

	assert.NotNil(t, state.TaskDefinition)
	assert.Equal(t, "repo/hello:latest", state.TaskDefinition.Image)
	assert.Equal(t, int32(256), state.TaskDefinition.CPU)
	assert.Equal(t, int32(512), state.TaskDefinition.Memory)
	assert.Equal(t, int32(3000), state.TaskDefinition.Port)

	assert.NotNil(t, state.SecurityGroup)
	assert.Equal(t, []models.SecurityGroupRule{{Protocol: "tcp", Port: 3000, CIDR: "0.0.0.0/0"}},
		state.SecurityGroup.Rules)
}

func TestDescribeRemoteState_EmptyAccount(t *testing.T) {
	ecsMock := mocks.NewECSClientAPI(t)
	ec2Mock := mocks.NewEC2ClientAPI(t)

	// Missing clusters show up in Failures, not as an API error.
	ecsMock.On("DescribeClusters", mock.Anything, mock.Anything).Return(&ecs.DescribeClustersOutput{
		Failures: []ecstypes.Failure{{Reason: aws.String("MISSING")}},
	}, nil)
	ec2Mock.On("DescribeSecurityGroups", mock.Anything, mock.Anything).
		Return(&ec2.DescribeSecurityGroupsOutput{}, nil)

	service := NewDeploymentServiceWithClients(ecsMock, ec2Mock)
	state, err := service.DescribeRemoteState(context.Background(), helloSpec())

	assert.NoError(t, err)
	assert.Nil(t, state.Cluster)
	assert.Nil(t, state.Service)
	assert.Nil(t, state.TaskDefinition)
	assert.Nil(t, state.SecurityGroup)
}

func TestDescribeService_InactiveServiceIsAbsent(t *testing.T) {
	ecsMock := mocks.NewECSClientAPI(t)
	ec2Mock := mocks.NewEC2ClientAPI(t)

	ecsMock.On("DescribeServices", mock.Anything, mock.Anything).Return(&ecs.DescribeServicesOutput{
		Services: []ecstypes.Service{
			{ServiceName: aws.String("hello"), Status: aws.String("INACTIVE")},
		},
	}, nil)

	service := NewDeploymentServiceWithClients(ecsMock, ec2Mock)
	state, err := service.DescribeService(context.Background(), "hello-cluster", "hello")

	assert.NoError(t, err)
	assert.Nil(t, state)
}

func TestMissingSubnets(t *testing.T) {
	ecsMock := mocks.NewECSClientAPI(t)
	ec2Mock := mocks.NewEC2ClientAPI(t)

	ec2Mock.On("DescribeSubnets", mock.Anything, mock.MatchedBy(func(input *ec2.DescribeSubnetsInput) bool {
		return len(input.Filters) == 1 && aws.ToString(input.Filters[0].Name) == "subnet-id"
	})).Return(&ec2.DescribeSubnetsOutput{
		Subnets: []ec2types.Subnet{
			{SubnetId: aws.String("subnet-0aaa111")},
		},
	}, nil)

	service := NewDeploymentServiceWithClients(ecsMock, ec2Mock)
	missing, err := service.MissingSubnets(context.Background(), []string{"subnet-0aaa111", "subnet-0bbb222"})

	assert.NoError(t, err)
	assert.Equal(t, []string{"subnet-0bbb222"}, missing)
}

func TestRegisterTaskDefinition_InputMapping(t *testing.T) {
	ecsMock := mocks.NewECSClientAPI(t)
	ec2Mock := mocks.NewEC2ClientAPI(t)

	ecsMock.On("RegisterTaskDefinition", mock.Anything, mock.MatchedBy(func(input *ecs.RegisterTaskDefinitionInput) bool {
		if aws.ToString(input.Family) != "hello" ||
			aws.ToString(input.Cpu) != "256" ||
			aws.ToString(input.Memory) != "512" ||
			input.NetworkMode != ecstypes.NetworkModeAwsvpc {
			return false
		}
		if len(input.RequiresCompatibilities) != 1 ||
			input.RequiresCompatibilities[0] != ecstypes.CompatibilityFargate {
			return false
		}
		if len(input.ContainerDefinitions) != 1 {
			return false
		}
		container := input.ContainerDefinitions[0]
		return aws.ToString(container.Image) == "repo/hello:latest" &&
			len(container.PortMappings) == 1 &&
			aws.ToInt32(container.PortMappings[0].ContainerPort) == 3000
	})).Return(&ecs.RegisterTaskDefinitionOutput{
		TaskDefinition: &ecstypes.TaskDefinition{
			TaskDefinitionArn: aws.String("arn:aws:ecs:us-east-1:123456789012:task-definition/hello:4"),
			Family:            aws.String("hello"),
			Revision:          4,
		},
	}, nil)

	service := NewDeploymentServiceWithClients(ecsMock, ec2Mock)
	taskDef, err := service.RegisterTaskDefinition(context.Background(), helloSpec())

	assert.NoError(t, err)
	assert.Equal(t, int32(4), taskDef.Revision)
	assert.Equal(t, "repo/hello:latest", taskDef.Image)
}

func TestCreateService_InputMapping(t *testing.T) {
	ecsMock := mocks.NewECSClientAPI(t)
	ec2Mock := mocks.NewEC2ClientAPI(t)

	ecsMock.On("CreateService", mock.Anything, mock.MatchedBy(func(input *ecs.CreateServiceInput) bool {
		vpc := input.NetworkConfiguration.AwsvpcConfiguration
		return aws.ToString(input.Cluster) == "hello-cluster" &&
			aws.ToString(input.ServiceName) == "hello" &&
			aws.ToString(input.TaskDefinition) == taskDefARN &&
			aws.ToInt32(input.DesiredCount) == 1 &&
			input.LaunchType == ecstypes.LaunchTypeFargate &&
			len(vpc.Subnets) == 1 && vpc.Subnets[0] == "subnet-0aaa111" &&
			len(vpc.SecurityGroups) == 1 && vpc.SecurityGroups[0] == "sg-0ccc333"
	})).Return(&ecs.CreateServiceOutput{}, nil)

	service := NewDeploymentServiceWithClients(ecsMock, ec2Mock)
	err := service.CreateService(context.Background(), helloSpec(), taskDefARN)

	assert.NoError(t, err)
}

func TestUpdateService_ErrorIsClassified(t *testing.T) {
	ecsMock := mocks.NewECSClientAPI(t)
	ec2Mock := mocks.NewEC2ClientAPI(t)

	ecsMock.On("UpdateService", mock.Anything, mock.Anything).
		Return(nil, errors.New("ServiceNotFoundException: service hello not found"))

	service := NewDeploymentServiceWithClients(ecsMock, ec2Mock)
	err := service.UpdateService(context.Background(), "hello-cluster", "hello", taskDefARN, 1)

	assert.Error(t, err)
	assert.True(t, IsErrorCategory(err, ErrResourceNotFound))
}

func TestAuthorizeIngress_NoRulesNoCall(t *testing.T) {
	ecsMock := mocks.NewECSClientAPI(t)
	ec2Mock := mocks.NewEC2ClientAPI(t)
	// No AuthorizeSecurityGroupIngress expectation: any call fails the test.

	service := NewDeploymentServiceWithClients(ecsMock, ec2Mock)
	err := service.AuthorizeIngress(context.Background(), "sg-0ccc333", nil)

	assert.NoError(t, err)
}

func TestAuthorizeIngress_RuleMapping(t *testing.T) {
	ecsMock := mocks.NewECSClientAPI(t)
	ec2Mock := mocks.NewEC2ClientAPI(t)

	ec2Mock.On("AuthorizeSecurityGroupIngress", mock.Anything, mock.MatchedBy(func(input *ec2.AuthorizeSecurityGroupIngressInput) bool {
		if aws.ToString(input.GroupId) != "sg-0ccc333" || len(input.IpPermissions) != 1 {
			return false
		}
		perm := input.IpPermissions[0]
		return aws.ToString(perm.IpProtocol) == "tcp" &&
			aws.ToInt32(perm.FromPort) == 3000 &&
			aws.ToInt32(perm.ToPort) == 3000 &&
			len(perm.IpRanges) == 1 &&
			aws.ToString(perm.IpRanges[0].CidrIp) == "0.0.0.0/0"
	})).Return(&ec2.AuthorizeSecurityGroupIngressOutput{}, nil)

	service := NewDeploymentServiceWithClients(ecsMock, ec2Mock)
	err := service.AuthorizeIngress(context.Background(), "sg-0ccc333", []models.SecurityGroupRule{
		{Protocol: "tcp", Port: 3000, CIDR: "0.0.0.0/0"},
	})

	assert.NoError(t, err)
}
