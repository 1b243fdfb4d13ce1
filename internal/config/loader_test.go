package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"ecsdeployer/internal/deploy"
	"ecsdeployer/internal/models"
	"ecsdeployer/pkg/logging"
)

func TestLoadDescriptor_CompleteService(t *testing.T) {
	testFile := filepath.Join("testdata", "valid_service.hcl")

	logger := logging.NewMockLogger()
	loader := NewLoaderWithLogger(logger)
	spec, err := loader.LoadDescriptor(testFile)

	assert.NoError(t, err)
	assert.NotNil(t, spec)

	assert.Equal(t, "hello", spec.ServiceName)
	assert.Equal(t, "repo/hello:latest", spec.Image)
	assert.Equal(t, int32(256), spec.CPU)
	assert.Equal(t, int32(512), spec.Memory)
	assert.Equal(t, int32(3000), spec.Port)
	assert.Equal(t, int32(1), spec.DesiredCount)

	// Cluster name defaults from the service name when omitted.
	assert.Equal(t, "hello-cluster", spec.ClusterName)

	assert.Len(t, spec.Subnets, 2)
	assert.Equal(t, "subnet-0aaa111", spec.Subnets[0])
	assert.Equal(t, "sg-0ccc333", spec.SecurityGroupID)

	assert.Len(t, spec.SecurityGroupRules, 1)
	assert.Equal(t, models.SecurityGroupRule{Protocol: "tcp", Port: 3000, CIDR: "0.0.0.0/0"}, spec.SecurityGroupRules[0])
}

func TestLoadDescriptor_NoService(t *testing.T) {
	loader := NewLoaderWithLogger(logging.NewMockLogger())
	spec, err := loader.LoadDescriptor(filepath.Join("testdata", "no_service.hcl"))

	assert.Error(t, err)
	assert.Nil(t, spec)
	assert.True(t, deploy.IsCategory(err, deploy.ErrValidation))
}

func TestLoadDescriptor_TwoServices(t *testing.T) {
	loader := NewLoaderWithLogger(logging.NewMockLogger())
	spec, err := loader.LoadDescriptor(filepath.Join("testdata", "two_services.hcl"))

	assert.Error(t, err)
	assert.Nil(t, spec)
	assert.True(t, deploy.IsCategory(err, deploy.ErrValidation))
}

func TestLoadDescriptor_InvalidSyntax(t *testing.T) {
	loader := NewLoaderWithLogger(logging.NewMockLogger())
	spec, err := loader.LoadDescriptor(filepath.Join("testdata", "invalid_syntax.hcl"))

	assert.Error(t, err)
	assert.Nil(t, spec)
}

func TestLoadDescriptor_MissingImage(t *testing.T) {
	loader := NewLoaderWithLogger(logging.NewMockLogger())
	spec, err := loader.LoadDescriptor(filepath.Join("testdata", "missing_image.hcl"))

	assert.Error(t, err)
	assert.Nil(t, spec)
}

func TestLoadDescriptor_NonExistentFile(t *testing.T) {
	loader := NewLoaderWithLogger(logging.NewMockLogger())
	spec, err := loader.LoadDescriptor("testdata/non_existent_file.hcl")

	assert.Error(t, err)
	assert.Nil(t, spec)
}

// validSpec returns a spec that passes validation; tests mutate single
// fields from here.
func validSpec() *models.DeploymentSpec {
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

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*models.DeploymentSpec)
		wantErr bool
	}{
		{
			name:    "Valid spec",
			mutate:  func(s *models.DeploymentSpec) {},
			wantErr: false,
		},
		{
			name:    "Missing service name",
			mutate:  func(s *models.DeploymentSpec) { s.ServiceName = "" },
			wantErr: true,
		},
		{
			name:    "Missing image",
			mutate:  func(s *models.DeploymentSpec) { s.Image = "" },
			wantErr: true,
		},
		{
			name:    "Invalid Fargate cpu size",
			mutate:  func(s *models.DeploymentSpec) { s.CPU = 300 },
			wantErr: true,
		},
		{
			name:    "Memory too small for cpu",
			mutate:  func(s *models.DeploymentSpec) { s.CPU = 1024; s.Memory = 512 },
			wantErr: true,
		},
		{
			name:    "Memory too large for cpu",
			mutate:  func(s *models.DeploymentSpec) { s.Memory = 4096 },
			wantErr: true,
		},
		{
			name:    "Larger cpu with matching memory",
			mutate:  func(s *models.DeploymentSpec) { s.CPU = 1024; s.Memory = 2048 },
			wantErr: false,
		},
		{
			name:    "Port out of range",
			mutate:  func(s *models.DeploymentSpec) { s.Port = 70000 },
			wantErr: true,
		},
		{
			name:    "Negative desired count",
			mutate:  func(s *models.DeploymentSpec) { s.DesiredCount = -1 },
			wantErr: true,
		},
		{
			name:    "No subnets",
			mutate:  func(s *models.DeploymentSpec) { s.Subnets = nil },
			wantErr: true,
		},
		{
			name:    "Empty subnet id",
			mutate:  func(s *models.DeploymentSpec) { s.Subnets = []string{""} },
			wantErr: true,
		},
		{
			name:    "Rules without a security group",
			mutate:  func(s *models.DeploymentSpec) { s.SecurityGroupID = "" },
			wantErr: true,
		},
		{
			name:    "No rules and no security group",
			mutate:  func(s *models.DeploymentSpec) { s.SecurityGroupID = ""; s.SecurityGroupRules = nil },
			wantErr: false,
		},
		{
			name:    "Bad rule protocol",
			mutate:  func(s *models.DeploymentSpec) { s.SecurityGroupRules[0].Protocol = "icmp" },
			wantErr: true,
		},
		{
			name:    "Bad rule cidr",
			mutate:  func(s *models.DeploymentSpec) { s.SecurityGroupRules[0].CIDR = "not-a-cidr" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := validSpec()
			tt.mutate(spec)
			err := Validate(spec)
			if tt.wantErr {
				assert.Error(t, err)
				assert.True(t, deploy.IsCategory(err, deploy.ErrValidation))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
