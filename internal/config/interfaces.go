package config

import "ecsdeployer/internal/models"

// ILoader is the interface for loading deployment descriptors
//
//go:generate mockery --name=ILoader --output=./mocks
type ILoader interface {
	LoadDescriptor(path string) (*models.DeploymentSpec, error)
}
