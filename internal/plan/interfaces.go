package plan

import (
	"context"

	"ecsdeployer/internal/models"
)

// IBuilder is the interface for building deployment plans
//
//go:generate mockery --name=IBuilder --output=./mocks
type IBuilder interface {
	Build(ctx context.Context, spec *models.DeploymentSpec, remote *models.RemoteState) ([]models.ChangeOperation, error)
}
