package executor

import (
	"context"

	"ecsdeployer/internal/models"
)

// IExecutor is the interface for applying deployment plans
//
//go:generate mockery --name=IExecutor --output=./mocks
type IExecutor interface {
	Execute(ctx context.Context, spec *models.DeploymentSpec, ops []models.ChangeOperation) (*Result, error)
}

// ConvergencePoller is the polling contract shared by the executor and the
// rollback controller.
//
//go:generate mockery --name=ConvergencePoller --output=./mocks
type ConvergencePoller interface {
	AwaitConvergence(ctx context.Context, clusterName, serviceName string, desiredCount int32) (*models.ServiceState, error)
}
