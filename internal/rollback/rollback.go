package rollback

import (
	"context"
	"fmt"

	"ecsdeployer/internal/deploy"
	"ecsdeployer/internal/executor"
	"ecsdeployer/internal/models"
	aws "ecsdeployer/internal/providers/aws"
	"ecsdeployer/pkg/logging"
)

// IController is the interface for rolling a service back
//
//go:generate mockery --name=IController --output=./mocks
type IController interface {
	Rollback(ctx context.Context, spec *models.DeploymentSpec, previousTaskDefinitionARN string) (*models.ServiceState, error)
}

// Controller reverts a service to its previous task-definition revision
// after a failed convergence, using the same polling contract as the
// executor. It is never invoked for failures that happened before the
// service was updated, since nothing changed in that case.
type Controller struct {
	provider aws.DeploymentServiceAPI
	poller   executor.ConvergencePoller
	logger   logging.Logger
}

// NewController creates a rollback controller sharing the executor's poll
// policy through the given poller.
func NewController(provider aws.DeploymentServiceAPI, poller executor.ConvergencePoller, logger logging.Logger) *Controller {
	return &Controller{
		provider: provider,
		poller:   poller,
		logger:   logger,
	}
}

// Rollback reissues UpdateService at the previous revision and waits for
// convergence. A rollback that does not converge is fatal and reported as
// an unrecoverable deployment.
func (c *Controller) Rollback(ctx context.Context, spec *models.DeploymentSpec, previousTaskDefinitionARN string) (*models.ServiceState, error) {
	if previousTaskDefinitionARN == "" {
		return nil, deploy.NewRollbackFailureError(
			"no previous task-definition revision recorded, nothing to roll back to", nil)
	}

	c.logger.Warn("Rolling back service %q to %s", spec.ServiceName, previousTaskDefinitionARN)

	if err := c.provider.UpdateService(ctx, spec.ClusterName, spec.ServiceName, previousTaskDefinitionARN, spec.DesiredCount); err != nil {
		return nil, deploy.NewRollbackFailureError(
			fmt.Sprintf("reissuing UpdateService at %s failed", previousTaskDefinitionARN), err)
	}

	state, err := c.poller.AwaitConvergence(ctx, spec.ClusterName, spec.ServiceName, spec.DesiredCount)
	if err != nil {
		return state, deploy.NewRollbackFailureError(
			fmt.Sprintf("service did not converge on previous revision %s, manual intervention required", previousTaskDefinitionARN), err)
	}

	c.logger.Info("Rollback converged: service %q is back on %s", spec.ServiceName, previousTaskDefinitionARN)
	return state, nil
}
