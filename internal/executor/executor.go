package executor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ecsdeployer/internal/deploy"
	"ecsdeployer/internal/models"
	aws "ecsdeployer/internal/providers/aws"
	"ecsdeployer/pkg/logging"
)

// Executor applies a deployment plan strictly in sequence and then polls
// the service until it reaches steady state. Each operation is applied at
// most once; the first remote error halts everything.
type Executor struct {
	provider aws.DeploymentServiceAPI
	policy   PollPolicy
	logger   logging.Logger
}

// NewExecutor creates an executor with the given provider and poll policy.
func NewExecutor(provider aws.DeploymentServiceAPI, policy PollPolicy, logger logging.Logger) *Executor {
	return &Executor{
		provider: provider,
		policy:   policy,
		logger:   logger,
	}
}

// Execute applies the plan in order and waits for convergence. The returned
// Result is populated as far as execution got, even when err is non-nil.
func (e *Executor) Execute(ctx context.Context, spec *models.DeploymentSpec, ops []models.ChangeOperation) (*Result, error) {
	result := &Result{}

	var registered *models.TaskDefinitionState

	for i, op := range ops {
		// A cancelled context means the operator aborted: no further
		// mutations are issued.
		if err := ctx.Err(); err != nil {
			result.FinalService = e.describeFinalState(ctx, spec)
			return result, fmt.Errorf("deployment aborted before operation %d (%s): %w", i, op.Kind, err)
		}

		e.logger.Info("Applying operation %d/%d: %s", i+1, len(ops), op.Kind)

		var err error
		switch op.Kind {
		case models.OpCreateCluster:
			_, err = e.provider.CreateCluster(ctx, op.ClusterName)

		case models.OpRegisterTaskDefinition:
			registered, err = e.provider.RegisterTaskDefinition(ctx, op.Spec)
			if err == nil {
				e.logger.Info("Registered task definition %s", registered.ARN)
			}

		case models.OpUpdateService:
			target := op.PreviousTaskDefinitionARN
			if registered != nil {
				target = registered.ARN
			}
			if op.CreateService {
				err = e.provider.CreateService(ctx, op.Spec, target)
			} else {
				err = e.provider.UpdateService(ctx, op.ClusterName, op.Spec.ServiceName, target, op.Spec.DesiredCount)
			}
			if err == nil {
				result.ServiceUpdated = true
				result.CreatedService = op.CreateService
				result.TaskDefinitionARN = target
				result.PreviousTaskDefinitionARN = op.PreviousTaskDefinitionARN
			}

		case models.OpUpdateNetworking:
			// Authorize before revoking so declared traffic is never cut
			// off while the group is being reconciled.
			err = e.provider.AuthorizeIngress(ctx, op.SecurityGroupID, op.AuthorizeRules)
			if err == nil {
				err = e.provider.RevokeIngress(ctx, op.SecurityGroupID, op.RevokeRules)
			}

		default:
			// A kind the planner never emits is a broken plan, not a remote
			// failure; no call was made.
			result.FinalService = e.describeFinalState(ctx, spec)
			return result, fmt.Errorf("unknown operation kind %q at index %d", op.Kind, i)
		}

		if err != nil {
			result.FinalService = e.describeFinalState(ctx, spec)
			// A cancellation can land inside the SDK call itself; that is an
			// operator abort, not a remote failure.
			if errors.Is(err, context.Canceled) {
				return result, fmt.Errorf("deployment aborted during operation %d (%s): %w", i, op.Kind, err)
			}
			return result, deploy.NewRemoteAPIError(i, fmt.Sprintf("%s failed", op.Kind), err)
		}
		result.OperationsApplied++
	}

	state, err := e.AwaitConvergence(ctx, spec.ClusterName, spec.ServiceName, spec.DesiredCount)
	result.FinalService = state
	return result, err
}

// AwaitConvergence polls the service at the policy interval until it is
// steady at the desired count, the timeout expires, or the context is
// cancelled. On timeout or cancellation a final describe still runs so the
// caller reports what actually exists remotely.
func (e *Executor) AwaitConvergence(ctx context.Context, clusterName, serviceName string, desiredCount int32) (*models.ServiceState, error) {
	deadline := time.Now().Add(e.policy.Timeout)
	ticker := time.NewTicker(e.policy.Interval)
	defer ticker.Stop()

	for {
		state, err := e.provider.DescribeService(ctx, clusterName, serviceName)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				final := e.finalDescribe(clusterName, serviceName)
				return final, fmt.Errorf("deployment aborted while waiting for convergence: %w", err)
			}
			return nil, deploy.NewRemoteAPIError(-1, "polling service status failed", err)
		}
		if steady(state, desiredCount) {
			e.logger.Info("Service %q is steady with %d/%d tasks running",
				serviceName, state.RunningCount, state.DesiredCount)
			return state, nil
		}

		if state != nil {
			e.logger.Debug("Service %q not steady yet: %d running, %d pending, %d deployments",
				serviceName, state.RunningCount, state.PendingCount, state.DeploymentCount)
		}

		if time.Now().After(deadline) {
			final := e.finalDescribe(clusterName, serviceName)
			return final, deploy.NewConvergenceTimeoutError(
				fmt.Sprintf("service %q did not reach steady state within %s", serviceName, e.policy.Timeout), nil)
		}

		select {
		case <-ticker.C:
		case <-ctx.Done():
			final := e.finalDescribe(clusterName, serviceName)
			return final, fmt.Errorf("deployment aborted while waiting for convergence: %w", ctx.Err())
		}
	}
}

// steady reports convergence against the declared count, not just the
// platform's own desired count.
func steady(state *models.ServiceState, desiredCount int32) bool {
	return state.Steady() && state.DesiredCount == desiredCount
}

// finalDescribe fetches the service state on a fresh context so an expired
// or cancelled run can still report remote reality.
func (e *Executor) finalDescribe(clusterName, serviceName string) *models.ServiceState {
	ctx, cancel := context.WithTimeout(context.Background(), e.policy.Interval)
	defer cancel()

	state, err := e.provider.DescribeService(ctx, clusterName, serviceName)
	if err != nil {
		e.logger.Warn("Final service describe failed: %v", err)
		return nil
	}
	return state
}

// describeFinalState is finalDescribe keyed off the spec, used on the
// operation failure path.
func (e *Executor) describeFinalState(_ context.Context, spec *models.DeploymentSpec) *models.ServiceState {
	return e.finalDescribe(spec.ClusterName, spec.ServiceName)
}
