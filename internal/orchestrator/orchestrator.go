package orchestrator

import (
	"context"
	"fmt"
	"strings"

	descriptor "ecsdeployer/internal/config"
	"ecsdeployer/internal/deploy"
	"ecsdeployer/internal/executor"
	"ecsdeployer/internal/models"
	"ecsdeployer/internal/plan"
	aws "ecsdeployer/internal/providers/aws"
	"ecsdeployer/internal/report"
	"ecsdeployer/internal/rollback"
	"ecsdeployer/pkg/logging"
)

// Service orchestrates a single deployment run: load the descriptor,
// snapshot remote state, build the plan, execute it, and roll back when a
// converged update turns out unreachable.
type Service struct {
	config     Config
	loader     descriptor.ILoader
	provider   aws.DeploymentServiceAPI
	planner    plan.IBuilder
	executor   executor.IExecutor
	controller rollback.IController
	printer    report.IPrinter
	logger     logging.Logger
}

// NewService creates a new orchestrator service with the given configuration.
func NewService(
	config Config,
	loader descriptor.ILoader,
	provider aws.DeploymentServiceAPI,
	planner plan.IBuilder,
	exec executor.IExecutor,
	controller rollback.IController,
	printer report.IPrinter,
	logger logging.Logger,
) *Service {
	return &Service{
		config:     config,
		loader:     loader,
		provider:   provider,
		planner:    planner,
		executor:   exec,
		controller: controller,
		printer:    printer,
		logger:     logger,
	}
}

// NewDefaultService creates a new service with default implementations of dependencies
func NewDefaultService(config Config) (*Service, error) {
	provider, err := aws.NewDeploymentServiceWithDefaultConfig(context.Background())
	if err != nil {
		return nil, fmt.Errorf("failed to initialize AWS service: %w", err)
	}

	logger := logging.NewDefaultLogger()
	logger.SetLevel(logging.StringToLogLevel(config.LogLevel))

	policy := executor.PollPolicy{
		Interval: config.PollInterval,
		Timeout:  config.Timeout,
	}
	if policy.Interval <= 0 {
		policy.Interval = executor.DefaultPollPolicy.Interval
	}
	if policy.Timeout <= 0 {
		policy.Timeout = executor.DefaultPollPolicy.Timeout
	}

	exec := executor.NewExecutor(provider, policy, logger.Named("executor"))

	return NewService(
		config,
		descriptor.NewLoaderWithLogger(logger.Named("config")),
		provider,
		plan.NewBuilder(provider, logger.Named("plan")),
		exec,
		rollback.NewController(provider, exec, logger.Named("rollback")),
		report.NewDefaultPrinter(),
		logger,
	), nil
}

// Run executes the deployment workflow and returns the terminal result. The
// returned error, when non-nil, carries the deploy error category the CLI
// maps to an exit code.
func (s *Service) Run(ctx context.Context) (*models.DeploymentResult, error) {
	if s.config.ConfigPath == "" {
		return nil, deploy.NewValidationError("deployment descriptor path is required", nil)
	}

	spec, err := s.loader.LoadDescriptor(s.config.ConfigPath)
	if err != nil {
		return nil, err
	}

	remote, err := s.provider.DescribeRemoteState(ctx, spec)
	if err != nil {
		return nil, deploy.NewRemoteAPIError(-1, "fetching remote state failed", err)
	}

	ops, err := s.planner.Build(ctx, spec, remote)
	if err != nil {
		return nil, err
	}

	if s.config.DryRun {
		if err := s.printer.PrintPlan(spec.ServiceName, ops, s.getOutputFormat()); err != nil {
			return nil, err
		}
		return &models.DeploymentResult{
			Success:              true,
			ServiceName:          spec.ServiceName,
			ClusterName:          spec.ClusterName,
			DesiredCount:         spec.DesiredCount,
			FailedOperationIndex: -1,
		}, nil
	}

	execResult, execErr := s.executor.Execute(ctx, spec, ops)

	var rolledBack bool
	finalErr := execErr
	finalState := execResult.FinalService

	if execErr != nil && s.rollbackEligible(execErr, execResult) {
		s.logger.Warn("Deployment did not converge, rolling back")
		state, rbErr := s.controller.Rollback(ctx, spec, execResult.PreviousTaskDefinitionARN)
		if state != nil {
			finalState = state
		}
		if rbErr != nil {
			finalErr = rbErr
		} else {
			rolledBack = true
		}
	}

	result := s.buildResult(spec, execResult, finalState, rolledBack, finalErr)
	if err := s.printer.PrintResult(result, s.getOutputFormat()); err != nil {
		s.logger.Error("Failed to print deployment result: %v", err)
	}

	return result, finalErr
}

// rollbackEligible implements the rollback policy: only a convergence
// failure after a successful service update on a pre-existing service can
// be rolled back. Pre-update API errors changed nothing eligible, and a
// freshly created service has no previous revision.
func (s *Service) rollbackEligible(execErr error, execResult *executor.Result) bool {
	return deploy.IsCategory(execErr, deploy.ErrConvergenceTimeout) &&
		execResult.ServiceUpdated &&
		!execResult.CreatedService &&
		execResult.PreviousTaskDefinitionARN != ""
}

// buildResult assembles the terminal deployment record.
func (s *Service) buildResult(
	spec *models.DeploymentSpec,
	execResult *executor.Result,
	finalState *models.ServiceState,
	rolledBack bool,
	finalErr error,
) *models.DeploymentResult {
	result := &models.DeploymentResult{
		Success:              finalErr == nil,
		ServiceName:          spec.ServiceName,
		ClusterName:          spec.ClusterName,
		TaskDefinitionARN:    execResult.TaskDefinitionARN,
		DesiredCount:         spec.DesiredCount,
		FailedOperationIndex: -1,
		RolledBack:           rolledBack,
	}

	if rolledBack {
		result.TaskDefinitionARN = execResult.PreviousTaskDefinitionARN
	}
	if finalState != nil {
		result.RunningCount = finalState.RunningCount
		result.DesiredCount = finalState.DesiredCount
	}
	if finalErr != nil {
		result.Error = finalErr.Error()
		result.FailedOperationIndex = deploy.OperationIndex(finalErr)
	}

	return result
}

// getOutputFormat converts the string format to report.OutputFormatType.
func (s *Service) getOutputFormat() report.OutputFormatType {
	switch strings.ToUpper(s.config.OutputFormat) {
	case "JSON":
		return report.OutputFormatTypeJSON
	default:
		return report.OutputFormatTypeTABLE
	}
}
