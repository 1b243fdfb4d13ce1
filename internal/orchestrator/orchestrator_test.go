package orchestrator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	configMocks "ecsdeployer/internal/config/mocks"
	"ecsdeployer/internal/deploy"
	"ecsdeployer/internal/executor"
	execMocks "ecsdeployer/internal/executor/mocks"
	"ecsdeployer/internal/models"
	planMocks "ecsdeployer/internal/plan/mocks"
	awsMocks "ecsdeployer/internal/providers/aws/mocks"
	reportMocks "ecsdeployer/internal/report/mocks"
	rollbackMocks "ecsdeployer/internal/rollback/mocks"
	"ecsdeployer/pkg/logging"
)

const (
	previousARN = "arn:aws:ecs:us-east-1:123456789012:task-definition/hello:3"
	newARN      = "arn:aws:ecs:us-east-1:123456789012:task-definition/hello:4"
)

// mockSet bundles every orchestrator dependency.
type mockSet struct {
	loader     *configMocks.ILoader
	provider   *awsMocks.DeploymentServiceAPI
	planner    *planMocks.IBuilder
	executor   *execMocks.IExecutor
	controller *rollbackMocks.IController
	printer    *reportMocks.IPrinter
}

// setupServiceWithMocks creates a Service wired entirely against mocks.
func setupServiceWithMocks(t *testing.T, config Config) (*Service, *mockSet) {
	m := &mockSet{
		loader:     configMocks.NewILoader(t),
		provider:   awsMocks.NewDeploymentServiceAPI(t),
		planner:    planMocks.NewIBuilder(t),
		executor:   execMocks.NewIExecutor(t),
		controller: rollbackMocks.NewIController(t),
		printer:    reportMocks.NewIPrinter(t),
	}
	service := NewService(config, m.loader, m.provider, m.planner, m.executor, m.controller, m.printer, logging.NewMockLogger())
	return service, m
}

func helloSpec() *models.DeploymentSpec {
	return &models.DeploymentSpec{
		ServiceName:  "hello",
		ClusterName:  "hello-cluster",
		Image:        "repo/hello:latest",
		CPU:          256,
		Memory:       512,
		Port:         3000,
		DesiredCount: 1,
		Subnets:      []string{"subnet-0aaa111"},
	}
}

func fullPlan(spec *models.DeploymentSpec) []models.ChangeOperation {
	return []models.ChangeOperation{
		{Kind: models.OpCreateCluster, ClusterName: spec.ClusterName},
		{Kind: models.OpRegisterTaskDefinition, ClusterName: spec.ClusterName, Spec: spec},
		{Kind: models.OpUpdateService, ClusterName: spec.ClusterName, Spec: spec, CreateService: true},
	}
}

// stubHappyPath wires loader, provider and planner for a run that reaches
// the executor.
func stubHappyPath(m *mockSet, spec *models.DeploymentSpec, ops []models.ChangeOperation) {
	m.loader.On("LoadDescriptor", "deploy.hcl").Return(spec, nil)
	m.provider.On("DescribeRemoteState", mock.Anything, spec).Return(&models.RemoteState{}, nil)
	m.planner.On("Build", mock.Anything, spec, mock.Anything).Return(ops, nil)
}

func TestRun_MissingConfigPath(t *testing.T) {
	service, _ := setupServiceWithMocks(t, Config{})

	result, err := service.Run(context.Background())

	assert.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, deploy.IsCategory(err, deploy.ErrValidation))
}

func TestRun_LoaderErrorPropagates(t *testing.T) {
	service, m := setupServiceWithMocks(t, Config{ConfigPath: "deploy.hcl"})
	m.loader.On("LoadDescriptor", "deploy.hcl").
		Return(nil, deploy.NewValidationError("cpu out of range", nil))

	result, err := service.Run(context.Background())

	assert.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, deploy.IsCategory(err, deploy.ErrValidation))
}

func TestRun_DryRunPrintsPlanWithoutExecuting(t *testing.T) {
	spec := helloSpec()
	service, m := setupServiceWithMocks(t, Config{ConfigPath: "deploy.hcl", DryRun: true})

	stubHappyPath(m, spec, fullPlan(spec))
	m.printer.On("PrintPlan", "hello", mock.Anything, mock.Anything).Return(nil)
	// No Execute expectation: applying anything in dry-run fails the test.

	result, err := service.Run(context.Background())

	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.True(t, result.Success)
	m.executor.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything, mock.Anything)
}

func TestRun_SuccessfulDeployment(t *testing.T) {
	spec := helloSpec()
	service, m := setupServiceWithMocks(t, Config{ConfigPath: "deploy.hcl"})

	stubHappyPath(m, spec, fullPlan(spec))
	m.executor.On("Execute", mock.Anything, spec, mock.Anything).Return(&executor.Result{
		OperationsApplied: 3,
		ServiceUpdated:    true,
		CreatedService:    true,
		TaskDefinitionARN: newARN,
		FinalService: &models.ServiceState{
			Name: "hello", DesiredCount: 1, RunningCount: 1, DeploymentCount: 1,
		},
	}, nil)
	m.printer.On("PrintResult", mock.Anything, mock.Anything).Return(nil)

	result, err := service.Run(context.Background())

	assert.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, int32(1), result.RunningCount)
	assert.Equal(t, newARN, result.TaskDefinitionARN)
	assert.Equal(t, -1, result.FailedOperationIndex)
	m.controller.AssertNotCalled(t, "Rollback", mock.Anything, mock.Anything, mock.Anything)
}

func TestRun_ConvergenceTimeoutTriggersRollbackOnce(t *testing.T) {
	spec := helloSpec()
	service, m := setupServiceWithMocks(t, Config{ConfigPath: "deploy.hcl"})

	stubHappyPath(m, spec, fullPlan(spec))
	m.executor.On("Execute", mock.Anything, spec, mock.Anything).Return(&executor.Result{
		OperationsApplied:         3,
		ServiceUpdated:            true,
		CreatedService:            false,
		TaskDefinitionARN:         newARN,
		PreviousTaskDefinitionARN: previousARN,
		FinalService: &models.ServiceState{
			Name: "hello", DesiredCount: 1, RunningCount: 0, DeploymentCount: 2,
		},
	}, deploy.NewConvergenceTimeoutError("service never stabilized", nil))
	m.controller.On("Rollback", mock.Anything, spec, previousARN).
		Return(&models.ServiceState{Name: "hello", TaskDefinitionARN: previousARN,
			DesiredCount: 1, RunningCount: 1, DeploymentCount: 1}, nil).Once()
	m.printer.On("PrintResult", mock.Anything, mock.Anything).Return(nil)

	result, err := service.Run(context.Background())

	assert.Error(t, err)
	assert.True(t, deploy.IsCategory(err, deploy.ErrConvergenceTimeout))
	assert.False(t, result.Success)
	assert.True(t, result.RolledBack)
	assert.Equal(t, previousARN, result.TaskDefinitionARN)
	m.controller.AssertNumberOfCalls(t, "Rollback", 1)
}

func TestRun_NoRollbackWhenFailureBeforeServiceUpdate(t *testing.T) {
	spec := helloSpec()
	service, m := setupServiceWithMocks(t, Config{ConfigPath: "deploy.hcl"})

	stubHappyPath(m, spec, fullPlan(spec))
	m.executor.On("Execute", mock.Anything, spec, mock.Anything).Return(&executor.Result{
		OperationsApplied: 1,
		ServiceUpdated:    false,
	}, deploy.NewRemoteAPIError(1, "RegisterTaskDefinition failed", nil))
	m.printer.On("PrintResult", mock.Anything, mock.Anything).Return(nil)

	result, err := service.Run(context.Background())

	assert.Error(t, err)
	assert.True(t, deploy.IsCategory(err, deploy.ErrRemoteAPI))
	assert.Equal(t, 1, result.FailedOperationIndex)
	assert.False(t, result.RolledBack)
	m.controller.AssertNotCalled(t, "Rollback", mock.Anything, mock.Anything, mock.Anything)
}

func TestRun_NoRollbackForFreshlyCreatedService(t *testing.T) {
	spec := helloSpec()
	service, m := setupServiceWithMocks(t, Config{ConfigPath: "deploy.hcl"})

	stubHappyPath(m, spec, fullPlan(spec))
	// First deploy: the service was created, there is no previous revision.
	m.executor.On("Execute", mock.Anything, spec, mock.Anything).Return(&executor.Result{
		OperationsApplied: 3,
		ServiceUpdated:    true,
		CreatedService:    true,
		TaskDefinitionARN: newARN,
	}, deploy.NewConvergenceTimeoutError("service never stabilized", nil))
	m.printer.On("PrintResult", mock.Anything, mock.Anything).Return(nil)

	result, err := service.Run(context.Background())

	assert.Error(t, err)
	assert.True(t, deploy.IsCategory(err, deploy.ErrConvergenceTimeout))
	assert.False(t, result.RolledBack)
	m.controller.AssertNotCalled(t, "Rollback", mock.Anything, mock.Anything, mock.Anything)
}

func TestRun_RollbackFailureIsFatal(t *testing.T) {
	spec := helloSpec()
	service, m := setupServiceWithMocks(t, Config{ConfigPath: "deploy.hcl"})

	stubHappyPath(m, spec, fullPlan(spec))
	m.executor.On("Execute", mock.Anything, spec, mock.Anything).Return(&executor.Result{
		OperationsApplied:         3,
		ServiceUpdated:            true,
		TaskDefinitionARN:         newARN,
		PreviousTaskDefinitionARN: previousARN,
	}, deploy.NewConvergenceTimeoutError("service never stabilized", nil))
	m.controller.On("Rollback", mock.Anything, spec, previousARN).
		Return(nil, deploy.NewRollbackFailureError("service did not converge on previous revision", nil)).Once()
	m.printer.On("PrintResult", mock.Anything, mock.Anything).Return(nil)

	result, err := service.Run(context.Background())

	assert.Error(t, err)
	assert.True(t, deploy.IsCategory(err, deploy.ErrRollbackFailure))
	assert.False(t, result.Success)
	assert.False(t, result.RolledBack)
}

func TestRun_RemoteStateFetchFailure(t *testing.T) {
	spec := helloSpec()
	service, m := setupServiceWithMocks(t, Config{ConfigPath: "deploy.hcl"})

	m.loader.On("LoadDescriptor", "deploy.hcl").Return(spec, nil)
	m.provider.On("DescribeRemoteState", mock.Anything, spec).
		Return(nil, assert.AnError)

	result, err := service.Run(context.Background())

	assert.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, deploy.IsCategory(err, deploy.ErrRemoteAPI))
}
