package report

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"ecsdeployer/internal/models"
)

func samplePlan() []models.ChangeOperation {
	return []models.ChangeOperation{
		{Kind: models.OpCreateCluster, Reason: "cluster does not exist", ClusterName: "hello-cluster"},
		{Kind: models.OpRegisterTaskDefinition, Reason: "image differs from remote revision"},
		{Kind: models.OpUpdateService, Reason: "service does not exist", CreateService: true},
	}
}

func sampleResult() *models.DeploymentResult {
	return &models.DeploymentResult{
		Success:              true,
		ServiceName:          "hello",
		ClusterName:          "hello-cluster",
		TaskDefinitionARN:    "arn:aws:ecs:us-east-1:123456789012:task-definition/hello:4",
		DesiredCount:         2,
		RunningCount:         2,
		FailedOperationIndex: -1,
	}
}

func TestPrintPlan_TableFormat(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinterWithWriter(&buf)

	err := printer.PrintPlan("hello", samplePlan(), OutputFormatTypeTABLE)
	assert.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "SERVICE:")
	assert.Contains(t, output, "hello")
	assert.Contains(t, output, string(models.OpCreateCluster))
	assert.Contains(t, output, string(models.OpRegisterTaskDefinition))
	assert.Contains(t, output, string(models.OpUpdateService))
	assert.Contains(t, output, "cluster does not exist")
	assert.Contains(t, output, "Plan: 3 operation(s) to apply")
}

func TestPrintPlan_EmptyPlanTable(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinterWithWriter(&buf)

	err := printer.PrintPlan("hello", nil, OutputFormatTypeTABLE)
	assert.NoError(t, err)

	assert.Contains(t, buf.String(), "No changes.")
	assert.NotContains(t, buf.String(), "OPERATION")
}

func TestPrintPlan_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinterWithWriter(&buf)

	err := printer.PrintPlan("hello", samplePlan(), OutputFormatTypeJSON)
	assert.NoError(t, err)

	var plan PlanReport
	assert.NoError(t, json.Unmarshal(buf.Bytes(), &plan))
	assert.Equal(t, "hello", plan.ServiceName)
	assert.Len(t, plan.Operations, 3)
	assert.Equal(t, models.OpCreateCluster, plan.Operations[0].Kind)
}

func TestPrintResult_TableSuccess(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinterWithWriter(&buf)

	err := printer.PrintResult(sampleResult(), OutputFormatTypeTABLE)
	assert.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "STATUS:")
	assert.Contains(t, output, "SUCCESS")
	assert.Contains(t, output, "2/2 running")
	assert.NotContains(t, output, "ERROR:")
	assert.NotContains(t, output, "ROLLBACK:")
}

func TestPrintResult_TableFailureWithRollback(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinterWithWriter(&buf)

	result := sampleResult()
	result.Success = false
	result.RunningCount = 1
	result.FailedOperationIndex = 2
	result.RolledBack = true
	result.Error = "convergence_timeout: service did not reach steady state"

	err := printer.PrintResult(result, OutputFormatTypeTABLE)
	assert.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "FAILED")
	assert.Contains(t, output, "FAILED OPERATION:")
	assert.Contains(t, output, "reverted to previous revision")
	assert.Contains(t, output, "convergence_timeout")
}

func TestPrintResult_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinterWithWriter(&buf)

	err := printer.PrintResult(sampleResult(), OutputFormatTypeJSON)
	assert.NoError(t, err)

	var result models.DeploymentResult
	assert.NoError(t, json.Unmarshal(buf.Bytes(), &result))
	assert.True(t, result.Success)
	assert.Equal(t, "hello", result.ServiceName)
	assert.Equal(t, int32(2), result.RunningCount)
}

func TestPrint_UnsupportedFormat(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinterWithWriter(&buf)

	assert.Error(t, printer.PrintPlan("hello", samplePlan(), "YAML"))
	assert.Error(t, printer.PrintResult(sampleResult(), "YAML"))
}
