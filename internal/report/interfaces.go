package report

import "ecsdeployer/internal/models"

// IPrinter is the interface for presenting plans and deployment results
//
//go:generate mockery --name=IPrinter --output=./mocks
type IPrinter interface {
	PrintPlan(serviceName string, ops []models.ChangeOperation, format OutputFormatType) error
	PrintResult(result *models.DeploymentResult, format OutputFormatType) error
}
