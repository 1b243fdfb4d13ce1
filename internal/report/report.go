package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"ecsdeployer/internal/models"
)

// OutputFormatType defines the format types for deployment output.
type OutputFormatType string

const (
	// OutputFormatTypeJSON represents JSON output format
	OutputFormatTypeJSON OutputFormatType = "JSON"
	// OutputFormatTypeTABLE represents table output format
	OutputFormatTypeTABLE OutputFormatType = "TABLE"
)

// PlanReport represents a dry-run plan for a single service.
type PlanReport struct {
	ServiceName string                   `json:"service_name"`
	Operations  []models.ChangeOperation `json:"operations"`
}

// DefaultPrinter writes reports to a single destination, stdout unless
// overridden.
type DefaultPrinter struct {
	writer io.Writer
}

// NewDefaultPrinter creates a printer writing to stdout
func NewDefaultPrinter() *DefaultPrinter {
	return NewPrinterWithWriter(os.Stdout)
}

// NewPrinterWithWriter creates a printer writing to the given destination
func NewPrinterWithWriter(w io.Writer) *DefaultPrinter {
	return &DefaultPrinter{writer: w}
}

// PrintPlan prints the ordered change operations that a deployment would
// apply. Supported formats: "json" (machine-readable) and "table"
// (human-friendly).
func (p DefaultPrinter) PrintPlan(serviceName string, ops []models.ChangeOperation, format OutputFormatType) error {
	plan := PlanReport{
		ServiceName: serviceName,
		Operations:  ops,
	}

	switch format {
	case OutputFormatTypeJSON:
		return p.printJSON(plan)
	case OutputFormatTypeTABLE:
		return p.printPlanTable(plan)
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

// PrintResult prints the terminal deployment record.
func (p DefaultPrinter) PrintResult(result *models.DeploymentResult, format OutputFormatType) error {
	switch format {
	case OutputFormatTypeJSON:
		return p.printJSON(result)
	case OutputFormatTypeTABLE:
		return p.printResultTable(result)
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

// printJSON prints any report in indented JSON
func (p DefaultPrinter) printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("error marshaling report to JSON: %w", err)
	}
	fmt.Fprintln(p.writer, string(data))
	return nil
}

// printPlanTable prints the plan in a human-friendly table format
func (p DefaultPrinter) printPlanTable(plan PlanReport) error {
	writer := tabwriter.NewWriter(p.writer, 0, 0, 2, ' ', 0)

	fmt.Fprintf(writer, "\nSERVICE:\t%s\n\n", plan.ServiceName)

	if len(plan.Operations) == 0 {
		fmt.Fprintln(writer, "No changes. Remote state already matches the descriptor.")
		return writer.Flush()
	}

	fmt.Fprintln(writer, "#\tOPERATION\tREASON")
	fmt.Fprintln(writer, "-\t---------\t------")
	for i, op := range plan.Operations {
		fmt.Fprintf(writer, "%d\t%s\t%s\n", i+1, op.Kind, op.Reason)
	}

	fmt.Fprintln(writer, "")
	fmt.Fprintf(writer, "Plan: %d operation(s) to apply\n", len(plan.Operations))

	return writer.Flush()
}

// printResultTable prints the deployment result in a human-friendly table format
func (p DefaultPrinter) printResultTable(result *models.DeploymentResult) error {
	writer := tabwriter.NewWriter(p.writer, 0, 0, 2, ' ', 0)

	status := "SUCCESS"
	if !result.Success {
		status = "FAILED"
	}

	fmt.Fprintf(writer, "\nSERVICE:\t%s\n", result.ServiceName)
	fmt.Fprintf(writer, "CLUSTER:\t%s\n", result.ClusterName)
	fmt.Fprintf(writer, "STATUS:\t%s\n", status)
	if result.TaskDefinitionARN != "" {
		fmt.Fprintf(writer, "TASK DEFINITION:\t%s\n", result.TaskDefinitionARN)
	}
	fmt.Fprintf(writer, "REPLICAS:\t%d/%d running\n", result.RunningCount, result.DesiredCount)

	if !result.Success {
		if result.FailedOperationIndex >= 0 {
			fmt.Fprintf(writer, "FAILED OPERATION:\t%d\n", result.FailedOperationIndex)
		}
		if result.RolledBack {
			fmt.Fprintln(writer, "ROLLBACK:\tservice reverted to previous revision")
		}
		if result.Error != "" {
			fmt.Fprintf(writer, "ERROR:\t%s\n", result.Error)
		}
	}

	return writer.Flush()
}
