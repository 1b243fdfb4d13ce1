package orchestrator

import "time"

// Config contains all the parameters needed for a deployment run.
type Config struct {
	ConfigPath   string        // Path to the deployment descriptor file
	Timeout      time.Duration // Hard limit on convergence polling
	PollInterval time.Duration // Fixed interval between status polls
	DryRun       bool          // Build and print the plan without applying it
	OutputFormat string        // Output format (json or table)
	LogLevel     string        // Log level (debug, info, warn, error)
}
