package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"ecsdeployer/internal/deploy"
	"ecsdeployer/internal/orchestrator"
)

// Exit codes are part of the CLI contract: CI pipelines branch on them.
const (
	exitOK                 = 0
	exitFailure            = 1
	exitValidationError    = 2
	exitRemoteAPIError     = 3
	exitConvergenceTimeout = 4
	exitRollbackFailure    = 5
)

func main() {
	var configPath string
	var timeoutSeconds int
	var pollSeconds int
	var dryRun bool
	var outputFormat string
	var logLevel string

	rootCmd := &cobra.Command{
		Use:   "deploy",
		Short: "Provision or update a single containerized service on ECS/Fargate from a declarative descriptor",
		Long: `deploy reads an HCL deployment descriptor, diffs it against the remote
ECS/Fargate state, applies the missing changes in dependency order, and waits
for the service to converge. A converged update that never stabilizes is
rolled back to the previous task-definition revision.

Concurrent runs against the same service are not supported; serialize them
externally (for example with a per-service deployment lock in CI).`,
		Run: func(cmd *cobra.Command, args []string) {
			if configPath == "" {
				fmt.Println("The --config flag is required")
				_ = cmd.Help()
				os.Exit(exitValidationError)
			}

			config := orchestrator.Config{
				ConfigPath:   configPath,
				Timeout:      time.Duration(timeoutSeconds) * time.Second,
				PollInterval: time.Duration(pollSeconds) * time.Second,
				DryRun:       dryRun,
				OutputFormat: outputFormat,
				LogLevel:     logLevel,
			}

			service, err := orchestrator.NewDefaultService(config)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Failed to initialize the service: %v\n", err)
				os.Exit(exitFailure)
			}

			// An operator abort stops further mutations; the run still
			// reports the observed remote state before exiting.
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			_, err = service.Run(ctx)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(exitCodeFor(err))
			}
		},
	}

	rootCmd.Flags().StringVar(&configPath, "config", "", "Path to the HCL deployment descriptor")
	rootCmd.Flags().IntVar(&timeoutSeconds, "timeout", 300, "Seconds to wait for the service to reach steady state")
	rootCmd.Flags().IntVar(&pollSeconds, "poll-interval", 5, "Seconds between service status polls")
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the plan without applying any change")
	rootCmd.Flags().StringVar(&outputFormat, "output", "table", "Output format: table or json")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn or error")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(exitFailure)
	}
}

// exitCodeFor maps deployment error categories to the CLI's exit codes.
func exitCodeFor(err error) int {
	switch {
	case deploy.IsCategory(err, deploy.ErrValidation):
		return exitValidationError
	case deploy.IsCategory(err, deploy.ErrRemoteAPI):
		return exitRemoteAPIError
	case deploy.IsCategory(err, deploy.ErrConvergenceTimeout):
		return exitConvergenceTimeout
	case deploy.IsCategory(err, deploy.ErrRollbackFailure):
		return exitRollbackFailure
	default:
		return exitFailure
	}
}
