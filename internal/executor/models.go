package executor

import (
	"time"

	"ecsdeployer/internal/models"
)

// PollPolicy controls how convergence is observed: a fixed interval between
// DescribeService calls, bounded by a hard timeout.
type PollPolicy struct {
	Interval time.Duration
	Timeout  time.Duration
}

// DefaultPollPolicy matches the CLI defaults.
var DefaultPollPolicy = PollPolicy{
	Interval: 5 * time.Second,
	Timeout:  5 * time.Minute,
}

// Result records what the executor actually did, independent of whether the
// run ultimately failed. The rollback controller decides eligibility from
// these fields.
type Result struct {
	// OperationsApplied is how many plan steps completed successfully.
	OperationsApplied int

	// ServiceUpdated is set once an UpdateService operation succeeded.
	ServiceUpdated bool

	// CreatedService is set when the service was created rather than
	// updated; a fresh service has no revision to roll back to.
	CreatedService bool

	// TaskDefinitionARN is the revision the service was pointed at.
	TaskDefinitionARN string

	// PreviousTaskDefinitionARN is the revision the service ran before the
	// update, when one existed.
	PreviousTaskDefinitionARN string

	// FinalService is the last observed service state, fetched even on
	// failure or abort so the result reflects remote reality.
	FinalService *models.ServiceState
}
