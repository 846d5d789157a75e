package intake

import (
	"time"

	"github.com/google/uuid"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
)

// CalibrateProfileArgs contains the arguments for a profile-calibration job
// submitted to River. The struct is used as the unique key for jobs so each
// user has at most one calibration queued at a time.
type CalibrateProfileArgs struct {
	// UserID identifies whose profile to recalibrate. It is marked as unique
	// so River can enforce one job per user according to InsertOpts.UniqueOpts.
	UserID uuid.UUID `json:"userId" river:"unique"`

	// maxAttempts configures the maximum number of times River should retry the job.
	maxAttempts int
	// uniqueJobPeriod defines the lookback window during which a job with the
	// same arguments is considered a duplicate across the specified states.
	uniqueJobPeriod time.Duration
}

// Kind returns the River job kind used to register and dispatch the
// calibration worker.
func (args CalibrateProfileArgs) Kind() string { return "CalibrateProfileJob" }

// InsertOpts returns the River options that control how the job is enqueued,
// including the maximum retry attempts and uniqueness constraints to prevent
// duplicate calibration jobs for the same user across multiple job states.
func (args CalibrateProfileArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: args.maxAttempts,
		// make sure we only have one job per user in any state
		UniqueOpts: river.UniqueOpts{
			ByArgs:   true,
			ByPeriod: args.uniqueJobPeriod,
			ByState: []rivertype.JobState{
				rivertype.JobStateAvailable,
				rivertype.JobStateCompleted,
				rivertype.JobStatePending,
				rivertype.JobStateRunning,
				rivertype.JobStateRetryable,
				rivertype.JobStateScheduled,
			},
		},
	}
}
