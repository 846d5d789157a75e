package storage

import (
	"context"

	"github.com/riverqueue/river"
)

// JobStorage is the minimal interface for enqueueing background jobs. The
// args value carries the job payload and opts customizes insertion (queue,
// delay, uniqueness). Implementations must participate in a surrounding
// transaction when one is open, so a job only becomes visible if the
// enclosing writes commit.
type JobStorage interface {
	// AddJob enqueues a job and reports whether it was actually inserted;
	// false means a unique-job constraint matched an existing job.
	AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error)
}
