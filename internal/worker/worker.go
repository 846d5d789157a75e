// Package worker runs the background side of the service: a River client
// consuming profile-calibration jobs enqueued by scan intake.
package worker

import (
	"context"
	"fmt"
	"log/slog"

	"bodycomp/pkg/logger"
	"bodycomp/pkg/storage"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
	"go.uber.org/zap/exp/zapslog"
)

// Start creates and starts a River client on the default queue with the
// calibration worker registered. The returned client must be stopped by the
// caller on shutdown.
func Start(ctx context.Context,
	dbPool *pgxpool.Pool,
	st storage.Storage,
	maxWorkers int) (*river.Client[pgx.Tx], error) {
	workers := river.NewWorkers()
	river.AddWorker(workers, NewCalibrateWorker(st))

	riverClient, err := river.NewClient(riverpgxv5.New(dbPool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: maxWorkers},
		},
		Workers: workers,
		Logger:  slog.New(zapslog.NewHandler(logger.Get(ctx).Core())),
	})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	if err := riverClient.Start(ctx); err != nil {
		return nil, fmt.Errorf("could not start river queue client: %w", err)
	}

	return riverClient, nil
}
