package worker

import (
	"context"
	"fmt"
	"time"

	"bodycomp/internal/calibrate"
	"bodycomp/internal/intake"
	"bodycomp/pkg/domain"
	"bodycomp/pkg/logger"
	"bodycomp/pkg/storage"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// CalibrateWorker is a River worker that recalibrates a user's profile from
// their full scan history. It recomputes from scratch on every run instead of
// folding in single scans: jobs are unique per user, so one run after a burst
// of submissions (or a deletion) always converges on the same result as N
// runs. Writes are last-writer-wins for the same reason.
type CalibrateWorker struct {
	river.WorkerDefaults[intake.CalibrateProfileArgs]

	// storage is used to load scan history and persist the updated profile.
	storage storage.Storage
}

// NewCalibrateWorker constructs a CalibrateWorker using the provided storage.
func NewCalibrateWorker(st storage.Storage) *CalibrateWorker {
	return &CalibrateWorker{storage: st}
}

// Work executes a single calibration job: load the user's scans, run the
// calibrator and persist the learned state. A history without enough valid
// pairs resets the profile to uncalibrated rather than keeping a ratio the
// remaining scans can no longer support.
func (c *CalibrateWorker) Work(ctx context.Context, job *river.Job[intake.CalibrateProfileArgs]) error {
	ctx = logger.WithFields(ctx, zap.Int64("jobID", job.ID), zap.String("userID", job.Args.UserID.String()))
	userID := domain.UserID(job.Args.UserID)

	history, err := c.storage.ScanHistory(ctx, userID)
	if err != nil {
		logger.Error(ctx, "error loading scan history", zap.Error(err))

		return fmt.Errorf("could not get scan history: %w", err)
	}

	profile, err := c.storage.ProfileByUser(ctx, userID)
	if err != nil {
		logger.Error(ctx, "error loading profile", zap.Error(err))

		return fmt.Errorf("could not get profile: %w", err)
	}
	if profile == nil {
		p := domain.NewProfile(userID)
		profile = &p
	}

	result := calibrate.Calibrate(history)
	if result != nil {
		profile.LearnedRatio = &result.Ratio
		profile.Confidence = result.Confidence
		profile.DataPoints = result.ValidPairs
	} else {
		profile.LearnedRatio = nil
		profile.Confidence = domain.CalibrationNone
		profile.DataPoints = 0
	}
	profile.UpdatedAt = time.Now().UTC()

	if _, err := c.storage.UpsertProfile(ctx, *profile); err != nil {
		logger.Error(ctx, "error persisting profile", zap.Error(err))

		return fmt.Errorf("could not upsert profile: %w", err)
	}

	if result != nil {
		logger.Info(ctx, "profile calibrated",
			zap.Float64("ratio", result.Ratio),
			zap.Stringer("confidence", result.Confidence),
			zap.Int("validPairs", result.ValidPairs),
			zap.Int("scans", len(history)))
	} else {
		logger.Info(ctx, "not enough calibration data, profile reset",
			zap.Int("scans", len(history)))
	}

	return nil
}
