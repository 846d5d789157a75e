// Package intake is the service layer in front of the body-composition
// engine. It owns scan persistence, keeps calibration jobs flowing and
// assembles engine inputs from stored state plus caller-supplied behavior.
package intake

import (
	"context"
	"fmt"
	"time"

	"bodycomp/internal/calibrate"
	"bodycomp/internal/config"
	"bodycomp/internal/pratio"
	"bodycomp/internal/predict"
	"bodycomp/internal/recommend"
	"bodycomp/pkg/domain"
	"bodycomp/pkg/metrics"
	"bodycomp/pkg/serrors"
	"bodycomp/pkg/storage"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// Options configure scan validation and how calibration jobs are enqueued.
// These settings are typically derived from application configuration.
type Options struct {
	// MassToleranceKg is the slack allowed when checking that the component
	// masses of a submission do not exceed its total mass.
	MassToleranceKg float64
	// CalibrationMaxAttempts is the maximum number of attempts the background
	// worker should make when processing a calibration job before marking it failed.
	CalibrationMaxAttempts int
	// CalibrationJobPeriod is the lookback window during which a second
	// calibration job for the same user is considered a duplicate.
	CalibrationJobPeriod time.Duration
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		MassToleranceKg:        cfg.Intake.MassToleranceKg,
		CalibrationMaxAttempts: cfg.Intake.CalibrationMaxAttempts,
		CalibrationJobPeriod:   cfg.Intake.CalibrationJobPeriod,
	}
}

// intake is the concrete implementation of the Intake interface.
// It coordinates persistence with the storage layer and job enqueueing.
type intake struct {
	// options holds runtime configuration that affects validation and enqueueing.
	options Options
	// storage is the persistence layer used to store scans, profiles and jobs.
	storage storage.Storage

	// scansSubmitted counts accepted scan submissions.
	scansSubmitted metric.Int64Counter
	// calibrationsQueued counts calibration jobs actually enqueued, duplicates excluded.
	calibrationsQueued metric.Int64Counter
}

// Submit validates and stores a new scan for the given user and enqueues a
// background job to recalibrate the user's profile against the grown history.
// The scan row and the job are committed in one transaction so a job can
// never reference a scan that was not persisted.
func (s *intake) Submit(ctx context.Context,
	userID domain.UserID,
	submission ScanSubmission) (*domain.ScanRecord, error) {
	if err := s.validate(submission); err != nil {
		return nil, err
	}

	var stored *domain.ScanRecord
	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		res, err := tx.StoreScan(ctx, domain.ScanRecord{
			UserID:        userID,
			Date:          submission.Date,
			TotalMassKg:   submission.TotalMassKg,
			FatMassKg:     submission.FatMassKg,
			LeanMassKg:    submission.LeanMassKg,
			BoneMineralKg: submission.BoneMineralKg,
			Conditions:    submission.Conditions,
			Confidence:    domain.DeriveScanConfidence(submission.Conditions),
		})
		if err != nil {
			return fmt.Errorf("could not store scan: %w", err)
		}
		stored = res

		jobAdded, err := tx.AddJob(ctx, s.calibrationJob(userID), nil)
		if err != nil {
			return fmt.Errorf("could not add job: %w", err)
		}

		// if a job was not added, a calibration for this user is already queued.
		// the worker reloads the full scan history when it runs, so the pending
		// job will pick up this scan too.
		if jobAdded {
			s.calibrationsQueued.Add(ctx, 1)
		}

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not submit scan: %w", err)
	}

	s.scansSubmitted.Add(ctx, 1)

	return stored, nil
}

// validate rejects submissions the engine could not make sense of. Malformed
// values are bad requests; masses that do not add up are a semantic
// validation failure so callers can distinguish the two.
func (s *intake) validate(submission ScanSubmission) error {
	if submission.Date.IsZero() {
		return serrors.With(serrors.ErrBadRequest, "scan date is required")
	}
	if submission.TotalMassKg <= 0 {
		return serrors.With(serrors.ErrBadRequest, "total mass must be positive")
	}
	if submission.FatMassKg < 0 || submission.LeanMassKg < 0 || submission.BoneMineralKg < 0 {
		return serrors.With(serrors.ErrBadRequest, "component masses must not be negative")
	}

	components := submission.FatMassKg + submission.LeanMassKg + submission.BoneMineralKg
	if components > submission.TotalMassKg+s.options.MassToleranceKg {
		return serrors.With(serrors.ErrValidation, "component masses exceed total mass")
	}

	return nil
}

// UserScans returns a page of the user's stored scans, newest first. It
// supports cursor-based pagination using an RFC3339 timestamp string and
// returns the next cursor when more results are available.
func (s *intake) UserScans(ctx context.Context,
	userID domain.UserID,
	cursor string,
	limit uint) ([]domain.ScanRecord, string, error) {
	var cursorTime time.Time
	if cursor != "" {
		t, err := time.Parse(time.RFC3339, cursor)
		if err != nil {
			return nil, "", serrors.Wrap(serrors.ErrBadRequest, err, "invalid cursor")
		}
		cursorTime = t
	}

	page, err := s.storage.UserScans(ctx, userID, cursorTime, limit)
	if err != nil {
		return nil, "", fmt.Errorf("could not get user scans: %w", err)
	}

	var next string
	if page.NextCursor != nil {
		next = page.NextCursor.Format(time.RFC3339)
	}

	return page.Scans, next, nil
}

// Scan fetches a single scan by ID for the given user. It returns a
// not-found error when no matching scan exists.
func (s *intake) Scan(ctx context.Context, userID domain.UserID, scanID domain.ScanID) (*domain.ScanRecord, error) {
	res, err := s.storage.ScanByID(ctx, userID, scanID)
	if err != nil {
		return nil, fmt.Errorf("could not get scan: %w", err)
	}
	if res == nil {
		return nil, serrors.With(serrors.ErrNotFound, "scan not found")
	}

	return res, nil
}

// Delete removes a scan belonging to the given user and queues a
// recalibration, since the learned ratio may have depended on the removed
// pair. If the scan does not exist, a not-found error is returned.
func (s *intake) Delete(ctx context.Context, userID domain.UserID, scanID domain.ScanID) error {
	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		res, err := tx.DeleteScan(ctx, userID, scanID)
		if err != nil {
			return fmt.Errorf("could not delete scan: %w", err)
		}
		if res == nil {
			return serrors.With(serrors.ErrNotFound, "scan not found")
		}

		jobAdded, err := tx.AddJob(ctx, s.calibrationJob(userID), nil)
		if err != nil {
			return fmt.Errorf("could not add job: %w", err)
		}
		if jobAdded {
			s.calibrationsQueued.Add(ctx, 1)
		}

		return nil
	}); err != nil {
		return fmt.Errorf("could not delete scan: %w", err)
	}

	return nil
}

// Profile returns the user's calibration profile with the scan history
// attached. Users who have never been calibrated get a fresh profile with
// neutral modifiers rather than a not-found error; having no profile is a
// normal state, not an exceptional one.
func (s *intake) Profile(ctx context.Context, userID domain.UserID) (*domain.Profile, error) {
	profile, err := s.storage.ProfileByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("could not get profile: %w", err)
	}
	if profile == nil {
		p := domain.NewProfile(userID)
		profile = &p
	}

	history, err := s.storage.ScanHistory(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("could not get scan history: %w", err)
	}
	profile.Scans = history

	return profile, nil
}

// Calibration runs a fresh calibration over the user's current history and
// reports it next to the stored profile, including every pair analysis and
// the number of additional scans each confidence level would need.
func (s *intake) Calibration(ctx context.Context, userID domain.UserID) (*CalibrationReport, error) {
	profile, err := s.Profile(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := calibrate.Calibrate(profile.Scans)

	validPairs := 0
	if result != nil {
		validPairs = result.ValidPairs
	}

	return &CalibrationReport{
		Profile:              *profile,
		Result:               result,
		ScansNeededForMedium: calibrate.ScansNeeded(validPairs, profile.Confidence, domain.CalibrationMedium),
		ScansNeededForHigh:   calibrate.ScansNeeded(validPairs, profile.Confidence, domain.CalibrationHigh),
	}, nil
}

// Predict projects the user's composition at the target weight from their
// latest scan, their calibration profile and the supplied behavior.
func (s *intake) Predict(ctx context.Context,
	userID domain.UserID,
	req PredictionRequest) (*PredictionReport, error) {
	if req.TargetWeightKg <= 0 {
		return nil, serrors.With(serrors.ErrBadRequest, "target weight must be positive")
	}

	profile, latest, err := s.profileWithLatestScan(ctx, userID)
	if err != nil {
		return nil, err
	}

	inputs := engineInputs(*latest, *profile, req.Behavior)
	factors := pratio.Calculate(inputs)
	prediction := predict.Predict(*latest, req.TargetWeightKg, inputs, factors, *profile)

	return &PredictionReport{
		Prediction: prediction,
		Factors:    factors,
		Breakdown:  predict.Breakdown(*latest, prediction),
	}, nil
}

// Timeline answers duration questions around a weight target. With a
// deadline it returns the daily deficit required to meet it; without one it
// estimates how long the supplied deficit takes and the resulting date.
func (s *intake) Timeline(ctx context.Context,
	userID domain.UserID,
	req TimelineRequest) (*TimelineReport, error) {
	if req.TargetWeightKg <= 0 {
		return nil, serrors.With(serrors.ErrBadRequest, "target weight must be positive")
	}

	_, latest, err := s.profileWithLatestScan(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.DeadlineWeeks > 0 {
		required, ok := predict.RequiredDailyDeficit(latest.TotalMassKg, req.TargetWeightKg, req.DeadlineWeeks)
		if !ok || required == 0 {
			return nil, serrors.With(serrors.ErrValidation, "target weight is already met")
		}

		return &TimelineReport{RequiredDailyDeficitKcal: &required}, nil
	}

	estimate, ok := predict.TimeToTarget(latest.TotalMassKg, req.TargetWeightKg, req.DailyDeficitKcal)
	if !ok {
		return nil, serrors.With(serrors.ErrValidation, "no energy gap or target weight is already met")
	}
	date, _ := predict.TargetDate(time.Now().UTC(), latest.TotalMassKg, req.TargetWeightKg, req.DailyDeficitKcal)

	return &TimelineReport{Estimate: &estimate, TargetDate: &date}, nil
}

// Recommend derives prioritized behavior suggestions from the factor
// breakdown of the user's latest scan and the supplied behavior.
func (s *intake) Recommend(ctx context.Context,
	userID domain.UserID,
	behavior Behavior) ([]recommend.Suggestion, error) {
	profile, latest, err := s.profileWithLatestScan(ctx, userID)
	if err != nil {
		return nil, err
	}

	inputs := engineInputs(*latest, *profile, behavior)

	return recommend.FromFactors(pratio.Calculate(inputs), inputs), nil
}

// profileWithLatestScan loads the profile plus history and returns the most
// recent scan. Engine-facing operations need at least one scan to anchor the
// current composition.
func (s *intake) profileWithLatestScan(ctx context.Context,
	userID domain.UserID) (*domain.Profile, *domain.ScanRecord, error) {
	profile, err := s.Profile(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	if len(profile.Scans) == 0 {
		return nil, nil, serrors.With(serrors.ErrNotFound, "no scans recorded for user")
	}

	// history is ordered ascending by scan date
	latest := profile.Scans[len(profile.Scans)-1]

	return profile, &latest, nil
}

// engineInputs assembles the factor-model inputs: behavior from the caller,
// current composition from the latest scan, ratio history from calibration.
func engineInputs(latest domain.ScanRecord, profile domain.Profile, behavior Behavior) domain.PartitionRatioInputs {
	var gPerKg float64
	if latest.TotalMassKg > 0 {
		gPerKg = behavior.ProteinGrams / latest.TotalMassKg
	}

	var ratioHistory []float64
	if profile.LearnedRatio != nil {
		ratioHistory = []float64{*profile.LearnedRatio}
	}

	return domain.PartitionRatioInputs{
		ProteinGrams:   behavior.ProteinGrams,
		ProteinGPerKg:  gPerKg,
		WeeklySets:     behavior.WeeklySets,
		DeficitKcal:    behavior.DeficitKcal,
		DeficitPercent: behavior.DeficitPercent,
		BodyFatPercent: latest.BodyFatPercent(),
		LeanMassKg:     latest.LeanMassKg,
		Sex:            behavior.Sex,
		TrainingAge:    behavior.TrainingAge,
		Enhanced:       behavior.Enhanced,
		RatioHistory:   ratioHistory,
	}
}

// calibrationJob builds the unique river job that recalibrates the user.
func (s *intake) calibrationJob(userID domain.UserID) CalibrateProfileArgs {
	return CalibrateProfileArgs{
		UserID:          uuid.UUID(userID),
		maxAttempts:     s.options.CalibrationMaxAttempts,
		uniqueJobPeriod: s.options.CalibrationJobPeriod,
	}
}

// New creates a new Intake instance backed by the provided storage and
// configured with the given options.
func New(st storage.Storage, options Options) Intake {
	meter := otel.Meter(metrics.MeterName)
	scansSubmitted, _ := meter.Int64Counter("intake_scans_submitted_total",
		metric.WithDescription("Number of scan submissions accepted"))
	calibrationsQueued, _ := meter.Int64Counter("intake_calibrations_queued_total",
		metric.WithDescription("Number of calibration jobs enqueued"))

	return &intake{
		options:            options,
		storage:            st,
		scansSubmitted:     scansSubmitted,
		calibrationsQueued: calibrationsQueued,
	}
}
