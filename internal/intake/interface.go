package intake

import (
	"context"

	"bodycomp/internal/recommend"
	"bodycomp/pkg/domain"
)

//go:generate mockgen -package mockintake -source=interface.go -destination=mock/mockintake.go *
type Intake interface {
	Submit(ctx context.Context, userID domain.UserID, submission ScanSubmission) (*domain.ScanRecord, error)
	UserScans(ctx context.Context,
		userID domain.UserID,
		cursor string,
		limit uint) ([]domain.ScanRecord, string, error)
	Scan(ctx context.Context, userID domain.UserID, scanID domain.ScanID) (*domain.ScanRecord, error)
	Delete(ctx context.Context, userID domain.UserID, scanID domain.ScanID) error
	Profile(ctx context.Context, userID domain.UserID) (*domain.Profile, error)
	Calibration(ctx context.Context, userID domain.UserID) (*CalibrationReport, error)
	Predict(ctx context.Context, userID domain.UserID, req PredictionRequest) (*PredictionReport, error)
	Timeline(ctx context.Context, userID domain.UserID, req TimelineRequest) (*TimelineReport, error)
	Recommend(ctx context.Context, userID domain.UserID, behavior Behavior) ([]recommend.Suggestion, error)
}
