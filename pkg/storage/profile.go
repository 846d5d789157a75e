package storage

import (
	"context"

	"bodycomp/pkg/domain"
)

// ProfileStorage defines persistence operations for calibration profiles.
// The stored profile covers the learned fields only; the scan history lives
// in ScanStorage and is joined in memory by the caller.
type ProfileStorage interface {
	// ProfileByUser fetches the user's profile. Returns nil when the user has
	// never been calibrated.
	ProfileByUser(ctx context.Context, userID domain.UserID) (*domain.Profile, error)
	// UpsertProfile inserts or replaces the user's profile and returns the
	// stored row. Last writer wins; the calibration worker recomputes the
	// whole profile from scan history on every run, so a lost update is
	// repaired by the next one.
	UpsertProfile(ctx context.Context, profile domain.Profile) (*domain.Profile, error)
}
