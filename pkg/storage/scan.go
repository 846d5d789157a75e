package storage

import (
	"context"
	"time"

	"bodycomp/pkg/domain"
)

// UserScans is one page of a user's stored scan history together with the
// cursor for the next page, nil when this is the last page.
type UserScans struct {
	// Scans contains the current page, newest first.
	Scans []domain.ScanRecord
	// NextCursor is the created_at timestamp to pass as the cursor for the
	// following page.
	NextCursor *time.Time
}

// ScanStorage defines persistence operations for scan records. Deletes are
// soft; every query excludes soft-deleted rows.
type ScanStorage interface {
	// StoreScan inserts a scan and returns the stored row including generated
	// fields (ID, created_at).
	StoreScan(ctx context.Context, scan domain.ScanRecord) (*domain.ScanRecord, error)
	// UserScans returns a page of the user's scans created before the
	// optional cursor time, newest first, limited by limit.
	UserScans(ctx context.Context, userID domain.UserID, cursor time.Time, limit uint) (UserScans, error)
	// ScanHistory returns the user's full scan history ordered ascending by
	// scan date, the order calibration consumes it in.
	ScanHistory(ctx context.Context, userID domain.UserID) ([]domain.ScanRecord, error)
	// ScanByID fetches one scan owned by the user. Returns nil when not found.
	ScanByID(ctx context.Context, userID domain.UserID, id domain.ScanID) (*domain.ScanRecord, error)
	// DeleteScan soft-deletes one scan owned by the user and returns the
	// deleted row, or nil when it was not found.
	DeleteScan(ctx context.Context, userID domain.UserID, id domain.ScanID) (*domain.ScanRecord, error)
}
