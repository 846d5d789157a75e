package postgres_test

import (
	"context"
	"testing"
	"time"

	"bodycomp/pkg/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func testScan(userID domain.UserID, date time.Time, totalKg, fatKg, leanKg float64) domain.ScanRecord {
	return domain.ScanRecord{
		UserID:        userID,
		Date:          date,
		TotalMassKg:   totalKg,
		FatMassKg:     fatKg,
		LeanMassKg:    leanKg,
		BoneMineralKg: totalKg - fatKg - leanKg,
		Conditions: domain.ScanConditions{
			TimeOfDay:    domain.TimeOfDayMorning,
			Hydration:    domain.HydrationNormal,
			SameProvider: true,
		},
		Confidence: domain.ScanConfidenceHigh,
	}
}

func TestPgSQL_StoreScan(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)

	ctx := context.Background()
	userID := domain.UserID(uuid.New())
	date := time.Date(2025, 1, 15, 8, 0, 0, 0, time.UTC)

	stored, err := pgSQL.StoreScan(ctx, testScan(userID, date, 90, 27, 60))
	require.NoError(t, err)
	require.NotNil(t, stored)
	require.NotEqual(t, domain.ScanID{}, stored.ID, "id should be generated")
	require.False(t, stored.CreatedAt.IsZero(), "created_at should be generated")
	require.Equal(t, userID, stored.UserID)
	require.InDelta(t, 90.0, stored.TotalMassKg, 1e-9)
	require.InDelta(t, 3.0, stored.BoneMineralKg, 1e-9)
	require.Equal(t, domain.TimeOfDayMorning, stored.Conditions.TimeOfDay)
	require.Equal(t, domain.ScanConfidenceHigh, stored.Confidence)
	require.True(t, stored.Date.Equal(date))
}

func TestPgSQL_ScanHistory_OrderedByDate(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	userID := domain.UserID(uuid.New())
	base := time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC)

	// insert out of chronological order
	for _, days := range []int{60, 0, 30} {
		_, err := pgSQL.StoreScan(ctx, testScan(userID, base.AddDate(0, 0, days), 90, 27, 60))
		require.NoError(t, err)
	}

	history, err := pgSQL.ScanHistory(ctx, userID)
	require.NoError(t, err)
	require.Len(t, history, 3)
	for i := 1; i < len(history); i++ {
		require.True(t, history[i-1].Date.Before(history[i].Date),
			"history must be ascending by scan date")
	}

	// another user's history stays empty
	other, err := pgSQL.ScanHistory(ctx, domain.UserID(uuid.New()))
	require.NoError(t, err)
	require.Empty(t, other)
}

func TestPgSQL_DeleteScan(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	userID := domain.UserID(uuid.New())
	stored, err := pgSQL.StoreScan(ctx, testScan(userID, time.Now().UTC(), 85, 23, 59.5))
	require.NoError(t, err)
	id := stored.ID

	// delete
	deleted, err := pgSQL.DeleteScan(ctx, userID, id)
	require.NoError(t, err)
	require.NotNil(t, deleted)
	require.Equal(t, id, deleted.ID)
	// fetching by id should return nil
	got, err := pgSQL.ScanByID(ctx, userID, id)
	require.NoError(t, err)
	require.Nil(t, got)
	// history should not include it
	history, err := pgSQL.ScanHistory(ctx, userID)
	require.NoError(t, err)
	require.Empty(t, history)
	// deleting again should not error
	deleted2, err := pgSQL.DeleteScan(ctx, userID, id)
	require.NoError(t, err)
	require.Nil(t, deleted2)
}

func TestPgSQL_UserScans_Pagination(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	userID := domain.UserID(uuid.New())
	base := time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)
	stored := make([]domain.ScanRecord, 0, 5)
	for i := range 5 {
		s, err := pgSQL.StoreScan(ctx, testScan(userID, base.AddDate(0, 0, i*30), 90-float64(i), 27, 60))
		require.NoError(t, err)
		stored = append(stored, *s)
	}

	// adjust created_at to be deterministic descending: now, now-1m, ...
	now := time.Now().UTC()
	for i, sc := range stored {
		created := now.Add(-time.Duration(4-i) * time.Minute) // make last insert the newest
		_, err := pgSQL.DB.ExecContext(ctx, "UPDATE scans SET created_at = $1 WHERE id = $2", created, uuid.UUID(sc.ID))
		require.NoError(t, err)
	}

	// first page, limit 2
	p1, err := pgSQL.UserScans(ctx, userID, time.Time{}, 2)
	require.NoError(t, err)
	require.Len(t, p1.Scans, 2)
	require.NotNil(t, p1.NextCursor)
	c1 := *p1.NextCursor

	// second page
	p2, err := pgSQL.UserScans(ctx, userID, c1, 2)
	require.NoError(t, err)
	require.Len(t, p2.Scans, 2)
	require.NotNil(t, p2.NextCursor)
	c2 := *p2.NextCursor

	// third (last) page, should have 1 left and no next cursor
	p3, err := pgSQL.UserScans(ctx, userID, c2, 2)
	require.NoError(t, err)
	require.Len(t, p3.Scans, 1)
	require.Nil(t, p3.NextCursor)
}

func TestPgSQL_ScanByID(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	userA := domain.UserID(uuid.New())
	userB := domain.UserID(uuid.New())
	storedA, err := pgSQL.StoreScan(ctx, testScan(userA, time.Now().UTC(), 90, 27, 60))
	require.NoError(t, err)
	storedB, err := pgSQL.StoreScan(ctx, testScan(userB, time.Now().UTC(), 70, 18, 49))
	require.NoError(t, err)

	// correct user & id
	got, err := pgSQL.ScanByID(ctx, userA, storedA.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, storedA.ID, got.ID)

	// wrong user should not see other's scan
	got2, err := pgSQL.ScanByID(ctx, userA, storedB.ID)
	require.NoError(t, err)
	require.Nil(t, got2)
}
