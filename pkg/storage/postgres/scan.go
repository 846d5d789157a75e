package postgres

import (
	"context"
	"fmt"
	"time"

	"bodycomp/pkg/domain"
	"bodycomp/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	scansTable = "scans"
)

func (p *PgSQL) StoreScan(ctx context.Context, scan domain.ScanRecord) (*domain.ScanRecord, error) {
	var pgScan PgScan
	pgScan.FromDomain(scan)

	var row PgScan
	found, err := p.Builder.Insert(scansTable).
		Rows(pgScan).
		Returning(&PgScan{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not store scan into pg: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("could not store scan into pg: no row returned")
	}

	out := row.ToDomain()

	return &out, nil
}

// UserScans returns a page of scans for a user created before the optional
// cursor, ordered by created_at DESC, id DESC. One extra row is fetched to
// decide whether a next page exists.
func (p *PgSQL) UserScans(ctx context.Context,
	userID domain.UserID,
	cursor time.Time,
	limit uint) (storage.UserScans, error) {
	w := []goqu.Expression{
		goqu.I("user_id").Eq(uuid.UUID(userID)),
		goqu.I("deleted_at").IsNull(),
	}
	if !cursor.IsZero() {
		w = append(w, goqu.I("created_at").Lt(cursor))
	}

	fetch := limit + 1
	ds := p.Builder.From(scansTable).
		Where(w...).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Limit(fetch)

	var rows []PgScan
	if err := ds.Executor().ScanStructsContext(ctx, &rows); err != nil {
		return storage.UserScans{}, fmt.Errorf("could not fetch user scans from pg: %w", err)
	}

	var nextCursor *time.Time
	if uint(len(rows)) > limit {
		trimmed := rows[:limit]
		nextCursor = &trimmed[len(trimmed)-1].CreatedAt
		rows = trimmed
	}

	return storage.UserScans{
		Scans:      pgScansToDomain(rows),
		NextCursor: nextCursor,
	}, nil
}

// ScanHistory returns the user's complete scan history ordered ascending by
// scan date, ready for pairwise calibration.
func (p *PgSQL) ScanHistory(ctx context.Context, userID domain.UserID) ([]domain.ScanRecord, error) {
	var rows []PgScan
	if err := p.Builder.From(scansTable).
		Where(
			goqu.I("user_id").Eq(uuid.UUID(userID)),
			goqu.I("deleted_at").IsNull(),
		).
		Order(goqu.I("scanned_at").Asc(), goqu.I("id").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch scan history from pg: %w", err)
	}

	return pgScansToDomain(rows), nil
}

// ScanByID returns a scan by its ID for the given user, excluding
// soft-deleted rows.
func (p *PgSQL) ScanByID(ctx context.Context, userID domain.UserID, id domain.ScanID) (*domain.ScanRecord, error) {
	var row PgScan
	found, err := p.Builder.From(scansTable).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("user_id").Eq(uuid.UUID(userID)),
			goqu.I("deleted_at").IsNull(),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch scan by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	out := row.ToDomain()

	return &out, nil
}

// DeleteScan soft-deletes by setting deleted_at for the given scan and user,
// returning the deleted record.
func (p *PgSQL) DeleteScan(ctx context.Context, userID domain.UserID, id domain.ScanID) (*domain.ScanRecord, error) {
	var row PgScan
	found, err := p.Builder.Update(scansTable).
		Set(goqu.Record{
			"deleted_at": goqu.L("CURRENT_TIMESTAMP"),
		}).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("user_id").Eq(uuid.UUID(userID)),
		goqu.I("deleted_at").IsNull(),
	).Returning(&PgScan{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not delete scan in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	out := row.ToDomain()

	return &out, nil
}
