package postgres

import (
	"context"
	"fmt"

	"bodycomp/pkg/domain"
	"bodycomp/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	profilesTable = "profiles"
)

// compile-time check that PgSQL covers the profile operations.
var _ storage.ProfileStorage = (*PgSQL)(nil)

// ProfileByUser returns the stored profile for a user, nil when none exists.
// The returned profile carries no scan history; callers join it from
// ScanHistory when needed.
func (p *PgSQL) ProfileByUser(ctx context.Context, userID domain.UserID) (*domain.Profile, error) {
	var row PgProfile
	found, err := p.Builder.From(profilesTable).
		Where(goqu.I("user_id").Eq(uuid.UUID(userID))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch profile by user: %w", err)
	}
	if !found {
		return nil, nil
	}

	out := row.ToDomain()

	return &out, nil
}

// UpsertProfile inserts the profile or replaces the learned fields of an
// existing row. Last writer wins.
func (p *PgSQL) UpsertProfile(ctx context.Context, profile domain.Profile) (*domain.Profile, error) {
	var pgProfile PgProfile
	pgProfile.FromDomain(profile)

	var row PgProfile
	found, err := p.Builder.Insert(profilesTable).
		Rows(pgProfile).
		OnConflict(goqu.DoUpdate("user_id", goqu.Record{
			"learned_ratio":     pgProfile.LearnedRatio,
			"confidence":        pgProfile.Confidence,
			"data_points":       pgProfile.DataPoints,
			"protein_modifier":  pgProfile.ProteinModifier,
			"training_modifier": pgProfile.TrainingModifier,
			"deficit_modifier":  pgProfile.DeficitModifier,
			"updated_at":        pgProfile.UpdatedAt,
		})).
		Returning(&PgProfile{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not upsert profile into pg: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("could not upsert profile into pg: no row returned")
	}

	out := row.ToDomain()

	return &out, nil
}
