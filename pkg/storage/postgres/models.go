package postgres

import (
	"database/sql"
	"time"

	"bodycomp/pkg/domain"

	"github.com/google/uuid"
)

type PgScan struct {
	ID     uuid.UUID `db:"id"      goqu:"skipinsert"`
	UserID uuid.UUID `db:"user_id"`

	ScannedAt     time.Time `db:"scanned_at"`
	TotalMassKg   float64   `db:"total_mass_kg"`
	FatMassKg     float64   `db:"fat_mass_kg"`
	LeanMassKg    float64   `db:"lean_mass_kg"`
	BoneMineralKg float64   `db:"bone_mineral_kg"`

	TimeOfDay        string `db:"time_of_day"`
	Hydration        string `db:"hydration"`
	TrainedWithin24h bool   `db:"trained_within_24h"`
	SameProvider     bool   `db:"same_provider"`
	Confidence       string `db:"confidence"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	DeletedAt sql.NullTime `db:"deleted_at" goqu:"skipinsert"`
}

func (p *PgScan) ToDomain() domain.ScanRecord {
	return domain.ScanRecord{
		ID:            domain.ScanID(p.ID),
		UserID:        domain.UserID(p.UserID),
		Date:          p.ScannedAt,
		TotalMassKg:   p.TotalMassKg,
		FatMassKg:     p.FatMassKg,
		LeanMassKg:    p.LeanMassKg,
		BoneMineralKg: p.BoneMineralKg,
		Conditions: domain.ScanConditions{
			TimeOfDay:        domain.TimeOfDay(p.TimeOfDay),
			Hydration:        domain.Hydration(p.Hydration),
			TrainedWithin24h: p.TrainedWithin24h,
			SameProvider:     p.SameProvider,
		},
		Confidence: domain.ScanConfidence(p.Confidence),
		CreatedAt:  p.CreatedAt,
	}
}

func (p *PgScan) FromDomain(scan domain.ScanRecord) {
	*p = PgScan{
		ID:               uuid.UUID(scan.ID),
		UserID:           uuid.UUID(scan.UserID),
		ScannedAt:        scan.Date,
		TotalMassKg:      scan.TotalMassKg,
		FatMassKg:        scan.FatMassKg,
		LeanMassKg:       scan.LeanMassKg,
		BoneMineralKg:    scan.BoneMineralKg,
		TimeOfDay:        string(scan.Conditions.TimeOfDay),
		Hydration:        string(scan.Conditions.Hydration),
		TrainedWithin24h: scan.Conditions.TrainedWithin24h,
		SameProvider:     scan.Conditions.SameProvider,
		Confidence:       string(scan.Confidence),
		CreatedAt:        scan.CreatedAt,
	}
}

func pgScansToDomain(scans []PgScan) []domain.ScanRecord {
	out := make([]domain.ScanRecord, 0, len(scans))
	for i := range scans {
		out = append(out, scans[i].ToDomain())
	}

	return out
}

type PgProfile struct {
	UserID uuid.UUID `db:"user_id"`

	LearnedRatio sql.NullFloat64 `db:"learned_ratio"`
	Confidence   string          `db:"confidence"`
	DataPoints   int             `db:"data_points"`

	ProteinModifier  float64 `db:"protein_modifier"`
	TrainingModifier float64 `db:"training_modifier"`
	DeficitModifier  float64 `db:"deficit_modifier"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at"`
}

func (p *PgProfile) ToDomain() domain.Profile {
	out := domain.Profile{
		UserID:           domain.UserID(p.UserID),
		Confidence:       parseCalibrationConfidence(p.Confidence),
		DataPoints:       p.DataPoints,
		ProteinModifier:  p.ProteinModifier,
		TrainingModifier: p.TrainingModifier,
		DeficitModifier:  p.DeficitModifier,
		UpdatedAt:        p.UpdatedAt.Time,
	}
	if p.LearnedRatio.Valid {
		ratio := p.LearnedRatio.Float64
		out.LearnedRatio = &ratio
	}

	return out
}

func (p *PgProfile) FromDomain(profile domain.Profile) {
	*p = PgProfile{
		UserID:           uuid.UUID(profile.UserID),
		Confidence:       profile.Confidence.String(),
		DataPoints:       profile.DataPoints,
		ProteinModifier:  profile.ProteinModifier,
		TrainingModifier: profile.TrainingModifier,
		DeficitModifier:  profile.DeficitModifier,
		UpdatedAt: sql.NullTime{
			Time:  profile.UpdatedAt,
			Valid: !profile.UpdatedAt.IsZero(),
		},
	}
	if profile.LearnedRatio != nil {
		p.LearnedRatio = sql.NullFloat64{Float64: *profile.LearnedRatio, Valid: true}
	}
}

func parseCalibrationConfidence(s string) domain.CalibrationConfidence {
	var c domain.CalibrationConfidence
	if err := c.UnmarshalText([]byte(s)); err != nil {
		return domain.CalibrationNone
	}

	return c
}
