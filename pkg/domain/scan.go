package domain

import (
	"time"

	"github.com/google/uuid"
)

// ScanID uniquely identifies a stored densitometry scan.
// It wraps uuid.UUID to provide type safety at the domain layer.
type ScanID uuid.UUID

// TimeOfDay categorizes when a scan was taken. Morning fasted scans are the
// most repeatable, so the category feeds into the scan-confidence label.
type TimeOfDay string

const (
	TimeOfDayMorning   TimeOfDay = "MORNING"
	TimeOfDayAfternoon TimeOfDay = "AFTERNOON"
	TimeOfDayEvening   TimeOfDay = "EVENING"
)

// Hydration categorizes the subject's hydration state at scan time.
// Lean mass estimates are sensitive to total body water, so anything other
// than normal hydration lowers the scan-confidence label.
type Hydration string

const (
	HydrationNormal       Hydration = "NORMAL"
	HydrationDehydrated   Hydration = "DEHYDRATED"
	HydrationOverhydrated Hydration = "OVERHYDRATED"
)

// ScanConfidence labels how trustworthy a single scan's numbers are, derived
// from the conditions it was taken under. This is a per-measurement label and
// is unrelated to the calibration and prediction confidence ladders.
type ScanConfidence string

const (
	ScanConfidenceHigh     ScanConfidence = "HIGH"
	ScanConfidenceModerate ScanConfidence = "MODERATE"
	ScanConfidenceLow      ScanConfidence = "LOW"
)

// ScanConditions describes the circumstances a scan was taken under.
type ScanConditions struct {
	// TimeOfDay is the time-of-day category of the measurement.
	TimeOfDay TimeOfDay `json:"timeOfDay"`
	// Hydration is the hydration category at measurement time.
	Hydration Hydration `json:"hydration"`
	// TrainedWithin24h reports whether a workout occurred in the preceding
	// 24 hours. Recent training shifts fluid into muscle and inflates lean mass.
	TrainedWithin24h bool `json:"trainedWithin24h"`
	// SameProvider reports whether the scan used the same measuring provider
	// as the previous scan. Cross-provider deltas carry extra noise.
	SameProvider bool `json:"sameProvider"`
}

// DeriveScanConfidence maps scan conditions to a confidence label. A morning
// scan with normal hydration, no training in the last 24 hours and the same
// provider is labeled high; one adverse condition drops to moderate, more
// drop to low.
func DeriveScanConfidence(c ScanConditions) ScanConfidence {
	adverse := 0
	if c.TimeOfDay != TimeOfDayMorning {
		adverse++
	}
	if c.Hydration != HydrationNormal {
		adverse++
	}
	if c.TrainedWithin24h {
		adverse++
	}
	if !c.SameProvider {
		adverse++
	}

	switch {
	case adverse == 0:
		return ScanConfidenceHigh
	case adverse == 1:
		return ScanConfidenceModerate
	default:
		return ScanConfidenceLow
	}
}

// ScanRecord is an immutable snapshot of a whole-body densitometry
// measurement. All masses are in kilograms; the intake flow is responsible
// for unit normalization and for validating that the component masses are
// internally consistent before a record reaches the engine.
type ScanRecord struct {
	// ID is the unique identifier of the stored scan. Zero for records that
	// only exist in memory (e.g. offline calibration input).
	ID ScanID `json:"id"`
	// UserID is the identifier of the user the scan belongs to.
	UserID UserID `json:"userId"`

	// Date is when the measurement was taken. Records are ordered by this
	// field only; timezone-naive values are acceptable.
	Date time.Time `json:"date"`
	// TotalMassKg is the measured total body mass.
	TotalMassKg float64 `json:"totalMassKg"`
	// FatMassKg is the measured fat mass.
	FatMassKg float64 `json:"fatMassKg"`
	// LeanMassKg is the measured lean (muscle) mass.
	LeanMassKg float64 `json:"leanMassKg"`
	// BoneMineralKg is the measured bone mineral content, zero when the
	// provider does not report it.
	BoneMineralKg float64 `json:"boneMineralKg,omitempty"`

	// Conditions describes the circumstances of the measurement.
	Conditions ScanConditions `json:"conditions"`
	// Confidence is the per-scan trust label derived from Conditions.
	Confidence ScanConfidence `json:"confidence"`

	// CreatedAt is when the record entered the system; used only for
	// pagination of stored history, never for ordering inside the engine.
	CreatedAt time.Time `json:"createdAt,omitempty"`
}

// BodyFatPercent returns fat mass as a percentage of total mass,
// zero when total mass is zero.
func (s ScanRecord) BodyFatPercent() float64 {
	if s.TotalMassKg == 0 {
		return 0
	}

	return s.FatMassKg / s.TotalMassKg * 100
}
