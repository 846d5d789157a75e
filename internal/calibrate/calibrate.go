// Package calibrate learns a personal partition ratio from a user's own scan
// history. Consecutive scan pairs each yield one empirical ratio observation;
// pairs that are too close together, too small, or physiologically
// implausible are excluded with a reason, and the survivors are aggregated by
// median so a single noisy pair (a water-weight swing, a provider change)
// cannot drag the estimate.
//
// Everything here is a pure function over immutable inputs: the same scan
// history always yields bit-identical results, and profile transformations
// return new values instead of mutating.
package calibrate

import (
	"fmt"
	"math"
	"sort"
	"time"

	"bodycomp/internal/pratio"
	"bodycomp/pkg/domain"
)

const (
	// MinPairWeightChangeKg is the smallest absolute weight change a pair may
	// have; below it the empirical ratio is dominated by measurement noise.
	MinPairWeightChangeKg = 1.0

	// MinPairDays is the shortest gap between two scans of a pair. Shorter
	// gaps mostly measure water shifts, not tissue change.
	MinPairDays = 14.0

	// MinEmpiricalRatio and MaxEmpiricalRatio bound the accepted empirical
	// window. The ceiling exceeds 1.0 deliberately: simultaneous fat loss and
	// muscle gain (recomposition) pushes the observed ratio above 1. This
	// window is intentionally wider than the factor model's clamp range and
	// the two must not be unified.
	MinEmpiricalRatio = 0.3
	MaxEmpiricalRatio = 1.1
)

// Confidence gates: valid-pair count and sample standard deviation required
// for each level of the calibration ladder.
const (
	mediumPairs  = 2
	highPairs    = 4
	mediumStddev = 0.12
	highStddev   = 0.08
)

// Rejection reasons carried on invalid pairs.
const (
	ReasonChangeTooSmall  = "weight change too small"
	ReasonTooCloseInTime  = "scans too close together"
	ReasonOutsideExpected = "ratio outside expected range"
)

// AnalyzePair derives the composition deltas, elapsed time and empirical
// partition ratio for one ordered scan pair, along with whether the pair may
// contribute to calibration.
func AnalyzePair(start, end domain.ScanRecord) domain.ScanPairAnalysis {
	a := domain.ScanPairAnalysis{
		StartDate:      start.Date,
		EndDate:        end.Date,
		Days:           end.Date.Sub(start.Date).Hours() / 24,
		WeightChangeKg: end.TotalMassKg - start.TotalMassKg,
		FatChangeKg:    end.FatMassKg - start.FatMassKg,
		LeanChangeKg:   end.LeanMassKg - start.LeanMassKg,
	}

	if math.Abs(a.WeightChangeKg) >= MinPairWeightChangeKg {
		a.Ratio = a.FatChangeKg / a.WeightChangeKg
	}

	switch {
	case math.Abs(a.WeightChangeKg) < MinPairWeightChangeKg:
		a.Reason = ReasonChangeTooSmall
	case a.Days < MinPairDays:
		a.Reason = ReasonTooCloseInTime
	case a.Ratio < MinEmpiricalRatio || a.Ratio > MaxEmpiricalRatio:
		a.Reason = ReasonOutsideExpected
	default:
		a.Valid = true
	}

	return a
}

// Calibrate derives a learned partition ratio from a scan history. The input
// order does not matter; scans are sorted by date internally. Returns nil
// when fewer than two scans are supplied or no pair survives validation;
// callers must treat that as "insufficient data" and fall back to the factor
// model, not as an error.
func Calibrate(scans []domain.ScanRecord) *domain.CalibrationResult {
	if len(scans) < 2 {
		return nil
	}

	sorted := sortScans(scans)

	pairs := make([]domain.ScanPairAnalysis, 0, len(sorted)-1)
	var ratios []float64
	for i := 1; i < len(sorted); i++ {
		a := AnalyzePair(sorted[i-1], sorted[i])
		pairs = append(pairs, a)
		if a.Valid {
			ratios = append(ratios, a.Ratio)
		}
	}

	if len(ratios) == 0 {
		return nil
	}

	return &domain.CalibrationResult{
		Ratio:      median(ratios),
		Confidence: confidenceFor(len(ratios), sampleStddev(ratios)),
		ValidPairs: len(ratios),
		Pairs:      pairs,
	}
}

// ProcessNewScan appends a scan to the profile's history and re-runs
// calibration. The learned ratio, confidence and data-point count are
// replaced only when calibration succeeds; otherwise just the scan list and
// timestamp change. The input profile is not mutated; the caller owns
// persistence of the returned value.
func ProcessNewScan(profile domain.Profile, scan domain.ScanRecord) domain.Profile {
	updated := profile
	updated.Scans = sortScans(append(sliceCopy(profile.Scans), scan))
	updated.UpdatedAt = time.Now().UTC()

	if res := Calibrate(updated.Scans); res != nil {
		ratio := res.Ratio
		updated.LearnedRatio = &ratio
		updated.Confidence = res.Confidence
		updated.DataPoints = res.ValidPairs
	}

	return updated
}

// ScansNeeded returns how many more valid scan pairs are required to reach
// the target confidence level, 0 when the level is already met or exceeded.
func ScansNeeded(validPairs int, current, target domain.CalibrationConfidence) int {
	if current >= target {
		return 0
	}

	var required int
	switch target {
	case domain.CalibrationMedium:
		required = mediumPairs
	case domain.CalibrationHigh:
		required = highPairs
	default:
		required = validPairs + 1
	}

	if missing := required - validPairs; missing > 0 {
		return missing
	}

	return 0
}

// confidenceFor grades a learned ratio from how many valid pairs back it and
// how tightly they agree. The ladder none < low < medium < high is recomputed
// from scratch on every run; evidence can move it in either direction.
func confidenceFor(count int, stddev float64) domain.CalibrationConfidence {
	switch {
	case count >= highPairs && stddev < highStddev:
		return domain.CalibrationHigh
	case count >= mediumPairs && stddev < mediumStddev:
		return domain.CalibrationMedium
	default:
		return domain.CalibrationLow
	}
}

// sortScans returns a date-ascending copy; the input is left untouched.
func sortScans(scans []domain.ScanRecord) []domain.ScanRecord {
	out := sliceCopy(scans)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })

	return out
}

func sliceCopy(scans []domain.ScanRecord) []domain.ScanRecord {
	out := make([]domain.ScanRecord, len(scans))
	copy(out, scans)

	return out
}

// median of a non-empty slice; does not modify the input.
func median(values []float64) float64 {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}

	return sorted[mid]
}

// sampleStddev returns the sample standard deviation, zero for fewer than
// two observations.
func sampleStddev(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}

	var sum float64
	for _, v := range values {
		sum += v
	}
	mean := sum / float64(len(values))

	var sq float64
	for _, v := range values {
		d := v - mean
		sq += d * d
	}

	return math.Sqrt(sq / float64(len(values)-1))
}

// Summary is a plain before/after view of the composition change between two
// scans, with the empirical ratio graded for display.
type Summary struct {
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
	Days      float64   `json:"days"`

	StartWeightKg float64 `json:"startWeightKg"`
	EndWeightKg   float64 `json:"endWeightKg"`

	WeightChangeKg float64 `json:"weightChangeKg"`
	FatChangeKg    float64 `json:"fatChangeKg"`
	LeanChangeKg   float64 `json:"leanChangeKg"`

	StartBodyFatPercent float64 `json:"startBodyFatPercent"`
	EndBodyFatPercent   float64 `json:"endBodyFatPercent"`

	// Ratio is the pair's empirical partition ratio, identical to the value
	// AnalyzePair computes for the same ordered pair.
	Ratio       float64        `json:"ratio"`
	Quality     pratio.Quality `json:"quality"`
	Description string         `json:"description"`
}

// ChangeSummary computes the before/after summary for an ordered scan pair.
func ChangeSummary(start, end domain.ScanRecord) Summary {
	a := AnalyzePair(start, end)

	return Summary{
		StartDate:           start.Date,
		EndDate:             end.Date,
		Days:                a.Days,
		StartWeightKg:       start.TotalMassKg,
		EndWeightKg:         end.TotalMassKg,
		WeightChangeKg:      a.WeightChangeKg,
		FatChangeKg:         a.FatChangeKg,
		LeanChangeKg:        a.LeanChangeKg,
		StartBodyFatPercent: start.BodyFatPercent(),
		EndBodyFatPercent:   end.BodyFatPercent(),
		Ratio:               a.Ratio,
		Quality:             pratio.Classify(a.Ratio),
		Description:         pratio.Describe(a.Ratio),
	}
}

// Comparison reports how a prior prediction held up against a later scan.
// Errors are signed actual-minus-predicted against the expected scenario.
type Comparison struct {
	// Ratio is the empirical partition ratio realized between the start scan
	// and the actual scan.
	Ratio float64 `json:"ratio"`

	FatMassErrorKg      float64 `json:"fatMassErrorKg"`
	LeanMassErrorKg     float64 `json:"leanMassErrorKg"`
	BodyFatPercentError float64 `json:"bodyFatPercentError"`

	// WithinBand reports whether the actual body-fat percent landed inside
	// the prediction's optimistic/pessimistic band, bounds inclusive.
	WithinBand bool `json:"withinBand"`
}

// CompareToActual scores a prediction against the scan that eventually
// materialized. The start scan must be the one the prediction was made from.
func CompareToActual(prediction domain.Prediction, actual, start domain.ScanRecord) Comparison {
	pair := AnalyzePair(start, actual)

	actualBF := actual.BodyFatPercent()
	low := math.Min(prediction.BodyFatPercent.Optimistic, prediction.BodyFatPercent.Pessimistic)
	high := math.Max(prediction.BodyFatPercent.Optimistic, prediction.BodyFatPercent.Pessimistic)

	return Comparison{
		Ratio:               pair.Ratio,
		FatMassErrorKg:      actual.FatMassKg - prediction.FatMassKg.Expected,
		LeanMassErrorKg:     actual.LeanMassKg - prediction.LeanMassKg.Expected,
		BodyFatPercentError: actualBF - prediction.BodyFatPercent.Expected,
		WithinBand:          actualBF >= low && actualBF <= high,
	}
}

// String implements fmt.Stringer for log lines and the offline CLI.
func (s Summary) String() string {
	return fmt.Sprintf("%.1fkg -> %.1fkg over %.0f days (fat %+.1fkg, lean %+.1fkg, ratio %.2f)",
		s.StartWeightKg, s.EndWeightKg, s.Days, s.FatChangeKg, s.LeanChangeKg, s.Ratio)
}
