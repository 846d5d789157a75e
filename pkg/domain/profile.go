package domain

import "time"

// Profile is a user's body-composition calibration state: the scan history,
// the personal partition ratio learned from it, and how much that ratio is
// trusted. The engine never mutates a Profile in place; transformations
// return a new value and the owning application persists it.
type Profile struct {
	UserID UserID `json:"userId"`

	// Scans is the scan history ordered ascending by scan date.
	Scans []ScanRecord `json:"scans,omitempty"`

	// LearnedRatio is the personal partition ratio derived from scan pairs,
	// nil until a calibration run has succeeded.
	LearnedRatio *float64 `json:"learnedRatio,omitempty"`
	// Confidence grades LearnedRatio on the none/low/medium/high ladder.
	Confidence CalibrationConfidence `json:"confidence"`
	// DataPoints counts the valid scan pairs behind LearnedRatio.
	DataPoints int `json:"dataPoints"`

	// ProteinModifier, TrainingModifier and DeficitModifier are reserved for
	// future per-user tuning of the factor model. They default to 1.0 and are
	// passed through unchanged.
	ProteinModifier  float64 `json:"proteinModifier"`
	TrainingModifier float64 `json:"trainingModifier"`
	DeficitModifier  float64 `json:"deficitModifier"`

	// UpdatedAt is when the profile last changed.
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewProfile returns an empty profile for the given user with neutral
// modifiers and no calibration state.
func NewProfile(userID UserID) Profile {
	return Profile{
		UserID:           userID,
		Confidence:       CalibrationNone,
		ProteinModifier:  1.0,
		TrainingModifier: 1.0,
		DeficitModifier:  1.0,
	}
}

// ScanPairAnalysis is the derived view of one consecutive scan pair: the
// composition deltas, the elapsed time, the empirical partition ratio and
// whether the pair is usable for calibration. Invalid pairs carry a
// human-readable reason so exclusions are auditable.
type ScanPairAnalysis struct {
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
	// Days is the elapsed time between the two scans in days.
	Days float64 `json:"days"`

	WeightChangeKg float64 `json:"weightChangeKg"`
	FatChangeKg    float64 `json:"fatChangeKg"`
	LeanChangeKg   float64 `json:"leanChangeKg"`

	// Ratio is the empirical partition ratio fat change / weight change,
	// zero when the weight change is too small to divide by meaningfully.
	Ratio float64 `json:"ratio"`

	Valid bool `json:"valid"`
	// Reason explains why the pair was rejected; empty for valid pairs.
	Reason string `json:"reason,omitempty"`
}

// CalibrationResult is the outcome of a calibration run over a scan history.
type CalibrationResult struct {
	// Ratio is the learned partition ratio, the median of the valid pairs'
	// empirical ratios.
	Ratio float64 `json:"ratio"`
	// Confidence grades Ratio from the valid-pair count and spread.
	Confidence CalibrationConfidence `json:"confidence"`
	// ValidPairs counts the pairs that contributed to Ratio.
	ValidPairs int `json:"validPairs"`
	// Pairs lists every consecutive pair, valid and invalid, for transparency.
	Pairs []ScanPairAnalysis `json:"pairs"`
}
