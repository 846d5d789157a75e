package intake

import (
	"time"

	"bodycomp/internal/predict"
	"bodycomp/pkg/domain"
)

// ScanSubmission is a new measurement as reported by the caller. Masses are
// in kilograms; the service derives the per-scan confidence label from the
// conditions, callers never set it directly.
type ScanSubmission struct {
	Date          time.Time             `json:"date"`
	TotalMassKg   float64               `json:"totalMassKg"`
	FatMassKg     float64               `json:"fatMassKg"`
	LeanMassKg    float64               `json:"leanMassKg"`
	BoneMineralKg float64               `json:"boneMineralKg"`
	Conditions    domain.ScanConditions `json:"conditions"`
}

// Behavior carries the pre-aggregated nutrition and training inputs of the
// factor model. Aggregation from raw logs happens upstream; the service only
// normalizes protein to bodyweight using the latest scan.
type Behavior struct {
	// ProteinGrams is the recent average daily protein intake.
	ProteinGrams float64 `json:"proteinGrams"`
	// WeeklySets is the recent average weekly count of hard training sets.
	WeeklySets float64 `json:"weeklySets"`
	// DeficitKcal is the recent average daily energy deficit.
	DeficitKcal float64 `json:"deficitKcal"`
	// DeficitPercent is the deficit as a percentage of maintenance.
	DeficitPercent float64 `json:"deficitPercent"`

	Sex         domain.Sex         `json:"sex"`
	TrainingAge domain.TrainingAge `json:"trainingAge"`
	Enhanced    bool               `json:"enhanced"`
}

// PredictionRequest asks for a composition projection at a target weight.
type PredictionRequest struct {
	TargetWeightKg float64  `json:"targetWeightKg"`
	Behavior       Behavior `json:"behavior"`
}

// PredictionReport is a projection together with the factor breakdown it was
// computed from and the per-scenario composition changes.
type PredictionReport struct {
	Prediction domain.Prediction            `json:"prediction"`
	Factors    domain.PartitionRatioFactors `json:"factors"`
	Breakdown  []predict.ScenarioChange     `json:"breakdown"`
}

// TimelineRequest asks either how long a target takes at a given deficit
// (DeadlineWeeks zero) or which deficit meets a deadline (DeadlineWeeks set).
type TimelineRequest struct {
	TargetWeightKg   float64 `json:"targetWeightKg"`
	DailyDeficitKcal float64 `json:"dailyDeficitKcal"`
	DeadlineWeeks    int     `json:"deadlineWeeks"`
}

// TimelineReport answers a timeline request. Exactly one of the two shapes is
// populated: estimate+date for duration questions, the required deficit for
// deadline questions.
type TimelineReport struct {
	Estimate                 *predict.Timeline `json:"estimate,omitempty"`
	TargetDate               *time.Time        `json:"targetDate,omitempty"`
	RequiredDailyDeficitKcal *float64          `json:"requiredDailyDeficitKcal,omitempty"`
}

// CalibrationReport is the full calibration view for a user: the stored
// profile, a fresh calibration run over the current history with every pair
// analysis, and how many more scans each confidence level needs.
type CalibrationReport struct {
	Profile domain.Profile            `json:"profile"`
	Result  *domain.CalibrationResult `json:"result,omitempty"`

	ScansNeededForMedium int `json:"scansNeededForMedium"`
	ScansNeededForHigh   int `json:"scansNeededForHigh"`
}
