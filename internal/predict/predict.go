// Package predict projects body composition at a target weight from a
// starting scan and a partition ratio. Every projection is expressed as an
// optimistic/expected/pessimistic triple derived from the ratio's confidence
// interval, with a discrete confidence label and the reasons behind it.
package predict

import (
	"fmt"
	"math"

	"bodycomp/pkg/domain"
)

// Thresholds of the prediction-confidence decision rule.
const (
	// nearTargetKg is the absolute weight change below which a projection is
	// considered a short, well-behaved extrapolation.
	nearTargetKg = 5.0

	reasonableSpread = 0.15
	moderateSpread   = 0.2

	// reasonableDataPoints is the number of valid calibration pairs required
	// before a projection can be graded reasonable.
	reasonableDataPoints = 2
)

// Factor levels below which the explanation list calls out an adverse input.
const (
	leanBodyFatFactor     = 0.9
	aggressiveDeficitFact = 0.92
	lowProteinFactor      = 0.96
	lowTrainingFactor     = 0.96
)

// disclaimer always leads the explanation list. Partitioning between fat and
// lean mass is noisy even under controlled conditions, and the projection
// must never read as a promise.
const disclaimer = "This projection is an estimate; fat/lean partitioning varies widely between individuals and scans."

// Predict projects fat mass, lean mass and body-fat percentage at the target
// weight. The expected scenario applies the profile's learned ratio when one
// exists with any confidence, otherwise the factor model's estimate; the
// optimistic and pessimistic scenarios apply the interval's high and low
// bounds (for weight loss, a higher ratio means more of the loss is fat).
func Predict(current domain.ScanRecord,
	targetWeightKg float64,
	inputs domain.PartitionRatioInputs,
	factors domain.PartitionRatioFactors,
	profile domain.Profile) domain.Prediction {
	delta := targetWeightKg - current.TotalMassKg

	ratio := factors.Final
	if profile.Confidence != domain.CalibrationNone && profile.LearnedRatio != nil {
		ratio = *profile.LearnedRatio
	}

	fatExp, leanExp, bfExp := project(current, targetWeightKg, delta, ratio)
	fatOpt, leanOpt, bfOpt := project(current, targetWeightKg, delta, factors.High)
	fatPes, leanPes, bfPes := project(current, targetWeightKg, delta, factors.Low)

	return domain.Prediction{
		TargetWeightKg: targetWeightKg,
		FatMassKg:      domain.Scenario{Optimistic: fatOpt, Expected: fatExp, Pessimistic: fatPes},
		LeanMassKg:     domain.Scenario{Optimistic: leanOpt, Expected: leanExp, Pessimistic: leanPes},
		BodyFatPercent: domain.Scenario{Optimistic: bfOpt, Expected: bfExp, Pessimistic: bfPes},
		Confidence:     confidence(profile, delta, factors.Spread()),
		Explanations:   explanations(profile, factors),
		Assumptions: domain.PredictionAssumptions{
			DeficitKcal:   inputs.DeficitKcal,
			ProteinGPerKg: inputs.ProteinGPerKg,
			WeeklySets:    inputs.WeeklySets,
			Ratio:         ratio,
		},
	}
}

// project applies one ratio to the weight change. The fat and lean changes
// always sum to the full weight change; no mass goes unaccounted for.
func project(current domain.ScanRecord, targetWeightKg, delta, ratio float64) (fat, lean, bodyFatPct float64) {
	fatChange := delta * ratio
	leanChange := delta * (1 - ratio)

	fat = current.FatMassKg + fatChange
	lean = current.LeanMassKg + leanChange
	if targetWeightKg != 0 {
		bodyFatPct = fat / targetWeightKg * 100
	}

	return fat, lean, bodyFatPct
}

// confidence grades the projection. The ceiling is reasonable: a short
// extrapolation backed by at least two valid calibration pairs and a tight
// interval. Any calibration data, or a short extrapolation with a moderately
// tight interval, earns moderate; everything else is low.
func confidence(profile domain.Profile, delta, spread float64) domain.PredictionConfidence {
	absDelta := math.Abs(delta)

	switch {
	case profile.DataPoints >= reasonableDataPoints && absDelta < nearTargetKg && spread < reasonableSpread:
		return domain.PredictionReasonable
	case profile.DataPoints > 0 || (absDelta < nearTargetKg && spread < moderateSpread):
		return domain.PredictionModerate
	default:
		return domain.PredictionLow
	}
}

// explanations builds the deterministic confidence-explanation list: the
// disclaimer, the calibration data volume, then one line per adverse factor.
func explanations(profile domain.Profile, factors domain.PartitionRatioFactors) []string {
	out := []string{disclaimer}

	switch profile.DataPoints {
	case 0:
		out = append(out, "No personal calibration data yet; the projection uses the population-level factor model.")
	case 1:
		out = append(out, "Calibrated against 1 valid scan pair; the personal ratio is still a rough estimate.")
	default:
		out = append(out, fmt.Sprintf("Calibrated against %d valid scan pairs.", profile.DataPoints))
	}

	if factors.BodyFat < leanBodyFatFactor {
		out = append(out, "Already lean: partitioning worsens as body fat drops.")
	}
	if factors.Deficit < aggressiveDeficitFact {
		out = append(out, "Aggressive deficit: larger deficits shift more of the loss to lean mass.")
	}
	if factors.Protein < lowProteinFactor {
		out = append(out, "Protein intake is below the range that protects lean mass.")
	}
	if factors.Training < lowTrainingFactor {
		out = append(out, "Training volume is below the range that protects lean mass.")
	}

	return out
}

// ScenarioChange is the per-scenario composition change relative to the
// starting scan.
type ScenarioChange struct {
	Name         string  `json:"name"`
	FatChangeKg  float64 `json:"fatChangeKg"`
	LeanChangeKg float64 `json:"leanChangeKg"`
}

// Breakdown returns the fat-vs-lean change under each scenario of a
// prediction relative to the starting scan.
func Breakdown(current domain.ScanRecord, p domain.Prediction) []ScenarioChange {
	return []ScenarioChange{
		{
			Name:         "optimistic",
			FatChangeKg:  p.FatMassKg.Optimistic - current.FatMassKg,
			LeanChangeKg: p.LeanMassKg.Optimistic - current.LeanMassKg,
		},
		{
			Name:         "expected",
			FatChangeKg:  p.FatMassKg.Expected - current.FatMassKg,
			LeanChangeKg: p.LeanMassKg.Expected - current.LeanMassKg,
		},
		{
			Name:         "pessimistic",
			FatChangeKg:  p.FatMassKg.Pessimistic - current.FatMassKg,
			LeanChangeKg: p.LeanMassKg.Pessimistic - current.LeanMassKg,
		},
	}
}

// DefaultSweepDeltasKg is the default grid of weight changes for a scenario
// sweep, spanning aggressive loss through a modest gain.
var DefaultSweepDeltasKg = []float64{-10, -7.5, -5, -2.5, 2.5, 5} //nolint: gochecknoglobals

// Sweep produces one prediction per weight delta relative to the current
// scan. A nil delta slice uses DefaultSweepDeltasKg.
func Sweep(current domain.ScanRecord,
	inputs domain.PartitionRatioInputs,
	factors domain.PartitionRatioFactors,
	profile domain.Profile,
	deltasKg []float64) []domain.Prediction {
	if deltasKg == nil {
		deltasKg = DefaultSweepDeltasKg
	}

	out := make([]domain.Prediction, 0, len(deltasKg))
	for _, d := range deltasKg {
		out = append(out, Predict(current, current.TotalMassKg+d, inputs, factors, profile))
	}

	return out
}
