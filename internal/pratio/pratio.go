// Package pratio implements the partition-ratio factor model: a pure mapping
// from behavioral and physiological inputs to a partition ratio with a
// symmetric uncertainty band. The partition ratio is the fraction of a body
// weight change attributable to fat mass; the remainder is lean mass.
//
// The model starts from a fixed base ratio and multiplies it by independent
// step-function factors. Each step function is expressed as an ordered table
// of (threshold, factor) tiers evaluated top-down, so every tier is auditable
// and testable on its own.
package pratio

import "bodycomp/pkg/domain"

const (
	// BaseRatio is the population-level starting point: under a generic
	// moderate deficit with training, roughly 80% of weight change is fat.
	BaseRatio = 0.80

	// MinRatio and MaxRatio bound the model's output. Values outside this
	// range are not physiologically meaningful for the factor model and are
	// clamped, never reported raw. Note the calibration package accepts a
	// wider window for empirically observed ratios.
	MinRatio = 0.5
	MaxRatio = 1.0

	// baseUncertainty is the half-width of the confidence interval before
	// penalty multipliers.
	baseUncertainty = 0.12

	// Penalty multipliers compound; each one widens the interval.
	noHistoryPenalty = 1.3
	extremePenalty   = 1.2
	beginnerPenalty  = 1.15

	// Extreme-regime boundaries for the interval penalty.
	extremeBodyFatPercent = 12.0
	extremeDeficitPercent = 25.0
)

// tier is one row of a step-function table.
type tier struct {
	threshold float64
	factor    float64
}

// atLeast returns the factor of the first tier whose threshold the value
// meets or exceeds, or fallback when none match. Tables must be ordered by
// descending threshold.
func atLeast(tiers []tier, fallback, v float64) float64 {
	for _, t := range tiers {
		if v >= t.threshold {
			return t.factor
		}
	}

	return fallback
}

// atMost is the mirror of atLeast for tables where smaller values are more
// favorable. Tables must be ordered by ascending threshold.
func atMost(tiers []tier, fallback, v float64) float64 {
	for _, t := range tiers {
		if v <= t.threshold {
			return t.factor
		}
	}

	return fallback
}

// proteinTiers grades average daily protein intake in g/kg bodyweight.
var proteinTiers = []tier{
	{2.2, 1.08},
	{1.8, 1.04},
	{1.6, 1.00},
	{1.2, 0.95},
}

const proteinFallback = 0.88

// trainingTiers grades average weekly hard training sets.
var trainingTiers = []tier{
	{15, 1.06},
	{10, 1.02},
	{5, 0.96},
}

const trainingFallback = 0.88

// deficitTiers grades the average daily deficit as percent of maintenance;
// smaller deficits partition more favorably.
var deficitTiers = []tier{
	{15, 1.04},
	{20, 1.00},
	{25, 0.95},
	{30, 0.88},
}

const deficitFallback = 0.80

// Body-fat tiers are sex-specific. Higher body fat partitions more
// favorably; the leanest tiers are penalized hardest.
var (
	maleBodyFatTiers = []tier{
		{25, 1.08},
		{20, 1.02},
		{15, 0.95},
		{12, 0.85},
	}
	femaleBodyFatTiers = []tier{
		{35, 1.08},
		{28, 1.02},
		{22, 0.95},
		{18, 0.85},
	}
)

const bodyFatFallback = 0.72

// newbieGainsBodyFatPercent is the body-fat level above which a beginner is
// considered to be inside the "newbie gains" window.
const newbieGainsBodyFatPercent = 18.0

// ProteinFactor returns the protein step-function factor.
func ProteinFactor(gPerKg float64) float64 {
	return atLeast(proteinTiers, proteinFallback, gPerKg)
}

// TrainingFactor returns the training-volume step-function factor.
func TrainingFactor(weeklySets float64) float64 {
	return atLeast(trainingTiers, trainingFallback, weeklySets)
}

// DeficitFactor returns the deficit-size step-function factor. Values at or
// below zero (maintenance or surplus) land in the most favorable tier.
func DeficitFactor(deficitPercent float64) float64 {
	return atMost(deficitTiers, deficitFallback, deficitPercent)
}

// BodyFatFactor returns the sex-specific body-fat step-function factor.
func BodyFatFactor(bodyFatPercent float64, sex domain.Sex) float64 {
	bodyFatPercent = clamp(bodyFatPercent, 0, 100)
	if sex == domain.SexFemale {
		return atLeast(femaleBodyFatTiers, bodyFatFallback, bodyFatPercent)
	}

	return atLeast(maleBodyFatTiers, bodyFatFallback, bodyFatPercent)
}

// TrainingAgeFactor returns the lifting-experience factor. Beginners above
// the newbie-gains body-fat level retain muscle unusually well even in a
// deficit; advanced lifters partition slightly worse than the base model.
func TrainingAgeFactor(age domain.TrainingAge, bodyFatPercent float64) float64 {
	switch age {
	case domain.TrainingAgeBeginner:
		if bodyFatPercent > newbieGainsBodyFatPercent {
			return 1.10
		}

		return 1.05
	case domain.TrainingAgeAdvanced:
		return 0.98
	default:
		return 1.00
	}
}

// EnhancementFactor returns the enhancement factor.
func EnhancementFactor(enhanced bool) float64 {
	if enhanced {
		return 1.15
	}

	return 1.00
}

// Calculate runs the full factor model. It is deterministic, performs no
// I/O and never fails: out-of-domain numeric inputs saturate in their step
// tables rather than being rejected, because the model must always produce
// an answer to feed a UI.
func Calculate(inputs domain.PartitionRatioInputs) domain.PartitionRatioFactors {
	f := domain.PartitionRatioFactors{
		Base:        BaseRatio,
		Protein:     ProteinFactor(inputs.ProteinGPerKg),
		Training:    TrainingFactor(inputs.WeeklySets),
		Deficit:     DeficitFactor(inputs.DeficitPercent),
		BodyFat:     BodyFatFactor(inputs.BodyFatPercent, inputs.Sex),
		TrainingAge: TrainingAgeFactor(inputs.TrainingAge, inputs.BodyFatPercent),
		Enhancement: EnhancementFactor(inputs.Enhanced),
	}

	product := f.Base * f.Protein * f.Training * f.Deficit * f.BodyFat * f.TrainingAge * f.Enhancement
	f.Final = clamp(product, MinRatio, MaxRatio)

	u := uncertainty(inputs)
	f.Low = clamp(f.Final-u, MinRatio, MaxRatio)
	f.High = clamp(f.Final+u, MinRatio, MaxRatio)

	return f
}

// uncertainty computes the half-width of the confidence interval. Penalties
// compound: no personal calibration history, an extreme input regime and a
// beginner training age each multiply the base uncertainty independently.
func uncertainty(inputs domain.PartitionRatioInputs) float64 {
	u := baseUncertainty
	if len(inputs.RatioHistory) == 0 {
		u *= noHistoryPenalty
	}
	if inputs.BodyFatPercent < extremeBodyFatPercent || inputs.DeficitPercent > extremeDeficitPercent {
		u *= extremePenalty
	}
	if inputs.TrainingAge == domain.TrainingAgeBeginner {
		u *= beginnerPenalty
	}

	return u
}

func clamp(v, low, high float64) float64 {
	switch {
	case v < low:
		return low
	case v > high:
		return high
	default:
		return v
	}
}

// Quality classifies a partition ratio for display. Higher ratios mean more
// of a weight change comes from fat, which is the favorable direction when
// losing weight.
type Quality string

const (
	QualityExcellent Quality = "EXCELLENT"
	QualityGood      Quality = "GOOD"
	QualityFair      Quality = "FAIR"
	QualityPoor      Quality = "POOR"
)

// Classify maps a ratio to its quality band.
func Classify(ratio float64) Quality {
	switch {
	case ratio >= 0.85:
		return QualityExcellent
	case ratio >= 0.75:
		return QualityGood
	case ratio >= 0.65:
		return QualityFair
	default:
		return QualityPoor
	}
}

// Describe returns a human-readable description of a ratio's quality band,
// used by the calibration flow for display.
func Describe(ratio float64) string {
	switch Classify(ratio) {
	case QualityExcellent:
		return "excellent partitioning: almost all of the weight change comes from fat"
	case QualityGood:
		return "good partitioning: most of the weight change comes from fat"
	case QualityFair:
		return "fair partitioning: a meaningful share of the weight change is lean mass"
	default:
		return "poor partitioning: a large share of the weight change is lean mass"
	}
}
