package domain

// Sex selects the sex-specific body-fat thresholds of the factor model.
// It has no other role in the engine.
type Sex string

const (
	SexMale   Sex = "MALE"
	SexFemale Sex = "FEMALE"
)

// TrainingAge categorizes lifting experience.
type TrainingAge string

const (
	TrainingAgeBeginner     TrainingAge = "BEGINNER"
	TrainingAgeIntermediate TrainingAge = "INTERMEDIATE"
	TrainingAgeAdvanced     TrainingAge = "ADVANCED"
)

// PartitionRatioInputs carries the behavioral and physiological inputs of the
// partition-ratio factor model. The nutrition and training values are rolling
// averages computed upstream over a recent window (typically 7-14 days); the
// engine treats them as given.
type PartitionRatioInputs struct {
	// ProteinGrams is the recent average daily protein intake in grams.
	ProteinGrams float64 `json:"proteinGrams"`
	// ProteinGPerKg is the same intake relative to bodyweight.
	ProteinGPerKg float64 `json:"proteinGPerKg"`
	// WeeklySets is the recent average weekly count of hard training sets.
	WeeklySets float64 `json:"weeklySets"`
	// DeficitKcal is the recent average daily energy deficit in kcal.
	// Positive means a deficit; negative values describe a surplus.
	DeficitKcal float64 `json:"deficitKcal"`
	// DeficitPercent is the deficit as a percentage of maintenance.
	DeficitPercent float64 `json:"deficitPercent"`
	// BodyFatPercent is the current body-fat percentage.
	BodyFatPercent float64 `json:"bodyFatPercent"`
	// LeanMassKg is the current lean mass.
	LeanMassKg float64 `json:"leanMassKg"`
	// Sex selects the body-fat threshold table.
	Sex Sex `json:"sex"`
	// TrainingAge is the lifting-experience category.
	TrainingAge TrainingAge `json:"trainingAge"`
	// Enhanced flags pharmacological enhancement.
	Enhanced bool `json:"enhanced"`
	// RatioHistory holds previously observed personal partition ratios. Its
	// presence narrows the uncertainty band; it never shifts the point estimate.
	RatioHistory []float64 `json:"ratioHistory,omitempty"`
}

// PartitionRatioFactors is the output of the factor model: the base constant,
// the named multiplicative factors, the combined clamped ratio and a
// symmetric confidence interval around it.
type PartitionRatioFactors struct {
	// Base is the model's base ratio constant.
	Base float64 `json:"base"`

	// Protein is the protein-intake factor.
	Protein float64 `json:"protein"`
	// Training is the training-volume factor.
	Training float64 `json:"training"`
	// Deficit is the deficit-size factor.
	Deficit float64 `json:"deficit"`
	// BodyFat is the sex-specific body-fat factor.
	BodyFat float64 `json:"bodyFat"`
	// TrainingAge is the lifting-experience factor.
	TrainingAge float64 `json:"trainingAge"`
	// Enhancement is the enhancement factor.
	Enhancement float64 `json:"enhancement"`

	// Final is the product of the base and all factors, clamped to the
	// model's valid ratio range.
	Final float64 `json:"final"`
	// Low and High bound the symmetric confidence interval around Final,
	// clamped to the same range.
	Low  float64 `json:"low"`
	High float64 `json:"high"`
}

// Spread returns the width of the confidence interval.
func (f PartitionRatioFactors) Spread() float64 { return f.High - f.Low }
