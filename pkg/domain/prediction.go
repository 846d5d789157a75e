package domain

// Scenario is the three-point representation of prediction uncertainty used
// for every projected metric.
type Scenario struct {
	Optimistic  float64 `json:"optimistic"`
	Expected    float64 `json:"expected"`
	Pessimistic float64 `json:"pessimistic"`
}

// PredictionAssumptions records the input values a prediction was computed
// from, so callers can show (and later audit) what the forecast assumed.
type PredictionAssumptions struct {
	DeficitKcal   float64 `json:"deficitKcal"`
	ProteinGPerKg float64 `json:"proteinGPerKg"`
	WeeklySets    float64 `json:"weeklySets"`
	// Ratio is the partition ratio actually applied to the expected scenario,
	// either the learned personal ratio or the factor-model estimate.
	Ratio float64 `json:"ratio"`
}

// Prediction projects fat mass, lean mass and body-fat percentage at a target
// weight, each as an optimistic/expected/pessimistic triple.
type Prediction struct {
	// TargetWeightKg is the weight the projection is keyed to.
	TargetWeightKg float64 `json:"targetWeightKg"`

	FatMassKg      Scenario `json:"fatMassKg"`
	LeanMassKg     Scenario `json:"leanMassKg"`
	BodyFatPercent Scenario `json:"bodyFatPercent"`

	// Confidence grades the forecast; it never exceeds reasonable.
	Confidence PredictionConfidence `json:"confidence"`
	// Explanations are human-readable statements of why the confidence is
	// what it is, starting with an uncertainty disclaimer.
	Explanations []string `json:"explanations"`
	// Assumptions are the inputs the forecast was computed from.
	Assumptions PredictionAssumptions `json:"assumptions"`
}
