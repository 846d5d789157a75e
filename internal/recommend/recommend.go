// Package recommend turns a partition-ratio factor breakdown into prioritized
// coaching suggestions. It reads only the factors and the inputs that
// produced them; it never re-runs the model and has no I/O.
package recommend

import (
	"fmt"
	"sort"

	"bodycomp/internal/pratio"
	"bodycomp/pkg/domain"
)

// Category groups a suggestion by the behavior it targets.
type Category string

const (
	CategoryProtein  Category = "protein"
	CategoryTraining Category = "training"
	CategoryDeficit  Category = "deficit"
	CategoryGeneral  Category = "general"
)

// Priority orders suggestions for display; high sorts first.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Optimal factor values: the top tier of each behavioral step function. A
// factor at or above its optimal produces no suggestion for that category.
const (
	OptimalProteinFactor  = 1.08
	OptimalTrainingFactor = 1.06
	OptimalDeficitFactor  = 1.04
)

// Thresholds separating high- from medium-priority gaps per category.
const (
	proteinHighBelow    = 1.00
	proteinMediumBelow  = 1.04
	trainingHighBelow   = 0.96
	trainingMediumBelow = 1.02
	deficitHighBelow    = 0.95
	deficitMediumBelow  = 1.00
)

// Suggestion is one actionable coaching line.
type Suggestion struct {
	Category Category `json:"category"`
	Priority Priority `json:"priority"`
	Message  string   `json:"message"`
}

// FromFactors derives suggestions from a factor breakdown and the inputs that
// produced it. The result is sorted high to low priority with ties kept in
// category order protein, training, deficit, general; the same inputs always
// yield the same list.
func FromFactors(factors domain.PartitionRatioFactors, inputs domain.PartitionRatioInputs) []Suggestion {
	var out []Suggestion

	if s, ok := proteinSuggestion(factors, inputs); ok {
		out = append(out, s)
	}
	if s, ok := trainingSuggestion(factors, inputs); ok {
		out = append(out, s)
	}
	if s, ok := deficitSuggestion(factors, inputs); ok {
		out = append(out, s)
	}
	out = append(out, generalSuggestions(factors)...)

	sort.SliceStable(out, func(i, j int) bool {
		return priorityRank(out[i].Priority) < priorityRank(out[j].Priority)
	})

	return out
}

func proteinSuggestion(factors domain.PartitionRatioFactors, inputs domain.PartitionRatioInputs) (Suggestion, bool) {
	switch {
	case factors.Protein < proteinHighBelow:
		return Suggestion{
			Category: CategoryProtein,
			Priority: PriorityHigh,
			Message: fmt.Sprintf(
				"Protein is at %.1f g/kg; raise it to at least 1.8 g/kg to protect lean mass in a deficit.",
				inputs.ProteinGPerKg),
		}, true
	case factors.Protein < proteinMediumBelow:
		return Suggestion{
			Category: CategoryProtein,
			Priority: PriorityMedium,
			Message: fmt.Sprintf(
				"Protein is at %.1f g/kg; moving toward 2.2 g/kg improves the fat share of weight change.",
				inputs.ProteinGPerKg),
		}, true
	case factors.Protein < OptimalProteinFactor:
		return Suggestion{
			Category: CategoryProtein,
			Priority: PriorityLow,
			Message:  "Protein is solid; 2.2 g/kg or more squeezes out the last bit of lean-mass protection.",
		}, true
	}

	return Suggestion{}, false
}

func trainingSuggestion(factors domain.PartitionRatioFactors, inputs domain.PartitionRatioInputs) (Suggestion, bool) {
	switch {
	case factors.Training < trainingHighBelow:
		return Suggestion{
			Category: CategoryTraining,
			Priority: PriorityHigh,
			Message: fmt.Sprintf(
				"Only %.0f weekly working sets; without a resistance-training stimulus most of any loss comes from lean mass.",
				inputs.WeeklySets),
		}, true
	case factors.Training < trainingMediumBelow:
		return Suggestion{
			Category: CategoryTraining,
			Priority: PriorityMedium,
			Message: fmt.Sprintf(
				"%.0f weekly sets maintains muscle; 10 or more per week noticeably improves partitioning.",
				inputs.WeeklySets),
		}, true
	case factors.Training < OptimalTrainingFactor:
		return Suggestion{
			Category: CategoryTraining,
			Priority: PriorityLow,
			Message:  "Training volume is good; 15+ weekly sets is where partitioning peaks.",
		}, true
	}

	return Suggestion{}, false
}

func deficitSuggestion(factors domain.PartitionRatioFactors, inputs domain.PartitionRatioInputs) (Suggestion, bool) {
	switch {
	case factors.Deficit < deficitHighBelow:
		return Suggestion{
			Category: CategoryDeficit,
			Priority: PriorityHigh,
			Message: fmt.Sprintf(
				"A %.0f%% deficit is aggressive; shrinking it below 20%% keeps more of the loss coming from fat.",
				inputs.DeficitPercent),
		}, true
	case factors.Deficit < deficitMediumBelow:
		return Suggestion{
			Category: CategoryDeficit,
			Priority: PriorityMedium,
			Message: fmt.Sprintf(
				"A %.0f%% deficit trades some lean mass for speed; 15%% or less is gentler on muscle.",
				inputs.DeficitPercent),
		}, true
	case factors.Deficit < OptimalDeficitFactor:
		return Suggestion{
			Category: CategoryDeficit,
			Priority: PriorityLow,
			Message:  "Deficit size is moderate; easing it to 15% or less slightly favors fat loss.",
		}, true
	}

	return Suggestion{}, false
}

// generalSuggestions covers what the user cannot directly change plus the
// all-clear line when nothing else fired.
func generalSuggestions(factors domain.PartitionRatioFactors) []Suggestion {
	var out []Suggestion

	if pratio.Classify(factors.Final) == pratio.QualityPoor {
		out = append(out, Suggestion{
			Category: CategoryGeneral,
			Priority: PriorityHigh,
			Message:  "The current combination strongly favors lean-mass loss; fix protein, training and deficit size before pushing further.",
		})
	}

	if factors.BodyFat < 0.9 {
		out = append(out, Suggestion{
			Category: CategoryGeneral,
			Priority: PriorityLow,
			Message:  "At this leanness some lean-mass loss is expected regardless of behavior; judge progress over longer windows.",
		})
	}

	if len(out) == 0 &&
		factors.Protein >= OptimalProteinFactor &&
		factors.Training >= OptimalTrainingFactor &&
		factors.Deficit >= OptimalDeficitFactor {
		out = append(out, Suggestion{
			Category: CategoryGeneral,
			Priority: PriorityLow,
			Message:  "Inputs are already near optimal; keep conditions consistent and let the scans accumulate.",
		})
	}

	return out
}

func priorityRank(p Priority) int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	default:
		return 2
	}
}
