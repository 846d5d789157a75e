package predict

import (
	"math"
	"time"
)

// KcalPerKg is the energy content assumed per kilogram of body mass change.
const KcalPerKg = 7700.0

const daysPerWeek = 7

// Timeline is a duration estimate expressed as whole weeks plus remainder
// days.
type Timeline struct {
	Weeks int `json:"weeks"`
	Days  int `json:"days"`
}

// TotalDays returns the estimate as a flat day count.
func (t Timeline) TotalDays() int { return t.Weeks*daysPerWeek + t.Days }

// TimeToTarget estimates how long reaching targetWeightKg takes at the given
// sustained daily energy gap. The gap's magnitude is what matters: losing or
// gaining a kilogram is assumed to cost the same 7700 kcal. Returns false
// when the gap is zero or the target is already met.
func TimeToTarget(currentWeightKg, targetWeightKg, dailyKcal float64) (Timeline, bool) {
	deltaKg := math.Abs(targetWeightKg - currentWeightKg)
	gap := math.Abs(dailyKcal)
	if deltaKg == 0 || gap == 0 {
		return Timeline{}, false
	}

	totalDays := int(math.Ceil(deltaKg * KcalPerKg / gap))

	return Timeline{
		Weeks: totalDays / daysPerWeek,
		Days:  totalDays % daysPerWeek,
	}, true
}

// RequiredDailyDeficit is the inverse estimate: the sustained daily energy
// gap needed to reach targetWeightKg within the given number of weeks.
// Returns false when weeks is not positive.
func RequiredDailyDeficit(currentWeightKg, targetWeightKg float64, weeks int) (float64, bool) {
	if weeks <= 0 {
		return 0, false
	}

	deltaKg := math.Abs(targetWeightKg - currentWeightKg)

	return deltaKg * KcalPerKg / float64(weeks*daysPerWeek), true
}

// TargetDate projects the calendar date at which the target weight is
// reached, counting from the given reference time.
func TargetDate(from time.Time, currentWeightKg, targetWeightKg, dailyKcal float64) (time.Time, bool) {
	tl, ok := TimeToTarget(currentWeightKg, targetWeightKg, dailyKcal)
	if !ok {
		return time.Time{}, false
	}

	return from.AddDate(0, 0, tl.TotalDays()), true
}
