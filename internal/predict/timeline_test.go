package predict_test

import (
	"math"
	"testing"
	"time"

	"bodycomp/internal/predict"
)

func TestTimeToTarget(t *testing.T) {
	// 5 kg at 550 kcal/day: 5*7700/550 = 70 days = 10 weeks exactly.
	tl, ok := predict.TimeToTarget(90, 85, 550)
	if !ok {
		t.Fatal("expected an estimate")
	}
	if tl.Weeks != 10 || tl.Days != 0 {
		t.Errorf("timeline = %dw%dd, want 10w0d", tl.Weeks, tl.Days)
	}

	// 3 kg at 500 kcal/day: ceil(46.2) = 47 days = 6 weeks 5 days.
	tl, ok = predict.TimeToTarget(90, 87, 500)
	if !ok {
		t.Fatal("expected an estimate")
	}
	if tl.Weeks != 6 || tl.Days != 5 {
		t.Errorf("timeline = %dw%dd, want 6w5d", tl.Weeks, tl.Days)
	}
	if tl.TotalDays() != 47 {
		t.Errorf("total days = %d, want 47", tl.TotalDays())
	}

	// Gaining weight uses the gap magnitude the same way.
	gain, ok := predict.TimeToTarget(85, 90, 550)
	if !ok || gain.TotalDays() != 70 {
		t.Errorf("gain timeline = %+v ok=%v, want 70 days", gain, ok)
	}

	if _, ok := predict.TimeToTarget(90, 85, 0); ok {
		t.Error("zero gap should yield no estimate")
	}
	if _, ok := predict.TimeToTarget(90, 90, 500); ok {
		t.Error("target already met should yield no estimate")
	}
}

func TestRequiredDailyDeficit(t *testing.T) {
	// Inverse of the 70-day scenario above.
	kcal, ok := predict.RequiredDailyDeficit(90, 85, 10)
	if !ok {
		t.Fatal("expected an estimate")
	}
	if math.Abs(kcal-550) > 1e-9 {
		t.Errorf("required deficit = %v, want 550", kcal)
	}

	if _, ok := predict.RequiredDailyDeficit(90, 85, 0); ok {
		t.Error("zero weeks should yield no estimate")
	}
}

func TestTargetDate(t *testing.T) {
	from := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	got, ok := predict.TargetDate(from, 90, 85, 550)
	if !ok {
		t.Fatal("expected a date")
	}
	if want := from.AddDate(0, 0, 70); !got.Equal(want) {
		t.Errorf("target date = %v, want %v", got, want)
	}

	if _, ok := predict.TargetDate(from, 90, 85, 0); ok {
		t.Error("zero gap should yield no date")
	}
}
