package calibrate_test

import (
	"math"
	"testing"
	"time"

	"bodycomp/internal/calibrate"
	"bodycomp/pkg/domain"
)

const eps = 1e-9

var baseDate = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func scan(daysFromStart int, total, fat, lean float64) domain.ScanRecord {
	return domain.ScanRecord{
		Date:          baseDate.AddDate(0, 0, daysFromStart),
		TotalMassKg:   total,
		FatMassKg:     fat,
		LeanMassKg:    lean,
		BoneMineralKg: total - fat - lean,
	}
}

func TestAnalyzePair(t *testing.T) {
	start := scan(0, 90, 27, 60)
	end := scan(30, 85, 23, 59.5)

	a := calibrate.AnalyzePair(start, end)

	if !a.Valid {
		t.Fatalf("pair should be valid, got reason %q", a.Reason)
	}
	if math.Abs(a.Days-30) > eps {
		t.Errorf("days = %v, want 30", a.Days)
	}
	if math.Abs(a.WeightChangeKg+5) > eps {
		t.Errorf("weight change = %v, want -5", a.WeightChangeKg)
	}
	if math.Abs(a.FatChangeKg+4) > eps {
		t.Errorf("fat change = %v, want -4", a.FatChangeKg)
	}
	if math.Abs(a.LeanChangeKg+0.5) > eps {
		t.Errorf("lean change = %v, want -0.5", a.LeanChangeKg)
	}
	if math.Abs(a.Ratio-0.8) > eps {
		t.Errorf("ratio = %v, want 0.8", a.Ratio)
	}
}

func TestAnalyzePair_Rejections(t *testing.T) {
	cases := []struct {
		name       string
		start, end domain.ScanRecord
		reason     string
	}{
		{
			"weight change below noise floor",
			scan(0, 90, 27, 60),
			scan(30, 90.5, 27.2, 60.3),
			calibrate.ReasonChangeTooSmall,
		},
		{
			"scans too close together",
			scan(0, 90, 27, 60),
			scan(10, 85, 23, 59.5),
			calibrate.ReasonTooCloseInTime,
		},
		{
			"ratio above the empirical ceiling",
			scan(0, 90, 27, 60),
			scan(30, 87, 23, 61),
			calibrate.ReasonOutsideExpected,
		},
		{
			"ratio below the empirical floor",
			scan(0, 90, 27, 60),
			scan(30, 85, 26.5, 55.5),
			calibrate.ReasonOutsideExpected,
		},
	}
	for _, tc := range cases {
		a := calibrate.AnalyzePair(tc.start, tc.end)
		if a.Valid {
			t.Errorf("%s: pair should be invalid", tc.name)
		}
		if a.Reason != tc.reason {
			t.Errorf("%s: reason = %q, want %q", tc.name, a.Reason, tc.reason)
		}
	}
}

func TestAnalyzePair_RecompositionIsValid(t *testing.T) {
	// Losing fat while gaining lean pushes the ratio above 1; up to 1.1 that
	// is accepted as genuine recomposition.
	a := calibrate.AnalyzePair(scan(0, 90, 27, 60), scan(30, 88, 24.8, 60.2))
	if !a.Valid {
		t.Fatalf("recomposition pair should be valid, got reason %q", a.Reason)
	}
	if a.Ratio <= 1 {
		t.Errorf("ratio = %v, want > 1", a.Ratio)
	}
}

// fourScans yields three valid pairs with empirical ratios 0.75, 0.82, 0.90.
func fourScans() []domain.ScanRecord {
	return []domain.ScanRecord{
		scan(0, 90, 27, 60),
		scan(30, 86, 24, 59),     // -4kg, fat -3.0 => 0.75
		scan(60, 81, 19.9, 58.1), // -5kg, fat -4.1 => 0.82
		scan(90, 79, 18.1, 57.9), // -2kg, fat -1.8 => 0.90
	}
}

func TestCalibrate_MedianAndConfidence(t *testing.T) {
	res := calibrate.Calibrate(fourScans())
	if res == nil {
		t.Fatal("expected a calibration result")
	}

	if math.Abs(res.Ratio-0.82) > eps {
		t.Errorf("learned ratio = %v, want median 0.82", res.Ratio)
	}
	if res.ValidPairs != 3 {
		t.Errorf("valid pairs = %d, want 3", res.ValidPairs)
	}
	// Three pairs with stddev ~0.075: tight enough for medium, too few for
	// high.
	if res.Confidence != domain.CalibrationMedium {
		t.Errorf("confidence = %s, want medium", res.Confidence)
	}
	if len(res.Pairs) != 3 {
		t.Errorf("pair analyses = %d, want 3", len(res.Pairs))
	}
}

func TestCalibrate_OrderIndependent(t *testing.T) {
	scans := fourScans()
	shuffled := []domain.ScanRecord{scans[2], scans[0], scans[3], scans[1]}

	a := calibrate.Calibrate(scans)
	b := calibrate.Calibrate(shuffled)
	if a == nil || b == nil {
		t.Fatal("expected calibration results")
	}
	if a.Ratio != b.Ratio || a.Confidence != b.Confidence || a.ValidPairs != b.ValidPairs {
		t.Errorf("shuffled input changed the result: %+v vs %+v", a, b)
	}
}

func TestCalibrate_InsufficientData(t *testing.T) {
	if res := calibrate.Calibrate(nil); res != nil {
		t.Errorf("no scans: result = %+v, want nil", res)
	}
	if res := calibrate.Calibrate([]domain.ScanRecord{scan(0, 90, 27, 60)}); res != nil {
		t.Errorf("one scan: result = %+v, want nil", res)
	}

	// Two scans whose only pair fails validation.
	res := calibrate.Calibrate([]domain.ScanRecord{
		scan(0, 90, 27, 60),
		scan(30, 90.5, 27.2, 60.3),
	})
	if res != nil {
		t.Errorf("no valid pairs: result = %+v, want nil", res)
	}
}

func TestCalibrate_HighConfidence(t *testing.T) {
	// Four valid pairs with tightly clustered ratios 0.80..0.83.
	scans := []domain.ScanRecord{
		scan(0, 90, 27, 60),
		scan(30, 85, 23, 59),
		scan(60, 80, 18.95, 58.05),
		scan(90, 75, 14.85, 57.15),
		scan(120, 70, 10.70, 56.30),
	}

	res := calibrate.Calibrate(scans)
	if res == nil {
		t.Fatal("expected a calibration result")
	}
	if res.Confidence != domain.CalibrationHigh {
		t.Errorf("confidence = %s, want high", res.Confidence)
	}
	if res.ValidPairs != 4 {
		t.Errorf("valid pairs = %d, want 4", res.ValidPairs)
	}
	if math.Abs(res.Ratio-0.815) > 1e-6 {
		t.Errorf("learned ratio = %v, want 0.815", res.Ratio)
	}
}

func TestProcessNewScan(t *testing.T) {
	profile := domain.NewProfile(domain.UserID{})
	profile.Scans = []domain.ScanRecord{scan(0, 90, 27, 60)}

	updated := calibrate.ProcessNewScan(profile, scan(30, 85, 23, 59.5))

	if len(updated.Scans) != 2 {
		t.Fatalf("scan count = %d, want 2", len(updated.Scans))
	}
	if updated.LearnedRatio == nil {
		t.Fatal("learned ratio should be set after a valid pair")
	}
	if math.Abs(*updated.LearnedRatio-0.8) > eps {
		t.Errorf("learned ratio = %v, want 0.8", *updated.LearnedRatio)
	}
	if updated.Confidence != domain.CalibrationLow {
		t.Errorf("confidence = %s, want low for a single pair", updated.Confidence)
	}
	if updated.DataPoints != 1 {
		t.Errorf("data points = %d, want 1", updated.DataPoints)
	}
	if updated.UpdatedAt.IsZero() {
		t.Error("updated timestamp should be set")
	}

	// The input profile is left untouched.
	if len(profile.Scans) != 1 || profile.LearnedRatio != nil {
		t.Error("input profile was mutated")
	}
}

func TestProcessNewScan_KeepsLearnedOnFailure(t *testing.T) {
	ratio := 0.8
	profile := domain.NewProfile(domain.UserID{})
	profile.Scans = nil
	profile.LearnedRatio = &ratio
	profile.Confidence = domain.CalibrationLow
	profile.DataPoints = 1

	// A single scan cannot calibrate; the learned state must survive.
	updated := calibrate.ProcessNewScan(profile, scan(0, 90, 27, 60))

	if len(updated.Scans) != 1 {
		t.Fatalf("scan count = %d, want 1", len(updated.Scans))
	}
	if updated.LearnedRatio == nil || *updated.LearnedRatio != 0.8 {
		t.Error("learned ratio should be unchanged when calibration yields nothing")
	}
	if updated.Confidence != domain.CalibrationLow || updated.DataPoints != 1 {
		t.Error("confidence and data points should be unchanged")
	}
}

func TestProcessNewScan_SortsOutOfOrderScans(t *testing.T) {
	profile := domain.NewProfile(domain.UserID{})
	profile.Scans = []domain.ScanRecord{scan(30, 85, 23, 59.5)}

	// Backfilling an older scan still produces the chronological pair.
	updated := calibrate.ProcessNewScan(profile, scan(0, 90, 27, 60))

	if updated.LearnedRatio == nil {
		t.Fatal("learned ratio should be set")
	}
	if math.Abs(*updated.LearnedRatio-0.8) > eps {
		t.Errorf("learned ratio = %v, want 0.8", *updated.LearnedRatio)
	}
	if !updated.Scans[0].Date.Before(updated.Scans[1].Date) {
		t.Error("scan history should be sorted ascending by date")
	}
}

func TestScansNeeded(t *testing.T) {
	cases := []struct {
		name            string
		validPairs      int
		current, target domain.CalibrationConfidence
		want            int
	}{
		{"one pair to high", 1, domain.CalibrationLow, domain.CalibrationHigh, 3},
		{"already above target", 4, domain.CalibrationHigh, domain.CalibrationMedium, 0},
		{"fresh profile to medium", 0, domain.CalibrationNone, domain.CalibrationMedium, 2},
		{"at target", 2, domain.CalibrationMedium, domain.CalibrationMedium, 0},
		{"fresh profile to low", 0, domain.CalibrationNone, domain.CalibrationLow, 1},
	}
	for _, tc := range cases {
		if got := calibrate.ScansNeeded(tc.validPairs, tc.current, tc.target); got != tc.want {
			t.Errorf("%s: ScansNeeded = %d, want %d", tc.name, got, tc.want)
		}
	}
}

func TestChangeSummary(t *testing.T) {
	start := scan(0, 90, 27, 60)
	end := scan(30, 85, 23, 59.5)

	s := calibrate.ChangeSummary(start, end)

	// The summary's ratio is exactly the pair's empirical ratio.
	if pair := calibrate.AnalyzePair(start, end); math.Abs(s.Ratio-pair.Ratio) > eps {
		t.Errorf("summary ratio = %v, pair ratio = %v", s.Ratio, pair.Ratio)
	}
	if math.Abs(s.StartBodyFatPercent-30) > eps {
		t.Errorf("start body fat = %v, want 30", s.StartBodyFatPercent)
	}
	if math.Abs(s.EndBodyFatPercent-23/85.0*100) > eps {
		t.Errorf("end body fat = %v, want %v", s.EndBodyFatPercent, 23/85.0*100)
	}
	if s.Description == "" {
		t.Error("description should not be empty")
	}
}

func TestCompareToActual(t *testing.T) {
	start := scan(0, 90, 27, 60)
	actual := scan(30, 85, 23, 59.5) // bf 27.06%

	prediction := domain.Prediction{
		TargetWeightKg: 85,
		FatMassKg:      domain.Scenario{Optimistic: 22.25, Expected: 22.85, Pessimistic: 23.45},
		LeanMassKg:     domain.Scenario{Optimistic: 59.75, Expected: 59.15, Pessimistic: 58.55},
		BodyFatPercent: domain.Scenario{Optimistic: 26.18, Expected: 26.88, Pessimistic: 27.59},
	}

	c := calibrate.CompareToActual(prediction, actual, start)

	if math.Abs(c.Ratio-0.8) > eps {
		t.Errorf("realized ratio = %v, want 0.8", c.Ratio)
	}
	if math.Abs(c.FatMassErrorKg-(23-22.85)) > eps {
		t.Errorf("fat mass error = %v, want %v", c.FatMassErrorKg, 23-22.85)
	}
	if math.Abs(c.LeanMassErrorKg-(59.5-59.15)) > eps {
		t.Errorf("lean mass error = %v, want %v", c.LeanMassErrorKg, 59.5-59.15)
	}
	if !c.WithinBand {
		t.Error("actual body fat should land inside the prediction band")
	}

	// Band bounds are inclusive.
	edge := prediction
	edge.BodyFatPercent.Pessimistic = actual.BodyFatPercent()
	if !calibrate.CompareToActual(edge, actual, start).WithinBand {
		t.Error("a value exactly on the band edge counts as within")
	}

	// An actual outside the band is flagged.
	miss := prediction
	miss.BodyFatPercent = domain.Scenario{Optimistic: 20, Expected: 21, Pessimistic: 22}
	if calibrate.CompareToActual(miss, actual, start).WithinBand {
		t.Error("actual body fat outside the band should not count as within")
	}
}
