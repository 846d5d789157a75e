package predict_test

import (
	"math"
	"strings"
	"testing"

	"bodycomp/internal/predict"
	"bodycomp/pkg/domain"
)

const eps = 1e-9

func startScan() domain.ScanRecord {
	return domain.ScanRecord{
		TotalMassKg: 90,
		FatMassKg:   27,
		LeanMassKg:  60,
	}
}

func modelFactors() domain.PartitionRatioFactors {
	return domain.PartitionRatioFactors{
		Base:        0.80,
		Protein:     1.00,
		Training:    1.02,
		Deficit:     1.00,
		BodyFat:     1.02,
		TrainingAge: 1.00,
		Enhancement: 1.00,
		Final:       0.83,
		Low:         0.71,
		High:        0.95,
	}
}

func floatPtr(v float64) *float64 { return &v }

func TestPredict_MassConservation(t *testing.T) {
	current := startScan()
	factors := modelFactors()
	profile := domain.NewProfile(domain.UserID{})

	for _, target := range []float64{85, 80, 92, 95} {
		p := predict.Predict(current, target, domain.PartitionRatioInputs{}, factors, profile)
		delta := target - current.TotalMassKg

		scenarios := []struct {
			name      string
			fat, lean float64
		}{
			{"optimistic", p.FatMassKg.Optimistic, p.LeanMassKg.Optimistic},
			{"expected", p.FatMassKg.Expected, p.LeanMassKg.Expected},
			{"pessimistic", p.FatMassKg.Pessimistic, p.LeanMassKg.Pessimistic},
		}
		for _, s := range scenarios {
			fatChange := s.fat - current.FatMassKg
			leanChange := s.lean - current.LeanMassKg
			if math.Abs(fatChange+leanChange-delta) > eps {
				t.Errorf("target %v, %s scenario: fat %v + lean %v != delta %v",
					target, s.name, fatChange, leanChange, delta)
			}
		}
	}
}

func TestPredict_AppliesExpectedRatio(t *testing.T) {
	current := startScan()
	factors := modelFactors()
	profile := domain.NewProfile(domain.UserID{})

	p := predict.Predict(current, 85, domain.PartitionRatioInputs{}, factors, profile)

	// Expected scenario uses the model ratio: fat change = -5 * 0.83.
	if got, want := p.FatMassKg.Expected, 27-5*0.83; math.Abs(got-want) > eps {
		t.Errorf("expected fat mass = %v, want %v", got, want)
	}
	// Optimistic applies the interval high, pessimistic the interval low.
	if got, want := p.FatMassKg.Optimistic, 27-5*0.95; math.Abs(got-want) > eps {
		t.Errorf("optimistic fat mass = %v, want %v", got, want)
	}
	if got, want := p.FatMassKg.Pessimistic, 27-5*0.71; math.Abs(got-want) > eps {
		t.Errorf("pessimistic fat mass = %v, want %v", got, want)
	}
	// Body fat percent is relative to the target weight.
	if got, want := p.BodyFatPercent.Expected, (27-5*0.83)/85*100; math.Abs(got-want) > eps {
		t.Errorf("expected body fat = %v, want %v", got, want)
	}
	if got, want := p.Assumptions.Ratio, 0.83; math.Abs(got-want) > eps {
		t.Errorf("assumed ratio = %v, want %v", got, want)
	}
}

func TestPredict_PrefersLearnedRatio(t *testing.T) {
	current := startScan()
	factors := modelFactors()

	profile := domain.NewProfile(domain.UserID{})
	profile.LearnedRatio = floatPtr(0.9)
	profile.Confidence = domain.CalibrationLow
	profile.DataPoints = 1

	p := predict.Predict(current, 85, domain.PartitionRatioInputs{}, factors, profile)
	if got, want := p.FatMassKg.Expected, 27-5*0.9; math.Abs(got-want) > eps {
		t.Errorf("expected fat mass = %v, want %v (learned ratio)", got, want)
	}
	if got, want := p.Assumptions.Ratio, 0.9; math.Abs(got-want) > eps {
		t.Errorf("assumed ratio = %v, want %v", got, want)
	}

	// A learned ratio with no confidence is ignored.
	profile.Confidence = domain.CalibrationNone
	p = predict.Predict(current, 85, domain.PartitionRatioInputs{}, factors, profile)
	if got, want := p.FatMassKg.Expected, 27-5*0.83; math.Abs(got-want) > eps {
		t.Errorf("expected fat mass = %v, want %v (model ratio)", got, want)
	}
}

func TestPredict_ConfidenceLadder(t *testing.T) {
	current := startScan()

	tight := modelFactors()
	tight.Low, tight.High = 0.78, 0.88 // spread 0.10

	wide := modelFactors()
	wide.Low, wide.High = 0.62, 0.92 // spread 0.30

	calibrated := domain.NewProfile(domain.UserID{})
	calibrated.LearnedRatio = floatPtr(0.82)
	calibrated.Confidence = domain.CalibrationMedium
	calibrated.DataPoints = 2

	once := domain.NewProfile(domain.UserID{})
	once.LearnedRatio = floatPtr(0.82)
	once.Confidence = domain.CalibrationLow
	once.DataPoints = 1

	uncalibrated := domain.NewProfile(domain.UserID{})

	cases := []struct {
		name    string
		target  float64
		factors domain.PartitionRatioFactors
		profile domain.Profile
		want    domain.PredictionConfidence
	}{
		{"calibrated short tight", 87, tight, calibrated, domain.PredictionReasonable},
		{"calibrated long tight", 80, tight, calibrated, domain.PredictionModerate},
		{"calibrated short wide", 87, wide, calibrated, domain.PredictionModerate},
		{"one pair short tight", 87, tight, once, domain.PredictionModerate},
		{"uncalibrated short tight", 87, tight, uncalibrated, domain.PredictionModerate},
		{"uncalibrated long tight", 80, tight, uncalibrated, domain.PredictionLow},
		{"uncalibrated short wide", 87, wide, uncalibrated, domain.PredictionLow},
	}
	for _, tc := range cases {
		p := predict.Predict(current, tc.target, domain.PartitionRatioInputs{}, tc.factors, tc.profile)
		if p.Confidence != tc.want {
			t.Errorf("%s: confidence = %s, want %s", tc.name, p.Confidence, tc.want)
		}
		if p.Confidence > domain.PredictionReasonable {
			t.Errorf("%s: confidence %s exceeds the reasonable ceiling", tc.name, p.Confidence)
		}
	}
}

func TestPredict_Explanations(t *testing.T) {
	current := startScan()
	profile := domain.NewProfile(domain.UserID{})

	adverse := modelFactors()
	adverse.BodyFat = 0.85
	adverse.Deficit = 0.88
	adverse.Protein = 0.95
	adverse.Training = 0.88

	p := predict.Predict(current, 85, domain.PartitionRatioInputs{}, adverse, profile)

	if len(p.Explanations) != 6 {
		t.Fatalf("explanation count = %d, want 6: %v", len(p.Explanations), p.Explanations)
	}
	if !strings.Contains(p.Explanations[0], "estimate") {
		t.Errorf("first explanation is not the disclaimer: %q", p.Explanations[0])
	}
	if !strings.Contains(p.Explanations[1], "No personal calibration data") {
		t.Errorf("second explanation should state calibration volume: %q", p.Explanations[1])
	}

	// All favorable factors: only disclaimer and volume remain.
	p = predict.Predict(current, 85, domain.PartitionRatioInputs{}, modelFactors(), profile)
	if len(p.Explanations) != 2 {
		t.Fatalf("explanation count = %d, want 2: %v", len(p.Explanations), p.Explanations)
	}

	profile.DataPoints = 3
	p = predict.Predict(current, 85, domain.PartitionRatioInputs{}, modelFactors(), profile)
	if !strings.Contains(p.Explanations[1], "3 valid scan pairs") {
		t.Errorf("volume explanation = %q, want mention of 3 pairs", p.Explanations[1])
	}
}

func TestBreakdown(t *testing.T) {
	current := startScan()
	p := predict.Predict(current, 85, domain.PartitionRatioInputs{}, modelFactors(), domain.NewProfile(domain.UserID{}))

	changes := predict.Breakdown(current, p)
	if len(changes) != 3 {
		t.Fatalf("breakdown length = %d, want 3", len(changes))
	}
	if got, want := changes[1].FatChangeKg, -5*0.83; math.Abs(got-want) > eps {
		t.Errorf("expected scenario fat change = %v, want %v", got, want)
	}
	if got, want := changes[1].LeanChangeKg, -5*(1-0.83); math.Abs(got-want) > eps {
		t.Errorf("expected scenario lean change = %v, want %v", got, want)
	}
}

func TestSweep(t *testing.T) {
	current := startScan()
	factors := modelFactors()
	profile := domain.NewProfile(domain.UserID{})

	preds := predict.Sweep(current, domain.PartitionRatioInputs{}, factors, profile, nil)
	if len(preds) != len(predict.DefaultSweepDeltasKg) {
		t.Fatalf("sweep length = %d, want %d", len(preds), len(predict.DefaultSweepDeltasKg))
	}
	for i, d := range predict.DefaultSweepDeltasKg {
		if got, want := preds[i].TargetWeightKg, current.TotalMassKg+d; math.Abs(got-want) > eps {
			t.Errorf("sweep[%d] target = %v, want %v", i, got, want)
		}
	}

	custom := predict.Sweep(current, domain.PartitionRatioInputs{}, factors, profile, []float64{-3})
	if len(custom) != 1 || math.Abs(custom[0].TargetWeightKg-87) > eps {
		t.Fatalf("custom sweep = %+v, want single prediction at 87kg", custom)
	}
}
