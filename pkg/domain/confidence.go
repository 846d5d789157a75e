package domain

import "fmt"

// CalibrationConfidence grades how much trust the system puts in a learned
// partition ratio. It forms a total order none < low < medium < high; the
// numeric representation makes level comparisons explicit instead of relying
// on string conventions.
type CalibrationConfidence int

const (
	CalibrationNone CalibrationConfidence = iota
	CalibrationLow
	CalibrationMedium
	CalibrationHigh
)

var calibrationNames = map[CalibrationConfidence]string{
	CalibrationNone:   "none",
	CalibrationLow:    "low",
	CalibrationMedium: "medium",
	CalibrationHigh:   "high",
}

func (c CalibrationConfidence) String() string {
	if s, ok := calibrationNames[c]; ok {
		return s
	}

	return fmt.Sprintf("CalibrationConfidence(%d)", int(c))
}

// MarshalText implements encoding.TextMarshaler so the level serializes as
// its name in JSON payloads and database rows.
func (c CalibrationConfidence) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *CalibrationConfidence) UnmarshalText(text []byte) error {
	for level, name := range calibrationNames {
		if name == string(text) {
			*c = level

			return nil
		}
	}

	return fmt.Errorf("unknown calibration confidence %q", string(text))
}

// PredictionConfidence grades a single composition prediction. It forms a
// separate ladder low < moderate < reasonable; "reasonable" is deliberately
// the ceiling because body-composition partitioning is inherently noisy and
// the engine never claims high confidence in a forecast.
type PredictionConfidence int

const (
	PredictionLow PredictionConfidence = iota
	PredictionModerate
	PredictionReasonable
)

var predictionNames = map[PredictionConfidence]string{
	PredictionLow:        "low",
	PredictionModerate:   "moderate",
	PredictionReasonable: "reasonable",
}

func (c PredictionConfidence) String() string {
	if s, ok := predictionNames[c]; ok {
		return s
	}

	return fmt.Sprintf("PredictionConfidence(%d)", int(c))
}

// MarshalText implements encoding.TextMarshaler.
func (c PredictionConfidence) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *PredictionConfidence) UnmarshalText(text []byte) error {
	for level, name := range predictionNames {
		if name == string(text) {
			*c = level

			return nil
		}
	}

	return fmt.Errorf("unknown prediction confidence %q", string(text))
}
