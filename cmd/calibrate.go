package main

import (
	"encoding/json"
	"fmt"
	"os"

	"bodycomp/internal/calibrate"
	"bodycomp/pkg/domain"

	"github.com/spf13/cobra"
)

// calibrateCommand constructs the 'calibrate' subcommand that runs the
// calibration engine offline over a JSON scan export, without touching the
// database. Useful for inspecting what a user's history would learn.
func calibrateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calibrate <scans.json>",
		Short: "Calibrates a partition ratio from a JSON scan export",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("could not read scan export: %w", err)
			}

			var scans []domain.ScanRecord
			if err := json.Unmarshal(raw, &scans); err != nil {
				return fmt.Errorf("could not parse scan export: %w", err)
			}

			result := calibrate.Calibrate(scans)
			if result == nil {
				cmd.Printf("not enough data to calibrate: %d scans, need at least 2 with a valid pair\n", len(scans))
				needed := calibrate.ScansNeeded(0, domain.CalibrationNone, domain.CalibrationMedium)
				cmd.Printf("submit %d more qualifying scans for medium confidence\n", needed)

				return nil
			}

			cmd.Printf("learned ratio: %.3f (%s confidence, %d valid pairs from %d scans)\n",
				result.Ratio, result.Confidence, result.ValidPairs, len(scans))
			for _, pair := range result.Pairs {
				if !pair.Valid {
					cmd.Printf("  pair %s .. %s: skipped (%s)\n",
						pair.StartDate.Format("2006-01-02"), pair.EndDate.Format("2006-01-02"), pair.Reason)

					continue
				}
				cmd.Printf("  pair %s .. %s: ratio %.3f over %.1f kg\n",
					pair.StartDate.Format("2006-01-02"), pair.EndDate.Format("2006-01-02"),
					pair.Ratio, pair.WeightChangeKg)
			}

			if needed := calibrate.ScansNeeded(result.ValidPairs, result.Confidence, domain.CalibrationHigh); needed > 0 {
				cmd.Printf("submit %d more qualifying scans for high confidence\n", needed)
			}

			return nil
		},
	}

	return cmd
}
