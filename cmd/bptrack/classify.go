package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"bptrack/internal/app"
	"bptrack/internal/domain"
)

func newClassifyCmd() *cobra.Command {
	var output, unit string

	cmd := &cobra.Command{
		Use:   "classify SYSTOLIC DIASTOLIC",
		Short: "Classify a single reading",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			sys, err := domain.ParsePressure(args[0], unit)
			if err != nil {
				return fmt.Errorf("systolic: %w", err)
			}
			dia, err := domain.ParsePressure(args[1], unit)
			if err != nil {
				return fmt.Errorf("diastolic: %w", err)
			}

			view, err := app.Evaluate(domain.Reading{Systolic: sys, Diastolic: dia})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			switch output {
			case "json":
				enc := json.NewEncoder(w)
				enc.SetIndent("", "  ")
				return enc.Encode(map[string]any{
					"zone":       view.Zone,
					"messageKey": view.Zone.MessageKey(),
					"emergency":  view.Emergency,
					"point":      view.Point,
				})
			case "text":
				fmt.Fprintf(w, "%d/%d mmHg: %s\n", sys, dia, view.Zone)
				if view.Emergency {
					fmt.Fprintln(w, "EMERGENCY: reading is in the crisis zone")
				}
				return nil
			default:
				return fmt.Errorf("unknown output format %q", output)
			}
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "text", "Output format: text or json")
	cmd.Flags().StringVar(&unit, "unit", domain.UnitMMHg, "Input unit: mmhg or kpa")
	return cmd
}
