package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"bptrack/internal/app"
	"bptrack/internal/domain"
)

func newAssessCmd() *cobra.Command {
	var (
		minPoints int
		output    string
	)

	cmd := &cobra.Command{
		Use:   "assess FILE",
		Short: "Assess a readings export",
		Long: `Reads a YAML or JSON list of readings (use - for stdin) and prints the
combined zone and trend assessment.

Example file:
  - {id: 1, systolic: 160, diastolic: 95, takenAt: 2026-01-01}
  - {id: 2, systolic: 150, diastolic: 90, takenAt: 2026-01-08}`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			readings, err := loadReadings(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}

			svc := app.NewAssessmentService(nil, zerolog.New(cmd.ErrOrStderr()), minPoints)
			view := svc.AssessReadings(readings, minPoints)
			return writeAssessment(cmd.OutOrStdout(), view, output)
		},
	}

	cmd.Flags().IntVar(&minPoints, "min-points", domain.DefaultMinTrendPoints, "Valid readings needed to report a trend")
	cmd.Flags().StringVarP(&output, "output", "o", "yaml", "Output format: yaml or json")
	return cmd
}

// loadReadings parses path as YAML, which also accepts JSON documents.
func loadReadings(stdin io.Reader, path string) ([]domain.Reading, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read readings: %w", err)
	}

	var readings []domain.Reading
	if err := yaml.Unmarshal(data, &readings); err != nil {
		return nil, fmt.Errorf("parse readings: %w", err)
	}
	return readings, nil
}

type assessmentOutput struct {
	Zone       domain.Zone           `json:"zone" yaml:"zone"`
	Trend      domain.TrendDirection `json:"trend" yaml:"trend"`
	MessageKey string                `json:"messageKey" yaml:"messageKey"`
	Params     map[string]string     `json:"params" yaml:"params"`
	Points     int                   `json:"points" yaml:"points"`
	Omitted    []string              `json:"omitted,omitempty" yaml:"omitted,omitempty"`
	Summary    app.Summary           `json:"summary" yaml:"summary"`
}

func writeAssessment(w io.Writer, view *app.HistoryView, format string) error {
	out := assessmentOutput{
		Zone:       view.Assessment.Zone,
		Trend:      view.Assessment.Trend,
		MessageKey: view.Assessment.MessageKey,
		Params:     view.Assessment.Params,
		Points:     view.Assessment.Report.Points,
		Summary:    view.Summary,
	}
	for _, o := range view.Assessment.Omitted {
		out.Omitted = append(out.Omitted, o.String())
	}

	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	case "yaml":
		enc := yaml.NewEncoder(w)
		defer enc.Close() //nolint:errcheck
		enc.SetIndent(2)
		return enc.Encode(out)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
