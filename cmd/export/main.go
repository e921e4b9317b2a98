// pcimon-export writes the findings CSV export from the command line, using
// the same filter semantics as the dashboard's findings explorer.
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"pcimon/internal/config"
	"pcimon/internal/dataset"
	"pcimon/internal/domain/models"
	"pcimon/internal/domain/services"
	"pcimon/pkg/logger"
)

func main() {
	var (
		configPath   string
		output       string
		severities   []string
		statuses     []string
		requirements []string
	)

	cmd := &cobra.Command{
		Use:   "pcimon-export",
		Short: "Export filtered compliance findings as CSV",
		Long: `Loads the compliance snapshot and writes the findings export as CSV.
Without filter flags the dashboard defaults apply: all severities, all
requirements, open findings only.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(configPath, output, severities, statuses, requirements)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "config file path")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default pci_findings_YYYYMMDD.csv, \"-\" for stdout)")
	cmd.Flags().StringSliceVar(&severities, "severity", nil, "severities to include (default: all)")
	cmd.Flags().StringSliceVar(&statuses, "status", nil, "statuses to include (default: open)")
	cmd.Flags().StringSliceVar(&requirements, "requirement", nil, "requirement ids to include (default: all)")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runExport(configPath, output string, severities, statuses, requirementIDs []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	log := logger.New(logger.Config{
		Level:  "warn",
		Format: cfg.Logger.Format,
	})

	store := dataset.NewStore(dataset.Config{
		RequirementsPath:  cfg.Data.RequirementsPath(),
		ControlStatusPath: cfg.Data.ControlStatusPath(),
		FindingsPath:      cfg.Data.FindingsPath(),
		TrendPath:         cfg.Data.TrendPath(),
	}, log)

	findings, err := store.Findings()
	if err != nil {
		return err
	}
	requirements, err := store.Requirements()
	if err != nil {
		return err
	}

	filter := services.DefaultFilter(requirements)
	if len(severities) > 0 {
		filter.Severities = filter.Severities[:0]
		for _, s := range severities {
			filter.Severities = append(filter.Severities, models.ParseSeverity(s))
		}
	}
	if len(statuses) > 0 {
		filter.Statuses = filter.Statuses[:0]
		for _, s := range statuses {
			filter.Statuses = append(filter.Statuses, models.ParseFindingState(s))
		}
	}
	if len(requirementIDs) > 0 {
		filter.Requirements = requirementIDs
	}

	filtered := services.FilterFindings(findings, filter)

	var w io.Writer
	switch output {
	case "-":
		w = os.Stdout
	case "":
		output = services.ExportFilename(time.Now())
		fallthrough
	default:
		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	if err := services.WriteCSV(w, filtered); err != nil {
		return err
	}

	if output != "-" {
		fmt.Printf("Exported %d of %d findings to %s\n", len(filtered), len(findings), output)
	}
	return nil
}
