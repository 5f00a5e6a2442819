package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/WHOIGit/nsf-oce-topics/internal/config"
	"github.com/WHOIGit/nsf-oce-topics/internal/cpi"
	"github.com/WHOIGit/nsf-oce-topics/internal/ingest"
	"github.com/WHOIGit/nsf-oce-topics/internal/logger"
	"github.com/WHOIGit/nsf-oce-topics/internal/models"
	"github.com/WHOIGit/nsf-oce-topics/internal/normalizer"
	"github.com/WHOIGit/nsf-oce-topics/internal/output"
	"github.com/WHOIGit/nsf-oce-topics/internal/report"
)

func newRunCmd() *cobra.Command {
	var (
		configPath string
		inputPath  string
		outputPath string
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the full ETL pass",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}

			if inputPath != "" {
				cfg.Input.Path = inputPath
			}

			if outputPath != "" {
				cfg.Output.Path = outputPath
			}

			return runPipeline(cfg, cmd)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to YAML config (defaults apply if omitted)")
	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "Award CSV export (overrides config)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output parquet path (overrides config)")

	return cmd
}

// loadConfig loads the YAML config, or the defaults when no path is given.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.DefaultConfig(), nil
	}

	return config.LoadConfig(path)
}

// runPipeline executes the linear ETL pass: read CSV, load CPI, normalize,
// write parquet and manifest, print the run summary.
func runPipeline(cfg *config.Config, cmd *cobra.Command) error {
	log := logger.NewLogger(cfg.Logging.Level)
	start := time.Now()

	log.Info("starting ETL run", "input", cfg.Input.Path, "output", cfg.Output.Path)

	table, err := cpi.LoadTable(cfg.CPI.Path, cfg.CPI.Sheet, cfg.CPI.BaseYear)
	if err != nil {
		return fmt.Errorf("loading CPI table: %w", err)
	}

	log.Info("loaded CPI table", "years", table.Years(), "baseYear", table.BaseYear())

	raws, err := ingest.NewReader().ReadFile(cfg.Input.Path)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	log.Info("read award rows", "rows", len(raws))

	result, err := normalizer.NewProcessor(cfg, table).Process(raws)
	if err != nil {
		return err
	}

	log.Info("normalized awards",
		"written", result.Counts.Written,
		"duplicates", result.Counts.Duplicates,
		"emptyAbstracts", result.Counts.EmptyAbstract,
		"merged", result.Counts.Merged,
		"nulledAmounts", result.Counts.NulledAmounts,
	)

	if err := output.WriteParquet(cfg.Output.Path, result.Awards, cfg.Output.Compression); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	checksum, err := output.Checksum(cfg.Output.Path)
	if err != nil {
		return fmt.Errorf("hashing output: %w", err)
	}

	if cfg.Output.ManifestPath != "" {
		manifest := &models.Manifest{
			InputFile:   cfg.Input.Path,
			CPIFile:     cfg.CPI.Path,
			OutputFile:  cfg.Output.Path,
			Checksum:    checksum,
			BaseYear:    cfg.CPI.BaseYear,
			Counts:      result.Counts,
			ProcessedAt: time.Now().UTC(),
			Status:      models.StatusCompleted,
		}

		if err := output.WriteManifest(cfg.Output.ManifestPath, manifest); err != nil {
			return fmt.Errorf("writing manifest: %w", err)
		}
	}

	summary := report.Summarize(result.Awards, result.Counts, cfg.CPI.BaseYear)
	fmt.Fprint(cmd.OutOrStdout(), summary.Render())

	log.Info("ETL run complete", "elapsed", report.Duration(start), "checksum", checksum)

	return nil
}
