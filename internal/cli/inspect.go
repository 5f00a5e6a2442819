package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/WHOIGit/nsf-oce-topics/internal/models"
	"github.com/WHOIGit/nsf-oce-topics/internal/output"
	"github.com/WHOIGit/nsf-oce-topics/internal/report"
)

func newInspectCmd() *cobra.Command {
	var baseYear int

	cmd := &cobra.Command{
		Use:   "inspect <file.parquet>",
		Short: "Summarize a previously produced output file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			awards, err := output.ReadParquet(args[0])
			if err != nil {
				return err
			}

			counts := models.StageCounts{Read: len(awards), Written: len(awards)}
			summary := report.Summarize(awards, counts, baseYear)

			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d rows\n", args[0], len(awards))
			fmt.Fprint(cmd.OutOrStdout(), summary.Render())

			return nil
		},
	}

	cmd.Flags().IntVar(&baseYear, "base-year", 2018, "Reference year amounts were adjusted into")

	return cmd
}
