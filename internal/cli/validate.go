package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/WHOIGit/nsf-oce-topics/internal/cpi"
)

func newValidateCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration and the CPI workbook without processing",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}

			table, err := cpi.LoadTable(cfg.CPI.Path, cfg.CPI.Sheet, cfg.CPI.BaseYear)
			if err != nil {
				return fmt.Errorf("loading CPI table: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "configuration ok: %s\n", cfg)
			fmt.Fprintf(cmd.OutOrStdout(), "CPI table ok: %d years, base %d\n",
				table.Years(), table.BaseYear())

			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to YAML config")

	return cmd
}
