package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/geokit-cli/internal/config"
	"github.com/sells-group/geokit-cli/internal/report"
)

var cfg *config.Config

var outputFormat string

var rootCmd = &cobra.Command{
	Use:   "geokit",
	Short: "Geospatial and statistical utilities for exploration data",
	Long:  "Clips, reprojects, resamples and rasterizes geospatial data, interpolates point samples, and runs statistical tests over tabular attributes.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		if outputFormat == "" {
			outputFormat = cfg.Output.Format
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

// renderResult writes an operation result to stdout in the selected format.
func renderResult(v any) error {
	format, err := report.ParseFormat(outputFormat)
	if err != nil {
		return err
	}
	return report.Render(os.Stdout, v, format)
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "", "output format: json or yaml (default from config)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
