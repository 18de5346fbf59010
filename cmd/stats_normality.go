package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/geokit-cli/internal/stats"
)

var statsNormalityCmd = &cobra.Command{
	Use:   "normality",
	Short: "Shapiro-Wilk normality test per column",
	Long: `Runs the Shapiro-Wilk test on each selected numeric column. Columns with
more than 5000 observations are rejected; the test loses meaning for
large samples.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		columns, _ := cmd.Flags().GetStringSlice("columns")

		log := zap.L().With(zap.String("command", "stats normality"))
		log.Debug("running normality test", zap.Strings("columns", columns))

		f, err := loadFrame(cmd.Context(), cmd)
		if err != nil {
			return err
		}

		results, err := stats.Normality(stats.FrameInput(f), columns...)
		if err != nil {
			return err
		}
		return renderResult(results)
	},
}

func init() {
	addTableFlags(statsNormalityCmd)
	statsNormalityCmd.Flags().StringSlice("columns", nil, "columns to test (default: all numeric)")
	statsCmd.AddCommand(statsNormalityCmd)
}
