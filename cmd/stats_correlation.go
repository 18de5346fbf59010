package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/geokit-cli/internal/stats"
)

var statsCorrelationCmd = &cobra.Command{
	Use:   "correlation",
	Short: "Pairwise correlation matrix over numeric columns",
	RunE: func(cmd *cobra.Command, _ []string) error {
		methodName, _ := cmd.Flags().GetString("method")
		minPeriods, _ := cmd.Flags().GetInt("min-periods")

		method, err := stats.ParseCorrelationMethod(methodName)
		if err != nil {
			return err
		}

		log := zap.L().With(zap.String("command", "stats correlation"))
		log.Debug("computing correlation matrix", zap.String("method", methodName))

		f, err := loadFrame(cmd.Context(), cmd)
		if err != nil {
			return err
		}

		matrix, err := stats.Correlation(f, method, minPeriods)
		if err != nil {
			return err
		}
		return renderResult(matrix)
	},
}

func init() {
	addTableFlags(statsCorrelationCmd)
	statsCorrelationCmd.Flags().String("method", "pearson", "pearson, kendall or spearman")
	statsCorrelationCmd.Flags().Int("min-periods", 0, "minimum observations per pair (not supported for kendall)")
	statsCmd.AddCommand(statsCorrelationCmd)
}
