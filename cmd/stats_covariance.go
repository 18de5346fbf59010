package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/geokit-cli/internal/stats"
)

var statsCovarianceCmd = &cobra.Command{
	Use:   "covariance",
	Short: "Pairwise covariance matrix over numeric columns",
	RunE: func(cmd *cobra.Command, _ []string) error {
		minPeriods, _ := cmd.Flags().GetInt("min-periods")
		ddof, _ := cmd.Flags().GetInt("ddof")

		log := zap.L().With(zap.String("command", "stats covariance"))
		log.Debug("computing covariance matrix", zap.Int("ddof", ddof))

		f, err := loadFrame(cmd.Context(), cmd)
		if err != nil {
			return err
		}

		matrix, err := stats.Covariance(f, minPeriods, ddof)
		if err != nil {
			return err
		}
		return renderResult(matrix)
	},
}

func init() {
	addTableFlags(statsCovarianceCmd)
	statsCovarianceCmd.Flags().Int("min-periods", 0, "minimum observations per pair")
	statsCovarianceCmd.Flags().Int("ddof", 1, "delta degrees of freedom")
	statsCmd.AddCommand(statsCovarianceCmd)
}
