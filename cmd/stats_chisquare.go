package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/geokit-cli/internal/stats"
)

var statsChiSquareCmd = &cobra.Command{
	Use:   "chi-square",
	Short: "Chi-square independence test against a target column",
	RunE: func(cmd *cobra.Command, _ []string) error {
		targetColumn, _ := cmd.Flags().GetString("target-column")
		columns, _ := cmd.Flags().GetStringSlice("columns")

		log := zap.L().With(zap.String("command", "stats chi-square"))
		log.Debug("running chi-square test", zap.String("target_column", targetColumn))

		f, err := loadFrame(cmd.Context(), cmd)
		if err != nil {
			return err
		}

		results, err := stats.ChiSquare(f, targetColumn, columns)
		if err != nil {
			return err
		}
		return renderResult(results)
	},
}

func init() {
	addTableFlags(statsChiSquareCmd)
	statsChiSquareCmd.Flags().String("target-column", "", "column tested against")
	statsChiSquareCmd.Flags().StringSlice("columns", nil, "columns to test (default: all except target)")
	_ = statsChiSquareCmd.MarkFlagRequired("target-column")
	statsCmd.AddCommand(statsChiSquareCmd)
}
