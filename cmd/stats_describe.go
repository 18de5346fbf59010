package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/geokit-cli/internal/stats"
)

var statsDescribeCmd = &cobra.Command{
	Use:   "describe",
	Short: "Descriptive statistics per numeric column",
	RunE: func(cmd *cobra.Command, _ []string) error {
		columns, _ := cmd.Flags().GetStringSlice("columns")

		log := zap.L().With(zap.String("command", "stats describe"))
		log.Debug("describing columns", zap.Strings("columns", columns))

		f, err := loadFrame(cmd.Context(), cmd)
		if err != nil {
			return err
		}

		results, err := stats.Describe(f, columns...)
		if err != nil {
			return err
		}
		return renderResult(results)
	},
}

func init() {
	addTableFlags(statsDescribeCmd)
	statsDescribeCmd.Flags().StringSlice("columns", nil, "columns to describe (default: all numeric)")
	statsCmd.AddCommand(statsDescribeCmd)
}
