package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/geokit-cli/internal/transform"
)

var transformLogratioCmd = &cobra.Command{
	Use:   "logratio",
	Short: "Pairwise logratio transform over two numeric columns",
	Long: `Computes ln(numerator/denominator) row by row over two numeric columns.
Every operand must be strictly positive.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		numerator, _ := cmd.Flags().GetString("numerator-column")
		denominator, _ := cmd.Flags().GetString("denominator-column")

		log := zap.L().With(zap.String("command", "transform logratio"))
		log.Debug("computing logratio",
			zap.String("numerator", numerator),
			zap.String("denominator", denominator),
		)

		f, err := loadFrame(cmd.Context(), cmd)
		if err != nil {
			return err
		}

		ratios, err := transform.PairwiseLogratio(f, numerator, denominator)
		if err != nil {
			return err
		}
		return renderResult(map[string][]float64{"logratio": ratios})
	},
}

func init() {
	addTableFlags(transformLogratioCmd)
	transformLogratioCmd.Flags().String("numerator-column", "", "numerator column")
	transformLogratioCmd.Flags().String("denominator-column", "", "denominator column")
	_ = transformLogratioCmd.MarkFlagRequired("numerator-column")
	_ = transformLogratioCmd.MarkFlagRequired("denominator-column")
	transformCmd.AddCommand(transformLogratioCmd)
}
