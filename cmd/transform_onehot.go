package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/geokit-cli/internal/table"
	"github.com/sells-group/geokit-cli/internal/transform"
)

var transformOneHotCmd = &cobra.Command{
	Use:   "one-hot",
	Short: "One-hot encode categorical columns",
	Long: `Replaces each selected categorical column with one indicator column per
unique category, named <column>_<category>.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		outputPath, _ := cmd.Flags().GetString("output-file")
		columns, _ := cmd.Flags().GetStringSlice("columns")
		dropName, _ := cmd.Flags().GetString("drop-category")
		keepOriginal, _ := cmd.Flags().GetBool("keep-original")

		drop, err := transform.ParseDropCategory(dropName)
		if err != nil {
			return err
		}

		log := zap.L().With(zap.String("command", "transform one-hot"))
		log.Debug("one-hot encoding", zap.Strings("columns", columns))

		f, err := loadFrame(cmd.Context(), cmd)
		if err != nil {
			return err
		}

		encoded, err := transform.OneHot(f, transform.OneHotOptions{
			Columns:            columns,
			Drop:               drop,
			DropEncodedColumns: !keepOriginal,
		})
		if err != nil {
			return err
		}

		if err := table.WriteCSVFile(outputPath, encoded); err != nil {
			return err
		}

		fmt.Println("One-hot encoding completed")
		fmt.Printf("Writing table to %s\n", outputPath)
		return nil
	},
}

func init() {
	addTableFlags(transformOneHotCmd)
	transformOneHotCmd.Flags().String("output-file", "", "output CSV path")
	transformOneHotCmd.Flags().StringSlice("columns", nil, "columns to encode (default: all)")
	transformOneHotCmd.Flags().String("drop-category", "none", "none, first or if-binary")
	transformOneHotCmd.Flags().Bool("keep-original", false, "keep the encoded source columns in the output")
	_ = transformOneHotCmd.MarkFlagRequired("output-file")
	transformCmd.AddCommand(transformOneHotCmd)
}
