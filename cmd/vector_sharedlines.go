package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/geokit-cli/internal/vector"
)

var vectorSharedLinesCmd = &cobra.Command{
	Use:   "shared-lines",
	Short: "Extract boundary lines shared by adjacent polygons",
	Long: `Extracts the boundary segments that two or more polygons have in common.
Each shared segment is reported exactly once, with endpoints in
lexicographic order.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		inputPath, _ := cmd.Flags().GetString("input")
		outputPath, _ := cmd.Flags().GetString("output-vector")

		log := zap.L().With(zap.String("command", "vector shared-lines"))
		log.Debug("extracting shared lines", zap.String("input", inputPath))

		fc, err := vector.ReadFile(inputPath)
		if err != nil {
			return err
		}

		lines, err := vector.SharedLines(fc)
		if err != nil {
			return err
		}

		if err := vector.WriteGeoJSONFile(outputPath, lines); err != nil {
			return err
		}

		fmt.Printf("Shared line extraction completed, %d lines found\n", len(lines.Features))
		fmt.Printf("Writing vector to %s\n", outputPath)
		return nil
	},
}

func init() {
	vectorSharedLinesCmd.Flags().String("input", "", "input polygon vector path")
	vectorSharedLinesCmd.Flags().String("output-vector", "", "output GeoJSON path")
	_ = vectorSharedLinesCmd.MarkFlagRequired("input")
	_ = vectorSharedLinesCmd.MarkFlagRequired("output-vector")
	vectorCmd.AddCommand(vectorSharedLinesCmd)
}
