package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/geokit-cli/internal/vector"
)

var vectorReprojectCmd = &cobra.Command{
	Use:   "reproject",
	Short: "Reproject a vector dataset to a target CRS",
	RunE: func(cmd *cobra.Command, _ []string) error {
		inputPath, _ := cmd.Flags().GetString("input")
		outputPath, _ := cmd.Flags().GetString("output-vector")
		targetCRS, _ := cmd.Flags().GetInt("target-crs")

		log := zap.L().With(zap.String("command", "vector reproject"))
		log.Debug("reprojecting vector",
			zap.String("input", inputPath),
			zap.Int("target_crs", targetCRS),
		)

		if err := vector.Reproject(inputPath, outputPath, targetCRS); err != nil {
			return err
		}

		fmt.Println("Reprojecting completed")
		fmt.Printf("Writing vector to %s\n", outputPath)
		return nil
	},
}

func init() {
	vectorReprojectCmd.Flags().String("input", "", "input vector path")
	vectorReprojectCmd.Flags().String("output-vector", "", "output GeoJSON path")
	vectorReprojectCmd.Flags().Int("target-crs", 0, "target EPSG code")
	_ = vectorReprojectCmd.MarkFlagRequired("input")
	_ = vectorReprojectCmd.MarkFlagRequired("output-vector")
	_ = vectorReprojectCmd.MarkFlagRequired("target-crs")
	vectorCmd.AddCommand(vectorReprojectCmd)
}
