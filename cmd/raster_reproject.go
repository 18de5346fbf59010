package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/geokit-cli/internal/raster"
)

var rasterReprojectCmd = &cobra.Command{
	Use:   "reproject",
	Short: "Reproject a raster to a target CRS",
	RunE: func(cmd *cobra.Command, _ []string) error {
		inputPath, _ := cmd.Flags().GetString("input")
		outputPath, _ := cmd.Flags().GetString("output-raster")
		targetCRS, _ := cmd.Flags().GetInt("target-crs")
		methodName, _ := cmd.Flags().GetString("resampling-method")

		if methodName == "" {
			methodName = cfg.Raster.ResamplingMethod
		}
		method, err := raster.ParseMethod(methodName)
		if err != nil {
			return err
		}

		log := zap.L().With(zap.String("command", "raster reproject"))
		log.Debug("reprojecting raster",
			zap.String("input", inputPath),
			zap.Int("target_crs", targetCRS),
			zap.String("method", methodName),
		)

		ds, err := raster.Open(inputPath)
		if err != nil {
			return err
		}
		defer func() { _ = ds.Close() }()

		grid, meta, err := raster.Reproject(ds, targetCRS, method)
		if err != nil {
			return err
		}

		if err := raster.Write(outputPath, grid, meta); err != nil {
			return err
		}

		fmt.Println("Reprojecting completed")
		fmt.Printf("Writing raster to %s.\n", outputPath)
		return nil
	},
}

func init() {
	rasterReprojectCmd.Flags().String("input", "", "input raster path")
	rasterReprojectCmd.Flags().String("output-raster", "", "output raster path")
	rasterReprojectCmd.Flags().Int("target-crs", 0, "target EPSG code")
	rasterReprojectCmd.Flags().String("resampling-method", "", "resampling method (default from config)")
	_ = rasterReprojectCmd.MarkFlagRequired("input")
	_ = rasterReprojectCmd.MarkFlagRequired("output-raster")
	_ = rasterReprojectCmd.MarkFlagRequired("target-crs")
	rasterCmd.AddCommand(rasterReprojectCmd)
}
