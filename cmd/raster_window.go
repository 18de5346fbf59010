package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/geokit-cli/internal/raster"
)

var rasterWindowCmd = &cobra.Command{
	Use:   "window",
	Short: "Extract a pixel window centered on world coordinates",
	RunE: func(cmd *cobra.Command, _ []string) error {
		inputPath, _ := cmd.Flags().GetString("input")
		outputPath, _ := cmd.Flags().GetString("output-raster")
		centerX, _ := cmd.Flags().GetFloat64("center-x")
		centerY, _ := cmd.Flags().GetFloat64("center-y")
		width, _ := cmd.Flags().GetInt("width")
		height, _ := cmd.Flags().GetInt("height")

		log := zap.L().With(zap.String("command", "raster window"))
		log.Debug("extracting window",
			zap.String("input", inputPath),
			zap.Float64("center_x", centerX),
			zap.Float64("center_y", centerY),
			zap.Int("width", width),
			zap.Int("height", height),
		)

		ds, err := raster.Open(inputPath)
		if err != nil {
			return err
		}
		defer func() { _ = ds.Close() }()

		grid, meta, err := raster.Window(ds, raster.WindowOptions{
			CenterX: centerX,
			CenterY: centerY,
			Width:   width,
			Height:  height,
		})
		if err != nil {
			return err
		}

		if err := raster.Write(outputPath, grid, meta); err != nil {
			return err
		}

		fmt.Println("Windowing completed")
		fmt.Printf("Writing raster to %s\n", outputPath)
		return nil
	},
}

func init() {
	rasterWindowCmd.Flags().String("input", "", "input raster path")
	rasterWindowCmd.Flags().String("output-raster", "", "output raster path")
	rasterWindowCmd.Flags().Float64("center-x", 0, "window center x in world coordinates")
	rasterWindowCmd.Flags().Float64("center-y", 0, "window center y in world coordinates")
	rasterWindowCmd.Flags().Int("width", 0, "window width in pixels")
	rasterWindowCmd.Flags().Int("height", 0, "window height in pixels")
	_ = rasterWindowCmd.MarkFlagRequired("input")
	_ = rasterWindowCmd.MarkFlagRequired("output-raster")
	_ = rasterWindowCmd.MarkFlagRequired("center-x")
	_ = rasterWindowCmd.MarkFlagRequired("center-y")
	_ = rasterWindowCmd.MarkFlagRequired("width")
	_ = rasterWindowCmd.MarkFlagRequired("height")
	rasterCmd.AddCommand(rasterWindowCmd)
}
