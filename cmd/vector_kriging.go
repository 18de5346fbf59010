package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/geokit-cli/internal/interpolate"
	"github.com/sells-group/geokit-cli/internal/raster"
	"github.com/sells-group/geokit-cli/internal/vector"
)

var vectorKrigingCmd = &cobra.Command{
	Use:   "kriging",
	Short: "Interpolate a point attribute onto a raster grid",
	RunE: func(cmd *cobra.Command, _ []string) error {
		inputPath, _ := cmd.Flags().GetString("input")
		outputPath, _ := cmd.Flags().GetString("output-raster")
		targetColumn, _ := cmd.Flags().GetString("target-column")
		pixelSizeX, _ := cmd.Flags().GetFloat64("pixel-size-x")
		pixelSizeY, _ := cmd.Flags().GetFloat64("pixel-size-y")
		extent, _ := cmd.Flags().GetFloat64Slice("extent")
		modelName, _ := cmd.Flags().GetString("variogram-model")
		methodName, _ := cmd.Flags().GetString("method")
		driftTerms, _ := cmd.Flags().GetStringSlice("drift-terms")

		model, err := interpolate.ParseVariogramModel(modelName)
		if err != nil {
			return err
		}
		method, err := interpolate.ParseKrigingMethod(methodName)
		if err != nil {
			return err
		}

		opts := interpolate.KrigingOptions{
			TargetColumn: targetColumn,
			CellSizeX:    pixelSizeX,
			CellSizeY:    pixelSizeY,
			Model:        model,
			Method:       method,
			DriftTerms:   driftTerms,
		}
		if len(extent) == 4 {
			opts.Extent = &[4]float64{extent[0], extent[1], extent[2], extent[3]}
		} else if len(extent) != 0 {
			return fmt.Errorf("extent needs exactly 4 values (minx miny maxx maxy), got %d", len(extent))
		}

		log := zap.L().With(zap.String("command", "vector kriging"))
		log.Debug("interpolating",
			zap.String("input", inputPath),
			zap.String("target_column", targetColumn),
			zap.String("model", modelName),
			zap.String("method", methodName),
		)

		fc, err := vector.ReadFile(inputPath)
		if err != nil {
			return err
		}

		grid, meta, err := interpolate.Kriging(fc, opts)
		if err != nil {
			return err
		}

		if err := raster.Write(outputPath, grid, meta); err != nil {
			return err
		}

		fmt.Println("Kriging interpolation completed")
		fmt.Printf("Writing raster to %s\n", outputPath)
		return nil
	},
}

func init() {
	vectorKrigingCmd.Flags().String("input", "", "input point vector path")
	vectorKrigingCmd.Flags().String("output-raster", "", "output raster path")
	vectorKrigingCmd.Flags().String("target-column", "", "numeric attribute to interpolate")
	vectorKrigingCmd.Flags().Float64("pixel-size-x", 0, "output pixel size x")
	vectorKrigingCmd.Flags().Float64("pixel-size-y", 0, "output pixel size y")
	vectorKrigingCmd.Flags().Float64Slice("extent", nil, "output bounds: minx,miny,maxx,maxy (default: data extent)")
	vectorKrigingCmd.Flags().String("variogram-model", "linear", "linear, power, gaussian, spherical, exponential or hole-effect")
	vectorKrigingCmd.Flags().String("method", "ordinary", "ordinary or universal")
	vectorKrigingCmd.Flags().StringSlice("drift-terms", []string{"regional_linear"}, "drift terms for universal kriging")
	_ = vectorKrigingCmd.MarkFlagRequired("input")
	_ = vectorKrigingCmd.MarkFlagRequired("output-raster")
	_ = vectorKrigingCmd.MarkFlagRequired("target-column")
	_ = vectorKrigingCmd.MarkFlagRequired("pixel-size-x")
	_ = vectorKrigingCmd.MarkFlagRequired("pixel-size-y")
	vectorCmd.AddCommand(vectorKrigingCmd)
}
