package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/geokit-cli/internal/raster"
	"github.com/sells-group/geokit-cli/internal/vector"
)

var vectorRasterizeCmd = &cobra.Command{
	Use:   "rasterize",
	Short: "Burn vector features into a raster grid",
	RunE: func(cmd *cobra.Command, _ []string) error {
		inputPath, _ := cmd.Flags().GetString("input")
		outputPath, _ := cmd.Flags().GetString("output-raster")
		resolution, _ := cmd.Flags().GetFloat64("resolution")
		valueColumn, _ := cmd.Flags().GetString("value-column")
		defaultValue, _ := cmd.Flags().GetFloat64("default-value")
		fillValue, _ := cmd.Flags().GetFloat64("fill-value")
		basePath, _ := cmd.Flags().GetString("base-raster")
		bufferValue, _ := cmd.Flags().GetFloat64("buffer-value")
		mergeName, _ := cmd.Flags().GetString("merge-strategy")

		merge, err := vector.ParseMergeStrategy(mergeName)
		if err != nil {
			return err
		}

		log := zap.L().With(zap.String("command", "vector rasterize"))
		log.Debug("rasterizing vector",
			zap.String("input", inputPath),
			zap.Float64("resolution", resolution),
			zap.String("value_column", valueColumn),
		)

		grid, meta, err := vector.Rasterize(inputPath, vector.RasterizeOptions{
			Resolution:     resolution,
			ValueColumn:    valueColumn,
			DefaultValue:   defaultValue,
			FillValue:      fillValue,
			BaseRasterPath: basePath,
			BufferValue:    bufferValue,
			Merge:          merge,
		})
		if err != nil {
			return err
		}

		if err := raster.Write(outputPath, grid, meta); err != nil {
			return err
		}

		fmt.Println("Rasterizing completed")
		fmt.Printf("Writing raster to %s\n", outputPath)
		return nil
	},
}

func init() {
	vectorRasterizeCmd.Flags().String("input", "", "input vector path")
	vectorRasterizeCmd.Flags().String("output-raster", "", "output raster path")
	vectorRasterizeCmd.Flags().Float64("resolution", 0, "output pixel size (ignored with --base-raster)")
	vectorRasterizeCmd.Flags().String("value-column", "", "attribute column to burn (default: constant value)")
	vectorRasterizeCmd.Flags().Float64("default-value", 1.0, "constant burn value without a value column")
	vectorRasterizeCmd.Flags().Float64("fill-value", 0.0, "value for pixels not covered by any feature")
	vectorRasterizeCmd.Flags().String("base-raster", "", "raster whose grid the output matches")
	vectorRasterizeCmd.Flags().Float64("buffer-value", 0, "buffer distance applied to geometries before burning")
	vectorRasterizeCmd.Flags().String("merge-strategy", "replace", "replace or add")
	_ = vectorRasterizeCmd.MarkFlagRequired("input")
	_ = vectorRasterizeCmd.MarkFlagRequired("output-raster")
	vectorCmd.AddCommand(vectorRasterizeCmd)
}
