package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/geokit-cli/internal/raster"
)

var rasterClipCmd = &cobra.Command{
	Use:   "clip",
	Short: "Clip a raster with vector geometries",
	RunE: func(cmd *cobra.Command, _ []string) error {
		inputPath, _ := cmd.Flags().GetString("input")
		geometriesPath, _ := cmd.Flags().GetString("geometries")
		outputPath, _ := cmd.Flags().GetString("output-raster")

		log := zap.L().With(zap.String("command", "raster clip"))
		log.Debug("clipping raster",
			zap.String("input", inputPath),
			zap.String("geometries", geometriesPath),
		)

		ds, err := raster.Open(inputPath)
		if err != nil {
			return err
		}
		defer func() { _ = ds.Close() }()

		grid, meta, err := raster.Clip(ds, geometriesPath)
		if err != nil {
			return err
		}

		if err := raster.Write(outputPath, grid, meta); err != nil {
			return err
		}

		fmt.Printf("Clipping completed, output raster written to %s.\n", outputPath)
		return nil
	},
}

func init() {
	rasterClipCmd.Flags().String("input", "", "input raster path")
	rasterClipCmd.Flags().String("geometries", "", "vector file with clip geometries")
	rasterClipCmd.Flags().String("output-raster", "", "output raster path")
	_ = rasterClipCmd.MarkFlagRequired("input")
	_ = rasterClipCmd.MarkFlagRequired("geometries")
	_ = rasterClipCmd.MarkFlagRequired("output-raster")
	rasterCmd.AddCommand(rasterClipCmd)
}
