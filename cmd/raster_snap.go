package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/geokit-cli/internal/raster"
)

var rasterSnapCmd = &cobra.Command{
	Use:   "snap",
	Short: "Align a raster's grid origin to a snap raster",
	RunE: func(cmd *cobra.Command, _ []string) error {
		inputPath, _ := cmd.Flags().GetString("input")
		snapPath, _ := cmd.Flags().GetString("snap-raster")
		outputPath, _ := cmd.Flags().GetString("output-raster")

		log := zap.L().With(zap.String("command", "raster snap"))
		log.Debug("snapping raster",
			zap.String("input", inputPath),
			zap.String("snap_raster", snapPath),
		)

		ds, err := raster.Open(inputPath)
		if err != nil {
			return err
		}
		defer func() { _ = ds.Close() }()

		snapDS, err := raster.Open(snapPath)
		if err != nil {
			return err
		}
		defer func() { _ = snapDS.Close() }()

		grid, meta, err := raster.Snap(ds, snapDS)
		if err != nil {
			return err
		}

		if err := raster.Write(outputPath, grid, meta); err != nil {
			return err
		}

		fmt.Println("Snapping completed")
		fmt.Printf("Writing raster to %s\n", outputPath)
		return nil
	},
}

func init() {
	rasterSnapCmd.Flags().String("input", "", "input raster path")
	rasterSnapCmd.Flags().String("snap-raster", "", "raster whose grid to align to")
	rasterSnapCmd.Flags().String("output-raster", "", "output raster path")
	_ = rasterSnapCmd.MarkFlagRequired("input")
	_ = rasterSnapCmd.MarkFlagRequired("snap-raster")
	_ = rasterSnapCmd.MarkFlagRequired("output-raster")
	rasterCmd.AddCommand(rasterSnapCmd)
}
